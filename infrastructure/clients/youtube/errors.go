package youtube

import (
	"errors"
	"fmt"
)

// Error kinds surfaced by the client. The render boundary matches on these to
// pick a user-facing message; none of them escape the render cycle.
var (
	// ErrMalformedResponse marks a 2xx response missing the top-level items field.
	ErrMalformedResponse = errors.New("unexpected api response: missing 'items'")
	// ErrTimeout marks a request that exceeded the transport deadline.
	ErrTimeout = errors.New("youtube api request timed out")
	// ErrNetwork marks any other transport-level failure.
	ErrNetwork = errors.New("youtube api request failed")
)

// APIError carries a non-2xx upstream status together with the parsed error
// message (or the raw body when the error payload is not JSON).
type APIError struct {
	StatusCode int
	Body       string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("youtube api http %d: %s", e.StatusCode, e.Body)
}
