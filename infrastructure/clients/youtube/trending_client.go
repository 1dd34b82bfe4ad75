package youtube

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"trending-board/domain/dto"
	"trending-board/domain/repository"

	"github.com/google/go-querystring/query"
)

// DefaultEndpoint is the videos.list endpoint of the YouTube Data API v3.
const DefaultEndpoint = "https://www.googleapis.com/youtube/v3/videos"

// requestTimeout bounds the single blocking call of a render cycle.
const requestTimeout = 15 * time.Second

// Client issues bounded videos.list calls against the trending chart.
type Client struct {
	httpClient *http.Client
	endpoint   string
}

func NewClient() repository.ITrending {
	return &Client{
		httpClient: &http.Client{Timeout: requestTimeout},
		endpoint:   DefaultEndpoint,
	}
}

// NewClientWithEndpoint overrides endpoint and transport; used by tests.
func NewClientWithEndpoint(endpoint string, httpClient *http.Client) repository.ITrending {
	if httpClient == nil {
		httpClient = &http.Client{Timeout: requestTimeout}
	}
	return &Client{httpClient: httpClient, endpoint: endpoint}
}

// FetchTrending performs one GET with the exact query tuple and validates the
// response shape. Callers are expected to have clamped MaxResults already; the
// upstream hard limit is 50.
func (c *Client) FetchTrending(ctx context.Context, q dto.TrendingQuery) ([]dto.TrendingVideo, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.endpoint, nil)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrNetwork, err)
	}
	values, err := query.Values(q)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrNetwork, err)
	}
	req.URL.RawQuery = values.Encode()

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, classifyTransportError(err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, classifyTransportError(err)
	}

	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		return nil, &APIError{StatusCode: resp.StatusCode, Body: problemMessage(body)}
	}

	var payload struct {
		Items json.RawMessage `json:"items"`
	}
	if err := json.Unmarshal(body, &payload); err != nil || payload.Items == nil {
		return nil, ErrMalformedResponse
	}
	var items []dto.TrendingVideo
	if err := json.Unmarshal(payload.Items, &items); err != nil {
		return nil, ErrMalformedResponse
	}
	return items, nil
}

func classifyTransportError(err error) error {
	var urlErr *url.Error
	if errors.Is(err, context.DeadlineExceeded) ||
		(errors.As(err, &urlErr) && urlErr.Timeout()) {
		return fmt.Errorf("%w: %v", ErrTimeout, err)
	}
	return fmt.Errorf("%w: %v", ErrNetwork, err)
}

// problemMessage extracts error.message from an API error payload, falling
// back to the raw body text.
func problemMessage(body []byte) string {
	var problem struct {
		Error struct {
			Message string `json:"message"`
		} `json:"error"`
	}
	if err := json.Unmarshal(body, &problem); err == nil && problem.Error.Message != "" {
		return problem.Error.Message
	}
	return strings.TrimSpace(string(body))
}
