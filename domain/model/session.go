package model

import "github.com/golang-jwt/jwt"

// Session is the per-user render-cycle state. It is reconstructed from the
// session cookie on every request and mutated only by the auth flow.
type Session struct {
	Authenticated bool   `json:"authenticated"`
	User          string `json:"user,omitempty"`
	LoginFailed   bool   `json:"login_failed,omitempty"`
}

// Credentials is the single configured credential pair. The password is stored
// only as a one-way bcrypt digest; it is loaded once per process and never
// mutated.
type Credentials struct {
	Username     string
	PasswordHash string
}

// ReqLogin carries the submitted login form.
type ReqLogin struct {
	Username string `form:"username" json:"username"`
	Password string `form:"password" json:"password"`
}

// UserClaims is the signed payload of the session cookie.
type UserClaims struct {
	UserName string `json:"username"`
	jwt.StandardClaims
}
