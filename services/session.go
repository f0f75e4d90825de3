// services/session.go
package services

import (
	"time"
)

// Session is the verified identity for one request. It is produced by the
// identity provider on sign-in, re-verified from the bearer token by the auth
// middleware, and passed into services as a value — there is no process-wide
// "current user", so concurrent requests can never see each other's session.
type Session struct {
	UserID       string `json:"user_id"`
	Email        string `json:"email"`
	IDToken      string `json:"id_token"`
	RefreshToken string `json:"refresh_token,omitempty"`

	IssuedAt  time.Time `json:"issued_at"`
	ExpiresIn int       `json:"expires_in"` // seconds
}
