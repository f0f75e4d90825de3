// services/errors.go
package services

import "errors"

// Error kinds services return so handlers can pick a status code with
// errors.Is instead of matching on message text.
var (
	// ErrValidation covers missing/empty required fields and password mismatch.
	ErrValidation = errors.New("validation failed")

	// ErrNotAuthenticated means the identity provider rejected the credentials
	// or no session was presented at all.
	ErrNotAuthenticated = errors.New("not authenticated")

	// ErrTokenInvalid means a session token was presented but could not be
	// verified (malformed, expired, revoked, or the account is disabled).
	ErrTokenInvalid = errors.New("session token invalid")

	ErrDuplicateAccount = errors.New("account already exists")
	ErrDuplicateCharity = errors.New("charity already exists")

	ErrCharityNotFound      = errors.New("charity not found")
	ErrGameNotFound         = errors.New("game not found")
	ErrPlayerHandleNotFound = errors.New("player handle not found")

	// Stats-provider errors, kept distinct so callers can tell a bad summoner
	// name from provider throttling.
	ErrSummonerNotFound = errors.New("summoner not found")
	ErrRateLimited      = errors.New("stats provider rate limited")
)
