package service

import (
	"errors"
	"time"
)

// AccessTokenTTL is the lifetime of every access token issued at signup or signin.
const AccessTokenTTL = 15 * time.Minute

// ErrInvalidToken is the only error Verify returns. Expired, forged, malformed and
// wrongly signed tokens are indistinguishable to callers.
var ErrInvalidToken = errors.New("invalid token")

// TokenSubject is the identity carried inside a verified token.
type TokenSubject struct {
	UserID    int64
	Email     string
	IssuedAt  time.Time
	ExpiresAt time.Time
}

// TokenService issues and verifies signed bearer tokens.
type TokenService interface {
	// Issue signs a token for the user that expires after ttl.
	Issue(userID int64, email string, ttl time.Duration) (string, error)

	// Verify checks signature and expiry and returns the embedded subject.
	Verify(token string) (*TokenSubject, error)
}
