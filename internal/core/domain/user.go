package domain

import (
	"errors"
	"time"
)

var ErrUserExists = errors.New("user already exists")
var ErrUserNotFound = errors.New("user not found")
var ErrInvalidCredentials = errors.New("invalid credentials")

// ErrInvalidToken is the single outcome for every token verification failure
// (missing claim, malformed token, bad signature, expired). Collapsing the
// causes keeps callers from learning which check rejected the token.
var ErrInvalidToken = errors.New("invalid token")

// User models a registered account.
type User struct {
	ID           string    `json:"id"`
	Email        string    `json:"email"`
	PasswordHash string    `json:"-"`
	RegisteredAt time.Time `json:"registeredAt"`
}
