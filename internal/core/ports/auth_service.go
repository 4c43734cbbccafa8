package ports

import "context"

type AuthService interface {
	// Register creates an account and returns a session token for it.
	Register(ctx context.Context, email, password string) (string, error)
	// Login verifies credentials and returns a session token.
	Login(ctx context.Context, email, password string) (string, error)
}
