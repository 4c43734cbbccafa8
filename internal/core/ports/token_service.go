package ports

// TokenService issues and verifies the signed, time-limited session tokens
// that prove a user identity on protected requests.
type TokenService interface {
	// Issue returns a signed token embedding the user id.
	Issue(userID string) (string, error)
	// Verify returns the user id carried by a valid token. Every failure
	// mode yields domain.ErrInvalidToken.
	Verify(token string) (string, error)
}
