package service

import (
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/ticklist/todo-api/internal/core/domain"
)

const defaultTokenTTL = 5 * time.Hour

// TokenService issues and verifies HS256-signed session tokens. The user
// identity travels as a nested {"user":{"id":...}} claim, which is the wire
// contract the client relies on.
type TokenService struct {
	secret []byte
	ttl    time.Duration
}

func NewTokenService(secret string, ttl time.Duration) *TokenService {
	if ttl <= 0 {
		ttl = defaultTokenTTL
	}
	return &TokenService{secret: []byte(secret), ttl: ttl}
}

// Issue returns a signed token for the given user id, valid for the
// configured TTL from now.
func (s *TokenService) Issue(userID string) (string, error) {
	now := time.Now().UTC()
	claims := jwt.MapClaims{
		"user": map[string]any{"id": userID},
		"iat":  now.Unix(),
		"exp":  now.Add(s.ttl).Unix(),
	}

	t := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return t.SignedString(s.secret)
}

// Verify parses and validates a token and returns the embedded user id.
// Malformed tokens, wrong signatures, and expired tokens all collapse to
// domain.ErrInvalidToken so callers cannot tell the causes apart.
func (s *TokenService) Verify(token string) (string, error) {
	claims := jwt.MapClaims{}
	parsed, err := jwt.ParseWithClaims(token, claims, func(t *jwt.Token) (interface{}, error) {
		if t.Method.Alg() != jwt.SigningMethodHS256.Alg() {
			return nil, jwt.ErrTokenSignatureInvalid
		}
		return s.secret, nil
	})
	if err != nil || !parsed.Valid {
		return "", domain.ErrInvalidToken
	}

	user, ok := claims["user"].(map[string]any)
	if !ok {
		return "", domain.ErrInvalidToken
	}
	id, ok := user["id"].(string)
	if !ok || id == "" {
		return "", domain.ErrInvalidToken
	}
	return id, nil
}
