package session

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

const (
	// TokenIssuer is the iss claim of every session token.
	TokenIssuer = "navshell"
	// MinKeySize is the shortest accepted HMAC key, in bytes.
	MinKeySize = 32
)

// TokenClaims are the verified contents of a session cookie token.
type TokenClaims struct {
	SessionID string
	UserID    string
	IssuedAt  time.Time
	ExpiresAt time.Time
}

type tokenClaims struct {
	jwt.RegisteredClaims
	SessionID string `json:"sid"`
}

// TokenSigner issues and verifies HS256 session tokens.
type TokenSigner struct {
	key []byte
	now func() time.Time
}

// NewTokenSigner returns a signer for key. A nil now uses time.Now.
func NewTokenSigner(key []byte, now func() time.Time) (*TokenSigner, error) {
	if len(key) < MinKeySize {
		return nil, fmt.Errorf("session key must be at least %d bytes", MinKeySize)
	}
	if now == nil {
		now = time.Now
	}
	copied := make([]byte, len(key))
	copy(copied, key)
	return &TokenSigner{key: copied, now: now}, nil
}

// Issue signs a token binding sessionID to userID until expiresAt.
func (s *TokenSigner) Issue(sessionID, userID string, expiresAt time.Time) (string, error) {
	sessionID = strings.TrimSpace(sessionID)
	userID = strings.TrimSpace(userID)
	if sessionID == "" || userID == "" {
		return "", fmt.Errorf("session id and user id are required")
	}
	issuedAt := s.now().UTC()
	if !expiresAt.After(issuedAt) {
		return "", fmt.Errorf("session expiry must be in the future")
	}
	claims := tokenClaims{
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:    TokenIssuer,
			Subject:   userID,
			IssuedAt:  jwt.NewNumericDate(issuedAt),
			ExpiresAt: jwt.NewNumericDate(expiresAt.UTC()),
		},
		SessionID: sessionID,
	}
	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(s.key)
	if err != nil {
		return "", fmt.Errorf("sign session token: %w", err)
	}
	return signed, nil
}

// Parse verifies token and returns its claims. Expired tokens return
// ErrExpired; every other failure wraps ErrInvalidToken.
func (s *TokenSigner) Parse(token string) (TokenClaims, error) {
	token = strings.TrimSpace(token)
	if token == "" {
		return TokenClaims{}, ErrInvalidToken
	}
	var parsed tokenClaims
	_, err := jwt.ParseWithClaims(token, &parsed, func(*jwt.Token) (any, error) {
		return s.key, nil
	},
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithIssuer(TokenIssuer),
		jwt.WithExpirationRequired(),
		jwt.WithIssuedAt(),
		jwt.WithTimeFunc(s.now),
	)
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return TokenClaims{}, ErrExpired
		}
		return TokenClaims{}, fmt.Errorf("%w: %v", ErrInvalidToken, err)
	}
	if strings.TrimSpace(parsed.SessionID) == "" || strings.TrimSpace(parsed.Subject) == "" {
		return TokenClaims{}, fmt.Errorf("%w: missing sid or sub", ErrInvalidToken)
	}
	claims := TokenClaims{
		SessionID: parsed.SessionID,
		UserID:    parsed.Subject,
		ExpiresAt: parsed.ExpiresAt.Time.UTC(),
	}
	if parsed.IssuedAt != nil {
		claims.IssuedAt = parsed.IssuedAt.Time.UTC()
	}
	return claims, nil
}
