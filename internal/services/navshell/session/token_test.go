package session

import (
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

var testKey = []byte("0123456789abcdef0123456789abcdef")

func fixedClock(at time.Time) func() time.Time {
	return func() time.Time { return at }
}

func TestNewTokenSignerRejectsShortKey(t *testing.T) {
	t.Parallel()

	if _, err := NewTokenSigner([]byte("short"), nil); err == nil {
		t.Fatal("expected short key error")
	}
}

func TestTokenRoundTrip(t *testing.T) {
	t.Parallel()

	now := time.Date(2026, time.March, 4, 8, 0, 0, 0, time.UTC)
	signer, err := NewTokenSigner(testKey, fixedClock(now))
	if err != nil {
		t.Fatalf("NewTokenSigner() error = %v", err)
	}
	token, err := signer.Issue("s1", "u1", now.Add(time.Hour))
	if err != nil {
		t.Fatalf("Issue() error = %v", err)
	}
	claims, err := signer.Parse(token)
	if err != nil {
		t.Fatalf("Parse() error = %v", err)
	}
	if claims.SessionID != "s1" || claims.UserID != "u1" {
		t.Fatalf("claims = %+v", claims)
	}
	if !claims.ExpiresAt.Equal(now.Add(time.Hour)) || !claims.IssuedAt.Equal(now) {
		t.Fatalf("claims times = %v/%v", claims.IssuedAt, claims.ExpiresAt)
	}
}

func TestTokenExpired(t *testing.T) {
	t.Parallel()

	now := time.Date(2026, time.March, 4, 8, 0, 0, 0, time.UTC)
	issuer, _ := NewTokenSigner(testKey, fixedClock(now))
	token, err := issuer.Issue("s1", "u1", now.Add(time.Minute))
	if err != nil {
		t.Fatalf("Issue() error = %v", err)
	}
	later, _ := NewTokenSigner(testKey, fixedClock(now.Add(time.Hour)))
	if _, err := later.Parse(token); !errors.Is(err, ErrExpired) {
		t.Fatalf("Parse() error = %v, want %v", err, ErrExpired)
	}
}

func TestTokenRejectsTampering(t *testing.T) {
	t.Parallel()

	now := time.Date(2026, time.March, 4, 8, 0, 0, 0, time.UTC)
	signer, _ := NewTokenSigner(testKey, fixedClock(now))
	token, _ := signer.Issue("s1", "u1", now.Add(time.Hour))

	other, _ := NewTokenSigner([]byte(strings.Repeat("x", 32)), fixedClock(now))
	if _, err := other.Parse(token); !errors.Is(err, ErrInvalidToken) {
		t.Fatalf("wrong key error = %v, want %v", err, ErrInvalidToken)
	}
	if _, err := signer.Parse(token + "x"); !errors.Is(err, ErrInvalidToken) {
		t.Fatalf("tampered error = %v, want %v", err, ErrInvalidToken)
	}
	if _, err := signer.Parse(" "); !errors.Is(err, ErrInvalidToken) {
		t.Fatalf("empty error = %v, want %v", err, ErrInvalidToken)
	}
}

func TestTokenRejectsForeignIssuerAndAlgorithm(t *testing.T) {
	t.Parallel()

	now := time.Date(2026, time.March, 4, 8, 0, 0, 0, time.UTC)
	signer, _ := NewTokenSigner(testKey, fixedClock(now))

	foreign := jwt.NewWithClaims(jwt.SigningMethodHS256, tokenClaims{
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:    "someone-else",
			Subject:   "u1",
			ExpiresAt: jwt.NewNumericDate(now.Add(time.Hour)),
		},
		SessionID: "s1",
	})
	signed, err := foreign.SignedString(testKey)
	if err != nil {
		t.Fatalf("sign foreign token: %v", err)
	}
	if _, err := signer.Parse(signed); !errors.Is(err, ErrInvalidToken) {
		t.Fatalf("foreign issuer error = %v, want %v", err, ErrInvalidToken)
	}

	unsigned := jwt.NewWithClaims(jwt.SigningMethodNone, tokenClaims{
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:    TokenIssuer,
			Subject:   "u1",
			ExpiresAt: jwt.NewNumericDate(now.Add(time.Hour)),
		},
		SessionID: "s1",
	})
	noneToken, err := unsigned.SignedString(jwt.UnsafeAllowNoneSignatureType)
	if err != nil {
		t.Fatalf("sign none token: %v", err)
	}
	if _, err := signer.Parse(noneToken); !errors.Is(err, ErrInvalidToken) {
		t.Fatalf("none alg error = %v, want %v", err, ErrInvalidToken)
	}
}

func TestIssueValidatesInput(t *testing.T) {
	t.Parallel()

	now := time.Date(2026, time.March, 4, 8, 0, 0, 0, time.UTC)
	signer, _ := NewTokenSigner(testKey, fixedClock(now))
	if _, err := signer.Issue("", "u1", now.Add(time.Hour)); err == nil {
		t.Fatal("expected missing session id error")
	}
	if _, err := signer.Issue("s1", "u1", now); err == nil {
		t.Fatal("expected past expiry error")
	}
}
