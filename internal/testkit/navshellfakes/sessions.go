package navshellfakes

import (
	"bytes"
	"context"
	"log"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/louisbranch/navshell/internal/services/navshell/session"
	"github.com/louisbranch/navshell/internal/services/navshell/storage"
)

// SessionKey is a fixed HMAC key for test token signers.
var SessionKey = []byte("navshell-test-key-0123456789abcdef")

// Sessions bundles a session manager with its fake store.
type Sessions struct {
	Manager *session.Manager
	Store   *Store
	Hub     *session.Hub
	Logs    *bytes.Buffer
}

// NewSessions builds a session manager over an in-memory store.
func NewSessions(t *testing.T) *Sessions {
	t.Helper()

	signer, err := session.NewTokenSigner(SessionKey, nil)
	if err != nil {
		t.Fatalf("new token signer: %v", err)
	}
	store := NewStore()
	hub := session.NewHub()
	logs := &bytes.Buffer{}
	manager, err := session.NewManager(session.ManagerConfig{
		Store:  store,
		Signer: signer,
		Hub:    hub,
		Logger: log.New(logs, "", 0),
	})
	if err != nil {
		t.Fatalf("new session manager: %v", err)
	}
	return &Sessions{Manager: manager, Store: store, Hub: hub, Logs: logs}
}

// SeedUser stores a user with the given id and username.
func (s *Sessions) SeedUser(t *testing.T, id, username, displayName string) storage.User {
	t.Helper()

	user := storage.User{
		ID:          id,
		Username:    username,
		DisplayName: displayName,
		CreatedAt:   time.Date(2026, time.January, 2, 0, 0, 0, 0, time.UTC),
	}
	if err := s.Store.CreateUser(context.Background(), user); err != nil {
		t.Fatalf("seed user %s: %v", username, err)
	}
	return user
}

// SignIn creates a session for user and returns its cookies.
func (s *Sessions) SignIn(t *testing.T, user storage.User) (session.Session, []*http.Cookie) {
	t.Helper()

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/login", nil)
	sess, err := s.Manager.SignIn(context.Background(), rec, req, user)
	if err != nil {
		t.Fatalf("sign in %s: %v", user.Username, err)
	}
	return sess, rec.Result().Cookies()
}

// WithCookies adds cookies to req and returns it.
func WithCookies(req *http.Request, cookies []*http.Cookie) *http.Request {
	for _, cookie := range cookies {
		req.AddCookie(cookie)
	}
	return req
}
