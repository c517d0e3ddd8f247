// Package session resolves the authenticated viewer for a request and owns the
// session lifecycle behind the navshell cookie.
package session

import (
	"errors"
	"strings"
	"time"
)

var (
	// ErrMalformedSession reports a present session missing identity fields.
	ErrMalformedSession = errors.New("session is malformed")
	// ErrNotFound reports an unknown session id.
	ErrNotFound = errors.New("session not found")
	// ErrInvalidToken reports a cookie token that failed verification.
	ErrInvalidToken = errors.New("session token is invalid")
	// ErrExpired reports a session past its expiry.
	ErrExpired = errors.New("session expired")
	// ErrRevoked reports a signed-out session.
	ErrRevoked = errors.New("session revoked")
)

// Status is the readiness of the session provider for one request.
type Status int

const (
	// StatusLoading means the provider could not settle the session yet
	// (for example the store was unavailable). Consumers render signed-out.
	StatusLoading Status = iota
	// StatusReady means the provider answered, with or without a session.
	StatusReady
)

// String returns the status name used in markup and logs.
func (s Status) String() string {
	if s == StatusReady {
		return "ready"
	}
	return "loading"
}

// Session is the authenticated identity visible to page rendering.
type Session struct {
	ID          string
	UserID      string
	Username    string
	DisplayName string
	AvatarURL   string
	ExpiresAt   time.Time
}

// Validate reports ErrMalformedSession when required identity fields are missing.
func (s Session) Validate() error {
	if strings.TrimSpace(s.UserID) == "" || strings.TrimSpace(s.Username) == "" {
		return ErrMalformedSession
	}
	return nil
}

// ProfileUsername returns the username used to build the profile route.
func (s Session) ProfileUsername() (string, error) {
	username := strings.TrimSpace(s.Username)
	if username == "" {
		return "", ErrMalformedSession
	}
	return username, nil
}

// Label returns the best human label for the session owner.
func (s Session) Label() string {
	if name := strings.TrimSpace(s.DisplayName); name != "" {
		return name
	}
	return strings.TrimSpace(s.Username)
}

// State is one provider answer: readiness plus the optional session.
type State struct {
	Status  Status
	Session *Session
}

// Present reports whether a session exists, malformed or not.
func (s State) Present() bool {
	return s.Session != nil
}

// SignedOut returns a ready state without a session.
func SignedOut() State {
	return State{Status: StatusReady}
}

// SignedIn returns a ready state for sess.
func SignedIn(sess Session) State {
	return State{Status: StatusReady, Session: &sess}
}
