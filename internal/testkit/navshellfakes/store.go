// Package navshellfakes provides in-memory navshell collaborators for tests.
package navshellfakes

import (
	"context"
	"strings"
	"sync"
	"time"

	"github.com/louisbranch/navshell/internal/services/navshell/storage"
)

// Store is an in-memory storage.Store fake. The Err fields force failures.
type Store struct {
	mu       sync.Mutex
	users    map[string]storage.User
	sessions map[string]storage.WebSession

	GetSessionErr error
	RevokeErr     error
	CreateUserErr error
}

// NewStore constructs a Store with initialized state maps.
func NewStore() *Store {
	return &Store{
		users:    make(map[string]storage.User),
		sessions: make(map[string]storage.WebSession),
	}
}

func (s *Store) CreateUser(_ context.Context, user storage.User) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.CreateUserErr != nil {
		return s.CreateUserErr
	}
	if _, ok := s.users[user.ID]; ok {
		return storage.ErrAlreadyExists
	}
	for _, existing := range s.users {
		if strings.EqualFold(existing.Username, user.Username) {
			return storage.ErrAlreadyExists
		}
	}
	s.users[user.ID] = user
	return nil
}

func (s *Store) GetUser(_ context.Context, userID string) (storage.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	user, ok := s.users[userID]
	if !ok {
		return storage.User{}, storage.ErrNotFound
	}
	return user, nil
}

func (s *Store) GetUserByUsername(_ context.Context, username string) (storage.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, user := range s.users {
		if strings.EqualFold(user.Username, strings.TrimSpace(username)) {
			return user, nil
		}
	}
	return storage.User{}, storage.ErrNotFound
}

// PutUser stores user without validation, for seeding malformed records.
func (s *Store) PutUser(user storage.User) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.users[user.ID] = user
}

func (s *Store) CreateWebSession(_ context.Context, session storage.WebSession) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.users[session.UserID]; !ok {
		return storage.ErrNotFound
	}
	if _, ok := s.sessions[session.ID]; ok {
		return storage.ErrAlreadyExists
	}
	s.sessions[session.ID] = session
	return nil
}

func (s *Store) GetWebSession(_ context.Context, sessionID string) (storage.WebSession, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.GetSessionErr != nil {
		return storage.WebSession{}, s.GetSessionErr
	}
	session, ok := s.sessions[sessionID]
	if !ok {
		return storage.WebSession{}, storage.ErrNotFound
	}
	session.User = s.users[session.UserID]
	return session, nil
}

func (s *Store) RevokeWebSession(_ context.Context, sessionID string, revokedAt time.Time) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.RevokeErr != nil {
		return s.RevokeErr
	}
	session, ok := s.sessions[sessionID]
	if !ok {
		return storage.ErrNotFound
	}
	at := revokedAt.UTC()
	session.RevokedAt = &at
	s.sessions[sessionID] = session
	return nil
}

func (s *Store) DeleteExpiredWebSessions(_ context.Context, now time.Time) (int64, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	var deleted int64
	for id, session := range s.sessions {
		if !now.Before(session.ExpiresAt) {
			delete(s.sessions, id)
			deleted++
		}
	}
	return deleted, nil
}

// Revoked reports whether sessionID has been revoked.
func (s *Store) Revoked(sessionID string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	session, ok := s.sessions[sessionID]
	return ok && session.RevokedAt != nil
}

func (s *Store) Close() error { return nil }

var _ storage.Store = (*Store)(nil)
