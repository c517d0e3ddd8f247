// Package storage defines persistence contracts for navshell users and web
// sessions.
package storage

import (
	"context"
	"errors"
	"time"
)

var (
	// ErrNotFound indicates a missing record.
	ErrNotFound = errors.New("record not found")
	// ErrAlreadyExists indicates a uniqueness conflict, such as a taken username.
	ErrAlreadyExists = errors.New("record already exists")
)

// User is one registered account.
type User struct {
	ID          string
	Username    string
	DisplayName string
	AvatarURL   string
	CreatedAt   time.Time
}

// WebSession is one issued browser session joined with its owner.
type WebSession struct {
	ID        string
	UserID    string
	CreatedAt time.Time
	ExpiresAt time.Time
	RevokedAt *time.Time
	User      User
}

// UserStore persists accounts.
type UserStore interface {
	CreateUser(ctx context.Context, user User) error
	GetUser(ctx context.Context, userID string) (User, error)
	GetUserByUsername(ctx context.Context, username string) (User, error)
}

// WebSessionStore persists browser sessions.
type WebSessionStore interface {
	CreateWebSession(ctx context.Context, session WebSession) error
	GetWebSession(ctx context.Context, sessionID string) (WebSession, error)
	RevokeWebSession(ctx context.Context, sessionID string, revokedAt time.Time) error
	DeleteExpiredWebSessions(ctx context.Context, now time.Time) (int64, error)
}

// Store is the full navshell persistence surface.
type Store interface {
	UserStore
	WebSessionStore
	Close() error
}
