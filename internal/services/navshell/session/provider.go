package session

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net/http"
	"strings"
	"sync"
	"time"

	"github.com/louisbranch/navshell/internal/platform/id"
	"github.com/louisbranch/navshell/internal/platform/timeouts"
	"github.com/louisbranch/navshell/internal/services/navshell/platform/httpx"
	"github.com/louisbranch/navshell/internal/services/navshell/platform/requestmeta"
	"github.com/louisbranch/navshell/internal/services/navshell/platform/sessioncookie"
	"github.com/louisbranch/navshell/internal/services/navshell/storage"
)

// DefaultTTL is the session lifetime when none is configured.
const DefaultTTL = 30 * 24 * time.Hour

// Provider answers who is signed in and ends sessions.
type Provider interface {
	// Resolve returns the session state for r. It never fails: errors degrade
	// to a signed-out or loading state.
	Resolve(r *http.Request) State
	// SignOut revokes the request's session. On failure the session remains
	// and the error is returned after logging.
	SignOut(ctx context.Context, w http.ResponseWriter, r *http.Request) error
}

// Store is the persistence the manager needs.
type Store interface {
	storage.UserStore
	storage.WebSessionStore
}

// ManagerConfig wires a Manager.
type ManagerConfig struct {
	Store        Store
	Signer       *TokenSigner
	Hub          *Hub
	TTL          time.Duration
	Now          func() time.Time
	SchemePolicy requestmeta.SchemePolicy
	Logger       *log.Logger
	NewID        func() (string, error)
}

// Manager is the cookie-backed Provider.
type Manager struct {
	store  Store
	signer *TokenSigner
	hub    *Hub
	ttl    time.Duration
	now    func() time.Time
	policy requestmeta.SchemePolicy
	logger *log.Logger
	newID  func() (string, error)
}

// NewManager validates cfg and returns a Manager.
func NewManager(cfg ManagerConfig) (*Manager, error) {
	if cfg.Store == nil {
		return nil, fmt.Errorf("session store is required")
	}
	if cfg.Signer == nil {
		return nil, fmt.Errorf("session token signer is required")
	}
	m := &Manager{
		store:  cfg.Store,
		signer: cfg.Signer,
		hub:    cfg.Hub,
		ttl:    cfg.TTL,
		now:    cfg.Now,
		policy: cfg.SchemePolicy,
		logger: cfg.Logger,
		newID:  cfg.NewID,
	}
	if m.ttl <= 0 {
		m.ttl = DefaultTTL
	}
	if m.now == nil {
		m.now = time.Now
	}
	if m.logger == nil {
		m.logger = log.Default()
	}
	if m.newID == nil {
		m.newID = id.NewID
	}
	return m, nil
}

// Hub returns the manager's event hub, which may be nil.
func (m *Manager) Hub() *Hub {
	return m.hub
}

// SchemePolicy returns the scheme policy used for cookies.
func (m *Manager) SchemePolicy() requestmeta.SchemePolicy {
	return m.policy
}

// Resolve returns the session state for r, reusing the per-request answer when
// the Cache middleware is installed.
func (m *Manager) Resolve(r *http.Request) State {
	if r == nil {
		return SignedOut()
	}
	if cached, ok := r.Context().Value(cacheKey{}).(*requestCache); ok && cached != nil {
		cached.once.Do(func() {
			cached.state = m.resolve(r)
		})
		return cached.state
	}
	return m.resolve(r)
}

func (m *Manager) resolve(r *http.Request) State {
	token, ok := sessioncookie.Read(r)
	if !ok {
		return SignedOut()
	}
	claims, err := m.signer.Parse(token)
	if err != nil {
		m.logf(r, "session token rejected err=%v", err)
		return SignedOut()
	}

	ctx, cancel := context.WithTimeout(r.Context(), timeouts.SessionLookup)
	defer cancel()
	record, err := m.store.GetWebSession(ctx, claims.SessionID)
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			return SignedOut()
		}
		m.logf(r, "session lookup failed session_id=%s err=%v", claims.SessionID, err)
		return State{Status: StatusLoading}
	}
	if err := m.check(record, claims); err != nil {
		return SignedOut()
	}

	sess := Session{
		ID:          record.ID,
		UserID:      record.UserID,
		Username:    record.User.Username,
		DisplayName: record.User.DisplayName,
		AvatarURL:   record.User.AvatarURL,
		ExpiresAt:   record.ExpiresAt,
	}
	if err := sess.Validate(); err != nil {
		m.logf(r, "session malformed session_id=%s err=%v", sess.ID, err)
	}
	return SignedIn(sess)
}

func (m *Manager) check(record storage.WebSession, claims TokenClaims) error {
	switch {
	case record.RevokedAt != nil:
		return ErrRevoked
	case !m.now().Before(record.ExpiresAt):
		return ErrExpired
	case record.UserID != claims.UserID:
		return ErrInvalidToken
	default:
		return nil
	}
}

// SignIn creates a session for user and writes the session cookie.
func (m *Manager) SignIn(ctx context.Context, w http.ResponseWriter, r *http.Request, user storage.User) (Session, error) {
	if strings.TrimSpace(user.ID) == "" {
		return Session{}, fmt.Errorf("user id is required")
	}
	sessionID, err := m.newID()
	if err != nil {
		return Session{}, fmt.Errorf("generate session id: %w", err)
	}
	now := m.now().UTC()
	expiresAt := now.Add(m.ttl)
	if err := m.store.CreateWebSession(ctx, storage.WebSession{
		ID:        sessionID,
		UserID:    user.ID,
		CreatedAt: now,
		ExpiresAt: expiresAt,
	}); err != nil {
		return Session{}, fmt.Errorf("create web session: %w", err)
	}
	token, err := m.signer.Issue(sessionID, user.ID, expiresAt)
	if err != nil {
		return Session{}, err
	}
	sessioncookie.Write(w, r, m.policy, token, expiresAt)
	return Session{
		ID:          sessionID,
		UserID:      user.ID,
		Username:    user.Username,
		DisplayName: user.DisplayName,
		AvatarURL:   user.AvatarURL,
		ExpiresAt:   expiresAt,
	}, nil
}

// SignOut revokes the request's session, clears the cookie and notifies
// subscribers. Without a valid session it only clears the cookie. When the
// revocation fails the cookie is kept so the session stays usable.
func (m *Manager) SignOut(ctx context.Context, w http.ResponseWriter, r *http.Request) error {
	token, ok := sessioncookie.Read(r)
	if !ok {
		return nil
	}
	claims, err := m.signer.Parse(token)
	if err != nil {
		sessioncookie.Clear(w, r, m.policy)
		return nil
	}
	if err := m.store.RevokeWebSession(ctx, claims.SessionID, m.now()); err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			sessioncookie.Clear(w, r, m.policy)
			return nil
		}
		m.logf(r, "sign out failed session_id=%s err=%v", claims.SessionID, err)
		return fmt.Errorf("revoke web session: %w", err)
	}
	sessioncookie.Clear(w, r, m.policy)
	if m.hub != nil {
		m.hub.Publish(Event{Kind: EventSignedOut, SessionID: claims.SessionID, At: m.now().UTC()})
	}
	return nil
}

// Reap deletes expired sessions every interval until ctx ends.
func (m *Manager) Reap(ctx context.Context, interval time.Duration) {
	if interval <= 0 {
		interval = time.Hour
	}
	ticker := time.NewTicker(interval)
	defer ticker.Stop()
	for {
		m.reapOnce(ctx)
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
		}
	}
}

func (m *Manager) reapOnce(ctx context.Context) {
	deleted, err := m.store.DeleteExpiredWebSessions(ctx, m.now())
	if err != nil {
		if ctx.Err() == nil {
			m.logger.Printf("session reap failed err=%v", err)
		}
		return
	}
	if deleted > 0 {
		m.logger.Printf("session reap deleted=%d", deleted)
	}
}

func (m *Manager) logf(r *http.Request, format string, args ...any) {
	requestID := "-"
	if r != nil {
		requestID = httpx.RequestIDFromContext(r.Context())
	}
	m.logger.Printf(format+" request_id=%s", append(args, requestID)...)
}

type cacheKey struct{}

type requestCache struct {
	once  sync.Once
	state State
}

// Cache installs a per-request slot so every Resolve call during one request
// shares a single store lookup.
func Cache(next http.Handler) http.Handler {
	if next == nil {
		next = http.NotFoundHandler()
	}
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ctx := context.WithValue(r.Context(), cacheKey{}, &requestCache{})
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// SessionID returns the session id carried by the request cookie without
// consulting the store.
func (m *Manager) SessionID(r *http.Request) (string, bool) {
	token, ok := sessioncookie.Read(r)
	if !ok {
		return "", false
	}
	claims, err := m.signer.Parse(token)
	if err != nil {
		return "", false
	}
	return claims.SessionID, true
}

var _ Provider = (*Manager)(nil)
