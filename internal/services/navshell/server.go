// Package navshell hosts the browser-facing navigation shell service.
package navshell

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net/http"
	"strings"
	"time"

	"go.opentelemetry.io/otel/trace"

	"github.com/louisbranch/navshell/internal/platform/timeouts"
	navapp "github.com/louisbranch/navshell/internal/services/navshell/app"
	module "github.com/louisbranch/navshell/internal/services/navshell/module"
	"github.com/louisbranch/navshell/internal/services/navshell/modules"
	"github.com/louisbranch/navshell/internal/services/navshell/platform/avatar"
	"github.com/louisbranch/navshell/internal/services/navshell/platform/httpx"
	"github.com/louisbranch/navshell/internal/services/navshell/platform/observability"
	"github.com/louisbranch/navshell/internal/services/navshell/platform/requestmeta"
	"github.com/louisbranch/navshell/internal/services/navshell/platform/viewport"
	"github.com/louisbranch/navshell/internal/services/navshell/platform/weberror"
	"github.com/louisbranch/navshell/internal/services/navshell/routepath"
	"github.com/louisbranch/navshell/internal/services/navshell/session"
	navstatic "github.com/louisbranch/navshell/internal/services/navshell/static"
	"github.com/louisbranch/navshell/internal/services/navshell/storage"
)

// DefaultReapInterval is how often expired sessions are deleted.
const DefaultReapInterval = time.Hour

// Config defines startup inputs for the navshell service.
type Config struct {
	HTTPAddr            string
	AssetBaseURL        string
	Store               storage.Store
	SessionKey          []byte
	SessionTTL          time.Duration
	TrustForwardedProto bool
	ReapInterval        time.Duration
	TracerProvider      trace.TracerProvider
	Logger              *log.Logger
}

// Server hosts the navshell HTTP surface and lifecycle.
type Server struct {
	httpAddr     string
	httpServer   *http.Server
	sessions     *session.Manager
	reapInterval time.Duration
}

// NewHandler builds the root handler from the default module registry.
func NewHandler(cfg Config) (http.Handler, error) {
	handler, _, err := newHandler(cfg)
	return handler, err
}

func newHandler(cfg Config) (http.Handler, *session.Manager, error) {
	if cfg.Store == nil {
		return nil, nil, errors.New("store is required")
	}
	logger := cfg.Logger
	if logger == nil {
		logger = log.Default()
	}
	signer, err := session.NewTokenSigner(cfg.SessionKey, nil)
	if err != nil {
		return nil, nil, fmt.Errorf("session signer: %w", err)
	}
	sessions, err := session.NewManager(session.ManagerConfig{
		Store:        cfg.Store,
		Signer:       signer,
		Hub:          session.NewHub(),
		TTL:          cfg.SessionTTL,
		SchemePolicy: requestmeta.SchemePolicy{TrustForwardedProto: cfg.TrustForwardedProto},
		Logger:       logger,
	})
	if err != nil {
		return nil, nil, fmt.Errorf("session manager: %w", err)
	}

	deps := module.Dependencies{
		Sessions: sessions,
		Users:    cfg.Store,
		Avatar:   avatar.Resolver{AssetBaseURL: cfg.AssetBaseURL},
		Logger:   logger,
	}
	h, err := navapp.BuildRootHandler(navapp.Config{
		Dependencies:     deps,
		PublicModules:    modules.DefaultPublicModules(),
		ProtectedModules: modules.DefaultProtectedModules(),
		NotFound:         weberror.NotFound(deps),
	}, func(r *http.Request) bool {
		return sessions.Resolve(r).Session != nil
	})
	if err != nil {
		return nil, nil, err
	}

	rootMux := http.NewServeMux()
	rootMux.Handle(http.MethodGet+" "+routepath.StaticPrefix, staticHandler())
	rootMux.HandleFunc(http.MethodGet+" "+routepath.Health, func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("OK"))
	})
	rootMux.Handle(routepath.Root, h)
	return httpx.Chain(rootMux,
		httpx.RecoverPanic(),
		httpx.RequestID(),
		observability.Trace(cfg.TracerProvider),
		observability.RequestLogger(logger),
		session.Cache,
		advertiseViewportHints(),
	), sessions, nil
}

func staticHandler() http.Handler {
	files := http.StripPrefix(routepath.StaticPrefix, http.FileServer(http.FS(navstatic.FS)))
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Cache-Control", "public, max-age=3600")
		files.ServeHTTP(w, r)
	})
}

func advertiseViewportHints() httpx.Middleware {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			viewport.AdvertiseHints(w)
			next.ServeHTTP(w, r)
		})
	}
}

// NewServer validates config and constructs a navshell server.
func NewServer(_ context.Context, cfg Config) (*Server, error) {
	httpAddr := strings.TrimSpace(cfg.HTTPAddr)
	if httpAddr == "" {
		return nil, errors.New("http address is required")
	}
	handler, sessions, err := newHandler(cfg)
	if err != nil {
		return nil, fmt.Errorf("compose navshell handler: %w", err)
	}
	reapInterval := cfg.ReapInterval
	if reapInterval <= 0 {
		reapInterval = DefaultReapInterval
	}
	return &Server{
		httpAddr: httpAddr,
		httpServer: &http.Server{
			Addr:              httpAddr,
			Handler:           handler,
			ReadHeaderTimeout: timeouts.ReadHeader,
		},
		sessions:     sessions,
		reapInterval: reapInterval,
	}, nil
}

// ListenAndServe serves HTTP traffic until context cancellation or server stop.
func (s *Server) ListenAndServe(ctx context.Context) error {
	if s == nil {
		return errors.New("navshell server is nil")
	}
	if ctx == nil {
		return errors.New("context is required")
	}

	reapCtx, stopReap := context.WithCancel(ctx)
	defer stopReap()
	go s.sessions.Reap(reapCtx, s.reapInterval)

	serveErr := make(chan error, 1)
	go func() {
		serveErr <- s.httpServer.ListenAndServe()
	}()

	select {
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), timeouts.Shutdown)
		err := s.httpServer.Shutdown(shutdownCtx)
		cancel()
		if err != nil {
			return fmt.Errorf("shutdown navshell http server: %w", err)
		}
		return nil
	case err := <-serveErr:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return fmt.Errorf("serve navshell http: %w", err)
	}
}

// Close closes open server resources.
func (s *Server) Close() {
	if s == nil || s.httpServer == nil {
		return
	}
	_ = s.httpServer.Close()
}
