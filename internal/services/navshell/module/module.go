// Package module defines the contract navshell feature modules implement.
package module

import (
	"log"
	"net/http"

	"github.com/louisbranch/navshell/internal/services/navshell/platform/avatar"
	"github.com/louisbranch/navshell/internal/services/navshell/platform/httpx"
	"github.com/louisbranch/navshell/internal/services/navshell/session"
	"github.com/louisbranch/navshell/internal/services/navshell/storage"
)

// Dependencies carries shared collaborators into module mounts.
type Dependencies struct {
	Sessions *session.Manager
	Users    storage.UserStore
	Avatar   avatar.Resolver
	Logger   *log.Logger
}

// Route is one method and path pattern a module serves.
type Route struct {
	Pattern string
	Handler http.Handler
}

// Mount is a module's routing contribution. Patterns are registered on the
// root mux as given, so modules may own root-level wildcards.
type Mount struct {
	Routes []Route
}

// Module is one mountable feature.
type Module interface {
	ID() string
	Mount(Dependencies) (Mount, error)
}

// Handle appends a route to m.
func (m *Mount) Handle(pattern string, handler http.Handler) {
	m.Routes = append(m.Routes, Route{Pattern: pattern, Handler: handler})
}

// HandleFunc appends a handler function route to m.
func (m *Mount) HandleFunc(pattern string, handler http.HandlerFunc) {
	m.Handle(pattern, handler)
}

// Logf logs one line tagged with the request id of r.
func (d Dependencies) Logf(r *http.Request, format string, args ...any) {
	logger := d.Logger
	if logger == nil {
		logger = log.Default()
	}
	logger.Printf(format+" request_id=%s", append(args, httpx.RequestIDFromContext(httpx.RequestContext(r)))...)
}
