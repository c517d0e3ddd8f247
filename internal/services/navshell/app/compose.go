// Package app composes navshell feature modules into one root handler.
package app

import (
	"fmt"
	"net/http"
	"strings"

	module "github.com/louisbranch/navshell/internal/services/navshell/module"
	"github.com/louisbranch/navshell/internal/services/navshell/platform/httpx"
	"github.com/louisbranch/navshell/internal/services/navshell/platform/requestmeta"
	"github.com/louisbranch/navshell/internal/services/navshell/platform/sessioncookie"
	"github.com/louisbranch/navshell/internal/services/navshell/routepath"
)

// ComposeInput carries module groups and shared composition contracts.
type ComposeInput struct {
	Dependencies     module.Dependencies
	AuthRequired     func(*http.Request) bool
	PublicModules    []module.Module
	ProtectedModules []module.Module
	// NotFound serves requests no module route matches.
	NotFound http.Handler
}

// Composer wires module routes onto a root mux with route-group auth behavior.
type Composer struct{}

// Compose builds a root HTTP handler from module groups.
func (Composer) Compose(input ComposeInput) (http.Handler, error) {
	root := http.NewServeMux()
	authenticated := input.AuthRequired
	if authenticated == nil {
		authenticated = func(*http.Request) bool { return false }
	}
	seen := make(map[string]string)
	sameOrigin := requireCookieSessionSameOrigin(input.Dependencies)

	for _, feature := range input.PublicModules {
		if feature == nil {
			return nil, fmt.Errorf("public module is nil")
		}
		if err := mountModule(root, feature, input.Dependencies, seen, sameOrigin); err != nil {
			return nil, err
		}
	}

	protect := requireAuth(authenticated)
	for _, feature := range input.ProtectedModules {
		if feature == nil {
			return nil, fmt.Errorf("protected module is nil")
		}
		wrap := func(next http.Handler) http.Handler { return protect(sameOrigin(next)) }
		if err := mountModule(root, feature, input.Dependencies, seen, wrap); err != nil {
			return nil, err
		}
	}

	if input.NotFound != nil {
		if owner, ok := seen[routepath.Root]; ok {
			return nil, fmt.Errorf("not found handler conflicts with %q owned by module %q", routepath.Root, owner)
		}
		root.Handle(routepath.Root, input.NotFound)
	}
	return root, nil
}

func mountModule(
	root *http.ServeMux,
	feature module.Module,
	deps module.Dependencies,
	seen map[string]string,
	wrap func(http.Handler) http.Handler,
) error {
	mount, err := feature.Mount(deps)
	if err != nil {
		return fmt.Errorf("mount module %q: %w", feature.ID(), err)
	}
	if len(mount.Routes) == 0 {
		return fmt.Errorf("mount module %q: at least one route is required", feature.ID())
	}
	for _, route := range mount.Routes {
		pattern := strings.TrimSpace(route.Pattern)
		if pattern == "" {
			return fmt.Errorf("mount module %q: route pattern is required", feature.ID())
		}
		if route.Handler == nil {
			return fmt.Errorf("mount module %q: handler is required for %q", feature.ID(), pattern)
		}
		if previous, ok := seen[pattern]; ok {
			return fmt.Errorf("module %q duplicates route %q owned by module %q", feature.ID(), pattern, previous)
		}
		seen[pattern] = feature.ID()

		handler := route.Handler
		if wrap != nil {
			handler = wrap(handler)
		}
		root.Handle(pattern, handler)
	}
	return nil
}

func requireAuth(authenticated func(*http.Request) bool) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		if next == nil {
			return http.NotFoundHandler()
		}
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if !authenticated(r) {
				httpx.WriteRedirect(w, r, routepath.LoginWithNext(r.URL.RequestURI()))
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}

func requireCookieSessionSameOrigin(deps module.Dependencies) func(http.Handler) http.Handler {
	var policy requestmeta.SchemePolicy
	if deps.Sessions != nil {
		policy = deps.Sessions.SchemePolicy()
	}
	return func(next http.Handler) http.Handler {
		if next == nil {
			next = http.NotFoundHandler()
		}
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if !isMutationMethod(r) || !hasSessionCookie(r) {
				next.ServeHTTP(w, r)
				return
			}
			if !policy.HasSameOriginProof(r) {
				http.Error(w, http.StatusText(http.StatusForbidden), http.StatusForbidden)
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}

func isMutationMethod(r *http.Request) bool {
	if r == nil {
		return false
	}
	switch r.Method {
	case http.MethodPost, http.MethodPut, http.MethodPatch, http.MethodDelete:
		return true
	default:
		return false
	}
}

func hasSessionCookie(r *http.Request) bool {
	_, ok := sessioncookie.Read(r)
	return ok
}
