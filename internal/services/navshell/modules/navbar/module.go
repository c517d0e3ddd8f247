// Package navbar serves the navigation bar fragments and the session event
// stream that keeps open pages in sync with sign-out.
package navbar

import (
	module "github.com/louisbranch/navshell/internal/services/navshell/module"
)

// Module provides navbar fragment routes.
type Module struct{}

// New returns a navbar module.
func New() Module { return Module{} }

// ID returns a stable module identifier.
func (Module) ID() string { return "navbar" }

// Mount wires navbar route handlers.
func (Module) Mount(deps module.Dependencies) (module.Mount, error) {
	var mount module.Mount
	registerRoutes(&mount, newHandlers(deps))
	return mount, nil
}
