// Package pages serves the public landing and profile pages.
package pages

import (
	module "github.com/louisbranch/navshell/internal/services/navshell/module"
)

// Module provides public page routes.
type Module struct{}

// New returns a pages module.
func New() Module { return Module{} }

// ID returns a stable module identifier.
func (Module) ID() string { return "pages" }

// Mount wires page route handlers.
func (Module) Mount(deps module.Dependencies) (module.Mount, error) {
	var mount module.Mount
	registerRoutes(&mount, newHandlers(deps))
	return mount, nil
}
