// Package account serves the signed-in drafts and settings pages.
package account

import (
	module "github.com/louisbranch/navshell/internal/services/navshell/module"
)

// Module provides authenticated account routes.
type Module struct{}

// New returns an account module.
func New() Module { return Module{} }

// ID returns a stable module identifier.
func (Module) ID() string { return "account" }

// Mount wires account route handlers.
func (Module) Mount(deps module.Dependencies) (module.Mount, error) {
	var mount module.Mount
	registerRoutes(&mount, newHandlers(deps))
	return mount, nil
}
