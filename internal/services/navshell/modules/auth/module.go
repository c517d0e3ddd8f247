// Package auth serves the development sign-in, registration and sign-out
// routes. It holds no credentials: knowing a username is enough to sign in.
package auth

import (
	module "github.com/louisbranch/navshell/internal/services/navshell/module"
)

// Module provides auth routes.
type Module struct{}

// New returns an auth module.
func New() Module { return Module{} }

// ID returns a stable module identifier.
func (Module) ID() string { return "auth" }

// Mount wires auth route handlers.
func (Module) Mount(deps module.Dependencies) (module.Mount, error) {
	var mount module.Mount
	registerRoutes(&mount, newHandlers(deps))
	return mount, nil
}
