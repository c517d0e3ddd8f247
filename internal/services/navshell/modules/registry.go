// Package modules lists the navshell feature modules.
package modules

import (
	module "github.com/louisbranch/navshell/internal/services/navshell/module"
	"github.com/louisbranch/navshell/internal/services/navshell/modules/account"
	"github.com/louisbranch/navshell/internal/services/navshell/modules/auth"
	"github.com/louisbranch/navshell/internal/services/navshell/modules/navbar"
	"github.com/louisbranch/navshell/internal/services/navshell/modules/pages"
)

// DefaultPublicModules returns modules reachable without a session.
func DefaultPublicModules() []module.Module {
	return []module.Module{
		navbar.New(),
		auth.New(),
		pages.New(),
	}
}

// DefaultProtectedModules returns modules that require a session.
func DefaultProtectedModules() []module.Module {
	return []module.Module{
		account.New(),
	}
}
