package app

import (
	"net/http"

	module "github.com/louisbranch/navshell/internal/services/navshell/module"
)

// Config captures the composition inputs for the navshell root handler.
type Config struct {
	Dependencies     module.Dependencies
	PublicModules    []module.Module
	ProtectedModules []module.Module
	NotFound         http.Handler
}

// BuildRootHandler composes cfg with authenticated deciding protected access.
func BuildRootHandler(cfg Config, authenticated func(*http.Request) bool) (http.Handler, error) {
	return Composer{}.Compose(ComposeInput{
		Dependencies:     cfg.Dependencies,
		AuthRequired:     authenticated,
		PublicModules:    cfg.PublicModules,
		ProtectedModules: cfg.ProtectedModules,
		NotFound:         cfg.NotFound,
	})
}
