package account

import (
	"net/http"

	module "github.com/louisbranch/navshell/internal/services/navshell/module"
	"github.com/louisbranch/navshell/internal/services/navshell/routepath"
)

func registerRoutes(mount *module.Mount, h handlers) {
	if mount == nil {
		return
	}
	mount.HandleFunc(http.MethodGet+" "+routepath.Drafts, h.handleDrafts)
	mount.HandleFunc(http.MethodGet+" "+routepath.Settings, h.handleSettings)
}
