package pages

import (
	"net/http"

	module "github.com/louisbranch/navshell/internal/services/navshell/module"
	"github.com/louisbranch/navshell/internal/services/navshell/routepath"
)

func registerRoutes(mount *module.Mount, h handlers) {
	if mount == nil {
		return
	}
	mount.HandleFunc(http.MethodGet+" "+routepath.Root+"{$}", h.handleHome)
	mount.HandleFunc(http.MethodGet+" "+routepath.ProfilePattern, h.handleProfile)
}
