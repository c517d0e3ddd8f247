package auth

import (
	"net/http"

	module "github.com/louisbranch/navshell/internal/services/navshell/module"
	"github.com/louisbranch/navshell/internal/services/navshell/platform/httpx"
	"github.com/louisbranch/navshell/internal/services/navshell/routepath"
)

func registerRoutes(mount *module.Mount, h handlers) {
	if mount == nil {
		return
	}
	mount.HandleFunc(http.MethodGet+" "+routepath.Login, h.handleLoginGet)
	mount.HandleFunc(http.MethodPost+" "+routepath.Login, h.handleLoginPost)
	mount.HandleFunc(http.MethodGet+" "+routepath.Register, h.handleRegisterGet)
	mount.HandleFunc(http.MethodPost+" "+routepath.Register, h.handleRegisterPost)
	mount.HandleFunc(http.MethodGet+" "+routepath.Logout, httpx.MethodNotAllowed(http.MethodPost))
	mount.HandleFunc(http.MethodPost+" "+routepath.Logout, h.handleLogout)
}
