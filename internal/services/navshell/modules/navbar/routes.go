package navbar

import (
	"net/http"

	module "github.com/louisbranch/navshell/internal/services/navshell/module"
	"github.com/louisbranch/navshell/internal/services/navshell/routepath"
)

func registerRoutes(mount *module.Mount, h handlers) {
	if mount == nil {
		return
	}
	mount.HandleFunc(http.MethodGet+" "+routepath.Navbar, h.handleNavbar)
	mount.HandleFunc(http.MethodGet+" "+routepath.NavbarAccount, h.handleAccountMenu)
	mount.HandleFunc(http.MethodGet+" "+routepath.NavbarEvents, h.handleEvents)
}
