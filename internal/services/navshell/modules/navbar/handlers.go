package navbar

import (
	"bytes"
	"net/http"
	"strconv"
	"strings"

	"github.com/a-h/templ"

	module "github.com/louisbranch/navshell/internal/services/navshell/module"
	"github.com/louisbranch/navshell/internal/services/navshell/navigation"
	"github.com/louisbranch/navshell/internal/services/navshell/platform/httpx"
	navi18n "github.com/louisbranch/navshell/internal/services/navshell/platform/i18n"
	"github.com/louisbranch/navshell/internal/services/navshell/platform/pagerender"
	"github.com/louisbranch/navshell/internal/services/navshell/platform/viewport"
	"github.com/louisbranch/navshell/internal/services/navshell/platform/weberror"
	"github.com/louisbranch/navshell/internal/services/navshell/routepath"
	"github.com/louisbranch/navshell/internal/services/navshell/templates"
)

type handlers struct {
	deps module.Dependencies
}

func newHandlers(deps module.Dependencies) handlers {
	return handlers{deps: deps}
}

// handleNavbar re-renders the whole bar for the panel state in the query.
func (h handlers) handleNavbar(w http.ResponseWriter, r *http.Request) {
	panel := navigation.ParsePanelState(r.URL.Query().Get(routepath.PanelQueryKey))
	viewport.Remember(w, r)
	loc, _ := navi18n.ResolveLocalizer(w, r)
	view := pagerender.BuildNavbar(r, h.deps, loc, pagerender.NavbarState{Panel: panel})
	h.writeFragment(w, r, templates.Navbar(view))
}

// handleAccountMenu re-renders the account dropdown expanded or collapsed.
func (h handlers) handleAccountMenu(w http.ResponseWriter, r *http.Request) {
	expanded, _ := strconv.ParseBool(strings.TrimSpace(r.URL.Query().Get(routepath.ExpandedQueryKey)))
	viewport.Remember(w, r)
	loc, _ := navi18n.ResolveLocalizer(w, r)
	view := pagerender.BuildNavbar(r, h.deps, loc, pagerender.NavbarState{MenuExpanded: expanded})
	h.writeFragment(w, r, templates.AccountMenu(view))
}

func (h handlers) writeFragment(w http.ResponseWriter, r *http.Request, fragment templ.Component) {
	var buf bytes.Buffer
	if err := fragment.Render(httpx.RequestContext(r), &buf); err != nil {
		weberror.WriteModuleError(w, r, err, h.deps)
		return
	}
	header := w.Header()
	header.Set("Cache-Control", "no-store")
	header.Add("Vary", "HX-Current-URL")
	header.Add("Vary", "Cookie")
	_ = httpx.WriteHTML(w, http.StatusOK, buf.String())
}
