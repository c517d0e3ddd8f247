package account

import (
	"net/http"

	module "github.com/louisbranch/navshell/internal/services/navshell/module"
	"github.com/louisbranch/navshell/internal/services/navshell/platform/httpx"
	navi18n "github.com/louisbranch/navshell/internal/services/navshell/platform/i18n"
	"github.com/louisbranch/navshell/internal/services/navshell/platform/pagerender"
	"github.com/louisbranch/navshell/internal/services/navshell/routepath"
	"github.com/louisbranch/navshell/internal/services/navshell/templates"
)

type handlers struct {
	deps module.Dependencies
}

func newHandlers(deps module.Dependencies) handlers {
	return handlers{deps: deps}
}

func (h handlers) handleDrafts(w http.ResponseWriter, r *http.Request) {
	loc, _ := navi18n.ResolveLocalizer(w, r)
	h.writePage(w, r, pagerender.ModulePage{
		Title:    loc.Sprintf("page.drafts.title"),
		Fragment: templates.DraftsPage(loc),
	})
}

func (h handlers) handleSettings(w http.ResponseWriter, r *http.Request) {
	sess := pagerender.ResolveSession(r, h.deps).Session
	if sess == nil {
		httpx.WriteRedirect(w, r, routepath.LoginWithNext(routepath.Settings))
		return
	}
	loc, _ := navi18n.ResolveLocalizer(w, r)
	h.writePage(w, r, pagerender.ModulePage{
		Title: loc.Sprintf("page.settings.title"),
		Fragment: templates.SettingsPage(templates.SettingsView{
			Loc:         loc,
			Username:    sess.Username,
			DisplayName: sess.DisplayName,
		}),
	})
}

func (h handlers) writePage(w http.ResponseWriter, r *http.Request, page pagerender.ModulePage) {
	if err := pagerender.WriteModulePage(w, r, h.deps, page); err != nil {
		h.deps.Logf(r, "write page failed path=%s err=%v", r.URL.Path, err)
	}
}
