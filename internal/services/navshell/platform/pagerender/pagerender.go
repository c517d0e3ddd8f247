// Package pagerender centralizes module page rendering behavior.
package pagerender

import (
	"context"
	"io"
	"net/http"

	"github.com/a-h/templ"

	module "github.com/louisbranch/navshell/internal/services/navshell/module"
	"github.com/louisbranch/navshell/internal/services/navshell/navigation"
	"github.com/louisbranch/navshell/internal/services/navshell/platform/httpx"
	navi18n "github.com/louisbranch/navshell/internal/services/navshell/platform/i18n"
	"github.com/louisbranch/navshell/internal/services/navshell/platform/observability"
	"github.com/louisbranch/navshell/internal/services/navshell/platform/viewport"
	"github.com/louisbranch/navshell/internal/services/navshell/routepath"
	"github.com/louisbranch/navshell/internal/services/navshell/session"
	"github.com/louisbranch/navshell/internal/services/navshell/templates"
)

// ModulePage describes a module page response for both full-page and HTMX flows.
type ModulePage struct {
	Title      string
	StatusCode int
	Fragment   templ.Component
}

// NavbarState is the bar-owned state carried by one request.
type NavbarState struct {
	Panel        navigation.PanelState
	MenuExpanded bool
}

type emptyComponent struct{}

func (emptyComponent) Render(context.Context, io.Writer) error {
	return nil
}

// ResolveSession returns the request's session state, signed out without a
// session manager.
func ResolveSession(r *http.Request, deps module.Dependencies) session.State {
	if deps.Sessions == nil {
		return session.SignedOut()
	}
	return deps.Sessions.Resolve(r)
}

// BuildNavbar derives the navbar view for r and records it on the request span.
func BuildNavbar(r *http.Request, deps module.Dependencies, loc navi18n.Localizer, state NavbarState) templates.NavbarView {
	sessionState := ResolveSession(r, deps)
	bar := navigation.Build(navigation.Inputs{
		Route:        httpx.CurrentPath(r),
		Session:      sessionState,
		Viewport:     viewport.Resolve(r),
		Panel:        state.Panel,
		MenuExpanded: state.MenuExpanded,
		Avatar:       deps.Avatar.URL,
	})

	broken := bar.Broken()
	ctx := httpx.RequestContext(r)
	observability.AnnotateNavbar(ctx, bar.Layout.String(), bar.SessionStatus.String(), state.Panel.String(), len(broken))
	for _, entry := range broken {
		deps.Logf(r, "navbar entry broken entry=%s err=%v", entry.ID, entry.Err)
	}

	view := templates.NavbarView{Bar: bar, Loc: loc}
	if deps.Sessions != nil && deps.Sessions.Hub() != nil {
		view.EventsURL = routepath.NavbarEvents
	}
	return view
}

// WriteModulePage writes a module page as a full document with a freshly
// derived navbar.
func WriteModulePage(w http.ResponseWriter, r *http.Request, deps module.Dependencies, page ModulePage) error {
	if w == nil {
		return nil
	}
	statusCode := page.StatusCode
	if statusCode <= 0 {
		statusCode = http.StatusOK
	}
	fragment := page.Fragment
	if fragment == nil {
		fragment = emptyComponent{}
	}

	loc, lang := navi18n.ResolveLocalizer(w, r)
	ctx := templ.WithChildren(httpx.RequestContext(r), fragment)
	path := routepath.Root
	rawQuery := ""
	if r != nil && r.URL != nil {
		path = r.URL.Path
		rawQuery = r.URL.RawQuery
	}
	view := templates.LayoutView{
		Title:     page.Title,
		Lang:      lang,
		Loc:       loc,
		Navbar:    BuildNavbar(r, deps, loc, NavbarState{}),
		Languages: navi18n.LanguageOptions(loc, lang, path, rawQuery),
	}
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(statusCode)
	return templates.Layout(view).Render(ctx, w)
}
