package templates

import (
	"context"
	"fmt"
	"io"

	"github.com/a-h/templ"

	"github.com/louisbranch/navshell/internal/services/navshell/navigation"
	navi18n "github.com/louisbranch/navshell/internal/services/navshell/platform/i18n"
	"github.com/louisbranch/navshell/internal/services/navshell/routepath"
)

// Element ids targeted by fragment swaps.
const (
	NavbarID      = "navbar"
	AccountMenuID = "navbar-account"
	PanelID       = "navbar-panel"
	accountListID = "navbar-account-items"
)

// NavbarView is everything the navbar markup needs.
type NavbarView struct {
	Bar navigation.Bar
	Loc navi18n.Localizer
	// EventsURL enables the session event stream when set.
	EventsURL string
}

// Navbar renders the whole bar. Each link surface sits behind its own
// Boundary.
func Navbar(view NavbarView) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		bar := view.Bar
		m := &markup{w: w}
		m.raw("<div")
		m.attr("id", NavbarID)
		m.attr("class", "np-navbar bg-gradient-to-r from-blue-300 to-blue-100")
		m.attr("data-layout", bar.Layout.String())
		m.attr("data-session", bar.SessionStatus.String())
		m.attr("data-signed-in", boolString(bar.SignedIn))
		m.attr("data-panel", bar.Toggle.State.String())
		m.attrIf(view.EventsURL != "" && bar.SignedIn, "data-events-url", view.EventsURL)
		m.raw(">")
		m.raw(`<div class="np-bar mx-auto flex max-w-5xl items-center justify-between gap-4 px-4 py-2">`)

		writeBrand(m, bar.Brand)
		if bar.Layout == navigation.LayoutDesktop {
			m.render(ctx, Boundary("primary", primaryNav(bar.Primary, view.Loc)))
		}
		if bar.Account.Visible {
			m.render(ctx, Boundary("account", AccountMenu(view)))
		}
		writeToggle(m, bar.Toggle, view.Loc)

		m.raw("</div>")
		if bar.Panel.Visible {
			m.render(ctx, Boundary("panel", panelNav(bar.Panel.Entries, view.Loc)))
		}
		m.raw("</div>")
		return m.err
	})
}

// AccountMenu renders the avatar dropdown. It is also served alone as the
// account-menu fragment.
func AccountMenu(view NavbarView) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		menu := view.Bar.Account
		if !menu.Visible {
			return nil
		}
		m := &markup{w: w}
		m.raw("<div")
		m.attr("id", AccountMenuID)
		m.classes("np-account", "dropdown", "dropdown-end", templ.KV("dropdown-open", menu.Expanded))
		m.attr("data-expanded", boolString(menu.Expanded))
		m.raw(">")

		m.raw(`<button type="button" class="np-account-trigger btn btn-ghost btn-circle avatar"`)
		m.attr("aria-label", translate(view.Loc, "nav.account"))
		m.attr("aria-haspopup", "menu")
		m.attr("aria-expanded", boolString(menu.Expanded))
		m.attr("aria-controls", accountListID)
		m.attr("hx-get", routepath.NavbarAccountFragment(!menu.Expanded))
		m.attr("hx-target", "#"+AccountMenuID)
		m.attr("hx-swap", "outerHTML")
		m.raw(">")
		m.raw("<img")
		m.attr("src", string(templ.URL(menu.AvatarURL)))
		m.attr("width", fmt.Sprint(navigation.AvatarSize))
		m.attr("height", fmt.Sprint(navigation.AvatarSize))
		m.attr("alt", translate(view.Loc, "nav.avatar_alt", menu.AvatarAlt))
		m.attr("class", "rounded-full")
		m.raw("></button>")

		if menu.Expanded {
			m.raw("<ul")
			m.attr("id", accountListID)
			m.attr("role", "menu")
			m.attr("class", "np-account-items menu dropdown-content rounded-box bg-base-100 p-2 shadow")
			m.raw(">")
			for _, entry := range menu.Items {
				m.raw(`<li role="none">`)
				writeEntry(m, entry, view.Loc, "menuitem")
				m.raw("</li>")
			}
			m.raw("</ul>")
		}
		m.raw("</div>")
		return m.err
	})
}

func primaryNav(entries []navigation.Entry, loc navi18n.Localizer) templ.Component {
	return templ.ComponentFunc(func(_ context.Context, w io.Writer) error {
		m := &markup{w: w}
		m.raw("<nav")
		m.attr("aria-label", translate(loc, "nav.primary_label"))
		m.attr("class", "np-primary hidden items-center gap-4 md:flex")
		m.raw(">")
		for _, entry := range entries {
			writeEntry(m, entry, loc, "")
		}
		m.raw("</nav>")
		return m.err
	})
}

func panelNav(entries []navigation.Entry, loc navi18n.Localizer) templ.Component {
	return templ.ComponentFunc(func(_ context.Context, w io.Writer) error {
		m := &markup{w: w}
		m.raw("<nav")
		m.attr("id", PanelID)
		m.attr("aria-label", translate(loc, "nav.primary_label"))
		m.attr("class", "np-panel flex flex-col gap-2 px-4 pb-4 md:hidden")
		m.raw(">")
		for _, entry := range entries {
			writeEntry(m, entry, loc, "")
		}
		m.raw("</nav>")
		return m.err
	})
}

func writeBrand(m *markup, brand navigation.Brand) {
	m.raw("<a")
	m.href(brand.Anchor)
	m.attr("class", "np-brand flex items-center gap-2 text-lg font-bold")
	m.raw(">")
	m.raw(catIcon)
	m.raw("<span>")
	m.text(brand.Title)
	m.raw("</span></a>")
}

func writeToggle(m *markup, toggle navigation.Toggle, loc navi18n.Localizer) {
	open := toggle.State.IsOpen()
	m.raw(`<button type="button"`)
	m.attr("id", "navbar-toggle")
	m.attr("class", "np-toggle btn btn-ghost md:hidden")
	m.attr("aria-label", translate(loc, "nav.toggle"))
	m.attr("aria-expanded", boolString(open))
	m.attr("aria-controls", PanelID)
	m.attr("hx-get", toggle.Href)
	m.attr("hx-target", "#"+NavbarID)
	m.attr("hx-swap", "outerHTML")
	m.attr("hx-vals", "js:{vw: window.innerWidth}")
	m.raw(">")
	m.raw(fmt.Sprintf(menuIcon, templ.EscapeString(templ.Classes("np-toggle-icon h-6 w-6 transition-transform", templ.KV("rotate-90", open)).String())))
	m.raw("</button>")
}

// writeEntry renders one link, action or broken entry. role is set on the
// interactive element when non-empty.
func writeEntry(m *markup, entry navigation.Entry, loc navi18n.Localizer, role string) {
	label := translate(loc, entry.LabelKey)
	switch {
	case entry.Broken:
		m.raw("<a")
		m.classes("np-link", "np-link-broken", "opacity-50", templ.KV("font-bold", entry.Emphasis))
		m.attr("data-entry", string(entry.ID))
		m.attr("data-broken", "true")
		m.attr("aria-disabled", "true")
		if role != "" {
			m.attr("role", role)
		} else {
			m.attr("role", "link")
		}
		m.attr("title", translate(loc, "nav.unavailable"))
		m.raw(">")
		m.text(label)
		m.raw("</a>")
	case entry.Kind == navigation.EntryAction:
		m.raw(`<form method="post"`)
		m.attr("action", string(templ.URL(entry.Destination)))
		m.attr("class", "np-action")
		m.raw(`><button type="submit"`)
		m.classes("np-link", templ.KV("font-bold", entry.Emphasis))
		m.attr("data-entry", string(entry.ID))
		m.attrIf(role != "", "role", role)
		m.raw(">")
		m.text(label)
		m.raw("</button></form>")
	default:
		m.raw("<a")
		m.href(entry.Destination)
		m.classes("np-link", templ.KV("font-bold", entry.Emphasis), templ.KV("np-link-active", entry.Active))
		m.attr("data-entry", string(entry.ID))
		m.attr("data-active", boolString(entry.Active))
		m.attrIf(entry.Active, "aria-current", "page")
		m.attrIf(role != "", "role", role)
		m.raw(">")
		m.text(label)
		m.raw("</a>")
	}
}
