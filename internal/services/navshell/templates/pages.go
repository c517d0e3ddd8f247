package templates

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/a-h/templ"

	navi18n "github.com/louisbranch/navshell/internal/services/navshell/platform/i18n"
	"github.com/louisbranch/navshell/internal/services/navshell/routepath"
)

// HomeView is the landing page content.
type HomeView struct {
	Loc navi18n.Localizer
	// SignedInAs is the session label; empty when signed out.
	SignedInAs string
}

// HomePage renders the landing page body.
func HomePage(view HomeView) templ.Component {
	return templ.ComponentFunc(func(_ context.Context, w io.Writer) error {
		m := &markup{w: w}
		m.raw(`<section class="np-home space-y-2"><p class="text-lg">`)
		m.text(translate(view.Loc, "page.home.heading"))
		m.raw("</p><p>")
		if view.SignedInAs != "" {
			m.text(translate(view.Loc, "page.home.signed_in", view.SignedInAs))
		} else {
			m.text(translate(view.Loc, "page.home.signed_out"))
		}
		m.raw("</p></section>")
		return m.err
	})
}

// ProfileView is one public profile.
type ProfileView struct {
	Loc         navi18n.Localizer
	Username    string
	DisplayName string
	AvatarURL   string
	JoinedAt    time.Time
}

// ProfilePage renders a public profile body.
func ProfilePage(view ProfileView) templ.Component {
	return templ.ComponentFunc(func(_ context.Context, w io.Writer) error {
		m := &markup{w: w}
		m.raw(`<section class="np-profile flex items-center gap-4"`)
		m.attr("data-username", view.Username)
		m.raw("><img")
		m.attr("src", string(templ.URL(view.AvatarURL)))
		m.attr("width", "96")
		m.attr("height", "96")
		m.attr("alt", translate(view.Loc, "nav.avatar_alt", view.DisplayName))
		m.attr("class", "rounded-full")
		m.raw("><div><p class=\"text-xl font-bold\">")
		m.text(view.DisplayName)
		m.raw(`</p><p class="opacity-70">@`)
		m.text(view.Username)
		m.raw("</p>")
		if !view.JoinedAt.IsZero() {
			m.raw(`<p class="text-sm">`)
			m.text(translate(view.Loc, "page.profile.joined", view.JoinedAt.UTC().Format("2006-01-02")))
			m.raw("</p>")
		}
		m.raw("</div></section>")
		return m.err
	})
}

// DraftsPage renders the signed-in drafts list, currently always empty.
func DraftsPage(loc navi18n.Localizer) templ.Component {
	return templ.ComponentFunc(func(_ context.Context, w io.Writer) error {
		m := &markup{w: w}
		m.raw(`<section class="np-drafts"><p class="opacity-70">`)
		m.text(translate(loc, "page.drafts.empty"))
		m.raw("</p></section>")
		return m.err
	})
}

// SettingsView is the read-only account summary.
type SettingsView struct {
	Loc         navi18n.Localizer
	Username    string
	DisplayName string
}

// SettingsPage renders the account settings body.
func SettingsPage(view SettingsView) templ.Component {
	return templ.ComponentFunc(func(_ context.Context, w io.Writer) error {
		m := &markup{w: w}
		m.raw(`<dl class="np-settings grid grid-cols-2 gap-2">`)
		for _, row := range [][2]string{
			{"page.settings.username", view.Username},
			{"page.settings.display_name", view.DisplayName},
		} {
			m.raw(`<dt class="font-bold">`)
			m.text(translate(view.Loc, row[0]))
			m.raw("</dt><dd>")
			m.text(row[1])
			m.raw("</dd>")
		}
		m.raw("</dl>")
		return m.err
	})
}

// AuthMode selects the sign-in or registration form.
type AuthMode int

const (
	AuthLogin AuthMode = iota
	AuthRegister
)

// AuthFormView is the state of a login or registration form.
type AuthFormView struct {
	Loc         navi18n.Localizer
	Mode        AuthMode
	Next        string
	Username    string
	DisplayName string
	// ErrorKey is the localized message key of the last failed submission.
	ErrorKey string
}

// AuthForm renders the login or registration form.
func AuthForm(view AuthFormView) templ.Component {
	return templ.ComponentFunc(func(_ context.Context, w io.Writer) error {
		action, submitKey, switchHref, switchKey := routepath.Login, "auth.submit_login", routepath.Register, "auth.switch_to_register"
		if view.Mode == AuthRegister {
			action, submitKey, switchHref, switchKey = routepath.Register, "auth.submit_register", routepath.Login, "auth.switch_to_login"
		}
		m := &markup{w: w}
		m.raw(`<form method="post" class="np-auth flex max-w-sm flex-col gap-3"`)
		m.attr("action", action)
		m.raw(">")
		if key := strings.TrimSpace(view.ErrorKey); key != "" {
			m.raw(`<p role="alert" class="alert alert-error">`)
			m.text(translate(view.Loc, key))
			m.raw("</p>")
		}
		if next := routepath.SafeNext(view.Next); next != routepath.Root {
			m.raw(`<input type="hidden"`)
			m.attr("name", routepath.NextQueryKey)
			m.attr("value", next)
			m.raw(">")
		}
		writeTextField(m, "username", translate(view.Loc, "auth.username"), view.Username, true)
		if view.Mode == AuthRegister {
			writeTextField(m, "display_name", translate(view.Loc, "auth.display_name"), view.DisplayName, false)
		}
		m.raw(`<button type="submit" class="btn btn-primary">`)
		m.text(translate(view.Loc, submitKey))
		m.raw("</button><a")
		m.href(switchHref)
		m.attr("class", "link")
		m.raw(">")
		m.text(translate(view.Loc, switchKey))
		m.raw("</a></form>")
		return m.err
	})
}

func writeTextField(m *markup, name, label, value string, required bool) {
	m.raw(`<label class="flex flex-col gap-1"><span>`)
	m.text(label)
	m.raw(`</span><input type="text" class="input input-bordered"`)
	m.attr("name", name)
	m.attr("value", value)
	m.attr("autocomplete", "off")
	if required {
		m.raw(" required")
	}
	m.raw("></label>")
}

// ErrorPageTitle is the document title for an error status.
func ErrorPageTitle(status int, loc navi18n.Localizer) string {
	return translate(loc, "error.title", status)
}

// ErrorState renders the body of an error page.
func ErrorState(status int, loc navi18n.Localizer) templ.Component {
	return templ.ComponentFunc(func(_ context.Context, w io.Writer) error {
		key := "error.internal"
		if status == http.StatusNotFound {
			key = "error.not_found"
		}
		m := &markup{w: w}
		m.raw(`<section class="np-error"`)
		m.attr("data-status", fmt.Sprint(status))
		m.raw("><p>")
		m.text(translate(loc, key))
		m.raw(`</p><a class="link"`)
		m.href(routepath.Home)
		m.raw(">")
		m.text(translate(loc, "nav.home"))
		m.raw("</a></section>")
		return m.err
	})
}
