package templates

import (
	"context"
	"io"
	"strings"

	"github.com/a-h/templ"

	"github.com/louisbranch/navshell/internal/platform/branding"
	navi18n "github.com/louisbranch/navshell/internal/services/navshell/platform/i18n"
)

const (
	htmxScriptURL = "https://unpkg.com/htmx.org@2.0.4"
	// MainID identifies the page content element.
	MainID = "main"
)

// LayoutView is the document chrome around one page.
type LayoutView struct {
	Title     string
	Lang      string
	Loc       navi18n.Localizer
	Navbar    NavbarView
	Languages []navi18n.LanguageOption
}

// ComposePageTitle appends the product name to title once.
func ComposePageTitle(title string) string {
	title = strings.TrimSpace(title)
	if title == "" {
		return branding.AppName
	}
	for _, suffix := range []string{" | " + branding.AppName, " - " + branding.AppName} {
		if strings.HasSuffix(title, suffix) {
			title = strings.TrimSpace(strings.TrimSuffix(title, suffix))
		}
	}
	if title == "" || title == branding.AppName {
		return branding.AppName
	}
	return title + " | " + branding.AppName
}

// Layout renders a full document. The page body comes from the context
// children.
func Layout(view LayoutView) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		lang := strings.TrimSpace(view.Lang)
		if lang == "" {
			lang = navi18n.Default().String()
		}
		m := &markup{w: w}
		m.raw("<!DOCTYPE html><html")
		m.attr("lang", lang)
		m.raw(`><head><meta charset="utf-8"><meta name="viewport" content="width=device-width, initial-scale=1">`)
		m.raw("<title>")
		m.text(ComposePageTitle(view.Title))
		m.raw("</title>")
		m.raw(`<link rel="stylesheet" href="/static/app.css">`)
		m.raw("<script")
		m.attr("src", htmxScriptURL)
		m.raw(` defer></script><script src="/static/navshell.js" defer></script></head>`)
		m.raw(`<body id="home" class="min-h-screen bg-base-200">`)

		m.render(ctx, Navbar(view.Navbar))
		m.render(ctx, Main(view.Title))
		writeLanguageSwitcher(m, view.Languages)

		m.raw("</body></html>")
		return m.err
	})
}

// Main renders the swappable page body with its heading.
func Main(title string) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		m := &markup{w: w}
		m.raw("<main")
		m.attr("id", MainID)
		m.attr("class", "np-main mx-auto max-w-5xl px-4 py-6")
		m.raw(">")
		if title = strings.TrimSpace(title); title != "" {
			m.raw(`<h1 class="mb-4 text-2xl font-bold">`)
			m.text(title)
			m.raw("</h1>")
		}
		m.render(ctx, templ.GetChildren(ctx))
		m.raw("</main>")
		return m.err
	})
}

func writeLanguageSwitcher(m *markup, options []navi18n.LanguageOption) {
	if len(options) == 0 {
		return
	}
	m.raw(`<footer class="np-footer mx-auto flex max-w-5xl gap-3 px-4 py-6 text-sm">`)
	for _, option := range options {
		m.raw("<a")
		m.href(option.URL)
		m.attr("hreflang", option.Tag)
		m.attrIf(option.Active, "aria-current", "true")
		m.classes("np-lang", templ.KV("font-bold", option.Active))
		m.raw(">")
		m.text(option.Label)
		m.raw("</a>")
	}
	m.raw("</footer>")
}
