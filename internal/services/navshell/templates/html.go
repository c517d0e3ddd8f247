// Package templates renders navshell markup as templ components.
package templates

import (
	"context"
	"io"
	"strconv"

	"github.com/a-h/templ"

	navi18n "github.com/louisbranch/navshell/internal/services/navshell/platform/i18n"
)

// markup writes HTML and keeps the first write error.
type markup struct {
	w   io.Writer
	err error
}

func (m *markup) raw(s string) {
	if m.err != nil {
		return
	}
	_, m.err = io.WriteString(m.w, s)
}

func (m *markup) text(s string) {
	m.raw(templ.EscapeString(s))
}

// attr writes ` name="value"` with value escaped.
func (m *markup) attr(name, value string) {
	m.raw(" " + name + `="` + templ.EscapeString(value) + `"`)
}

func (m *markup) attrIf(cond bool, name, value string) {
	if cond {
		m.attr(name, value)
	}
}

// href writes a sanitized href attribute.
func (m *markup) href(url string) {
	m.attr("href", string(templ.URL(url)))
}

func (m *markup) classes(classes ...any) {
	if value := templ.Classes(classes...).String(); value != "" {
		m.attr("class", value)
	}
}

// render writes c in place.
func (m *markup) render(ctx context.Context, c templ.Component) {
	if m.err != nil || c == nil {
		return
	}
	m.err = c.Render(ctx, m.w)
}

func boolString(v bool) string {
	return strconv.FormatBool(v)
}

// translate formats key with loc, using the default language without one.
func translate(loc navi18n.Localizer, key string, args ...any) string {
	if loc == nil {
		loc = navi18n.Printer(navi18n.Default())
	}
	return loc.Sprintf(key, args...)
}
