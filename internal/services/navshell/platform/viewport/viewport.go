// Package viewport resolves the client viewport width for server-side layout
// selection.
package viewport

import (
	"math"
	"net/http"
	"strconv"
	"strings"

	"github.com/louisbranch/navshell/internal/services/navshell/navigation"
	"github.com/louisbranch/navshell/internal/services/navshell/routepath"
)

const (
	// CookieName remembers the last width reported by the page script.
	CookieName = "np_vw"

	clientHintHeader       = "Sec-CH-Viewport-Width"
	legacyClientHintHeader = "Viewport-Width"
	maxWidth               = 16384
)

// Resolve reads the viewport width from, in order, the vw query parameter,
// the viewport client hints and the np_vw cookie. Without a usable value the
// viewport is unmeasured.
func Resolve(r *http.Request) navigation.Viewport {
	if r == nil {
		return navigation.Viewport{}
	}
	if r.URL != nil {
		if width, ok := parseWidth(r.URL.Query().Get(routepath.ViewportQueryKey)); ok {
			return navigation.MeasuredViewport(width)
		}
	}
	for _, header := range []string{clientHintHeader, legacyClientHintHeader} {
		if width, ok := parseWidth(r.Header.Get(header)); ok {
			return navigation.MeasuredViewport(width)
		}
	}
	if cookie, err := r.Cookie(CookieName); err == nil && cookie != nil {
		if width, ok := parseWidth(cookie.Value); ok {
			return navigation.MeasuredViewport(width)
		}
	}
	return navigation.Viewport{}
}

// AdvertiseHints asks supporting browsers to send the viewport width on
// subsequent requests.
func AdvertiseHints(w http.ResponseWriter) {
	if w == nil {
		return
	}
	header := w.Header()
	header.Set("Accept-CH", clientHintHeader+", "+legacyClientHintHeader)
	header.Add("Vary", clientHintHeader)
}

// Remember stores an explicitly reported width so later full-page loads pick
// the same layout.
func Remember(w http.ResponseWriter, r *http.Request) {
	if w == nil || r == nil || r.URL == nil {
		return
	}
	width, ok := parseWidth(r.URL.Query().Get(routepath.ViewportQueryKey))
	if !ok {
		return
	}
	http.SetCookie(w, &http.Cookie{
		Name:     CookieName,
		Value:    strconv.Itoa(width),
		Path:     "/",
		SameSite: http.SameSiteLaxMode,
	})
}

func parseWidth(raw string) (int, bool) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return 0, false
	}
	width, err := strconv.ParseFloat(raw, 64)
	if err != nil || math.IsNaN(width) || math.IsInf(width, 0) {
		return 0, false
	}
	if width < 1 || width > maxWidth {
		return 0, false
	}
	return int(width), true
}
