package viewport

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/louisbranch/navshell/internal/services/navshell/navigation"
)

func TestResolvePrecedence(t *testing.T) {
	t.Parallel()

	req := httptest.NewRequest(http.MethodGet, "/navbar?vw=500", nil)
	req.Header.Set("Sec-CH-Viewport-Width", "1200")
	req.AddCookie(&http.Cookie{Name: CookieName, Value: "900"})
	if got := Resolve(req); got != navigation.MeasuredViewport(500) {
		t.Fatalf("Resolve() = %+v, want query width 500", got)
	}

	req = httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set("Viewport-Width", "1200")
	req.AddCookie(&http.Cookie{Name: CookieName, Value: "900"})
	if got := Resolve(req); got != navigation.MeasuredViewport(1200) {
		t.Fatalf("Resolve() = %+v, want hint width 1200", got)
	}

	req = httptest.NewRequest(http.MethodGet, "/", nil)
	req.AddCookie(&http.Cookie{Name: CookieName, Value: "767"})
	got := Resolve(req)
	if got != navigation.MeasuredViewport(767) || !got.IsMobile() {
		t.Fatalf("Resolve() = %+v, want mobile cookie width 767", got)
	}
}

func TestResolveIgnoresUnusableValues(t *testing.T) {
	t.Parallel()

	for _, raw := range []string{"", "abc", "0", "-10", "99999", "NaN", "Inf", "-Inf", "+Inf"} {
		req := httptest.NewRequest(http.MethodGet, "/", nil)
		req.Header.Set("Sec-CH-Viewport-Width", raw)
		if got := Resolve(req); got.Measured {
			t.Fatalf("Resolve() with %q = %+v, want unmeasured", raw, got)
		}
	}
	for _, raw := range []string{"NaN", "Inf", "-Inf"} {
		req := httptest.NewRequest(http.MethodGet, "/navbar?vw="+raw, nil)
		got := Resolve(req)
		if got.Measured || got.IsMobile() {
			t.Fatalf("Resolve() with vw=%q = %+v, want unmeasured desktop", raw, got)
		}
	}
	if got := Resolve(nil); got.Measured {
		t.Fatal("Resolve(nil) measured")
	}
}

func TestResolveAcceptsFractionalHint(t *testing.T) {
	t.Parallel()

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set("Sec-CH-Viewport-Width", "767.5")
	if got := Resolve(req); got.Width != 767 {
		t.Fatalf("Width = %d, want 767", got.Width)
	}
}

func TestAdvertiseHints(t *testing.T) {
	t.Parallel()

	rr := httptest.NewRecorder()
	AdvertiseHints(rr)
	if got := rr.Header().Get("Accept-CH"); !strings.Contains(got, "Sec-CH-Viewport-Width") {
		t.Fatalf("Accept-CH = %q", got)
	}
}

func TestRememberStoresQueryWidth(t *testing.T) {
	t.Parallel()

	rr := httptest.NewRecorder()
	Remember(rr, httptest.NewRequest(http.MethodGet, "/navbar?vw=414", nil))
	cookies := rr.Result().Cookies()
	if len(cookies) != 1 || cookies[0].Name != CookieName || cookies[0].Value != "414" {
		t.Fatalf("cookies = %+v, want np_vw=414", cookies)
	}

	rr = httptest.NewRecorder()
	Remember(rr, httptest.NewRequest(http.MethodGet, "/navbar", nil))
	if len(rr.Result().Cookies()) != 0 {
		t.Fatal("Remember() wrote cookie without width")
	}

	for _, raw := range []string{"NaN", "Inf", "-Inf"} {
		rr = httptest.NewRecorder()
		Remember(rr, httptest.NewRequest(http.MethodGet, "/navbar?vw="+raw, nil))
		if cookies := rr.Result().Cookies(); len(cookies) != 0 {
			t.Fatalf("Remember() with vw=%q wrote %+v", raw, cookies)
		}
	}
}
