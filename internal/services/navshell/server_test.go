package navshell

import (
	"bytes"
	"context"
	"log"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	"go.opentelemetry.io/otel/sdk/trace/tracetest"

	"github.com/louisbranch/navshell/internal/testkit/navshellfakes"
)

func testConfig(t *testing.T) (Config, *bytes.Buffer) {
	t.Helper()

	logs := &bytes.Buffer{}
	return Config{
		HTTPAddr:   "127.0.0.1:0",
		Store:      navshellfakes.NewStore(),
		SessionKey: navshellfakes.SessionKey,
		Logger:     log.New(logs, "", 0),
	}, logs
}

func newTestHandler(t *testing.T) http.Handler {
	t.Helper()

	cfg, _ := testConfig(t)
	h, err := NewHandler(cfg)
	if err != nil {
		t.Fatalf("NewHandler() error = %v", err)
	}
	return h
}

func register(t *testing.T, h http.Handler, username string) *http.Cookie {
	t.Helper()

	form := url.Values{"username": {username}}
	req := httptest.NewRequest(http.MethodPost, "/register", strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	rr := httptest.NewRecorder()
	h.ServeHTTP(rr, req)
	if rr.Code != http.StatusSeeOther {
		t.Fatalf("register status = %d, want %d", rr.Code, http.StatusSeeOther)
	}
	for _, cookie := range rr.Result().Cookies() {
		if cookie.Name == "np_session" {
			return cookie
		}
	}
	t.Fatal("register issued no session cookie")
	return nil
}

func TestNewHandlerRequiresStoreAndKey(t *testing.T) {
	t.Parallel()

	if _, err := NewHandler(Config{SessionKey: navshellfakes.SessionKey}); err == nil {
		t.Fatal("expected missing store error")
	}
	if _, err := NewHandler(Config{Store: navshellfakes.NewStore(), SessionKey: []byte("short")}); err == nil {
		t.Fatal("expected short key error")
	}
}

func TestNewServerRequiresAddress(t *testing.T) {
	t.Parallel()

	cfg, _ := testConfig(t)
	cfg.HTTPAddr = " "
	if _, err := NewServer(context.Background(), cfg); err == nil {
		t.Fatal("expected http address error")
	}
}

func TestHealthAndStatic(t *testing.T) {
	t.Parallel()

	h := newTestHandler(t)
	tests := []struct {
		path string
		want string
	}{
		{path: "/up", want: "OK"},
		{path: "/static/app.css", want: ".np-navbar"},
		{path: "/static/navshell.js", want: "data-events-url"},
		{path: "/static/avatars/3.svg", want: "<svg"},
	}
	for _, tc := range tests {
		rr := httptest.NewRecorder()
		h.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, tc.path, nil))
		if rr.Code != http.StatusOK {
			t.Fatalf("GET %s status = %d, want %d", tc.path, rr.Code, http.StatusOK)
		}
		if !strings.Contains(rr.Body.String(), tc.want) {
			t.Fatalf("GET %s body missing %q", tc.path, tc.want)
		}
	}
}

func TestResponsesAdvertiseViewportHintsAndRequestID(t *testing.T) {
	t.Parallel()

	rr := httptest.NewRecorder()
	newTestHandler(t).ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/", nil))
	if got := rr.Header().Get("Accept-CH"); !strings.Contains(got, "Sec-CH-Viewport-Width") {
		t.Fatalf("Accept-CH = %q", got)
	}
	if got := rr.Header().Get("X-Request-ID"); !strings.HasPrefix(got, "navshell-") {
		t.Fatalf("X-Request-ID = %q", got)
	}
}

func TestProtectedRoutesRedirectWhenSignedOut(t *testing.T) {
	t.Parallel()

	h := newTestHandler(t)
	for _, path := range []string{"/drafts", "/settings"} {
		rr := httptest.NewRecorder()
		h.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, path, nil))
		if rr.Code != http.StatusSeeOther {
			t.Fatalf("GET %s status = %d, want %d", path, rr.Code, http.StatusSeeOther)
		}
		if got, want := rr.Header().Get("Location"), "/login?next=%2F"+strings.TrimPrefix(path, "/"); got != want {
			t.Fatalf("GET %s Location = %q, want %q", path, got, want)
		}
	}
}

func TestSignedInJourney(t *testing.T) {
	t.Parallel()

	h := newTestHandler(t)
	cookie := register(t, h, "alice")

	get := func(path string) *httptest.ResponseRecorder {
		req := httptest.NewRequest(http.MethodGet, path, nil)
		req.AddCookie(cookie)
		rr := httptest.NewRecorder()
		h.ServeHTTP(rr, req)
		return rr
	}

	drafts := get("/drafts?vw=1280")
	if drafts.Code != http.StatusOK {
		t.Fatalf("GET /drafts status = %d", drafts.Code)
	}
	for _, want := range []string{`data-entry="home"`, `data-entry="profile"`, `href="/alice"`, `data-entry="drafts" data-active="true"`, `id="navbar-account"`} {
		if !strings.Contains(drafts.Body.String(), want) {
			t.Fatalf("drafts page missing %q", want)
		}
	}

	profile := get("/alice?vw=1280")
	if profile.Code != http.StatusOK || !strings.Contains(profile.Body.String(), `data-entry="profile" data-active="true"`) {
		t.Fatalf("profile status = %d", profile.Code)
	}

	panel := get("/navbar?panel=open&vw=375")
	for _, want := range []string{`id="navbar-panel"`, `data-entry="settings"`, `data-entry="logout"`} {
		if !strings.Contains(panel.Body.String(), want) {
			t.Fatalf("mobile panel missing %q", want)
		}
	}

	logout := httptest.NewRequest(http.MethodPost, "/logout", nil)
	logout.AddCookie(cookie)
	logout.Header.Set("Origin", "http://example.com")
	rr := httptest.NewRecorder()
	h.ServeHTTP(rr, logout)
	if rr.Code != http.StatusSeeOther {
		t.Fatalf("POST /logout status = %d, want %d", rr.Code, http.StatusSeeOther)
	}

	after := get("/?vw=1280")
	if strings.Contains(after.Body.String(), `id="navbar-account"`) || !strings.Contains(after.Body.String(), `href="/login"`) {
		t.Fatal("revoked session still renders signed in")
	}
}

func TestLogoutWithoutOriginProofIsForbidden(t *testing.T) {
	t.Parallel()

	h := newTestHandler(t)
	cookie := register(t, h, "alice")

	req := httptest.NewRequest(http.MethodPost, "/logout", nil)
	req.AddCookie(cookie)
	req.Header.Set("Origin", "https://evil.example")
	rr := httptest.NewRecorder()
	h.ServeHTTP(rr, req)
	if rr.Code != http.StatusForbidden {
		t.Fatalf("status = %d, want %d", rr.Code, http.StatusForbidden)
	}
}

func TestUnknownPathsRenderNotFoundPage(t *testing.T) {
	t.Parallel()

	h := newTestHandler(t)
	for _, path := range []string{"/nobody", "/a/b/c"} {
		rr := httptest.NewRecorder()
		h.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, path, nil))
		if rr.Code != http.StatusNotFound {
			t.Fatalf("GET %s status = %d, want %d", path, rr.Code, http.StatusNotFound)
		}
		if !strings.Contains(rr.Body.String(), `id="navbar"`) {
			t.Fatalf("GET %s not found page lost the navbar", path)
		}
	}
}

func TestRequestsAreTraced(t *testing.T) {
	t.Parallel()

	recorder := tracetest.NewSpanRecorder()
	cfg, _ := testConfig(t)
	cfg.TracerProvider = sdktrace.NewTracerProvider(sdktrace.WithSpanProcessor(recorder))
	h, err := NewHandler(cfg)
	if err != nil {
		t.Fatalf("NewHandler() error = %v", err)
	}

	rr := httptest.NewRecorder()
	h.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/navbar?vw=375", nil))
	spans := recorder.Ended()
	if len(spans) != 1 {
		t.Fatalf("spans = %d, want 1", len(spans))
	}
	found := false
	for _, attr := range spans[0].Attributes() {
		if string(attr.Key) == "navbar.layout" && attr.Value.AsString() == "mobile" {
			found = true
		}
	}
	if !found {
		t.Fatalf("span attributes = %v, want navbar.layout=mobile", spans[0].Attributes())
	}
}
