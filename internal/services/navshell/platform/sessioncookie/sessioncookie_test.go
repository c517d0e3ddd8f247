package sessioncookie

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/louisbranch/navshell/internal/services/navshell/platform/requestmeta"
)

func TestReadTrimsAndRejectsBlank(t *testing.T) {
	t.Parallel()

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	if _, ok := Read(req); ok {
		t.Fatal("Read() ok without cookie")
	}
	req.AddCookie(&http.Cookie{Name: Name, Value: "  tok  "})
	if got, ok := Read(req); !ok || got != "tok" {
		t.Fatalf("Read() = %q, %v, want %q, true", got, ok, "tok")
	}
	blank := httptest.NewRequest(http.MethodGet, "/", nil)
	blank.AddCookie(&http.Cookie{Name: Name, Value: " "})
	if _, ok := Read(blank); ok {
		t.Fatal("Read() ok for blank cookie")
	}
	if _, ok := Read(nil); ok {
		t.Fatal("Read(nil) ok")
	}
}

func TestWriteSetsHardenedCookie(t *testing.T) {
	t.Parallel()

	expires := time.Date(2026, 11, 1, 12, 0, 0, 0, time.UTC)
	rr := httptest.NewRecorder()
	Write(rr, httptest.NewRequest(http.MethodPost, "https://nav.example.test/login", nil), requestmeta.SchemePolicy{}, "tok", expires)

	cookies := rr.Result().Cookies()
	if len(cookies) != 1 {
		t.Fatalf("cookies = %d, want 1", len(cookies))
	}
	cookie := cookies[0]
	if cookie.Name != Name || cookie.Value != "tok" {
		t.Fatalf("cookie = %s=%s", cookie.Name, cookie.Value)
	}
	if !cookie.HttpOnly || !cookie.Secure || cookie.SameSite != http.SameSiteLaxMode || cookie.Path != "/" {
		t.Fatalf("cookie flags = %+v", cookie)
	}
	if !cookie.Expires.Equal(expires) {
		t.Fatalf("Expires = %v, want %v", cookie.Expires, expires)
	}
}

func TestClearExpiresCookie(t *testing.T) {
	t.Parallel()

	rr := httptest.NewRecorder()
	Clear(rr, httptest.NewRequest(http.MethodPost, "/logout", nil), requestmeta.SchemePolicy{})
	cookies := rr.Result().Cookies()
	if len(cookies) != 1 || cookies[0].MaxAge >= 0 {
		t.Fatalf("cookies = %+v, want expired session cookie", cookies)
	}
	if cookies[0].Secure {
		t.Fatal("Secure = true on plain http")
	}
}
