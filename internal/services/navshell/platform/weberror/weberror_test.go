package weberror

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/louisbranch/navshell/internal/services/navshell/module"
	apperrors "github.com/louisbranch/navshell/internal/services/navshell/platform/errors"
	navi18n "github.com/louisbranch/navshell/internal/services/navshell/platform/i18n"
	"golang.org/x/text/language"
)

func TestShouldRenderAppError(t *testing.T) {
	t.Parallel()

	tests := map[int]bool{
		http.StatusNotFound:            true,
		http.StatusInternalServerError: true,
		http.StatusServiceUnavailable:  true,
		http.StatusBadRequest:          false,
		http.StatusForbidden:           false,
	}
	for status, want := range tests {
		if got := ShouldRenderAppError(status); got != want {
			t.Fatalf("ShouldRenderAppError(%d) = %v, want %v", status, got, want)
		}
	}
}

func TestPublicMessageLocalizesKnownKeys(t *testing.T) {
	t.Parallel()

	loc := navi18n.Printer(language.AmericanEnglish)
	err := apperrors.EK(apperrors.KindConflict, "error.username_taken", "username taken")
	if got := PublicMessage(loc, err); got != "That username is already taken." {
		t.Fatalf("PublicMessage() = %q", got)
	}
	if got := PublicMessage(loc, errors.New("db exploded")); got != http.StatusText(http.StatusInternalServerError) {
		t.Fatalf("PublicMessage(raw) = %q, want generic text", got)
	}
	if got := PublicMessage(loc, nil); got != "" {
		t.Fatalf("PublicMessage(nil) = %q, want empty", got)
	}
}

func TestWriteAppErrorRendersPageWithNavbar(t *testing.T) {
	t.Parallel()

	req := httptest.NewRequest(http.MethodGet, "/missing", nil)
	rr := httptest.NewRecorder()
	WriteAppError(rr, req, http.StatusNotFound, module.Dependencies{})
	if rr.Code != http.StatusNotFound {
		t.Fatalf("status = %d, want %d", rr.Code, http.StatusNotFound)
	}
	got := rr.Body.String()
	for _, want := range []string{"Page not found", `id="navbar"`, "<title>Error 404"} {
		if !strings.Contains(got, want) {
			t.Fatalf("error page missing %q in %s", want, got)
		}
	}
}

func TestWriteModuleErrorUsesPlainTextForClientErrors(t *testing.T) {
	t.Parallel()

	req := httptest.NewRequest(http.MethodPost, "/register", nil)
	rr := httptest.NewRecorder()
	WriteModuleError(rr, req, apperrors.EK(apperrors.KindInvalidInput, "error.bad_request", "bad"), module.Dependencies{})
	if rr.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, want %d", rr.Code, http.StatusBadRequest)
	}
	if strings.Contains(rr.Body.String(), "<html") {
		t.Fatalf("client error rendered app shell: %s", rr.Body.String())
	}
}

func TestWriteAppErrorCoercesClientStatus(t *testing.T) {
	t.Parallel()

	rr := httptest.NewRecorder()
	WriteAppError(rr, httptest.NewRequest(http.MethodGet, "/", nil), http.StatusTeapot, module.Dependencies{})
	if rr.Code != http.StatusInternalServerError {
		t.Fatalf("status = %d, want %d", rr.Code, http.StatusInternalServerError)
	}
}
