package avatar

import (
	"strings"
	"testing"

	"github.com/louisbranch/navshell/internal/services/navshell/session"
)

func TestURLPrefersUsableCustomAvatar(t *testing.T) {
	t.Parallel()

	r := Resolver{}
	tests := map[string]bool{
		"https://cdn.example.test/a.png": true,
		"/static/avatars/custom.svg":     true,
		"javascript:alert(1)":            false,
		"//evil.example.test/a.png":      false,
		"ftp://files.example.test/a.png": false,
	}
	for raw, kept := range tests {
		got := r.URL(session.Session{UserID: "u1", Username: "alice", AvatarURL: raw})
		if (got == raw) != kept {
			t.Fatalf("URL() with custom %q = %q, kept = %v, want %v", raw, got, got == raw, kept)
		}
	}
}

func TestURLIsDeterministic(t *testing.T) {
	t.Parallel()

	r := Resolver{}
	sess := session.Session{UserID: "u1", Username: "alice"}
	first := r.URL(sess)
	for range 5 {
		if got := r.URL(sess); got != first {
			t.Fatalf("URL() = %q, want stable %q", got, first)
		}
	}
	if !strings.HasPrefix(first, "/static/avatars/") || !strings.HasSuffix(first, ".svg") {
		t.Fatalf("URL() = %q, want bundled default", first)
	}
}

func TestURLUsesAssetBaseURL(t *testing.T) {
	t.Parallel()

	r := Resolver{AssetBaseURL: "https://cdn.example.test/np/"}
	got := r.URL(session.Session{UserID: "u1"})
	if !strings.HasPrefix(got, "https://cdn.example.test/np/avatars/") {
		t.Fatalf("URL() = %q, want CDN prefix", got)
	}
}

func TestSlotStaysInRange(t *testing.T) {
	t.Parallel()

	r := Resolver{Count: 3}
	for _, id := range []string{"", "a", "b", "c", "user-123", "zzz"} {
		if slot := r.Slot(session.Session{UserID: id}); slot < 0 || slot >= 3 {
			t.Fatalf("Slot(%q) = %d, want [0,3)", id, slot)
		}
	}
}
