package navshell

import (
	"bytes"
	"flag"
	"log"
	"strings"
	"testing"
	"time"
)

func TestParseConfigDefaults(t *testing.T) {
	cfg, err := ParseConfig(flag.NewFlagSet("navshell", flag.ContinueOnError), nil)
	if err != nil {
		t.Fatalf("ParseConfig() error = %v", err)
	}
	if cfg.HTTPAddr != "localhost:8094" {
		t.Fatalf("HTTPAddr = %q, want %q", cfg.HTTPAddr, "localhost:8094")
	}
	if cfg.DBPath != "data/navshell.db" {
		t.Fatalf("DBPath = %q, want %q", cfg.DBPath, "data/navshell.db")
	}
	if cfg.SessionTTL != 720*time.Hour {
		t.Fatalf("SessionTTL = %v, want %v", cfg.SessionTTL, 720*time.Hour)
	}
	if cfg.ReapInterval != time.Hour {
		t.Fatalf("ReapInterval = %v, want %v", cfg.ReapInterval, time.Hour)
	}
	if cfg.TrustForwardedProto {
		t.Fatal("TrustForwardedProto = true, want false")
	}
}

func TestParseConfigReadsEnv(t *testing.T) {
	t.Setenv("NAVSHELL_HTTP_ADDR", "0.0.0.0:9000")
	t.Setenv("NAVSHELL_TRUST_FORWARDED_PROTO", "true")
	t.Setenv("NAVSHELL_ASSET_BASE_URL", "https://cdn.example.com")

	cfg, err := ParseConfig(flag.NewFlagSet("navshell", flag.ContinueOnError), nil)
	if err != nil {
		t.Fatalf("ParseConfig() error = %v", err)
	}
	if cfg.HTTPAddr != "0.0.0.0:9000" {
		t.Fatalf("HTTPAddr = %q, want %q", cfg.HTTPAddr, "0.0.0.0:9000")
	}
	if !cfg.TrustForwardedProto {
		t.Fatal("TrustForwardedProto = false, want true")
	}
	if cfg.AssetBaseURL != "https://cdn.example.com" {
		t.Fatalf("AssetBaseURL = %q", cfg.AssetBaseURL)
	}
}

func TestParseConfigFlagsOverrideEnv(t *testing.T) {
	t.Setenv("NAVSHELL_HTTP_ADDR", "0.0.0.0:9000")

	args := []string{"-http-addr", "127.0.0.1:9100", "-db-path", "/tmp/nav.db", "-session-ttl", "2h"}
	cfg, err := ParseConfig(flag.NewFlagSet("navshell", flag.ContinueOnError), args)
	if err != nil {
		t.Fatalf("ParseConfig() error = %v", err)
	}
	if cfg.HTTPAddr != "127.0.0.1:9100" {
		t.Fatalf("HTTPAddr = %q, want %q", cfg.HTTPAddr, "127.0.0.1:9100")
	}
	if cfg.DBPath != "/tmp/nav.db" {
		t.Fatalf("DBPath = %q, want %q", cfg.DBPath, "/tmp/nav.db")
	}
	if cfg.SessionTTL != 2*time.Hour {
		t.Fatalf("SessionTTL = %v, want %v", cfg.SessionTTL, 2*time.Hour)
	}
}

func TestParseConfigRejectsBadEnv(t *testing.T) {
	t.Setenv("NAVSHELL_SESSION_TTL", "forever")

	if _, err := ParseConfig(flag.NewFlagSet("navshell", flag.ContinueOnError), nil); err == nil {
		t.Fatal("expected parse error")
	}
}

func TestDecodeSessionKey(t *testing.T) {
	t.Parallel()

	key, err := DecodeSessionKey(strings.Repeat("0f", 32), nil)
	if err != nil {
		t.Fatalf("DecodeSessionKey() error = %v", err)
	}
	if len(key) != 32 || key[0] != 0x0f {
		t.Fatalf("key = %x", key)
	}

	if _, err := DecodeSessionKey("zz", nil); err == nil {
		t.Fatal("expected hex error")
	}
	if _, err := DecodeSessionKey(strings.Repeat("0f", 8), nil); err == nil {
		t.Fatal("expected short key error")
	}
}

func TestDecodeSessionKeyGeneratesEphemeralKey(t *testing.T) {
	t.Parallel()

	var logs bytes.Buffer
	key, err := DecodeSessionKey("  ", log.New(&logs, "", 0))
	if err != nil {
		t.Fatalf("DecodeSessionKey() error = %v", err)
	}
	if len(key) != 32 {
		t.Fatalf("len(key) = %d, want 32", len(key))
	}
	if !strings.Contains(logs.String(), "NAVSHELL_SESSION_KEY") {
		t.Fatalf("logs = %q, want warning", logs.String())
	}
}
