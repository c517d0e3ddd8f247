// Package navshell parses navshell command flags and launches the service.
package navshell

import (
	"context"
	"encoding/hex"
	"flag"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"strings"
	"time"

	entrypoint "github.com/louisbranch/navshell/internal/platform/cmd"
	navshellservice "github.com/louisbranch/navshell/internal/services/navshell"
	"github.com/louisbranch/navshell/internal/services/navshell/storage/sqlite"
	"github.com/louisbranch/navshell/internal/tools/sessionkey"
)

// Config holds navshell command configuration. Env names are read with the
// NAVSHELL_ prefix.
type Config struct {
	HTTPAddr            string        `env:"HTTP_ADDR" envDefault:"localhost:8094"`
	DBPath              string        `env:"DB_PATH" envDefault:"data/navshell.db"`
	SessionKey          string        `env:"SESSION_KEY"`
	SessionTTL          time.Duration `env:"SESSION_TTL" envDefault:"720h"`
	ReapInterval        time.Duration `env:"SESSION_REAP_INTERVAL" envDefault:"1h"`
	AssetBaseURL        string        `env:"ASSET_BASE_URL"`
	TrustForwardedProto bool          `env:"TRUST_FORWARDED_PROTO"`
}

// ParseConfig parses environment and flags into Config.
func ParseConfig(fs *flag.FlagSet, args []string) (Config, error) {
	var cfg Config
	if err := entrypoint.ParseConfig(&cfg); err != nil {
		return Config{}, err
	}

	fs.StringVar(&cfg.HTTPAddr, "http-addr", cfg.HTTPAddr, "The HTTP listen address")
	fs.StringVar(&cfg.DBPath, "db-path", cfg.DBPath, "The SQLite database path")
	fs.StringVar(&cfg.AssetBaseURL, "asset-base-url", cfg.AssetBaseURL, "The base URL for avatar images")
	fs.DurationVar(&cfg.SessionTTL, "session-ttl", cfg.SessionTTL, "The session lifetime")

	if err := entrypoint.ParseArgs(fs, args); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// DecodeSessionKey parses a hex key. An empty key yields a random one that
// only lives for this process.
func DecodeSessionKey(raw string, logger *log.Logger) ([]byte, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		if logger != nil {
			logger.Printf("warning: NAVSHELL_SESSION_KEY is empty; sessions will not survive a restart")
		}
		return sessionkey.Generate(nil, sessionkey.DefaultBytes)
	}
	key, err := hex.DecodeString(raw)
	if err != nil {
		return nil, fmt.Errorf("decode session key: %w", err)
	}
	if len(key) < sessionkey.DefaultBytes {
		return nil, fmt.Errorf("session key must be at least %d bytes", sessionkey.DefaultBytes)
	}
	return key, nil
}

// Run starts the navshell HTTP server.
func Run(ctx context.Context, cfg Config) error {
	return entrypoint.RunWithTelemetry(ctx, entrypoint.ServiceNavshell, func(ctx context.Context) error {
		logger := log.Default()
		key, err := DecodeSessionKey(cfg.SessionKey, logger)
		if err != nil {
			return err
		}
		if dir := filepath.Dir(cfg.DBPath); dir != "" && dir != "." {
			if err := os.MkdirAll(dir, 0o755); err != nil {
				return fmt.Errorf("create storage dir: %w", err)
			}
		}
		store, err := sqlite.Open(cfg.DBPath)
		if err != nil {
			return fmt.Errorf("open navshell store: %w", err)
		}
		defer func() {
			if err := store.Close(); err != nil {
				logger.Printf("close navshell store: %v", err)
			}
		}()

		server, err := navshellservice.NewServer(ctx, navshellservice.Config{
			HTTPAddr:            cfg.HTTPAddr,
			AssetBaseURL:        cfg.AssetBaseURL,
			Store:               store,
			SessionKey:          key,
			SessionTTL:          cfg.SessionTTL,
			TrustForwardedProto: cfg.TrustForwardedProto,
			ReapInterval:        cfg.ReapInterval,
			Logger:              logger,
		})
		if err != nil {
			return fmt.Errorf("init navshell server: %w", err)
		}
		defer server.Close()

		logger.Printf("navshell listening on %s", cfg.HTTPAddr)
		if err := server.ListenAndServe(ctx); err != nil {
			return fmt.Errorf("serve navshell: %w", err)
		}
		return nil
	})
}
