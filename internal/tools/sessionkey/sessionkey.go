// Package sessionkey generates signing keys for navshell session tokens.
package sessionkey

import (
	"crypto/rand"
	"encoding/hex"
	"errors"
	"flag"
	"fmt"
	"io"
)

// DefaultBytes matches the minimum key length accepted by the session signer.
const DefaultBytes = 32

// EnvName is the variable the navshell command reads the key from.
const EnvName = "NAVSHELL_SESSION_KEY"

// Config holds configuration for session key generation.
type Config struct {
	Bytes int
}

// ParseConfig parses flags into a Config.
func ParseConfig(fs *flag.FlagSet, args []string) (Config, error) {
	cfg := Config{Bytes: DefaultBytes}
	fs.IntVar(&cfg.Bytes, "bytes", cfg.Bytes, "number of random bytes")
	if err := fs.Parse(args); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Generate reads n random bytes from reader, or crypto/rand when nil.
func Generate(reader io.Reader, n int) ([]byte, error) {
	if n < DefaultBytes {
		return nil, fmt.Errorf("bytes must be at least %d", DefaultBytes)
	}
	if reader == nil {
		reader = rand.Reader
	}
	buf := make([]byte, n)
	if _, err := io.ReadFull(reader, buf); err != nil {
		return nil, fmt.Errorf("generate random bytes: %w", err)
	}
	return buf, nil
}

// Run generates the key and writes it to out as an env assignment.
func Run(cfg Config, out io.Writer, reader io.Reader) error {
	if out == nil {
		return errors.New("output is required")
	}
	key, err := Generate(reader, cfg.Bytes)
	if err != nil {
		return err
	}
	_, err = fmt.Fprintf(out, "%s=%s\n", EnvName, hex.EncodeToString(key))
	return err
}
