package sessionkey

import (
	"bytes"
	"errors"
	"flag"
	"io"
	"strings"
	"testing"
)

func TestParseConfigDefaults(t *testing.T) {
	t.Parallel()

	cfg, err := ParseConfig(flag.NewFlagSet("session-key", flag.ContinueOnError), nil)
	if err != nil {
		t.Fatalf("ParseConfig() error = %v", err)
	}
	if cfg.Bytes != DefaultBytes {
		t.Fatalf("Bytes = %d, want %d", cfg.Bytes, DefaultBytes)
	}
}

func TestParseConfigOverrideBytes(t *testing.T) {
	t.Parallel()

	cfg, err := ParseConfig(flag.NewFlagSet("session-key", flag.ContinueOnError), []string{"-bytes", "48"})
	if err != nil {
		t.Fatalf("ParseConfig() error = %v", err)
	}
	if cfg.Bytes != 48 {
		t.Fatalf("Bytes = %d, want 48", cfg.Bytes)
	}
}

func TestRunWritesHexAssignment(t *testing.T) {
	t.Parallel()

	var out bytes.Buffer
	reader := bytes.NewReader(bytes.Repeat([]byte{0xab}, DefaultBytes))
	if err := Run(Config{Bytes: DefaultBytes}, &out, reader); err != nil {
		t.Fatalf("Run() error = %v", err)
	}
	want := EnvName + "=" + strings.Repeat("ab", DefaultBytes) + "\n"
	if out.String() != want {
		t.Fatalf("output = %q, want %q", out.String(), want)
	}
}

func TestRunRejectsShortKeys(t *testing.T) {
	t.Parallel()

	if err := Run(Config{Bytes: 16}, io.Discard, nil); err == nil {
		t.Fatal("expected short key error")
	}
}

func TestRunRequiresOutput(t *testing.T) {
	t.Parallel()

	if err := Run(Config{Bytes: DefaultBytes}, nil, nil); err == nil {
		t.Fatal("expected output error")
	}
}

type failingReader struct{}

func (failingReader) Read([]byte) (int, error) { return 0, errors.New("boom") }

func TestGenerateWrapsReaderErrors(t *testing.T) {
	t.Parallel()

	_, err := Generate(failingReader{}, DefaultBytes)
	if err == nil || !strings.Contains(err.Error(), "generate random bytes") {
		t.Fatalf("Generate() error = %v", err)
	}
}
