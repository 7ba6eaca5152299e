package testsupport

import (
	"os"
	"path/filepath"
	"runtime"
	"testing"

	"ustart/internal/config"
)

// ConfigOption allows callers to customize the generated test configuration.
type ConfigOption func(*configBuilder)

type configBuilder struct {
	t   testing.TB
	cfg *config.Config
}

// NewConfig produces a config whose autostart directory points at a fresh,
// existing temp directory unique to the test. Options apply on top.
func NewConfig(t testing.TB, opts ...ConfigOption) *config.Config {
	t.Helper()

	cfgVal := config.Default()
	cfgVal.Paths.AutostartDir = filepath.Join(t.TempDir(), "autostart")
	if err := os.MkdirAll(cfgVal.Paths.AutostartDir, 0o755); err != nil {
		t.Fatalf("mkdir autostart dir: %v", err)
	}

	builder := &configBuilder{t: t, cfg: &cfgVal}
	for _, opt := range opts {
		opt(builder)
	}

	if err := builder.cfg.Validate(); err != nil {
		t.Fatalf("test config invalid: %v", err)
	}
	return builder.cfg
}

// WithAutostartDir points the config at dir. The directory is not created,
// so tests can exercise missing-directory behavior.
func WithAutostartDir(dir string) ConfigOption {
	return func(b *configBuilder) {
		b.cfg.Paths.AutostartDir = dir
	}
}

// WithLogging overrides the logging level and format on the test config.
func WithLogging(level, format string) ConfigOption {
	return func(b *configBuilder) {
		b.cfg.Logging.Level = level
		b.cfg.Logging.Format = format
	}
}

// WithStubbedBinaries writes stub executables for the provided names and
// prepends their directory to PATH for the duration of the test.
func WithStubbedBinaries(names ...string) ConfigOption {
	return func(b *configBuilder) {
		StubBinaries(b.t, names...)
	}
}

// StubBinaries writes no-op executables for the provided names into a fresh
// bin directory, prepends it to PATH until the test ends, and returns it.
// The stubs are shell scripts, so callers are skipped on Windows.
func StubBinaries(t testing.TB, names ...string) string {
	t.Helper()

	if runtime.GOOS == "windows" {
		t.Skip("binary stubs require a POSIX shell")
	}

	binDir := filepath.Join(t.TempDir(), "bin")
	if err := os.MkdirAll(binDir, 0o755); err != nil {
		t.Fatalf("mkdir bin dir: %v", err)
	}
	script := []byte("#!/bin/sh\nexit 0\n")
	for _, name := range names {
		target := filepath.Join(binDir, name)
		if err := os.WriteFile(target, script, 0o755); err != nil {
			t.Fatalf("write stub %s: %v", name, err)
		}
	}

	oldPath := os.Getenv("PATH")
	if err := os.Setenv("PATH", binDir+string(os.PathListSeparator)+oldPath); err != nil {
		t.Fatalf("set PATH: %v", err)
	}
	t.Cleanup(func() {
		_ = os.Setenv("PATH", oldPath)
	})
	return binDir
}
