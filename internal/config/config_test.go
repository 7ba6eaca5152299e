package config_test

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"ustart/internal/config"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.toml")
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}
	return path
}

func TestLoadMissingFileUsesDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "missing.toml")

	cfg, resolved, exists, err := config.Load(path)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if exists {
		t.Error("exists = true for a missing file")
	}
	if resolved != path {
		t.Errorf("resolved = %q, want %q", resolved, path)
	}
	if cfg.Logging.Level != "info" || cfg.Logging.Format != "console" {
		t.Errorf("defaults not applied: %+v", cfg.Logging)
	}
	if cfg.Paths.AutostartDir != "" {
		t.Errorf("autostart_dir = %q, want empty", cfg.Paths.AutostartDir)
	}
}

func TestLoadReadsFile(t *testing.T) {
	dir := t.TempDir()
	path := writeConfig(t, `
[paths]
autostart_dir = "`+strings.ReplaceAll(dir, `\`, `\\`)+`"

[logging]
level = "debug"
format = "json"
`)

	cfg, _, exists, err := config.Load(path)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if !exists {
		t.Error("exists = false for a present file")
	}
	if cfg.Paths.AutostartDir != dir {
		t.Errorf("autostart_dir = %q, want %q", cfg.Paths.AutostartDir, dir)
	}
	if cfg.Logging.Level != "debug" {
		t.Errorf("level = %q", cfg.Logging.Level)
	}
	if cfg.Logging.Format != "json" {
		t.Errorf("format = %q", cfg.Logging.Format)
	}
}

func TestLoadExpandsTilde(t *testing.T) {
	home, err := os.UserHomeDir()
	if err != nil {
		t.Skipf("no home directory: %v", err)
	}
	path := writeConfig(t, `
[paths]
autostart_dir = "~/custom-autostart"
`)

	cfg, _, _, err := config.Load(path)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	want := filepath.Join(home, "custom-autostart")
	if cfg.Paths.AutostartDir != want {
		t.Errorf("autostart_dir = %q, want %q", cfg.Paths.AutostartDir, want)
	}
}

func TestLoadNormalizesLoggingCase(t *testing.T) {
	path := writeConfig(t, `
[logging]
level = "WARN"
format = "Console"
`)

	cfg, _, _, err := config.Load(path)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if cfg.Logging.Level != "warn" {
		t.Errorf("level = %q", cfg.Logging.Level)
	}
	if cfg.Logging.Format != "console" {
		t.Errorf("format = %q", cfg.Logging.Format)
	}
}

func TestLoadRejectsUnknownLevel(t *testing.T) {
	path := writeConfig(t, `
[logging]
level = "loud"
`)

	_, _, _, err := config.Load(path)
	if err == nil {
		t.Fatal("expected a validation error")
	}
	if !strings.Contains(err.Error(), "logging.level") {
		t.Fatalf("error %q does not name the field", err)
	}
}

func TestLoadRejectsUnknownFormat(t *testing.T) {
	path := writeConfig(t, `
[logging]
format = "yaml"
`)

	_, _, _, err := config.Load(path)
	if err == nil {
		t.Fatal("expected a validation error")
	}
	if !strings.Contains(err.Error(), "logging.format") {
		t.Fatalf("error %q does not name the field", err)
	}
}

func TestDefaultConfigPath(t *testing.T) {
	path, err := config.DefaultConfigPath()
	if err != nil {
		t.Fatalf("DefaultConfigPath failed: %v", err)
	}
	if !strings.HasSuffix(path, filepath.Join(".config", "ustart", "config.toml")) {
		t.Errorf("unexpected path %q", path)
	}
}

func TestCreateSample(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "config.toml")

	if err := config.CreateSample(path); err != nil {
		t.Fatalf("CreateSample failed: %v", err)
	}

	content, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read sample: %v", err)
	}
	for _, want := range []string{"[paths]", "autostart_dir", "[logging]"} {
		if !strings.Contains(string(content), want) {
			t.Errorf("sample missing %q", want)
		}
	}

	// The shipped sample must itself load cleanly.
	if _, _, _, err := config.Load(path); err != nil {
		t.Fatalf("sample config does not load: %v", err)
	}
}

func TestExpandPath(t *testing.T) {
	home, err := os.UserHomeDir()
	if err != nil {
		t.Skipf("no home directory: %v", err)
	}

	got, err := config.ExpandPath("~")
	if err != nil {
		t.Fatalf("ExpandPath(~) failed: %v", err)
	}
	if got != home {
		t.Errorf("ExpandPath(~) = %q, want %q", got, home)
	}

	got, err = config.ExpandPath("~/logs")
	if err != nil {
		t.Fatalf("ExpandPath(~/logs) failed: %v", err)
	}
	if got != filepath.Join(home, "logs") {
		t.Errorf("ExpandPath(~/logs) = %q", got)
	}

	got, err = config.ExpandPath("relative/dir")
	if err != nil {
		t.Fatalf("ExpandPath(relative) failed: %v", err)
	}
	if !filepath.IsAbs(got) {
		t.Errorf("ExpandPath(relative) = %q, want absolute", got)
	}
}
