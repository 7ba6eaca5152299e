package main

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"ustart/internal/platform"
)

type cliTestEnv struct {
	profile      platform.Profile
	autostartDir string
	configPath   string
}

// setupCLITestEnv builds a config file pointing at a temp autostart
// directory so CLI runs never touch the real user home. Expectations come
// from the host platform's profile; unsupported hosts skip.
func setupCLITestEnv(t *testing.T) *cliTestEnv {
	t.Helper()

	profile := hostProfile(t)
	base := t.TempDir()
	autostartDir := filepath.Join(base, "autostart")
	if err := os.MkdirAll(autostartDir, 0o755); err != nil {
		t.Fatalf("mkdir autostart: %v", err)
	}
	configPath := filepath.Join(base, "config.toml")
	writeTestConfig(t, configPath, autostartDir)

	return &cliTestEnv{
		profile:      profile,
		autostartDir: autostartDir,
		configPath:   configPath,
	}
}

func hostProfile(t *testing.T) platform.Profile {
	t.Helper()
	profile, err := platform.ProfileFor(platform.Detect())
	if err != nil {
		t.Skipf("unsupported host platform: %v", err)
	}
	return profile
}

func writeTestConfig(t *testing.T, path, autostartDir string) {
	t.Helper()
	content := fmt.Sprintf("[paths]\nautostart_dir = %q\n\n[logging]\nlevel = \"info\"\nformat = \"console\"\n", autostartDir)
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}
}

func runCLI(t *testing.T, args []string, configPath string) (string, string, error) {
	t.Helper()
	cmd := newRootCommand("test")
	var stdout, stderr bytes.Buffer
	cmd.SetOut(&stdout)
	cmd.SetErr(&stderr)
	var flags []string
	if configPath != "" {
		flags = append(flags, "--config", configPath)
	}
	cmd.SetArgs(append(flags, args...))
	err := cmd.Execute()
	return stdout.String(), stderr.String(), err
}

func requireContains(t *testing.T, output, substr string) {
	t.Helper()
	if !strings.Contains(output, substr) {
		t.Fatalf("expected %q to contain %q", output, substr)
	}
}

func nonEmptyLines(output string) []string {
	var lines []string
	for _, line := range strings.Split(output, "\n") {
		if strings.TrimSpace(line) != "" {
			lines = append(lines, line)
		}
	}
	return lines
}
