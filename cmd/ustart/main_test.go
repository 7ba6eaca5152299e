package main

import (
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestCLIAddListRemoveFlow(t *testing.T) {
	env := setupCLITestEnv(t)

	out, _, err := runCLI(t, []string{"add", "backup --daily"}, env.configPath)
	if err != nil {
		t.Fatalf("add: %v", err)
	}
	requireContains(t, out, "Added backup")

	path := filepath.Join(env.autostartDir, "backup"+env.profile.Extension)
	if _, err := os.Stat(path); err != nil {
		t.Fatalf("expected startup file at %s: %v", path, err)
	}

	out, _, err = runCLI(t, []string{"list"}, env.configPath)
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	requireContains(t, out, "id")
	requireContains(t, out, "command")
	requireContains(t, out, "backup --daily")

	out, _, err = runCLI(t, []string{"remove", "backup"}, env.configPath)
	if err != nil {
		t.Fatalf("remove: %v", err)
	}
	requireContains(t, out, "Removed backup")
	if _, err := os.Stat(path); !errors.Is(err, fs.ErrNotExist) {
		t.Fatalf("expected startup file to be gone, got %v", err)
	}

	out, _, err = runCLI(t, []string{"list"}, env.configPath)
	if err != nil {
		t.Fatalf("list after remove: %v", err)
	}
	if strings.Contains(out, "backup --daily") {
		t.Fatalf("expected removed entry to disappear from listing, got %q", out)
	}
}

func TestCLIShortAliases(t *testing.T) {
	env := setupCLITestEnv(t)

	if _, _, err := runCLI(t, []string{"a", "job --nightly"}, env.configPath); err != nil {
		t.Fatalf("a: %v", err)
	}

	out, _, err := runCLI(t, []string{"l"}, env.configPath)
	if err != nil {
		t.Fatalf("l: %v", err)
	}
	requireContains(t, out, "job --nightly")

	if _, _, err := runCLI(t, []string{"r", "job"}, env.configPath); err != nil {
		t.Fatalf("r: %v", err)
	}
}

func TestCLIAddCollidingNamesGetSuffixes(t *testing.T) {
	env := setupCLITestEnv(t)

	out, _, err := runCLI(t, []string{"add", "poll --fast"}, env.configPath)
	if err != nil {
		t.Fatalf("first add: %v", err)
	}
	requireContains(t, out, "Added poll")

	out, _, err = runCLI(t, []string{"add", "poll --slow"}, env.configPath)
	if err != nil {
		t.Fatalf("second add: %v", err)
	}
	requireContains(t, out, "Added poll1")

	out, _, err = runCLI(t, []string{"list"}, env.configPath)
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	requireContains(t, out, "poll --fast")
	requireContains(t, out, "poll --slow")
}

func TestCLIAddRedirectionFlags(t *testing.T) {
	env := setupCLITestEnv(t)

	_, stderr, err := runCLI(t, []string{"add", "--stdout", "/tmp/out.log", "--stderr", "/tmp/err.log", "worker --poll"}, env.configPath)
	if err != nil {
		t.Fatalf("add: %v", err)
	}

	body, err := os.ReadFile(filepath.Join(env.autostartDir, "worker"+env.profile.Extension))
	if err != nil {
		t.Fatalf("read startup file: %v", err)
	}
	if env.profile.SupportsRedirection {
		requireContains(t, string(body), "/tmp/out.log")
		requireContains(t, string(body), "/tmp/err.log")
	} else {
		if strings.Contains(string(body), "/tmp/out.log") {
			t.Fatalf("expected redirection to be dropped, got body %q", body)
		}
		requireContains(t, stderr, "not supported")
	}
}

func TestCLINoArgsShowsUsage(t *testing.T) {
	env := setupCLITestEnv(t)

	stdout, stderr, err := runCLI(t, nil, env.configPath)
	if !errors.Is(err, errUsage) {
		t.Fatalf("expected usage sentinel, got %v", err)
	}
	requireContains(t, stderr, "Usage:")
	if strings.TrimSpace(stdout) != "" {
		t.Fatalf("expected empty stdout for bare invocation, got %q", stdout)
	}
}

func TestCLIVersionFlag(t *testing.T) {
	out, _, err := runCLI(t, []string{"--version"}, "")
	if err != nil {
		t.Fatalf("--version: %v", err)
	}
	requireContains(t, out, "version test")
}
