package testsupport

import (
	"os"
	"path/filepath"
	"testing"
)

// WriteStartupFile drops a file with the given name and content into dir,
// creating dir when needed, and returns its path. Tests use it to seed
// autostart directories with files the store did not write itself.
func WriteStartupFile(t testing.TB, dir, name, content string) string {
	t.Helper()

	if err := os.MkdirAll(dir, 0o755); err != nil {
		t.Fatalf("mkdir %s: %v", dir, err)
	}
	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write %s: %v", path, err)
	}
	return path
}
