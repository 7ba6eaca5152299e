package testsupport

import (
	"log/slog"
	"testing"

	"ustart/internal/config"
	"ustart/internal/entries"
	"ustart/internal/platform"
)

// MustOpenStore opens an entry store for tests, resolving the profile for
// the requested platform. A nil logger falls back to the store's no-op.
func MustOpenStore(t testing.TB, cfg *config.Config, p platform.Platform, logger *slog.Logger) *entries.Store {
	t.Helper()

	profile, err := platform.ProfileFor(p)
	if err != nil {
		t.Fatalf("platform.ProfileFor(%s): %v", p, err)
	}
	store, err := entries.Open(cfg, profile, logger)
	if err != nil {
		t.Fatalf("entries.Open: %v", err)
	}
	return store
}
