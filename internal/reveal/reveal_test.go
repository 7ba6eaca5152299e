package reveal_test

import (
	"strings"
	"testing"

	"ustart/internal/platform"
	"ustart/internal/reveal"
	"ustart/internal/testsupport"
)

func TestFolderLaunchesViewer(t *testing.T) {
	profile, err := platform.ProfileFor(platform.Linux)
	if err != nil {
		t.Fatalf("ProfileFor: %v", err)
	}
	testsupport.StubBinaries(t, profile.RevealCommand)

	if err := reveal.Folder(profile, t.TempDir(), nil); err != nil {
		t.Fatalf("Folder failed: %v", err)
	}
}

func TestFolderReportsLaunchFailure(t *testing.T) {
	profile, err := platform.ProfileFor(platform.Linux)
	if err != nil {
		t.Fatalf("ProfileFor: %v", err)
	}
	// A PATH with nothing on it guarantees the reveal tool cannot start.
	t.Setenv("PATH", t.TempDir())

	err = reveal.Folder(profile, t.TempDir(), nil)
	if err == nil {
		t.Fatal("Folder succeeded without a reveal tool")
	}
	if !strings.Contains(err.Error(), "launch "+profile.RevealCommand) {
		t.Fatalf("error = %v", err)
	}
}
