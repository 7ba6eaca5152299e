// Package reveal opens the autostart directory in the platform's file
// manager.
package reveal

import (
	"fmt"
	"log/slog"
	"os/exec"

	"ustart/internal/logging"
	"ustart/internal/platform"
)

// Folder launches the profile's reveal tool on dir and returns without
// waiting for it to exit. Only launch failures are reported; once started,
// the viewer belongs to the user.
func Folder(profile platform.Profile, dir string, logger *slog.Logger) error {
	if logger == nil {
		logger = logging.NewNop()
	}

	cmd := exec.Command(profile.RevealCommand, dir)
	if err := cmd.Start(); err != nil {
		return fmt.Errorf("launch %s: %w", profile.RevealCommand, err)
	}

	logger.Debug("revealed autostart directory",
		logging.String(logging.FieldCommand, profile.RevealCommand),
		logging.String(logging.FieldDir, dir))

	// Detach so the viewer outlives the CLI process.
	return cmd.Process.Release()
}
