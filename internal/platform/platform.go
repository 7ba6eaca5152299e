package platform

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"runtime"
	"strings"
)

// Platform identifies an operating system family with a known per-user
// autostart mechanism.
type Platform string

const (
	Linux   Platform = "linux"
	Windows Platform = "windows"
	MacOS   Platform = "macos"
)

// ErrUnsupported is returned by ProfileFor when no autostart profile exists
// for the requested platform.
var ErrUnsupported = errors.New("unsupported platform")

// Detect maps the running operating system onto a Platform. The result may
// not have a profile; callers resolve it through ProfileFor and surface
// ErrUnsupported from there.
func Detect() Platform {
	switch runtime.GOOS {
	case "linux":
		return Linux
	case "windows":
		return Windows
	case "darwin":
		return MacOS
	default:
		return Platform(runtime.GOOS)
	}
}

// Profile describes how one platform implements per-user autostart: where the
// startup files live, what format they use, and which tool reveals the
// directory in the native file manager.
//
// Profiles are plain data resolved once through ProfileFor. Everything that
// varies per platform is a field here, so the rest of the system never
// branches on the operating system.
type Profile struct {
	// Platform is the key this profile was registered under.
	Platform Platform

	// Extension is the startup file suffix, including the leading dot.
	Extension string

	// CommentPrefix starts the marker line that embeds the original command
	// verbatim inside a startup file.
	CommentPrefix string

	// RevealCommand is the executable that opens the autostart directory in
	// the platform's file manager.
	RevealCommand string

	// SupportsRedirection reports whether the startup file format can route
	// the command's stdout/stderr to files on its own.
	SupportsRedirection bool

	// dirSegments is the autostart directory path relative to the user's
	// home directory.
	dirSegments []string
}

var profiles = map[Platform]Profile{
	Linux: {
		Platform:            Linux,
		Extension:           ".desktop",
		CommentPrefix:       "# ",
		RevealCommand:       "xdg-open",
		SupportsRedirection: false,
		dirSegments:         []string{".config", "autostart"},
	},
	Windows: {
		Platform:            Windows,
		Extension:           ".ps1",
		CommentPrefix:       "# ",
		RevealCommand:       "explorer",
		SupportsRedirection: true,
		dirSegments:         []string{"AppData", "Roaming", "Microsoft", "Windows", "Start Menu", "Programs", "Startup"},
	},
	MacOS: {
		Platform:            MacOS,
		Extension:           ".plist",
		CommentPrefix:       "<!--",
		RevealCommand:       "open",
		SupportsRedirection: true,
		dirSegments:         []string{"Library", "LaunchAgents"},
	},
}

// ProfileFor resolves the autostart profile for a platform. Unknown platforms
// yield ErrUnsupported.
func ProfileFor(p Platform) (Profile, error) {
	profile, ok := profiles[p]
	if !ok {
		return Profile{}, fmt.Errorf("%w: %s", ErrUnsupported, p)
	}
	return profile, nil
}

// DefaultDir returns the platform's autostart directory under the current
// user's home.
func (p Profile) DefaultDir() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("resolve home directory: %w", err)
	}
	return filepath.Join(append([]string{home}, p.dirSegments...)...), nil
}

// Comment wraps text in the platform's comment syntax for a single marker
// line. On macOS the XML comment needs an explicit terminator on the
// following line; the other platforms use a line prefix.
func (p Profile) Comment(text string) string {
	if p.Platform == MacOS {
		return p.CommentPrefix + text + "\n-->"
	}
	return p.CommentPrefix + text
}

// Uncomment recovers the text embedded by Comment from an already trimmed
// marker line.
func (p Profile) Uncomment(line string) string {
	return strings.TrimSpace(strings.TrimPrefix(line, p.CommentPrefix))
}
