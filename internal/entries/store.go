package entries

import (
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"

	"ustart/internal/config"
	"ustart/internal/logging"
	"ustart/internal/platform"
)

// Sentinel errors reported by the store. Callers branch on them with
// errors.Is to pick messaging and exit behavior.
var (
	// ErrTooManyItems means the id probe exhausted every candidate name.
	ErrTooManyItems = errors.New("too many startup entries with the same name")
	// ErrNotFound means no startup file exists for the requested id.
	ErrNotFound = errors.New("startup entry not found")
	// ErrEmptyFile means a startup file has no usable content line.
	ErrEmptyFile = errors.New("startup file is empty")
	// ErrEmptyCommand means the command has no first token to derive an id from.
	ErrEmptyCommand = errors.New("command is empty")
)

// Entry is one managed startup command.
type Entry struct {
	// ID is the startup file's name without directory or extension, the
	// handle that remove takes.
	ID string
	// Command is the command line the entry runs at login.
	Command string
	// Path is the absolute startup file location.
	Path string
}

// Store manages the startup files inside one autostart directory.
type Store struct {
	dir     string
	profile platform.Profile
	logger  *slog.Logger
}

// ResolveDir returns the autostart directory the store would manage: the
// configured override when set, the profile default otherwise. It never
// touches the filesystem, so diagnostics can inspect the path without the
// side effects of Open.
func ResolveDir(cfg *config.Config, profile platform.Profile) (string, error) {
	if cfg != nil && cfg.Paths.AutostartDir != "" {
		return cfg.Paths.AutostartDir, nil
	}
	return profile.DefaultDir()
}

// Open resolves the autostart directory from configuration, falling back to
// the profile default, and returns a store bound to it. On Linux a missing
// directory is created, since desktop environments only make it on demand;
// the other platforms ship theirs with the OS.
func Open(cfg *config.Config, profile platform.Profile, logger *slog.Logger) (*Store, error) {
	if logger == nil {
		logger = logging.NewNop()
	}

	dir, err := ResolveDir(cfg, profile)
	if err != nil {
		return nil, err
	}

	if profile.Platform == platform.Linux {
		if _, err := os.Stat(dir); errors.Is(err, fs.ErrNotExist) {
			logger.Warn("autostart directory not found, creating it", logging.String(logging.FieldDir, dir))
			if err := os.MkdirAll(dir, 0o755); err != nil {
				return nil, fmt.Errorf("create autostart directory: %w", err)
			}
		}
	}

	return &Store{dir: dir, profile: profile, logger: logger}, nil
}

// Dir returns the autostart directory this store manages.
func (s *Store) Dir() string { return s.dir }

// Add renders and writes a startup file for command, probing for a free id
// derived from the command's first token. stdoutPath and stderrPath are
// optional redirection targets; platforms whose startup file format cannot
// express redirection drop them with a warning.
func (s *Store) Add(command, stdoutPath, stderrPath string) (*Entry, error) {
	name, stem, err := entryName(command)
	if err != nil {
		return nil, err
	}

	if (stdoutPath != "" || stderrPath != "") && !s.profile.SupportsRedirection {
		s.logger.Warn("--stdout and --stderr are not supported by this platform's startup files; append `> /path/to/output.log 2> /path/to/error.log` to the command instead")
		stdoutPath, stderrPath = "", ""
	}

	path, id, err := s.writablePath(stem)
	if err != nil {
		return nil, err
	}

	body := s.profile.Render(name, command, stdoutPath, stderrPath)
	if err := os.WriteFile(path, []byte(body), 0o644); err != nil {
		return nil, fmt.Errorf("write startup file: %w", err)
	}

	s.logger.Debug("wrote startup file",
		logging.String(logging.FieldID, id),
		logging.String(logging.FieldPath, path),
		logging.String(logging.FieldCommand, command))

	return &Entry{ID: id, Command: command, Path: path}, nil
}

// Remove deletes the startup file for id. A missing entry surfaces
// ErrNotFound so callers can decide how loudly to fail.
func (s *Store) Remove(id string) error {
	if id == "" || id == "." || id == ".." || id != filepath.Base(id) {
		return fmt.Errorf("invalid id %q", id)
	}

	path := filepath.Join(s.dir, id+s.profile.Extension)
	if _, err := os.Stat(path); err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return fmt.Errorf("%w: %s", ErrNotFound, id)
		}
		return fmt.Errorf("inspect %s: %w", path, err)
	}
	if err := os.Remove(path); err != nil {
		return fmt.Errorf("remove %s: %w", path, err)
	}

	s.logger.Debug("removed startup file",
		logging.String(logging.FieldID, id),
		logging.String(logging.FieldPath, path))
	return nil
}
