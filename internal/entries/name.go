package entries

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"ustart/internal/logging"
)

// maxNameProbes caps how many ids Add tries for one name: the bare name
// first, then name1 through name999.
const maxNameProbes = 1000

// entryName splits command into the display name (its first whitespace
// delimited token) and the file stem: that token with any directory and
// extension stripped.
func entryName(command string) (name, stem string, err error) {
	fields := strings.Fields(command)
	if len(fields) == 0 {
		return "", "", ErrEmptyCommand
	}

	name = fields[0]
	stem = filepath.Base(name)
	// Keep dotfile names like ".profile-sync" whole instead of treating
	// them as a bare extension.
	if ext := filepath.Ext(stem); ext != "" && ext != stem {
		stem = strings.TrimSuffix(stem, ext)
	}
	if stem == "" || stem == "." || stem == string(filepath.Separator) {
		return "", "", fmt.Errorf("cannot derive an id from %q", name)
	}
	return name, stem, nil
}

// writablePath probes the store directory for the first candidate id that
// has no startup file yet.
func (s *Store) writablePath(stem string) (path, id string, err error) {
	s.logger.Debug("probing for a free id", logging.String("name", stem))

	id = stem
	path = filepath.Join(s.dir, id+s.profile.Extension)
	if _, statErr := os.Stat(path); errors.Is(statErr, fs.ErrNotExist) {
		return path, id, nil
	}
	for i := 1; i < maxNameProbes; i++ {
		id = fmt.Sprintf("%s%d", stem, i)
		path = filepath.Join(s.dir, id+s.profile.Extension)
		if _, statErr := os.Stat(path); errors.Is(statErr, fs.ErrNotExist) {
			return path, id, nil
		}
	}
	return "", "", fmt.Errorf("%w: no free id for %q after %d attempts", ErrTooManyItems, stem, maxNameProbes)
}
