package entries

import (
	"bufio"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"ustart/internal/logging"
)

// List reads every startup file carrying the profile's extension and
// recovers the command embedded in its marker line. Entries come back
// sorted by id so output is stable regardless of directory enumeration
// order. An unreadable or empty file fails the whole listing.
func (s *Store) List() ([]Entry, error) {
	dirents, err := os.ReadDir(s.dir)
	if err != nil {
		return nil, fmt.Errorf("read autostart directory: %w", err)
	}

	entries := make([]Entry, 0, len(dirents))
	for _, dirent := range dirents {
		if dirent.IsDir() {
			continue
		}
		fileName := dirent.Name()
		if !strings.HasSuffix(fileName, s.profile.Extension) {
			continue
		}
		path := filepath.Join(s.dir, fileName)
		command, err := s.readCommand(path)
		if err != nil {
			return nil, err
		}
		entries = append(entries, Entry{
			ID:      strings.TrimSuffix(fileName, s.profile.Extension),
			Command: command,
			Path:    path,
		})
	}

	sort.Slice(entries, func(i, j int) bool { return entries[i].ID < entries[j].ID })

	s.logger.Debug("listed startup entries",
		logging.Int("count", len(entries)),
		logging.String(logging.FieldDir, s.dir))
	return entries, nil
}

// readCommand returns the command embedded in the file's first non-blank,
// non-shebang line, with the comment syntax stripped.
func (s *Store) readCommand(path string) (string, error) {
	file, err := os.Open(path)
	if err != nil {
		return "", fmt.Errorf("read %s: %w", path, err)
	}
	defer file.Close()

	scanner := bufio.NewScanner(file)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#!") {
			continue
		}
		return s.profile.Uncomment(line), nil
	}
	if err := scanner.Err(); err != nil {
		return "", fmt.Errorf("read %s: %w", path, err)
	}
	return "", fmt.Errorf("%w: %s", ErrEmptyFile, path)
}
