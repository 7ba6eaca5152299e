//go:build windows

package preflight

// accessReadWrite always succeeds on Windows. There is no faccessat
// equivalent; the Stat and IsDir checks already ran, and the actual file
// operation will surface permission errors with a better message anyway.
func accessReadWrite(string) error {
	return nil
}
