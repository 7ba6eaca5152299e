// Package deps inventories the external tools ustart can call and checks
// their availability on PATH.
package deps

import (
	"fmt"
	"os/exec"
	"strings"

	"ustart/internal/platform"
)

// Requirement defines an external tool ustart relies on.
type Requirement struct {
	Name        string
	Command     string
	Description string
	Optional    bool
}

// Status reports the availability of a tool.
type Status struct {
	Name        string
	Command     string
	Description string
	Optional    bool
	Available   bool
	Detail      string
}

// Reveal describes the file manager launcher behind `ustart open`. It is
// optional: every other command works without it.
func Reveal(profile platform.Profile) Requirement {
	return Requirement{
		Name:        "File manager",
		Command:     profile.RevealCommand,
		Description: "opens the autostart directory from `ustart open`",
		Optional:    true,
	}
}

// For lists every external tool the given platform profile can use.
func For(profile platform.Profile) []Requirement {
	return []Requirement{Reveal(profile)}
}

// CheckBinaries evaluates the provided requirements and reports availability.
func CheckBinaries(requirements []Requirement) []Status {
	results := make([]Status, 0, len(requirements))
	for _, req := range requirements {
		cmd := strings.TrimSpace(req.Command)
		status := Status{
			Name:        req.Name,
			Command:     cmd,
			Description: strings.TrimSpace(req.Description),
			Optional:    req.Optional,
		}
		if cmd == "" {
			status.Available = false
			status.Detail = "command not configured"
			results = append(results, status)
			continue
		}
		if _, err := exec.LookPath(cmd); err != nil {
			status.Available = false
			status.Detail = fmt.Sprintf("binary %q not found", cmd)
			results = append(results, status)
			continue
		}
		status.Available = true
		results = append(results, status)
	}
	return results
}
