package preflight

import (
	"ustart/internal/deps"
	"ustart/internal/platform"
)

// Result reports the outcome of a single preflight check.
type Result struct {
	Name     string
	Passed   bool
	Optional bool
	Detail   string
}

// RunAll executes every environment check for the resolved profile and
// autostart directory: directory existence and permissions, plus the
// availability of the platform's external tools.
func RunAll(profile platform.Profile, autostartDir string) []Result {
	var results []Result
	results = append(results, CheckDirectoryAccess("Autostart directory", autostartDir))
	results = append(results, CheckTools(profile)...)
	return results
}

// CheckTools reports the availability of the profile's external tools.
func CheckTools(profile platform.Profile) []Result {
	statuses := deps.CheckBinaries(deps.For(profile))
	results := make([]Result, 0, len(statuses))
	for _, status := range statuses {
		detail := status.Detail
		if status.Available {
			detail = status.Command
		}
		results = append(results, Result{
			Name:     status.Name,
			Passed:   status.Available,
			Optional: status.Optional,
			Detail:   detail,
		})
	}
	return results
}
