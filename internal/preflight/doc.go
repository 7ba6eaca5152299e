// Package preflight provides readiness checks for the filesystem paths
// and external tools that ustart depends on.
//
// The "ustart doctor" command runs RunAll and renders one status line per
// result. Checks never mutate anything; a failed check is advice, not an
// error, because most operations can still proceed (the store creates the
// Linux autostart directory itself, and the reveal tool is optional).
package preflight
