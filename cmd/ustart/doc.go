// Package main hosts the ustart CLI entrypoint and command graph.
//
// The cobra-based command tree maps terminal invocations onto the startup
// entry store: registering commands to run at login, listing and removing
// the generated files, and revealing the autostart directory. Configuration
// resolution, platform detection, and logger setup are centralized in
// commandContext so the subcommands stay declarative.
//
// Keep this package lean: add new functionality by extending the internal
// packages first, then surface it through dedicated commands or flags here.
package main
