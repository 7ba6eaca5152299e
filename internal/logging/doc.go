// Package logging assembles the structured slog loggers used across the
// ustart commands.
//
// It owns the console and JSON handlers, centralizes level plumbing
// (including the DEBUG environment override), and standardizes the attribute
// keys that commands and the entry store share. The package also provides a
// no-op logger for tests and wiring code that cannot fail.
//
// Prefer these constructors over hand-rolled slog setup so every component
// emits diagnostics with the same shape on the same stream.
package logging
