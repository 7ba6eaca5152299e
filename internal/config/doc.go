// Package config loads, normalizes, and validates ustart configuration data.
//
// It supplies repository defaults, expands user paths (including tilde
// shortcuts), and reads TOML files from the per-user config location or a
// project-local ustart.toml. The Config type centralizes the autostart
// directory override and logging knobs the CLI needs.
//
// Always obtain settings through this package so downstream code receives
// sanitized paths, canonical log formats, and clear validation errors.
package config
