package config

import (
	"fmt"
	"strings"
)

func (c *Config) normalize() error {
	if err := c.normalizePaths(); err != nil {
		return err
	}
	c.normalizeLogging()
	return nil
}

func (c *Config) normalizePaths() error {
	trimmed := strings.TrimSpace(c.Paths.AutostartDir)
	if trimmed == "" {
		c.Paths.AutostartDir = ""
		return nil
	}
	expanded, err := expandPath(trimmed)
	if err != nil {
		return fmt.Errorf("paths.autostart_dir: %w", err)
	}
	c.Paths.AutostartDir = expanded
	return nil
}

func (c *Config) normalizeLogging() {
	c.Logging.Level = strings.ToLower(strings.TrimSpace(c.Logging.Level))
	if c.Logging.Level == "" {
		c.Logging.Level = defaultLogLevel
	}
	c.Logging.Format = strings.ToLower(strings.TrimSpace(c.Logging.Format))
	if c.Logging.Format == "" {
		c.Logging.Format = defaultLogFormat
	}
}
