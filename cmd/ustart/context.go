package main

import (
	"io"
	"log/slog"
	"strings"
	"sync"

	"github.com/spf13/cobra"

	"ustart/internal/config"
	"ustart/internal/entries"
	"ustart/internal/logging"
	"ustart/internal/platform"
)

// commandContext carries the lazily resolved state shared by every
// subcommand: the loaded configuration, the logger built from it, and the
// platform profile. The platform is detected exactly once, at construction,
// and every consumer receives it from here.
type commandContext struct {
	configFlag *string

	configOnce sync.Once
	config     *config.Config
	configErr  error

	logger *slog.Logger

	hostProfile platform.Profile
	profileErr  error
}

func newCommandContext(configFlag *string) *commandContext {
	ctx := &commandContext{configFlag: configFlag}
	ctx.hostProfile, ctx.profileErr = platform.ProfileFor(platform.Detect())
	return ctx
}

func (c *commandContext) configPath() string {
	if c.configFlag == nil {
		return ""
	}
	return strings.TrimSpace(*c.configFlag)
}

func (c *commandContext) ensureConfig() (*config.Config, error) {
	c.configOnce.Do(func() {
		cfg, _, _, err := config.Load(c.configPath())
		if err != nil {
			c.configErr = err
			return
		}
		c.config = cfg
	})
	return c.config, c.configErr
}

func (c *commandContext) initLogger(cfg *config.Config, output io.Writer) error {
	logger, err := logging.NewFromConfig(cfg, output)
	if err != nil {
		return err
	}
	c.logger = logger
	return nil
}

// log never returns nil, so commands annotated to skip config loading can
// still log; their messages go nowhere, which is what they want.
func (c *commandContext) log() *slog.Logger {
	if c.logger == nil {
		return logging.NewNop()
	}
	return c.logger
}

func (c *commandContext) profile() (platform.Profile, error) {
	return c.hostProfile, c.profileErr
}

func (c *commandContext) openStore() (*entries.Store, error) {
	cfg, err := c.ensureConfig()
	if err != nil {
		return nil, err
	}
	profile, err := c.profile()
	if err != nil {
		return nil, err
	}
	return entries.Open(cfg, profile, logging.NewComponentLogger(c.log(), "entries"))
}

func shouldSkipConfig(cmd *cobra.Command) bool {
	for c := cmd; c != nil; c = c.Parent() {
		if c.Annotations != nil && c.Annotations["skipConfigLoad"] == "true" {
			return true
		}
	}
	return false
}
