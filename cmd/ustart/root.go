package main

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"
)

// errUsage marks the bare invocation: the usage text has been written to
// stderr and the process must exit nonzero without printing anything else.
var errUsage = errors.New("usage shown")

func newRootCommand(version string) *cobra.Command {
	var configFlag string

	ctx := newCommandContext(&configFlag)

	rootCmd := &cobra.Command{
		Use:   "ustart",
		Short: "Manage per-user autostart entries",
		Long: `ustart registers shell commands to run at login by generating the
platform-native startup file: a desktop entry on Linux, a PowerShell
script on Windows, and a launchd property list on macOS.`,
		Version:       version,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if shouldSkipConfig(cmd) {
				return nil
			}
			cfg, err := ctx.ensureConfig()
			if err != nil {
				return err
			}
			return ctx.initLogger(cfg, cmd.ErrOrStderr())
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			fmt.Fprint(cmd.ErrOrStderr(), cmd.UsageString())
			return errUsage
		},
	}

	rootCmd.PersistentFlags().StringVarP(&configFlag, "config", "c", "", "Configuration file path")

	rootCmd.AddCommand(newAddCommand(ctx))
	rootCmd.AddCommand(newListCommand(ctx))
	rootCmd.AddCommand(newRemoveCommand(ctx))
	rootCmd.AddCommand(newOpenCommand(ctx))
	rootCmd.AddCommand(newConfigCommand(ctx))
	rootCmd.AddCommand(newDoctorCommand(ctx))

	return rootCmd
}
