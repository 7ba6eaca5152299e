package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"ustart/internal/entries"
	"ustart/internal/preflight"
)

func newDoctorCommand(ctx *commandContext) *cobra.Command {
	return &cobra.Command{
		Use:   "doctor",
		Short: "Diagnose the autostart environment",
		Long: `Check that the autostart directory exists and is writable, that the
platform's file manager is available for ` + "`ustart open`" + `, and that every
registered entry can still be read back.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			profile, err := ctx.profile()
			if err != nil {
				return err
			}
			cfg, err := ctx.ensureConfig()
			if err != nil {
				return err
			}
			dir, err := entries.ResolveDir(cfg, profile)
			if err != nil {
				return err
			}

			stdout := cmd.OutOrStdout()
			colorize := shouldColorize(stdout)

			for _, line := range renderSectionHeader("Environment", colorize) {
				fmt.Fprintln(stdout, line)
			}
			fmt.Fprintln(stdout, renderStatusLine("Platform", statusInfo,
				fmt.Sprintf("%s (%s entries)", profile.Platform, profile.Extension), colorize))

			// Doctor only reports; it must not create the directory the way
			// the store would, so the checks run against the resolved path.
			ready := true
			for _, res := range preflight.RunAll(profile, dir) {
				kind := statusError
				switch {
				case res.Passed:
					kind = statusOK
				case res.Optional:
					kind = statusWarn
				}
				if !res.Passed && !res.Optional {
					ready = false
				}
				fmt.Fprintln(stdout, renderStatusLine(res.Name, kind, res.Detail, colorize))
			}

			fmt.Fprintln(stdout, entriesStatusLine(ctx, ready, colorize))
			return nil
		},
	}
}

func entriesStatusLine(ctx *commandContext, ready, colorize bool) string {
	const label = "Startup entries"
	if !ready {
		return renderStatusLine(label, statusWarn, "skipped (directory not usable)", colorize)
	}
	store, err := ctx.openStore()
	if err != nil {
		return renderStatusLine(label, statusError, err.Error(), colorize)
	}
	list, err := store.List()
	if err != nil {
		return renderStatusLine(label, statusError, err.Error(), colorize)
	}
	return renderStatusLine(label, statusInfo, fmt.Sprintf("%d registered", len(list)), colorize)
}
