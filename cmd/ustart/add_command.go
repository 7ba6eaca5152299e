package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

func newAddCommand(ctx *commandContext) *cobra.Command {
	var stdoutPath string
	var stderrPath string

	cmd := &cobra.Command{
		Use:     "add <command>",
		Aliases: []string{"a"},
		Short:   "Register a command to run at login",
		Long: `Register a command to run at login. Quote the command so it arrives as
a single argument:

  ustart add "syncthing --no-browser"`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			store, err := ctx.openStore()
			if err != nil {
				return err
			}
			entry, err := store.Add(args[0], stdoutPath, stderrPath)
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Added %s (%s)\n", entry.ID, entry.Path)
			return nil
		},
	}

	cmd.Flags().StringVar(&stdoutPath, "stdout", "", "Redirect the command's standard output to this file")
	cmd.Flags().StringVar(&stderrPath, "stderr", "", "Redirect the command's standard error to this file")
	return cmd
}
