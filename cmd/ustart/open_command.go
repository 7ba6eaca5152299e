package main

import (
	"github.com/spf13/cobra"

	"ustart/internal/logging"
	"ustart/internal/reveal"
)

func newOpenCommand(ctx *commandContext) *cobra.Command {
	return &cobra.Command{
		Use:     "open",
		Aliases: []string{"o"},
		Short:   "Reveal the autostart directory in the file manager",
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			store, err := ctx.openStore()
			if err != nil {
				return err
			}
			profile, err := ctx.profile()
			if err != nil {
				return err
			}
			// Headless machines have no file manager; that is not worth a
			// nonzero exit.
			if err := reveal.Folder(profile, store.Dir(), ctx.log()); err != nil {
				ctx.log().Warn("could not open the autostart directory",
					logging.String(logging.FieldDir, store.Dir()),
					logging.Error(err))
			}
			return nil
		},
	}
}
