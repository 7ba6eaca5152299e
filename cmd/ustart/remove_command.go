package main

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"ustart/internal/entries"
	"ustart/internal/logging"
)

func newRemoveCommand(ctx *commandContext) *cobra.Command {
	return &cobra.Command{
		Use:     "remove <id>",
		Aliases: []string{"r"},
		Short:   "Delete a startup entry by id",
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			store, err := ctx.openStore()
			if err != nil {
				return err
			}
			id := args[0]
			if err := store.Remove(id); err != nil {
				// A missing id is advice, not a failure: the directory is
				// already in the requested state.
				if errors.Is(err, entries.ErrNotFound) {
					ctx.log().Error("no startup entry with that id; run `ustart list` to see the registered ids",
						logging.String(logging.FieldID, id))
					return nil
				}
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Removed %s\n", id)
			return nil
		},
	}
}
