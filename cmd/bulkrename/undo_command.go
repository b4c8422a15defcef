package main

import (
	"github.com/spf13/cobra"

	"bulkrename/internal/store"
	"bulkrename/internal/undo"
)

func newUndoCommand(ctx *commandContext) *cobra.Command {
	var jsonOutput bool

	cmd := &cobra.Command{
		Use:   "undo",
		Short: "Reverse the most recent committed batch",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			logger, err := ctx.ensureLogger()
			if err != nil {
				return err
			}

			return ctx.withLock(func() error {
				return ctx.withStore(func(st *store.Store) error {
					manager := undo.NewManager(st, logger)
					rep, err := manager.Undo(cmd.Context())
					if err != nil {
						return err
					}
					if jsonOutput {
						return writeJSON(cmd, rep)
					}
					renderReport(cmd.OutOrStdout(), rep)
					return nil
				})
			})
		},
	}

	cmd.Flags().BoolVar(&jsonOutput, "json", false, "Output the undo report as JSON")
	return cmd
}
