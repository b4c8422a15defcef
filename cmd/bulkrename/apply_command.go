package main

import (
	"github.com/spf13/cobra"

	"bulkrename/internal/batch"
	"bulkrename/internal/store"
)

func newApplyCommand(ctx *commandContext) *cobra.Command {
	var flags templateFlags
	var jsonOutput bool

	cmd := &cobra.Command{
		Use:   "apply <file>...",
		Short: "Rename files through the two-phase executor",
		Long: "Apply stages every file to a temporary name in its own directory, then moves " +
			"each temp to its final name. Any failure rolls the batch back; a committed " +
			"batch is recorded in the undo history.",
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg := ctx.configValue()
			logger, err := ctx.ensureLogger()
			if err != nil {
				return err
			}

			paths, err := collectFiles(args, flags.sortFiles)
			if err != nil {
				return err
			}
			tpl, err := resolveTemplate(ctx, cmd, &flags, cfg)
			if err != nil {
				return err
			}

			return ctx.withLock(func() error {
				return ctx.withStore(func(st *store.Store) error {
					targets := flags.generateTargets(paths, tpl)
					plan, err := batch.BuildPlan(paths, targets, batch.PlanOptions{
						Strategy:      tpl.Collision,
						MaxProbes:     cfg.Rename.MaxSuffixProbes,
						TempExtension: cfg.Rename.TempExtension,
					})
					if err != nil {
						return err
					}

					executor := batch.NewExecutor(st, logger)
					rep, execErr := executor.Execute(cmd.Context(), plan)
					if rep != nil {
						if jsonOutput {
							if err := writeJSON(cmd, rep); err != nil {
								return err
							}
						} else {
							renderReport(cmd.OutOrStdout(), rep)
						}
					}
					return execErr
				})
			})
		},
	}

	flags.register(cmd)
	cmd.Flags().BoolVar(&jsonOutput, "json", false, "Output the batch report as JSON")
	return cmd
}
