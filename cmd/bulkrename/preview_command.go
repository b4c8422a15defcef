package main

import (
	"fmt"
	"path/filepath"

	"github.com/spf13/cobra"

	"bulkrename/internal/batch"
)

// previewRow is the JSON shape of one preview line.
type previewRow struct {
	Origin string `json:"origin"`
	Target string `json:"target"`
	Note   string `json:"note,omitempty"`
}

func newPreviewCommand(ctx *commandContext) *cobra.Command {
	var flags templateFlags
	var jsonOutput bool

	cmd := &cobra.Command{
		Use:   "preview <file>...",
		Short: "Show the renames a template would perform without touching files",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg := ctx.configValue()

			paths, err := collectFiles(args, flags.sortFiles)
			if err != nil {
				return err
			}
			tpl, err := resolveTemplate(ctx, cmd, &flags, cfg)
			if err != nil {
				return err
			}

			targets := flags.generateTargets(paths, tpl)
			plan, err := batch.BuildPlan(paths, targets, batch.PlanOptions{
				Strategy:      tpl.Collision,
				MaxProbes:     cfg.Rename.MaxSuffixProbes,
				TempExtension: cfg.Rename.TempExtension,
			})
			if err != nil {
				return err
			}

			rows := previewRows(plan)
			if jsonOutput {
				return writeJSON(cmd, rows)
			}

			out := cmd.OutOrStdout()
			if len(rows) == 0 {
				fmt.Fprintln(out, "Nothing to rename.")
				return nil
			}
			tableRows := make([][]string, 0, len(rows))
			for i, row := range rows {
				tableRows = append(tableRows, []string{
					fmt.Sprintf("%d", i+1),
					filepath.Base(row.Origin),
					filepath.Base(row.Target),
					row.Note,
				})
			}
			fmt.Fprintln(out, renderTable(
				[]string{"#", "Origin", "Target", "Note"},
				tableRows,
				[]columnAlignment{alignRight, alignLeft, alignLeft, alignLeft},
			))
			fmt.Fprintf(out, "%d to rename, %d dropped. Run `bulkrename apply` to commit.\n",
				len(plan.Entries), len(plan.Dropped))
			return nil
		},
	}

	flags.register(cmd)
	cmd.Flags().BoolVar(&jsonOutput, "json", false, "Output as JSON")
	return cmd
}

func previewRows(plan *batch.Plan) []previewRow {
	rows := make([]previewRow, 0, len(plan.Entries)+len(plan.Dropped))
	for _, entry := range plan.Entries {
		rows = append(rows, previewRow{Origin: entry.Origin, Target: entry.Final})
	}
	for _, dropped := range plan.Dropped {
		rows = append(rows, previewRow{Origin: dropped.Origin, Target: dropped.Final, Note: dropped.Message})
	}
	return rows
}
