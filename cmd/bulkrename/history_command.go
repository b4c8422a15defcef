package main

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"bulkrename/internal/store"
)

// historyRow is the JSON shape of one undo-history line.
type historyRow struct {
	BatchID   string    `json:"batch_id"`
	CreatedAt time.Time `json:"created_at"`
	Files     int       `json:"files"`
}

func newHistoryCommand(ctx *commandContext) *cobra.Command {
	var jsonOutput bool

	cmd := &cobra.Command{
		Use:   "history",
		Short: "List undoable batches, newest first",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return ctx.withStore(func(st *store.Store) error {
				summaries, err := st.ListBatches(cmd.Context())
				if err != nil {
					return err
				}

				if jsonOutput {
					rows := make([]historyRow, 0, len(summaries))
					for _, summary := range summaries {
						rows = append(rows, historyRow{
							BatchID:   summary.ID,
							CreatedAt: summary.CreatedAt,
							Files:     summary.Pairs,
						})
					}
					return writeJSON(cmd, rows)
				}

				out := cmd.OutOrStdout()
				if len(summaries) == 0 {
					fmt.Fprintln(out, "Undo history is empty.")
					return nil
				}
				rows := make([][]string, 0, len(summaries))
				for _, summary := range summaries {
					rows = append(rows, []string{
						summary.ID,
						summary.CreatedAt.Local().Format("2006-01-02 15:04:05"),
						fmt.Sprintf("%d", summary.Pairs),
					})
				}
				fmt.Fprintln(out, renderTable(
					[]string{"Batch", "Committed", "Files"},
					rows,
					[]columnAlignment{alignLeft, alignLeft, alignRight},
				))
				fmt.Fprintf(out, "%d batches can be undone, newest first.\n", len(summaries))
				return nil
			})
		},
	}

	cmd.Flags().BoolVar(&jsonOutput, "json", false, "Output as JSON")
	return cmd
}
