package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"bulkrename/internal/collision"
	"bulkrename/internal/store"
	"bulkrename/internal/template"
)

func newTemplateCommand(ctx *commandContext) *cobra.Command {
	templateCmd := &cobra.Command{
		Use:   "template",
		Short: "Manage saved naming templates",
	}

	templateCmd.AddCommand(newTemplateListCommand(ctx))
	templateCmd.AddCommand(newTemplateShowCommand(ctx))
	templateCmd.AddCommand(newTemplateSaveCommand(ctx))
	templateCmd.AddCommand(newTemplateDeleteCommand(ctx))

	return templateCmd
}

func newTemplateListCommand(ctx *commandContext) *cobra.Command {
	var jsonOutput bool

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List saved templates",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return ctx.withStore(func(st *store.Store) error {
				templates, err := st.ListTemplates(cmd.Context())
				if err != nil {
					return err
				}

				if jsonOutput {
					return writeJSON(cmd, templates)
				}

				out := cmd.OutOrStdout()
				if len(templates) == 0 {
					fmt.Fprintln(out, "No templates saved. Use `bulkrename template save` to create one.")
					return nil
				}
				rows := make([][]string, 0, len(templates))
				for _, tpl := range templates {
					rows = append(rows, []string{
						tpl.Name,
						template.DescribeBlocks(tpl.Blocks),
						string(tpl.Collision),
						yesNo(tpl.UseMTimeForDate),
					})
				}
				fmt.Fprintln(out, renderTable(
					[]string{"Name", "Blocks", "Collision", "File mtime"},
					rows,
					nil,
				))
				return nil
			})
		},
	}

	cmd.Flags().BoolVar(&jsonOutput, "json", false, "Output as JSON")
	return cmd
}

func newTemplateShowCommand(ctx *commandContext) *cobra.Command {
	var jsonOutput bool

	cmd := &cobra.Command{
		Use:   "show <name>",
		Short: "Show one template's blocks and policy",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return ctx.withStore(func(st *store.Store) error {
				tpl, err := st.GetTemplate(cmd.Context(), args[0])
				if err != nil {
					return err
				}

				if jsonOutput {
					return writeJSON(cmd, tpl)
				}

				out := cmd.OutOrStdout()
				rows := make([][]string, 0, len(tpl.Blocks))
				for i, block := range tpl.Blocks {
					rows = append(rows, []string{fmt.Sprintf("%d", i+1), block.Describe()})
				}
				fmt.Fprintf(out, "Template %q\n", tpl.Name)
				fmt.Fprintln(out, renderTable(
					[]string{"#", "Block"},
					rows,
					[]columnAlignment{alignRight, alignLeft},
				))
				fmt.Fprintf(out, "Collision strategy: %s\n", tpl.Collision)
				fmt.Fprintf(out, "Date blocks use file mtime: %s\n", yesNo(tpl.UseMTimeForDate))
				return nil
			})
		},
	}

	cmd.Flags().BoolVar(&jsonOutput, "json", false, "Output as JSON")
	return cmd
}

func newTemplateSaveCommand(ctx *commandContext) *cobra.Command {
	var blockSpecs []string
	var strategy string
	var useMTime bool

	cmd := &cobra.Command{
		Use:   "save <name>",
		Short: "Save or replace a template",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			tpl := template.Default()
			tpl.Name = args[0]

			if len(blockSpecs) > 0 {
				blocks, err := template.ParseBlockSpecs(blockSpecs)
				if err != nil {
					return err
				}
				tpl.Blocks = blocks
			}
			if strategy != "" {
				parsed, err := collision.ParseStrategy(strategy)
				if err != nil {
					return err
				}
				tpl.Collision = parsed
			}
			if cmd.Flags().Changed("use-mtime") {
				tpl.UseMTimeForDate = useMTime
			}

			return ctx.withStore(func(st *store.Store) error {
				if err := st.SaveTemplate(cmd.Context(), tpl); err != nil {
					return err
				}
				fmt.Fprintf(cmd.OutOrStdout(), "Saved template %q: %s\n",
					tpl.Name, template.DescribeBlocks(tpl.Blocks))
				return nil
			})
		},
	}

	cmd.Flags().StringArrayVarP(&blockSpecs, "block", "b", nil,
		"Template block (literal:<text>, number:<w>:<start>:<step>, date:<fmt>, original); repeatable, ordered")
	cmd.Flags().StringVar(&strategy, "collision", "", "Collision strategy: overwrite, skip, or suffix")
	cmd.Flags().BoolVar(&useMTime, "use-mtime", false, "Format date blocks with each file's modification time")
	return cmd
}

func newTemplateDeleteCommand(ctx *commandContext) *cobra.Command {
	return &cobra.Command{
		Use:   "delete <name>",
		Short: "Delete a saved template",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return ctx.withStore(func(st *store.Store) error {
				if err := st.DeleteTemplate(cmd.Context(), args[0]); err != nil {
					return err
				}
				fmt.Fprintf(cmd.OutOrStdout(), "Deleted template %q\n", args[0])
				return nil
			})
		},
	}
}

func yesNo(value bool) string {
	if value {
		return "yes"
	}
	return "no"
}
