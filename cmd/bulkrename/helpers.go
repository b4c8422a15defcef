package main

import (
	"context"
	"errors"

	"github.com/spf13/cobra"

	"bulkrename/internal/collision"
	"bulkrename/internal/config"
	"bulkrename/internal/filelist"
	"bulkrename/internal/store"
	"bulkrename/internal/template"
	"bulkrename/internal/textutil"
)

// templateFlags carries the flags shared by preview and apply for choosing or
// building the template of a pass.
type templateFlags struct {
	name       string
	blockSpecs []string
	strategy   string
	useMTime   bool
	sortFiles  bool
	sanitize   bool
}

func (f *templateFlags) register(cmd *cobra.Command) {
	cmd.Flags().StringVarP(&f.name, "template", "t", "", "Use a saved template by name")
	cmd.Flags().StringArrayVarP(&f.blockSpecs, "block", "b", nil,
		"Template block (literal:<text>, number:<w>:<start>:<step>, date:<fmt>, original); repeatable, ordered")
	cmd.Flags().StringVar(&f.strategy, "collision", "", "Collision strategy: overwrite, skip, or suffix")
	cmd.Flags().BoolVar(&f.useMTime, "use-mtime", false, "Format date blocks with each file's modification time")
	cmd.Flags().BoolVar(&f.sortFiles, "sort", false, "Natural-sort the files before numbering")
	cmd.Flags().BoolVar(&f.sanitize, "sanitize", false, "Strip filesystem-unsafe characters from generated names")
}

// generateTargets expands the template for the given files, optionally
// sanitizing the results.
func (f *templateFlags) generateTargets(paths []string, tpl template.Template) []string {
	targets := template.GenerateTargets(paths, tpl.Blocks, template.ExpandOptions{
		UseModTime: tpl.UseMTimeForDate,
	})
	if f.sanitize {
		for i, target := range targets {
			targets[i] = textutil.SanitizeFileName(target)
		}
	}
	return targets
}

// resolveTemplate builds the effective template for one pass: a saved template
// when --template names one, ad-hoc blocks when --block is given, or the
// built-in default. Flag overrides apply on top.
func resolveTemplate(ctx *commandContext, cmd *cobra.Command, flags *templateFlags, cfg *config.Config) (template.Template, error) {
	if flags.name != "" && len(flags.blockSpecs) > 0 {
		return template.Template{}, errors.New("--template and --block are mutually exclusive")
	}

	var tpl template.Template
	switch {
	case flags.name != "":
		if err := ctx.withStore(func(st *store.Store) error {
			loaded, err := st.GetTemplate(context.Background(), flags.name)
			if err != nil {
				return err
			}
			tpl = loaded
			return nil
		}); err != nil {
			return template.Template{}, err
		}
	case len(flags.blockSpecs) > 0:
		blocks, err := template.ParseBlockSpecs(flags.blockSpecs)
		if err != nil {
			return template.Template{}, err
		}
		tpl = template.Template{Blocks: blocks}
	default:
		tpl = template.Default()
	}

	if tpl.Collision == "" {
		strategy, err := collision.ParseStrategy(cfg.Rename.DefaultStrategy)
		if err != nil {
			return template.Template{}, err
		}
		tpl.Collision = strategy
	}
	if flags.strategy != "" {
		strategy, err := collision.ParseStrategy(flags.strategy)
		if err != nil {
			return template.Template{}, err
		}
		tpl.Collision = strategy
	}
	if cmd.Flags().Changed("use-mtime") {
		tpl.UseMTimeForDate = flags.useMTime
	}
	return tpl, nil
}

// collectFiles validates the file arguments and returns their absolute paths
// in rename order.
func collectFiles(args []string, sortNatural bool) ([]string, error) {
	if len(args) == 0 {
		return nil, errors.New("at least one file is required")
	}
	list, err := filelist.New(args...)
	if err != nil {
		return nil, err
	}
	if sortNatural {
		list.SortNatural()
	}
	return list.Paths(), nil
}
