package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"rawenum/internal/diagnostic"
	"rawenum/internal/gen"
)

func newGenCmd(flags *rootFlags) *cobra.Command {
	return &cobra.Command{
		Use:   "gen [packages]",
		Short: "generate codec files for every valid enum definition",
		Long:  "gen writes one <enum>_rawenum.go file next to each definition struct.\nA definition with any error diagnostic produces no file at all.",
		RunE: func(cmd *cobra.Command, args []string) error {
			res, outcomes, cfg, err := runPipeline(flags, args)
			if err != nil {
				return err
			}

			renderer := diagnostic.NewRenderer(res.Fset, !flags.noColor)
			generator := gen.NewGenerator(gen.Config{Suffix: cfg.Suffix, Header: cfg.Header})

			failed := 0
			for _, o := range outcomes {
				if o.model == nil {
					failed++
					renderer.RenderAll(cmd.ErrOrStderr(), o.bag)
					continue
				}

				file, err := generator.Generate(o.model)
				if err != nil {
					return err
				}
				path := filepath.Join(filepath.Dir(o.decl.Path), file.Filename)
				if err := os.WriteFile(path, file.Content, 0o644); err != nil {
					return fmt.Errorf("writing %s: %w", path, err)
				}
				fmt.Fprintf(cmd.OutOrStdout(), "%s: %s\n", o.decl.Name, path)
			}

			if failed > 0 {
				return fmt.Errorf("%d of %d enum definitions failed validation", failed, len(outcomes))
			}
			if len(outcomes) == 0 {
				fmt.Fprintln(cmd.OutOrStdout(), "no rawenum definitions found")
			}
			return nil
		},
	}
}
