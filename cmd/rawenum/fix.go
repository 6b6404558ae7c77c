package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"rawenum/internal/fixer"
)

func newFixCmd(flags *rootFlags) *cobra.Command {
	var (
		applyAll bool
		targetID string
		list     bool
	)

	cmd := &cobra.Command{
		Use:   "fix [packages]",
		Short: "apply suggested fixes to enum definitions",
		Long:  "fix applies the structural repairs suggested by diagnostics.\nWithout flags only the first fix is applied; rerun until clean.",
		RunE: func(cmd *cobra.Command, args []string) error {
			res, outcomes, _, err := runPipeline(flags, args)
			if err != nil {
				return err
			}
			diags := collectDiagnostics(outcomes)

			if list {
				cands, err := fixer.List(res.Fset, diags)
				if err != nil {
					return err
				}
				for _, c := range cands {
					fmt.Fprintf(cmd.OutOrStdout(), "%s\t%s\n", c.ID, c.Label)
				}
				if len(cands) == 0 {
					fmt.Fprintln(cmd.OutOrStdout(), "no fixes available")
				}
				return nil
			}

			result, err := fixer.Apply(res.Fset, diags, fixer.Options{All: applyAll, ID: targetID})
			if err != nil && !errors.Is(err, fixer.ErrNoFixes) {
				return err
			}

			green := color.New(color.FgGreen)
			yellow := color.New(color.FgYellow)
			if flags.noColor {
				green.DisableColor()
				yellow.DisableColor()
			}

			for path, content := range result.Files {
				if err := os.WriteFile(path, content, 0o644); err != nil {
					return fmt.Errorf("writing %s: %w", path, err)
				}
			}
			for _, a := range result.Applied {
				fmt.Fprintf(cmd.OutOrStdout(), "%s %s: %s\n", green.Sprint("applied"), a.ID, a.Label)
			}
			for _, s := range result.Skipped {
				fmt.Fprintf(cmd.OutOrStdout(), "%s %s: %s\n", yellow.Sprint("skipped"), s.ID, s.Reason)
			}
			if len(result.Applied) == 0 {
				fmt.Fprintln(cmd.OutOrStdout(), "nothing to fix")
			}
			return nil
		},
	}

	cmd.Flags().BoolVar(&applyAll, "all", false, "apply every non-overlapping fix")
	cmd.Flags().StringVar(&targetID, "id", "", "apply only the fix with this id (see --list)")
	cmd.Flags().BoolVar(&list, "list", false, "list fix candidates without applying")
	return cmd
}
