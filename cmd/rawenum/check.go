package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"rawenum/internal/diagnostic"
)

func newCheckCmd(flags *rootFlags) *cobra.Command {
	return &cobra.Command{
		Use:   "check [packages]",
		Short: "validate enum definitions without generating code",
		RunE: func(cmd *cobra.Command, args []string) error {
			res, outcomes, _, err := runPipeline(flags, args)
			if err != nil {
				return err
			}

			renderer := diagnostic.NewRenderer(res.Fset, !flags.noColor)
			failed := 0
			for _, o := range outcomes {
				if o.model == nil {
					failed++
					renderer.RenderAll(cmd.ErrOrStderr(), o.bag)
				}
			}

			if failed > 0 {
				return fmt.Errorf("%d of %d enum definitions failed validation", failed, len(outcomes))
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%d enum definitions ok\n", len(outcomes))
			return nil
		},
	}
}
