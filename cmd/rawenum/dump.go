package main

import (
	"fmt"

	"github.com/davecgh/go-spew/spew"
	"github.com/spf13/cobra"

	"rawenum/internal/casemodel"
)

func newDumpCmd(flags *rootFlags) *cobra.Command {
	return &cobra.Command{
		Use:    "dump [packages]",
		Short:  "dump built case records for debugging",
		Hidden: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			_, outcomes, _, err := runPipeline(flags, args)
			if err != nil {
				return err
			}

			dumper := spew.ConfigState{Indent: "  ", DisablePointerAddresses: true, DisableMethods: true, MaxDepth: 4}
			for _, o := range outcomes {
				fmt.Fprintf(cmd.OutOrStdout(), "=== %s (%s, raw=%s)\n", o.decl.Name, o.decl.DefName, o.decl.Raw)
				for _, rec := range casemodel.Build(o.decl) {
					dumper.Fdump(cmd.OutOrStdout(), rec)
				}
			}
			return nil
		},
	}
}
