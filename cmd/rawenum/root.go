package main

import (
	"github.com/spf13/cobra"
)

type rootFlags struct {
	configPath string
	noColor    bool
}

func newRootCmd() *cobra.Command {
	flags := &rootFlags{}

	root := &cobra.Command{
		Use:           "rawenum",
		Short:         "derive raw-value codecs for annotated enum definitions",
		Long:          "rawenum turns //rawenum:-annotated definition structs into enum types\nwith decode (FromRaw), encode (RawValue) and a conformance assertion.",
		SilenceUsage:  true,
		SilenceErrors: false,
	}

	root.PersistentFlags().StringVar(&flags.configPath, "config", "", "config file (default .rawenum.yml when present)")
	root.PersistentFlags().BoolVar(&flags.noColor, "no-color", false, "disable colored diagnostics")

	root.AddCommand(
		newGenCmd(flags),
		newCheckCmd(flags),
		newFixCmd(flags),
		newDumpCmd(flags),
	)
	return root
}
