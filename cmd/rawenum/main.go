// Package main provides the CLI entrypoint for rawenum.
//
// rawenum is a codegen tool that:
//   - Finds //rawenum:-annotated definition structs (AST + go/types)
//   - Validates them into case models, reporting every defect at once
//   - Derives raw-value codecs (FromRaw / RawValue) per enum
//   - Suggests and optionally applies structural fixes for malformed input
package main

import "os"

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}
