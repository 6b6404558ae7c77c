package main

import (
	"rawenum/internal/analyze"
	"rawenum/internal/casemodel"
	"rawenum/internal/config"
	"rawenum/internal/diagnostic"
)

// outcome is the pipeline result for one annotated declaration: either a
// validated model or a non-empty diagnostic bag, never both.
type outcome struct {
	decl  *analyze.EnumDecl
	model *casemodel.CaseModel
	bag   *diagnostic.Bag
}

// runPipeline loads the requested packages and runs build+validate on every
// declaration found. Each declaration is processed independently; one
// malformed enum never hides another's diagnostics.
func runPipeline(flags *rootFlags, patterns []string) (*analyze.Result, []outcome, *config.Config, error) {
	cfg, err := config.LoadOrDefault(flags.configPath)
	if err != nil {
		return nil, nil, nil, err
	}

	if len(patterns) == 0 {
		patterns = []string{"./..."}
	}
	res, err := analyze.Load(patterns...)
	if err != nil {
		return nil, nil, nil, err
	}

	outcomes := make([]outcome, 0, len(res.Enums))
	for _, decl := range res.Enums {
		model, bag := casemodel.Run(decl, cfg.DefaultName)
		outcomes = append(outcomes, outcome{decl: decl, model: model, bag: bag})
	}
	return res, outcomes, cfg, nil
}

// collectDiagnostics flattens every outcome's bag in declaration order.
func collectDiagnostics(outcomes []outcome) []diagnostic.Diagnostic {
	var diags []diagnostic.Diagnostic
	for _, o := range outcomes {
		if o.bag != nil {
			diags = append(diags, o.bag.Items()...)
		}
	}
	return diags
}
