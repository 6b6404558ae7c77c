// Package fixer applies suggested fixes to source files. The core only ever
// describes fixes as structural edits; turning them into file changes is
// this host-side engine's job, so the pipeline itself stays a pure function.
package fixer

import (
	"errors"
	"fmt"
	"go/ast"
	"go/token"
	"os"
	"path/filepath"
	"sort"

	"rawenum/internal/diagnostic"
)

// ErrNoFixes is returned when no fix was applied.
var ErrNoFixes = errors.New("no applicable fixes found")

// Options selects which fix candidates to apply. By default only the first
// candidate is applied, so repeated runs converge one step at a time; All
// applies every non-overlapping candidate; ID targets a single one from
// List output.
type Options struct {
	All bool
	ID  string
}

// Candidate is one applicable fix, with a stable ID for selection.
type Candidate struct {
	ID    string
	Label string
	Code  diagnostic.Code
	Path  string
}

// Applied records a successfully applied fix.
type Applied struct {
	Candidate
}

// Skipped records a candidate that was not applied, with the reason.
type Skipped struct {
	Candidate
	Reason string
}

// Result aggregates applied and skipped fixes plus the patched file
// contents. The engine never writes files; callers decide what to do with
// Files.
type Result struct {
	Applied []Applied
	Skipped []Skipped
	Files   map[string][]byte
}

type candidate struct {
	Candidate
	edit  edit
	order int
}

// edit is a resolved textual change: replace file bytes [start, end) with
// text. Insertions have start == end.
type edit struct {
	start int
	end   int
	text  string
}

// List returns every fix candidate from the diagnostics, in deterministic
// order, without applying anything.
func List(fset *token.FileSet, diags []diagnostic.Diagnostic) ([]Candidate, error) {
	cands, _ := gather(fset, diags)
	out := make([]Candidate, 0, len(cands))
	for _, c := range cands {
		out = append(out, c.Candidate)
	}
	return out, nil
}

// Apply gathers fix candidates, selects a subset per opts, and applies them
// to in-memory copies of the affected files.
func Apply(fset *token.FileSet, diags []diagnostic.Diagnostic, opts Options) (*Result, error) {
	res := &Result{Files: map[string][]byte{}}

	cands, skips := gather(fset, diags)
	res.Skipped = append(res.Skipped, skips...)
	if len(cands) == 0 {
		return res, ErrNoFixes
	}

	selected := selectCandidates(cands, opts, res)
	if len(selected) == 0 {
		return res, ErrNoFixes
	}

	if err := applyCandidates(selected, res); err != nil {
		return res, err
	}
	if len(res.Applied) == 0 {
		return res, ErrNoFixes
	}
	return res, nil
}

// gather resolves every fix on every diagnostic into a candidate with a
// textual edit. Fixes that cannot be resolved become Skipped entries rather
// than errors: one broken fix must not block the rest.
func gather(fset *token.FileSet, diags []diagnostic.Diagnostic) ([]candidate, []Skipped) {
	var cands []candidate
	var skips []Skipped

	order := 0
	for _, d := range diags {
		for i, fix := range d.Fixes {
			pos := fset.Position(fix.Anchor.Pos())
			id := fmt.Sprintf("%s@%s:%d.%d", d.Code, filepath.Base(pos.Filename), pos.Line, i)
			c := Candidate{ID: id, Label: fix.Label, Code: d.Code, Path: pos.Filename}

			ed, err := resolveEdit(fset, fix)
			if err != nil {
				skips = append(skips, Skipped{Candidate: c, Reason: err.Error()})
				continue
			}
			cands = append(cands, candidate{Candidate: c, edit: ed, order: order})
			order++
		}
	}

	sort.SliceStable(cands, func(i, j int) bool {
		if cands[i].Path != cands[j].Path {
			return cands[i].Path < cands[j].Path
		}
		if cands[i].edit.start != cands[j].edit.start {
			return cands[i].edit.start < cands[j].edit.start
		}
		return cands[i].order < cands[j].order
	})
	return cands, skips
}

// resolveEdit turns a structural fix into a byte-range edit. Replacing a
// whole field list with a single field means "append the field to the
// list": the edit inserts the rendered field before the closing brace.
func resolveEdit(fset *token.FileSet, fix diagnostic.Fix) (edit, error) {
	if !fix.Anchor.Pos().IsValid() {
		return edit{}, fmt.Errorf("fix anchor has no position")
	}

	if list, ok := fix.Anchor.(*ast.FieldList); ok {
		field, ok := fix.Replacement.(*ast.Field)
		if !ok {
			return edit{}, fmt.Errorf("field list fixes must append a single field")
		}
		text, err := renderNode(field)
		if err != nil {
			return edit{}, err
		}
		off := fset.Position(list.Closing).Offset
		return edit{start: off, end: off, text: "\t" + text + "\n"}, nil
	}

	text, err := renderNode(fix.Replacement)
	if err != nil {
		return edit{}, err
	}
	return edit{
		start: fset.Position(fix.Anchor.Pos()).Offset,
		end:   fset.Position(fix.Anchor.End()).Offset,
		text:  text,
	}, nil
}

func selectCandidates(cands []candidate, opts Options, res *Result) []candidate {
	switch {
	case opts.ID != "":
		for _, c := range cands {
			if c.ID == opts.ID {
				return []candidate{c}
			}
		}
		res.Skipped = append(res.Skipped, Skipped{
			Candidate: Candidate{ID: opts.ID},
			Reason:    "no candidate with this id",
		})
		return nil
	case opts.All:
		return cands
	default:
		return cands[:1]
	}
}

// applyCandidates patches files bottom-up so earlier offsets stay valid, and
// skips candidates whose edit overlaps one already taken.
func applyCandidates(cands []candidate, res *Result) error {
	byFile := map[string][]candidate{}
	for _, c := range cands {
		byFile[c.Path] = append(byFile[c.Path], c)
	}

	paths := make([]string, 0, len(byFile))
	for p := range byFile {
		paths = append(paths, p)
	}
	sort.Strings(paths)

	for _, path := range paths {
		content, err := os.ReadFile(path)
		if err != nil {
			return fmt.Errorf("reading %s: %w", path, err)
		}

		kept := nonOverlapping(byFile[path], res)
		for i := len(kept) - 1; i >= 0; i-- {
			c := kept[i]
			if c.edit.end > len(content) {
				res.Skipped = append(res.Skipped, Skipped{Candidate: c.Candidate, Reason: "edit span outside file"})
				continue
			}
			content = append(content[:c.edit.start],
				append([]byte(c.edit.text), content[c.edit.end:]...)...)
			res.Applied = append(res.Applied, Applied{Candidate: c.Candidate})
		}
		res.Files[path] = content
	}
	return nil
}

// nonOverlapping keeps the first candidate of every overlapping group; the
// input is already sorted by start offset.
func nonOverlapping(cands []candidate, res *Result) []candidate {
	var kept []candidate
	lastEnd := -1
	for _, c := range cands {
		if c.edit.start < lastEnd {
			res.Skipped = append(res.Skipped, Skipped{Candidate: c.Candidate, Reason: "overlaps an earlier fix"})
			continue
		}
		kept = append(kept, c)
		if c.edit.end > lastEnd {
			lastEnd = c.edit.end
		}
	}
	return kept
}
