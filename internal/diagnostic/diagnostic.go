package diagnostic

import (
	"go/ast"
	"go/token"
)

// Severity represents the severity level of a diagnostic.
type Severity int

const (
	SeverityInfo Severity = iota
	SeverityWarning
	SeverityError
)

// String returns a human-readable severity name.
func (s Severity) String() string {
	switch s {
	case SeverityInfo:
		return "info"
	case SeverityWarning:
		return "warning"
	case SeverityError:
		return "error"
	default:
		return "unknown"
	}
}

// Note points at a position related to the primary anchor, e.g. the first
// occurrence of a duplicated raw value.
type Note struct {
	Pos     token.Pos
	Message string
}

// Fix is a suggested repair expressed as a pure structural edit: replace the
// subtree rooted at Anchor with Replacement. The input tree is never mutated;
// applying fixes is the host's job (see internal/fixer), so fixes attached to
// different diagnostics cannot interfere with one another.
type Fix struct {
	// Label is a short human description, e.g. `mark "Other" as the default`.
	Label string
	// Anchor is the node in the original declaration to be replaced. It must
	// carry valid positions from the loader's FileSet.
	Anchor ast.Node
	// Replacement is a freshly built node of a kind the anchor's parent
	// accepts. It carries no positions of its own.
	Replacement ast.Node
}

// Diagnostic is one defect found in a definition struct.
type Diagnostic struct {
	Code     Code
	Severity Severity
	Message  string
	// Pos anchors the diagnostic at the most specific node involved: the
	// offending variant name, tag, or type, not the whole declaration.
	Pos   token.Pos
	Notes []Note
	Fixes []Fix
}

// Error constructs an error-severity diagnostic.
func Error(code Code, pos token.Pos, message string) Diagnostic {
	return Diagnostic{Code: code, Severity: SeverityError, Message: message, Pos: pos}
}

// WithNote returns a copy of d with an extra note.
func (d Diagnostic) WithNote(pos token.Pos, message string) Diagnostic {
	d.Notes = append(d.Notes[:len(d.Notes):len(d.Notes)], Note{Pos: pos, Message: message})
	return d
}

// WithFix returns a copy of d with an extra suggested fix.
func (d Diagnostic) WithFix(label string, anchor ast.Node, replacement ast.Node) Diagnostic {
	d.Fixes = append(d.Fixes[:len(d.Fixes):len(d.Fixes)], Fix{
		Label:       label,
		Anchor:      anchor,
		Replacement: replacement,
	})
	return d
}
