package casemodel

import (
	"go/ast"

	"rawenum/internal/analyze"
)

// Role classifies how a case record obtains its raw value.
type Role int

const (
	// RoleImplicit: no annotation; the value is derived from the variant
	// name, which is only possible for string raw types.
	RoleImplicit Role = iota
	// RoleExplicit: the raw tag supplies a literal value.
	RoleExplicit
	// RoleDefault: the catch-all; it carries the raw value as payload and
	// has no value of its own.
	RoleDefault
)

// CaseRecord is one variant of the enum: a single name of a definition
// struct field, together with the annotation state bound to that name. The
// builder records exactly what the source says; conflicting annotations
// (default + explicit value) survive until the validator reports them.
type CaseRecord struct {
	// Name is the variant name; Ident anchors diagnostics at it.
	Name  string
	Ident *ast.Ident

	// Field is the declaring field. Several records share it when one line
	// declares several names.
	Field *analyze.FieldInfo

	// Tagged is true when the raw tag binds to this name. Only the first
	// name of a field is tagged; later names never inherit the annotation.
	Tagged bool
	// Default is true when the tag carries the ,default marker.
	Default bool
	// Explicit is true when the tag carries a literal value, held in Value
	// as written (values are compared textually, never evaluated).
	Explicit bool
	Value    string
}

// Role returns the record's role tag. A record that is both Default and
// Explicit reports RoleDefault; the validator flags the conflict separately.
func (c *CaseRecord) Role() Role {
	switch {
	case c.Default:
		return RoleDefault
	case c.Explicit:
		return RoleExplicit
	default:
		return RoleImplicit
	}
}

// Resolved returns the raw value this record maps to and whether one is
// derivable: the explicit literal, or the variant's own name (exactly, with
// no transformation) under a string raw type.
func (c *CaseRecord) Resolved(raw analyze.RawType) (string, bool) {
	if c.Explicit {
		return c.Value, true
	}
	if raw.IsString() {
		return c.Name, true
	}
	return "", false
}

// ValueCase is a validated value-case: a record plus its resolved raw value.
type ValueCase struct {
	*CaseRecord
	// Resolved is the raw value literal text (unquoted for strings).
	Resolved string
}

// CaseModel is a validated declaration: exactly one catch-all plus the
// value-cases in declaration order, with pairwise-distinct resolved values.
type CaseModel struct {
	// EnumName is the generated type name; DefName the definition struct.
	EnumName string
	DefName  string
	Raw      analyze.RawType
	Package  string

	Default    *CaseRecord
	ValueCases []ValueCase
}
