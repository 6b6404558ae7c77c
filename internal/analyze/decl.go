package analyze

import (
	"go/ast"
	"go/token"
	"reflect"
)

// PayloadKind classifies a definition struct field's type.
type PayloadKind int

const (
	// PayloadMarker is the rawenum.Case marker: a variant with no payload.
	PayloadMarker PayloadKind = iota
	// PayloadScalar is one of the supported raw scalar types.
	PayloadScalar
	// PayloadOther is any other type.
	PayloadOther
)

// FieldInfo is one field of a definition struct, with its type classified
// and its tag decoded. A field may declare several variant names at once.
type FieldInfo struct {
	// Field is the original node; fixes that rewrite a variant anchor here.
	Field *ast.Field
	// Names are the declared variant names, in source order.
	Names []*ast.Ident
	// Type is the field's type expression.
	Type ast.Expr
	// Kind classifies Type; Scalar holds the scalar name when Kind is
	// PayloadScalar.
	Kind   PayloadKind
	Scalar RawType
	// TypeText is the type as written, for messages.
	TypeText string
	// Tag is the decoded struct tag ("" when absent). TagPos anchors it.
	Tag    reflect.StructTag
	TagPos token.Pos
	// Embedded is true for anonymous fields, which cannot name a variant.
	Embedded bool
}

// EnumDecl is one //rawenum:-annotated declaration, read-only input to the
// pipeline. The loader produces it; nothing downstream mutates it.
type EnumDecl struct {
	Directive

	// DefName is the definition struct's own name (e.g. "modeDef").
	DefName string
	// Pos anchors declaration-level diagnostics at the definition type name.
	Pos token.Pos
	// TypeSpec is the annotated type declaration. Struct is its type when it
	// is a struct type, nil otherwise.
	TypeSpec *ast.TypeSpec
	Struct   *ast.StructType
	// Fields are the definition struct's fields in declaration order. Empty
	// when Struct is nil.
	Fields []FieldInfo

	// File is the containing file; Path and Package locate it.
	File    *ast.File
	Path    string
	Package string
}
