package analyze

import (
	"fmt"
	"go/ast"
	"go/token"
	"go/types"
	"reflect"
	"strconv"
	"strings"

	"golang.org/x/tools/go/packages"
)

// LoadMode specifies what information to load from packages.
const LoadMode = packages.NeedName |
	packages.NeedFiles |
	packages.NeedSyntax |
	packages.NeedTypes |
	packages.NeedTypesInfo |
	packages.NeedImports

// markerPath is the import path of the runtime package whose Case type marks
// payload-less variants.
const markerPath = "rawenum"

// Result holds every enum declaration found across the loaded packages,
// together with the FileSet their positions resolve against.
type Result struct {
	Fset  *token.FileSet
	Enums []*EnumDecl
}

// Load loads the given package patterns and collects //rawenum:-annotated
// declarations. Load fails on packages that do not parse; shape problems
// inside a well-formed declaration are left for the validator.
func Load(patterns ...string) (*Result, error) {
	cfg := &packages.Config{Mode: LoadMode}

	pkgs, err := packages.Load(cfg, patterns...)
	if err != nil {
		return nil, fmt.Errorf("failed to load packages: %w", err)
	}

	var errs []error
	for _, pkg := range pkgs {
		for _, e := range pkg.Errors {
			errs = append(errs, e)
		}
	}
	if len(errs) > 0 {
		return nil, fmt.Errorf("package errors: %v", errs)
	}

	res := &Result{Fset: token.NewFileSet()}
	if len(pkgs) > 0 {
		res.Fset = pkgs[0].Fset
	}

	for _, pkg := range pkgs {
		enums, err := collectPackage(pkg)
		if err != nil {
			return nil, err
		}
		res.Enums = append(res.Enums, enums...)
	}

	return res, nil
}

// collectPackage scans one package's syntax for annotated declarations.
func collectPackage(pkg *packages.Package) ([]*EnumDecl, error) {
	var enums []*EnumDecl

	for _, file := range pkg.Syntax {
		for _, decl := range file.Decls {
			gd, ok := decl.(*ast.GenDecl)
			if !ok || gd.Tok != token.TYPE {
				continue
			}

			for _, spec := range gd.Specs {
				ts := spec.(*ast.TypeSpec)
				doc := ts.Doc
				if doc == nil && len(gd.Specs) == 1 {
					doc = gd.Doc
				}

				line, pos := directiveLine(doc)
				if line == "" {
					continue
				}

				d, err := ParseDirective(line)
				if err != nil {
					return nil, fmt.Errorf("%s: %w", pkg.Fset.Position(pos), err)
				}

				enums = append(enums, buildDecl(pkg, file, ts, d))
			}
		}
	}

	return enums, nil
}

// directiveLine returns the first //rawenum: line of a doc comment and its
// position, or "" when the comment has none.
func directiveLine(doc *ast.CommentGroup) (string, token.Pos) {
	if doc == nil {
		return "", token.NoPos
	}
	for _, c := range doc.List {
		if strings.HasPrefix(c.Text, DirectivePrefix) {
			return c.Text, c.Pos()
		}
	}
	return "", token.NoPos
}

// buildDecl assembles the read-only EnumDecl for one annotated type spec.
func buildDecl(pkg *packages.Package, file *ast.File, ts *ast.TypeSpec, d Directive) *EnumDecl {
	decl := &EnumDecl{
		Directive: d,
		DefName:   ts.Name.Name,
		Pos:       ts.Name.Pos(),
		TypeSpec:  ts,
		File:      file,
		Path:      pkg.Fset.Position(ts.Pos()).Filename,
		Package:   pkg.Name,
	}

	st, ok := ts.Type.(*ast.StructType)
	if !ok {
		return decl
	}
	decl.Struct = st

	for _, field := range st.Fields.List {
		fi := FieldInfo{
			Field:    field,
			Names:    field.Names,
			Type:     field.Type,
			TypeText: types.ExprString(field.Type),
			Embedded: len(field.Names) == 0,
		}
		fi.Kind, fi.Scalar = classifyType(pkg, field.Type)
		if field.Tag != nil {
			fi.TagPos = field.Tag.Pos()
			if unquoted, err := strconv.Unquote(field.Tag.Value); err == nil {
				fi.Tag = reflect.StructTag(unquoted)
			}
		}
		decl.Fields = append(decl.Fields, fi)
	}

	return decl
}

// classifyType resolves a field type against the package's type information:
// the rawenum.Case marker, a supported raw scalar, or anything else. Named
// wrappers around scalars count as other types; the catch-all payload must be
// the raw type itself.
func classifyType(pkg *packages.Package, expr ast.Expr) (PayloadKind, RawType) {
	if pkg.TypesInfo == nil {
		return PayloadOther, ""
	}
	t := pkg.TypesInfo.TypeOf(expr)

	switch tt := t.(type) {
	case *types.Named:
		obj := tt.Obj()
		if obj != nil && obj.Pkg() != nil && obj.Pkg().Path() == markerPath && obj.Name() == "Case" {
			return PayloadMarker, ""
		}
	case *types.Basic:
		r := RawType(tt.Name())
		if r.Valid() {
			return PayloadScalar, r
		}
	}

	return PayloadOther, ""
}
