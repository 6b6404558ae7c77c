package gen

import (
	"go/ast"
	"go/token"
	"strconv"

	"rawenum/internal/casemodel"
)

// Synthesis of the derived declarations. Given a validated model this is
// pure and total: it builds ast trees and cannot fail. The kind byte is the
// hidden discriminant; kind 0 is the catch-all so the zero value of a
// generated enum is a well-formed "empty" catch-all.

const (
	receiverName = "m"
	kindField    = "kind"
	rawField     = "raw"
	decodeParam  = "raw"
)

// Synthesize returns every derived declaration for the model, in a fixed
// order: enum type, value-case constructors, catch-all constructor, decode,
// encode, String, conformance assertion.
func Synthesize(m *casemodel.CaseModel) []ast.Decl {
	return []ast.Decl{
		enumType(m),
		valueCaseVars(m),
		catchAllConstructor(m),
		decodeFunc(m),
		encodeFunc(m),
		stringFunc(m),
		conformanceVar(m),
	}
}

// enumType builds `type Mode struct { kind uint8; raw R }`.
func enumType(m *casemodel.CaseModel) ast.Decl {
	return &ast.GenDecl{
		Tok: token.TYPE,
		Specs: []ast.Spec{&ast.TypeSpec{
			Name: ast.NewIdent(m.EnumName),
			Type: &ast.StructType{Fields: &ast.FieldList{List: []*ast.Field{
				{Names: []*ast.Ident{ast.NewIdent(kindField)}, Type: ast.NewIdent("uint8")},
				{Names: []*ast.Ident{ast.NewIdent(rawField)}, Type: rawTypeExpr(m)},
			}}},
		}},
	}
}

// valueCaseVars builds one constructor value per value-case, in declaration
// order, with kinds counted from 1 (0 belongs to the catch-all):
//
//	var (
//		ModeFast = Mode{kind: 1}
//		ModeSlow = Mode{kind: 2}
//	)
func valueCaseVars(m *casemodel.CaseModel) ast.Decl {
	decl := &ast.GenDecl{Tok: token.VAR, Lparen: 1}
	for i, vc := range m.ValueCases {
		decl.Specs = append(decl.Specs, &ast.ValueSpec{
			Names: []*ast.Ident{ast.NewIdent(m.EnumName + vc.Name)},
			Values: []ast.Expr{&ast.CompositeLit{
				Type: ast.NewIdent(m.EnumName),
				Elts: []ast.Expr{&ast.KeyValueExpr{
					Key:   ast.NewIdent(kindField),
					Value: intLit(i + 1),
				}},
			}},
		})
	}
	return decl
}

// catchAllConstructor builds `func ModeOther(raw R) Mode { return Mode{raw: raw} }`.
func catchAllConstructor(m *casemodel.CaseModel) ast.Decl {
	return &ast.FuncDecl{
		Name: ast.NewIdent(m.EnumName + m.Default.Name),
		Type: &ast.FuncType{
			Params: &ast.FieldList{List: []*ast.Field{{
				Names: []*ast.Ident{ast.NewIdent(decodeParam)},
				Type:  rawTypeExpr(m),
			}}},
			Results: &ast.FieldList{List: []*ast.Field{{Type: ast.NewIdent(m.EnumName)}}},
		},
		Body: &ast.BlockStmt{List: []ast.Stmt{&ast.ReturnStmt{
			Results: []ast.Expr{&ast.CompositeLit{
				Type: ast.NewIdent(m.EnumName),
				Elts: []ast.Expr{&ast.KeyValueExpr{
					Key:   ast.NewIdent(rawField),
					Value: ast.NewIdent(decodeParam),
				}},
			}},
		}}},
	}
}

// decodeFunc builds the decode initializer: a switch over the raw input with
// one case per value-case in declaration order and a default branch that
// wraps the input in the catch-all. Values are unique, so ordering only
// affects readability.
//
//	func ModeFromRaw(raw R) Mode {
//		switch raw {
//		case "fast":
//			return ModeFast
//		default:
//			return ModeOther(raw)
//		}
//	}
func decodeFunc(m *casemodel.CaseModel) ast.Decl {
	var cases []ast.Stmt
	for _, vc := range m.ValueCases {
		cases = append(cases, &ast.CaseClause{
			List: []ast.Expr{valueLit(m, vc.Resolved)},
			Body: []ast.Stmt{&ast.ReturnStmt{
				Results: []ast.Expr{ast.NewIdent(m.EnumName + vc.Name)},
			}},
		})
	}
	cases = append(cases, &ast.CaseClause{
		Body: []ast.Stmt{&ast.ReturnStmt{Results: []ast.Expr{&ast.CallExpr{
			Fun:  ast.NewIdent(m.EnumName + m.Default.Name),
			Args: []ast.Expr{ast.NewIdent(decodeParam)},
		}}}},
	})

	return &ast.FuncDecl{
		Name: ast.NewIdent(m.EnumName + "FromRaw"),
		Type: &ast.FuncType{
			Params: &ast.FieldList{List: []*ast.Field{{
				Names: []*ast.Ident{ast.NewIdent(decodeParam)},
				Type:  rawTypeExpr(m),
			}}},
			Results: &ast.FieldList{List: []*ast.Field{{Type: ast.NewIdent(m.EnumName)}}},
		},
		Body: &ast.BlockStmt{List: []ast.Stmt{&ast.SwitchStmt{
			Tag:  ast.NewIdent(decodeParam),
			Body: &ast.BlockStmt{List: cases},
		}}},
	}
}

// encodeFunc builds the encode accessor: a switch over the kind byte with
// one arm per value-case returning its resolved literal, and a default arm
// returning the catch-all's carried payload unchanged.
func encodeFunc(m *casemodel.CaseModel) ast.Decl {
	var cases []ast.Stmt
	for i, vc := range m.ValueCases {
		cases = append(cases, &ast.CaseClause{
			List: []ast.Expr{intLit(i + 1)},
			Body: []ast.Stmt{&ast.ReturnStmt{Results: []ast.Expr{valueLit(m, vc.Resolved)}}},
		})
	}
	cases = append(cases, &ast.CaseClause{
		Body: []ast.Stmt{&ast.ReturnStmt{Results: []ast.Expr{recvField(rawField)}}},
	})

	return method(m, "RawValue", rawTypeExpr(m), []ast.Stmt{&ast.SwitchStmt{
		Tag:  recvField(kindField),
		Body: &ast.BlockStmt{List: cases},
	}})
}

// stringFunc builds a String method naming the constructor for each variant,
// with the catch-all rendering its payload: `ModeOther("x")`.
func stringFunc(m *casemodel.CaseModel) ast.Decl {
	var cases []ast.Stmt
	for i, vc := range m.ValueCases {
		cases = append(cases, &ast.CaseClause{
			List: []ast.Expr{intLit(i + 1)},
			Body: []ast.Stmt{&ast.ReturnStmt{Results: []ast.Expr{
				stringLit(m.EnumName + vc.Name),
			}}},
		})
	}
	cases = append(cases, &ast.CaseClause{
		Body: []ast.Stmt{&ast.ReturnStmt{Results: []ast.Expr{&ast.CallExpr{
			Fun: &ast.SelectorExpr{X: ast.NewIdent("fmt"), Sel: ast.NewIdent("Sprintf")},
			Args: []ast.Expr{
				stringLit(m.EnumName + m.Default.Name + "(%v)"),
				recvField(rawField),
			},
		}}}},
	})

	return method(m, "String", ast.NewIdent("string"), []ast.Stmt{&ast.SwitchStmt{
		Tag:  recvField(kindField),
		Body: &ast.BlockStmt{List: cases},
	}})
}

// conformanceVar builds `var _ rawenum.Representable[R] = Mode{}`, the
// raw-representable capability assertion. It is trivial and always emitted
// when member synthesis succeeds.
func conformanceVar(m *casemodel.CaseModel) ast.Decl {
	return &ast.GenDecl{
		Tok: token.VAR,
		Specs: []ast.Spec{&ast.ValueSpec{
			Names: []*ast.Ident{ast.NewIdent("_")},
			Type: &ast.IndexExpr{
				X: &ast.SelectorExpr{
					X:   ast.NewIdent("rawenum"),
					Sel: ast.NewIdent("Representable"),
				},
				Index: rawTypeExpr(m),
			},
			Values: []ast.Expr{&ast.CompositeLit{Type: ast.NewIdent(m.EnumName)}},
		}},
	}
}

func method(m *casemodel.CaseModel, name string, result ast.Expr, body []ast.Stmt) *ast.FuncDecl {
	return &ast.FuncDecl{
		Recv: &ast.FieldList{List: []*ast.Field{{
			Names: []*ast.Ident{ast.NewIdent(receiverName)},
			Type:  ast.NewIdent(m.EnumName),
		}}},
		Name: ast.NewIdent(name),
		Type: &ast.FuncType{
			Params:  &ast.FieldList{},
			Results: &ast.FieldList{List: []*ast.Field{{Type: result}}},
		},
		Body: &ast.BlockStmt{List: body},
	}
}

func recvField(name string) ast.Expr {
	return &ast.SelectorExpr{X: ast.NewIdent(receiverName), Sel: ast.NewIdent(name)}
}

func rawTypeExpr(m *casemodel.CaseModel) ast.Expr {
	return ast.NewIdent(string(m.Raw))
}

// valueLit renders a resolved raw value as a literal expression: quoted for
// string enums, verbatim integer text otherwise.
func valueLit(m *casemodel.CaseModel, resolved string) ast.Expr {
	if m.Raw.IsString() {
		return stringLit(resolved)
	}
	return &ast.BasicLit{Kind: token.INT, Value: resolved}
}

func stringLit(s string) ast.Expr {
	return &ast.BasicLit{Kind: token.STRING, Value: strconv.Quote(s)}
}

func intLit(i int) ast.Expr {
	return &ast.BasicLit{Kind: token.INT, Value: strconv.Itoa(i)}
}
