package fixer

import (
	"go/ast"
	"go/parser"
	"go/token"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"rawenum/internal/diagnostic"
)

const modeSrc = `package sample

type modeDef struct {
	Fast rawenum.Case ` + "`raw:\"fast\"`" + `
	Other int ` + "`raw:\",default\"`" + `
}
`

// parseTemp writes src to a temp file and parses it, so fixes resolve against
// real positions the way they do after loading.
func parseTemp(t *testing.T, src string) (*token.FileSet, *ast.File, string) {
	t.Helper()

	path := filepath.Join(t.TempDir(), "mode.go")
	require.NoError(t, os.WriteFile(path, []byte(src), 0o644))

	fset := token.NewFileSet()
	file, err := parser.ParseFile(fset, path, nil, parser.ParseComments)
	require.NoError(t, err)
	return fset, file, path
}

func structOf(t *testing.T, file *ast.File) *ast.StructType {
	t.Helper()
	for _, d := range file.Decls {
		if gd, ok := d.(*ast.GenDecl); ok && gd.Tok == token.TYPE {
			if st, ok := gd.Specs[0].(*ast.TypeSpec).Type.(*ast.StructType); ok {
				return st
			}
		}
	}
	t.Fatal("no struct declaration in source")
	return nil
}

func field(names []string, typeText, tag string) *ast.Field {
	f := &ast.Field{Type: ast.NewIdent(typeText)}
	for _, n := range names {
		f.Names = append(f.Names, ast.NewIdent(n))
	}
	if tag != "" {
		f.Tag = &ast.BasicLit{Kind: token.STRING, Value: "`" + tag + "`"}
	}
	return f
}

func TestApplyReplacesField(t *testing.T) {
	fset, file, path := parseTemp(t, modeSrc)
	st := structOf(t, file)

	d := diagnostic.Error(diagnostic.CodeWrongAssociatedValue, st.Fields.List[1].Pos(), "wrong payload").
		WithFix("change the payload", st.Fields.List[1], field([]string{"Other"}, "string", `raw:",default"`))

	res, err := Apply(fset, []diagnostic.Diagnostic{d}, Options{})
	require.NoError(t, err)
	require.Len(t, res.Applied, 1)

	got := string(res.Files[path])
	assert.Contains(t, got, "Other string `raw:\",default\"`")
	assert.NotContains(t, got, "Other int")
	// The neighboring field is untouched.
	assert.Contains(t, got, "Fast rawenum.Case `raw:\"fast\"`")
}

func TestApplyAppendsToFieldList(t *testing.T) {
	fset, file, path := parseTemp(t, modeSrc)
	st := structOf(t, file)

	d := diagnostic.Error(diagnostic.CodeMissingDefault, st.Pos(), "no default").
		WithFix("add a catch-all variant", st.Fields, field([]string{"Rest"}, "string", `raw:",default"`))

	res, err := Apply(fset, []diagnostic.Diagnostic{d}, Options{})
	require.NoError(t, err)
	require.Len(t, res.Applied, 1)

	got := string(res.Files[path])
	// Appended before the closing brace, after the existing fields.
	assert.Contains(t, got, "\tOther int `raw:\",default\"`\n\tRest string `raw:\",default\"`\n}")
}

func TestApplyDefaultTakesFirstCandidateOnly(t *testing.T) {
	fset, file, path := parseTemp(t, modeSrc)
	st := structOf(t, file)

	first := diagnostic.Error(diagnostic.CodeUnexpectedPayload, st.Fields.List[0].Pos(), "payload").
		WithFix("fix first", st.Fields.List[0], field([]string{"Fast"}, "rawenum.Case", `raw:"quick"`))
	second := diagnostic.Error(diagnostic.CodeWrongAssociatedValue, st.Fields.List[1].Pos(), "payload").
		WithFix("fix second", st.Fields.List[1], field([]string{"Other"}, "string", `raw:",default"`))

	res, err := Apply(fset, []diagnostic.Diagnostic{first, second}, Options{})
	require.NoError(t, err)
	require.Len(t, res.Applied, 1)
	assert.Equal(t, "fix first", res.Applied[0].Label)

	got := string(res.Files[path])
	assert.Contains(t, got, `raw:"quick"`)
	assert.Contains(t, got, "Other int")
}

func TestApplyAllSkipsOverlaps(t *testing.T) {
	fset, file, path := parseTemp(t, modeSrc)
	st := structOf(t, file)

	target := st.Fields.List[1]
	a := diagnostic.Error(diagnostic.CodeWrongAssociatedValue, target.Pos(), "payload").
		WithFix("retype", target, field([]string{"Other"}, "string", `raw:",default"`))
	b := diagnostic.Error(diagnostic.CodeDefaultAndRaw, target.Pos(), "conflict").
		WithFix("retag", target, field([]string{"Other"}, "int", `raw:",default"`))

	res, err := Apply(fset, []diagnostic.Diagnostic{a, b}, Options{All: true})
	require.NoError(t, err)
	require.Len(t, res.Applied, 1)
	require.Len(t, res.Skipped, 1)
	assert.Equal(t, "overlaps an earlier fix", res.Skipped[0].Reason)
	assert.Contains(t, string(res.Files[path]), "Other string")
}

func TestApplyAllCombinesDisjointFixes(t *testing.T) {
	fset, file, path := parseTemp(t, modeSrc)
	st := structOf(t, file)

	replace := diagnostic.Error(diagnostic.CodeWrongAssociatedValue, st.Fields.List[1].Pos(), "payload").
		WithFix("retype", st.Fields.List[1], field([]string{"Other"}, "string", `raw:",default"`))
	appendFix := diagnostic.Error(diagnostic.CodeMissingRawValue, st.Pos(), "missing").
		WithFix("add variant", st.Fields, field([]string{"Lazy"}, "rawenum.Case", ""))

	res, err := Apply(fset, []diagnostic.Diagnostic{replace, appendFix}, Options{All: true})
	require.NoError(t, err)
	require.Len(t, res.Applied, 2)

	got := string(res.Files[path])
	assert.Contains(t, got, "Other string")
	assert.Contains(t, got, "\tLazy rawenum.Case\n}")
}

func TestListAndApplyByID(t *testing.T) {
	fset, file, path := parseTemp(t, modeSrc)
	st := structOf(t, file)

	first := diagnostic.Error(diagnostic.CodeUnexpectedPayload, st.Fields.List[0].Pos(), "payload").
		WithFix("fix first", st.Fields.List[0], field([]string{"Fast"}, "rawenum.Case", `raw:"quick"`))
	second := diagnostic.Error(diagnostic.CodeWrongAssociatedValue, st.Fields.List[1].Pos(), "payload").
		WithFix("fix second", st.Fields.List[1], field([]string{"Other"}, "string", `raw:",default"`))
	diags := []diagnostic.Diagnostic{first, second}

	cands, err := List(fset, diags)
	require.NoError(t, err)
	require.Len(t, cands, 2)
	assert.Equal(t, "rawenum/unexpected-payload@mode.go:4.0", cands[0].ID)
	assert.Equal(t, "rawenum/wrong-associated-value@mode.go:5.0", cands[1].ID)

	res, err := Apply(fset, diags, Options{ID: cands[1].ID})
	require.NoError(t, err)
	require.Len(t, res.Applied, 1)
	assert.Equal(t, "fix second", res.Applied[0].Label)
	assert.Contains(t, string(res.Files[path]), "Other string")
}

func TestApplyUnknownID(t *testing.T) {
	fset, file, _ := parseTemp(t, modeSrc)
	st := structOf(t, file)

	d := diagnostic.Error(diagnostic.CodeWrongAssociatedValue, st.Fields.List[1].Pos(), "payload").
		WithFix("retype", st.Fields.List[1], field([]string{"Other"}, "string", `raw:",default"`))

	res, err := Apply(fset, []diagnostic.Diagnostic{d}, Options{ID: "nope"})
	require.ErrorIs(t, err, ErrNoFixes)
	require.Len(t, res.Skipped, 1)
	assert.Equal(t, "no candidate with this id", res.Skipped[0].Reason)
}

func TestApplySkipsUnanchoredFix(t *testing.T) {
	fset, _, _ := parseTemp(t, modeSrc)

	// An anchor built outside the loaded tree has no position to edit at.
	d := diagnostic.Error(diagnostic.CodeWrongAssociatedValue, token.NoPos, "payload").
		WithFix("retype", ast.NewIdent("Other"), ast.NewIdent("string"))

	res, err := Apply(fset, []diagnostic.Diagnostic{d}, Options{})
	require.ErrorIs(t, err, ErrNoFixes)
	require.Len(t, res.Skipped, 1)
	assert.Contains(t, res.Skipped[0].Reason, "no position")
}

func TestNoFixes(t *testing.T) {
	fset := token.NewFileSet()
	d := diagnostic.Error(diagnostic.CodeInvalidRawValue, token.NoPos, "bad literal")

	_, err := Apply(fset, []diagnostic.Diagnostic{d}, Options{})
	assert.ErrorIs(t, err, ErrNoFixes)
}
