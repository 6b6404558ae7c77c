package diagnostic

import (
	"bytes"
	"go/ast"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRenderPlain(t *testing.T) {
	d := Error(CodeMissingDefault, 0, "enum has no default variant").
		WithNote(0, "declared here").
		WithFix("add a catch-all variant", nil, nil)

	var buf bytes.Buffer
	NewRenderer(nil, false).Render(&buf, d)

	want := "-: error: enum has no default variant [rawenum/missing-default]\n" +
		"\tnote: -: declared here\n" +
		"\tfix: add a catch-all variant\n"
	assert.Equal(t, want, buf.String())
}

func TestRenderFixPreview(t *testing.T) {
	d := Error(CodeWrongAssociatedValue, 0, "wrong payload").
		WithFix("change the payload to string", ast.NewIdent("int"), ast.NewIdent("string"))

	var buf bytes.Buffer
	NewRenderer(nil, false).Render(&buf, d)

	assert.Contains(t, buf.String(), "\tfix: change the payload to string\n\t\tstring\n")
}

func TestRenderFieldFixHasNoPreview(t *testing.T) {
	// Field replacements cannot be pretty-printed in isolation; only the
	// label is shown.
	repl := &ast.Field{Names: []*ast.Ident{ast.NewIdent("Other")}, Type: ast.NewIdent("string")}
	d := Error(CodeMissingDefault, 0, "no default").
		WithFix("add a catch-all variant", nil, repl)

	var buf bytes.Buffer
	NewRenderer(nil, false).Render(&buf, d)

	assert.Contains(t, buf.String(), "\tfix: add a catch-all variant\n")
	assert.NotContains(t, buf.String(), "Other")
}

func TestRenderSeverities(t *testing.T) {
	var buf bytes.Buffer
	r := NewRenderer(nil, false)

	r.Render(&buf, Diagnostic{Code: CodeNotAnEnum, Severity: SeverityWarning, Message: "w"})
	r.Render(&buf, Diagnostic{Code: CodeNotAnEnum, Severity: SeverityInfo, Message: "i"})

	assert.Contains(t, buf.String(), "-: warning: w")
	assert.Contains(t, buf.String(), "-: info: i")
}

func TestRenderAll(t *testing.T) {
	bag := NewBag()
	bag.Add(Error(CodeMissingDefault, 0, "first"))
	bag.Add(Error(CodeExtraDefault, 0, "second"))

	var buf bytes.Buffer
	NewRenderer(nil, false).RenderAll(&buf, bag)

	out := buf.String()
	assert.Contains(t, out, "first")
	assert.Contains(t, out, "second")
	assert.Less(t, bytes.Index(buf.Bytes(), []byte("first")), bytes.Index(buf.Bytes(), []byte("second")))
}
