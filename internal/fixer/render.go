package fixer

import (
	"bytes"
	"fmt"
	"go/ast"
	"go/printer"
	"go/token"
	"strings"
)

// renderNode turns a position-free replacement subtree into source text.
// Fields are not printable on their own by go/printer, so they are rendered
// by hand in canonical `Name1, Name2 Type `+"`tag`"+` form.
func renderNode(node ast.Node) (string, error) {
	switch n := node.(type) {
	case *ast.Field:
		return renderField(n)
	default:
		var buf bytes.Buffer
		cfg := printer.Config{Mode: printer.UseSpaces | printer.TabIndent, Tabwidth: 8}
		if err := cfg.Fprint(&buf, token.NewFileSet(), node); err != nil {
			return "", fmt.Errorf("rendering replacement: %w", err)
		}
		return buf.String(), nil
	}
}

func renderField(f *ast.Field) (string, error) {
	var parts []string
	names := make([]string, 0, len(f.Names))
	for _, n := range f.Names {
		names = append(names, n.Name)
	}
	if len(names) > 0 {
		parts = append(parts, strings.Join(names, ", "))
	}

	typeText, err := renderNode(f.Type)
	if err != nil {
		return "", err
	}
	parts = append(parts, typeText)

	if f.Tag != nil {
		parts = append(parts, f.Tag.Value)
	}
	return strings.Join(parts, " "), nil
}
