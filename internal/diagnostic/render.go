package diagnostic

import (
	"bytes"
	"fmt"
	"go/printer"
	"go/token"
	"io"

	"github.com/fatih/color"
)

// Renderer writes diagnostics in a human-readable, compiler-like format.
// Positions are resolved against the FileSet the declarations were parsed
// with.
type Renderer struct {
	fset  *token.FileSet
	color bool
}

// NewRenderer creates a renderer. When colorize is false all output is plain,
// regardless of terminal detection.
func NewRenderer(fset *token.FileSet, colorize bool) *Renderer {
	return &Renderer{fset: fset, color: colorize}
}

// Render writes one diagnostic, its notes, and its suggested fixes.
func (r *Renderer) Render(w io.Writer, d Diagnostic) {
	sev := color.New(color.FgRed, color.Bold)
	if d.Severity == SeverityWarning {
		sev = color.New(color.FgYellow, color.Bold)
	} else if d.Severity == SeverityInfo {
		sev = color.New(color.FgCyan)
	}
	codeStyle := color.New(color.Faint)
	noteStyle := color.New(color.FgBlue)
	fixStyle := color.New(color.FgGreen)
	for _, c := range []*color.Color{sev, codeStyle, noteStyle, fixStyle} {
		if !r.color {
			c.DisableColor()
		}
	}

	fmt.Fprintf(w, "%s: %s: %s %s\n",
		r.position(d.Pos),
		sev.Sprint(d.Severity.String()),
		d.Message,
		codeStyle.Sprintf("[%s]", d.Code),
	)

	for _, n := range d.Notes {
		fmt.Fprintf(w, "\t%s: %s: %s\n", noteStyle.Sprint("note"), r.position(n.Pos), n.Message)
	}

	for _, f := range d.Fixes {
		fmt.Fprintf(w, "\t%s: %s\n", fixStyle.Sprint("fix"), f.Label)
		if snippet := r.renderReplacement(f); snippet != "" {
			fmt.Fprintf(w, "\t\t%s\n", snippet)
		}
	}
}

// RenderAll writes every diagnostic in the bag in its current order.
func (r *Renderer) RenderAll(w io.Writer, bag *Bag) {
	for _, d := range bag.Items() {
		r.Render(w, d)
	}
}

func (r *Renderer) position(pos token.Pos) string {
	if r.fset == nil || !pos.IsValid() {
		return "-"
	}
	return r.fset.Position(pos).String()
}

// renderReplacement pretty-prints the replacement subtree as a preview. Some
// replacements (whole field lists) are too large to preview usefully; those
// render as an empty string and only the label is shown.
func (r *Renderer) renderReplacement(f Fix) string {
	if f.Replacement == nil {
		return ""
	}
	var buf bytes.Buffer
	cfg := printer.Config{Mode: printer.UseSpaces, Tabwidth: 8}
	if err := cfg.Fprint(&buf, token.NewFileSet(), f.Replacement); err != nil {
		return ""
	}
	s := buf.String()
	if len(s) > 120 || bytes.ContainsRune(buf.Bytes(), '\n') {
		return ""
	}
	return s
}
