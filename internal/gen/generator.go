// Package gen renders the derived declarations of validated case models into
// formatted Go source files.
package gen

import (
	"bytes"
	"fmt"
	"go/format"
	"go/printer"
	"go/token"
	"strings"

	"rawenum/internal/casemodel"
)

// Config holds configuration for code generation.
type Config struct {
	// Suffix is appended to the lowercased enum name to form the output
	// file name.
	Suffix string
	// Header is an extra comment line placed under the generated-code
	// marker, e.g. a project license pointer. Empty omits it.
	Header string
}

// DefaultConfig returns the default generator configuration.
func DefaultConfig() Config {
	return Config{Suffix: "_rawenum.go"}
}

// GeneratedFile represents a generated Go source file.
type GeneratedFile struct {
	// Filename is the base name of the file (e.g. "mode_rawenum.go").
	Filename string
	// Content is the formatted Go source code.
	Content []byte
}

// Generator renders validated case models into source files.
type Generator struct {
	config Config
}

// NewGenerator creates a Generator with the given configuration.
func NewGenerator(config Config) *Generator {
	if config.Suffix == "" {
		config.Suffix = DefaultConfig().Suffix
	}
	return &Generator{config: config}
}

// Generate renders every derived declaration for one model into a single
// file, formatted with go/format. The file lands in the package that holds
// the definition struct.
func (g *Generator) Generate(m *casemodel.CaseModel) (*GeneratedFile, error) {
	var buf bytes.Buffer

	buf.WriteString("// Code generated by rawenum. DO NOT EDIT.\n")
	if g.config.Header != "" {
		fmt.Fprintf(&buf, "// %s\n", g.config.Header)
	}
	fmt.Fprintf(&buf, "\npackage %s\n\n", m.Package)
	buf.WriteString("import (\n\t\"fmt\"\n\n\t\"rawenum\"\n)\n\n")

	fset := token.NewFileSet()
	cfg := printer.Config{Mode: printer.UseSpaces | printer.TabIndent, Tabwidth: 8}
	for _, decl := range Synthesize(m) {
		if err := cfg.Fprint(&buf, fset, decl); err != nil {
			return nil, fmt.Errorf("printing %s declarations: %w", m.EnumName, err)
		}
		buf.WriteString("\n\n")
	}

	content, err := format.Source(buf.Bytes())
	if err != nil {
		return nil, fmt.Errorf("formatting generated %s code: %w", m.EnumName, err)
	}

	return &GeneratedFile{
		Filename: strings.ToLower(m.EnumName) + g.config.Suffix,
		Content:  content,
	}, nil
}
