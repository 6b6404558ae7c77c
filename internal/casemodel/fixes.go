package casemodel

import (
	"fmt"
	"go/ast"
	"go/token"
	"strings"

	"rawenum/internal/analyze"
)

// Helpers that build the replacement subtrees suggested fixes carry. All
// returned nodes are freshly constructed and position-free; the original
// declaration is never touched.

// newField builds a position-free field node. tagText is the complete tag
// content without backquotes; empty means no tag.
func newField(names []string, typeText, tagText string) *ast.Field {
	f := &ast.Field{Type: ast.NewIdent(typeText)}
	for _, n := range names {
		f.Names = append(f.Names, ast.NewIdent(n))
	}
	if tagText != "" {
		f.Tag = &ast.BasicLit{Kind: token.STRING, Value: "`" + tagText + "`"}
	}
	return f
}

// fieldNames returns the declared names of a field as plain strings.
func fieldNames(fi *analyze.FieldInfo) []string {
	names := make([]string, 0, len(fi.Names))
	for _, n := range fi.Names {
		names = append(names, n.Name)
	}
	return names
}

// retagged rebuilds fi with its raw tag replaced by newRaw (the content of
// the raw key, e.g. `,default`). Other tag keys are preserved verbatim; an
// empty newRaw drops the raw key.
func retagged(fi *analyze.FieldInfo, newRaw string) *ast.Field {
	return newField(fieldNames(fi), fi.TypeText, replaceRawKey(string(fi.Tag), newRaw))
}

// retyped rebuilds fi with a new type and its tag kept as written.
func retyped(fi *analyze.FieldInfo, typeText string) *ast.Field {
	return newField(fieldNames(fi), typeText, string(fi.Tag))
}

// replaceRawKey rewrites the raw:"..." entry inside a struct tag string,
// appending one when absent and dropping it when newRaw is empty.
func replaceRawKey(tag, newRaw string) string {
	entry := ""
	if newRaw != "" {
		entry = fmt.Sprintf("%s:%q", TagKey, newRaw)
	}

	marker := TagKey + `:"`
	start := tagKeyIndex(tag, marker)
	if start < 0 {
		if entry == "" {
			return tag
		}
		if tag == "" {
			return entry
		}
		return tag + " " + entry
	}

	end := start + len(marker)
	for end < len(tag) && tag[end] != '"' {
		if tag[end] == '\\' {
			end++
		}
		end++
	}
	if end < len(tag) {
		end++ // closing quote
	}

	out := tag[:start] + entry + tag[end:]
	return strings.TrimSpace(strings.ReplaceAll(out, "  ", " "))
}

// tagKeyIndex finds the start of a tag key entry, making sure the match is
// at a key boundary rather than inside another key's value.
func tagKeyIndex(tag, marker string) int {
	for i := 0; i+len(marker) <= len(tag); i++ {
		if !strings.HasPrefix(tag[i:], marker) {
			continue
		}
		if i == 0 || tag[i-1] == ' ' {
			return i
		}
	}
	return -1
}
