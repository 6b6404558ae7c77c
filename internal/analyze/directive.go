package analyze

import (
	"fmt"
	"go/token"
	"strings"
)

// DirectivePrefix introduces an enum definition, in the same comment form as
// go:generate: no space after the slashes, arguments after the colon.
const DirectivePrefix = "//rawenum:"

// Directive is the parsed form of a //rawenum: comment. It binds the enum
// name, the raw scalar type, and optionally the name used when a fix has to
// synthesize a brand-new catch-all variant.
type Directive struct {
	// Name is the generated enum type name, e.g. "Mode".
	Name string
	// Raw is the scalar representation type.
	Raw RawType
	// DefaultName overrides the configured catch-all name for this enum.
	// Empty means "use the tool-wide default".
	DefaultName string
}

// ParseDirective parses the text of a single //rawenum: comment line.
// Grammar: //rawenum:<Name> raw=<scalar> [default=<Ident>]
func ParseDirective(text string) (Directive, error) {
	if !strings.HasPrefix(text, DirectivePrefix) {
		return Directive{}, fmt.Errorf("not a %s directive: %q", DirectivePrefix, text)
	}

	fields := strings.Fields(text[len(DirectivePrefix):])
	if len(fields) == 0 {
		return Directive{}, fmt.Errorf("directive is missing the enum name")
	}

	d := Directive{Name: fields[0]}
	if !token.IsIdentifier(d.Name) || !token.IsExported(d.Name) {
		return Directive{}, fmt.Errorf("enum name %q must be an exported identifier", d.Name)
	}

	for _, arg := range fields[1:] {
		key, value, ok := strings.Cut(arg, "=")
		if !ok {
			return Directive{}, fmt.Errorf("malformed argument %q, want key=value", arg)
		}

		switch key {
		case "raw":
			d.Raw = RawType(value)
			if !d.Raw.Valid() {
				return Directive{}, fmt.Errorf("unsupported raw type %q", value)
			}
		case "default":
			if !token.IsIdentifier(value) {
				return Directive{}, fmt.Errorf("default name %q must be an identifier", value)
			}
			d.DefaultName = value
		default:
			return Directive{}, fmt.Errorf("unknown directive argument %q", key)
		}
	}

	if d.Raw == "" {
		return Directive{}, fmt.Errorf("directive for %q is missing raw=<type>", d.Name)
	}

	return d, nil
}
