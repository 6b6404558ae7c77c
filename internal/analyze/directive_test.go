package analyze

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseDirective(t *testing.T) {
	tests := []struct {
		name string
		text string
		want Directive
	}{
		{"minimal", "//rawenum:Mode raw=string", Directive{Name: "Mode", Raw: RawString}},
		{"int raw", "//rawenum:Priority raw=int32", Directive{Name: "Priority", Raw: RawInt32}},
		{"with default", "//rawenum:Mode raw=string default=Unknown",
			Directive{Name: "Mode", Raw: RawString, DefaultName: "Unknown"}},
		{"argument order", "//rawenum:Mode default=Rest raw=uint8",
			Directive{Name: "Mode", Raw: RawUint8, DefaultName: "Rest"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseDirective(tt.text)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestParseDirective_Errors(t *testing.T) {
	tests := []struct {
		name string
		text string
	}{
		{"wrong prefix", "//go:generate rawenum"},
		{"no name", "//rawenum: raw=string"},
		{"unexported name", "//rawenum:mode raw=string"},
		{"not an identifier", "//rawenum:My-Enum raw=string"},
		{"missing raw", "//rawenum:Mode"},
		{"bad raw type", "//rawenum:Mode raw=float64"},
		{"bare argument", "//rawenum:Mode raw=string default"},
		{"unknown argument", "//rawenum:Mode raw=string suffix=x"},
		{"bad default name", "//rawenum:Mode raw=string default=123"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ParseDirective(tt.text)
			assert.Error(t, err)
		})
	}
}
