package casemodel

import (
	"reflect"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseRawTag(t *testing.T) {
	tests := []struct {
		name string
		tag  string
		want rawTag
	}{
		{"absent", `json:"x"`, rawTag{}},
		{"value only", `raw:"fast"`, rawTag{present: true, value: "fast", hasValue: true}},
		{"default only", `raw:",default"`, rawTag{present: true, isDefault: true}},
		{"value and default", `raw:"fast,default"`, rawTag{present: true, value: "fast", hasValue: true, isDefault: true}},
		{"empty", `raw:""`, rawTag{present: true}},
		{"unknown option ignored", `raw:"fast,omitempty"`, rawTag{present: true, value: "fast", hasValue: true}},
		{"next to other keys", `json:"x" raw:"fast" yaml:"y"`, rawTag{present: true, value: "fast", hasValue: true}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, parseRawTag(reflect.StructTag(tt.tag)))
		})
	}
}

func TestReplaceRawKey(t *testing.T) {
	tests := []struct {
		name   string
		tag    string
		newRaw string
		want   string
	}{
		{"add to empty", "", "0", `raw:"0"`},
		{"add next to others", `json:"x"`, ",default", `json:"x" raw:",default"`},
		{"replace value", `raw:"fast"`, "slow", `raw:"slow"`},
		{"replace keeps neighbors", `json:"x" raw:"fast" yaml:"y"`, ",default", `json:"x" raw:",default" yaml:"y"`},
		{"drop", `raw:",default"`, "", ""},
		{"drop keeps neighbors", `json:"x" raw:"fast"`, "", `json:"x"`},
		{"drop from empty", "", "", ""},
		{"raw inside another value untouched", `doc:"raw:\"x\""`, "y", `doc:"raw:\"x\"" raw:"y"`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, replaceRawKey(tt.tag, tt.newRaw))
		})
	}
}
