package casemodel

import (
	"reflect"
	"strings"
)

// TagKey is the struct tag key carrying per-variant annotations.
const TagKey = "raw"

// rawTag is the decoded form of a raw:"..." tag. The value part precedes the
// first comma; options follow, json-style: raw:"fast", raw:",default",
// raw:"fast,default".
type rawTag struct {
	present   bool
	value     string
	hasValue  bool
	isDefault bool
}

// parseRawTag decodes the raw key of a struct tag. An empty value part means
// "no explicit value", so raw:",default" marks the catch-all without one.
func parseRawTag(tag reflect.StructTag) rawTag {
	text, ok := tag.Lookup(TagKey)
	if !ok {
		return rawTag{}
	}

	t := rawTag{present: true}
	value, opts, _ := strings.Cut(text, ",")
	if value != "" {
		t.value = value
		t.hasValue = true
	}
	for _, opt := range strings.Split(opts, ",") {
		if opt == "default" {
			t.isDefault = true
		}
	}
	return t
}
