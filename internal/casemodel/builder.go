package casemodel

import (
	"rawenum/internal/analyze"
)

// Build walks the definition struct's fields and produces case records in
// declaration order. It is a pure classification pass: inconsistencies (no
// default, conflicting annotations, payloads on value-cases) are recorded
// as-is and reported by Validate, never here.
//
// A field declaring several names shares one tag; the annotation binds to
// the first name only. Later names get untagged records, so a line
// "A, B rawenum.Case" tagged raw:",default" makes A the catch-all and
// leaves B to resolve (or fail) on its own.
func Build(decl *analyze.EnumDecl) []*CaseRecord {
	var records []*CaseRecord

	for i := range decl.Fields {
		field := &decl.Fields[i]
		if field.Embedded {
			// Embedded fields cannot name a variant; the validator rejects
			// the whole declaration as not enum-shaped.
			continue
		}

		tag := parseRawTag(field.Tag)
		for j, name := range field.Names {
			rec := &CaseRecord{
				Name:  name.Name,
				Ident: name,
				Field: field,
			}
			if j == 0 && tag.present {
				rec.Tagged = true
				rec.Default = tag.isDefault
				rec.Explicit = tag.hasValue
				rec.Value = tag.value
			}
			records = append(records, rec)
		}
	}

	return records
}
