package casemodel

import (
	"fmt"

	"rawenum/internal/analyze"
	"rawenum/internal/diagnostic"
)

// FallbackDefaultName names the catch-all variant a missing-default fix
// synthesizes when neither the directive nor the configuration chose one.
const FallbackDefaultName = "Other"

// markerTypeText is how fixes spell the no-payload marker type.
const markerTypeText = "rawenum.Case"

// Validate checks the case records against the model invariants and returns
// either a well-formed CaseModel or a non-empty diagnostic bag. Every
// violation found in one pass is reported together, with two exceptions that
// make all downstream checks meaningless and therefore report alone: a
// declaration that is not enum-shaped, and a default-variant count other
// than one.
//
// defaultName is the catch-all name used when a fix must synthesize a brand
// new variant; the directive's default= overrides it.
func Validate(decl *analyze.EnumDecl, records []*CaseRecord, defaultName string) (*CaseModel, *diagnostic.Bag) {
	bag := diagnostic.NewBag()

	if !checkShape(decl, bag) {
		return nil, bag
	}

	def := checkExactlyOneDefault(decl, records, bag, pickDefaultName(decl, defaultName))
	if bag.Len() > 0 {
		bag.Sort()
		return nil, bag
	}

	checkDefaultPayload(decl, def, bag)
	checkConflictingAnnotations(records, bag)
	checkValueCases(decl, records, def, bag)

	if bag.Len() > 0 {
		bag.Sort()
		return nil, bag
	}

	return buildModel(decl, records, def), nil
}

// Run builds and validates in one step.
func Run(decl *analyze.EnumDecl, defaultName string) (*CaseModel, *diagnostic.Bag) {
	return Validate(decl, Build(decl), defaultName)
}

func pickDefaultName(decl *analyze.EnumDecl, configured string) string {
	if decl.DefaultName != "" {
		return decl.DefaultName
	}
	if configured != "" {
		return configured
	}
	return FallbackDefaultName
}

// checkShape rejects declarations that are not definition structs at all.
// Fatal: no further checks can interpret the declaration.
func checkShape(decl *analyze.EnumDecl, bag *diagnostic.Bag) bool {
	if decl.Struct == nil {
		bag.Add(diagnostic.Error(diagnostic.CodeNotAnEnum, decl.Pos,
			fmt.Sprintf("rawenum definition %q must be a struct type", decl.DefName)))
		return false
	}
	for i := range decl.Fields {
		if decl.Fields[i].Embedded {
			bag.Add(diagnostic.Error(diagnostic.CodeNotAnEnum, decl.Fields[i].Field.Pos(),
				fmt.Sprintf("rawenum definition %q must not embed types; every variant needs a name", decl.DefName)))
			return false
		}
	}
	return true
}

// checkExactlyOneDefault enforces the exactly-one-catch-all invariant and
// returns the designated default record when there is exactly one.
func checkExactlyOneDefault(decl *analyze.EnumDecl, records []*CaseRecord, bag *diagnostic.Bag, defaultName string) *CaseRecord {
	var defaults []*CaseRecord
	for _, rec := range records {
		if rec.Default {
			defaults = append(defaults, rec)
		}
	}

	switch {
	case len(defaults) == 0:
		bag.Add(missingDefault(decl, records, defaultName))
		return nil
	case len(defaults) > 1:
		first := defaults[0]
		for _, rec := range defaults[1:] {
			d := diagnostic.Error(diagnostic.CodeExtraDefault, rec.Ident.Pos(),
				fmt.Sprintf("enum %q already has a default variant; %q cannot be another", decl.Name, rec.Name)).
				WithNote(first.Ident.Pos(), fmt.Sprintf("%q was marked as the default here", first.Name)).
				WithFix(fmt.Sprintf("remove the default marker from %q", rec.Name),
					rec.Field.Field, retagged(rec.Field, dropDefault(rec)))
			bag.Add(d)
		}
		return first
	}
	return defaults[0]
}

// missingDefault builds the missing-default diagnostic. When some variant
// already carries a payload of the raw type, the fix only adds the marker to
// it; otherwise it appends a brand-new catch-all variant named defaultName.
func missingDefault(decl *analyze.EnumDecl, records []*CaseRecord, defaultName string) diagnostic.Diagnostic {
	d := diagnostic.Error(diagnostic.CodeMissingDefault, decl.Pos,
		fmt.Sprintf("enum %q has no default variant to absorb unmatched raw values", decl.Name))

	for _, rec := range records {
		if rec.Field.Kind == analyze.PayloadScalar && rec.Field.Scalar == decl.Raw &&
			!rec.Explicit && rec.Ident == rec.Field.Names[0] {
			return d.WithFix(fmt.Sprintf("mark %q as the default variant", rec.Name),
				rec.Field.Field, retagged(rec.Field, ",default"))
		}
	}

	return d.WithFix(fmt.Sprintf("add a catch-all variant %q", defaultName),
		decl.Struct.Fields,
		newField([]string{defaultName}, string(decl.Raw), `raw:",default"`))
}

// checkDefaultPayload requires the catch-all to carry exactly one payload of
// the raw type.
func checkDefaultPayload(decl *analyze.EnumDecl, def *CaseRecord, bag *diagnostic.Bag) {
	if def.Field.Kind == analyze.PayloadScalar && def.Field.Scalar == decl.Raw {
		return
	}
	bag.Add(diagnostic.Error(diagnostic.CodeWrongAssociatedValue, def.Field.Type.Pos(),
		fmt.Sprintf("default variant %q must carry a single %s payload, not %s",
			def.Name, decl.Raw, def.Field.TypeText)).
		WithFix(fmt.Sprintf("change the payload of %q to %s", def.Name, decl.Raw),
			def.Field.Field, retyped(def.Field, string(decl.Raw))))
}

// checkConflictingAnnotations flags records that are both the default and
// carry an explicit raw value; the two annotations are mutually exclusive.
func checkConflictingAnnotations(records []*CaseRecord, bag *diagnostic.Bag) {
	for _, rec := range records {
		if !rec.Default || !rec.Explicit {
			continue
		}
		bag.Add(diagnostic.Error(diagnostic.CodeDefaultAndRaw, rec.Field.TagPos,
			fmt.Sprintf("variant %q cannot both be the default and carry raw value %q", rec.Name, rec.Value)).
			WithFix(fmt.Sprintf("drop the raw value and keep %q as the default", rec.Name),
				rec.Field.Field, retagged(rec.Field, ",default")))
	}
}

// checkValueCases runs the remaining per-variant checks: payload shape,
// value derivability and literal validity, and uniqueness of resolved
// values. All violations accumulate.
func checkValueCases(decl *analyze.EnumDecl, records []*CaseRecord, def *CaseRecord, bag *diagnostic.Bag) {
	seen := map[string]*CaseRecord{}
	fixedFields := map[*analyze.FieldInfo]bool{}

	for _, rec := range records {
		if rec == def {
			continue
		}

		if rec.Field.Kind != analyze.PayloadMarker {
			d := diagnostic.Error(diagnostic.CodeUnexpectedPayload, rec.Ident.Pos(),
				fmt.Sprintf("value-case %q cannot carry a payload (%s); only the default variant does",
					rec.Name, rec.Field.TypeText))
			// One fix per field: rewriting the shared type would repair every
			// name on the line, and never when the default shares the field.
			if rec.Field != def.Field && !fixedFields[rec.Field] {
				fixedFields[rec.Field] = true
				d = d.WithFix(fmt.Sprintf("make %q a plain value-case", rec.Name),
					rec.Field.Field, retyped(rec.Field, markerTypeText))
			}
			bag.Add(d)
		}

		value, ok := rec.Resolved(decl.Raw)
		if !ok {
			d := diagnostic.Error(diagnostic.CodeMissingRawValue, rec.Ident.Pos(),
				fmt.Sprintf("variant %q has no raw value: %s enums derive no implicit values", rec.Name, decl.Raw))
			if _, tagged := rec.Field.Tag.Lookup(TagKey); !tagged && rec.Ident == rec.Field.Names[0] {
				d = d.WithFix(fmt.Sprintf("give %q a placeholder raw value", rec.Name),
					rec.Field.Field, retagged(rec.Field, "0"))
			}
			bag.Add(d)
			continue
		}

		if rec.Explicit && !decl.Raw.ValidLiteral(value) {
			bag.Add(diagnostic.Error(diagnostic.CodeInvalidRawValue, rec.Field.TagPos,
				fmt.Sprintf("raw value %q of variant %q is not a valid %s literal", value, rec.Name, decl.Raw)))
			continue
		}

		if first, dup := seen[value]; dup {
			bag.Add(diagnostic.Error(diagnostic.CodeDuplicateRawValue, rec.Ident.Pos(),
				fmt.Sprintf("raw value %q of variant %q is already used by %q", value, rec.Name, first.Name)).
				WithNote(first.Ident.Pos(), "previously used here"))
			continue
		}
		seen[value] = rec
	}
}

// buildModel assembles the validated model: the catch-all plus value-cases
// with resolved raw values, in declaration order.
func buildModel(decl *analyze.EnumDecl, records []*CaseRecord, def *CaseRecord) *CaseModel {
	m := &CaseModel{
		EnumName: decl.Name,
		DefName:  decl.DefName,
		Raw:      decl.Raw,
		Package:  decl.Package,
		Default:  def,
	}
	for _, rec := range records {
		if rec == def {
			continue
		}
		value, _ := rec.Resolved(decl.Raw)
		m.ValueCases = append(m.ValueCases, ValueCase{CaseRecord: rec, Resolved: value})
	}
	return m
}

// dropDefault returns the raw tag content for rec with the default marker
// removed: the explicit value when one exists, otherwise no tag at all.
func dropDefault(rec *CaseRecord) string {
	if rec.Explicit {
		return rec.Value
	}
	return ""
}
