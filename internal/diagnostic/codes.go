package diagnostic

// Code is a stable, namespaced identifier for one kind of defect. Codes are
// part of the tool's public surface: scripts grep for them and tests assert
// on them, so existing values never change meaning.
type Code string

const (
	// CodeNotAnEnum: the //rawenum: directive is attached to something that
	// is not a definition struct. Fatal; no other checks run.
	CodeNotAnEnum Code = "rawenum/not-an-enum"

	// CodeMissingDefault: no variant carries the ,default marker.
	CodeMissingDefault Code = "rawenum/missing-default"

	// CodeExtraDefault: a second (or later) variant carries the ,default
	// marker. One diagnostic per surplus marker.
	CodeExtraDefault Code = "rawenum/extra-default"

	// CodeWrongAssociatedValue: the catch-all variant's payload type is not
	// the enum's raw type.
	CodeWrongAssociatedValue Code = "rawenum/wrong-associated-value"

	// CodeDefaultAndRaw: one variant has both an explicit raw value and the
	// ,default marker.
	CodeDefaultAndRaw Code = "rawenum/default-and-raw"

	// CodeMissingRawValue: a value-case has no explicit raw value and none
	// can be derived (integer raw types have no implicit derivation).
	CodeMissingRawValue Code = "rawenum/missing-raw-value"

	// CodeInvalidRawValue: an explicit raw value does not parse as a literal
	// of the enum's raw type.
	CodeInvalidRawValue Code = "rawenum/invalid-raw-value"

	// CodeUnexpectedPayload: a value-case carries a payload; only the
	// catch-all variant may.
	CodeUnexpectedPayload Code = "rawenum/unexpected-payload"

	// CodeDuplicateRawValue: two value-cases resolve to the same raw value.
	// Anchored at the second occurrence, with a note at the first.
	CodeDuplicateRawValue Code = "rawenum/duplicate-raw-value"
)
