// Package rawenum is the runtime support package for enums generated by the
// rawenum tool.
//
// An enum is declared as a definition struct whose fields are the variants:
//
//	//rawenum:Mode raw=string default=Other
//	type modeDef struct {
//		Fast  rawenum.Case `raw:"fast"`
//		Slow  rawenum.Case              // implicit raw value "Slow"
//		Other string       `raw:",default"`
//	}
//
// Running `rawenum gen` derives the Mode type with decode (ModeFromRaw),
// encode (RawValue) and a Representable conformance assertion. The definition
// struct and its tags have no behavior of their own.
package rawenum

// Case marks a definition struct field as a value-case variant without a
// payload. The catch-all variant uses the raw scalar type instead.
type Case struct{}

// Raw is the set of scalar types an enum may be represented by.
type Raw interface {
	~string |
		~int | ~int8 | ~int16 | ~int32 | ~int64 |
		~uint | ~uint8 | ~uint16 | ~uint32 | ~uint64
}

// Representable is satisfied by every generated enum type. RawValue returns
// the scalar representation of the variant; the catch-all variant returns the
// value it was decoded from, unchanged.
type Representable[R Raw] interface {
	RawValue() R
}
