package analyze

import "strconv"

// RawType is the scalar type an enum is represented by, as spelled in the
// directive (raw=string, raw=int32, ...). It is supplied once, at the top
// level, for the whole declaration.
type RawType string

const (
	RawString RawType = "string"
	RawInt    RawType = "int"
	RawInt8   RawType = "int8"
	RawInt16  RawType = "int16"
	RawInt32  RawType = "int32"
	RawInt64  RawType = "int64"
	RawUint   RawType = "uint"
	RawUint8  RawType = "uint8"
	RawUint16 RawType = "uint16"
	RawUint32 RawType = "uint32"
	RawUint64 RawType = "uint64"
)

var rawTypes = map[RawType]bool{
	RawString: true,
	RawInt:    true, RawInt8: true, RawInt16: true, RawInt32: true, RawInt64: true,
	RawUint: true, RawUint8: true, RawUint16: true, RawUint32: true, RawUint64: true,
}

// Valid reports whether r names a supported scalar type.
func (r RawType) Valid() bool {
	return rawTypes[r]
}

// IsString reports whether the raw type is string. Only string raw types
// derive implicit values from variant names.
func (r RawType) IsString() bool {
	return r == RawString
}

// IsUnsigned reports whether the raw type is one of the unsigned integers.
func (r RawType) IsUnsigned() bool {
	switch r {
	case RawUint, RawUint8, RawUint16, RawUint32, RawUint64:
		return true
	}
	return false
}

// BitSize returns the parse bit size for integer raw types, 0 for string.
func (r RawType) BitSize() int {
	switch r {
	case RawInt, RawUint, RawInt64, RawUint64:
		return 64
	case RawInt8, RawUint8:
		return 8
	case RawInt16, RawUint16:
		return 16
	case RawInt32, RawUint32:
		return 32
	}
	return 0
}

// ValidLiteral reports whether lit is a well-formed literal of the raw type.
// Literals are compared and emitted textually, never evaluated, so this is a
// parse check only.
func (r RawType) ValidLiteral(lit string) bool {
	if r.IsString() {
		return true
	}
	var err error
	if r.IsUnsigned() {
		_, err = strconv.ParseUint(lit, 10, r.BitSize())
	} else {
		_, err = strconv.ParseInt(lit, 10, r.BitSize())
	}
	return err == nil
}
