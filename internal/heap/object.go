// Package heap stores the reference-identified runtime objects a tagged
// word can point at.
package heap

import (
	"lumen/internal/bignum"
	"lumen/internal/word"
)

// Handle is a stable, monotonically increasing reference to a heap object.
// Handle(0) is always invalid.
type Handle uint32

// ObjectKind identifies the kind of heap object.
type ObjectKind uint8

const (
	OKString ObjectKind = iota
	OKBytes
	OKTuple
	OKArray
	OKRecord
	OKVariant
	OKBoxed
	OKFunc
)

// String returns a human-readable name for the object kind.
func (k ObjectKind) String() string {
	switch k {
	case OKString:
		return "string"
	case OKBytes:
		return "bytes"
	case OKTuple:
		return "tuple"
	case OKArray:
		return "array"
	case OKRecord:
		return "record"
	case OKVariant:
		return "variant"
	case OKBoxed:
		return "boxed"
	case OKFunc:
		return "func"
	default:
		return "unknown"
	}
}

// BoxedKind sub-classifies a boxed numeric object.
type BoxedKind uint8

const (
	BoxedInt32 BoxedKind = iota
	BoxedUint32
	BoxedInt64
	BoxedUint64
	BoxedFloat32
	BoxedFloat64
	BoxedRational
	BoxedBigInt
)

// Object is a typed heap object. The header (Kind, and for variants the
// TypeHash/VariantID pair) fully determines which payload fields are
// meaningful; readers never look past the declared element count.
type Object struct {
	Kind ObjectKind

	Str   string
	Bytes []byte
	// Elems holds tuple elements, array elements, record fields (in
	// metadata field order) or variant payload values.
	Elems []word.Word

	TypeHash  uint64 // OKRecord, OKVariant
	VariantID uint32 // OKVariant

	Boxed BoxedKind // OKBoxed
	I64   int64     // BoxedInt32/BoxedInt64
	U64   uint64    // BoxedUint32/BoxedUint64
	F32   float32   // BoxedFloat32
	F64   float64   // BoxedFloat64
	Rat   bignum.Rational
	Big   bignum.Int

	FuncName string // OKFunc, informational only
}
