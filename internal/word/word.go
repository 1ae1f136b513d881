// Package word defines the tagged machine word used by the Lumen runtime
// and the decoder that classifies it without static type information.
package word

import (
	"fmt"

	"fortio.org/safecast"
)

// Word is an opaque tagged value. The low bits carry the kind:
//
//	xxxx...xxx1  immediate signed integer (63-bit, arithmetic shift)
//	xxxx...x010  constant (void/false/true sentinel in the upper bits)
//	xxxx...x100  short inline value (subtag in bits 3..7, payload above bit 15)
//	xxxx...x000  heap handle (handle in the upper bits), except the zero word
//
// Everything else is an unrecognized encoding. Decoding never fails; it
// produces KindUnknown instead.
type Word uint64

// Kind identifies the decoded shape of a Word.
type Kind uint8

const (
	// KindUnknown marks a bit pattern no decoder recognizes.
	KindUnknown Kind = iota
	// KindImmediate is a small signed integer packed into the word.
	KindImmediate
	// KindConstant is one of the fixed sentinels (void, false, true).
	KindConstant
	// KindShort is a small typed scalar packed into the word.
	KindShort
	// KindHeap is a handle to a heap object.
	KindHeap
)

// String returns a human-readable name for the kind.
func (k Kind) String() string {
	switch k {
	case KindImmediate:
		return "immediate"
	case KindConstant:
		return "constant"
	case KindShort:
		return "short"
	case KindHeap:
		return "heap"
	case KindUnknown:
		return "unknown"
	default:
		return fmt.Sprintf("Kind(%d)", k)
	}
}

// Constant identifies a fixed sentinel encoding.
type Constant uint8

const (
	ConstVoid Constant = iota
	ConstFalse
	ConstTrue
	// ConstUnknown marks a constant-tagged word with an unrecognized code.
	ConstUnknown
)

// ShortKind sub-classifies a short inline value.
type ShortKind uint8

const (
	ShortChar ShortKind = iota
	ShortInt8
	ShortInt16
	ShortUint8
	ShortUint16
	// ShortUnknown marks a short-tagged word with an unrecognized subtag.
	ShortUnknown
)

// String returns a human-readable name for the short subtag.
func (k ShortKind) String() string {
	switch k {
	case ShortChar:
		return "char"
	case ShortInt8:
		return "i8"
	case ShortInt16:
		return "i16"
	case ShortUint8:
		return "u8"
	case ShortUint16:
		return "u16"
	default:
		return "unknown"
	}
}

// Class is the result of decoding a Word: an explicit sum over the kind
// set. Only the fields selected by Kind (and Short) are meaningful.
type Class struct {
	Kind   Kind
	Int    int64     // KindImmediate
	Const  Constant  // KindConstant
	Short  ShortKind // KindShort
	Char   rune      // KindShort, ShortChar
	I16    int16     // KindShort, ShortInt8/ShortInt16 (sign-extended)
	U16    uint16    // KindShort, ShortUint8/ShortUint16
	Handle uint32    // KindHeap
}

const (
	tagMask     = 0b111
	tagConstant = 0b010
	tagShort    = 0b100
	tagHeap     = 0b000

	constVoidCode  = 0
	constFalseCode = 1
	constTrueCode  = 2

	shortSubMask  = 0x1f
	shortSubShift = 3
	payloadShift  = 16
)

// Classify decodes a word into its explicit class. It is total: any bit
// pattern yields a Class, unrecognized ones with KindUnknown. It never
// dereferences anything; heap handles are returned undecoded.
func Classify(w Word) Class {
	if w&1 == 1 {
		return Class{Kind: KindImmediate, Int: int64(w) >> 1}
	}
	switch w & tagMask {
	case tagConstant:
		switch w >> shortSubShift {
		case constVoidCode:
			return Class{Kind: KindConstant, Const: ConstVoid}
		case constFalseCode:
			return Class{Kind: KindConstant, Const: ConstFalse}
		case constTrueCode:
			return Class{Kind: KindConstant, Const: ConstTrue}
		default:
			return Class{Kind: KindConstant, Const: ConstUnknown}
		}
	case tagShort:
		return classifyShort(w)
	case tagHeap:
		if w == 0 {
			return Class{Kind: KindUnknown}
		}
		h, err := safecast.Conv[uint32](uint64(w) >> shortSubShift)
		if err != nil {
			return Class{Kind: KindUnknown}
		}
		return Class{Kind: KindHeap, Handle: h}
	default:
		return Class{Kind: KindUnknown}
	}
}

func classifyShort(w Word) Class {
	payload := uint64(w) >> payloadShift
	switch ShortKind((w >> shortSubShift) & shortSubMask) {
	case ShortChar:
		return Class{Kind: KindShort, Short: ShortChar, Char: rune(uint32(payload))}
	case ShortInt8:
		return Class{Kind: KindShort, Short: ShortInt8, I16: int16(int8(payload))}
	case ShortInt16:
		return Class{Kind: KindShort, Short: ShortInt16, I16: int16(payload)}
	case ShortUint8:
		return Class{Kind: KindShort, Short: ShortUint8, U16: uint16(uint8(payload))}
	case ShortUint16:
		return Class{Kind: KindShort, Short: ShortUint16, U16: uint16(payload)}
	default:
		return Class{Kind: KindShort, Short: ShortUnknown}
	}
}

// Void returns the void/unit constant.
func Void() Word {
	return Word(constVoidCode<<shortSubShift | tagConstant)
}

// FromBool encodes a boolean constant.
func FromBool(b bool) Word {
	if b {
		return Word(constTrueCode<<shortSubShift | tagConstant)
	}
	return Word(constFalseCode<<shortSubShift | tagConstant)
}

// FromInt encodes a signed integer as an immediate. The second result is
// false when the value does not fit in 63 bits; such values belong on the
// heap as boxed or big numbers.
func FromInt(n int64) (Word, bool) {
	if n < -(1<<62) || n >= 1<<62 {
		return 0, false
	}
	return Word(uint64(n)<<1 | 1), true
}

// FromChar encodes a character as a short inline value.
func FromChar(r rune) Word {
	return shortWord(ShortChar, uint64(uint32(r)))
}

// FromInt8 encodes an 8-bit signed integer.
func FromInt8(n int8) Word {
	return shortWord(ShortInt8, uint64(uint8(n)))
}

// FromInt16 encodes a 16-bit signed integer.
func FromInt16(n int16) Word {
	return shortWord(ShortInt16, uint64(uint16(n)))
}

// FromUint8 encodes an 8-bit unsigned integer.
func FromUint8(n uint8) Word {
	return shortWord(ShortUint8, uint64(n))
}

// FromUint16 encodes a 16-bit unsigned integer.
func FromUint16(n uint16) Word {
	return shortWord(ShortUint16, uint64(n))
}

func shortWord(sub ShortKind, payload uint64) Word {
	return Word(payload<<payloadShift | uint64(sub)<<shortSubShift | tagShort)
}

// FromHandle encodes a heap handle. Handle 0 is invalid and encodes to
// the zero word, which classifies as unknown.
func FromHandle(h uint32) Word {
	return Word(uint64(h) << shortSubShift)
}
