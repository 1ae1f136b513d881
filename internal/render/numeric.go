package render

import (
	"strconv"

	"lumen/internal/heap"
	"lumen/internal/word"
)

// Numeric type suffixes, appended when PrintSuffix is on. Plain immediates
// and 64-bit floats carry no suffix.
const (
	suffixInt8    = "s"
	suffixInt16   = "S"
	suffixUint8   = "us"
	suffixUint16  = "uS"
	suffixInt32   = "l"
	suffixUint32  = "ul"
	suffixInt64   = "L"
	suffixUint64  = "uL"
	suffixFloat32 = "f"
)

// formatInt renders a signed integer in the configured radix, sign before
// the radix prefix.
func formatInt(n int64, r Radix) string {
	if n < 0 {
		return "-" + r.Prefix() + strconv.FormatUint(uint64(-(n+1))+1, r.base())
	}
	return r.Prefix() + strconv.FormatUint(uint64(n), r.base())
}

// formatUint renders an unsigned integer in the configured radix.
func formatUint(n uint64, r Radix) string {
	return r.Prefix() + strconv.FormatUint(n, r.base())
}

func formatFloat32(v float32) string {
	return strconv.FormatFloat(float64(v), 'g', -1, 32)
}

func formatFloat64(v float64) string {
	return strconv.FormatFloat(v, 'g', -1, 64)
}

func suffixForShort(k word.ShortKind) string {
	switch k {
	case word.ShortInt8:
		return suffixInt8
	case word.ShortInt16:
		return suffixInt16
	case word.ShortUint8:
		return suffixUint8
	case word.ShortUint16:
		return suffixUint16
	default:
		return ""
	}
}

func suffixForBoxed(k heap.BoxedKind) string {
	switch k {
	case heap.BoxedInt32:
		return suffixInt32
	case heap.BoxedUint32:
		return suffixUint32
	case heap.BoxedInt64:
		return suffixInt64
	case heap.BoxedUint64:
		return suffixUint64
	case heap.BoxedFloat32:
		return suffixFloat32
	default:
		return ""
	}
}
