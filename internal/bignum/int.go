// Package bignum provides the arbitrary-precision integers the renderer
// consumes as a numeric-to-text primitive.
package bignum

import (
	"errors"
	"fmt"
)

// ErrSyntax indicates a malformed decimal literal.
var ErrSyntax = errors.New("invalid decimal literal")

// ErrDivByZero indicates an attempt to divide by zero.
var ErrDivByZero = errors.New("division by zero")

// Int is a big signed integer.
type Int struct {
	Neg bool
	// Limbs are base-2^32 little-endian magnitude (Limbs[0] is least
	// significant). Canonical zero is Neg=false with nil/empty Limbs.
	Limbs []uint32
}

// Zero returns a zero Int.
func Zero() Int { return Int{} }

// FromUint64 creates an Int from a uint64 magnitude.
func FromUint64(v uint64) Int {
	return Int{Limbs: limbsFromUint64(v)}
}

// FromInt64 creates an Int from an int64.
func FromInt64(v int64) Int {
	if v == 0 {
		return Int{}
	}
	if v > 0 {
		return Int{Limbs: limbsFromUint64(uint64(v))}
	}
	u := uint64(-(v + 1))
	u++
	return Int{Neg: true, Limbs: limbsFromUint64(u)}
}

// IsZero reports whether the integer is zero.
func (i Int) IsZero() bool {
	return len(trimLimbs(i.Limbs)) == 0
}

// ParseDecimal parses an optionally signed decimal literal.
func ParseDecimal(s string) (Int, error) {
	neg := false
	switch {
	case len(s) > 0 && s[0] == '-':
		neg = true
		s = s[1:]
	case len(s) > 0 && s[0] == '+':
		s = s[1:]
	}
	if s == "" {
		return Int{}, ErrSyntax
	}
	var limbs []uint32
	for i := 0; i < len(s); i++ {
		ch := s[i]
		if ch < '0' || ch > '9' {
			return Int{}, fmt.Errorf("%w: unexpected %q", ErrSyntax, ch)
		}
		limbs = mulAddSmall(limbs, 10, uint32(ch-'0'))
	}
	limbs = trimLimbs(limbs)
	if len(limbs) == 0 {
		return Int{}, nil
	}
	return Int{Neg: neg, Limbs: limbs}, nil
}

func limbsFromUint64(v uint64) []uint32 {
	if v == 0 {
		return nil
	}
	lo := uint32(v)
	hi := uint32(v >> 32)
	if hi == 0 {
		return []uint32{lo}
	}
	return []uint32{lo, hi}
}

// mulAddSmall computes limbs*m + add in place of a fresh slice.
func mulAddSmall(limbs []uint32, m uint32, add uint32) []uint32 {
	out := make([]uint32, 0, len(limbs)+1)
	carry := uint64(add)
	for _, limb := range limbs {
		cur := uint64(limb)*uint64(m) + carry
		out = append(out, uint32(cur))
		carry = cur >> 32
	}
	for carry != 0 {
		out = append(out, uint32(carry))
		carry >>= 32
	}
	return out
}

// divModSmall divides the magnitude by d, returning quotient and remainder.
func divModSmall(limbs []uint32, d uint32) (q []uint32, r uint32, err error) {
	if d == 0 {
		return nil, 0, ErrDivByZero
	}
	limbs = trimLimbs(limbs)
	if len(limbs) == 0 {
		return nil, 0, nil
	}
	out := make([]uint32, len(limbs))
	var rem uint64
	for i := len(limbs) - 1; i >= 0; i-- {
		cur := (rem << 32) | uint64(limbs[i])
		out[i] = uint32(cur / uint64(d))
		rem = cur % uint64(d)
		if i == 0 {
			break
		}
	}
	return trimLimbs(out), uint32(rem), nil
}

func trimLimbs(limbs []uint32) []uint32 {
	for len(limbs) > 0 && limbs[len(limbs)-1] == 0 {
		limbs = limbs[:len(limbs)-1]
	}
	if len(limbs) == 0 {
		return nil
	}
	return limbs
}
