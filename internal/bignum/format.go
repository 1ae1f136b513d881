package bignum

import (
	"fmt"
	"strings"
)

// FormatInt renders the integer as decimal text.
func FormatInt(i Int) string {
	limbs := trimLimbs(i.Limbs)
	if len(limbs) == 0 {
		return "0"
	}
	s := formatLimbs(limbs)
	if i.Neg {
		return "-" + s
	}
	return s
}

// formatLimbs converts a magnitude to decimal by repeated division into
// base-1e9 chunks, most significant chunk printed unpadded.
func formatLimbs(limbs []uint32) string {
	const base = uint32(1_000_000_000)

	cur := limbs
	var parts []uint32
	for len(cur) > 0 {
		q, r, err := divModSmall(cur, base)
		if err != nil {
			return "<format-error>"
		}
		parts = append(parts, r)
		cur = q
	}

	var sb strings.Builder
	fmt.Fprintf(&sb, "%d", parts[len(parts)-1])
	for i := len(parts) - 2; i >= 0; i-- {
		fmt.Fprintf(&sb, "%09d", parts[i])
		if i == 0 {
			break
		}
	}
	return sb.String()
}
