package bignum

// Rational is a ratio of two big integers. The denominator is kept as
// stored; the renderer prints both halves verbatim and does not reduce.
type Rational struct {
	Num Int
	Den Int
}

// RatFromInt64 creates a rational from two int64 halves.
func RatFromInt64(num, den int64) Rational {
	return Rational{Num: FromInt64(num), Den: FromInt64(den)}
}

// FormatRational renders the ratio as "<num>/<den>" in decimal.
func FormatRational(r Rational) string {
	return FormatInt(r.Num) + "/" + FormatInt(r.Den)
}
