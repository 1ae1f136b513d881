package render

import "strings"

// quoteString renders s double-quoted with C-style two-character escapes
// for control characters, the backslash and the quote itself. Used for
// strings nested inside containers; at depth 0 strings render raw.
func quoteString(s string) string {
	var b strings.Builder
	b.Grow(len(s) + 2)
	b.WriteByte('"')
	for _, r := range s {
		writeEscapedRune(&b, r, '"')
	}
	b.WriteByte('"')
	return b.String()
}

// quoteChar renders r single-quoted with the same escape set.
func quoteChar(r rune) string {
	var b strings.Builder
	b.WriteByte('\'')
	writeEscapedRune(&b, r, '\'')
	b.WriteByte('\'')
	return b.String()
}

func writeEscapedRune(b *strings.Builder, r rune, quote rune) {
	switch r {
	case '\\':
		b.WriteString(`\\`)
	case quote:
		b.WriteByte('\\')
		b.WriteRune(quote)
	case '\b':
		b.WriteString(`\b`)
	case '\f':
		b.WriteString(`\f`)
	case '\n':
		b.WriteString(`\n`)
	case '\r':
		b.WriteString(`\r`)
	case '\t':
		b.WriteString(`\t`)
	case '\v':
		b.WriteString(`\v`)
	default:
		b.WriteRune(r)
	}
}
