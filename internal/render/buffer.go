package render

import "strings"

// buffer accumulates output and remembers the last color written so that
// escape sequences are only emitted on a color change. One buffer is
// owned by exactly one render pass; dry-run passes use a throwaway
// colorless buffer.
type buffer struct {
	sb      strings.Builder
	colored bool
	last    string // last emitted escape, "" before the first one
}

func newBuffer(colored bool) *buffer {
	return &buffer{colored: colored}
}

// write appends text in the most recently set color.
func (b *buffer) write(s string) {
	b.sb.WriteString(s)
}

// writeIn appends text after switching to the given color if needed.
func (b *buffer) writeIn(c RGB, s string) {
	b.setColor(c)
	b.sb.WriteString(s)
}

func (b *buffer) setColor(c RGB) {
	if !b.colored {
		return
	}
	esc := c.escape()
	if esc == b.last {
		return
	}
	b.sb.WriteString(esc)
	b.last = esc
}

// finish appends the single trailing reset of a colored render.
func (b *buffer) finish() {
	if b.colored && b.last != "" {
		b.sb.WriteString(resetEscape)
	}
}

func (b *buffer) String() string {
	return b.sb.String()
}
