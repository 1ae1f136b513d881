package render_test

import (
	"strings"
	"testing"

	"lumen/internal/heap"
	"lumen/internal/render"
	"lumen/internal/word"
)

const ansiReset = "\x1b[0m"

func escapeCount(s string) int {
	return strings.Count(s, "\x1b[")
}

func TestColoredRenderEndsWithSingleReset(t *testing.T) {
	h := heap.New()
	r := render.New(h, nil)
	s := render.DefaultSettings()

	got := r.Render(mustInt(t, 5), s)
	if !strings.HasSuffix(got, ansiReset) {
		t.Fatalf("missing trailing reset: %q", got)
	}
	if strings.Count(got, ansiReset) != 1 {
		t.Fatalf("want exactly one reset: %q", got)
	}
	if !strings.HasSuffix(strings.TrimSuffix(got, ansiReset), "5") {
		t.Fatalf("unexpected body: %q", got)
	}
}

func TestUncoloredRenderHasNoEscapes(t *testing.T) {
	h := heap.New()
	r := render.New(h, nil)
	v := newList(h, mustInt(t, 1), h.AllocString("x"), word.FromBool(true))
	got := r.Render(v, plainSettings())
	if escapeCount(got) != 0 {
		t.Fatalf("colorless output contains escapes: %q", got)
	}
}

func TestColorEscapeEconomy(t *testing.T) {
	h := heap.New()
	r := render.New(h, nil)
	s := render.DefaultSettings()

	// A suffixed number is two writes in the same color: one escape for
	// both, plus the trailing reset.
	got := r.Render(word.FromInt8(5), s)
	if escapeCount(got) != 2 {
		t.Fatalf("suffixed number should emit 1 color + 1 reset, got %q", got)
	}

	// Adjacent same-colored numbers in a list: the separator switches to
	// the default color between them, so each number re-emits its color.
	got = r.Render(newList(h, mustInt(t, 1), mustInt(t, 2)), s)
	wantBody := "[1, 2]"
	if stripEscapes(got) != wantBody {
		t.Fatalf("body = %q, want %q", stripEscapes(got), wantBody)
	}
}

func TestRainbowBracketCycling(t *testing.T) {
	h := heap.New()
	r := render.New(h, nil)
	s := render.DefaultSettings()
	s.RainbowBracket = true

	inner := newList(h, mustInt(t, 5))
	outer := newList(h, inner)
	got := r.Render(outer, s)

	gold := "\x1b[38;2;255;215;0m"
	orchid := "\x1b[38;2;218;112;214m"
	if strings.Count(got, gold) != 2 {
		t.Fatalf("outer bracket color should appear twice (open+close): %q", got)
	}
	if strings.Count(got, orchid) != 2 {
		t.Fatalf("inner bracket color should appear twice: %q", got)
	}
	if !strings.HasPrefix(got, gold+"[") {
		t.Fatalf("outer open bracket not in palette slot 0: %q", got)
	}
}

func TestRainbowOffUsesOneBracketColor(t *testing.T) {
	h := heap.New()
	r := render.New(h, nil)
	s := render.DefaultSettings()

	inner := newList(h, mustInt(t, 5))
	outer := newList(h, inner)
	got := r.Render(outer, s)
	if strings.Contains(got, "\x1b[38;2;255;215;0m") {
		t.Fatalf("rainbow palette used while disabled: %q", got)
	}
}

func stripEscapes(s string) string {
	var b strings.Builder
	for i := 0; i < len(s); i++ {
		if s[i] == 0x1b {
			for i < len(s) && s[i] != 'm' {
				i++
			}
			continue
		}
		b.WriteByte(s[i])
	}
	return b.String()
}
