package render_test

import (
	"testing"

	"lumen/internal/heap"
	"lumen/internal/render"
	"lumen/internal/typemeta"
	"lumen/internal/word"
)

func TestWrapThresholdBoundary(t *testing.T) {
	h := heap.New()
	r := render.New(h, nil)
	list := newList(h, mustInt(t, 1), mustInt(t, 2), mustInt(t, 3))
	single := "[1, 2, 3]" // 9 columns colorless

	s := plainSettings()
	s.ListWrap = render.WrapAt(len(single) + 1)
	if got := r.Render(list, s); got != single {
		t.Fatalf("below threshold: %q", got)
	}

	s.ListWrap = render.WrapAt(len(single))
	want := "[\n  1,\n  2,\n  3\n]"
	if got := r.Render(list, s); got != want {
		t.Fatalf("at threshold: %q, want %q", got, want)
	}
}

func TestWrapDisabledNeverSplits(t *testing.T) {
	h := heap.New()
	r := render.New(h, nil)
	s := plainSettings()
	s.ListWrap = render.WrapLimit{}

	elems := make([]word.Word, 0, 100)
	for i := 0; i < 100; i++ {
		elems = append(elems, mustInt(t, int64(i)))
	}
	got := r.Render(newList(h, elems...), s)
	for _, r := range got {
		if r == '\n' {
			t.Fatalf("disabled threshold produced a line break: %q", got)
		}
	}
}

func TestForceNewlineAlwaysSplits(t *testing.T) {
	h := heap.New()
	r := render.New(h, nil)
	s := plainSettings()
	s.ForceNewline = true

	got := r.Render(newList(h, mustInt(t, 1)), s)
	if got != "[\n  1\n]" {
		t.Fatalf("forceNewline list = %q", got)
	}

	// The box form stays single-line even under forceNewline.
	if got := r.Render(h.AllocTuple(mustInt(t, 5)), s); got != "box(5)" {
		t.Fatalf("forceNewline box = %q", got)
	}
}

func TestWrapPerFamilyThresholds(t *testing.T) {
	h := heap.New()
	r := render.New(h, nil)
	s := plainSettings()
	s.TupleWrap = render.WrapAt(1)
	s.ListWrap = render.WrapAt(200)

	tup := h.AllocTuple(mustInt(t, 1), mustInt(t, 2))
	if got := r.Render(tup, s); got != "(\n  1,\n  2\n)" {
		t.Fatalf("tight tuple threshold = %q", got)
	}
	list := newList(h, mustInt(t, 1), mustInt(t, 2))
	if got := r.Render(list, s); got != "[1, 2]" {
		t.Fatalf("loose list threshold = %q", got)
	}
}

func TestWrapMultilineRecord(t *testing.T) {
	h := heap.New()
	table := typemeta.NewTable(8)
	table.Register(typemeta.TypeInfo{Hash: 0x77, Kind: typemeta.RecordType, Fields: []string{"x", "y"}})
	r := render.New(h, table)
	s := plainSettings()
	s.RecordWrap = render.WrapAt(1)

	rec := h.AllocRecord(0x77, mustInt(t, 3), mustInt(t, 4))
	want := "{\n  x: 3,\n  y: 4\n}"
	if got := r.Render(rec, s); got != want {
		t.Fatalf("multiline record = %q, want %q", got, want)
	}
}

func TestWrapNestedIndentation(t *testing.T) {
	h := heap.New()
	r := render.New(h, nil)
	s := plainSettings()
	s.ForceNewline = true
	s.Indent = 4

	inner := newList(h, mustInt(t, 1))
	outer := newList(h, inner)
	want := "[\n    [\n        1\n    ]\n]"
	if got := r.Render(outer, s); got != want {
		t.Fatalf("nested indent = %q, want %q", got, want)
	}
}

func TestWrapCustomNewline(t *testing.T) {
	h := heap.New()
	r := render.New(h, nil)
	s := plainSettings()
	s.ForceNewline = true
	s.Newline = "\r\n"

	got := r.Render(newList(h, mustInt(t, 1)), s)
	if got != "[\r\n  1\r\n]" {
		t.Fatalf("custom newline = %q", got)
	}
}

func TestWrapMeasurementIgnoresColor(t *testing.T) {
	// The dry-run is colorless: a colored render must make the same
	// wrap decision as the colorless one at the same threshold.
	h := heap.New()
	r := render.New(h, nil)
	list := newList(h, mustInt(t, 1), mustInt(t, 2), mustInt(t, 3))

	s := plainSettings()
	s.ListWrap = render.WrapAt(len("[1, 2, 3]") + 1)
	plainOut := r.Render(list, s)

	s.Colored = true
	coloredOut := r.Render(list, s)
	if countRunes(plainOut, '\n') != countRunes(coloredOut, '\n') {
		t.Fatalf("color changed the wrap decision: %q vs %q", plainOut, coloredOut)
	}
}

func countRunes(s string, want rune) int {
	n := 0
	for _, r := range s {
		if r == want {
			n++
		}
	}
	return n
}
