package snapshot_test

import (
	"bytes"
	"testing"

	"github.com/vmihailenco/msgpack/v5"

	"lumen/internal/bignum"
	"lumen/internal/heap"
	"lumen/internal/render"
	"lumen/internal/snapshot"
	"lumen/internal/typemeta"
	"lumen/internal/word"
)

func buildSample(t *testing.T) (*heap.Heap, *typemeta.Table, word.Word) {
	t.Helper()
	h := heap.New()
	table := typemeta.NewTable(typemeta.DefaultBucketCount)
	table.Register(typemeta.TypeInfo{
		Hash:   0x77,
		Kind:   typemeta.RecordType,
		Name:   "Point",
		Fields: []string{"x", "y"},
	})

	one, _ := word.FromInt(1)
	two, _ := word.FromInt(2)
	nilCell := h.AllocVariant(typemeta.ListTypeHash, typemeta.ListNil)
	list := h.AllocVariant(typemeta.ListTypeHash, typemeta.ListCons, h.AllocString("hé\tllo"), nilCell)
	big, err := bignum.ParseDecimal("18446744073709551616")
	if err != nil {
		t.Fatalf("ParseDecimal: %v", err)
	}
	root := h.AllocTuple(
		h.AllocRecord(0x77, one, two),
		list,
		h.AllocBytes([]byte{1, 2, 3}),
		h.AllocBigInt(big),
		h.AllocRational(bignum.RatFromInt64(5, 8)),
		word.FromBool(true),
	)
	return h, table, root
}

func TestSnapshotRoundTrip(t *testing.T) {
	h, table, root := buildSample(t)
	r := render.New(h, table)
	s := render.DefaultSettings()
	s.Colored = false
	want := r.Render(root, s)

	var buf bytes.Buffer
	if err := snapshot.Encode(&buf, h, table, root); err != nil {
		t.Fatalf("Encode: %v", err)
	}
	h2, table2, root2, err := snapshot.Decode(&buf)
	if err != nil {
		t.Fatalf("Decode: %v", err)
	}
	got := render.New(h2, table2).Render(root2, s)
	if got != want {
		t.Fatalf("round-trip render mismatch:\n got %q\nwant %q", got, want)
	}
}

func TestSnapshotNonHeapRoot(t *testing.T) {
	h := heap.New()
	table := typemeta.NewTable(8)
	root := word.FromBool(false)

	var buf bytes.Buffer
	if err := snapshot.Encode(&buf, h, table, root); err != nil {
		t.Fatalf("Encode: %v", err)
	}
	_, _, root2, err := snapshot.Decode(&buf)
	if err != nil {
		t.Fatalf("Decode: %v", err)
	}
	if root2 != root {
		t.Fatalf("root = %#x, want %#x", uint64(root2), uint64(root))
	}
}

func TestSnapshotSharedObjectEncodedOnce(t *testing.T) {
	h := heap.New()
	table := typemeta.NewTable(8)
	shared := h.AllocString("shared")
	root := h.AllocTuple(shared, shared)

	var buf bytes.Buffer
	if err := snapshot.Encode(&buf, h, table, root); err != nil {
		t.Fatalf("Encode: %v", err)
	}
	h2, table2, root2, err := snapshot.Decode(&buf)
	if err != nil {
		t.Fatalf("Decode: %v", err)
	}
	if h2.Len() != 2 {
		t.Fatalf("decoded heap has %d objects, want 2", h2.Len())
	}
	s := render.DefaultSettings()
	s.Colored = false
	if got := render.New(h2, table2).Render(root2, s); got != `("shared", "shared")` {
		t.Fatalf("shared render = %q", got)
	}
}

func TestSnapshotRejectsWrongSchema(t *testing.T) {
	var buf bytes.Buffer
	enc := msgpack.NewEncoder(&buf)
	if err := enc.Encode(map[string]any{"version": 99}); err != nil {
		t.Fatalf("encode: %v", err)
	}
	if _, _, _, err := snapshot.Decode(&buf); err == nil {
		t.Fatalf("wrong schema must fail")
	}
}

func TestSnapshotDanglingHandleRewritesToUnknown(t *testing.T) {
	h := heap.New()
	table := typemeta.NewTable(8)
	root := h.AllocTuple(word.FromHandle(4096))

	var buf bytes.Buffer
	if err := snapshot.Encode(&buf, h, table, root); err != nil {
		t.Fatalf("Encode: %v", err)
	}
	h2, table2, root2, err := snapshot.Decode(&buf)
	if err != nil {
		t.Fatalf("Decode: %v", err)
	}
	s := render.DefaultSettings()
	s.Colored = false
	if got := render.New(h2, table2).Render(root2, s); got != "box(<unknown value>)" {
		t.Fatalf("dangling render = %q", got)
	}
}
