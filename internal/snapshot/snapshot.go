// Package snapshot reads and writes portable value dumps: the type
// metadata, the reachable heap graph and a root value, msgpack-encoded so
// an out-of-process runtime can hand values to the inspector.
package snapshot

import (
	"errors"
	"fmt"
	"io"

	"github.com/vmihailenco/msgpack/v5"
	"golang.org/x/text/unicode/norm"

	"lumen/internal/bignum"
	"lumen/internal/heap"
	"lumen/internal/typemeta"
	"lumen/internal/word"
)

// SchemaVersion increments when the dump layout changes.
const SchemaVersion = 1

// ErrSchema indicates a dump written by an incompatible schema.
var ErrSchema = errors.New("unsupported snapshot schema")

type fileDef struct {
	Version int         `msgpack:"version"`
	Types   []typeDef   `msgpack:"types"`
	Objects []objectDef `msgpack:"objects"`
	Root    uint64      `msgpack:"root"`
}

type typeDef struct {
	Hash     uint64       `msgpack:"hash"`
	Kind     uint8        `msgpack:"kind"`
	Name     string       `msgpack:"name"`
	Fields   []string     `msgpack:"fields"`
	Variants []variantDef `msgpack:"variants"`
}

type variantDef struct {
	ID     uint32   `msgpack:"id"`
	Name   string   `msgpack:"name"`
	Arity  int      `msgpack:"arity"`
	Fields []string `msgpack:"fields"`
}

// objectDef flattens one heap object. Objects are numbered 1..N in
// first-visit order; element words reference those numbers, so decoding
// into a fresh heap reproduces the same handles.
type objectDef struct {
	Kind      uint8    `msgpack:"kind"`
	Str       string   `msgpack:"str,omitempty"`
	Bytes     []byte   `msgpack:"bytes,omitempty"`
	Elems     []uint64 `msgpack:"elems,omitempty"`
	TypeHash  uint64   `msgpack:"type_hash,omitempty"`
	VariantID uint32   `msgpack:"variant_id,omitempty"`
	Boxed     uint8    `msgpack:"boxed,omitempty"`
	I64       int64    `msgpack:"i64,omitempty"`
	U64       uint64   `msgpack:"u64,omitempty"`
	F32       float32  `msgpack:"f32,omitempty"`
	F64       float64  `msgpack:"f64,omitempty"`
	RatNum    string   `msgpack:"rat_num,omitempty"`
	RatDen    string   `msgpack:"rat_den,omitempty"`
	Big       string   `msgpack:"big,omitempty"`
	FuncName  string   `msgpack:"func_name,omitempty"`
}

// Encode writes the graph reachable from root, plus the registry's
// types, to w.
func Encode(w io.Writer, h *heap.Heap, table *typemeta.Table, root word.Word) error {
	enc := newEncoder(h)
	enc.visit(root)

	file := fileDef{
		Version: SchemaVersion,
		Objects: enc.defs,
		Root:    uint64(enc.rewrite(root)),
	}
	for _, info := range table.Types() {
		file.Types = append(file.Types, typeDefFrom(info))
	}
	return msgpack.NewEncoder(w).Encode(&file)
}

type encoder struct {
	heap *heap.Heap
	ids  map[heap.Handle]uint32
	defs []objectDef
}

func newEncoder(h *heap.Heap) *encoder {
	return &encoder{heap: h, ids: make(map[heap.Handle]uint32)}
}

// visit assigns sequential ids in first-visit order and records defs.
// Unresolvable handles are dropped; their words rewrite to zero, which
// classifies as unknown after decode.
func (e *encoder) visit(v word.Word) {
	c := word.Classify(v)
	if c.Kind != word.KindHeap {
		return
	}
	handle := heap.Handle(c.Handle)
	if _, seen := e.ids[handle]; seen {
		return
	}
	obj, ok := e.heap.Lookup(handle)
	if !ok {
		return
	}
	id := uint32(len(e.defs) + 1)
	e.ids[handle] = id
	e.defs = append(e.defs, objectDef{})
	slot := id - 1

	for _, elem := range obj.Elems {
		e.visit(elem)
	}

	def := objectDef{
		Kind:      uint8(obj.Kind),
		Str:       obj.Str,
		Bytes:     obj.Bytes,
		TypeHash:  obj.TypeHash,
		VariantID: obj.VariantID,
		Boxed:     uint8(obj.Boxed),
		I64:       obj.I64,
		U64:       obj.U64,
		F32:       obj.F32,
		F64:       obj.F64,
		FuncName:  obj.FuncName,
	}
	if obj.Kind == heap.OKBoxed {
		switch obj.Boxed {
		case heap.BoxedRational:
			def.RatNum = bignum.FormatInt(obj.Rat.Num)
			def.RatDen = bignum.FormatInt(obj.Rat.Den)
		case heap.BoxedBigInt:
			def.Big = bignum.FormatInt(obj.Big)
		}
	}
	for _, elem := range obj.Elems {
		def.Elems = append(def.Elems, uint64(e.rewrite(elem)))
	}
	e.defs[slot] = def
}

// rewrite maps a word's handle into the dump's numbering. Non-heap words
// pass through untouched.
func (e *encoder) rewrite(v word.Word) word.Word {
	c := word.Classify(v)
	if c.Kind != word.KindHeap {
		return v
	}
	id, ok := e.ids[heap.Handle(c.Handle)]
	if !ok {
		return 0
	}
	return word.FromHandle(id)
}

func typeDefFrom(info typemeta.TypeInfo) typeDef {
	def := typeDef{
		Hash:   info.Hash,
		Kind:   uint8(info.Kind),
		Name:   info.Name,
		Fields: info.Fields,
	}
	for _, v := range info.Variants {
		def.Variants = append(def.Variants, variantDef(v))
	}
	return def
}

// Decode rebuilds a heap, a registry table and the root value from rd.
func Decode(rd io.Reader) (*heap.Heap, *typemeta.Table, word.Word, error) {
	var file fileDef
	if err := msgpack.NewDecoder(rd).Decode(&file); err != nil {
		return nil, nil, 0, fmt.Errorf("decode snapshot: %w", err)
	}
	if file.Version != SchemaVersion {
		return nil, nil, 0, fmt.Errorf("%w: got %d, want %d", ErrSchema, file.Version, SchemaVersion)
	}

	table := typemeta.NewTable(typemeta.DefaultBucketCount)
	for _, def := range file.Types {
		info := typemeta.TypeInfo{
			Hash:   def.Hash,
			Kind:   typemeta.TypeKind(def.Kind),
			Name:   def.Name,
			Fields: def.Fields,
		}
		for _, v := range def.Variants {
			info.Variants = append(info.Variants, typemeta.VariantInfo(v))
		}
		table.Register(info)
	}

	h := heap.New()
	for i, def := range file.Objects {
		got := rebuildObject(h, def)
		want := word.FromHandle(uint32(i + 1))
		if got != want {
			return nil, nil, 0, fmt.Errorf("snapshot object %d allocated out of order", i+1)
		}
	}
	return h, table, word.Word(file.Root), nil
}

// rebuildObject allocates one object; allocation order reproduces the
// dump's handle numbering.
func rebuildObject(h *heap.Heap, def objectDef) word.Word {
	elems := make([]word.Word, len(def.Elems))
	for i, e := range def.Elems {
		elems[i] = word.Word(e)
	}
	switch heap.ObjectKind(def.Kind) {
	case heap.OKString:
		return h.AllocString(norm.NFC.String(def.Str))
	case heap.OKBytes:
		return h.AllocBytes(def.Bytes)
	case heap.OKTuple:
		return h.AllocTuple(elems...)
	case heap.OKArray:
		return h.AllocArray(elems...)
	case heap.OKRecord:
		return h.AllocRecord(def.TypeHash, elems...)
	case heap.OKVariant:
		return h.AllocVariant(def.TypeHash, def.VariantID, elems...)
	case heap.OKFunc:
		return h.AllocFunc(def.FuncName)
	case heap.OKBoxed:
		return rebuildBoxed(h, def)
	default:
		// Keep the slot so later ids stay aligned; the object keeps its
		// unrecognized kind and renders as an unknown heap value.
		w := h.AllocFunc("")
		if obj, ok := h.Lookup(heap.Handle(word.Classify(w).Handle)); ok {
			obj.Kind = heap.ObjectKind(def.Kind)
		}
		return w
	}
}

func rebuildBoxed(h *heap.Heap, def objectDef) word.Word {
	switch heap.BoxedKind(def.Boxed) {
	case heap.BoxedInt32:
		return h.AllocInt32(int32(def.I64))
	case heap.BoxedInt64:
		return h.AllocInt64(def.I64)
	case heap.BoxedUint32:
		return h.AllocUint32(uint32(def.U64))
	case heap.BoxedUint64:
		return h.AllocUint64(def.U64)
	case heap.BoxedFloat32:
		return h.AllocFloat32(def.F32)
	case heap.BoxedFloat64:
		return h.AllocFloat64(def.F64)
	case heap.BoxedRational:
		num, errN := bignum.ParseDecimal(def.RatNum)
		den, errD := bignum.ParseDecimal(def.RatDen)
		if errN != nil || errD != nil {
			return h.AllocRational(bignum.Rational{})
		}
		return h.AllocRational(bignum.Rational{Num: num, Den: den})
	case heap.BoxedBigInt:
		n, err := bignum.ParseDecimal(def.Big)
		if err != nil {
			return h.AllocBigInt(bignum.Zero())
		}
		return h.AllocBigInt(n)
	default:
		w := h.AllocFunc("")
		if obj, ok := h.Lookup(heap.Handle(word.Classify(w).Handle)); ok {
			obj.Kind = heap.OKBoxed
			obj.Boxed = heap.BoxedKind(def.Boxed)
		}
		return w
	}
}
