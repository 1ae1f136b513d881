package heap

import (
	"lumen/internal/bignum"
	"lumen/internal/word"
)

// Heap stores all owned runtime objects.
// Handles are monotonically increasing and never reused within a run.
type Heap struct {
	next Handle
	objs map[Handle]*Object
}

// New returns an empty heap.
func New() *Heap {
	return &Heap{}
}

func (h *Heap) initIfNeeded() {
	if h.objs == nil {
		h.objs = make(map[Handle]*Object, 128)
	}
	if h.next == 0 {
		h.next = 1
	}
}

func (h *Heap) alloc(kind ObjectKind) (Handle, *Object) {
	h.initIfNeeded()
	handle := h.next
	h.next++
	obj := &Object{Kind: kind}
	h.objs[handle] = obj
	return handle, obj
}

// AllocString allocates a string object and returns its tagged word.
func (h *Heap) AllocString(s string) word.Word {
	handle, obj := h.alloc(OKString)
	obj.Str = s
	return word.FromHandle(uint32(handle))
}

// AllocBytes allocates a byte-sequence object.
func (h *Heap) AllocBytes(b []byte) word.Word {
	handle, obj := h.alloc(OKBytes)
	obj.Bytes = append([]byte(nil), b...)
	return word.FromHandle(uint32(handle))
}

// AllocTuple allocates a tuple of the given elements.
func (h *Heap) AllocTuple(elems ...word.Word) word.Word {
	handle, obj := h.alloc(OKTuple)
	obj.Elems = append([]word.Word(nil), elems...)
	return word.FromHandle(uint32(handle))
}

// AllocArray allocates an array of the given elements.
func (h *Heap) AllocArray(elems ...word.Word) word.Word {
	handle, obj := h.alloc(OKArray)
	obj.Elems = append([]word.Word(nil), elems...)
	return word.FromHandle(uint32(handle))
}

// AllocRecord allocates a record; fields follow the metadata field order
// of the record's type.
func (h *Heap) AllocRecord(typeHash uint64, fields ...word.Word) word.Word {
	handle, obj := h.alloc(OKRecord)
	obj.TypeHash = typeHash
	obj.Elems = append([]word.Word(nil), fields...)
	return word.FromHandle(uint32(handle))
}

// AllocVariant allocates a sum-type variant with its payload.
func (h *Heap) AllocVariant(typeHash uint64, variantID uint32, payload ...word.Word) word.Word {
	handle, obj := h.alloc(OKVariant)
	obj.TypeHash = typeHash
	obj.VariantID = variantID
	obj.Elems = append([]word.Word(nil), payload...)
	return word.FromHandle(uint32(handle))
}

// AllocFunc allocates an opaque function object.
func (h *Heap) AllocFunc(name string) word.Word {
	handle, obj := h.alloc(OKFunc)
	obj.FuncName = name
	return word.FromHandle(uint32(handle))
}

// AllocInt32 allocates a boxed 32-bit signed integer.
func (h *Heap) AllocInt32(v int32) word.Word {
	return h.allocBoxed(BoxedInt32, func(o *Object) { o.I64 = int64(v) })
}

// AllocUint32 allocates a boxed 32-bit unsigned integer.
func (h *Heap) AllocUint32(v uint32) word.Word {
	return h.allocBoxed(BoxedUint32, func(o *Object) { o.U64 = uint64(v) })
}

// AllocInt64 allocates a boxed 64-bit signed integer.
func (h *Heap) AllocInt64(v int64) word.Word {
	return h.allocBoxed(BoxedInt64, func(o *Object) { o.I64 = v })
}

// AllocUint64 allocates a boxed 64-bit unsigned integer.
func (h *Heap) AllocUint64(v uint64) word.Word {
	return h.allocBoxed(BoxedUint64, func(o *Object) { o.U64 = v })
}

// AllocFloat32 allocates a boxed 32-bit float.
func (h *Heap) AllocFloat32(v float32) word.Word {
	return h.allocBoxed(BoxedFloat32, func(o *Object) { o.F32 = v })
}

// AllocFloat64 allocates a boxed 64-bit float.
func (h *Heap) AllocFloat64(v float64) word.Word {
	return h.allocBoxed(BoxedFloat64, func(o *Object) { o.F64 = v })
}

// AllocRational allocates a boxed rational number.
func (h *Heap) AllocRational(r bignum.Rational) word.Word {
	return h.allocBoxed(BoxedRational, func(o *Object) { o.Rat = r })
}

// AllocBigInt allocates a boxed arbitrary-precision integer.
func (h *Heap) AllocBigInt(n bignum.Int) word.Word {
	return h.allocBoxed(BoxedBigInt, func(o *Object) { o.Big = n })
}

func (h *Heap) allocBoxed(kind BoxedKind, fill func(*Object)) word.Word {
	handle, obj := h.alloc(OKBoxed)
	obj.Boxed = kind
	fill(obj)
	return word.FromHandle(uint32(handle))
}

// Lookup resolves a handle. Missing or zero handles report false; the
// renderer treats that as an unknown heap value, never a fault.
func (h *Heap) Lookup(handle Handle) (*Object, bool) {
	if h == nil || handle == 0 {
		return nil, false
	}
	obj, ok := h.objs[handle]
	return obj, ok && obj != nil
}

// Len reports how many objects the heap holds.
func (h *Heap) Len() int {
	if h == nil {
		return 0
	}
	return len(h.objs)
}
