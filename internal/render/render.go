// Package render turns a tagged runtime word into human-readable text.
// The renderer is total: every unrecognized tag, dangling handle or
// missing metadata entry degrades to a visible placeholder token, never
// an error. It holds no state between calls beyond the injected heap and
// type registry, both of which it only reads.
package render

import (
	"fmt"
	"strings"

	"github.com/mattn/go-runewidth"

	"lumen/internal/bignum"
	"lumen/internal/heap"
	"lumen/internal/typemeta"
	"lumen/internal/word"
)

// Placeholder tokens name the stage that failed to classify a value.
const (
	phUnknownValue = "<unknown value>"
	phUnknownHeap  = "<unknown heap value>"
	phUnknownConst = "<unknown constant>"
	phUnknownShort = "<unknown short value>"
	phUnknownNum   = "<unknown number>"
	phRecordValue  = "<record value>"
	phEnumValue    = "<enum value>"
	phLambda       = "<lambda>"
	phDepthItem    = "<item>"
)

// Renderer renders values against one heap and one type registry.
// A Renderer is safe for concurrent use; each Render call owns its
// buffers exclusively.
type Renderer struct {
	heap *heap.Heap
	reg  typemeta.Registry
}

// New builds a renderer over the given heap and registry. Either may be
// nil; missing collaborators simply produce more placeholders.
func New(h *heap.Heap, reg typemeta.Registry) *Renderer {
	return &Renderer{heap: h, reg: reg}
}

// Render is the public operation: one value, one settings snapshot, one
// text result. When coloring is on the text ends with a single reset
// escape.
func (r *Renderer) Render(v word.Word, s Settings) string {
	buf := newBuffer(s.Colored)
	r.value(buf, v, s, 0, 0)
	buf.finish()
	return buf.String()
}

// value renders one word. depth counts container nesting levels; bracket
// is the current rainbow palette slot, threaded explicitly through every
// recursive call.
func (r *Renderer) value(buf *buffer, v word.Word, s Settings, depth, bracket int) {
	if s.depthExceeded(depth) {
		buf.writeIn(colorDefault, phDepthItem)
		return
	}
	c := word.Classify(v)
	switch c.Kind {
	case word.KindImmediate:
		buf.writeIn(colorNumber, formatInt(c.Int, s.Radix))
	case word.KindConstant:
		r.constant(buf, c.Const)
	case word.KindShort:
		r.short(buf, c, s, depth)
	case word.KindHeap:
		r.heapValue(buf, heap.Handle(c.Handle), s, depth, bracket)
	default:
		buf.writeIn(colorUnknown, phUnknownValue)
	}
}

func (r *Renderer) constant(buf *buffer, c word.Constant) {
	switch c {
	case word.ConstVoid:
		buf.writeIn(colorVoid, "void")
	case word.ConstTrue:
		buf.writeIn(colorTrue, "true")
	case word.ConstFalse:
		buf.writeIn(colorFalse, "false")
	default:
		buf.writeIn(colorUnknown, phUnknownConst)
	}
}

func (r *Renderer) short(buf *buffer, c word.Class, s Settings, depth int) {
	switch c.Short {
	case word.ShortChar:
		if depth == 0 {
			buf.writeIn(colorChar, string(c.Char))
		} else {
			buf.writeIn(colorChar, quoteChar(c.Char))
		}
		return
	case word.ShortInt8, word.ShortInt16:
		buf.writeIn(colorNumber, formatInt(int64(c.I16), s.Radix))
	case word.ShortUint8, word.ShortUint16:
		buf.writeIn(colorNumber, formatUint(uint64(c.U16), s.Radix))
	default:
		buf.writeIn(colorUnknown, phUnknownShort)
		return
	}
	if s.PrintSuffix {
		buf.writeIn(colorNumber, suffixForShort(c.Short))
	}
}

// heapValue reads the object header and routes to the concrete renderer.
func (r *Renderer) heapValue(buf *buffer, h heap.Handle, s Settings, depth, bracket int) {
	obj, ok := r.heap.Lookup(h)
	if !ok {
		buf.writeIn(colorUnknown, phUnknownHeap)
		return
	}
	switch obj.Kind {
	case heap.OKString:
		if depth == 0 {
			buf.writeIn(colorString, obj.Str)
		} else {
			buf.writeIn(colorString, quoteString(obj.Str))
		}
	case heap.OKBytes:
		r.bytes(buf, obj.Bytes, s)
	case heap.OKTuple:
		r.tuple(buf, obj.Elems, s, depth, bracket)
	case heap.OKArray:
		r.seq(buf, "[>", "]", obj.Elems, s, depth, bracket, s.ArrayWrap)
	case heap.OKRecord:
		r.record(buf, obj, s, depth, bracket)
	case heap.OKVariant:
		if obj.TypeHash == typemeta.ListTypeHash {
			r.seq(buf, "[", "]", r.collectList(obj), s, depth, bracket, s.ListWrap)
			return
		}
		r.variant(buf, obj, s, depth, bracket)
	case heap.OKBoxed:
		r.boxed(buf, obj, s)
	case heap.OKFunc:
		buf.writeIn(colorLambda, phLambda)
	default:
		buf.writeIn(colorUnknown, phUnknownHeap)
	}
}

func (r *Renderer) bytes(buf *buffer, b []byte, s Settings) {
	truncated := false
	if s.ByteLimit > 0 && len(b) > s.ByteLimit {
		b = b[:s.ByteLimit]
		truncated = true
	}
	var sb strings.Builder
	sb.WriteString("<bytes: ")
	for i, by := range b {
		if i > 0 {
			sb.WriteByte(' ')
		}
		fmt.Fprintf(&sb, "%02x", by)
	}
	if truncated {
		sb.WriteString(" ...")
	}
	sb.WriteByte('>')
	buf.writeIn(colorBytes, sb.String())
}

func (r *Renderer) boxed(buf *buffer, obj *heap.Object, s Settings) {
	var text string
	switch obj.Boxed {
	case heap.BoxedInt32, heap.BoxedInt64:
		text = formatInt(obj.I64, s.Radix)
	case heap.BoxedUint32, heap.BoxedUint64:
		text = formatUint(obj.U64, s.Radix)
	case heap.BoxedFloat32:
		text = formatFloat32(obj.F32)
	case heap.BoxedFloat64:
		text = formatFloat64(obj.F64)
	case heap.BoxedRational:
		buf.writeIn(colorNumber, bignum.FormatRational(obj.Rat))
		return
	case heap.BoxedBigInt:
		buf.writeIn(colorNumber, bignum.FormatInt(obj.Big))
		return
	default:
		buf.writeIn(colorUnknown, phUnknownNum)
		return
	}
	if s.PrintSuffix {
		text += suffixForBoxed(obj.Boxed)
	}
	buf.writeIn(colorNumber, text)
}

// tuple handles the arity special cases: arity 0 is bare parens, arity 1
// is the single-line "box" wrapper, everything else is a wrappable
// sequence.
func (r *Renderer) tuple(buf *buffer, elems []word.Word, s Settings, depth, bracket int) {
	switch len(elems) {
	case 0:
		buf.writeIn(bracketColor(s, bracket), "()")
	case 1:
		buf.writeIn(colorBox, "box")
		buf.writeIn(bracketColor(s, bracket), "(")
		r.value(buf, elems[0], s, depth+1, bracket+1)
		buf.writeIn(bracketColor(s, bracket), ")")
	default:
		r.seq(buf, "(", ")", elems, s, depth, bracket, s.TupleWrap)
	}
}

func (r *Renderer) record(buf *buffer, obj *heap.Object, s Settings, depth, bracket int) {
	info, ok := typemeta.Resolve(r.reg, obj.TypeHash)
	if !ok {
		buf.writeIn(colorUnknown, phRecordValue)
		return
	}
	names, ok := typemeta.FieldNames(info, len(obj.Elems))
	if !ok {
		buf.writeIn(colorUnknown, phRecordValue)
		return
	}
	r.fields(buf, names, obj.Elems, s, depth, bracket)
}

func (r *Renderer) variant(buf *buffer, obj *heap.Object, s Settings, depth, bracket int) {
	info, ok := typemeta.Resolve(r.reg, obj.TypeHash)
	if !ok {
		buf.writeIn(colorUnknown, phEnumValue)
		return
	}
	vi, ok := typemeta.VariantByID(info, obj.VariantID)
	if !ok {
		buf.writeIn(colorUnknown, phEnumValue)
		return
	}
	buf.writeIn(colorSum, vi.Name)
	if len(obj.Elems) == 0 {
		return
	}
	if len(vi.Fields) == len(obj.Elems) {
		buf.write(" ")
		r.fields(buf, vi.Fields, obj.Elems, s, depth, bracket)
		return
	}
	r.seq(buf, "(", ")", obj.Elems, s, depth, bracket, s.TupleWrap)
}

// collectList flattens a cons chain into its elements. An improper tail
// (anything that is not another list cell) is kept as a final element.
func (r *Renderer) collectList(obj *heap.Object) []word.Word {
	var elems []word.Word
	for {
		if obj.VariantID != typemeta.ListCons || len(obj.Elems) != 2 {
			return elems
		}
		elems = append(elems, obj.Elems[0])
		tail := obj.Elems[1]
		c := word.Classify(tail)
		if c.Kind == word.KindHeap {
			next, ok := r.heap.Lookup(heap.Handle(c.Handle))
			if ok && next.Kind == heap.OKVariant && next.TypeHash == typemeta.ListTypeHash {
				obj = next
				continue
			}
		}
		return append(elems, tail)
	}
}

// seq renders a bracketed element sequence, deciding single-line versus
// one-element-per-line via a dry-run measurement.
func (r *Renderer) seq(buf *buffer, open, close string, elems []word.Word, s Settings, depth, bracket int, limit WrapLimit) {
	if len(elems) == 0 {
		buf.writeIn(bracketColor(s, bracket), open+close)
		return
	}
	if r.wrapSeq(open, close, elems, s, depth, bracket, limit) {
		r.seqMulti(buf, open, close, elems, s, depth, bracket)
		return
	}
	r.seqSingle(buf, open, close, elems, s, depth, bracket)
}

func (r *Renderer) seqSingle(buf *buffer, open, close string, elems []word.Word, s Settings, depth, bracket int) {
	buf.writeIn(bracketColor(s, bracket), open)
	for i, e := range elems {
		if i > 0 {
			buf.writeIn(colorDefault, ", ")
		}
		r.value(buf, e, s, depth+1, bracket+1)
	}
	buf.writeIn(bracketColor(s, bracket), close)
}

func (r *Renderer) seqMulti(buf *buffer, open, close string, elems []word.Word, s Settings, depth, bracket int) {
	buf.writeIn(bracketColor(s, bracket), open)
	buf.write(s.newline())
	for i, e := range elems {
		r.indent(buf, s, depth+1)
		r.value(buf, e, s, depth+1, bracket+1)
		if i < len(elems)-1 {
			buf.writeIn(colorDefault, ",")
		}
		buf.write(s.newline())
	}
	r.indent(buf, s, depth)
	buf.writeIn(bracketColor(s, bracket), close)
}

// fields renders a named-field body: "{ a: 1, b: 2 }" or its multi-line
// form. Records and inline-record variant payloads share it.
func (r *Renderer) fields(buf *buffer, names []string, values []word.Word, s Settings, depth, bracket int) {
	if len(values) == 0 {
		buf.writeIn(bracketColor(s, bracket), "{ }")
		return
	}
	if r.wrapFields(names, values, s, depth, bracket, s.RecordWrap) {
		r.fieldsMulti(buf, names, values, s, depth, bracket)
		return
	}
	r.fieldsSingle(buf, names, values, s, depth, bracket)
}

func (r *Renderer) fieldsSingle(buf *buffer, names []string, values []word.Word, s Settings, depth, bracket int) {
	buf.writeIn(bracketColor(s, bracket), "{ ")
	for i, v := range values {
		if i > 0 {
			buf.writeIn(colorDefault, ", ")
		}
		buf.writeIn(colorRecordKey, names[i])
		buf.writeIn(colorDefault, ": ")
		r.value(buf, v, s, depth+1, bracket+1)
	}
	buf.writeIn(bracketColor(s, bracket), " }")
}

func (r *Renderer) fieldsMulti(buf *buffer, names []string, values []word.Word, s Settings, depth, bracket int) {
	buf.writeIn(bracketColor(s, bracket), "{")
	buf.write(s.newline())
	for i, v := range values {
		r.indent(buf, s, depth+1)
		buf.writeIn(colorRecordKey, names[i])
		buf.writeIn(colorDefault, ": ")
		r.value(buf, v, s, depth+1, bracket+1)
		if i < len(values)-1 {
			buf.writeIn(colorDefault, ",")
		}
		buf.write(s.newline())
	}
	r.indent(buf, s, depth)
	buf.writeIn(bracketColor(s, bracket), "}")
}

func (r *Renderer) indent(buf *buffer, s Settings, levels int) {
	if s.Indent <= 0 || levels <= 0 {
		return
	}
	buf.write(strings.Repeat(" ", s.Indent*levels))
}

// wrapSeq decides the line mode for a sequence. The single-line form is
// rendered into a throwaway colorless buffer at the same depth and
// bracket state and its display width compared against the limit. Nested
// containers run their own measurement inside the dry run.
func (r *Renderer) wrapSeq(open, close string, elems []word.Word, s Settings, depth, bracket int, limit WrapLimit) bool {
	if s.ForceNewline {
		return true
	}
	if !limit.On {
		return false
	}
	dry := newBuffer(false)
	ms := s
	ms.Colored = false
	r.seqSingle(dry, open, close, elems, ms, depth, bracket)
	return runewidth.StringWidth(dry.String()) >= limit.Chars
}

func (r *Renderer) wrapFields(names []string, values []word.Word, s Settings, depth, bracket int, limit WrapLimit) bool {
	if s.ForceNewline {
		return true
	}
	if !limit.On {
		return false
	}
	dry := newBuffer(false)
	ms := s
	ms.Colored = false
	r.fieldsSingle(dry, names, values, ms, depth, bracket)
	return runewidth.StringWidth(dry.String()) >= limit.Chars
}

// MeasureWidth reports the display width of the value's colorless
// rendering at the given nesting depth. Exposed for callers that want to
// make their own layout decisions around rendered output.
func (r *Renderer) MeasureWidth(v word.Word, depth int, s Settings) int {
	ms := s
	ms.Colored = false
	dry := newBuffer(false)
	r.value(dry, v, ms, depth, 0)
	return runewidth.StringWidth(dry.String())
}
