package word_test

import (
	"testing"

	"lumen/internal/word"
)

func TestClassifyImmediate(t *testing.T) {
	cases := []int64{0, 1, -1, 5, -5, 1<<62 - 1, -(1 << 62)}
	for _, n := range cases {
		w, ok := word.FromInt(n)
		if !ok {
			t.Fatalf("FromInt(%d) did not fit", n)
		}
		c := word.Classify(w)
		if c.Kind != word.KindImmediate {
			t.Fatalf("Classify(FromInt(%d)).Kind = %v, want immediate", n, c.Kind)
		}
		if c.Int != n {
			t.Fatalf("Classify(FromInt(%d)).Int = %d", n, c.Int)
		}
	}
}

func TestFromIntOverflow(t *testing.T) {
	if _, ok := word.FromInt(1 << 62); ok {
		t.Fatalf("FromInt(1<<62) should not fit an immediate")
	}
	if _, ok := word.FromInt(-(1 << 62) - 1); ok {
		t.Fatalf("FromInt(-(1<<62)-1) should not fit an immediate")
	}
}

func TestClassifyConstants(t *testing.T) {
	cases := []struct {
		w    word.Word
		want word.Constant
	}{
		{word.Void(), word.ConstVoid},
		{word.FromBool(false), word.ConstFalse},
		{word.FromBool(true), word.ConstTrue},
	}
	for _, tc := range cases {
		c := word.Classify(tc.w)
		if c.Kind != word.KindConstant {
			t.Fatalf("Classify(%#x).Kind = %v, want constant", uint64(tc.w), c.Kind)
		}
		if c.Const != tc.want {
			t.Fatalf("Classify(%#x).Const = %v, want %v", uint64(tc.w), c.Const, tc.want)
		}
	}
}

func TestClassifyUnknownConstant(t *testing.T) {
	// Constant tag with a code no sentinel uses.
	w := word.Word(99<<3 | 0b010)
	c := word.Classify(w)
	if c.Kind != word.KindConstant || c.Const != word.ConstUnknown {
		t.Fatalf("Classify(%#x) = %+v, want unknown constant", uint64(w), c)
	}
}

func TestClassifyShort(t *testing.T) {
	c := word.Classify(word.FromChar('λ'))
	if c.Kind != word.KindShort || c.Short != word.ShortChar || c.Char != 'λ' {
		t.Fatalf("char decode = %+v", c)
	}

	c = word.Classify(word.FromInt8(-5))
	if c.Short != word.ShortInt8 || c.I16 != -5 {
		t.Fatalf("i8 decode = %+v", c)
	}
	c = word.Classify(word.FromInt16(-1234))
	if c.Short != word.ShortInt16 || c.I16 != -1234 {
		t.Fatalf("i16 decode = %+v", c)
	}
	c = word.Classify(word.FromUint8(200))
	if c.Short != word.ShortUint8 || c.U16 != 200 {
		t.Fatalf("u8 decode = %+v", c)
	}
	c = word.Classify(word.FromUint16(60000))
	if c.Short != word.ShortUint16 || c.U16 != 60000 {
		t.Fatalf("u16 decode = %+v", c)
	}
}

func TestClassifyUnknownShort(t *testing.T) {
	w := word.Word(7<<3 | 0b100)
	c := word.Classify(w)
	if c.Kind != word.KindShort || c.Short != word.ShortUnknown {
		t.Fatalf("Classify(%#x) = %+v, want unknown short", uint64(w), c)
	}
}

func TestClassifyHeap(t *testing.T) {
	c := word.Classify(word.FromHandle(42))
	if c.Kind != word.KindHeap || c.Handle != 42 {
		t.Fatalf("handle decode = %+v", c)
	}
}

func TestClassifyZeroWordUnknown(t *testing.T) {
	if c := word.Classify(0); c.Kind != word.KindUnknown {
		t.Fatalf("Classify(0).Kind = %v, want unknown", c.Kind)
	}
}

func TestClassifyUnrecognizedTag(t *testing.T) {
	if c := word.Classify(word.Word(0b110)); c.Kind != word.KindUnknown {
		t.Fatalf("Classify(0b110).Kind = %v, want unknown", c.Kind)
	}
}
