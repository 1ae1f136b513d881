package render

// Radix selects the base for integer rendering.
type Radix uint8

const (
	RadixDec Radix = iota
	RadixHex
	RadixOct
	RadixBin
)

// Prefix returns the literal prefix for the radix.
func (r Radix) Prefix() string {
	switch r {
	case RadixHex:
		return "0x"
	case RadixOct:
		return "0o"
	case RadixBin:
		return "0b"
	default:
		return ""
	}
}

func (r Radix) base() int {
	switch r {
	case RadixHex:
		return 16
	case RadixOct:
		return 8
	case RadixBin:
		return 2
	default:
		return 10
	}
}

// String returns the radix's flag spelling.
func (r Radix) String() string {
	switch r {
	case RadixHex:
		return "hex"
	case RadixOct:
		return "oct"
	case RadixBin:
		return "bin"
	default:
		return "dec"
	}
}

// WrapLimit is an optional single-line width trigger for one container
// family. The zero value never wraps.
type WrapLimit struct {
	On    bool
	Chars int
}

// WrapAt returns an enabled limit of n display columns.
func WrapAt(n int) WrapLimit {
	return WrapLimit{On: true, Chars: n}
}

// DepthUnlimited disables the recursion-depth cutoff.
const DepthUnlimited = -1

// Settings is the immutable per-call rendering policy.
type Settings struct {
	Colored        bool
	Indent         int
	MaxDepth       int // DepthUnlimited for no cutoff
	Newline        string
	PrintSuffix    bool
	ByteLimit      int
	RainbowBracket bool
	Radix          Radix
	ForceNewline   bool

	ListWrap   WrapLimit
	ArrayWrap  WrapLimit
	RecordWrap WrapLimit
	TupleWrap  WrapLimit
}

// DefaultSettings is the documented default configuration.
func DefaultSettings() Settings {
	return Settings{
		Colored:     true,
		Indent:      2,
		MaxDepth:    DepthUnlimited,
		Newline:     "\n",
		PrintSuffix: true,
		ByteLimit:   32,
		Radix:       RadixDec,
		ListWrap:    WrapAt(200),
		ArrayWrap:   WrapAt(200),
		RecordWrap:  WrapAt(200),
		TupleWrap:   WrapAt(200),
	}
}

func (s Settings) depthExceeded(depth int) bool {
	return s.MaxDepth >= 0 && depth > s.MaxDepth
}

func (s Settings) newline() string {
	if s.Newline == "" {
		return "\n"
	}
	return s.Newline
}
