package typemeta

// Well-known type hashes reserved by the runtime ABI. Option, Result and
// List exist in every program, so their shapes are answered from fixed
// tables instead of a bucket scan.
const (
	OptionTypeHash uint64 = 0x9f8e1d4ab1c60001
	ResultTypeHash uint64 = 0x9f8e1d4ab1c60002
	ListTypeHash   uint64 = 0x9f8e1d4ab1c60003
)

// Variant ids of the built-in sum types.
const (
	OptionNone uint32 = 0
	OptionSome uint32 = 1

	ResultOk  uint32 = 0
	ResultErr uint32 = 1

	ListNil  uint32 = 0
	ListCons uint32 = 1
)

var optionInfo = TypeInfo{
	Hash: OptionTypeHash,
	Kind: SumType,
	Name: "Option",
	Variants: []VariantInfo{
		{ID: OptionNone, Name: "None", Arity: 0},
		{ID: OptionSome, Name: "Some", Arity: 1},
	},
}

var resultInfo = TypeInfo{
	Hash: ResultTypeHash,
	Kind: SumType,
	Name: "Result",
	Variants: []VariantInfo{
		{ID: ResultOk, Name: "Ok", Arity: 1},
		{ID: ResultErr, Name: "Err", Arity: 1},
	},
}

var listInfo = TypeInfo{
	Hash: ListTypeHash,
	Kind: SumType,
	Name: "List",
	Variants: []VariantInfo{
		{ID: ListNil, Name: "Nil", Arity: 0},
		{ID: ListCons, Name: "Cons", Arity: 2},
	},
}

// Builtin answers the fixed shapes without consulting any table.
func Builtin(hash uint64) (*TypeInfo, bool) {
	switch hash {
	case OptionTypeHash:
		return &optionInfo, true
	case ResultTypeHash:
		return &resultInfo, true
	case ListTypeHash:
		return &listInfo, true
	default:
		return nil, false
	}
}

// Resolve checks the built-in shapes first, then the registry. A nil
// registry only resolves built-ins.
func Resolve(reg Registry, hash uint64) (*TypeInfo, bool) {
	if info, ok := Builtin(hash); ok {
		return info, true
	}
	if reg == nil {
		return nil, false
	}
	return reg.LookupType(hash)
}
