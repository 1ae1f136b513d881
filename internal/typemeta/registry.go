// Package typemeta resolves runtime type hashes to the shape information
// the renderer needs: record field names and sum-type variant blocks.
package typemeta

// A miss from any lookup in this package is a first-class outcome.
// Values whose type is absent from the registry render as generic
// placeholders; nothing here returns an error.

// TypeKind discriminates the two shape families.
type TypeKind uint8

const (
	RecordType TypeKind = iota
	SumType
)

// VariantInfo describes one labeled alternative of a sum type.
// Fields is non-nil when the payload is an inline record; its names are
// rendered instead of positional payload punctuation.
type VariantInfo struct {
	ID     uint32
	Name   string
	Arity  int
	Fields []string
}

// TypeInfo is the shape description of one registered type.
type TypeInfo struct {
	Hash     uint64
	Kind     TypeKind
	Name     string
	Fields   []string      // RecordType, in declaration order
	Variants []VariantInfo // SumType
}

// Registry is the injected lookup service the renderer consults.
// Implementations must be safe for concurrent readers; the renderer never
// writes through it.
type Registry interface {
	LookupType(hash uint64) (*TypeInfo, bool)
}

// FieldNames returns owned copies of the record's field names for the
// given arity. A non-record shape or an arity mismatch is a miss.
func FieldNames(info *TypeInfo, arity int) ([]string, bool) {
	if info == nil || info.Kind != RecordType || len(info.Fields) != arity {
		return nil, false
	}
	return append([]string(nil), info.Fields...), true
}

// VariantByID scans the sum type's variant blocks for the given id.
func VariantByID(info *TypeInfo, id uint32) (VariantInfo, bool) {
	if info == nil || info.Kind != SumType {
		return VariantInfo{}, false
	}
	for _, v := range info.Variants {
		if v.ID == id {
			return v, true
		}
	}
	return VariantInfo{}, false
}
