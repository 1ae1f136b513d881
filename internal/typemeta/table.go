package typemeta

// Table is the hash-bucketed Registry implementation: bucket index is
// hash mod bucket count, entries within a bucket are scanned linearly for
// an exact hash match.
type Table struct {
	buckets [][]*TypeInfo
}

// DefaultBucketCount matches the runtime's metadata table sizing.
const DefaultBucketCount = 64

// NewTable creates an empty table. A non-positive bucket count falls back
// to DefaultBucketCount.
func NewTable(bucketCount int) *Table {
	if bucketCount <= 0 {
		bucketCount = DefaultBucketCount
	}
	return &Table{buckets: make([][]*TypeInfo, bucketCount)}
}

// Register adds or replaces the shape for info.Hash. Not safe to call
// concurrently with lookups; registration happens before rendering.
func (t *Table) Register(info TypeInfo) {
	idx := t.bucketIndex(info.Hash)
	bucket := t.buckets[idx]
	for i, existing := range bucket {
		if existing.Hash == info.Hash {
			copied := info
			bucket[i] = &copied
			return
		}
	}
	copied := info
	t.buckets[idx] = append(bucket, &copied)
}

// LookupType implements Registry.
func (t *Table) LookupType(hash uint64) (*TypeInfo, bool) {
	if t == nil || len(t.buckets) == 0 {
		return nil, false
	}
	for _, info := range t.buckets[t.bucketIndex(hash)] {
		if info.Hash == hash {
			return info, true
		}
	}
	return nil, false
}

// Types returns all registered shapes, bucket by bucket.
func (t *Table) Types() []TypeInfo {
	if t == nil {
		return nil
	}
	var out []TypeInfo
	for _, bucket := range t.buckets {
		for _, info := range bucket {
			out = append(out, *info)
		}
	}
	return out
}

func (t *Table) bucketIndex(hash uint64) int {
	return int(hash % uint64(len(t.buckets)))
}
