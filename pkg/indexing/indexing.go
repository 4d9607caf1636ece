package indexing

import (
	"sort"

	"github.com/adfharrison1/go-datasets/pkg/domain"
)

// NormalizeFunc turns a raw field value into an index key.
// An empty key means the record is not indexed.
type NormalizeFunc func(value string) string

// Index maps a normalized field value to the position of its record in the
// ordered sequence the index was built from.
type Index struct {
	Field     string
	Normalize NormalizeFunc
	Entries   map[string]int
}

// NewIndex creates an index on a specific field.
func NewIndex(field string, normalize NormalizeFunc) *Index {
	return &Index{
		Field:     field,
		Normalize: normalize,
		Entries:   make(map[string]int),
	}
}

// BuildIndex indexes all records by the configured field.
// On duplicate keys the last record wins.
func (idx *Index) BuildIndex(records []domain.Record) {
	for pos, rec := range records {
		key := idx.Normalize(rec.Field(idx.Field))
		if key == "" {
			continue
		}
		idx.Entries[key] = pos
	}
}

// Query returns the position stored for an already-normalized key.
func (idx *Index) Query(key string) (int, bool) {
	pos, ok := idx.Entries[key]
	return pos, ok
}

// Len returns the number of distinct keys
func (idx *Index) Len() int {
	return len(idx.Entries)
}

// Keys returns all keys in sorted order
func (idx *Index) Keys() []string {
	keys := make([]string, 0, len(idx.Entries))
	for k := range idx.Entries {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
