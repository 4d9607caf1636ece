// Package registry provides an immutable, in-memory lookup registry over a
// dataset catalog table.
//
// A Registry is built once, either from a delimited source file (Open) or
// from already-parsed records (New), and is read-only afterwards. Concurrent
// readers are safe without locking as long as callers do not mutate the
// records they are handed; every query returns copies.
package registry

import (
	"fmt"
	"strings"

	"github.com/adfharrison1/go-datasets/pkg/domain"
	"github.com/adfharrison1/go-datasets/pkg/indexing"
)

// Registry holds the ordered record sequence and its two secondary indexes
type Registry struct {
	source  string
	columns []string
	records []domain.Record // Source of truth, source order

	byIndex *indexing.Index // trimmed INDEX -> position
	byName  *indexing.Index // lowercase trimmed NAME -> position

	// Parse configuration
	comma   rune
	comment rune
}

var _ domain.Catalog = (*Registry)(nil)

func newRegistry(options ...Option) *Registry {
	r := &Registry{
		comma: ',',
	}
	for _, option := range options {
		option(r)
	}
	return r
}

// New builds a registry from already-parsed records. Records whose trimmed
// INDEX is empty are dropped; on duplicate keys the last record wins.
func New(records []domain.Record) *Registry {
	r := newRegistry()
	r.build(records)
	return r
}

// build keeps the rows with a usable INDEX and derives both indexes from
// the kept sequence in the same step.
func (r *Registry) build(rows []domain.Record) {
	kept := make([]domain.Record, 0, len(rows))
	for _, row := range rows {
		if normalizeKey(row.Index) == "" {
			continue
		}
		kept = append(kept, row.Clone())
	}

	r.records = kept
	r.byIndex = indexing.NewIndex(domain.FieldIndex, normalizeKey)
	r.byIndex.BuildIndex(kept)
	r.byName = indexing.NewIndex(domain.FieldName, normalizeName)
	r.byName.BuildIndex(kept)
}

// Source returns the path the registry was loaded from, if any
func (r *Registry) Source() string {
	return r.source
}

// Columns returns the trimmed header row of the source, in source order
func (r *Registry) Columns() []string {
	columns := make([]string, len(r.columns))
	copy(columns, r.columns)
	return columns
}

// Len returns the number of kept records
func (r *Registry) Len() int {
	return len(r.records)
}

// ListAll returns every kept record in source order
func (r *Registry) ListAll() []domain.Record {
	out := make([]domain.Record, len(r.records))
	for i, rec := range r.records {
		out[i] = rec.Clone()
	}
	return out
}

// Get looks up a record by INDEX. The key may be a string or an integer.
func (r *Registry) Get(key interface{}) (domain.Record, error) {
	normalized := normalizeKey(keyString(key))
	pos, ok := r.byIndex.Query(normalized)
	if !ok {
		return domain.Record{}, &NotFoundError{Kind: KindIndex, Key: normalized}
	}
	return r.records[pos].Clone(), nil
}

// GetByName looks up a record by NAME, ignoring case and surrounding whitespace
func (r *Registry) GetByName(name string) (domain.Record, error) {
	pos, ok := r.byName.Query(normalizeName(name))
	if !ok {
		return domain.Record{}, &NotFoundError{Kind: KindName, Key: name}
	}
	return r.records[pos].Clone(), nil
}

// Names returns the normalized names of all name-indexed records, sorted
func (r *Registry) Names() []string {
	return r.byName.Keys()
}

// Search returns, in source order, every record whose NAME, CATEGORY or
// DESCRIPTION contains query case-insensitively. An empty query matches all.
func (r *Registry) Search(query string) []domain.Record {
	q := normalizeName(query)
	matches := make([]domain.Record, 0)
	for _, rec := range r.records {
		if containsFold(rec.Name, q) || containsFold(rec.Category, q) || containsFold(rec.Description, q) {
			matches = append(matches, rec.Clone())
		}
	}
	return matches
}

// Link returns the trimmed MAIN_LINK of the record stored under key
func (r *Registry) Link(key interface{}) (string, error) {
	rec, err := r.Get(key)
	if err != nil {
		return "", err
	}
	link := strings.TrimSpace(rec.MainLink)
	if link == "" {
		return "", &MissingLinkError{Key: normalizeKey(keyString(key))}
	}
	return link, nil
}

// Pretty returns a one-line summary of the record stored under key.
// Absent fields render as empty text.
func (r *Registry) Pretty(key interface{}) (string, error) {
	rec, err := r.Get(key)
	if err != nil {
		return "", err
	}
	return FormatRecord(rec), nil
}

// FormatRecord renders "[INDEX] NAME | CATEGORY | Size: SIZE"
func FormatRecord(rec domain.Record) string {
	return fmt.Sprintf("[%s] %s | %s | Size: %s", rec.Index, rec.Name, rec.Category, rec.Size)
}
