package domain

// Catalog defines the read-only query surface of a loaded dataset registry.
// Keys passed to Get, Link and Pretty may be strings or integers.
type Catalog interface {
	ListAll() []Record
	Get(key interface{}) (Record, error)
	GetByName(name string) (Record, error)
	Search(query string) []Record
	Link(key interface{}) (string, error)
	Pretty(key interface{}) (string, error)
	Names() []string
	Len() int
}
