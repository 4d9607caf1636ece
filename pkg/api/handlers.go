package api

import (
	"github.com/adfharrison1/go-datasets/pkg/domain"
	"github.com/adfharrison1/go-datasets/pkg/storage"
)

// DefaultSearchCacheSize is the number of distinct search queries memoized
const DefaultSearchCacheSize = 256

// Handler provides HTTP handlers for the dataset catalog API
type Handler struct {
	catalog     domain.Catalog
	searchCache *storage.LRUCache
}

// NewHandler creates a new API handler over a read-only catalog.
// A cacheSize of 0 disables search memoization.
func NewHandler(catalog domain.Catalog, cacheSize int) *Handler {
	return &Handler{
		catalog:     catalog,
		searchCache: storage.NewLRUCache(cacheSize),
	}
}
