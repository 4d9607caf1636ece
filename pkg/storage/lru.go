package storage

import (
	"container/list"
	"sync"

	"github.com/adfharrison1/go-datasets/pkg/domain"
)

// LRUCache memoizes query results keyed by normalized query text.
// Cached slices are shared between callers and must be treated as read-only.
type LRUCache struct {
	mu       sync.Mutex
	capacity int
	list     *list.List
	cache    map[string]*list.Element
	hits     int64
	misses   int64
}

type cacheEntry struct {
	key   string
	value []domain.Record
}

func NewLRUCache(capacity int) *LRUCache {
	return &LRUCache{
		capacity: capacity,
		list:     list.New(),
		cache:    make(map[string]*list.Element),
	}
}

func (lru *LRUCache) Get(key string) ([]domain.Record, bool) {
	lru.mu.Lock()
	defer lru.mu.Unlock()

	if element, exists := lru.cache[key]; exists {
		lru.list.MoveToFront(element)
		lru.hits++
		return element.Value.(*cacheEntry).value, true
	}
	lru.misses++
	return nil, false
}

func (lru *LRUCache) Put(key string, records []domain.Record) {
	if lru.capacity <= 0 {
		return
	}

	lru.mu.Lock()
	defer lru.mu.Unlock()

	if element, exists := lru.cache[key]; exists {
		element.Value.(*cacheEntry).value = records
		lru.list.MoveToFront(element)
		return
	}

	entry := &cacheEntry{key: key, value: records}
	element := lru.list.PushFront(entry)
	lru.cache[key] = element

	if lru.list.Len() > lru.capacity {
		lru.evictOldest()
	}
}

func (lru *LRUCache) evictOldest() {
	element := lru.list.Back()
	if element != nil {
		entry := element.Value.(*cacheEntry)
		delete(lru.cache, entry.key)
		lru.list.Remove(element)
	}
}

func (lru *LRUCache) Remove(key string) {
	lru.mu.Lock()
	defer lru.mu.Unlock()

	if element, exists := lru.cache[key]; exists {
		delete(lru.cache, key)
		lru.list.Remove(element)
	}
}

func (lru *LRUCache) Capacity() int {
	return lru.capacity
}

func (lru *LRUCache) Len() int {
	lru.mu.Lock()
	defer lru.mu.Unlock()
	return lru.list.Len()
}

// Stats returns the hit and miss counters
func (lru *LRUCache) Stats() (hits, misses int64) {
	lru.mu.Lock()
	defer lru.mu.Unlock()
	return lru.hits, lru.misses
}
