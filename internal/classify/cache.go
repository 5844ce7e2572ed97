package classify

import (
	"container/list"
	"sync"

	"anggaran/internal/core"
)

// labelCache memoizes labels by normalized description with LRU eviction.
// It is run-scoped and purely in-memory; nothing survives a pipeline run.
type labelCache struct {
	mu      sync.Mutex
	maxSize int
	items   map[string]*list.Element
	lru     *list.List
}

type labelEntry struct {
	key   string
	label core.Category
}

func newLabelCache(hint int) *labelCache {
	size := hint
	if size < 64 {
		size = 64
	}
	return &labelCache{
		maxSize: size,
		items:   make(map[string]*list.Element),
		lru:     list.New(),
	}
}

func (c *labelCache) Get(key string) (core.Category, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()

	elem, exists := c.items[key]
	if !exists {
		return "", false
	}
	c.lru.MoveToFront(elem)
	return elem.Value.(*labelEntry).label, true
}

func (c *labelCache) Set(key string, label core.Category) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if elem, exists := c.items[key]; exists {
		elem.Value = &labelEntry{key: key, label: label}
		c.lru.MoveToFront(elem)
		return
	}

	elem := c.lru.PushFront(&labelEntry{key: key, label: label})
	c.items[key] = elem

	if c.lru.Len() > c.maxSize {
		if oldest := c.lru.Back(); oldest != nil {
			entry := oldest.Value.(*labelEntry)
			delete(c.items, entry.key)
			c.lru.Remove(oldest)
		}
	}
}
