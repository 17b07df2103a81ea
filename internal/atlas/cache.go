package atlas

import (
	"image"
	"strconv"
	"sync"

	"go.uber.org/zap"
	"golang.org/x/sync/singleflight"
)

// Resolver resolves an atlas entry name to a decoded image, or nil.
type Resolver interface {
	Resolve(name string) *image.NRGBA
}

// Cache is a concurrency-safe decode cache over an Index and its Source.
// Each indexed entry is decoded at most once until Clear; failed decodes
// are remembered as nil.
type Cache struct {
	mu    sync.RWMutex
	items map[string]*cacheEntry
	gen   uint64 // bumped by Clear
	group singleflight.Group

	index *Index
	src   Source
	log   *zap.Logger
}

type cacheEntry struct {
	img *image.NRGBA // nil if the entry could not be decoded
}

// NewCache creates a cache backed by the given index and source.
func NewCache(index *Index, src Source, log *zap.Logger) *Cache {
	if log == nil {
		log = zap.NewNop()
	}
	return &Cache{
		items: make(map[string]*cacheEntry),
		index: index,
		src:   src,
		log:   log,
	}
}

// Index returns the index the cache consults.
func (c *Cache) Index() *Index {
	return c.index
}

// Resolve returns the decoded image for name, or nil if the entry is not
// indexed or its bytes do not decode.
func (c *Cache) Resolve(name string) *image.NRGBA {
	srcName, ok := c.index.Lookup(name)
	if !ok {
		return nil
	}

	// Fast path: read lock
	c.mu.RLock()
	entry, exists := c.items[srcName]
	gen := c.gen
	c.mu.RUnlock()
	if exists {
		return entry.img
	}

	// Slow path: one decode per key and generation, concurrent callers
	// share it. A decode that outlives a Clear is returned to its callers
	// but not stored.
	key := strconv.FormatUint(gen, 10) + ":" + srcName
	v, _, _ := c.group.Do(key, func() (any, error) {
		c.mu.RLock()
		entry, exists := c.items[srcName]
		c.mu.RUnlock()
		if exists {
			return entry, nil
		}

		entry = &cacheEntry{img: c.load(srcName)}

		c.mu.Lock()
		if c.gen == gen {
			c.items[srcName] = entry
		}
		c.mu.Unlock()
		return entry, nil
	})
	return v.(*cacheEntry).img
}

func (c *Cache) load(name string) *image.NRGBA {
	data, err := c.src.ReadEntry(name)
	if err != nil {
		c.log.Debug("atlas entry unreadable", zap.String("entry", name), zap.Error(err))
		return nil
	}
	img, err := Decode(name, data)
	if err != nil {
		c.log.Debug("atlas entry undecodable", zap.String("entry", name), zap.Error(err))
		return nil
	}
	return img
}

// Len returns the number of cached entries, including failed decodes.
func (c *Cache) Len() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.items)
}

// Clear drops every cached entry and returns how many were released.
// Images already handed out stay valid; the cache no longer references them.
func (c *Cache) Clear() int {
	c.mu.Lock()
	n := len(c.items)
	c.items = make(map[string]*cacheEntry)
	c.gen++
	c.mu.Unlock()

	c.log.Debug("atlas cache cleared", zap.Int("entries", n))
	return n
}
