// Package cache memoizes interpretation results. Parsing is a pure function
// of the instruction and the element snapshot, so a cached change-set is an
// exact substitute for a fresh parse.
package cache

import (
	"sync"
	"time"

	"github.com/dgraph-io/ristretto"

	"github.com/adalundhe/restyle/core/style"
)

const (
	defaultNumCounters = 1e5 // counters for admission policy
	defaultMaxCost     = 1e7 // 10MB max cost
	defaultBufferItems = 64  // buffer items for async writes
	defaultTTL         = 15 * time.Minute
)

// Cache stores parsed change-sets behind a ristretto admission policy.
type Cache struct {
	cache  *ristretto.Cache
	ttl    time.Duration
	stats  *Stats
	mu     sync.RWMutex
	closed bool
}

// Config configures the interpretation cache.
type Config struct {
	NumCounters int64
	MaxCost     int64
	BufferItems int64
	TTL         time.Duration
}

// New creates a Cache with the given configuration. A nil config uses the
// defaults.
func New(config *Config) (*Cache, error) {
	cfg := applyDefaults(config)

	store, err := ristretto.NewCache(&ristretto.Config{
		NumCounters: cfg.NumCounters,
		MaxCost:     cfg.MaxCost,
		BufferItems: cfg.BufferItems,
	})
	if err != nil {
		return nil, err
	}

	return &Cache{
		cache: store,
		ttl:   cfg.TTL,
		stats: NewStats(),
	}, nil
}

func applyDefaults(config *Config) *Config {
	cfg := &Config{
		NumCounters: defaultNumCounters,
		MaxCost:     defaultMaxCost,
		BufferItems: defaultBufferItems,
		TTL:         defaultTTL,
	}

	if config == nil {
		return cfg
	}

	if config.NumCounters > 0 {
		cfg.NumCounters = config.NumCounters
	}
	if config.MaxCost > 0 {
		cfg.MaxCost = config.MaxCost
	}
	if config.BufferItems > 0 {
		cfg.BufferItems = config.BufferItems
	}
	if config.TTL > 0 {
		cfg.TTL = config.TTL
	}

	return cfg
}

// Get retrieves the cached change-set for an instruction against a snapshot.
// The returned set is a copy; mutating it does not touch the cached entry.
func (c *Cache) Get(instruction string, snapshot style.Snapshot) (style.ChangeSet, bool) {
	c.mu.RLock()
	if c.closed {
		c.mu.RUnlock()
		return style.ChangeSet{}, false
	}
	c.mu.RUnlock()

	value, found := c.cache.Get(Key(instruction, snapshot))
	if !found {
		c.stats.RecordMiss()
		return style.ChangeSet{}, false
	}

	set, ok := value.(style.ChangeSet)
	if !ok {
		c.stats.RecordMiss()
		return style.ChangeSet{}, false
	}

	c.stats.RecordHit()
	return set.Clone(), true
}

// Set stores a change-set with the default TTL.
func (c *Cache) Set(instruction string, snapshot style.Snapshot, set style.ChangeSet) bool {
	return c.SetWithTTL(instruction, snapshot, set, c.ttl)
}

// SetWithTTL stores a change-set with a custom TTL.
func (c *Cache) SetWithTTL(instruction string, snapshot style.Snapshot, set style.ChangeSet, ttl time.Duration) bool {
	c.mu.RLock()
	if c.closed {
		c.mu.RUnlock()
		return false
	}
	c.mu.RUnlock()

	cost := estimateCost(instruction, set)
	stored := c.cache.SetWithTTL(Key(instruction, snapshot), set.Clone(), cost, ttl)

	if stored {
		c.stats.RecordSet()
	}

	return stored
}

func estimateCost(instruction string, set style.ChangeSet) int64 {
	base := int64(128)
	fields := int64(len(set.FieldNames()) * 16)
	strs := int64(len(set.Color) + len(set.BackgroundColor) + len(set.FontFamily) + len(set.Width) + len(set.Height))

	return base + fields + strs + int64(len(instruction))
}

// Clear removes all entries from the cache.
func (c *Cache) Clear() {
	c.mu.RLock()
	if c.closed {
		c.mu.RUnlock()
		return
	}
	c.mu.RUnlock()

	c.cache.Clear()
	c.stats.Reset()
}

// Close closes the cache and releases resources.
func (c *Cache) Close() {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.closed {
		return
	}

	c.closed = true
	c.cache.Close()
}

// Wait blocks until pending sets have been applied. Writes are async;
// callers that read back immediately must wait first.
func (c *Cache) Wait() {
	c.mu.RLock()
	if c.closed {
		c.mu.RUnlock()
		return
	}
	c.mu.RUnlock()

	c.cache.Wait()
}

// Stats returns a copy of the current cache statistics.
func (c *Cache) Stats() *Stats {
	return c.stats.Snapshot()
}
