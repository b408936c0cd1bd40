package repository

import (
	"context"
	"sync"
	"time"

	"github.com/ankitjawla/snake-scholars-quest-sub000/pkg/logger"
	"github.com/ankitjawla/snake-scholars-quest-sub000/pkg/monitoring"

	"go.uber.org/zap"
)

type cacheEntry struct {
	value     []byte
	fetchedAt time.Time
}

// WriteCache sits between the services and a Store. Reads inside the
// freshness window come from memory; writes are coalesced so a burst of
// updates (per-second timers during a game) lands as one physical write
// carrying the last value. An immediate save bypasses the debounce.
//
// The cache owns its timer. Flush must be called on shutdown so the last
// pending value is never lost.
type WriteCache struct {
	store    Store
	freshFor time.Duration
	debounce time.Duration

	mu      sync.Mutex
	entries map[string]cacheEntry
	pending map[string][]byte
	timer   *time.Timer

	now func() time.Time
}

func NewWriteCache(store Store, freshFor, debounce time.Duration) *WriteCache {
	return &WriteCache{
		store:    store,
		freshFor: freshFor,
		debounce: debounce,
		entries:  make(map[string]cacheEntry),
		pending:  make(map[string][]byte),
		now:      time.Now,
	}
}

// Load returns a pending (not yet flushed) value first so callers always
// read their own writes, then a fresh cached value, then the store.
func (c *WriteCache) Load(ctx context.Context, key string) ([]byte, bool, error) {
	c.mu.Lock()
	if v, ok := c.pending[key]; ok {
		c.mu.Unlock()
		monitoring.CacheReads.WithLabelValues("hit").Inc()
		return v, true, nil
	}
	if e, ok := c.entries[key]; ok && c.now().Sub(e.fetchedAt) < c.freshFor {
		c.mu.Unlock()
		monitoring.CacheReads.WithLabelValues("hit").Inc()
		return e.value, true, nil
	}
	c.mu.Unlock()

	monitoring.CacheReads.WithLabelValues("miss").Inc()
	value, ok, err := c.store.Load(ctx, key)
	if err != nil || !ok {
		return nil, ok, err
	}

	c.mu.Lock()
	c.entries[key] = cacheEntry{value: value, fetchedAt: c.now()}
	c.mu.Unlock()
	return value, true, nil
}

// Save records the value in the cache and either writes through now
// (immediate) or schedules the debounced flush. Within one debounce
// window the last value wins; earlier values are superseded, never
// merged.
func (c *WriteCache) Save(ctx context.Context, key string, value []byte, immediate bool) error {
	c.mu.Lock()
	c.entries[key] = cacheEntry{value: value, fetchedAt: c.now()}

	if immediate {
		delete(c.pending, key)
		c.mu.Unlock()
		monitoring.SlotWrites.WithLabelValues(key).Inc()
		return c.store.Save(ctx, key, value)
	}

	c.pending[key] = value
	if c.timer != nil {
		c.timer.Stop()
	}
	c.timer = time.AfterFunc(c.debounce, c.fire)
	c.mu.Unlock()
	return nil
}

func (c *WriteCache) fire() {
	if err := c.Flush(context.Background()); err != nil {
		logger.Log.Error("debounced flush failed", zap.Error(err))
	}
}

// Flush writes every pending value synchronously. The shutdown path calls
// this so no update is lost.
func (c *WriteCache) Flush(ctx context.Context) error {
	c.mu.Lock()
	if c.timer != nil {
		c.timer.Stop()
		c.timer = nil
	}
	batch := c.pending
	c.pending = make(map[string][]byte)
	c.mu.Unlock()

	var firstErr error
	for key, value := range batch {
		monitoring.SlotWrites.WithLabelValues(key).Inc()
		if err := c.store.Save(ctx, key, value); err != nil && firstErr == nil {
			firstErr = err
		}
	}
	return firstErr
}

// Cancel drops pending writes without persisting them.
func (c *WriteCache) Cancel() {
	c.mu.Lock()
	if c.timer != nil {
		c.timer.Stop()
		c.timer = nil
	}
	c.pending = make(map[string][]byte)
	c.mu.Unlock()
}

// Invalidate forgets the cached copy of a slot.
func (c *WriteCache) Invalidate(key string) {
	c.mu.Lock()
	delete(c.entries, key)
	delete(c.pending, key)
	c.mu.Unlock()
}
