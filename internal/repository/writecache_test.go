package repository

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// countingStore wraps MemoryStore and counts physical writes so the
// coalescing behavior is observable.
type countingStore struct {
	*MemoryStore

	mu     sync.Mutex
	writes int
}

func newCountingStore() *countingStore {
	return &countingStore{MemoryStore: NewMemoryStore()}
}

func (s *countingStore) Save(ctx context.Context, key string, value []byte) error {
	s.mu.Lock()
	s.writes++
	s.mu.Unlock()
	return s.MemoryStore.Save(ctx, key, value)
}

func (s *countingStore) writeCount() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.writes
}

func TestWriteCache_DebounceCoalescesToLastValue(t *testing.T) {
	store := newCountingStore()
	cache := NewWriteCache(store, time.Minute, time.Hour)
	ctx := context.Background()

	require.NoError(t, cache.Save(ctx, "slot", []byte("v1"), false))
	require.NoError(t, cache.Save(ctx, "slot", []byte("v2"), false))
	require.NoError(t, cache.Save(ctx, "slot", []byte("v3"), false))

	// Nothing has hit the store inside the window.
	assert.Equal(t, 0, store.writeCount())
	_, ok, err := store.MemoryStore.Load(ctx, "slot")
	require.NoError(t, err)
	assert.False(t, ok)

	require.NoError(t, cache.Flush(ctx))

	assert.Equal(t, 1, store.writeCount())
	data, ok, err := store.MemoryStore.Load(ctx, "slot")
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, []byte("v3"), data)
}

func TestWriteCache_ReadsPendingValueBeforeStore(t *testing.T) {
	store := newCountingStore()
	cache := NewWriteCache(store, time.Minute, time.Hour)
	ctx := context.Background()

	require.NoError(t, store.Save(ctx, "slot", []byte("stale")))
	require.NoError(t, cache.Save(ctx, "slot", []byte("fresh"), false))

	data, ok, err := cache.Load(ctx, "slot")
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, []byte("fresh"), data)
}

func TestWriteCache_ImmediateBypassesDebounce(t *testing.T) {
	store := newCountingStore()
	cache := NewWriteCache(store, time.Minute, time.Hour)
	ctx := context.Background()

	require.NoError(t, cache.Save(ctx, "slot", []byte("v1"), true))

	assert.Equal(t, 1, store.writeCount())
	data, ok, err := store.MemoryStore.Load(ctx, "slot")
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, []byte("v1"), data)
}

func TestWriteCache_ImmediateSupersedesPending(t *testing.T) {
	store := newCountingStore()
	cache := NewWriteCache(store, time.Minute, time.Hour)
	ctx := context.Background()

	require.NoError(t, cache.Save(ctx, "slot", []byte("pending"), false))
	require.NoError(t, cache.Save(ctx, "slot", []byte("final"), true))
	require.NoError(t, cache.Flush(ctx))

	// The flush found nothing left to write.
	assert.Equal(t, 1, store.writeCount())
	data, _, err := store.MemoryStore.Load(ctx, "slot")
	require.NoError(t, err)
	assert.Equal(t, []byte("final"), data)
}

func TestWriteCache_DebouncedWriteFiresOnItsOwn(t *testing.T) {
	store := newCountingStore()
	cache := NewWriteCache(store, time.Minute, 10*time.Millisecond)
	ctx := context.Background()

	require.NoError(t, cache.Save(ctx, "slot", []byte("v1"), false))

	assert.Eventually(t, func() bool {
		data, ok, err := store.MemoryStore.Load(ctx, "slot")
		return err == nil && ok && string(data) == "v1"
	}, time.Second, 5*time.Millisecond)
}

func TestWriteCache_CancelDropsPending(t *testing.T) {
	store := newCountingStore()
	cache := NewWriteCache(store, time.Minute, time.Hour)
	ctx := context.Background()

	require.NoError(t, cache.Save(ctx, "slot", []byte("doomed"), false))
	cache.Cancel()
	require.NoError(t, cache.Flush(ctx))

	assert.Equal(t, 0, store.writeCount())
}

func TestWriteCache_FreshnessWindowServesFromMemory(t *testing.T) {
	store := newCountingStore()
	cache := NewWriteCache(store, time.Minute, time.Hour)
	ctx := context.Background()

	require.NoError(t, store.Save(ctx, "slot", []byte("v1")))

	// First read goes to the store and primes the cache.
	_, ok, err := cache.Load(ctx, "slot")
	require.NoError(t, err)
	require.True(t, ok)

	// A direct store change inside the window is not seen.
	require.NoError(t, store.Save(ctx, "slot", []byte("v2")))
	data, ok, err := cache.Load(ctx, "slot")
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, []byte("v1"), data)
}

func TestWriteCache_StaleEntryRefetches(t *testing.T) {
	store := newCountingStore()
	cache := NewWriteCache(store, time.Minute, time.Hour)
	ctx := context.Background()

	require.NoError(t, store.Save(ctx, "slot", []byte("v1")))
	_, _, err := cache.Load(ctx, "slot")
	require.NoError(t, err)

	// Move the clock past the freshness window.
	base := time.Now()
	cache.now = func() time.Time { return base.Add(2 * time.Minute) }

	require.NoError(t, store.Save(ctx, "slot", []byte("v2")))
	data, ok, err := cache.Load(ctx, "slot")
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, []byte("v2"), data)
}
