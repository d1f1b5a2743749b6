package store

import (
	"sync"

	cmap "github.com/orcaman/concurrent-map/v2"
)

type cell[V any] struct {
	mu      sync.RWMutex
	value   V
	present bool
	dead    bool
}

// Map is a concurrent map with per-key locking.
type Map[K comparable, V any] struct {
	cells cmap.ConcurrentMap[K, *cell[V]]
}

// NewMap creates an empty map sharded by hash.
func NewMap[K comparable, V any](hash func(K) uint32) *Map[K, V] {
	return &Map[K, V]{cells: cmap.NewWithCustomShardingFunction[K, *cell[V]](hash)}
}

// Get returns a copy of the value stored under key.
func (m *Map[K, V]) Get(key K) (V, bool) {
	var zero V
	c, ok := m.cells.Get(key)
	if !ok {
		return zero, false
	}

	c.mu.RLock()
	defer c.mu.RUnlock()
	if !c.present || c.dead {
		return zero, false
	}

	return c.value, true
}

// Has reports whether key holds a value.
func (m *Map[K, V]) Has(key K) bool {
	_, ok := m.Get(key)
	return ok
}

// View calls fn with the value under the key's read lock. fn must not retain
// reference-typed parts of the value.
func (m *Map[K, V]) View(key K, fn func(V)) bool {
	c, ok := m.cells.Get(key)
	if !ok {
		return false
	}

	c.mu.RLock()
	defer c.mu.RUnlock()
	if !c.present || c.dead {
		return false
	}
	fn(c.value)

	return true
}

// Set stores value under key.
func (m *Map[K, V]) Set(key K, value V) {
	m.Upsert(key, func(V, bool) V { return value })
}

// Upsert stores fn(old, exists) under key while holding the key's lock.
func (m *Map[K, V]) Upsert(key K, fn func(old V, exists bool) V) V {
	for {
		c := m.loadOrCreate(key)

		c.mu.Lock()
		if c.dead {
			c.mu.Unlock()
			continue
		}
		c.value = fn(c.value, c.present)
		c.present = true
		value := c.value
		c.mu.Unlock()

		return value
	}
}

// Mutate replaces the value under key with fn(old) if the key is present.
// Only that key is locked while fn runs.
func (m *Map[K, V]) Mutate(key K, fn func(V) V) bool {
	c, ok := m.cells.Get(key)
	if !ok {
		return false
	}

	c.mu.Lock()
	defer c.mu.Unlock()
	if !c.present || c.dead {
		return false
	}
	c.value = fn(c.value)

	return true
}

// Remove unlinks key and returns the value it held.
func (m *Map[K, V]) Remove(key K) (V, bool) {
	return m.RemoveIf(key, func(V) bool { return true })
}

// RemoveIf unlinks key when pred accepts its current value.
func (m *Map[K, V]) RemoveIf(key K, pred func(V) bool) (V, bool) {
	var (
		removed V
		found   bool
	)
	m.cells.RemoveCb(key, func(_ K, c *cell[V], exists bool) bool {
		if !exists {
			return false
		}

		c.mu.Lock()
		defer c.mu.Unlock()
		if c.present && !pred(c.value) {
			return false
		}
		removed, found = c.value, c.present
		c.dead = true
		c.present = false
		var zero V
		c.value = zero

		return true
	})

	return removed, found
}

// Len returns the number of keys, counting cells still being created.
func (m *Map[K, V]) Len() int {
	return m.cells.Count()
}

// Keys returns a snapshot of the stored keys.
func (m *Map[K, V]) Keys() []K {
	return m.cells.Keys()
}

// Range calls fn for every present value until fn returns false. Values
// inserted or removed during the walk may or may not be visited.
func (m *Map[K, V]) Range(fn func(K, V) bool) {
	for _, key := range m.cells.Keys() {
		value, ok := m.Get(key)
		if !ok {
			continue
		}
		if !fn(key, value) {
			return
		}
	}
}

// Clear unlinks every key.
func (m *Map[K, V]) Clear() {
	for _, key := range m.cells.Keys() {
		m.Remove(key)
	}
}

func (m *Map[K, V]) loadOrCreate(key K) *cell[V] {
	if c, ok := m.cells.Get(key); ok {
		return c
	}

	return m.cells.Upsert(key, nil, func(exist bool, current *cell[V], _ *cell[V]) *cell[V] {
		if exist {
			return current
		}
		return &cell[V]{}
	})
}
