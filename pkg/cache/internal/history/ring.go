// Package history provides the bounded per-channel message ring.
package history

import "github.com/gammazero/deque"

// Ring keeps at most capacity items, newest at index 0. It is not safe for
// concurrent use; the owner serializes access.
type Ring[T any] struct {
	capacity int
	items    deque.Deque[T]
}

// New creates a ring bounded to capacity items. A capacity below one keeps
// one item.
func New[T any](capacity int) *Ring[T] {
	if capacity < 1 {
		capacity = 1
	}

	r := &Ring[T]{capacity: capacity}
	r.items.Grow(min(capacity, 64))

	return r
}

// Push inserts item as the newest entry and evicts the oldest entries past
// capacity, returning them oldest last.
func (r *Ring[T]) Push(item T) []T {
	r.items.PushFront(item)

	var evicted []T
	for r.items.Len() > r.capacity {
		evicted = append(evicted, r.items.PopBack())
	}

	return evicted
}

// Len returns the number of stored items.
func (r *Ring[T]) Len() int {
	return r.items.Len()
}

// Capacity returns the configured bound.
func (r *Ring[T]) Capacity() int {
	return r.capacity
}

// Index returns the position of the newest item matching f, or -1.
func (r *Ring[T]) Index(f func(T) bool) int {
	return r.items.Index(f)
}

// At returns the item at position i, where 0 is the newest.
func (r *Ring[T]) At(i int) T {
	return r.items.At(i)
}

// Set replaces the item at position i.
func (r *Ring[T]) Set(i int, item T) {
	r.items.Set(i, item)
}

// Remove deletes and returns the item at position i.
func (r *Ring[T]) Remove(i int) T {
	return r.items.Remove(i)
}

// Items returns a copy of the stored items, newest first.
func (r *Ring[T]) Items() []T {
	out := make([]T, r.items.Len())
	for i := range out {
		out[i] = r.items.At(i)
	}

	return out
}
