package store

// Index maps a parent id to the set of its child ids.
type Index[P comparable, C comparable] struct {
	sets *Map[P, map[C]struct{}]
}

// NewIndex creates an empty index sharded by hash.
func NewIndex[P comparable, C comparable](hash func(P) uint32) *Index[P, C] {
	return &Index[P, C]{sets: NewMap[P, map[C]struct{}](hash)}
}

// Ensure creates an empty set for parent if none exists.
func (x *Index[P, C]) Ensure(parent P) {
	x.sets.Upsert(parent, func(set map[C]struct{}, exists bool) map[C]struct{} {
		if exists {
			return set
		}
		return make(map[C]struct{})
	})
}

// Add inserts child into the parent's set, creating the set on demand.
func (x *Index[P, C]) Add(parent P, child C) {
	x.Update(parent, func(set map[C]struct{}) {
		set[child] = struct{}{}
	})
}

// Update runs fn on the parent's set under its lock, creating the set on demand.
func (x *Index[P, C]) Update(parent P, fn func(set map[C]struct{})) {
	x.sets.Upsert(parent, func(set map[C]struct{}, exists bool) map[C]struct{} {
		if !exists || set == nil {
			set = make(map[C]struct{})
		}
		fn(set)
		return set
	})
}

// Release removes child from the parent's set and unlinks the set once it is
// empty. onEmpty runs under the set's lock before the unlink, so nothing can
// re-add the child in between. It reports whether the set was unlinked.
func (x *Index[P, C]) Release(parent P, child C, onEmpty func()) bool {
	_, removed := x.sets.RemoveIf(parent, func(set map[C]struct{}) bool {
		delete(set, child)
		if len(set) > 0 {
			return false
		}
		if onEmpty != nil {
			onEmpty()
		}
		return true
	})

	return removed
}

// Drain calls fn for every child of the parent while its set is locked, then
// unlinks the set. It reports whether the parent had a set.
func (x *Index[P, C]) Drain(parent P, fn func(child C)) bool {
	_, removed := x.sets.RemoveIf(parent, func(set map[C]struct{}) bool {
		for child := range set {
			fn(child)
		}
		return true
	})

	return removed
}

// Has reports whether the parent has a set, even an empty one.
func (x *Index[P, C]) Has(parent P) bool {
	return x.sets.Has(parent)
}

// Contains reports whether child is in the parent's set.
func (x *Index[P, C]) Contains(parent P, child C) bool {
	var found bool
	x.sets.View(parent, func(set map[C]struct{}) {
		_, found = set[child]
	})

	return found
}

// Members returns a copy of the parent's set.
func (x *Index[P, C]) Members(parent P) ([]C, bool) {
	var members []C
	ok := x.sets.View(parent, func(set map[C]struct{}) {
		members = make([]C, 0, len(set))
		for child := range set {
			members = append(members, child)
		}
	})

	return members, ok
}

// Clear unlinks every set.
func (x *Index[P, C]) Clear() {
	x.sets.Clear()
}

// UpsertGuildItem stores a child value and records it in the parent's set as
// one step: both writes happen while the parent's set is locked, so a
// concurrent Drain of the parent either sees the child or runs before the
// value is stored. fn receives the previous value and returns the new one.
func UpsertGuildItem[P comparable, C comparable, K comparable, V any](
	index *Index[P, C],
	items *Map[K, V],
	parent P,
	child C,
	key K,
	fn func(old V, exists bool) V,
) {
	index.Update(parent, func(set map[C]struct{}) {
		items.Upsert(key, fn)
		set[child] = struct{}{}
	})
}

// RemoveGuildItem removes a child value and its entry in the parent's set as
// one step, under the set's lock. A value whose parent has no set is being
// drained and is removed directly.
func RemoveGuildItem[P comparable, C comparable, K comparable, V any](
	index *Index[P, C],
	items *Map[K, V],
	parent P,
	child C,
	key K,
) (V, bool) {
	var (
		removed V
		found   bool
	)
	locked := index.sets.Mutate(parent, func(set map[C]struct{}) map[C]struct{} {
		removed, found = items.Remove(key)
		delete(set, child)
		return set
	})
	if !locked {
		removed, found = items.Remove(key)
	}

	return removed, found
}

// UpsertOwnedItem is UpsertGuildItem for values that record their parent.
// owner reports that parent. When the previous value belonged to another
// parent, the child leaves that parent's set unless it has moved back.
func UpsertOwnedItem[P comparable, C comparable, K comparable, V any](
	index *Index[P, C],
	items *Map[K, V],
	parent P,
	child C,
	key K,
	owner func(V) P,
	fn func(old V, exists bool) V,
) {
	var (
		previous P
		moved    bool
	)
	UpsertGuildItem(index, items, parent, child, key, func(old V, exists bool) V {
		if exists && owner(old) != parent {
			previous, moved = owner(old), true
		}
		return fn(old, exists)
	})
	if !moved {
		return
	}

	index.sets.Mutate(previous, func(set map[C]struct{}) map[C]struct{} {
		if value, ok := items.Get(key); ok && owner(value) == previous {
			return set
		}
		delete(set, child)
		return set
	})
}
