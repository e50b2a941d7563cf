package probemap

import "iter"

// ProbingMap is an open-addressing hash map with string keys and quadratic
// probing. It grows to 2n+1 slots whenever an insert pushes the load factor
// above 0.5, so lookups stay O(1) and inserts are O(1) amortized.
// Entries can't be removed.
//
// A ProbingMap is not safe for concurrent use.
type ProbingMap[V any] struct {
	table[V]
}

// Returns a new instance of the probing map with the given initial capacity.
// Panics with ErrInvalidCapacity if capacity is not positive.
func New[V any](capacity int, opts ...Option[V]) *ProbingMap[V] {
	var pm ProbingMap[V]
	pm.init(capacity, opts...)

	return &pm
}

// Returns the value stored under key and whether the key is present.
func (pm *ProbingMap[V]) Get(key string) (V, bool) {
	return pm.get(key)
}

// Checks whether a key is in the map.
func (pm *ProbingMap[V]) Contains(key string) bool {
	return pm.contains(key)
}

// Inserts or replaces the value under key.
// Returns whether a key is new.
func (pm *ProbingMap[V]) Insert(key string, value V) bool {
	return pm.insert(key, value)
}

// All yields every key/value pair in slot order.
// The map must not be modified during iteration.
func (pm *ProbingMap[V]) All() iter.Seq2[string, V] {
	return func(yield func(string, V) bool) {
		for i := range pm.slots {
			s := &pm.slots[i]
			if s.used && !yield(s.key, s.value) {
				return
			}
		}
	}
}
