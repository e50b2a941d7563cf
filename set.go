package probemap

import "iter"

// ProbingSet is a ProbingMap that doesn't store values, only keys.
type ProbingSet struct {
	table[struct{}]
}

func NewSet(capacity int, opts ...Option[struct{}]) *ProbingSet {
	var ps ProbingSet
	ps.init(capacity, opts...)

	return &ps
}

// Puts a key in the set. Returns whether a key is new.
func (ps *ProbingSet) Add(key string) bool {
	return ps.insert(key, struct{}{})
}

func (ps *ProbingSet) Has(key string) bool {
	return ps.contains(key)
}

// All yields every key in slot order.
func (ps *ProbingSet) All() iter.Seq[string] {
	return func(yield func(string) bool) {
		for i := range ps.slots {
			if ps.slots[i].used && !yield(ps.slots[i].key) {
				return
			}
		}
	}
}
