package probemap

type table[V any] struct {
	slots []slot[V]
	size  int

	// Number of completed growth steps.
	resizes int

	hashFunc HashFunc

	emptyV V
}

type Option[V any] func(t *table[V])

// Override default hash function.
func WithHashFunc[V any](f HashFunc) Option[V] {
	return func(t *table[V]) {
		t.hashFunc = f
	}
}

func (t *table[V]) init(capacity int, opts ...Option[V]) {
	if capacity <= 0 {
		panic(ErrInvalidCapacity)
	}

	t.slots = make([]slot[V], capacity)

	for _, opt := range opts {
		opt(t)
	}

	if t.hashFunc == nil {
		t.hashFunc = HornerHash
	}
}

// home returns the index key hashes to in a table of the given capacity.
func (t *table[V]) home(key string, capacity int) int {
	return int(t.hashFunc(key) % uint64(capacity))
}

// probe walks the quadratic sequence (start + i*i) mod capacity for
// i in [0, capacity). It stops at the slot holding key (found == true)
// or at the first empty slot. A negative index means the whole cycle was
// visited without reaching either.
func probe[V any](slots []slot[V], start int, key string) (idx, attempts int, found bool) {
	capacity := len(slots)

	// sq tracks i*i mod capacity incrementally: (i+1)^2 = i^2 + 2i + 1.
	for i, sq := 0, 0; i < capacity; i++ {
		idx = start + sq
		if idx >= capacity {
			idx -= capacity
		}

		s := &slots[idx]
		if !s.used {
			return idx, i + 1, false
		}

		if s.key == key {
			return idx, i + 1, true
		}

		sq = (sq + 2*i + 1) % capacity
	}

	return -1, capacity, false
}

func (t *table[V]) lookup(key string) (int, bool) {
	idx, _, found := probe(t.slots, t.home(key, len(t.slots)), key)

	return idx, found
}

func (t *table[V]) get(key string) (V, bool) {
	idx, found := t.lookup(key)
	if !found {
		return t.emptyV, false
	}

	return t.slots[idx].value, true
}

func (t *table[V]) contains(key string) bool {
	_, found := t.lookup(key)

	return found
}

// insert stores value under key, overwriting an existing value in place.
// Returns whether the key is new.
func (t *table[V]) insert(key string, value V) bool {
	for {
		idx, found := t.lookup(key)

		if found {
			t.slots[idx].value = value
			return false
		}

		if idx >= 0 {
			t.slots[idx] = slot[V]{key: key, value: value, used: true}
			t.size++

			if t.overloaded() {
				t.resize()
			}

			return true
		}

		// The probe cycle of a composite capacity can be shorter than half
		// of the slots. Grow and try again.
		t.resize()
	}
}

// overloaded reports size/capacity > 0.5 without floating point.
func (t *table[V]) overloaded() bool {
	return t.size*2 > len(t.slots)
}

// resize rebuilds the table into the next capacity of the 2n+1 sequence.
// The slot array is swapped only once every entry has been placed.
func (t *table[V]) resize() {
	capacity := len(t.slots)

	for {
		capacity = NextCapacity(capacity)

		slots, ok := t.rehash(capacity)
		if ok {
			t.slots = slots
			t.resizes++

			return
		}
	}
}

// rehash places every live entry into a fresh array of the given capacity.
// Returns false if some entry exhausted its probe cycle.
func (t *table[V]) rehash(capacity int) ([]slot[V], bool) {
	var (
		slots = make([]slot[V], capacity)
		n     int
	)

	for i := range t.slots {
		s := &t.slots[i]
		if !s.used {
			continue
		}

		idx, _, found := probe(slots, t.home(s.key, capacity), s.key)
		if found {
			// Two live slots with the same key.
			panic(ErrCorrupted)
		}

		if idx < 0 {
			return nil, false
		}

		slots[idx] = *s
		n++
	}

	if n != t.size {
		panic(ErrCorrupted)
	}

	return slots, true
}

// Keys returns every stored key in slot order.
func (t *table[V]) Keys() []string {
	keys := make([]string, 0, t.size)

	for i := range t.slots {
		if t.slots[i].used {
			keys = append(keys, t.slots[i].key)
		}
	}

	return keys
}

// Len returns the number of stored keys.
func (t *table[V]) Len() int {
	return t.size
}

// Capacity returns the current number of slots.
func (t *table[V]) Capacity() int {
	return len(t.slots)
}

// LoadFactor returns Len() / Capacity().
func (t *table[V]) LoadFactor() float64 {
	return float64(t.size) / float64(len(t.slots))
}

func (t *table[V]) Stats() Stats {
	stats := Stats{
		Size:       t.size,
		Capacity:   len(t.slots),
		LoadFactor: t.LoadFactor(),
		Resizes:    t.resizes,
	}

	for i := range t.slots {
		s := &t.slots[i]
		if !s.used {
			continue
		}

		_, attempts, _ := probe(t.slots, t.home(s.key, len(t.slots)), s.key)
		stats.LongestProbe = max(stats.LongestProbe, attempts)
	}

	return stats
}
