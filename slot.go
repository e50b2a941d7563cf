package probemap

// slot holds at most one key/value pair. There is no deleted state: entries
// are never removed, so a probe chain only ever ends at an empty slot.
type slot[V any] struct {
	key   string
	value V

	// used separates an occupied slot from the zero value, so a stored
	// zero V is never mistaken for an absent key.
	used bool
}
