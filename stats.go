package probemap

type Stats struct {
	Size       int
	Capacity   int
	LoadFactor float64

	// Growth steps since construction.
	Resizes int

	// Most probe attempts needed to reach any stored key, 1 meaning its home slot.
	LongestProbe int
}
