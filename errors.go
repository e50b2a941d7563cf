package probemap

import "errors"

var (
	// ErrInvalidCapacity is the panic value of New and NewSet for a non-positive capacity.
	ErrInvalidCapacity = errors.New("probemap: capacity must be positive")

	// ErrCapacityOverflow is the panic value when growing would overflow int.
	ErrCapacityOverflow = errors.New("probemap: capacity overflow")

	// ErrCorrupted is the panic value when a rebuild loses or duplicates entries.
	ErrCorrupted = errors.New("probemap: table corrupted during resize")
)
