package probemap

import "errors"

var (
	// ErrInvalidCapacity is returned by NewWith for capacity <= 0.
	ErrInvalidCapacity = errors.New("probemap: capacity must be greater than 0")

	// ErrTableFull is returned by Insert once the load factor reaches 1.
	// The map never grows; create a larger one and re-insert to resize.
	ErrTableFull = errors.New("probemap: table is full")

	// ErrDuplicateKey is returned by Insert for a key already present.
	ErrDuplicateKey = errors.New("probemap: key already exists")

	// ErrEmptyValue is returned by Insert and Set for an empty value,
	// which is reserved as the unoccupied-slot marker.
	ErrEmptyValue = errors.New("probemap: value must not be empty")
)
