package probemap

// valueEmpty reports whether v is the empty value, which the table also
// uses as its unoccupied-slot marker.
func valueEmpty(v []byte) bool {
	return len(v) == 0
}

// cloneValue returns an independent copy of v, so the table owns what it
// stores regardless of what the caller does with the original.
func cloneValue(v []byte) []byte {
	c := make([]byte, len(v))
	copy(c, v)

	return c
}
