package probemap

import "unsafe"

// CapacityFromSize estimates how many slots fit in the given memory size
// in bytes. Slot headers only; stored value buffers are counted at their
// slice-header size, not their contents.
func CapacityFromSize(size uintptr) int {
	return int(size / unsafe.Sizeof(Pair{}))
}
