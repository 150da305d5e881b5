package probemap

import "iter"

// Map is a fixed-capacity map from uint64 keys to owned []byte values,
// using open addressing with linear probing. It's stable in the sense that
// it never grows - it retains the capacity it was created with and refuses
// inserts once full; growing means creating a larger Map and re-inserting.
// The map owns every stored buffer: Insert and Set store independent
// copies, Get hands back the stored buffer itself (alive until the next
// mutation), and Delete/Reset/Close release buffers to the GC.
// Not safe for concurrent use.
type Map struct {
	table
}

// New returns a map with the default capacity of 16.
func New(opts ...Option) *Map {
	m, _ := NewWith(defaultCapacity, opts...)

	return m
}

// NewWith returns a map with exactly capacity slots.
// Capacity must be greater than 0.
func NewWith(capacity int, opts ...Option) (*Map, error) {
	var m Map
	if err := m.init(capacity, opts...); err != nil {
		return nil, err
	}

	return &m, nil
}

// Get returns the stored value for a key.
// The returned slice aliases the map's buffer; it stays valid until the
// next mutation, and writes through it are visible to later Gets.
func (m *Map) Get(key uint64) ([]byte, bool) {
	p := m.find(key)
	if p == nil {
		return nil, false
	}

	return p.Value, true
}

// Insert stores a copy of value under a new key.
func (m *Map) Insert(key uint64, value []byte) error {
	return m.insert(key, value)
}

// Set stores a copy of value under key, replacing any existing value.
func (m *Map) Set(key uint64, value []byte) error {
	return m.assign(key, value)
}

// Delete removes a key. Reports whether it was present.
func (m *Map) Delete(key uint64) bool {
	return m.delete(key)
}

// Has checks whether a key is in the map.
func (m *Map) Has(key uint64) bool {
	return m.find(key) != nil
}

// Size returns the number of occupied slots.
func (m *Map) Size() int {
	return m.size
}

// Capacity returns the fixed slot count.
func (m *Map) Capacity() int {
	return len(m.slots)
}

// Empty reports whether no keys are stored.
func (m *Map) Empty() bool {
	return m.size == 0
}

// LoadFactor returns size divided by capacity.
func (m *Map) LoadFactor() float64 {
	return m.loadFactor()
}

func (m *Map) Stats() Stats {
	return Stats{
		Size:       m.size,
		Capacity:   len(m.slots),
		LoadFactor: m.loadFactor(),
	}
}

// First returns the occupied slot with the lowest index, or nil if the
// map is empty. Iteration order is table-index order, not insertion or
// key order.
func (m *Map) First() *Pair {
	return m.first()
}

// Last returns the occupied slot with the highest index, or nil.
func (m *Map) Last() *Pair {
	return m.last()
}

// Next returns the occupied slot following p in index order, or nil when
// every other slot is empty. The scan wraps around past the end of the
// array, so the cursor is cyclic: from the highest occupied slot it comes
// back to the lowest. Next(nil) is nil. Mutating the map invalidates p;
// for a plain single pass use All.
func (m *Map) Next(p *Pair) *Pair {
	return m.next(p)
}

// All returns an iterator over all entries in table-index order, each
// exactly once. It is a live view; mutating the map mid-iteration is
// unsupported.
func (m *Map) All() iter.Seq2[uint64, []byte] {
	return func(yield func(uint64, []byte) bool) {
		for i := range m.slots {
			p := &m.slots[i]
			if valueEmpty(p.Value) {
				continue
			}
			if !yield(p.Key, p.Value) {
				return
			}
		}
	}
}
