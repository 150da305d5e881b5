package probemap

const defaultCapacity = 16

// Pair is one slot of the table: a key and the value buffer the table owns.
// A slot is occupied iff its value is non-empty; an empty value doubles as
// the unoccupied marker, so there is no separate deleted state.
type Pair struct {
	Key   uint64
	Value []byte
}

type table struct {
	// Exactly capacity slots, zeroed at creation. Capacity never changes.
	slots []Pair

	size int

	hashFunc HashFunc
}

type Option func(t *table)

// Override default hash function.
func WithHashFunc(f HashFunc) Option {
	return func(t *table) {
		t.hashFunc = f
	}
}

func (t *table) init(capacity int, opts ...Option) error {
	if capacity <= 0 {
		return ErrInvalidCapacity
	}

	t.slots = make([]Pair, capacity)
	t.size = 0

	for _, opt := range opts {
		opt(t)
	}

	if t.hashFunc == nil {
		t.hashFunc = MakeDefaultHashFunc()
	}

	return nil
}

// Home slot for a key. The hash is reduced modulo capacity, so with the
// default hash function placement is exactly key % capacity.
func (t *table) index(key uint64) int {
	return int(t.hashFunc(key) % uint64(len(t.slots)))
}

// find returns the occupied slot holding key, or nil.
//
// Every probe loop in this table scans a full cycle of capacity slots with
// +1 wraparound and never stops early at an empty slot. That is what keeps
// lookups correct across the holes deletion leaves in probe chains: a key
// that probed past a since-deleted slot is still reached by the scan.
func (t *table) find(key uint64) *Pair {
	if len(t.slots) == 0 {
		return nil
	}

	idx := t.index(key)
	for range t.slots {
		p := &t.slots[idx]
		if p.Key == key && !valueEmpty(p.Value) {
			return p
		}

		idx++
		if idx == len(t.slots) {
			idx = 0
		}
	}

	return nil
}

// insert claims the first free slot on the probe path and stores an
// independent copy of value. Fails without mutation on a full table, a
// duplicate key, or an empty value (which would be indistinguishable
// from an unoccupied slot).
func (t *table) insert(key uint64, value []byte) error {
	if valueEmpty(value) {
		return ErrEmptyValue
	}
	if len(t.slots) == 0 || t.loadFactor() >= 1 {
		return ErrTableFull
	}

	idx := t.index(key)
	for range t.slots {
		p := &t.slots[idx]
		if valueEmpty(p.Value) {
			p.Key = key
			p.Value = cloneValue(value)
			t.size++

			return nil
		} else if p.Key == key {
			return ErrDuplicateKey
		}

		idx++
		if idx == len(t.slots) {
			idx = 0
		}
	}

	// Unreachable while the load-factor guard holds; terminal fallback.
	return ErrTableFull
}

// assign replaces the value of an existing key in place, or inserts the
// key if it is absent. Size is unchanged on replacement.
func (t *table) assign(key uint64, value []byte) error {
	if valueEmpty(value) {
		return ErrEmptyValue
	}

	p := t.find(key)
	if p == nil {
		return t.insert(key, value)
	}

	p.Value = cloneValue(value)

	return nil
}

// delete resets the slot holding key back to the unoccupied state.
// Reports whether the key was present.
func (t *table) delete(key uint64) bool {
	if len(t.slots) == 0 {
		return false
	}

	idx := t.index(key)
	for range t.slots {
		p := &t.slots[idx]
		if p.Key == key && !valueEmpty(p.Value) {
			p.Key = 0
			p.Value = nil
			t.size--

			return true
		}

		idx++
		if idx == len(t.slots) {
			idx = 0
		}
	}

	return false
}

func (t *table) loadFactor() float64 {
	if len(t.slots) == 0 {
		return 0
	}

	return float64(t.size) / float64(len(t.slots))
}

// first returns the occupied slot with the lowest index, or nil.
func (t *table) first() *Pair {
	for i := range t.slots {
		if !valueEmpty(t.slots[i].Value) {
			return &t.slots[i]
		}
	}

	return nil
}

// last returns the occupied slot with the highest index, or nil.
func (t *table) last() *Pair {
	for i := len(t.slots) - 1; i >= 0; i-- {
		if !valueEmpty(t.slots[i].Value) {
			return &t.slots[i]
		}
	}

	return nil
}

// next returns the occupied slot after p in index order, wrapping around
// at the end of the array. The scan covers capacity-1 slots, so it never
// re-yields p itself. next(nil) is nil.
func (t *table) next(p *Pair) *Pair {
	if p == nil {
		return nil
	}

	idx := -1
	for i := range t.slots {
		if &t.slots[i] == p {
			idx = i
			break
		}
	}
	if idx < 0 {
		return nil
	}

	for range len(t.slots) - 1 {
		idx++
		if idx == len(t.slots) {
			idx = 0
		}

		if q := &t.slots[idx]; !valueEmpty(q.Value) {
			return q
		}
	}

	return nil
}

// Reset releases every slot and sets size to 0. Capacity is preserved.
func (t *table) Reset() {
	for i := range t.slots {
		t.slots[i] = Pair{}
	}

	t.size = 0
}

// Close drops the backing array, releasing every owned buffer at once.
// Safe to call twice. A closed table is inert: lookups miss, inserts
// report a full table.
func (t *table) Close() {
	t.slots = nil
	t.size = 0
}
