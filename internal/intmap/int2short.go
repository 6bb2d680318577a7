// Package intmap provides a dense open-addressing hash map from 32-bit
// integer keys to 16-bit integer values.
//
// The assigner keeps one of these per partition to remember which bucket a
// record hash was routed to. A specialized flat table avoids the per-entry
// overhead of the built-in map for the tens of millions of entries a
// high-volume partition can accumulate during one overwrite job.
package intmap

// Int2Short maps int32 keys to int16 values with average O(1) lookup and
// insert. Not safe for concurrent use; each instance belongs to a single
// assigner goroutine.
type Int2Short struct {
	keys   []int32
	values []int16
	used   []bool
	size   int
	mask   uint32
}

const (
	defaultCapacity = 1 << 4

	// Grow when the table passes 3/4 occupancy.
	maxLoadNum = 3
	maxLoadDen = 4
)

// New creates an empty map with the default capacity.
func New() *Int2Short {
	return NewWithCapacity(defaultCapacity)
}

// NewWithCapacity creates an empty map sized for at least n entries without
// growing.
func NewWithCapacity(n int) *Int2Short {
	capacity := defaultCapacity
	for capacity*maxLoadNum/maxLoadDen < n {
		capacity <<= 1
	}

	return &Int2Short{
		keys:   make([]int32, capacity),
		values: make([]int16, capacity),
		used:   make([]bool, capacity),
		mask:   uint32(capacity - 1),
	}
}

// Len returns the number of entries in the map.
func (m *Int2Short) Len() int {
	return m.size
}

// Get returns the value stored for key and whether the key is present.
func (m *Int2Short) Get(key int32) (int16, bool) {
	idx := m.slot(key)
	for m.used[idx] {
		if m.keys[idx] == key {
			return m.values[idx], true
		}
		idx = (idx + 1) & m.mask
	}

	return 0, false
}

// Contains reports whether key is present.
func (m *Int2Short) Contains(key int32) bool {
	_, ok := m.Get(key)

	return ok
}

// Put stores value under key, replacing any previous value.
func (m *Int2Short) Put(key int32, value int16) {
	idx := m.slot(key)
	for m.used[idx] {
		if m.keys[idx] == key {
			m.values[idx] = value

			return
		}
		idx = (idx + 1) & m.mask
	}

	m.keys[idx] = key
	m.values[idx] = value
	m.used[idx] = true
	m.size++

	if m.size*maxLoadDen > len(m.keys)*maxLoadNum {
		m.grow()
	}
}

// slot returns the starting probe position for key. The multiplicative
// scramble spreads sequential keys across the table before masking.
func (m *Int2Short) slot(key int32) uint32 {
	h := uint32(key) * 0x9e3779b9
	h ^= h >> 16

	return h & m.mask
}

func (m *Int2Short) grow() {
	oldKeys, oldValues, oldUsed := m.keys, m.values, m.used

	capacity := len(oldKeys) << 1
	m.keys = make([]int32, capacity)
	m.values = make([]int16, capacity)
	m.used = make([]bool, capacity)
	m.mask = uint32(capacity - 1)

	for i, ok := range oldUsed {
		if !ok {
			continue
		}
		idx := m.slot(oldKeys[i])
		for m.used[idx] {
			idx = (idx + 1) & m.mask
		}
		m.keys[idx] = oldKeys[i]
		m.values[idx] = oldValues[i]
		m.used[idx] = true
	}
}
