package table

import (
	"iter"
	"maps"
	"slices"
)

// IndexMap maps column keys to dense slot indices in [0, Len()).
// Slots never have gaps: removing a key shifts every higher slot down by one.
type IndexMap[K comparable] struct {
	slots map[K]int
	keys  []K // keys[slot] is the key stored at that slot
}

func newIndexMap[K comparable](capacity int) *IndexMap[K] {
	return &IndexMap[K]{
		slots: make(map[K]int, capacity),
		keys:  make([]K, 0, capacity),
	}
}

// Len returns the number of columns.
func (m *IndexMap[K]) Len() int {
	return len(m.keys)
}

// Slot returns the slot index of key.
func (m *IndexMap[K]) Slot(key K) (int, bool) {
	slot, ok := m.slots[key]
	return slot, ok
}

// Key returns the key stored at slot.
func (m *IndexMap[K]) Key(slot int) (K, bool) {
	if slot < 0 || slot >= len(m.keys) {
		var zero K
		return zero, false
	}
	return m.keys[slot], true
}

func (m *IndexMap[K]) Contains(key K) bool {
	_, ok := m.slots[key]
	return ok
}

// All yields every key with its slot in the map's native order.
// The order is unspecified and may differ between calls.
func (m *IndexMap[K]) All() iter.Seq2[K, int] {
	return maps.All(m.slots)
}

// Keys yields every key in the map's native order.
func (m *IndexMap[K]) Keys() iter.Seq[K] {
	return maps.Keys(m.slots)
}

// Clone returns an independent copy.
func (m *IndexMap[K]) Clone() *IndexMap[K] {
	keys := make([]K, len(m.keys))
	copy(keys, m.keys)
	return &IndexMap[K]{
		slots: maps.Clone(m.slots),
		keys:  keys,
	}
}

// insert assigns key the next free slot.
func (m *IndexMap[K]) insert(key K) (int, error) {
	if _, ok := m.slots[key]; ok {
		return 0, duplicateColumn(key)
	}
	slot := len(m.keys)
	m.slots[key] = slot
	m.keys = append(m.keys, key)
	return slot, nil
}

// remove drops key and closes the gap it leaves behind.
func (m *IndexMap[K]) remove(key K) (K, int, bool) {
	slot, ok := m.slots[key]
	if !ok {
		var zero K
		return zero, 0, false
	}
	stored := m.keys[slot]
	delete(m.slots, key)
	for k, s := range m.slots {
		if s > slot {
			m.slots[k] = s - 1
		}
	}
	m.keys = slices.Delete(m.keys, slot, slot+1)
	return stored, slot, true
}

// inSlotOrder returns the keys ordered by slot. The slice is shared; do not modify.
func (m *IndexMap[K]) inSlotOrder() []K {
	return m.keys
}
