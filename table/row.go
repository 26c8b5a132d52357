package table

import (
	"fmt"
	"iter"
)

// RowView is a read-only view of one table row.
type RowView[K comparable, V any] struct {
	table *Table[K, V]
	row   int
	start int
	gen   uint64
}

// Row returns the row index the view was taken at.
func (r RowView[K, V]) Row() int {
	return r.row
}

// Get returns the value in column key.
func (r RowView[K, V]) Get(key K) (V, bool) {
	r.table.checkView(r.gen)
	slot, ok := r.table.index.Slot(key)
	if !ok {
		var zero V
		return zero, false
	}
	return r.table.values[r.start+slot], true
}

// Len returns the number of values in the row.
func (r RowView[K, V]) Len() int {
	r.table.checkView(r.gen)
	return r.table.index.Len()
}

// Index returns the table's column index.
func (r RowView[K, V]) Index() *IndexMap[K] {
	r.table.checkView(r.gen)
	return r.table.index
}

// Keys yields the column keys in unspecified order.
func (r RowView[K, V]) Keys() iter.Seq[K] {
	r.table.checkView(r.gen)
	return r.table.index.Keys()
}

// All yields every (key, value) pair of the row in unspecified key order.
func (r RowView[K, V]) All() iter.Seq2[K, V] {
	return func(yield func(K, V) bool) {
		r.table.checkView(r.gen)
		for key, slot := range r.table.index.All() {
			if !yield(key, r.table.values[r.start+slot]) {
				return
			}
			r.table.checkView(r.gen)
		}
	}
}

// Map copies the row into a map.
func (r RowView[K, V]) Map() map[K]V {
	r.table.checkView(r.gen)
	out := make(map[K]V, r.Len())
	for key, value := range r.All() {
		out[key] = value
	}
	return out
}

// MutRowView is a view of one table row that allows updating values in place.
type MutRowView[K comparable, V any] struct {
	table *Table[K, V]
	row   int
	start int
	gen   uint64
}

func (r MutRowView[K, V]) Row() int {
	return r.row
}

// Get returns a pointer to the value in column key.
func (r MutRowView[K, V]) Get(key K) (*V, bool) {
	r.table.checkView(r.gen)
	slot, ok := r.table.index.Slot(key)
	if !ok {
		return nil, false
	}
	return &r.table.values[r.start+slot], true
}

// Set overwrites the value in column key. Reports false if the column does not exist.
func (r MutRowView[K, V]) Set(key K, value V) bool {
	ptr, ok := r.Get(key)
	if !ok {
		return false
	}
	*ptr = value
	return true
}

// All yields every column key with a pointer to the row's value in that column.
// Each slot is handed out exactly once.
func (r MutRowView[K, V]) All() iter.Seq2[K, *V] {
	return func(yield func(K, *V) bool) {
		r.table.checkView(r.gen)
		// One entry per slot, cleared when handed out.
		slots := make([]*V, r.table.index.Len())
		for i := range slots {
			slots[i] = &r.table.values[r.start+i]
		}
		for key, slot := range r.table.index.All() {
			ptr := slots[slot]
			if ptr == nil {
				panic(fmt.Errorf("%w: slot %d", ErrSlotTaken, slot))
			}
			slots[slot] = nil
			if !yield(key, ptr) {
				return
			}
			r.table.checkView(r.gen)
		}
	}
}

// OwnedRow holds the values of a removed row. Keys are resolved through the
// table's index, so the row can only be read by key while the table's columns
// stay unchanged.
type OwnedRow[K comparable, V any] struct {
	table     *Table[K, V]
	index     *IndexMap[K]
	values    []V
	columnGen uint64
}

func (o OwnedRow[K, V]) check() {
	if o.columnGen != o.table.columnGen {
		panic(fmt.Errorf("%w: columns changed since the row was removed", ErrStaleView))
	}
}

// Get returns the value in column key.
func (o OwnedRow[K, V]) Get(key K) (V, bool) {
	o.check()
	slot, ok := o.index.Slot(key)
	if !ok {
		var zero V
		return zero, false
	}
	return o.values[slot], true
}

// Len returns the number of values in the row.
func (o OwnedRow[K, V]) Len() int {
	return len(o.values)
}

// Values returns the row's values in slot order. Usable without the table.
func (o OwnedRow[K, V]) Values() []V {
	return o.values
}

// All yields every (key, value) pair in unspecified key order.
func (o OwnedRow[K, V]) All() iter.Seq2[K, V] {
	return func(yield func(K, V) bool) {
		o.check()
		for key, slot := range o.index.All() {
			if !yield(key, o.values[slot]) {
				return
			}
		}
	}
}

// Map converts the row into a map that no longer depends on the table.
func (o OwnedRow[K, V]) Map() map[K]V {
	out := make(map[K]V, len(o.values))
	for key, value := range o.All() {
		out[key] = value
	}
	return out
}
