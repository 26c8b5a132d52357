package table

import "iter"

// ColumnView is a read-only view of one table column.
type ColumnView[K comparable, V any] struct {
	table  *Table[K, V]
	key    K
	values []*V // values[row] points into the table buffer
	gen    uint64
}

func (c ColumnView[K, V]) Key() K {
	return c.key
}

// Len returns the number of rows in the column.
func (c ColumnView[K, V]) Len() int {
	c.table.checkView(c.gen)
	return len(c.values)
}

// Get returns the value at row.
func (c ColumnView[K, V]) Get(row int) (V, bool) {
	c.table.checkView(c.gen)
	if row < 0 || row >= len(c.values) {
		var zero V
		return zero, false
	}
	return *c.values[row], true
}

// All yields (row, value) pairs from the first row to the last.
func (c ColumnView[K, V]) All() iter.Seq2[int, V] {
	return func(yield func(int, V) bool) {
		for row, ptr := range c.values {
			c.table.checkView(c.gen)
			if !yield(row, *ptr) {
				return
			}
		}
	}
}

// Values copies the column's values in row order.
func (c ColumnView[K, V]) Values() []V {
	c.table.checkView(c.gen)
	out := make([]V, len(c.values))
	for row, ptr := range c.values {
		out[row] = *ptr
	}
	return out
}

// OwnedColumn is a column taken out of a table, or one to build a table from.
type OwnedColumn[K comparable, V any] struct {
	Key    K
	Values []V
}

func (c OwnedColumn[K, V]) Len() int {
	return len(c.Values)
}

// Pair returns the key and the values.
func (c OwnedColumn[K, V]) Pair() (K, []V) {
	return c.Key, c.Values
}
