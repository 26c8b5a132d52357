package table

import (
	"iter"
	"slices"

	"go.uber.org/zap"
)

// Cell addresses one element of a table.
type Cell[K comparable] struct {
	Key K
	Row int
}

// Rows yields a read-only view of every row, first to last.
// The table must not gain or lose rows or columns during iteration.
func (t *Table[K, V]) Rows() iter.Seq2[int, RowView[K, V]] {
	return func(yield func(int, RowView[K, V]) bool) {
		gen := t.layoutGen
		for row := 0; row < t.RowsLen(); row++ {
			t.checkView(gen)
			view, _ := t.Row(row)
			if !yield(row, view) {
				return
			}
		}
	}
}

// Columns yields a read-only view of every column in unspecified order.
// The table must not gain or lose rows or columns during iteration.
func (t *Table[K, V]) Columns() iter.Seq[ColumnView[K, V]] {
	return func(yield func(ColumnView[K, V]) bool) {
		gen := t.layoutGen
		for key, slot := range t.index.All() {
			t.checkView(gen)
			if !yield(t.columnView(key, slot)) {
				return
			}
		}
	}
}

// All yields every element row by row, in slot order within a row.
func (t *Table[K, V]) All() iter.Seq2[Cell[K], V] {
	return func(yield func(Cell[K], V) bool) {
		gen := t.layoutGen
		keys := t.index.inSlotOrder()
		cols := len(keys)
		for i, value := range t.values {
			if !yield(Cell[K]{Key: keys[i%cols], Row: i / cols}, value) {
				return
			}
			t.checkView(gen)
		}
	}
}

// IntoRows removes rows one at a time, starting from the last, and yields each
// as a map. Rows not reached because iteration stopped early stay in the table.
func (t *Table[K, V]) IntoRows() iter.Seq[map[K]V] {
	return func(yield func(map[K]V) bool) {
		t.logger.Debug("draining rows", zap.Int("rows", t.RowsLen()))
		for t.RowsLen() > 0 {
			row, _ := t.RemoveRow(t.RowsLen() - 1)
			if !yield(row.Map()) {
				return
			}
		}
	}
}

// IntoColumns removes columns one at a time, in unspecified order, and yields
// each with its values. Columns not reached stay in the table.
func (t *Table[K, V]) IntoColumns() iter.Seq[OwnedColumn[K, V]] {
	return func(yield func(OwnedColumn[K, V]) bool) {
		t.logger.Debug("draining columns", zap.Int("columns", t.ColumnsLen()))
		for t.index.Len() > 0 {
			var key K
			for k := range t.index.Keys() {
				key = k
				break
			}
			col, _ := t.RemoveColumn(key)
			if !yield(col) {
				return
			}
		}
	}
}

// IntoElementsReverse takes every value out of the table, last row to first and
// highest slot to lowest within a row, yielding each with its cell.
//
// The whole buffer is detached when iteration starts: the table keeps its
// columns but has no rows afterwards, even if iteration stops early.
func (t *Table[K, V]) IntoElementsReverse() iter.Seq2[Cell[K], V] {
	return func(yield func(Cell[K], V) bool) {
		cols := t.index.Len()
		if cols == 0 {
			return
		}
		keys := slices.Clone(t.index.inSlotOrder())
		values := t.values
		t.values = nil
		t.touchRows()
		t.logger.Debug("draining elements", zap.Int("values", len(values)))

		for len(values) > 0 {
			last := len(values) - 1
			value := values[last]
			var zero V
			values[last] = zero
			values = values[:last]
			cell := Cell[K]{Key: keys[last%cols], Row: last / cols}
			if !yield(cell, value) {
				return
			}
		}
	}
}
