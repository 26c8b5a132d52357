package table

import (
	"fmt"

	"go.uber.org/zap"
)

// InsertColumn adds a column holding one value per existing row. The new column
// takes the highest slot.
//
// It panics if the key already exists or len(values) differs from RowsLen().
// On a table without columns the first column decides the number of rows.
func (t *Table[K, V]) InsertColumn(key K, values []V) {
	if err := t.insertColumn(key, values); err != nil {
		panic(err)
	}
}

func (t *Table[K, V]) insertColumn(key K, values []V) error {
	if t.index.Contains(key) {
		return duplicateColumn(key)
	}
	cols := t.index.Len()
	rows := t.RowsLen()
	if cols == 0 {
		rows = len(values)
	}
	if len(values) != rows {
		return fmt.Errorf("%w: column %v has %d values, table has %d rows",
			ErrColumnLength, key, len(values), rows)
	}

	// Restride every row to make room for the new slot at its end.
	restrided := make([]V, 0, rows*(cols+1))
	for row := range rows {
		restrided = append(restrided, t.values[row*cols:(row+1)*cols]...)
		restrided = append(restrided, values[row])
	}
	slot, err := t.index.insert(key)
	if err != nil {
		return err
	}
	t.values = restrided
	t.touchColumns()

	t.logger.Debug("column inserted",
		zap.Any("column", key),
		zap.Int("slot", slot),
		zap.Int("rows", rows),
	)
	return nil
}

// InsertColumnWith adds a column whose value for each row is computed from that
// row. The row views passed to generate are only valid during the call, and
// generate must not add or remove rows or columns.
func (t *Table[K, V]) InsertColumnWith(key K, generate func(RowView[K, V]) V) {
	if t.index.Contains(key) {
		panic(duplicateColumn(key))
	}
	gen := t.layoutGen
	rows := t.RowsLen()
	values := make([]V, rows)
	for row := range rows {
		view, _ := t.Row(row)
		values[row] = generate(view)
		t.checkView(gen)
	}
	t.InsertColumn(key, values)
}

// RemoveColumn removes a column and returns its key and values in row order.
// Slots above the removed one shift down so slots stay contiguous.
// Reports false if the column does not exist.
func (t *Table[K, V]) RemoveColumn(key K) (OwnedColumn[K, V], bool) {
	cols := t.index.Len()
	rows := t.RowsLen()
	stored, slot, ok := t.index.remove(key)
	if !ok {
		return OwnedColumn[K, V]{}, false
	}

	extracted := make([]V, rows)
	// Compact in place; the write position never passes the read position.
	kept := t.values[:0]
	for i, value := range t.values {
		if i%cols == slot {
			extracted[i/cols] = value
			continue
		}
		kept = append(kept, value)
	}
	clear(t.values[len(kept):])
	t.values = kept
	t.touchColumns()

	t.logger.Debug("column removed",
		zap.Any("column", stored),
		zap.Int("slot", slot),
		zap.Int("rows", rows),
	)
	return OwnedColumn[K, V]{Key: stored, Values: extracted}, true
}
