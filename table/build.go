package table

import (
	"fmt"
	"iter"
	"maps"

	"github.com/on-the-ground/hashtable/shared/helper"
	"go.uber.org/zap"
)

// FromColumnKeysAndRows builds a table from column keys and rows of values.
//
// Rows are only checked as a whole: all values are concatenated and split
// into rows of ColumnsLen() values, so a short row borrows values from the
// next one. Trailing values that do not fill a complete row are dropped.
// With no keys every value is dropped.
func FromColumnKeysAndRows[K comparable, V any](keys []K, rows [][]V, opts ...Option) *Table[K, V] {
	t := NewWithColumns[K, V](keys, opts...)
	for _, row := range rows {
		t.values = append(t.values, row...)
	}

	cols := t.index.Len()
	dropped := len(t.values)
	if cols > 0 {
		dropped = len(t.values) % cols
	}
	if dropped > 0 {
		clear(t.values[len(t.values)-dropped:])
		t.values = t.values[:len(t.values)-dropped]
		t.logger.Debug("incomplete row dropped",
			zap.Int("columns", cols),
			zap.Int("dropped", dropped),
		)
	}
	return t
}

// BuildFromColumnSeq builds a table from (key, values) pairs, one per column.
// Column slots follow the order of the sequence. Every column must hold the
// same number of values and keys must not repeat.
func BuildFromColumnSeq[K comparable, V any](columns iter.Seq2[K, []V], opts ...Option) (*Table[K, V], error) {
	t := New[K, V](opts...)
	var collected [][]V
	for key, values := range columns {
		if _, err := t.index.insert(key); err != nil {
			return nil, err
		}
		if len(collected) > 0 && len(values) != len(collected[0]) {
			return nil, fmt.Errorf("%w: column %v has %d values, first column has %d",
				ErrColumnLength, key, len(values), len(collected[0]))
		}
		collected = append(collected, values)
	}
	if len(collected) == 0 {
		return t, nil
	}

	cols := len(collected)
	rows := len(collected[0])
	t.values = make([]V, rows*cols)
	for slot, values := range collected {
		for row, value := range values {
			t.values[row*cols+slot] = value
		}
	}
	return t, nil
}

// FromColumnSeq is the panic-on-failure variant of BuildFromColumnSeq.
func FromColumnSeq[K comparable, V any](columns iter.Seq2[K, []V], opts ...Option) *Table[K, V] {
	return helper.Must(BuildFromColumnSeq(columns, opts...))
}

// FromColumns builds a table from owned columns, typically ones taken out of
// another table. It panics on unequal column lengths or repeated keys.
func FromColumns[K comparable, V any](columns []OwnedColumn[K, V], opts ...Option) *Table[K, V] {
	return FromColumnSeq[K, V](func(yield func(K, []V) bool) {
		for _, col := range columns {
			if !yield(col.Key, col.Values) {
				return
			}
		}
	}, opts...)
}

// BuildFromRowSeq builds a table from rows of key-value pairs.
//
// The first row decides the column keys and their slots. Every following row
// must carry exactly the same keys, in any order. A key repeated within one row
// keeps its first value.
func BuildFromRowSeq[K comparable, V any](rows iter.Seq[iter.Seq2[K, V]], opts ...Option) (*Table[K, V], error) {
	t := New[K, V](opts...)
	first := true
	for row := range rows {
		if first {
			first = false
			for key, value := range row {
				if t.index.Contains(key) {
					continue
				}
				if _, err := t.index.insert(key); err != nil {
					return nil, err
				}
				t.values = append(t.values, value)
			}
			continue
		}
		arranged, err := t.arrangeRow(row, true)
		if err != nil {
			return nil, fmt.Errorf("row %d: %w", t.RowsLen(), err)
		}
		t.values = append(t.values, arranged...)
	}
	return t, nil
}

// FromRowSeq is the panic-on-failure variant of BuildFromRowSeq.
func FromRowSeq[K comparable, V any](rows iter.Seq[iter.Seq2[K, V]], opts ...Option) *Table[K, V] {
	return helper.Must(BuildFromRowSeq(rows, opts...))
}

// FromRows builds a table from rows given as maps. The first row decides the
// column keys; it panics if a later row has a different key set.
func FromRows[K comparable, V any](rows []map[K]V, opts ...Option) *Table[K, V] {
	return FromRowSeq[K, V](mapRows(rows), opts...)
}

func mapRows[K comparable, V any](rows []map[K]V) iter.Seq[iter.Seq2[K, V]] {
	return func(yield func(iter.Seq2[K, V]) bool) {
		for _, row := range rows {
			if !yield(maps.All(row)) {
				return
			}
		}
	}
}
