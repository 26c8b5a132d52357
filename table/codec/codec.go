package codec

import (
	"encoding/binary"
	"errors"
	"fmt"
	"iter"
	"maps"

	"github.com/cespare/xxhash/v2"

	"github.com/on-the-ground/hashtable/table"
)

// ErrDecode is returned when data holds neither table shape, or holds one
// that breaks the table's row or column rules.
var ErrDecode = errors.New("cannot decode table")

// EncodeRows encodes t as a sequence of rows, first row first.
func EncodeRows[K comparable, V any](f Format, t *table.Table[K, V]) ([]byte, error) {
	if f == nil {
		f = Default
	}
	rows := make([]map[K]V, 0, t.RowsLen())
	for _, row := range t.Rows() {
		rows = append(rows, row.Map())
	}
	b, err := f.Marshal(rows)
	if err != nil {
		return nil, fmt.Errorf("encode rows as %s: %w", f.Name(), err)
	}
	return b, nil
}

// EncodeColumns encodes t as a map from column key to that column's values.
func EncodeColumns[K comparable, V any](f Format, t *table.Table[K, V]) ([]byte, error) {
	if f == nil {
		f = Default
	}
	columns := make(map[K][]V, t.ColumnsLen())
	for col := range t.Columns() {
		columns[col.Key()] = col.Values()
	}
	b, err := f.Marshal(columns)
	if err != nil {
		return nil, fmt.Errorf("encode columns as %s: %w", f.Name(), err)
	}
	return b, nil
}

// Decode builds a table from data in either shape. A sequence of rows is tried
// first; a map of columns is the fallback.
//
// Rows must all carry the key set of the first row and columns must all have
// the same length; otherwise an error wrapping ErrDecode and the table's
// sentinel error is returned.
func Decode[K comparable, V any](f Format, data []byte, opts ...table.Option) (*table.Table[K, V], error) {
	if f == nil {
		f = Default
	}

	var rows []map[K]V
	rowsErr := f.Unmarshal(data, &rows)
	if rowsErr == nil {
		t, err := table.BuildFromRowSeq(rowSeq(rows), opts...)
		if err != nil {
			return nil, fmt.Errorf("%w: %w", ErrDecode, err)
		}
		return t, nil
	}

	var columns map[K][]V
	if err := f.Unmarshal(data, &columns); err != nil {
		return nil, fmt.Errorf("%w: not a sequence of rows (%w) nor a map of columns (%w)",
			ErrDecode, rowsErr, err)
	}
	t, err := table.BuildFromColumnSeq(maps.All(columns), opts...)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrDecode, err)
	}
	return t, nil
}

func rowSeq[K comparable, V any](rows []map[K]V) iter.Seq[iter.Seq2[K, V]] {
	return func(yield func(iter.Seq2[K, V]) bool) {
		for _, row := range rows {
			if !yield(maps.All(row)) {
				return
			}
		}
	}
}

// Fingerprint digests the table's contents: its column keys and every
// (key, row, value) element, each encoded with f. The result does not depend
// on slot order, so two tables holding the same elements under different
// column layouts share a fingerprint.
func Fingerprint[K comparable, V any](f Format, t *table.Table[K, V]) (uint64, error) {
	if f == nil {
		f = Default
	}
	var sum uint64
	d := xxhash.New()
	var buf []byte

	for key := range t.ColumnKeys() {
		kb, err := f.Marshal(key)
		if err != nil {
			return 0, fmt.Errorf("fingerprint column key %v: %w", key, err)
		}
		d.Reset()
		buf = binary.AppendUvarint(buf[:0], uint64(len(kb)))
		_, _ = d.Write(buf)
		_, _ = d.Write(kb)
		sum += d.Sum64()
	}

	for cell, value := range t.All() {
		kb, err := f.Marshal(cell.Key)
		if err != nil {
			return 0, fmt.Errorf("fingerprint column key %v: %w", cell.Key, err)
		}
		vb, err := f.Marshal(value)
		if err != nil {
			return 0, fmt.Errorf("fingerprint value at (%v, %d): %w", cell.Key, cell.Row, err)
		}
		d.Reset()
		buf = binary.AppendUvarint(buf[:0], uint64(len(kb)))
		buf = binary.AppendUvarint(buf, uint64(cell.Row)+1)
		_, _ = d.Write(buf)
		_, _ = d.Write(kb)
		_, _ = d.Write(vb)
		sum += d.Sum64()
	}
	return sum, nil
}
