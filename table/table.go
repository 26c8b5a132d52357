package table

import (
	"fmt"
	"iter"
	"maps"
	"slices"

	"go.uber.org/zap"
)

// Table is a 2-dimensional grid of values. Each element is addressed by a
// column key and a row index.
//
// Values live in a single row-major buffer: the element at (row, key) is
// stored at row*ColumnsLen() + slot(key). Views returned by Row, RowMut and
// Column index into that buffer and are invalidated by any later change to
// the table's rows or columns.
//
// A Table is not safe for concurrent use.
type Table[K comparable, V any] struct {
	index  *IndexMap[K]
	values []V

	layoutGen uint64 // bumped by every row or column add/remove
	columnGen uint64 // bumped by column add/remove only

	logger *zap.Logger
}

// New creates an empty table with no columns.
func New[K comparable, V any](opts ...Option) *Table[K, V] {
	cfg := newConfig(opts)
	return &Table[K, V]{
		index:  newIndexMap[K](cfg.columnsHint),
		values: make([]V, 0, cfg.columnsHint*cfg.rowsHint),
		logger: cfg.logger,
	}
}

// NewWithColumns creates an empty table with the given column keys. Slots are
// assigned in the order the keys are given. It panics if a key repeats.
func NewWithColumns[K comparable, V any](keys []K, opts ...Option) *Table[K, V] {
	cfg := newConfig(opts)
	if cfg.columnsHint < len(keys) {
		cfg.columnsHint = len(keys)
	}
	t := &Table[K, V]{
		index:  newIndexMap[K](cfg.columnsHint),
		values: make([]V, 0, cfg.columnsHint*cfg.rowsHint),
		logger: cfg.logger,
	}
	for _, key := range keys {
		if _, err := t.index.insert(key); err != nil {
			panic(err)
		}
	}
	return t
}

// ColumnsLen returns the number of columns.
func (t *Table[K, V]) ColumnsLen() int {
	return t.index.Len()
}

// RowsLen returns the number of rows. A table without columns has no rows.
func (t *Table[K, V]) RowsLen() int {
	cols := t.index.Len()
	if cols == 0 {
		return 0
	}
	return len(t.values) / cols
}

// Index exposes the key to slot mapping. It must not be retained across
// column insertions or removals.
func (t *Table[K, V]) Index() *IndexMap[K] {
	return t.index
}

// ColumnKeys yields the column keys in unspecified order.
func (t *Table[K, V]) ColumnKeys() iter.Seq[K] {
	return t.index.Keys()
}

// Clone returns a copy of the table. Values are copied shallowly.
func (t *Table[K, V]) Clone() *Table[K, V] {
	return &Table[K, V]{
		index:  t.index.Clone(),
		values: slices.Clone(t.values),
		logger: t.logger,
	}
}

func (t *Table[K, V]) rowStart(row int) int {
	return row * t.index.Len()
}

func (t *Table[K, V]) validRow(row int) bool {
	return row >= 0 && row < t.RowsLen()
}

// elemIndex returns the buffer position of (key, row).
func (t *Table[K, V]) elemIndex(key K, row int) (int, bool) {
	if !t.validRow(row) {
		return 0, false
	}
	slot, ok := t.index.Slot(key)
	if !ok {
		return 0, false
	}
	return t.rowStart(row) + slot, true
}

// Get returns the element at (key, row).
// Reports false if the column does not exist or row is out of range.
func (t *Table[K, V]) Get(key K, row int) (V, bool) {
	idx, ok := t.elemIndex(key, row)
	if !ok {
		var zero V
		return zero, false
	}
	return t.values[idx], true
}

// GetPtr returns a pointer to the element at (key, row) for in-place updates.
// The pointer must not be used after rows or columns are added or removed.
func (t *Table[K, V]) GetPtr(key K, row int) (*V, bool) {
	idx, ok := t.elemIndex(key, row)
	if !ok {
		return nil, false
	}
	return &t.values[idx], true
}

// Set overwrites the element at (key, row). Reports false, leaving the table
// untouched, if the element does not exist.
func (t *Table[K, V]) Set(key K, row int, value V) bool {
	ptr, ok := t.GetPtr(key, row)
	if !ok {
		return false
	}
	*ptr = value
	return true
}

// At returns a pointer to the element at (key, row).
// Unlike GetPtr it treats a missing column or row as a programming error and panics.
func (t *Table[K, V]) At(key K, row int) *V {
	if !t.index.Contains(key) {
		panic(columnNotFound(key))
	}
	if !t.validRow(row) {
		panic(rowOutOfRange(row, t.RowsLen()))
	}
	ptr, _ := t.GetPtr(key, row)
	return ptr
}

// MustGet is the panic-on-failure variant of Get.
func (t *Table[K, V]) MustGet(key K, row int) V {
	return *t.At(key, row)
}

// Row returns a read-only view of a row.
// Reports false if row is out of range.
func (t *Table[K, V]) Row(row int) (RowView[K, V], bool) {
	if !t.validRow(row) {
		return RowView[K, V]{}, false
	}
	return RowView[K, V]{
		table: t,
		row:   row,
		start: t.rowStart(row),
		gen:   t.layoutGen,
	}, true
}

// RowMut returns a view of a row that allows updating its values.
// Reports false if row is out of range.
func (t *Table[K, V]) RowMut(row int) (MutRowView[K, V], bool) {
	if !t.validRow(row) {
		return MutRowView[K, V]{}, false
	}
	return MutRowView[K, V]{
		table: t,
		row:   row,
		start: t.rowStart(row),
		gen:   t.layoutGen,
	}, true
}

// Column returns a read-only view of a column.
// Reports false if the column does not exist.
func (t *Table[K, V]) Column(key K) (ColumnView[K, V], bool) {
	slot, ok := t.index.Slot(key)
	if !ok {
		return ColumnView[K, V]{}, false
	}
	return t.columnView(key, slot), true
}

func (t *Table[K, V]) columnView(key K, slot int) ColumnView[K, V] {
	rows := t.RowsLen()
	cols := t.index.Len()
	refs := make([]*V, rows)
	for row := range rows {
		refs[row] = &t.values[row*cols+slot]
	}
	return ColumnView[K, V]{
		table:  t,
		key:    key,
		values: refs,
		gen:    t.layoutGen,
	}
}

// PushRow appends a row given as key-value pairs, in any order.
// The keys must be exactly the table's column keys; it panics otherwise,
// leaving the table unchanged.
func (t *Table[K, V]) PushRow(pairs iter.Seq2[K, V]) {
	row, err := t.arrangeRow(pairs, false)
	if err != nil {
		panic(err)
	}
	t.values = append(t.values, row...)
	t.touchRows()
}

// PushRowMap appends a row given as a map from column key to value.
func (t *Table[K, V]) PushRowMap(row map[K]V) {
	t.PushRow(maps.All(row))
}

// PushRowWith appends a row whose values are produced by generate, called once
// per column key in slot order. generate must not add or remove rows or
// columns; doing so panics with ErrStaleView and appends nothing.
func (t *Table[K, V]) PushRowWith(generate func(K) V) {
	gen := t.layoutGen
	keys := t.index.inSlotOrder()
	row := make([]V, len(keys))
	for slot, key := range keys {
		row[slot] = generate(key)
		t.checkView(gen)
	}
	t.values = append(t.values, row...)
	t.touchRows()
}

// arrangeRow orders pairs by slot. With collapse set, a repeated key keeps its
// first value; otherwise a repeated key is an error.
func (t *Table[K, V]) arrangeRow(pairs iter.Seq2[K, V], collapse bool) ([]V, error) {
	cols := t.index.Len()
	row := make([]V, cols)
	filled := make([]bool, cols)
	count := 0
	for key, value := range pairs {
		slot, ok := t.index.Slot(key)
		if !ok {
			return nil, fmt.Errorf("%w: unknown key %v", ErrRowKeyMismatch, key)
		}
		if filled[slot] {
			if collapse {
				continue
			}
			return nil, fmt.Errorf("%w: key %v given twice", ErrRowKeyMismatch, key)
		}
		row[slot] = value
		filled[slot] = true
		count++
	}
	if count != cols {
		return nil, fmt.Errorf("%w: row has %d of %d columns", ErrRowKeyMismatch, count, cols)
	}
	return row, nil
}

// RemoveRow removes a row and returns its values. Rows after it shift down by one.
// Reports false if row is out of range.
func (t *Table[K, V]) RemoveRow(row int) (OwnedRow[K, V], bool) {
	if !t.validRow(row) {
		return OwnedRow[K, V]{}, false
	}
	start := t.rowStart(row)
	end := start + t.index.Len()
	values := slices.Clone(t.values[start:end])
	t.values = slices.Delete(t.values, start, end)
	t.touchRows()
	return OwnedRow[K, V]{
		table:     t,
		index:     t.index,
		values:    values,
		columnGen: t.columnGen,
	}, true
}

// RemoveRowMap removes a row and returns it as a map from column key to value.
// Reports false if row is out of range.
func (t *Table[K, V]) RemoveRowMap(row int) (map[K]V, bool) {
	owned, ok := t.RemoveRow(row)
	if !ok {
		return nil, false
	}
	return owned.Map(), true
}

func (t *Table[K, V]) touchRows() {
	t.layoutGen++
}

func (t *Table[K, V]) touchColumns() {
	t.layoutGen++
	t.columnGen++
}

func (t *Table[K, V]) checkView(gen uint64) {
	if gen == t.layoutGen {
		return
	}
	err := fmt.Errorf("%w: view generation %d, table generation %d", ErrStaleView, gen, t.layoutGen)
	t.logger.Error("stale table view", zap.Error(err))
	panic(err)
}
