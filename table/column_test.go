package table_test

import (
	"testing"

	"github.com/on-the-ground/hashtable/shared/helper"
	"github.com/on-the-ground/hashtable/table"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInsertColumn(t *testing.T) {
	tb := newABC()
	tb.InsertColumn("d", []int{10, 11, 12})

	assert.Equal(t, 4, tb.ColumnsLen())
	assert.Equal(t, 3, tb.RowsLen())
	slot, _ := tb.Index().Slot("d")
	assert.Equal(t, 3, slot, "new column takes the highest slot")

	assert.Equal(t, 11, tb.MustGet("d", 1))
	assert.Equal(t, 9, tb.MustGet("c", 2))
	assert.Equal(t, 4, tb.MustGet("a", 1))
	assert.NoError(t, tb.Validate())
}

func TestInsertColumn_LengthMismatchPanics(t *testing.T) {
	for name, values := range map[string][]int{
		"fewer": {1, 2},
		"more":  {1, 2, 3, 4},
	} {
		t.Run(name, func(t *testing.T) {
			tb := newABC()
			err := helper.CatchPanic(func() { tb.InsertColumn("d", values) })
			assert.ErrorIs(t, err, table.ErrColumnLength)
			assert.Equal(t, 3, tb.ColumnsLen())
			assert.False(t, tb.Index().Contains("d"))
			assert.NoError(t, tb.Validate())
		})
	}
}

func TestInsertColumn_DuplicateKeyPanics(t *testing.T) {
	tb := newABC()
	err := helper.CatchPanic(func() { tb.InsertColumn("a", []int{0, 0, 0}) })
	assert.ErrorIs(t, err, table.ErrDuplicateColumn)
	assert.Equal(t, 1, tb.MustGet("a", 0))
}

func TestInsertColumn_FirstColumnSetsRowCount(t *testing.T) {
	tb := table.New[string, int]()
	tb.InsertColumn("a", []int{1, 2})
	assert.Equal(t, 2, tb.RowsLen())

	tb.InsertColumn("b", []int{3, 4})
	assert.Equal(t, 4, tb.MustGet("b", 1))
	assert.NoError(t, tb.Validate())
}

func TestInsertColumnWith(t *testing.T) {
	tb := newABC()
	tb.InsertColumnWith("sum", func(row table.RowView[string, int]) int {
		total := 0
		for _, v := range row.All() {
			total += v
		}
		return total
	})

	assert.Equal(t, 6, tb.MustGet("sum", 0))
	assert.Equal(t, 15, tb.MustGet("sum", 1))
	assert.Equal(t, 24, tb.MustGet("sum", 2))
}

func TestRemoveColumn(t *testing.T) {
	tb := newABC()

	col, ok := tb.RemoveColumn("b")
	require.True(t, ok)
	assert.Equal(t, "b", col.Key)
	assert.Equal(t, []int{2, 5, 8}, col.Values)
	assert.Equal(t, 3, col.Len())

	assert.Equal(t, 2, tb.ColumnsLen())
	assert.Equal(t, 3, tb.RowsLen())
	slotA, _ := tb.Index().Slot("a")
	slotC, _ := tb.Index().Slot("c")
	assert.Equal(t, 0, slotA)
	assert.Equal(t, 1, slotC, "higher slots close the gap")
	assert.Equal(t, 6, tb.MustGet("c", 1))
	assert.NoError(t, tb.Validate())

	_, ok = tb.RemoveColumn("b")
	assert.False(t, ok)
}

func TestRemoveColumn_LastColumnLeavesEmptyTable(t *testing.T) {
	tb := table.FromColumnKeysAndRows([]string{"a"}, [][]int{{1}, {2}})
	col, ok := tb.RemoveColumn("a")
	require.True(t, ok)
	assert.Equal(t, []int{1, 2}, col.Values)
	assert.Equal(t, 0, tb.ColumnsLen())
	assert.Equal(t, 0, tb.RowsLen())
	assert.NoError(t, tb.Validate())
}

func TestRemoveThenInsertColumnRestoresElements(t *testing.T) {
	tb := newABC()
	want := tb.Clone()

	for _, key := range []string{"a", "b", "c"} {
		key, values := helper.Must(removeColumn(tb, key)).Pair()
		tb.InsertColumn(key, values)
		require.NoError(t, tb.Validate())
	}

	for key := range want.ColumnKeys() {
		for row := range want.RowsLen() {
			assert.Equal(t, want.MustGet(key, row), tb.MustGet(key, row), "(%s, %d)", key, row)
		}
	}
}

func removeColumn(tb *table.Table[string, int], key string) (table.OwnedColumn[string, int], error) {
	col, ok := tb.RemoveColumn(key)
	if !ok {
		return col, table.ErrColumnNotFound
	}
	return col, nil
}

func TestInsertColumnWith_PanicsWhenGeneratorRemovesRow(t *testing.T) {
	tb := newABC()

	err := helper.CatchPanic(func() {
		tb.InsertColumnWith("d", func(row table.RowView[string, int]) int {
			tb.RemoveRow(tb.RowsLen() - 1)
			return 0
		})
	})
	assert.ErrorIs(t, err, table.ErrStaleView)
	assert.False(t, tb.Index().Contains("d"))
	assert.Equal(t, 2, tb.RowsLen())
	assert.NoError(t, tb.Validate())
}
