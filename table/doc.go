// Package table provides Table, an in-memory 2-dimensional grid of values
// addressed by a column key and a row index.
//
// # Layout
//
// A Table keeps two things in sync:
//   - an IndexMap assigning every column key a dense slot in [0, ColumnsLen()),
//   - one row-major value buffer, where (row, key) lives at row*ColumnsLen()+slot(key).
//
// Column lookup by key and element access by (key, row) are O(1). Rows are
// not stored separately; a row is the buffer range of its ColumnsLen() values,
// so removing a row shifts every later row down by one.
//
// # Views
//
// Row, RowMut and Column return views that index into the live buffer. They
// stay valid while only element values change; once a row or column is added
// or removed, using an older view panics with ErrStaleView. RemoveRow and
// RemoveColumn hand back owned values that survive later row changes.
//
// # Errors
//
// Lookups that miss report it with a bool (Get, Row, Column, RemoveRow,
// RemoveColumn, ...). Broken preconditions are programming errors and panic
// with one of the package's sentinel errors: mismatched row keys or column
// lengths, duplicate column keys, At or MustGet on a missing element. The
// Build* constructors return those errors instead, for input that comes from
// outside the program.
//
// Example:
//
//	timestamps := table.FromColumnKeysAndRows(
//	    []string{"hour", "minute", "second"},
//	    [][]int{{7, 15, 13}, {8, 30, 32}},
//	)
//	minute, _ := timestamps.Get("minute", 1) // 30
package table
