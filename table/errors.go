package table

import (
	"errors"
	"fmt"
)

// Errors used as panic values by the fatal tier of the API, and returned by the
// Build* constructors. Lookups that merely miss report absence through a bool
// instead.
var (
	// ErrColumnNotFound is raised by At and MustGet when the key is absent.
	ErrColumnNotFound = errors.New("column not found")

	// ErrRowOutOfRange is raised by At and MustGet when the row does not exist.
	ErrRowOutOfRange = errors.New("row out of range")

	// ErrDuplicateColumn is raised when a column key is inserted twice.
	ErrDuplicateColumn = errors.New("duplicate column key")

	// ErrColumnLength is raised when a column does not carry one value per row.
	ErrColumnLength = errors.New("column length mismatch")

	// ErrRowKeyMismatch is raised when a row's key set differs from the table's columns.
	ErrRowKeyMismatch = errors.New("row keys do not match table columns")

	// ErrSlotTaken is raised when a row slot is handed out twice during mutable iteration.
	ErrSlotTaken = errors.New("row slot already taken")

	// ErrStaleView is raised when a view is used after the table layout changed.
	ErrStaleView = errors.New("view used after table mutation")
)

func columnNotFound[K comparable](key K) error {
	return fmt.Errorf("%w: %v", ErrColumnNotFound, key)
}

func rowOutOfRange(row, rows int) error {
	return fmt.Errorf("%w: row %d, rows %d", ErrRowOutOfRange, row, rows)
}

func duplicateColumn[K comparable](key K) error {
	return fmt.Errorf("%w: %v", ErrDuplicateColumn, key)
}
