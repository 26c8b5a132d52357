package table

import (
	"errors"
	"fmt"

	"go.uber.org/multierr"
)

// ErrInvariant reports a broken internal invariant found by Validate.
var ErrInvariant = errors.New("table invariant violated")

// Validate checks the table's structural invariants and returns every
// violation found, combined. A nil result means the index and the value
// buffer agree:
//   - the number of keys equals the number of slots,
//   - slots are exactly 0..ColumnsLen()-1, each owned by one key,
//   - the buffer holds a whole number of rows.
func (t *Table[K, V]) Validate() error {
	var err error
	m := t.index
	cols := len(m.keys)

	if len(m.slots) != cols {
		err = multierr.Append(err, fmt.Errorf("%w: %d keys for %d slots",
			ErrInvariant, len(m.slots), cols))
	}

	owner := make([]bool, cols)
	for key, slot := range m.slots {
		if slot < 0 || slot >= cols {
			err = multierr.Append(err, fmt.Errorf("%w: key %v has slot %d outside [0, %d)",
				ErrInvariant, key, slot, cols))
			continue
		}
		if owner[slot] {
			err = multierr.Append(err, fmt.Errorf("%w: slot %d assigned twice",
				ErrInvariant, slot))
		}
		owner[slot] = true
		if m.keys[slot] != key {
			err = multierr.Append(err, fmt.Errorf("%w: slot %d maps back to %v, not %v",
				ErrInvariant, slot, m.keys[slot], key))
		}
	}

	switch {
	case cols == 0 && len(t.values) != 0:
		err = multierr.Append(err, fmt.Errorf("%w: %d values without columns",
			ErrInvariant, len(t.values)))
	case cols > 0 && len(t.values)%cols != 0:
		err = multierr.Append(err, fmt.Errorf("%w: %d values do not fill rows of %d",
			ErrInvariant, len(t.values), cols))
	}
	return err
}
