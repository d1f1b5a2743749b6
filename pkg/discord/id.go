package discord

import (
	"fmt"
	"strconv"
	"time"
)

// Epoch is the snowflake epoch (2015-01-01T00:00:00Z) in milliseconds.
const Epoch = 1420070400000

// ID is a snowflake identifier. The zero value is never a valid id.
type ID uint64

// ParseID parses a decimal snowflake string.
func ParseID(raw string) (ID, error) {
	value, err := strconv.ParseUint(raw, 10, 64)
	if err != nil || value == 0 {
		return 0, fmt.Errorf("parse id %q: %w", raw, ErrInvalidID)
	}

	return ID(value), nil
}

// IsValid reports whether id is non-zero.
func (id ID) IsValid() bool {
	return id != 0
}

// String returns the decimal representation.
func (id ID) String() string {
	return strconv.FormatUint(uint64(id), 10)
}

// CreatedAt returns the creation time encoded in the snowflake.
func (id ID) CreatedAt() time.Time {
	return time.UnixMilli(int64(uint64(id)>>22) + Epoch).UTC()
}

// Permissions is a permission bitset.
type Permissions uint64

// Contains reports whether every bit of other is set.
func (p Permissions) Contains(other Permissions) bool {
	return p&other == other
}
