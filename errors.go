package uuid

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidFormat indicates that the UUID string format is invalid
	ErrInvalidFormat = errors.New("uuid: invalid UUID format")

	// ErrInvalidLength indicates that the UUID byte slice has incorrect length
	ErrInvalidLength = errors.New("uuid: invalid UUID length (expected 16 bytes)")

	// ErrNotTimeBased is returned when a version 1 field is read from a UUID of
	// another version. It matches errors.ErrUnsupported.
	ErrNotTimeBased = fmt.Errorf("uuid: not a time-based UUID: %w", errors.ErrUnsupported)
)
