package conv

import (
	"errors"
	"fmt"
	"math"
)

var (
	// ErrNegative is returned when a negative value is converted to an unsigned type.
	ErrNegative = errors.New("negative value")

	// ErrTooLarge is returned when a value exceeds the target type's range.
	ErrTooLarge = errors.New("value too large")
)

// IntToUint64 converts int to uint64 safely.
func IntToUint64(v int) (uint64, error) {
	if v < 0 {
		return 0, fmt.Errorf("integer overflow: %d cannot be converted to uint64: %w", v, ErrNegative)
	}
	return uint64(v), nil
}

// Uint64ToInt converts uint64 to int safely.
func Uint64ToInt(v uint64) (int, error) {
	if v > uint64(math.MaxInt) {
		return 0, fmt.Errorf("integer overflow: %d cannot be converted to int: %w", v, ErrTooLarge)
	}
	return int(v), nil
}
