package conv

import (
	"fmt"
	"math"
)

// Int64ToUint64 converts int64 to uint64 safely.
func Int64ToUint64(v int64) (uint64, error) {
	if v < 0 {
		return 0, fmt.Errorf("integer overflow: %d cannot be converted to uint64 (negative)", v)
	}
	return uint64(v), nil
}

// IntToInt32 converts int to int32 safely.
func IntToInt32(v int) (int32, error) {
	if v < math.MinInt32 || v > math.MaxInt32 {
		return 0, fmt.Errorf("integer overflow: %d cannot be converted to int32", v)
	}
	return int32(v), nil
}

// MustInt64ToUint64 converts int64 to uint64 and panics on a negative
// input. Simplex indices are non-negative by construction, so a
// failure here is an internal invariant violation, not a user error.
func MustInt64ToUint64(v int64) uint64 {
	u, err := Int64ToUint64(v)
	if err != nil {
		panic(err)
	}
	return u
}
