// Package safe provides numeric conversions with overflow checks.
package safe

import "fmt"

// Integer is any built-in integer type.
type Integer interface {
	~int | ~int8 | ~int16 | ~int32 | ~int64 | ~uint | ~uint8 | ~uint16 | ~uint32 | ~uint64
}

// Int16 converts v to int16 or fails if it does not fit.
func Int16[T Integer](v T) (int16, error) { return convert[int16](v) }

// Int64 converts v to int64 or fails if it does not fit.
func Int64[T Integer](v T) (int64, error) { return convert[int64](v) }

// Uint16 converts v to uint16 or fails if it does not fit.
func Uint16[T Integer](v T) (uint16, error) { return convert[uint16](v) }

// Uint32 converts v to uint32 or fails if it does not fit.
func Uint32[T Integer](v T) (uint32, error) { return convert[uint32](v) }

// Uint64 converts v to uint64 or fails if it is negative.
func Uint64[T Integer](v T) (uint64, error) { return convert[uint64](v) }

// convert relies on the value surviving the round trip with its sign intact.
func convert[R Integer, T Integer](v T) (R, error) {
	r := R(v)
	if T(r) != v || (v < 0) != (r < 0) {
		var zero R
		return zero, fmt.Errorf("value %d out of %T range", v, zero)
	}
	return r, nil
}
