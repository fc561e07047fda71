// Package overflow provides checked 64-bit integer arithmetic.
//
// Calendar arithmetic multiplies user-supplied amounts by large unit
// conversion factors, so every step that can exceed the representable
// range reports ErrOverflow instead of wrapping silently.
package overflow

import (
	"errors"
	"math"
)

// ErrOverflow indicates a checked operation exceeded the 64-bit or 32-bit range.
var ErrOverflow = errors.New("overflow: value out of range")

// Add returns a+b, or ErrOverflow if the sum is not representable in int64.
func Add(a, b int64) (int64, error) {
	sum := a + b
	if (a^sum) < 0 && (a^b) >= 0 {
		return 0, ErrOverflow
	}
	return sum, nil
}

// Sub returns a-b, or ErrOverflow if the difference is not representable in int64.
func Sub(a, b int64) (int64, error) {
	diff := a - b
	if (a^diff) < 0 && (a^b) < 0 {
		return 0, ErrOverflow
	}
	return diff, nil
}

// Mul returns a*b, or ErrOverflow if the product is not representable in int64.
func Mul(a, b int64) (int64, error) {
	if a == 0 || b == 0 {
		return 0, nil
	}
	product := a * b
	if product/b != a || (a == math.MinInt64 && b == -1) || (b == math.MinInt64 && a == -1) {
		return 0, ErrOverflow
	}
	return product, nil
}

// Int32 narrows v to int32, or ErrOverflow if v does not fit.
func Int32(v int64) (int32, error) {
	if v < math.MinInt32 || v > math.MaxInt32 {
		return 0, ErrOverflow
	}
	return int32(v), nil
}

// AddInt32 returns a+b, or ErrOverflow if the sum exceeds the int32 range.
func AddInt32(a, b int32) (int32, error) {
	return Int32(int64(a) + int64(b))
}

// FloorDiv returns the floor of a/b. Unlike Go's truncating division the
// result rounds toward negative infinity, so FloorDiv(-1, 7) is -1.
func FloorDiv(a, b int64) int64 {
	q := a / b
	if (a%b != 0) && ((a < 0) != (b < 0)) {
		q--
	}
	return q
}

// FloorMod returns the remainder of FloorDiv. The result always has the
// same sign as b, so FloorMod(-1, 7) is 6.
func FloorMod(a, b int64) int64 {
	return a - FloorDiv(a, b)*b
}
