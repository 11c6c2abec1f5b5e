// Package eps provides tiered floating-point comparison for geometry code.
//
// Rounding error accumulates at different rates in different places: a
// ray-surface hit carries more of it than a freshly built coordinate, and a
// test asserting on closed-form results tolerates almost none. Tier names
// those levels so call sites say which one they mean.
package eps

import (
	"math"

	"golang.org/x/exp/constraints"
)

// A Tier is a named tolerance.
type Tier float64

const (
	// Coarse suits bounding checks and truncated fixtures.
	Coarse Tier = 1e-3
	// Intersect absorbs the error of ray-surface hit points.
	Intersect Tier = 1e-4
	// Standard is the default for geometric equality.
	Standard Tier = 1e-5
	// Tight is unit-test grade.
	Tight Tier = 1e-9
)

// Eq reports whether a and b are approximately equal at the Standard tier.
func Eq[T constraints.Float](a, b T) bool {
	return EqAt(a, b, Standard)
}

// EqAt reports whether a and b are approximately equal at the given tier.
// NaN never compares equal; infinities never compare equal, not even to
// themselves. Exact equality of finite operands short-circuits; operands
// below magnitude 1 compare against the tier as an absolute threshold,
// larger operands against tier*magnitude if that is looser.
func EqAt[T constraints.Float](a, b T, tier Tier) bool {
	x, y := float64(a), float64(b)
	if math.IsNaN(x) || math.IsNaN(y) {
		return false
	}
	if math.IsInf(x, 0) || math.IsInf(y, 0) {
		return false
	}
	if x == y {
		return true
	}
	eps := float64(tier)
	diff := math.Abs(x - y)
	if m := math.Max(math.Abs(x), math.Abs(y)); m >= 1 {
		return diff < math.Max(eps, eps*m)
	}
	return diff < eps
}
