package geom

import (
	"math"

	"dasa.cc/rt/eps"
)

// A Vec3 is a direction or displacement; the homogeneous w is 0.
type Vec3 struct {
	X, Y, Z float64
}

var (
	Zero  = Vec3{}
	One   = Vec3{1, 1, 1}
	XAxis = Vec3{X: 1}
	YAxis = Vec3{Y: 1}
	ZAxis = Vec3{Z: 1}
)

// Splat returns the vector with all components set to s.
func Splat(s float64) Vec3 {
	return Vec3{s, s, s}
}

// W returns the homogeneous component of a vector, always 0.
func (a Vec3) W() float64 { return 0 }

// Tuple returns the vector as a homogeneous tuple.
func (a Vec3) Tuple() Tuple4 {
	return Tuple4{a.X, a.Y, a.Z, 0}
}

func (a Vec3) Add(b Vec3) Vec3 {
	return Vec3{a.X + b.X, a.Y + b.Y, a.Z + b.Z}
}

func (a Vec3) Sub(b Vec3) Vec3 {
	return Vec3{a.X - b.X, a.Y - b.Y, a.Z - b.Z}
}

func (a Vec3) Neg() Vec3 {
	return Vec3{-a.X, -a.Y, -a.Z}
}

func (a Vec3) Scale(s float64) Vec3 {
	return Vec3{a.X * s, a.Y * s, a.Z * s}
}

// Div scales by the reciprocal of s.
func (a Vec3) Div(s float64) Vec3 {
	return a.Scale(1 / s)
}

// Dot returns the scalar product of ab.
func (a Vec3) Dot(b Vec3) float64 {
	return a.X*b.X + a.Y*b.Y + a.Z*b.Z
}

// Cross returns the vector product of ab, anticommutative.
func (a Vec3) Cross(b Vec3) Vec3 {
	return Vec3{
		a.Y*b.Z - a.Z*b.Y,
		a.Z*b.X - a.X*b.Z,
		a.X*b.Y - a.Y*b.X,
	}
}

func (a Vec3) Norm() float64 {
	return math.Sqrt(a.NormSq())
}

func (a Vec3) NormSq() float64 {
	return a.Dot(a)
}

// Normalize returns a scaled to unit length; false when the length is not
// finite or is below the Standard tier.
func (a Vec3) Normalize() (Vec3, bool) {
	n := a.Norm()
	if math.IsNaN(n) || math.IsInf(n, 0) || n < float64(eps.Standard) {
		return Vec3{}, false
	}
	return a.Scale(1 / n), true
}

// NormalizeOr returns a scaled to unit length, or the fallback under the
// same conditions Normalize reports false.
func (a Vec3) NormalizeOr(fallback Vec3) Vec3 {
	if v, ok := a.Normalize(); ok {
		return v
	}
	return fallback
}

// Unit returns a scaled to unit length without the zero-length guard. The
// caller must ensure a has non-zero finite length.
func (a Vec3) Unit() Vec3 {
	return a.Scale(1 / a.Norm())
}

// IsUnit reports whether the length is 1 within the Standard tier.
func (a Vec3) IsUnit() bool {
	return math.Abs(a.NormSq()-1) <= float64(eps.Standard)
}

// Reflect returns a reflected about a surface normal n, which must be unit
// length; a non-unit n skews the result instead of failing.
func (a Vec3) Reflect(n Vec3) Vec3 {
	return a.Sub(n.Scale(2 * a.Dot(n)))
}

// Lerp returns a*(1-t) + b*t; t outside [0,1] extrapolates.
func (a Vec3) Lerp(b Vec3, t float64) Vec3 {
	return a.Scale(1 - t).Add(b.Scale(t))
}

// Map returns the vector with f applied to each component.
func (a Vec3) Map(f func(float64) float64) Vec3 {
	return Vec3{f(a.X), f(a.Y), f(a.Z)}
}

// Eq compares componentwise at the Standard tier.
func (a Vec3) Eq(b Vec3) bool {
	return a.EqAt(b, eps.Standard)
}

// EqAt compares componentwise at the given tier.
func (a Vec3) EqAt(b Vec3, tier eps.Tier) bool {
	return eps.EqAt(a.X, b.X, tier) && eps.EqAt(a.Y, b.Y, tier) && eps.EqAt(a.Z, b.Z, tier)
}
