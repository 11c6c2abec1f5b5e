// Package geom provides homogeneous tuple, point, and vector primitives for
// an offline ray tracer. All equality defers to package eps; raw bit
// comparison of coordinates is never exposed.
package geom

import (
	"golang.org/x/image/math/f64"

	"dasa.cc/rt/eps"
)

// A Tuple4 is a homogeneous coordinate. W distinguishes a point (w near 1)
// from a vector (w near 0); everything else is a malformed intermediate.
type Tuple4 struct {
	X, Y, Z, W float64
}

// TupleFromVec4 returns the tuple of a row-vector v.
func TupleFromVec4(v f64.Vec4) Tuple4 {
	return Tuple4{v[0], v[1], v[2], v[3]}
}

// Vec4 returns the tuple as an f64 vector for GL-style consumers.
func (a Tuple4) Vec4() f64.Vec4 {
	return f64.Vec4{a.X, a.Y, a.Z, a.W}
}

// IsPoint reports whether w compares equal to 1 at the Standard tier.
func (a Tuple4) IsPoint() bool {
	return eps.Eq(a.W, 1)
}

// IsVector reports whether w compares equal to 0 at the Standard tier.
func (a Tuple4) IsVector() bool {
	return eps.Eq(a.W, 0)
}

// Point returns the tuple as a Point3; false unless IsPoint.
func (a Tuple4) Point() (Point3, bool) {
	if !a.IsPoint() {
		return Point3{}, false
	}
	return Point3{a.X, a.Y, a.Z}, true
}

// Vec returns the tuple as a Vec3; false unless IsVector.
func (a Tuple4) Vec() (Vec3, bool) {
	if !a.IsVector() {
		return Vec3{}, false
	}
	return Vec3{a.X, a.Y, a.Z}, true
}

func (a Tuple4) Add(b Tuple4) Tuple4 {
	return Tuple4{a.X + b.X, a.Y + b.Y, a.Z + b.Z, a.W + b.W}
}

func (a Tuple4) Sub(b Tuple4) Tuple4 {
	return Tuple4{a.X - b.X, a.Y - b.Y, a.Z - b.Z, a.W - b.W}
}

func (a Tuple4) Neg() Tuple4 {
	return Tuple4{-a.X, -a.Y, -a.Z, -a.W}
}

func (a Tuple4) Scale(s float64) Tuple4 {
	return Tuple4{a.X * s, a.Y * s, a.Z * s, a.W * s}
}

// Div scales by the reciprocal of s.
func (a Tuple4) Div(s float64) Tuple4 {
	return a.Scale(1 / s)
}

// Dot returns the four-component dot product.
func (a Tuple4) Dot(b Tuple4) float64 {
	return a.X*b.X + a.Y*b.Y + a.Z*b.Z + a.W*b.W
}

// Eq compares componentwise at the Standard tier.
func (a Tuple4) Eq(b Tuple4) bool {
	return a.EqAt(b, eps.Standard)
}

// EqAt compares componentwise at the given tier.
func (a Tuple4) EqAt(b Tuple4, tier eps.Tier) bool {
	return eps.EqAt(a.X, b.X, tier) && eps.EqAt(a.Y, b.Y, tier) &&
		eps.EqAt(a.Z, b.Z, tier) && eps.EqAt(a.W, b.W, tier)
}
