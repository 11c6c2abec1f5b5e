package geom

import (
	"math"

	"dasa.cc/rt/eps"
)

// A Point3 is a position in space; the homogeneous w is 1.
type Point3 struct {
	X, Y, Z float64
}

// Origin is the zero point.
var Origin = Point3{}

// W returns the homogeneous component of a point, always 1.
func (a Point3) W() float64 { return 1 }

// Tuple returns the point as a homogeneous tuple.
func (a Point3) Tuple() Tuple4 {
	return Tuple4{a.X, a.Y, a.Z, 1}
}

// Add returns the point displaced by b.
func (a Point3) Add(b Vec3) Point3 {
	return Point3{a.X + b.X, a.Y + b.Y, a.Z + b.Z}
}

// Sub returns the displacement from b to a.
func (a Point3) Sub(b Point3) Vec3 {
	return Vec3{a.X - b.X, a.Y - b.Y, a.Z - b.Z}
}

// SubVec returns the point displaced by -b.
func (a Point3) SubVec(b Vec3) Point3 {
	return Point3{a.X - b.X, a.Y - b.Y, a.Z - b.Z}
}

func (a Point3) Dist(b Point3) float64 {
	return math.Sqrt(a.DistSq(b))
}

func (a Point3) DistSq(b Point3) float64 {
	return a.Sub(b).NormSq()
}

// Lerp returns a*(1-t) + b*t; t outside [0,1] extrapolates.
func (a Point3) Lerp(b Point3, t float64) Point3 {
	return Point3{
		a.X*(1-t) + b.X*t,
		a.Y*(1-t) + b.Y*t,
		a.Z*(1-t) + b.Z*t,
	}
}

// Eq compares componentwise at the Standard tier.
func (a Point3) Eq(b Point3) bool {
	return a.EqAt(b, eps.Standard)
}

// EqAt compares componentwise at the given tier.
func (a Point3) EqAt(b Point3, tier eps.Tier) bool {
	return eps.EqAt(a.X, b.X, tier) && eps.EqAt(a.Y, b.Y, tier) && eps.EqAt(a.Z, b.Z, tier)
}
