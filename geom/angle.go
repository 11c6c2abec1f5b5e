package geom

import "math"

const (
	degToRad = math.Pi / 180
	radToDeg = 180 / math.Pi
)

// Degrees is an angle in degrees.
type Degrees float64

// Rad converts to radians.
func (a Degrees) Rad() Radians {
	return Radians(float64(a) * degToRad)
}

// Normalize returns the angle wrapped into [0, 360).
func (a Degrees) Normalize() Degrees {
	d := math.Mod(float64(a), 360)
	if d < 0 {
		d += 360
	}
	// the correction rounds to exactly 360 for tiny negatives
	if d == 360 {
		d = 0
	}
	return Degrees(d)
}

// Radians is an angle in radians.
type Radians float64

// Deg converts to degrees.
func (a Radians) Deg() Degrees {
	return Degrees(float64(a) * radToDeg)
}

// Normalize returns the angle wrapped into [0, 2pi).
func (a Radians) Normalize() Radians {
	r := math.Mod(float64(a), 2*math.Pi)
	if r < 0 {
		r += 2 * math.Pi
	}
	if r == 2*math.Pi {
		r = 0
	}
	return Radians(r)
}
