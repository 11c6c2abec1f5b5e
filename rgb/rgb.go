// Package rgb provides the float color type for an offline ray tracer.
//
// Channels are unconstrained float64 while light accumulates; values clamp
// to displayable bytes only at export.
package rgb

import (
	"image/color"
	"math"

	"dasa.cc/rt/eps"
)

// A Color is an rgb triple with unconstrained channel range.
type Color struct {
	R, G, B float64
}

var (
	Black   = Color{0, 0, 0}
	White   = Color{1, 1, 1}
	Red     = Color{1, 0, 0}
	Green   = Color{0, 1, 0}
	Blue    = Color{0, 0, 1}
	Yellow  = Color{1, 1, 0}
	Cyan    = Color{0, 1, 1}
	Magenta = Color{1, 0, 1}
)

// Add returns the sum of a and b.
func (a Color) Add(b Color) Color {
	return Color{a.R + b.R, a.G + b.G, a.B + b.B}
}

// Sub returns the difference of a and b.
func (a Color) Sub(b Color) Color {
	return Color{a.R - b.R, a.G - b.G, a.B - b.B}
}

// Scale returns a with each channel multiplied by s.
func (a Color) Scale(s float64) Color {
	return Color{a.R * s, a.G * s, a.B * s}
}

// Mul returns the Hadamard product of a and b, the channelwise product that
// filters light a by surface b.
func (a Color) Mul(b Color) Color {
	return Color{a.R * b.R, a.G * b.G, a.B * b.B}
}

// Eq reports whether a and b are approximately equal.
func (a Color) Eq(b Color) bool { return a.EqAt(b, eps.Standard) }

// EqAt reports whether a and b are approximately equal at the given tier.
func (a Color) EqAt(b Color, tier eps.Tier) bool {
	return eps.EqAt(a.R, b.R, tier) && eps.EqAt(a.G, b.G, tier) && eps.EqAt(a.B, b.B, tier)
}

const inv255 = 1.0 / 255

// byteOf clamps v to [0, 1] and scales to [0, 255], rounding half away
// from zero. NaN clamps to 0.
func byteOf(v float64) uint8 {
	switch {
	case math.IsNaN(v) || v <= 0:
		return 0
	case v >= 1:
		return 255
	default:
		return uint8(math.Round(v * 255))
	}
}

// Bytes returns the channels of a as display bytes.
func (a Color) Bytes() (r, g, b uint8) {
	return byteOf(a.R), byteOf(a.G), byteOf(a.B)
}

// FromBytes returns the Color of the given display bytes. Bytes of the
// result returns the same values.
func FromBytes(r, g, b uint8) Color {
	return Color{float64(r) * inv255, float64(g) * inv255, float64(b) * inv255}
}

// NRGBA returns a as a fully opaque stdlib color.
func (a Color) NRGBA() color.NRGBA {
	r, g, b := a.Bytes()
	return color.NRGBA{R: r, G: g, B: b, A: 0xff}
}

// FromColor returns the Color of any stdlib color, ignoring alpha.
func FromColor(c color.Color) Color {
	r, g, b, _ := c.RGBA()
	return Color{float64(r) / 0xffff, float64(g) / 0xffff, float64(b) / 0xffff}
}
