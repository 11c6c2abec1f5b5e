// Package canvas provides the pixel grid an offline ray tracer renders
// into, with plain PPM (P3) serialization.
package canvas

import (
	"bufio"
	"fmt"
	"image"
	"io"
	"strconv"
	"strings"

	"dasa.cc/rt/rgb"
)

// A Canvas is a w by h grid of colors, row-major, initially black. It is the
// one mutable type in this module; concurrent writers to the same pixel
// need external coordination.
type Canvas struct {
	w, h int
	pix  []rgb.Color
}

// New returns a w by h Canvas. Panics unless both sizes are at least 1.
func New(w, h int) *Canvas {
	if w < 1 || h < 1 {
		panic(fmt.Sprintf("canvas: size %vx%v out of range", w, h))
	}
	return &Canvas{w: w, h: h, pix: make([]rgb.Color, w*h)}
}

// Width returns the width of c in pixels.
func (c *Canvas) Width() int { return c.w }

// Height returns the height of c in pixels.
func (c *Canvas) Height() int { return c.h }

// At returns the color at (x, y), or black when out of bounds.
func (c *Canvas) At(x, y int) rgb.Color {
	if x < 0 || x >= c.w || y < 0 || y >= c.h {
		return rgb.Black
	}
	return c.pix[y*c.w+x]
}

// Set sets the color at (x, y). Out of bounds is a no-op.
func (c *Canvas) Set(x, y int, v rgb.Color) {
	if x < 0 || x >= c.w || y < 0 || y >= c.h {
		return
	}
	c.pix[y*c.w+x] = v
}

// Fill sets every pixel of c to v.
func (c *Canvas) Fill(v rgb.Color) {
	for i := range c.pix {
		c.pix[i] = v
	}
}

// maxLine bounds PPM line length for strict readers.
const maxLine = 70

// WritePPM writes c to w in plain PPM (P3) format: a header, then each
// canvas row as space-separated display bytes. A value that would push a
// line past maxLine characters starts a new line instead. Rows never share
// a line and output ends with a newline.
func (c *Canvas) WritePPM(w io.Writer) error {
	bw := bufio.NewWriter(w)
	fmt.Fprintf(bw, "P3\n%d %d\n255\n", c.w, c.h)
	for y := 0; y < c.h; y++ {
		line := 0
		for x := 0; x < c.w; x++ {
			r, g, b := c.pix[y*c.w+x].Bytes()
			for _, v := range [3]uint8{r, g, b} {
				s := strconv.Itoa(int(v))
				switch {
				case line == 0:
				case line+1+len(s) > maxLine:
					bw.WriteByte('\n')
					line = 0
				default:
					bw.WriteByte(' ')
					line++
				}
				bw.WriteString(s)
				line += len(s)
			}
		}
		bw.WriteByte('\n')
	}
	return bw.Flush()
}

// PPM returns c serialized as a PPM string.
func (c *Canvas) PPM() string {
	var sb strings.Builder
	c.WritePPM(&sb) // a Builder never errors
	return sb.String()
}

// Image returns c as a stdlib image for PNG or BMP encoding.
func (c *Canvas) Image() *image.NRGBA {
	m := image.NewNRGBA(image.Rect(0, 0, c.w, c.h))
	for y := 0; y < c.h; y++ {
		for x := 0; x < c.w; x++ {
			m.SetNRGBA(x, y, c.pix[y*c.w+x].NRGBA())
		}
	}
	return m
}
