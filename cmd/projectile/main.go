// Command projectile renders the arc of a projectile to an image.
//
// A projectile starts one unit above the origin with speed flag vel pointed
// up and to the right, then ticks under constant gravity and wind until it
// lands. Every position marks a small block on a canvas written to flag o
// as plain PPM, or as BMP when the path ends in .bmp:
//
//	projectile -width=900 -height=550 -o=arc.ppm
//	projectile -vel=7 -o=arc.bmp
//	projectile -v
package main

import (
	"flag"
	"log"
	"math"
	"os"
	"path/filepath"

	"golang.org/x/image/bmp"
	"golang.org/x/image/colornames"

	"dasa.cc/rt/canvas"
	"dasa.cc/rt/geom"
	"dasa.cc/rt/rgb"
)

var (
	flagOut    = flag.String("o", "projectile.ppm", "output path; .bmp encodes BMP, anything else plain PPM")
	flagWidth  = flag.Int("width", 900, "canvas width in pixels")
	flagHeight = flag.Int("height", 550, "canvas height in pixels")
	flagVel    = flag.Float64("vel", 11.25, "initial speed")
	flagV      = flag.Bool("v", false, "log position each tick")
)

type projectile struct {
	pos geom.Point3
	vel geom.Vec3
}

func (p projectile) tick(field geom.Vec3) projectile {
	return projectile{p.pos.Add(p.vel), p.vel.Add(field)}
}

// mark sets a 6x6 block so the trace stays visible at full resolution.
// Blocks crossing the edge clip silently.
func mark(c *canvas.Canvas, x, y int, v rgb.Color) {
	for w := x; w <= x+5; w++ {
		for h := y; h <= y+5; h++ {
			c.Set(w, c.Height()-h, v)
		}
	}
}

func main() {
	flag.Parse()
	log.SetFlags(0)
	log.SetPrefix("projectile: ")

	c := canvas.New(*flagWidth, *flagHeight)
	trace := rgb.FromColor(colornames.Orangered)

	p := projectile{
		pos: geom.Origin.Add(geom.YAxis),
		vel: geom.Vec3{X: 1, Y: 1.8, Z: 0}.NormalizeOr(geom.Zero).Scale(*flagVel),
	}
	gravity := geom.Vec3{X: 0, Y: -0.1, Z: 0}
	wind := geom.Vec3{X: -0.01, Y: 0, Z: 0}
	field := gravity.Add(wind)

	ticks := 0
	for p.pos.Y > 0 {
		if *flagV {
			log.Printf("x: %.2f | y: %.2f | z: %.2f | tick: %v", p.pos.X, p.pos.Y, p.pos.Z, ticks)
		}
		mark(c, int(math.Round(p.pos.X)), int(math.Round(p.pos.Y)), trace)
		p = p.tick(field)
		ticks++
	}
	log.Printf("%v ticks, landed near x=%.0f", ticks, p.pos.X)

	out, err := os.Create(*flagOut)
	if err != nil {
		log.Fatal(err)
	}
	defer out.Close()

	switch filepath.Ext(*flagOut) {
	case ".bmp":
		err = bmp.Encode(out, c.Image())
	default:
		err = c.WritePPM(out)
	}
	if err != nil {
		log.Fatal(err)
	}
	log.Printf("wrote %v", *flagOut)
}
