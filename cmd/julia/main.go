// Command julia renders a julia set to a PNG image.
//
// Each pixel maps to a coordinate z in the plane which iterates z = z*z + c
// until it escapes or flag iter runs out; escape time shades the pixel.
// Every pixel renders on its own goroutine:
//
//	julia -w=1000 -h=1000 -o=julia.png
//	julia -cr=-0.835 -ci=-0.2321 -zoom=0.004
package main

import (
	"flag"
	"image/png"
	"log"
	"os"
	"sync"
	"sync/atomic"
	"time"

	"dasa.cc/rt/canvas"
	"dasa.cc/rt/geom"
	"dasa.cc/rt/rgb"
)

var (
	flagOut    = flag.String("o", "julia.png", "output path")
	flagWidth  = flag.Int("w", 650, "frame width")
	flagHeight = flag.Int("h", 500, "frame height")
	flagZoom   = flag.Float64("zoom", 0.007, "plane units per pixel")
	flagIter   = flag.Int("iter", 90, "iterations before a point is considered bound")
	flagCr     = flag.Float64("cr", -1.1, "real part of c")
	flagCi     = flag.Float64("ci", -0.27, "imaginary part of c")
)

// step squares z in the xy plane and displaces by c.
func step(z, c geom.Vec3) geom.Vec3 {
	return geom.Vec3{X: z.X*z.X - z.Y*z.Y, Y: 2 * z.X * z.Y, Z: 0}.Add(c)
}

func shade(i, max int) rgb.Color {
	t := float64(i) / float64(max)
	return rgb.Color{R: 1, G: 0.35, B: 0.1}.Scale(t)
}

func monitor(total uint64) *uint64 {
	var progress uint64
	epoch := time.Now()
	go func() {
		for range time.Tick(time.Second) {
			done := atomic.LoadUint64(&progress)
			if done == 0 {
				continue
			}
			complete := float64(done) / float64(total)
			since := time.Since(epoch)
			if complete == 1 {
				log.Printf("completed in %s", since)
				return
			}
			estimate := time.Duration(float64(since) / complete)
			log.Printf("%.0f%% complete; time remaining %s", complete*100, estimate-since)
		}
	}()
	return &progress
}

func main() {
	flag.Parse()
	log.SetFlags(0)
	log.SetPrefix("julia: ")

	w, h := *flagWidth, *flagHeight
	cv := canvas.New(w, h)
	c := geom.Vec3{X: *flagCr, Y: *flagCi, Z: 0}

	progress := monitor(uint64(w * h))

	var wg sync.WaitGroup
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			wg.Add(1)
			go func(x, y int) {
				defer wg.Done()
				z := geom.Vec3{X: float64(x - w/2), Y: float64(y - h/2), Z: 0}.Scale(*flagZoom)
				clr := rgb.Black
				for i := 0; i < *flagIter; i++ {
					z = step(z, c)
					if z.NormSq() > 1e6 {
						clr = shade(i, *flagIter)
						break
					}
				}
				cv.Set(x, y, clr)
				atomic.AddUint64(progress, 1)
			}(x, y)
		}
	}
	wg.Wait()

	out, err := os.Create(*flagOut)
	if err != nil {
		log.Fatal(err)
	}
	defer out.Close()
	if err := png.Encode(out, cv.Image()); err != nil {
		log.Fatal(err)
	}
	log.Printf("wrote %v", *flagOut)
}
