// Package render drives the parallel tile scheduler: it dispatches whole
// rows of the framebuffer to a worker pool, accumulates path-traced
// samples per pixel, and tone-maps the result to 8-bit RGB.
package render

import (
	stdmath "math"
	"math/rand"
	"runtime"
	"sync"
	"time"

	"pathtracer/integrator"
	pmath "pathtracer/math"
	"pathtracer/scene"
)

// Image is a row-major H*W*3 framebuffer; row 0 is the top of the image.
type Image struct {
	Width, Height int
	Pixels        []byte
}

// At returns the byte offset of pixel (x, y)'s red channel.
func (img *Image) At(x, y int) int {
	return (y*img.Width + x) * 3
}

// Options configures a render pass.
type Options struct {
	Width, Height   int
	SamplesPerPixel int
	MaxDepth        int

	// Multithreading selects the row worker pool; false renders every row
	// sequentially on the calling goroutine (useful for deterministic
	// debugging, per spec's single-threaded mode).
	Multithreading bool
	// Workers overrides the worker pool size. 0 uses runtime.GOMAXPROCS(0).
	Workers int
	// Seed seeds the per-worker RNGs. 0 derives a seed from the current time.
	Seed int64

	// Progress, if non-nil, is called after each row commits. Workers call
	// it one at a time: calls are serialized by a mutex.
	Progress func(rowsDone, totalRows int)
}

// Render draws sc into a new Image according to opts.
func Render(sc *scene.Scene, opts Options) *Image {
	img := &Image{
		Width:  opts.Width,
		Height: opts.Height,
		Pixels: make([]byte, opts.Width*opts.Height*3),
	}

	seed := opts.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}

	var rowsDone int
	var progressMu sync.Mutex
	reportRow := func() {
		if opts.Progress == nil {
			return
		}
		progressMu.Lock()
		rowsDone++
		opts.Progress(rowsDone, opts.Height)
		progressMu.Unlock()
	}

	if !opts.Multithreading {
		rng := rand.New(rand.NewSource(seed))
		for y := 0; y < opts.Height; y++ {
			renderRow(img, sc, opts, y, rng)
			reportRow()
		}
		return img
	}

	workers := opts.Workers
	if workers <= 0 {
		workers = runtime.GOMAXPROCS(0)
	}

	rows := make(chan int, opts.Height)
	for y := 0; y < opts.Height; y++ {
		rows <- y
	}
	close(rows)

	var wg sync.WaitGroup
	for w := 0; w < workers; w++ {
		wg.Add(1)
		rng := rand.New(rand.NewSource(seed + int64(w)))
		go func(rng *rand.Rand) {
			defer wg.Done()
			for y := range rows {
				renderRow(img, sc, opts, y, rng)
				reportRow()
			}
		}(rng)
	}
	wg.Wait()

	return img
}

// renderRow fills every pixel of row y. Rows never overlap in the pixels
// they touch, so no synchronization is needed on img.Pixels itself.
func renderRow(img *Image, sc *scene.Scene, opts Options, y int, rng *rand.Rand) {
	w, h := opts.Width, opts.Height
	for x := 0; x < w; x++ {
		color := pmath.Vec3{}
		for s := 0; s < opts.SamplesPerPixel; s++ {
			u := (float32(x) + rng.Float32()) / float32(w-1)
			v := (float32(h-(y+1)) + rng.Float32()) / float32(h-1)
			ray := sc.Camera.GetRay(rng, u, v)
			sample := integrator.Radiance(ray, sc, opts.MaxDepth, rng)
			color.X += sample.R
			color.Y += sample.G
			color.Z += sample.B
		}

		n := float32(opts.SamplesPerPixel)
		off := img.At(x, y)
		img.Pixels[off+0] = toneMap(color.X, n)
		img.Pixels[off+1] = toneMap(color.Y, n)
		img.Pixels[off+2] = toneMap(color.Z, n)
	}
}

// toneMap applies gamma-2 correction to an accumulated channel sum of n
// samples and quantizes it to 8 bits.
func toneMap(sum, n float32) byte {
	avg := sum / n
	gamma := float32(stdmath.Sqrt(float64(avg)))
	if gamma < 0 {
		gamma = 0
	}
	if gamma > 0.999 {
		gamma = 0.999
	}
	return byte(256 * gamma)
}
