// Command raytrace renders a scene description file to a PNG image.
package main

import (
	"flag"
	"fmt"
	"image"
	"image/color"
	"image/png"
	"io"
	"os"

	"pathtracer"
	"pathtracer/render"
)

func main() {
	scenePath := flag.String("scene", "", "path to a scene description file (reads stdin if omitted)")
	outPath := flag.String("out", "out.png", "path to write the rendered PNG")
	workers := flag.Int("workers", 0, "worker pool size (0 = GOMAXPROCS)")
	flag.Parse()

	text, err := readScene(*scenePath)
	if err != nil {
		fmt.Fprintln(os.Stderr, "raytrace:", err)
		os.Exit(1)
	}

	img, err := pathtracer.Render(text, render.Options{
		Workers: *workers,
		Progress: func(rowsDone, totalRows int) {
			fmt.Fprintf(os.Stderr, "\rrendering: row %d/%d", rowsDone, totalRows)
		},
	})
	if err != nil {
		fmt.Fprintln(os.Stderr, "\nraytrace:", err)
		os.Exit(1)
	}
	fmt.Fprintln(os.Stderr)

	if err := writePNG(*outPath, img); err != nil {
		fmt.Fprintln(os.Stderr, "raytrace:", err)
		os.Exit(1)
	}
}

func readScene(path string) (string, error) {
	if path == "" {
		data, err := io.ReadAll(os.Stdin)
		if err != nil {
			return "", fmt.Errorf("reading scene from stdin: %w", err)
		}
		return string(data), nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return "", fmt.Errorf("reading scene file %q: %w", path, err)
	}
	return string(data), nil
}

func writePNG(path string, img *render.Image) error {
	out := image.NewRGBA(image.Rect(0, 0, img.Width, img.Height))
	for y := 0; y < img.Height; y++ {
		for x := 0; x < img.Width; x++ {
			off := img.At(x, y)
			out.Set(x, y, color.RGBA{
				R: img.Pixels[off+0],
				G: img.Pixels[off+1],
				B: img.Pixels[off+2],
				A: 255,
			})
		}
	}

	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("creating output file %q: %w", path, err)
	}
	defer f.Close()

	if err := png.Encode(f, out); err != nil {
		return fmt.Errorf("encoding PNG: %w", err)
	}
	return nil
}
