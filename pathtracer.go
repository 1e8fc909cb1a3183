// Package pathtracer is the library entry point: parse a scene
// description and render it to an image.
package pathtracer

import (
	"pathtracer/render"
	"pathtracer/scenefile"
)

// Render parses sceneText and draws it, overriding the parsed image
// dimensions and sample/depth counts with any non-zero fields set in
// opts, and always honoring opts.Workers, opts.Seed and opts.Progress
// (the text format has no opinion on those).
func Render(sceneText string, opts render.Options) (*render.Image, error) {
	cfg, err := scenefile.Parse(sceneText)
	if err != nil {
		return nil, err
	}

	resolved := cfg.Options
	if opts.Width != 0 {
		resolved.Width = opts.Width
	}
	if opts.Height != 0 {
		resolved.Height = opts.Height
	}
	if opts.SamplesPerPixel != 0 {
		resolved.SamplesPerPixel = opts.SamplesPerPixel
	}
	if opts.MaxDepth != 0 {
		resolved.MaxDepth = opts.MaxDepth
	}
	resolved.Workers = opts.Workers
	resolved.Seed = opts.Seed
	resolved.Progress = opts.Progress

	return render.Render(cfg.Scene, resolved), nil
}
