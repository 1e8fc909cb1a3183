package integrator

import (
	"math/rand"
	"testing"

	"pathtracer/materials"
	pmath "pathtracer/math"
	"pathtracer/primitives"
	"pathtracer/scene"
)

// TestRadianceStopsAtMaxDepth checks that a mirror surface, which always
// scatters, cannot smuggle any light past the depth cutoff: with one bounce
// of budget the recursion bottoms out on the unconditional depth<=0 return
// before the scattered ray ever reaches anything past the first mirror.
func TestRadianceStopsAtMaxDepth(t *testing.T) {
	mirror := primitives.NewSphere(pmath.Vec3{X: 0, Y: 0, Z: -5}, 1, materials.NewMirror())
	sc := scene.NewScene(scene.Camera{}, nil, []primitives.Primitive{mirror})

	ray := pmath.NewRay(pmath.Vec3{X: 0, Y: 0, Z: 0}, pmath.Vec3{X: 0, Y: 0, Z: -1})
	rng := rand.New(rand.NewSource(1))

	got := Radiance(ray, sc, 1, rng)
	if got.R != 0 || got.G != 0 || got.B != 0 {
		t.Errorf("expected a single bounce of budget to yield pure black, got %v", got)
	}
}

func TestRadianceMissIsSkyGradient(t *testing.T) {
	sc := scene.NewScene(scene.Camera{}, nil, nil)
	ray := pmath.NewRay(pmath.Vec3{}, pmath.Vec3{X: 0, Y: 1, Z: 0})
	rng := rand.New(rand.NewSource(1))

	got := Radiance(ray, sc, 5, rng)
	if got != skyTop {
		t.Errorf("expected straight-up ray to saturate to skyTop, got %v want %v", got, skyTop)
	}
}
