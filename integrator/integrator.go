// Package integrator implements the recursive Monte-Carlo path tracing
// estimator: scatter at the nearest surface, recurse along the scattered
// ray, and darken the result by a per-light shadow factor.
package integrator

import (
	stdmath "math"
	"math/rand"

	"pathtracer/core"
	pmath "pathtracer/math"
	"pathtracer/scene"
)

// shadowBias nudges a shadow ray's origin off the surface to avoid
// immediately re-hitting the point it started from.
const shadowBias = 0.01

// shadowAttenuation is multiplied into the shadow factor for every light
// a point cannot see.
var shadowAttenuation = core.Color{R: 0.3, G: 0.3, B: 0.3, A: 1}

var (
	skyTop    = core.Color{R: 0.68, G: 0.80, B: 1.00, A: 1}
	skyBottom = core.Color{R: 1, G: 1, B: 1, A: 1}
)

// Radiance estimates the incoming light along ray, recursing up to depth
// bounces. rng supplies all randomness for material scattering; it must
// not be shared across concurrent calls.
func Radiance(ray pmath.Ray, sc *scene.Scene, depth int, rng *rand.Rand) core.Color {
	if depth <= 0 {
		return core.Color{A: 1}
	}

	hit, ok := sc.NearestHit(ray, 0.001, float32(stdmath.Inf(1)))
	if !ok {
		return skyGradient(ray)
	}

	scattered, attenuation, ok := hit.Material.Scatter(rng, ray, hit.Point, hit.Normal, hit.FrontFace)
	if !ok {
		return core.Color{A: 1}
	}

	shadow := core.Color{R: 1, G: 1, B: 1, A: 1}
	for _, light := range sc.Lights {
		dir := light.Sub(hit.Point).Normalize()
		origin := hit.Point.Add(dir.Mul(shadowBias))
		maxDist := origin.Sub(light).Length()
		if sc.Occluded(pmath.NewRay(origin, dir), 0.01, maxDist/2) {
			shadow = shadow.MulColor(shadowAttenuation)
		}
	}

	incoming := Radiance(scattered, sc, depth-1, rng)
	return attenuation.MulColor(incoming).MulColor(shadow)
}

func skyGradient(ray pmath.Ray) core.Color {
	unit := ray.Direction.Normalize()
	t := 0.5 * (unit.Y + 1)
	return skyBottom.Mul(1 - t).Add(skyTop.Mul(t))
}
