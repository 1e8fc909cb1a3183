package materials

import (
	"math/rand"
	"testing"

	"pathtracer/core"
	pmath "pathtracer/math"
)

func TestMirrorScatterReflectsTwiceBackOnItself(t *testing.T) {
	mirror := NewMirror()
	rng := rand.New(rand.NewSource(1))

	normal := pmath.Vec3{X: 0, Y: 1, Z: 0}
	point := pmath.Vec3{}
	incoming := pmath.NewRay(pmath.Vec3{X: -1, Y: 1, Z: 0}, pmath.Vec3{X: 1, Y: -1, Z: 0})

	scattered, _, ok := mirror.Scatter(rng, incoming, point, normal, true)
	if !ok {
		t.Fatalf("expected mirror reflection off a flat surface to succeed")
	}

	// Reflecting the reflected direction off the same normal undoes the
	// first reflection.
	back := scattered.Direction.Reflect(normal)
	original := incoming.Direction.Normalize()
	if back.Sub(original).Length() > 1e-4 {
		t.Errorf("expected double reflection to return the original direction, got %v want %v", back, original)
	}
}

func TestMetalScatterWithZeroFuzzMatchesMirror(t *testing.T) {
	metal := NewMetal(core.Color{R: 1, G: 1, B: 1, A: 1}, 0)
	rng := rand.New(rand.NewSource(1))

	normal := pmath.Vec3{X: 0, Y: 1, Z: 0}
	incoming := pmath.NewRay(pmath.Vec3{X: -1, Y: 1, Z: 0}, pmath.Vec3{X: 1, Y: -1, Z: 0})

	scattered, _, ok := metal.Scatter(rng, incoming, pmath.Vec3{}, normal, true)
	if !ok {
		t.Fatalf("expected a non-grazing metal reflection to succeed")
	}
	if scattered.Direction.Dot(normal) <= 0 {
		t.Errorf("expected reflection to point away from the surface, got %v", scattered.Direction)
	}

	mirrored, _, _ := NewMirror().Scatter(rng, incoming, pmath.Vec3{}, normal, true)
	if scattered.Direction != mirrored.Direction {
		t.Errorf("expected zero-fuzz metal to reflect like a mirror, got %v want %v", scattered.Direction, mirrored.Direction)
	}
}

func TestDielectricScatterAlwaysProducesARay(t *testing.T) {
	glass := NewDielectric(1.5)
	rng := rand.New(rand.NewSource(7))
	normal := pmath.Vec3{X: 0, Y: 1, Z: 0}

	for i := 0; i < 50; i++ {
		incoming := pmath.NewRay(pmath.Vec3{}, pmath.Vec3{X: float32(i) * 0.01, Y: -1, Z: 0})
		_, attenuation, ok := glass.Scatter(rng, incoming, pmath.Vec3{}, normal, true)
		if !ok {
			t.Fatalf("expected dielectric scatter to always produce a ray")
		}
		if attenuation != (core.Color{R: 1, G: 1, B: 1, A: 1}) {
			t.Errorf("expected white attenuation, got %v", attenuation)
		}
	}
}

func TestSchlickBounds(t *testing.T) {
	for _, cosine := range []float32{0, 0.25, 0.5, 0.75, 1} {
		r := schlick(cosine, 1.5)
		if r < 0 || r > 1 {
			t.Errorf("schlick(%v, 1.5) = %v, want a value in [0,1]", cosine, r)
		}
	}
}
