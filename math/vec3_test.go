package math

import (
	"math"
	"testing"
)

func TestVec3Reflect(t *testing.T) {
	v := Vec3{X: 1, Y: -1, Z: 0}
	n := Vec3{X: 0, Y: 1, Z: 0}

	result := v.Reflect(n)
	expected := Vec3{X: 1, Y: 1, Z: 0}
	if result != expected {
		t.Errorf("Reflect: expected %v, got %v", expected, result)
	}
}

func TestVec3RefractTotalInternalReflection(t *testing.T) {
	// A grazing ray going from a denser to a less dense medium refracts
	// past the critical angle and should report no refraction.
	v := Vec3{X: 1, Y: -0.01, Z: 0}.Normalize()
	n := Vec3{X: 0, Y: 1, Z: 0}

	_, ok := v.Refract(n, 1.5)
	if ok {
		t.Errorf("expected total internal reflection to report ok=false")
	}
}

func TestVec3RefractStraightThrough(t *testing.T) {
	v := Vec3{X: 0, Y: -1, Z: 0}
	n := Vec3{X: 0, Y: 1, Z: 0}

	out, ok := v.Refract(n, 1.0)
	if !ok {
		t.Fatalf("expected a ray hitting head-on with matching indices to refract")
	}
	if math.Abs(float64(out.Sub(v).Length())) > 1e-4 {
		t.Errorf("expected straight-through refraction with ior 1.0, got %v", out)
	}
}
