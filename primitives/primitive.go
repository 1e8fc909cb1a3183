// Package primitives implements the intersectable shapes a scene is built
// from and the HitRecord they return.
package primitives

import (
	"pathtracer/materials"
	pmath "pathtracer/math"
)

// Kind tags which shape a Primitive holds.
type Kind int

const (
	Sphere Kind = iota
	Triangle
)

// Primitive is a closed tagged variant over the shapes a ray can be tested
// against: a Sphere or a Triangle. Both are immutable value types for the
// lifetime of the scene; dispatch on Kind replaces a dynamic-dispatch
// interface so the octree's hot Hit loop never indirects through an
// itable.
type Primitive struct {
	Kind     Kind
	Material materials.Material
	box      pmath.AABB

	// Sphere fields.
	Center pmath.Vec3
	Radius float32

	// Triangle fields. Normal is the precomputed, unnormalized-input-free
	// face normal; no per-vertex normal interpolation.
	P0, P1, P2 pmath.Vec3
	Normal     pmath.Vec3
	Cull       bool
}

// AABB returns the primitive's precomputed bounding box.
func (p Primitive) AABB() pmath.AABB { return p.box }

// Hit tests the ray against the primitive within the parametric window
// (tMin, tMax), returning the nearest qualifying intersection.
func (p Primitive) Hit(ray pmath.Ray, tMin, tMax float32) (HitRecord, bool) {
	switch p.Kind {
	case Sphere:
		return p.hitSphere(ray, tMin, tMax)
	default:
		return p.hitTriangle(ray, tMin, tMax)
	}
}
