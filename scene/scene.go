package scene

import (
	pmath "pathtracer/math"
	"pathtracer/octree"
	"pathtracer/primitives"
)

// Scene owns the frozen set of primitives, lights and camera a render
// pass draws from. It is immutable after NewScene returns: all queries
// are thin wrappers over the octree built at construction time.
type Scene struct {
	Camera Camera
	Lights []pmath.Vec3
	tree   *octree.Node
}

// NewScene builds the acceleration structure over primitives once and
// freezes it for the lifetime of the render.
func NewScene(camera Camera, lights []pmath.Vec3, items []primitives.Primitive) *Scene {
	return &Scene{
		Camera: camera,
		Lights: lights,
		tree:   octree.Build(items),
	}
}

// NearestHit finds the closest primitive intersection along ray within
// (tMin, tMax).
func (s *Scene) NearestHit(ray pmath.Ray, tMin, tMax float32) (primitives.HitRecord, bool) {
	return s.tree.Hit(ray, tMin, tMax)
}

// Occluded reports whether anything blocks ray within (tMin, tMax). It
// runs the same query as NearestHit and discards the record; any hit
// suffices to consider the segment blocked.
func (s *Scene) Occluded(ray pmath.Ray, tMin, tMax float32) bool {
	_, hit := s.tree.Hit(ray, tMin, tMax)
	return hit
}
