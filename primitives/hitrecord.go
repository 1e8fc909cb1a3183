package primitives

import (
	"pathtracer/materials"
	pmath "pathtracer/math"
)

// HitRecord describes where and how a ray struck a primitive. Normal
// always opposes the incoming ray direction; FrontFace records which side
// of the surface was struck so materials (Dielectric in particular) can
// tell entry from exit.
type HitRecord struct {
	Point     pmath.Vec3
	Normal    pmath.Vec3
	T         float32
	Material  materials.Material
	FrontFace bool
}

// SetFaceNormal orients Normal to oppose rayDir and records FrontFace,
// given the geometric (not necessarily outward-facing) outwardNormal.
func (h *HitRecord) SetFaceNormal(rayDir, outwardNormal pmath.Vec3) {
	h.FrontFace = rayDir.Dot(outwardNormal) < 0
	if h.FrontFace {
		h.Normal = outwardNormal
	} else {
		h.Normal = outwardNormal.Negate()
	}
}
