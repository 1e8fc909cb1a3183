package primitives

import (
	"pathtracer/materials"
	pmath "pathtracer/math"
)

// mollerTrumboreEpsilon guards the e1.h denominator against a ray running
// parallel to the triangle's plane.
const mollerTrumboreEpsilon = 1e-7

// NewTriangle builds a flat, optionally backface-culled triangle Primitive,
// precomputing its face normal and AABB. No per-vertex normal
// interpolation is performed.
func NewTriangle(p0, p1, p2 pmath.Vec3, material materials.Material, cull bool) Primitive {
	normal := p1.Sub(p0).Cross(p2.Sub(p0)).Normalize()
	min := pmath.Vec3{
		X: minOf3(p0.X, p1.X, p2.X),
		Y: minOf3(p0.Y, p1.Y, p2.Y),
		Z: minOf3(p0.Z, p1.Z, p2.Z),
	}
	max := pmath.Vec3{
		X: maxOf3(p0.X, p1.X, p2.X),
		Y: maxOf3(p0.Y, p1.Y, p2.Y),
		Z: maxOf3(p0.Z, p1.Z, p2.Z),
	}
	return Primitive{
		Kind:     Triangle,
		Material: material,
		P0:       p0, P1: p1, P2: p2,
		Normal: normal,
		Cull:   cull,
		box:    pmath.NewAABB(min, max),
	}
}

// hitTriangle implements Möller–Trumbore intersection against the
// triangle's plane.
func (p Primitive) hitTriangle(ray pmath.Ray, tMin, tMax float32) (HitRecord, bool) {
	e1 := p.P1.Sub(p.P0)
	e2 := p.P2.Sub(p.P0)
	h := ray.Direction.Cross(e2)
	a := e1.Dot(h)

	if p.Cull && a < tMin {
		return HitRecord{}, false
	}
	if a > -mollerTrumboreEpsilon && a < mollerTrumboreEpsilon {
		return HitRecord{}, false
	}

	f := 1.0 / a
	s := ray.Origin.Sub(p.P0)
	u := f * s.Dot(h)
	if u < 0 || u > 1 {
		return HitRecord{}, false
	}

	q := s.Cross(e1)
	v := f * ray.Direction.Dot(q)
	if v < 0 || u+v > 1 {
		return HitRecord{}, false
	}

	t := f * e2.Dot(q)
	if t <= tMin || t >= tMax {
		return HitRecord{}, false
	}

	point := ray.At(t)
	rec := HitRecord{Point: point, T: t, Material: p.Material}
	rec.SetFaceNormal(ray.Direction, p.Normal)
	return rec, true
}

func minOf3(a, b, c float32) float32 {
	m := a
	if b < m {
		m = b
	}
	if c < m {
		m = c
	}
	return m
}

func maxOf3(a, b, c float32) float32 {
	m := a
	if b > m {
		m = b
	}
	if c > m {
		m = c
	}
	return m
}
