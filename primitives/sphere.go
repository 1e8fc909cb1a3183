package primitives

import (
	stdmath "math"

	"pathtracer/materials"
	pmath "pathtracer/math"
)

// sphereAABBEpsilon pads a sphere's bounding box slightly beyond its exact
// radius, matching the octree build epsilon so a sphere tangent to a child
// boundary still lands fully inside every overlapping child.
const sphereAABBEpsilon = 0.001

// NewSphere builds a ball-shaped Primitive of the given radius centered at
// center, precomputing its AABB. radius must be > 0.
func NewSphere(center pmath.Vec3, radius float32, material materials.Material) Primitive {
	pad := pmath.Vec3{X: radius + sphereAABBEpsilon, Y: radius + sphereAABBEpsilon, Z: radius + sphereAABBEpsilon}
	return Primitive{
		Kind:     Sphere,
		Material: material,
		Center:   center,
		Radius:   radius,
		box:      pmath.NewAABB(center.Sub(pad), center.Add(pad)),
	}
}

// hitSphere solves |o + t*d - c|^2 = r^2 for t, preferring the smaller root.
func (p Primitive) hitSphere(ray pmath.Ray, tMin, tMax float32) (HitRecord, bool) {
	oc := ray.Origin.Sub(p.Center)
	a := ray.Direction.LengthSqr()
	halfB := oc.Dot(ray.Direction)
	c := oc.LengthSqr() - p.Radius*p.Radius
	disc := halfB*halfB - a*c
	if disc <= 0 {
		return HitRecord{}, false
	}
	sqrtDisc := float32(stdmath.Sqrt(float64(disc)))

	t := (-halfB - sqrtDisc) / a
	if t <= tMin || t >= tMax {
		t = (-halfB + sqrtDisc) / a
		if t <= tMin || t >= tMax {
			return HitRecord{}, false
		}
	}

	point := ray.At(t)
	outwardNormal := point.Sub(p.Center).Div(p.Radius)
	rec := HitRecord{Point: point, T: t, Material: p.Material}
	rec.SetFaceNormal(ray.Direction, outwardNormal)
	return rec, true
}
