package math

// AABB is an axis-aligned bounding box. Min[a] <= Max[a] is expected for
// every axis but is not itself enforced; degenerate (zero-extent) boxes
// are permitted, since the slab test below handles them correctly via
// IEEE infinities.
type AABB struct {
	Min Vec3
	Max Vec3
}

func NewAABB(min, max Vec3) AABB {
	return AABB{Min: min, Max: max}
}

// Union returns the smallest AABB containing both a and b.
func Union(a, b AABB) AABB {
	return AABB{
		Min: Vec3{X: min32(a.Min.X, b.Min.X), Y: min32(a.Min.Y, b.Min.Y), Z: min32(a.Min.Z, b.Min.Z)},
		Max: Vec3{X: max32(a.Max.X, b.Max.X), Y: max32(a.Max.Y, b.Max.Y), Z: max32(a.Max.Z, b.Max.Z)},
	}
}

// Hit is the standard slab test: for each axis, compute the entry/exit t of
// the ray against that axis's slab, shrinking [tMin, tMax] as it goes.
// Division by a zero direction component is allowed to propagate ±Inf;
// the comparisons below still reject correctly, so no zero-check is needed.
func (b AABB) Hit(r Ray, tMin, tMax float32) bool {
	for axis := 0; axis < 3; axis++ {
		invD := 1.0 / r.Direction.Component(axis)
		t0 := (b.Min.Component(axis) - r.Origin.Component(axis)) * invD
		t1 := (b.Max.Component(axis) - r.Origin.Component(axis)) * invD
		if invD < 0 {
			t0, t1 = t1, t0
		}
		if t0 > tMin {
			tMin = t0
		}
		if t1 < tMax {
			tMax = t1
		}
		if tMax <= tMin {
			return false
		}
	}
	return true
}

// Overlaps reports whether b and other share any volume on every axis.
func (b AABB) Overlaps(other AABB) bool {
	for axis := 0; axis < 3; axis++ {
		if b.Max.Component(axis) < other.Min.Component(axis) || other.Max.Component(axis) < b.Min.Component(axis) {
			return false
		}
	}
	return true
}

// Inflate grows the box by eps on every side, used at octree build time to
// keep primitives straddling a child boundary from falling outside every
// child due to floating-point error (spec edge case).
func (b AABB) Inflate(eps float32) AABB {
	e := Vec3{X: eps, Y: eps, Z: eps}
	return AABB{Min: b.Min.Sub(e), Max: b.Max.Add(e)}
}

func min32(a, b float32) float32 {
	if a < b {
		return a
	}
	return b
}

func max32(a, b float32) float32 {
	if a > b {
		return a
	}
	return b
}
