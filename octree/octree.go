// Package octree implements the spatial acceleration structure the scene
// uses to avoid testing every primitive against every ray: an octree that
// splits a node's bounding box into 8 children at its midpoint whenever a
// node holds too many primitives and is still larger than one unit across.
package octree

import (
	pmath "pathtracer/math"
	"pathtracer/primitives"
)

// maxInLeaf and maxDepth bound when a node stops splitting: a node with
// maxInLeaf or fewer primitives, or one already maxDepth deep, becomes a
// leaf regardless of its size.
const (
	maxInLeaf = 12
	maxDepth  = 8
)

// splitEpsilon pads each octant slightly so a primitive straddling a split
// plane by a hair's width of floating-point error still lands fully
// inside every overlapping child rather than slipping out of all of them.
const splitEpsilon = 0.001

// Node is one octree node: either a leaf holding primitives directly, or
// an interior node with exactly 8 children (some of which may be empty).
type Node struct {
	box      pmath.AABB
	isLeaf   bool
	items    []primitives.Primitive
	children [8]*Node
}

// Build constructs an octree over items. An empty items slice yields a
// degenerate root that never hits anything.
func Build(items []primitives.Primitive) *Node {
	if len(items) == 0 {
		return &Node{isLeaf: true}
	}
	box := items[0].AABB()
	for _, p := range items[1:] {
		box = pmath.Union(box, p.AABB())
	}
	return build(box, items, 0)
}

func build(box pmath.AABB, items []primitives.Primitive, depth int) *Node {
	diff := box.Max.Sub(box.Min)
	splits := len(items) > maxInLeaf &&
		(diff.X > 1.0 || diff.Y > 1.0 || diff.Z > 1.0) &&
		box.Min.Distance(box.Max) > 1.0 &&
		depth < maxDepth

	if !splits {
		return &Node{box: box, isLeaf: true, items: items}
	}

	mid := pmath.Vec3{
		X: (box.Min.X + box.Max.X) / 2,
		Y: (box.Min.Y + box.Max.Y) / 2,
		Z: (box.Min.Z + box.Max.Z) / 2,
	}
	childBoxes := octants(box.Min, box.Max, mid)

	node := &Node{box: box, isLeaf: false}
	for i, childBox := range childBoxes {
		inflated := childBox.Inflate(splitEpsilon)
		var childItems []primitives.Primitive
		for _, p := range items {
			if inflated.Overlaps(p.AABB()) {
				childItems = append(childItems, p)
			}
		}
		node.children[i] = build(childBox, childItems, depth+1)
	}
	return node
}

// octants computes the 8 sub-boxes of [min, max] split at mid, in the
// fixed order: (x,y,z) each independently low or high half.
func octants(min, max, mid pmath.Vec3) [8]pmath.AABB {
	return [8]pmath.AABB{
		pmath.NewAABB(pmath.Vec3{X: min.X, Y: min.Y, Z: min.Z}, pmath.Vec3{X: mid.X, Y: mid.Y, Z: mid.Z}),
		pmath.NewAABB(pmath.Vec3{X: min.X, Y: mid.Y, Z: min.Z}, pmath.Vec3{X: mid.X, Y: max.Y, Z: mid.Z}),
		pmath.NewAABB(pmath.Vec3{X: mid.X, Y: min.Y, Z: min.Z}, pmath.Vec3{X: max.X, Y: mid.Y, Z: mid.Z}),
		pmath.NewAABB(pmath.Vec3{X: mid.X, Y: mid.Y, Z: min.Z}, pmath.Vec3{X: max.X, Y: max.Y, Z: mid.Z}),
		pmath.NewAABB(pmath.Vec3{X: min.X, Y: min.Y, Z: mid.Z}, pmath.Vec3{X: mid.X, Y: mid.Y, Z: max.Z}),
		pmath.NewAABB(pmath.Vec3{X: min.X, Y: mid.Y, Z: mid.Z}, pmath.Vec3{X: mid.X, Y: max.Y, Z: max.Z}),
		pmath.NewAABB(pmath.Vec3{X: mid.X, Y: min.Y, Z: mid.Z}, pmath.Vec3{X: max.X, Y: mid.Y, Z: max.Z}),
		pmath.NewAABB(pmath.Vec3{X: mid.X, Y: mid.Y, Z: mid.Z}, pmath.Vec3{X: max.X, Y: max.Y, Z: max.Z}),
	}
}

// Hit returns the nearest primitive intersection along ray within
// (tMin, tMax), recursing into every child whose box the ray passes
// through and shrinking the search window to the closest hit found so
// far so deeper children can be rejected early.
func (n *Node) Hit(ray pmath.Ray, tMin, tMax float32) (primitives.HitRecord, bool) {
	if !n.box.Hit(ray, tMin, tMax) {
		return primitives.HitRecord{}, false
	}

	var best primitives.HitRecord
	found := false
	closest := tMax

	if n.isLeaf {
		for _, p := range n.items {
			if rec, ok := p.Hit(ray, tMin, closest); ok {
				found = true
				closest = rec.T
				best = rec
			}
		}
		return best, found
	}

	for _, child := range n.children {
		if child == nil {
			continue
		}
		if rec, ok := child.Hit(ray, tMin, closest); ok {
			found = true
			closest = rec.T
			best = rec
		}
	}
	return best, found
}
