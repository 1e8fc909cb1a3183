package octree

import (
	"math/rand"
	"testing"

	"pathtracer/core"
	"pathtracer/materials"
	pmath "pathtracer/math"
	"pathtracer/primitives"
)

func bruteForceHit(items []primitives.Primitive, ray pmath.Ray, tMin, tMax float32) (primitives.HitRecord, bool) {
	var best primitives.HitRecord
	found := false
	closest := tMax
	for _, p := range items {
		if rec, ok := p.Hit(ray, tMin, closest); ok {
			found = true
			closest = rec.T
			best = rec
		}
	}
	return best, found
}

func TestOctreeMatchesBruteForce(t *testing.T) {
	mat := materials.NewLambertian(core.Color{R: 0.8, G: 0.8, B: 0.8, A: 1})
	rng := rand.New(rand.NewSource(1))

	var items []primitives.Primitive
	for i := 0; i < 1000; i++ {
		center := pmath.Vec3{
			X: rng.Float32()*40 - 20,
			Y: rng.Float32()*40 - 20,
			Z: rng.Float32()*40 - 20,
		}
		radius := 0.1 + rng.Float32()*0.4
		items = append(items, primitives.NewSphere(center, radius, mat))
	}

	tree := Build(items)

	for i := 0; i < 500; i++ {
		origin := pmath.Vec3{X: rng.Float32()*60 - 30, Y: rng.Float32()*60 - 30, Z: rng.Float32()*60 - 30}
		dir := pmath.Vec3{X: rng.Float32()*2 - 1, Y: rng.Float32()*2 - 1, Z: rng.Float32()*2 - 1}
		ray := pmath.NewRay(origin, dir)

		wantRec, wantHit := bruteForceHit(items, ray, 0.001, 1e9)
		gotRec, gotHit := tree.Hit(ray, 0.001, 1e9)

		if wantHit != gotHit {
			t.Fatalf("ray %d: brute force hit=%v, octree hit=%v", i, wantHit, gotHit)
		}
		if wantHit && (gotRec.T < wantRec.T-1e-3 || gotRec.T > wantRec.T+1e-3) {
			t.Fatalf("ray %d: brute force t=%v, octree t=%v", i, wantRec.T, gotRec.T)
		}
	}
}

func TestEmptyOctreeNeverHits(t *testing.T) {
	tree := Build(nil)
	ray := pmath.NewRay(pmath.Vec3{}, pmath.Vec3{X: 0, Y: 0, Z: 1})
	if _, ok := tree.Hit(ray, 0.001, 1e9); ok {
		t.Errorf("expected an empty octree never to report a hit")
	}
}
