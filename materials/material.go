// Package materials implements the small closed set of surface materials
// the integrator scatters rays against: Lambertian, Metal, Dielectric and
// Mirror. A Material is a plain value (tagged by Kind) rather than an
// interface, since the set of variants is fixed and never grows from
// outside this package.
package materials

import (
	"math/rand"

	"pathtracer/core"
	pmath "pathtracer/math"
)

// Kind tags which scatter law a Material uses.
type Kind int

const (
	Lambertian Kind = iota
	Metal
	Dielectric
	Mirror
)

// Material is a tagged union: only the fields relevant to Kind are
// meaningful. Albedo is the diffuse/metal reflectance; Fuzz perturbs Metal
// reflections; IOR is the Dielectric index of refraction.
type Material struct {
	Kind   Kind
	Albedo core.Color
	Fuzz   float32
	IOR    float32
}

// NewLambertian builds a diffuse material with the given albedo.
func NewLambertian(albedo core.Color) Material {
	return Material{Kind: Lambertian, Albedo: albedo}
}

// NewMetal builds a reflective material. fuzz is clamped to [0, 1].
func NewMetal(albedo core.Color, fuzz float32) Material {
	if fuzz > 1 {
		fuzz = 1
	}
	if fuzz < 0 {
		fuzz = 0
	}
	return Material{Kind: Metal, Albedo: albedo, Fuzz: fuzz}
}

// NewDielectric builds a refractive material with the given index of
// refraction (e.g. 1.5 for glass).
func NewDielectric(ior float32) Material {
	return Material{Kind: Dielectric, IOR: ior}
}

// NewMirror builds a perfect reflector with white attenuation.
func NewMirror() Material {
	return Material{Kind: Mirror}
}

// Scatter computes the outgoing ray and its attenuation for a ray that hit
// this material at point, with surface normal normal (already oriented to
// oppose rayIn.Direction) and frontFace recording whether the hit was on
// the outward-facing side. ok is false when the material absorbs the ray
// (Metal and Mirror reflections that would go back into the surface).
func (m Material) Scatter(rng *rand.Rand, rayIn pmath.Ray, point, normal pmath.Vec3, frontFace bool) (scattered pmath.Ray, attenuation core.Color, ok bool) {
	switch m.Kind {
	case Lambertian:
		return scatterLambertian(rng, point, normal, m.Albedo)
	case Metal:
		return scatterMetal(rng, rayIn, point, normal, m.Albedo, m.Fuzz)
	case Dielectric:
		return scatterDielectric(rng, rayIn, point, normal, frontFace, m.IOR)
	default:
		return scatterMirror(rayIn, point, normal)
	}
}

func scatterLambertian(rng *rand.Rand, point, normal pmath.Vec3, albedo core.Color) (pmath.Ray, core.Color, bool) {
	direction := normal.Add(pmath.RandomUnitVector(rng))
	return pmath.NewRay(point, direction), albedo, true
}

func scatterMetal(rng *rand.Rand, rayIn pmath.Ray, point, normal pmath.Vec3, albedo core.Color, fuzz float32) (pmath.Ray, core.Color, bool) {
	reflected := rayIn.Direction.Normalize().Reflect(normal)
	direction := reflected.Add(pmath.RandomUnitVector(rng).Mul(fuzz))
	scattered := pmath.NewRay(point, direction)
	if direction.Dot(normal) <= 0 {
		return scattered, albedo, false
	}
	return scattered, albedo, true
}

func scatterMirror(rayIn pmath.Ray, point, normal pmath.Vec3) (pmath.Ray, core.Color, bool) {
	reflected := rayIn.Direction.Normalize().Reflect(normal)
	scattered := pmath.NewRay(point, reflected)
	if reflected.Dot(normal) <= 0 {
		return scattered, core.ColorWhite, false
	}
	return scattered, core.ColorWhite, true
}

// scatterDielectric follows the incoming ray through a refractive surface,
// stochastically choosing between refraction and reflection weighted by
// the Schlick approximation of Fresnel reflectance. frontFace tells us
// which side of the surface the ray arrived on, since normal has already
// been flipped to oppose rayIn.
func scatterDielectric(rng *rand.Rand, rayIn pmath.Ray, point, normal pmath.Vec3, frontFace bool, ior float32) (pmath.Ray, core.Color, bool) {
	dir := rayIn.Direction.Normalize()
	reflected := dir.Reflect(normal)

	var outwardNormal pmath.Vec3
	var niOverNt float32
	var cosine float32
	if frontFace {
		outwardNormal = normal
		niOverNt = 1.0 / ior
		cosine = -dir.Dot(normal)
	} else {
		outwardNormal = normal
		niOverNt = ior
		cosine = -dir.Dot(normal) * ior
	}

	if refracted, didRefract := dir.Refract(outwardNormal, niOverNt); didRefract {
		if rng.Float32() > schlick(cosine, ior) {
			return pmath.NewRay(point, refracted), core.ColorWhite, true
		}
	}
	return pmath.NewRay(point, reflected), core.ColorWhite, true
}

// schlick approximates Fresnel reflectance at the given cosine angle and
// index of refraction.
func schlick(cosine, ior float32) float32 {
	r0 := (1 - ior) / (1 + ior)
	r0 = r0 * r0
	return r0 + (1-r0)*pow5(1-cosine)
}

func pow5(x float32) float32 {
	x2 := x * x
	return x2 * x2 * x
}
