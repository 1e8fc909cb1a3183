package scene

import (
	stdmath "math"
	"math/rand"

	pmath "pathtracer/math"
)

// Camera is an immutable pinhole-with-thin-lens camera. All of its
// derived basis vectors and corners are computed once at construction;
// GetRay only samples the lens and interpolates.
type Camera struct {
	origin          pmath.Vec3
	horizontal      pmath.Vec3
	vertical        pmath.Vec3
	lowerLeftCorner pmath.Vec3
	u, v, w         pmath.Vec3
	lensRadius      float32
}

// NewCamera builds a Camera looking from lookFrom toward lookAt, oriented
// by up, with vertical field of view vfov in degrees, the given aspect
// ratio, and a thin lens of diameter aperture focused at focusDist.
// aperture 0 degenerates to a pinhole (no depth of field).
func NewCamera(lookFrom, lookAt, up pmath.Vec3, vfov, aspect, aperture, focusDist float32) Camera {
	theta := vfov * float32(stdmath.Pi) / 180
	h := float32(stdmath.Tan(float64(theta / 2)))
	viewportHeight := 2 * h
	viewportWidth := aspect * viewportHeight

	w := lookFrom.Sub(lookAt).Normalize()
	u := up.Cross(w).Normalize()
	v := w.Cross(u)

	horizontal := u.Mul(focusDist * viewportWidth)
	vertical := v.Mul(focusDist * viewportHeight)

	return Camera{
		origin:          lookFrom,
		horizontal:      horizontal,
		vertical:        vertical,
		lowerLeftCorner: lookFrom.Sub(horizontal.Mul(0.5)).Sub(vertical.Mul(0.5)).Sub(w.Mul(focusDist)),
		u:               u,
		v:               v,
		w:               w,
		lensRadius:      aperture / 2,
	}
}

// GetRay returns the ray through viewport coordinates (s, t), where both
// range over [0, 1]. rng drives the lens sample for depth of field.
func (c Camera) GetRay(rng *rand.Rand, s, t float32) pmath.Ray {
	rd := pmath.RandomInUnitDisk(rng).Mul(c.lensRadius)
	offset := c.u.Mul(rd.X).Add(c.v.Mul(rd.Y))

	target := c.lowerLeftCorner.Add(c.horizontal.Mul(s)).Add(c.vertical.Mul(t))
	direction := target.Sub(c.origin).Sub(offset)
	return pmath.NewRay(c.origin.Add(offset), direction)
}
