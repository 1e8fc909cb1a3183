// Package core holds the small shared value types used across the path
// tracer (color) that don't belong to any single subsystem.
package core

// Color is a linear RGB triple with alpha, used for material albedo,
// scatter and shadow attenuation, and the accumulated-radiance values the
// integrator produces before tone-mapping.
type Color struct {
	R, G, B, A float32
}

var (
	ColorWhite = Color{1, 1, 1, 1}
	ColorBlack = Color{0, 0, 0, 1}
)

// Mul scales every channel (alpha included) by s.
func (c Color) Mul(s float32) Color {
	return Color{R: c.R * s, G: c.G * s, B: c.B * s, A: c.A * s}
}

// MulColor is component-wise (Hadamard) multiplication, used to combine
// attenuation, shadow factor, and incoming radiance.
func (c Color) MulColor(o Color) Color {
	return Color{R: c.R * o.R, G: c.G * o.G, B: c.B * o.B, A: c.A * o.A}
}

// Add is component-wise addition.
func (c Color) Add(o Color) Color {
	return Color{R: c.R + o.R, G: c.G + o.G, B: c.B + o.B, A: c.A + o.A}
}
