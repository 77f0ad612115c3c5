package magnetic

import "math"

// TriggerRadius returns the distance below which the magnetic pull activates
// for an element of the given bounding width. It is computed once per
// controller and never tracks later resizes.
func TriggerRadius(width, scale float64) float64 {
	return scale * width
}

// Center returns the center of r.
func Center(r Rect) Vec2 {
	return Vec2{r.X + r.Width/2, r.Y + r.Height/2}
}

// Distance returns the Euclidean distance between a and b.
func Distance(a, b Vec2) float64 {
	return math.Hypot(a.X-b.X, a.Y-b.Y)
}

// Map remaps x from the range [a, b] to [c, d]. The result is not clamped.
// A degenerate source range (a == b) maps everything to c.
func Map(x, a, b, c, d float64) float64 {
	if a == b {
		return c
	}
	return (x-a)*(d-c)/(b-a) + c
}
