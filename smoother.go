package magnetic

import "math"

// DefaultSnapEpsilon is the residual below which Lerp snaps to its target.
const DefaultSnapEpsilon = 0.001

// Lerp moves a toward b by the fraction n. When a and b are closer than eps
// the result is exactly b, so repeated application reaches the target in a
// finite number of steps and then stays there.
func Lerp(a, b, n, eps float64) float64 {
	if math.Abs(a-b) < eps {
		return b
	}
	return (1-n)*a + n*b
}

// SmoothedAxis is the exponential smoothing state of one translated axis.
// Current is the target written every frame; Previous is the rendered value
// and only ever moves toward Current. Amt must lie in (0, 1].
type SmoothedAxis struct {
	Previous float64
	Current  float64
	Amt      float64
}

// Step advances Previous toward Current and returns the new value.
func (a *SmoothedAxis) Step(eps float64) float64 {
	a.Previous = Lerp(a.Previous, a.Current, a.Amt, eps)
	return a.Previous
}

// Settled reports whether Previous has reached Current.
func (a *SmoothedAxis) Settled() bool {
	return a.Previous == a.Current
}
