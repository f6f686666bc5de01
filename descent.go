package termplot

import "math"

const (
	initialTemperature = 1e-8
	divergenceLimit    = 1e32
)

// GradDesc minimizes f starting at start, taking at most steps steps.
//
// The step size (temperature) starts tiny and doubles after every improving
// step and halves after every step that did not strictly improve f, in which
// case the step is undone. A NaN result never counts as an improvement. If
// f diverges past 1e32 the search gives up and returns start.
func GradDesc(f func(float64) float64, start float64, steps int) float64 {
	x := start
	fx := f(x)
	temp := initialTemperature
	for range steps {
		df := DerAt(f, x)
		if df == 0 {
			break
		}
		if math.Abs(fx) > divergenceLimit {
			return start
		}
		nx := x - temp*df
		nfx := f(nx)
		if nfx < fx {
			x, fx = nx, nfx
			temp *= 2
		} else {
			temp *= 0.5
		}
	}
	return x
}

// gradDescToZero looks for a zero of f near start by minimizing f².
func gradDescToZero(f func(float64) float64, start float64, steps int) float64 {
	return GradDesc(func(x float64) float64 {
		y := f(x)
		return y * y
	}, start, steps)
}

// gradDescToStat looks for a stationary point of f near start.
func gradDescToStat(f func(float64) float64, start float64, steps int) float64 {
	return gradDescToZero(Der(f), start, steps)
}
