package termplot

import (
	"cmp"
	"math"
	"slices"
)

// D is the step of the centered finite difference used by [DerAt].
//
// Functions whose features live below this scale should be rescaled by the
// caller instead.
const D = 1e-6

const halfInvD = 0.5 / D

// DerAt approximates f'(x) with a centered finite difference. NaN and
// infinities propagate.
func DerAt(f func(float64) float64, x float64) float64 {
	return (f(x+D) - f(x-D)) * halfInvD
}

// Der returns the numeric derivative of f.
func Der(f func(float64) float64) func(float64) float64 {
	return func(x float64) float64 {
		return DerAt(f, x)
	}
}

// Subdivide returns n evenly spaced values from low to high, both inclusive.
func Subdivide(low, high float64, n int) []float64 {
	switch {
	case n <= 0:
		return nil
	case n == 1:
		return []float64{low}
	}
	out := make([]float64, n)
	step := (high - low) / float64(n-1)
	for i := range out {
		out[i] = low + float64(i)*step
	}
	out[n-1] = high
	return out
}

// SubdivideRound is like [Subdivide] but rounds every value to the nearest
// integer.
func SubdivideRound(low, high, n int) []int {
	fs := Subdivide(float64(low), float64(high), n)
	out := make([]int, len(fs))
	for i, f := range fs {
		out[i] = int(math.Round(f))
	}
	return out
}

// minAlways returns the smallest non-NaN value of s, or def if there is none.
func minAlways(s []float64, def float64) float64 {
	out, ok := def, false
	for _, v := range s {
		if math.IsNaN(v) {
			continue
		}
		if !ok || v < out {
			out, ok = v, true
		}
	}
	return out
}

// maxAlways returns the largest non-NaN value of s, or def if there is none.
func maxAlways(s []float64, def float64) float64 {
	out, ok := def, false
	for _, v := range s {
		if math.IsNaN(v) {
			continue
		}
		if !ok || v > out {
			out, ok = v, true
		}
	}
	return out
}

func ceilDiv(a, b int) int {
	if b == 0 {
		return 0
	}
	return (a + b - 1) / b
}

func isFinite(f float64) bool {
	return !math.IsNaN(f) && !math.IsInf(f, 0)
}

func filterFinite(s []float64) []float64 {
	return slices.DeleteFunc(slices.Clone(s), func(v float64) bool { return !isFinite(v) })
}

// compareNaNLast orders floats ascending with NaN after everything else.
func compareNaNLast(a, b float64) int {
	an, bn := math.IsNaN(a), math.IsNaN(b)
	switch {
	case an && bn:
		return 0
	case an:
		return 1
	case bn:
		return -1
	}
	return cmp.Compare(a, b)
}

func median(s []float64) float64 {
	if len(s) == 0 {
		return math.NaN()
	}
	c := slices.Clone(s)
	slices.SortFunc(c, compareNaNLast)
	return c[len(c)/2]
}
