package termplot

import (
	"cmp"
	"math"
	"slices"
)

// DistinctFloats sorts list and drops values that lie within eps of their
// sorted predecessor. NaN values are always dropped. The comparison is against
// the predecessor in the sorted input, whether it was kept or not, so a dense
// run of values collapses to its first element.
//
// With eps == 0 the values are returned unsorted.
func DistinctFloats(list []float64, eps float64) []float64 {
	out := slices.DeleteFunc(slices.Clone(list), math.IsNaN)
	if eps == 0 || len(out) <= 1 {
		return out
	}
	slices.Sort(out)
	prev := out[0]
	n := 1
	for _, v := range out[1:] {
		if math.Abs(v-prev) > eps {
			out[n] = v
			n++
		}
		prev = v
	}
	return out[:n]
}

// SortedLeast sorts list by magnitude and keeps the n values closest to zero.
// A negative n keeps everything.
func SortedLeast(list []float64, n int) []float64 {
	out := slices.Clone(list)
	slices.SortStableFunc(out, func(a, b float64) int {
		return cmp.Compare(math.Abs(a), math.Abs(b))
	})
	if n >= 0 && n < len(out) {
		out = out[:n]
	}
	return out
}
