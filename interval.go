package termplot

import (
	"fmt"
	"math"
)

// Interval is the closed range [Low, High].
//
// The zero value is used by option structs to mean "not set".
type Interval struct {
	Low  float64
	High float64
}

// Iv returns the interval [low, high].
func Iv(low, high float64) Interval {
	return Interval{Low: low, High: high}
}

// Span returns the smallest interval containing every value of s. It returns
// the zero interval for empty input.
func Span(s []float64) Interval {
	if len(s) == 0 {
		return Interval{}
	}
	return Interval{Low: minAlways(s, 0), High: maxAlways(s, 0)}
}

func (iv Interval) String() string {
	return fmt.Sprintf("[%g, %g]", iv.Low, iv.High)
}

func (iv Interval) Splat() (float64, float64) {
	return iv.Low, iv.High
}

// Width returns High − Low.
func (iv Interval) Width() float64 {
	return iv.High - iv.Low
}

// Center returns the midpoint of the interval.
func (iv Interval) Center() float64 {
	return 0.5 * (iv.Low + iv.High)
}

// Pad widens the interval by p times its width on both sides.
//
// Padding a padded interval by zero returns it unchanged.
func (iv Interval) Pad(p float64) Interval {
	w := iv.Width()
	return Interval{
		Low:  iv.Low - p*w,
		High: iv.High + p*w,
	}
}

// PadRange is [Interval.Pad] on a pair of floats.
func PadRange(low, high, p float64) (float64, float64) {
	return Iv(low, high).Pad(p).Splat()
}

// Inflate widens the interval by d on both sides.
func (iv Interval) Inflate(d float64) Interval {
	return Interval{Low: iv.Low - d, High: iv.High + d}
}

func (iv Interval) Contains(x float64) bool {
	return x >= iv.Low && x <= iv.High
}

// IsZero reports whether iv is the zero interval.
func (iv Interval) IsZero() bool {
	return iv == Interval{}
}

// IsEmpty reports whether the interval has no positive width.
func (iv Interval) IsEmpty() bool {
	return !(iv.High > iv.Low)
}

// IsNaN reports whether at least one bound is NaN.
func (iv Interval) IsNaN() bool {
	return math.IsNaN(iv.Low) || math.IsNaN(iv.High)
}

// IsInf reports whether at least one bound is infinite.
func (iv Interval) IsInf() bool {
	return math.IsInf(iv.Low, 0) || math.IsInf(iv.High, 0)
}

// nonDegenerate widens empty or unusable intervals so that they can be used
// as a plot axis.
func (iv Interval) nonDegenerate() Interval {
	if iv.IsNaN() || iv.IsInf() {
		return Interval{Low: -1, High: 1}
	}
	if iv.IsEmpty() {
		return iv.Inflate(1)
	}
	return iv
}
