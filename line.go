package termplot

import (
	"math"
	"sort"
)

// Line represents a line segment between two data points.
type Line struct {
	P0 Point
	P1 Point
}

// Eval returns the y value of the line through the segment at x. Vertical
// segments evaluate to the mean of their endpoints.
func (l Line) Eval(x float64) float64 {
	dx := l.P1.X - l.P0.X
	if dx == 0 {
		return 0.5 * (l.P0.Y + l.P1.Y)
	}
	return l.P0.Lerp(l.P1, (x-l.P0.X)/dx).Y
}

// Interpolate returns the piecewise linear function through pts. Outside of
// the points' extent the function is constant. Without points it returns NaN
// everywhere.
func Interpolate(pts []Point) func(float64) float64 {
	pts = sortPointsByX(pts)
	return func(x float64) float64 {
		switch {
		case len(pts) == 0 || math.IsNaN(x):
			return math.NaN()
		case x <= pts[0].X:
			return pts[0].Y
		case x >= pts[len(pts)-1].X:
			return pts[len(pts)-1].Y
		}
		i := sort.Search(len(pts), func(i int) bool { return pts[i].X > x })
		return Line{pts[i-1], pts[i]}.Eval(x)
	}
}
