package termplot

// Rect is a plot viewport: the domain [X0, X1] times the range [Y0, Y1], in
// plot coordinates with y pointing up.
type Rect struct {
	X0, Y0 float64
	X1, Y1 float64
}

// NewRect returns the viewport domain × rng.
func NewRect(domain, rng Interval) Rect {
	return Rect{
		X0: domain.Low,
		Y0: rng.Low,
		X1: domain.High,
		Y1: rng.High,
	}
}

// NewRectFromPoints returns the smallest rectangle containing all finite
// points of pts. It reports false if there are none.
func NewRectFromPoints(pts []Point) (Rect, bool) {
	var r Rect
	ok := false
	for _, pt := range pts {
		if !pt.isFinite() {
			continue
		}
		if !ok {
			r = Rect{pt.X, pt.Y, pt.X, pt.Y}
			ok = true
			continue
		}
		r = r.UnionPoint(pt)
	}
	return r, ok
}

// Domain returns the horizontal extent.
func (r Rect) Domain() Interval {
	return Iv(r.X0, r.X1)
}

// Range returns the vertical extent.
func (r Rect) Range() Interval {
	return Iv(r.Y0, r.Y1)
}

// Width returns the rectangle's width, defined as X1 − X0. It may be negative.
func (r Rect) Width() float64 {
	return r.X1 - r.X0
}

// Height returns the rectangle's height, defined as Y1 − Y0. It may be negative.
func (r Rect) Height() float64 {
	return r.Y1 - r.Y0
}

// Contains reports whether pt lies in r, borders included.
func (r Rect) Contains(pt Point) bool {
	return pt.X >= r.X0 &&
		pt.X <= r.X1 &&
		pt.Y >= r.Y0 &&
		pt.Y <= r.Y1
}

// UnionPoint computes the union with one point.
//
// A succession of UnionPoint operations on a series of points yields their
// enclosing rectangle.
func (r Rect) UnionPoint(pt Point) Rect {
	return Rect{
		X0: min(r.X0, pt.X),
		Y0: min(r.Y0, pt.Y),
		X1: max(r.X1, pt.X),
		Y1: max(r.Y1, pt.Y),
	}
}

// Pad pads the domain by dx and the range by dy times their widths.
func (r Rect) Pad(dx, dy float64) Rect {
	return NewRect(r.Domain().Pad(dx), r.Range().Pad(dy))
}

// nonDegenerate widens empty axes so that the viewport can be mapped onto
// cells.
func (r Rect) nonDegenerate() Rect {
	return NewRect(r.Domain().nonDegenerate(), r.Range().nonDegenerate())
}
