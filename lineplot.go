package termplot

// LinePlot plots the piecewise linear function through pts. The domain and
// range default to the extent of the points.
func LinePlot(pts []Point, opts PlotOptions) Plot {
	sz := opts.Size.Or(lineSize)
	bounds, _ := NewRectFromPoints(pts)
	domain, rng := opts.Domain, opts.Range
	if domain.IsZero() {
		domain = bounds.Domain()
	}
	if rng.IsZero() {
		rng = bounds.Range()
	}
	viewport := NewRect(domain, rng).nonDegenerate().Pad(opts.DomainPadding, opts.RangePadding)
	return opts.plot(renderFunction(Interpolate(pts), viewport, sz), viewport)
}
