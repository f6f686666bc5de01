package termplot

// ScatterPlot marks every point of pts that lies in the viewport.
//
// Without [PlotOptions.Glyphs] the glyph set is picked from how crowded the
// cells are: sparse plots use one dot per cell, crowded plots use braille.
func ScatterPlot(pts []Point, opts PlotOptions) Plot {
	sz := opts.Size.Or(scatterSize)
	bounds, _ := NewRectFromPoints(pts)
	domain, rng := opts.Domain, opts.Range
	if domain.IsZero() {
		domain = bounds.Domain()
	}
	if rng.IsZero() {
		rng = bounds.Range()
	}
	viewport := NewRect(domain, rng).nonDegenerate().Pad(opts.DomainPadding, opts.RangePadding)

	set := opts.Glyphs
	if set.IsZero() {
		set = chooseSubdivision(pts, viewport, sz)
	}
	sub := sz.Sub(set.W, set.H)
	counts := cellCounts(pts, viewport, sub)
	bits := make([][]bool, len(counts))
	for y, row := range counts {
		bits[y] = make([]bool, len(row))
		for x, n := range row {
			bits[y][x] = n > 0
		}
	}
	return opts.plot(packBits(bits, set).lines(), viewport)
}

func chooseSubdivision(pts []Point, viewport Rect, sz Size) Subdivision {
	n := 0
	for _, pt := range pts {
		if pt.isFinite() {
			n++
		}
	}
	total, most := 0, 0
	for _, row := range cellCounts(pts, viewport, sz) {
		for _, c := range row {
			total += c
			most = max(most, c)
		}
	}
	mean := float64(total) / float64(max(sz.Area(), 1))
	switch {
	case mean <= 1 && most*ceilDiv(n, 20) <= 2:
		return Dots
	case mean <= 1.5 || most*ceilDiv(n, 10) <= 4:
		return Blocks
	default:
		return Braille
	}
}
