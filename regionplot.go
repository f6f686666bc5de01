package termplot

// RegionPlot shades the points of the plane for which pred is true, using
// quadrant blocks so that every cell shows four samples. The viewport
// defaults to [0, width] × [0, height].
func RegionPlot(pred func(x, y float64) bool, opts PlotOptions) Plot {
	sz := opts.Size.Or(scatterSize)
	domain, rng := opts.Domain, opts.Range
	if domain.IsZero() {
		domain = Iv(0, float64(sz.Width))
	}
	if rng.IsZero() {
		rng = Iv(0, float64(sz.Height))
	}
	viewport := NewRect(domain, rng).nonDegenerate().Pad(opts.DomainPadding, opts.RangePadding)

	xs := Subdivide(viewport.X0, viewport.X1, sz.Width)
	ys := Subdivide(viewport.Y0, viewport.Y1, sz.Height)
	dx := halfStep(viewport.Domain(), sz.Width)
	dy := halfStep(viewport.Range(), sz.Height)

	g := newGrid(sz, ' ')
	for j, y := range ys {
		row := len(ys) - 1 - j
		for i, x := range xs {
			idx := 0
			for _, s := range [...]struct {
				sx, sy int
				x, y   float64
			}{
				{0, 0, x, y + dy},
				{0, 1, x, y},
				{1, 0, x + dx, y + dy},
				{1, 1, x + dx, y},
			} {
				if pred(s.x, s.y) {
					idx |= 1 << Blocks.Bit(s.sx, s.sy)
				}
			}
			g[row][i] = Blocks.Glyphs[idx]
		}
	}
	return opts.plot(g.lines(), viewport)
}

// halfStep returns half the distance between n samples spanning iv.
func halfStep(iv Interval, n int) float64 {
	if n <= 1 {
		return 0.5 * iv.Width()
	}
	return 0.5 * iv.Width() / float64(n-1)
}
