package termplot

// FunctionPlot plots f as a single line of glyphs, one per column.
//
// Without a domain, the domain is discovered with [DeterminePlotDomainOpt].
// Without a range, the range spans the finite values of f at one sample per
// column. Both are then padded.
func FunctionPlot(f func(float64) float64, opts PlotOptions) Plot {
	sz := opts.Size.Or(lineSize)
	domain := opts.Domain
	if domain.IsZero() {
		domain = DeterminePlotDomainOpt(f, opts.DomainOptions)
	}
	rng := opts.Range
	if rng.IsZero() {
		smp := sampler{workers: opts.DomainOptions.Search.Workers}
		rng = Span(filterFinite(smp.sample(f, Subdivide(domain.Low, domain.High, sz.Width))))
	}
	viewport := NewRect(domain, rng).nonDegenerate().Pad(opts.DomainPadding, opts.RangePadding)
	return opts.plot(renderFunction(f, viewport, sz), viewport)
}

// maxRow bounds row indices of off-screen values.
const maxRow = 1 << 20

// renderFunction draws f over viewport. Every column gets a glyph picked
// from the rows of its two neighbors, and steep drops are filled with
// vertical bars. Columns where f is not finite stay blank.
func renderFunction(f func(float64) float64, viewport Rect, sz Size) []string {
	g := newGrid(sz, ' ')
	cpux := float64(sz.Width) / viewport.Width()
	cpuy := float64(sz.Height) / viewport.Height()

	// One extra column on both sides for the neighbors of the outer columns.
	rows := make([]int, sz.Width+2)
	ok := make([]bool, sz.Width+2)
	for c := -1; c <= sz.Width; c++ {
		x := viewport.X0 + (float64(c)+0.5)/cpux
		r := (viewport.Y1-f(x))*cpuy - 0.5
		if isFinite(r) {
			rows[c+1] = int(min(max(r, -maxRow), maxRow))
			ok[c+1] = true
		}
	}

	for i := range sz.Width {
		if !ok[i+1] {
			continue
		}
		yc := rows[i+1]
		var l, r int
		if ok[i] {
			l = yc - rows[i]
		}
		if ok[i+2] {
			r = yc - rows[i+2]
		}
		if lowest := min(l, r); lowest < -1 {
			for d := lowest + 1; d < 0; d++ {
				g.set(i, yc-d, lineVertical)
			}
		}
		g.set(i, yc, functionGlyph(l, r))
	}
	return g.lines()
}

// functionGlyph picks the glyph of a column from the row differences to its
// left and right neighbors. Positive differences mean the neighbor is higher.
func functionGlyph(l, r int) rune {
	l, r = min(max(l, -1), 1), min(max(r, -1), 1)
	switch {
	case l == 0 && r == 0:
		return lineFlatMid
	case l == -1 && r == 1:
		return lineUp
	case l == 1 && r == -1:
		return lineDown
	case l == 1 || r == 1:
		return lineFlatHigh
	default:
		return lineFlatLow
	}
}
