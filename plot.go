package termplot

// Plot is a rendered plot.
type Plot struct {
	// Body holds one string per row of glyphs, top row first.
	Body []string
	// Viewport is the region of the plane shown by Body.
	Viewport Rect
	Title    string
	// Axes enables labelled axes around the body.
	Axes bool
}

// Lines returns the rows of the decorated plot.
func (p Plot) Lines() []string {
	lines := p.Body
	if p.Axes {
		lines = addAxes(lines, p.Viewport)
	}
	if p.Title != "" {
		lines = append([]string{p.Title}, lines...)
	}
	return lines
}

// String returns the decorated plot, rows separated by newlines.
func (p Plot) String() string {
	return joinLines(p.Lines())
}

// PlotOptions configures the plot functions. Start from
// [DefaultPlotOptions]; zero sizes, intervals and glyph sets are computed.
type PlotOptions struct {
	// Size is the size of the body in cells.
	Size Size
	// Domain and Range are the visible intervals before padding.
	Domain Interval
	Range  Interval
	// DomainPadding and RangePadding are fractions of the widths added to
	// both sides of the domain and range.
	DomainPadding float64
	RangePadding  float64
	Title         string
	Axes          bool
	// Glyphs is the subdivision glyph set of scatter plots.
	Glyphs Subdivision
	// Gradient is the gradient of array plots.
	Gradient []string
	// DomainOptions tunes domain discovery of function plots.
	DomainOptions DomainOptions
}

// DefaultPlotOptions returns options with axes enabled and 10% padding.
func DefaultPlotOptions() PlotOptions {
	return PlotOptions{
		DomainPadding: 0.1,
		RangePadding:  0.1,
		Axes:          true,
		DomainOptions: DefaultDomainOptions(),
	}
}

var (
	lineSize    = Sz(60, 10)
	scatterSize = Sz(60, 30)
)

func (opts PlotOptions) plot(body []string, viewport Rect) Plot {
	return Plot{
		Body:     body,
		Viewport: viewport,
		Title:    opts.Title,
		Axes:     opts.Axes,
	}
}
