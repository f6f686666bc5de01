package termplot

import (
	"math"
	"strings"
	"testing"
	"unicode/utf8"

	"go.uber.org/goleak"
)

func noPadding() PlotOptions {
	opts := DefaultPlotOptions()
	opts.DomainPadding = 0
	opts.RangePadding = 0
	opts.Axes = false
	return opts
}

func TestFunctionPlotLine(t *testing.T) {
	opts := noPadding()
	opts.Domain = Iv(0, 1)
	opts.Range = Iv(0, 1.5)
	p := FunctionPlot(func(x float64) float64 { return x }, opts)

	if len(p.Body) != 10 {
		t.Fatalf("got %d rows, want 10", len(p.Body))
	}
	for _, row := range p.Body {
		if n := utf8.RuneCountInString(row); n != 60 {
			t.Errorf("got row of %d glyphs, want 60", n)
		}
	}
	s := p.String()
	for _, r := range []rune{lineFlatLow, lineFlatMid, lineFlatHigh} {
		if !strings.ContainsRune(s, r) {
			t.Errorf("plot lacks %q:\n%s", r, s)
		}
	}
	// The line rises to the right, so the top row is only reached late.
	if strings.TrimRight(p.Body[0], " ") != "" && strings.IndexFunc(p.Body[0], func(r rune) bool { return r != ' ' }) < 30 {
		t.Errorf("top row starts too early:\n%s", s)
	}
	if strings.IndexRune(p.Body[len(p.Body)-1], lineFlatMid) != 0 {
		t.Errorf("bottom row should start the line:\n%s", s)
	}
}

func TestFunctionPlotDrop(t *testing.T) {
	opts := noPadding()
	opts.Size = Sz(4, 6)
	opts.Domain = Iv(0, 4)
	opts.Range = Iv(0, 6)
	step := func(x float64) float64 {
		if x < 2 {
			return 5.5
		}
		return 0.5
	}
	got := FunctionPlot(step, opts).Body
	want := []string{
		"―_  ",
		" |  ",
		" |  ",
		" |  ",
		" |  ",
		"  ‾―",
	}
	diff(t, want, got)
}

func TestFunctionPlotNaN(t *testing.T) {
	opts := noPadding()
	opts.Size = Sz(4, 3)
	opts.Domain = Iv(0, 4)
	opts.Range = Iv(0, 3)
	f := func(x float64) float64 {
		if x > 2 {
			return math.NaN()
		}
		return 1.5
	}
	got := FunctionPlot(f, opts).Body
	diff(t, []string{"    ", "――  ", "    "}, got)
}

func TestFunctionPlotDiscoversDomain(t *testing.T) {
	defer goleak.VerifyNone(t)

	opts := DefaultPlotOptions()
	opts.DomainOptions.Search.Workers = 4
	p := FunctionPlot(func(x float64) float64 { return (x-5)*(x-5) + 8 }, opts)
	if !(p.Viewport.X0 < 5 && p.Viewport.X1 > 5) {
		t.Errorf("viewport %v misses the minimum", p.Viewport)
	}
	lines := p.Lines()
	// Body rows plus the axis and its labels.
	if len(lines) != 12 {
		t.Errorf("got %d lines, want 12", len(lines))
	}
}

func TestLinePlot(t *testing.T) {
	opts := noPadding()
	opts.Size = Sz(6, 3)
	pts := []Point{Pt(0, 0), Pt(3, 3), Pt(6, 0)}
	got := LinePlot(pts, opts)
	diff(t, NewRect(Iv(0, 6), Iv(0, 3)), got.Viewport)
	want := []string{
		"  __  ",
		" /  \\ ",
		"‾    ‾",
	}
	diff(t, want, got.Body)
}

func TestScatterPlot(t *testing.T) {
	opts := noPadding()
	opts.Size = Sz(5, 5)
	got := ScatterPlot([]Point{Pt(1, 2), Pt(3, 4), Pt(5, 6)}, opts).String()
	want := strings.Join([]string{
		"    ●",
		"     ",
		"  ●  ",
		"     ",
		"●    ",
	}, "\n")
	diff(t, want, got)
}

func TestScatterPlotBraille(t *testing.T) {
	opts := noPadding()
	opts.Size = Sz(2, 1)
	opts.Glyphs = Braille
	got := ScatterPlot([]Point{Pt(0, 0), Pt(4, 4)}, opts).Body
	diff(t, []string{"⡀⠈"}, got)
}

func TestChooseSubdivision(t *testing.T) {
	sparse := []Point{Pt(0, 0), Pt(1, 1)}
	vp := NewRect(Iv(0, 1), Iv(0, 1))
	if got := chooseSubdivision(sparse, vp, Sz(10, 10)); got.W != Dots.W || got.H != Dots.H {
		t.Errorf("got %d×%d glyphs for sparse points, want dots", got.W, got.H)
	}
	var crowded []Point
	for i := range 1000 {
		x := float64(i) / 1000
		crowded = append(crowded, Pt(x, x))
	}
	if got := chooseSubdivision(crowded, vp, Sz(10, 10)); got.H != Braille.H {
		t.Errorf("got %d×%d glyphs for crowded points, want braille", got.W, got.H)
	}
}

func TestRegionPlot(t *testing.T) {
	opts := noPadding()
	opts.Size = Sz(4, 2)
	opts.Domain = Iv(-1, 1)
	opts.Range = Iv(-1, 1)
	got := RegionPlot(func(x, y float64) bool { return x < 0.5 }, opts).Body
	diff(t, []string{"██▌ ", "██▌ "}, got)
}

func TestRegionPlotRows(t *testing.T) {
	opts := noPadding()
	opts.Size = Sz(2, 2)
	opts.Domain = Iv(0, 1)
	opts.Range = Iv(0, 1)
	// Only the lower half of the plane, which is the bottom row.
	got := RegionPlot(func(x, y float64) bool { return y < 0.25 }, opts).Body
	diff(t, []string{"  ", "▄▄"}, got)
}

func TestArrayPlot(t *testing.T) {
	opts := noPadding()
	got := ArrayPlot([][]float64{{0, 1}, {2, math.NaN()}}, opts).Body
	diff(t, []string{" ▒", "█�"}, got)

	opts.Gradient = []string{"a", "b"}
	got = ArrayPlot([][]float64{{5, 7, 5}}, opts).Body
	diff(t, []string{"aba"}, got)
}

func TestArrayPlotAxes(t *testing.T) {
	opts := DefaultPlotOptions()
	p := ArrayPlot([][]float64{{0, 1}, {1, 0}}, opts)
	diff(t, Rect{X0: 0, Y0: 2, X1: 2, Y1: 0}, p.Viewport)
	if lines := p.Lines(); len(lines) != 4 {
		t.Errorf("got %d lines, want 4:\n%s", len(lines), p)
	}
}

func TestDensityPlot(t *testing.T) {
	got := DensityPlot([][]float64{{0, 0.5, 1}}, 2, noPadding()).Body
	diff(t, []string{"  █"}, got)
}
