package termplot

import (
	"math"
	"slices"
	"strings"
)

// grid is a rectangular table of glyphs, row 0 at the top.
type grid [][]rune

func newGrid(sz Size, fill rune) grid {
	g := make(grid, max(sz.Height, 0))
	for y := range g {
		g[y] = slices.Repeat([]rune{fill}, max(sz.Width, 0))
	}
	return g
}

// parseGrid splits body into rows, padding short rows with spaces.
func parseGrid(body []string) grid {
	g := make(grid, len(body))
	w := 0
	for y, row := range body {
		g[y] = []rune(row)
		w = max(w, len(g[y]))
	}
	for y := range g {
		for len(g[y]) < w {
			g[y] = append(g[y], ' ')
		}
	}
	return g
}

func (g grid) width() int {
	if len(g) == 0 {
		return 0
	}
	return len(g[0])
}

func (g grid) set(x, y int, r rune) {
	if y >= 0 && y < len(g) && x >= 0 && x < len(g[y]) {
		g[y][x] = r
	}
}

func (g grid) lines() []string {
	out := make([]string, len(g))
	for y, row := range g {
		out[y] = string(row)
	}
	return out
}

// pad surrounds g with fill.
func (g grid) pad(fill rune, left, right, top, bottom int) grid {
	w := g.width()
	out := newGrid(Sz(left+w+right, top+len(g)+bottom), fill)
	for y, row := range g {
		copy(out[top+y][left:], row)
	}
	return out
}

// trimRight removes the trailing blank columns shared by all rows.
func (g grid) trimRight() grid {
	trim := -1
	for _, row := range g {
		n := 0
		for n < len(row) && row[len(row)-1-n] == ' ' {
			n++
		}
		if trim < 0 || n < trim {
			trim = n
		}
	}
	if trim <= 0 {
		return g
	}
	for y := range g {
		g[y] = g[y][:len(g[y])-trim]
	}
	return g
}

func joinLines(lines []string) string {
	return strings.Join(lines, "\n")
}

// Bin maps every value to the index of the first of bins equal-width bins
// spanning iv that contains it. Values outside of iv map to bin 0 and NaN
// stays NaN.
func Bin(values []float64, bins int, iv Interval) []float64 {
	edges := Subdivide(iv.Low, iv.High, bins+1)
	out := make([]float64, len(values))
	for i, v := range values {
		if math.IsNaN(v) {
			out[i] = math.NaN()
			continue
		}
		for b := 0; b+1 < len(edges); b++ {
			if edges[b] <= v && v <= edges[b+1] {
				out[i] = float64(b)
				break
			}
		}
	}
	return out
}

// distinctValues returns the sorted distinct non-NaN values of table.
func distinctValues(table [][]float64) []float64 {
	var all []float64
	for _, row := range table {
		all = append(all, row...)
	}
	all = slices.DeleteFunc(all, math.IsNaN)
	slices.Sort(all)
	return slices.Compact(all)
}

// cellCounts counts the points falling into each cell of a sz grid laid over
// viewport. Points outside of the viewport are not counted.
func cellCounts(pts []Point, viewport Rect, sz Size) [][]int {
	out := make([][]int, max(sz.Height, 0))
	for y := range out {
		out[y] = make([]int, max(sz.Width, 0))
	}
	aff := CellTransform(viewport, sz)
	for _, pt := range pts {
		if x, y, ok := cellOf(pt, viewport, aff, sz); ok {
			out[y][x]++
		}
	}
	return out
}

// cellOf returns the cell containing pt. Points on the top or right border
// belong to the last row or column.
func cellOf(pt Point, viewport Rect, aff Affine, sz Size) (int, int, bool) {
	if !pt.isFinite() || !viewport.Contains(pt) {
		return 0, 0, false
	}
	c := pt.Transform(aff).Floor()
	x := min(max(int(c.X), 0), sz.Width-1)
	y := min(max(int(c.Y), 0), sz.Height-1)
	return x, y, sz.Width > 0 && sz.Height > 0
}

// packBits renders a table of sub-cells with a subdivision glyph set. The
// table is padded with unset sub-cells to a multiple of the glyph size.
func packBits(bits [][]bool, set Subdivision) grid {
	h := len(bits)
	w := 0
	if h > 0 {
		w = len(bits[0])
	}
	out := newGrid(Sz(ceilDiv(w, set.W), ceilDiv(h, set.H)), ' ')
	for cy := range out {
		for cx := range out[cy] {
			idx := 0
			for sx := range set.W {
				for sy := range set.H {
					x, y := cx*set.W+sx, cy*set.H+sy
					if y < h && x < len(bits[y]) && bits[y][x] {
						idx |= 1 << set.Bit(sx, sy)
					}
				}
			}
			out[cy][cx] = set.Glyphs[idx]
		}
	}
	return out
}
