package termplot

import (
	"math"
	"strings"
)

// ArrayPlot draws a table with one glyph per value. Distinct values are
// spread evenly over the gradient in ascending order and NaN is drawn as
// [NaNGlyph]. The gradient defaults to the smallest one that can tell all
// values apart.
//
// Row 0 of table is the top row. With axes, the vertical axis counts rows
// from the top.
func ArrayPlot(table [][]float64, opts PlotOptions) Plot {
	vals := distinctValues(table)
	grad := opts.Gradient
	if len(grad) == 0 {
		grad = ChooseGradient(len(vals))
	}
	glyphs := make(map[float64]string, len(vals))
	for i, gi := range SubdivideRound(0, len(grad)-1, len(vals)) {
		glyphs[vals[i]] = grad[gi]
	}

	body := make([]string, len(table))
	w := 0
	for y, row := range table {
		var sb strings.Builder
		for _, v := range row {
			if math.IsNaN(v) {
				sb.WriteRune(NaNGlyph)
				continue
			}
			sb.WriteString(glyphs[v])
		}
		body[y] = sb.String()
		w = max(w, len(row))
	}
	viewport := Rect{X0: 0, Y0: float64(len(table)), X1: float64(w), Y1: 0}
	return opts.plot(body, viewport)
}

// DensityPlot bins the values of table into bins levels between its
// smallest and largest value and plots the levels with [ArrayPlot].
func DensityPlot(table [][]float64, bins int, opts PlotOptions) Plot {
	var all []float64
	for _, row := range table {
		all = append(all, row...)
	}
	iv := Iv(minAlways(all, 0), maxAlways(all, 0))
	levels := make([][]float64, len(table))
	for y, row := range table {
		levels[y] = Bin(row, bins, iv)
	}
	return ArrayPlot(levels, opts)
}
