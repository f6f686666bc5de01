// Package termplot renders numbers as grids of glyphs for display in a
// terminal: tables of values, functions of one variable, point sets and
// regions of the plane. Brightness, density and shape are approximated with
// gradients of glyphs and with glyphs that subdivide a cell into smaller
// dots.
//
// # Features
//
// We provide the following notable features:
//
//   - Automatic discovery of a plot domain for a black-box function (see
//     [DeterminePlotDomain])
//   - Stationary point search for functions of one variable (see
//     [StationaryPoints])
//   - Function and line plots (see [FunctionPlot] and [LinePlot])
//   - Scatter plots using dots, quadrant blocks or braille (see [ScatterPlot])
//   - Region plots of boolean predicates (see [RegionPlot])
//   - Array and density plots (see [ArrayPlot] and [DensityPlot])
//   - Labelled axes and titles (see [Plot])
//
// # Domain discovery
//
// A function is only known by its values. [DeterminePlotDomain] probes it
// over a wide window and classifies it first: constant functions and affine
// functions get fixed domains, the latter widened to include the function's
// zero. For everything else we collect the stationary points of f and of
// its numeric derivative, that is its extrema and the points at which its
// curvature changes, and return the span of those points with a margin.
// Functions that show too little structure fall back to points where the
// slope is one, to their zeros and finally to cusps.
//
// Derivatives are computed with a centered finite difference of step [D].
// Functions whose features are smaller than that should be rescaled first.
//
// [StationaryPoints] never fails. It samples a window, recursively refines
// every triple of samples across which the slope changes sign and widens the
// window as long as that keeps producing points. Functions with unboundedly
// many points, such as periodic functions, are cut off and reported as
// [SearchResult.Unbounded], together with the few points closest to zero.
//
// # Coordinates
//
// Plot coordinates are y-up: a [Rect] viewport spans the domain [X0, X1]
// and the range [Y0, Y1], and [CellTransform] maps it onto glyph cells with
// row 0 at the top. Bodies of plots are returned as one string per row.
//
// # Concurrency
//
// All functions are safe for concurrent use. Sampling can be spread over
// several goroutines with [SearchOptions.Workers], in which case the
// function being searched must be safe for concurrent use as well. Results
// do not depend on the number of workers.
package termplot
