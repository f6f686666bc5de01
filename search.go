package termplot

import (
	"cmp"
	"math"
	"slices"

	"golang.org/x/sync/errgroup"
)

// SearchOptions configures [StationaryPoints].
//
// Zero or negative fields take their values from [DefaultSearchOptions].
type SearchOptions struct {
	// Cuts is the number of samples taken across the initial window.
	Cuts int
	// MaxDepth bounds the recursion depth and the number of times the window
	// is extended outwards.
	MaxDepth int
	// MaxPoints is the number of points after which the function is
	// considered to have unboundedly many.
	MaxPoints int
	// Divisor is the factor by which Cuts shrinks at every level. Values
	// below 2 are raised to 2.
	Divisor int
	// IncludeCusps keeps candidates at which the slope jumps.
	IncludeCusps bool
	// CuspTolerance is the slope jump, per unit of interval width, above
	// which a candidate is a cusp.
	CuspTolerance float64
	// RefineSteps is the number of gradient descent steps used to polish a
	// candidate.
	RefineSteps int
	// Workers is the number of goroutines used to evaluate samples. Values
	// of 1 or less sample sequentially. The function must be safe for
	// concurrent use if Workers > 1.
	Workers int
}

// DefaultSearchOptions returns the options used by [DeterminePlotDomain].
func DefaultSearchOptions() SearchOptions {
	return SearchOptions{
		Cuts:          1001,
		MaxDepth:      5,
		MaxPoints:     50,
		Divisor:       5,
		CuspTolerance: 1000,
		RefineSteps:   100,
	}
}

func (opts SearchOptions) normalize() SearchOptions {
	def := DefaultSearchOptions()
	if opts.Cuts <= 0 {
		opts.Cuts = def.Cuts
	}
	if opts.MaxDepth <= 0 {
		opts.MaxDepth = def.MaxDepth
	}
	if opts.MaxPoints <= 0 {
		opts.MaxPoints = def.MaxPoints
	}
	if opts.Divisor <= 0 {
		opts.Divisor = def.Divisor
	}
	opts.Divisor = max(opts.Divisor, 2)
	if opts.CuspTolerance <= 0 {
		opts.CuspTolerance = def.CuspTolerance
	}
	if opts.RefineSteps <= 0 {
		opts.RefineSteps = def.RefineSteps
	}
	return opts
}

// cutsAt returns the number of samples used at depth d.
func (opts SearchOptions) cutsAt(d int) int {
	c := opts.Cuts
	for range d {
		if c <= 1 {
			break
		}
		c /= opts.Divisor
	}
	return c
}

// SearchResult is the outcome of [StationaryPoints].
type SearchResult struct {
	// Unbounded reports that the function appears to have infinitely many
	// stationary points, for example because it is periodic. Points then
	// holds a few representatives closest to zero.
	Unbounded bool
	// Points holds the points found, ordered by distance from zero.
	Points []float64
}

const unboundedSample = 5

type searchTask struct {
	low, high float64
	depth     int
}

// StationaryPoints finds the points in and around [low, high] at which the
// slope of f changes sign.
//
// The window is sampled, and every triple of samples whose slopes differ in
// sign is searched recursively with fewer samples until a triple is too
// narrow to split further. Its midpoint is then polished with gradient
// descent. Once the stack is empty the window is extended by its own width
// in both directions, repeatedly, for as long as that keeps finding points.
//
// Called on [Der](f) it finds the points at which the curvature of f changes.
// The search always terminates: it stops after MaxDepth extensions or
// MaxPoints points, whichever comes first, and reports Unbounded in that case.
func StationaryPoints(f func(float64) float64, low, high float64, opts SearchOptions) SearchResult {
	opts = opts.normalize()
	smp := sampler{workers: opts.Workers}
	df := Der(f)
	width := high - low

	stack := []searchTask{{low, high, 0}}
	var points []float64
	var eps float64
	unbounded := false
	for ext := 0; ; {
		found := len(points)
		for len(stack) > 0 && !unbounded && len(points) < opts.MaxPoints {
			t := stack[len(stack)-1]
			stack = stack[:len(stack)-1]

			c := opts.cutsAt(t.depth)
			if c <= 1 || t.depth >= opts.MaxDepth {
				if !opts.IncludeCusps && !(math.Abs(df(t.low)-df(t.high)) < opts.CuspTolerance*(t.high-t.low)) {
					continue
				}
				eps = max(eps, t.high-t.low)
				points = append(points, gradDescToStat(f, 0.5*(t.low+t.high), opts.RefineSteps))
				continue
			}
			stack = appendCandidates(stack, smp, f, t, c)
		}

		ext++
		unbounded = unbounded || ext > opts.MaxDepth || len(points) >= opts.MaxPoints
		if unbounded || len(points) == found {
			break
		}
		e := float64(ext)
		stack = append(stack,
			searchTask{low + e*width, high + e*width, ext},
			searchTask{low - e*width, high - e*width, ext},
		)
	}

	n := -1
	if unbounded {
		n = unboundedSample
	}
	return SearchResult{
		Unbounded: unbounded,
		Points:    SortedLeast(DistinctFloats(points, eps), n),
	}
}

// appendCandidates samples t and pushes every sub-interval that brackets a
// slope sign change. The sub-interval closest to zero ends up on top.
func appendCandidates(stack []searchTask, smp sampler, f func(float64) float64, t searchTask, c int) []searchTask {
	xs := Subdivide(t.low, t.high, c)
	ys := smp.sample(f, xs)
	n := 0
	for i := range xs {
		if math.IsNaN(ys[i]) {
			continue
		}
		xs[n], ys[n] = xs[i], ys[i]
		n++
	}
	xs, ys = xs[:n], ys[:n]
	if n < 3 {
		return stack
	}

	dy := make([]float64, n-1)
	for i := range dy {
		dy[i] = (ys[i+1] - ys[i]) / (xs[i+1] - xs[i])
	}
	var idx []int
	for i := 0; i+1 < len(dy); i++ {
		if dy[i]*dy[i+1] <= 0 {
			idx = append(idx, i)
		}
	}
	slices.SortStableFunc(idx, func(a, b int) int {
		return cmp.Compare(math.Abs(xs[b]), math.Abs(xs[a]))
	})
	for _, i := range idx {
		stack = append(stack, searchTask{xs[i], xs[i+2], t.depth + 1})
	}
	return stack
}

// sampler evaluates a function at many points, optionally in parallel.
type sampler struct {
	workers int
}

// minChunk is the smallest number of samples worth handing to a goroutine.
const minChunk = 16

func (s sampler) sample(f func(float64) float64, xs []float64) []float64 {
	ys := make([]float64, len(xs))
	if s.workers <= 1 || len(xs) < 2*minChunk {
		for i, x := range xs {
			ys[i] = f(x)
		}
		return ys
	}

	chunk := max(ceilDiv(len(xs), s.workers), minChunk)
	var g errgroup.Group
	g.SetLimit(s.workers)
	for lo := 0; lo < len(xs); lo += chunk {
		hi := min(lo+chunk, len(xs))
		g.Go(func() error {
			for i := lo; i < hi; i++ {
				ys[i] = f(xs[i])
			}
			return nil
		})
	}
	// Workers never fail.
	_ = g.Wait()
	return ys
}
