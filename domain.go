package termplot

import (
	"cmp"
	"math"
	"slices"

	"go.uber.org/zap"
)

// DomainOptions tunes [DeterminePlotDomainOpt].
//
// Zero fields take their values from [DefaultDomainOptions].
type DomainOptions struct {
	// Probe is the window sampled to classify the function and the initial
	// window of every search.
	Probe Interval
	// ProbeSamples is the number of samples taken across Probe when testing
	// whether a derivative vanishes.
	ProbeSamples int

	// A derivative vanishes if every sample is at most LooseZero and the
	// smallest TightFraction of the samples are below TightZero. Both bounds
	// are multiplied by max(1, median |f'|).
	LooseZero     float64
	TightZero     float64
	TightFraction float64
	// CurvatureStep is the step of the second difference used to decide
	// whether f is affine.
	CurvatureStep float64

	// Points further than OutlierLimit from zero are dropped when enough
	// points remain without them.
	OutlierLimit float64
	// If all points lie within NarrowSpread of each other, the points at
	// which |f'| = 1 are added.
	NarrowSpread float64
	// MergeEpsilon is the distance below which points are merged.
	MergeEpsilon float64
	// Padding is the fraction of the width added on both sides of the span
	// of the points.
	Padding float64
	// SinglePointMargin is the half-width of the domain around a single
	// point.
	SinglePointMargin float64
	// Fallback is the domain used when no point was found.
	Fallback Interval
	// ZeroSamples is the number of starting points used to look for zeros.
	ZeroSamples int

	Search SearchOptions

	// Logger receives a debug record per decision. Nil discards them.
	Logger *zap.Logger
}

// DefaultDomainOptions returns the options used by [DeterminePlotDomain].
func DefaultDomainOptions() DomainOptions {
	return DomainOptions{
		Probe:             Iv(-100, 100),
		ProbeSamples:      1001,
		LooseZero:         1e-2,
		TightZero:         1e-6,
		TightFraction:     0.8,
		CurvatureStep:     1e-3,
		OutlierLimit:      1e8,
		NarrowSpread:      0.1,
		MergeEpsilon:      1e-4,
		Padding:           0.5,
		SinglePointMargin: 10,
		Fallback:          Iv(-10, 10),
		ZeroSamples:       201,
		Search:            DefaultSearchOptions(),
	}
}

func (opts DomainOptions) normalize() DomainOptions {
	def := DefaultDomainOptions()
	if opts.Probe.IsEmpty() {
		opts.Probe = def.Probe
	}
	if opts.ProbeSamples <= 0 {
		opts.ProbeSamples = def.ProbeSamples
	}
	if opts.LooseZero <= 0 {
		opts.LooseZero = def.LooseZero
	}
	if opts.TightZero <= 0 {
		opts.TightZero = def.TightZero
	}
	if opts.TightFraction <= 0 || opts.TightFraction > 1 {
		opts.TightFraction = def.TightFraction
	}
	if opts.CurvatureStep <= 0 {
		opts.CurvatureStep = def.CurvatureStep
	}
	if opts.OutlierLimit <= 0 {
		opts.OutlierLimit = def.OutlierLimit
	}
	if opts.NarrowSpread <= 0 {
		opts.NarrowSpread = def.NarrowSpread
	}
	if opts.MergeEpsilon <= 0 {
		opts.MergeEpsilon = def.MergeEpsilon
	}
	if opts.Padding <= 0 {
		opts.Padding = def.Padding
	}
	if opts.SinglePointMargin <= 0 {
		opts.SinglePointMargin = def.SinglePointMargin
	}
	if opts.Fallback.IsEmpty() {
		opts.Fallback = def.Fallback
	}
	if opts.ZeroSamples <= 0 {
		opts.ZeroSamples = def.ZeroSamples
	}
	opts.Search = opts.Search.normalize()
	if opts.Logger == nil {
		opts.Logger = zap.NewNop()
	}
	return opts
}

// pointLimit bounds the magnitude of points kept from a search.
const pointLimit = 1e18

// DeterminePlotDomain returns a domain that shows the interesting parts of
// f: its extrema, the points at which its curvature changes and, for
// functions without either, its zeros.
//
// It uses [DefaultDomainOptions]. The result is always finite.
func DeterminePlotDomain(f func(float64) float64) Interval {
	return DeterminePlotDomainOpt(f, DefaultDomainOptions())
}

// DeterminePlotDomainOpt is like [DeterminePlotDomain] but with custom options.
func DeterminePlotDomainOpt(f func(float64) float64, opts DomainOptions) Interval {
	opts = opts.normalize()
	log := opts.Logger
	df := Der(f)

	if opts.isOnlyZero(df, 1) {
		log.Debug("constant function")
		return Iv(-1, 1).Pad(opts.Padding)
	}
	if opts.isAffine(f, df) {
		zs := opts.zeros(f)
		log.Debug("affine function", zap.Int("zeros", len(zs)))
		return Span(append([]float64{0, 1}, zs...)).Pad(opts.Padding)
	}

	p := append(opts.statPoints(f, false), opts.statPoints(df, false)...)
	log.Debug("stationary and inflection points", zap.Int("points", len(p)))

	if near := slices.DeleteFunc(slices.Clone(p), func(x float64) bool {
		return !(math.Abs(x) < opts.OutlierLimit)
	}); len(near) > 1 {
		p = near
	}
	if len(DistinctFloats(p, opts.NarrowSpread)) <= 1 {
		unitSlope := func(x float64) float64 {
			d := math.Abs(df(x)) - 1
			return d * d
		}
		u := opts.statPoints(unitSlope, false)
		log.Debug("narrow spread, adding unit slope points", zap.Int("points", len(u)))
		p = append(p, u...)
	}
	p = DistinctFloats(p, opts.MergeEpsilon)
	if len(p) <= 1 {
		zs := opts.zeros(f)
		log.Debug("adding zeros", zap.Int("zeros", len(zs)))
		p = DistinctFloats(append(p, zs...), opts.MergeEpsilon)
	}
	if len(p) <= 1 {
		cs := append(opts.statPoints(f, true), opts.statPoints(df, true)...)
		log.Debug("adding cusps", zap.Int("points", len(cs)))
		p = DistinctFloats(append(p, cs...), opts.MergeEpsilon)
	}

	switch len(p) {
	case 0:
		log.Debug("no points, using fallback")
		return opts.Fallback
	case 1:
		log.Debug("single point", zap.Float64("point", p[0]))
		return Iv(p[0], p[0]).Inflate(opts.SinglePointMargin)
	default:
		log.Debug("points", zap.Float64s("points", p))
		return Span(p).Pad(opts.Padding)
	}
}

// isOnlyZero reports whether g vanishes across the probe window, with the
// bounds multiplied by scale.
func (opts DomainOptions) isOnlyZero(g func(float64) float64, scale float64) bool {
	smp := sampler{workers: opts.Search.Workers}
	ys := smp.sample(g, Subdivide(opts.Probe.Low, opts.Probe.High, opts.ProbeSamples))
	loose := opts.LooseZero * scale
	for i, y := range ys {
		y = math.Abs(y)
		if !(y <= loose) {
			return false
		}
		ys[i] = y
	}
	slices.Sort(ys)
	tight := opts.TightZero * scale
	k := int(opts.TightFraction * float64(len(ys)))
	for _, y := range ys[:k] {
		if !(y < tight) {
			return false
		}
	}
	return true
}

// isAffine reports whether the second derivative of f vanishes. The second
// difference uses a step much wider than D so that rounding noise of steep
// lines stays below the tight bound.
func (opts DomainOptions) isAffine(f, df func(float64) float64) bool {
	smp := sampler{workers: opts.Search.Workers}
	xs := Subdivide(opts.Probe.Low, opts.Probe.High, opts.ProbeSamples)
	slopes := smp.sample(df, xs)
	for i, s := range slopes {
		slopes[i] = math.Abs(s)
	}
	scale := median(slopes)
	if !(scale >= 1) {
		scale = 1
	}
	h := opts.CurvatureStep
	curvature := func(x float64) float64 {
		return (f(x+h) - 2*f(x) + f(x-h)) / (h * h)
	}
	return opts.isOnlyZero(curvature, scale)
}

// statPoints returns the finite stationary points of f found around the
// probe window, merged at their average spacing.
func (opts DomainOptions) statPoints(f func(float64) float64, cusps bool) []float64 {
	so := opts.Search
	so.IncludeCusps = cusps
	res := StationaryPoints(f, opts.Probe.Low, opts.Probe.High, so)
	opts.Logger.Debug("search",
		zap.Bool("cusps", cusps),
		zap.Bool("unbounded", res.Unbounded),
		zap.Int("points", len(res.Points)))

	p := filterFinite(res.Points)
	if len(p) > 1 {
		eps := (slices.Max(p) - slices.Min(p)) / float64(len(p))
		p = DistinctFloats(p, eps)
	}
	return slices.DeleteFunc(p, func(x float64) bool { return !(math.Abs(x) < pointLimit) })
}

const zeroSteps = 100

// zeros returns approximate zeros of f. Every sample of the probe window is
// descended towards a zero of f², and the results within a factor of ten of
// the best one are kept.
func (opts DomainOptions) zeros(f func(float64) float64) []float64 {
	starts := Subdivide(opts.Probe.Low, opts.Probe.High, opts.ZeroSamples)
	slices.SortStableFunc(starts, func(a, b float64) int {
		return compareNaNLast(math.Abs(f(a)), math.Abs(f(b)))
	})

	type zero struct{ x, fx float64 }
	var zs []zero
	for _, s := range starts {
		x := gradDescToZero(f, s, zeroSteps)
		fx := math.Abs(f(x))
		if isFinite(x) && isFinite(fx) && math.Abs(x) < pointLimit {
			zs = append(zs, zero{x, fx})
		}
	}
	if len(zs) == 0 {
		return nil
	}
	best := slices.MinFunc(zs, func(a, b zero) int { return cmp.Compare(a.fx, b.fx) }).fx
	threshold := 10 * best
	var out []float64
	for _, z := range zs {
		if z.fx <= threshold {
			out = append(out, z.x)
		}
	}
	return DistinctFloats(out, opts.MergeEpsilon)
}
