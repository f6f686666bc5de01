package termplot

import (
	"math"
	"testing"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

func TestDeterminePlotDomainConstant(t *testing.T) {
	got := DeterminePlotDomain(func(float64) float64 { return 5 })
	diff(t, Iv(-2, 2), got)
	if !got.Contains(0) || got.Width() <= 0 {
		t.Errorf("got %s, want a domain around 0", got)
	}
}

func TestDeterminePlotDomainAffine(t *testing.T) {
	for _, f := range []func(float64) float64{
		func(x float64) float64 { return 2*x - 4 },
		func(x float64) float64 { return 1e6*x - 2e6 },
	} {
		got := DeterminePlotDomain(f)
		if !got.Contains(0) || !got.Contains(2) {
			t.Errorf("got %s, want a domain containing 0 and 2", got)
		}
		if got.Width() > 10 {
			t.Errorf("got %s, want a tight domain", got)
		}
	}
}

func TestDeterminePlotDomainParabola(t *testing.T) {
	f := func(x float64) float64 { return (x-5)*(x-5) + 8 }
	got := DeterminePlotDomain(f)
	if !(got.Low < 5 && got.High > 5) {
		t.Errorf("got %s, want a domain around 5", got)
	}
	if got.Low < -10 || got.High > 20 {
		t.Errorf("got %s, want a tighter domain", got)
	}
}

func TestDeterminePlotDomainWindows(t *testing.T) {
	// Each function's domain must start in (lowMin, lowMax) and end in
	// (highMin, highMax).
	tests := []struct {
		name             string
		f                func(float64) float64
		lowMin, lowMax   float64
		highMin, highMax float64
	}{
		{"1+x²", func(x float64) float64 { return 1 + x*x }, -10, -0.1, 0.1, 10},
		{"quartic", func(x float64) float64 { return 1 + x + x*x - 3*x*x*x + x*x*x*x }, -10, -0.1, 0.1, 10},
		{"sigmoid", func(x float64) float64 { return math.Exp(x) / (1 + math.Exp(x)) }, -1e4, -0.1, 0.1, 1e4},
		{"sin", math.Sin, -30, -3, 3, 30},
		{"2x", func(x float64) float64 { return 2 * x }, -10, -0.1, 0.1, 10},
		{"constant", func(float64) float64 { return 5 }, -10, -0.1, 0.1, 10},
		{"piecewise", func(x float64) float64 {
			switch {
			case x <= 0:
				return 1 / x
			case x <= 9:
				return 1 + 0.2*x
			default:
				return 3
			}
		}, -20, -1, 1, 20},
		{"1/x", func(x float64) float64 {
			if x == 0 {
				return 1
			}
			return 1 / x
		}, -10, -0.1, 0.1, 10},
		{"sin(1/x)", func(x float64) float64 {
			if x == 0 {
				return 1
			}
			return math.Sin(1 / x)
		}, -10, -0.1, 0.1, 10},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := DeterminePlotDomain(tt.f)
			if !(got.Low > tt.lowMin && got.Low < tt.lowMax) {
				t.Errorf("got %s, want lower bound in (%g, %g)", got, tt.lowMin, tt.lowMax)
			}
			if !(got.High > tt.highMin && got.High < tt.highMax) {
				t.Errorf("got %s, want upper bound in (%g, %g)", got, tt.highMin, tt.highMax)
			}
		})
	}
}

func TestDeterminePlotDomainFinite(t *testing.T) {
	fs := []func(float64) float64{
		func(x float64) float64 { return 1 / x },
		func(x float64) float64 { return math.Log(x) },
		func(x float64) float64 {
			switch {
			case x <= 0:
				return 1 / x
			case x <= 9:
				return 1 + 0.2*x
			default:
				return 3
			}
		},
		func(float64) float64 { return math.NaN() },
		func(x float64) float64 { return math.Exp(x * x) },
	}
	for i, f := range fs {
		got := DeterminePlotDomain(f)
		if got.IsNaN() || got.IsInf() {
			t.Errorf("function %d: got %s, want a finite domain", i, got)
		}
		if got.Low > got.High {
			t.Errorf("function %d: got inverted domain %s", i, got)
		}
	}
}

func TestDomainOptionsNormalize(t *testing.T) {
	got := DomainOptions{
		Padding:       0.25,
		TightFraction: 2,
		Probe:         Iv(1, 1),
		Search:        SearchOptions{Workers: 4},
	}.normalize()
	if got.Logger == nil {
		t.Fatal("no logger")
	}
	got.Logger = nil

	want := DefaultDomainOptions()
	want.Padding = 0.25
	want.Search.Workers = 4
	diff(t, want, got)

	// Set fields are kept.
	custom := DefaultDomainOptions()
	custom.ProbeSamples = 11
	custom.SinglePointMargin = 3
	custom.Fallback = Iv(-1, 2)
	got = custom.normalize()
	got.Logger = nil
	diff(t, custom, got)
}

func TestDeterminePlotDomainFallback(t *testing.T) {
	got := DeterminePlotDomain(func(float64) float64 { return math.NaN() })
	diff(t, Iv(-10, 10), got)
}

func TestDeterminePlotDomainLogging(t *testing.T) {
	core, logs := observer.New(zapcore.DebugLevel)
	opts := DefaultDomainOptions()
	opts.Logger = zap.New(core)

	DeterminePlotDomainOpt(func(float64) float64 { return 1 }, opts)
	if n := logs.FilterMessage("constant function").Len(); n != 1 {
		t.Errorf("got %d constant records, want 1", n)
	}

	DeterminePlotDomainOpt(math.Sin, opts)
	if logs.FilterMessage("search").Len() == 0 {
		t.Error("searches were not logged")
	}
	for _, e := range logs.All() {
		if e.Level != zapcore.DebugLevel {
			t.Errorf("got %s record %q, want only debug records", e.Level, e.Message)
		}
	}
}

func TestIsOnlyZero(t *testing.T) {
	opts := DefaultDomainOptions().normalize()
	if !opts.isOnlyZero(func(float64) float64 { return 0 }, 1) {
		t.Error("zero not detected")
	}
	// A few noisy samples are tolerated by the loose bound.
	noisy := func(x float64) float64 {
		if math.Mod(math.Abs(x), 10) < 0.5 {
			return 1e-3
		}
		return 0
	}
	if !opts.isOnlyZero(noisy, 1) {
		t.Error("noisy zero not detected")
	}
	if opts.isOnlyZero(func(float64) float64 { return 1e-3 }, 1) {
		t.Error("small constant detected as zero")
	}
	if opts.isOnlyZero(func(x float64) float64 { return x * 1e-3 }, 1) {
		t.Error("slope detected as zero")
	}
	if opts.isOnlyZero(func(float64) float64 { return math.NaN() }, 1) {
		t.Error("NaN detected as zero")
	}
}

func TestZeros(t *testing.T) {
	opts := DefaultDomainOptions().normalize()
	zs := opts.zeros(func(x float64) float64 { return (x - 3) * (x + 4) })
	if len(zs) == 0 {
		t.Fatal("no zeros found")
	}
	for _, z := range zs {
		if math.Abs(z-3) > 1e-3 && math.Abs(z+4) > 1e-3 {
			t.Errorf("got zero at %g, want 3 or -4", z)
		}
	}
}
