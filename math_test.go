package termplot

import (
	"math"
	"testing"

	"github.com/google/go-cmp/cmp/cmpopts"
)

func TestDerAt(t *testing.T) {
	sq := func(x float64) float64 { return x * x }
	if d := DerAt(sq, 2); math.Abs(d-4) > 1e-4 {
		t.Errorf("got f'(2) = %g, want 4", d)
	}
	if d := Der(math.Sin)(0); math.Abs(d-1) > 1e-6 {
		t.Errorf("got sin'(0) = %g, want 1", d)
	}
	if d := DerAt(func(float64) float64 { return math.NaN() }, 0); !math.IsNaN(d) {
		t.Errorf("got %g, want NaN", d)
	}
}

func TestSubdivide(t *testing.T) {
	diff(t, []float64(nil), Subdivide(0, 1, 0))
	diff(t, []float64{3}, Subdivide(3, 4, 1))
	diff(t, []float64{0, 0.25, 0.5, 0.75, 1}, Subdivide(0, 1, 5), cmpopts.EquateApprox(0, 1e-12))
	diff(t, []float64{2, 2, 2}, Subdivide(2, 2, 3))

	xs := Subdivide(-100, 100, 1001)
	if xs[0] != -100 || xs[1000] != 100 {
		t.Errorf("got endpoints %g and %g", xs[0], xs[1000])
	}
}

func TestSubdivideRound(t *testing.T) {
	diff(t, []int{0, 2, 4}, SubdivideRound(0, 4, 3))
	diff(t, []int{0, 1, 2, 3}, SubdivideRound(0, 3, 4))
}

func TestMinMaxAlways(t *testing.T) {
	s := []float64{math.NaN(), 3, -1, math.NaN(), 2}
	if got := minAlways(s, 0); got != -1 {
		t.Errorf("got min %g, want -1", got)
	}
	if got := maxAlways(s, 0); got != 3 {
		t.Errorf("got max %g, want 3", got)
	}
	if got := minAlways([]float64{math.NaN()}, 7); got != 7 {
		t.Errorf("got %g, want default", got)
	}
	if got := maxAlways(nil, 7); got != 7 {
		t.Errorf("got %g, want default", got)
	}
}

func TestCeilDiv(t *testing.T) {
	tests := []struct {
		a, b, want int
	}{
		{1, 2, 1},
		{8, 4, 2},
		{9, 4, 3},
		{0, 3, 0},
		{5, 0, 0},
	}
	for _, tt := range tests {
		if got := ceilDiv(tt.a, tt.b); got != tt.want {
			t.Errorf("ceilDiv(%d, %d) = %d, want %d", tt.a, tt.b, got, tt.want)
		}
	}
}

func TestMedian(t *testing.T) {
	if got := median([]float64{5, 1, 3}); got != 3 {
		t.Errorf("got %g, want 3", got)
	}
	if got := median(nil); !math.IsNaN(got) {
		t.Errorf("got %g, want NaN", got)
	}
}
