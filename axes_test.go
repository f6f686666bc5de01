package termplot

import (
	"fmt"
	"strings"
	"testing"
)

func TestFormatNums(t *testing.T) {
	tests := []struct {
		nums   []float64
		maxLen int
		want   []string
	}{
		{[]float64{123.45, 67.89}, 5, []string{"123.5", "67.89"}},
		{[]float64{123.45, 67.89}, 4, []string{"123", "67.9"}},
		{[]float64{0.0235, 0.4567, 1.2345}, 5, []string{"0.023", "0.456", "1.234"}},
		{[]float64{123456789, 987654321}, 10, []string{"123456789", "987654321"}},
		{[]float64{1.23, 4.56}, 3, []string{"1.2", "4.6"}},
		{[]float64{123.45, 67.89}, 2, nil},
		{[]float64{0.00123, 456}, 4, []string{"0.00", "456"}},
		{[]float64{1000, 9999.9}, 4, []string{"1000", "9999"}},
		{[]float64{0.1, 1, 10}, 2, []string{"0.", "1", "10"}},
	}
	for _, tt := range tests {
		t.Run(fmt.Sprint(tt.nums, tt.maxLen), func(t *testing.T) {
			got, ok := FormatNums(tt.nums, tt.maxLen)
			if ok != (tt.want != nil) {
				t.Fatalf("got ok = %t for %q", ok, got)
			}
			diff(t, tt.want, got)
			for _, s := range got {
				if len(s) > tt.maxLen {
					t.Errorf("%q is longer than %d", s, tt.maxLen)
				}
			}
		})
	}
}

func TestFormatNumsScientific(t *testing.T) {
	got, ok := FormatNums([]float64{1.5e12, 2.5e12}, 6)
	if !ok {
		t.Fatal("no format found")
	}
	diff(t, []string{"1.5E12", "2.5E12"}, got)
}

func TestExponent(t *testing.T) {
	for x, want := range map[float64]float64{1: 0, 9.99: 0, 10: 1, 1000: 3, 0.1: -1, 0.05: -2, 1e-5: -5} {
		if got := exponent(x); got != want {
			t.Errorf("exponent(%g) = %g, want %g", x, got, want)
		}
	}
}

func TestAddAxes(t *testing.T) {
	var body []string
	for i := range 10 {
		body = append(body, strings.Repeat(fmt.Sprint(9-i), 32))
	}
	got := addAxes(body, NewRect(Iv(0, 10), Iv(0, 9)))
	want := []string{
		"      │99999999999999999999999999999999",
		"7.650 ┼88888888888888888888888888888888",
		"      │77777777777777777777777777777777",
		"5.850 ┼66666666666666666666666666666666",
		"      │55555555555555555555555555555555",
		"4.050 ┼44444444444444444444444444444444",
		"      │33333333333333333333333333333333",
		"2.250 ┼22222222222222222222222222222222",
		"      │11111111111111111111111111111111",
		"0.450 ┼00000000000000000000000000000000",
		"      └┼─────┼─────┼─────┼─────┼───────",
		"       0.156 2.031 3.906 5.781 7.656   ",
	}
	diff(t, want, got)
}

func TestAddAxesDiagonal(t *testing.T) {
	var body []string
	for i := range 9 {
		var sb strings.Builder
		for j := range 48 {
			fmt.Fprint(&sb, min(max(j-i, 0), 9))
		}
		body = append(body, sb.String())
	}
	got := addAxes(body, NewRect(Iv(0, 10), Iv(0, 8)))
	want := []string{
		"7.556 ┼012345678999999999999999999999999999999999999999",
		"      │001234567899999999999999999999999999999999999999",
		"5.778 ┼000123456789999999999999999999999999999999999999",
		"      │000012345678999999999999999999999999999999999999",
		"4.000 ┼000001234567899999999999999999999999999999999999",
		"      │000000123456789999999999999999999999999999999999",
		"2.222 ┼000000012345678999999999999999999999999999999999",
		"      │000000001234567899999999999999999999999999999999",
		"0.444 ┼000000000123456789999999999999999999999999999999",
		"      └┼─────┼─────┼─────┼─────┼─────┼─────┼───────────",
		"       0.104 1.354 2.604 3.854 5.104 6.354 7.604       ",
	}
	diff(t, want, got)
}

func TestAddAxesEmpty(t *testing.T) {
	if got := addAxes(nil, NewRect(Iv(0, 1), Iv(0, 1))); len(got) != 0 {
		t.Errorf("got %q, want nothing", got)
	}
}

func TestPlotTitle(t *testing.T) {
	p := Plot{Title: "test"}
	if got := p.String(); got != "test" {
		t.Errorf("got %q, want %q", got, "test")
	}
	p.Body = []string{"ab", "cd"}
	if got := p.String(); got != "test\nab\ncd" {
		t.Errorf("got %q, want %q", got, "test\nab\ncd")
	}
	if got, want := p.String(), joinLines(p.Lines()); got != want {
		t.Errorf("String = %q, Lines = %q", got, want)
	}
}
