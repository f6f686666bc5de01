package termplot

import (
	"math"
	"strconv"
	"strings"
	"unicode/utf8"
)

// yLabelLen is the maximum length of labels on the vertical axis.
const yLabelLen = 5

// exponent returns ⌊log10(x)⌋ for x > 0, correcting for rounding of
// math.Log10 at powers of ten.
func exponent(x float64) float64 {
	e := math.Floor(math.Log10(x))
	if !isFinite(e) {
		return e
	}
	switch {
	case math.Pow10(int(e)+1) <= x:
		e++
	case math.Pow10(int(e)) > x:
		e--
	}
	return e
}

// FormatNums formats nums in a consistent notation, each at most maxLen
// characters long. Decimal notation is preferred, falling back to scientific
// notation such as 1.5E3. It reports false if neither fits.
func FormatNums(nums []float64, maxLen int) ([]string, bool) {
	lo := minAlways(nums, 0)
	hi := maxAlways(nums, 0)
	l := float64(maxLen)

	if (hi < 0 || exponent(hi)+1 <= l) && (lo > 0 || exponent(math.Abs(lo))+2 <= l) {
		out := make([]string, len(nums))
		for i, x := range nums {
			var n float64
			switch {
			case x == 0:
				n = l
			case x < 0:
				n = l - (exponent(-x) + 3)
			default:
				n = l - (exponent(x) + 2)
			}
			prec := maxLen
			if n >= 0 && isFinite(n) {
				prec = int(n)
			}
			s := strconv.FormatFloat(x, 'f', prec, 64)
			if len(s) > maxLen {
				s = s[:maxLen]
			}
			out[i] = s
		}
		return out, true
	}

	for prec := maxLen; prec >= 0; prec-- {
		out := make([]string, len(nums))
		ok := true
		for i, x := range nums {
			out[i] = formatScientific(x, prec)
			if len(out[i]) > maxLen {
				ok = false
				break
			}
		}
		if ok {
			return out, true
		}
	}
	return nil, false
}

// formatScientific formats x like 1.25E-3, without padding the exponent.
func formatScientific(x float64, prec int) string {
	s := strconv.FormatFloat(x, 'E', prec, 64)
	i := strings.IndexByte(s, 'E')
	if i < 0 {
		return s
	}
	e, err := strconv.Atoi(s[i+1:])
	if err != nil {
		return s
	}
	return s[:i] + "E" + strconv.Itoa(e)
}

// horizontalTicks returns the number of ticks for an axis n cells wide. Ticks
// are at least minSep apart, with the separation growing towards maxSep for
// wide axes.
func horizontalTicks(n, minSep, maxSep, minTicks float64) int {
	if n <= minTicks*minSep {
		return int(minTicks)
	}
	return int(n/minSep - (n-minTicks*minSep)/maxSep)
}

func verticalTicks(n, sep float64) int {
	if n < sep {
		return int(n)
	}
	return int(math.Ceil(n / sep))
}

// axisLabels returns the separation in cells between labels and the labels
// of an axis n cells long spanning iv. Labels sit at the centers of their
// cells.
func axisLabels(n int, iv Interval, vertical bool) (int, []string) {
	if n <= 0 {
		return 1, nil
	}
	var k, s int
	if vertical {
		k = verticalTicks(float64(n), 2)
		s = (n-1)/k + 1
	} else {
		k = horizontalTicks(float64(n), 4, 8, 2)
		s = (n - 1) / k
	}
	s = max(s, 1)

	for range s {
		nums := make([]float64, k)
		for i := range nums {
			c := float64(i*s) + 0.5
			nums[i] = iv.Low + c*iv.Width()/float64(n)
		}
		maxLen := s - 1
		if vertical {
			maxLen = yLabelLen
		}
		if labels, ok := FormatNums(nums, maxLen); ok {
			return s, labels
		}
		s++
		k = n / s
	}
	return s, []string{"err"}
}

// addAxes draws labelled axes to the left of and below body.
func addAxes(body []string, viewport Rect) []string {
	g := parseGrid(body)
	h, w := len(g), g.width()
	if h == 0 || w == 0 {
		return body
	}

	xSep, xLabels := axisLabels(w, viewport.Domain(), false)
	ySep, yLabels := axisLabels(h, viewport.Range(), true)
	yLen := 0
	for _, l := range yLabels {
		yLen = max(yLen, utf8.RuneCountInString(l))
	}

	o := g.pad(' ', yLen+2, xSep, 0, 2)
	oh, ow := h+2, w+xSep
	for x := yLen + 1; x < w+yLen+2; x++ {
		o.set(x, oh-2, axisHorizontal)
	}
	for y := range oh - 2 {
		o.set(yLen+1, y, axisVertical)
	}
	o.set(yLen+1, oh-2, axisCorner)

	for i, l := range xLabels {
		x := i*xSep + yLen + 2
		o.set(x, oh-2, axisCross)
		for j, r := range []rune(l) {
			if i*xSep+j+yLen+1 < ow {
				o.set(x+j, oh-1, r)
			}
		}
	}
	for i, l := range yLabels {
		y := oh - 3 - i*ySep
		o.set(yLen+1, y, axisCross)
		for j, r := range []rune(l) {
			o.set(j, y, r)
		}
	}
	return o.trimRight().lines()
}
