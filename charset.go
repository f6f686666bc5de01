package termplot

// Gradients order glyphs from dark to bright. They are used to shade a cell
// to one of a number of brightness levels.
var (
	BinaryGradient = []string{" ", "█"}
	ShadeGradient  = []string{" ", "░", "▒", "▓", "█"}
	ASCIIGradient  = []string{" ", ".", ":", "-", "=", "+", "*", "#", "%", "@"}
	// Large ASCII gradient, after https://paulbourke.net/dataformats/asciiart/
	LargeASCIIGradient = []string{
		" ", ".", "'", "`", "^", "\"", ",", ":", ";", "I", "l", "!", "i", ">",
		"<", "~", "+", "_", "-", "?", "]", "[", "}", "{", "1", ")", "(", "|",
		"\\", "/", "t", "f", "j", "r", "x", "n", "u", "v", "c", "z", "X", "Y",
		"U", "J", "C", "L", "Q", "0", "O", "Z", "m", "w", "q", "p", "d", "b",
		"k", "h", "a", "o", "*", "#", "M", "W", "&", "8", "%", "B", "@", "$",
	}
)

// ChooseGradient returns the smallest gradient with at least n glyphs, or the
// largest one.
func ChooseGradient(n int) []string {
	for _, g := range [][]string{BinaryGradient, ShadeGradient, ASCIIGradient} {
		if n <= len(g) {
			return g
		}
	}
	return LargeASCIIGradient
}

// Subdivision is a glyph set that splits every cell into W×H binary
// sub-cells. Glyphs[i] is the glyph whose sub-cell (x, y) is set iff bit
// x·H + y of i is set, with y pointing down.
type Subdivision struct {
	Glyphs []rune
	W, H   int
}

// IsZero reports whether s is the zero value.
func (s Subdivision) IsZero() bool {
	return len(s.Glyphs) == 0
}

// Bit returns the bit of sub-cell (x, y).
func (s Subdivision) Bit(x, y int) uint {
	return uint(x*s.H + y)
}

var (
	// Dots uses one dot per cell.
	Dots = Subdivision{Glyphs: []rune(" ●"), W: 1, H: 1}
	// Blocks uses quadrant blocks.
	Blocks = Subdivision{Glyphs: []rune(" ▘▖▌▝▀▞▛▗▚▄▙▐▜▟█"), W: 2, H: 2}
	// Braille uses the eight dots of braille patterns.
	Braille = Subdivision{Glyphs: brailleGlyphs(), W: 2, H: 4}
)

// brailleDots maps sub-cell bit x·4 + y to the braille dot bit.
var brailleDots = [8]rune{0x01, 0x02, 0x04, 0x40, 0x08, 0x10, 0x20, 0x80}

func brailleGlyphs() []rune {
	out := make([]rune, 256)
	for i := range out {
		r := rune(0x2800)
		for b, dot := range brailleDots {
			if i&(1<<b) != 0 {
				r |= dot
			}
		}
		out[i] = r
	}
	return out
}

const (
	axisVertical   = '│'
	axisHorizontal = '─'
	axisCross      = '┼'
	axisCorner     = '└'
)

const (
	lineFlatLow  = '_'
	lineFlatMid  = '―'
	lineFlatHigh = '‾'
	lineUp       = '/'
	lineDown     = '\\'
	lineVertical = '|'
)

// NaNGlyph marks cells whose value is NaN.
const NaNGlyph = '�'
