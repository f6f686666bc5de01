package termplot

import "fmt"

// Size is the size of a plot body in glyph cells.
type Size struct {
	Width  int
	Height int
}

// Sz returns the size w×h.
func Sz(w, h int) Size {
	return Size{
		Width:  w,
		Height: h,
	}
}

func (sz Size) String() string {
	return fmt.Sprintf("%d×%d", sz.Width, sz.Height)
}

func (sz Size) Splat() (w int, h int) {
	return sz.Width, sz.Height
}

func (sz Size) Area() int {
	return sz.Width * sz.Height
}

// IsEmpty reports whether the size has no cells.
func (sz Size) IsEmpty() bool {
	return sz.Width <= 0 || sz.Height <= 0
}

// Or returns sz, or def if sz is empty.
func (sz Size) Or(def Size) Size {
	if sz.IsEmpty() {
		return def
	}
	return sz
}

// Sub returns the size in sub-cells of a glyph set that packs w×h
// sub-cells into every cell.
func (sz Size) Sub(w, h int) Size {
	return Size{
		Width:  sz.Width * w,
		Height: sz.Height * h,
	}
}
