package conic

import "math"

type Size struct {
	Width  float64
	Height float64
}

// Sz returns the size w×h.
func Sz(w, h float64) Size {
	return Size{
		Width:  w,
		Height: h,
	}
}

func (sz Size) Splat() (w float64, h float64) {
	return sz.Width, sz.Height
}

// AspectRatio returns width divided by height.
func (sz Size) AspectRatio() float64 {
	return sz.Width / sz.Height
}

// Scale multiplies sz by f.
func (sz Size) Scale(f float64) Size {
	return Size{
		Width:  sz.Width * f,
		Height: sz.Height * f,
	}
}

// Round returns a new size with width and height rounded to the nearest integers.
func (sz Size) Round() Size {
	return Size{
		Width:  math.Round(sz.Width),
		Height: math.Round(sz.Height),
	}
}
