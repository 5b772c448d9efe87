package conic

import "math"

// Rect is an axis-aligned rectangle spanning [X0, X1] × [Y0, Y1].
type Rect struct {
	X0, Y0 float64
	X1, Y1 float64
}

// EmptyRect is the identity of [Rect.Union] and [Rect.UnionPoint]: it
// encloses nothing, and its union with anything is that thing.
var EmptyRect = Rect{
	X0: math.Inf(1),
	Y0: math.Inf(1),
	X1: math.Inf(-1),
	Y1: math.Inf(-1),
}

// NewRectFromCenter returns a rectangle centered around the center point,
// extending half.Width to the left and right and half.Height up and down.
func NewRectFromCenter(center Point, half Size) Rect {
	return Rect{
		X0: center.X - half.Width,
		Y0: center.Y - half.Height,
		X1: center.X + half.Width,
		Y1: center.Y + half.Height,
	}
}

// Width returns the rectangle's width, defined as X1 − X0. It may be negative.
func (r Rect) Width() float64 {
	return r.X1 - r.X0
}

// Height returns the rectangle's height, defined as Y1 − Y0. It may be negative.
func (r Rect) Height() float64 {
	return r.Y1 - r.Y0
}

func (r Rect) Size() Size {
	return Size{
		Width:  r.Width(),
		Height: r.Height(),
	}
}

// IsEmpty reports whether the rectangle encloses no point, which is the case
// for [EmptyRect] and for any rectangle with negative width or height.
func (r Rect) IsEmpty() bool {
	return r.X1 < r.X0 || r.Y1 < r.Y0
}

// Contains reports whether pt lies in r. Unlike a half-open pixel rectangle,
// both edges are included.
func (r Rect) Contains(pt Point) bool {
	return pt.X >= r.X0 &&
		pt.X <= r.X1 &&
		pt.Y >= r.Y0 &&
		pt.Y <= r.Y1
}

// Union returns the smallest rectangle enclosing r and o.
//
// Results are valid only if width and height are non-negative.
func (r Rect) Union(o Rect) Rect {
	return Rect{
		X0: min(r.X0, o.X0),
		Y0: min(r.Y0, o.Y0),
		X1: max(r.X1, o.X1),
		Y1: max(r.Y1, o.Y1),
	}
}

// UnionPoint computes the union with one point.
//
// This method includes the perimeter of zero-area rectangles.
// Thus, a succession of UnionPoint operations on a series of
// points yields their enclosing rectangle.
func (r Rect) UnionPoint(pt Point) Rect {
	return Rect{
		X0: min(r.X0, pt.X),
		Y0: min(r.Y0, pt.Y),
		X1: max(r.X1, pt.X),
		Y1: max(r.Y1, pt.Y),
	}
}

// Inflate returns a rectangle grown by width on the left and right and by
// height on the top and bottom.
func (r Rect) Inflate(width, height float64) Rect {
	return Rect{
		X0: r.X0 - width,
		Y0: r.Y0 - height,
		X1: r.X1 + width,
		Y1: r.Y1 + height,
	}
}
