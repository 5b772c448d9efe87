package conic

import "math"

// Affine describes an affine transform via coefficients.
//
// If the coefficients are (a, b, c, d, e, f), then the resulting
// transformation represents this augmented matrix:
//
//	| a c e |
//	| b d f |
//	| 0 0 1 |
//
// The idea is that (A * B) * v == A * (B * v).
type Affine struct {
	N0, N1, N2, N3, N4, N5 float64
}

// Translate creates an affine transform representing translation.
func Translate(v Vec2) Affine {
	return Affine{1, 0, 0, 1, v.X, v.Y}
}

// Rotate creates an affine transform representing rotation about the origin.
//
// A positive angle rotates the positive x direction into positive y, which is
// anti-clockwise in the y-up space conic sections are usually drawn in. This
// is the matrix
//
//	| cos θ  −sin θ |
//	| sin θ   cos θ |
//
// The angle th is expressed in radians.
func Rotate(th float64) Affine {
	sin, cos := math.Sincos(th)
	return Affine{cos, sin, -sin, cos, 0, 0}
}

// RotateDegrees is like [Rotate] but takes the angle in degrees.
func RotateDegrees(deg float64) Affine {
	return Rotate(radians(deg))
}

func radians(deg float64) float64 {
	return deg * math.Pi / 180
}

// ThenTranslate creates aff followed by a translation of v.
//
// Equivalent to "Translate(v) * aff"
func (aff Affine) ThenTranslate(v Vec2) Affine {
	aff.N4 += v.X
	aff.N5 += v.Y
	return aff
}
