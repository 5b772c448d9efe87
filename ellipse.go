package conic

import "math"

// Ellipse is the locus x = a cos t, y = b sin t for t ∈ [0, 2π].
type Ellipse struct {
	model
	a, b float64
}

// NewEllipse returns an ellipse with semi-major axis a. The semi-minor axis
// defaults to a; set it with [WithSemiMinor]. The result is still an
// ellipse, sampled with the ellipse's density, even when both axes are
// equal.
//
// The locus has ⌊2(a+b) + 50⌋ points.
func NewEllipse(a float64, opts ...Option) (*Ellipse, error) {
	s, err := newSettings(opts)
	if err != nil {
		return nil, err
	}
	b := s.semiMinor.get(a)
	if err := checkSize("semi-major axis", a); err != nil {
		return nil, err
	}
	if err := checkSize("semi-minor axis", b); err != nil {
		return nil, err
	}

	n, err := edges(2*(a+b) + 50)
	if err != nil {
		return nil, err
	}
	ts := turn(n)
	locus := make([]Point, len(ts))
	for i, t := range ts {
		sin, cos := math.Sincos(t)
		locus[i] = Pt(a*cos, b*sin)
	}
	return &Ellipse{
		model: newModel(s.center, locus),
		a:     a,
		b:     b,
	}, nil
}

func (e *Ellipse) Kind() Kind { return EllipseKind }

func (e *Ellipse) SemiMajor() (float64, error) { return e.a, nil }
func (e *Ellipse) SemiMinor() (float64, error) { return e.b, nil }
