package conic

import "math"

// Circle is the locus x = r cos t, y = r sin t for t ∈ [0, 2π].
type Circle struct {
	model
	r float64
}

// NewCircle returns a circle of radius r. Its locus has ⌊4r + 50⌋ points.
//
// Circles only accept [WithCenter]; passing [WithSemiMinor] fails with
// [ErrUnsupportedAttribute].
func NewCircle(r float64, opts ...Option) (*Circle, error) {
	s, err := newSettings(opts)
	if err != nil {
		return nil, err
	}
	if s.semiMinor.isSet {
		return nil, unsupported(CircleKind, "semi-minor axis")
	}
	if err := checkSize("radius", r); err != nil {
		return nil, err
	}

	n, err := edges(4*r + 50)
	if err != nil {
		return nil, err
	}
	ts := turn(n)
	locus := make([]Point, len(ts))
	for i, t := range ts {
		sin, cos := math.Sincos(t)
		locus[i] = Pt(r*cos, r*sin)
	}
	return &Circle{
		model: newModel(s.center, locus),
		r:     r,
	}, nil
}

func (c *Circle) Kind() Kind { return CircleKind }

func (c *Circle) Radius() float64 { return c.r }

func (c *Circle) SemiMajor() (float64, error) { return 0, unsupported(CircleKind, "semi-major axis") }
func (c *Circle) SemiMinor() (float64, error) { return 0, unsupported(CircleKind, "semi-minor axis") }
