package conic

import (
	"math"

	"github.com/pkg/errors"
)

const (
	parabolaArmSamples = 150
	parabolaExtent     = 10
)

// Parabola is the locus x = p t², y = ±2p t, the parabola y² = 4px opening
// towards positive x with its vertex at the center.
//
// The parameter t runs from 10 down to 0 along the upper arm and back up to
// 10 along the lower arm, so the 300 points trace the curve out and back as
// a single connected path. The path is not closed.
type Parabola struct {
	model
	p float64
}

// NewParabola returns a parabola with focal parameter p. Use [WithCenter] to
// place its vertex; [WithSemiMinor] fails with [ErrUnsupportedAttribute].
func NewParabola(p float64, opts ...Option) (*Parabola, error) {
	s, err := newSettings(opts)
	if err != nil {
		return nil, err
	}
	if s.semiMinor.isSet {
		return nil, unsupported(ParabolaKind, "semi-minor axis")
	}
	if err := checkSize("focal parameter", p); err != nil {
		return nil, err
	}
	if math.IsInf(p*parabolaExtent*parabolaExtent, 0) {
		return nil, errors.Wrapf(ErrInvalidParameter, "focal parameter %g is too large", p)
	}

	ts := linspace(parabolaExtent, 0, parabolaArmSamples)
	locus := make([]Point, 0, 2*len(ts))
	for _, t := range ts {
		locus = append(locus, Pt(p*t*t, 2*p*t))
	}
	for i := len(ts) - 1; i >= 0; i-- {
		t := ts[i]
		locus = append(locus, Pt(p*t*t, -2*p*t))
	}
	return &Parabola{
		model: newModel(s.center, locus),
		p:     p,
	}, nil
}

func (p *Parabola) Kind() Kind { return ParabolaKind }

// Rate returns the focal parameter.
func (p *Parabola) Rate() float64 { return p.p }

// Vertex returns the vertex of the parabola, which is its center.
func (p *Parabola) Vertex() Point { return p.center }

// Focus returns the focus of the parabola in world space, taking rotation
// into account.
func (p *Parabola) Focus() Point {
	return Pt(p.p, 0).Transform(p.Transform())
}

func (p *Parabola) SemiMajor() (float64, error) { return 0, unsupported(ParabolaKind, "semi-major axis") }
func (p *Parabola) SemiMinor() (float64, error) { return 0, unsupported(ParabolaKind, "semi-minor axis") }
