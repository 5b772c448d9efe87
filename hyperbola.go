package conic

import (
	"iter"
	"math"
)

// Hyperbola is the locus x = a / cos t, y = b tan t for t ∈ [0, 2π].
//
// The parametrization is singular where cos t = 0. The samples never land
// exactly on a singularity, but the ones closest to it lie very far from the
// center. No sample is dropped; instead the locus is divided into branches
// at every sign change of cos t, and [Hyperbola.PathElements] starts a new
// subpath for each branch so that no line is drawn across an asymptote.
type Hyperbola struct {
	model
	a, b float64
	// starts holds the index of the first point of every branch.
	starts []int
}

// NewHyperbola returns a hyperbola with semi-major axis a. The semi-minor
// axis defaults to a; set it with [WithSemiMinor].
//
// The locus has ⌊4(a+b) + 100⌋ points.
func NewHyperbola(a float64, opts ...Option) (*Hyperbola, error) {
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

	n, err := edges(4*(a+b) + 100)
	if err != nil {
		return nil, err
	}
	ts := turn(n)
	locus := make([]Point, len(ts))
	var starts []int
	var prev float64
	for i, t := range ts {
		cos := math.Cos(t)
		locus[i] = Pt(a/cos, b*math.Tan(t))
		if i == 0 || math.Signbit(cos) != math.Signbit(prev) {
			starts = append(starts, i)
		}
		prev = cos
	}
	return &Hyperbola{
		model:  newModel(s.center, locus),
		a:      a,
		b:      b,
		starts: starts,
	}, nil
}

func (h *Hyperbola) Kind() Kind { return HyperbolaKind }

func (h *Hyperbola) SemiMajor() (float64, error) { return h.a, nil }
func (h *Hyperbola) SemiMinor() (float64, error) { return h.b, nil }

// Display hides the center marker and bounds the view to ten semi-axes
// around the center in each direction.
func (h *Hyperbola) Display() Display {
	return Display{
		CenterMarker: false,
		Viewport:     NewRectFromCenter(h.center, Sz(10*h.a, 10*h.b)),
		Bounded:      true,
	}
}

// Branches returns the world space locus split at the asymptotes. The
// concatenation of all branches equals [Hyperbola.Render].
func (h *Hyperbola) Branches() [][]Point {
	pts := h.Render()
	out := make([][]Point, len(h.starts))
	for i, start := range h.starts {
		end := len(pts)
		if i+1 < len(h.starts) {
			end = h.starts[i+1]
		}
		out[i] = pts[start:end:end]
	}
	return out
}

func (h *Hyperbola) PathElements() iter.Seq[PathElement] {
	return func(yield func(PathElement) bool) {
		for _, branch := range h.Branches() {
			for el := range Polyline(branch) {
				if !yield(el) {
					return
				}
			}
		}
	}
}
