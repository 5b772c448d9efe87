package conic

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
)

func diff(t *testing.T, want, got any, opts ...cmp.Option) {
	t.Helper()
	if d := cmp.Diff(want, got, opts...); d != "" {
		t.Error(d)
	}
}

// approx compares floats, and therefore points, to within epsilon.
func approx(epsilon float64) cmp.Option {
	return cmpopts.EquateApprox(0, epsilon)
}

func assertNear(t *testing.T, p0 Point, p1 Point, epsilon float64) {
	t.Helper()
	if d := p0.Distance(p1); d > epsilon {
		t.Fatalf("got %s, expected %s", p0, p1)
	}
}

func mustEllipse(t *testing.T, a float64, opts ...Option) *Ellipse {
	t.Helper()
	e, err := NewEllipse(a, opts...)
	if err != nil {
		t.Fatal(err)
	}
	return e
}

func mustCircle(t *testing.T, r float64, opts ...Option) *Circle {
	t.Helper()
	c, err := NewCircle(r, opts...)
	if err != nil {
		t.Fatal(err)
	}
	return c
}

func mustHyperbola(t *testing.T, a float64, opts ...Option) *Hyperbola {
	t.Helper()
	h, err := NewHyperbola(a, opts...)
	if err != nil {
		t.Fatal(err)
	}
	return h
}

func mustParabola(t *testing.T, p float64, opts ...Option) *Parabola {
	t.Helper()
	par, err := NewParabola(p, opts...)
	if err != nil {
		t.Fatal(err)
	}
	return par
}

// allShapes returns one shape of every kind, none of them at the origin.
func allShapes(t *testing.T) []Conic {
	t.Helper()
	return []Conic{
		mustCircle(t, 2.5, WithCenter(Pt(1, -1))),
		mustEllipse(t, 3, WithSemiMinor(2), WithCenter(Pt(-4, 2))),
		mustHyperbola(t, 2, WithSemiMinor(1), WithCenter(Pt(0.5, 0.5))),
		mustParabola(t, 0.25, WithCenter(Pt(3, 7))),
	}
}
