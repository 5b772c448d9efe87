package conic

import (
	"iter"
	"math"
	"slices"
	"strings"

	"github.com/pkg/errors"
)

var (
	// ErrInvalidParameter is returned for size parameters that are not
	// strictly positive, for non-finite coordinates, and for rotation angles
	// that are NaN or infinite.
	ErrInvalidParameter = errors.New("invalid parameter")

	// ErrUnsupportedAttribute is returned when asking a shape for an
	// attribute it doesn't have, such as the semi-major axis of a circle.
	ErrUnsupportedAttribute = errors.New("unsupported attribute")
)

// Kind identifies the variant of a [Conic].
type Kind int

const (
	// CircleKind identifies a [*Circle].
	CircleKind Kind = iota + 1
	// EllipseKind identifies an [*Ellipse].
	EllipseKind
	// HyperbolaKind identifies a [*Hyperbola].
	HyperbolaKind
	// ParabolaKind identifies a [*Parabola].
	ParabolaKind
)

var kindNames = [...]string{
	CircleKind:    "circle",
	EllipseKind:   "ellipse",
	HyperbolaKind: "hyperbola",
	ParabolaKind:  "parabola",
}

func (k Kind) String() string {
	if k < CircleKind || k > ParabolaKind {
		return "invalid"
	}
	return kindNames[k]
}

// ParseKind returns the kind named s. Matching ignores case.
func ParseKind(s string) (Kind, error) {
	for k := CircleKind; k <= ParabolaKind; k++ {
		if strings.EqualFold(s, kindNames[k]) {
			return k, nil
		}
	}
	return 0, errors.Errorf("unknown conic kind %q", s)
}

// Conic is a conic section represented by a discretized locus.
//
// The locus is generated once, in the shape's local frame, when the shape is
// constructed. Translation moves the shape's center and is cumulative.
// Rotation is absolute: every call to Rotate recomputes the current locus
// from the initial one, so rotating by 30° twice leaves the shape at 30°.
//
// The implementations are [*Circle], [*Ellipse], [*Hyperbola] and
// [*Parabola].
type Conic interface {
	Kind() Kind

	// Center returns the center of the shape in world space. For parabolas
	// this is the vertex.
	Center() Point
	// Translate moves the center by v.
	Translate(v Vec2)
	// Rotate sets the rotation of the shape about its center to deg degrees.
	Rotate(deg float64) error
	// Angle returns the angle passed to the last successful call to Rotate,
	// or 0.
	Angle() float64
	// Transform returns the transform that maps the initial locus to world
	// space.
	Transform() Affine

	// EdgeCount returns the number of points in the locus.
	EdgeCount() int
	// InitialLocus returns the unrotated locus in the local frame.
	InitialLocus() []Point
	// Locus returns the rotated locus in the local frame.
	Locus() []Point
	// Render returns the rotated locus in world space.
	Render() []Point
	// PathElements returns the world space locus as a polyline.
	PathElements() iter.Seq[PathElement]
	// BoundingBox returns the bounds of the world space locus.
	BoundingBox() Rect

	// SemiMajor returns the semi-major axis, or ErrUnsupportedAttribute for
	// circles and parabolas.
	SemiMajor() (float64, error)
	// SemiMinor returns the semi-minor axis, or ErrUnsupportedAttribute for
	// circles and parabolas.
	SemiMinor() (float64, error)

	// Display returns the shape's preferences for how it should be drawn.
	Display() Display

	sealed()
}

// Display carries drawing preferences of a shape. They never affect its
// geometry.
type Display struct {
	// CenterMarker reports whether a marker should be drawn at the center.
	CenterMarker bool
	// Viewport, if Bounded is set, is the world space region that should be
	// shown, regardless of the shape's bounding box.
	Viewport Rect
	Bounded  bool
}

var (
	_ Conic = (*Circle)(nil)
	_ Conic = (*Ellipse)(nil)
	_ Conic = (*Hyperbola)(nil)
	_ Conic = (*Parabola)(nil)
)

// Option configures the construction of a shape.
type Option func(*settings)

type settings struct {
	center    Point
	semiMinor option[float64]
}

type option[T any] struct {
	isSet bool
	value T
}

func (opt *option[T]) set(v T) {
	opt.isSet = true
	opt.value = v
}

func (opt *option[T]) get(def T) T {
	if !opt.isSet {
		return def
	}
	return opt.value
}

// WithCenter places the shape's center, or a parabola's vertex, at pt. The
// default is the origin.
func WithCenter(pt Point) Option {
	return func(s *settings) { s.center = pt }
}

// WithSemiMinor sets the semi-minor axis of an ellipse or hyperbola. It
// defaults to the semi-major axis. Circles and parabolas reject it.
func WithSemiMinor(b float64) Option {
	return func(s *settings) { s.semiMinor.set(b) }
}

func newSettings(opts []Option) (settings, error) {
	var s settings
	for _, opt := range opts {
		opt(&s)
	}
	if !s.center.IsFinite() {
		return s, errors.Wrapf(ErrInvalidParameter, "center %s", s.center)
	}
	return s, nil
}

// checkSize validates a length that has to be strictly positive.
func checkSize(name string, v float64) error {
	if !(v > 0) || math.IsInf(v, 0) {
		return errors.Wrapf(ErrInvalidParameter, "%s %g", name, v)
	}
	return nil
}

func unsupported(k Kind, attr string) error {
	return errors.Wrapf(ErrUnsupportedAttribute, "%s has no %s", k, attr)
}

// linspace returns n evenly spaced values from start to end, both included.
func linspace(start, end float64, n int) []float64 {
	out := make([]float64, n)
	if n == 1 {
		out[0] = start
		return out
	}
	step := (end - start) / float64(n-1)
	for i := range out {
		out[i] = start + float64(i)*step
	}
	// Avoid accumulated error on the last sample.
	out[n-1] = end
	return out
}

// turn returns n parameter values covering one full turn, [0, 2π].
func turn(n int) []float64 {
	ts := linspace(0, 1, n)
	for i := range ts {
		ts[i] *= 2 * math.Pi
	}
	return ts
}

// MaxEdgeCount is the largest locus a shape may have. Sizes whose edge count
// would exceed it are rejected with [ErrInvalidParameter].
const MaxEdgeCount = 1 << 20

// edges converts a size-derived density into a point count.
func edges(f float64) (int, error) {
	if !(f <= MaxEdgeCount) {
		return 0, errors.Wrapf(ErrInvalidParameter, "%g points exceed the maximum of %d", math.Floor(f), MaxEdgeCount)
	}
	return int(math.Floor(f)), nil
}

// model is the state shared by all conic sections: where the shape is, how
// it is rotated, and its locus before and after rotation.
type model struct {
	center  Point
	angle   float64
	initial []Point
	current []Point
}

func newModel(center Point, initial []Point) model {
	return model{
		center:  center,
		initial: initial,
		current: slices.Clone(initial),
	}
}

func (m *model) sealed() {}

func (m *model) Center() Point { return m.center }

func (m *model) Translate(v Vec2) {
	m.center = m.center.Translate(v)
}

func (m *model) Rotate(deg float64) error {
	if math.IsNaN(deg) || math.IsInf(deg, 0) {
		return errors.Wrapf(ErrInvalidParameter, "rotation angle %g", deg)
	}
	m.angle = deg
	if deg == 0 {
		copy(m.current, m.initial)
		return nil
	}
	rot := RotateDegrees(deg)
	for i, pt := range m.initial {
		m.current[i] = pt.Transform(rot)
	}
	return nil
}

func (m *model) Angle() float64 { return m.angle }

func (m *model) Transform() Affine {
	return RotateDegrees(m.angle).ThenTranslate(Vec2(m.center))
}

func (m *model) EdgeCount() int { return len(m.initial) }

func (m *model) InitialLocus() []Point { return slices.Clone(m.initial) }

func (m *model) Locus() []Point { return slices.Clone(m.current) }

func (m *model) Render() []Point {
	out := make([]Point, len(m.current))
	c := Vec2(m.center)
	for i, pt := range m.current {
		out[i] = pt.Translate(c)
	}
	return out
}

func (m *model) PathElements() iter.Seq[PathElement] {
	return Polyline(m.Render())
}

func (m *model) BoundingBox() Rect {
	bbox := EmptyRect
	c := Vec2(m.center)
	for _, pt := range m.current {
		bbox = bbox.UnionPoint(pt.Translate(c))
	}
	return bbox
}

func (m *model) Display() Display {
	return Display{CenterMarker: true}
}
