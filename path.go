package conic

import (
	"fmt"
	"io"
	"iter"
	"slices"
	"strconv"
	"strings"
)

type PathElementKind int

const (
	// Move directly to the point without drawing anything, starting a new
	// subpath.
	MoveToKind PathElementKind = iota + 1
	// Draw a line from the current location to the point.
	LineToKind
	// Close off the path.
	ClosePathKind
)

// PathElement is one drawing command of a polyline path.
//
// A valid path has a MoveTo at the beginning of each subpath.
type PathElement struct {
	Kind PathElementKind
	P0   Point
}

func (el PathElement) String() string {
	var kind string
	switch el.Kind {
	case MoveToKind:
		kind = "MoveTo"
	case LineToKind:
		kind = "LineTo"
	case ClosePathKind:
		return "ClosePath"
	default:
		kind = "InvalidPathElement"
	}
	return fmt.Sprintf("%s(%s)", kind, el.P0)
}

func (el PathElement) Transform(aff Affine) PathElement {
	if el.Kind == ClosePathKind {
		return el
	}
	el.P0 = el.P0.Transform(aff)
	return el
}

func MoveTo(pt Point) PathElement {
	return PathElement{Kind: MoveToKind, P0: pt}
}

func LineTo(pt Point) PathElement {
	return PathElement{Kind: LineToKind, P0: pt}
}

func ClosePath() PathElement {
	return PathElement{Kind: ClosePathKind}
}

// Polyline returns the path that visits pts in order: a MoveTo to the first
// point followed by a LineTo for every other point.
func Polyline(pts []Point) iter.Seq[PathElement] {
	return func(yield func(PathElement) bool) {
		for i, pt := range pts {
			el := LineTo(pt)
			if i == 0 {
				el = MoveTo(pt)
			}
			if !yield(el) {
				return
			}
		}
	}
}

// BezPath is a path stored as a slice of path elements. Despite its name,
// which it keeps for familiarity with other 2D graphics libraries, a path
// produced by this package contains only straight lines.
type BezPath []PathElement

// Push adds an element to the path.
func (p *BezPath) Push(el PathElement) {
	*p = append(*p, el)
}

// MoveTo pushes a "move to" element onto the path.
func (p *BezPath) MoveTo(pt Point) { p.Push(MoveTo(pt)) }

// LineTo pushes a "line to" element onto the path.
func (p *BezPath) LineTo(pt Point) { p.Push(LineTo(pt)) }

// ClosePath pushes a "close path" element onto the path.
func (p *BezPath) ClosePath() { p.Push(ClosePath()) }

// Elements returns an iterator over the path's elements.
func (p BezPath) Elements() iter.Seq[PathElement] { return slices.Values(p) }

// Transform returns a new path with an affine transformation applied to
// every element.
func (p BezPath) Transform(aff Affine) BezPath {
	els := make(BezPath, len(p))
	for i := range p {
		els[i] = p[i].Transform(aff)
	}
	return els
}

// BoundingBox returns the smallest rectangle enclosing all points of the
// path. An empty path has the bounding box [EmptyRect].
func (p BezPath) BoundingBox() Rect {
	bbox := EmptyRect
	for _, el := range p {
		if el.Kind != ClosePathKind {
			bbox = bbox.UnionPoint(el.P0)
		}
	}
	return bbox
}

// Subpaths returns the number of MoveTo elements in the path.
func (p BezPath) Subpaths() int {
	n := 0
	for _, el := range p {
		if el.Kind == MoveToKind {
			n++
		}
	}
	return n
}

func (p BezPath) SVG(opts SVGOptions) string {
	return SVG(p.Elements(), opts)
}

func (p BezPath) WriteSVG(w io.Writer, opts SVGOptions) error {
	return WriteSVG(w, p.Elements(), opts)
}

// SVGOptions specifies optional settings for [SVG] and [WriteSVG].
type SVGOptions struct {
	// The maximum precision with which to format coordinates. A value of 0
	// chooses the highest precision necessary to unambiguously represent any
	// given coordinate.
	MaxPrecision int
}

// SVG converts a sequence of path elements to a string of SVG path commands.
//
// See [WriteSVG] for a version that writes to an [io.Writer] instead of
// returning a string.
func SVG(seq iter.Seq[PathElement], opts SVGOptions) string {
	sb := &strings.Builder{}
	WriteSVG(sb, seq, opts)
	return sb.String()
}

// WriteSVG converts a sequence of path elements to a string of SVG path
// commands and writes it to w.
//
// The current implementation doesn't take any special care to produce a
// short string (reducing precision, using relative movement).
func WriteSVG(w io.Writer, seq iter.Seq[PathElement], opts SVGOptions) error {
	var err error
	writef := func(s string, v ...any) {
		if err != nil {
			return
		}
		_, err = fmt.Fprintf(w, s, v...)
	}
	format := func(n float64) string {
		if opts.MaxPrecision <= 0 {
			return strconv.FormatFloat(n, 'f', -1, 64)
		}
		s := strconv.FormatFloat(n, 'f', opts.MaxPrecision, 64)
		if strings.ContainsRune(s, '.') {
			s = strings.TrimRight(strings.TrimRight(s, "0"), ".")
		}
		return s
	}
	first := true
	for el := range seq {
		if err != nil {
			return err
		}
		if !first {
			writef(" ")
		}
		first = false
		switch el.Kind {
		case MoveToKind:
			writef("M%s,%s", format(el.P0.X), format(el.P0.Y))
		case LineToKind:
			writef("L%s,%s", format(el.P0.X), format(el.P0.Y))
		case ClosePathKind:
			writef("Z")
		default:
			panic("unreachable")
		}
	}
	return err
}
