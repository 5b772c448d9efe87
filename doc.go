// Package conic models the basic conic sections (circle, ellipse, hyperbola
// and parabola) as discretized point sets, for plotting.
//
// # Shapes
//
// Each shape samples its parametric equation once, at construction, into a
// locus: an ordered slice of points in the shape's local frame, centered on
// the origin. The number of samples, the edge count, grows with the size of
// the shape.
//
//   - [Circle]: x = r cos t, y = r sin t, ⌊4r + 50⌋ points
//   - [Ellipse]: x = a cos t, y = b sin t, ⌊2(a+b) + 50⌋ points
//   - [Hyperbola]: x = a / cos t, y = b tan t, ⌊4(a+b) + 100⌋ points
//   - [Parabola]: x = p t², y = ±2p t, 300 points
//
// All four implement the [Conic] interface. Size parameters must be strictly
// positive, and small enough that the edge count stays within
// [MaxEdgeCount]; constructors return [ErrInvalidParameter] otherwise.
// Asking a circle or parabola for its semi-axes returns
// [ErrUnsupportedAttribute].
//
// # Transforms
//
// Shapes support exactly two transforms. [Conic.Translate] moves the center
// and accumulates: translating by ⟨1, 0⟩ twice moves the shape by ⟨2, 0⟩.
// [Conic.Rotate] rotates the locus about the center and is absolute: it
// always starts from the initial locus, so rotating by 30° twice leaves the
// shape rotated by 30°, and rotating by 0° restores the initial locus
// exactly.
//
// World space points are obtained with [Conic.Render], which adds the center
// to every point of the rotated locus, or as a path with
// [Conic.PathElements], which can be formatted as SVG path data with [SVG].
//
// # Rendering
//
// This package doesn't draw. Shapes describe how they would like to be drawn
// through [Conic.Display]; hyperbolas, for example, ask for a bounded
// viewport and no center marker. The plot subpackage turns shapes into
// charts.
package conic
