// Package plot draws conic sections as charts.
//
// A [Figure] collects shapes and turns them into a scatter chart with one
// line per curve, a marker at each shape's center, grid lines, and equally
// scaled axes. Figures can be written as SVG documents or as plain text.
package plot

import (
	"fmt"
	"image/color"
	"io"
	"math"

	svg "github.com/ajstarks/svgo"
	"github.com/hashicorp/go-hclog"
	"github.com/pkg/errors"
	"github.com/vdobler/chart"
	"github.com/vdobler/chart/svgg"
	"github.com/vdobler/chart/txtg"

	"honnef.co/go/conic"
)

// The size of a figure at a zoom of 100 percent, in pixels.
const (
	BaseWidth  = 640
	BaseHeight = 480
)

// margin is the fraction of the data extent added on every side of
// unbounded figures.
const margin = 0.05

var white = color.RGBA{0xff, 0xff, 0xff, 0xff}

// Figure is a set of shapes drawn into a common pair of axes.
type Figure struct {
	title  string
	zoom   float64
	logger hclog.Logger
	layers []layer
}

type layer struct {
	shape  conic.Conic
	token  string
	color  color.RGBA
	marker bool
}

// Option configures a [Figure].
type Option func(*Figure) error

// WithZoom scales the size of the figure by percent. Zooming never affects
// the geometry of the shapes, only how many pixels they occupy.
func WithZoom(percent float64) Option {
	return func(f *Figure) error {
		if !(percent > 0) || math.IsInf(percent, 0) {
			return errors.Wrapf(conic.ErrInvalidParameter, "zoom %g%%", percent)
		}
		f.zoom = percent
		return nil
	}
}

// WithTitle sets the title printed above the chart.
func WithTitle(title string) Option {
	return func(f *Figure) error {
		f.title = title
		return nil
	}
}

// WithLogger sets the logger. Figures log nothing by default.
func WithLogger(logger hclog.Logger) Option {
	return func(f *Figure) error {
		f.logger = logger
		return nil
	}
}

// New returns an empty figure.
func New(opts ...Option) (*Figure, error) {
	f := &Figure{
		zoom:   100,
		logger: hclog.NewNullLogger(),
	}
	for _, opt := range opts {
		if err := opt(f); err != nil {
			return nil, err
		}
	}
	return f, nil
}

// StyleOption configures how a single shape is drawn.
type StyleOption func(*layer) error

// Color sets the stroke color of the shape. See [ParseColor] for the
// accepted tokens. The default is [DefaultColor].
func Color(token string) StyleOption {
	return func(l *layer) error {
		c, err := ParseColor(token)
		if err != nil {
			return err
		}
		l.token = token
		l.color = c
		return nil
	}
}

// CenterMarker overrides whether a marker is drawn at the shape's center.
// The default comes from the shape's [conic.Display].
func CenterMarker(show bool) StyleOption {
	return func(l *layer) error {
		l.marker = show
		return nil
	}
}

// Add adds a shape to the figure. The figure reads the shape's points when it
// is drawn, so transforms applied after Add are reflected in the output.
func (f *Figure) Add(c conic.Conic, opts ...StyleOption) error {
	l := layer{
		shape:  c,
		token:  DefaultColor,
		color:  shortColors[DefaultColor],
		marker: c.Display().CenterMarker,
	}
	for _, opt := range opts {
		if err := opt(&l); err != nil {
			return errors.Wrapf(err, "styling %s", c.Kind())
		}
	}
	f.layers = append(f.layers, l)
	f.logger.Debug("added shape", "kind", c.Kind(), "points", c.EdgeCount(), "color", l.token, "center_marker", l.marker)
	return nil
}

// Len returns the number of shapes in the figure.
func (f *Figure) Len() int { return len(f.layers) }

// Size returns the size of the figure in pixels. It is BaseWidth×BaseHeight
// scaled by the zoom, except for figures with a bounded viewport, which
// shrink along one side to the viewport's aspect ratio so that both axes
// keep the same scale.
func (f *Figure) Size() conic.Size {
	sz := conic.Sz(BaseWidth, BaseHeight).Scale(f.zoom / 100)
	vp, ok := f.viewport()
	if !ok {
		return sz
	}
	aspect := vp.Size().AspectRatio()
	if aspect > sz.AspectRatio() {
		sz.Height = sz.Width / aspect
	} else {
		sz.Width = sz.Height * aspect
	}
	return sz
}

// viewport returns the union of the viewports of all bounded shapes.
func (f *Figure) viewport() (conic.Rect, bool) {
	vp := conic.EmptyRect
	for _, l := range f.layers {
		if d := l.shape.Display(); d.Bounded {
			vp = vp.Union(d.Viewport)
		}
	}
	return vp, !vp.IsEmpty()
}

// Bounds returns the region of world space shown by the figure.
//
// If any shape asks for a bounded viewport, the figure shows the union of
// all such viewports, exactly, and [Figure.Size] follows its aspect ratio.
// Otherwise it shows every shape and its center marker with a small margin,
// with the shorter side extended so that both axes use the same scale.
func (f *Figure) Bounds() conic.Rect {
	if vp, ok := f.viewport(); ok {
		return vp
	}
	data := conic.EmptyRect
	for _, l := range f.layers {
		data = data.Union(l.shape.BoundingBox())
		if l.marker {
			data = data.UnionPoint(l.shape.Center())
		}
	}
	if data.IsEmpty() {
		return conic.Rect{X0: -1, Y0: -1, X1: 1, Y1: 1}
	}
	w, h := data.Size().Splat()
	if w == 0 {
		w = max(h, 1)
	}
	if h == 0 {
		h = max(w, 1)
	}
	data = data.Inflate(margin*w, margin*h)
	return scaled(data, f.Size().AspectRatio())
}

// scaled grows r along one axis until its aspect ratio is aspect.
func scaled(r conic.Rect, aspect float64) conic.Rect {
	w, h := r.Size().Splat()
	if w/h < aspect {
		return r.Inflate((h*aspect-w)/2, 0)
	}
	return r.Inflate(0, (w/aspect-h)/2)
}

// niceStep returns a tic distance of 1, 2 or 5 times a power of ten that
// puts roughly five tics on an axis of length span.
func niceStep(span float64) float64 {
	raw := span / 5
	if !(raw > 0) || math.IsInf(raw, 0) {
		return 1
	}
	mag := math.Pow(10, math.Floor(math.Log10(raw)))
	switch f := raw / mag; {
	case f < 1.5:
		return mag
	case f < 3.5:
		return 2 * mag
	case f < 7.5:
		return 5 * mag
	default:
		return 10 * mag
	}
}

// runs returns the parts of a shape that are drawn as connected lines,
// in world space.
func runs(c conic.Conic) [][]conic.Point {
	if h, ok := c.(*conic.Hyperbola); ok {
		return h.Branches()
	}
	return [][]conic.Point{c.Render()}
}

// clip splits a run into the maximal sub-runs that lie within r.
func clip(run []conic.Point, r conic.Rect) [][]conic.Point {
	var out [][]conic.Point
	start := -1
	for i, pt := range run {
		if r.Contains(pt) {
			if start < 0 {
				start = i
			}
			continue
		}
		if start >= 0 {
			out = append(out, run[start:i:i])
			start = -1
		}
	}
	if start >= 0 {
		out = append(out, run[start:len(run):len(run)])
	}
	return out
}

func splitXY(pts []conic.Point) (xs, ys []float64) {
	xs = make([]float64, len(pts))
	ys = make([]float64, len(pts))
	for i, pt := range pts {
		xs[i], ys[i] = pt.Splat()
	}
	return xs, ys
}

// Chart builds the chart of the figure.
func (f *Figure) Chart() *chart.ScatterChart {
	bounds := f.Bounds()
	c := &chart.ScatterChart{Title: f.title}
	c.Key.Hide = true
	c.XRange.Fixed(bounds.X0, bounds.X1, niceStep(bounds.Width()))
	c.YRange.Fixed(bounds.Y0, bounds.Y1, niceStep(bounds.Height()))
	c.XRange.TicSetting.Grid = chart.GridLines
	c.YRange.TicSetting.Grid = chart.GridLines

	for i, l := range f.layers {
		line := chart.Style{
			Symbol:    '*',
			LineStyle: chart.SolidLine,
			LineWidth: 1,
			LineColor: l.color,
		}
		name := fmt.Sprintf("%s %d", l.shape.Kind(), i)
		var n, dropped int
		for _, run := range runs(l.shape) {
			for _, part := range clip(run, bounds) {
				if len(part) < 2 {
					dropped += len(part)
					continue
				}
				xs, ys := splitXY(part)
				c.AddDataPair(name, xs, ys, chart.PlotStyleLines, line)
				n++
			}
		}
		if n == 0 {
			f.logger.Warn("shape is outside of the figure", "name", name, "bounds", bounds)
		}
		f.logger.Trace("drew shape", "name", name, "lines", n, "isolated_points", dropped)

		if !l.marker || !bounds.Contains(l.shape.Center()) {
			continue
		}
		center := l.shape.Center()
		c.AddDataPair(name+" center", []float64{center.X}, []float64{center.Y}, chart.PlotStylePoints, chart.Style{
			Symbol:      'o',
			SymbolColor: l.color,
			SymbolSize:  1,
		})
	}
	return c
}

// WriteSVG draws the figure as an SVG document.
func (f *Figure) WriteSVG(w io.Writer) error {
	sz := f.Size().Round()
	width, height := int(sz.Width), int(sz.Height)
	ew := &errWriter{w: w}
	s := svg.New(ew)
	s.Start(width, height)
	s.Rect(0, 0, width, height, "fill: #ffffff")
	sgr := svgg.AddTo(s, 0, 0, width, height, "", 12, white)
	f.Chart().Plot(sgr)
	s.End()
	if ew.err != nil {
		return errors.Wrap(ew.err, "writing SVG")
	}
	f.logger.Debug("wrote figure", "format", "svg", "width", width, "height", height, "shapes", len(f.layers))
	return nil
}

// Text draws the figure as text, cols characters wide and rows lines high.
func (f *Figure) Text(cols, rows int) string {
	tgr := txtg.New(cols, rows)
	f.Chart().Plot(tgr)
	return tgr.String()
}

// errWriter remembers the first error of w and discards all writes after it,
// as svgo doesn't report errors.
type errWriter struct {
	w   io.Writer
	err error
}

func (ew *errWriter) Write(b []byte) (int, error) {
	if ew.err != nil {
		return 0, ew.err
	}
	n, err := ew.w.Write(b)
	ew.err = err
	return n, err
}
