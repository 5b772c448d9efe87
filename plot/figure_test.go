package plot

import (
	"bytes"
	"errors"
	"strings"
	"testing"

	"github.com/hashicorp/go-hclog"
	"github.com/stretchr/testify/require"

	"honnef.co/go/conic"
)

func newFigure(t *testing.T, opts ...Option) *Figure {
	t.Helper()
	f, err := New(opts...)
	require.NoError(t, err)
	return f
}

func TestZoom(t *testing.T) {
	f := newFigure(t)
	require.Equal(t, conic.Sz(640, 480), f.Size())

	f = newFigure(t, WithZoom(150))
	require.Equal(t, conic.Sz(960, 720), f.Size())

	for _, zoom := range []float64{0, -10} {
		_, err := New(WithZoom(zoom))
		require.ErrorIs(t, err, conic.ErrInvalidParameter)
	}
}

func TestZoomKeepsGeometry(t *testing.T) {
	c, err := conic.NewCircle(3)
	require.NoError(t, err)

	small := newFigure(t, WithZoom(50))
	large := newFigure(t, WithZoom(200))
	require.NoError(t, small.Add(c))
	require.NoError(t, large.Add(c))
	require.Equal(t, small.Bounds(), large.Bounds())
}

func TestHyperbolaBounds(t *testing.T) {
	h, err := conic.NewHyperbola(2, conic.WithSemiMinor(1))
	require.NoError(t, err)

	f := newFigure(t)
	require.NoError(t, f.Add(h))
	require.Equal(t, conic.Rect{X0: -20, Y0: -10, X1: 20, Y1: 10}, f.Bounds())

	// A bounded shape fixes the view, even when other shapes are larger.
	c, err := conic.NewCircle(50)
	require.NoError(t, err)
	require.NoError(t, f.Add(c))
	require.Equal(t, conic.Rect{X0: -20, Y0: -10, X1: 20, Y1: 10}, f.Bounds())
}

func TestBoundedFigureKeepsScale(t *testing.T) {
	tests := []struct {
		a, b float64
		zoom float64
		want conic.Size
	}{
		{2, 1, 100, conic.Sz(640, 320)},
		{1, 1, 100, conic.Sz(480, 480)},
		{1, 3, 150, conic.Sz(240, 720)},
	}
	for _, tt := range tests {
		h, err := conic.NewHyperbola(tt.a, conic.WithSemiMinor(tt.b))
		require.NoError(t, err)
		f := newFigure(t, WithZoom(tt.zoom))
		require.NoError(t, f.Add(h))

		sz, b := f.Size(), f.Bounds()
		require.InDelta(t, tt.want.Width, sz.Width, 1e-9)
		require.InDelta(t, tt.want.Height, sz.Height, 1e-9)
		// Pixels per unit agree on both axes.
		require.InDelta(t, sz.Width/b.Width(), sz.Height/b.Height(), 1e-9)
	}
}

func TestBoundedFigureSVGSize(t *testing.T) {
	h, err := conic.NewHyperbola(2, conic.WithSemiMinor(1))
	require.NoError(t, err)
	f := newFigure(t)
	require.NoError(t, f.Add(h))

	var buf bytes.Buffer
	require.NoError(t, f.WriteSVG(&buf))
	require.Contains(t, buf.String(), `<svg width="640" height="320"`)
}

func TestEqualAspect(t *testing.T) {
	e, err := conic.NewEllipse(3, conic.WithSemiMinor(2), conic.WithCenter(conic.Pt(1, 1)))
	require.NoError(t, err)

	f := newFigure(t)
	require.NoError(t, f.Add(e))
	b := f.Bounds()
	require.InDelta(t, 640.0/480.0, b.Width()/b.Height(), 1e-9)

	bbox := e.BoundingBox()
	require.True(t, b.Contains(conic.Pt(bbox.X0, bbox.Y0)))
	require.True(t, b.Contains(conic.Pt(bbox.X1, bbox.Y1)))
	// The sampled locus isn't exactly symmetric.
	require.InDelta(t, 1.0, (b.X0+b.X1)/2, 0.01)
}

func TestEmptyFigure(t *testing.T) {
	f := newFigure(t)
	require.Equal(t, 0, f.Len())
	require.Equal(t, conic.Rect{X0: -1, Y0: -1, X1: 1, Y1: 1}, f.Bounds())
}

func TestCenterMarkerDefaults(t *testing.T) {
	h, err := conic.NewHyperbola(1)
	require.NoError(t, err)
	p, err := conic.NewParabola(1)
	require.NoError(t, err)

	f := newFigure(t)
	require.NoError(t, f.Add(h))
	require.NoError(t, f.Add(p, Color("r"), CenterMarker(false)))
	require.False(t, f.layers[0].marker)
	require.False(t, f.layers[1].marker)
	require.Equal(t, shortColors["r"], f.layers[1].color)

	require.NoError(t, f.Add(h, CenterMarker(true)))
	require.True(t, f.layers[2].marker)
}

func TestAddRejectsBadColor(t *testing.T) {
	c, err := conic.NewCircle(1)
	require.NoError(t, err)
	f := newFigure(t)
	require.Error(t, f.Add(c, Color("no such color")))
	require.Equal(t, 0, f.Len())
}

func TestClip(t *testing.T) {
	r := conic.Rect{X0: 0, Y0: 0, X1: 10, Y1: 10}
	run := []conic.Point{
		conic.Pt(1, 1), conic.Pt(2, 2), conic.Pt(20, 2), conic.Pt(3, 3),
		conic.Pt(-1, 0), conic.Pt(4, 4), conic.Pt(5, 5),
	}
	got := clip(run, r)
	want := [][]conic.Point{
		{conic.Pt(1, 1), conic.Pt(2, 2)},
		{conic.Pt(3, 3)},
		{conic.Pt(4, 4), conic.Pt(5, 5)},
	}
	require.Equal(t, want, got)
	require.Empty(t, clip([]conic.Point{conic.Pt(-5, -5)}, r))
}

func TestNiceStep(t *testing.T) {
	tests := map[float64]float64{
		40:   10,
		20:   5,
		10:   2,
		5:    1,
		0.5:  0.1,
		1234: 200,
		0:    1,
	}
	for span, want := range tests {
		require.InDelta(t, want, niceStep(span), 1e-12, "span %g", span)
	}
}

func TestChart(t *testing.T) {
	h, err := conic.NewHyperbola(2, conic.WithSemiMinor(1))
	require.NoError(t, err)
	c, err := conic.NewCircle(5)
	require.NoError(t, err)

	f := newFigure(t, WithTitle("conics"))
	require.NoError(t, f.Add(h, Color("g")))
	require.NoError(t, f.Add(c))
	ch := f.Chart()
	require.Equal(t, "conics", ch.Title)
	require.True(t, ch.Key.Hide)
	require.Equal(t, -20.0, ch.XRange.MinMode.Value)
	require.Equal(t, 20.0, ch.XRange.MaxMode.Value)
	require.Equal(t, -10.0, ch.YRange.MinMode.Value)
	require.Equal(t, 10.0, ch.YRange.MaxMode.Value)

	// Both hyperbola arms plus the circle and its center; the right arm is
	// drawn as two lines because the parametrization wraps around.
	require.Len(t, ch.Data, 5)
	for _, d := range ch.Data[:4] {
		for _, pt := range d.Samples {
			require.True(t, pt.X >= -20 && pt.X <= 20 && pt.Y >= -10 && pt.Y <= 10, "%v outside of the figure", pt)
		}
	}
}

func TestWriteSVG(t *testing.T) {
	e, err := conic.NewEllipse(3, conic.WithSemiMinor(2))
	require.NoError(t, err)
	require.NoError(t, e.Rotate(30))

	var logs bytes.Buffer
	logger := hclog.New(&hclog.LoggerOptions{
		Name:   "plot",
		Level:  hclog.Debug,
		Output: &logs,
	})
	f := newFigure(t, WithZoom(150), WithLogger(logger))
	require.NoError(t, f.Add(e, Color("steelblue")))

	var buf bytes.Buffer
	require.NoError(t, f.WriteSVG(&buf))
	out := buf.String()
	require.Contains(t, out, `<svg width="960" height="720"`)
	require.True(t, strings.HasSuffix(strings.TrimSpace(out), "</svg>"))
	require.Contains(t, logs.String(), "added shape")
	require.Contains(t, logs.String(), "wrote figure")
}

type failingWriter struct{}

var errDiskFull = errors.New("disk full")

func (failingWriter) Write([]byte) (int, error) { return 0, errDiskFull }

func TestWriteSVGError(t *testing.T) {
	c, err := conic.NewCircle(1)
	require.NoError(t, err)
	f := newFigure(t)
	require.NoError(t, f.Add(c))
	require.ErrorIs(t, f.WriteSVG(failingWriter{}), errDiskFull)
}

func TestText(t *testing.T) {
	c, err := conic.NewCircle(5)
	require.NoError(t, err)
	f := newFigure(t)
	require.NoError(t, f.Add(c))
	out := f.Text(60, 30)
	require.Contains(t, out, "*")
	require.Contains(t, out, "o")
}
