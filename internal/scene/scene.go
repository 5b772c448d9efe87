// Package scene loads TOML descriptions of figures made of conic sections.
//
// A scene looks like this:
//
//	[figure]
//	title = "conics"
//	zoom = 150.0
//
//	[[shape]]
//	kind = "ellipse"
//	a = 3.0
//	b = 2.0
//	center = [1.0, 1.0]
//	translate = [[2.0, 0.0]]
//	rotate = 30.0
//	color = "r"
//
// Circles take a radius r, parabolas a focal parameter p, ellipses and
// hyperbolas a semi-major axis a and optionally a semi-minor axis b. All
// numbers have to be written as floats.
package scene

import (
	"fmt"
	"slices"

	"github.com/BurntSushi/toml"
	"github.com/hashicorp/go-hclog"
	"github.com/pkg/errors"

	"honnef.co/go/conic"
	"honnef.co/go/conic/plot"
)

type Scene struct {
	Figure Figure  `toml:"figure"`
	Shapes []Shape `toml:"shape"`
}

type Figure struct {
	Title string  `toml:"title"`
	Zoom  float64 `toml:"zoom"`
}

type Shape struct {
	Kind string `toml:"kind"`

	A *float64 `toml:"a"`
	B *float64 `toml:"b"`
	R *float64 `toml:"r"`
	P *float64 `toml:"p"`

	Center []float64 `toml:"center"`
	// Translate lists translations that are applied in order.
	Translate [][]float64 `toml:"translate"`
	Rotate    float64     `toml:"rotate"`

	Color        string `toml:"color"`
	CenterMarker *bool  `toml:"center_marker"`
}

// Load reads a scene from a file.
func Load(path string) (*Scene, error) {
	var s Scene
	md, err := toml.DecodeFile(path, &s)
	if err != nil {
		return nil, errors.Wrapf(err, "loading scene %s", path)
	}
	return check(&s, md)
}

// Parse reads a scene from a string.
func Parse(data string) (*Scene, error) {
	var s Scene
	md, err := toml.Decode(data, &s)
	if err != nil {
		return nil, errors.Wrap(err, "parsing scene")
	}
	return check(&s, md)
}

func check(s *Scene, md toml.MetaData) (*Scene, error) {
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		return nil, errors.Errorf("undecoded fields in scene: %v", undecoded)
	}
	if len(s.Shapes) == 0 {
		return nil, errors.New("scene has no shapes")
	}
	return s, nil
}

// Item is a shape that is ready to be added to a figure.
type Item struct {
	Shape conic.Conic
	Style []plot.StyleOption
}

// Build constructs and transforms all shapes of the scene.
func (s *Scene) Build() ([]Item, error) {
	items := make([]Item, 0, len(s.Shapes))
	for i, sh := range s.Shapes {
		item, err := sh.build()
		if err != nil {
			return nil, errors.Wrapf(err, "shape %d", i)
		}
		items = append(items, item)
	}
	return items, nil
}

// Render builds all shapes and adds them to a new figure.
func (s *Scene) Render(logger hclog.Logger) (*plot.Figure, error) {
	opts := []plot.Option{plot.WithLogger(logger.Named("plot"))}
	if s.Figure.Title != "" {
		opts = append(opts, plot.WithTitle(s.Figure.Title))
	}
	if s.Figure.Zoom != 0 {
		opts = append(opts, plot.WithZoom(s.Figure.Zoom))
	}
	f, err := plot.New(opts...)
	if err != nil {
		return nil, errors.Wrap(err, "creating figure")
	}
	items, err := s.Build()
	if err != nil {
		return nil, err
	}
	for i, item := range items {
		if err := f.Add(item.Shape, item.Style...); err != nil {
			return nil, errors.Wrapf(err, "shape %d", i)
		}
		logger.Debug("placed shape", "index", i, "kind", item.Shape.Kind(),
			"center", item.Shape.Center().String(), "angle", item.Shape.Angle())
	}
	return f, nil
}

func (sh *Shape) build() (Item, error) {
	kind, err := conic.ParseKind(sh.Kind)
	if err != nil {
		return Item{}, err
	}
	var opts []conic.Option
	if sh.Center != nil {
		pt, err := point("center", sh.Center)
		if err != nil {
			return Item{}, err
		}
		opts = append(opts, conic.WithCenter(pt))
	}

	var c conic.Conic
	switch kind {
	case conic.CircleKind:
		if err := sh.reject(kind, "r"); err != nil {
			return Item{}, err
		}
		if sh.R == nil {
			return Item{}, errors.Errorf("%s needs r", kind)
		}
		c, err = conic.NewCircle(*sh.R, opts...)
	case conic.ParabolaKind:
		if err := sh.reject(kind, "p"); err != nil {
			return Item{}, err
		}
		if sh.P == nil {
			return Item{}, errors.Errorf("%s needs p", kind)
		}
		c, err = conic.NewParabola(*sh.P, opts...)
	case conic.EllipseKind, conic.HyperbolaKind:
		if err := sh.reject(kind, "a", "b"); err != nil {
			return Item{}, err
		}
		if sh.A == nil {
			return Item{}, errors.Errorf("%s needs a", kind)
		}
		if sh.B != nil {
			opts = append(opts, conic.WithSemiMinor(*sh.B))
		}
		if kind == conic.EllipseKind {
			c, err = conic.NewEllipse(*sh.A, opts...)
		} else {
			c, err = conic.NewHyperbola(*sh.A, opts...)
		}
	}
	if err != nil {
		return Item{}, err
	}

	for i, tr := range sh.Translate {
		v, err := point(fmt.Sprintf("translate[%d]", i), tr)
		if err != nil {
			return Item{}, err
		}
		c.Translate(conic.Vec2(v))
	}
	if err := c.Rotate(sh.Rotate); err != nil {
		return Item{}, err
	}

	var style []plot.StyleOption
	if sh.Color != "" {
		style = append(style, plot.Color(sh.Color))
	}
	if sh.CenterMarker != nil {
		style = append(style, plot.CenterMarker(*sh.CenterMarker))
	}
	return Item{Shape: c, Style: style}, nil
}

// reject fails if the shape sets a size parameter other than the allowed
// ones.
func (sh *Shape) reject(kind conic.Kind, allowed ...string) error {
	params := []struct {
		name string
		v    *float64
	}{{"a", sh.A}, {"b", sh.B}, {"r", sh.R}, {"p", sh.P}}
	for _, p := range params {
		if p.v != nil && !slices.Contains(allowed, p.name) {
			return errors.Wrapf(conic.ErrUnsupportedAttribute, "%s doesn't take %s", kind, p.name)
		}
	}
	return nil
}

func point(name string, xy []float64) (conic.Point, error) {
	if len(xy) != 2 {
		return conic.Point{}, errors.Errorf("%s has %d coordinates, want 2", name, len(xy))
	}
	pt := conic.Pt(xy[0], xy[1])
	if !pt.IsFinite() {
		return conic.Point{}, errors.Wrapf(conic.ErrInvalidParameter, "%s %s", name, pt)
	}
	return pt, nil
}
