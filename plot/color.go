package plot

import (
	"encoding/hex"
	"image/color"
	"strings"

	"github.com/pkg/errors"
	"golang.org/x/image/colornames"
)

// DefaultColor is the color token used for shapes added without one.
const DefaultColor = "b"

// shortColors are the single letter color codes familiar from MATLAB and
// matplotlib.
var shortColors = map[string]color.RGBA{
	"b": {0x00, 0x00, 0xff, 0xff},
	"g": {0x00, 0x80, 0x00, 0xff},
	"r": {0xff, 0x00, 0x00, 0xff},
	"c": {0x00, 0xbf, 0xbf, 0xff},
	"m": {0xbf, 0x00, 0xbf, 0xff},
	"y": {0xbf, 0xbf, 0x00, 0xff},
	"k": {0x00, 0x00, 0x00, 0xff},
	"w": {0xff, 0xff, 0xff, 0xff},
}

// ParseColor parses a color token. Accepted are the single letters b, g, r,
// c, m, y, k and w, SVG color names such as "steelblue", and hex triplets
// of the form #rrggbb or #rgb.
func ParseColor(token string) (color.RGBA, error) {
	s := strings.ToLower(strings.TrimSpace(token))
	if c, ok := shortColors[s]; ok {
		return c, nil
	}
	if c, ok := colornames.Map[s]; ok {
		return c, nil
	}
	if strings.HasPrefix(s, "#") {
		return parseHex(s[1:])
	}
	return color.RGBA{}, errors.Errorf("unknown color %q", token)
}

func parseHex(s string) (color.RGBA, error) {
	if len(s) == 3 {
		s = string([]byte{s[0], s[0], s[1], s[1], s[2], s[2]})
	}
	if len(s) != 6 {
		return color.RGBA{}, errors.Errorf("malformed hex color #%s", s)
	}
	b, err := hex.DecodeString(s)
	if err != nil {
		return color.RGBA{}, errors.Wrapf(err, "malformed hex color #%s", s)
	}
	return color.RGBA{b[0], b[1], b[2], 0xff}, nil
}
