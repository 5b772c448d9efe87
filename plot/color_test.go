package plot

import (
	"image/color"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestParseColor(t *testing.T) {
	tests := []struct {
		token string
		want  color.RGBA
	}{
		{"b", color.RGBA{0, 0, 0xff, 0xff}},
		{"R", color.RGBA{0xff, 0, 0, 0xff}},
		{"k", color.RGBA{0, 0, 0, 0xff}},
		{"steelblue", color.RGBA{0x46, 0x82, 0xb4, 0xff}},
		{" Orange ", color.RGBA{0xff, 0xa5, 0x00, 0xff}},
		{"#ff8000", color.RGBA{0xff, 0x80, 0x00, 0xff}},
		{"#F80", color.RGBA{0xff, 0x88, 0x00, 0xff}},
	}
	for _, tt := range tests {
		got, err := ParseColor(tt.token)
		require.NoError(t, err, tt.token)
		require.Equal(t, tt.want, got, tt.token)
	}
}

func TestParseColorErrors(t *testing.T) {
	for _, token := range []string{"", "blu", "#12345", "#gggggg", "#"} {
		_, err := ParseColor(token)
		require.Error(t, err, "token %q", token)
	}
}
