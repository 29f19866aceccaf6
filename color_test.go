package canvasui_test

import (
	"image/color"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/go-theft-auto/canvasui"
)

func TestColor_Alpha(t *testing.T) {
	assert.False(t, canvasui.Color(0x123456).Transparent())
	assert.True(t, canvasui.ColorNone.Transparent())
	assert.InDelta(t, 1.0, canvasui.Color(0x123456).Opacity(), 1e-9)
	assert.InDelta(t, 0.0, canvasui.ColorNone.Opacity(), 1e-9)
	assert.InDelta(t, 0.5, canvasui.Hex(0, 0x80).Opacity(), 0.01)

	assert.Equal(t, canvasui.Color(0x123456), canvasui.Hex(0xAB123456, 0x40).Opaque())
	assert.Equal(t, color.RGBA{R: 0x12, G: 0x34, B: 0x56, A: 0xFF}, canvasui.Hex(0x123456, 0x40).RGBA())
}

func TestColor_BrightenDarken(t *testing.T) {
	c := canvasui.Color(0x424242)

	assert.Equal(t, canvasui.Color(0x929292), c.Brighten(0x505050))
	assert.Equal(t, canvasui.Color(0x000000), c.Darken(0x505050), "saturates at zero")
	assert.Equal(t, canvasui.Color(0xFFFF10), canvasui.Color(0xF0F000).Brighten(0x202010), "saturates at 0xFF")
	assert.Equal(t, canvasui.Hex(0x525252, 0x80), canvasui.Hex(0x424242, 0x80).Brighten(0x101010), "alpha is kept")
}

func TestColor_Brightness(t *testing.T) {
	assert.Equal(t, uint8(0), canvasui.ColorBlack.Brightness())
	assert.Equal(t, uint8(0xFF), canvasui.ColorWhite.Brightness())
	assert.Less(t, canvasui.DefaultStyle().ButtonColor.Brightness(), uint8(0x80))
	assert.GreaterOrEqual(t, canvasui.LightStyle().ButtonColor.Brightness(), uint8(0x80))
}

func TestParseColor(t *testing.T) {
	tests := []struct {
		in   string
		want canvasui.Color
	}{
		{"0x75BFFF", 0x75BFFF},
		{"0X75bfff", 0x75BFFF},
		{"#313131", 0x313131},
		{"0x80FF0000", canvasui.Hex(0xFF0000, 0x80)},
		{"#FF000000", canvasui.ColorNone},
		{"white", canvasui.ColorWhite},
		{" SteelBlue ", 0x4682B4},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := canvasui.ParseColor(tt.in)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}

	for _, bad := range []string{"", "#12345", "0xGGGGGG", "notacolor"} {
		_, err := canvasui.ParseColor(bad)
		assert.Error(t, err, bad)
	}
}

func TestColor_String(t *testing.T) {
	assert.Equal(t, "0x75BFFF", canvasui.Color(0x75BFFF).String())
	assert.Equal(t, "0x80FF0000", canvasui.Hex(0xFF0000, 0x80).String())
}
