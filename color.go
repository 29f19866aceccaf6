package canvasui

import (
	"fmt"
	"image/color"
	"strconv"
	"strings"

	"golang.org/x/image/colornames"
)

// Color is a packed 0xAARRGGBB color. The alpha byte is inverted compared to
// image/color: 0x00 is fully opaque, 0xFF is fully transparent (nothing is
// filled) and values in between blend with weight 1 - a/255. Plain 0xRRGGBB
// literals are therefore opaque.
type Color uint32

// Colors shared by widgets and the default style.
const (
	ColorNone   Color = 0xFF000000 // No fill
	ColorWhite  Color = 0xFFFFFF
	ColorBlack  Color = 0x000000
	ColorGreen  Color = 0x00FF00
	ColorRed    Color = 0xFF0000
	ColorYellow Color = 0xFFFF00
)

// Hex builds a color from a 0xRRGGBB value and an inverted alpha byte.
func Hex(rgb uint32, alpha uint8) Color {
	return Color(uint32(alpha)<<24 | rgb&0xFFFFFF)
}

// Components returns the alpha, red, green and blue bytes.
func (c Color) Components() (a, r, g, b uint8) {
	return uint8(c >> 24), uint8(c >> 16), uint8(c >> 8), uint8(c)
}

// Transparent reports whether the color paints nothing when used as a fill.
func (c Color) Transparent() bool {
	return uint8(c>>24) == 0xFF
}

// Opacity returns the blend weight of the color in [0, 1].
func (c Color) Opacity() float64 {
	return 1 - float64(uint8(c>>24))/255
}

// Opaque returns the color with its alpha byte cleared.
func (c Color) Opaque() Color {
	return c & 0xFFFFFF
}

// RGBA returns the opaque image/color value of the color's RGB channels.
func (c Color) RGBA() color.RGBA {
	_, r, g, b := c.Components()
	return color.RGBA{R: r, G: g, B: b, A: 0xFF}
}

// Brighten adds delta to each RGB channel, saturating at 0xFF.
// The alpha byte of c is kept.
func (c Color) Brighten(delta Color) Color {
	a, r, g, b := c.Components()
	_, dr, dg, db := delta.Components()
	return Color(uint32(a)<<24 | uint32(addSat(r, dr))<<16 | uint32(addSat(g, dg))<<8 | uint32(addSat(b, db)))
}

// Darken subtracts delta from each RGB channel, saturating at 0.
// The alpha byte of c is kept.
func (c Color) Darken(delta Color) Color {
	a, r, g, b := c.Components()
	_, dr, dg, db := delta.Components()
	return Color(uint32(a)<<24 | uint32(subSat(r, dr))<<16 | uint32(subSat(g, dg))<<8 | uint32(subSat(b, db)))
}

// Brightness returns the luma of the color (ITU-R BT.601 weights).
func (c Color) Brightness() uint8 {
	_, r, g, b := c.Components()
	return uint8((299*uint32(r) + 587*uint32(g) + 114*uint32(b) + 500) / 1000)
}

// String formats the color as 0xAARRGGBB, or 0xRRGGBB when opaque.
func (c Color) String() string {
	if c>>24 == 0 {
		return fmt.Sprintf("0x%06X", uint32(c))
	}
	return fmt.Sprintf("0x%08X", uint32(c))
}

// MarshalText implements encoding.TextMarshaler.
func (c Color) MarshalText() ([]byte, error) {
	return []byte(c.String()), nil
}

// UnmarshalText accepts "0xRRGGBB", "0xAARRGGBB", "#RRGGBB", "#AARRGGBB" or
// an SVG color name such as "steelblue".
func (c *Color) UnmarshalText(text []byte) error {
	parsed, err := ParseColor(string(text))
	if err != nil {
		return err
	}
	*c = parsed
	return nil
}

// ParseColor parses the textual color forms accepted by UnmarshalText.
func ParseColor(s string) (Color, error) {
	s = strings.TrimSpace(s)
	hex := ""
	switch {
	case strings.HasPrefix(s, "0x"), strings.HasPrefix(s, "0X"):
		hex = s[2:]
	case strings.HasPrefix(s, "#"):
		hex = s[1:]
	default:
		named, ok := colornames.Map[strings.ToLower(s)]
		if !ok {
			return 0, fmt.Errorf("parse color %q: unknown color name", s)
		}
		return Color(uint32(named.R)<<16 | uint32(named.G)<<8 | uint32(named.B)), nil
	}
	if len(hex) != 6 && len(hex) != 8 {
		return 0, fmt.Errorf("parse color %q: want 6 or 8 hex digits", s)
	}
	v, err := strconv.ParseUint(hex, 16, 32)
	if err != nil {
		return 0, fmt.Errorf("parse color %q: %w", s, err)
	}
	return Color(v), nil
}

func addSat(a, b uint8) uint8 {
	if s := uint16(a) + uint16(b); s < 0xFF {
		return uint8(s)
	}
	return 0xFF
}

func subSat(a, b uint8) uint8 {
	if a < b {
		return 0
	}
	return a - b
}
