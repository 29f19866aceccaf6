package canvasui

// DefaultFontScale is the font scale every pixel metric is designed for.
// Widget metrics scale by fontScale / DefaultFontScale.
const DefaultFontScale = 0.4

// Fixed widget metrics at DefaultFontScale.
const (
	CheckboxSize        = 15 // Checkbox glyph side
	CheckboxLabelGap    = 6  // Gap between the glyph and its label
	CounterButtonSize   = 22 // Side of the "-" and "+" counter buttons
	CounterFieldWidth   = 48 // Width of the counter value field
	TrackbarHeight      = 45 // Height of the trackbar content rect
	TrackbarBarHeight   = 7  // Height of the trackbar path
	WindowTitleHeight   = 20 // Height of a window title bar
	ButtonPaddingX      = 30 // Horizontal space around an auto-sized button label
	ButtonPaddingY      = 18 // Vertical space around an auto-sized button label
	DefaultSpace        = 5  // Conventional Space argument
	TrackbarTickCount   = 20 // Step-scale ticks on continuous trackbars
	DefaultTrackbarStep = 1
)

// Style defines the colors and the few tunable metrics of every widget.
// It is plain data: load it from TOML with LoadStyle or build it in code.
type Style struct {
	FontScale       float64 `toml:"font_scale"`
	TrackbarMarginX int     `toml:"trackbar_margin_x"`

	// Text
	TextColor     Color `toml:"text_color"`
	TextDarkColor Color `toml:"text_dark_color"` // Labels on light buttons

	// Buttons
	ButtonColor      Color `toml:"button_color"`
	ButtonBevelDelta Color `toml:"button_bevel_delta"` // 3D outline brighten/darken amount
	ButtonHoverDelta Color `toml:"button_hover_delta"` // Inside brighten on hover, darken on press

	// Checkbox
	CheckboxOutline        Color `toml:"checkbox_outline"`
	CheckboxOutlineHovered Color `toml:"checkbox_outline_hovered"`
	CheckboxBorder         Color `toml:"checkbox_border"`
	CheckboxFill           Color `toml:"checkbox_fill"`
	CheckboxCheck          Color `toml:"checkbox_check"`

	// Counter
	CounterFill   Color `toml:"counter_fill"`
	CounterBorder Color `toml:"counter_border"`

	// Trackbar
	TrackbarPathBorder        Color `toml:"trackbar_path_border"`
	TrackbarPathBorderHovered Color `toml:"trackbar_path_border_hovered"`
	TrackbarPathFill          Color `toml:"trackbar_path_fill"`
	TrackbarPathShadow        Color `toml:"trackbar_path_shadow"`
	TrackbarTick              Color `toml:"trackbar_tick"`
	TrackbarHandleOutline     Color `toml:"trackbar_handle_outline"`
	TrackbarHandleBorder      Color `toml:"trackbar_handle_border"`
	TrackbarHandle            Color `toml:"trackbar_handle"`
	TrackbarHandleHovered     Color `toml:"trackbar_handle_hovered"`

	// Window
	WindowBorder    Color `toml:"window_border"`
	WindowTitleFill Color `toml:"window_title_fill"`
	WindowBodyFill  Color `toml:"window_body_fill"`

	// Sparkline
	SparklineColor Color `toml:"sparkline_color"`
}

// DefaultStyle returns the dark style widgets are designed around.
func DefaultStyle() Style {
	return Style{
		FontScale:       DefaultFontScale,
		TrackbarMarginX: 14,

		TextColor:     0xCECECE,
		TextDarkColor: 0x323232,

		ButtonColor:      0x424242,
		ButtonBevelDelta: 0x505050,
		ButtonHoverDelta: 0x101010,

		CheckboxOutline:        0x636363,
		CheckboxOutlineHovered: 0x808080,
		CheckboxBorder:         0x171717,
		CheckboxFill:           0x292929,
		CheckboxCheck:          0x75BFFF,

		CounterFill:   0x292929,
		CounterBorder: 0x454545,

		TrackbarPathBorder:        0x3E3E3E,
		TrackbarPathBorderHovered: 0x4E4E4E,
		TrackbarPathFill:          0x292929,
		TrackbarPathShadow:        0x0E0E0E,
		TrackbarTick:              0x515151,
		TrackbarHandleOutline:     0x212121,
		TrackbarHandleBorder:      0x515151,
		TrackbarHandle:            0x424242,
		TrackbarHandleHovered:     0x525252,

		WindowBorder:    0x4A4A4A,
		WindowTitleFill: 0x212121,
		WindowBodyFill:  0x313131,

		SparklineColor: ColorGreen,
	}
}

// LightStyle returns a light variant. Button labels switch to TextDarkColor
// automatically because the button color is bright.
func LightStyle() Style {
	s := DefaultStyle()
	s.TextColor = 0x202020
	s.ButtonColor = 0xC8C8C8
	s.CheckboxFill = 0xF0F0F0
	s.CheckboxBorder = 0x9A9A9A
	s.CheckboxCheck = 0x2F7FD0
	s.CounterFill = 0xF0F0F0
	s.CounterBorder = 0xA0A0A0
	s.TrackbarPathFill = 0xE0E0E0
	s.TrackbarPathShadow = 0xB0B0B0
	s.TrackbarTick = 0x8A8A8A
	s.TrackbarHandle = 0xC8C8C8
	s.TrackbarHandleHovered = 0xD8D8D8
	s.WindowBorder = 0xA0A0A0
	s.WindowTitleFill = 0xD0D0D0
	s.WindowBodyFill = 0xEDEDED
	s.SparklineColor = 0x1E7F3A
	return s
}

// scaleRatio returns the multiplier applied to design metrics for a font
// scale.
func scaleRatio(fontScale float64) float64 {
	return fontScale / DefaultFontScale
}
