package canvasui

// Option configures a widget call.
type Option func(*options)

// options holds widget configuration keyed by option name.
type options struct {
	extensions map[string]any
}

// OptKey is a typed key for widget options. Built-in keys are declared below;
// packages building their own widgets on IArea can declare more.
//
//	var OptGlow = canvasui.NewOptKey("glow", false)
//	...
//	glow := canvasui.ApplyAndGet(opts, OptGlow)
type OptKey[T any] struct {
	name string
	def  T
}

// NewOptKey creates a typed option key with a default value.
// The default is returned when the option is not set.
func NewOptKey[T any](name string, defaultValue T) OptKey[T] {
	return OptKey[T]{name: name, def: defaultValue}
}

// Name returns the key name.
func (k OptKey[T]) Name() string { return k.name }

// Default returns the default value for this key.
func (k OptKey[T]) Default() T { return k.def }

// WithOpt sets an option value using a typed key.
func WithOpt[T any](key OptKey[T], value T) Option {
	return func(o *options) {
		if o.extensions == nil {
			o.extensions = make(map[string]any)
		}
		o.extensions[key.name] = value
	}
}

// GetOpt retrieves an option value, or the key's default when unset.
func GetOpt[T any](o options, key OptKey[T]) T {
	v, ok := o.extensions[key.name]
	if !ok {
		return key.def
	}
	typed, ok := v.(T)
	if !ok {
		return key.def
	}
	return typed
}

// HasOpt returns true if the option was explicitly set.
func HasOpt[T any](o options, key OptKey[T]) bool {
	_, ok := o.extensions[key.name]
	return ok
}

// applyOptions applies all options and returns the configuration.
func applyOptions(opts []Option) options {
	var o options
	for _, opt := range opts {
		opt(&o)
	}
	return o
}

// ApplyAndGet applies options and returns a single value.
func ApplyAndGet[T any](opts []Option, key OptKey[T]) T {
	return GetOpt(applyOptions(opts), key)
}

// ApplyAndCheck returns the option value and whether it was explicitly set.
func ApplyAndCheck[T any](opts []Option, key OptKey[T]) (T, bool) {
	o := applyOptions(opts)
	return GetOpt(o, key), HasOpt(o, key)
}

// Built-in option keys.
var (
	OptFontScale = NewOptKey[float64]("fontScale", 0)       // 0 = Style.FontScale
	OptColor     = NewOptKey[Color]("color", 0)             // Widget-specific color
	OptSize      = NewOptKey("size", Size{})                // Explicit widget size
	OptStep      = NewOptKey[float64]("step", 0)            // Counter step, trackbar discrete step
	OptFormat    = NewOptKey("format", "")                  // fmt verb for values
	OptSegments  = NewOptKey("segments", 1)                 // Trackbar labelled segments
	OptTrackbar  = NewOptKey[TrackbarOption]("trackbar", 0) // Trackbar option bits
)

// WithFontScale sets the font scale of a widget.
func WithFontScale(scale float64) Option { return WithOpt(OptFontScale, scale) }

// WithColor sets the main color of a widget: the inside of a button, the
// label of a checkbox, the text color, the line of a sparkline.
func WithColor(c Color) Option { return WithOpt(OptColor, c) }

// WithSize gives a button an explicit size instead of fitting its label.
func WithSize(w, h int) Option { return WithOpt(OptSize, Size{W: w, H: h}) }

// WithStep sets the counter increment or the discrete trackbar step.
func WithStep(step float64) Option { return WithOpt(OptStep, step) }

// WithFormat sets the fmt format of counter values and trackbar labels.
func WithFormat(format string) Option { return WithOpt(OptFormat, format) }

// WithSegments sets how many labelled segments a trackbar shows.
func WithSegments(n int) Option { return WithOpt(OptSegments, n) }

// WithTrackbarOptions sets trackbar option bits.
func WithTrackbarOptions(bits TrackbarOption) Option { return WithOpt(OptTrackbar, bits) }

// fontScale resolves OptFontScale against the style.
func (rt *Runtime) fontScale(o options) float64 {
	if s := GetOpt(o, OptFontScale); s > 0 {
		return s
	}
	return rt.style.FontScale
}

// optColor resolves OptColor, falling back to def when unset.
func optColor(o options, def Color) Color {
	if HasOpt(o, OptColor) {
		return GetOpt(o, OptColor)
	}
	return def
}
