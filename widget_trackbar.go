package canvasui

import (
	"fmt"
	"math"
)

// TrackbarOption is a bitset customizing trackbar behavior and rendering.
// Combine options with |.
type TrackbarOption uint

const (
	TrackbarHideSegmentLabels TrackbarOption = 1 << iota // No segment labels; min/max labels stay
	TrackbarHideStepScale                                // No small step ticks
	TrackbarDiscrete                                     // Values snap to multiples of the step
	TrackbarHideMinMaxLabels                             // No min/max labels
	TrackbarHideValueLabel                               // No label under the handle
	TrackbarHideLabels                                   // No labels or ticks at all
)

// Has reports whether every bit of opt is set.
func (o TrackbarOption) Has(opt TrackbarOption) bool {
	return o&opt == opt
}

// TrackbarConfig is the resolved configuration of one trackbar call.
type TrackbarConfig struct {
	Min, Max    float64
	Step        float64 // Discrete step; 0 disables snapping
	Segments    int
	Options     TrackbarOption
	LabelFormat string
	FontScale   float64
}

// trackbarConfig resolves widget options into a config.
func (rt *Runtime) trackbarConfig(min, max float64, o options) TrackbarConfig {
	cfg := TrackbarConfig{
		Min:         min,
		Max:         max,
		Step:        DefaultTrackbarStep,
		Segments:    GetOpt(o, OptSegments),
		Options:     GetOpt(o, OptTrackbar),
		LabelFormat: GetOpt(o, OptFormat),
		FontScale:   rt.fontScale(o),
	}
	if HasOpt(o, OptStep) {
		cfg.Step = GetOpt(o, OptStep)
	}
	if cfg.LabelFormat == "" {
		cfg.LabelFormat = "%.1f"
	}
	return cfg
}

// PixelToValue maps an x coordinate inside the content rect r to a value.
// margin is the horizontal space kept free at both ends of the path.
func (cfg TrackbarConfig) PixelToValue(r Rect, margin, px int) float64 {
	ratio := float64(px-(r.X+margin)) / float64(r.W-2*margin)
	return cfg.Min + clamp01(ratio)*(cfg.Max-cfg.Min)
}

// ValueToPixel maps a value to an x coordinate inside the content rect r.
// Values outside [Min, Max] land on the nearest end.
func (cfg TrackbarConfig) ValueToPixel(r Rect, margin int, v float64) int {
	if cfg.Max == cfg.Min {
		return r.X + margin
	}
	ratio := (v - cfg.Min) / (cfg.Max - cfg.Min)
	return int(float64(r.X+margin) + clamp01(ratio)*float64(r.W-2*margin))
}

// Snap rounds v to the nearest multiple of Step counted from Min when the
// trackbar is discrete.
func (cfg TrackbarConfig) Snap(v float64) float64 {
	if !cfg.Options.Has(TrackbarDiscrete) || cfg.Step == 0 {
		return v
	}
	return cfg.Min + math.Round((v-cfg.Min)/cfg.Step)*cfg.Step
}

// TrackbarAt draws a trackbar of width w at (x, y) on c that edits *value
// within [min, max]. It returns true when the value changed this frame.
//
//	canvasui.TrackbarAt(rt, frame, 40, 30, 220, &gain, 0.0, 2.0,
//	    canvasui.WithSegments(4), canvasui.WithFormat("%.2f"))
func TrackbarAt[T Number](rt *Runtime, c Canvas, x, y, w int, value *T, min, max T, opts ...Option) bool {
	return trackbarTyped(rt, rt.screenBlock(c), x, y, w, value, min, max, opts)
}

// Trackbar draws a trackbar at the anchor of the current block.
func Trackbar[T Number](rt *Runtime, w int, value *T, min, max T, opts ...Option) bool {
	b := rt.flowBlock("Trackbar")
	if b == nil {
		return false
	}
	return trackbarTyped(rt, b, b.Anchor.X, b.Anchor.Y, w, value, min, max, opts)
}

func trackbarTyped[T Number](rt *Runtime, b *Block, x, y, w int, value *T, min, max T, opts []Option) bool {
	cfg := rt.trackbarConfig(float64(min), float64(max), applyOptions(opts))
	entry := *value
	v := float64(entry)
	rt.trackbarCore(b, x, y, w, &v, cfg)
	*value = fromFloat[T](v)
	return *value != entry
}

// fromFloat converts back from the float64 core, rounding for integer types.
func fromFloat[T Number](v float64) T {
	half := 0.5
	if T(half) == 0 {
		return T(math.Round(v))
	}
	return T(v)
}

// trackbarCore renders with the entry value, then applies a drag. The
// handle follows on the next frame.
func (rt *Runtime) trackbarCore(b *Block, x, y, w int, value *float64, cfg TrackbarConfig) bool {
	m := rt.mouse("Trackbar")
	k := scaleRatio(cfg.FontScale)
	r := Rect{X: x, Y: y, W: w, H: round(TrackbarHeight * k)}
	entry := *value
	over := r.Contains(m.Position)

	rt.drawTrackbar(b.Canvas, over, r, entry, cfg)

	if m.Any.Pressed && over {
		*value = cfg.Snap(cfg.PixelToValue(r, rt.style.TrackbarMarginX, m.Position.X))
	}

	b.Flow(r.Size())
	return *value != entry
}

func (rt *Runtime) drawTrackbar(c Canvas, over bool, r Rect, v float64, cfg TrackbarConfig) {
	margin := rt.style.TrackbarMarginX
	work := Rect{X: r.X + margin, Y: r.Y, W: r.W - 2*margin, H: r.H}
	barY := work.Y + work.H/2

	rt.drawTrackbarPath(c, over, Rect{X: work.X, Y: barY, W: work.W, H: TrackbarBarHeight})

	hideAll := cfg.Options.Has(TrackbarHideLabels)
	if !hideAll && !cfg.Options.Has(TrackbarHideStepScale) {
		rt.drawTrackbarSteps(c, r, barY, cfg)
	}
	if !hideAll {
		rt.drawTrackbarSegments(c, r, barY, cfg)
	}
	rt.drawTrackbarHandle(c, over, r, barY, v, cfg)
}

func (rt *Runtime) drawTrackbarPath(c Canvas, over bool, bar Rect) {
	border := rt.style.TrackbarPathBorder
	if over {
		border = rt.style.TrackbarPathBorderHovered
	}
	rt.painter.FillRect(c, bar, rt.style.TrackbarPathFill)
	rt.painter.StrokeRect(c, bar, border)

	y := bar.Y + bar.H - 2
	rt.painter.Line(c, Point{X: bar.X + 1, Y: y}, Point{X: bar.X + bar.W - 2, Y: y}, rt.style.TrackbarPathShadow)
}

func (rt *Runtime) drawTrackbarSteps(c Canvas, r Rect, barY int, cfg TrackbarConfig) {
	step := (cfg.Max - cfg.Min) / TrackbarTickCount
	if cfg.Options.Has(TrackbarDiscrete) {
		step = cfg.Step
	}
	if !(step > 0) {
		return
	}

	margin := rt.style.TrackbarMarginX
	for v := cfg.Min; v <= cfg.Max; v += step {
		px := cfg.ValueToPixel(r, margin, v)
		rt.painter.Line(c, Point{X: px, Y: barY}, Point{X: px, Y: barY - 3}, rt.style.TrackbarTick)
	}
}

func (rt *Runtime) drawTrackbarSegments(c Canvas, r Rect, barY int, cfg TrackbarConfig) {
	segments := max(cfg.Segments, 1)
	length := (cfg.Max - cfg.Min) / float64(segments)

	minMax := !cfg.Options.Has(TrackbarHideMinMaxLabels)
	labels := !cfg.Options.Has(TrackbarHideSegmentLabels)

	rt.drawTrackbarSegment(c, r, barY, cfg.Min, cfg, minMax)
	if length > 0 {
		for v := cfg.Min; v <= cfg.Max; v += length {
			rt.drawTrackbarSegment(c, r, barY, v, cfg, labels)
		}
	}
	rt.drawTrackbarSegment(c, r, barY, cfg.Max, cfg, minMax)
}

func (rt *Runtime) drawTrackbarSegment(c Canvas, r Rect, barY int, v float64, cfg TrackbarConfig, label bool) {
	k := scaleRatio(cfg.FontScale)
	px := cfg.ValueToPixel(r, rt.style.TrackbarMarginX, v)
	rt.painter.Line(c, Point{X: px, Y: barY}, Point{X: px, Y: barY - round(8*k)}, rt.style.TrackbarTick)

	if label {
		rt.textCentered(c, Point{X: px, Y: barY - round(11*k)}, fmt.Sprintf(cfg.LabelFormat, v), cfg.FontScale-0.1)
	}
}

func (rt *Runtime) drawTrackbarHandle(c Canvas, over bool, r Rect, barY int, v float64, cfg TrackbarConfig) {
	k := scaleRatio(cfg.FontScale)
	px := cfg.ValueToPixel(r, rt.style.TrackbarMarginX, v)
	halfW := round(3 * k)
	indicatorH := round(4 * k)

	p1 := Point{X: px - halfW, Y: barY - indicatorH}
	p2 := Point{X: px + halfW, Y: barY + TrackbarBarHeight + indicatorH}
	handle := Rect{X: p1.X, Y: p1.Y, W: p2.X - p1.X, H: p2.Y - p1.Y}

	fill := rt.style.TrackbarHandle
	if over {
		fill = rt.style.TrackbarHandleHovered
	}
	rt.painter.FillRect(c, handle, rt.style.TrackbarHandleOutline)
	rt.painter.StrokeRect(c, handle, rt.style.TrackbarHandleOutline)
	inner := handle.Inset(1)
	rt.painter.FillRect(c, inner, fill)
	rt.painter.StrokeRect(c, inner, rt.style.TrackbarHandleBorder)

	if !cfg.Options.Has(TrackbarHideValueLabel) {
		rt.textCentered(c, Point{X: px, Y: p2.Y + round(11*k)}, fmt.Sprintf(cfg.LabelFormat, v), cfg.FontScale-0.1)
	}
}

// textCentered draws s with its baseline at pos.Y, centered on pos.X.
func (rt *Runtime) textCentered(c Canvas, pos Point, s string, scale float64) {
	size := rt.painter.MeasureText(s, scale)
	rt.painter.Text(c, s, Point{X: pos.X - size.W/2, Y: pos.Y}, scale, rt.style.TextColor)
}
