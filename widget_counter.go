package canvasui

import (
	"fmt"
	"math"
)

// CounterAt draws an integer counter at (x, y) on c: a "-" button, the value
// and a "+" button. Each click moves *value by the step (WithStep, default 1).
// The value is shown with WithFormat (default "%d"). It returns *value.
//
//	rt.CounterAt(frame, 10, 40, &count, canvasui.WithStep(5))
func (rt *Runtime) CounterAt(c Canvas, x, y int, value *int, opts ...Option) int {
	rt.counterInt(rt.screenBlock(c), x, y, value, applyOptions(opts))
	return *value
}

// Counter draws an integer counter at the anchor of the current block.
func (rt *Runtime) Counter(value *int, opts ...Option) int {
	if b := rt.flowBlock("Counter"); b != nil {
		rt.counterInt(b, b.Anchor.X, b.Anchor.Y, value, applyOptions(opts))
	}
	return *value
}

// CounterFloatAt draws a float counter at (x, y) on c. The step defaults to
// 0.5 and the format to "%.2f".
func (rt *Runtime) CounterFloatAt(c Canvas, x, y int, value *float64, opts ...Option) float64 {
	rt.counterFloat(rt.screenBlock(c), x, y, value, applyOptions(opts))
	return *value
}

// CounterFloat draws a float counter at the anchor of the current block.
func (rt *Runtime) CounterFloat(value *float64, opts ...Option) float64 {
	if b := rt.flowBlock("CounterFloat"); b != nil {
		rt.counterFloat(b, b.Anchor.X, b.Anchor.Y, value, applyOptions(opts))
	}
	return *value
}

func (rt *Runtime) counterInt(b *Block, x, y int, value *int, o options) {
	step := 1
	if HasOpt(o, OptStep) {
		step = int(math.Round(GetOpt(o, OptStep)))
	}
	format := GetOpt(o, OptFormat)
	if format == "" {
		format = "%d"
	}
	fieldW := round(CounterFieldWidth * scaleRatio(rt.fontScale(o)))

	rt.counter(b, x, y, fieldW, o,
		func(sign int) { *value += sign * step },
		func() string { return fmt.Sprintf(format, *value) })
}

func (rt *Runtime) counterFloat(b *Block, x, y int, value *float64, o options) {
	step := 0.5
	if HasOpt(o, OptStep) {
		step = GetOpt(o, OptStep)
	}
	format := GetOpt(o, OptFormat)
	if format == "" {
		format = "%.2f"
	}

	rt.counter(b, x, y, CounterFieldWidth, o,
		func(sign int) { *value += float64(sign) * step },
		func() string { return fmt.Sprintf(format, *value) })
}

// counter lays out both counter variants. The inner buttons do not flow; the
// whole footprint flows once at the end.
func (rt *Runtime) counter(b *Block, x, y, fieldW int, o options, step func(sign int), format func() string) {
	scale := rt.fontScale(o)
	k := scaleRatio(scale)
	inside := optColor(o, rt.style.ButtonColor)
	side := round(CounterButtonSize * k)
	field := Rect{X: round(float64(x) + CounterButtonSize*k), Y: y, W: fieldW, H: side}

	if rt.button(b, Rect{X: x, Y: y, W: side, H: side}, "-", scale, inside, false) {
		step(-1)
	}

	text := format()
	rt.painter.FillRect(b.Canvas, field, rt.style.CounterFill)
	rt.painter.StrokeRect(b.Canvas, field, rt.style.CounterBorder)
	size := rt.painter.MeasureText(text, scale)
	pos := Point{X: field.X + field.W/2 - size.W/2, Y: field.Y + size.H/2 + field.H/2}
	rt.painter.Text(b.Canvas, text, pos, scale, rt.style.TextColor)

	if rt.button(b, Rect{X: field.X + field.W, Y: y, W: side, H: side}, "+", scale, inside, false) {
		step(1)
	}

	b.Flow(Size{W: 2*side + field.W, H: field.H})
}
