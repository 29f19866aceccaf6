package canvasui

import "slices"

// SparklineAt draws values as a line chart filling the w×h rect at (x, y)
// on c. The line color comes from WithColor, else Style.SparklineColor.
// With fewer than two values a short notice is drawn instead.
func (rt *Runtime) SparklineAt(c Canvas, x, y int, values []float64, w, h int, opts ...Option) {
	rt.sparkline(rt.screenBlock(c), x, y, values, w, h, applyOptions(opts))
}

// Sparkline draws a sparkline at the anchor of the current block.
func (rt *Runtime) Sparkline(values []float64, w, h int, opts ...Option) {
	if b := rt.flowBlock("Sparkline"); b != nil {
		rt.sparkline(b, b.Anchor.X, b.Anchor.Y, values, w, h, applyOptions(opts))
	}
}

func (rt *Runtime) sparkline(b *Block, x, y int, values []float64, w, h int, o options) {
	r := Rect{X: x, Y: y, W: w, H: h}
	if len(values) < 2 {
		notice := "No data."
		if len(values) == 1 {
			notice = "Insufficient data points."
		}
		scale := rt.fontScale(o)
		size := rt.painter.MeasureText(notice, scale)
		rt.painter.Text(b.Canvas, notice, Point{X: x, Y: y + size.H}, scale, rt.style.TextColor)
	} else {
		rt.drawSparkline(b.Canvas, r, values, optColor(o, rt.style.SparklineColor))
	}
	b.Flow(r.Size())
}

func (rt *Runtime) drawSparkline(c Canvas, r Rect, values []float64, col Color) {
	lo, hi := slices.Min(values), slices.Max(values)
	span := hi - lo
	gap := float64(r.W) / float64(len(values))
	bottom := float64(r.Y + r.H - 5)

	yOf := func(v float64) int {
		if span == 0 {
			// A constant series draws as a flat line at the bottom.
			return int(bottom)
		}
		return int((v-lo)/span*-float64(r.H-5) + bottom)
	}

	px := float64(r.X)
	for i := 0; i+1 < len(values); i++ {
		from := Point{X: int(px), Y: yOf(values[i])}
		to := Point{X: int(px + gap), Y: yOf(values[i+1])}
		rt.painter.Line(c, from, to, col)
		px += gap
	}
}
