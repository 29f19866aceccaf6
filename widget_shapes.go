package canvasui

// RectAt draws a rectangle at (x, y) on c. Negative w or h grow the
// rectangle left or up from (x, y). The fill honors the inverted alpha of
// Color; pass ColorNone for an outline only.
func (rt *Runtime) RectAt(c Canvas, x, y, w, h int, border, fill Color) {
	rt.rect(rt.screenBlock(c), x, y, w, h, border, fill)
}

// Rect draws a rectangle at the anchor of the current block.
func (rt *Runtime) Rect(w, h int, border, fill Color) {
	if b := rt.flowBlock("Rect"); b != nil {
		rt.rect(b, b.Anchor.X, b.Anchor.Y, w, h, border, fill)
	}
}

func (rt *Runtime) rect(b *Block, x, y, w, h int, border, fill Color) {
	r := Rect{X: x, Y: y, W: w, H: h}.Abs()
	if !fill.Transparent() {
		rt.painter.FillRect(b.Canvas, r, fill)
	}
	rt.painter.StrokeRect(b.Canvas, r, border.Opaque())
	b.Flow(r.Size())
}

// WindowAt draws window chrome at (x, y) on c: a title bar with title and a
// body below it. It is decoration only; place widgets on top of it.
func (rt *Runtime) WindowAt(c Canvas, x, y, w, h int, title string, opts ...Option) {
	rt.window(rt.screenBlock(c), x, y, w, h, title, applyOptions(opts))
}

// Window draws window chrome at the anchor of the current block.
func (rt *Runtime) Window(w, h int, title string, opts ...Option) {
	if b := rt.flowBlock("Window"); b != nil {
		rt.window(b, b.Anchor.X, b.Anchor.Y, w, h, title, applyOptions(opts))
	}
}

func (rt *Runtime) window(b *Block, x, y, w, h int, title string, o options) {
	scale := rt.fontScale(o)
	k := scaleRatio(scale)
	r := Rect{X: x, Y: y, W: w, H: h}.Abs()

	bar := Rect{X: r.X, Y: r.Y, W: r.W, H: round(WindowTitleHeight * k)}
	body := Rect{X: r.X, Y: r.Y + bar.H, W: r.W, H: r.H - bar.H}

	rt.painter.StrokeRect(b.Canvas, bar, rt.style.WindowBorder)
	bar = bar.Inset(1)
	rt.painter.FillRect(b.Canvas, bar, rt.style.WindowTitleFill)
	rt.painter.Text(b.Canvas, title, Point{X: bar.X + 5, Y: bar.Y + round(12*k)}, scale,
		optColor(o, rt.style.TextColor))

	if body.H > 0 {
		rt.painter.StrokeRect(b.Canvas, body, rt.style.WindowBorder)
		rt.painter.FillRect(b.Canvas, body.Inset(1), rt.style.WindowBodyFill)
	}

	b.Flow(r.Size())
}
