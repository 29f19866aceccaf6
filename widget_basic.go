package canvasui

import (
	"fmt"
	"image"
)

// TextAt draws s with its top-left corner at (x, y) on c.
func (rt *Runtime) TextAt(c Canvas, x, y int, s string, opts ...Option) {
	rt.text(rt.screenBlock(c), x, y, s, applyOptions(opts))
}

// Text draws s at the anchor of the current block.
func (rt *Runtime) Text(s string, opts ...Option) {
	if b := rt.flowBlock("Text"); b != nil {
		rt.text(b, b.Anchor.X, b.Anchor.Y, s, applyOptions(opts))
	}
}

// TextfAt formats with fmt.Sprintf and draws the result like TextAt.
func (rt *Runtime) TextfAt(c Canvas, x, y int, format string, args ...any) {
	rt.TextAt(c, x, y, fmt.Sprintf(format, args...))
}

// Textf formats with fmt.Sprintf and draws the result like Text.
func (rt *Runtime) Textf(format string, args ...any) {
	rt.Text(fmt.Sprintf(format, args...))
}

func (rt *Runtime) text(b *Block, x, y int, s string, o options) {
	scale := rt.fontScale(o)
	size := rt.painter.MeasureText(s, scale)
	rt.painter.Text(b.Canvas, s, Point{X: x, Y: y + size.H}, scale, optColor(o, rt.style.TextColor))

	// One extra pixel below the baseline keeps stacked lines apart.
	size.H++
	b.Flow(size)
}

// ButtonAt draws a button at (x, y) on c and reports whether it was clicked
// or its shortcut typed. Without WithSize the button fits its label.
//
//	if rt.ButtonAt(frame, 10, 10, "&Quit") {
//	    return
//	}
func (rt *Runtime) ButtonAt(c Canvas, x, y int, label string, opts ...Option) bool {
	return rt.buttonAuto(rt.screenBlock(c), x, y, label, applyOptions(opts))
}

// Button draws a button at the anchor of the current block.
func (rt *Runtime) Button(label string, opts ...Option) bool {
	b := rt.flowBlock("Button")
	if b == nil {
		return false
	}
	return rt.buttonAuto(b, b.Anchor.X, b.Anchor.Y, label, applyOptions(opts))
}

func (rt *Runtime) buttonAuto(b *Block, x, y int, label string, o options) bool {
	scale := rt.fontScale(o)
	inside := optColor(o, rt.style.ButtonColor)
	size := GetOpt(o, OptSize)
	if !HasOpt(o, OptSize) {
		k := scaleRatio(scale)
		text := rt.painter.MeasureText(ParseLabel(label).Text(), scale)
		size = Size{W: text.W + round(ButtonPaddingX*k), H: text.H + round(ButtonPaddingY*k)}
	}
	return rt.button(b, Rect{X: x, Y: y, W: size.W, H: size.H}, label, scale, inside, true)
}

// button is the shared body of every text button. Counters pass flow=false
// because they flow their whole footprint once.
func (rt *Runtime) button(b *Block, r Rect, label string, scale float64, inside Color, flow bool) bool {
	status := rt.mouse("Button").Status(r)
	l := ParseLabel(label)

	rt.drawButton(b.Canvas, status, r, scale, inside)
	rt.drawButtonLabel(b.Canvas, status, r, l, scale, inside)

	if flow {
		b.Flow(r.Size())
	}

	shortcut := rt.keyDelay >= 0 && l.Matches(rt.lastKey)
	return status == Click || shortcut
}

// drawButton draws the 3D outline (light from the top left) and the inside.
func (rt *Runtime) drawButton(c Canvas, status Status, r Rect, scale float64, inside Color) {
	bright := inside.Brighten(rt.style.ButtonBevelDelta)
	dark := inside.Darken(rt.style.ButtonBevelDelta)
	topLeft, bottomRight := bright, dark
	if status == Down || status == Click {
		topLeft, bottomRight = dark, bright
	}

	// At least one pixel of outline, thicker for larger fonts.
	for i := 0; i <= int(scale/0.6); i++ {
		x0, y0 := r.X, r.Y
		x1, y1 := r.X+r.W-1, r.Y+r.H-1
		rt.painter.Line(c, Point{X: x1, Y: y1}, Point{X: x0, Y: y1}, bottomRight)
		rt.painter.Line(c, Point{X: x1, Y: y1}, Point{X: x1, Y: y0}, bottomRight)
		rt.painter.Line(c, Point{X: x0, Y: y0}, Point{X: x0, Y: y1}, topLeft)
		rt.painter.Line(c, Point{X: x0, Y: y0}, Point{X: x1, Y: y0}, topLeft)
		r = r.Inset(1)
	}

	fill := inside
	switch status {
	case Over:
		fill = inside.Brighten(rt.style.ButtonHoverDelta)
	case Down, Click:
		fill = inside.Darken(rt.style.ButtonHoverDelta)
	}
	rt.painter.FillRect(c, r, fill.Opaque())
}

// drawButtonLabel centers the label and underlines its shortcut.
func (rt *Runtime) drawButtonLabel(c Canvas, status Status, r Rect, l Label, scale float64, inside Color) {
	textColor := rt.style.TextColor
	if inside.Brightness() >= 0x80 {
		textColor = rt.style.TextDarkColor
	}
	if status == Down {
		scale -= 0.01
	}

	size := rt.painter.MeasureText(l.Text(), scale)
	pos := Point{X: r.X + r.W/2 - size.W/2, Y: r.Y + r.H/2 + size.H/2}
	if !l.HasShortcut {
		rt.painter.Text(c, l.Before, pos, scale, textColor)
		return
	}

	rt.painter.Text(c, l.Before, pos, scale, textColor)
	pos.X += rt.painter.MeasureText(l.Before, scale).W
	start := pos.X

	key := string(l.Shortcut)
	rt.painter.Text(c, key, pos, scale, textColor)
	pos.X += rt.painter.MeasureText(key, scale).W
	end := pos.X

	rt.painter.Text(c, l.After, pos, scale, textColor)
	rt.painter.Line(c, Point{X: start, Y: pos.Y + 3}, Point{X: end, Y: pos.Y + 3}, textColor)
}

// ImageButtonAt draws a button made of three images at (x, y) on c: idle,
// hovered and pressed. The idle image sets the size.
func (rt *Runtime) ImageButtonAt(c Canvas, x, y int, idle, over, down image.Image) bool {
	return rt.imageButton(rt.screenBlock(c), x, y, idle, over, down)
}

// ImageButton draws an image button at the anchor of the current block.
func (rt *Runtime) ImageButton(idle, over, down image.Image) bool {
	b := rt.flowBlock("ImageButton")
	if b == nil {
		return false
	}
	return rt.imageButton(b, b.Anchor.X, b.Anchor.Y, idle, over, down)
}

func (rt *Runtime) imageButton(b *Block, x, y int, idle, over, down image.Image) bool {
	bounds := idle.Bounds()
	r := Rect{X: x, Y: y, W: bounds.Dx(), H: bounds.Dy()}
	status := rt.mouse("ImageButton").Status(r)

	img := idle
	switch status {
	case Over, Click:
		img = over
	case Down:
		img = down
	}
	rt.painter.Blit(b.Canvas, r, img)

	b.Flow(r.Size())
	return status == Click
}

// ImageAt copies img to (x, y) on c at its own size.
func (rt *Runtime) ImageAt(c Canvas, x, y int, img image.Image) {
	rt.image(rt.screenBlock(c), x, y, img)
}

// Image copies img to the anchor of the current block.
func (rt *Runtime) Image(img image.Image) {
	if b := rt.flowBlock("Image"); b != nil {
		rt.image(b, b.Anchor.X, b.Anchor.Y, img)
	}
}

func (rt *Runtime) image(b *Block, x, y int, img image.Image) {
	bounds := img.Bounds()
	r := Rect{X: x, Y: y, W: bounds.Dx(), H: bounds.Dy()}
	rt.painter.Blit(b.Canvas, r, img)
	b.Flow(r.Size())
}

// CheckboxAt draws a checkbox at (x, y) on c. A release inside the glyph or
// its label toggles *state. It returns the resulting state.
func (rt *Runtime) CheckboxAt(c Canvas, x, y int, label string, state *bool, opts ...Option) bool {
	return rt.checkbox(rt.screenBlock(c), x, y, label, state, applyOptions(opts))
}

// Checkbox draws a checkbox at the anchor of the current block.
func (rt *Runtime) Checkbox(label string, state *bool, opts ...Option) bool {
	b := rt.flowBlock("Checkbox")
	if b == nil {
		return *state
	}
	return rt.checkbox(b, b.Anchor.X, b.Anchor.Y, label, state, applyOptions(opts))
}

func (rt *Runtime) checkbox(b *Block, x, y int, label string, state *bool, o options) bool {
	m := rt.mouse("Checkbox")
	scale := rt.fontScale(o)
	glyph := Rect{X: x, Y: y, W: CheckboxSize, H: CheckboxSize}
	text := rt.painter.MeasureText(label, scale)
	hit := Rect{X: x, Y: y, W: glyph.W + text.W + CheckboxLabelGap, H: glyph.H}

	over := hit.Contains(m.Position)
	if over && m.Any.JustReleased {
		*state = !*state
	}

	outline := rt.style.CheckboxOutline
	if over {
		outline = rt.style.CheckboxOutlineHovered
	}
	inner := glyph.Inset(2)
	rt.painter.StrokeRect(b.Canvas, glyph, outline)
	rt.painter.StrokeRect(b.Canvas, glyph.Inset(1), rt.style.CheckboxBorder)
	rt.painter.FillRect(b.Canvas, inner, rt.style.CheckboxFill)

	pos := Point{
		X: inner.X + inner.W + CheckboxLabelGap,
		Y: inner.Y + text.H + inner.H/2 - text.H/2 - 1,
	}
	rt.painter.Text(b.Canvas, label, pos, scale, optColor(o, rt.style.TextColor))

	if *state {
		rt.painter.FillRect(b.Canvas, inner.Inset(1), rt.style.CheckboxCheck)
	}

	b.Flow(hit.Size())
	return *state
}
