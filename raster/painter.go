// Package raster rasterizes canvasui primitives onto any draw.Image.
//
// Text uses a fixed bitmap face, scaled with a bilinear filter when the
// font scale differs from canvasui.DefaultFontScale. The default face
// (basicfont 7x13) has the same advance and ascent as the DrawList metrics,
// so layouts measured headless match what is rendered here.
package raster

import (
	"image"
	"image/color"

	"github.com/chewxy/math32"
	"golang.org/x/image/draw"
	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/math/fixed"

	"github.com/go-theft-auto/canvasui"
)

// Painter implements canvasui.Painter with golang.org/x/image.
type Painter struct {
	face   font.Face
	scaler draw.Scaler
}

// Option configures a Painter.
type Option func(*Painter)

// WithFace replaces the bitmap face used for text.
func WithFace(face font.Face) Option {
	return func(p *Painter) { p.face = face }
}

// WithScaler sets the filter used to scale text and images,
// e.g. draw.NearestNeighbor for crisp pixel art.
func WithScaler(s draw.Scaler) Option {
	return func(p *Painter) { p.scaler = s }
}

// NewPainter creates a painter using basicfont.Face7x13 and bilinear scaling.
func NewPainter(opts ...Option) *Painter {
	p := &Painter{
		face:   basicfont.Face7x13,
		scaler: draw.BiLinear,
	}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

var _ canvasui.Painter = (*Painter)(nil)

// Line draws a DDA line with both end points set.
func (p *Painter) Line(dst canvasui.Canvas, from, to canvasui.Point, c canvasui.Color) {
	col := c.RGBA()
	dx := float32(to.X - from.X)
	dy := float32(to.Y - from.Y)
	steps := math32.Max(math32.Abs(dx), math32.Abs(dy))
	if steps == 0 {
		dst.Set(from.X, from.Y, col)
		return
	}

	sx, sy := dx/steps, dy/steps
	x, y := float32(from.X), float32(from.Y)
	for i := 0; i <= int(steps); i++ {
		dst.Set(int(math32.Floor(x+0.5)), int(math32.Floor(y+0.5)), col)
		x += sx
		y += sy
	}
}

// StrokeRect draws the one pixel outline of r.
func (p *Painter) StrokeRect(dst canvasui.Canvas, r canvasui.Rect, c canvasui.Color) {
	if r.W <= 0 || r.H <= 0 {
		return
	}
	x0, y0 := r.X, r.Y
	x1, y1 := r.X+r.W-1, r.Y+r.H-1
	p.Line(dst, canvasui.Point{X: x0, Y: y0}, canvasui.Point{X: x1, Y: y0}, c)
	p.Line(dst, canvasui.Point{X: x0, Y: y1}, canvasui.Point{X: x1, Y: y1}, c)
	p.Line(dst, canvasui.Point{X: x0, Y: y0}, canvasui.Point{X: x0, Y: y1}, c)
	p.Line(dst, canvasui.Point{X: x1, Y: y0}, canvasui.Point{X: x1, Y: y1}, c)
}

// FillRect overwrites r with opaque colors and blends partially transparent
// ones through a uniform alpha mask.
func (p *Painter) FillRect(dst canvasui.Canvas, r canvasui.Rect, c canvasui.Color) {
	if c.Transparent() || r.W <= 0 || r.H <= 0 {
		return
	}
	src := image.NewUniform(c.RGBA())
	opacity := c.Opacity()
	if opacity >= 1 {
		draw.Draw(dst, r.Image(), src, image.Point{}, draw.Src)
		return
	}
	mask := image.NewUniform(color.Alpha{A: uint8(math32.Floor(float32(opacity)*0xFF + 0.5))})
	draw.DrawMask(dst, r.Image(), src, image.Point{}, mask, image.Point{}, draw.Over)
}

// Text draws s with its baseline at origin.
func (p *Painter) Text(dst canvasui.Canvas, s string, origin canvasui.Point, scale float64, c canvasui.Color) {
	if s == "" {
		return
	}
	src := image.NewUniform(c.RGBA())
	k := scale / canvasui.DefaultFontScale

	if k == 1 {
		d := &font.Drawer{Dst: dst, Src: src, Face: p.face, Dot: fixed.P(origin.X, origin.Y)}
		d.DrawString(s)
		return
	}

	// Render at the native size, then scale the glyph strip into place.
	m := p.face.Metrics()
	ascent, height := m.Ascent.Ceil(), m.Ascent.Ceil()+m.Descent.Ceil()
	width := font.MeasureString(p.face, s).Ceil()
	strip := image.NewRGBA(image.Rect(0, 0, width, height))
	d := &font.Drawer{Dst: strip, Src: src, Face: p.face, Dot: fixed.P(0, ascent)}
	d.DrawString(s)

	target := image.Rect(0, 0, scaled(width, k), scaled(height, k)).
		Add(image.Pt(origin.X, origin.Y-scaled(ascent, k)))
	p.scaler.Scale(dst, target, strip, strip.Bounds(), draw.Over, nil)
}

// MeasureText returns the advance width of s and the ascent of the face,
// both scaled.
func (p *Painter) MeasureText(s string, scale float64) canvasui.Size {
	if s == "" {
		return canvasui.Size{}
	}
	k := scale / canvasui.DefaultFontScale
	return canvasui.Size{
		W: scaled(font.MeasureString(p.face, s).Ceil(), k),
		H: scaled(p.face.Metrics().Ascent.Ceil(), k),
	}
}

// Blit draws src into r, scaling when the sizes differ.
func (p *Painter) Blit(dst canvasui.Canvas, r canvasui.Rect, src image.Image) {
	sb := src.Bounds()
	if sb.Dx() == r.W && sb.Dy() == r.H {
		draw.Draw(dst, r.Image(), src, sb.Min, draw.Over)
		return
	}
	p.scaler.Scale(dst, r.Image(), src, sb, draw.Over, nil)
}

func scaled(n int, k float64) int {
	return int(math32.Floor(float32(float64(n)*k) + 0.5))
}
