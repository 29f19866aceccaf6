package canvasui

import (
	"image"
	"image/draw"
)

// Canvas is the mutable raster a frame is drawn onto.
type Canvas = draw.Image

// Painter draws primitives onto a canvas. The runtime never reads pixels back;
// it only asks the painter to draw and to measure text.
//
// The runtime does not depend on any concrete implementation. Applications
// inject one when creating the runtime:
//
//	rt := canvasui.New(raster.NewPainter())
//
// and tests usually inject a *DrawList to record what was drawn.
type Painter interface {
	// Line draws a one pixel wide line between two points, both inclusive.
	Line(dst Canvas, from, to Point, c Color)

	// StrokeRect outlines r with a one pixel border inside its bounds.
	StrokeRect(dst Canvas, r Rect, c Color)

	// FillRect fills r honoring the inverted alpha of c: opaque colors
	// overwrite, transparent colors paint nothing, anything else blends.
	FillRect(dst Canvas, r Rect, c Color)

	// Text draws s with its baseline starting at origin.
	Text(dst Canvas, s string, origin Point, scale float64, c Color)

	// MeasureText returns the width of s and the height of its tallest glyph
	// above the baseline, at the given scale.
	MeasureText(s string, scale float64) Size

	// Blit copies src into r, scaling when the sizes differ.
	Blit(dst Canvas, r Rect, src image.Image)
}
