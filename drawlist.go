package canvasui

import (
	"image"
	"sync"
	"unicode/utf8"
)

// drawListPool reuses DrawList buffers between frames.
var drawListPool = sync.Pool{
	New: func() any {
		return &DrawList{Cmds: make([]DrawCmd, 0, 64)}
	},
}

// AcquireDrawList gets a cleared DrawList from the pool.
// Call ReleaseDrawList when done to return it.
func AcquireDrawList() *DrawList {
	dl := drawListPool.Get().(*DrawList)
	dl.Clear()
	return dl
}

// ReleaseDrawList returns a DrawList to the pool for reuse.
func ReleaseDrawList(dl *DrawList) {
	if dl != nil {
		drawListPool.Put(dl)
	}
}

// DrawCmdKind identifies the primitive recorded in a DrawCmd.
type DrawCmdKind int

const (
	CmdLine DrawCmdKind = iota
	CmdStrokeRect
	CmdFillRect
	CmdText
	CmdBlit
)

func (k DrawCmdKind) String() string {
	switch k {
	case CmdLine:
		return "line"
	case CmdStrokeRect:
		return "stroke-rect"
	case CmdFillRect:
		return "fill-rect"
	case CmdText:
		return "text"
	case CmdBlit:
		return "blit"
	}
	return "unknown"
}

// DrawCmd is one recorded primitive. Only the fields relevant to Kind are set.
type DrawCmd struct {
	Kind     DrawCmdKind
	Rect     Rect        // StrokeRect, FillRect, Blit
	From, To Point       // Line; From is the origin for Text
	Color    Color       // All but Blit
	Text     string      // Text
	Scale    float64     // Text
	Image    image.Image // Blit
}

// DrawList is a Painter that records primitives instead of rasterizing them.
// It measures text with fixed monospace metrics, so layouts built against it
// are deterministic. Use it for headless runs and tests, or record a frame
// and Replay it onto a pixel painter later.
type DrawList struct {
	Cmds []DrawCmd
}

// Monospace metrics used by DrawList at DefaultFontScale.
const (
	MonoGlyphWidth  = 7
	MonoGlyphHeight = 11
)

// Clear drops recorded commands, keeping capacity.
func (dl *DrawList) Clear() {
	dl.Cmds = dl.Cmds[:0]
}

// Line implements Painter.
func (dl *DrawList) Line(_ Canvas, from, to Point, c Color) {
	dl.Cmds = append(dl.Cmds, DrawCmd{Kind: CmdLine, From: from, To: to, Color: c})
}

// StrokeRect implements Painter.
func (dl *DrawList) StrokeRect(_ Canvas, r Rect, c Color) {
	dl.Cmds = append(dl.Cmds, DrawCmd{Kind: CmdStrokeRect, Rect: r, Color: c})
}

// FillRect implements Painter. Fully transparent fills are not recorded.
func (dl *DrawList) FillRect(_ Canvas, r Rect, c Color) {
	if c.Transparent() {
		return
	}
	dl.Cmds = append(dl.Cmds, DrawCmd{Kind: CmdFillRect, Rect: r, Color: c})
}

// Text implements Painter.
func (dl *DrawList) Text(_ Canvas, s string, origin Point, scale float64, c Color) {
	if s == "" {
		return
	}
	dl.Cmds = append(dl.Cmds, DrawCmd{Kind: CmdText, From: origin, Text: s, Scale: scale, Color: c})
}

// MeasureText implements Painter.
func (dl *DrawList) MeasureText(s string, scale float64) Size {
	if s == "" {
		return Size{}
	}
	k := scale / DefaultFontScale
	return Size{
		W: round(float64(utf8.RuneCountInString(s)*MonoGlyphWidth) * k),
		H: round(MonoGlyphHeight * k),
	}
}

// Blit implements Painter.
func (dl *DrawList) Blit(_ Canvas, r Rect, src image.Image) {
	dl.Cmds = append(dl.Cmds, DrawCmd{Kind: CmdBlit, Rect: r, Image: src})
}

// Replay draws every recorded command onto dst with p.
func (dl *DrawList) Replay(p Painter, dst Canvas) {
	for _, cmd := range dl.Cmds {
		switch cmd.Kind {
		case CmdLine:
			p.Line(dst, cmd.From, cmd.To, cmd.Color)
		case CmdStrokeRect:
			p.StrokeRect(dst, cmd.Rect, cmd.Color)
		case CmdFillRect:
			p.FillRect(dst, cmd.Rect, cmd.Color)
		case CmdText:
			p.Text(dst, cmd.Text, cmd.From, cmd.Scale, cmd.Color)
		case CmdBlit:
			p.Blit(dst, cmd.Rect, cmd.Image)
		}
	}
}

// Find returns the recorded commands of the given kind, in order.
func (dl *DrawList) Find(kind DrawCmdKind) []DrawCmd {
	var out []DrawCmd
	for _, cmd := range dl.Cmds {
		if cmd.Kind == kind {
			out = append(out, cmd)
		}
	}
	return out
}

// Texts returns the strings of every recorded text command, in order.
func (dl *DrawList) Texts() []string {
	var out []string
	for _, cmd := range dl.Cmds {
		if cmd.Kind == CmdText {
			out = append(out, cmd.Text)
		}
	}
	return out
}
