package canvasui

// Status is the interaction state of a rectangle under the pointer.
type Status int

const (
	Out   Status = iota // Pointer outside
	Over                // Pointer inside, no button held
	Down                // Pointer inside, a button held
	Click               // Pointer inside, a button released this frame
)

func (s Status) String() string {
	switch s {
	case Out:
		return "out"
	case Over:
		return "over"
	case Down:
		return "down"
	case Click:
		return "click"
	}
	return "invalid"
}

// Status classifies r against the mouse state. Click wins over Over and
// Down, so a press-release cycle inside r is reported once, on the release
// frame.
func (m *MouseState) Status(r Rect) Status {
	if !r.Contains(m.Position) {
		return Out
	}
	if m.Any.JustReleased {
		return Click
	}
	if m.Any.Pressed {
		return Down
	}
	return Over
}

// IArea returns the interaction status of a rectangle against the current
// context's mouse. Use it to build custom widgets.
func (rt *Runtime) IArea(x, y, w, h int) Status {
	return rt.mouse("IArea").Status(Rect{X: x, Y: y, W: w, H: h})
}
