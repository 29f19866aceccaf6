package canvasui

// MouseButton identifies one of the three tracked mouse buttons.
type MouseButton int

const (
	MouseLeft MouseButton = iota
	MouseMiddle
	MouseRight
	MouseButtonCount
)

// Valid reports whether b names a tracked button.
func (b MouseButton) Valid() bool {
	return b >= 0 && b < MouseButtonCount
}

func (b MouseButton) String() string {
	switch b {
	case MouseLeft:
		return "left"
	case MouseMiddle:
		return "middle"
	case MouseRight:
		return "right"
	}
	return "invalid"
}

// MouseQuery selects which flag of a ButtonState a mouse query reads.
type MouseQuery int

const (
	MouseDown   MouseQuery = iota // Pressed this frame (edge)
	MouseClick                    // Released this frame (edge)
	MouseUp                       // Released this frame (edge), same as MouseClick
	MouseIsDown                   // Held (level)
)

func (q MouseQuery) String() string {
	switch q {
	case MouseDown:
		return "down"
	case MouseClick:
		return "click"
	case MouseUp:
		return "up"
	case MouseIsDown:
		return "is-down"
	}
	return "invalid"
}

// ButtonState tracks one button. JustPressed and JustReleased are edge flags
// that stay set for exactly one frame after the event that caused them;
// Pressed is the level between a down and its matching up.
type ButtonState struct {
	Pressed      bool
	JustPressed  bool
	JustReleased bool
}

// Is answers a query against the button.
func (s ButtonState) Is(q MouseQuery) (bool, error) {
	switch q {
	case MouseDown:
		return s.JustPressed, nil
	case MouseClick, MouseUp:
		return s.JustReleased, nil
	case MouseIsDown:
		return s.Pressed, nil
	}
	return false, ErrInvalidQuery
}

func (s *ButtonState) press() {
	s.Pressed = true
	s.JustPressed = true
}

func (s *ButtonState) release() {
	s.Pressed = false
	s.JustReleased = true
}

func (s *ButtonState) resetEdges() {
	s.JustPressed = false
	s.JustReleased = false
}

// MouseState is the pointer state of one window. Any mirrors every event
// delivered to Buttons, so its flags are the logical OR of the per-button
// flags since the last edge reset.
type MouseState struct {
	Position Point
	Buttons  [MouseButtonCount]ButtonState
	Any      ButtonState
}

// Button returns the state of b.
func (m *MouseState) Button(b MouseButton) (ButtonState, error) {
	if !b.Valid() {
		return ButtonState{}, ErrInvalidButton
	}
	return m.Buttons[b], nil
}

// Press records a button-down event at p.
func (m *MouseState) Press(b MouseButton, p Point) error {
	if !b.Valid() {
		return ErrInvalidButton
	}
	m.Buttons[b].press()
	m.Any.press()
	m.Position = p
	return nil
}

// Release records a button-up event at p.
func (m *MouseState) Release(b MouseButton, p Point) error {
	if !b.Valid() {
		return ErrInvalidButton
	}
	m.Buttons[b].release()
	m.Any.release()
	m.Position = p
	return nil
}

// Move records a pointer motion event.
func (m *MouseState) Move(p Point) {
	m.Position = p
}

// ResetEdges clears the one-frame flags of every button and of Any.
// Call this once per frame before widgets run.
func (m *MouseState) ResetEdges() {
	for i := range m.Buttons {
		m.Buttons[i].resetEdges()
	}
	m.Any.resetEdges()
}

// MouseEventKind is the kind of a raw input-pump event.
type MouseEventKind int

const (
	MouseMove MouseEventKind = iota
	MouseButtonDown
	MouseButtonUp
)

// MouseEvent is one discrete pointer event delivered by an input pump.
type MouseEvent struct {
	Kind   MouseEventKind
	Button MouseButton // Ignored for MouseMove
	X, Y   int
}

// Apply feeds the event into the state machine.
func (m *MouseState) Apply(ev MouseEvent) error {
	p := Point{X: ev.X, Y: ev.Y}
	switch ev.Kind {
	case MouseButtonDown:
		return m.Press(ev.Button, p)
	case MouseButtonUp:
		return m.Release(ev.Button, p)
	default:
		m.Move(p)
		return nil
	}
}
