package opengl

import (
	"log/slog"
	"time"

	"github.com/go-gl/glfw/v3.3/glfw"

	"github.com/go-theft-auto/canvasui"
)

// MouseSink receives pointer events. *canvasui.Runtime implements it.
type MouseSink interface {
	HandleMouse(window string, ev canvasui.MouseEvent) error
}

// InputPump drives the GLFW event queue for every attached window. It
// implements canvasui.InputPump: the runtime calls WaitKey once per frame,
// and GLFW runs the callbacks installed by Attach inside it.
type InputPump struct {
	key int
}

// NewInputPump creates a pump with no attached windows.
func NewInputPump() *InputPump {
	return &InputPump{key: -1}
}

// Attach installs callbacks on a GLFW window so its pointer events reach
// sink under the given window name. The window should have the size of the
// canvas presented in it; cursor positions are not rescaled.
func (p *InputPump) Attach(sink MouseSink, name string, window *glfw.Window) {
	send := func(ev canvasui.MouseEvent) {
		if err := sink.HandleMouse(name, ev); err != nil {
			slog.Warn("mouse event dropped", "window", name, "err", err)
		}
	}

	window.SetCursorPosCallback(func(_ *glfw.Window, x, y float64) {
		send(canvasui.MouseEvent{Kind: canvasui.MouseMove, X: int(x), Y: int(y)})
	})

	window.SetMouseButtonCallback(func(w *glfw.Window, button glfw.MouseButton, action glfw.Action, _ glfw.ModifierKey) {
		b, ok := glfwMouseButton(button)
		if !ok {
			return
		}
		x, y := w.GetCursorPos()
		ev := canvasui.MouseEvent{Button: b, X: int(x), Y: int(y)}
		switch action {
		case glfw.Press:
			ev.Kind = canvasui.MouseButtonDown
		case glfw.Release:
			ev.Kind = canvasui.MouseButtonUp
		default:
			return
		}
		send(ev)
	})

	window.SetCharCallback(func(_ *glfw.Window, char rune) {
		p.key = int(char)
	})

	window.SetKeyCallback(func(_ *glfw.Window, key glfw.Key, _ int, action glfw.Action, _ glfw.ModifierKey) {
		if action == glfw.Release {
			return
		}
		if code, ok := controlKeyCode(key); ok {
			p.key = code
		}
	})
}

// WaitKey implements canvasui.InputPump. A positive timeout blocks until an
// event arrives or the timeout elapses; otherwise pending events are
// processed without waiting. It returns the last key typed during the call,
// or -1.
func (p *InputPump) WaitKey(timeout time.Duration) int {
	p.key = -1
	if timeout > 0 {
		glfw.WaitEventsTimeout(timeout.Seconds())
	} else {
		glfw.PollEvents()
	}
	return p.key
}

// controlKeyCode maps keys that produce no character to their ASCII
// control codes.
func controlKeyCode(key glfw.Key) (int, bool) {
	switch key {
	case glfw.KeyEscape:
		return 27, true
	case glfw.KeyEnter, glfw.KeyKPEnter:
		return 13, true
	case glfw.KeyTab:
		return 9, true
	case glfw.KeyBackspace:
		return 8, true
	case glfw.KeyDelete:
		return 127, true
	}
	return 0, false
}

// glfwMouseButton maps GLFW mouse buttons to canvasui buttons.
func glfwMouseButton(button glfw.MouseButton) (canvasui.MouseButton, bool) {
	switch button {
	case glfw.MouseButtonLeft:
		return canvasui.MouseLeft, true
	case glfw.MouseButtonMiddle:
		return canvasui.MouseMiddle, true
	case glfw.MouseButtonRight:
		return canvasui.MouseRight, true
	}
	return 0, false
}
