package canvasui

import (
	"errors"
	"fmt"
	"image"
	"log/slog"
	"time"
)

// InputPump advances the host event queue. While it runs, the host delivers
// mouse events to Runtime.HandleMouse.
type InputPump interface {
	// WaitKey processes pending events, waiting up to timeout for one when
	// timeout is positive, and returns the code of the last key typed, or -1.
	WaitKey(timeout time.Duration) int
}

// Presenter shows a finished canvas in a window.
type Presenter interface {
	Present(window string, canvas image.Image) error
}

// Runtime owns every piece of state of the UI: registered windows and their
// mouse state, the layout block stack, the last key and the style. Create one
// per UI (tests usually create one per case) and drive it from a single
// goroutine.
type Runtime struct {
	painter   Painter
	pump      InputPump
	presenter Presenter
	style     Style
	logger    *slog.Logger
	onError   func(error)

	contexts    map[string]*WindowContext
	current     string
	defaultName string

	stack  blockStack
	screen Block

	keyDelay time.Duration
	lastKey  int
	err      error // first widget usage error of the frame
	frame    uint64
}

// RuntimeOption configures a Runtime.
type RuntimeOption func(*Runtime)

// WithStyle sets the style.
func WithStyle(style Style) RuntimeOption {
	return func(rt *Runtime) { rt.style = style }
}

// WithInputPump sets the pump Update drains when key polling is enabled.
func WithInputPump(p InputPump) RuntimeOption {
	return func(rt *Runtime) { rt.pump = p }
}

// WithPresenter sets the presenter used by Imshow.
func WithPresenter(p Presenter) RuntimeOption {
	return func(rt *Runtime) { rt.presenter = p }
}

// WithKeyDelay enables key polling: every Update waits up to d for input
// and records the last key, which also enables button shortcuts. Zero polls
// without blocking; a negative delay (the default) disables polling.
func WithKeyDelay(d time.Duration) RuntimeOption {
	return func(rt *Runtime) { rt.keyDelay = d }
}

// WithMaxDepth caps block nesting; deeper Begin calls fail with
// ErrStackOverflow. Zero (the default) lets the stack grow.
func WithMaxDepth(n int) RuntimeOption {
	return func(rt *Runtime) { rt.stack.maxDepth = n }
}

// WithLogger replaces the package logger for this runtime.
func WithLogger(l *slog.Logger) RuntimeOption {
	return func(rt *Runtime) { rt.logger = l }
}

// WithErrorHandler installs a callback run for every usage error, e.g. to
// panic during development.
func WithErrorHandler(fn func(error)) RuntimeOption {
	return func(rt *Runtime) { rt.onError = fn }
}

// New creates a runtime drawing with painter.
func New(painter Painter, opts ...RuntimeOption) *Runtime {
	rt := &Runtime{
		painter:  painter,
		style:    DefaultStyle(),
		logger:   uiLogger,
		contexts: make(map[string]*WindowContext),
		keyDelay: -1,
		lastKey:  -1,
		screen:   newBlock(Row, nil, 0, 0, 0, 0, 0),
	}
	for _, opt := range opts {
		opt(rt)
	}
	return rt
}

// Style returns the current style.
func (rt *Runtime) Style() Style {
	return rt.style
}

// SetStyle replaces the style, e.g. with one delivered by a StyleWatcher.
func (rt *Runtime) SetStyle(style Style) {
	rt.style = style
}

// Painter returns the painter widgets draw with.
func (rt *Runtime) Painter() Painter {
	return rt.painter
}

// LastKeyPressed returns the key captured by the last Update, or -1 when
// none was typed or key polling is disabled.
func (rt *Runtime) LastKeyPressed() int {
	return rt.lastKey
}

// Frame returns how many times Update has completed.
func (rt *Runtime) Frame() uint64 {
	return rt.frame
}

// Err returns the first usage error recorded by a widget call since the
// last Update.
func (rt *Runtime) Err() error {
	return rt.err
}

// Update closes the frame of a window: its one-frame mouse flags are cleared,
// the implicit root block is reset, the input pump is drained when key
// polling is enabled, and the block stack must be empty. An empty name means
// the current context.
//
// The returned error joins an unbalanced-stack error with the first widget
// usage error of the frame. Either way the runtime is ready for the next
// frame.
func (rt *Runtime) Update(window string) error {
	wc, err := rt.WindowContext(window)
	if err != nil {
		return rt.fail(usageError("Update", err, window))
	}

	wc.Mouse.ResetEdges()
	rt.screen = newBlock(Row, nil, 0, 0, 0, 0, 0)

	if rt.keyDelay >= 0 && rt.pump != nil {
		rt.lastKey = rt.pump.WaitKey(rt.keyDelay)
	} else {
		rt.lastKey = -1
	}

	var errs []error
	if n := rt.stack.Len(); n > 0 {
		top := rt.stack.top()
		errs = append(errs, rt.fail(usageError("Update", ErrUnbalancedFrame,
			fmt.Sprintf("%d open, innermost is a %s", n, top.Type))))
		rt.stack.reset()
	}
	if rt.err != nil {
		errs = append(errs, rt.err)
		rt.err = nil
	}

	rt.frame++
	if uiVerbose() {
		rt.logger.Debug("frame done", "window", wc.Name, "frame", rt.frame,
			"mouse", wc.Mouse.Position, "key", rt.lastKey)
	}
	return errors.Join(errs...)
}

// Imshow runs Update for the window and presents canvas in it.
func (rt *Runtime) Imshow(window string, canvas image.Image) error {
	err := rt.Update(window)
	if rt.presenter == nil {
		return err
	}
	wc, cerr := rt.WindowContext(window)
	if cerr != nil {
		return err // already reported by Update
	}
	if perr := rt.presenter.Present(wc.Name, canvas); perr != nil {
		err = errors.Join(err, fmt.Errorf("present %s: %w", wc.Name, perr))
	}
	return err
}

// fail reports a usage error to the log and the error handler and returns it.
func (rt *Runtime) fail(err error) error {
	rt.logger.Warn("usage error", "err", err)
	if rt.onError != nil {
		rt.onError(err)
	}
	return err
}

// record keeps the first usage error of a frame for widget calls, which
// return their value rather than an error.
func (rt *Runtime) record(err error) {
	if rt.err == nil {
		rt.err = err
	}
	rt.fail(err)
}
