package canvasui

// WindowContext is one tracked window and its pointer state.
type WindowContext struct {
	Name  string
	Mouse MouseState
}

// Init registers every named window. The first becomes both the default and
// the current context.
func (rt *Runtime) Init(names ...string) error {
	if len(names) == 0 {
		return rt.fail(usageError("Init", ErrNoWindow, ""))
	}
	for _, name := range names {
		rt.Watch(name)
	}
	rt.defaultName = names[0]
	rt.current = names[0]
	return nil
}

// Watch registers a window with a zeroed mouse state. Watching an already
// registered window resets its state. The first watched window becomes the
// default context.
func (rt *Runtime) Watch(name string) *WindowContext {
	wc := &WindowContext{Name: name}
	rt.contexts[name] = wc
	if rt.defaultName == "" {
		rt.defaultName = name
	}
	rt.logger.Debug("window registered", "window", name)
	return wc
}

// Context makes name the current context used by calls that do not name a
// window. Unknown names are registered.
func (rt *Runtime) Context(name string) {
	if _, ok := rt.contexts[name]; !ok {
		rt.Watch(name)
	}
	rt.current = name
}

// CurrentContext returns the name of the current context, or "" when none
// has been selected.
func (rt *Runtime) CurrentContext() string {
	return rt.current
}

// WindowContext resolves a context. A non-empty name returns that window,
// registering it if needed. An empty name falls back to the current context,
// then to the default one.
func (rt *Runtime) WindowContext(name string) (*WindowContext, error) {
	if name != "" {
		if wc, ok := rt.contexts[name]; ok {
			return wc, nil
		}
		return rt.Watch(name), nil
	}
	if wc, ok := rt.contexts[rt.current]; ok && rt.current != "" {
		return wc, nil
	}
	if wc, ok := rt.contexts[rt.defaultName]; ok && rt.defaultName != "" {
		return wc, nil
	}
	return nil, ErrNoContext
}

// registered returns a window only if it was registered before.
func (rt *Runtime) registered(name string) (*WindowContext, error) {
	if name == "" {
		return rt.WindowContext("")
	}
	wc, ok := rt.contexts[name]
	if !ok {
		return nil, ErrUnknownContext
	}
	return wc, nil
}

// HandleMouse feeds one input-pump event into a registered window. Pumps call
// it from the goroutine that runs the frame loop.
func (rt *Runtime) HandleMouse(window string, ev MouseEvent) error {
	wc, ok := rt.contexts[window]
	if !ok {
		return usageError("HandleMouse", ErrUnknownContext, window)
	}
	if err := wc.Mouse.Apply(ev); err != nil {
		return usageError("HandleMouse", err, ev.Button.String())
	}
	return nil
}

// mouse returns the pointer state of the current context, recording a usage
// error when no window was ever initialized.
func (rt *Runtime) mouse(op string) *MouseState {
	wc, err := rt.WindowContext("")
	if err != nil {
		rt.record(usageError(op, err, ""))
		return &MouseState{Position: Point{X: -1, Y: -1}}
	}
	return &wc.Mouse
}
