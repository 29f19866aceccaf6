package canvasui

// MousePosition returns the pointer position of the current context.
func (rt *Runtime) MousePosition() (Point, error) {
	return rt.MousePositionIn("")
}

// MousePositionIn returns the pointer position of a registered window.
func (rt *Runtime) MousePositionIn(window string) (Point, error) {
	wc, err := rt.registered(window)
	if err != nil {
		return Point{}, rt.fail(usageError("MousePosition", err, window))
	}
	return wc.Mouse.Position, nil
}

// Mouse answers q for any button of the current context.
func (rt *Runtime) Mouse(q MouseQuery) (bool, error) {
	return rt.MouseIn("", q)
}

// MouseIn answers q for any button of a registered window.
func (rt *Runtime) MouseIn(window string, q MouseQuery) (bool, error) {
	wc, err := rt.registered(window)
	if err != nil {
		return false, rt.fail(usageError("Mouse", err, window))
	}
	ok, err := wc.Mouse.Any.Is(q)
	if err != nil {
		return false, rt.fail(usageError("Mouse", err, q.String()))
	}
	return ok, nil
}

// MouseButton answers q for one button of the current context.
func (rt *Runtime) MouseButton(b MouseButton, q MouseQuery) (bool, error) {
	return rt.MouseButtonIn("", b, q)
}

// MouseButtonIn answers q for one button of a registered window.
func (rt *Runtime) MouseButtonIn(window string, b MouseButton, q MouseQuery) (bool, error) {
	wc, err := rt.registered(window)
	if err != nil {
		return false, rt.fail(usageError("MouseButton", err, window))
	}
	state, err := wc.Mouse.Button(b)
	if err != nil {
		return false, rt.fail(usageError("MouseButton", err, b.String()))
	}
	ok, err := state.Is(q)
	if err != nil {
		return false, rt.fail(usageError("MouseButton", err, q.String()))
	}
	return ok, nil
}
