package canvasui_test

import (
	"image"
	"log/slog"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/go-theft-auto/canvasui"
)

const win = "main"

// newRuntime creates a runtime recording into a DrawList with one window
// registered and logging disabled.
func newRuntime(t *testing.T, opts ...canvasui.RuntimeOption) (*canvasui.Runtime, *canvasui.DrawList) {
	t.Helper()
	dl := &canvasui.DrawList{}
	all := append([]canvasui.RuntimeOption{canvasui.WithLogger(slog.New(slog.DiscardHandler))}, opts...)
	rt := canvasui.New(dl, all...)
	require.NoError(t, rt.Init(win))
	return rt, dl
}

func newCanvas() *image.RGBA {
	return image.NewRGBA(image.Rect(0, 0, 640, 480))
}

func move(t *testing.T, rt *canvasui.Runtime, x, y int) {
	t.Helper()
	require.NoError(t, rt.HandleMouse(win, canvasui.MouseEvent{Kind: canvasui.MouseMove, X: x, Y: y}))
}

func press(t *testing.T, rt *canvasui.Runtime, x, y int) {
	t.Helper()
	require.NoError(t, rt.HandleMouse(win, canvasui.MouseEvent{
		Kind: canvasui.MouseButtonDown, Button: canvasui.MouseLeft, X: x, Y: y,
	}))
}

func release(t *testing.T, rt *canvasui.Runtime, x, y int) {
	t.Helper()
	require.NoError(t, rt.HandleMouse(win, canvasui.MouseEvent{
		Kind: canvasui.MouseButtonUp, Button: canvasui.MouseLeft, X: x, Y: y,
	}))
}

// click delivers a full press and release at one point, as a pump does when
// both events arrive between two frames.
func click(t *testing.T, rt *canvasui.Runtime, x, y int) {
	t.Helper()
	press(t, rt, x, y)
	release(t, rt, x, y)
}

// endFrame runs Update for the test window and requires it to succeed.
func endFrame(t *testing.T, rt *canvasui.Runtime) {
	t.Helper()
	require.NoError(t, rt.Update(win))
}

// fakePump returns queued keys, one per WaitKey call.
type fakePump struct {
	keys  []int
	waits []time.Duration
}

func (p *fakePump) WaitKey(timeout time.Duration) int {
	p.waits = append(p.waits, timeout)
	if len(p.keys) == 0 {
		return -1
	}
	k := p.keys[0]
	p.keys = p.keys[1:]
	return k
}

// fakePresenter records presented windows.
type fakePresenter struct {
	windows []string
	err     error
}

func (p *fakePresenter) Present(window string, _ image.Image) error {
	p.windows = append(p.windows, window)
	return p.err
}
