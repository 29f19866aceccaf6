package canvasui_test

import (
	"errors"
	"log/slog"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/go-theft-auto/canvasui"
)

func TestUpdate_CountsFrames(t *testing.T) {
	rt, _ := newRuntime(t)
	assert.Equal(t, uint64(0), rt.Frame())

	endFrame(t, rt)
	endFrame(t, rt)

	assert.Equal(t, uint64(2), rt.Frame())
}

func TestUpdate_NoContext(t *testing.T) {
	rt := canvasui.New(&canvasui.DrawList{}, canvasui.WithLogger(slog.New(slog.DiscardHandler)))

	err := rt.Update("")
	assert.ErrorIs(t, err, canvasui.ErrNoContext)

	var ue *canvasui.UsageError
	require.ErrorAs(t, err, &ue)
	assert.Equal(t, "Update", ue.Op)
}

func TestUpdate_RegistersUnknownWindow(t *testing.T) {
	rt, _ := newRuntime(t)

	require.NoError(t, rt.Update("second"))

	assert.NoError(t, rt.HandleMouse("second", canvasui.MouseEvent{Kind: canvasui.MouseMove, X: 1, Y: 1}))
}

func TestUpdate_UnbalancedFrame(t *testing.T) {
	rt, _ := newRuntime(t)
	c := newCanvas()

	require.NoError(t, rt.BeginRow(c, 0, 0, -1, -1, 0))
	require.NoError(t, rt.BeginColumnFlow(-1, -1, 0))

	err := rt.Update(win)
	assert.ErrorIs(t, err, canvasui.ErrUnbalancedFrame)
	assert.Contains(t, err.Error(), "2 open")
	assert.Equal(t, 0, rt.Depth(), "stack is reset for the next frame")

	endFrame(t, rt)
}

func TestUpdate_ReturnsRecordedWidgetError(t *testing.T) {
	rt, _ := newRuntime(t)

	rt.Text("orphan")
	rt.Button("orphan")
	assert.ErrorIs(t, rt.Err(), canvasui.ErrEmptyStack)

	var ue *canvasui.UsageError
	require.ErrorAs(t, rt.Err(), &ue)
	assert.Equal(t, "Text", ue.Op, "the first error of the frame is kept")

	err := rt.Update(win)
	assert.ErrorIs(t, err, canvasui.ErrEmptyStack)
	assert.NoError(t, rt.Err(), "cleared by Update")
	endFrame(t, rt)
}

func TestUpdate_JoinsErrors(t *testing.T) {
	rt, _ := newRuntime(t)

	require.NoError(t, rt.BeginRow(newCanvas(), 0, 0, -1, -1, 0))
	require.NoError(t, rt.EndRow())
	rt.Text("orphan")
	require.NoError(t, rt.BeginColumn(newCanvas(), 0, 0, -1, -1, 0))

	err := rt.Update(win)
	assert.ErrorIs(t, err, canvasui.ErrUnbalancedFrame)
	assert.ErrorIs(t, err, canvasui.ErrEmptyStack)
}

func TestErrorHandler(t *testing.T) {
	var got []error
	rt, _ := newRuntime(t, canvasui.WithErrorHandler(func(err error) { got = append(got, err) }))

	assert.Error(t, rt.EndRow())
	rt.Text("orphan")

	require.Len(t, got, 2)
	assert.ErrorIs(t, got[0], canvasui.ErrEmptyStack)
	assert.ErrorIs(t, got[1], canvasui.ErrEmptyStack)
}

func TestUpdate_KeyPolling(t *testing.T) {
	pump := &fakePump{keys: []int{'a', 27}}
	rt, _ := newRuntime(t, canvasui.WithInputPump(pump), canvasui.WithKeyDelay(15*time.Millisecond))
	assert.Equal(t, -1, rt.LastKeyPressed())

	endFrame(t, rt)
	assert.Equal(t, int('a'), rt.LastKeyPressed())
	endFrame(t, rt)
	assert.Equal(t, 27, rt.LastKeyPressed())
	endFrame(t, rt)
	assert.Equal(t, -1, rt.LastKeyPressed())

	assert.Equal(t, []time.Duration{15 * time.Millisecond, 15 * time.Millisecond, 15 * time.Millisecond}, pump.waits)
}

func TestUpdate_PollingDisabledByDefault(t *testing.T) {
	pump := &fakePump{keys: []int{'a'}}
	rt, _ := newRuntime(t, canvasui.WithInputPump(pump))

	endFrame(t, rt)

	assert.Empty(t, pump.waits)
	assert.Equal(t, -1, rt.LastKeyPressed())
}

func TestUpdate_ClearsEdges(t *testing.T) {
	rt, _ := newRuntime(t)
	click(t, rt, 5, 5)

	ok, err := rt.MouseButtonIn(win, canvasui.MouseLeft, canvasui.MouseClick)
	require.NoError(t, err)
	assert.True(t, ok)

	endFrame(t, rt)

	ok, err = rt.MouseButtonIn(win, canvasui.MouseLeft, canvasui.MouseClick)
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestImshow(t *testing.T) {
	p := &fakePresenter{}
	rt, _ := newRuntime(t, canvasui.WithPresenter(p))

	require.NoError(t, rt.Imshow(win, newCanvas()))
	require.NoError(t, rt.Imshow("", newCanvas()))

	assert.Equal(t, []string{win, win}, p.windows, "empty name presents the current context")
	assert.Equal(t, uint64(2), rt.Frame())
}

func TestImshow_PresentError(t *testing.T) {
	presentErr := errors.New("window closed")
	p := &fakePresenter{err: presentErr}
	rt, _ := newRuntime(t, canvasui.WithPresenter(p))
	rt.Text("orphan")

	err := rt.Imshow(win, newCanvas())

	assert.ErrorIs(t, err, presentErr)
	assert.ErrorIs(t, err, canvasui.ErrEmptyStack)
	assert.Contains(t, err.Error(), "present main")
}

func TestImshow_WithoutPresenter(t *testing.T) {
	rt, _ := newRuntime(t)

	assert.NoError(t, rt.Imshow(win, newCanvas()))
	assert.Equal(t, uint64(1), rt.Frame())
}
