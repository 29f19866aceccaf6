package canvasui_test

import (
	"image"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/go-theft-auto/canvasui"
)

func TestText_BaselineAndFlow(t *testing.T) {
	rt, dl := newRuntime(t)
	c := newCanvas()

	rt.TextAt(c, 5, 5, "abc")
	texts := dl.Find(canvasui.CmdText)
	require.Len(t, texts, 1)
	assert.Equal(t, canvasui.Point{X: 5, Y: 16}, texts[0].From)
	assert.Equal(t, rt.Style().TextColor, texts[0].Color)

	require.NoError(t, rt.BeginColumn(c, 0, 0, -1, -1, 0))
	rt.Textf("%d items", 3)
	top, _ := rt.Top()
	require.NoError(t, rt.EndColumn())
	assert.Equal(t, canvasui.Size{W: 7 * 7, H: 12}, top.Resolved())
	assert.Contains(t, dl.Texts(), "3 items")
}

func TestText_Options(t *testing.T) {
	rt, dl := newRuntime(t)

	rt.TextAt(newCanvas(), 0, 0, "big", canvasui.WithFontScale(0.8), canvasui.WithColor(canvasui.ColorRed))

	cmd := dl.Find(canvasui.CmdText)[0]
	assert.Equal(t, 0.8, cmd.Scale)
	assert.Equal(t, canvasui.ColorRed, cmd.Color)
	assert.Equal(t, 22, cmd.From.Y)
}

func TestButton_AutoSize(t *testing.T) {
	rt, _ := newRuntime(t)
	c := newCanvas()

	require.NoError(t, rt.BeginColumn(c, 0, 0, -1, -1, 0))
	rt.Button("&Quit")
	top, _ := rt.Top()
	require.NoError(t, rt.EndColumn())

	// "Quit" is 28×11; padding adds 30×18 at the default scale.
	assert.Equal(t, canvasui.Size{W: 58, H: 29}, top.Resolved())
}

func TestButton_ShortcutUnderline(t *testing.T) {
	rt, dl := newRuntime(t)
	move(t, rt, 300, 300)

	rt.ButtonAt(newCanvas(), 0, 0, "&Quit")

	assert.Equal(t, []string{"Q", "uit"}, dl.Texts())
	lines := dl.Find(canvasui.CmdLine)
	underline := lines[len(lines)-1]
	assert.Equal(t, canvasui.Point{X: 15, Y: 22}, underline.From)
	assert.Equal(t, canvasui.Point{X: 22, Y: 22}, underline.To)
}

func TestButton_Click(t *testing.T) {
	rt, _ := newRuntime(t)
	c := newCanvas()

	press(t, rt, 10, 10)
	assert.False(t, rt.ButtonAt(c, 0, 0, "OK"), "press alone is not a click")
	endFrame(t, rt)

	release(t, rt, 10, 10)
	assert.True(t, rt.ButtonAt(c, 0, 0, "OK"))
	endFrame(t, rt)

	assert.False(t, rt.ButtonAt(c, 0, 0, "OK"), "click is reported once")

	click(t, rt, 500, 400)
	assert.False(t, rt.ButtonAt(c, 0, 0, "OK"), "release outside")
}

func TestButton_InsideColorByStatus(t *testing.T) {
	style := canvasui.DefaultStyle()
	tests := []struct {
		name  string
		setup func(t *testing.T, rt *canvasui.Runtime)
		want  canvasui.Color
	}{
		{"out", func(t *testing.T, rt *canvasui.Runtime) { move(t, rt, 300, 300) }, style.ButtonColor},
		{"over", func(t *testing.T, rt *canvasui.Runtime) { move(t, rt, 5, 5) }, style.ButtonColor.Brighten(style.ButtonHoverDelta)},
		{"down", func(t *testing.T, rt *canvasui.Runtime) { press(t, rt, 5, 5) }, style.ButtonColor.Darken(style.ButtonHoverDelta)},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rt, dl := newRuntime(t)
			tt.setup(t, rt)

			rt.ButtonAt(newCanvas(), 0, 0, "OK", canvasui.WithSize(40, 20))

			fills := dl.Find(canvasui.CmdFillRect)
			require.Len(t, fills, 1)
			assert.Equal(t, tt.want, fills[0].Color)
			assert.Equal(t, canvasui.Rect{X: 1, Y: 1, W: 38, H: 18}, fills[0].Rect)
		})
	}
}

func TestButton_LabelColorFollowsBrightness(t *testing.T) {
	rt, dl := newRuntime(t)
	c := newCanvas()

	rt.ButtonAt(c, 0, 0, "dark")
	rt.ButtonAt(c, 0, 50, "light", canvasui.WithColor(0xE0E0E0))

	texts := dl.Find(canvasui.CmdText)
	require.Len(t, texts, 2)
	assert.Equal(t, rt.Style().TextColor, texts[0].Color)
	assert.Equal(t, rt.Style().TextDarkColor, texts[1].Color)
}

func TestButton_Shortcut(t *testing.T) {
	pump := &fakePump{keys: []int{'q'}}
	rt, _ := newRuntime(t, canvasui.WithInputPump(pump), canvasui.WithKeyDelay(0))
	c := newCanvas()
	move(t, rt, 300, 300)

	endFrame(t, rt)
	assert.Equal(t, 'q', rune(rt.LastKeyPressed()))
	assert.True(t, rt.ButtonAt(c, 0, 0, "&Quit"), "lowercase key matches uppercase shortcut")
	assert.False(t, rt.ButtonAt(c, 0, 40, "&Save"))
	assert.False(t, rt.ButtonAt(c, 0, 80, "Quit"), "no marker, no shortcut")

	endFrame(t, rt)
	assert.False(t, rt.ButtonAt(c, 0, 0, "&Quit"))
}

func TestButton_ShortcutNeedsKeyPolling(t *testing.T) {
	pump := &fakePump{keys: []int{'q'}}
	rt, _ := newRuntime(t, canvasui.WithInputPump(pump))
	move(t, rt, 300, 300)

	endFrame(t, rt)

	assert.Empty(t, pump.waits, "pump is not polled by default")
	assert.Equal(t, -1, rt.LastKeyPressed())
	assert.False(t, rt.ButtonAt(newCanvas(), 0, 0, "&Quit"))
}

func TestImageButton(t *testing.T) {
	idle := image.NewRGBA(image.Rect(0, 0, 20, 10))
	over := image.NewRGBA(image.Rect(0, 0, 20, 10))
	down := image.NewRGBA(image.Rect(0, 0, 20, 10))

	tests := []struct {
		name    string
		setup   func(t *testing.T, rt *canvasui.Runtime)
		want    image.Image
		clicked bool
	}{
		{"idle", func(t *testing.T, rt *canvasui.Runtime) { move(t, rt, 100, 100) }, idle, false},
		{"over", func(t *testing.T, rt *canvasui.Runtime) { move(t, rt, 5, 5) }, over, false},
		{"down", func(t *testing.T, rt *canvasui.Runtime) { press(t, rt, 5, 5) }, down, false},
		{"click", func(t *testing.T, rt *canvasui.Runtime) { click(t, rt, 5, 5) }, over, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rt, dl := newRuntime(t)
			tt.setup(t, rt)

			got := rt.ImageButtonAt(newCanvas(), 0, 0, idle, over, down)

			assert.Equal(t, tt.clicked, got)
			blits := dl.Find(canvasui.CmdBlit)
			require.Len(t, blits, 1)
			assert.Same(t, tt.want, blits[0].Image)
			assert.Equal(t, canvasui.Rect{W: 20, H: 10}, blits[0].Rect)
		})
	}
}

func TestImage_Flows(t *testing.T) {
	rt, dl := newRuntime(t)
	img := image.NewRGBA(image.Rect(0, 0, 16, 9))

	require.NoError(t, rt.BeginRow(newCanvas(), 2, 3, -1, -1, 4))
	rt.Image(img)
	rt.Image(img)
	top, _ := rt.Top()
	require.NoError(t, rt.EndRow())

	blits := dl.Find(canvasui.CmdBlit)
	require.Len(t, blits, 2)
	assert.Equal(t, canvasui.Rect{X: 22, Y: 3, W: 16, H: 9}, blits[1].Rect)
	assert.Equal(t, canvasui.Size{W: 40, H: 9}, top.Resolved())
}

func TestCheckbox_Scenario(t *testing.T) {
	rt, _ := newRuntime(t)
	c := newCanvas()
	state := false

	click(t, rt, 5, 5)
	assert.True(t, rt.CheckboxAt(c, 0, 0, "Enable", &state))
	assert.True(t, state)
	endFrame(t, rt)

	click(t, rt, 300, 300)
	assert.True(t, rt.CheckboxAt(c, 0, 0, "Enable", &state), "release outside keeps the state")
	endFrame(t, rt)

	// The label is part of the hit area: 15 + 42 + 6 pixels wide.
	click(t, rt, 60, 5)
	assert.False(t, rt.CheckboxAt(c, 0, 0, "Enable", &state))
	endFrame(t, rt)

	click(t, rt, 63, 5)
	assert.False(t, rt.CheckboxAt(c, 0, 0, "Enable", &state), "past the label")
}

func TestCheckbox_Drawing(t *testing.T) {
	rt, dl := newRuntime(t)
	state := true
	move(t, rt, 300, 300)

	require.NoError(t, rt.BeginColumn(newCanvas(), 0, 0, -1, -1, 0))
	rt.Checkbox("On", &state)
	top, _ := rt.Top()
	require.NoError(t, rt.EndColumn())

	assert.Equal(t, canvasui.Size{W: 15 + 14 + 6, H: 15}, top.Resolved())

	style := rt.Style()
	strokes := dl.Find(canvasui.CmdStrokeRect)
	require.Len(t, strokes, 2)
	assert.Equal(t, style.CheckboxOutline, strokes[0].Color)
	fills := dl.Find(canvasui.CmdFillRect)
	require.Len(t, fills, 2)
	assert.Equal(t, canvasui.Rect{X: 3, Y: 3, W: 9, H: 9}, fills[1].Rect)
	assert.Equal(t, style.CheckboxCheck, fills[1].Color)

	text := dl.Find(canvasui.CmdText)[0]
	assert.Equal(t, canvasui.Point{X: 2 + 11 + 6, Y: 2 + 11 + 5 - 5 - 1}, text.From)
}

func TestRect_NegativeExtent(t *testing.T) {
	rt, dl := newRuntime(t)

	rt.RectAt(newCanvas(), 50, 50, -20, -10, 0xFF112233, canvasui.ColorNone)

	assert.Empty(t, dl.Find(canvasui.CmdFillRect), "transparent fill is skipped")
	strokes := dl.Find(canvasui.CmdStrokeRect)
	require.Len(t, strokes, 1)
	assert.Equal(t, canvasui.Rect{X: 30, Y: 40, W: 20, H: 10}, strokes[0].Rect)
	assert.Equal(t, canvasui.Color(0x112233), strokes[0].Color, "border is always opaque")
}

func TestRect_BlendedFill(t *testing.T) {
	rt, dl := newRuntime(t)
	fill := canvasui.Hex(0x75BFFF, 0x80)

	rt.RectAt(newCanvas(), 0, 0, 10, 10, canvasui.ColorWhite, fill)

	fills := dl.Find(canvasui.CmdFillRect)
	require.Len(t, fills, 1)
	assert.Equal(t, fill, fills[0].Color)
}

func TestWindow(t *testing.T) {
	rt, dl := newRuntime(t)
	style := rt.Style()

	require.NoError(t, rt.BeginColumn(newCanvas(), 0, 0, -1, -1, 0))
	rt.Window(200, 100, "Settings")
	top, _ := rt.Top()
	require.NoError(t, rt.EndColumn())

	assert.Equal(t, canvasui.Size{W: 200, H: 100}, top.Resolved())

	text := dl.Find(canvasui.CmdText)
	require.Len(t, text, 1)
	assert.Equal(t, "Settings", text[0].Text)
	assert.Equal(t, canvasui.Point{X: 6, Y: 13}, text[0].From)

	fills := dl.Find(canvasui.CmdFillRect)
	require.Len(t, fills, 2)
	assert.Equal(t, canvasui.Rect{X: 1, Y: 1, W: 198, H: 18}, fills[0].Rect)
	assert.Equal(t, style.WindowTitleFill, fills[0].Color)
	assert.Equal(t, canvasui.Rect{X: 1, Y: 21, W: 198, H: 78}, fills[1].Rect)
}

func TestWindow_TitleOnly(t *testing.T) {
	rt, dl := newRuntime(t)

	rt.WindowAt(newCanvas(), 0, 0, 100, 20, "Bar")

	assert.Len(t, dl.Find(canvasui.CmdStrokeRect), 1, "no body when the height fits only the title")
}
