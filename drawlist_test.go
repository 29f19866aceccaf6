package canvasui_test

import (
	"image"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/go-theft-auto/canvasui"
)

func TestDrawList_Pool(t *testing.T) {
	dl := canvasui.AcquireDrawList()
	dl.Line(nil, canvasui.Point{}, canvasui.Point{X: 1}, canvasui.ColorRed)
	canvasui.ReleaseDrawList(dl)

	dl = canvasui.AcquireDrawList()
	assert.Empty(t, dl.Cmds, "acquired lists are cleared")
	canvasui.ReleaseDrawList(dl)
	canvasui.ReleaseDrawList(nil)
}

func TestDrawList_MeasureText(t *testing.T) {
	var dl canvasui.DrawList

	assert.Equal(t, canvasui.Size{W: 28, H: 11}, dl.MeasureText("Quit", canvasui.DefaultFontScale))
	assert.Equal(t, canvasui.Size{W: 56, H: 22}, dl.MeasureText("Quit", 0.8))
	assert.Equal(t, canvasui.Size{W: 14, H: 11}, dl.MeasureText("ßé", canvasui.DefaultFontScale), "counts runes")
	assert.Equal(t, canvasui.Size{}, dl.MeasureText("", canvasui.DefaultFontScale))
}

func TestDrawList_SkipsInvisible(t *testing.T) {
	var dl canvasui.DrawList

	dl.FillRect(nil, canvasui.Rect{W: 4, H: 4}, canvasui.ColorNone)
	dl.Text(nil, "", canvasui.Point{}, canvasui.DefaultFontScale, canvasui.ColorWhite)

	assert.Empty(t, dl.Cmds)
}

func TestDrawList_FindAndTexts(t *testing.T) {
	var dl canvasui.DrawList
	dl.Text(nil, "a", canvasui.Point{}, 0.4, canvasui.ColorWhite)
	dl.FillRect(nil, canvasui.Rect{W: 1, H: 1}, canvasui.ColorRed)
	dl.Text(nil, "b", canvasui.Point{}, 0.4, canvasui.ColorWhite)

	assert.Equal(t, []string{"a", "b"}, dl.Texts())
	assert.Len(t, dl.Find(canvasui.CmdFillRect), 1)
	assert.Empty(t, dl.Find(canvasui.CmdBlit))
	assert.Equal(t, "fill-rect", canvasui.CmdFillRect.String())
}

func TestDrawList_Replay(t *testing.T) {
	rt, dl := newRuntime(t)
	rt.ButtonAt(newCanvas(), 10, 10, "&Go")
	rt.ImageAt(newCanvas(), 0, 0, image.NewRGBA(image.Rect(0, 0, 2, 2)))

	var copied canvasui.DrawList
	dl.Replay(&copied, newCanvas())

	require.NotEmpty(t, dl.Cmds)
	assert.Equal(t, dl.Cmds, copied.Cmds)
}
