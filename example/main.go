// Example opens a window and draws every canvasui widget on a CPU canvas
// that is presented with OpenGL.
//
// Prerequisites:
//
//	Install devbox: https://www.jetify.com/devbox
//	devbox shell              # enter the dev environment (provides Go + OpenGL/X11 headers)
//	go run ./example/         # run this example
//
// Set CANVASUI_STYLE to a TOML style file to live-reload colors while the
// example runs, and CANVASUI_VERBOSE=1 for per-frame debug logs. Press q or
// Esc to quit.
package main

import (
	"fmt"
	"image"
	"log/slog"
	"os"
	"runtime"

	"github.com/go-gl/gl/v4.1-core/gl"
	"github.com/go-gl/glfw/v3.3/glfw"

	"github.com/go-theft-auto/canvasui"
	"github.com/go-theft-auto/canvasui/backend/opengl"
	"github.com/go-theft-auto/canvasui/raster"
)

const (
	windowWidth  = 640
	windowHeight = 480
	windowName   = "canvasui example"
)

func init() {
	// GLFW must run on the main thread.
	runtime.LockOSThread()
}

func main() {
	if err := run(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func run() error {
	canvasui.SetVerbose(os.Getenv("CANVASUI_VERBOSE") != "")

	if err := glfw.Init(); err != nil {
		return fmt.Errorf("glfw init: %w", err)
	}
	defer glfw.Terminate()

	glfw.WindowHint(glfw.ContextVersionMajor, 4)
	glfw.WindowHint(glfw.ContextVersionMinor, 1)
	glfw.WindowHint(glfw.OpenGLProfile, glfw.OpenGLCoreProfile)
	glfw.WindowHint(glfw.OpenGLForwardCompatible, glfw.True)
	// Cursor positions map 1:1 to canvas pixels only at the canvas size.
	glfw.WindowHint(glfw.Resizable, glfw.False)

	window, err := glfw.CreateWindow(windowWidth, windowHeight, windowName, nil, nil)
	if err != nil {
		return fmt.Errorf("create window: %w", err)
	}
	window.MakeContextCurrent()
	glfw.SwapInterval(1) // vsync

	if err := gl.Init(); err != nil {
		return fmt.Errorf("gl init: %w", err)
	}

	pump := opengl.NewInputPump()
	presenter := opengl.NewPresenter()
	defer presenter.Delete()

	rt := canvasui.New(raster.NewPainter(),
		canvasui.WithInputPump(pump),
		canvasui.WithPresenter(presenter),
		canvasui.WithKeyDelay(0),
	)
	if err := rt.Init(windowName); err != nil {
		return err
	}
	pump.Attach(rt, windowName, window)
	presenter.AddWindow(windowName, window)

	var styles <-chan canvasui.Style
	if path := os.Getenv("CANVASUI_STYLE"); path != "" {
		style, err := canvasui.LoadStyle(path)
		if err != nil {
			return err
		}
		rt.SetStyle(style)

		watcher, err := canvasui.WatchStyle(path)
		if err != nil {
			return err
		}
		defer watcher.Close()
		styles = watcher.Styles()
		go func() {
			for err := range watcher.Errors() {
				slog.Warn("style reload failed", "err", err)
			}
		}()
	}

	frame := image.NewRGBA(image.Rect(0, 0, windowWidth, windowHeight))
	state := newDemo()

	for !window.ShouldClose() {
		select {
		case style, ok := <-styles:
			if ok {
				rt.SetStyle(style)
			}
		default:
		}

		rt.Painter().FillRect(frame, canvasui.RectFromImage(frame.Rect), 0x313131)
		if state.draw(rt, frame) {
			break
		}

		if err := rt.Imshow(windowName, frame); err != nil {
			return fmt.Errorf("frame %d: %w", rt.Frame(), err)
		}

		if key := rt.LastKeyPressed(); key == 'q' || key == 27 {
			break
		}
	}
	return nil
}

// demo holds the values edited by the widgets.
type demo struct {
	clicks  int
	checked bool
	count   int
	ratio   float64
	gain    float64
	level   int
	history []float64
}

func newDemo() *demo {
	return &demo{ratio: 1.5, gain: 0.25, level: 3}
}

// draw lays out one frame and reports whether the user asked to quit.
func (d *demo) draw(rt *canvasui.Runtime, frame *image.RGBA) bool {
	rt.WindowAt(frame, 10, 10, 300, 220, "Controls")

	quit := false
	must(rt.BeginColumn(frame, 20, 40, 280, -1, 8))
	{
		must(rt.BeginRowFlow(-1, -1, 10))
		if rt.Button("&Click me") {
			d.clicks++
		}
		if rt.Button("&Quit") {
			quit = true
		}
		must(rt.EndRow())

		rt.Textf("Clicked %d times", d.clicks)
		rt.Checkbox("Show sparkline", &d.checked)

		must(rt.BeginRowFlow(-1, -1, 10))
		rt.Counter(&d.count)
		rt.CounterFloat(&d.ratio, canvasui.WithStep(0.25))
		must(rt.EndRow())

		canvasui.Trackbar(rt, 260, &d.gain, 0.0, 1.0, canvasui.WithFormat("%.2f"), canvasui.WithSegments(4))
	}
	must(rt.EndColumn())

	canvasui.TrackbarAt(rt, frame, 330, 40, 280, &d.level, 0, 10,
		canvasui.WithTrackbarOptions(canvasui.TrackbarDiscrete|canvasui.TrackbarHideSegmentLabels),
		canvasui.WithFormat("%.0f"))

	d.history = append(d.history, d.gain*float64(d.level))
	if len(d.history) > 120 {
		d.history = d.history[1:]
	}
	if d.checked {
		rt.SparklineAt(frame, 330, 120, d.history, 280, 100)
	}

	pos, _ := rt.MousePosition()
	rt.RectAt(frame, 10, 250, 620, 60, 0x4A4A4A, canvasui.Hex(0x75BFFF, 0xC0))
	rt.TextfAt(frame, 20, 270, "Mouse at %d,%d over the strip: %s", pos.X, pos.Y,
		rt.IArea(10, 250, 620, 60))
	return quit
}

func must(err error) {
	if err != nil {
		slog.Error("layout", "err", err)
	}
}
