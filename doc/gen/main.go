// Command gen renders every widget with sample data into an off-screen
// canvas and saves JPEG screenshots to doc/imgs/. It needs no window or GPU.
//
// Usage:
//
//	go run ./doc/gen/
package main

import (
	"fmt"
	"image"
	"image/jpeg"
	"log/slog"
	"math"
	"os"
	"path/filepath"

	"github.com/go-theft-auto/canvasui"
	"github.com/go-theft-auto/canvasui/raster"
)

const window = "gen"

func main() {
	if err := run(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// screenshot defines a single widget screenshot to capture.
type screenshot struct {
	name   string                // filename without extension
	width  int                   // canvas width
	height int                   // canvas height
	style  func() canvasui.Style // nil means DefaultStyle
	hover  *canvasui.Point       // pointer position fed before drawing
	draw   func(rt *canvasui.Runtime, c canvasui.Canvas) error
}

func run() error {
	outDir := filepath.Join("doc", "imgs")
	if err := os.MkdirAll(outDir, 0o755); err != nil {
		return fmt.Errorf("mkdir: %w", err)
	}

	painter := raster.NewPainter()
	shots := buildScreenshots()

	for _, s := range shots {
		if err := capture(painter, s, outDir); err != nil {
			return fmt.Errorf("capture %s: %w", s.name, err)
		}
		fmt.Printf("  %s.jpg (%dx%d)\n", s.name, s.width, s.height)
	}

	fmt.Printf("\nGenerated %d screenshots in %s/\n", len(shots), outDir)
	return nil
}

func capture(painter canvasui.Painter, s screenshot, outDir string) error {
	style := canvasui.DefaultStyle()
	if s.style != nil {
		style = s.style()
	}

	// Fresh runtime per screenshot to avoid state leaking between captures.
	rt := canvasui.New(painter,
		canvasui.WithStyle(style),
		canvasui.WithLogger(slog.Default()),
	)
	if err := rt.Init(window); err != nil {
		return err
	}
	if s.hover != nil {
		ev := canvasui.MouseEvent{Kind: canvasui.MouseMove, X: s.hover.X, Y: s.hover.Y}
		if err := rt.HandleMouse(window, ev); err != nil {
			return err
		}
	}

	img := image.NewRGBA(image.Rect(0, 0, s.width, s.height))
	painter.FillRect(img, canvasui.Rect{W: s.width, H: s.height}, style.WindowBodyFill)

	if err := s.draw(rt, img); err != nil {
		return err
	}
	if err := rt.Update(window); err != nil {
		return err
	}

	path := filepath.Join(outDir, s.name+".jpg")
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()
	return jpeg.Encode(f, img, &jpeg.Options{Quality: 90})
}

// buildScreenshots returns the list of all widget screenshots to generate.
func buildScreenshots() []screenshot {
	// Shared state for widgets that need pointers.
	var (
		checked   = true
		unchecked = false
		count     = 42
		ratio     = 0.25
		gain      = 1.2
		level     = 6
		steps     = 30.0
	)

	wave := make([]float64, 80)
	for i := range wave {
		wave[i] = math.Sin(float64(i)/6) + 0.3*math.Sin(float64(i)/2)
	}

	return []screenshot{
		{
			name: "text", width: 300, height: 90,
			draw: func(rt *canvasui.Runtime, c canvasui.Canvas) error {
				return column(rt, c, 4, func() {
					rt.Text("Plain text")
					rt.Text("Colored text", canvasui.WithColor(canvasui.ColorYellow))
					rt.Text("Larger text", canvasui.WithFontScale(0.6))
					rt.Textf("Formatted %d%%", 75)
				})
			},
		},
		{
			name: "button", width: 320, height: 60,
			hover: &canvasui.Point{X: 100, Y: 25},
			draw: func(rt *canvasui.Runtime, c canvasui.Canvas) error {
				return row(rt, c, 8, func() {
					rt.Button("&Save")
					rt.Button("Hovered")
					rt.Button("Sized", canvasui.WithSize(90, 30))
				})
			},
		},
		{
			name: "button_light", width: 320, height: 60,
			style: canvasui.LightStyle,
			draw: func(rt *canvasui.Runtime, c canvasui.Canvas) error {
				return row(rt, c, 8, func() {
					rt.Button("&Open")
					rt.Button("&Close")
				})
			},
		},
		{
			name: "checkbox", width: 240, height: 70,
			draw: func(rt *canvasui.Runtime, c canvasui.Canvas) error {
				return column(rt, c, 8, func() {
					rt.Checkbox("Enabled feature", &checked)
					rt.Checkbox("Disabled feature", &unchecked)
				})
			},
		},
		{
			name: "counter", width: 260, height: 80,
			draw: func(rt *canvasui.Runtime, c canvasui.Canvas) error {
				return column(rt, c, 8, func() {
					rt.Counter(&count)
					rt.CounterFloat(&ratio, canvasui.WithStep(0.05), canvasui.WithFormat("%.2f"))
				})
			},
		},
		{
			name: "trackbar", width: 320, height: 180,
			draw: func(rt *canvasui.Runtime, c canvasui.Canvas) error {
				return column(rt, c, 10, func() {
					canvasui.Trackbar(rt, 280, &gain, 0.0, 2.0, canvasui.WithSegments(4), canvasui.WithFormat("%.2f"))
					canvasui.Trackbar(rt, 280, &level, 0, 10,
						canvasui.WithTrackbarOptions(canvasui.TrackbarDiscrete), canvasui.WithStep(1), canvasui.WithFormat("%.0f"))
					canvasui.Trackbar(rt, 280, &steps, 0.0, 100.0,
						canvasui.WithTrackbarOptions(canvasui.TrackbarHideSegmentLabels|canvasui.TrackbarHideStepScale))
				})
			},
		},
		{
			name: "sparkline", width: 320, height: 110,
			draw: func(rt *canvasui.Runtime, c canvasui.Canvas) error {
				return column(rt, c, 6, func() {
					rt.Sparkline(wave, 280, 60)
					rt.Sparkline(nil, 280, 20)
				})
			},
		},
		{
			name: "window", width: 320, height: 180,
			draw: func(rt *canvasui.Runtime, c canvasui.Canvas) error {
				rt.WindowAt(c, 10, 10, 300, 160, "Settings")
				rt.TextAt(c, 20, 40, "Window body")
				rt.RectAt(c, 20, 70, 120, 40, canvasui.ColorWhite, canvasui.Hex(0xFF0000, 0x80))
				return nil
			},
		},
		{
			name: "layout", width: 420, height: 140,
			draw: func(rt *canvasui.Runtime, c canvasui.Canvas) error {
				if err := rt.BeginRow(c, 10, 10, -1, -1, 10); err != nil {
					return err
				}
				if err := rt.BeginColumnFlow(-1, -1, 4); err != nil {
					return err
				}
				rt.Text("Column A")
				rt.Button("First")
				rt.Button("Second")
				if err := rt.EndColumn(); err != nil {
					return err
				}
				if err := rt.BeginColumnFlow(-1, -1, 4); err != nil {
					return err
				}
				rt.Text("Column B")
				rt.Checkbox("Option", &checked)
				rt.Counter(&count)
				if err := rt.EndColumn(); err != nil {
					return err
				}
				return rt.EndRow()
			},
		},
	}
}

// column runs body inside a column anchored at the screenshot margin.
func column(rt *canvasui.Runtime, c canvasui.Canvas, padding int, body func()) error {
	if err := rt.BeginColumn(c, 12, 12, -1, -1, padding); err != nil {
		return err
	}
	body()
	return rt.EndColumn()
}

// row runs body inside a row anchored at the screenshot margin.
func row(rt *canvasui.Runtime, c canvasui.Canvas, padding int, body func()) error {
	if err := rt.BeginRow(c, 12, 12, -1, -1, padding); err != nil {
		return err
	}
	body()
	return rt.EndRow()
}
