/*
Package canvasui is an immediate-mode UI toolkit that draws widgets onto a
plain raster canvas (any draw.Image) and reacts to pointer input.

# Overview

The UI is rebuilt every frame. Widgets are function calls that draw and
return their interaction result right away: a button returns true on the
frame it is clicked, a trackbar edits the value it points to. All state
lives in a Runtime: registered windows with their mouse state, the layout
block stack, the last key typed and the style.

The runtime never touches pixels itself. It draws through a Painter
(raster.Painter rasterizes with golang.org/x/image, *DrawList records
commands for tests) and reaches the host through an InputPump and a
Presenter (backend/opengl implements both with GLFW and OpenGL).

# Quick Start

	pump := opengl.NewInputPump()
	rt := canvasui.New(raster.NewPainter(),
	    canvasui.WithInputPump(pump),
	    canvasui.WithPresenter(opengl.NewPresenter()),
	    canvasui.WithKeyDelay(0))
	rt.Init("main")
	pump.Attach(rt, "main", window)

	frame := image.NewRGBA(image.Rect(0, 0, 640, 480))
	for !window.ShouldClose() {
	    rt.Painter().FillRect(frame, canvasui.RectFromImage(frame.Rect), 0x313131)

	    if rt.ButtonAt(frame, 10, 10, "&Quit") {
	        break
	    }
	    canvasui.TrackbarAt(rt, frame, 10, 60, 200, &gain, 0.0, 1.0)

	    if err := rt.Imshow("main", frame); err != nil {
	        return err
	    }
	}

# Frames

A frame is the widget calls made between two Update calls for a window.
Update clears the one-frame mouse flags (JustPressed, JustReleased), polls
the input pump when key polling is enabled with WithKeyDelay, and checks
that every Begin had its End. Imshow is Update followed by presenting the
canvas.

# Layout

Every widget has two forms. The At form takes a canvas and a position:

	rt.ButtonAt(frame, 10, 10, "OK")

The flowing form places the widget at the anchor of the innermost block
opened with BeginRow or BeginColumn, then advances the anchor by the
widget's size plus the block padding:

	rt.BeginRow(frame, 10, 10, -1, -1, 8)
	rt.Button("Load")
	rt.Button("Save")
	rt.EndRow()

Blocks nest. A negative width or height sizes the block from its content,
and a closed block flows its size into its parent.

# Colors

Color is 0xAARRGGBB with an inverted alpha byte: plain 0xRRGGBB literals are
opaque, 0xFF000000 (ColorNone) paints nothing and values in between blend.
Colors parse from "0x…", "#…" or SVG names in TOML styles.

# Errors

Structural calls (Init, Begin*, End*, Space, mouse queries, Update) return
errors wrapping the sentinels in errors.go as *UsageError:

	if err := rt.EndRow(); errors.Is(err, canvasui.ErrMismatchedEnd) {
	    ...
	}

Widget calls return their value instead. Their usage errors are kept in
Err and returned by the next Update. WithErrorHandler sees every error as it
happens.

# Keyboard Shortcuts

With key polling enabled, a button whose label contains '&' is also
activated by typing the character that follows it (case-insensitive).
The character is drawn underlined:

	rt.Button("&Save")      // S or s
	rt.Button("Save &As")   // A or a

# Styles

Style holds every widget color plus the font scale. DefaultStyle and
LightStyle are built in; LoadStyle reads TOML, and WatchStyle reloads a file
on change:

	font_scale = 0.5
	button_color = "#2F4F6F"
	text_color = "white"

# Widgets

	Text, Textf          Text at the anchor (TextAt, TextfAt at a position)
	Button               Text button, auto-sized or WithSize
	ImageButton          Button made of idle, over and down images
	Image                Image at its own size
	Checkbox             Toggles a bool
	Counter              Integer counter with - and + buttons
	CounterFloat         Float counter
	Trackbar             Generic slider over any Number type, with segments,
	                     step ticks and discrete snapping
	Sparkline            Line chart of a []float64
	Rect                 Bordered, optionally filled rectangle
	Window               Title bar and body decoration
	IArea                Interaction status of any rectangle, for custom widgets
*/
package canvasui
