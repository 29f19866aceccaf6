// Package opengl presents canvasui frames in GLFW windows with OpenGL 4.1
// and feeds GLFW input back into the runtime.
//
//	pump := opengl.NewInputPump()
//	presenter := opengl.NewPresenter()
//	rt := canvasui.New(raster.NewPainter(),
//	    canvasui.WithInputPump(pump), canvasui.WithPresenter(presenter),
//	    canvasui.WithKeyDelay(0))
//	rt.Init("main")
//	pump.Attach(rt, "main", window)
//	presenter.AddWindow("main", window)
package opengl

import (
	"errors"
	"fmt"
	"image"
	"unsafe"

	"github.com/go-gl/gl/v4.1-core/gl"
	"github.com/go-gl/glfw/v3.3/glfw"
	"golang.org/x/image/draw"

	"github.com/go-theft-auto/canvasui"
)

var (
	_ canvasui.InputPump = (*InputPump)(nil)
	_ canvasui.Presenter = (*Presenter)(nil)
)

// ErrUnknownWindow is returned by Present for names never added.
var ErrUnknownWindow = errors.New("opengl: unknown window")

const vertexShaderSource = `
#version 410 core
layout (location = 0) in vec2 aPos;
layout (location = 1) in vec2 aTexCoord;

out vec2 TexCoord;

void main() {
    gl_Position = vec4(aPos, 0.0, 1.0);
    TexCoord = aTexCoord;
}
` + "\x00"

const fragmentShaderSource = `
#version 410 core
in vec2 TexCoord;

out vec4 FragColor;

uniform sampler2D canvas;

void main() {
    FragColor = vec4(texture(canvas, TexCoord).rgb, 1.0);
}
` + "\x00"

// quadVertex is one corner of the fullscreen quad.
type quadVertex struct {
	Pos      [2]float32
	TexCoord [2]float32
}

// Texture row 0 is the top canvas row, so v grows downwards.
var quad = [4]quadVertex{
	{Pos: [2]float32{-1, 1}, TexCoord: [2]float32{0, 0}},
	{Pos: [2]float32{1, 1}, TexCoord: [2]float32{1, 0}},
	{Pos: [2]float32{1, -1}, TexCoord: [2]float32{1, 1}},
	{Pos: [2]float32{-1, -1}, TexCoord: [2]float32{0, 1}},
}

var quadIndices = [6]uint32{0, 1, 2, 0, 2, 3}

// surface holds the GL objects of one window. GL objects live in the
// window's own context, so each window gets its own set.
type surface struct {
	window    *glfw.Window
	ready     bool
	shader    uint32
	vao, vbo  uint32
	ebo       uint32
	tex       uint32
	texSize   image.Point
	canvasLoc int32
	staging   *image.RGBA
}

// Presenter implements canvasui.Presenter: every Present uploads the canvas
// as a texture, stretches it over the window and swaps buffers.
type Presenter struct {
	surfaces map[string]*surface
}

// NewPresenter creates a presenter with no windows.
func NewPresenter() *Presenter {
	return &Presenter{surfaces: make(map[string]*surface)}
}

// AddWindow makes a GLFW window available under a name. GL resources are
// created on its first Present; gl.Init must have run by then.
func (p *Presenter) AddWindow(name string, window *glfw.Window) {
	p.surfaces[name] = &surface{window: window}
}

// Present implements canvasui.Presenter.
func (p *Presenter) Present(name string, canvas image.Image) error {
	s, ok := p.surfaces[name]
	if !ok {
		return fmt.Errorf("%w: %q", ErrUnknownWindow, name)
	}

	s.window.MakeContextCurrent()
	if !s.ready {
		if err := s.init(); err != nil {
			return fmt.Errorf("init %s: %w", name, err)
		}
	}

	s.upload(canvas)

	w, h := s.window.GetFramebufferSize()
	gl.Viewport(0, 0, int32(w), int32(h))
	gl.Disable(gl.BLEND)
	gl.Disable(gl.DEPTH_TEST)

	gl.UseProgram(s.shader)
	gl.ActiveTexture(gl.TEXTURE0)
	gl.BindTexture(gl.TEXTURE_2D, s.tex)
	gl.Uniform1i(s.canvasLoc, 0)

	gl.BindVertexArray(s.vao)
	gl.DrawElementsWithOffset(gl.TRIANGLES, int32(len(quadIndices)), gl.UNSIGNED_INT, 0)
	gl.BindVertexArray(0)

	s.window.SwapBuffers()
	return nil
}

// Delete releases the GL resources of every window.
func (p *Presenter) Delete() {
	for _, s := range p.surfaces {
		if !s.ready {
			continue
		}
		s.window.MakeContextCurrent()
		s.delete()
	}
}

func (s *surface) init() error {
	var err error
	s.shader, err = createShaderProgram(vertexShaderSource, fragmentShaderSource)
	if err != nil {
		return fmt.Errorf("failed to create shader: %w", err)
	}
	s.canvasLoc = gl.GetUniformLocation(s.shader, gl.Str("canvas\x00"))

	gl.GenVertexArrays(1, &s.vao)
	gl.BindVertexArray(s.vao)

	gl.GenBuffers(1, &s.vbo)
	gl.BindBuffer(gl.ARRAY_BUFFER, s.vbo)
	gl.BufferData(gl.ARRAY_BUFFER, int(unsafe.Sizeof(quad)), gl.Ptr(&quad[0]), gl.STATIC_DRAW)

	gl.GenBuffers(1, &s.ebo)
	gl.BindBuffer(gl.ELEMENT_ARRAY_BUFFER, s.ebo)
	gl.BufferData(gl.ELEMENT_ARRAY_BUFFER, int(unsafe.Sizeof(quadIndices)), gl.Ptr(&quadIndices[0]), gl.STATIC_DRAW)

	stride := int32(unsafe.Sizeof(quadVertex{}))
	gl.VertexAttribPointerWithOffset(0, 2, gl.FLOAT, false, stride, 0)
	gl.EnableVertexAttribArray(0)
	gl.VertexAttribPointerWithOffset(1, 2, gl.FLOAT, false, stride, unsafe.Offsetof(quadVertex{}.TexCoord))
	gl.EnableVertexAttribArray(1)

	gl.BindVertexArray(0)

	gl.GenTextures(1, &s.tex)
	gl.BindTexture(gl.TEXTURE_2D, s.tex)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_MIN_FILTER, gl.NEAREST)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_MAG_FILTER, gl.NEAREST)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_WRAP_S, gl.CLAMP_TO_EDGE)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_WRAP_T, gl.CLAMP_TO_EDGE)
	gl.BindTexture(gl.TEXTURE_2D, 0)

	s.ready = true
	return nil
}

// upload copies canvas into the window texture, converting through a
// staging image unless it already is a tightly packed *image.RGBA.
func (s *surface) upload(canvas image.Image) {
	rgba := tightRGBA(canvas)
	if rgba == nil {
		b := canvas.Bounds()
		if s.staging == nil || s.staging.Rect.Size() != b.Size() {
			s.staging = image.NewRGBA(image.Rect(0, 0, b.Dx(), b.Dy()))
		}
		draw.Draw(s.staging, s.staging.Rect, canvas, b.Min, draw.Src)
		rgba = s.staging
	}

	size := rgba.Rect.Size()
	gl.BindTexture(gl.TEXTURE_2D, s.tex)
	gl.PixelStorei(gl.UNPACK_ALIGNMENT, 1)
	if size == s.texSize {
		gl.TexSubImage2D(gl.TEXTURE_2D, 0, 0, 0, int32(size.X), int32(size.Y),
			gl.RGBA, gl.UNSIGNED_BYTE, gl.Ptr(rgba.Pix))
	} else {
		gl.TexImage2D(gl.TEXTURE_2D, 0, gl.RGBA8, int32(size.X), int32(size.Y), 0,
			gl.RGBA, gl.UNSIGNED_BYTE, gl.Ptr(rgba.Pix))
		s.texSize = size
	}
}

func (s *surface) delete() {
	if s.tex != 0 {
		gl.DeleteTextures(1, &s.tex)
	}
	if s.ebo != 0 {
		gl.DeleteBuffers(1, &s.ebo)
	}
	if s.vbo != 0 {
		gl.DeleteBuffers(1, &s.vbo)
	}
	if s.vao != 0 {
		gl.DeleteVertexArrays(1, &s.vao)
	}
	if s.shader != 0 {
		gl.DeleteProgram(s.shader)
	}
	s.ready = false
}

// tightRGBA returns img when its pixels can be uploaded as is.
func tightRGBA(img image.Image) *image.RGBA {
	rgba, ok := img.(*image.RGBA)
	if !ok || rgba.Rect.Empty() || rgba.Stride != 4*rgba.Rect.Dx() {
		return nil
	}
	if rgba.Rect.Min != (image.Point{}) {
		return nil
	}
	return rgba
}

// createShaderProgram compiles and links a shader program.
func createShaderProgram(vertexSource, fragmentSource string) (uint32, error) {
	vertexShader, err := compileShader(gl.VERTEX_SHADER, vertexSource)
	if err != nil {
		return 0, fmt.Errorf("vertex shader: %w", err)
	}
	defer gl.DeleteShader(vertexShader)

	fragmentShader, err := compileShader(gl.FRAGMENT_SHADER, fragmentSource)
	if err != nil {
		return 0, fmt.Errorf("fragment shader: %w", err)
	}
	defer gl.DeleteShader(fragmentShader)

	program := gl.CreateProgram()
	gl.AttachShader(program, vertexShader)
	gl.AttachShader(program, fragmentShader)
	gl.LinkProgram(program)

	var status int32
	gl.GetProgramiv(program, gl.LINK_STATUS, &status)
	if status == gl.FALSE {
		var logLength int32
		gl.GetProgramiv(program, gl.INFO_LOG_LENGTH, &logLength)
		log := make([]byte, logLength+1)
		gl.GetProgramInfoLog(program, logLength, nil, &log[0])
		gl.DeleteProgram(program)
		return 0, fmt.Errorf("link: %s", string(log))
	}
	return program, nil
}

func compileShader(kind uint32, source string) (uint32, error) {
	shader := gl.CreateShader(kind)
	csource, free := gl.Strs(source)
	gl.ShaderSource(shader, 1, csource, nil)
	free()
	gl.CompileShader(shader)

	var status int32
	gl.GetShaderiv(shader, gl.COMPILE_STATUS, &status)
	if status == gl.FALSE {
		var logLength int32
		gl.GetShaderiv(shader, gl.INFO_LOG_LENGTH, &logLength)
		log := make([]byte, logLength+1)
		gl.GetShaderInfoLog(shader, logLength, nil, &log[0])
		gl.DeleteShader(shader)
		return 0, fmt.Errorf("compile: %s", string(log))
	}
	return shader, nil
}
