// This file is part of vgavideo.
//
// vgavideo is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// vgavideo is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with vgavideo.  If not, see <https://www.gnu.org/licenses/>.

// Package accelerated implements a renderer backend using OpenGL 3.2 core.
// The display page is uploaded to a single channel texture and the palette to
// a 256×1 texture. The fragment shader looks up the colour of each pixel.
//
// Only rows of the display page that have changed since the previous refresh
// are uploaded.
package accelerated

import (
	"fmt"

	"github.com/go-gl/gl/v3.2-core/gl"
	"github.com/retrovga/vgavideo/curated"
	"github.com/retrovga/vgavideo/logger"
	"github.com/retrovga/vgavideo/palette"
	"github.com/retrovga/vgavideo/platform"
	"github.com/retrovga/vgavideo/platform/sdlplatform"
	"github.com/retrovga/vgavideo/renderer"
	"github.com/retrovga/vgavideo/renderer/accelerated/shaders"
	"github.com/veandco/go-sdl2/sdl"
)

const tag = "ogl"

// Backend is an implementation of the renderer.Backend interface.
type Backend struct {
	state renderer.State
	env   renderer.Environment

	window    *sdl.Window
	context   sdl.GLContext
	glStarted bool

	screenTexture  uint32
	paletteTexture uint32
	vao            uint32
	vbo            uint32
	vertShader     uint32
	fragShader     uint32
	program        uint32

	// uniform and attribute locations
	projection int32
	screen     int32
	pal        int32
	position   int32
	uv         int32

	// palette in 8 bit RGB. uploaded in full on every change
	rgb [palette.Size]uint8

	// the display page uploaded most recently. the whole page is uploaded
	// when the display page changes
	uploaded   int
	fullUpload bool
}

// NewBackend is the preferred method of initialisation for the Backend type.
func NewBackend() *Backend {
	return &Backend{}
}

// Kind implements the renderer.Backend interface.
func (bck *Backend) Kind() renderer.Kind {
	return renderer.Accelerated
}

// State implements the renderer.Backend interface.
func (bck *Backend) State() renderer.State {
	return bck.state
}

// PreSubsystemCreation implements the renderer.Backend interface.
func (bck *Backend) PreSubsystemCreation() error {
	bck.state = renderer.SubsystemReady
	return nil
}

// PreWindowCreation implements the renderer.Backend interface.
func (bck *Backend) PreWindowCreation() error {
	attrs := []struct {
		attr  sdl.GLattr
		value int
	}{
		{sdl.GL_CONTEXT_MAJOR_VERSION, 3},
		{sdl.GL_CONTEXT_MINOR_VERSION, 2},
		{sdl.GL_CONTEXT_FLAGS, sdl.GL_CONTEXT_FORWARD_COMPATIBLE_FLAG},
		{sdl.GL_CONTEXT_PROFILE_MASK, sdl.GL_CONTEXT_PROFILE_CORE},
		{sdl.GL_DOUBLEBUFFER, 1},
		{sdl.GL_RED_SIZE, 8},
		{sdl.GL_GREEN_SIZE, 8},
		{sdl.GL_BLUE_SIZE, 8},
	}

	for _, a := range attrs {
		err := sdl.GLSetAttribute(a.attr, a.value)
		if err != nil {
			logger.Errorf(logger.Allow, tag, "setting attribute: %v", err)
			return curated.Errorf(renderer.InitError, tag, fmt.Errorf("sdl: %w", err))
		}
	}

	bck.state = renderer.WindowReady

	return nil
}

// WindowFlags implements the renderer.Backend interface.
func (bck *Backend) WindowFlags() platform.WindowFlags {
	return platform.FlagOpenGL
}

// InitializeRenderer implements the renderer.Backend interface.
func (bck *Backend) InitializeRenderer(win platform.Window, env renderer.Environment) error {
	if bck.state != renderer.WindowReady {
		return curated.Errorf(renderer.WrongStateError, tag, "initialisation", bck.state)
	}

	sw, ok := win.(sdlplatform.SDLWindow)
	if !ok {
		bck.Uninitialize()
		return curated.Errorf(renderer.WindowError, tag, win)
	}

	bck.window = sw.SDL()
	bck.env = env

	err := bck.initialize()
	if err != nil {
		bck.Uninitialize()
		return curated.Errorf(renderer.InitError, tag, err)
	}

	bck.state = renderer.RendererReady
	bck.fullUpload = true

	return nil
}

func (bck *Backend) initialize() error {
	var err error

	logger.Log(logger.Allow, tag, "creating context")
	bck.context, err = bck.window.GLCreateContext()
	if err != nil {
		logger.Errorf(logger.Allow, tag, "creating context: %v", err)
		return fmt.Errorf("sdl: %w", err)
	}
	bck.glStarted = true

	err = bck.window.GLMakeCurrent(bck.context)
	if err != nil {
		logger.Errorf(logger.Allow, tag, "making context current: %v", err)
		return fmt.Errorf("sdl: %w", err)
	}

	err = gl.Init()
	if err != nil {
		logger.Errorf(logger.Allow, tag, "loading functions: %v", err)
		return fmt.Errorf("ogl: %w", err)
	}

	// log GPU vendor information
	logger.Logf(logger.Allow, tag, "vendor: %s", gl.GoStr(gl.GetString(gl.VENDOR)))
	logger.Logf(logger.Allow, tag, "renderer: %s", gl.GoStr(gl.GetString(gl.RENDERER)))
	logger.Logf(logger.Allow, tag, "driver: %s", gl.GoStr(gl.GetString(gl.VERSION)))

	g := bck.env.Geometry

	gl.PixelStorei(gl.UNPACK_ALIGNMENT, 1)

	// screen texture of palette indexes
	logger.Logf(logger.Allow, tag, "creating screen texture (%dx%d)", g.VGAWidth, g.VGAHeight)
	gl.GenTextures(1, &bck.screenTexture)
	if err := checkHandle("screen texture", bck.screenTexture); err != nil {
		return err
	}
	gl.ActiveTexture(gl.TEXTURE0)
	gl.BindTexture(gl.TEXTURE_2D, bck.screenTexture)
	setTextureParameters()
	gl.TexImage2D(gl.TEXTURE_2D, 0, gl.R8, int32(g.VGAWidth), int32(g.VGAHeight), 0, gl.RED, gl.UNSIGNED_BYTE, nil)
	if err := checkError("screen texture", gl.GetError()); err != nil {
		return err
	}

	// palette texture
	logger.Log(logger.Allow, tag, "creating palette texture")
	if bck.env.Palette != nil {
		bck.expand(0, palette.Entries, bck.env.Palette())
	}
	gl.GenTextures(1, &bck.paletteTexture)
	if err := checkHandle("palette texture", bck.paletteTexture); err != nil {
		return err
	}
	gl.ActiveTexture(gl.TEXTURE1)
	gl.BindTexture(gl.TEXTURE_2D, bck.paletteTexture)
	setTextureParameters()
	gl.TexImage2D(gl.TEXTURE_2D, 0, gl.RGB8, palette.Entries, 1, 0, gl.RGB, gl.UNSIGNED_BYTE, gl.Ptr(&bck.rgb[0]))
	if err := checkError("palette texture", gl.GetError()); err != nil {
		return err
	}

	// vertices
	logger.Log(logger.Allow, tag, "creating vertex buffer")
	gl.GenVertexArrays(1, &bck.vao)
	if err := checkHandle("vertex array", bck.vao); err != nil {
		return err
	}
	gl.BindVertexArray(bck.vao)
	gl.GenBuffers(1, &bck.vbo)
	if err := checkHandle("vertex buffer", bck.vbo); err != nil {
		return err
	}
	gl.BindBuffer(gl.ARRAY_BUFFER, bck.vbo)
	quad := Quad(g.VGAWidth, g.VGAHeight)
	gl.BufferData(gl.ARRAY_BUFFER, len(quad)*4, gl.Ptr(&quad[0]), gl.STATIC_DRAW)
	if err := checkError("vertex buffer", gl.GetError()); err != nil {
		return err
	}

	// shaders
	logger.Log(logger.Allow, tag, "compiling shaders")
	bck.vertShader, err = compileShader(gl.VERTEX_SHADER, shaders.ScreenVertexShader)
	if err != nil {
		return err
	}
	bck.fragShader, err = compileShader(gl.FRAGMENT_SHADER, shaders.ScreenFragmentShader)
	if err != nil {
		return err
	}
	bck.program, err = linkProgram(bck.vertShader, bck.fragShader)
	if err != nil {
		return err
	}

	bck.projection = gl.GetUniformLocation(bck.program, gl.Str("Projection\x00"))
	bck.screen = gl.GetUniformLocation(bck.program, gl.Str("Screen\x00"))
	bck.pal = gl.GetUniformLocation(bck.program, gl.Str("Palette\x00"))
	bck.position = gl.GetAttribLocation(bck.program, gl.Str("Position\x00"))
	bck.uv = gl.GetAttribLocation(bck.program, gl.Str("UV\x00"))
	if bck.projection < 0 || bck.screen < 0 || bck.pal < 0 || bck.position < 0 || bck.uv < 0 {
		logger.Error(logger.Allow, tag, "missing uniform or attribute")
		return fmt.Errorf("ogl: missing uniform or attribute")
	}

	gl.UseProgram(bck.program)
	gl.Uniform1i(bck.screen, 0)
	gl.Uniform1i(bck.pal, 1)
	ortho := Ortho(g.VGAWidth, g.VGAHeight)
	gl.UniformMatrix4fv(bck.projection, 1, false, &ortho[0])

	gl.EnableVertexAttribArray(uint32(bck.position))
	gl.VertexAttribPointer(uint32(bck.position), 2, gl.FLOAT, false, vertexSize*4, nil)
	gl.EnableVertexAttribArray(uint32(bck.uv))
	gl.VertexAttribPointer(uint32(bck.uv), 2, gl.FLOAT, false, vertexSize*4, gl.PtrOffset(2*4))

	bck.setViewport()

	return nil
}

// checkHandle returns an error if a handle returned by one of the gl.Gen*()
// functions is zero.
func checkHandle(object string, handle uint32) error {
	if handle == 0 {
		logger.Errorf(logger.Allow, tag, "creating %s: no handle", object)
		return fmt.Errorf("ogl: %s: no handle", object)
	}
	return nil
}

// checkError returns an error if the code returned by gl.GetError() is not
// gl.NO_ERROR.
func checkError(object string, code uint32) error {
	if code != gl.NO_ERROR {
		logger.Errorf(logger.Allow, tag, "creating %s: error %#x", object, code)
		return fmt.Errorf("ogl: %s: error %#x", object, code)
	}
	return nil
}

func setTextureParameters() {
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_MAG_FILTER, gl.NEAREST)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_MIN_FILTER, gl.NEAREST)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_WRAP_S, gl.CLAMP_TO_EDGE)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_WRAP_T, gl.CLAMP_TO_EDGE)
}

// expand count DAC colours into the RGB palette beginning with the first
// entry.
func (bck *Backend) expand(first int, count int, colours []uint8) {
	for i := 0; i < count*palette.Channels; i++ {
		bck.rgb[first*palette.Channels+i] = palette.Expand(colours[i])
	}
}

// GL viewports are measured from the bottom of the window.
func (bck *Backend) setViewport() {
	g := bck.env.Geometry
	vp := g.Viewport()
	gl.Viewport(int32(vp.X), int32(g.WindowHeight-vp.Y-vp.H), int32(vp.W), int32(vp.H))
}

// UpdatePalette implements the renderer.Backend interface.
func (bck *Backend) UpdatePalette(first int, count int, colours []uint8) error {
	if first < 0 || count < 0 || first+count > palette.Entries {
		return curated.Errorf(palette.RangeError, first, count)
	}
	if len(colours) < count*palette.Channels {
		return curated.Errorf(palette.ShortError, len(colours), count)
	}

	bck.expand(first, count, colours)

	if bck.state != renderer.RendererReady {
		return nil
	}

	gl.ActiveTexture(gl.TEXTURE1)
	gl.BindTexture(gl.TEXTURE_2D, bck.paletteTexture)
	gl.TexSubImage2D(gl.TEXTURE_2D, 0, 0, 0, palette.Entries, 1, gl.RGB, gl.UNSIGNED_BYTE, gl.Ptr(&bck.rgb[0]))

	return nil
}

// UpdateViewport implements the renderer.Backend interface.
func (bck *Backend) UpdateViewport() error {
	if bck.state != renderer.RendererReady {
		return curated.Errorf(renderer.WrongStateError, tag, "viewport update", bck.state)
	}

	gl.ClearColor(0.0, 0.0, 0.0, 1.0)
	gl.Clear(gl.COLOR_BUFFER_BIT)
	bck.setViewport()

	return nil
}

// DrawScreen implements the renderer.Backend interface.
func (bck *Backend) DrawScreen() {
	if bck.state != renderer.RendererReady {
		return
	}

	gl.ClearColor(0.0, 0.0, 0.0, 1.0)
	gl.Clear(gl.COLOR_BUFFER_BIT)

	gl.UseProgram(bck.program)
	gl.ActiveTexture(gl.TEXTURE0)
	gl.BindTexture(gl.TEXTURE_2D, bck.screenTexture)
	gl.ActiveTexture(gl.TEXTURE1)
	gl.BindTexture(gl.TEXTURE_2D, bck.paletteTexture)
	gl.BindVertexArray(bck.vao)
	gl.DrawArrays(gl.TRIANGLE_STRIP, 0, 4)

	bck.window.GLSwap()
}

// RefreshScreen implements the renderer.Backend interface.
func (bck *Backend) RefreshScreen() {
	if bck.state != renderer.RendererReady {
		return
	}

	mem := bck.env.Memory
	g := bck.env.Geometry
	page := mem.Page(mem.DisplayOffset)

	first, last, dirty := mem.TakeDirtyRows(mem.DisplayOffset)
	if bck.fullUpload || bck.uploaded != mem.DisplayOffset {
		first, last, dirty = 0, g.VGAHeight-1, true
		bck.fullUpload = false
		bck.uploaded = mem.DisplayOffset
	}

	if dirty {
		gl.ActiveTexture(gl.TEXTURE0)
		gl.BindTexture(gl.TEXTURE_2D, bck.screenTexture)
		gl.TexSubImage2D(gl.TEXTURE_2D, 0, 0, int32(first), int32(g.VGAWidth), int32(last-first+1),
			gl.RED, gl.UNSIGNED_BYTE, gl.Ptr(&page[first*g.VGAWidth]))
	}

	bck.DrawScreen()
}

// SetSwapInterval implements the renderer.SwapInterval interface.
func (bck *Backend) SetSwapInterval(interval int) error {
	err := sdl.GLSetSwapInterval(interval)
	if err != nil {
		return fmt.Errorf("sdl: %w", err)
	}
	return nil
}

// Uninitialize implements the renderer.Backend interface.
func (bck *Backend) Uninitialize() {
	if bck.state == renderer.TornDown {
		return
	}

	if bck.program != 0 {
		gl.UseProgram(0)
		gl.DeleteProgram(bck.program)
		bck.program = 0
		logger.Log(logger.Allow, tag, "deleted program")
	}

	if bck.fragShader != 0 {
		gl.DeleteShader(bck.fragShader)
		bck.fragShader = 0
	}
	if bck.vertShader != 0 {
		gl.DeleteShader(bck.vertShader)
		bck.vertShader = 0
	}

	if bck.vbo != 0 {
		gl.DeleteBuffers(1, &bck.vbo)
		bck.vbo = 0
	}
	if bck.vao != 0 {
		gl.DeleteVertexArrays(1, &bck.vao)
		bck.vao = 0
	}

	if bck.paletteTexture != 0 {
		gl.DeleteTextures(1, &bck.paletteTexture)
		bck.paletteTexture = 0
	}
	if bck.screenTexture != 0 {
		gl.DeleteTextures(1, &bck.screenTexture)
		bck.screenTexture = 0
		logger.Log(logger.Allow, tag, "deleted textures")
	}

	if bck.glStarted {
		sdl.GLDeleteContext(bck.context)
		bck.glStarted = false
		logger.Log(logger.Allow, tag, "deleted context")
	}

	bck.window = nil
	bck.state = renderer.TornDown
}
