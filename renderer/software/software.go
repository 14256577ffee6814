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

// Package software implements a renderer backend using the SDL renderer in
// software mode. The display page is translated through a palette table into
// a streaming texture which is copied to the window viewport.
package software

import (
	"encoding/binary"
	"fmt"

	"github.com/retrovga/vgavideo/curated"
	"github.com/retrovga/vgavideo/logger"
	"github.com/retrovga/vgavideo/palette"
	"github.com/retrovga/vgavideo/platform"
	"github.com/retrovga/vgavideo/platform/sdlplatform"
	"github.com/retrovga/vgavideo/renderer"
	"github.com/veandco/go-sdl2/sdl"
)

const tag = "soft"

// the pixel format of the streaming texture
const pixelFormat = sdl.PIXELFORMAT_RGBA8888

// the number of presentation errors logged before further errors are dropped.
// the count is reset when the renderer is initialised or the viewport changes
const presentErrors = 8

// Backend is an implementation of the renderer.Backend interface.
type Backend struct {
	state renderer.State
	env   renderer.Environment

	tab *palette.Table

	window   *sdl.Window
	renderer *sdl.Renderer
	texture  *sdl.Texture

	// permission for errors that can happen on every frame
	presentLog *logger.Limit
}

// NewBackend is the preferred method of initialisation for the Backend type.
func NewBackend() *Backend {
	return &Backend{
		presentLog: logger.NewLimit(presentErrors),
	}
}

// Kind implements the renderer.Backend interface.
func (bck *Backend) Kind() renderer.Kind {
	return renderer.Software
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
	bpp, rmask, gmask, bmask, amask, err := sdl.PixelFormatEnumToMasks(uint(pixelFormat))
	if err != nil {
		logger.Errorf(logger.Allow, tag, "pixel format masks: %v", err)
		return curated.Errorf(renderer.InitError, tag, fmt.Errorf("sdl: %w", err))
	}

	bck.tab, err = NewTable(bpp, rmask, gmask, bmask, amask)
	if err != nil {
		logger.Error(logger.Allow, tag, err)
		return curated.Errorf(renderer.InitError, tag, err)
	}

	bck.state = renderer.WindowReady

	return nil
}

// NewTable creates a palette table for a pixel format described by its bits
// per pixel and channel masks.
func NewTable(bpp int, rmask uint32, gmask uint32, bmask uint32, amask uint32) (*palette.Table, error) {
	return palette.NewTable(bpp, [4]uint32{rmask, gmask, bmask, amask})
}

// WindowFlags implements the renderer.Backend interface.
func (bck *Backend) WindowFlags() platform.WindowFlags {
	return 0
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
	bck.presentLog.Reset()

	return nil
}

func (bck *Backend) initialize() error {
	var err error

	logger.Log(logger.Allow, tag, "creating renderer")
	bck.renderer, err = sdl.CreateRenderer(bck.window, -1, uint32(sdl.RENDERER_SOFTWARE))
	if err != nil {
		logger.Errorf(logger.Allow, tag, "creating renderer: %v", err)
		return fmt.Errorf("sdl: %w", err)
	}

	info, err := bck.renderer.GetInfo()
	if err == nil {
		logger.Logf(logger.Allow, tag, "renderer: %s", info.Name)
	}

	g := bck.env.Geometry
	logger.Logf(logger.Allow, tag, "creating screen texture (%dx%d)", g.VGAWidth, g.VGAHeight)
	bck.texture, err = bck.renderer.CreateTexture(uint32(pixelFormat), int(sdl.TEXTUREACCESS_STREAMING), int32(g.VGAWidth), int32(g.VGAHeight))
	if err != nil {
		logger.Errorf(logger.Allow, tag, "creating screen texture: %v", err)
		return fmt.Errorf("sdl: %w", err)
	}

	err = bck.renderer.Clear()
	if err != nil {
		logger.Errorf(logger.Allow, tag, "clearing renderer: %v", err)
		return fmt.Errorf("sdl: %w", err)
	}

	err = bck.setViewport()
	if err != nil {
		return err
	}

	err = bck.renderer.SetDrawColor(0, 0, 0, 255)
	if err != nil {
		logger.Errorf(logger.Allow, tag, "setting draw color: %v", err)
		return fmt.Errorf("sdl: %w", err)
	}

	if bck.env.Palette != nil {
		err = bck.tab.Update(bck.env.Palette(), 0, palette.Entries)
		if err != nil {
			return err
		}
	}

	return nil
}

func (bck *Backend) setViewport() error {
	vp := bck.env.Geometry.Viewport()
	err := bck.renderer.SetViewport(&sdl.Rect{X: int32(vp.X), Y: int32(vp.Y), W: int32(vp.W), H: int32(vp.H)})
	if err != nil {
		logger.Errorf(logger.Allow, tag, "setting viewport: %v", err)
		return fmt.Errorf("sdl: %w", err)
	}
	return nil
}

// UpdatePalette implements the renderer.Backend interface.
func (bck *Backend) UpdatePalette(first int, count int, colours []uint8) error {
	if bck.tab == nil {
		return curated.Errorf(renderer.WrongStateError, tag, "palette update", bck.state)
	}
	return bck.tab.Update(colours, first, count)
}

// UpdateViewport implements the renderer.Backend interface.
func (bck *Backend) UpdateViewport() error {
	if bck.state != renderer.RendererReady {
		return curated.Errorf(renderer.WrongStateError, tag, "viewport update", bck.state)
	}

	bck.presentLog.Reset()

	// clear the whole window. the old viewport may have been larger
	err := bck.renderer.SetViewport(nil)
	if err != nil {
		return fmt.Errorf("sdl: %w", err)
	}
	err = bck.renderer.Clear()
	if err != nil {
		return fmt.Errorf("sdl: %w", err)
	}

	return bck.setViewport()
}

// DrawScreen implements the renderer.Backend interface.
func (bck *Backend) DrawScreen() {
	if bck.state != renderer.RendererReady {
		return
	}

	err := bck.renderer.Copy(bck.texture, nil, nil)
	if err != nil {
		bck.presentError("copying texture", err)
	}

	bck.renderer.Present()
}

// RefreshScreen implements the renderer.Backend interface.
func (bck *Backend) RefreshScreen() {
	if bck.state != renderer.RendererReady {
		return
	}

	pixels, pitch, err := bck.texture.Lock(nil)
	if err != nil {
		bck.presentError("locking texture", err)
		return
	}

	mem := bck.env.Memory
	g := bck.env.Geometry
	Translate(pixels, pitch, mem.Page(mem.DisplayOffset), g.VGAWidth, g.VGAHeight, bck.tab)

	bck.texture.Unlock()

	bck.DrawScreen()
}

// log an error from DrawScreen() or RefreshScreen(). a warning is logged
// when the limit is reached
func (bck *Backend) presentError(operation string, err error) {
	if bck.presentLog.Exhausted() {
		return
	}
	logger.Errorf(bck.presentLog, tag, "%s: %v", operation, err)
	if bck.presentLog.Exhausted() {
		logger.Warn(logger.Allow, tag, "further presentation errors will not be logged")
	}
}

// Translate the palette indexes in page to native-endian packed pixels in a
// surface with the pitch. The page is width×height bytes.
func Translate(pixels []byte, pitch int, page []byte, width int, height int, tab *palette.Table) {
	for y := 0; y < height; y++ {
		src := page[y*width : (y+1)*width]
		dst := pixels[y*pitch : y*pitch+width*4]
		for x, idx := range src {
			binary.NativeEndian.PutUint32(dst[x*4:], tab.Lookup(idx))
		}
	}
}

// Uninitialize implements the renderer.Backend interface.
func (bck *Backend) Uninitialize() {
	if bck.state == renderer.TornDown {
		return
	}

	if bck.texture != nil {
		err := bck.texture.Destroy()
		if err != nil {
			logger.Errorf(logger.Allow, tag, "destroying screen texture: %v", err)
		} else {
			logger.Log(logger.Allow, tag, "destroyed screen texture")
		}
		bck.texture = nil
	}

	if bck.renderer != nil {
		err := bck.renderer.Destroy()
		if err != nil {
			logger.Errorf(logger.Allow, tag, "destroying renderer: %v", err)
		} else {
			logger.Log(logger.Allow, tag, "destroyed renderer")
		}
		bck.renderer = nil
	}

	bck.window = nil
	bck.tab = nil
	bck.state = renderer.TornDown
}
