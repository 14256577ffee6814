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

// Package headless implements a renderer backend and a platform that never
// create anything on screen. Frames are composed into an image.RGBA which can
// be inspected by the application. Useful for testing and for running
// without a display.
package headless

import (
	"image"

	"github.com/retrovga/vgavideo/curated"
	"github.com/retrovga/vgavideo/logger"
	"github.com/retrovga/vgavideo/palette"
	"github.com/retrovga/vgavideo/platform"
	"github.com/retrovga/vgavideo/renderer"
)

const tag = "headless"

// Backend is an implementation of the renderer.Backend interface.
type Backend struct {
	state renderer.State
	env   renderer.Environment

	win *Window
	tab *palette.Table

	// the VGA image and the window image
	vga    *image.RGBA
	output *image.RGBA

	frames int
}

// NewBackend is the preferred method of initialisation for the Backend type.
func NewBackend() *Backend {
	return &Backend{}
}

// Kind implements the renderer.Backend interface.
func (bck *Backend) Kind() renderer.Kind {
	return renderer.Headless
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
	bck.tab = NewTable()
	bck.state = renderer.WindowReady
	return nil
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

	w, ok := win.(*Window)
	if !ok {
		bck.Uninitialize()
		return curated.Errorf(renderer.WindowError, tag, win)
	}

	bck.win = w
	bck.env = env

	g := *env.Geometry
	bck.vga = image.NewRGBA(image.Rect(0, 0, g.VGAWidth, g.VGAHeight))
	bck.output = image.NewRGBA(image.Rect(0, 0, g.WindowWidth, g.WindowHeight))
	logger.Logf(logger.Allow, tag, "images: %dx%d in %dx%d", g.VGAWidth, g.VGAHeight, g.WindowWidth, g.WindowHeight)

	if bck.env.Palette != nil {
		if err := bck.tab.Update(bck.env.Palette(), 0, palette.Entries); err != nil {
			bck.Uninitialize()
			return curated.Errorf(renderer.InitError, tag, err)
		}
	}

	bck.state = renderer.RendererReady

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

	// the window may have been resized since initialisation
	g := *bck.env.Geometry
	if bck.output.Rect.Dx() != g.WindowWidth || bck.output.Rect.Dy() != g.WindowHeight {
		bck.output = image.NewRGBA(image.Rect(0, 0, g.WindowWidth, g.WindowHeight))
	}

	return nil
}

// DrawScreen implements the renderer.Backend interface.
func (bck *Backend) DrawScreen() {
	if bck.state != renderer.RendererReady {
		return
	}
	Present(bck.output, bck.vga, bck.env.Geometry.Viewport())
	bck.frames++
}

// RefreshScreen implements the renderer.Backend interface.
func (bck *Backend) RefreshScreen() {
	if bck.state != renderer.RendererReady {
		return
	}
	mem := bck.env.Memory
	Translate(bck.vga, mem.Page(mem.DisplayOffset), bck.tab)
	bck.DrawScreen()
}

// Uninitialize implements the renderer.Backend interface.
func (bck *Backend) Uninitialize() {
	if bck.state == renderer.TornDown {
		return
	}
	bck.output = nil
	bck.vga = nil
	bck.tab = nil
	bck.win = nil
	bck.state = renderer.TornDown
}

// Image returns the most recently presented frame. Returns nil if the backend
// is not ready.
func (bck *Backend) Image() *image.RGBA {
	return bck.output
}

// Frames returns the number of frames presented.
func (bck *Backend) Frames() int {
	return bck.frames
}
