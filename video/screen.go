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

package video

import (
	"image"

	"github.com/retrovga/vgavideo/curated"
	"github.com/retrovga/vgavideo/logger"
	"github.com/retrovga/vgavideo/renderer/headless"
)

// PaletteChanged implements the palette.Sink interface.
func (ctx *Context) PaletteChanged(first int, count int, colours []uint8, refresh bool) {
	if ctx.backend == nil {
		return
	}

	err := ctx.backend.UpdatePalette(first, count, colours)
	if err != nil {
		logger.Errorf(logger.Allow, tag, "palette: %v", err)
		return
	}

	if refresh {
		ctx.RefreshScreen()
	}
}

// WaitVBL waits for the number of vertical blanks. Implements the
// palette.VBLWaiter interface.
func (ctx *Context) WaitVBL(vbls int) {
	ctx.pacer.WaitVBL(vbls)
}

// RefreshScreen presents the display page.
func (ctx *Context) RefreshScreen() {
	if ctx.backend != nil {
		ctx.backend.RefreshScreen()
	}
}

// UpdateScreen copies the back buffer page to the display page, if they are
// different, and presents the display page.
func (ctx *Context) UpdateScreen() {
	if ctx.mem.BufferOffset != ctx.mem.DisplayOffset {
		ctx.mem.CopyPage(ctx.mem.BufferOffset, ctx.mem.DisplayOffset)
	}
	ctx.RefreshScreen()
}

// DrawScreen presents the most recently refreshed image again.
func (ctx *Context) DrawScreen() {
	if ctx.backend != nil {
		ctx.backend.DrawScreen()
	}
}

// SetStretch changes whether the VGA image fills the window or is presented
// with the correct aspect ratio.
func (ctx *Context) SetStretch(stretch bool) {
	ctx.geom.Stretch = stretch

	if ctx.backend == nil {
		return
	}

	err := ctx.backend.UpdateViewport()
	if err != nil {
		logger.Errorf(logger.Allow, tag, "viewport: %v", err)
	}
	ctx.backend.DrawScreen()
}

// MinimizeWindow minimizes or restores the window.
func (ctx *Context) MinimizeWindow(minimize bool) {
	if ctx.win == nil {
		return
	}
	if minimize {
		ctx.win.Minimize()
	} else {
		ctx.win.Restore()
	}
}

// GrabPointer confines the pointer to the window.
func (ctx *Context) GrabPointer(grab bool) {
	if ctx.win != nil {
		ctx.win.SetGrab(grab)
	}
}

// Screenshot returns the display page as it would be presented in the
// window. The result does not depend on the active backend.
func (ctx *Context) Screenshot() (*image.RGBA, error) {
	if ctx.backend == nil {
		return nil, curated.Errorf(ErrNoMode)
	}
	return headless.Compose(ctx.mem.Page(ctx.mem.DisplayOffset), ctx.geom, ctx.pal.Current())
}
