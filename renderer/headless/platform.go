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

package headless

import (
	"github.com/retrovga/vgavideo/curated"
	"github.com/retrovga/vgavideo/platform"
)

// Platform is an implementation of the platform.Platform interface that
// creates windows that are never shown.
type Platform struct {
	mode platform.DisplayMode

	// the most recently created window
	last *Window
}

// NewPlatform is the preferred method of initialisation for the Platform
// type. The display mode is what DesktopMode() will return.
func NewPlatform(mode platform.DisplayMode) *Platform {
	return &Platform{mode: mode}
}

// DesktopMode implements the platform.Platform interface.
func (plt *Platform) DesktopMode() (platform.DisplayMode, error) {
	if plt.mode.Width <= 0 || plt.mode.Height <= 0 {
		return platform.DisplayMode{}, curated.Errorf("headless: no display mode")
	}
	return plt.mode, nil
}

// CreateWindow implements the platform.Platform interface.
func (plt *Platform) CreateWindow(title string, x int, y int, w int, h int, flags platform.WindowFlags) (platform.Window, error) {
	plt.last = &Window{
		Title:  title,
		X:      x,
		Y:      y,
		Width:  w,
		Height: h,
		Flags:  flags,
	}
	return plt.last, nil
}

// LastWindow returns the most recently created window. Returns nil if no
// window has been created.
func (plt *Platform) LastWindow() *Window {
	return plt.last
}

// Window is an implementation of the platform.Window interface. The fields
// record the requests made of the window.
type Window struct {
	Title  string
	X, Y   int
	Width  int
	Height int
	Flags  platform.WindowFlags

	Minimized bool
	Grabbed   bool
	Destroyed bool
}

// Minimize implements the platform.Window interface.
func (win *Window) Minimize() {
	win.Minimized = true
}

// Restore implements the platform.Window interface.
func (win *Window) Restore() {
	win.Minimized = false
}

// SetGrab implements the platform.Window interface.
func (win *Window) SetGrab(grab bool) {
	win.Grabbed = grab
}

// Destroy implements the platform.Window interface.
func (win *Window) Destroy() error {
	win.Destroyed = true
	return nil
}
