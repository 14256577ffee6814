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

// Package platform defines the window system used by the video layer. The
// video layer asks the platform for the desktop display mode and for a
// window. Everything else (the event loop, input devices) belongs to the
// application.
package platform

import "strings"

// WindowFlags are requested when a window is created.
type WindowFlags uint32

// List of valid WindowFlags.
const (
	FlagShown WindowFlags = 1 << iota
	FlagOpenGL
	FlagBorderless
	FlagFullscreenDesktop
)

func (f WindowFlags) String() string {
	s := make([]string, 0, 4)
	if f&FlagShown == FlagShown {
		s = append(s, "shown")
	}
	if f&FlagOpenGL == FlagOpenGL {
		s = append(s, "opengl")
	}
	if f&FlagBorderless == FlagBorderless {
		s = append(s, "borderless")
	}
	if f&FlagFullscreenDesktop == FlagFullscreenDesktop {
		s = append(s, "fullscreen desktop")
	}
	if len(s) == 0 {
		return "none"
	}
	return strings.Join(s, ", ")
}

// DisplayMode describes the desktop.
type DisplayMode struct {
	Width       int
	Height      int
	RefreshRate int
}

// Platform creates windows.
type Platform interface {
	// DesktopMode returns the display mode of the primary display
	DesktopMode() (DisplayMode, error)

	// CreateWindow with the title at the position and size
	CreateWindow(title string, x int, y int, w int, h int, flags WindowFlags) (Window, error)
}

// Window is a window created by a Platform.
type Window interface {
	Minimize()
	Restore()
	SetGrab(grab bool)
	Destroy() error
}
