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

// Package sdlplatform implements the platform interfaces with SDL. The SDL
// window handle is available to renderers through the Window.SDL() function.
package sdlplatform

import (
	"fmt"
	"runtime"
	"time"

	"github.com/retrovga/vgavideo/logger"
	"github.com/retrovga/vgavideo/platform"
	"github.com/veandco/go-sdl2/sdl"
)

// Platform is an implementation of the platform.Platform interface.
type Platform struct {
	mode sdl.DisplayMode
}

// NewPlatform is the preferred method of initialisation for the Platform
// type. The SDL video subsystem is initialised. Must be called from the main
// thread.
func NewPlatform() (*Platform, error) {
	// the SDL package calls LockOSThread() but we call it here too. it can't
	// hurt and we never unlock it in any case
	runtime.LockOSThread()

	err := sdl.InitSubSystem(sdl.INIT_VIDEO | sdl.INIT_TIMER)
	if err != nil {
		return nil, fmt.Errorf("sdl: %w", err)
	}

	v := sdl.Version{}
	sdl.VERSION(&v)
	logger.Logf(logger.Allow, "sdl", "version: %d.%d.%d", v.Major, v.Minor, v.Patch)

	return &Platform{}, nil
}

// Quit the SDL video subsystem.
func (plt *Platform) Quit() {
	sdl.QuitSubSystem(sdl.INIT_VIDEO | sdl.INIT_TIMER)
}

// DesktopMode implements the platform.Platform interface.
func (plt *Platform) DesktopMode() (platform.DisplayMode, error) {
	var err error
	plt.mode, err = sdl.GetDesktopDisplayMode(0)
	if err != nil {
		return platform.DisplayMode{}, fmt.Errorf("sdl: failed to get a display mode: %w", err)
	}

	logger.Logf(logger.Allow, "sdl", "desktop: %dx%d %dHz", plt.mode.W, plt.mode.H, plt.mode.RefreshRate)

	return platform.DisplayMode{
		Width:       int(plt.mode.W),
		Height:      int(plt.mode.H),
		RefreshRate: int(plt.mode.RefreshRate),
	}, nil
}

// translate window flags to SDL window flags.
func windowFlags(flags platform.WindowFlags) uint32 {
	var f uint32
	if flags&platform.FlagShown == platform.FlagShown {
		f |= sdl.WINDOW_SHOWN
	}
	if flags&platform.FlagOpenGL == platform.FlagOpenGL {
		f |= sdl.WINDOW_OPENGL
	}
	if flags&platform.FlagBorderless == platform.FlagBorderless {
		f |= sdl.WINDOW_BORDERLESS
	}
	if flags&platform.FlagFullscreenDesktop == platform.FlagFullscreenDesktop {
		f |= sdl.WINDOW_FULLSCREEN_DESKTOP
	}
	return f
}

// CreateWindow implements the platform.Platform interface.
func (plt *Platform) CreateWindow(title string, x int, y int, w int, h int, flags platform.WindowFlags) (platform.Window, error) {
	logger.Logf(logger.Allow, "sdl", "creating a window (%dx%d at %d,%d; %s)", w, h, x, y, flags)

	win, err := sdl.CreateWindow(title, int32(x), int32(y), int32(w), int32(h), windowFlags(flags))
	if err != nil {
		return nil, fmt.Errorf("sdl: %w", err)
	}

	return &Window{window: win}, nil
}

// SDLWindow is implemented by windows that are backed by an SDL window.
type SDLWindow interface {
	SDL() *sdl.Window
}

// Window is an implementation of the platform.Window interface.
type Window struct {
	window *sdl.Window
}

// SDL returns the SDL window handle.
func (win *Window) SDL() *sdl.Window {
	return win.window
}

// Minimize implements the platform.Window interface.
func (win *Window) Minimize() {
	win.window.Minimize()
}

// Restore implements the platform.Window interface.
func (win *Window) Restore() {
	win.window.Restore()
}

// SetGrab implements the platform.Window interface.
func (win *Window) SetGrab(grab bool) {
	win.window.SetGrab(grab)
	sdl.SetRelativeMouseMode(grab)
}

// Destroy implements the platform.Window interface.
func (win *Window) Destroy() error {
	if win.window == nil {
		return nil
	}
	err := win.window.Destroy()
	win.window = nil
	if err != nil {
		return fmt.Errorf("sdl: %w", err)
	}
	return nil
}

// Clock is an implementation of the limiter.Clock interface using the SDL
// tick counter. The game timer ticks are supplied by the application.
type Clock struct {
	// function returning the SDL tick count of the most recent game timer
	// tick
	TimerTicksFunc func() uint32
}

// Ticks implements the limiter.Clock interface.
func (clk Clock) Ticks() uint32 {
	return sdl.GetTicks()
}

// TimerTicks implements the limiter.Clock interface.
func (clk Clock) TimerTicks() uint32 {
	if clk.TimerTicksFunc == nil {
		return sdl.GetTicks()
	}
	return clk.TimerTicksFunc()
}

// Sleep implements the limiter.Clock interface.
func (clk Clock) Sleep(ms uint32) {
	sdl.Delay(ms)
}

// Now implements the limiter.Clock interface.
func (clk Clock) Now() time.Time {
	return time.Now()
}
