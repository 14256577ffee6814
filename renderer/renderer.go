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

// Package renderer defines the contract between the video context and the
// presentation backends. A backend takes the display page of the VGA memory,
// translates the palette indexes to colours and presents the result in the
// viewport of a window.
//
// Backends move through the states in order:
//
//	Uninitialized -> SubsystemReady -> WindowReady -> RendererReady -> TornDown
//
// Uninitialize() can be called from any state, including a partially
// completed initialisation, and can be called more than once.
package renderer

import (
	"strings"

	"github.com/retrovga/vgavideo/geometry"
	"github.com/retrovga/vgavideo/platform"
	"github.com/retrovga/vgavideo/vga"
)

// Kind of backend.
type Kind int

// List of valid Kind values.
const (
	Auto Kind = iota
	Software
	Accelerated
	Headless
)

func (k Kind) String() string {
	switch k {
	case Auto:
		return "auto"
	case Software:
		return "software"
	case Accelerated:
		return "accelerated"
	case Headless:
		return "headless"
	}
	return "unknown"
}

// ParseKind converts a backend name to a Kind. An unknown name returns Auto
// and false.
func ParseKind(name string) (Kind, bool) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "", "auto":
		return Auto, true
	case "soft", "software":
		return Software, true
	case "ogl", "accelerated":
		return Accelerated, true
	case "headless":
		return Headless, true
	}
	return Auto, false
}

// Resolve returns the Kind that is used when the Kind is selected. Auto
// resolves to Accelerated.
func (k Kind) Resolve() Kind {
	if k == Auto {
		return Accelerated
	}
	return k
}

// State of a backend.
type State int

// List of valid State values.
const (
	Uninitialized State = iota
	SubsystemReady
	WindowReady
	RendererReady
	TornDown
)

func (s State) String() string {
	switch s {
	case Uninitialized:
		return "uninitialized"
	case SubsystemReady:
		return "subsystem ready"
	case WindowReady:
		return "window ready"
	case RendererReady:
		return "renderer ready"
	case TornDown:
		return "torn down"
	}
	return "unknown"
}

// Environment is the information shared by the video context with the
// backend. The fields are pointers so that a backend always sees the most
// recent geometry and page offsets.
type Environment struct {
	Geometry *geometry.Geometry
	Memory   *vga.Memory

	// the current palette. all 256 entries in DAC format
	Palette func() []uint8
}

// Backend presents the VGA memory.
//
// There is no UpdateScreen() in the interface. Copying the back buffer page to
// the display page is an operation on the VGA memory and is the same for every
// backend, so video.Context.UpdateScreen() performs the copy and then calls
// RefreshScreen().
type Backend interface {
	Kind() Kind
	State() State

	// called before the windowing subsystem is used
	PreSubsystemCreation() error

	// called before the window is created
	PreWindowCreation() error

	// flags required by the backend when creating the window
	WindowFlags() platform.WindowFlags

	// initialise the renderer for the window. on error the backend releases
	// everything it created
	InitializeRenderer(win platform.Window, env Environment) error

	// the colours slice begins with the entry at index first
	UpdatePalette(first int, count int, colours []uint8) error

	// recompute the presentation rectangle
	UpdateViewport() error

	// present the most recently refreshed image
	DrawScreen()

	// recompute the presentable image from the display page and draw it
	RefreshScreen()

	// release resources in reverse order of creation
	Uninitialize()
}

// SwapInterval is implemented by backends that can synchronise presentation
// with the vertical retrace of the display.
type SwapInterval interface {
	SetSwapInterval(interval int) error
}

// Sentinal error patterns.
const (
	InitError       = "%s: initialisation failed: %v"
	WrongStateError = "%s: %s not allowed in state %s"
	WindowError     = "%s: unsupported window type (%T)"
	KindError       = "renderer: no backend for %s"
)
