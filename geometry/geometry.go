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

// Package geometry negotiates the emulated VGA resolution and the
// presentation viewport for a window.
//
// The emulated resolution is always an integer multiple of the reference
// resolution. The viewport is the largest rectangle inside the window that
// preserves the reference aspect ratio, corrected for the non-square pixels
// of the original display (AspectCorrection).
package geometry

// Reference resolution of the emulated display.
const (
	ReferenceWidth  = 320
	ReferenceHeight = 200
)

// Window size used when the requested size is smaller than the reference
// resolution.
const (
	DefaultWindowWidth  = 640
	DefaultWindowHeight = 480
)

// AspectCorrection is the vertical stretch that gives the reference
// resolution a 4:3 display ratio.
const AspectCorrection = 1.2

// Request is the input to Negotiate().
type Request struct {
	// zero values select ReferenceWidth and ReferenceHeight
	ReferenceWidth  int
	ReferenceHeight int

	// when Windowed is false the window is the size of the desktop
	Windowed      bool
	WindowWidth   int
	WindowHeight  int
	DesktopWidth  int
	DesktopHeight int

	// explicit scale. zero means that the scale should be negotiated. a
	// negative value is treated as 1
	Scale int

	// stretch the VGA image to fill the window
	Stretch bool
}

// Rect is a rectangle in window coordinates.
type Rect struct {
	X, Y int
	W, H int
}

// Geometry is the result of Negotiate().
type Geometry struct {
	ReferenceWidth  int
	ReferenceHeight int

	// scale is always one or more
	Scale int

	// VGAWidth and VGAHeight are the reference resolution multiplied by the
	// scale. VGAArea is the number of bytes in one page
	VGAWidth  int
	VGAHeight int
	VGAArea   int

	WindowWidth  int
	WindowHeight int

	// the aspect preserving rectangle inside the window
	Screen Rect

	Stretch bool
}

// Negotiate the geometry for the request. The result depends only on the
// request.
func Negotiate(req Request) Geometry {
	g := Geometry{
		ReferenceWidth:  req.ReferenceWidth,
		ReferenceHeight: req.ReferenceHeight,
		Stretch:         req.Stretch,
	}

	if g.ReferenceWidth <= 0 {
		g.ReferenceWidth = ReferenceWidth
	}
	if g.ReferenceHeight <= 0 {
		g.ReferenceHeight = ReferenceHeight
	}

	if req.Windowed {
		g.WindowWidth = req.WindowWidth
		g.WindowHeight = req.WindowHeight
	} else {
		g.WindowWidth = req.DesktopWidth
		g.WindowHeight = req.DesktopHeight
	}

	if g.WindowWidth < g.ReferenceWidth {
		g.WindowWidth = DefaultWindowWidth
	}
	if g.WindowHeight < g.ReferenceHeight {
		g.WindowHeight = DefaultWindowHeight
	}

	switch {
	case req.Scale > 0:
		g.Scale = req.Scale
	case req.Scale < 0:
		g.Scale = 1
	default:
		g.Scale = fitScale(g.ReferenceWidth, g.ReferenceHeight, g.WindowWidth, g.WindowHeight)
	}

	g.VGAWidth = g.Scale * g.ReferenceWidth
	g.VGAHeight = g.Scale * g.ReferenceHeight
	g.VGAArea = g.VGAWidth * g.VGAHeight

	hScale := float64(g.WindowWidth) / float64(g.VGAWidth)
	vScale := float64(g.WindowHeight) / (AspectCorrection * float64(g.VGAHeight))
	s := hScale
	if vScale < hScale {
		s = vScale
	}

	g.Screen.W = int(float64(g.VGAWidth)*s + 0.5)
	g.Screen.H = int(float64(g.VGAHeight)*s*AspectCorrection + 0.5)
	g.Screen.X = (g.WindowWidth - g.Screen.W) / 2
	g.Screen.Y = (g.WindowHeight - g.Screen.H) / 2

	return g
}

// fitScale returns the largest scale for which the corrected VGA resolution
// fits inside the window. The minimum scale is one.
//
// The scale never exceeds the window. A search for the smallest scale that
// covers the window would pick a larger scale for windows that fall between
// two multiples of the reference resolution, and the VGA image would then be
// scaled down to fit.
func fitScale(refW, refH, winW, winH int) int {
	scale := 1
	for {
		next := scale + 1
		if next*refW > winW || float64(next*refH)*AspectCorrection > float64(winH) {
			return scale
		}
		scale = next
	}
}

// Viewport returns the rectangle of the window that the VGA image is
// presented in.
func (g Geometry) Viewport() Rect {
	if g.Stretch {
		return Rect{W: g.WindowWidth, H: g.WindowHeight}
	}
	return g.Screen
}

// BufferSize is the number of bytes required for the VGA memory.
func (g Geometry) BufferSize() int {
	return g.Scale * g.Scale * 4 * g.ReferenceWidth * g.ReferenceHeight
}

// WindowPosition returns the position of the window on the desktop. Unless a
// custom position is requested the window is centred. The position is never
// negative.
func (g Geometry) WindowPosition(desktopWidth, desktopHeight int, custom bool, x, y int) (int, int) {
	if !custom {
		x = (desktopWidth - g.WindowWidth) / 2
		y = (desktopHeight - g.WindowHeight) / 2
	}
	if x < 0 {
		x = 0
	}
	if y < 0 {
		y = 0
	}
	return x, y
}
