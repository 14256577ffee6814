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

package geometry_test

import (
	"fmt"
	"testing"

	"github.com/retrovga/vgavideo/geometry"
	"github.com/retrovga/vgavideo/test"
)

func TestExplicitScale(t *testing.T) {
	for scale := 1; scale <= 6; scale++ {
		g := geometry.Negotiate(geometry.Request{
			Windowed:     true,
			WindowWidth:  640,
			WindowHeight: 480,
			Scale:        scale,
		})
		test.ExpectEquality(t, g.Scale, scale)
		test.ExpectEquality(t, g.VGAWidth, scale*geometry.ReferenceWidth)
		test.ExpectEquality(t, g.VGAHeight, scale*geometry.ReferenceHeight)
		test.ExpectEquality(t, g.VGAArea, g.VGAWidth*g.VGAHeight)
		test.ExpectEquality(t, g.BufferSize(), scale*scale*4*320*200)
	}

	// negative scales are clamped to one
	g := geometry.Negotiate(geometry.Request{Windowed: true, WindowWidth: 640, WindowHeight: 480, Scale: -3})
	test.ExpectEquality(t, g.Scale, 1)
	test.ExpectEquality(t, g.VGAWidth, 320)
	test.ExpectEquality(t, g.VGAHeight, 200)
}

func TestNegotiatedScale(t *testing.T) {
	g := geometry.Negotiate(geometry.Request{
		Windowed:     true,
		WindowWidth:  800,
		WindowHeight: 600,
	})
	test.ExpectEquality(t, g.Scale, 2)
	test.ExpectEquality(t, g.VGAWidth, 640)
	test.ExpectEquality(t, g.VGAHeight, 400)

	// 800x600 is exactly 4:3 so the viewport fills the window
	test.ExpectEquality(t, g.Screen, geometry.Rect{X: 0, Y: 0, W: 800, H: 600})
}

func TestNegotiationTable(t *testing.T) {
	tests := []struct {
		req    geometry.Request
		scale  int
		screen geometry.Rect
	}{
		{
			req:    geometry.Request{Windowed: true, WindowWidth: 640, WindowHeight: 480},
			scale:  2,
			screen: geometry.Rect{X: 0, Y: 0, W: 640, H: 480},
		},
		{
			req:    geometry.Request{Windowed: true, WindowWidth: 1000, WindowHeight: 600},
			scale:  2,
			screen: geometry.Rect{X: 100, Y: 0, W: 800, H: 600},
		},
		{
			req:    geometry.Request{DesktopWidth: 1920, DesktopHeight: 1080},
			scale:  4,
			screen: geometry.Rect{X: 240, Y: 0, W: 1440, H: 1080},
		},
		{
			// between scales two and three. the largest scale that fits is chosen
			req:    geometry.Request{Windowed: true, WindowWidth: 900, WindowHeight: 700},
			scale:  2,
			screen: geometry.Rect{X: 0, Y: 12, W: 900, H: 675},
		},
		{
			req:    geometry.Request{Windowed: true, WindowWidth: 320, WindowHeight: 240},
			scale:  1,
			screen: geometry.Rect{X: 0, Y: 0, W: 320, H: 240},
		},
		{
			req:    geometry.Request{Windowed: true, WindowWidth: 640, WindowHeight: 480, Scale: 3},
			scale:  3,
			screen: geometry.Rect{X: 0, Y: 0, W: 640, H: 480},
		},
	}

	for i, tt := range tests {
		g := geometry.Negotiate(tt.req)
		test.ExpectEquality(t, g.Scale, tt.scale, fmt.Sprintf("case %d", i))
		test.ExpectEquality(t, g.Screen, tt.screen, fmt.Sprintf("case %d", i))
	}
}

func TestUndersizedWindow(t *testing.T) {
	g := geometry.Negotiate(geometry.Request{
		Windowed:     true,
		WindowWidth:  100,
		WindowHeight: 50,
	})
	test.ExpectEquality(t, g.WindowWidth, geometry.DefaultWindowWidth)
	test.ExpectEquality(t, g.WindowHeight, geometry.DefaultWindowHeight)

	// only the undersized dimension falls back
	g = geometry.Negotiate(geometry.Request{
		Windowed:     true,
		WindowWidth:  1024,
		WindowHeight: 100,
	})
	test.ExpectEquality(t, g.WindowWidth, 1024)
	test.ExpectEquality(t, g.WindowHeight, geometry.DefaultWindowHeight)
}

func TestFullscreenUsesDesktop(t *testing.T) {
	g := geometry.Negotiate(geometry.Request{
		Windowed:      false,
		WindowWidth:   640,
		WindowHeight:  480,
		DesktopWidth:  1280,
		DesktopHeight: 960,
	})
	test.ExpectEquality(t, g.WindowWidth, 1280)
	test.ExpectEquality(t, g.WindowHeight, 960)
	test.ExpectEquality(t, g.Scale, 4)
}

// the viewport must fit inside the window and be centred for a range of
// window sizes
func TestViewportBounds(t *testing.T) {
	for w := 320; w <= 2560; w += 97 {
		for h := 200; h <= 1600; h += 83 {
			g := geometry.Negotiate(geometry.Request{Windowed: true, WindowWidth: w, WindowHeight: h})
			tag := fmt.Sprintf("%dx%d", w, h)

			test.DemandSuccess(t, g.Scale >= 1, tag)
			test.ExpectSuccess(t, g.Screen.X >= 0, tag)
			test.ExpectSuccess(t, g.Screen.Y >= 0, tag)
			test.ExpectSuccess(t, g.Screen.X+g.Screen.W <= g.WindowWidth, tag)
			test.ExpectSuccess(t, g.Screen.Y+g.Screen.H <= g.WindowHeight, tag)

			// centred to within a pixel
			test.ExpectSuccess(t, g.WindowWidth-g.Screen.W-2*g.Screen.X <= 1, tag)
			test.ExpectSuccess(t, g.WindowHeight-g.Screen.H-2*g.Screen.Y <= 1, tag)

			// aspect ratio of the viewport is 4:3 to within rounding
			test.ExpectApproximate(t, float64(g.Screen.W)/float64(g.Screen.H), 4.0/3.0, 0.01, tag)
		}
	}
}

func TestDeterministic(t *testing.T) {
	req := geometry.Request{Windowed: true, WindowWidth: 1366, WindowHeight: 768}
	test.ExpectEquality(t, geometry.Negotiate(req), geometry.Negotiate(req))
}

func TestViewport(t *testing.T) {
	req := geometry.Request{Windowed: true, WindowWidth: 1000, WindowHeight: 600}

	g := geometry.Negotiate(req)
	test.ExpectEquality(t, g.Viewport(), g.Screen)

	req.Stretch = true
	g = geometry.Negotiate(req)
	test.ExpectEquality(t, g.Viewport(), geometry.Rect{X: 0, Y: 0, W: 1000, H: 600})
}

func TestWindowPosition(t *testing.T) {
	g := geometry.Negotiate(geometry.Request{Windowed: true, WindowWidth: 800, WindowHeight: 600})

	x, y := g.WindowPosition(1920, 1080, false, 0, 0)
	test.ExpectEquality(t, x, 560)
	test.ExpectEquality(t, y, 240)

	x, y = g.WindowPosition(1920, 1080, true, 10, 20)
	test.ExpectEquality(t, x, 10)
	test.ExpectEquality(t, y, 20)

	// negative positions are clamped
	x, y = g.WindowPosition(640, 480, false, 0, 0)
	test.ExpectEquality(t, x, 0)
	test.ExpectEquality(t, y, 0)

	x, y = g.WindowPosition(1920, 1080, true, -5, -5)
	test.ExpectEquality(t, x, 0)
	test.ExpectEquality(t, y, 0)
}
