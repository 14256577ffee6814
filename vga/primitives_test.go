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

package vga_test

import (
	"testing"

	"github.com/retrovga/vgavideo/test"
)

func TestPlot(t *testing.T) {
	for scale := 1; scale <= 4; scale++ {
		mem := newMemory(scale)
		mem.Plot(3, 4, 7)

		width := mem.Geometry().VGAWidth
		page := mem.Page(0)
		count := 0
		for i, b := range page {
			if b == 7 {
				count++
				x := (i % width) / scale
				y := (i / width) / scale
				test.ExpectEquality(t, x, 3)
				test.ExpectEquality(t, y, 4)
			}
		}

		// a block of scale×scale pixels
		test.ExpectEquality(t, count, scale*scale)
		test.ExpectEquality(t, mem.Pixel(0, 3, 4), 7)
	}
}

func TestBar(t *testing.T) {
	mem := newMemory(2)
	mem.Bar(10, 20, 30, 40, 9)

	for y := 0; y < 200; y++ {
		for x := 0; x < 320; x++ {
			inside := x >= 10 && x < 40 && y >= 20 && y < 60
			if inside {
				test.DemandEquality(t, mem.Pixel(0, x, y), 9)
			} else {
				test.DemandEquality(t, mem.Pixel(0, x, y), 0)
			}
		}
	}
}

func TestBarFullWidth(t *testing.T) {
	mem := newMemory(3)

	// full width bar uses the contiguous fill
	mem.Bar(0, 100, 320, 2, 4)

	width := mem.Geometry().VGAWidth
	page := mem.Page(0)
	for i, b := range page {
		y := i / width / 3
		if y == 100 || y == 101 {
			test.DemandEquality(t, b, 4)
		} else {
			test.DemandEquality(t, b, 0)
		}
	}
}

func TestLines(t *testing.T) {
	mem := newMemory(2)
	mem.Hline(5, 5, 10, 1)
	mem.Vline(50, 50, 10, 2)

	for x := 5; x < 15; x++ {
		test.ExpectEquality(t, mem.Pixel(0, x, 5), 1)
	}
	test.ExpectEquality(t, mem.Pixel(0, 15, 5), 0)
	test.ExpectEquality(t, mem.Pixel(0, 5, 6), 0)

	for y := 50; y < 60; y++ {
		test.ExpectEquality(t, mem.Pixel(0, 50, y), 2)
	}
	test.ExpectEquality(t, mem.Pixel(0, 51, 50), 0)
	test.ExpectEquality(t, mem.Pixel(0, 50, 60), 0)
}

func TestBackBuffer(t *testing.T) {
	mem := newMemory(1)
	mem.BufferOffset = 2 * mem.PageSize()
	mem.Plot(0, 0, 8)

	test.ExpectEquality(t, mem.Pixel(0, 0, 0), 0)
	test.ExpectEquality(t, mem.Pixel(2*mem.PageSize(), 0, 0), 8)
}

func TestLinearFill(t *testing.T) {
	mem := newMemory(2)
	mem.LinearFill(10, 5, 6)

	b := mem.Bytes()
	for i := range b {
		inside := i >= mem.Offset(10) && i < mem.Offset(15)
		if inside {
			test.DemandEquality(t, b[i], 6)
		} else {
			test.DemandEquality(t, b[i], 0)
		}
	}
}
