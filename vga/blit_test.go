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
	"bytes"
	"fmt"
	"testing"

	"github.com/retrovga/vgavideo/test"
	"github.com/retrovga/vgavideo/vga"
)

// planar image where every pixel is different modulo 256
func planarImage(w int, h int) []byte {
	img := make([]byte, w*h)
	for i := range img {
		img[i] = uint8(i*7 + 3)
	}
	return img
}

func TestBlitInRoundTrip(t *testing.T) {
	sizes := [][2]int{{4, 1}, {8, 8}, {16, 3}, {64, 32}, {320, 10}}
	for scale := 1; scale <= 3; scale++ {
		for _, sz := range sizes {
			mem := newMemory(scale)
			img := planarImage(sz[0], sz[1])

			dest := mem.PageSize() * 2
			mem.BlitIn(img, sz[0], sz[1], dest)

			out := make([]byte, len(img))
			mem.LatchOut(out, sz[0], sz[1], dest)
			test.ExpectSuccess(t, bytes.Equal(img, out), fmt.Sprintf("scale %d size %v", scale, sz))
		}
	}
}

// a full width image blitted to the back buffer can be read with CopyOut()
func TestBlitInCopyOut(t *testing.T) {
	for scale := 1; scale <= 3; scale++ {
		mem := newMemory(scale)
		img := planarImage(320, 20)
		mem.BlitIn(img, 320, 20, mem.BufferOffset)

		out := make([]byte, len(img))
		mem.CopyOut(out, 320, 20, 0, 0)
		test.ExpectSuccess(t, bytes.Equal(img, out), fmt.Sprintf("scale %d", scale))
	}
}

func TestBlitToScreenRoundTrip(t *testing.T) {
	for scale := 1; scale <= 3; scale++ {
		mem := newMemory(scale)
		img := planarImage(32, 16)
		mem.BlitToScreen(img, 32, 16, 100, 50)

		out := make([]byte, len(img))
		mem.CopyOut(out, 32, 16, 100, 50)
		test.ExpectSuccess(t, bytes.Equal(img, out), fmt.Sprintf("scale %d", scale))
	}
}

func TestPlanarInterleave(t *testing.T) {
	mem := newMemory(1)

	// 8x1 image. plane 0 holds columns 0 and 4, plane 1 holds columns 1 and
	// 5 and so on
	img := []byte{10, 14, 11, 15, 12, 16, 13, 17}
	mem.BlitToScreen(img, 8, 1, 0, 0)

	for x := 0; x < 8; x++ {
		test.ExpectEquality(t, mem.Pixel(0, x, 0), uint8(10+x))
	}
}

func TestMaskBlitToScreen(t *testing.T) {
	mem := newMemory(2)
	mem.Bar(0, 0, 8, 1, 99)

	img := []byte{1, 0, 2, 0, 3, 0, 4, 0}
	mem.MaskBlitToScreen(img, 8, 1, 0, 0, 0)

	// masked pixels keep the background colour
	expected := []uint8{1, 2, 3, 4, 99, 99, 99, 99}
	for x, e := range expected {
		test.ExpectEquality(t, mem.Pixel(0, x, 0), e)
	}
}

func TestLatchToScreen(t *testing.T) {
	for scale := 1; scale <= 3; scale++ {
		a := newMemory(scale)
		b := newMemory(scale)
		img := planarImage(16, 8)

		latch := 3 * a.PageSize()
		a.BlitIn(img, 16, 8, latch)
		a.LatchToScreen(latch, 16/4, 8, 40, 30)

		b.BlitToScreen(img, 16, 8, 40, 30)

		test.ExpectSuccess(t, bytes.Equal(a.Page(0), b.Page(0)), fmt.Sprintf("scale %d", scale))
	}
}

func TestCopyRegion(t *testing.T) {
	mem := newMemory(2)
	mem.Bar(0, 10, 40, 5, 6)

	// copy rows 10 to 14 to the second page. the width is in planar units
	src := 10 * 320 / 4
	dst := mem.PageSize() + src
	mem.CopyRegion(src, dst, 40/4, 5)

	for y := 0; y < 20; y++ {
		for x := 0; x < 50; x++ {
			test.DemandEquality(t, mem.Pixel(mem.PageSize(), x, y), mem.Pixel(0, x, y))
		}
	}
}

func TestCopyPage(t *testing.T) {
	mem := newMemory(2)
	img := planarImage(64, 64)
	mem.BlitToScreen(img, 64, 64, 10, 10)

	mem.CopyPage(0, mem.PageSize())
	test.ExpectSuccess(t, bytes.Equal(mem.Page(0), mem.Page(mem.PageSize())))

	// the source page is unchanged
	out := make([]byte, len(img))
	mem.CopyOut(out, 64, 64, 10, 10)
	test.ExpectSuccess(t, bytes.Equal(img, out))
}

// overrunning the buffer is a programming error
func TestOverrun(t *testing.T) {
	mem := newMemory(1)
	defer func() {
		test.ExpectInequality(t, recover(), nil)
	}()
	mem.Bar(0, 0, 320, 201*vga.NumPages, 1)
}
