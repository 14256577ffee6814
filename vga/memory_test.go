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
	"fmt"
	"testing"

	"github.com/retrovga/vgavideo/geometry"
	"github.com/retrovga/vgavideo/test"
	"github.com/retrovga/vgavideo/vga"
)

func newMemory(scale int) *vga.Memory {
	return vga.NewMemory(geometry.Negotiate(geometry.Request{
		Windowed:     true,
		WindowWidth:  640,
		WindowHeight: 480,
		Scale:        scale,
	}))
}

func TestAllocate(t *testing.T) {
	for scale := 1; scale <= 3; scale++ {
		mem := newMemory(scale)
		test.ExpectEquality(t, len(mem.Bytes()), scale*scale*4*320*200)
		test.ExpectEquality(t, mem.PageSize(), 16000)
		test.ExpectEquality(t, len(mem.Page(0)), scale*320*scale*200)
		test.ExpectEquality(t, mem.Offset(mem.PageSize()*vga.NumPages), len(mem.Bytes()))

		for _, b := range mem.Bytes() {
			if b != 0 {
				t.Fatalf("memory not zero filled")
			}
		}
	}

	// reallocation zero fills and resets the page offsets
	mem := newMemory(1)
	mem.Plot(10, 10, 5)
	mem.BufferOffset = mem.PageSize()
	mem.DisplayOffset = mem.PageSize()
	mem.Allocate(mem.Geometry())
	test.ExpectEquality(t, mem.Pixel(0, 10, 10), 0)
	test.ExpectEquality(t, mem.BufferOffset, 0)
	test.ExpectEquality(t, mem.DisplayOffset, 0)
}

func TestOffsets(t *testing.T) {
	mem := newMemory(2)
	test.ExpectEquality(t, mem.Offset(1), 16)
	test.ExpectEquality(t, mem.PixelOffset(0, 0, 0), 0)
	test.ExpectEquality(t, mem.PixelOffset(0, 1, 0), 2)
	test.ExpectEquality(t, mem.PixelOffset(0, 0, 1), 2*640)
	test.ExpectEquality(t, mem.PixelOffset(mem.PageSize(), 0, 0), 4*64000)
}

// addresses are distinct for distinct coordinates and increase with y and
// then with x
func TestAddressInjective(t *testing.T) {
	for scale := 1; scale <= 3; scale++ {
		mem := newMemory(scale)
		for _, base := range []int{0, mem.PageSize(), 3 * mem.PageSize()} {
			prev := -1
			for y := 0; y < 200; y++ {
				for x := 0; x < 320; x++ {
					o := mem.PixelOffset(base, x, y)
					if o <= prev {
						t.Fatalf("address not increasing at scale %d (%d, %d)", scale, x, y)
					}
					prev = o
				}
			}
		}
	}
}

func TestTakeDirtyRows(t *testing.T) {
	mem := newMemory(2)

	// a newly allocated memory is entirely dirty
	first, last, ok := mem.TakeDirtyRows(0)
	test.ExpectSuccess(t, ok)
	test.ExpectEquality(t, first, 0)
	test.ExpectEquality(t, last, 399)

	// and is now clean
	_, _, ok = mem.TakeDirtyRows(0)
	test.ExpectFailure(t, ok)

	mem.Plot(5, 10, 1)
	mem.Plot(6, 20, 1)
	first, last, ok = mem.TakeDirtyRows(0)
	test.ExpectSuccess(t, ok)
	test.ExpectEquality(t, first, 20)
	test.ExpectEquality(t, last, 41)

	// drawing to a different page does not dirty the display page
	mem.BufferOffset = mem.PageSize()
	mem.Bar(0, 0, 320, 200, 3)
	_, _, ok = mem.TakeDirtyRows(0)
	test.ExpectFailure(t, ok)

	// but copying the page does
	mem.CopyPage(mem.PageSize(), 0)
	first, last, ok = mem.TakeDirtyRows(0)
	test.ExpectSuccess(t, ok)
	test.ExpectEquality(t, first, 0)
	test.ExpectEquality(t, last, 399)
}

func ExampleMemory_PixelOffset() {
	mem := newMemory(3)
	fmt.Println(mem.PixelOffset(0, 2, 1))
	// Output: 2886
}
