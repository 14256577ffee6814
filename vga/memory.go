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

package vga

import (
	"github.com/retrovga/vgavideo/geometry"
)

// NumPages is the number of reference pages in the VGA memory.
const NumPages = 4

// Memory is the emulated VGA memory.
type Memory struct {
	geom geometry.Geometry

	// copied from geometry for convenience
	scale int
	width int

	buf []byte

	// page offsets of the back buffer and the display buffer. primitives
	// draw to the back buffer (BufferOffset). the display buffer is what is
	// presented
	BufferOffset  int
	DisplayOffset int

	// the span of bytes written to since the last call to TakeDirtyRows(). a
	// span where dirtyLo >= dirtyHi is clean
	dirtyLo int
	dirtyHi int
}

// NewMemory is the preferred method of initialisation for the Memory type.
func NewMemory(g geometry.Geometry) *Memory {
	mem := &Memory{}
	mem.Allocate(g)
	return mem
}

// Allocate (or reallocate) memory for the geometry. The memory is zero
// filled and both page offsets are reset to zero.
func (mem *Memory) Allocate(g geometry.Geometry) {
	mem.geom = g
	mem.scale = g.Scale
	mem.width = g.VGAWidth
	mem.buf = make([]byte, g.BufferSize())
	mem.BufferOffset = 0
	mem.DisplayOffset = 0
	mem.MarkAllDirty()
}

// Geometry used to allocate the memory.
func (mem *Memory) Geometry() geometry.Geometry {
	return mem.geom
}

// Bytes returns the entire buffer.
func (mem *Memory) Bytes() []byte {
	return mem.buf
}

// PageSize is the size of a reference page in planar units. Page N begins at
// page offset N*PageSize().
func (mem *Memory) PageSize() int {
	return mem.geom.ReferenceWidth * mem.geom.ReferenceHeight / 4
}

// Offset returns the byte offset of a page offset.
func (mem *Memory) Offset(base int) int {
	return mem.scale * mem.scale * 4 * base
}

// PixelOffset returns the byte offset of the reference pixel (x, y) in the
// page beginning at base.
func (mem *Memory) PixelOffset(base int, x int, y int) int {
	return mem.scale * (mem.scale*(4*base) + y*mem.width + x)
}

// Pixel returns the palette index of the reference pixel (x, y) in the page
// beginning at base.
func (mem *Memory) Pixel(base int, x int, y int) uint8 {
	return mem.buf[mem.PixelOffset(base, x, y)]
}

// Page returns the bytes of the page beginning at base. The slice is
// VGAWidth×VGAHeight bytes in length and shares memory with the buffer.
func (mem *Memory) Page(base int) []byte {
	o := mem.Offset(base)
	return mem.buf[o : o+mem.geom.VGAArea]
}

// Clear the entire buffer to zero.
func (mem *Memory) Clear() {
	fill(mem.buf, 0)
	mem.MarkAllDirty()
}

func fill(b []byte, colour uint8) {
	for i := range b {
		b[i] = colour
	}
}

// touch marks the bytes from lo to hi (exclusive) as dirty.
func (mem *Memory) touch(lo int, hi int) {
	if mem.dirtyLo >= mem.dirtyHi {
		mem.dirtyLo = lo
		mem.dirtyHi = hi
		return
	}
	if lo < mem.dirtyLo {
		mem.dirtyLo = lo
	}
	if hi > mem.dirtyHi {
		mem.dirtyHi = hi
	}
}

// MarkAllDirty marks the entire buffer as having changed.
func (mem *Memory) MarkAllDirty() {
	mem.dirtyLo = 0
	mem.dirtyHi = len(mem.buf)
}

// TakeDirtyRows returns the first and last rows (inclusive, in VGA
// resolution) of the page at base that have changed since the previous call.
// Returns false if no row of the page has changed.
//
// The dirty state of the entire buffer is cleared by the call.
func (mem *Memory) TakeDirtyRows(base int) (int, int, bool) {
	lo, hi := mem.dirtyLo, mem.dirtyHi
	mem.dirtyLo, mem.dirtyHi = 0, 0

	pageLo := mem.Offset(base)
	pageHi := pageLo + mem.geom.VGAArea

	if lo < pageLo {
		lo = pageLo
	}
	if hi > pageHi {
		hi = pageHi
	}
	if lo >= hi {
		return 0, 0, false
	}

	return (lo - pageLo) / mem.width, (hi - 1 - pageLo) / mem.width, true
}
