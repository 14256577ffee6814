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

// Package vga emulates the memory of a planar VGA display.
//
// The memory is a single contiguous byte buffer holding four pages of the
// reference resolution, with every reference pixel expanded to a block of
// scale×scale bytes. Each byte is a palette index.
//
// Addresses are given as a page offset plus reference coordinates. A page
// offset is measured in planar units of four reference pixels, as it was on
// the original hardware, so the second page begins at PageSize(). All
// functions that touch the buffer go through PixelOffset() or Offset().
//
// No bounds checking is performed beyond that of the Go runtime. Callers must
// ensure that coordinates and sizes are inside the buffer. An operation that
// overruns the buffer is a programming error and will panic with an index out
// of range error.
//
// Operations are pure memory transforms. Nothing in this package causes the
// memory to be presented.
package vga
