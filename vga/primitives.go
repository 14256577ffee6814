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

// Plot a single reference pixel in the back buffer.
func (mem *Memory) Plot(x int, y int, colour uint8) {
	o := mem.PixelOffset(mem.BufferOffset, x, y)
	mem.touch(o, o+(mem.scale-1)*mem.width+mem.scale)
	for i := 0; i < mem.scale; i++ {
		fill(mem.buf[o:o+mem.scale], colour)
		o += mem.width
	}
}

// Hline draws a horizontal line of width w in the back buffer.
func (mem *Memory) Hline(x int, y int, w int, colour uint8) {
	mem.Bar(x, y, w, 1, colour)
}

// Vline draws a vertical line of height h in the back buffer.
func (mem *Memory) Vline(x int, y int, h int, colour uint8) {
	mem.Bar(x, y, 1, h, colour)
}

// Bar fills a rectangle in the back buffer.
func (mem *Memory) Bar(x int, y int, w int, h int, colour uint8) {
	o := mem.PixelOffset(mem.BufferOffset, x, y)
	w *= mem.scale
	h *= mem.scale

	if w <= 0 || h <= 0 {
		return
	}

	mem.touch(o, o+(h-1)*mem.width+w)

	// a bar that covers the full width of the page is contiguous
	if x == 0 && w == mem.width {
		fill(mem.buf[o:o+h*mem.width], colour)
		return
	}

	for i := 0; i < h; i++ {
		fill(mem.buf[o:o+w], colour)
		o += mem.width
	}
}

// LinearFill fills length planar units from the page offset. The fill is
// not restricted to a page.
func (mem *Memory) LinearFill(start int, length int, colour uint8) {
	o := mem.Offset(start)
	n := mem.scale * mem.scale * 4 * length
	mem.touch(o, o+n)
	fill(mem.buf[o:o+n], colour)
}
