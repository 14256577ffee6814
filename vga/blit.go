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

// The source images for BlitIn(), BlitToScreen(), MaskBlitToScreen() and
// the destination image for CopyOut() are planar: the image is stored as
// four planes one after the other. Plane p contains columns p, p+4, p+8, etc.
// of every row.
//
// The width of a planar image should be a multiple of four.

// BlitIn copies a planar image into a latch at the destination page offset.
// Pixels are expanded by the scale but the latch is not laid out in screen
// rows. Each row of the latch is scale×w bytes. Use LatchToScreen() to copy
// the latch to the back buffer.
func (mem *Memory) BlitIn(source []byte, w int, h int, dest int) {
	pitch := mem.scale * w
	base := mem.Offset(dest)
	mem.touch(base, base+mem.scale*mem.scale*w*h)

	i := 0
	for p := 0; p < 4; p++ {
		for y := 0; y < h; y++ {
			for x := p; x < w; x += 4 {
				px := source[i]
				i++

				o := base + mem.scale*(mem.scale*y*w+x)
				for s := 0; s < mem.scale; s++ {
					fill(mem.buf[o:o+mem.scale], px)
					o += pitch
				}
			}
		}
	}
}

// LatchOut is the inverse of BlitIn(). It reads a latch at the page offset
// into a planar image.
func (mem *Memory) LatchOut(dest []byte, w int, h int, source int) {
	base := mem.Offset(source)

	i := 0
	for p := 0; p < 4; p++ {
		for y := 0; y < h; y++ {
			for x := p; x < w; x += 4 {
				dest[i] = mem.buf[base+mem.scale*(mem.scale*y*w+x)]
				i++
			}
		}
	}
}

// BlitToScreen copies a planar image to the back buffer at (x, y).
func (mem *Memory) BlitToScreen(source []byte, w int, h int, x int, y int) {
	i := 0
	for p := 0; p < 4; p++ {
		for yy := 0; yy < h; yy++ {
			for xx := p; xx < w; xx += 4 {
				mem.Plot(x+xx, y+yy, source[i])
				i++
			}
		}
	}
}

// MaskBlitToScreen is the same as BlitToScreen() except that pixels with the
// mask colour are not copied.
func (mem *Memory) MaskBlitToScreen(source []byte, w int, h int, x int, y int, mask uint8) {
	i := 0
	for p := 0; p < 4; p++ {
		for yy := 0; yy < h; yy++ {
			for xx := p; xx < w; xx += 4 {
				if px := source[i]; px != mask {
					mem.Plot(x+xx, y+yy, px)
				}
				i++
			}
		}
	}
}

// CopyOut reads the rectangle at (x, y) in the back buffer into a planar
// image. It is the inverse of BlitToScreen().
func (mem *Memory) CopyOut(dest []byte, w int, h int, x int, y int) {
	i := 0
	for p := 0; p < 4; p++ {
		for yy := 0; yy < h; yy++ {
			for xx := p; xx < w; xx += 4 {
				dest[i] = mem.Pixel(mem.BufferOffset, x+xx, y+yy)
				i++
			}
		}
	}
}

// LatchToScreen copies a latch created by BlitIn() to the back buffer at
// (x, y). The width of the latch is in planar units.
func (mem *Memory) LatchToScreen(source int, w int, h int, x int, y int) {
	pitch := mem.scale * 4 * w
	src := mem.Offset(source)
	dst := mem.PixelOffset(mem.BufferOffset, x, y)
	rows := h * mem.scale

	if pitch <= 0 || rows <= 0 {
		return
	}
	mem.touch(dst, dst+(rows-1)*mem.width+pitch)

	for i := 0; i < rows; i++ {
		copy(mem.buf[dst:dst+pitch], mem.buf[src:src+pitch])
		src += pitch
		dst += mem.width
	}
}

// CopyRegion copies a rectangle between pages. The source and destination
// are page offsets that include the position of the rectangle. The width is
// in planar units and the height is in reference rows.
//
// Page offsets are scaled as a whole so for scales greater than one the
// offsets should address the start of a row.
func (mem *Memory) CopyRegion(source int, dest int, w int, h int) {
	src := mem.Offset(source)
	dst := mem.Offset(dest)
	w *= 4 * mem.scale
	h *= mem.scale

	if w <= 0 || h <= 0 {
		return
	}
	mem.touch(dst, dst+(h-1)*mem.width+w)

	for i := 0; i < h; i++ {
		copy(mem.buf[dst:dst+w], mem.buf[src:src+w])
		src += mem.width
		dst += mem.width
	}
}

// CopyPage copies an entire page.
func (mem *Memory) CopyPage(source int, dest int) {
	if source == dest {
		return
	}
	src := mem.Offset(source)
	dst := mem.Offset(dest)
	mem.touch(dst, dst+mem.geom.VGAArea)
	copy(mem.buf[dst:dst+mem.geom.VGAArea], mem.buf[src:src+mem.geom.VGAArea])
}
