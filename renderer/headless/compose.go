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

package headless

import (
	"encoding/binary"
	"image"
	"image/color"

	"github.com/retrovga/vgavideo/geometry"
	"github.com/retrovga/vgavideo/palette"
	"golang.org/x/image/draw"
)

// RGBAMasks are the channel masks of the pixels in an image.RGBA when read
// as a little-endian uint32.
var RGBAMasks = [4]uint32{0x000000ff, 0x0000ff00, 0x00ff0000, 0xff000000}

// NewTable returns a palette table suitable for Translate().
func NewTable() *palette.Table {
	// RGBAMasks is always valid
	tab, _ := palette.NewTable(32, RGBAMasks)
	return tab
}

// Translate the palette indexes in page to colours in img. The image must be
// of the same size as the page.
func Translate(img *image.RGBA, page []byte, tab *palette.Table) {
	w := img.Rect.Dx()
	h := img.Rect.Dy()
	for y := 0; y < h; y++ {
		row := page[y*w : (y+1)*w]
		pix := img.Pix[y*img.Stride : y*img.Stride+w*4]
		for x, idx := range row {
			binary.LittleEndian.PutUint32(pix[x*4:], tab.Lookup(idx))
		}
	}
}

// Present the VGA image in the viewport of the window image. The area of the
// window image outside of the viewport is black.
func Present(win *image.RGBA, vga *image.RGBA, viewport geometry.Rect) {
	draw.Draw(win, win.Bounds(), image.NewUniform(color.Black), image.Point{}, draw.Src)
	dr := image.Rect(viewport.X, viewport.Y, viewport.X+viewport.W, viewport.Y+viewport.H)
	draw.NearestNeighbor.Scale(win, dr, vga, vga.Bounds(), draw.Src, nil)
}

// Compose the page as it would be presented in a window of the geometry. The
// palette is in DAC format.
func Compose(page []byte, g geometry.Geometry, pal []uint8) (*image.RGBA, error) {
	tab := NewTable()
	if err := tab.Update(pal, 0, palette.Entries); err != nil {
		return nil, err
	}

	vga := image.NewRGBA(image.Rect(0, 0, g.VGAWidth, g.VGAHeight))
	Translate(vga, page, tab)

	win := image.NewRGBA(image.Rect(0, 0, g.WindowWidth, g.WindowHeight))
	Present(win, vga, g.Viewport())

	return win, nil
}
