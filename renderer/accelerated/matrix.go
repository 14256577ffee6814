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

package accelerated

// Ortho returns a column-major orthographic projection of a w×h area with the
// origin in the top-left corner.
func Ortho(w int, h int) [16]float32 {
	return [16]float32{
		2.0 / float32(w), 0.0, 0.0, 0.0,
		0.0, -2.0 / float32(h), 0.0, 0.0,
		0.0, 0.0, -1.0, 0.0,
		-1.0, 1.0, 0.0, 1.0,
	}
}

// number of float32 values in each vertex of the quad (x, y, s, t)
const vertexSize = 4

// Quad returns the vertices of a w×h rectangle as a triangle strip. Each
// vertex is a position followed by a texture coordinate.
func Quad(w int, h int) [16]float32 {
	fw := float32(w)
	fh := float32(h)
	return [16]float32{
		0.0, 0.0, 0.0, 0.0,
		fw, 0.0, 1.0, 0.0,
		0.0, fh, 0.0, 1.0,
		fw, fh, 1.0, 1.0,
	}
}
