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

package palette

// Default returns the palette of a VGA card after a mode change: the sixteen
// colours of the EGA palette, a 6×6×6 colour cube and a grey ramp.
func Default() []uint8 {
	p := make([]uint8, Size)

	ega := [16][Channels]uint8{
		{0, 0, 0}, {0, 0, 42}, {0, 42, 0}, {0, 42, 42},
		{42, 0, 0}, {42, 0, 42}, {42, 21, 0}, {42, 42, 42},
		{21, 21, 21}, {21, 21, 63}, {21, 63, 21}, {21, 63, 63},
		{63, 21, 21}, {63, 21, 63}, {63, 63, 21}, {63, 63, 63},
	}
	for i, c := range ega {
		copy(p[i*Channels:], c[:])
	}

	idx := len(ega)
	for r := 0; r < 6; r++ {
		for g := 0; g < 6; g++ {
			for b := 0; b < 6; b++ {
				p[idx*Channels] = uint8(r * MaxDAC / 5)
				p[idx*Channels+1] = uint8(g * MaxDAC / 5)
				p[idx*Channels+2] = uint8(b * MaxDAC / 5)
				idx++
			}
		}
	}

	for i := 0; idx < Entries; i++ {
		grey := uint8(i * MaxDAC / 23)
		p[idx*Channels] = grey
		p[idx*Channels+1] = grey
		p[idx*Channels+2] = grey
		idx++
	}

	return p
}
