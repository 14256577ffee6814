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

import (
	"github.com/retrovga/vgavideo/curated"
)

// Sentinal error patterns.
const (
	MaskError  = "palette: invalid colour mask (%#08x)"
	DepthError = "palette: unsupported bits per pixel (%d)"
)

// Expand a DAC value to eight bits. Values above MaxDAC are clamped.
func Expand(v uint8) uint8 {
	if v >= MaxDAC {
		return 0xff
	}
	return uint8((255 * uint32(v)) / MaxDAC)
}

// ColourShifts returns the bit shift for each channel of a 32 bit pixel
// format. The masks are in the order red, green, blue, alpha and each mask
// must select a whole byte.
func ColourShifts(bpp int, masks [4]uint32) ([4]uint, error) {
	var shifts [4]uint

	if bpp != 32 {
		return shifts, curated.Errorf(DepthError, bpp)
	}

	for i, m := range masks {
		switch m {
		case 0x000000ff:
			shifts[i] = 0
		case 0x0000ff00:
			shifts[i] = 8
		case 0x00ff0000:
			shifts[i] = 16
		case 0xff000000:
			shifts[i] = 24
		default:
			return shifts, curated.Errorf(MaskError, m)
		}
	}

	return shifts, nil
}

// Table maps palette indexes to packed 32 bit pixels.
type Table struct {
	shifts  [4]uint
	entries [Entries]uint32
}

// NewTable is the preferred method of initialisation for the Table type. The
// masks are as described for ColourShifts(). Every entry of a new table is
// opaque black.
func NewTable(bpp int, masks [4]uint32) (*Table, error) {
	shifts, err := ColourShifts(bpp, masks)
	if err != nil {
		return nil, err
	}

	tab := &Table{shifts: shifts}
	for i := range tab.entries {
		tab.entries[i] = 0xff << tab.shifts[3]
	}

	return tab, nil
}

// Update count entries of the table beginning with the first entry. The
// colours slice contains the channels of the entries starting at index zero.
func (tab *Table) Update(colours []uint8, first int, count int) error {
	if first < 0 || first > Entries || count < 0 || count > Entries || first+count > Entries {
		return curated.Errorf(RangeError, first, count)
	}
	if len(colours) < count*Channels {
		return curated.Errorf(ShortError, len(colours), count)
	}

	for i := 0; i < count; i++ {
		c := colours[i*Channels : (i+1)*Channels]
		tab.entries[first+i] = uint32(Expand(c[0]))<<tab.shifts[0] |
			uint32(Expand(c[1]))<<tab.shifts[1] |
			uint32(Expand(c[2]))<<tab.shifts[2] |
			0xff<<tab.shifts[3]
	}

	return nil
}

// Lookup the packed pixel for a palette index.
func (tab *Table) Lookup(index uint8) uint32 {
	return tab.entries[index]
}
