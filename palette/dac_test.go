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

package palette_test

import (
	"testing"

	"github.com/retrovga/vgavideo/curated"
	"github.com/retrovga/vgavideo/palette"
	"github.com/retrovga/vgavideo/test"
)

func TestExpand(t *testing.T) {
	test.ExpectEquality(t, palette.Expand(0), 0)
	test.ExpectEquality(t, palette.Expand(1), 4)
	test.ExpectEquality(t, palette.Expand(32), 129)
	test.ExpectEquality(t, palette.Expand(63), 255)

	// out of range values are clamped
	test.ExpectEquality(t, palette.Expand(64), 255)
	test.ExpectEquality(t, palette.Expand(255), 255)
}

func TestColourShifts(t *testing.T) {
	// RGBA8888
	shifts, err := palette.ColourShifts(32, [4]uint32{0xff000000, 0x00ff0000, 0x0000ff00, 0x000000ff})
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, shifts, [4]uint{24, 16, 8, 0})

	// ABGR8888
	shifts, err = palette.ColourShifts(32, [4]uint32{0x000000ff, 0x0000ff00, 0x00ff0000, 0xff000000})
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, shifts, [4]uint{0, 8, 16, 24})

	_, err = palette.ColourShifts(32, [4]uint32{0xff000000, 0x00ff0000, 0x0000f800, 0x000000ff})
	test.ExpectSuccess(t, curated.Is(err, palette.MaskError))

	_, err = palette.ColourShifts(16, [4]uint32{0xff000000, 0x00ff0000, 0x0000ff00, 0x000000ff})
	test.ExpectSuccess(t, curated.Is(err, palette.DepthError))
}

func TestTable(t *testing.T) {
	tab, err := palette.NewTable(32, [4]uint32{0xff000000, 0x00ff0000, 0x0000ff00, 0x000000ff})
	test.DemandSuccess(t, err)

	// new tables are opaque black
	test.ExpectEquality(t, tab.Lookup(0), 0x000000ff)
	test.ExpectEquality(t, tab.Lookup(255), 0x000000ff)

	err = tab.Update([]uint8{63, 0, 32, 1, 1, 1}, 254, 2)
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, tab.Lookup(254), 0xff0081ff)
	test.ExpectEquality(t, tab.Lookup(255), 0x040404ff)

	err = tab.Update(make([]uint8, 6), 255, 2)
	test.ExpectSuccess(t, curated.Is(err, palette.RangeError))

	err = tab.Update(make([]uint8, 3), 0, 2)
	test.ExpectSuccess(t, curated.Is(err, palette.ShortError))

	_, err = palette.NewTable(32, [4]uint32{0xff000000, 0xff000000, 0x0000ff00, 0x1})
	test.ExpectFailure(t, err)
}
