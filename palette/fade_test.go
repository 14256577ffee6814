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
	"bytes"
	"testing"

	"github.com/retrovga/vgavideo/curated"
	"github.com/retrovga/vgavideo/palette"
	"github.com/retrovga/vgavideo/test"
)

func TestFadeOutSingleStep(t *testing.T) {
	pal, _ := newEngine()
	test.DemandSuccess(t, pal.Set(0, palette.Entries, palette.Default(), false))

	err := pal.FadeOut(0, 255, 0, 0, 0, 1)
	test.ExpectSuccess(t, err)
	test.ExpectSuccess(t, bytes.Equal(pal.Current(), make([]uint8, palette.Size)))
	test.ExpectSuccess(t, pal.Faded())
}

func TestFadeOutSteps(t *testing.T) {
	pal, rec := newEngine()
	test.DemandSuccess(t, pal.Set(0, 1, []uint8{63, 10, 0}, false))
	rec.changes = rec.changes[:0]

	err := pal.FadeOut(0, 0, 0, 0, 63, 4)
	test.ExpectSuccess(t, err)

	// one change for every step and one for the final fill
	test.DemandEquality(t, len(rec.changes), 5)

	// truncating interpolation
	expected := [][]uint8{
		{63, 10, 0},
		{48, 8, 15},
		{32, 5, 31},
		{16, 3, 47},
		{0, 0, 63},
	}
	for i, e := range expected {
		test.ExpectSuccess(t, bytes.Equal(rec.changes[i].colours[:3], e), i)
		test.ExpectEquality(t, rec.changes[i].refresh, true, i)
	}

	// a wait after every step and after the final fill
	test.ExpectEquality(t, rec.vbls, 5)
}

func TestFadeOutFillsEntirePalette(t *testing.T) {
	pal, _ := newEngine()
	test.DemandSuccess(t, pal.Set(0, palette.Entries, palette.Default(), false))

	// only entries 10 to 20 are interpolated but the final fill affects every
	// entry
	err := pal.FadeOut(10, 20, 5, 6, 7, 3)
	test.ExpectSuccess(t, err)

	c := pal.Current()
	for i := 0; i < palette.Entries; i++ {
		test.DemandSuccess(t, bytes.Equal(c[i*3:i*3+3], []uint8{5, 6, 7}), i)
	}
}

func TestFadeOutRangeOnlyDuringSteps(t *testing.T) {
	pal, rec := newEngine()
	def := palette.Default()
	test.DemandSuccess(t, pal.Set(0, palette.Entries, def, false))
	rec.changes = rec.changes[:0]

	test.ExpectSuccess(t, pal.FadeOut(10, 20, 0, 0, 0, 2))

	// during the second step entries outside the range are unchanged
	step := rec.changes[1].colours
	test.ExpectSuccess(t, bytes.Equal(step[:10*3], def[:10*3]))
	test.ExpectSuccess(t, bytes.Equal(step[21*3:], def[21*3:]))
	test.ExpectInequality(t, step[15*3+1], def[15*3+1])
}

func TestFadeInRestores(t *testing.T) {
	for _, steps := range []int{1, 2, 7, 30} {
		pal, _ := newEngine()
		orig := palette.Default()
		test.DemandSuccess(t, pal.Set(0, palette.Entries, orig, false))

		snapshot := pal.Current()
		test.ExpectSuccess(t, pal.FadeOut(0, 255, 0, 0, 0, steps))
		test.ExpectSuccess(t, pal.Faded())

		test.ExpectSuccess(t, pal.FadeIn(0, 255, snapshot, steps))
		test.ExpectFailure(t, pal.Faded())
		test.ExpectSuccess(t, bytes.Equal(pal.Current(), orig), steps)
	}
}

func TestFadeInChannelRange(t *testing.T) {
	pal, rec := newEngine()
	target := make([]uint8, palette.Size)
	for i := range target {
		target[i] = 60
	}

	test.ExpectSuccess(t, pal.FadeIn(1, 1, target, 2))

	// the second step is halfway for the channels of entry 1 only
	step := rec.changes[1].colours
	test.ExpectSuccess(t, bytes.Equal(step[0:3], []uint8{0, 0, 0}))
	test.ExpectSuccess(t, bytes.Equal(step[3:6], []uint8{30, 30, 30}))
	test.ExpectSuccess(t, bytes.Equal(step[6:9], []uint8{0, 0, 0}))

	// the final step is the exact target
	test.ExpectSuccess(t, bytes.Equal(pal.Current(), target))
	test.ExpectEquality(t, rec.vbls, 3)
}

func TestFadeErrors(t *testing.T) {
	pal, rec := newEngine()

	err := pal.FadeOut(0, 256, 0, 0, 0, 1)
	test.ExpectSuccess(t, curated.Is(err, palette.RangeError))

	err = pal.FadeOut(0, 255, 0, 0, 0, -1)
	test.ExpectSuccess(t, curated.Is(err, palette.StepsError))

	err = pal.FadeIn(0, 255, make([]uint8, 10), 1)
	test.ExpectSuccess(t, curated.Is(err, palette.ShortError))

	// no changes and no waits
	test.ExpectEquality(t, len(rec.changes), 0)
	test.ExpectEquality(t, rec.vbls, 0)
}

func TestFadeWithoutCollaborators(t *testing.T) {
	pal := palette.NewEngine(nil, nil)
	test.ExpectSuccess(t, pal.FadeOut(0, 255, 1, 1, 1, 3))
	test.ExpectSuccess(t, pal.FadeIn(0, 255, palette.Default(), 3))
}
