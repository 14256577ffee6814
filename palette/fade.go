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

// interpolate from orig towards target. integer division truncates towards
// zero, which gives the fades their stepped appearance.
func interpolate(orig uint8, target int, i int, steps int) uint8 {
	delta := target - int(orig)
	return uint8(int(orig) + delta*i/steps)
}

// FadeOut the entries from start to end (inclusive) to the target colour
// over the number of steps. Each step is followed by a wait for one vertical
// blank.
//
// After the last step the entire palette is set to the target colour,
// including entries outside the range.
func (pal *Engine) FadeOut(start int, end int, red uint8, green uint8, blue uint8, steps int) error {
	if err := checkRange(start, end-start+1); err != nil {
		return err
	}
	if steps < 0 {
		return curated.Errorf(StepsError, steps)
	}

	pal.snapshot = pal.current
	pal.working = pal.current

	target := [Channels]int{int(red), int(green), int(blue)}

	for i := 0; i < steps; i++ {
		for j := start * Channels; j < (end+1)*Channels; j++ {
			pal.working[j] = interpolate(pal.snapshot[j], target[j%Channels], i, steps)
		}
		if err := pal.Set(0, Entries, pal.working[:], true); err != nil {
			return err
		}
		pal.waitVBL()
	}

	pal.Fill(red, green, blue)
	pal.waitVBL()

	pal.faded = true

	return nil
}

// FadeIn the palette towards the target palette over the number of steps.
// Each step is followed by a wait for one vertical blank. The target slice is
// a complete palette.
//
// The range of start and end is applied to channel indices from start*3 to
// end*3+2. After the last step the entire palette is set to the target.
func (pal *Engine) FadeIn(start int, end int, target []uint8, steps int) error {
	if err := checkRange(start, end-start+1); err != nil {
		return err
	}
	if len(target) < Size {
		return curated.Errorf(ShortError, len(target), Entries)
	}
	if steps < 0 {
		return curated.Errorf(StepsError, steps)
	}

	pal.snapshot = pal.current
	pal.working = pal.current

	first := start * Channels
	last := end*Channels + 2

	for i := 0; i < steps; i++ {
		for j := first; j <= last; j++ {
			pal.working[j] = interpolate(pal.snapshot[j], int(target[j]), i, steps)
		}
		if err := pal.Set(0, Entries, pal.working[:], true); err != nil {
			return err
		}
		pal.waitVBL()
	}

	if err := pal.Set(0, Entries, target, true); err != nil {
		return err
	}
	pal.waitVBL()

	pal.faded = false

	return nil
}
