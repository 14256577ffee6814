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

// Package palette is the colour table of the emulated VGA display. A
// palette has 256 entries of three channels. Channel values are in the range
// 0 to 63, the precision of the VGA DAC.
//
// The Engine type holds the current palette and implements the fade and
// intensity effects. Changes are pushed to a Sink, which is normally the
// active renderer.
package palette

import (
	"github.com/retrovga/vgavideo/curated"
)

// Size of a palette.
const (
	Entries  = 256
	Channels = 3
	Size     = Entries * Channels
)

// MaxDAC is the maximum value of a palette channel.
const MaxDAC = 63

// Sentinal error patterns.
const (
	RangeError = "palette: invalid range (first %d, count %d)"
	ShortError = "palette: %d colour values is not enough for %d entries"
	StepsError = "palette: invalid number of steps (%d)"
)

// Sink receives palette changes. The colours slice is only valid for the
// duration of the call.
type Sink interface {
	PaletteChanged(first int, count int, colours []uint8, refresh bool)
}

// VBLWaiter waits for a number of vertical blanks.
type VBLWaiter interface {
	WaitVBL(vbls int)
}

// Engine owns the current palette. It is not safe for concurrent use.
type Engine struct {
	current [Size]uint8

	// the source snapshot and the working copy used by the fades and by
	// SetIntensity()
	snapshot [Size]uint8
	working  [Size]uint8

	faded bool

	sink Sink
	vbl  VBLWaiter
}

// NewEngine is the preferred method of initialisation for the Engine type.
// Both arguments can be nil.
func NewEngine(sink Sink, vbl VBLWaiter) *Engine {
	return &Engine{
		sink: sink,
		vbl:  vbl,
	}
}

// SetSink changes where palette changes are pushed to.
func (pal *Engine) SetSink(sink Sink) {
	pal.sink = sink
}

// Reset the palette to black without notifying the sink.
func (pal *Engine) Reset() {
	pal.current = [Size]uint8{}
	pal.faded = false
}

func checkRange(first int, count int) error {
	if first < 0 || count < 0 || first+count > Entries {
		return curated.Errorf(RangeError, first, count)
	}
	return nil
}

// Set count palette entries beginning with the first entry. The values slice
// contains the channels of the new entries starting at index zero.
//
// The sink is notified of the change and will refresh the screen if refresh
// is true.
func (pal *Engine) Set(first int, count int, values []uint8, refresh bool) error {
	if err := checkRange(first, count); err != nil {
		return err
	}
	if len(values) < count*Channels {
		return curated.Errorf(ShortError, len(values), count)
	}

	copy(pal.current[first*Channels:(first+count)*Channels], values)
	pal.push(first, count, refresh)

	return nil
}

func (pal *Engine) push(first int, count int, refresh bool) {
	if pal.sink != nil {
		pal.sink.PaletteChanged(first, count, pal.current[first*Channels:(first+count)*Channels], refresh)
	}
}

func (pal *Engine) waitVBL() {
	if pal.vbl != nil {
		pal.vbl.WaitVBL(1)
	}
}

// Get count palette entries beginning with the first entry.
func (pal *Engine) Get(first int, count int) ([]uint8, error) {
	if err := checkRange(first, count); err != nil {
		return nil, err
	}
	c := make([]uint8, count*Channels)
	copy(c, pal.current[first*Channels:])
	return c, nil
}

// Current returns a copy of the entire palette.
func (pal *Engine) Current() []uint8 {
	c := make([]uint8, Size)
	copy(c, pal.current[:])
	return c
}

// Fill every entry in the palette with the same colour.
func (pal *Engine) Fill(red uint8, green uint8, blue uint8) {
	for i := 0; i < Entries; i++ {
		pal.current[i*Channels] = red
		pal.current[i*Channels+1] = green
		pal.current[i*Channels+2] = blue
	}
	pal.push(0, Entries, true)
}

// Faded returns true if the most recent fade was FadeOut().
func (pal *Engine) Faded() bool {
	return pal.faded
}

// SetIntensity reduces the brightness of the entries from start to end
// (inclusive) by 63-intensity. The source slice contains the channels of the
// entries starting at index zero.
//
// Channel values are clamped at zero. There is no upper clamp.
func (pal *Engine) SetIntensity(start int, end int, source []uint8, intensity int) error {
	count := end - start + 1
	if err := checkRange(start, count); err != nil {
		return err
	}
	if len(source) < count*Channels {
		return curated.Errorf(ShortError, len(source), count)
	}

	sub := MaxDAC - intensity
	for i := 0; i < count*Channels; i++ {
		v := int(source[i]) - sub
		if v < 0 {
			v = 0
		}
		pal.working[i] = uint8(v)
	}

	return pal.Set(start, count, pal.working[:count*Channels], true)
}
