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

// Package limiter paces the presentation of frames. It decides whether the
// display is already rate limiting the presentation (vertical sync) and
// implements the wait for vertical blank used between frames.
package limiter

import (
	"time"
)

// TickBase is the number of game timer ticks per second.
const TickBase = 70

// Clock is the source of time used by the limiter.
type Clock interface {
	// milliseconds since an arbitrary point in time. the value is monotonic
	Ticks() uint32

	// the value of Ticks() at the most recent game timer tick
	TimerTicks() uint32

	// sleep for a number of milliseconds
	Sleep(ms uint32)

	// wall clock time
	Now() time.Time
}

// the number of draw calls made by DetectVSync().
const detectDraws = 10

// the percentage below the expected duration that is still considered to be
// vertical sync.
const detectTolerance = 25

// refresh rate to use if the display does not report one.
const defaultRefreshRate = 60

// DetectVSync times a number of calls to draw. If the calls take close to the
// time expected for the refresh rate then the display is synchronising the
// presentation. The draw function should present a frame.
func DetectVSync(draw func(), refreshRate int, clock Clock) bool {
	if refreshRate <= 0 {
		refreshRate = defaultRefreshRate
	}

	expected := (1000 * detectDraws) / refreshRate
	minimum := ((100 - detectTolerance) * expected) / 100

	before := clock.Now()
	for i := 0; i < detectDraws; i++ {
		draw()
	}
	duration := clock.Now().Sub(before).Milliseconds()

	return duration >= int64(minimum)
}

// Pacer implements the wait for vertical blank.
type Pacer struct {
	// ticks per second of the game timer
	TickBase int

	// whether presentation is synchronised with the display. if it is then a
	// wait for a single vertical blank does nothing
	HasVSync bool

	clock Clock
}

// NewPacer is the preferred method of initialisation for the Pacer type.
func NewPacer(clock Clock) *Pacer {
	return &Pacer{
		TickBase: TickBase,
		clock:    clock,
	}
}

// WaitVBL waits for the number of vertical blanks. A wait for more than one
// blank is a simple sleep. A wait for a single blank sleeps for whatever
// remains of the current game timer tick, unless the display has vertical
// sync.
//
// The wait is never longer than vbls game timer ticks and cannot be
// interrupted.
func (pcr *Pacer) WaitVBL(vbls int) {
	if vbls <= 0 {
		return
	}

	if vbls > 1 {
		pcr.clock.Sleep(uint32(1000 * vbls / pcr.TickBase))
		return
	}

	if pcr.HasVSync {
		return
	}

	oneTick := uint32(1000 / pcr.TickBase)

	timer := pcr.clock.TimerTicks()
	current := pcr.clock.Ticks()

	if current > timer {
		diff := current - timer
		if oneTick >= diff {
			pcr.clock.Sleep(oneTick - diff)
		}
	}
}
