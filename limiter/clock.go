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

package limiter

import (
	"sync/atomic"
	"time"
)

// SystemClock is an implementation of Clock using the time package. The game
// timer is advanced by calling Tick() or by running RunTimer().
type SystemClock struct {
	start     time.Time
	timerTick atomic.Uint32
}

// NewSystemClock is the preferred method of initialisation for the
// SystemClock type.
func NewSystemClock() *SystemClock {
	return &SystemClock{
		start: time.Now(),
	}
}

// Ticks implements the Clock interface.
func (clk *SystemClock) Ticks() uint32 {
	return uint32(time.Since(clk.start).Milliseconds())
}

// TimerTicks implements the Clock interface.
func (clk *SystemClock) TimerTicks() uint32 {
	return clk.timerTick.Load()
}

// Sleep implements the Clock interface.
func (clk *SystemClock) Sleep(ms uint32) {
	time.Sleep(time.Duration(ms) * time.Millisecond)
}

// Now implements the Clock interface.
func (clk *SystemClock) Now() time.Time {
	return time.Now()
}

// Tick records a game timer tick.
func (clk *SystemClock) Tick() {
	clk.timerTick.Store(clk.Ticks())
}

// RunTimer calls Tick() at the rate of the tickBase until the done channel
// is closed. It should be run in its own goroutine.
func (clk *SystemClock) RunTimer(tickBase int, done <-chan bool) {
	pulse := time.NewTicker(time.Second / time.Duration(tickBase))
	defer pulse.Stop()

	for {
		select {
		case <-done:
			return
		case <-pulse.C:
			clk.Tick()
		}
	}
}
