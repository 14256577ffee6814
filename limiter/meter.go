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

// FrameMeter measures the number of frames presented per second.
type FrameMeter struct {
	// pulse that performs the measurement
	measuringPulse *time.Ticker

	// the measured rate is the number of frames divided by the amount of
	// elapsed time since the previous measurement
	measureTime time.Time
	measureCt   int

	// the most recent measurement
	Measured atomic.Value // float32
}

// NewFrameMeter is the preferred method of initialisation for the FrameMeter
// type. The Stop() function should be called when the meter is no longer
// required.
func NewFrameMeter() *FrameMeter {
	mtr := &FrameMeter{
		measuringPulse: time.NewTicker(time.Second),
		measureTime:    time.Now(),
	}
	mtr.Measured.Store(float32(0))
	return mtr
}

// Frame should be called once for every presented frame. Measurement only
// happens on every tick of the measuring pulse so the function is cheap.
func (mtr *FrameMeter) Frame() {
	mtr.measureCt++

	select {
	case <-mtr.measuringPulse.C:
		t := time.Now()
		m := float32(mtr.measureCt) / float32(t.Sub(mtr.measureTime).Seconds())
		mtr.Measured.Store(m)
		mtr.measureTime = t
		mtr.measureCt = 0
	default:
	}
}

// Rate returns the most recent measurement.
func (mtr *FrameMeter) Rate() float32 {
	return mtr.Measured.Load().(float32)
}

// Stop the measuring pulse.
func (mtr *FrameMeter) Stop() {
	mtr.measuringPulse.Stop()
}
