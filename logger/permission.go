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

package logger

// Permission is consulted before a log entry is made. A log request with a
// Permission that does not allow logging is dropped.
type Permission interface {
	AllowLogging() bool
}

type allow struct{}

func (allow) AllowLogging() bool {
	return true
}

// Allow is the Permission for log requests that should always be made.
var Allow Permission = allow{}

// Limit is a Permission that allows a fixed number of log entries and then
// refuses until Reset() is called. It is intended for log requests that can
// happen once per presented frame. A Limit is not safe for concurrent use.
type Limit struct {
	max   int
	count int
}

// NewLimit is the preferred method of initialisation for the Limit type.
func NewLimit(max int) *Limit {
	return &Limit{max: max}
}

// AllowLogging implements the Permission interface. Every call counts
// towards the limit.
func (l *Limit) AllowLogging() bool {
	if l.count >= l.max {
		return false
	}
	l.count++
	return true
}

// Exhausted returns true if the limit has been reached.
func (l *Limit) Exhausted() bool {
	return l.count >= l.max
}

// Reset the count of log entries allowed so far.
func (l *Limit) Reset() {
	l.count = 0
}
