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

import (
	"fmt"
	"io"
	"strings"
	"sync"
	"time"
)

// Level of a log entry.
type Level int

// List of valid Level values.
const (
	Info Level = iota
	Warning
	Error
)

func (lvl Level) String() string {
	switch lvl {
	case Warning:
		return "warning"
	case Error:
		return "error"
	}
	return "info"
}

// Entry represents a single line/entry in the log.
type Entry struct {
	Timestamp time.Time
	Level     Level
	Tag       string
	Detail    string
	repeated  int
}

func (e *Entry) String() string {
	s := strings.Builder{}
	if e.Level == Info {
		s.WriteString(fmt.Sprintf("%s: %s", e.Tag, e.Detail))
	} else {
		s.WriteString(fmt.Sprintf("%s: %s: %s", e.Tag, e.Level, e.Detail))
	}
	if e.repeated > 0 {
		s.WriteString(fmt.Sprintf(" (repeat x%d)", e.repeated+1))
	}
	s.WriteString("\n")
	return s.String()
}

// Logger is a capped list of log entries.
type Logger struct {
	crit       sync.Mutex
	maxEntries int
	entries    []Entry
	echo       io.Writer
}

// NewLogger is the preferred method of initialisation for the Logger type.
func NewLogger(maxEntries int) *Logger {
	return &Logger{
		maxEntries: maxEntries,
		entries:    make([]Entry, 0, maxEntries),
	}
}

// normalise the detail argument to a string. errors and fmt.Stringer
// implementations are handled explicitly, everything else uses the %v verb.
func normalise(detail any) string {
	switch d := detail.(type) {
	case string:
		return d
	case error:
		return d.Error()
	case fmt.Stringer:
		return d.String()
	}
	return fmt.Sprintf("%v", detail)
}

func (l *Logger) log(lvl Level, tag string, detail string) {
	l.crit.Lock()
	defer l.crit.Unlock()

	// remove all newline characters from tag and detail string
	tag = strings.ReplaceAll(tag, "\n", "")
	detail = strings.ReplaceAll(detail, "\n", "")

	var e *Entry
	if len(l.entries) > 0 {
		e = &l.entries[len(l.entries)-1]
	}

	if e == nil || detail != e.Detail || tag != e.Tag || lvl != e.Level {
		l.entries = append(l.entries, Entry{Timestamp: time.Now(), Level: lvl, Tag: tag, Detail: detail})
		e = &l.entries[len(l.entries)-1]
	} else {
		e.repeated++
		e.Timestamp = time.Now()
	}

	if l.echo != nil {
		io.WriteString(l.echo, e.String())
	}

	// maintain maximum length
	if len(l.entries) > l.maxEntries {
		l.entries = l.entries[len(l.entries)-l.maxEntries:]
	}
}

// Log adds an information entry to the log.
func (l *Logger) Log(perm Permission, tag string, detail any) {
	if perm == Allow || perm.AllowLogging() {
		l.log(Info, tag, normalise(detail))
	}
}

// Logf adds a formatted information entry to the log.
func (l *Logger) Logf(perm Permission, tag string, detail string, args ...any) {
	if perm == Allow || perm.AllowLogging() {
		l.log(Info, tag, fmt.Sprintf(detail, args...))
	}
}

// Warn adds a warning entry to the log.
func (l *Logger) Warn(perm Permission, tag string, detail any) {
	if perm == Allow || perm.AllowLogging() {
		l.log(Warning, tag, normalise(detail))
	}
}

// Warnf adds a formatted warning entry to the log.
func (l *Logger) Warnf(perm Permission, tag string, detail string, args ...any) {
	if perm == Allow || perm.AllowLogging() {
		l.log(Warning, tag, fmt.Sprintf(detail, args...))
	}
}

// Error adds an error entry to the log.
func (l *Logger) Error(perm Permission, tag string, detail any) {
	if perm == Allow || perm.AllowLogging() {
		l.log(Error, tag, normalise(detail))
	}
}

// Errorf adds a formatted error entry to the log.
func (l *Logger) Errorf(perm Permission, tag string, detail string, args ...any) {
	if perm == Allow || perm.AllowLogging() {
		l.log(Error, tag, fmt.Sprintf(detail, args...))
	}
}

// Clear all entries from the log.
func (l *Logger) Clear() {
	l.crit.Lock()
	defer l.crit.Unlock()
	l.entries = l.entries[:0]
}

// Write contents of the log to io.Writer.
func (l *Logger) Write(output io.Writer) {
	l.crit.Lock()
	defer l.crit.Unlock()
	for _, e := range l.entries {
		io.WriteString(output, e.String())
	}
}

// Tail writes the last N entries to io.Writer.
func (l *Logger) Tail(output io.Writer, number int) {
	l.crit.Lock()
	defer l.crit.Unlock()

	// cap number to the number of entries
	if number > len(l.entries) {
		number = len(l.entries)
	}

	for _, e := range l.entries[len(l.entries)-number:] {
		io.WriteString(output, e.String())
	}
}

// SetEcho writes new log entries to io.Writer as they are made. A nil
// value stops the echo.
func (l *Logger) SetEcho(output io.Writer) {
	l.crit.Lock()
	defer l.crit.Unlock()
	l.echo = output
}

// Count returns the number of entries at the specified level.
func (l *Logger) Count(lvl Level) int {
	l.crit.Lock()
	defer l.crit.Unlock()
	n := 0
	for _, e := range l.entries {
		if e.Level == lvl {
			n++
		}
	}
	return n
}
