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

// Package logger is the central log for the video layer. Every entry has a
// tag, a level and a detail. Repeated entries are collapsed into a single
// entry with a repeat count.
//
// Entries are only made if the Permission argument allows it. Use
// logger.Allow if the entry should always be made. A Limit created with
// NewLimit() allows a fixed number of entries, which keeps errors that can
// happen on every frame from flooding the log.
//
// The package level functions log to a single central logger. Isolated
// loggers can be created with NewLogger(), which is useful for testing.
package logger
