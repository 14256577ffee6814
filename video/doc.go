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

// Package video owns the emulated VGA display. A Context brings together the
// negotiated geometry, the VGA memory, the palette engine, the frame pacer
// and the active renderer backend.
//
// SetMode() creates the window and the renderer. If the requested backend
// cannot be initialised the context falls back to the software backend. If
// that also fails SetMode() returns an error that matches ErrNoRenderer and
// the program cannot continue.
//
// A Context is not safe for concurrent use. All functions that change the
// lifecycle of the context must be called from the goroutine that created
// it.
package video
