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

// Package curated is a helper package for the plain Go language error type.
// Curated errors implement the error interface.
//
// Curated errors are created with the Errorf() function. This is similar to
// the Errorf() function in the fmt package. It takes a formatting pattern,
// placeholder values and returns an error.
//
// The pattern is what differentiates curated errors. The video layer defines
// its patterns as exported constants so that callers can test for them:
//
//	err := pal.Set(250, 10, colours, false)
//	if curated.Is(err, palette.RangeError) {
//		...
//	}
//
// The Has() function is similar but checks if a pattern occurs somewhere in
// the error chain.
//
//	e := curated.Errorf(palette.RangeError, 250, 10)
//	f := curated.Errorf("vid: %v", e)
//
//	curated.Has(f, palette.RangeError) // true
//	curated.Is(f, palette.RangeError)  // false
//
// Curated errors also support the Unwrap() convention so errors.Is() and
// errors.As() from the standard library see through them to any wrapped
// error value.
//
// The Error() function implementation for curated errors ensures that the
// error chain is normalised. Specifically, that the chain does not contain
// duplicate adjacent parts.
package curated
