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

package curated

import (
	"errors"
	"fmt"
	"strings"
)

// separator between the parts of an error message chain.
const separator = ": "

type curated struct {
	pattern string
	values  []any
}

// Errorf creates a new curated error. The pattern is a fmt formatting string.
// It is kept with the error so that it can be tested for with Is() and Has().
func Errorf(pattern string, values ...any) error {
	return curated{
		pattern: pattern,
		values:  values,
	}
}

// Error implements the error interface. When the message begins with the
// same part twice, as happens when an error is wrapped by an error with the
// same prefix, the first part is dropped.
func (er curated) Error() string {
	s := fmt.Sprintf(er.pattern, er.values...)

	head, rest, ok := strings.Cut(s, separator)
	if ok && (rest == head || strings.HasPrefix(rest, head+separator)) {
		return rest
	}

	return s
}

// Unwrap returns the error values of the curated error. Used by errors.Is()
// and errors.As().
func (er curated) Unwrap() []error {
	var wrapped []error
	for _, v := range er.values {
		if e, ok := v.(error); ok {
			wrapped = append(wrapped, e)
		}
	}
	return wrapped
}

// Is returns true if the outermost curated error in err was created with the
// pattern. Curated errors wrapped by the fmt package are found.
func Is(err error, pattern string) bool {
	var er curated
	if !errors.As(err, &er) {
		return false
	}
	return er.pattern == pattern
}

// Has returns true if any curated error in the chain of err was created with
// the pattern.
func Has(err error, pattern string) bool {
	if err == nil {
		return false
	}

	if er, ok := err.(curated); ok && er.pattern == pattern {
		return true
	}

	switch e := err.(type) {
	case interface{ Unwrap() []error }:
		for _, w := range e.Unwrap() {
			if Has(w, pattern) {
				return true
			}
		}
	case interface{ Unwrap() error }:
		return Has(e.Unwrap(), pattern)
	}

	return false
}
