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

package assert_test

import (
	"testing"

	"github.com/retrovga/vgavideo/assert"
	"github.com/retrovga/vgavideo/test"
)

func TestOwner(t *testing.T) {
	own := assert.NewOwner()

	// same goroutine. no panic
	own.Check("same")

	done := make(chan any)
	go func() {
		defer func() {
			done <- recover()
		}()
		own.Check("other")
	}()

	r := <-done
	test.ExpectInequality(t, r, nil)
}

func TestZeroOwner(t *testing.T) {
	var own assert.Owner

	done := make(chan any)
	go func() {
		defer func() {
			done <- recover()
		}()
		own.Check("zero")
	}()

	// the zero value does not check
	test.ExpectEquality(t, <-done, nil)
}
