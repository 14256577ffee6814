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

// Package assert contains checks for conditions that indicate a programming
// error. A failed assertion panics.
package assert

import (
	"bytes"
	"fmt"
	"runtime"
	"strconv"
)

// GetGoRoutineID returns an identify for a goroutine. it returns a result that
// is (a) different between goroutines and (b) consistent for a given
// goroutine. It should only ever be used for debugging or testing purposes.
func GetGoRoutineID() uint64 {
	b := make([]byte, 64)
	b = b[:runtime.Stack(b, false)]
	b = bytes.TrimPrefix(b, []byte("goroutine "))
	b = b[:bytes.IndexByte(b, ' ')]
	n, _ := strconv.ParseUint(string(b), 10, 64)
	return n
}

// Owner records the goroutine that created it. Types that are not safe for
// concurrent use can check that calls are being made from the owning
// goroutine.
//
// The check is relatively expensive and should not be made on a hot path.
type Owner struct {
	id uint64
}

// NewOwner is the preferred method of initialisation for the Owner type. The
// calling goroutine becomes the owner.
func NewOwner() Owner {
	return Owner{id: GetGoRoutineID()}
}

// Check panics if the calling goroutine is not the owner. The operation
// string is used in the panic message.
func (o Owner) Check(operation string) {
	if o.id == 0 {
		return
	}
	if id := GetGoRoutineID(); id != o.id {
		panic(fmt.Sprintf("assert: %s called from goroutine %d but owner is goroutine %d", operation, id, o.id))
	}
}
