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

package software

import (
	"errors"
	"strings"
	"testing"

	"github.com/retrovga/vgavideo/logger"
	"github.com/retrovga/vgavideo/test"
)

func TestPresentErrorLimit(t *testing.T) {
	logger.Clear()
	defer logger.Clear()

	bck := NewBackend()
	err := errors.New("texture lost")
	for range presentErrors * 3 {
		bck.presentError("copying texture", err)
	}

	w := &strings.Builder{}
	logger.Write(w)
	test.ExpectEquality(t, w.String(),
		"soft: error: copying texture: texture lost (repeat x8)\n"+
			"soft: warning: further presentation errors will not be logged\n")

	// initialisation and viewport changes allow logging again
	bck.presentLog.Reset()
	bck.presentError("locking texture", err)

	w.Reset()
	logger.Tail(w, 1)
	test.ExpectEquality(t, w.String(), "soft: error: locking texture: texture lost\n")
}
