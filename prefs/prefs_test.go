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

package prefs_test

import (
	"errors"
	"testing"

	"github.com/retrovga/vgavideo/prefs"
	"github.com/retrovga/vgavideo/test"
)

func TestBool(t *testing.T) {
	var v prefs.Bool
	test.ExpectEquality(t, v.String(), "false")
	test.ExpectFailure(t, v.IsSet())

	test.ExpectSuccess(t, v.Set(true))
	test.ExpectEquality(t, v.Get().(bool), true)
	test.ExpectSuccess(t, v.IsSet())

	test.ExpectSuccess(t, v.Set("foo"))
	test.ExpectEquality(t, v.Get().(bool), false)

	test.ExpectSuccess(t, v.Set("TRUE"))
	test.ExpectEquality(t, v.String(), "true")

	test.ExpectFailure(t, v.Set(10))

	test.ExpectSuccess(t, v.Reset())
	test.ExpectFailure(t, v.IsSet())
}

func TestString(t *testing.T) {
	var v prefs.String
	test.ExpectSuccess(t, v.Set("800x600"))
	test.ExpectEquality(t, v.String(), "800x600")

	v.SetMaxLen(3)
	test.ExpectSuccess(t, v.Set("software"))
	test.ExpectEquality(t, v.String(), "sof")
}

func TestInt(t *testing.T) {
	var v prefs.Int
	test.ExpectSuccess(t, v.Set(10))
	test.ExpectEquality(t, v.Get().(int), 10)

	// string conversion to int
	test.ExpectSuccess(t, v.Set(" 99 "))
	test.ExpectEquality(t, v.String(), "99")

	test.ExpectFailure(t, v.Set("---"))
	test.ExpectFailure(t, v.Set(1.0))

	// range clamping
	v.SetRange(1, 8)
	test.ExpectSuccess(t, v.Set(0))
	test.ExpectEquality(t, v.Get().(int), 1)
	test.ExpectSuccess(t, v.Set(100))
	test.ExpectEquality(t, v.Get().(int), 8)
}

func TestHooks(t *testing.T) {
	var v prefs.Int
	var post int

	v.SetHookPre(func(nv prefs.Value) error {
		if nv.(int) < 0 {
			return errors.New("negative")
		}
		return nil
	})
	v.SetHookPost(func(nv prefs.Value) error {
		post = nv.(int)
		return nil
	})

	test.ExpectSuccess(t, v.Set(5))
	test.ExpectEquality(t, post, 5)

	// pre hook vetoes the value
	test.ExpectFailure(t, v.Set(-1))
	test.ExpectEquality(t, v.Get().(int), 5)
	test.ExpectEquality(t, post, 5)
}

func TestGroup(t *testing.T) {
	var windowed prefs.Bool
	var scale prefs.Int
	var renderer prefs.String

	grp := prefs.NewGroup()
	test.ExpectSuccess(t, grp.Add("vid_windowed", &windowed))
	test.ExpectSuccess(t, grp.Add("vid_scale", &scale))
	test.ExpectSuccess(t, grp.Add("vid_renderer", &renderer))
	test.ExpectFailure(t, grp.Add("vid_scale", &scale))

	prefs.PushCommandLineStack("vid_windowed::true; vid_scale::3; other::value")
	test.ExpectSuccess(t, grp.Load())

	// unused values remain on the command line stack
	test.ExpectEquality(t, prefs.PopCommandLineStack(), "other::value")

	test.ExpectEquality(t, windowed.Get().(bool), true)
	test.ExpectEquality(t, scale.Get().(int), 3)
	test.ExpectFailure(t, renderer.IsSet())
	test.ExpectEquality(t, grp.String(), "vid_scale::3; vid_windowed::true")

	// conversion errors are reported
	prefs.PushCommandLineStack("vid_scale::big")
	test.ExpectFailure(t, grp.Load())
	prefs.PopCommandLineStack()

	test.ExpectSuccess(t, grp.Reset())
	test.ExpectEquality(t, grp.String(), "")
}
