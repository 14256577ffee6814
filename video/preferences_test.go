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

package video_test

import (
	"strings"
	"testing"

	"github.com/retrovga/vgavideo/prefs"
	"github.com/retrovga/vgavideo/renderer"
	"github.com/retrovga/vgavideo/test"
	"github.com/retrovga/vgavideo/video"
)

func resolve(t *testing.T, prefsString string) video.Config {
	t.Helper()

	prefs.PushCommandLineStack(prefsString)
	defer prefs.PopCommandLineStack()

	prf, err := video.NewPreferences()
	test.DemandSuccess(t, err)

	return prf.Resolve()
}

func TestDefaultPreferences(t *testing.T) {
	cfg := resolve(t, "")
	test.ExpectEquality(t, cfg, video.Config{
		WindowWidth:  640,
		WindowHeight: 480,
		Renderer:     renderer.Auto,
	})
}

func TestPreferences(t *testing.T) {
	cfg := resolve(t, "vid_windowed::true; vid_scale::2; vid_renderer::soft; vid_mode::800x600; vid_window_x::10; vid_window_y::20; vid_stretch::true")
	test.ExpectEquality(t, cfg, video.Config{
		Windowed:       true,
		CustomPosition: true,
		WindowX:        10,
		WindowY:        20,
		WindowWidth:    800,
		WindowHeight:   600,
		Scale:          2,
		Renderer:       renderer.Software,
		Stretch:        true,
	})
}

func TestPreferencesFallbacks(t *testing.T) {
	// undersized
	cfg := resolve(t, "vid_mode::300x200")
	test.ExpectEquality(t, cfg.WindowWidth, 640)
	test.ExpectEquality(t, cfg.WindowHeight, 480)

	// not a size
	cfg = resolve(t, "vid_mode::large")
	test.ExpectEquality(t, cfg.WindowWidth, 640)
	test.ExpectEquality(t, cfg.WindowHeight, 480)

	// unknown renderer
	cfg = resolve(t, "vid_renderer::vulkan")
	test.ExpectEquality(t, cfg.Renderer, renderer.Auto)

	// scale is clamped
	cfg = resolve(t, "vid_scale::1000")
	test.ExpectEquality(t, cfg.Scale, 32)

	// one coordinate is enough for a custom position
	cfg = resolve(t, "vid_window_y::5")
	test.ExpectEquality(t, cfg.CustomPosition, true)
	test.ExpectEquality(t, cfg.WindowX, 0)
}

func TestPreferencesBadValue(t *testing.T) {
	prefs.PushCommandLineStack("vid_scale::two")
	defer prefs.PopCommandLineStack()

	_, err := video.NewPreferences()
	test.ExpectFailure(t, err)
	test.ExpectSuccess(t, strings.Contains(err.Error(), "vid_scale"))
}

func TestPreferencesString(t *testing.T) {
	prefs.PushCommandLineStack("vid_windowed::true; vid_renderer::ogl")
	defer prefs.PopCommandLineStack()

	prf, err := video.NewPreferences()
	test.DemandSuccess(t, err)
	test.ExpectEquality(t, prf.String(), "vid_mode::640x480; vid_renderer::ogl; vid_windowed::true")

	// values are consumed from the stack
	test.ExpectEquality(t, prefs.PopCommandLineStack(), "")
	prefs.PushCommandLineStack("")
}

func TestParseMode(t *testing.T) {
	tests := []struct {
		mode string
		w, h int
		ok   bool
	}{
		{"640x480", 640, 480, true},
		{" 1024X768 ", 1024, 768, true},
		{"640", 0, 0, false},
		{"axb", 0, 0, false},
		{"640x", 0, 0, false},
	}

	for _, tc := range tests {
		w, h, ok := video.ParseMode(tc.mode)
		test.ExpectEquality(t, w, tc.w, tc.mode)
		test.ExpectEquality(t, h, tc.h, tc.mode)
		test.ExpectEquality(t, ok, tc.ok, tc.mode)
	}
}
