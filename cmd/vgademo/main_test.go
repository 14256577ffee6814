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

package main

import (
	"image/png"
	"os"
	"path/filepath"
	"testing"

	"github.com/retrovga/vgavideo/prefs"
	"github.com/retrovga/vgavideo/renderer/headless"
	"github.com/retrovga/vgavideo/test"
	"github.com/retrovga/vgavideo/video"
)

func TestHeadlessDemo(t *testing.T) {
	prefs.PushCommandLineStack("vid_renderer::headless; vid_windowed::true; vid_scale::1")
	prf, err := video.NewPreferences()
	prefs.PopCommandLineStack()
	test.DemandSuccess(t, err)

	dir := t.TempDir()
	shot := filepath.Join(dir, "shot.png")
	graph := filepath.Join(dir, "graph.dot")

	plt := headless.NewPlatform(headlessDesktop)
	err = demo(plt, prf, nil, 3, graph, shot)
	test.ExpectSuccess(t, err)

	f, err := os.Open(shot)
	test.DemandSuccess(t, err)
	defer f.Close()

	img, err := png.Decode(f)
	test.DemandSuccess(t, err)
	test.ExpectEquality(t, img.Bounds().Dx(), 640)
	test.ExpectEquality(t, img.Bounds().Dy(), 480)

	_, err = os.Stat(graph)
	test.ExpectSuccess(t, err)

	test.ExpectEquality(t, plt.LastWindow().Destroyed, true)
}
