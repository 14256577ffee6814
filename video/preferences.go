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

package video

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/retrovga/vgavideo/geometry"
	"github.com/retrovga/vgavideo/logger"
	"github.com/retrovga/vgavideo/prefs"
	"github.com/retrovga/vgavideo/renderer"
)

// Preferences for the video context. Values are taken from the command line
// prefs stack.
type Preferences struct {
	grp *prefs.Group

	Windowed prefs.Bool
	WindowX  prefs.Int
	WindowY  prefs.Int
	Mode     prefs.String
	Scale    prefs.Int
	Renderer prefs.String
	Stretch  prefs.Bool
}

func (p *Preferences) String() string {
	return p.grp.String()
}

// maximum explicit scale
const maxScale = 32

// NewPreferences is the preferred method of initialisation for the
// Preferences type. Values on the top of the command line prefs stack are
// loaded.
func NewPreferences() (*Preferences, error) {
	p := &Preferences{
		grp: prefs.NewGroup(),
	}

	p.Mode.SetMaxLen(16)
	p.Renderer.SetMaxLen(16)
	p.Scale.SetRange(0, maxScale)

	for _, e := range []struct {
		key  string
		pref prefs.Pref
	}{
		{"vid_windowed", &p.Windowed},
		{"vid_window_x", &p.WindowX},
		{"vid_window_y", &p.WindowY},
		{"vid_mode", &p.Mode},
		{"vid_scale", &p.Scale},
		{"vid_renderer", &p.Renderer},
		{"vid_stretch", &p.Stretch},
	} {
		if err := p.grp.Add(e.key, e.pref); err != nil {
			return nil, err
		}
	}

	if err := p.SetDefaults(); err != nil {
		return nil, err
	}

	if err := p.Load(); err != nil {
		return nil, err
	}

	return p, nil
}

// SetDefaults reverts all preferences to their default values.
func (p *Preferences) SetDefaults() error {
	if err := p.grp.Reset(); err != nil {
		return err
	}
	return p.Mode.Set(fmt.Sprintf("%dx%d", geometry.DefaultWindowWidth, geometry.DefaultWindowHeight))
}

// Load values from the command line prefs stack.
func (p *Preferences) Load() error {
	return p.grp.Load()
}

// Config is the resolved form of the Preferences.
type Config struct {
	Windowed bool

	// the window position is only used if CustomPosition is true
	CustomPosition bool
	WindowX        int
	WindowY        int

	WindowWidth  int
	WindowHeight int

	// zero means that the scale will be negotiated
	Scale int

	Renderer renderer.Kind
	Stretch  bool
}

// ParseMode parses a window size in the form WxH.
func ParseMode(mode string) (int, int, bool) {
	w, h, ok := strings.Cut(strings.ToLower(strings.TrimSpace(mode)), "x")
	if !ok {
		return 0, 0, false
	}
	width, err := strconv.Atoi(w)
	if err != nil {
		return 0, 0, false
	}
	height, err := strconv.Atoi(h)
	if err != nil {
		return 0, 0, false
	}
	return width, height, true
}

// Resolve the preferences into a Config. A window size that cannot be parsed
// or that is smaller than the reference resolution is replaced with the
// default window size. An unknown renderer name is replaced with auto.
func (p *Preferences) Resolve() Config {
	cfg := Config{
		Windowed:       p.Windowed.Get().(bool),
		CustomPosition: p.WindowX.IsSet() || p.WindowY.IsSet(),
		WindowX:        p.WindowX.Get().(int),
		WindowY:        p.WindowY.Get().(int),
		Scale:          p.Scale.Get().(int),
		Stretch:        p.Stretch.Get().(bool),
	}

	var ok bool
	cfg.WindowWidth, cfg.WindowHeight, ok = ParseMode(p.Mode.String())
	if !ok || cfg.WindowWidth < geometry.ReferenceWidth || cfg.WindowHeight < geometry.ReferenceHeight {
		logger.Warnf(logger.Allow, tag, "unsupported window size (%s). using %dx%d", p.Mode.String(),
			geometry.DefaultWindowWidth, geometry.DefaultWindowHeight)
		cfg.WindowWidth = geometry.DefaultWindowWidth
		cfg.WindowHeight = geometry.DefaultWindowHeight
	}

	cfg.Renderer, ok = renderer.ParseKind(p.Renderer.String())
	if !ok {
		logger.Warnf(logger.Allow, tag, "unsupported renderer (%s). using auto", p.Renderer.String())
	}

	return cfg
}
