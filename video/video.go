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
	"github.com/retrovga/vgavideo/assert"
	"github.com/retrovga/vgavideo/curated"
	"github.com/retrovga/vgavideo/geometry"
	"github.com/retrovga/vgavideo/limiter"
	"github.com/retrovga/vgavideo/logger"
	"github.com/retrovga/vgavideo/palette"
	"github.com/retrovga/vgavideo/platform"
	"github.com/retrovga/vgavideo/renderer"
	"github.com/retrovga/vgavideo/renderer/headless"
	"github.com/retrovga/vgavideo/vga"
)

const tag = "vid"

// Sentinal error patterns.
const (
	ErrNoRenderer = "vid: failed to initialise a renderer: %v"
	ErrNoMode     = "vid: mode not set"
)

// BackendFactory creates a backend of the requested kind. The kind will never
// be renderer.Auto.
type BackendFactory func(kind renderer.Kind) (renderer.Backend, error)

// HeadlessFactory creates headless backends only.
func HeadlessFactory(kind renderer.Kind) (renderer.Backend, error) {
	if kind != renderer.Headless {
		return nil, curated.Errorf(renderer.KindError, kind)
	}
	return headless.NewBackend(), nil
}

// Option configures a Context.
type Option func(ctx *Context)

// WithBackendFactory sets the function used to create backends. The default
// factory is HeadlessFactory.
func WithBackendFactory(f BackendFactory) Option {
	return func(ctx *Context) {
		ctx.factory = f
	}
}

// WithClock sets the clock used for vertical sync detection and for pacing.
// The default clock is a limiter.SystemClock.
func WithClock(clock limiter.Clock) Option {
	return func(ctx *Context) {
		ctx.clock = clock
	}
}

// WithTitle sets the title of the window.
func WithTitle(title string) Option {
	return func(ctx *Context) {
		ctx.title = title
	}
}

// Context is the video context.
type Context struct {
	owner assert.Owner

	plt     platform.Platform
	prefs   *Preferences
	factory BackendFactory
	clock   limiter.Clock
	title   string

	cfg     Config
	desktop platform.DisplayMode
	geom    geometry.Geometry

	mem   *vga.Memory
	pal   *palette.Engine
	pacer *limiter.Pacer

	backend renderer.Backend
	win     platform.Window
}

// NewContext is the preferred method of initialisation for the Context type.
// The goroutine calling NewContext() owns the context.
func NewContext(plt platform.Platform, prf *Preferences, opts ...Option) (*Context, error) {
	if prf == nil {
		var err error
		prf, err = NewPreferences()
		if err != nil {
			return nil, err
		}
	}

	ctx := &Context{
		owner:   assert.NewOwner(),
		plt:     plt,
		prefs:   prf,
		factory: HeadlessFactory,
		title:   "vgavideo",
	}

	for _, o := range opts {
		o(ctx)
	}

	if ctx.clock == nil {
		ctx.clock = limiter.NewSystemClock()
	}

	ctx.mem = vga.NewMemory(ctx.geom)
	ctx.pacer = limiter.NewPacer(ctx.clock)
	ctx.pal = palette.NewEngine(ctx, ctx)

	return ctx, nil
}

// SetMode creates the window and the renderer, and allocates the VGA memory.
// The VGA memory and the palette are cleared. Any previous mode is shut down
// first.
//
// An error matching ErrNoRenderer means that no renderer could be created.
func (ctx *Context) SetMode() error {
	ctx.owner.Check("SetMode")

	ctx.Shutdown()

	err := ctx.initializeVideo()
	if err != nil {
		return err
	}

	ctx.mem.Allocate(ctx.geom)
	ctx.pal.Reset()
	ctx.PaletteChanged(0, palette.Entries, ctx.pal.Current(), false)
	ctx.RefreshScreen()

	ctx.pacer.HasVSync = limiter.DetectVSync(ctx.backend.DrawScreen, ctx.desktop.RefreshRate, ctx.clock)
	if ctx.pacer.HasVSync {
		logger.Log(logger.Allow, tag, "vertical sync detected")
	} else {
		logger.Log(logger.Allow, tag, "no vertical sync")
	}

	return nil
}

// negotiate the geometry and run the initialisation for the configured
// renderer, falling back to the software renderer if required.
func (ctx *Context) initializeVideo() error {
	ctx.cfg = ctx.prefs.Resolve()

	var err error
	ctx.desktop, err = ctx.plt.DesktopMode()
	if err != nil {
		logger.Error(logger.Allow, tag, err)
		return curated.Errorf(ErrNoRenderer, err)
	}

	ctx.geom = geometry.Negotiate(geometry.Request{
		Windowed:      ctx.cfg.Windowed,
		WindowWidth:   ctx.cfg.WindowWidth,
		WindowHeight:  ctx.cfg.WindowHeight,
		DesktopWidth:  ctx.desktop.Width,
		DesktopHeight: ctx.desktop.Height,
		Scale:         ctx.cfg.Scale,
		Stretch:       ctx.cfg.Stretch,
	})

	logger.Logf(logger.Allow, tag, "window: %dx%d", ctx.geom.WindowWidth, ctx.geom.WindowHeight)
	logger.Logf(logger.Allow, tag, "scale: %d (%dx%d)", ctx.geom.Scale, ctx.geom.VGAWidth, ctx.geom.VGAHeight)
	logger.Logf(logger.Allow, tag, "screen: %dx%d at %d,%d", ctx.geom.Screen.W, ctx.geom.Screen.H, ctx.geom.Screen.X, ctx.geom.Screen.Y)

	kind := ctx.cfg.Renderer.Resolve()

	err = ctx.xInitializeVideo(kind)
	if err != nil && kind != renderer.Software {
		logger.Warn(logger.Allow, tag, "falling back to software renderer")
		err = ctx.xInitializeVideo(renderer.Software)
	}
	if err != nil {
		logger.Error(logger.Allow, tag, "failed to initialise a renderer")
		return curated.Errorf(ErrNoRenderer, err)
	}

	if si, ok := ctx.backend.(renderer.SwapInterval); ok {
		err = si.SetSwapInterval(1)
		if err != nil {
			logger.Warnf(logger.Allow, tag, "failed to enable vertical sync: %v", err)
		}
	}

	ctx.GrabPointer(true)

	return nil
}

// one attempt at initialisation for a kind of backend. on failure everything
// created by the attempt is released.
func (ctx *Context) xInitializeVideo(kind renderer.Kind) error {
	logger.Logf(logger.Allow, tag, "initialising %s renderer", kind)

	bck, err := ctx.factory(kind)
	if err != nil {
		logger.Error(logger.Allow, tag, err)
		return err
	}
	ctx.backend = bck

	err = ctx.createPipeline()
	if err != nil {
		logger.Errorf(logger.Allow, tag, "%s renderer: %v", kind, err)
		ctx.uninitialize()
		ctx.backend = nil
		return err
	}

	return nil
}

func (ctx *Context) createPipeline() error {
	err := ctx.backend.PreSubsystemCreation()
	if err != nil {
		return err
	}

	err = ctx.backend.PreWindowCreation()
	if err != nil {
		return err
	}

	x, y := ctx.geom.WindowPosition(ctx.desktop.Width, ctx.desktop.Height,
		ctx.cfg.CustomPosition, ctx.cfg.WindowX, ctx.cfg.WindowY)

	flags := ctx.backend.WindowFlags() | platform.FlagShown
	if !ctx.cfg.Windowed {
		flags |= platform.FlagBorderless | platform.FlagFullscreenDesktop
	}

	ctx.win, err = ctx.plt.CreateWindow(ctx.title, x, y, ctx.geom.WindowWidth, ctx.geom.WindowHeight, flags)
	if err != nil {
		return err
	}

	return ctx.backend.InitializeRenderer(ctx.win, renderer.Environment{
		Geometry: &ctx.geom,
		Memory:   ctx.mem,
		Palette:  ctx.pal.Current,
	})
}

// release the backend and the window.
func (ctx *Context) uninitialize() {
	if ctx.backend != nil {
		ctx.backend.Uninitialize()
	}

	if ctx.win != nil {
		err := ctx.win.Destroy()
		if err != nil {
			logger.Errorf(logger.Allow, tag, "destroying window: %v", err)
		}
		ctx.win = nil
	}
}

// Shutdown releases the renderer and the window. It is safe to call Shutdown()
// more than once.
func (ctx *Context) Shutdown() {
	ctx.owner.Check("Shutdown")
	ctx.uninitialize()
	ctx.backend = nil
}

// Memory returns the VGA memory.
func (ctx *Context) Memory() *vga.Memory {
	return ctx.mem
}

// Palette returns the palette engine.
func (ctx *Context) Palette() *palette.Engine {
	return ctx.pal
}

// Geometry returns the geometry negotiated by the most recent SetMode().
func (ctx *Context) Geometry() geometry.Geometry {
	return ctx.geom
}

// Config returns the configuration used by the most recent SetMode().
func (ctx *Context) Config() Config {
	return ctx.cfg
}

// Backend returns the active backend. Returns nil if there is no mode set.
func (ctx *Context) Backend() renderer.Backend {
	return ctx.backend
}

// HasVSync returns true if presentation was found to be synchronised with the
// display.
func (ctx *Context) HasVSync() bool {
	return ctx.pacer.HasVSync
}
