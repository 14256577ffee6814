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

// vgademo opens a VGA display and draws a test pattern. It is useful for
// checking that a renderer works on a host.
//
// The default RUN mode animates the pattern until the window is closed or
// the escape key is pressed. The INFO mode prints the desktop display mode
// and the available renderers.
package main

import (
	"fmt"
	"image/png"
	"os"
	"os/signal"
	"strings"
	"sync/atomic"
	"time"

	"github.com/bradleyjkemp/memviz"
	"github.com/retrovga/vgavideo/curated"
	"github.com/retrovga/vgavideo/limiter"
	"github.com/retrovga/vgavideo/logger"
	"github.com/retrovga/vgavideo/modalflag"
	"github.com/retrovga/vgavideo/palette"
	"github.com/retrovga/vgavideo/platform"
	"github.com/retrovga/vgavideo/platform/sdlplatform"
	"github.com/retrovga/vgavideo/prefs"
	"github.com/retrovga/vgavideo/renderer"
	"github.com/retrovga/vgavideo/renderer/backends"
	"github.com/retrovga/vgavideo/renderer/headless"
	"github.com/retrovga/vgavideo/statsview"
	"github.com/retrovga/vgavideo/version"
	"github.com/retrovga/vgavideo/video"
	"github.com/veandco/go-sdl2/sdl"
)

// desktop mode reported by the headless platform.
var headlessDesktop = platform.DisplayMode{Width: 1920, Height: 1080, RefreshRate: 60}

// number of frames to run for with the headless renderer when no frame count
// has been specified.
const headlessFrames = 70

// exit values.
const (
	exitFlags    = 10
	exitMode     = 20
	exitRenderer = 30
)

// #mainthread
func main() {
	md := &modalflag.Modes{Output: os.Stdout}
	md.NewArgs(os.Args[1:])
	md.AddSubModes("RUN", "INFO")
	md.AdditionalHelp(fmt.Sprintf("%s %s", version.ApplicationName, versionString()))

	p, err := md.Parse()
	switch p {
	case modalflag.ParseHelp:
		return
	case modalflag.ParseError:
		fmt.Printf("* error: %v\n", err)
		os.Exit(exitFlags)
	}

	switch md.Mode() {
	case "INFO":
		err = info(md)
	default:
		err = run(md)
	}

	if err != nil {
		fmt.Printf("* error in %s mode: %v\n", md, err)
		if curated.Is(err, video.ErrNoRenderer) {
			fmt.Println("* no renderer is available on this host. try -renderer headless")
			os.Exit(exitRenderer)
		}
		os.Exit(exitMode)
	}
}

func versionString() string {
	v, r, release := version.Version()
	if release {
		return v
	}
	return fmt.Sprintf("%s (%s)", v, r)
}

func info(md *modalflag.Modes) error {
	md.NewMode()
	p, err := md.Parse()
	if err != nil || p != modalflag.ParseContinue {
		return err
	}

	fmt.Printf("%s %s\n", version.ApplicationName, versionString())

	plt, err := sdlplatform.NewPlatform()
	if err != nil {
		return err
	}
	defer plt.Quit()

	mode, err := plt.DesktopMode()
	if err != nil {
		return err
	}
	fmt.Printf("desktop: %dx%d @ %dHz\n", mode.Width, mode.Height, mode.RefreshRate)

	kinds := []renderer.Kind{renderer.Software, renderer.Accelerated, renderer.Headless}
	names := make([]string, 0, len(kinds))
	for _, k := range kinds {
		names = append(names, k.String())
	}
	fmt.Printf("renderers: %s\n", strings.Join(names, ", "))
	fmt.Printf("statsview: %v\n", statsview.Available())

	return nil
}

func run(md *modalflag.Modes) error {
	md.NewMode()
	prefsOverride := md.AddString("prefs", "", "preferences for this session (eg. \"vid_windowed::true; vid_scale::2\")")
	rendererName := md.AddString("renderer", "", "renderer to use: auto, soft, ogl, headless")
	frames := md.AddInt("frames", 0, "number of frames to run for (0 runs until quit)")
	log := md.AddBool("log", false, "echo log to stdout")
	stats := md.AddBool("statsview", false, fmt.Sprintf("run stats server (%s)", statsview.DefaultAddress))
	memvizFile := md.AddString("memviz", "", "write graph of the video configuration to file (dot format)")
	screenshotFile := md.AddString("screenshot", "", "save final frame to file (PNG format)")

	p, err := md.Parse()
	if err != nil || p != modalflag.ParseContinue {
		return err
	}

	if *log {
		logger.SetEcho(os.Stdout)
	} else {
		logger.SetEcho(nil)
	}

	if *stats {
		if !statsview.Available() {
			return fmt.Errorf("statsview not available in this build")
		}
		stop := statsview.Launch(os.Stdout, "")
		defer stop()
	}

	// the renderer flag is added to the prefs override. an explicit
	// vid_renderer in the override takes precedence
	override := *prefsOverride
	if *rendererName != "" {
		override = fmt.Sprintf("vid_renderer::%s; %s", *rendererName, override)
	}
	prefs.PushCommandLineStack(override)

	prf, err := video.NewPreferences()
	if err != nil {
		return err
	}

	if unused := prefs.PopCommandLineStack(); unused != "" {
		logger.Logf(logger.Allow, "vgademo", "unused preferences: %s", unused)
	}

	cfg := prf.Resolve()

	if cfg.Renderer == renderer.Headless {
		if *frames == 0 {
			*frames = headlessFrames
		}
		return demo(headless.NewPlatform(headlessDesktop), prf, nil, *frames, *memvizFile, *screenshotFile)
	}

	plt, err := sdlplatform.NewPlatform()
	if err != nil {
		return err
	}
	defer plt.Quit()

	return demo(plt, prf, pollSDL, *frames, *memvizFile, *screenshotFile)
}

// input requested by the user.
type input int

const (
	inputNone input = iota
	inputQuit
	inputStretch
	inputGrab
	inputMinimize
)

// pollSDL returns the next input from the SDL event queue.
func pollSDL() input {
	for ev := sdl.PollEvent(); ev != nil; ev = sdl.PollEvent() {
		switch ev := ev.(type) {
		case *sdl.QuitEvent:
			return inputQuit
		case *sdl.KeyboardEvent:
			if ev.Type != sdl.KEYDOWN {
				continue
			}
			switch ev.Keysym.Sym {
			case sdl.K_ESCAPE:
				return inputQuit
			case sdl.K_s:
				return inputStretch
			case sdl.K_g:
				return inputGrab
			case sdl.K_m:
				return inputMinimize
			}
		}
	}
	return inputNone
}

func demo(plt platform.Platform, prf *video.Preferences, poll func() input, frames int, memvizFile string, screenshotFile string) error {
	var opts []video.Option
	opts = append(opts, video.WithTitle(version.Title()))
	opts = append(opts, video.WithBackendFactory(backends.New))

	// the game timer runs for as long as the demo
	done := make(chan bool)
	defer close(done)

	if _, ok := plt.(*sdlplatform.Platform); ok {
		var timerTicks atomic.Uint32
		go func() {
			pulse := time.NewTicker(time.Second / limiter.TickBase)
			defer pulse.Stop()
			for {
				select {
				case <-done:
					return
				case <-pulse.C:
					timerTicks.Store(sdl.GetTicks())
				}
			}
		}()
		opts = append(opts, video.WithClock(sdlplatform.Clock{TimerTicksFunc: timerTicks.Load}))
	} else {
		clk := limiter.NewSystemClock()
		go clk.RunTimer(limiter.TickBase, done)
		opts = append(opts, video.WithClock(clk))
	}

	ctx, err := video.NewContext(plt, prf, opts...)
	if err != nil {
		return err
	}
	defer ctx.Shutdown()

	err = ctx.SetMode()
	if err != nil {
		return err
	}

	logger.Logf(logger.Allow, "vgademo", "renderer: %s (vsync %v)", ctx.Backend().Kind(), ctx.HasVSync())

	if memvizFile != "" {
		err = writeMemviz(memvizFile, ctx)
		if err != nil {
			return err
		}
	}

	intChan := make(chan os.Signal, 1)
	signal.Notify(intChan, os.Interrupt)
	defer signal.Reset(os.Interrupt)

	mem := ctx.Memory()
	pal := ctx.Palette()

	// draw to the second page and present the first
	mem.BufferOffset = mem.PageSize()
	mem.DisplayOffset = 0

	pattern(ctx, 0)
	ctx.UpdateScreen()

	err = pal.FadeIn(0, palette.Entries-1, palette.Default(), 30)
	if err != nil {
		return err
	}

	mtr := limiter.NewFrameMeter()
	defer mtr.Stop()

	stretch := ctx.Config().Stretch
	grab := true
	minimized := false

loop:
	for frame := 1; frames == 0 || frame < frames; frame++ {
		select {
		case <-intChan:
			break loop
		default:
		}

		if poll != nil {
			switch poll() {
			case inputQuit:
				break loop
			case inputStretch:
				stretch = !stretch
				ctx.SetStretch(stretch)
			case inputGrab:
				grab = !grab
				ctx.GrabPointer(grab)
			case inputMinimize:
				minimized = !minimized
				ctx.MinimizeWindow(minimized)
			}
		}

		pattern(ctx, frame)
		ctx.UpdateScreen()
		ctx.WaitVBL(1)
		mtr.Frame()
	}

	logger.Logf(logger.Allow, "vgademo", "%.1f frames per second", mtr.Rate())

	if screenshotFile != "" {
		err = writeScreenshot(screenshotFile, ctx)
		if err != nil {
			return err
		}
	}

	return pal.FadeOut(0, palette.Entries-1, 0, 0, 0, 30)
}

// pattern draws the test pattern to the back buffer. The frame number moves
// the bar that crosses the pattern.
func pattern(ctx *video.Context, frame int) {
	mem := ctx.Memory()
	g := ctx.Geometry()

	w := g.ReferenceWidth
	h := g.ReferenceHeight

	mem.Bar(0, 0, w, h, 0)

	// the sixteen EGA colours across the top half
	bw := w / 16
	for i := 0; i < 16; i++ {
		mem.Bar(i*bw, 0, bw, h/2, uint8(i))
	}

	// the grey ramp across the bottom half
	for x := 0; x < w; x++ {
		mem.Vline(x, h/2, h/2, uint8(232+x*24/w))
	}

	// border
	mem.Hline(0, 0, w, 15)
	mem.Hline(0, h-1, w, 15)
	mem.Vline(0, 0, h, 15)
	mem.Vline(w-1, 0, h, 15)

	// moving bar from the colour cube
	x := frame % (w - 16)
	mem.Bar(x, h/2-8, 16, 16, uint8(16+frame%216))
}

func writeScreenshot(filename string, ctx *video.Context) error {
	img, err := ctx.Screenshot()
	if err != nil {
		return err
	}

	f, err := os.Create(filename)
	if err != nil {
		return fmt.Errorf("screenshot: %w", err)
	}

	err = png.Encode(f, img)
	if err != nil {
		_ = f.Close()
		return fmt.Errorf("screenshot: %w", err)
	}

	err = f.Close()
	if err != nil {
		return fmt.Errorf("screenshot: %w", err)
	}

	logger.Logf(logger.Allow, "vgademo", "screenshot saved to %s", filename)
	return nil
}

func writeMemviz(filename string, ctx *video.Context) error {
	f, err := os.Create(filename)
	if err != nil {
		return fmt.Errorf("memviz: %w", err)
	}

	g := ctx.Geometry()
	cfg := ctx.Config()
	memviz.Map(f, &g, &cfg)

	err = f.Close()
	if err != nil {
		return fmt.Errorf("memviz: %w", err)
	}

	return nil
}
