// Package sdlwin opens an SDL2 window with an OpenGL context. It is the
// alternative to the GLFW bootstrap in package window and satisfies the same
// frame loop and input interfaces.
package sdlwin

import (
	"log"
	"os"

	"github.com/pkg/errors"
	"github.com/veandco/go-sdl2/sdl"

	"github.com/sol-prog/OpenGL-101/internal/config"
	"github.com/sol-prog/OpenGL-101/internal/input"
)

var (
	ErrInit      = errors.New("failed to initialize sdl")
	ErrCreate    = errors.New("failed to open a window")
	ErrContext   = errors.New("failed to create an OpenGL context")
	ErrLoader    = errors.New("failed to initialize the extension loader")
	ErrNoContext = errors.New("no current context")
)

type Window struct {
	w       *sdl.Window
	ctx     sdl.GLContext
	d       *input.Dispatcher
	closing bool
	done    bool
}

type attr struct {
	name  sdl.GLattr
	value int
}

// attrs returns the GL attributes to set before the window is created.
func attrs(cfg config.Window) []attr {
	as := []attr{{sdl.GL_DOUBLEBUFFER, 1}}
	if !cfg.Versioned() {
		return as
	}
	as = append(as,
		attr{sdl.GL_CONTEXT_MAJOR_VERSION, cfg.Major},
		attr{sdl.GL_CONTEXT_MINOR_VERSION, cfg.Minor},
	)
	if cfg.Core {
		as = append(as, attr{sdl.GL_CONTEXT_PROFILE_MASK, sdl.GL_CONTEXT_PROFILE_CORE})
	}
	if cfg.ForwardCompat {
		as = append(as, attr{sdl.GL_CONTEXT_FLAGS, sdl.GL_CONTEXT_FORWARD_COMPATIBLE_FLAG})
	}
	return as
}

func windowFlags(cfg config.Window) uint32 {
	flags := uint32(sdl.WINDOW_OPENGL | sdl.WINDOW_SHOWN)
	if cfg.Resizable {
		flags |= sdl.WINDOW_RESIZABLE
	}
	return flags
}

// Open initializes SDL video, creates a window as described by cfg and makes
// a new OpenGL context current on it. On failure SDL is shut down.
func Open(cfg config.Window, d *input.Dispatcher) (*Window, error) {
	if d == nil {
		d = input.NewDispatcher()
	}
	if err := sdl.Init(sdl.INIT_VIDEO); err != nil {
		return nil, errors.Wrap(ErrInit, err.Error())
	}

	workingDir, _ := os.Getwd()
	log.Printf("platform: %v CWD:%v", sdl.GetPlatform(), workingDir)
	if mode, err := sdl.GetCurrentDisplayMode(0); err == nil {
		log.Printf("display mode %vx%v@%v", mode.W, mode.H, mode.RefreshRate)
	}

	for _, a := range attrs(cfg) {
		if err := sdl.GLSetAttribute(a.name, a.value); err != nil {
			sdl.Quit()
			return nil, errors.Wrap(ErrContext, err.Error())
		}
	}

	w, err := sdl.CreateWindow(cfg.Title, sdl.WINDOWPOS_UNDEFINED, sdl.WINDOWPOS_UNDEFINED,
		int32(cfg.Width), int32(cfg.Height), windowFlags(cfg))
	if err != nil {
		sdl.Quit()
		return nil, errors.Wrapf(ErrCreate, "%dx%d: %v", cfg.Width, cfg.Height, err)
	}

	ctx, err := w.GLCreateContext()
	if err != nil {
		w.Destroy()
		sdl.Quit()
		return nil, errors.Wrap(ErrContext, err.Error())
	}

	interval := 0
	if cfg.VSync {
		interval = 1
	}
	if err := sdl.GLSetSwapInterval(interval); err != nil {
		log.Printf("sdl: swap interval %d: %v", interval, err)
	}

	return &Window{w: w, ctx: ctx, d: d}, nil
}

// LoadExtensions makes the window's context current and runs load, which
// resolves GL entry points for it, typically gl.Init.
func (w *Window) LoadExtensions(load func() error) error {
	if w == nil || w.done || w.w == nil || w.ctx == nil {
		return ErrNoContext
	}
	if err := w.w.GLMakeCurrent(w.ctx); err != nil {
		return errors.Wrap(ErrNoContext, err.Error())
	}
	if err := load(); err != nil {
		return errors.Wrap(ErrLoader, err.Error())
	}
	return nil
}

// Version reports the version of the context actually created.
func (w *Window) Version() (major, minor int) {
	major, _ = sdl.GLGetAttribute(sdl.GL_CONTEXT_MAJOR_VERSION)
	minor, _ = sdl.GLGetAttribute(sdl.GL_CONTEXT_MINOR_VERSION)
	return major, minor
}

func (w *Window) ShouldClose() bool     { return w.closing }
func (w *Window) SetShouldClose(v bool) { w.closing = v }
func (w *Window) SwapBuffers()          { w.w.GLSwap() }

// PollEvents drains the SDL event queue into the dispatcher.
func (w *Window) PollEvents() {
	for ev := sdl.PollEvent(); ev != nil; ev = sdl.PollEvent() {
		dispatch(w.d, w, ev)
	}
	if err := sdl.GetError(); err != nil {
		w.d.Error(0, err.Error())
		sdl.ClearError()
	}
}

// FramebufferSize returns the size of the drawable in pixels.
func (w *Window) FramebufferSize() (width, height int) {
	dw, dh := w.w.GLGetDrawableSize()
	return int(dw), int(dh)
}

// Terminate releases the context and the window and shuts SDL down. Further
// calls do nothing.
func (w *Window) Terminate() {
	if w == nil || w.done {
		return
	}
	w.done = true
	sdl.GLDeleteContext(w.ctx)
	w.w.Destroy()
	sdl.Quit()
}

func dispatch(d *input.Dispatcher, c input.Closer, ev sdl.Event) {
	switch e := ev.(type) {
	case *sdl.QuitEvent:
		log.Print("SDL Quit")
		c.SetShouldClose(true)
	case *sdl.KeyboardEvent:
		d.Key(keyOf(e.Keysym.Sym), actionOf(e))
	case *sdl.WindowEvent:
		if e.Event == sdl.WINDOWEVENT_SIZE_CHANGED {
			d.Resize(int(e.Data1), int(e.Data2))
		}
	}
}

func keyOf(sym sdl.Keycode) input.Key {
	switch sym {
	case sdl.K_ESCAPE:
		return input.KeyEscape
	}
	if sym > 0 && sym < 0x80 {
		return input.FromRune(rune(sym))
	}
	return input.KeyUnknown
}

func actionOf(e *sdl.KeyboardEvent) input.Action {
	switch {
	case e.Type == sdl.KEYUP:
		return input.Release
	case e.Repeat != 0:
		return input.Repeat
	}
	return input.Press
}
