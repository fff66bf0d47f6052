// Package window opens a GLFW window with an OpenGL context and forwards its
// events to an input.Dispatcher.
package window

import (
	"github.com/go-gl/glfw/v3.3/glfw"
	"github.com/pkg/errors"

	"github.com/sol-prog/OpenGL-101/internal/config"
	"github.com/sol-prog/OpenGL-101/internal/input"
)

var (
	ErrInit      = errors.New("failed to initialize glfw")
	ErrCreate    = errors.New("failed to open a window")
	ErrLoader    = errors.New("failed to initialize the extension loader")
	ErrNoContext = errors.New("no current context")
)

// Window is a GLFW window whose context is current on the calling thread.
type Window struct {
	w    *glfw.Window
	d    *input.Dispatcher
	done bool
}

type hint struct {
	target glfw.Hint
	value  int
}

func boolHint(v bool) int {
	if v {
		return glfw.True
	}
	return glfw.False
}

// hints returns the window hints for cfg. Context hints are only set when a
// specific version is requested.
func hints(cfg config.Window) []hint {
	hs := []hint{{glfw.Resizable, boolHint(cfg.Resizable)}}
	if !cfg.Versioned() {
		return hs
	}
	hs = append(hs,
		hint{glfw.ContextVersionMajor, cfg.Major},
		hint{glfw.ContextVersionMinor, cfg.Minor},
	)
	if cfg.Core {
		hs = append(hs, hint{glfw.OpenGLProfile, glfw.OpenGLCoreProfile})
	}
	if cfg.ForwardCompat {
		hs = append(hs, hint{glfw.OpenGLForwardCompatible, glfw.True})
	}
	return hs
}

// report forwards a GLFW library error to d.
func report(d *input.Dispatcher, err error) {
	var gerr *glfw.Error
	if errors.As(err, &gerr) {
		d.Error(int(gerr.Code), gerr.Desc)
		return
	}
	d.Error(0, err.Error())
}

// Open initializes GLFW, creates a window as described by cfg and makes its
// context current. Key and size events are delivered to d during PollEvents.
//
// On failure GLFW is left terminated.
func Open(cfg config.Window, d *input.Dispatcher) (*Window, error) {
	if d == nil {
		d = input.NewDispatcher()
	}
	if err := glfw.Init(); err != nil {
		report(d, err)
		return nil, errors.Wrap(ErrInit, err.Error())
	}

	glfw.DefaultWindowHints()
	for _, h := range hints(cfg) {
		glfw.WindowHint(h.target, h.value)
	}

	w, err := glfw.CreateWindow(cfg.Width, cfg.Height, cfg.Title, nil, nil)
	if err != nil {
		report(d, err)
		glfw.Terminate()
		return nil, errors.Wrapf(ErrCreate, "%dx%d: %v", cfg.Width, cfg.Height, err)
	}
	w.MakeContextCurrent()
	glfw.SwapInterval(boolHint(cfg.VSync))

	w.SetSizeCallback(func(_ *glfw.Window, width, height int) {
		d.Resize(width, height)
	})
	w.SetKeyCallback(func(_ *glfw.Window, key glfw.Key, _ int, action glfw.Action, _ glfw.ModifierKey) {
		d.Key(input.Key(key), input.Action(action))
	})

	return &Window{w: w, d: d}, nil
}

// LoadExtensions runs load, which resolves GL entry points for the current
// context, typically gl.Init.
func (w *Window) LoadExtensions(load func() error) error {
	if w == nil || w.done || glfw.GetCurrentContext() != w.w {
		return ErrNoContext
	}
	if err := load(); err != nil {
		return errors.Wrap(ErrLoader, err.Error())
	}
	return nil
}

// Version reports the version of the context actually created.
func (w *Window) Version() (major, minor, rev int) {
	return w.w.GetAttrib(glfw.ContextVersionMajor),
		w.w.GetAttrib(glfw.ContextVersionMinor),
		w.w.GetAttrib(glfw.ContextRevision)
}

func (w *Window) ShouldClose() bool     { return w.w.ShouldClose() }
func (w *Window) SetShouldClose(v bool) { w.w.SetShouldClose(v) }
func (w *Window) SwapBuffers()          { w.w.SwapBuffers() }

// PollEvents processes pending events, running dispatcher handlers inline.
func (w *Window) PollEvents() {
	glfw.PollEvents()
}

// FramebufferSize returns the size of the framebuffer in pixels.
func (w *Window) FramebufferSize() (width, height int) {
	return w.w.GetFramebufferSize()
}

// Terminate destroys the window and shuts GLFW down. Further calls do nothing.
func (w *Window) Terminate() {
	if w == nil || w.done {
		return
	}
	w.done = true
	w.w.Destroy()
	glfw.Terminate()
}
