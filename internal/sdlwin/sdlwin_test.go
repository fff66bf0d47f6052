package sdlwin

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/veandco/go-sdl2/sdl"

	"github.com/sol-prog/OpenGL-101/internal/config"
	"github.com/sol-prog/OpenGL-101/internal/input"
)

func TestAttrsCore32(t *testing.T) {
	cfg := config.Core32(config.Default()).Window

	assert.Equal(t, []attr{
		{sdl.GL_DOUBLEBUFFER, 1},
		{sdl.GL_CONTEXT_MAJOR_VERSION, 3},
		{sdl.GL_CONTEXT_MINOR_VERSION, 2},
		{sdl.GL_CONTEXT_PROFILE_MASK, sdl.GL_CONTEXT_PROFILE_CORE},
		{sdl.GL_CONTEXT_FLAGS, sdl.GL_CONTEXT_FORWARD_COMPATIBLE_FLAG},
	}, attrs(cfg))

	assert.Len(t, attrs(config.Default().Window), 1)
}

func TestWindowFlags(t *testing.T) {
	cfg := config.Default().Window
	assert.Equal(t, uint32(sdl.WINDOW_OPENGL|sdl.WINDOW_SHOWN|sdl.WINDOW_RESIZABLE), windowFlags(cfg))

	cfg.Resizable = false
	assert.Zero(t, windowFlags(cfg)&sdl.WINDOW_RESIZABLE)
}

func TestKeyOf(t *testing.T) {
	assert.Equal(t, input.KeyQ, keyOf(sdl.K_q))
	assert.Equal(t, input.KeyW, keyOf(sdl.K_w))
	assert.Equal(t, input.KeyEscape, keyOf(sdl.K_ESCAPE))
	assert.Equal(t, input.KeyUnknown, keyOf(sdl.K_F1))
}

type closer struct{ closing bool }

func (c *closer) SetShouldClose(v bool) { c.closing = v }

func TestDispatch(t *testing.T) {
	var (
		c      closer
		resize [2]int
		keys   int
	)
	d := input.NewDispatcher()
	d.OnResize = func(w, h int) { resize = [2]int{w, h} }
	d.Bind(input.KeyW, func() { keys++ })

	press := &sdl.KeyboardEvent{Type: sdl.KEYDOWN, State: sdl.PRESSED, Keysym: sdl.Keysym{Sym: sdl.K_w}}
	dispatch(d, &c, press)
	dispatch(d, &c, &sdl.KeyboardEvent{Type: sdl.KEYDOWN, Repeat: 1, Keysym: sdl.Keysym{Sym: sdl.K_w}})
	dispatch(d, &c, &sdl.KeyboardEvent{Type: sdl.KEYUP, Keysym: sdl.Keysym{Sym: sdl.K_w}})
	assert.Equal(t, 1, keys)

	dispatch(d, &c, &sdl.WindowEvent{Event: sdl.WINDOWEVENT_MOVED, Data1: 5, Data2: 5})
	assert.Equal(t, [2]int{}, resize)
	dispatch(d, &c, &sdl.WindowEvent{Event: sdl.WINDOWEVENT_SIZE_CHANGED, Data1: 1024, Data2: 768})
	assert.Equal(t, [2]int{1024, 768}, resize)

	assert.False(t, c.closing)
	dispatch(d, &c, &sdl.QuitEvent{})
	assert.True(t, c.closing)
}

func TestQuitKeyClosesWindow(t *testing.T) {
	w := &Window{d: input.NewDispatcher()}
	w.d.QuitOn(input.KeyQ, w)

	dispatch(w.d, w, &sdl.KeyboardEvent{Type: sdl.KEYDOWN, Keysym: sdl.Keysym{Sym: sdl.K_q}})
	assert.True(t, w.ShouldClose())
}

func TestLoadExtensionsWithoutWindow(t *testing.T) {
	var w *Window
	called := false
	err := w.LoadExtensions(func() error { called = true; return nil })
	assert.Equal(t, ErrNoContext, err)
	assert.False(t, called)

	assert.NotPanics(t, w.Terminate)
	assert.Equal(t, ErrNoContext, (&Window{done: true}).LoadExtensions(func() error { return nil }))
	assert.Equal(t, ErrNoContext, (&Window{d: input.NewDispatcher()}).LoadExtensions(func() error {
		called = true
		return nil
	}))
	assert.False(t, called)
}
