// Command sdlcontext creates an OpenGL 3.2 core context with SDL2 instead of
// GLFW and clears the window to red.
package main

import (
	"fmt"

	"github.com/sol-prog/OpenGL-101/internal/app"
	"github.com/sol-prog/OpenGL-101/internal/config"
	"github.com/sol-prog/OpenGL-101/internal/frameloop"
	"github.com/sol-prog/OpenGL-101/internal/gpu"
	"github.com/sol-prog/OpenGL-101/internal/gpu/glcore"
	"github.com/sol-prog/OpenGL-101/internal/input"
	"github.com/sol-prog/OpenGL-101/internal/sdlwin"
)

func main() {
	def := config.Core32(config.Default())
	def.Window.VSync = true
	app.Main(def, run)
}

func run(cfg config.Config) error {
	d := input.NewDispatcher()
	win, err := sdlwin.Open(cfg.Window, d)
	if err != nil {
		return err
	}
	defer win.Terminate()
	d.QuitOn(input.KeyQ, win)
	d.QuitOn(input.KeyEscape, win)

	if err := win.LoadExtensions(glcore.Init); err != nil {
		return err
	}
	g := glcore.New()

	major, minor := win.Version()
	fmt.Printf("OpenGL - %d.%d\n", major, minor)
	fmt.Println(g.GetString(gpu.Version))

	g.ClearColor(cfg.Clear.Floats())
	d.OnResize = func(w, h int) {
		g.Viewport(0, 0, int32(w), int32(h))
	}

	frameloop.Run(win, func() {
		g.Clear(gpu.ColorBufferBit)
	}, app.LoopOptions(cfg)...)
	return nil
}
