// Command coreprofile requests an OpenGL 3.2 core profile context, checks that
// buffer objects are available and clears the window to red.
package main

import (
	"log"
	"os"

	"github.com/sol-prog/OpenGL-101/internal/app"
	"github.com/sol-prog/OpenGL-101/internal/config"
	"github.com/sol-prog/OpenGL-101/internal/frameloop"
	"github.com/sol-prog/OpenGL-101/internal/gpu"
	"github.com/sol-prog/OpenGL-101/internal/gpu/glcore"
	"github.com/sol-prog/OpenGL-101/internal/input"
	"github.com/sol-prog/OpenGL-101/internal/window"
)

func main() {
	app.Main(config.Core32(config.Default()), run)
}

func run(cfg config.Config) error {
	d := input.NewDispatcher()
	win, err := window.Open(cfg.Window, d)
	if err != nil {
		return err
	}
	defer win.Terminate()
	d.QuitOn(input.KeyQ, win)

	app.PrintVersion(os.Stdout, win)

	if err := win.LoadExtensions(glcore.Init); err != nil {
		return err
	}
	g := glcore.New()

	// Calling a 1.5 entry point only works once the loader has run.
	var buffer uint32
	g.GenBuffers(1, &buffer)
	log.Printf("buffer object %d", buffer)

	draw := func() {
		g.ClearColor(cfg.Clear.Floats())
		g.Clear(gpu.ColorBufferBit)
	}
	d.OnResize = func(int, int) {
		draw()
		win.SwapBuffers()
	}

	frameloop.Run(win, draw, app.LoopOptions(cfg)...)
	return nil
}
