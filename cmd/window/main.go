// Command window opens an 800x600 window and clears it to red until it is
// closed.
package main

import (
	"github.com/sol-prog/OpenGL-101/internal/app"
	"github.com/sol-prog/OpenGL-101/internal/config"
	"github.com/sol-prog/OpenGL-101/internal/frameloop"
	"github.com/sol-prog/OpenGL-101/internal/gpu"
	"github.com/sol-prog/OpenGL-101/internal/gpu/glcore"
	"github.com/sol-prog/OpenGL-101/internal/input"
	"github.com/sol-prog/OpenGL-101/internal/window"
)

func main() {
	def := config.Default()
	def.Window.Resizable = false
	app.Main(def, run)
}

func run(cfg config.Config) error {
	d := input.NewDispatcher()
	win, err := window.Open(cfg.Window, d)
	if err != nil {
		return err
	}
	defer win.Terminate()
	d.QuitOn(input.KeyQ, win)

	if err := win.LoadExtensions(glcore.Init); err != nil {
		return err
	}
	g := glcore.New()

	g.ClearColor(cfg.Clear.Floats())
	frameloop.Run(win, func() {
		g.Clear(gpu.ColorBufferBit)
	}, app.LoopOptions(cfg)...)
	return nil
}
