// Command extensions prints the version of an OpenGL 3.2 core context and
// every extension it supports.
package main

import (
	"fmt"
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
	def := config.Core32(config.Default())
	def.Window.Width, def.Window.Height = 600, 600
	def.Window.VSync = true
	app.Main(def, run)
}

func run(cfg config.Config) error {
	d := input.NewDispatcher()
	d.OnResize = input.ReportResize(os.Stdout)
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

	fmt.Println(g.GetString(gpu.Version))
	for _, ext := range gpu.ListExtensions(g) {
		fmt.Println(ext)
	}

	g.ClearColor(cfg.Clear.Floats())
	frameloop.Run(win, func() {
		g.Clear(gpu.ColorBufferBit)
	}, app.LoopOptions(cfg)...)
	return nil
}
