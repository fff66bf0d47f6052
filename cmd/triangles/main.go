// Command triangles draws four filled triangles on a red background.
package main

import (
	"os"

	"github.com/sol-prog/OpenGL-101/internal/app"
	"github.com/sol-prog/OpenGL-101/internal/config"
	"github.com/sol-prog/OpenGL-101/internal/frameloop"
	"github.com/sol-prog/OpenGL-101/internal/gpu/glcore"
	"github.com/sol-prog/OpenGL-101/internal/input"
	"github.com/sol-prog/OpenGL-101/internal/scene"
	"github.com/sol-prog/OpenGL-101/internal/shader"
	"github.com/sol-prog/OpenGL-101/internal/window"
)

var triangles = scene.Mesh{
	Positions: []float32{
		0.0, 0.0,
		0.5, 0.0,
		0.5, 0.5,

		0.0, 0.0,
		0.0, 0.5,
		-0.5, 0.5,

		0.0, 0.0,
		-0.5, 0.0,
		-0.5, -0.5,

		0.0, 0.0,
		0.0, -0.5,
		0.5, -0.5,
	},
	Components: 2,
}

func main() {
	def := config.Core32(config.Default())
	def.Window.Width, def.Window.Height = 500, 500
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

	app.PrintVersion(os.Stdout, win)

	if err := win.LoadExtensions(glcore.Init); err != nil {
		return err
	}
	g := glcore.New()

	prog, err := shader.Build(g, cfg.Shaders.Vertex, cfg.Shaders.Fragment)
	if err != nil {
		return err
	}
	s, err := scene.Init(g, triangles, prog, scene.Options{})
	if err != nil {
		return err
	}

	g.ClearColor(cfg.Clear.Floats())
	d.OnResize = func(int, int) {
		w, h := win.FramebufferSize()
		g.Viewport(0, 0, int32(w), int32(h))
		s.Draw(g)
		win.SwapBuffers()
	}

	frameloop.Run(win, func() { s.Draw(g) }, app.LoopOptions(cfg)...)
	return nil
}
