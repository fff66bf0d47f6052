// Command texture maps an image onto a quad with texture coordinates outside
// [0,1]. Pressing W cycles through the texture wrap modes.
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
	"github.com/sol-prog/OpenGL-101/internal/texture"
	"github.com/sol-prog/OpenGL-101/internal/window"
)

var quad = scene.Mesh{
	Positions: []float32{
		-1.0, -1.0,
		1.0, -1.0,
		1.0, 1.0,
		-1.0, 1.0,
	},
	TexCoords: []float32{
		-1.0, -1.0,
		2.0, -1.0,
		2.0, 2.0,
		-1.0, 2.0,
	},
	Indices: []uint32{
		0, 1, 2,
		2, 3, 0,
	},
	Components: 2,
}

func main() {
	def := config.Core32(config.Default())
	def.Texture.Image = "checker.png"
	def.Clear = config.Black
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

	prog, err := shader.Build(g, cfg.Shaders.Vertex, cfg.Shaders.Fragment,
		shader.WithFragData(0, "out_color"))
	if err != nil {
		return err
	}

	wrap := texture.NewSelector(os.Stdout)
	s, err := scene.Init(g, quad, prog, scene.Options{
		Texture:  cfg.Texture.Image,
		Selector: wrap,
	})
	if err != nil {
		return err
	}
	d.Bind(input.KeyW, func() { wrap.Cycle(g) })

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
