// Command fixedpipeline draws a yellow quad on a red background with the
// legacy immediate mode API of a compatibility context.
package main

import (
	"fmt"
	"os"

	"github.com/go-gl/gl/v3.2-compatibility/gl"

	"github.com/sol-prog/OpenGL-101/internal/app"
	"github.com/sol-prog/OpenGL-101/internal/config"
	"github.com/sol-prog/OpenGL-101/internal/frameloop"
	"github.com/sol-prog/OpenGL-101/internal/input"
	"github.com/sol-prog/OpenGL-101/internal/window"
)

func main() {
	def := config.Default()
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

	if err := win.LoadExtensions(gl.Init); err != nil {
		return err
	}
	fmt.Println(gl.GoStr(gl.GetString(gl.VERSION)))

	gl.ClearColor(cfg.Clear.Floats())
	frameloop.Run(win, drawQuad, app.LoopOptions(cfg)...)
	return nil
}

func drawQuad() {
	gl.Clear(gl.COLOR_BUFFER_BIT)

	gl.Color3f(1, 1, 0)
	gl.Begin(gl.QUADS)
	gl.Vertex2f(-0.5, -0.5)
	gl.Vertex2f(0.5, -0.5)
	gl.Vertex2f(0.5, 0.5)
	gl.Vertex2f(-0.5, 0.5)
	gl.End()
}
