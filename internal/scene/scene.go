// Package scene uploads vertex data for a single draw call and issues it.
package scene

import (
	"github.com/pkg/errors"

	"github.com/sol-prog/OpenGL-101/internal/gpu"
	"github.com/sol-prog/OpenGL-101/internal/shader"
	"github.com/sol-prog/OpenGL-101/internal/texture"
)

const floatSize = 4

var (
	ErrEmptyMesh = errors.New("mesh has no vertices")
	ErrTexCoords = errors.New("texture coordinates do not match vertices")
)

// Mesh is vertex data in client memory. Positions holds Components floats per
// vertex; TexCoords, when present, holds two per vertex. Indices selects
// vertices for an indexed draw.
type Mesh struct {
	Positions  []float32
	TexCoords  []float32
	Indices    []uint32
	Components int32
}

// VertexCount returns the number of vertices in Positions.
func (m Mesh) VertexCount() int32 {
	if m.Components <= 0 {
		return 0
	}
	return int32(len(m.Positions)) / m.Components
}

func (m Mesh) validate() error {
	n := m.VertexCount()
	if n == 0 || len(m.Positions)%int(m.Components) != 0 {
		return errors.Wrapf(ErrEmptyMesh, "%d floats, %d per vertex", len(m.Positions), m.Components)
	}
	if len(m.TexCoords) > 0 && int32(len(m.TexCoords)) != 2*n {
		return errors.Wrapf(ErrTexCoords, "%d coordinates for %d vertices", len(m.TexCoords), n)
	}
	return nil
}

// Options adjust how a scene is set up.
type Options struct {
	// Wireframe rasterizes polygons as outlines.
	Wireframe bool
	// Texture is an image to load into a new 2D texture. It requires TexCoords.
	Texture string
	// Selector supplies the wrap mode for Texture.
	Selector *texture.Selector
}

// Scene holds the GPU objects created by Init. They live until the context
// is destroyed.
type Scene struct {
	VAO     uint32
	VBO     uint32
	EBO     uint32
	Texture uint32
	Program shader.Program

	count   int32
	indexed bool
}

// Init creates a vertex array for m, uploads it to a single array buffer,
// and wires the "position" and, for textured meshes, "texture_coord"
// attributes of prog to it. Texture coordinates are stored after all the
// positions.
func Init(g gpu.GL, m Mesh, prog shader.Program, opts Options) (*Scene, error) {
	if err := m.validate(); err != nil {
		return nil, err
	}
	s := &Scene{Program: prog, count: m.VertexCount()}

	g.GenVertexArrays(1, &s.VAO)
	g.BindVertexArray(s.VAO)

	posSize := floatSize * len(m.Positions)
	g.GenBuffers(1, &s.VBO)
	g.BindBuffer(gpu.ArrayBuffer, s.VBO)
	if len(m.TexCoords) == 0 {
		g.BufferData(gpu.ArrayBuffer, posSize, m.Positions, gpu.StaticDraw)
	} else {
		texSize := floatSize * len(m.TexCoords)
		g.BufferData(gpu.ArrayBuffer, posSize+texSize, nil, gpu.StaticDraw)
		g.BufferSubData(gpu.ArrayBuffer, 0, posSize, m.Positions)
		g.BufferSubData(gpu.ArrayBuffer, posSize, texSize, m.TexCoords)
	}

	if len(m.Indices) > 0 {
		g.GenBuffers(1, &s.EBO)
		g.BindBuffer(gpu.ElementArrayBuffer, s.EBO)
		g.BufferData(gpu.ElementArrayBuffer, 4*len(m.Indices), m.Indices, gpu.StaticDraw)
		s.count = int32(len(m.Indices))
		s.indexed = true
	}

	if opts.Texture != "" {
		if len(m.TexCoords) == 0 {
			return nil, errors.Wrap(ErrTexCoords, "textured mesh without coordinates")
		}
		sel := opts.Selector
		if sel == nil {
			sel = texture.NewSelector(nil)
		}
		g.GenTextures(1, &s.Texture)
		g.BindTexture(gpu.Texture2D, s.Texture)
		if err := texture.Load(g, opts.Texture, sel); err != nil {
			return nil, err
		}
	}

	pos, err := prog.Attrib(g, "position")
	if err != nil {
		return nil, err
	}
	g.VertexAttribPointer(pos, m.Components, gpu.Float, false, 0, 0)
	g.EnableVertexAttribArray(pos)

	if len(m.TexCoords) > 0 {
		tex, err := prog.Attrib(g, "texture_coord")
		if err != nil {
			return nil, err
		}
		g.VertexAttribPointer(tex, 2, gpu.Float, false, 0, posSize)
		g.EnableVertexAttribArray(tex)
	}

	if opts.Wireframe {
		g.PolygonMode(gpu.FrontAndBack, gpu.Line)
	}
	return s, nil
}

// Draw clears the color buffer and draws the scene with one call.
func (s *Scene) Draw(g gpu.GL) {
	g.Clear(gpu.ColorBufferBit)
	g.BindVertexArray(s.VAO)
	if s.indexed {
		g.DrawElements(gpu.Triangles, s.count, gpu.UnsignedInt, 0)
		return
	}
	g.DrawArrays(gpu.Triangles, 0, s.count)
}
