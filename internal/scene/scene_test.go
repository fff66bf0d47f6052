package scene

import (
	"bytes"
	"image"
	"image/color"
	"image/png"
	"os"
	"path/filepath"
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sol-prog/OpenGL-101/internal/gpu"
	"github.com/sol-prog/OpenGL-101/internal/gpu/gputest"
	"github.com/sol-prog/OpenGL-101/internal/shader"
	"github.com/sol-prog/OpenGL-101/internal/texture"
)

var triangles = Mesh{
	Positions: []float32{
		0.0, 0.0, 0.5, 0.0, 0.5, 0.5,
		0.0, 0.0, 0.0, 0.5, -0.5, 0.5,
		0.0, 0.0, -0.5, 0.0, -0.5, -0.5,
		0.0, 0.0, 0.0, -0.5, 0.5, -0.5,
	},
	Components: 2,
}

var quad = Mesh{
	Positions:  []float32{-1, -1, 1, -1, 1, 1, -1, 1},
	TexCoords:  []float32{-1, -1, 2, -1, 2, 2, -1, 2},
	Indices:    []uint32{0, 1, 2, 2, 3, 0},
	Components: 2,
}

const prog = shader.Program(7)

func TestInitArrays(t *testing.T) {
	r := gputest.New(t)
	r.Attribs = map[string]int32{"position": 0}

	s, err := Init(r, triangles, prog, Options{})
	require.NoError(t, err)
	assert.Equal(t, []string{
		"GenVertexArrays", "BindVertexArray",
		"GenBuffers", "BindBuffer", "BufferData",
		"GetAttribLocation", "VertexAttribPointer", "EnableVertexAttribArray",
	}, r.Names())

	assert.Equal(t, []any{uint32(gpu.ArrayBuffer), 96, true, uint32(gpu.StaticDraw)}, r.Named("BufferData")[0].Args)
	assert.Equal(t, []any{uint32(0), int32(2), uint32(gpu.Float), false, int32(0), 0}, r.Named("VertexAttribPointer")[0].Args)
	assert.Zero(t, r.Count("PolygonMode"))
	assert.Equal(t, int32(12), triangles.VertexCount())

	r.Calls = nil
	s.Draw(r)
	assert.Equal(t, []string{"Clear", "BindVertexArray", "DrawArrays"}, r.Names())
	assert.Equal(t, []any{uint32(gpu.Triangles), int32(0), int32(12)}, r.Calls[2].Args)
}

func TestInitWireframe(t *testing.T) {
	r := gputest.New(t)
	_, err := Init(r, triangles, prog, Options{Wireframe: true})
	require.NoError(t, err)

	modes := r.Named("PolygonMode")
	require.Len(t, modes, 1)
	assert.Equal(t, []any{uint32(gpu.FrontAndBack), uint32(gpu.Line)}, modes[0].Args)
}

func writeImage(t *testing.T) string {
	t.Helper()
	img := image.NewRGBA(image.Rect(0, 0, 4, 4))
	for i := range img.Pix {
		img.Pix[i] = 0xff
	}
	img.Set(1, 1, color.RGBA{0x80, 0x40, 0x20, 0xff})
	var buf bytes.Buffer
	require.NoError(t, png.Encode(&buf, img))
	path := filepath.Join(t.TempDir(), "checker.png")
	require.NoError(t, os.WriteFile(path, buf.Bytes(), 0o644))
	return path
}

func TestInitTexturedIndexed(t *testing.T) {
	var out bytes.Buffer
	r := gputest.New(t)
	r.Attribs = map[string]int32{"position": 0, "texture_coord": 1}

	s, err := Init(r, quad, prog, Options{
		Texture:  writeImage(t),
		Selector: texture.NewSelector(&out),
	})
	require.NoError(t, err)

	// Positions and texture coordinates share one buffer, positions first.
	data := r.Named("BufferData")
	require.Len(t, data, 2)
	assert.Equal(t, []any{uint32(gpu.ArrayBuffer), 64, false, uint32(gpu.StaticDraw)}, data[0].Args)
	assert.Equal(t, []any{uint32(gpu.ElementArrayBuffer), 24, true, uint32(gpu.StaticDraw)}, data[1].Args)

	sub := r.Named("BufferSubData")
	require.Len(t, sub, 2)
	assert.Equal(t, []any{uint32(gpu.ArrayBuffer), 0, 32}, sub[0].Args)
	assert.Equal(t, []any{uint32(gpu.ArrayBuffer), 32, 32}, sub[1].Args)

	ptrs := r.Named("VertexAttribPointer")
	require.Len(t, ptrs, 2)
	assert.Equal(t, []any{uint32(1), int32(2), uint32(gpu.Float), false, int32(0), 32}, ptrs[1].Args)
	assert.Equal(t, 2, r.Count("EnableVertexAttribArray"))

	assert.Equal(t, 1, r.Count("TexImage2D"))
	assert.Equal(t, []any{uint32(gpu.Texture2D), s.Texture}, r.Named("BindTexture")[0].Args)
	assert.Equal(t, "Using GL_REPEAT\n", out.String())
	assert.NotZero(t, s.EBO)

	r.Calls = nil
	s.Draw(r)
	assert.Equal(t, []string{"Clear", "BindVertexArray", "DrawElements"}, r.Names())
	assert.Equal(t, []any{uint32(gpu.Triangles), int32(6), uint32(gpu.UnsignedInt), 0}, r.Calls[2].Args)
}

func TestInitTextureFailure(t *testing.T) {
	r := gputest.New(t)
	_, err := Init(r, quad, prog, Options{
		Texture:  filepath.Join(t.TempDir(), "missing.jpg"),
		Selector: texture.NewSelector(&bytes.Buffer{}),
	})
	assert.True(t, errors.Is(err, texture.ErrUnknownFormat))
	assert.Zero(t, r.Count("TexImage2D"))
	assert.Zero(t, r.Count("VertexAttribPointer"))
}

func TestInitMissingAttrib(t *testing.T) {
	r := gputest.New(t)
	r.Attribs = map[string]int32{}

	_, err := Init(r, triangles, prog, Options{})
	assert.True(t, errors.Is(err, shader.ErrNoAttrib))
}

func TestInitRejectsBadMeshes(t *testing.T) {
	for name, m := range map[string]Mesh{
		"empty":           {Components: 2},
		"no components":   {Positions: []float32{1, 2}},
		"ragged":          {Positions: []float32{1, 2, 3}, Components: 2},
		"short texcoords": {Positions: []float32{1, 2, 3, 4}, TexCoords: []float32{0, 0}, Components: 2},
	} {
		t.Run(name, func(t *testing.T) {
			r := gputest.New(t)
			_, err := Init(r, m, prog, Options{})
			assert.Error(t, err)
			assert.Empty(t, r.Calls)
		})
	}

	r := gputest.New(t)
	_, err := Init(r, triangles, prog, Options{Texture: "squirrel.jpg"})
	assert.True(t, errors.Is(err, ErrTexCoords))
}
