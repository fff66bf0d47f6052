// Package glcore implements gpu.GL with the go-gl bindings for an OpenGL 3.2
// core profile context.
package glcore

import (
	"strings"
	"unsafe"

	"github.com/go-gl/gl/v3.2-core/gl"

	"github.com/sol-prog/OpenGL-101/internal/gpu"
)

// Init resolves the OpenGL entry points beyond the platform baseline. It must
// run after a context has been made current.
func Init() error {
	return gl.Init()
}

// Context forwards gpu.GL calls to the current OpenGL context.
type Context struct{}

var _ gpu.GL = Context{}

// New returns a gpu.GL bound to whatever context is current.
func New() Context {
	return Context{}
}

func (Context) ClearColor(r, g, b, a float32)      { gl.ClearColor(r, g, b, a) }
func (Context) Clear(mask uint32)                  { gl.Clear(mask) }
func (Context) Viewport(x, y, width, height int32) { gl.Viewport(x, y, width, height) }
func (Context) PolygonMode(face, mode uint32)      { gl.PolygonMode(face, mode) }

func (Context) GetString(name uint32) string {
	return gl.GoStr(gl.GetString(name))
}

func (Context) GetStringi(name, index uint32) string {
	return gl.GoStr(gl.GetStringi(name, index))
}

func (Context) GetIntegerv(pname uint32, data *int32) { gl.GetIntegerv(pname, data) }

func (Context) GenTextures(n int32, textures *uint32) { gl.GenTextures(n, textures) }
func (Context) BindTexture(target, texture uint32)    { gl.BindTexture(target, texture) }

func (Context) TexImage2D(target uint32, level, internalformat, width, height, border int32, format, xtype uint32, pixels []byte) {
	var ptr unsafe.Pointer
	if len(pixels) > 0 {
		ptr = gl.Ptr(pixels)
	}
	gl.TexImage2D(target, level, internalformat, width, height, border, format, xtype, ptr)
}

func (Context) TexParameteri(target, pname uint32, param int32) {
	gl.TexParameteri(target, pname, param)
}

func (Context) GenBuffers(n int32, buffers *uint32)  { gl.GenBuffers(n, buffers) }
func (Context) BindBuffer(target, buffer uint32)     { gl.BindBuffer(target, buffer) }
func (Context) GenVertexArrays(n int32, arr *uint32) { gl.GenVertexArrays(n, arr) }
func (Context) BindVertexArray(array uint32)         { gl.BindVertexArray(array) }

func (Context) BufferData(target uint32, size int, data any, usage uint32) {
	gl.BufferData(target, size, gl.Ptr(data), usage)
}

func (Context) BufferSubData(target uint32, offset, size int, data any) {
	gl.BufferSubData(target, offset, size, gl.Ptr(data))
}

func (Context) VertexAttribPointer(index uint32, size int32, xtype uint32, normalized bool, stride int32, offset int) {
	gl.VertexAttribPointer(index, size, xtype, normalized, stride, gl.PtrOffset(offset))
}

func (Context) EnableVertexAttribArray(index uint32) { gl.EnableVertexAttribArray(index) }

func (Context) CreateShader(xtype uint32) uint32 { return gl.CreateShader(xtype) }

func (Context) ShaderSource(shader uint32, source string) {
	csources, free := gl.Strs(source)
	gl.ShaderSource(shader, 1, csources, nil)
	free()
}

func (Context) CompileShader(shader uint32) { gl.CompileShader(shader) }

func (Context) GetShaderiv(shader, pname uint32, params *int32) {
	gl.GetShaderiv(shader, pname, params)
}

func (Context) GetShaderInfoLog(shader uint32, bufSize int32) string {
	msg := strings.Repeat("\x00", int(bufSize))
	gl.GetShaderInfoLog(shader, bufSize, nil, gl.Str(msg))
	return strings.TrimRight(msg, "\x00")
}

func (Context) DeleteShader(shader uint32)          { gl.DeleteShader(shader) }
func (Context) CreateProgram() uint32               { return gl.CreateProgram() }
func (Context) AttachShader(program, shader uint32) { gl.AttachShader(program, shader) }
func (Context) LinkProgram(program uint32)          { gl.LinkProgram(program) }
func (Context) UseProgram(program uint32)           { gl.UseProgram(program) }
func (Context) DeleteProgram(program uint32)        { gl.DeleteProgram(program) }

func (Context) BindFragDataLocation(program, color uint32, name string) {
	gl.BindFragDataLocation(program, color, gl.Str(name+"\x00"))
}

func (Context) GetProgramiv(program, pname uint32, params *int32) {
	gl.GetProgramiv(program, pname, params)
}

func (Context) GetProgramInfoLog(program uint32, bufSize int32) string {
	msg := strings.Repeat("\x00", int(bufSize))
	gl.GetProgramInfoLog(program, bufSize, nil, gl.Str(msg))
	return strings.TrimRight(msg, "\x00")
}

func (Context) GetAttribLocation(program uint32, name string) int32 {
	return gl.GetAttribLocation(program, gl.Str(name+"\x00"))
}

func (Context) DrawArrays(mode uint32, first, count int32) { gl.DrawArrays(mode, first, count) }

func (Context) DrawElements(mode uint32, count int32, xtype uint32, offset int) {
	gl.DrawElements(mode, count, xtype, gl.PtrOffset(offset))
}
