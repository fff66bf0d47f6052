// Package gpu describes the slice of OpenGL the tutorial programs call.
//
// The programs talk to the driver through the GL interface so that the shader
// builder, image loader and scene setup can be exercised without a context.
// The glcore subpackage implements it on top of go-gl for a 3.2 core context.
package gpu

// GL enums, with the values the OpenGL headers give them.
const (
	False = 0
	True  = 1

	ColorBufferBit = 0x00004000

	Triangles = 0x0004

	UnsignedByte = 0x1401
	UnsignedInt  = 0x1405
	Float        = 0x1406

	ArrayBuffer        = 0x8892
	ElementArrayBuffer = 0x8893
	StaticDraw         = 0x88E4

	FragmentShader = 0x8B30
	VertexShader   = 0x8B31
	CompileStatus  = 0x8B81
	LinkStatus     = 0x8B82
	InfoLogLength  = 0x8B84

	Texture2D        = 0x0DE1
	TextureMagFilter = 0x2800
	TextureMinFilter = 0x2801
	TextureWrapS     = 0x2802
	TextureWrapT     = 0x2803
	Linear           = 0x2601
	Repeat           = 0x2901
	ClampToBorder    = 0x812D
	ClampToEdge      = 0x812F
	MirroredRepeat   = 0x8370

	RGB  = 0x1907
	RGBA = 0x1908
	BGR  = 0x80E0
	BGRA = 0x80E1

	FrontAndBack = 0x0408
	Line         = 0x1B01
	Fill         = 0x1B02

	Vendor        = 0x1F00
	Renderer      = 0x1F01
	Version       = 0x1F02
	Extensions    = 0x1F03
	NumExtensions = 0x821D
)

//go:generate mockgen -destination=gpumock/gl_mock.go -package=gpumock . GL

// GL is the subset of OpenGL entry points used by the tutorial programs.
//
// All methods operate on the context current on the calling thread.
type GL interface {
	ClearColor(r, g, b, a float32)
	Clear(mask uint32)
	Viewport(x, y, width, height int32)
	PolygonMode(face, mode uint32)

	// GetString returns a string describing the current context, e.g. Version.
	GetString(name uint32) string
	GetStringi(name, index uint32) string
	GetIntegerv(pname uint32, data *int32)

	GenTextures(n int32, textures *uint32)
	BindTexture(target, texture uint32)
	// TexImage2D specifies a two-dimensional texture image for the bound texture.
	TexImage2D(target uint32, level, internalformat, width, height, border int32, format, xtype uint32, pixels []byte)
	TexParameteri(target, pname uint32, param int32)

	GenBuffers(n int32, buffers *uint32)
	BindBuffer(target, buffer uint32)
	// BufferData allocates size bytes for the bound buffer. A nil data
	// allocates without uploading.
	BufferData(target uint32, size int, data any, usage uint32)
	BufferSubData(target uint32, offset, size int, data any)

	GenVertexArrays(n int32, arrays *uint32)
	BindVertexArray(array uint32)
	VertexAttribPointer(index uint32, size int32, xtype uint32, normalized bool, stride int32, offset int)
	EnableVertexAttribArray(index uint32)

	CreateShader(xtype uint32) uint32
	// ShaderSource submits a single NUL terminated source string.
	ShaderSource(shader uint32, source string)
	CompileShader(shader uint32)
	GetShaderiv(shader, pname uint32, params *int32)
	// GetShaderInfoLog returns at most bufSize-1 bytes of the shader's log.
	GetShaderInfoLog(shader uint32, bufSize int32) string
	DeleteShader(shader uint32)

	CreateProgram() uint32
	AttachShader(program, shader uint32)
	BindFragDataLocation(program, color uint32, name string)
	LinkProgram(program uint32)
	GetProgramiv(program, pname uint32, params *int32)
	GetProgramInfoLog(program uint32, bufSize int32) string
	UseProgram(program uint32)
	GetAttribLocation(program uint32, name string) int32
	DeleteProgram(program uint32)

	DrawArrays(mode uint32, first, count int32)
	DrawElements(mode uint32, count int32, xtype uint32, offset int)
}

// ListExtensions returns the names of every extension the context exposes.
// GetStringi is not part of the 1.1 baseline, so the function pointers must
// have been loaded first.
func ListExtensions(g GL) []string {
	var n int32
	g.GetIntegerv(NumExtensions, &n)
	if n < 0 {
		n = 0
	}
	exts := make([]string, 0, n)
	for i := uint32(0); i < uint32(n); i++ {
		exts = append(exts, g.GetStringi(Extensions, i))
	}
	return exts
}
