// Package shader compiles GLSL sources read from disk and links them into a
// program.
package shader

import (
	"fmt"
	"os"

	"github.com/pkg/errors"

	"github.com/sol-prog/OpenGL-101/internal/gpu"
)

// maxLogLen caps how much of a driver's info log is reported.
const maxLogLen = 512

var (
	// ErrOpenSource is returned when a shader source file cannot be read.
	ErrOpenSource = errors.New("unable to open shader source")
	// ErrNoAttrib is returned when a program has no active attribute of the
	// requested name.
	ErrNoAttrib = errors.New("no such vertex attribute")
)

// Stage is the pipeline stage a shader is compiled for.
type Stage uint32

const (
	Vertex   Stage = gpu.VertexShader
	Fragment Stage = gpu.FragmentShader
)

func (s Stage) String() string {
	switch s {
	case Vertex:
		return "vertex"
	case Fragment:
		return "fragment"
	}
	return fmt.Sprintf("Stage(%#x)", uint32(s))
}

// CompileError carries the driver log of a shader that failed to compile.
type CompileError struct {
	Path  string
	Stage Stage
	Log   string
}

func (e *CompileError) Error() string {
	return fmt.Sprintf("%s shader %s: compilation failed with this message:\n%s", e.Stage, e.Path, e.Log)
}

// LinkError carries the driver log of a program that failed to link.
type LinkError struct {
	Vertex, Fragment string
	Log              string
}

func (e *LinkError) Error() string {
	return fmt.Sprintf("program %s + %s: link failed with this message:\n%s", e.Vertex, e.Fragment, e.Log)
}

// ReadSource reads the whole file at path and appends the NUL terminator the
// driver expects.
func ReadSource(path string) (string, error) {
	src, err := os.ReadFile(path)
	if err != nil {
		return "", errors.Wrap(ErrOpenSource, err.Error())
	}
	return string(src) + "\x00", nil
}

// Compile loads the source at path and compiles it for stage. On failure the
// shader object is deleted and a *CompileError holding at most 512 bytes of
// the driver log is returned.
func Compile(g gpu.GL, path string, stage Stage) (uint32, error) {
	src, err := ReadSource(path)
	if err != nil {
		return 0, err
	}

	handle := g.CreateShader(uint32(stage))
	g.ShaderSource(handle, src)
	g.CompileShader(handle)

	var status int32
	g.GetShaderiv(handle, gpu.CompileStatus, &status)
	if status == gpu.False {
		msg := g.GetShaderInfoLog(handle, maxLogLen)
		g.DeleteShader(handle)
		return 0, &CompileError{Path: path, Stage: stage, Log: msg}
	}
	return handle, nil
}

// Program is a linked shader program handle.
type Program uint32

// Attrib returns the location of the named vertex attribute.
func (p Program) Attrib(g gpu.GL, name string) (uint32, error) {
	loc := g.GetAttribLocation(uint32(p), name)
	if loc < 0 {
		return 0, errors.Wrap(ErrNoAttrib, name)
	}
	return uint32(loc), nil
}

type options struct {
	fragData map[uint32]string
}

// Option configures Build.
type Option func(*options)

// WithFragData binds the fragment shader output name to color number color
// before the program is linked.
func WithFragData(color uint32, name string) Option {
	return func(o *options) {
		if o.fragData == nil {
			o.fragData = make(map[uint32]string)
		}
		o.fragData[color] = name
	}
}

// Build compiles the vertex and fragment sources, links them into a program
// and makes it current. Both shader objects are flagged for deletion once
// attached; the driver frees them when the program goes away. A program that
// fails to link is deleted before the *LinkError is returned.
func Build(g gpu.GL, vertPath, fragPath string, opts ...Option) (Program, error) {
	var o options
	for _, opt := range opts {
		opt(&o)
	}

	vs, err := Compile(g, vertPath, Vertex)
	if err != nil {
		return 0, err
	}
	fs, err := Compile(g, fragPath, Fragment)
	if err != nil {
		g.DeleteShader(vs)
		return 0, err
	}

	prog := g.CreateProgram()
	g.AttachShader(prog, vs)
	g.AttachShader(prog, fs)

	g.DeleteShader(vs)
	g.DeleteShader(fs)

	for color, name := range o.fragData {
		g.BindFragDataLocation(prog, color, name)
	}

	g.LinkProgram(prog)
	var status int32
	g.GetProgramiv(prog, gpu.LinkStatus, &status)
	if status == gpu.False {
		msg := g.GetProgramInfoLog(prog, maxLogLen)
		g.DeleteProgram(prog)
		return 0, &LinkError{Vertex: vertPath, Fragment: fragPath, Log: msg}
	}

	g.UseProgram(prog)
	return Program(prog), nil
}
