// Package gputest provides a gpu.GL that records calls instead of driving a
// context, for tests of code that issues OpenGL commands.
package gputest

import (
	"fmt"
	"strings"

	"github.com/golang/mock/gomock"

	"github.com/sol-prog/OpenGL-101/internal/gpu"
	"github.com/sol-prog/OpenGL-101/internal/gpu/gpumock"
)

// Call is one recorded GL invocation.
type Call struct {
	Name string
	Args []any
}

func (c Call) String() string {
	args := make([]string, len(c.Args))
	for i, a := range c.Args {
		args[i] = fmt.Sprint(a)
	}
	return c.Name + "(" + strings.Join(args, ", ") + ")"
}

// Recorder is a gpumock.MockGL that accepts any call and appends it to Calls.
//
// Object handles are handed out in sequence from 1. Shader compilation
// succeeds unless CompileFails reports otherwise for the submitted source;
// linking succeeds unless LinkFails is set. Attribute locations come from
// Attribs, or are handed out in lookup order when Attribs is nil.
type Recorder struct {
	*gpumock.MockGL

	Calls []Call

	CompileFails func(source string) (log string, failed bool)
	LinkFails    string
	Attribs      map[string]int32
	Strings      map[uint32]string
	Exts         []string

	next    uint32
	sources map[uint32]string
	status  map[uint32]bool
	logs    map[uint32]string
	attribs map[string]int32
}

var _ gpu.GL = (*Recorder)(nil)

// New returns a Recorder whose shaders fail to compile when the source has no
// main function, which is what a GLSL compiler reports first for garbage.
// Its controller reports to t and is finished when the test ends.
func New(t gomock.TestReporter) *Recorder {
	r := &Recorder{
		MockGL: gpumock.NewMockGL(gomock.NewController(t)),
		CompileFails: func(src string) (string, bool) {
			if strings.Contains(src, "void main") {
				return "", false
			}
			return "0:1(1): error: syntax error, unexpected end of file", true
		},
		Strings: map[uint32]string{
			gpu.Version: "3.2.0 gputest",
		},
	}
	r.expect()
	return r
}

func (r *Recorder) record(name string, args ...any) {
	r.Calls = append(r.Calls, Call{Name: name, Args: args})
}

func (r *Recorder) handle() uint32 {
	r.next++
	return r.next
}

// Named returns the recorded calls with the given name, in order.
func (r *Recorder) Named(name string) []Call {
	var out []Call
	for _, c := range r.Calls {
		if c.Name == name {
			out = append(out, c)
		}
	}
	return out
}

// Count reports how many times name was called.
func (r *Recorder) Count(name string) int {
	return len(r.Named(name))
}

// Names lists call names in order.
func (r *Recorder) Names() []string {
	out := make([]string, len(r.Calls))
	for i, c := range r.Calls {
		out[i] = c.Name
	}
	return out
}

// Source returns the source submitted for shader.
func (r *Recorder) Source(shader uint32) string {
	return r.sources[shader]
}

// expect registers an open-ended expectation for every GL method.
func (r *Recorder) expect() {
	m := r.EXPECT()
	anyArg := gomock.Any()

	m.ClearColor(anyArg, anyArg, anyArg, anyArg).Do(func(red, green, blue, alpha float32) {
		r.record("ClearColor", red, green, blue, alpha)
	}).AnyTimes()
	m.Clear(anyArg).Do(func(mask uint32) { r.record("Clear", mask) }).AnyTimes()
	m.Viewport(anyArg, anyArg, anyArg, anyArg).Do(func(x, y, width, height int32) {
		r.record("Viewport", x, y, width, height)
	}).AnyTimes()
	m.PolygonMode(anyArg, anyArg).Do(func(face, mode uint32) { r.record("PolygonMode", face, mode) }).AnyTimes()

	m.GetString(anyArg).DoAndReturn(func(name uint32) string {
		r.record("GetString", name)
		return r.Strings[name]
	}).AnyTimes()
	m.GetStringi(anyArg, anyArg).DoAndReturn(func(name, index uint32) string {
		r.record("GetStringi", name, index)
		if name != gpu.Extensions || int(index) >= len(r.Exts) {
			return ""
		}
		return r.Exts[index]
	}).AnyTimes()
	m.GetIntegerv(anyArg, anyArg).Do(func(pname uint32, data *int32) {
		r.record("GetIntegerv", pname)
		if pname == gpu.NumExtensions {
			*data = int32(len(r.Exts))
		}
	}).AnyTimes()

	gen := func(name string) func(n int32, out *uint32) {
		return func(n int32, out *uint32) {
			*out = r.handle()
			r.record(name, n, *out)
		}
	}
	m.GenTextures(anyArg, anyArg).Do(gen("GenTextures")).AnyTimes()
	m.GenBuffers(anyArg, anyArg).Do(gen("GenBuffers")).AnyTimes()
	m.GenVertexArrays(anyArg, anyArg).Do(gen("GenVertexArrays")).AnyTimes()

	m.BindTexture(anyArg, anyArg).Do(func(target, texture uint32) { r.record("BindTexture", target, texture) }).AnyTimes()
	m.TexImage2D(anyArg, anyArg, anyArg, anyArg, anyArg, anyArg, anyArg, anyArg, anyArg).Do(
		func(target uint32, level, internalformat, width, height, border int32, format, xtype uint32, pixels []byte) {
			r.record("TexImage2D", target, level, internalformat, width, height, border, format, xtype, len(pixels))
		}).AnyTimes()
	m.TexParameteri(anyArg, anyArg, anyArg).Do(func(target, pname uint32, param int32) {
		r.record("TexParameteri", target, pname, param)
	}).AnyTimes()

	m.BindBuffer(anyArg, anyArg).Do(func(target, buffer uint32) { r.record("BindBuffer", target, buffer) }).AnyTimes()
	// BufferData records the size and whether data was supplied.
	m.BufferData(anyArg, anyArg, anyArg, anyArg).Do(func(target uint32, size int, data any, usage uint32) {
		r.record("BufferData", target, size, data != nil, usage)
	}).AnyTimes()
	m.BufferSubData(anyArg, anyArg, anyArg, anyArg).Do(func(target uint32, offset, size int, data any) {
		r.record("BufferSubData", target, offset, size)
	}).AnyTimes()

	m.BindVertexArray(anyArg).Do(func(array uint32) { r.record("BindVertexArray", array) }).AnyTimes()
	m.VertexAttribPointer(anyArg, anyArg, anyArg, anyArg, anyArg, anyArg).Do(
		func(index uint32, size int32, xtype uint32, normalized bool, stride int32, offset int) {
			r.record("VertexAttribPointer", index, size, xtype, normalized, stride, offset)
		}).AnyTimes()
	m.EnableVertexAttribArray(anyArg).Do(func(index uint32) { r.record("EnableVertexAttribArray", index) }).AnyTimes()

	m.CreateShader(anyArg).DoAndReturn(func(xtype uint32) uint32 {
		h := r.handle()
		r.record("CreateShader", xtype, h)
		return h
	}).AnyTimes()
	m.ShaderSource(anyArg, anyArg).Do(func(shader uint32, source string) {
		if r.sources == nil {
			r.sources = make(map[uint32]string)
		}
		r.sources[shader] = source
		r.record("ShaderSource", shader)
	}).AnyTimes()
	m.CompileShader(anyArg).Do(func(shader uint32) {
		r.record("CompileShader", shader)
		ok, msg := true, ""
		if r.CompileFails != nil {
			var failed bool
			msg, failed = r.CompileFails(r.sources[shader])
			ok = !failed
		}
		r.setStatus(shader, ok, msg)
	}).AnyTimes()
	m.GetShaderiv(anyArg, anyArg, anyArg).Do(func(shader, pname uint32, params *int32) {
		r.record("GetShaderiv", shader, pname)
		r.boolParam(shader, pname, gpu.CompileStatus, params)
	}).AnyTimes()
	m.GetShaderInfoLog(anyArg, anyArg).DoAndReturn(func(shader uint32, bufSize int32) string {
		r.record("GetShaderInfoLog", shader, bufSize)
		return r.infoLog(shader, bufSize)
	}).AnyTimes()
	m.DeleteShader(anyArg).Do(func(shader uint32) { r.record("DeleteShader", shader) }).AnyTimes()

	m.CreateProgram().DoAndReturn(func() uint32 {
		h := r.handle()
		r.record("CreateProgram", h)
		return h
	}).AnyTimes()
	m.AttachShader(anyArg, anyArg).Do(func(program, shader uint32) {
		r.record("AttachShader", program, shader)
	}).AnyTimes()
	m.BindFragDataLocation(anyArg, anyArg, anyArg).Do(func(program, color uint32, name string) {
		r.record("BindFragDataLocation", program, color, name)
	}).AnyTimes()
	m.LinkProgram(anyArg).Do(func(program uint32) {
		r.record("LinkProgram", program)
		r.setStatus(program, r.LinkFails == "", r.LinkFails)
	}).AnyTimes()
	m.GetProgramiv(anyArg, anyArg, anyArg).Do(func(program, pname uint32, params *int32) {
		r.record("GetProgramiv", program, pname)
		r.boolParam(program, pname, gpu.LinkStatus, params)
	}).AnyTimes()
	m.GetProgramInfoLog(anyArg, anyArg).DoAndReturn(func(program uint32, bufSize int32) string {
		r.record("GetProgramInfoLog", program, bufSize)
		return r.infoLog(program, bufSize)
	}).AnyTimes()
	m.UseProgram(anyArg).Do(func(program uint32) { r.record("UseProgram", program) }).AnyTimes()
	m.DeleteProgram(anyArg).Do(func(program uint32) { r.record("DeleteProgram", program) }).AnyTimes()
	m.GetAttribLocation(anyArg, anyArg).DoAndReturn(r.attribLocation).AnyTimes()

	m.DrawArrays(anyArg, anyArg, anyArg).Do(func(mode uint32, first, count int32) {
		r.record("DrawArrays", mode, first, count)
	}).AnyTimes()
	m.DrawElements(anyArg, anyArg, anyArg, anyArg).Do(func(mode uint32, count int32, xtype uint32, offset int) {
		r.record("DrawElements", mode, count, xtype, offset)
	}).AnyTimes()
}

func (r *Recorder) setStatus(h uint32, ok bool, msg string) {
	if r.status == nil {
		r.status = make(map[uint32]bool)
		r.logs = make(map[uint32]string)
	}
	r.status[h] = ok
	r.logs[h] = msg
}

func (r *Recorder) boolParam(h, pname, want uint32, params *int32) {
	switch pname {
	case want:
		*params = gpu.False
		if r.status[h] {
			*params = gpu.True
		}
	case gpu.InfoLogLength:
		*params = int32(len(r.logs[h]) + 1)
	}
}

func (r *Recorder) infoLog(h uint32, bufSize int32) string {
	msg := r.logs[h]
	if bufSize <= 0 {
		return ""
	}
	if len(msg) > int(bufSize)-1 {
		msg = msg[:bufSize-1]
	}
	return msg
}

func (r *Recorder) attribLocation(program uint32, name string) int32 {
	r.record("GetAttribLocation", program, name)
	if r.Attribs != nil {
		loc, ok := r.Attribs[name]
		if !ok {
			return -1
		}
		return loc
	}
	if r.attribs == nil {
		r.attribs = make(map[string]int32)
	}
	loc, ok := r.attribs[name]
	if !ok {
		loc = int32(len(r.attribs))
		r.attribs[name] = loc
	}
	return loc
}
