package texture

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/sol-prog/OpenGL-101/internal/gpu"
	"github.com/sol-prog/OpenGL-101/internal/gpu/gputest"
)

func TestWrapModeParam(t *testing.T) {
	for _, tt := range []struct {
		mode  WrapMode
		param int32
		name  string
	}{
		{Repeat, gpu.Repeat, "GL_REPEAT"},
		{ClampToEdge, gpu.ClampToEdge, "GL_CLAMP_TO_EDGE"},
		{ClampToBorder, gpu.ClampToBorder, "GL_CLAMP_TO_BORDER"},
		{MirroredRepeat, gpu.MirroredRepeat, "GL_MIRRORED_REPEAT"},
	} {
		t.Run(tt.name, func(t *testing.T) {
			param, ok := tt.mode.Param()
			assert.True(t, ok)
			assert.Equal(t, tt.param, param)
			assert.Equal(t, tt.name, tt.mode.String())
		})
	}

	_, ok := WrapMode(4).Param()
	assert.False(t, ok)
	assert.Equal(t, "WrapMode(4)", WrapMode(4).String())
}

func TestWrapModeNext(t *testing.T) {
	assert.Equal(t, ClampToEdge, Repeat.Next())
	assert.Equal(t, ClampToBorder, ClampToEdge.Next())
	assert.Equal(t, MirroredRepeat, ClampToBorder.Next())
	assert.Equal(t, Repeat, MirroredRepeat.Next())
	assert.Equal(t, Repeat, WrapMode(4).Next())
}

func TestSelectorCycle(t *testing.T) {
	var out bytes.Buffer
	r := gputest.New(t)
	sel := NewSelector(&out)
	assert.Equal(t, Repeat, sel.Mode())

	sel.Apply(r)
	for i := 0; i < 4; i++ {
		sel.Cycle(r)
	}
	assert.Equal(t, Repeat, sel.Mode())

	assert.Equal(t, "Using GL_REPEAT\n"+
		"Using GL_CLAMP_TO_EDGE\n"+
		"Using GL_CLAMP_TO_BORDER\n"+
		"Using GL_MIRRORED_REPEAT\n"+
		"Using GL_REPEAT\n", out.String())

	params := r.Named("TexParameteri")
	assert.Len(t, params, 10)
	// Both axes always get the same mode.
	for i := 0; i < len(params); i += 2 {
		assert.Equal(t, uint32(gpu.TextureWrapS), params[i].Args[1])
		assert.Equal(t, uint32(gpu.TextureWrapT), params[i+1].Args[1])
		assert.Equal(t, params[i].Args[2], params[i+1].Args[2])
	}
	assert.Equal(t, int32(gpu.ClampToBorder), params[4].Args[2])
}

func TestSelectorApplyOutOfRange(t *testing.T) {
	var out bytes.Buffer
	r := gputest.New(t)
	sel := &Selector{mode: WrapMode(7), out: &out}

	sel.Apply(r)
	assert.Empty(t, r.Calls)
	assert.Empty(t, out.String())
}
