package gpu_test

import (
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"

	"github.com/sol-prog/OpenGL-101/internal/gpu"
	"github.com/sol-prog/OpenGL-101/internal/gpu/gpumock"
	"github.com/sol-prog/OpenGL-101/internal/gpu/gputest"
)

func TestListExtensions(t *testing.T) {
	r := gputest.New(t)
	r.Exts = []string{"GL_ARB_debug_output", "GL_ARB_texture_storage"}

	assert.Equal(t, r.Exts, gpu.ListExtensions(r))
	assert.Equal(t, 1, r.Count("GetIntegerv"))
	assert.Equal(t, 2, r.Count("GetStringi"))
}

func TestListExtensionsNone(t *testing.T) {
	r := gputest.New(t)
	assert.Empty(t, gpu.ListExtensions(r))
	assert.Zero(t, r.Count("GetStringi"))
}

func TestListExtensionsNegativeCount(t *testing.T) {
	g := gpumock.NewMockGL(gomock.NewController(t))
	g.EXPECT().GetIntegerv(uint32(gpu.NumExtensions), gomock.Any()).Do(func(_ uint32, data *int32) {
		*data = -1
	})

	var exts []string
	assert.NotPanics(t, func() { exts = gpu.ListExtensions(g) })
	assert.Empty(t, exts)
}
