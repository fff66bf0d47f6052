package app

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sol-prog/OpenGL-101/internal/config"
)

func TestRunPassesResolvedConfig(t *testing.T) {
	var got config.Config
	err := Run("triangles", []string{"-width", "640"}, config.Default(), func(cfg config.Config) error {
		got = cfg
		return nil
	})
	require.NoError(t, err)
	assert.Equal(t, 640, got.Window.Width)
	assert.Equal(t, 600, got.Window.Height)
}

func TestRunReturnsProgramError(t *testing.T) {
	boom := errors.New("boom")
	err := Run("triangles", nil, config.Default(), func(config.Config) error { return boom })
	assert.Equal(t, boom, err)
}

func TestRunRejectsBadConfig(t *testing.T) {
	called := false
	err := Run("triangles", []string{"-height", "-1"}, config.Default(), func(config.Config) error {
		called = true
		return nil
	})
	assert.True(t, errors.Is(err, config.ErrWindowSize))
	assert.False(t, called)
}

func TestRunWritesProfiles(t *testing.T) {
	dir := t.TempDir()
	cpu := filepath.Join(dir, "cpu.pprof")
	mem := filepath.Join(dir, "mem.pprof")

	err := Run("window", []string{"-cpuprofile", cpu, "-memprofile", mem}, config.Default(), func(config.Config) error {
		return nil
	})
	require.NoError(t, err)

	for _, path := range []string{cpu, mem} {
		fi, err := os.Stat(path)
		require.NoError(t, err)
		assert.NotZero(t, fi.Size(), path)
	}
}

func TestRunProfileUnwritable(t *testing.T) {
	cpu := filepath.Join(t.TempDir(), "missing", "cpu.pprof")
	err := Run("window", []string{"-cpuprofile", cpu}, config.Default(), func(config.Config) error {
		t.Fatal("program ran without its profile")
		return nil
	})
	assert.Error(t, err)
}

func TestLoopOptions(t *testing.T) {
	cfg := config.Default()
	assert.Empty(t, LoopOptions(cfg))

	cfg.Stats.Duration = time.Second
	assert.Len(t, LoopOptions(cfg), 1)
}
