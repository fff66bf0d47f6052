package config

import (
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseHexColor(t *testing.T) {
	for _, tt := range []struct {
		in   string
		want Color
	}{
		{"ff0000", Red},
		{"000000", Black},
		{"FFff00", Color{R: 0xff, G: 0xff, A: 0xff}},
		{"1a2B3c80", Color{R: 0x1a, G: 0x2b, B: 0x3c, A: 0x80}},
	} {
		c, err := parseHexColor([]byte(tt.in))
		require.NoError(t, err, tt.in)
		assert.Equal(t, tt.want, c, tt.in)
	}

	for _, in := range []string{"", "fff", "ff00000", "gg0000", "ff 000", "#ff0000"} {
		_, err := parseHexColor([]byte(in))
		assert.True(t, errors.Is(err, ErrColor), in)
	}
}

func TestColorFloats(t *testing.T) {
	r, g, b, a := Red.Floats()
	assert.Equal(t, [4]float32{1, 0, 0, 1}, [4]float32{r, g, b, a})

	r, _, _, _ = Color{R: 0x80}.Floats()
	assert.InDelta(t, 0.502, r, 0.001)
}

func TestColorText(t *testing.T) {
	var c Color
	require.NoError(t, c.UnmarshalText([]byte("00ff00")))
	b, err := c.MarshalText()
	require.NoError(t, err)
	assert.Equal(t, "00ff00ff", string(b))

	assert.Error(t, c.UnmarshalText([]byte("green")))
	assert.Equal(t, Color{G: 0xff, A: 0xff}, c, "failed parse keeps the old value")
}

func TestClearFromFileAndFlag(t *testing.T) {
	path := writeConfig(t, "clear = \"0000ff\"\n")

	cfg, err := Parse(newFlagSet(), []string{"-config", path}, Default())
	require.NoError(t, err)
	assert.Equal(t, Color{B: 0xff, A: 0xff}, cfg.Clear)

	cfg, err = Parse(newFlagSet(), []string{"-config", path, "-clear", "000000"}, Default())
	require.NoError(t, err)
	assert.Equal(t, Black, cfg.Clear)

	_, err = Parse(newFlagSet(), []string{"-clear", "red"}, Default())
	assert.Error(t, err)
}
