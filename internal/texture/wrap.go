package texture

import (
	"fmt"
	"io"
	"os"

	"github.com/sol-prog/OpenGL-101/internal/gpu"
)

// WrapMode selects how a texture is sampled outside [0,1].
type WrapMode int

const (
	Repeat WrapMode = iota
	ClampToEdge
	ClampToBorder
	MirroredRepeat
)

var wrapModes = [...]struct {
	name  string
	param int32
}{
	Repeat:         {"GL_REPEAT", gpu.Repeat},
	ClampToEdge:    {"GL_CLAMP_TO_EDGE", gpu.ClampToEdge},
	ClampToBorder:  {"GL_CLAMP_TO_BORDER", gpu.ClampToBorder},
	MirroredRepeat: {"GL_MIRRORED_REPEAT", gpu.MirroredRepeat},
}

func (m WrapMode) valid() bool {
	return m >= Repeat && m <= MirroredRepeat
}

func (m WrapMode) String() string {
	if !m.valid() {
		return fmt.Sprintf("WrapMode(%d)", int(m))
	}
	return wrapModes[m].name
}

// Param returns the GL enum for m, or false if m is not a wrap mode.
func (m WrapMode) Param() (int32, bool) {
	if !m.valid() {
		return 0, false
	}
	return wrapModes[m].param, true
}

// Next returns the mode after m, wrapping from MirroredRepeat back to Repeat.
func (m WrapMode) Next() WrapMode {
	m++
	if m > MirroredRepeat {
		m = Repeat
	}
	return m
}

// Selector holds the wrap mode applied to the bound texture. It starts at
// Repeat and is advanced by the key handler.
type Selector struct {
	mode WrapMode
	out  io.Writer
}

// NewSelector returns a Selector reporting mode changes to out, or to
// standard output when out is nil.
func NewSelector(out io.Writer) *Selector {
	if out == nil {
		out = os.Stdout
	}
	return &Selector{out: out}
}

// Mode returns the current wrap mode.
func (s *Selector) Mode() WrapMode {
	return s.mode
}

// Apply sets both wrap axes of the bound 2D texture to the current mode.
func (s *Selector) Apply(g gpu.GL) {
	param, ok := s.mode.Param()
	if !ok {
		return
	}
	g.TexParameteri(gpu.Texture2D, gpu.TextureWrapS, param)
	g.TexParameteri(gpu.Texture2D, gpu.TextureWrapT, param)
	fmt.Fprintf(s.out, "Using %s\n", s.mode)
}

// Cycle advances to the next mode and applies it.
func (s *Selector) Cycle(g gpu.GL) {
	s.mode = s.mode.Next()
	s.Apply(g)
}
