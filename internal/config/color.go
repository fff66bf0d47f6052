package config

import (
	"fmt"

	"github.com/pkg/errors"
)

var ErrColor = errors.New("color must be 6 or 8 hex digits")

// Color is a clear color written as "rrggbb" or "rrggbbaa".
type Color struct {
	R, G, B, A uint8
}

var (
	Red   = Color{R: 0xff, A: 0xff}
	Black = Color{A: 0xff}
)

// lookup table for hex digits
var hexval = [256]uint8{'0': 0, '1': 1, '2': 2, '3': 3, '4': 4, '5': 5,
	'6': 6, '7': 7, '8': 8, '9': 9, 'a': 0xA, 'A': 0xA, 'b': 0xB, 'B': 0xB, 'c': 0xC, 'C': 0xC, 'd': 0xD, 'D': 0xD,
	'e': 0xE, 'E': 0xE, 'f': 0xF, 'F': 0xF}

func isHex(c byte) bool {
	return hexval[c] != 0 || c == '0'
}

func parseHexByte(m []byte) (uint8, bool) {
	if !isHex(m[0]) || !isHex(m[1]) {
		return 0, false
	}
	return hexval[m[0]]<<4 | hexval[m[1]], true
}

// parseHexColor parses six hex digits as opaque RGB, eight as RGBA.
func parseHexColor(m []byte) (Color, error) {
	if len(m) != 6 && len(m) != 8 {
		return Color{}, errors.Wrapf(ErrColor, "%q", m)
	}
	var ch [4]uint8
	ch[3] = 0xff
	for i := 0; i < len(m)/2; i++ {
		v, ok := parseHexByte(m[2*i:])
		if !ok {
			return Color{}, errors.Wrapf(ErrColor, "%q", m)
		}
		ch[i] = v
	}
	return Color{R: ch[0], G: ch[1], B: ch[2], A: ch[3]}, nil
}

func (c *Color) UnmarshalText(b []byte) error {
	v, err := parseHexColor(b)
	if err != nil {
		return err
	}
	*c = v
	return nil
}

func (c Color) MarshalText() ([]byte, error) {
	return []byte(c.String()), nil
}

func (c Color) String() string {
	return fmt.Sprintf("%02x%02x%02x%02x", c.R, c.G, c.B, c.A)
}

// Floats returns the channels scaled to [0,1], in the order ClearColor takes them.
func (c Color) Floats() (r, g, b, a float32) {
	return float32(c.R) / 255, float32(c.G) / 255, float32(c.B) / 255, float32(c.A) / 255
}
