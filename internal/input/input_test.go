package input

import (
	"bytes"
	"log"
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
)

type fakeWindow struct{ closing bool }

func (w *fakeWindow) SetShouldClose(v bool) { w.closing = v }

func TestQuitOnPressOnly(t *testing.T) {
	w := &fakeWindow{}
	d := NewDispatcher()
	d.QuitOn(KeyQ, w)

	assert.False(t, d.Key(KeyQ, Release))
	assert.False(t, d.Key(KeyQ, Repeat))
	assert.False(t, w.closing)

	assert.False(t, d.Key(KeyW, Press))
	assert.False(t, w.closing)

	assert.True(t, d.Key(KeyQ, Press))
	assert.True(t, w.closing)
}

func TestBindReplaces(t *testing.T) {
	var got []string
	var d Dispatcher
	d.Bind(KeyW, func() { got = append(got, "first") })
	d.Bind(KeyW, func() { got = append(got, "second") })

	d.Key(KeyW, Press)
	d.Key(KeyW, Press)
	assert.Equal(t, []string{"second", "second"}, got)
}

func TestResize(t *testing.T) {
	var d Dispatcher
	d.Resize(10, 20) // no handler

	var out bytes.Buffer
	d.OnResize = ReportResize(&out)
	d.Resize(640, 480)
	assert.Equal(t, "Window resized, new window size: 640 x 480\n", out.String())
}

func TestErrorDefaultLogs(t *testing.T) {
	var buf bytes.Buffer
	log.SetOutput(&buf)
	defer log.SetOutput(os.Stderr)

	d := NewDispatcher()
	d.Error(0x10008, "X11: Failed to open display")
	assert.Contains(t, buf.String(), "Error: X11: Failed to open display")

	var code int
	d.OnError = func(c int, _ string) { code = c }
	d.Error(0x10006, "unavailable")
	assert.Equal(t, 0x10006, code)
}

func TestFromRune(t *testing.T) {
	assert.Equal(t, KeyQ, FromRune('q'))
	assert.Equal(t, KeyQ, FromRune('Q'))
	assert.Equal(t, Key('1'), FromRune('1'))
	assert.Equal(t, KeySpace, FromRune(' '))
	assert.Equal(t, KeyUnknown, FromRune('\n'))
	assert.Equal(t, KeyUnknown, FromRune('é'))
}

func TestStrings(t *testing.T) {
	assert.Equal(t, "Q", KeyQ.String())
	assert.Equal(t, "Escape", KeyEscape.String())
	assert.Equal(t, "Key(-1)", KeyUnknown.String())
	assert.Equal(t, "press", Press.String())
	assert.Equal(t, "Action(9)", Action(9).String())
}
