// Package input dispatches window events to handlers registered by a program.
//
// A Dispatcher is owned by the window bootstrap and invoked synchronously from
// the event poll, so handlers run on the render thread with the context current.
package input

import (
	"fmt"
	"io"
	"log"
	"unicode"
)

// Key identifies a keyboard key. Printable keys use the upper-case ASCII code
// of their symbol, which is also what GLFW reports for them.
type Key int

const (
	KeyUnknown Key = -1
	KeySpace   Key = ' '
	KeyQ       Key = 'Q'
	KeyW       Key = 'W'
	KeyEscape  Key = 256
)

// FromRune maps a printable character to its Key, folding letters to upper
// case. Characters outside printable ASCII map to KeyUnknown.
func FromRune(r rune) Key {
	if r < ' ' || r > '~' {
		return KeyUnknown
	}
	return Key(unicode.ToUpper(r))
}

func (k Key) String() string {
	switch {
	case k == KeyEscape:
		return "Escape"
	case k == KeySpace:
		return "Space"
	case k > ' ' && k <= '~':
		return string(rune(k))
	}
	return fmt.Sprintf("Key(%d)", int(k))
}

// Action is the state change of a key.
type Action int

const (
	Release Action = iota
	Press
	Repeat
)

func (a Action) String() string {
	switch a {
	case Release:
		return "release"
	case Press:
		return "press"
	case Repeat:
		return "repeat"
	}
	return fmt.Sprintf("Action(%d)", int(a))
}

// Closer is a window that can be asked to close at the end of the frame.
type Closer interface {
	SetShouldClose(bool)
}

// Dispatcher routes key, resize and library-error events.
//
// Key handlers fire on Press only. OnResize and OnError may be nil; a nil
// OnError logs the description.
type Dispatcher struct {
	OnResize func(width, height int)
	OnError  func(code int, desc string)

	keys map[Key]func()
}

// NewDispatcher returns a Dispatcher with no bindings.
func NewDispatcher() *Dispatcher {
	return &Dispatcher{keys: make(map[Key]func())}
}

// Bind runs fn whenever k is pressed, replacing any earlier binding.
func (d *Dispatcher) Bind(k Key, fn func()) {
	if d.keys == nil {
		d.keys = make(map[Key]func())
	}
	d.keys[k] = fn
}

// QuitOn binds k to a close request on c.
func (d *Dispatcher) QuitOn(k Key, c Closer) {
	d.Bind(k, func() { c.SetShouldClose(true) })
}

// Key delivers a key event and reports whether a binding ran.
func (d *Dispatcher) Key(k Key, a Action) bool {
	if a != Press {
		return false
	}
	fn, ok := d.keys[k]
	if !ok {
		return false
	}
	fn()
	return true
}

// Resize delivers a framebuffer size change.
func (d *Dispatcher) Resize(width, height int) {
	if d.OnResize != nil {
		d.OnResize(width, height)
	}
}

// Error delivers a windowing library error. It never stops the program.
func (d *Dispatcher) Error(code int, desc string) {
	if d.OnError != nil {
		d.OnError(code, desc)
		return
	}
	log.Printf("Error: %s", desc)
}

// ReportResize returns a resize handler that prints the new size to out.
func ReportResize(out io.Writer) func(width, height int) {
	return func(width, height int) {
		fmt.Fprintf(out, "Window resized, new window size: %d x %d\n", width, height)
	}
}
