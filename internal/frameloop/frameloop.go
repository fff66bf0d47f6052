// Package frameloop runs the render loop shared by every program.
package frameloop

import (
	"fmt"
	"time"
)

// State is the phase of a render loop.
type State int

const (
	Running State = iota
	Terminating
)

func (s State) String() string {
	switch s {
	case Running:
		return "running"
	case Terminating:
		return "terminating"
	}
	return fmt.Sprintf("State(%d)", int(s))
}

// Surface is a window with a double-buffered context.
type Surface interface {
	ShouldClose() bool
	SwapBuffers()
	PollEvents()
}

type loop struct {
	stats time.Duration
	now   func() time.Time
}

type Option func(*loop)

// WithStats logs the frame rate every interval. A zero interval disables it.
func WithStats(interval time.Duration) Option {
	return func(l *loop) { l.stats = interval }
}

// WithClock replaces time.Now for the frame counter.
func WithClock(now func() time.Time) Option {
	return func(l *loop) { l.now = now }
}

// Run draws frames on s until it is asked to close. Each iteration calls frame,
// swaps buffers and then polls events, so handlers see the frame just shown.
// The close request is read once per iteration, before drawing.
func Run(s Surface, frame func(), opts ...Option) State {
	l := loop{now: time.Now}
	for _, o := range opts {
		o(&l)
	}

	var c *Counter
	if l.stats > 0 {
		c = NewCounter(l.stats, l.now)
	}

	state := Running
	for state == Running {
		if s.ShouldClose() {
			state = Terminating
			break
		}
		frame()
		s.SwapBuffers()
		s.PollEvents()
		if c != nil {
			c.Inc()
		}
	}
	if c != nil {
		c.Close()
	}
	return state
}
