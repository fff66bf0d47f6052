package frameloop

import (
	"bytes"
	"log"
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

// surface closes after a fixed number of close checks and records the order
// of loop calls.
type surface struct {
	frames int
	calls  []string
}

func (s *surface) ShouldClose() bool {
	s.calls = append(s.calls, "check")
	return s.frames == 0
}

func (s *surface) SwapBuffers() { s.calls = append(s.calls, "swap") }

func (s *surface) PollEvents() {
	s.calls = append(s.calls, "poll")
	s.frames--
}

func TestRunOrder(t *testing.T) {
	s := &surface{frames: 2}
	state := Run(s, func() { s.calls = append(s.calls, "draw") })

	assert.Equal(t, Terminating, state)
	assert.Equal(t, []string{
		"check", "draw", "swap", "poll",
		"check", "draw", "swap", "poll",
		"check",
	}, s.calls)
}

func TestRunClosedBeforeFirstFrame(t *testing.T) {
	s := &surface{}
	drawn := 0
	assert.Equal(t, Terminating, Run(s, func() { drawn++ }))
	assert.Zero(t, drawn)
}

// closeInHandler asks to close from inside the event poll, as a key binding does.
type closeInHandler struct {
	closing bool
	frames  int
}

func (s *closeInHandler) ShouldClose() bool { return s.closing }
func (s *closeInHandler) SwapBuffers()      {}
func (s *closeInHandler) PollEvents()       { s.closing = true }

func TestRunFinishesFrameOnCloseRequest(t *testing.T) {
	s := &closeInHandler{}
	Run(s, func() { s.frames++ })
	assert.Equal(t, 1, s.frames)
}

func TestStateString(t *testing.T) {
	assert.Equal(t, "running", Running.String())
	assert.Equal(t, "terminating", Terminating.String())
	assert.Equal(t, "State(5)", State(5).String())
}

type clock struct{ t time.Time }

func (c *clock) now() time.Time { return c.t }

func TestCounter(t *testing.T) {
	var buf bytes.Buffer
	log.SetOutput(&buf)
	defer log.SetOutput(os.Stderr)

	c := &clock{t: time.Unix(0, 0)}
	cnt := NewCounter(time.Second, c.now)

	for i := 0; i < 59; i++ {
		cnt.Inc()
	}
	assert.Empty(t, buf.String())
	assert.Equal(t, uint64(59), cnt.IntvlCnt)

	c.t = c.t.Add(time.Second)
	cnt.Inc()
	assert.Contains(t, buf.String(), "frames total: 60, last 1s: 60 (60.0 fps)")
	assert.Equal(t, uint64(0), cnt.IntvlCnt)
	assert.Equal(t, uint64(60), cnt.Cnt)

	cnt.Close()
	assert.Contains(t, buf.String(), "rendered 60 frames")
}

func TestCounterRate(t *testing.T) {
	cnt := NewCounter(time.Second, nil)
	cnt.IntvlCnt = 30
	assert.InDelta(t, 15.0, cnt.Rate(2*time.Second), 1e-9)
	assert.Zero(t, cnt.Rate(0))
}

func TestRunWithStats(t *testing.T) {
	var buf bytes.Buffer
	log.SetOutput(&buf)
	defer log.SetOutput(os.Stderr)

	c := &clock{t: time.Unix(0, 0)}
	s := &surface{frames: 3}
	Run(s, func() { c.t = c.t.Add(500 * time.Millisecond) }, WithStats(time.Second), WithClock(c.now))

	assert.Contains(t, buf.String(), "frames total: 2, last 1s: 2")
	assert.Contains(t, buf.String(), "rendered 3 frames")
}
