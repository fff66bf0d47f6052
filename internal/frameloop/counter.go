package frameloop

import (
	"log"
	"time"

	"github.com/dustin/go-humanize"
)

// Counter tracks frames drawn by the render loop and logs the rate on an
// interval. It is driven from the loop itself and is not safe for concurrent
// use.
type Counter struct {
	// Cnt is the number of frames drawn since the counter was created.
	Cnt uint64
	// IntvlCnt is the number of frames drawn in the current output interval.
	IntvlCnt uint64

	intvl time.Duration
	now   func() time.Time
	start time.Time
	mark  time.Time
}

// NewCounter constructs a Counter reporting every intvl.
func NewCounter(intvl time.Duration, now func() time.Time) *Counter {
	if now == nil {
		now = time.Now
	}
	t := now()
	return &Counter{intvl: intvl, now: now, start: t, mark: t}
}

// Inc counts one frame and reports when the interval has elapsed.
func (c *Counter) Inc() {
	c.Cnt++
	c.IntvlCnt++
	if t := c.now(); t.Sub(c.mark) >= c.intvl {
		c.outputCounters(t.Sub(c.mark))
		c.mark = t
	}
}

// Rate returns frames per second over d for the current interval.
func (c *Counter) Rate(d time.Duration) float64 {
	if d <= 0 {
		return 0
	}
	return float64(c.IntvlCnt) / d.Seconds()
}

func (c *Counter) outputCounters(elapsed time.Duration) {
	log.Printf("frames total: %s, last %v: %s (%s fps)",
		humanize.Comma(int64(c.Cnt)),
		elapsed.Round(time.Millisecond),
		humanize.Comma(int64(c.IntvlCnt)),
		humanize.FormatFloat("#,###.#", c.Rate(elapsed)))
	c.IntvlCnt = 0
}

// Close logs the totals for the whole run.
func (c *Counter) Close() {
	log.Printf("rendered %s frames in %s", humanize.Comma(int64(c.Cnt)), humanize.RelTime(c.start, c.now(), "", ""))
}
