// Package fps measures how many frames are presented per wall-clock second.
package fps

import (
	"strconv"
	"time"
)

const window = time.Second

// Counter produces a label of the form "FPS: <n>" which changes at most once
// per second. The label always describes the last completed one second
// window, never the window currently being measured.
type Counter struct {
	now    func() time.Time
	frames int
	start  time.Time
	label  string
}

// New returns a counter whose first window starts immediately. There is no
// warm-up period so the first label includes anything that happened between
// creation of the counter and the first frame.
func New(now func() time.Time) *Counter {
	if now == nil {
		now = time.Now
	}
	return &Counter{
		now:   now,
		start: now(),
		label: format(0),
	}
}

// Tick records one frame and returns the current label. The updated flag is
// true if the label was refreshed by this call.
func (c *Counter) Tick() (string, bool) {
	c.frames++

	t := c.now()
	if t.Sub(c.start) < window {
		return c.label, false
	}

	c.label = format(c.frames)
	c.frames = 0
	c.start = t
	return c.label, true
}

// Label returns the label without recording a frame.
func (c *Counter) Label() string {
	return c.label
}

// Frames returns the number of frames counted in the current window.
func (c *Counter) Frames() int {
	return c.frames
}

func format(n int) string {
	return "FPS: " + strconv.Itoa(n)
}
