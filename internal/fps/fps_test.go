package fps_test

import (
	"testing"
	"time"

	"github.com/iburimskiy/circle-playground/internal/fps"
	"github.com/iburimskiy/circle-playground/internal/test"
)

// frameClock reports the time of frame n at a fixed frame rate. Frame times
// are computed from the frame number so that rounding never accumulates.
type frameClock struct {
	origin time.Time
	rate   int
	frame  int
}

func (c *frameClock) now() time.Time {
	return c.origin.Add(time.Duration(c.frame) * time.Second / time.Duration(c.rate))
}

func TestInitialLabel(t *testing.T) {
	clk := &frameClock{origin: time.Unix(0, 0), rate: 60}
	c := fps.New(clk.now)
	test.ExpectEquality(t, c.Label(), "FPS: 0")
	test.ExpectEquality(t, c.Frames(), 0)
}

func TestTwoAndAHalfSeconds(t *testing.T) {
	clk := &frameClock{origin: time.Unix(100, 0), rate: 60}
	c := fps.New(clk.now)

	var updates []string
	for clk.frame = 1; clk.frame <= 150; clk.frame++ {
		label, updated := c.Tick()
		if updated {
			updates = append(updates, label)
		}
	}

	test.DemandEquality(t, len(updates), 2)
	test.ExpectEquality(t, updates[0], "FPS: 60")
	test.ExpectEquality(t, updates[1], "FPS: 60")
	test.ExpectEquality(t, c.Frames(), 30)
	test.ExpectEquality(t, c.Label(), "FPS: 60")
}

func TestLabelStableWithinSecond(t *testing.T) {
	now := time.Unix(0, 0)
	c := fps.New(func() time.Time { return now })

	for i := 0; i < 10; i++ {
		now = now.Add(50 * time.Millisecond)
		label, updated := c.Tick()
		test.ExpectEquality(t, updated, false, i)
		test.ExpectEquality(t, label, "FPS: 0", i)
	}
	test.ExpectEquality(t, c.Frames(), 10)

	now = now.Add(500 * time.Millisecond)
	label, updated := c.Tick()
	test.ExpectEquality(t, updated, true)
	test.ExpectEquality(t, label, "FPS: 11")
	test.ExpectEquality(t, c.Frames(), 0)
}

func TestFirstWindowStartsAtCreation(t *testing.T) {
	now := time.Unix(0, 0)
	c := fps.New(func() time.Time { return now })

	// a long gap before the first frame is counted as part of the first window
	now = now.Add(3 * time.Second)
	label, updated := c.Tick()
	test.ExpectEquality(t, updated, true)
	test.ExpectEquality(t, label, "FPS: 1")
}

func TestSlowFrames(t *testing.T) {
	now := time.Unix(0, 0)
	c := fps.New(func() time.Time { return now })

	for i := 0; i < 4; i++ {
		now = now.Add(1500 * time.Millisecond)
		label, updated := c.Tick()
		test.ExpectEquality(t, updated, true, i)
		test.ExpectEquality(t, label, "FPS: 1", i)
	}
}
