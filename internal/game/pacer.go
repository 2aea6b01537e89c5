package game

import (
	"time"

	"github.com/iburimskiy/circle-playground/internal/config"
)

// Clock is the source of wall-clock time and sleeping for the driver.
type Clock interface {
	Now() time.Time
	Sleep(d time.Duration)
}

// SystemClock is the real time Clock.
type SystemClock struct{}

func (SystemClock) Now() time.Time        { return time.Now() }
func (SystemClock) Sleep(d time.Duration) { time.Sleep(d) }

// pacer decides how long to wait at the end of a frame.
type pacer interface {
	wait()
}

// vsyncPacer never waits. The present call blocks until the display refresh.
type vsyncPacer struct{}

func (vsyncPacer) wait() {}

type sleepPacer struct {
	clock    Clock
	interval time.Duration
}

func (p sleepPacer) wait() {
	p.clock.Sleep(p.interval)
}

func newPacer(opts config.Options, clock Clock) pacer {
	if opts.Pacing == config.PacingManual {
		return sleepPacer{clock: clock, interval: opts.FrameInterval}
	}
	return vsyncPacer{}
}
