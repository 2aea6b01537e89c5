package config

import "time"

// Pacing selects what limits the frame rate of the render loop.
type Pacing int

const (
	// PacingVSync relies on the display's vertical sync; presenting a frame
	// blocks until the refresh interval has elapsed.
	PacingVSync Pacing = iota
	// PacingManual sleeps a fixed interval after every frame.
	PacingManual
)

func (p Pacing) String() string {
	switch p {
	case PacingVSync:
		return "vsync"
	case PacingManual:
		return "manual"
	}
	return "unknown"
}

// Background selects how the surface is cleared each frame.
type Background int

const (
	BackgroundStatic Background = iota
	BackgroundCycling
)

func (b Background) String() string {
	switch b {
	case BackgroundStatic:
		return "static"
	case BackgroundCycling:
		return "cycling"
	}
	return "unknown"
}

// Options holds the per-variant choices of the render loop. Each program
// variant builds its Options from one of the presets; there are no flags.
type Options struct {
	Pacing        Pacing
	Background    Background
	FrameInterval time.Duration
}

// Default returns the vsync variant: external pacing over a static background.
func Default() Options {
	return Options{
		Pacing:        PacingVSync,
		Background:    BackgroundStatic,
		FrameInterval: FrameInterval,
	}
}

// Classic returns the variant with no frame-rate cap from the display,
// sleeping 1/60 s per frame and cycling the background hue.
func Classic() Options {
	return Options{
		Pacing:        PacingManual,
		Background:    BackgroundCycling,
		FrameInterval: FrameInterval,
	}
}

// Validate normalises values to usable ranges.
func (o *Options) Validate() error {
	if o.FrameInterval <= 0 {
		o.FrameInterval = FrameInterval
	}
	if o.Pacing != PacingVSync && o.Pacing != PacingManual {
		o.Pacing = PacingVSync
	}
	if o.Background != BackgroundStatic && o.Background != BackgroundCycling {
		o.Background = BackgroundStatic
	}
	return nil
}
