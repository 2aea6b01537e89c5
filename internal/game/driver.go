// Package game contains the render loop driver. It owns the state of the demo
// and decides, one frame at a time, what is drawn and when the loop stops.
// Everything it touches outside of its own state is reached through the
// collaborator interfaces in events.go, which the windowing backends
// implement.
package game

import (
	"image"
	"image/color"
	"log/slog"

	"github.com/iburimskiy/circle-playground/internal/config"
	"github.com/iburimskiy/circle-playground/internal/fps"
	"github.com/iburimskiy/circle-playground/internal/raster"
)

// FrameState is the part of the demo controlled by input.
type FrameState struct {
	// Radius is never clamped. Scrolling down far enough makes it negative,
	// in which case nothing is drawn until it is scrolled back up.
	Radius int
	Center image.Point
}

// Driver runs the demo. It is not safe for concurrent use; all methods must
// be called from the goroutine running the loop.
type Driver struct {
	opts  config.Options
	log   *slog.Logger
	pace  pacer
	fps   *fps.Counter
	state FrameState

	// background cycle index, only advanced for config.BackgroundCycling
	hue int

	stopped bool
}

// NewDriver is the preferred method of initialisation for the Driver type.
// The FPS measurement window starts immediately.
func NewDriver(opts config.Options, clock Clock, log *slog.Logger) *Driver {
	_ = opts.Validate()
	if clock == nil {
		clock = SystemClock{}
	}
	if log == nil {
		log = slog.Default()
	}
	return &Driver{
		opts:  opts,
		log:   log,
		pace:  newPacer(opts, clock),
		fps:   fps.New(clock.Now),
		state: FrameState{Radius: config.InitialRadius},
	}
}

// State returns a copy of the current frame state.
func (d *Driver) State() FrameState {
	return d.state
}

// Label returns the current FPS label.
func (d *Driver) Label() string {
	return d.fps.Label()
}

// Stopped returns true once a quit request has been seen.
func (d *Driver) Stopped() bool {
	return d.stopped
}

// Update drains the pending events and samples the pointer. It returns false
// if the loop should stop, in which case any events after the quit request
// are left unread.
func (d *Driver) Update(src EventSource, ptr Pointer) bool {
	if d.stopped {
		return false
	}

	for ev := range src.Events() {
		switch ev.Kind {
		case EventQuit:
			d.stop(ev)
			return false
		case EventKeyDown:
			if ev.Key == KeyEscape {
				d.stop(ev)
				return false
			}
			d.log.Debug("event", "kind", ev.Kind, "name", ev.Name)
		case EventScroll:
			d.state.Radius += ev.DeltaY * config.ScrollStep
			d.log.Debug("event", "kind", ev.Kind, "delta", ev.DeltaY, "radius", d.state.Radius)
		default:
			d.log.Debug("event", "kind", ev.Kind, "name", ev.Name)
		}
	}

	d.state.Center = ptr.CursorPosition()
	return true
}

func (d *Driver) stop(ev Event) {
	d.stopped = true
	d.log.Info("stopping", "kind", ev.Kind, "name", ev.Name)
}

// Draw renders the frame: background, FPS label and circle. Presenting the
// frame is left to the caller.
func (d *Driver) Draw(c Canvas, t TextRenderer) error {
	if err := c.Clear(d.background()); err != nil {
		return &RenderError{Op: "clear", Err: err}
	}

	label, updated := d.fps.Tick()
	if updated {
		d.log.Debug("fps", "label", label)
	}

	if err := t.DrawText(label, config.LabelBox()); err != nil {
		return &RenderError{Op: "text", Err: err}
	}

	if err := raster.DrawCircle(c, d.state.Center, d.state.Radius, config.CircleColor); err != nil {
		return &RenderError{Op: "pixel", Err: err}
	}

	return nil
}

func (d *Driver) background() color.Color {
	if d.opts.Background != config.BackgroundCycling {
		return config.StaticBackground
	}
	d.hue = nextHue(d.hue)
	return hueColor(d.hue)
}

// Pace waits for the end of the frame according to the pacing mode.
func (d *Driver) Pace() {
	d.pace.wait()
}

// Step runs a single iteration of the loop on a host that owns the loop. It
// returns false when the loop should stop.
func (d *Driver) Step(h Host) (bool, error) {
	if !d.Update(h, h) {
		return false, nil
	}

	if err := d.Draw(h, h); err != nil {
		return false, err
	}

	if err := h.Present(); err != nil {
		return false, &RenderError{Op: "present", Err: err}
	}

	d.Pace()
	return true, nil
}

// Run steps the loop until a quit request or the first failure.
func (d *Driver) Run(h Host) error {
	d.log.Info("running", "pacing", d.opts.Pacing, "background", d.opts.Background)
	for {
		ok, err := d.Step(h)
		if err != nil {
			return err
		}
		if !ok {
			return nil
		}
	}
}
