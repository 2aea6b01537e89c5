package game

import (
	"image"
	"image/color"
	"iter"
)

// EventKind identifies the type of an input event.
type EventKind int

const (
	EventOther EventKind = iota
	EventQuit
	EventKeyDown
	EventScroll
)

func (k EventKind) String() string {
	switch k {
	case EventQuit:
		return "quit"
	case EventKeyDown:
		return "keydown"
	case EventScroll:
		return "scroll"
	}
	return "other"
}

// Key is the subset of keys the driver reacts to.
type Key int

const (
	KeyOther Key = iota
	KeyEscape
)

// Event is a single input event translated from the windowing backend.
type Event struct {
	Kind EventKind

	// Key is only meaningful for EventKeyDown.
	Key Key

	// DeltaY is the vertical wheel movement in whole ticks for EventScroll.
	// Positive values are away from the user.
	DeltaY int

	// Name is a description of the backend event, used for logging.
	Name string
}

// EventSource drains the pending input events without blocking. Stopping the
// iteration early leaves the remaining events unread.
type EventSource interface {
	Events() iter.Seq[Event]
}

// Pointer reports the cursor position in surface coordinates.
type Pointer interface {
	CursorPosition() image.Point
}

// Canvas is the drawing surface for a single frame.
type Canvas interface {
	Clear(c color.Color) error
	SetPixel(x, y int, c color.Color) error
}

// TextRenderer draws a string scaled into a box of the surface.
type TextRenderer interface {
	DrawText(label string, box image.Rectangle) error
}

// Host is a backend which owns the loop. It provides every collaborator the
// driver needs along with a way of presenting the finished frame.
type Host interface {
	EventSource
	Pointer
	Canvas
	TextRenderer
	Present() error
}
