package sdlhost

import (
	"fmt"
	"iter"

	"github.com/veandco/go-sdl2/sdl"

	"github.com/iburimskiy/circle-playground/internal/game"
)

// Events implements the game.EventSource interface. Events are taken from the
// SDL queue one at a time so anything after a quit request stays queued.
func (w *Window) Events() iter.Seq[game.Event] {
	return func(yield func(game.Event) bool) {
		for ev := sdl.PollEvent(); ev != nil; ev = sdl.PollEvent() {
			if !yield(translate(ev)) {
				return
			}
		}
	}
}

func translate(ev sdl.Event) game.Event {
	switch e := ev.(type) {
	case *sdl.QuitEvent:
		return game.Event{Kind: game.EventQuit, Name: "quit"}

	case *sdl.KeyboardEvent:
		if e.Type != sdl.KEYDOWN {
			break
		}
		key := game.KeyOther
		if e.Keysym.Sym == sdl.K_ESCAPE {
			key = game.KeyEscape
		}
		return game.Event{Kind: game.EventKeyDown, Key: key, Name: sdl.GetKeyName(e.Keysym.Sym)}

	case *sdl.MouseWheelEvent:
		return game.Event{Kind: game.EventScroll, DeltaY: int(e.Y), Name: "wheel"}
	}

	return game.Event{Kind: game.EventOther, Name: fmt.Sprintf("%T", ev)}
}
