// Package ebitenhost runs the driver inside an ebiten game. Ebiten owns the
// loop so the driver is split across the Update() and Draw() callbacks and
// presenting the frame is left to ebiten.
package ebitenhost

import (
	"bytes"
	"errors"
	"image"
	"image/color"
	"iter"
	"log/slog"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/text/v2"

	"github.com/iburimskiy/circle-playground/internal/config"
	"github.com/iburimskiy/circle-playground/internal/fonts"
	"github.com/iburimskiy/circle-playground/internal/game"
)

// Run opens the window and blocks until the demo stops. A nil error means
// the user quit.
func Run(opts config.Options, font fonts.Source, log *slog.Logger) error {
	_ = opts.Validate()
	if log == nil {
		log = slog.Default()
	}

	g, err := newGame(opts, font, log)
	if err != nil {
		return err
	}

	ebiten.SetWindowSize(config.WindowWidth, config.WindowHeight)
	ebiten.SetWindowTitle(config.WindowTitle)
	ebiten.SetWindowClosingHandled(true)

	switch opts.Pacing {
	case config.PacingVSync:
		ebiten.SetVsyncEnabled(true)
	case config.PacingManual:
		// one update per frame with the driver's sleep as the only limit
		ebiten.SetVsyncEnabled(false)
		ebiten.SetTPS(ebiten.SyncWithFPS)
	}

	log.Info("window", "backend", "ebiten", "width", config.WindowWidth, "height", config.WindowHeight)

	if err := ebiten.RunGame(g); err != nil {
		if errors.Is(err, ebiten.Termination) {
			return nil
		}
		var ie *game.InitError
		var re *game.RenderError
		if errors.As(err, &ie) || errors.As(err, &re) {
			return err
		}
		return &game.InitError{Stage: game.StageWindow, Err: err}
	}
	return nil
}

type ebitenGame struct {
	driver *game.Driver
	label  *labelCache
	wheel  game.WheelAccumulator

	// ebiten's Draw() has no error return. a failure is kept here and
	// returned from the next Update(), ending the game
	err error
}

func newGame(opts config.Options, font fonts.Source, log *slog.Logger) (*ebitenGame, error) {
	src, err := text.NewGoTextFaceSource(bytes.NewReader(font.Data))
	if err != nil {
		return nil, &game.InitError{Stage: game.StageFont, Err: err}
	}

	return &ebitenGame{
		driver: game.NewDriver(opts, game.SystemClock{}, log),
		label: &labelCache{
			face:  &text.GoTextFace{Source: src, Size: config.FontSize},
			color: config.TextColor,
		},
	}, nil
}

// Update implements the ebiten.Game interface.
func (g *ebitenGame) Update() error {
	if g.err != nil {
		return g.err
	}
	if !g.driver.Update(g, g) {
		return ebiten.Termination
	}
	g.driver.Pace()
	return nil
}

// Draw implements the ebiten.Game interface.
func (g *ebitenGame) Draw(screen *ebiten.Image) {
	if g.err != nil {
		return
	}
	f := &frame{screen: screen, label: g.label}
	if err := g.driver.Draw(f, f); err != nil {
		g.err = err
	}
}

// Layout implements the ebiten.Game interface.
func (g *ebitenGame) Layout(outsideWidth, outsideHeight int) (int, int) {
	return config.WindowWidth, config.WindowHeight
}

// Events implements the game.EventSource interface. Ebiten has no event
// queue so the input state of the current tick is translated into events.
func (g *ebitenGame) Events() iter.Seq[game.Event] {
	var events []game.Event

	if ebiten.IsWindowBeingClosed() {
		events = append(events, game.Event{Kind: game.EventQuit, Name: "window close"})
	}

	for _, k := range inpututil.AppendJustPressedKeys(nil) {
		ev := game.Event{Kind: game.EventKeyDown, Key: game.KeyOther, Name: k.String()}
		if k == ebiten.KeyEscape {
			ev.Key = game.KeyEscape
		}
		events = append(events, ev)
	}

	_, dy := ebiten.Wheel()
	if n := g.wheel.Add(dy); n != 0 {
		events = append(events, game.Event{Kind: game.EventScroll, DeltaY: n, Name: "wheel"})
	}

	return func(yield func(game.Event) bool) {
		for _, ev := range events {
			if !yield(ev) {
				return
			}
		}
	}
}

// CursorPosition implements the game.Pointer interface.
func (g *ebitenGame) CursorPosition() image.Point {
	x, y := ebiten.CursorPosition()
	return image.Pt(x, y)
}

// frame is the drawing surface for the duration of a single Draw() call.
type frame struct {
	screen *ebiten.Image
	label  *labelCache
}

func (f *frame) Clear(c color.Color) error {
	f.screen.Fill(c)
	return nil
}

func (f *frame) SetPixel(x, y int, c color.Color) error {
	f.screen.Set(x, y, c)
	return nil
}

func (f *frame) DrawText(label string, box image.Rectangle) error {
	img, err := f.label.render(label)
	if err != nil {
		return err
	}

	w, h := img.Bounds().Dx(), img.Bounds().Dy()
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(float64(box.Dx())/float64(w), float64(box.Dy())/float64(h))
	op.GeoM.Translate(float64(box.Min.X), float64(box.Min.Y))
	op.Filter = ebiten.FilterLinear
	f.screen.DrawImage(img, op)
	return nil
}
