// Package sdlhost implements the driver's collaborators on SDL2. The window
// returned by Open() satisfies game.Host so the driver owns the loop.
//
// SDL must only be used from the main thread. The program using this package
// should lock the main goroutine to the main thread before calling Open().
package sdlhost

import (
	"image"
	"image/color"
	"log/slog"

	"github.com/veandco/go-sdl2/sdl"
	"github.com/veandco/go-sdl2/ttf"

	"github.com/iburimskiy/circle-playground/internal/config"
	"github.com/iburimskiy/circle-playground/internal/fonts"
	"github.com/iburimskiy/circle-playground/internal/game"
)

// Window is an SDL window with an accelerated renderer and the label font.
type Window struct {
	log *slog.Logger

	window   *sdl.Window
	renderer *sdl.Renderer
	font     *ttf.Font

	// the font is read lazily from this memory when it wasn't loaded from a
	// file. it must stay alive as long as the font is open
	fontData []byte

	// the most recently rendered label
	labelText    string
	labelTexture *sdl.Texture

	// colour last set on the renderer
	drawColor color.RGBA
	haveColor bool

	// subsystems to shut down in Close()
	sdlInit bool
	ttfInit bool
}

// Open initialises SDL and SDL_ttf and creates the window. Every failure is
// returned as a *game.InitError.
func Open(opts config.Options, font fonts.Source, log *slog.Logger) (*Window, error) {
	_ = opts.Validate()
	if log == nil {
		log = slog.Default()
	}

	w := &Window{log: log}

	if err := sdl.Init(sdl.INIT_EVENTS); err != nil {
		return nil, &game.InitError{Stage: game.StageContext, Err: err}
	}
	w.sdlInit = true

	if err := sdl.InitSubSystem(sdl.INIT_VIDEO); err != nil {
		w.Close()
		return nil, &game.InitError{Stage: game.StageVideo, Err: err}
	}

	if err := ttf.Init(); err != nil {
		w.Close()
		return nil, &game.InitError{Stage: game.StageFontContext, Err: err}
	}
	w.ttfInit = true

	var err error

	w.window, err = sdl.CreateWindow(config.WindowTitle,
		sdl.WINDOWPOS_CENTERED, sdl.WINDOWPOS_CENTERED,
		config.WindowWidth, config.WindowHeight, sdl.WINDOW_SHOWN)
	if err != nil {
		w.Close()
		return nil, &game.InitError{Stage: game.StageWindow, Err: err}
	}

	flags := uint32(sdl.RENDERER_ACCELERATED)
	if opts.Pacing == config.PacingVSync {
		flags |= sdl.RENDERER_PRESENTVSYNC
	}
	w.renderer, err = sdl.CreateRenderer(w.window, -1, flags)
	if err != nil {
		w.Close()
		return nil, &game.InitError{Stage: game.StageCanvas, Err: err}
	}

	if err := w.openFont(font); err != nil {
		w.Close()
		return nil, &game.InitError{Stage: game.StageFont, Err: err}
	}

	// show something straight away. the loop clears over it on the first frame
	if err := w.Clear(config.SplashBackground); err != nil {
		w.Close()
		return nil, &game.InitError{Stage: game.StageCanvas, Err: err}
	}
	w.renderer.Present()

	log.Info("window", "backend", "sdl", "width", config.WindowWidth, "height", config.WindowHeight, "font", font.Path)

	return w, nil
}

func (w *Window) openFont(font fonts.Source) error {
	var err error

	if font.Path != "" {
		w.font, err = ttf.OpenFont(font.Path, config.FontSize)
		return err
	}

	rw, err := sdl.RWFromMem(font.Data)
	if err != nil {
		return err
	}
	w.fontData = font.Data

	// SDL takes ownership of rw and frees it when the font is closed
	w.font, err = ttf.OpenFontRW(rw, 1, config.FontSize)
	return err
}

// Close releases everything created by Open(). It is safe to call on a
// partially opened window.
func (w *Window) Close() {
	if w.labelTexture != nil {
		_ = w.labelTexture.Destroy()
		w.labelTexture = nil
	}
	if w.font != nil {
		w.font.Close()
		w.font = nil
	}
	w.fontData = nil
	if w.renderer != nil {
		_ = w.renderer.Destroy()
		w.renderer = nil
	}
	if w.window != nil {
		_ = w.window.Destroy()
		w.window = nil
	}
	if w.ttfInit {
		ttf.Quit()
		w.ttfInit = false
	}
	if w.sdlInit {
		sdl.Quit()
		w.sdlInit = false
	}
}

// CursorPosition implements the game.Pointer interface.
func (w *Window) CursorPosition() image.Point {
	x, y, _ := sdl.GetMouseState()
	return image.Pt(int(x), int(y))
}

func (w *Window) setColor(c color.Color) error {
	rgba := toRGBA(c)
	if w.haveColor && rgba == w.drawColor {
		return nil
	}
	if err := w.renderer.SetDrawColor(rgba.R, rgba.G, rgba.B, rgba.A); err != nil {
		return err
	}
	w.drawColor = rgba
	w.haveColor = true
	return nil
}

// Clear implements the game.Canvas interface.
func (w *Window) Clear(c color.Color) error {
	if err := w.setColor(c); err != nil {
		return err
	}
	return w.renderer.Clear()
}

// SetPixel implements the game.Canvas interface.
func (w *Window) SetPixel(x, y int, c color.Color) error {
	if err := w.setColor(c); err != nil {
		return err
	}
	return w.renderer.DrawPoint(int32(x), int32(y))
}

// DrawText implements the game.TextRenderer interface.
func (w *Window) DrawText(label string, box image.Rectangle) error {
	if w.labelTexture == nil || label != w.labelText {
		if err := w.renderLabel(label); err != nil {
			return err
		}
	}

	dst := sdl.Rect{
		X: int32(box.Min.X),
		Y: int32(box.Min.Y),
		W: int32(box.Dx()),
		H: int32(box.Dy()),
	}
	return w.renderer.Copy(w.labelTexture, nil, &dst)
}

func (w *Window) renderLabel(label string) error {
	c := toRGBA(config.TextColor)
	surface, err := w.font.RenderUTF8Blended(label, sdl.Color{R: c.R, G: c.G, B: c.B, A: c.A})
	if err != nil {
		return err
	}
	defer surface.Free()

	texture, err := w.renderer.CreateTextureFromSurface(surface)
	if err != nil {
		return err
	}

	if w.labelTexture != nil {
		_ = w.labelTexture.Destroy()
	}
	w.labelTexture = texture
	w.labelText = label
	return nil
}

// Present implements the game.Host interface. With vsync enabled this blocks
// until the display refresh.
func (w *Window) Present() error {
	w.renderer.Present()
	return nil
}

func toRGBA(c color.Color) color.RGBA {
	return color.RGBAModel.Convert(c).(color.RGBA)
}
