package main

import (
	"fmt"
	"log/slog"
	"os"
	"runtime"

	"github.com/iburimskiy/circle-playground/internal/config"
	"github.com/iburimskiy/circle-playground/internal/dialog"
	"github.com/iburimskiy/circle-playground/internal/fonts"
	"github.com/iburimskiy/circle-playground/internal/game"
	"github.com/iburimskiy/circle-playground/internal/logging"
	"github.com/iburimskiy/circle-playground/internal/sdlhost"
)

// SDL must be driven from the main thread
func init() {
	runtime.LockOSThread()
}

// classic variant: no cap from the display, a fixed sleep per frame and a
// cycling background. every event is logged
func main() {
	log := logging.New(slog.LevelDebug)

	err := run(log)
	if err != nil {
		log.Error("fatal", "err", err)
		fmt.Fprintln(os.Stderr, err)
		if derr := dialog.Fatal(err); derr != nil {
			log.Debug("no dialog", "err", derr)
		}
	}
	os.Exit(game.ExitCode(err))
}

func run(log *slog.Logger) error {
	font, err := fonts.Load(config.FontPath)
	if err != nil {
		return &game.InitError{Stage: game.StageFont, Err: err}
	}

	opts := config.Classic()

	wnd, err := sdlhost.Open(opts, font, log)
	if err != nil {
		return err
	}
	defer wnd.Close()

	return game.NewDriver(opts, game.SystemClock{}, log).Run(wnd)
}
