package main

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/iburimskiy/circle-playground/internal/config"
	"github.com/iburimskiy/circle-playground/internal/dialog"
	"github.com/iburimskiy/circle-playground/internal/ebitenhost"
	"github.com/iburimskiy/circle-playground/internal/fonts"
	"github.com/iburimskiy/circle-playground/internal/game"
	"github.com/iburimskiy/circle-playground/internal/logging"
)

// vsync variant: the display paces the loop and the background is static
func main() {
	log := logging.New(slog.LevelInfo)

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
	return ebitenhost.Run(config.Default(), font, log)
}
