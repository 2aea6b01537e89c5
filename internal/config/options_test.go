package config_test

import (
	"testing"
	"time"

	"github.com/iburimskiy/circle-playground/internal/config"
	"github.com/iburimskiy/circle-playground/internal/test"
)

func TestPresets(t *testing.T) {
	d := config.Default()
	test.ExpectEquality(t, d.Pacing, config.PacingVSync)
	test.ExpectEquality(t, d.Background, config.BackgroundStatic)

	c := config.Classic()
	test.ExpectEquality(t, c.Pacing, config.PacingManual)
	test.ExpectEquality(t, c.Background, config.BackgroundCycling)
	test.ExpectEquality(t, c.FrameInterval, time.Second/60)
}

func TestValidate(t *testing.T) {
	o := config.Options{
		Pacing:        config.Pacing(99),
		Background:    config.Background(-1),
		FrameInterval: -time.Second,
	}
	test.ExpectSuccess(t, o.Validate())
	test.ExpectEquality(t, o.Pacing, config.PacingVSync)
	test.ExpectEquality(t, o.Background, config.BackgroundStatic)
	test.ExpectEquality(t, o.FrameInterval, config.FrameInterval)
}

func TestStrings(t *testing.T) {
	test.ExpectEquality(t, config.PacingManual.String(), "manual")
	test.ExpectEquality(t, config.PacingVSync.String(), "vsync")
	test.ExpectEquality(t, config.BackgroundCycling.String(), "cycling")
	test.ExpectEquality(t, config.Pacing(7).String(), "unknown")
}

func TestLabelBox(t *testing.T) {
	box := config.LabelBox()
	test.ExpectEquality(t, box.Min.X, 0)
	test.ExpectEquality(t, box.Min.Y, 0)
	test.ExpectEquality(t, box.Dx(), config.LabelWidth)
	test.ExpectEquality(t, box.Dy(), config.LabelHeight)
}
