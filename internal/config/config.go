package config

import (
	"image"
	"image/color"
	"time"
)

const (
	WindowTitle  = "Playground"
	WindowWidth  = 800
	WindowHeight = 800

	// Font used for the FPS label. An empty path lets the font loader pick
	// a system font or the embedded fallback.
	FontPath = ""
	FontSize = 128

	// The label is rendered at FontSize and scaled into this box at the origin.
	LabelWidth  = 100
	LabelHeight = 50

	// Circle parameters
	InitialRadius = 200
	ScrollStep    = 5

	// Background hue cycle wraps at this value
	HueModulus = 255

	FrameInterval = time.Second / 60
)

var (
	StaticBackground = color.RGBA{R: 0, G: 0, B: 0, A: 255}
	SplashBackground = color.RGBA{R: 0, G: 255, B: 255, A: 255}
	CircleColor      = color.RGBA{R: 255, G: 255, B: 255, A: 255}
	TextColor        = color.RGBA{R: 255, G: 255, B: 255, A: 255}
)

// LabelBox is the fixed rectangle the FPS label is drawn into.
func LabelBox() image.Rectangle {
	return image.Rect(0, 0, LabelWidth, LabelHeight)
}
