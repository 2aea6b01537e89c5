package game

import (
	"image/color"

	"github.com/iburimskiy/circle-playground/internal/config"
)

// nextHue advances the background cycle index, wrapping at config.HueModulus.
func nextHue(i int) int {
	return (i + 1) % config.HueModulus
}

// hueColor maps the cycle index onto the red and blue channels.
func hueColor(i int) color.RGBA {
	return color.RGBA{R: uint8(i), G: 64, B: uint8(255 - i), A: 255}
}
