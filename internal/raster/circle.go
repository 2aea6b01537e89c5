// Package raster turns a circle into the discrete set of boundary pixels
// approximating it, using the implicit equation (x-cx)² + (y-cy)² = r².
package raster

import (
	"image"
	"image/color"
	"iter"
	"math"
)

// PixelSetter is anything that can have a single pixel painted.
type PixelSetter interface {
	SetPixel(x, y int, c color.Color) error
}

// Circle returns the boundary points of the circle with the given center and
// radius.
//
// The points come from two passes. The first walks x over [cx-r, cx+r) and
// emits each (x, y) followed by its vertical mirror (x, 2cy-y). The second
// walks y over [cy-r, cy+r) and emits each (x, y) followed by its horizontal
// mirror (2cx-x, y). Points are not deduplicated so some coordinates are
// emitted more than once. A radius of zero or less produces no points.
//
// The sequence is computed lazily; stopping the range loop early is fine.
func Circle(center image.Point, r int) iter.Seq[image.Point] {
	return func(yield func(image.Point) bool) {
		cx, cy := center.X, center.Y

		for x := cx - r; x < cx+r; x++ {
			y := offset(r, x-cx) + cy
			if !yield(image.Pt(x, y)) {
				return
			}
			if !yield(image.Pt(x, 2*cy-y)) {
				return
			}
		}

		for y := cy - r; y < cy+r; y++ {
			x := offset(r, y-cy) + cx
			if !yield(image.Pt(x, y)) {
				return
			}
			if !yield(image.Pt(2*cx-x, y)) {
				return
			}
		}
	}
}

// offset solves the circle equation for the other axis, rounding to the
// nearest integer.
func offset(r, d int) int {
	return int(math.Round(math.Sqrt(float64(r*r - d*d))))
}

// DrawCircle paints every point of Circle() onto dst. It stops at the first
// pixel that fails.
func DrawCircle(dst PixelSetter, center image.Point, r int, c color.Color) error {
	for p := range Circle(center, r) {
		if err := dst.SetPixel(p.X, p.Y, c); err != nil {
			return err
		}
	}
	return nil
}
