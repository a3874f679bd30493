// Package render defines the drawing surface the viewer draws on.
package render

import (
	"image"
	"image/color"
)

// Canvas abstracts the screen (ebiten window, software raster, recorder).
type Canvas interface {
	// Clear fills the whole canvas with c.
	Clear(c color.Color)
	// Blit draws the r sub-region of src with its top-left corner at x,y,
	// scaled by an integer factor. Transparent source pixels leave the
	// canvas untouched.
	Blit(src image.Image, r image.Rectangle, x, y, scale int)
	// StrokeRect draws a one pixel outline just inside the w×h rectangle
	// at x,y.
	StrokeRect(x, y, w, h int, c color.Color)
	// Text draws s with its top-left corner at x,y.
	Text(x, y int, s string)
}

// Visible returns the part of r that lies inside bounds and whether any of
// it does.
func Visible(r, bounds image.Rectangle) (image.Rectangle, bool) {
	v := r.Intersect(bounds)
	return v, !v.Empty()
}
