// Package raster is a software Canvas over an in-memory RGBA image. It backs
// headless runs and tests.
package raster

import (
	"image"
	"image/color"

	"golang.org/x/image/draw"
	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/math/fixed"
)

// Canvas draws into Img.
type Canvas struct {
	Img *image.RGBA

	// Face and Ink are used by Text.
	Face font.Face
	Ink  color.Color
}

// New returns a w×h canvas with white 7x13 text.
func New(w, h int) *Canvas {
	return &Canvas{
		Img:  image.NewRGBA(image.Rect(0, 0, w, h)),
		Face: basicfont.Face7x13,
		Ink:  color.White,
	}
}

func (c *Canvas) Clear(col color.Color) {
	draw.Draw(c.Img, c.Img.Bounds(), image.NewUniform(col), image.Point{}, draw.Src)
}

func (c *Canvas) Blit(src image.Image, r image.Rectangle, x, y, scale int) {
	if src == nil || r.Empty() {
		return
	}
	if scale < 1 {
		scale = 1
	}
	dr := image.Rect(x, y, x+r.Dx()*scale, y+r.Dy()*scale)
	draw.NearestNeighbor.Scale(c.Img, dr, src, r, draw.Over, nil)
}

func (c *Canvas) StrokeRect(x, y, w, h int, col color.Color) {
	if w <= 0 || h <= 0 {
		return
	}
	ink := image.NewUniform(col)
	for _, edge := range []image.Rectangle{
		image.Rect(x, y, x+w, y+1),     // top
		image.Rect(x, y+h-1, x+w, y+h), // bottom
		image.Rect(x, y, x+1, y+h),     // left
		image.Rect(x+w-1, y, x+w, y+h), // right
	} {
		draw.Draw(c.Img, edge, ink, image.Point{}, draw.Src)
	}
}

func (c *Canvas) Text(x, y int, s string) {
	face := c.Face
	if face == nil {
		face = basicfont.Face7x13
	}
	ink := c.Ink
	if ink == nil {
		ink = color.White
	}
	d := font.Drawer{
		Dst:  c.Img,
		Src:  image.NewUniform(ink),
		Face: face,
		Dot:  fixed.P(x, y+face.Metrics().Ascent.Ceil()),
	}
	d.DrawString(s)
}
