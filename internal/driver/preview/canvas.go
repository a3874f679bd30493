package preview

import (
	"image"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

// Canvas draws on the ebiten screen handed to Game.Draw.
type Canvas struct {
	screen *ebiten.Image

	// GPU copy of the last blitted source. The sheet changes only on
	// reload, so one slot is enough.
	src image.Image
	img *ebiten.Image
}

func (c *Canvas) upload(src image.Image) *ebiten.Image {
	if src == c.src && c.img != nil {
		return c.img
	}
	if c.img != nil {
		c.img.Deallocate()
	}
	c.src = src
	c.img = ebiten.NewImageFromImage(src)
	return c.img
}

func (c *Canvas) Clear(col color.Color) { c.screen.Fill(col) }

func (c *Canvas) Blit(src image.Image, r image.Rectangle, x, y, scale int) {
	if src == nil || r.Empty() || scale < 1 {
		return
	}
	img := c.upload(src)
	// The uploaded copy starts at the origin.
	r = r.Sub(src.Bounds().Min)
	sub := img.SubImage(r).(*ebiten.Image)

	var op ebiten.DrawImageOptions
	op.GeoM.Scale(float64(scale), float64(scale))
	op.GeoM.Translate(float64(x), float64(y))
	op.Filter = ebiten.FilterNearest
	c.screen.DrawImage(sub, &op)
}

func (c *Canvas) StrokeRect(x, y, w, h int, col color.Color) {
	if w < 1 || h < 1 {
		return
	}
	// Centre the one pixel stroke on the pixel row just inside the outline.
	vector.StrokeRect(c.screen, float32(x)+0.5, float32(y)+0.5, float32(w-1), float32(h-1), 1, col, false)
}

func (c *Canvas) Text(x, y int, s string) { ebitenutil.DebugPrintAt(c.screen, s, x, y) }
