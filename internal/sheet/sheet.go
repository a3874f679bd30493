// Package sheet loads the sprite sheet image.
package sheet

import (
	"errors"
	"fmt"
	"image"
	"image/draw"
	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"
	"os"
)

// ErrEmpty is returned for images without pixels.
var ErrEmpty = errors.New("sheet has zero width")

// Sheet is a loaded sprite sheet. Img never changes after Load, so it can be
// read by renderers without synchronization.
type Sheet struct {
	Path   string
	Img    *image.NRGBA // masked, see Mask
	Width  int
	Height int
}

// Bounds returns the pixel bounds of the sheet.
func (s *Sheet) Bounds() image.Rectangle {
	if s == nil || s.Img == nil {
		return image.Rectangle{}
	}
	return s.Img.Bounds()
}

// Load decodes the image at path and masks it.
func Load(path string) (*Sheet, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	img, _, err := image.Decode(f)
	if err != nil {
		return nil, fmt.Errorf("decode %s: %w", path, err)
	}
	return FromImage(path, img)
}

// FromImage wraps an already decoded image.
func FromImage(path string, img image.Image) (*Sheet, error) {
	b := img.Bounds()
	if b.Dx() == 0 {
		return nil, fmt.Errorf("%s: %w", path, ErrEmpty)
	}
	m := Mask(img)
	return &Sheet{Path: path, Img: m, Width: b.Dx(), Height: b.Dy()}, nil
}

// Mask returns a copy of img translated to the origin in which every pixel is
// either fully opaque or fully transparent. Pixels that are not fully opaque
// become transparent, so drawing the result with normal alpha blending skips
// them.
func Mask(img image.Image) *image.NRGBA {
	b := img.Bounds()
	dst := image.NewNRGBA(image.Rect(0, 0, b.Dx(), b.Dy()))
	draw.Draw(dst, dst.Bounds(), img, b.Min, draw.Src)
	for i := 3; i < len(dst.Pix); i += 4 {
		if dst.Pix[i] != 0xff {
			copy(dst.Pix[i-3:i+1], []byte{0, 0, 0, 0})
		}
	}
	return dst
}

// Opaque reports whether the pixel at x,y of a masked sheet is drawn.
func (s *Sheet) Opaque(x, y int) bool {
	if s == nil || s.Img == nil {
		return false
	}
	_, _, _, a := s.Img.At(x, y).RGBA()
	return a == 0xffff
}
