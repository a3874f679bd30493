package sequence

import (
	"image"
)

// Rect is a sub-region of the sheet or the screen in pixels.
type Rect struct {
	X, Y int
	W, H int
}

// Image returns r as an image.Rectangle.
func (r Rect) Image() image.Rectangle {
	return image.Rect(r.X, r.Y, r.X+r.W, r.Y+r.H)
}

// Layout is the structural part of a sequence: where its tiles sit in the
// sheet and how frame indices wrap into the tile grid.
type Layout struct {
	Frames     int `yaml:"frames"`       // N >= 1
	FrameW     int `yaml:"frame_width"`  // source pixels
	FrameH     int `yaml:"frame_height"` // source pixels
	OffsetCols int `yaml:"offset_cols"`  // grid column of the first tile
	OffsetRows int `yaml:"offset_rows"`  // grid row of the first tile
	Cols       int `yaml:"grid_cols"`    // C >= 1
	Rows       int `yaml:"grid_rows"`    // R >= 1

	Tick float64 `yaml:"tick_s"` // seconds per frame advance, > 0
}

// Sequence is one animated run of tiles within a sprite sheet together with
// its playback state.
//
// Structural fields are exported so the tuning layer can take references to
// them; they are never changed by Advance. After changing Frames, callers
// must call Normalize before the next Advance or SourceRegion.
type Sequence struct {
	Image image.Image

	Layout

	cur int     // current frame, 0 <= cur < Frames
	acc float64 // seconds accumulated towards the next advance
}
