package layout

import "github.com/coreman2200/sheetanim/internal/sequence"

// Layout places the sheet preview, the scaled tile and the debug text on
// screen. All values are screen pixels.
type Layout struct {
	SheetX int `yaml:"sheet_x"`
	SheetY int `yaml:"sheet_y"`
	TileX  int `yaml:"tile_x"`
	TileY  int `yaml:"tile_y"`
	HUDX   int `yaml:"hud_x"`
	HUDY   int `yaml:"hud_y"`

	LineHeight int `yaml:"line_height"`
}

// Default places the tile and text in a 350 pixel column at the right edge
// of a screen that is width pixels wide.
func Default(width int) Layout {
	return Layout{
		SheetX:     1,
		SheetY:     1,
		TileX:      width - 350,
		TileY:      300,
		HUDX:       width - 350,
		HUDY:       10,
		LineHeight: 16,
	}
}

// SheetBorder returns the outline hugging a w×h sheet preview.
func (l Layout) SheetBorder(w, h int) sequence.Rect {
	return sequence.Rect{X: l.SheetX - 1, Y: l.SheetY - 1, W: w + 2, H: h + 2}
}

// TileBorder returns the outline hugging a w×h tile drawn at scale.
func (l Layout) TileBorder(w, h, scale int) sequence.Rect {
	return sequence.Rect{X: l.TileX - 1, Y: l.TileY - 1, W: w*scale + 2, H: h*scale + 2}
}

// Region maps a rectangle in sheet pixels to where it appears in the
// preview.
func (l Layout) Region(r sequence.Rect) sequence.Rect {
	return sequence.Rect{X: l.SheetX + r.X, Y: l.SheetY + r.Y, W: r.W, H: r.H}
}

// Line returns the position of debug text line i.
func (l Layout) Line(i int) (x, y int) {
	return l.HUDX, l.HUDY + i*l.LineHeight
}
