package app

import (
	"errors"
	"image"
	"image/color"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/coreman2200/sheetanim/internal/config"
	"github.com/coreman2200/sheetanim/internal/driver/fake"
	"github.com/coreman2200/sheetanim/internal/input"
	"github.com/coreman2200/sheetanim/internal/render/raster"
	"github.com/coreman2200/sheetanim/internal/sheet"
)

// cell is the colour of the 64×64 tile at col,row of the test sheet.
func cell(col, row int) color.RGBA {
	return color.RGBA{R: uint8(col * 60), G: uint8(row * 100), B: 200, A: 0xff}
}

// testSheet is a 4×2 grid of 64×64 opaque tiles.
func testSheet(t *testing.T) *sheet.Sheet {
	t.Helper()
	img := image.NewNRGBA(image.Rect(0, 0, 256, 128))
	for y := 0; y < 128; y++ {
		for x := 0; x < 256; x++ {
			c := cell(x/64, y/64)
			img.SetNRGBA(x, y, color.NRGBA{R: c.R, G: c.G, B: c.B, A: c.A})
		}
	}
	sh, err := sheet.FromImage("test.png", img)
	require.NoError(t, err)
	return sh
}

func newViewer(t *testing.T, sh *sheet.Sheet) *Viewer {
	t.Helper()
	v, err := New(config.Default(), sh, zerolog.Nop())
	require.NoError(t, err)
	return v
}

var hold = input.Hold

func TestTickScenario(t *testing.T) {
	v := newViewer(t, testSheet(t))
	var c fake.Canvas

	v.Tick(input.None, 0.45, &c)
	assert.Equal(t, 2, v.Seq.Frame())
	assert.InDelta(t, 0.05, v.Seq.Accum(), 1e-9)

	blits := c.Kind("blit")
	require.Len(t, blits, 2)
	assert.Equal(t, image.Rect(128, 0, 192, 64), blits[1].Rect)
	assert.Equal(t, 1290, blits[1].X)
	assert.Equal(t, 300, blits[1].Y)
	assert.Equal(t, 1, blits[1].Scale)
}

func TestDrawOps(t *testing.T) {
	v := newViewer(t, testSheet(t))
	v.Seq.Tick = 0.25
	v.Update(input.None, 1.25)
	require.Equal(t, 5, v.Seq.Frame())

	var c fake.Canvas
	v.Draw(&c)
	require.Equal(t, 1, c.Count)
	assert.Equal(t, "clear", c.Ops[0].Kind)
	assert.Equal(t, v.Palette.Background, c.Ops[0].Color)

	blits := c.Kind("blit")
	require.Len(t, blits, 2)
	assert.Equal(t, image.Rect(0, 0, 256, 128), blits[0].Rect)
	assert.Equal(t, [2]int{1, 1}, [2]int{blits[0].X, blits[0].Y})
	assert.Equal(t, image.Rect(64, 64, 128, 128), blits[1].Rect)
	assert.Equal(t, [2]int{1290, 300}, [2]int{blits[1].X, blits[1].Y})

	rects := c.Kind("rect")
	require.Len(t, rects, 3)
	assert.Equal(t, image.Rect(0, 0, 258, 130), rects[0].Rect)
	assert.Equal(t, v.Palette.SheetBorder, rects[0].Color)
	assert.Equal(t, image.Rect(1289, 299, 1355, 365), rects[1].Rect)
	assert.Equal(t, image.Rect(65, 65, 129, 129), rects[2].Rect)
	assert.Equal(t, v.Palette.TileBorder, rects[2].Color)
}

func TestDrawScaled(t *testing.T) {
	v := newViewer(t, testSheet(t))
	v.Update(input.Press("F7", "NumpadAdd"), 0)
	require.Equal(t, 2, v.Scale)

	var c fake.Canvas
	v.Draw(&c)
	blits := c.Kind("blit")
	require.Len(t, blits, 2)
	assert.Equal(t, 2, blits[1].Scale)
	assert.Equal(t, image.Rect(1289, 299, 1419, 429), c.Kind("rect")[1].Rect)
}

func TestDrawPartlyOffSheet(t *testing.T) {
	v := newViewer(t, testSheet(t))
	v.Seq.FrameW = 100
	v.Seq.OffsetCols = 2

	var c fake.Canvas
	v.Draw(&c)
	blits := c.Kind("blit")
	require.Len(t, blits, 2)
	assert.Equal(t, image.Rect(200, 0, 256, 64), blits[1].Rect)
	assert.Equal(t, 1290, blits[1].X)
	assert.Equal(t, image.Rect(201, 1, 301, 65), c.Kind("rect")[2].Rect)
}

func TestDrawOffSheet(t *testing.T) {
	v := newViewer(t, testSheet(t))
	v.Seq.OffsetCols = 10

	var c fake.Canvas
	v.Draw(&c)
	assert.Len(t, c.Kind("blit"), 1)
	rects := c.Kind("rect")
	require.Len(t, rects, 3)
	assert.Equal(t, image.Rect(641, 1, 705, 65), rects[2].Rect)
}

func TestDrawWithoutSheet(t *testing.T) {
	v := newViewer(t, nil)
	v.Update(input.None, 1)

	var c fake.Canvas
	v.Draw(&c)
	assert.Equal(t, "clear", c.Ops[0].Kind)
	for _, o := range c.Ops[1:] {
		assert.Equal(t, "text", o.Kind, o.String())
	}
	assert.Contains(t, c.Lines(), "sheet        = not loaded")
}

func TestStructuralShrinkThroughTuning(t *testing.T) {
	v := newViewer(t, testSheet(t))
	v.Seq.Tick = 0.25
	v.Update(input.None, 1.75)
	require.Equal(t, 7, v.Seq.Frame())

	shrink := hold("F1", "Shift", "NumpadSubtract")
	for i := 0; i < 5; i++ {
		v.Update(shrink, 0)
		assert.Less(t, v.Seq.Frame(), v.Seq.Frames)
	}
	assert.Equal(t, 3, v.Seq.Frames)
	assert.Equal(t, 2, v.Seq.Frame())

	// Region stays derivable after the change.
	var c fake.Canvas
	v.Draw(&c)
	assert.Equal(t, image.Rect(128, 0, 192, 64), c.Kind("blit")[1].Rect)
}

func TestTuningNeedsHoldKey(t *testing.T) {
	v := newViewer(t, nil)
	v.Update(input.Press("NumpadAdd"), 0)
	assert.Equal(t, 8, v.Seq.Frames)

	// Holding increase without the fast modifier steps only on the press.
	v.Update(hold("F4", "NumpadAdd"), 0)
	assert.Equal(t, 64, v.Seq.FrameW)
	v.Update(input.Press("NumpadAdd").With("F4"), 0)
	assert.Equal(t, 65, v.Seq.FrameW)
}

func TestTuningSaturates(t *testing.T) {
	v := newViewer(t, nil)
	fast := hold("F6", "Shift", "NumpadSubtract")
	for i := 0; i < 500; i++ {
		v.Update(fast, 0)
	}
	assert.InDelta(t, 0.001, v.Seq.Tick, 1e-12)
}

func TestHUD(t *testing.T) {
	v := newViewer(t, testSheet(t))
	lines := v.HUD()
	require.Len(t, lines, 3+9+4)
	assert.Equal(t, "Hold an F-key and press NumpadSubtract/NumpadAdd", lines[0])
	assert.Equal(t, "to change a value  [hold Shift to repeat]", lines[1])
	assert.Equal(t, "", lines[2])
	assert.Equal(t, "F1  frames       = 8", lines[3])
	assert.Equal(t, "F6  tick         = 0.200", lines[8])
	assert.Equal(t, "frame        = 0 / 8", lines[13])
	assert.Equal(t, "sheet        = 256x128", lines[15])

	var c fake.Canvas
	v.Draw(&c)
	text := c.Kind("text")
	require.Len(t, text, len(lines)-2)
	assert.Equal(t, [2]int{1290, 10}, [2]int{text[0].X, text[0].Y})
	assert.Equal(t, [2]int{1290, 10 + 3*16}, [2]int{text[2].X, text[2].Y})
}

func TestNewUnknownField(t *testing.T) {
	cfg := config.Default()
	cfg.Tunables = []config.Tunable{{Field: "speed", Hold: "F1", Step: 1, Min: 0, Max: 1}}
	_, err := New(cfg, nil, zerolog.Nop())
	assert.Error(t, err)
}

func TestNewBadColor(t *testing.T) {
	cfg := config.Default()
	cfg.Colors.Background = "green"
	_, err := New(cfg, nil, zerolog.Nop())
	assert.Error(t, err)
}

type changes struct{ pending int }

func (c *changes) Changed(time.Time) bool {
	if c.pending == 0 {
		return false
	}
	c.pending--
	return true
}

func TestRefresh(t *testing.T) {
	old := testSheet(t)
	v := newViewer(t, old)
	v.Seq.Tick = 0.25
	v.Update(input.None, 0.5)

	var loads []string
	next, err := sheet.FromImage("test.png", image.NewNRGBA(image.Rect(0, 0, 32, 32)))
	require.NoError(t, err)
	v.load = func(path string) (*sheet.Sheet, error) {
		loads = append(loads, path)
		return next, nil
	}

	// Nothing happens until a source reports a change.
	v.Refresh(time.Now())
	assert.Empty(t, loads)

	src := &changes{pending: 1}
	v.Watch(src)
	v.Refresh(time.Now())
	v.Refresh(time.Now())
	assert.Equal(t, []string{"test.png"}, loads)
	assert.Same(t, next, v.Sheet)
	assert.Equal(t, next.Img, v.Seq.Image)
	assert.Equal(t, 2, v.Seq.Frame())
	assert.Equal(t, 8, v.Seq.Frames)
}

func TestRefreshFailureKeepsSheet(t *testing.T) {
	old := testSheet(t)
	v := newViewer(t, old)
	v.load = func(string) (*sheet.Sheet, error) { return nil, errors.New("truncated png") }
	v.Watch(&changes{pending: 1})

	v.Refresh(time.Now())
	assert.Same(t, old, v.Sheet)
	assert.Equal(t, old.Img, v.Seq.Image)
}

func TestDrawRaster(t *testing.T) {
	v := newViewer(t, testSheet(t))
	v.Seq.Tick = 0.25
	v.Update(input.None, 1.5) // frame 6: col 2, row 1

	rc := raster.New(1640, 840)
	v.Draw(rc)

	assert.Equal(t, cell(2, 1), rc.Img.RGBAAt(1290+10, 300+10))
	assert.Equal(t, cell(3, 0), rc.Img.RGBAAt(1+200, 1+10))
	assert.Equal(t, color.RGBA{G: 0x40, A: 0xff}, rc.Img.RGBAAt(800, 600))
	assert.Equal(t, color.RGBA{R: 0xff, G: 0xff, A: 0xff}, rc.Img.RGBAAt(0, 50))
	assert.Equal(t, color.RGBA{R: 0xff, A: 0xff}, rc.Img.RGBAAt(1289, 320))
}
