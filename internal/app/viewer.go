package app

import (
	"fmt"
	"image/color"
	"time"

	"github.com/rs/zerolog"

	"github.com/coreman2200/sheetanim/internal/config"
	"github.com/coreman2200/sheetanim/internal/input"
	"github.com/coreman2200/sheetanim/internal/layout"
	"github.com/coreman2200/sheetanim/internal/render"
	"github.com/coreman2200/sheetanim/internal/sequence"
	"github.com/coreman2200/sheetanim/internal/sheet"
	"github.com/coreman2200/sheetanim/internal/tune"
)

// ChangeSource reports sheet file changes; *sheet.Watcher implements it.
type ChangeSource interface {
	Changed(now time.Time) bool
}

// Viewer is the per-tick coordinator for one sequence on one sheet. The
// sequence is mutated only through Update.
type Viewer struct {
	Seq   *sequence.Sequence
	Scale int
	Sheet *sheet.Sheet // nil when the sheet failed to load

	Panel   tune.Panel
	Layout  layout.Layout
	Palette config.Palette
	Keys    config.Keys

	path  string
	watch ChangeSource
	load  func(string) (*sheet.Sheet, error)
	log   zerolog.Logger
}

// New builds a viewer from cfg. sh may be nil, in which case the viewer
// tunes and advances the sequence but draws only the debug text.
func New(cfg *config.Config, sh *sheet.Sheet, log zerolog.Logger) (*Viewer, error) {
	pal, err := cfg.Colors.Parse()
	if err != nil {
		return nil, err
	}
	v := &Viewer{
		Seq:     sequence.NewFromLayout(nil, cfg.Sequence),
		Scale:   cfg.Scale,
		Layout:  cfg.Layout,
		Palette: pal,
		Keys:    cfg.Keys,
		path:    cfg.Image,
		load:    sheet.Load,
		log:     log.With().Str("component", "app.viewer").Logger(),
	}
	v.SetSheet(sh)
	for _, t := range cfg.Tunables {
		k, err := v.knob(t)
		if err != nil {
			return nil, err
		}
		v.Panel = append(v.Panel, k)
	}
	return v, nil
}

func (v *Viewer) knob(t config.Tunable) (tune.Tuner, error) {
	b := tune.Binding{
		Hold:     input.Key(t.Hold),
		Decrease: input.Key(v.Keys.Decrease),
		Increase: input.Key(v.Keys.Increase),
		Fast:     input.Key(v.Keys.Fast),
	}
	var ref *int
	switch t.Field {
	case config.Tick:
		return &tune.Knob[float64]{
			Name:   t.Field,
			Ref:    &v.Seq.Tick,
			Keys:   b,
			Limits: tune.Limits[float64]{Step: t.Step, Min: t.Min, Max: t.Max},
		}, nil
	case config.Frames:
		ref = &v.Seq.Frames
	case config.OffsetCols:
		ref = &v.Seq.OffsetCols
	case config.OffsetRows:
		ref = &v.Seq.OffsetRows
	case config.FrameWidth:
		ref = &v.Seq.FrameW
	case config.FrameHeight:
		ref = &v.Seq.FrameH
	case config.Scale:
		ref = &v.Scale
	case config.GridCols:
		ref = &v.Seq.Cols
	case config.GridRows:
		ref = &v.Seq.Rows
	default:
		return nil, fmt.Errorf("unknown tunable field %q", t.Field)
	}
	return &tune.Knob[int]{
		Name:   t.Field,
		Ref:    ref,
		Keys:   b,
		Limits: tune.Limits[int]{Step: int(t.Step), Min: int(t.Min), Max: int(t.Max)},
	}, nil
}

// SetSheet replaces the sheet the sequence animates. Playback state and
// structural fields are kept.
func (v *Viewer) SetSheet(sh *sheet.Sheet) {
	v.Sheet = sh
	if sh == nil {
		v.Seq.Image = nil
		return
	}
	v.Seq.Image = sh.Img
	v.path = sh.Path
}

// Watch arranges for Refresh to reload the sheet when src reports a change.
func (v *Viewer) Watch(src ChangeSource) { v.watch = src }

// Refresh reloads the sheet if the watched file changed. A failed reload
// keeps the current sheet.
func (v *Viewer) Refresh(now time.Time) {
	if v.watch == nil || !v.watch.Changed(now) {
		return
	}
	sh, err := v.load(v.path)
	if err != nil {
		v.log.Warn().Err(err).Str("path", v.path).Msg("sheet reload failed; keeping previous image")
		return
	}
	v.SetSheet(sh)
	v.log.Info().Str("path", sh.Path).Int("width", sh.Width).Int("height", sh.Height).Msg("sheet reloaded")
}

// Update applies the tuning panel and advances the sequence by dt seconds.
func (v *Viewer) Update(in input.State, dt float64) {
	for _, t := range v.Panel.Apply(in) {
		v.log.Debug().Str("field", t.Label()).Str("value", t.Value()).Msg("tuned")
	}
	v.Seq.Normalize()
	v.Seq.Advance(dt)
}

// Draw renders the sheet preview, the current tile and the debug text.
func (v *Viewer) Draw(c render.Canvas) {
	c.Clear(v.Palette.Background)
	if v.Sheet != nil && v.Sheet.Img != nil {
		v.drawSheet(c)
		v.drawTile(c)
	}
	for i, line := range v.HUD() {
		if line == "" {
			continue
		}
		x, y := v.Layout.Line(i)
		c.Text(x, y, line)
	}
}

// Tick runs Update followed by Draw.
func (v *Viewer) Tick(in input.State, dt float64, c render.Canvas) {
	v.Update(in, dt)
	v.Draw(c)
}

func (v *Viewer) drawSheet(c render.Canvas) {
	b := v.Sheet.Bounds()
	c.Blit(v.Sheet.Img, b, v.Layout.SheetX, v.Layout.SheetY, 1)
	stroke(c, v.Layout.SheetBorder(b.Dx(), b.Dy()), v.Palette.SheetBorder)
}

// drawTile draws the part of the current region that lies on the sheet. A
// region entirely off the sheet draws nothing but its borders.
func (v *Viewer) drawTile(c render.Canvas) {
	scale := max(v.Scale, 1)
	src := v.Seq.SourceRegion()
	full := src.Image()
	if vis, ok := render.Visible(full, v.Sheet.Bounds()); ok {
		off := vis.Min.Sub(full.Min)
		c.Blit(v.Sheet.Img, vis, v.Layout.TileX+off.X*scale, v.Layout.TileY+off.Y*scale, scale)
	}
	stroke(c, v.Layout.TileBorder(src.W, src.H, scale), v.Palette.TileBorder)
	stroke(c, v.Layout.Region(src), v.Palette.TileBorder)
}

func stroke(c render.Canvas, r sequence.Rect, col color.Color) {
	c.StrokeRect(r.X, r.Y, r.W, r.H, col)
}
