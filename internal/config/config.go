package config

import (
	"bytes"
	"errors"
	"fmt"
	"image/color"
	"io"
	"math"
	"os"

	colorful "github.com/lucasb-eyer/go-colorful"
	"gopkg.in/yaml.v3"

	"github.com/coreman2200/sheetanim/internal/layout"
	"github.com/coreman2200/sheetanim/internal/sequence"
)

// DefaultPath is the config file read at startup.
const DefaultPath = "sheetanim.yaml"

type Window struct {
	Width  int    `yaml:"width"`
	Height int    `yaml:"height"`
	Title  string `yaml:"title"`
}

// Colors are hex strings such as "#ff0000".
type Colors struct {
	Background  string `yaml:"background"`
	SheetBorder string `yaml:"sheet_border"`
	TileBorder  string `yaml:"tile_border"`
}

// Palette is Colors parsed.
type Palette struct {
	Background  color.Color
	SheetBorder color.Color
	TileBorder  color.Color
}

// Keys are the keys shared by every tunable.
type Keys struct {
	Decrease string `yaml:"decrease"`
	Increase string `yaml:"increase"`
	Fast     string `yaml:"fast"`
}

// Tunable binds one field to its hold key and limits. Integer fields
// require integral values.
type Tunable struct {
	Field string  `yaml:"field"`
	Hold  string  `yaml:"hold"`
	Step  float64 `yaml:"step"`
	Min   float64 `yaml:"min"`
	Max   float64 `yaml:"max"`
}

// Field names accepted in Tunable.Field.
const (
	Frames      = "frames"
	OffsetCols  = "offset_cols"
	OffsetRows  = "offset_rows"
	FrameWidth  = "frame_width"
	FrameHeight = "frame_height"
	Tick        = "tick"
	Scale       = "scale"
	GridCols    = "grid_cols"
	GridRows    = "grid_rows"
)

// IsFloat reports whether the named field is fractional.
func IsFloat(field string) bool { return field == Tick }

// floors holds the lowest Min each field accepts. Tick must stay above 0,
// checked separately.
var floors = map[string]float64{
	Frames: 1, OffsetCols: 0, OffsetRows: 0,
	FrameWidth: 1, FrameHeight: 1, Tick: 0,
	Scale: 1, GridCols: 1, GridRows: 1,
}

// value returns the configured initial value of field.
func (c *Config) value(field string) float64 {
	switch field {
	case Frames:
		return float64(c.Sequence.Frames)
	case OffsetCols:
		return float64(c.Sequence.OffsetCols)
	case OffsetRows:
		return float64(c.Sequence.OffsetRows)
	case FrameWidth:
		return float64(c.Sequence.FrameW)
	case FrameHeight:
		return float64(c.Sequence.FrameH)
	case Tick:
		return c.Sequence.Tick
	case Scale:
		return float64(c.Scale)
	case GridCols:
		return float64(c.Sequence.Cols)
	case GridRows:
		return float64(c.Sequence.Rows)
	}
	return 0
}

type Config struct {
	Image    string `yaml:"image"`
	LogLevel string `yaml:"log_level"`
	Watch    bool   `yaml:"watch"`

	Window   Window          `yaml:"window"`
	Sequence sequence.Layout `yaml:"sequence"`
	Scale    int             `yaml:"scale"`
	Layout   layout.Layout   `yaml:"layout"`
	Colors   Colors          `yaml:"colors"`

	Keys     Keys      `yaml:"keys"`
	Tunables []Tunable `yaml:"tunables"`
}

// Default returns the built-in configuration.
func Default() *Config {
	return &Config{
		Image:    "sprite sheet - animated.png",
		LogLevel: "info",
		Window:   Window{Width: 1640, Height: 840, Title: "AnimationEngine"},
		Sequence: sequence.Layout{
			Frames:     8,
			FrameW:     64,
			FrameH:     64,
			OffsetCols: 0,
			OffsetRows: 0,
			Cols:       4,
			Rows:       2,
			Tick:       0.2,
		},
		Scale:  1,
		Layout: layout.Default(1640),
		Colors: Colors{
			Background:  "#004000",
			SheetBorder: "#ffff00",
			TileBorder:  "#ff0000",
		},
		Keys: Keys{Decrease: "NumpadSubtract", Increase: "NumpadAdd", Fast: "Shift"},
		Tunables: []Tunable{
			{Field: Frames, Hold: "F1", Step: 1, Min: 1, Max: 64},
			{Field: OffsetCols, Hold: "F2", Step: 1, Min: 0, Max: 16},
			{Field: OffsetRows, Hold: "F3", Step: 1, Min: 0, Max: 12},
			{Field: FrameWidth, Hold: "F4", Step: 1, Min: 1, Max: 384},
			{Field: FrameHeight, Hold: "F5", Step: 1, Min: 1, Max: 384},
			{Field: Tick, Hold: "F6", Step: 0.001, Min: 0.001, Max: 2},
			{Field: Scale, Hold: "F7", Step: 1, Min: 1, Max: 4},
			{Field: GridCols, Hold: "F8", Step: 1, Min: 1, Max: 16},
			{Field: GridRows, Hold: "F9", Step: 1, Min: 1, Max: 16},
		},
	}
}

// Load reads path over the defaults. Fields missing from the file keep
// their default values; a tunables list in the file replaces the default
// list. Unknown keys are rejected and the result is validated.
func Load(path string) (*Config, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	c := Default()
	dec := yaml.NewDecoder(bytes.NewReader(b))
	dec.KnownFields(true)
	if err := dec.Decode(c); err != nil && !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("parse %s: %w", path, err)
	}
	if err := c.Validate(); err != nil {
		return nil, fmt.Errorf("invalid %s: %w", path, err)
	}
	return c, nil
}

// Validate checks c for values the viewer cannot run with.
func (c *Config) Validate() error {
	var errs []error
	if err := c.Sequence.Validate(); err != nil {
		errs = append(errs, fmt.Errorf("sequence: %w", err))
	}
	if c.Scale < 1 {
		errs = append(errs, fmt.Errorf("scale must be >= 1, got %d", c.Scale))
	}
	if c.Window.Width < 1 || c.Window.Height < 1 {
		errs = append(errs, fmt.Errorf("window must be at least 1x1, got %dx%d", c.Window.Width, c.Window.Height))
	}
	if _, err := c.Colors.Parse(); err != nil {
		errs = append(errs, err)
	}
	seen := map[string]bool{}
	for i, t := range c.Tunables {
		if err := t.validate(); err != nil {
			errs = append(errs, fmt.Errorf("tunables[%d]: %w", i, err))
		} else if v := c.value(t.Field); v < t.Min || v > t.Max {
			errs = append(errs, fmt.Errorf("tunables[%d]: initial %s %v outside [%v, %v]", i, t.Field, v, t.Min, t.Max))
		}
		if seen[t.Field] {
			errs = append(errs, fmt.Errorf("tunables[%d]: duplicate field %q", i, t.Field))
		}
		seen[t.Field] = true
	}
	return errors.Join(errs...)
}

func (t Tunable) validate() error {
	floor, ok := floors[t.Field]
	if !ok {
		return fmt.Errorf("unknown field %q", t.Field)
	}
	if t.Hold == "" {
		return fmt.Errorf("%s: no hold key", t.Field)
	}
	if !(t.Step > 0) {
		return fmt.Errorf("%s: step must be > 0, got %v", t.Field, t.Step)
	}
	if t.Min > t.Max {
		return fmt.Errorf("%s: min %v > max %v", t.Field, t.Min, t.Max)
	}
	if t.Min < floor {
		return fmt.Errorf("%s: min must be >= %v, got %v", t.Field, floor, t.Min)
	}
	if !IsFloat(t.Field) {
		for _, v := range []float64{t.Step, t.Min, t.Max} {
			if v != math.Trunc(v) {
				return fmt.Errorf("%s: %v is not an integer", t.Field, v)
			}
		}
	}
	if t.Field == Tick && !(t.Min > 0) {
		return fmt.Errorf("%s: min must be > 0, got %v", t.Field, t.Min)
	}
	return nil
}

// Parse converts the hex colour strings.
func (c Colors) Parse() (Palette, error) {
	var (
		p    Palette
		errs []error
	)
	for _, f := range []struct {
		name string
		hex  string
		dst  *color.Color
	}{
		{"background", c.Background, &p.Background},
		{"sheet_border", c.SheetBorder, &p.SheetBorder},
		{"tile_border", c.TileBorder, &p.TileBorder},
	} {
		col, err := colorful.Hex(f.hex)
		if err != nil {
			errs = append(errs, fmt.Errorf("colors.%s: %w", f.name, err))
			continue
		}
		r, g, b := col.RGB255()
		*f.dst = color.RGBA{R: r, G: g, B: b, A: 0xff}
	}
	return p, errors.Join(errs...)
}
