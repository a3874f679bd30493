package app

import (
	"errors"
	"fmt"
	"io/fs"

	"github.com/rs/zerolog"

	"github.com/coreman2200/sheetanim/internal/config"
	"github.com/coreman2200/sheetanim/internal/sheet"
)

// Opener shows the viewer and blocks until it is closed.
type Opener func(cfg *config.Config, v *Viewer) error

// Run loads the config at path (defaults if the file is missing), loads
// the sheet, builds the viewer and hands it to open. Cleanup runs before
// Run returns, so callers may exit on the returned error.
func Run(path string, log zerolog.Logger, open Opener) error {
	cfg, err := config.Load(path)
	switch {
	case errors.Is(err, fs.ErrNotExist):
		log.Warn().Str("path", path).Msg("no config file; using defaults")
		cfg = config.Default()
	case err != nil:
		return fmt.Errorf("config: %w", err)
	}
	if lvl, err := zerolog.ParseLevel(cfg.LogLevel); err != nil {
		log.Warn().Err(err).Str("log_level", cfg.LogLevel).Msg("bad log level; keeping info")
		zerolog.SetGlobalLevel(zerolog.InfoLevel)
	} else {
		zerolog.SetGlobalLevel(lvl)
	}

	// A missing sheet is not fatal: the window still opens and shows the
	// tuning text so the path problem is visible.
	sh, err := sheet.Load(cfg.Image)
	if err != nil {
		log.Error().Err(err).Str("path", cfg.Image).Msg("sheet load failed")
	} else {
		log.Info().Str("path", sh.Path).Int("width", sh.Width).Int("height", sh.Height).Msg("sheet loaded")
	}

	v, err := New(cfg, sh, log)
	if err != nil {
		return fmt.Errorf("viewer: %w", err)
	}

	if cfg.Watch {
		w, err := sheet.NewWatcher(cfg.Image, sheet.Debounce, log)
		if err != nil {
			log.Warn().Err(err).Str("path", cfg.Image).Msg("sheet watch failed; live reload off")
		} else {
			defer w.Close()
			v.Watch(w)
		}
	}

	return open(cfg, v)
}
