package main

import (
	"os"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/coreman2200/sheetanim/internal/app"
	"github.com/coreman2200/sheetanim/internal/config"
	"github.com/coreman2200/sheetanim/internal/driver/preview"
)

func main() {
	// ---- Logging ----
	zerolog.TimeFieldFormat = time.RFC3339
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stdout, TimeFormat: time.Kitchen})

	// ---- Run: config, sheet, viewer, window ----
	// Fatal only after Run has returned and released the watcher.
	err := app.Run(config.DefaultPath, log.Logger, func(cfg *config.Config, v *app.Viewer) error {
		g, err := preview.New(cfg, v, log.Logger)
		if err != nil {
			return err
		}
		return g.Run()
	})
	if err != nil {
		log.Fatal().Err(err).Msg("sheetanim stopped")
	}
}
