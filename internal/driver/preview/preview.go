// Package preview runs the viewer in an ebiten window.
package preview

import (
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/rs/zerolog"

	"github.com/coreman2200/sheetanim/internal/app"
	"github.com/coreman2200/sheetanim/internal/config"
)

// Game adapts a Viewer to ebiten.Game.
type Game struct {
	viewer *app.Viewer
	keys   *Keyboard
	canvas Canvas
	win    config.Window
	log    zerolog.Logger

	last time.Time
}

// New checks every key named in cfg and returns a game ready for Run.
func New(cfg *config.Config, v *app.Viewer, log zerolog.Logger) (*Game, error) {
	names := []string{cfg.Keys.Decrease, cfg.Keys.Increase, cfg.Keys.Fast}
	for _, t := range cfg.Tunables {
		names = append(names, t.Hold)
	}
	kb, err := NewKeyboard(names...)
	if err != nil {
		return nil, err
	}
	return &Game{
		viewer: v,
		keys:   kb,
		win:    cfg.Window,
		log:    log.With().Str("component", "driver.preview").Logger(),
	}, nil
}

// Update is called by ebiten at its tick rate. Elapsed time is measured on
// the wall clock, so a slow tick advances the animation by more.
func (g *Game) Update() error {
	now := time.Now()
	var dt float64
	if !g.last.IsZero() {
		dt = now.Sub(g.last).Seconds()
	}
	g.last = now

	g.viewer.Refresh(now)
	g.viewer.Update(g.keys, dt)
	return nil
}

func (g *Game) Draw(screen *ebiten.Image) {
	g.canvas.screen = screen
	g.viewer.Draw(&g.canvas)
}

func (g *Game) Layout(int, int) (int, int) { return g.win.Width, g.win.Height }

// Run opens the window and blocks until it is closed.
func (g *Game) Run() error {
	ebiten.SetWindowSize(g.win.Width, g.win.Height)
	ebiten.SetWindowTitle(g.win.Title)
	g.log.Info().Int("width", g.win.Width).Int("height", g.win.Height).Msg("window open")
	defer g.log.Info().Msg("window closed")
	return ebiten.RunGame(g)
}
