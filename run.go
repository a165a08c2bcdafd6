package scratchoff

import (
	"errors"
	"fmt"

	"github.com/hajimehoshi/ebiten/v2"
)

// ErrEmptySurface is returned by Run when the scene has no card surface to
// receive pointer moves.
var ErrEmptySurface = errors.New("scratchoff: card surface has zero size")

// RunConfig configures the window opened by Run.
type RunConfig struct {
	Title   string
	Width   int
	Height  int
	ShowFPS bool
	// Resizable lets the user resize the window. The logical screen keeps
	// Width x Height, so the calibration stays valid.
	Resizable bool
}

// game adapts a Scene to ebiten.Game.
type game struct {
	scene *Scene
	w, h  int
}

func (g *game) Update() error              { return g.scene.Update() }
func (g *game) Draw(screen *ebiten.Image)  { g.scene.Draw(screen) }
func (g *game) Layout(_, _ int) (int, int) { return g.w, g.h }

// Run opens a window and drives scene until the window closes or the scene's
// update callback returns an error. When Width or Height is zero the window is
// sized to fit the card surface.
func Run(scene *Scene, cfg RunConfig) error {
	if scene.Surface.Empty() {
		return ErrEmptySurface
	}
	w, h := cfg.Width, cfg.Height
	if w <= 0 || h <= 0 {
		w = int(scene.Surface.X*2 + scene.Surface.Width)
		h = int(scene.Surface.Y*2 + scene.Surface.Height)
	}

	ebiten.SetWindowSize(w, h)
	if cfg.Title != "" {
		ebiten.SetWindowTitle(cfg.Title)
	}
	if cfg.Resizable {
		ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	}
	scene.ShowFPS(cfg.ShowFPS)

	scene.log.Info().Int("width", w).Int("height", h).Msg("window open")
	if err := ebiten.RunGame(&game{scene: scene, w: w, h: h}); err != nil {
		return fmt.Errorf("run game: %w", err)
	}
	return nil
}
