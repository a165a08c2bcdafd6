package scratchoff

import (
	"time"
)

// frameStats holds per-frame timing and card metrics.
// Only populated when Scene.debug is true.
type frameStats struct {
	renderTime time.Duration
	drawTime   time.Duration
	trailMarks int
	dustChips  int
	progress   float64
}

// debugLog writes frame stats at debug level.
func (s *Scene) debugLog(stats frameStats) {
	if !s.debug {
		return
	}
	s.log.Debug().
		Dur("render", stats.renderTime).
		Dur("draw", stats.drawTime).
		Dur("total", stats.renderTime+stats.drawTime).
		Int("trail", stats.trailMarks).
		Int("dust", stats.dustChips).
		Float64("progress", stats.progress).
		Msg("frame")
}
