package audio

import (
	"math"
	"math/rand"
	"time"

	"github.com/gopxl/beep"
)

// ScratchGenerator generates one burst of filtered noise with an exponential
// decay. It stops streaming once its length is reached.
type ScratchGenerator struct {
	sr      beep.SampleRate
	rng     *rand.Rand
	pos     int
	samples int
	gain    float64
	smooth  float64 // one-pole low-pass coefficient
	prev    float64
}

// NewScratchGenerator creates a burst of the given length. seed makes the
// noise reproducible.
func NewScratchGenerator(sr beep.SampleRate, length time.Duration, gain float64, seed int64) *ScratchGenerator {
	return &ScratchGenerator{
		sr:      sr,
		rng:     rand.New(rand.NewSource(seed)),
		samples: sr.N(length),
		gain:    gain,
		smooth:  0.35,
	}
}

// Len returns the total number of samples in the burst.
func (g *ScratchGenerator) Len() int {
	return g.samples
}

func (g *ScratchGenerator) Stream(samples [][2]float64) (n int, ok bool) {
	if g.pos >= g.samples {
		return 0, false
	}
	for i := range samples {
		if g.pos >= g.samples {
			return i, true
		}
		progress := float64(g.pos) / float64(g.samples)

		// Fast attack, exponential tail
		attack := math.Min(float64(g.pos)/float64(g.sr)/0.002, 1.0)
		envelope := attack * math.Exp(-5*progress)

		noise := g.rng.Float64()*2 - 1
		g.prev += g.smooth * (noise - g.prev)
		sample := g.gain * envelope * g.prev

		samples[i][0] = sample
		samples[i][1] = sample
		g.pos++
	}
	return len(samples), true
}

func (g *ScratchGenerator) Err() error {
	return nil
}
