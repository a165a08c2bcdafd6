package audio

import (
	"fmt"
	"sync"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/speaker"
	"github.com/rs/zerolog"
)

const (
	sampleRate = beep.SampleRate(44100)

	defaultBurst  = 60 * time.Millisecond
	defaultGain   = 0.25
	defaultVoices = 6
)

// Player mixes scratch bursts onto the speaker.
type Player struct {
	mu          sync.Mutex
	mixer       *beep.Mixer
	initialized bool
	seed        int64
	log         zerolog.Logger

	// Burst is the length of one scratch.
	Burst time.Duration
	// Gain scales every burst, in [0, 1].
	Gain float64
	// MaxVoices caps how many bursts play at once; extra scratches are dropped.
	MaxVoices int
}

// NewPlayer creates a player. Call Init before any sound is heard.
func NewPlayer(log zerolog.Logger) *Player {
	return &Player{
		mixer:     &beep.Mixer{},
		log:       log,
		Burst:     defaultBurst,
		Gain:      defaultGain,
		MaxVoices: defaultVoices,
	}
}

// Init opens the speaker and starts the mixer.
func (p *Player) Init() error {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.initialized {
		return nil
	}

	err := speaker.Init(sampleRate, sampleRate.N(time.Millisecond*50))
	if err != nil {
		return fmt.Errorf("audio: init speaker: %w", err)
	}

	speaker.Play(p.mixer)
	p.initialized = true
	p.log.Debug().Int("rate", int(sampleRate)).Msg("audio ready")
	return nil
}

// Scratch plays one burst. The index argument lets Scratch be registered
// directly as a card reveal hook.
func (p *Player) Scratch(index int) {
	p.mu.Lock()
	defer p.mu.Unlock()

	if !p.initialized {
		return
	}

	speaker.Lock()
	voices := p.mixer.Len()
	speaker.Unlock()
	if voices >= p.MaxVoices {
		return
	}

	p.seed++
	gen := NewScratchGenerator(sampleRate, p.Burst, p.Gain, p.seed+int64(index))
	speaker.Lock()
	p.mixer.Add(gen)
	speaker.Unlock()
}

// Close silences every burst. The speaker itself stays open.
func (p *Player) Close() {
	p.mu.Lock()
	defer p.mu.Unlock()

	if !p.initialized {
		return
	}
	speaker.Lock()
	p.mixer.Clear()
	speaker.Unlock()
	p.initialized = false
}
