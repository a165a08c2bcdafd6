package scratchoff

import (
	"sync"

	"github.com/rs/zerolog"
)

// Card owns the reveal mask and the pointer-down latch. Hosts deliver pointer
// events to it and ask it for the text to display; nothing else holds the mask.
//
// Card is safe for use from multiple goroutines. Pointer handlers take the
// write lock and rendering works from a snapshot taken under the read lock,
// so a frame never mixes cells from before and after a move.
type Card struct {
	mu       sync.RWMutex
	mask     Mask
	down     bool
	pointer  Vec2
	message  Message
	mapper   Mapper
	log      zerolog.Logger
	onReveal []func(index int)
}

// Option configures a Card.
type Option func(*Card)

// WithMessage replaces the hidden text.
func WithMessage(m Message) Option {
	return func(c *Card) { c.message = m }
}

// WithMapper replaces the pixel-to-cell mapping.
func WithMapper(m Mapper) Option {
	return func(c *Card) { c.mapper = m }
}

// WithLogger sets the logger used for pointer tracing.
func WithLogger(l zerolog.Logger) Option {
	return func(c *Card) { c.log = l }
}

// NewCard returns a fully hidden card showing DefaultMessage once scratched.
func NewCard(opts ...Option) *Card {
	c := &Card{
		message: DefaultMessage,
		mapper:  DefaultCalibration,
		log:     zerolog.Nop(),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// OnReveal registers fn to be called for every cell that goes from hidden to
// revealed. fn runs after the card lock is released.
func (c *Card) OnReveal(fn func(index int)) {
	c.mu.Lock()
	c.onReveal = append(c.onReveal, fn)
	c.mu.Unlock()
}

// OnPointerDown latches the pointer as pressed.
func (c *Card) OnPointerDown() {
	c.mu.Lock()
	c.down = true
	c.mu.Unlock()
}

// OnPointerUp releases the latch.
func (c *Card) OnPointerUp() {
	c.mu.Lock()
	c.down = false
	c.mu.Unlock()
}

// OnPointerMove handles a pointer position in pixels relative to the card
// surface. While the latch is down, the cell under the pointer is revealed.
// It reports whether a hidden cell was revealed by this move.
func (c *Card) OnPointerMove(x, y float64) bool {
	c.mu.Lock()
	c.pointer = Vec2{X: x, Y: y}
	index := c.mapper.Index(x, y)
	c.log.Debug().
		Float64("x", x).
		Float64("y", y).
		Int("col", floorMod(index, Width)).
		Int("row", floorDiv(index, Width)).
		Int("index", index).
		Bool("down", c.down).
		Msg("pointer move")

	revealed := false
	if c.down && index >= 0 && index < Area && !c.mask.Get(index) {
		revealed = c.mask.Set(index, true)
	}
	hooks := c.onReveal
	c.mu.Unlock()

	if revealed {
		for _, fn := range hooks {
			fn(index)
		}
	}
	return revealed
}

// Glyphs renders the current frame.
func (c *Card) Glyphs() Glyphs {
	c.mu.RLock()
	snap := c.mask.Snapshot()
	msg := c.message
	c.mu.RUnlock()
	return Render(snap, msg)
}

// Render returns the text to display for the current mask.
func (c *Card) Render() string {
	return c.Glyphs().String()
}

// Revealed reports whether the cell at index is revealed.
func (c *Card) Revealed(index int) bool {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.mask.Get(index)
}

// Progress returns the fraction of cells revealed, in [0, 1].
func (c *Card) Progress() float64 {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return float64(c.mask.Revealed()) / Area
}

// Down reports whether the pointer latch is pressed.
func (c *Card) Down() bool {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.down
}

// Pointer returns the last position passed to OnPointerMove.
func (c *Card) Pointer() (x, y float64) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.pointer.X, c.pointer.Y
}

// Message returns the hidden text.
func (c *Card) Message() Message {
	return c.message
}

func floorDiv(a, b int) int {
	q := a / b
	if a%b != 0 && a < 0 {
		q--
	}
	return q
}

func floorMod(a, b int) int {
	return a - floorDiv(a, b)*b
}
