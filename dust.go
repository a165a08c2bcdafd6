package scratchoff

import (
	"math"
	"math/rand/v2"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

// Range is an inclusive [Min, Max] interval sampled uniformly.
type Range struct {
	Min, Max float64
}

// Random returns a random float64 in [Min, Max].
func (r Range) Random() float64 {
	if r.Min == r.Max {
		return r.Min
	}
	return r.Min + rand.Float64()*(r.Max-r.Min)
}

// chip holds per-particle simulation state. Unexported; managed by Dust.
type chip struct {
	x, y    float64
	vx, vy  float64
	life    float64 // remaining lifetime in seconds
	maxLife float64
	size    float32
	alpha   float32
}

// DustConfig controls the chips thrown off a scratched cell.
type DustConfig struct {
	// MaxChips is the pool size. New chips are silently dropped when full.
	MaxChips int
	// PerCell is the number of chips spawned for each revealed cell.
	PerCell int
	// Lifetime is the range of chip lifetimes in seconds.
	Lifetime Range
	// Speed is the range of initial speeds in pixels per second.
	Speed Range
	// Angle is the range of emission angles in radians.
	Angle Range
	// Size is the range of chip edge lengths in pixels.
	Size Range
	// Gravity is the constant acceleration applied to every chip.
	Gravity Vec2
	// Color tints every chip; alpha fades to zero over the chip's life.
	Color Color
}

// DefaultDust throws a few grey flakes up and to the sides.
var DefaultDust = DustConfig{
	MaxChips: 256,
	PerCell:  3,
	Lifetime: Range{0.25, 0.5},
	Speed:    Range{40, 110},
	Angle:    Range{-math.Pi * 0.9, -math.Pi * 0.1},
	Size:     Range{1.5, 3},
	Gravity:  Vec2{Y: 420},
	Color:    Color{R: 0.62, G: 0.62, B: 0.66, A: 1},
}

// Dust is a pooled, CPU-simulated burst effect for freshly revealed cells.
type Dust struct {
	config DustConfig
	chips  []chip
	alive  int
}

// NewDust creates a Dust with a preallocated pool.
func NewDust(cfg DustConfig) *Dust {
	n := cfg.MaxChips
	if n <= 0 {
		n = 128
	}
	return &Dust{config: cfg, chips: make([]chip, n)}
}

// Config returns a pointer to the config for live tuning.
func (d *Dust) Config() *DustConfig {
	return &d.config
}

// AliveCount returns the number of live chips.
func (d *Dust) AliveCount() int {
	return d.alive
}

// Reset kills every chip.
func (d *Dust) Reset() {
	d.alive = 0
}

// Burst spawns PerCell chips at (x, y), in surface pixels.
func (d *Dust) Burst(x, y float64) {
	for i := 0; i < d.config.PerCell && d.alive < len(d.chips); i++ {
		d.spawn(x, y)
	}
}

func (d *Dust) spawn(x, y float64) {
	c := &d.chips[d.alive]

	angle := d.config.Angle.Random()
	speed := d.config.Speed.Random()
	c.x, c.y = x, y
	c.vx = math.Cos(angle) * speed
	c.vy = math.Sin(angle) * speed

	c.life = d.config.Lifetime.Random()
	if c.life <= 0 {
		c.life = 0.3
	}
	c.maxLife = c.life
	c.size = float32(d.config.Size.Random())
	c.alpha = float32(d.config.Color.A)

	d.alive++
}

// Update advances the simulation by dt seconds.
func (d *Dust) Update(dt float64) {
	gx := d.config.Gravity.X * dt
	gy := d.config.Gravity.Y * dt
	a0 := float32(d.config.Color.A)

	i := 0
	for i < d.alive {
		c := &d.chips[i]
		c.life -= dt
		if c.life <= 0 {
			// Swap with the last live chip.
			d.alive--
			d.chips[i] = d.chips[d.alive]
			continue
		}

		c.vx += gx
		c.vy += gy
		c.x += c.vx * dt
		c.y += c.vy * dt

		t := float32(1.0 - c.life/c.maxLife)
		c.alpha = lerp32(a0, 0, t)
		i++
	}
}

// Draw fills every live chip onto dst, offset by origin.
func (d *Dust) Draw(dst *ebiten.Image, origin Vec2) {
	col := d.config.Color
	for i := 0; i < d.alive; i++ {
		c := &d.chips[i]
		col.A = float64(c.alpha)
		half := c.size / 2
		vector.DrawFilledRect(dst,
			float32(origin.X+c.x)-half, float32(origin.Y+c.y)-half,
			c.size, c.size, col.toRGBA(), false)
	}
}

// lerp32 linearly interpolates between a and b by t.
func lerp32(a, b, t float32) float32 {
	return a + (b-a)*t
}
