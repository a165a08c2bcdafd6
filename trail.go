package scratchoff

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
)

const defaultTrailDuration = 0.4 // seconds

// trailMark is one fading highlight over a freshly revealed cell.
type trailMark struct {
	bounds Rect
	fade   *gween.Tween
	alpha  float64
}

// Trail draws a short-lived highlight over every cell as it is scratched off.
// Marks fade from Color.A to zero over Duration and are dropped once done.
//
// There is no global animation manager; the Scene calls Update each tick.
type Trail struct {
	Color    Color
	Duration float32
	Ease     ease.TweenFunc

	marks []trailMark
}

// NewTrail creates a trail with the given highlight color.
func NewTrail(c Color) *Trail {
	return &Trail{
		Color:    c,
		Duration: defaultTrailDuration,
		Ease:     ease.OutQuad,
	}
}

// Add starts a new mark over bounds, in surface pixels.
func (t *Trail) Add(bounds Rect) {
	fn := t.Ease
	if fn == nil {
		fn = ease.Linear
	}
	t.marks = append(t.marks, trailMark{
		bounds: bounds,
		fade:   gween.New(float32(t.Color.A), 0, t.Duration, fn),
		alpha:  t.Color.A,
	})
}

// Update advances every mark by dt seconds and drops the finished ones.
func (t *Trail) Update(dt float32) {
	live := t.marks[:0]
	for _, m := range t.marks {
		val, finished := m.fade.Update(dt)
		if finished {
			continue
		}
		m.alpha = float64(val)
		live = append(live, m)
	}
	for i := len(live); i < len(t.marks); i++ {
		t.marks[i] = trailMark{}
	}
	t.marks = live
}

// Len returns the number of live marks.
func (t *Trail) Len() int {
	return len(t.marks)
}

// Draw fills every live mark onto dst, offset by origin.
func (t *Trail) Draw(dst *ebiten.Image, origin Vec2) {
	for _, m := range t.marks {
		c := t.Color
		c.A = m.alpha
		vector.DrawFilledRect(dst,
			float32(origin.X+m.bounds.X), float32(origin.Y+m.bounds.Y),
			float32(m.bounds.Width), float32(m.bounds.Height),
			c.toRGBA(), false)
	}
}
