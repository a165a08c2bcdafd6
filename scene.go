package scratchoff

import (
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/rs/zerolog"
)

// Scene is the Ebitengine host for a Card. It turns mouse and touch input into
// card pointer events, keeps the scratch trail, and draws the card text every
// frame.
//
// Scene.Update and Scene.Draw both run on Ebitengine's game loop, one after
// the other, so the card always renders the effect of every move processed
// before it.
type Scene struct {
	// Surface is the card's area in screen pixels. Pointer moves are only
	// delivered inside it and are made relative to its top-left corner.
	Surface Rect

	// ClearColor fills the screen before drawing. Zero leaves it untouched.
	ClearColor Color
	// Ink colors the card text.
	Ink Color

	// ScreenshotDir is where Screenshot writes PNG files.
	ScreenshotDir string

	card  *Card
	cal   Calibration
	font  *CardFont
	trail *Trail
	dust  *Dust
	fps   *fpsOverlay
	log   zerolog.Logger
	debug bool

	updateFunc func() error

	screenshotQueue []string
	injectQueue     []syntheticPointerEvent
	testRunner      *TestRunner

	// Input state
	handlers     handlerRegistry
	pointers     [maxPointers]pointerState
	pressed      int // pointers currently down
	touchMap     [maxPointers]ebiten.TouchID
	touchUsed    [maxPointers]bool
	prevTouchIDs []ebiten.TouchID
}

// NewScene creates a scene hosting card. The surface defaults to the pixel
// area the calibration maps onto the grid, placed at the window origin.
func NewScene(card *Card, cal Calibration) *Scene {
	s := &Scene{
		Surface:       SurfaceFor(cal),
		Ink:           ColorWhite,
		ScreenshotDir: "screenshots",
		card:          card,
		cal:           cal,
		trail:         NewTrail(Color{R: 1, G: 0.85, B: 0.4, A: 0.6}),
		dust:          NewDust(DefaultDust),
		log:           zerolog.Nop(),
	}
	card.OnReveal(s.markRevealed)
	return s
}

// SurfaceFor returns the smallest surface at the origin that covers every
// cell reachable through cal.
func SurfaceFor(cal Calibration) Rect {
	w, h := cal.CellSize()
	return Rect{Width: float64(Width+1) * w, Height: float64(Height) * h}
}

// Card returns the hosted card.
func (s *Scene) Card() *Card {
	return s.card
}

// Trail returns the scratch trail.
func (s *Scene) Trail() *Trail {
	return s.trail
}

// Dust returns the chip effect thrown off revealed cells.
func (s *Scene) Dust() *Dust {
	return s.dust
}

// SetFont sets the face used to draw the card. Without one the scene falls
// back to Ebitengine's debug font, which ignores the calibration.
func (s *Scene) SetFont(f *CardFont) {
	s.font = f
}

// SetLogger sets the logger for scene diagnostics.
func (s *Scene) SetLogger(l zerolog.Logger) {
	s.log = l
}

// SetDebugMode enables or disables per-frame timing stats at debug level.
func (s *Scene) SetDebugMode(enabled bool) {
	s.debug = enabled
}

// ShowFPS toggles the FPS/TPS overlay.
func (s *Scene) ShowFPS(enabled bool) {
	if enabled && s.fps == nil {
		s.fps = newFPSOverlay()
	} else if !enabled {
		s.fps = nil
	}
}

// SetUpdateFunc sets a callback run at the end of every Update.
func (s *Scene) SetUpdateFunc(fn func() error) {
	s.updateFunc = fn
}

// CellCenter returns the screen pixel at the center of cell (col, row).
func (s *Scene) CellCenter(col, row int) (x, y float64) {
	x, y = s.cal.CellCenter(col, row)
	return s.Surface.X + x, s.Surface.Y + y
}

// Update processes input and advances the trail and dust.
func (s *Scene) Update() error {
	dt := float32(1.0 / float64(ebiten.TPS()))

	if s.testRunner != nil {
		s.testRunner.step(s)
	}
	s.processInput()
	s.trail.Update(dt)
	s.dust.Update(float64(dt))
	if s.fps != nil {
		s.fps.update(float64(dt))
	}

	if s.updateFunc != nil {
		return s.updateFunc()
	}
	return nil
}

// Draw renders the card and its effects, then the overlays.
func (s *Scene) Draw(screen *ebiten.Image) {
	var stats frameStats
	var t0 time.Time
	if s.debug {
		t0 = time.Now()
	}

	if s.ClearColor != (Color{}) {
		screen.Fill(s.ClearColor.toRGBA())
	}

	g := s.card.Glyphs()

	if s.debug {
		stats.renderTime = time.Since(t0)
		t0 = time.Now()
	}

	origin := Vec2{X: s.Surface.X, Y: s.Surface.Y}
	if s.font != nil {
		s.font.Draw(screen, g, origin, s.Ink)
	} else {
		ebitenutil.DebugPrintAt(screen, g.String(), int(origin.X), int(origin.Y))
	}
	s.trail.Draw(screen, origin)
	s.dust.Draw(screen, origin)

	if s.fps != nil {
		s.fps.draw(screen)
	}

	if s.debug {
		stats.drawTime = time.Since(t0)
		stats.trailMarks = s.trail.Len()
		stats.dustChips = s.dust.AliveCount()
		stats.progress = s.card.Progress()
		s.debugLog(stats)
	}

	s.flushScreenshots(screen)
}

// markRevealed starts a trail mark and a dust burst over a freshly revealed
// cell.
func (s *Scene) markRevealed(index int) {
	col, row := index%Width, index/Width
	x, y := s.cal.CellOrigin(col, row)
	w, h := s.cal.CellSize()
	s.trail.Add(Rect{X: x, Y: y, Width: w, Height: h})
	s.dust.Burst(x+w/2, y+h/2)
}
