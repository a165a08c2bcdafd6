package scratchoff

import "testing"

func newTestScene() *Scene {
	return NewScene(NewCard(), DefaultCalibration)
}

func TestSurfaceFor(t *testing.T) {
	r := SurfaceFor(DefaultCalibration)
	if r.X != 0 || r.Y != 0 {
		t.Errorf("surface origin = (%v, %v), want (0, 0)", r.X, r.Y)
	}
	if r.Width != 41*11.5 || r.Height != 6*31 {
		t.Errorf("surface size = %vx%v, want %vx%v", r.Width, r.Height, 41*11.5, 6*31.0)
	}
}

func TestPressAnywhereLatches(t *testing.T) {
	s := newTestScene()

	// Outside the surface: latch goes down, nothing is revealed.
	s.processPointer(0, 2000, 2000, true, MouseButtonLeft)
	if !s.card.Down() {
		t.Fatal("press outside the surface should still latch")
	}
	if s.card.Progress() != 0 {
		t.Error("press outside the surface revealed a cell")
	}

	x, y := s.CellCenter(10, 2)
	s.processPointer(0, x, y, true, MouseButtonLeft)
	if !s.card.Revealed(2*Width + 10) {
		t.Error("move over the surface with the latch down should reveal")
	}

	s.processPointer(0, x, y, false, MouseButtonLeft)
	if s.card.Down() {
		t.Error("release should clear the latch")
	}
}

func TestMoveOutsideSurfaceIgnored(t *testing.T) {
	s := newTestScene()
	s.Surface.X, s.Surface.Y = 100, 100

	var moves int
	s.OnPointerMove(func(ctx PointerContext) { moves++ })

	s.processPointer(0, 50, 50, true, MouseButtonLeft)
	s.processPointer(0, 60, 60, true, MouseButtonLeft)
	if moves != 0 {
		t.Errorf("moves outside the surface fired %d handlers, want 0", moves)
	}

	x, y := s.CellCenter(3, 1)
	s.processPointer(0, x, y, true, MouseButtonLeft)
	if moves != 1 {
		t.Errorf("moves = %d, want 1", moves)
	}
	if !s.card.Revealed(Width + 3) {
		t.Error("surface offset was not removed before mapping")
	}
}

func TestPointerMoveContext(t *testing.T) {
	s := newTestScene()
	var got []PointerContext
	s.OnPointerMove(func(ctx PointerContext) { got = append(got, ctx) })

	x, y := s.CellCenter(7, 3)
	s.processPointer(0, 0, 0, true, MouseButtonLeft)
	s.processPointer(0, x, y, true, MouseButtonLeft)

	if len(got) != 2 {
		t.Fatalf("got %d move events, want 2", len(got))
	}
	last := got[1]
	if !last.Inside || last.Index != 3*Width+7 || !last.Revealed {
		t.Errorf("context = %+v, want inside, index %d, revealed", last, 3*Width+7)
	}
	if last.LocalX != x || last.LocalY != y {
		t.Errorf("local = (%v, %v), want (%v, %v)", last.LocalX, last.LocalY, x, y)
	}
}

func TestMultiplePointersShareLatch(t *testing.T) {
	s := newTestScene()

	s.processPointer(0, 10, 10, true, MouseButtonLeft)
	s.processPointer(1, 20, 20, true, MouseButtonLeft)
	s.processPointer(0, 10, 10, false, MouseButtonLeft)
	if !s.card.Down() {
		t.Error("latch released while a touch is still down")
	}
	s.processPointer(1, 20, 20, false, MouseButtonLeft)
	if s.card.Down() {
		t.Error("latch still down after every pointer released")
	}
}

func TestDownUpHandlers(t *testing.T) {
	s := newTestScene()
	var events []string
	s.OnPointerDown(func(ctx PointerContext) { events = append(events, "down") })
	s.OnPointerUp(func(ctx PointerContext) { events = append(events, "up") })

	s.processPointer(0, 5, 5, true, MouseButtonRight)
	s.processPointer(0, 5, 5, false, MouseButtonLeft)

	if len(events) != 2 || events[0] != "down" || events[1] != "up" {
		t.Errorf("events = %v, want [down up]", events)
	}
}

func TestCallbackHandleRemove(t *testing.T) {
	s := newTestScene()
	var calls int
	h := s.OnPointerDown(func(ctx PointerContext) { calls++ })

	s.processPointer(0, 5, 5, true, MouseButtonLeft)
	s.processPointer(0, 5, 5, false, MouseButtonLeft)
	h.Remove()
	s.processPointer(0, 5, 5, true, MouseButtonLeft)

	if calls != 1 {
		t.Errorf("handler called %d times, want 1", calls)
	}
	if len(s.handlers.pointerDown) != 0 {
		t.Errorf("registry still holds %d handlers", len(s.handlers.pointerDown))
	}

	// A zero handle is a no-op.
	CallbackHandle{}.Remove()
}

func TestRevealStartsTrailMark(t *testing.T) {
	s := newTestScene()
	s.processPointer(0, 0, 0, true, MouseButtonLeft)
	for col := 1; col <= 4; col++ {
		x, y := s.CellCenter(col, 1)
		s.processPointer(0, x, y, true, MouseButtonLeft)
	}
	if s.trail.Len() != 4 {
		t.Errorf("trail has %d marks, want 4", s.trail.Len())
	}
}
