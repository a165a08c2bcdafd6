package scratchoff

import (
	"github.com/hajimehoshi/ebiten/v2"
)

// --- Constants ---

const (
	maxPointers = 10 // pointer 0 = mouse, 1-9 = touch
)

// --- Per-pointer state ---

type pointerState struct {
	down   bool
	seen   bool // lastX/lastY hold a real position
	lastX  float64
	lastY  float64
	button MouseButton // button captured at press time
}

// PointerContext describes one pointer event delivered to scene-level handlers.
type PointerContext struct {
	// Screen position.
	X, Y float64
	// Position relative to the card surface's top-left corner.
	LocalX, LocalY float64
	// Inside reports whether the pointer is over the card surface.
	Inside bool
	// Index is the mapped cell for moves over the surface, -1 otherwise.
	Index int
	// Revealed reports whether this move uncovered a hidden cell.
	Revealed  bool
	Button    MouseButton
	PointerID int
}

// --- Handler registry ---

type pointerHandler struct {
	id uint32
	fn func(PointerContext)
}

type handlerRegistry struct {
	pointerDown []pointerHandler
	pointerUp   []pointerHandler
	pointerMove []pointerHandler
	nextID      uint32
}

// CallbackHandle allows removing a registered scene-level callback.
type CallbackHandle struct {
	id    uint32
	reg   *handlerRegistry
	event EventType
}

// Remove unregisters this callback so it no longer fires.
func (h CallbackHandle) Remove() {
	if h.reg == nil {
		return
	}
	switch h.event {
	case EventPointerDown:
		h.reg.pointerDown = removePointerHandler(h.reg.pointerDown, h.id)
	case EventPointerUp:
		h.reg.pointerUp = removePointerHandler(h.reg.pointerUp, h.id)
	case EventPointerMove:
		h.reg.pointerMove = removePointerHandler(h.reg.pointerMove, h.id)
	}
}

func removePointerHandler(s []pointerHandler, id uint32) []pointerHandler {
	for i := range s {
		if s[i].id == id {
			copy(s[i:], s[i+1:])
			s[len(s)-1] = pointerHandler{}
			return s[:len(s)-1]
		}
	}
	return s
}

func (r *handlerRegistry) add(event EventType, fn func(PointerContext)) CallbackHandle {
	r.nextID++
	h := pointerHandler{id: r.nextID, fn: fn}
	switch event {
	case EventPointerDown:
		r.pointerDown = append(r.pointerDown, h)
	case EventPointerUp:
		r.pointerUp = append(r.pointerUp, h)
	case EventPointerMove:
		r.pointerMove = append(r.pointerMove, h)
	}
	return CallbackHandle{id: h.id, reg: r, event: event}
}

// --- Scene-level event registration ---

// OnPointerDown registers a callback fired when any pointer is pressed,
// anywhere in the window.
func (s *Scene) OnPointerDown(fn func(PointerContext)) CallbackHandle {
	return s.handlers.add(EventPointerDown, fn)
}

// OnPointerUp registers a callback fired when any pointer is released.
func (s *Scene) OnPointerUp(fn func(PointerContext)) CallbackHandle {
	return s.handlers.add(EventPointerUp, fn)
}

// OnPointerMove registers a callback fired when a pointer moves over the
// card surface.
func (s *Scene) OnPointerMove(fn func(PointerContext)) CallbackHandle {
	return s.handlers.add(EventPointerMove, fn)
}

// --- Input processing ---

// processInput is called from Scene.Update to handle all mouse and touch
// input. A queued synthetic event replaces real input for the frame.
func (s *Scene) processInput() {
	if s.processInjectedInput() {
		return
	}
	s.processMousePointer()
	s.processTouchPointers()
}

// processMousePointer handles mouse input (pointer 0).
func (s *Scene) processMousePointer() {
	mx, my := ebiten.CursorPosition()

	var pressed bool
	var button MouseButton
	left := ebiten.IsMouseButtonPressed(ebiten.MouseButtonLeft)
	right := ebiten.IsMouseButtonPressed(ebiten.MouseButtonRight)
	middle := ebiten.IsMouseButtonPressed(ebiten.MouseButtonMiddle)

	if left || right || middle {
		pressed = true
		if left {
			button = MouseButtonLeft
		} else if right {
			button = MouseButtonRight
		} else {
			button = MouseButtonMiddle
		}
	}

	s.processPointer(0, float64(mx), float64(my), pressed, button)
}

// processTouchPointers handles touch input (pointers 1-9).
func (s *Scene) processTouchPointers() {
	touchIDs := ebiten.AppendTouchIDs(s.prevTouchIDs[:0])
	s.prevTouchIDs = touchIDs

	var activeSlots [maxPointers]bool
	for _, tid := range touchIDs {
		slot := s.touchSlot(tid)
		if slot < 0 {
			continue
		}
		activeSlots[slot] = true

		tx, ty := ebiten.TouchPosition(tid)
		s.processPointer(slot, float64(tx), float64(ty), true, MouseButtonLeft)
	}

	// Release any touch slots that are no longer active.
	for i := 1; i < maxPointers; i++ {
		if s.touchUsed[i] && !activeSlots[i] {
			ps := &s.pointers[i]
			if ps.down {
				s.processPointer(i, ps.lastX, ps.lastY, false, MouseButtonLeft)
			}
			s.touchUsed[i] = false
			s.touchMap[i] = 0
		}
	}
}

// touchSlot maps an ebiten.TouchID to a pointer slot (1-9).
// Returns the existing slot or allocates a new one. Returns -1 if full.
func (s *Scene) touchSlot(tid ebiten.TouchID) int {
	for i := 1; i < maxPointers; i++ {
		if s.touchUsed[i] && s.touchMap[i] == tid {
			return i
		}
	}
	for i := 1; i < maxPointers; i++ {
		if !s.touchUsed[i] {
			s.touchUsed[i] = true
			s.touchMap[i] = tid
			return i
		}
	}
	return -1
}

// processPointer runs the pointer state machine for a single pointer at
// screen position (sx, sy). A position change is delivered before the button
// transition, so the press position itself is not scratched and the release
// position is.
func (s *Scene) processPointer(pointerID int, sx, sy float64, pressed bool, button MouseButton) {
	ps := &s.pointers[pointerID]

	if !ps.seen || sx != ps.lastX || sy != ps.lastY {
		ps.seen = true
		ps.lastX = sx
		ps.lastY = sy
		s.firePointerMove(pointerID, sx, sy, button)
	}

	if pressed && !ps.down {
		ps.down = true
		ps.button = button
		s.pressed++
		if s.pressed == 1 {
			s.card.OnPointerDown()
		}
		s.firePointerDown(pointerID, sx, sy, button)
	} else if !pressed && ps.down {
		ps.down = false
		s.pressed--
		if s.pressed == 0 {
			s.card.OnPointerUp()
		}
		s.firePointerUp(pointerID, sx, sy, ps.button)
	}
}

// --- Event dispatch ---

func (s *Scene) pointerContext(pointerID int, sx, sy float64, button MouseButton) PointerContext {
	lx, ly := sx-s.Surface.X, sy-s.Surface.Y
	return PointerContext{
		X: sx, Y: sy, LocalX: lx, LocalY: ly,
		Inside:    s.Surface.Contains(sx, sy),
		Index:     -1,
		Button:    button,
		PointerID: pointerID,
	}
}

func (s *Scene) firePointerDown(pointerID int, sx, sy float64, button MouseButton) {
	ctx := s.pointerContext(pointerID, sx, sy, button)
	for _, h := range s.handlers.pointerDown {
		h.fn(ctx)
	}
}

func (s *Scene) firePointerUp(pointerID int, sx, sy float64, button MouseButton) {
	ctx := s.pointerContext(pointerID, sx, sy, button)
	for _, h := range s.handlers.pointerUp {
		h.fn(ctx)
	}
}

// firePointerMove forwards moves over the surface to the card. Moves outside
// the surface never reach it, matching a listener bound to the card alone.
func (s *Scene) firePointerMove(pointerID int, sx, sy float64, button MouseButton) {
	ctx := s.pointerContext(pointerID, sx, sy, button)
	if !ctx.Inside {
		return
	}
	ctx.Index = s.cal.Index(ctx.LocalX, ctx.LocalY)
	ctx.Revealed = s.card.OnPointerMove(ctx.LocalX, ctx.LocalY)
	for _, h := range s.handlers.pointerMove {
		h.fn(ctx)
	}
}
