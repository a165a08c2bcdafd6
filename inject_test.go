package scratchoff

import (
	"strings"
	"testing"
)

func drain(s *Scene) {
	for len(s.injectQueue) > 0 {
		s.processInput()
	}
}

func TestInjectClick(t *testing.T) {
	s := newTestScene()
	x, y := s.CellCenter(5, 1)

	s.InjectClick(x, y)
	if len(s.injectQueue) != 2 {
		t.Fatalf("expected 2 queued events, got %d", len(s.injectQueue))
	}

	// Frame 1: press
	s.processInput()
	if !s.card.Down() {
		t.Error("latch should be down after the press frame")
	}

	// Frame 2: release
	s.processInput()
	if s.card.Down() {
		t.Error("latch should be up after the release frame")
	}
	// A click never moves while pressed, so nothing is revealed.
	if s.card.Progress() != 0 {
		t.Error("click revealed a cell")
	}
}

func TestInjectDrag(t *testing.T) {
	s := newTestScene()
	x0, y := s.CellCenter(3, 2)
	x1, _ := s.CellCenter(12, 2)

	s.InjectDrag(x0, y, x1, y, 12)
	if len(s.injectQueue) != 12 {
		t.Fatalf("expected 12 queued events, got %d", len(s.injectQueue))
	}
	drain(s)

	if s.card.Revealed(2*Width + 3) {
		t.Error("press cell should stay hidden")
	}
	for col := 4; col <= 12; col++ {
		if !s.card.Revealed(2*Width + col) {
			t.Errorf("cell (%d,2) should be revealed", col)
		}
	}
}

func TestInjectHover(t *testing.T) {
	s := newTestScene()
	for col := 1; col < Width; col++ {
		x, y := s.CellCenter(col, 1)
		s.InjectHover(x, y)
	}
	drain(s)
	if s.card.Progress() != 0 {
		t.Error("hovering revealed cells")
	}
}

func TestInjectScratchRow(t *testing.T) {
	s := newTestScene()
	s.InjectScratchRow(1)
	if len(s.injectQueue) != Width+1 {
		t.Fatalf("expected %d queued events, got %d", Width+1, len(s.injectQueue))
	}
	drain(s)

	lines := s.card.Glyphs().Lines()
	if want := "Fe Dear people at Oxide, eFeFeFeFeFeFeF"; lines[1] != want {
		t.Errorf("row 1 = %q, want %q", lines[1], want)
	}
	hidden := strings.Repeat("0x", 19) + "0"
	for y, line := range lines {
		if y != 1 && line != hidden {
			t.Errorf("row %d = %q, want texture only", y, line)
		}
	}
	if s.card.Down() {
		t.Error("latch should be released at the end of the scratch")
	}
}

func TestInjectDragMinimumFrames(t *testing.T) {
	s := newTestScene()
	s.InjectDrag(0, 0, 100, 100, 0)
	if len(s.injectQueue) != 2 {
		t.Errorf("expected press+release, got %d events", len(s.injectQueue))
	}
}
