// Package terminal hosts a scratch-off card in a terminal through tcell.
//
// Terminal mice report character cells, not pixels. The host projects each
// terminal cell onto the center of the matching grid cell in the card's
// calibrated pixel space, so the card's own mapping decides what is revealed,
// exactly as it does for the window host.
package terminal

import (
	"context"
	"fmt"
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/rs/zerolog"

	"github.com/phanxgames/scratchoff"
)

const defaultFrameRate = 30

// Styles used to draw the card.
var (
	styleHidden   = tcell.StyleDefault.Foreground(tcell.ColorGray)
	styleRevealed = tcell.StyleDefault.Foreground(tcell.ColorYellow).Bold(true)
	styleStatus   = tcell.StyleDefault.Foreground(tcell.ColorTeal)
)

// Host draws a card on a tcell screen and feeds it mouse input.
//
// Column 0 of the grid holds the row break and is not drawn, so grid column c
// appears at terminal column c-1+OriginX. The blank line produced by the
// leading row break sits at OriginY-1.
type Host struct {
	// FrameRate is the number of redraws per second in Run.
	FrameRate int
	// OriginX, OriginY place grid column 1, row 0 on the terminal.
	OriginX, OriginY int

	screen  tcell.Screen
	card    *scratchoff.Card
	cal     scratchoff.Calibration
	log     zerolog.Logger
	pressed bool
}

// New creates a host. The screen must not be initialized yet; Init does that.
func New(screen tcell.Screen, card *scratchoff.Card, cal scratchoff.Calibration, log zerolog.Logger) *Host {
	return &Host{
		FrameRate: defaultFrameRate,
		OriginY:   1,
		screen:    screen,
		card:      card,
		cal:       cal,
		log:       log,
	}
}

// NewScreen opens the terminal.
func NewScreen() (tcell.Screen, error) {
	screen, err := tcell.NewScreen()
	if err != nil {
		return nil, fmt.Errorf("terminal: new screen: %w", err)
	}
	return screen, nil
}

// Init prepares the screen and turns on mouse reporting.
func (h *Host) Init() error {
	if err := h.screen.Init(); err != nil {
		return fmt.Errorf("terminal: init screen: %w", err)
	}
	h.screen.EnableMouse()
	h.screen.HideCursor()
	h.screen.Clear()
	return nil
}

// Fini restores the terminal.
func (h *Host) Fini() {
	h.screen.Fini()
}

// Project converts a terminal cell to a pixel position relative to the card
// surface. ok is false when the cell lies outside the drawn card.
func (h *Host) Project(tx, ty int) (x, y float64, ok bool) {
	col := tx - h.OriginX + 1
	row := ty - h.OriginY
	if col < 1 || col >= scratchoff.Width || row < 0 || row >= scratchoff.Height {
		return 0, 0, false
	}
	x, y = h.cal.CellCenter(col, row)
	return x, y, true
}

// HandleEvent applies one terminal event. It returns true when the user asked
// to quit.
func (h *Host) HandleEvent(ev tcell.Event) bool {
	switch ev := ev.(type) {
	case *tcell.EventKey:
		switch ev.Key() {
		case tcell.KeyEscape, tcell.KeyCtrlC:
			return true
		case tcell.KeyRune:
			if ev.Rune() == 'q' {
				return true
			}
		}
	case *tcell.EventMouse:
		h.handleMouse(ev)
	case *tcell.EventResize:
		h.screen.Sync()
	}
	return false
}

// handleMouse delivers the move before the button transition, the same
// order the window host uses.
func (h *Host) handleMouse(ev *tcell.EventMouse) {
	tx, ty := ev.Position()
	if x, y, ok := h.Project(tx, ty); ok {
		h.card.OnPointerMove(x, y)
	}

	pressed := ev.Buttons()&tcell.Button1 != 0
	switch {
	case pressed && !h.pressed:
		h.pressed = true
		h.card.OnPointerDown()
	case !pressed && h.pressed:
		h.pressed = false
		h.card.OnPointerUp()
	}
}

// Draw paints the current card and a status line, then shows the screen.
func (h *Host) Draw() {
	g := h.card.Glyphs()
	for row := 0; row < scratchoff.Height; row++ {
		cells := g.Row(row)
		for col := 1; col < len(cells); col++ {
			style := styleHidden
			if h.card.Revealed(row*scratchoff.Width + col) {
				style = styleRevealed
			}
			h.screen.SetContent(h.OriginX+col-1, h.OriginY+row, cells[col], nil, style)
		}
	}

	status := fmt.Sprintf("revealed %3.0f%%   drag to scratch, q to quit", h.card.Progress()*100)
	for i, r := range status {
		h.screen.SetContent(h.OriginX+i, h.OriginY+scratchoff.Height+1, r, nil, styleStatus)
	}
	h.screen.Show()
}

// Run polls events on a separate goroutine and redraws at FrameRate until the
// user quits or ctx is done.
func (h *Host) Run(ctx context.Context) error {
	quit := make(chan struct{})
	events := make(chan tcell.Event, 64)

	go func() {
		for {
			ev := h.screen.PollEvent()
			if ev == nil {
				close(events)
				return
			}
			select {
			case events <- ev:
			case <-quit:
				return
			}
		}
	}()
	defer close(quit)

	rate := h.FrameRate
	if rate <= 0 {
		rate = defaultFrameRate
	}
	ticker := time.NewTicker(time.Second / time.Duration(rate))
	defer ticker.Stop()

	h.Draw()
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case ev, ok := <-events:
			if !ok {
				return nil
			}
			if h.HandleEvent(ev) {
				h.log.Info().Float64("progress", h.card.Progress()).Msg("quit")
				return nil
			}
		case <-ticker.C:
			h.Draw()
		}
	}
}
