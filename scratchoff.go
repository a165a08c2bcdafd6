package scratchoff

import (
	"image/color"
)

// Grid geometry. Every grid-indexed value is row-major: index = y*Width + x.
const (
	Width  = 40
	Height = 6
	Area   = Width * Height

	// Padding is the number of reserved columns at the left of each row.
	Padding = 2
)

// Message is the hidden text, one string per grid row. The first and last
// rows are empty. Text is addressed in runes starting at column 0, so the
// reserved left columns fall inside each row's own text.
type Message [Height]string

// DefaultMessage is the text printed on the card.
var DefaultMessage = Message{
	"",
	"    Dear people at Oxide, ",
	"    you are an inspiration! ",
	"    It'd be a dream to work with you. ",
	"    Would you like to meet? ",
	"",
}

// Color represents an RGBA color with components in [0, 1]. Not premultiplied.
type Color struct {
	R, G, B, A float64
}

// ColorWhite is the default ink color.
var ColorWhite = Color{1, 1, 1, 1}

// toRGBA converts to a premultiplied color.RGBA.
func (c Color) toRGBA() color.RGBA {
	return color.RGBA{
		R: uint8(clamp01(c.R*c.A) * 255),
		G: uint8(clamp01(c.G*c.A) * 255),
		B: uint8(clamp01(c.B*c.A) * 255),
		A: uint8(clamp01(c.A) * 255),
	}
}

func clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}

// Vec2 is a 2D vector used for pointer positions and offsets.
type Vec2 struct {
	X, Y float64
}

// Rect is an axis-aligned rectangle. The coordinate system has its origin at
// the top-left, with Y increasing downward.
type Rect struct {
	X, Y, Width, Height float64
}

// Contains reports whether the point (x, y) lies inside the rectangle.
// Points on the edge are considered inside.
func (r Rect) Contains(x, y float64) bool {
	return x >= r.X && x <= r.X+r.Width &&
		y >= r.Y && y <= r.Y+r.Height
}

// Empty reports whether the rectangle has no area.
func (r Rect) Empty() bool {
	return r.Width <= 0 || r.Height <= 0
}

// EventType identifies a kind of pointer event.
type EventType uint8

const (
	EventPointerDown EventType = iota // fires when a pointer button is pressed
	EventPointerUp                    // fires when a pointer button is released
	EventPointerMove                  // fires when the pointer moves, pressed or not
)

// String returns the event name used in logs and test scripts.
func (e EventType) String() string {
	switch e {
	case EventPointerDown:
		return "pointerdown"
	case EventPointerUp:
		return "pointerup"
	case EventPointerMove:
		return "pointermove"
	default:
		return "unknown"
	}
}

// MouseButton identifies a mouse button.
type MouseButton uint8

const (
	MouseButtonLeft   MouseButton = iota // primary (left) mouse button
	MouseButtonRight                     // secondary (right) mouse button
	MouseButtonMiddle                    // middle mouse button (scroll wheel click)
)
