package scratchoff

import "strings"

// Glyph runes emitted by Render.
const (
	GlyphRowBreak     = '\n'
	GlyphTextureEven  = 'x'
	GlyphTextureOdd   = '0'
	GlyphRevealedEven = 'e'
	GlyphRevealedOdd  = 'F'
)

// Glyphs is one rendered frame: a rune per cell in row-major order, with a
// row break in column 0 of every row.
type Glyphs [Area]rune

// Render computes the glyph of every cell from a mask snapshot and a message.
// It has no state of its own; equal inputs always produce equal output.
func Render(s Snapshot, m Message) Glyphs {
	var rows [Height][]rune
	for y := range m {
		rows[y] = []rune(m[y])
	}

	var g Glyphs
	for i := 0; i < Area; i++ {
		x := i % Width
		if x == 0 {
			g[i] = GlyphRowBreak
			continue
		}
		y := i / Width
		text := rows[y]
		// A row whose index equals its own rune length is never shown.
		inRegion := x > Padding && y != 0 && y != len(text)
		even := x%2 == 0

		switch {
		case !s[i]:
			g[i] = pick(even, GlyphTextureEven, GlyphTextureOdd)
		case inRegion && x < len(text):
			g[i] = text[x]
		default:
			g[i] = pick(even, GlyphRevealedEven, GlyphRevealedOdd)
		}
	}
	return g
}

func pick(even bool, a, b rune) rune {
	if even {
		return a
	}
	return b
}

// String concatenates every glyph, row breaks included, into the text handed
// to the display.
func (g Glyphs) String() string {
	var b strings.Builder
	b.Grow(Area)
	for _, r := range g {
		b.WriteRune(r)
	}
	return b.String()
}

// Lines returns the Height rows without their row breaks.
func (g Glyphs) Lines() []string {
	lines := make([]string, Height)
	for y := 0; y < Height; y++ {
		lines[y] = string(g[y*Width+1 : (y+1)*Width])
	}
	return lines
}

// Row returns the glyphs of row y, including the row break in column 0.
func (g Glyphs) Row(y int) []rune {
	if y < 0 || y >= Height {
		return nil
	}
	return g[y*Width : (y+1)*Width]
}
