package scratchoff

import (
	"bytes"
	"fmt"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
)

// CardFont is a monospace face sized so that one glyph advance spans exactly
// one calibrated cell.
type CardFont struct {
	face   *text.GoTextFace
	source *text.GoTextFaceSource
	cal    Calibration
	lh     float64 // cached line height
}

// LoadCardFont parses monospace TTF/OTF data and sizes it to cal.
func LoadCardFont(ttfData []byte, cal Calibration) (*CardFont, error) {
	source, err := text.NewGoTextFaceSource(bytes.NewReader(ttfData))
	if err != nil {
		return nil, fmt.Errorf("scratchoff: failed to parse TTF data: %w", err)
	}

	unit := &text.GoTextFace{Source: source, Size: 1}
	adv := text.Advance(string(GlyphTextureOdd), unit)
	if adv <= 0 {
		return nil, fmt.Errorf("scratchoff: font has no advance for %q", GlyphTextureOdd)
	}
	cellW, _ := cal.CellSize()

	face := &text.GoTextFace{
		Source: source,
		Size:   cellW / adv,
	}
	m := face.Metrics()

	return &CardFont{
		face:   face,
		source: source,
		cal:    cal,
		lh:     m.HAscent + m.HDescent + m.HLineGap,
	}, nil
}

// Size returns the point size chosen for the calibration.
func (f *CardFont) Size() float64 {
	return f.face.Size
}

// LineHeight returns the natural line height of the face.
func (f *CardFont) LineHeight() float64 {
	return f.lh
}

// Face returns the underlying GoTextFace for direct text/v2 rendering.
func (f *CardFont) Face() *text.GoTextFace {
	return f.face
}

// Draw writes every row of g onto dst. Each row is placed on the pixel area
// the calibration maps back to that row, offset by origin, so what the user
// sees under the pointer is the cell the pointer reveals.
func (f *CardFont) Draw(dst *ebiten.Image, g Glyphs, origin Vec2, ink Color) {
	_, cellH := f.cal.CellSize()
	pad := (cellH - f.lh) / 2

	op := &text.DrawOptions{}
	for y, line := range g.Lines() {
		x0, y0 := f.cal.CellOrigin(1, y)
		op.GeoM.Reset()
		op.GeoM.Translate(origin.X+x0, origin.Y+y0+pad)
		op.ColorScale.Reset()
		op.ColorScale.ScaleWithColor(ink.toRGBA())
		text.Draw(dst, line, f.face, op)
	}
}
