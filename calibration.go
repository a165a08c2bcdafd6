package scratchoff

import "math"

// Mapper converts a pointer position, in pixels relative to the top-left of
// the card surface, into a linear cell index. Implementations do not bound
// check; callers must verify 0 <= index < Area before mutating a mask.
type Mapper interface {
	Index(x, y float64) int
}

// Calibration is a fixed pixel-to-cell fit for one glyph size. The scale
// factors are the glyph metrics divided by an empirically measured pixel span,
// so they only hold for the font configuration they were measured against.
type Calibration struct {
	GlyphWidth  float64
	GlyphHeight float64
	LineSpacing float64
	SpanX       float64
	SpanY       float64
}

// DefaultCalibration matches a 10x15 glyph with 13px line spacing.
var DefaultCalibration = Calibration{
	GlyphWidth:  10,
	GlyphHeight: 15,
	LineSpacing: 13,
	SpanX:       115,
	SpanY:       868,
}

// Scale returns the x and y pixel-to-cell factors.
func (c Calibration) Scale() (wc, hc float64) {
	return c.GlyphWidth / c.SpanX, (c.GlyphHeight + c.LineSpacing) / c.SpanY
}

// CellSize returns the pixel width and height covered by one cell.
func (c Calibration) CellSize() (w, h float64) {
	return c.SpanX / c.GlyphWidth, c.SpanY / (c.GlyphHeight + c.LineSpacing)
}

// Cell returns the column and row the pixel (x, y) falls on. The column is
// shifted one cell left by the fit and saturates at 0 on the left edge; the
// row is negative above the surface.
func (c Calibration) Cell(x, y float64) (col, row int) {
	wc, hc := c.Scale()
	col = int(math.Floor(x*wc)) - 1
	if col < 0 {
		col = 0
	}
	row = int(math.Floor(y * hc))
	return col, row
}

// Index implements Mapper. Columns past the last one spill into the next row.
func (c Calibration) Index(x, y float64) int {
	col, row := c.Cell(x, y)
	return row*Width + col
}

// CellOrigin returns the top-left pixel of the area that maps to (col, row).
// Column 0 has no area of its own; it is only reached through saturation.
func (c Calibration) CellOrigin(col, row int) (x, y float64) {
	w, h := c.CellSize()
	return float64(col+1) * w, float64(row) * h
}

// CellCenter returns the pixel at the middle of the area that maps to (col, row).
func (c Calibration) CellCenter(col, row int) (x, y float64) {
	w, h := c.CellSize()
	x, y = c.CellOrigin(col, row)
	return x + w/2, y + h/2
}
