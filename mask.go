package scratchoff

// Snapshot is a point-in-time copy of a Mask's cells.
type Snapshot [Area]bool

// Mask holds the reveal state of every cell. Its length is fixed at Area and
// indices outside [0, Area) are never written. The zero value is a fully
// hidden card.
type Mask struct {
	cells    Snapshot
	revealed int
}

// Set writes a single cell. It returns false without touching the mask when
// index is out of range.
func (m *Mask) Set(index int, value bool) bool {
	if index < 0 || index >= Area {
		return false
	}
	if m.cells[index] != value {
		if value {
			m.revealed++
		} else {
			m.revealed--
		}
	}
	m.cells[index] = value
	return true
}

// Get reads a single cell. Out-of-range indices read as hidden.
func (m *Mask) Get(index int) bool {
	if index < 0 || index >= Area {
		return false
	}
	return m.cells[index]
}

// Revealed returns the number of revealed cells.
func (m *Mask) Revealed() int {
	return m.revealed
}

// Snapshot returns a copy of all cells.
func (m *Mask) Snapshot() Snapshot {
	return m.cells
}
