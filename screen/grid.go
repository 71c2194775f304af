package screen

import "unicode"

// Device text screen geometry
const (
	Cols = 33
	Rows = 23

	CellWidth  = 8  // pixels per character column
	CellHeight = 10 // pixels per character row

	ScreenWidth  = 320
	ScreenHeight = 240
)

// CursorGlyph is drawn by the device to mark the cursor; it is never stored
const CursorGlyph = '>'

// Grid mirrors the device text screen, row-major, one rune per cell
type Grid struct {
	cells [Rows * Cols]rune
}

// NewGrid creates a blank grid
func NewGrid() *Grid {
	g := &Grid{}
	g.Clear()
	return g
}

// Clear resets every cell to a space
func (g *Grid) Clear() {
	for i := range g.cells {
		g.cells[i] = ' '
	}
}

// SetCell writes one character. Writes outside the grid are dropped.
func (g *Grid) SetCell(row, col int, ch rune) {
	if row < 0 || row >= Rows || col < 0 || col >= Cols {
		return
	}
	if ch == CursorGlyph {
		ch = ' '
	}
	g.cells[row*Cols+col] = ch
}

// SetGlyph writes a glyph drawn at pixel position (px, py).
// The device screen has a one cell border on the top and left.
func (g *Grid) SetGlyph(charCode, px, py int) {
	row := FloorDiv(py, CellHeight) - 1
	col := FloorDiv(px, CellWidth) - 1
	g.SetCell(row, col, rune(charCode))
}

// ReadSpan reads length characters starting at (row, col).
// Reads run row-major over the flattened grid, so a span that passes the end
// of a row continues with the start of the next one.
func (g *Grid) ReadSpan(row, col, length int) string {
	return g.Snapshot().ReadSpan(row, col, length)
}

// Hash returns the whole grid flattened to one string
func (g *Grid) Hash() string {
	return string(g.cells[:])
}

// Snapshot returns an immutable copy of the grid
func (g *Grid) Snapshot() Snapshot {
	cells := make([]rune, len(g.cells))
	copy(cells, g.cells[:])
	return Snapshot{cells: cells}
}

// Snapshot is a read-only copy of the grid taken at a tick boundary
type Snapshot struct {
	cells []rune
}

// SnapshotFromRows builds a snapshot from row strings. Missing rows and
// columns are blank, longer rows are cut.
func SnapshotFromRows(rows ...string) Snapshot {
	g := NewGrid()
	for r, line := range rows {
		col := 0
		for _, ch := range line {
			g.SetCell(r, col, ch)
			col++
		}
	}
	return g.Snapshot()
}

// ReadSpan reads length characters starting at (row, col), continuing into
// following rows. Starts before the grid read as empty, spans past the end
// of the grid are cut short.
func (s Snapshot) ReadSpan(row, col, length int) string {
	start := row*Cols + col
	if length <= 0 || start < 0 || start >= len(s.cells) {
		return ""
	}
	end := start + length
	if end > len(s.cells) {
		end = len(s.cells)
	}
	return string(s.cells[start:end])
}

// Row returns one full row
func (s Snapshot) Row(row int) string {
	return s.ReadSpan(row, 0, Cols)
}

// Hash returns the flattened grid; equal hashes mean equal screens
func (s Snapshot) Hash() string {
	return string(s.cells)
}

// Blank reports whether the grid holds only whitespace
func (s Snapshot) Blank() bool {
	for _, ch := range s.cells {
		if !unicode.IsSpace(ch) {
			return false
		}
	}
	return true
}

// FloorDiv divides rounding toward negative infinity, matching how the
// device maps pixels to cells
func FloorDiv(a, b int) int {
	q := a / b
	if (a%b != 0) && ((a < 0) != (b < 0)) {
		q--
	}
	return q
}
