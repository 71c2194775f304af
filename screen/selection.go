package screen

import "fmt"

// Mode is how the device is highlighting the selection
type Mode string

const (
	ModeNone  Mode = ""
	ModeValue Mode = "value" // editing a single field
	ModeCopy  Mode = "copy"  // block selection for copy/cut
)

// Rect is the highlighted rectangle in device pixels
type Rect struct {
	X, Y, W, H int
	Mode       Mode
}

// NoRect is the rectangle used when nothing is highlighted
var NoRect = Rect{X: -1, Y: -1, W: -1, H: -1, Mode: ModeNone}

// Signature identifies a rectangle for change detection
func (r Rect) Signature() string {
	return fmt.Sprintf("%d-%d-%d-%d-%s", r.X, r.Y, r.W, r.H, r.Mode)
}

// Coord maps the rectangle onto grid cells. Rows carry the one cell border
// offset, columns do not.
func (r Rect) Coord() Coord {
	return Coord{
		Row: FloorDiv(r.Y, CellHeight) - 1,
		Col: FloorDiv(r.X, CellWidth),
		Len: FloorDiv(r.W, CellWidth),
	}
}

// FullScreen reports whether the rectangle covers the whole display
func FullScreen(x, y, w, h int) bool {
	return x == 0 && y == 0 && w == ScreenWidth && h == ScreenHeight
}

// Coord is a span of cells on the grid
type Coord struct {
	Row, Col, Len int
}

// BackgroundFunc receives device background colour changes
type BackgroundFunc func(r, g, b uint8)

// Selection tracks the highlighted rectangle between ticks
type Selection struct {
	rect         Rect
	onBackground BackgroundFunc

	lastSig  string
	lastText string
}

// NewSelection creates a tracker with no selection. onBackground may be nil.
func NewSelection(onBackground BackgroundFunc) *Selection {
	return &Selection{
		rect:         NoRect,
		onBackground: onBackground,
		lastSig:      NoRect.Signature(),
	}
}

// OnRect handles a rectangle draw call. It reports whether the call replaced
// the selection or cleared the background.
func (s *Selection) OnRect(x, y, w, h int, r, g, b uint8) bool {
	if FullScreen(x, y, w, h) {
		s.rect = NoRect
		if s.onBackground != nil {
			s.onBackground(r, g, b)
		}
		return true
	}

	// Smaller or black rectangles are underlines and other decoration
	if int(r)+int(g)+int(b) == 0 || w < CellWidth || h < CellHeight {
		return false
	}

	mode := ModeCopy
	if g > 0 {
		mode = ModeValue
	}
	s.rect = Rect{X: x, Y: y, W: w, H: h, Mode: mode}
	return true
}

// Reset drops the current selection without notifying anyone
func (s *Selection) Reset() {
	s.rect = NoRect
}

// Rect returns the current rectangle
func (s *Selection) Rect() Rect {
	return s.rect
}

// Coord returns the grid coordinate of the current rectangle
func (s *Selection) Coord() Coord {
	return s.rect.Coord()
}

// Text reads the selected characters from a snapshot
func (s *Selection) Text(snap Snapshot) string {
	c := s.Coord()
	return snap.ReadSpan(c.Row, c.Col, c.Len)
}

// HasChanged compares the rectangle and its text against the previous call
// and remembers the current values.
func (s *Selection) HasChanged(snap Snapshot) bool {
	sig := s.rect.Signature()
	text := s.Text(snap)
	changed := sig != s.lastSig || text != s.lastText
	s.lastSig = sig
	s.lastText = text
	return changed
}
