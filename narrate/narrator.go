package narrate

import (
	"strings"
	"time"

	"m8speak/debug"
	"m8speak/label"
	"m8speak/page"
	"m8speak/screen"
)

// DefaultHintRow is the bottom line where the device prints help text
const DefaultHintRow = 22

// hintLen reads past the end of the hint row; the grid end truncates it
const hintLen = 38

// Options configures a Narrator
type Options struct {
	Grace        time.Duration
	HintRow      int
	OnBackground screen.BackgroundFunc
	Now          func() time.Time // defaults to time.Now
}

// Narrator owns the screen mirror and turns its changes into speech once
// per tick. Draw calls between ticks are coalesced.
type Narrator struct {
	grid *screen.Grid
	sel  *screen.Selection
	ctl  *Controller

	hintRow   int
	bg        [3]uint8
	onBG      screen.BackgroundFunc
	announced bool

	lastHash string
	lastPage string
	page     page.Page
}

// New creates a narrator speaking through sink
func New(sink Sink, opts Options) *Narrator {
	if opts.Now == nil {
		opts.Now = time.Now
	}
	if opts.HintRow == 0 {
		opts.HintRow = DefaultHintRow
	}

	n := &Narrator{
		grid:    screen.NewGrid(),
		ctl:     newController(sink, opts.Grace, opts.Now),
		hintRow: opts.HintRow,
		onBG:    opts.OnBackground,
	}
	n.sel = screen.NewSelection(n.background)
	n.page = page.Classify(n.grid.Snapshot())
	return n
}

func (n *Narrator) background(r, g, b uint8) {
	n.bg = [3]uint8{r, g, b}
	debug.Log("bg", "background %d,%d,%d", r, g, b)
	if n.onBG != nil {
		n.onBG(r, g, b)
	}
}

// GlyphDrawn mirrors a character drawn at a pixel position
func (n *Narrator) GlyphDrawn(charCode, x, y int, r, g, b uint8) {
	n.grid.SetGlyph(charCode, x, y)
}

// RectDrawn feeds a rectangle draw call to the selection tracker
func (n *Narrator) RectDrawn(x, y, w, h int, r, g, b uint8) {
	if n.sel.OnRect(x, y, w, h, r, g, b) {
		debug.LogEvery(30, "rect", "rect %d,%d %dx%d", x, y, w, h)
	}
}

// ScreenCleared blanks the mirror
func (n *Narrator) ScreenCleared() {
	n.grid.Clear()
}

// Tick evaluates the screen as of now and notifies the controller
func (n *Narrator) Tick() {
	snap := n.grid.Snapshot()

	hint := ""
	if h := snap.Hash(); h != n.lastHash {
		n.lastHash = h
		n.page = page.Classify(snap)
		if text := n.page.Text(); text != n.lastPage {
			n.lastPage = text
			debug.Log("page", "%s", text)
			n.ctl.Notify(text, Page)
		}
		if line := snap.ReadSpan(n.hintRow, 0, hintLen); strings.TrimSpace(line) != "" {
			hint = line
		}
	}

	if n.sel.HasChanged(snap) {
		r := n.sel.Rect()
		debug.Log("rect", "%s %q", r.Signature(), n.sel.Text(snap))
		n.ctl.Notify(n.describe(snap), Value)
	}

	// Say where we are once the mirror has had time to sync
	if !n.announced && n.ctl.Ready() {
		n.announced = true
		n.ctl.Notify(n.page.Text(), Page)
		n.ctl.Notify(n.describe(snap), Value)
	}

	if hint != "" {
		n.ctl.Notify("hint ... "+hint, Hint)
	}
}

// describe is the phrase for the current selection
func (n *Narrator) describe(snap screen.Snapshot) string {
	r := n.sel.Rect()
	switch r.Mode {
	case screen.ModeValue:
		return label.Label(n.page.Kind, snap, r.Coord())
	case screen.ModeCopy:
		return label.CopySelection(n.page.Kind, r)
	}
	return ""
}

// Repeat speaks the last page or value text again
func (n *Narrator) Repeat(cat Category) bool {
	return n.ctl.Repeat(cat)
}

// Silence stops speech
func (n *Narrator) Silence() {
	n.ctl.Silence()
}

// Pending reports whether the startup announcement is still due and how
// long until it can be made
func (n *Narrator) Pending() (bool, time.Duration) {
	return !n.announced, n.ctl.Remaining()
}

// Page is the page classified on the last tick
func (n *Narrator) Page() page.Page {
	return n.page
}

// Selection is the highlighted rectangle
func (n *Narrator) Selection() screen.Rect {
	return n.sel.Rect()
}

// Label is the phrase for the current selection, spoken or not
func (n *Narrator) Label() string {
	return n.describe(n.grid.Snapshot())
}

// Frame captures the narrator state for display
func (n *Narrator) Frame() Frame {
	snap := n.grid.Snapshot()
	return Frame{
		Screen:     snap,
		Selection:  n.sel.Rect(),
		Page:       n.page,
		Label:      n.describe(snap),
		Background: n.bg,
		Spoken:     n.ctl.Drain(),
	}
}

// Frame is a snapshot of what the narrator sees and has said
type Frame struct {
	Screen     screen.Snapshot
	Selection  screen.Rect
	Page       page.Page
	Label      string
	Background [3]uint8
	Spoken     []Utterance
}
