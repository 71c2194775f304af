// Package label turns the highlighted field into a spoken phrase.
//
// Each page kind has an ordered table of rules. A rule matches on the grid
// coordinate of the selection and renders the phrase; the first match wins.
// Row and column offsets are fixed by the device screen layout.
package label

import (
	"fmt"
	"strings"

	"m8speak/page"
	"m8speak/screen"
)

// field is the selection being described
type field struct {
	snap screen.Snapshot
	at   screen.Coord
	val  string // text under the selection
}

func (f field) span(row, col, n int) string {
	return f.snap.ReadSpan(row, col, n)
}

// here reads n characters from col on the selected row
func (f field) here(col, n int) string {
	return f.span(f.at.Row, col, n)
}

// rowNumber is the row index printed in the first two columns
func (f field) rowNumber() string {
	return f.here(0, 2)
}

type rule struct {
	match func(c screen.Coord) bool
	say   func(f field) string
}

type labeler func(f field) string

var pages map[page.Kind]labeler

func init() {
	pages = map[page.Kind]labeler{
		page.Live:   songRow,
		page.Song:   songRow,
		page.Chain:  chainRow,
		page.Phrase: phraseRow,
		page.Table:  tableRow,
		page.Groove: grooveRow,
		page.Scale:  scale,

		page.Instrument: instrument,
		page.Envelope:   table(envelopeRules),

		page.Project:      table(projectRules),
		page.Mixer:        mixer,
		page.Effects:      table(effectsRules),
		page.MidiMapping:  midiMapping,
		page.MidiSettings: table(midiSettingsRules),
		page.RenderAudio:  table(renderRules),

		page.CommandSelector: commandSelector,
		page.Keyboard:        keyboard,
		page.CreateDirectory: table(createDirectoryRules),
	}
}

// Label describes the selection at coord on a page of the given kind.
// It returns "" when there is nothing to say.
func Label(kind page.Kind, snap screen.Snapshot, at screen.Coord) string {
	f := field{snap: snap, at: at, val: snap.ReadSpan(at.Row, at.Col, at.Len)}

	switch {
	case kind.Dialog():
		return placeholder(f.val)
	case kind.Browser():
		return browserEntry(f)
	}

	if l, ok := pages[kind]; ok {
		return l(f)
	}
	return ""
}

// table builds a labeler from ordered rules. Unmatched fields are read as
// their bare value.
func table(rules ...[]rule) labeler {
	return func(f field) string {
		return firstMatch(f, rules...)
	}
}

func firstMatch(f field, tables ...[]rule) string {
	for _, rules := range tables {
		for _, r := range rules {
			if r.match(f.at) {
				return r.say(f)
			}
		}
	}
	return compose(f.val, "")
}

// compose joins a value and the name of its field
func compose(val, name string) string {
	val = placeholder(val)
	if name == "" {
		return val
	}
	return val + " ... " + name
}

// Matchers

func at(row int) func(c screen.Coord) bool {
	return func(c screen.Coord) bool { return c.Row == row }
}

func atRows(rows ...int) func(c screen.Coord) bool {
	return func(c screen.Coord) bool {
		for _, r := range rows {
			if c.Row == r {
				return true
			}
		}
		return false
	}
}

func rowRange(lo, hi int) func(c screen.Coord) bool {
	return func(c screen.Coord) bool { return c.Row >= lo && c.Row <= hi }
}

func cell(row, col int) func(c screen.Coord) bool {
	return func(c screen.Coord) bool { return c.Row == row && c.Col == col }
}

// Renderers

// is names the field and speaks the selected text as is
func is(name string) func(f field) string {
	return func(f field) string { return compose(f.val, name) }
}

// reads names the field and speaks a wider span of the selected row
func reads(name string, col, n int) func(f field) string {
	return func(f field) string { return compose(f.here(col, n), name) }
}

// readsSplit is reads with sep inserted after the two character prefix
func readsSplit(name string, col, n int, sep string) func(f field) string {
	return func(f field) string { return compose(splitAt(f.here(col, n), 2, sep), name) }
}

// column builds a pair of rules for rows with a left column at cell 8 and
// a right column anywhere else
func column(row int, left, right string) []rule {
	return []rule{
		{cell(row, 8), is(left)},
		{at(row), is(right)},
	}
}

// nameEntry describes a name being typed one character at a time: the full
// name, the character under the cursor and its 1-based position.
func nameEntry(startCol, width int) func(f field) string {
	return func(f field) string {
		full := f.here(startCol, width)
		return fmt.Sprintf("name %s ... %s ... position %d", full, cursorLetter(f.val), f.at.Col-startCol+1)
	}
}

func cursorLetter(ch string) string {
	if ch == "-" {
		return "empty"
	}
	return "letter " + ExpandPunctuation(ch)
}

// Normalisation

// placeholder rewrites the unset marker
func placeholder(val string) string {
	if val == "--" {
		return "empty"
	}
	return val
}

// dashEmpty rewrites any value starting with the unset marker
func dashEmpty(val string) string {
	if strings.HasPrefix(val, "-") {
		return "empty"
	}
	return val
}

var punctuation = map[string]string{
	"/": "forward slash",
	".": "dot",
	" ": "space",
	"-": "minus sign",
	"_": "underscore",
	"+": "plus sign",
	"=": "equals sign",
	"!": "exclamation",
	"@": "at symbol",
	"#": "hash mark",
	"$": "dollar sign",
	"%": "percent",
	"^": "charet",
	"&": "ampersand",
	"(": "open parenthesis",
	")": "close parenthesis",
}

// ExpandPunctuation returns the spoken name of a punctuation character.
// Anything else is returned unchanged.
func ExpandPunctuation(ch string) string {
	if name, ok := punctuation[ch]; ok {
		return name
	}
	return ch
}

// spaced separates characters so codes are spelled out
func spaced(val string) string {
	return strings.Join(strings.Split(val, ""), " ")
}

func splitAt(val string, i int, sep string) string {
	if len(val) < i {
		return val + sep
	}
	return val[:i] + sep + val[i:]
}

// words joins non-empty parts with single spaces
func words(parts ...string) string {
	return strings.Join(strings.Fields(strings.Join(parts, " ")), " ")
}
