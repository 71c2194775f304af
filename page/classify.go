package page

import (
	"strings"

	"m8speak/screen"
)

// matcher tests a snapshot for a page
type matcher func(s screen.Snapshot) bool

type rule struct {
	match matcher
	kind  Kind
}

// anchor matches text at a fixed grid offset
func anchor(row, col int, text string) matcher {
	return func(s screen.Snapshot) bool {
		return s.ReadSpan(row, col, len(text)) == text
	}
}

func all(ms ...matcher) matcher {
	return func(s screen.Snapshot) bool {
		for _, m := range ms {
			if !m(s) {
				return false
			}
		}
		return true
	}
}

// header matches the four character page tag on row 2
func header(tag string) matcher {
	return anchor(2, 0, tag)
}

// rules are evaluated in order, first match wins. Offsets are fixed by the
// device screen layout.
var rules = []rule{
	{header("LIVE"), Live},
	{header("SONG"), Song},
	{header("CHOR"), Effects},
	{header("PROJ"), Project},
	{header("MIXE"), Mixer},

	{header("CHAI"), Chain},
	{header("PHRA"), Phrase},
	{header("TABL"), Table},
	{header("GROO"), Groove},
	{header("SCAL"), Scale},

	// Instrument pages share a header; the envelope view shows ENV1 on row 8
	{all(header("INST"), anchor(8, 0, "ENV1")), Envelope},
	{header("INST"), Instrument},

	{anchor(0, 0, "EFFE"), CommandSelector},
	{anchor(8, 8, "1 2 3 4 "), Keyboard},
	{anchor(2, 5, "SETT"), MidiSettings},
	{anchor(2, 5, "MAPP"), MidiMapping},
	{anchor(2, 0, "THEME"), ThemeSettings},
	{anchor(2, 0, "RENDER"), RenderAudio},

	{anchor(9, 2, "LOSE CHANGES TO INSTRUMENT"), LoseInstrumentChanges},
	{anchor(9, 2, "LOSE CHANGES TO CURRENT SONG"), LoseSongChanges},
	{anchor(9, 2, "OVERWRITE EXISTING SCALE?"), OverwriteScale},
	{anchor(9, 2, "OVERWRITE EXISTING SONG?"), OverwriteSong},
	{anchor(9, 2, "OVERWRITE EXISTING INSTRU"), OverwriteInstrument},
	{anchor(8, 2, "CLEAR UNUSED PHRA"), ClearPhrases},
	{anchor(8, 2, "CLEAR UNUSED INST"), ClearInstruments},
	{anchor(7, 2, "CREATE DIRECTORY"), CreateBundle},

	{anchor(2, 0, "LOAD INST"), LoadInstrument},
	{anchor(2, 0, "LOAD PROJ"), LoadProject},
	{anchor(2, 0, "LOAD SCAL"), LoadScale},
	{anchor(2, 0, "SELECT SA"), SelectSaveDirectory},
	{anchor(2, 0, "CREATE DI"), CreateDirectory},
}

// KindOf returns the page type shown in the snapshot
func KindOf(s screen.Snapshot) Kind {
	for _, r := range rules {
		if r.match(s) {
			return r.kind
		}
	}
	// Only after every pattern failed; a half drawn frame can be blank too
	if s.Blank() {
		return Home
	}
	return Unknown
}

// Classify returns the page type and its contextual suffix
func Classify(s screen.Snapshot) Page {
	kind := KindOf(s)
	return Page{Kind: kind, Suffix: Suffix(kind, s)}
}

// Suffix reads the page context: the chain, phrase, table or groove number,
// the instrument or scale number and name, or a directory path.
func Suffix(kind Kind, s screen.Snapshot) string {
	switch kind {
	case Chain, Table:
		return " " + s.ReadSpan(2, 6, 2)
	case Phrase, Groove:
		return " " + s.ReadSpan(2, 7, 2)
	case Instrument, Envelope:
		return " " + s.ReadSpan(2, 6, 2) + " ... " + s.ReadSpan(5, 8, 12)
	case Scale:
		return " " + s.ReadSpan(2, 6, 2) + " ... " + s.ReadSpan(20, 6, 16)
	case CreateDirectory:
		return " path " + SpeakPath(s.ReadSpan(4, 5, 25))
	}
	return ""
}

// SpeakPath spells out the separators of a file path
func SpeakPath(path string) string {
	return pathReplacer.Replace(path)
}

var pathReplacer = strings.NewReplacer(
	"/", " forward slash ",
	".", " dot ",
)
