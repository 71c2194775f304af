package label

import (
	"fmt"
	"strings"

	"m8speak/screen"
)

// Instrument type names as printed on row 4 of the instrument page
const (
	typeWavsynth = "WAVSYNTH"
	typeMacrosyn = "MACROSYN"
	typeSampler  = "SAMPLER "
	typeFMSynth  = "FMSYNTH "
	typeMidiOut  = "MIDI OUT"
)

// InstrumentType reads the instrument type header
func InstrumentType(snap screen.Snapshot) string {
	return snap.ReadSpan(4, 8, 8)
}

// Rows shared by every instrument type and the envelope view
var instrumentHeaderRules = concat(
	column(4, "type", "instrument"),
	[]rule{{at(5), nameEntry(8, 12)}},
	column(6, "transpose", "table tick"),
)

// Mixer section shared by the synth engines, right hand column
func synthShape(row int) []rule {
	return []rule{{at(row), func(f field) string {
		return compose(splitAt(f.span(row, 8, 20), 2, " "), "shape")
	}}}
}

var wavsynthRules = concat(
	synthShape(8),
	column(10, "size", "amp"),
	[]rule{
		{cell(11, 8), is("multiplier")},
		{at(11), reads("limiter", 22, 9)},
	},
	column(12, "warp", "panning"),
	column(13, "mirror", "dry"),
	[]rule{
		{cell(14, 8), reads("filter", 8, 9)},
		{at(14), is("chorus")},
	},
	column(15, "cutoff", "delay"),
	column(16, "resonance", "reverb"),
)

var macrosynRules = concat(
	synthShape(8),
	column(10, "timbre", "amp"),
	[]rule{
		{cell(11, 8), is("color")},
		{at(11), reads("limiter", 22, 9)},
	},
	column(12, "degrade", "panning"),
	column(13, "redux", "dry"),
	[]rule{
		{cell(14, 8), reads("filter", 8, 9)},
		{at(14), is("chorus")},
	},
	column(15, "cutoff", "delay"),
	column(16, "resonance", "reverb"),
)

var samplerRules = concat(
	[]rule{
		{at(8), is("sample")},
		{cell(10, 8), reads("slice", 8, 9)},
		{at(10), is("amp")},
		{cell(11, 8), reads("play", 8, 9)},
		{at(11), reads("limiter", 22, 9)},
	},
	column(12, "start", "panning"),
	column(13, "loop start", "dry"),
	column(14, "length", "chorus"),
	column(15, "detune", "delay"),
	column(16, "degrade", "reverb"),
	[]rule{{at(17), reads("filter", 8, 9)}},
	column(18, "cutoff", "delay"),
	column(19, "resonance", "reverb"),
)

// FM operators A to D start every six columns from column 8
var operatorColumns = map[int]string{8: "a", 14: "b", 20: "c", 26: "d"}

// operator returns the operator letter and first column for a selection in
// an operator block, coarse or fine half
func operator(col int) (string, int, bool) {
	for start, letter := range operatorColumns {
		if col == start || col == start+3 {
			return letter, start, true
		}
	}
	return "", 0, false
}

func fmAlgorithm(f field) string {
	val := strings.TrimRight(f.span(8, 8, 24), " \t")
	val = strings.ReplaceAll(val, " ", " to ")
	val = strings.ReplaceAll(val, "+", " plus ")
	return compose(splitAt(val, 2, " ... "), "algo")
}

func fmRatio(f field) string {
	letter, start, ok := operator(f.at.Col)
	if !ok {
		return compose(f.val, "ratio oscillator")
	}
	name := "ratio oscillator " + letter
	if f.at.Col%2 == 1 {
		// Coarse and fine share a value; the extra space keeps the fine
		// field from being dropped as a repeat
		name = "ratio  oscillator " + letter + " ... fine tuning"
	}
	return compose(f.here(start, 5), name)
}

func fmLevel(f field) string {
	letter, start, ok := operator(f.at.Col)
	if !ok {
		return compose(f.val, "")
	}
	name := "level oscillator "
	if f.at.Col != start {
		name = "feedback oscillator "
	}
	return compose(f.val, name+strings.ToUpper(letter))
}

func fmModulator(f field) string {
	val := f.val
	name := "modulator "
	if letter, start, ok := operator(f.at.Col); ok && f.at.Col == start {
		val = f.here(start, 5)
		name += letter
	}
	val = dashEmpty(val)
	if f.at.Row == 13 {
		return compose(val+" ", name+" 2")
	}
	return compose(val, name+" 1")
}

var fmsynthRules = concat(
	[]rule{
		{at(8), fmAlgorithm},
		{cell(9, 10), is("oscillator type A")},
		{cell(9, 16), is("oscillator type B")},
		{cell(9, 22), is("oscillator type C")},
		{cell(9, 28), is("oscillator type D")},
		{at(10), fmRatio},
		{at(11), fmLevel},
		{atRows(12, 13), fmModulator},
	},
	column(14, "modulator 1", "amp"),
	[]rule{
		{cell(15, 8), is("modulator 2")},
		{at(15), reads("limiter", 22, 9)},
	},
	column(16, "modulator 3", "panning"),
	column(17, "modulator 4", "dry"),
	[]rule{
		{cell(18, 8), reads("filter", 8, 9)},
		{at(18), is("chorus")},
	},
	column(19, "cutoff", "delay"),
	column(20, "resonance", "reverb"),
)

// ccSlot is the letter of a MIDI out CC row, A on row 11
func ccSlot(row int) string {
	return string(rune('A' + row - 11))
}

var midiOutRules = []rule{
	{at(8), func(f field) string {
		return compose(splitAt(f.here(12, 10), 2, " ... "), "port")
	}},
	{at(9), is("midi channel")},
	{cell(10, 12), is("bank")},
	{at(10), is("program change")},
	{rowRange(11, 20), func(f field) string {
		name := "value"
		if f.at.Col == 12 {
			name = "number"
		}
		return compose(f.val, fmt.Sprintf("%s for cc .. %s", name, ccSlot(f.at.Row)))
	}},
}

var synthRules = map[string][]rule{
	typeWavsynth: wavsynthRules,
	typeMacrosyn: macrosynRules,
	typeSampler:  samplerRules,
	typeFMSynth:  fmsynthRules,
	typeMidiOut:  midiOutRules,
}

func instrument(f field) string {
	typ := InstrumentType(f.snap)
	if typ == typeMidiOut && f.at.Row != 5 {
		f.val = dashEmpty(f.val)
	}
	return firstMatch(f, instrumentHeaderRules, synthRules[typ])
}

// Envelope view: two envelope blocks (rows 8-12 and 14-18) on the left with
// their LFOs on the right
func envelopeBlock(top int, env string) []rule {
	return []rule{
		{cell(top, 8), func(f field) string { return compose(splitAt(f.span(top, 8, 9), 2, " "), env) }},
		{at(top), func(f field) string { return compose(splitAt(f.span(top, 22, 9), 2, " "), "L F O") }},
		{cell(top+1, 8), is("amount")},
		{at(top + 1), is("L F O amount")},
		{cell(top+2, 8), is("attack")},
		{at(top + 2), readsSplit("oscillator", 22, 9, " ")},
		{cell(top+3, 8), is("hold")},
		{at(top + 3), readsSplit("trigger", 22, 9, " ")},
		{cell(top+4, 8), is("decay")},
		{at(top + 4), is("frequency")},
	}
}

var envelopeRules = concat(
	instrumentHeaderRules,
	envelopeBlock(8, "envelope 1"),
	envelopeBlock(14, "envelope 2"),
)

func concat(tables ...[]rule) []rule {
	var out []rule
	for _, t := range tables {
		out = append(out, t...)
	}
	return out
}
