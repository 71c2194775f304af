package label

import (
	"fmt"
	"regexp"
	"strings"

	"m8speak/screen"
)

var projectRules = []rule{
	{at(4), is("transpose")},
	{cell(5, 14), reads("tempo", 14, 6)},
	// Fractional tempo shows the same digits as the whole tempo; the trailing
	// space keeps it from being dropped as a repeat
	{at(5), func(f field) string { return compose(f.here(14, 6)+" ", "tempo fine tuning") }},
	{at(6), is("output volume")},
	{at(7), is("speaker volume")},
	{at(8), is("note preview")},
	{at(9), is("live quantize")},
	{atRows(11, 12), is("open")},
	{at(14), nameEntry(14, 12)},
	{at(15), is("file")},
	{at(16), is("export")},
	{atRows(18, 19), is("compact")},
}

// Mixer page. The input section is stereo when its right channel shows the
// unset marker, otherwise each input has a left and right level.
func mixer(f field) string {
	mono := "left"
	if f.span(17, 18, 2) == "--" {
		mono = ""
	}
	c := f.at
	name := ""
	switch c.Row {
	case 4:
		name = "limiter"
		if c.Col == 13 {
			name = "volume"
		}
	case 5:
		name = "peak"
		if c.Col == 13 {
			name = "D J filter"
		}
	case 11:
		name = fmt.Sprintf("track %d", screen.FloorDiv(c.Col, 3)+1)
	case 17:
		switch c.Col {
		case 0:
			name = "chorus level"
		case 4:
			name = "delay level"
		case 8:
			name = "reverb level"
		case 15:
			name = words("input", mono, "level")
		case 18:
			if f.val == "--" {
				return "stereo input mode"
			}
			name = "input right level"
		case 21:
			name = "usb level"
		}
	case 18, 19, 20:
		send := map[int]string{18: "chorus", 19: "delay", 20: "reverb"}[c.Row]
		switch c.Col {
		case 15:
			name = words("input", send, mono, "level")
		case 18:
			name = words("input", send, "right level")
		case 21:
			name = words("usb", send, "level")
		}
	}
	return compose(f.val, name)
}

var effectsRules = []rule{
	{at(3), is("chorus depth")},
	{at(4), is("chorus frequency")},
	{at(5), is("chorus width")},
	{at(6), is("chorus reverb send")},

	{cell(9, 14), is("delay hi-pass")},
	{at(9), is("delay lo-pass")},
	{cell(10, 14), is("delay time left")},
	{at(10), is("delay time right")},
	{at(11), is("delay feedback")},
	{at(12), is("delay width")},
	{at(13), is("delay reverb send")},

	{cell(16, 14), is("reverb hi-pass")},
	{at(16), is("reverb lo-pass")},
	{at(17), is("reverb size")},
	{at(18), is("reverb decay")},
	{at(19), is("reverb depth")},
	{at(20), is("reverb frequency")},
	{at(21), is("reverb width")},
}

// inputSlot numbers the per-channel columns of the MIDI input rows
func inputSlot(f field) int {
	return screen.FloorDiv(f.at.Col-6, 3) + 1
}

var midiSettingsRules = []rule{
	{at(4), is("receive sync")},
	{at(5), is("receive transport")},
	{at(6), is("send sync")},
	{at(7), is("send transport")},
	{at(8), is("record note channel")},
	{at(9), is("record velocity")},
	{at(10), is("record delay")},
	{at(11), is("control map channel")},
	{at(12), is("song row cue channel")},
	{at(16), func(f field) string { return compose(f.val, fmt.Sprintf("input channel %d", inputSlot(f))) }},
	{at(17), func(f field) string { return compose(f.val, fmt.Sprintf("input instrument %d", inputSlot(f))) }},
	{cell(18, 10), is("program change")},
	{at(18), is("note mode")},
}

var renderRules = []rule{
	{at(4), is("song row start")},
	{at(5), func(f field) string {
		if f.here(18, 4) == "AUTO" {
			return compose("AUTO", "song row last")
		}
		return compose(f.val, "song row last")
	}},
	{at(6), func(f field) string {
		if f.here(18, 3) == "OFF" {
			return compose("OFF", "song repeat")
		}
		return compose(f.val, "song repeat")
	}},
	{at(9), func(f field) string {
		val := f.val
		if val == "--" {
			val = "OFF"
		}
		return compose(val, fmt.Sprintf("track %d", screen.FloorDiv(f.at.Col-8, 3)+1))
	}},
	{at(10), is("chorus")},
	{at(11), is("delay")},
	{at(12), is("reverb")},
	{at(13), is("limiter")},
	{at(16), nameEntry(8, 12)},
	{at(17), is("render")},
}

var gaps = regexp.MustCompile(`\s{2,}`)

// commandSelector reads the help text at the top of the effect command list
// along with the selected command letters.
func commandSelector(f field) string {
	help := gaps.ReplaceAllString(f.span(2, 0, screen.Cols*4), " ... ")
	name, _, _ := strings.Cut(help, ":")

	group := ""
	switch r := f.at.Row; {
	case r >= 7 && r <= 9:
		group = "sequencer command"
	case r >= 12 && r <= 15:
		group = "mixer effects command"
	case r >= 18 && r <= 21:
		group = "current instrument"
	}
	return fmt.Sprintf("%s ... %s ... %s", spaced(f.val), words(name, group), help)
}

func keyboard(f field) string {
	return ExpandPunctuation(f.val)
}

// browserEntry reads a file browser line without its size column
func browserEntry(f field) string {
	val := f.val
	if len(val) > 5 {
		val = val[:len(val)-5]
	} else {
		val = ""
	}
	return strings.NewReplacer(".", " dot ", "/", " forward slash ").Replace(val)
}

var createDirectoryRules = []rule{
	{at(5), nameEntry(5, 25)},
}
