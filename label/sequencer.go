package label

import (
	"fmt"
	"strings"

	"m8speak/screen"
)

// Song and live pages: eight track columns, three cells wide, from column 3
func songRow(f field) string {
	track := screen.FloorDiv(f.at.Col-3, 3) + 1
	return fmt.Sprintf("%s ... row %s track %d", placeholder(f.val), f.rowNumber(), track)
}

func chainRow(f field) string {
	role := "transpose"
	if screen.FloorDiv(f.at.Col-3, 3) != 0 {
		role = "phrase"
	}
	return fmt.Sprintf("%s ... row %s %s", placeholder(f.val), f.rowNumber(), role)
}

var phraseColumns = []string{
	"note",
	"velocity",
	"instrument",
	"effects 1 type",
	"effects 1 value",
	"effects 2 type",
	"effects 2 value",
	"effects 3 type",
	"effects 3 value",
}

var tableColumns = []string{
	"transpose",
	"volume",
	"effects 1 type",
	"effects 1 value",
	"effects 2 type",
	"effects 2 value",
	"effects 3 type",
	"effects 3 value",
}

func columnName(names []string, i int) string {
	if i < 0 || i >= len(names) {
		return ""
	}
	return names[i]
}

// effect type columns hold command letters rather than numbers
func isEffectType(name string) bool {
	return strings.HasSuffix(name, " type")
}

func phraseRow(f field) string {
	name := columnName(phraseColumns, screen.FloorDiv(f.at.Col-2, 3))
	val := f.val
	if strings.HasPrefix(val, "-") {
		val = "empty"
	} else if isEffectType(name) {
		val = spaced(val)
	}
	return strings.TrimRight(fmt.Sprintf("%s ... row %s %s", val, f.rowNumber(), name), " ")
}

func tableRow(f field) string {
	name := columnName(tableColumns, screen.FloorDiv(f.at.Col-2, 3))
	val := f.val
	if strings.HasPrefix(val, "-") {
		val = "empty"
	} else if isEffectType(name) {
		val = spaced(val)
	}
	if name == "" {
		return fmt.Sprintf("%s ... row %s", val, f.rowNumber())
	}
	return fmt.Sprintf("%s ... row %s for %s", val, f.rowNumber(), name)
}

func grooveRow(f field) string {
	return fmt.Sprintf("%s row %s ticks", dashEmpty(f.val), f.rowNumber())
}

var midiMappingColumns = map[int]string{
	3:  "channel",
	6:  "control",
	10: "last value",
	13: "range minimum",
	16: "range maximum",
	19: "destination",
}

func midiMapping(f field) string {
	name := midiMappingColumns[f.at.Col]
	val := f.val
	if f.at.Col == 19 {
		val = f.here(19, 12)
	}
	return fmt.Sprintf("%s ... row %s ... %s", dashEmpty(val), f.rowNumber(), name)
}

// Scale page: key on row 4, one row per note on rows 7 to 18, name on 20
func scale(f field) string {
	c := f.at
	switch {
	case c.Row == 4:
		return compose(f.val, "key")

	case c.Row >= 7 && c.Row <= 18:
		note := strings.Replace(f.rowNumber(), "#", " sharp", 1)
		name := ""
		val := f.val
		switch c.Col {
		case 3:
			name = "enabled"
		case 6:
			name = "offset"
			val = f.here(6, 5)
		case 9:
			// Same value as the coarse offset; the trailing space keeps it
			// from being dropped as a repeat
			name = "offset fine tuning"
			val = f.here(6, 5) + " "
		}
		return fmt.Sprintf("%s ... note %s ... %s", placeholder(val), note, name)

	case c.Row == 20:
		return nameEntry(6, 16)(f)

	case c.Row == 21:
		return f.val
	}
	return compose(f.val, "")
}
