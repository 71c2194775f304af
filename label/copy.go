package label

import (
	"fmt"

	"m8speak/page"
	"m8speak/screen"
)

// Phrase block selections starting at the note column have uneven field
// widths, so their column count is looked up by pixel width.
const phraseBlockX = 22

var phraseBlockColumns = map[int]int{
	105: 4,
	121: 5,
	153: 6,
	169: 7,
	201: 8,
	217: 9,
}

// CopySelection describes a block selection by its size in fields.
// Fields on the sequencer pages are three cells wide.
func CopySelection(kind page.Kind, r screen.Rect) string {
	rows := screen.FloorDiv(r.H-1, screen.CellHeight)
	cols := screen.FloorDiv(r.W-1, screen.CellWidth)
	if cols > 3 {
		cols = (cols + 2) / 3
	} else {
		cols = 1
	}

	if kind == page.Phrase && r.X == phraseBlockX && cols >= 5 {
		if n, ok := phraseBlockColumns[r.W]; ok {
			cols = n
		}
	}

	return fmt.Sprintf("copy selection ... %d %s ... %d %s",
		rows, plural(rows, "row"), cols, plural(cols, "column"))
}

func plural(n int, word string) string {
	if n > 1 {
		return word + "s"
	}
	return word
}
