package widgets

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"m8speak/screen"
	"m8speak/theme"
)

// Highlight is the region of the mirror drawn as selected
type Highlight struct {
	Row, Col   int
	Rows, Cols int
	Copy       bool
}

// HighlightOf maps a selection rectangle onto grid cells. Block selections
// cover several rows; a value selection is one row.
func HighlightOf(r screen.Rect) (Highlight, bool) {
	if r.Mode == screen.ModeNone {
		return Highlight{}, false
	}
	c := r.Coord()
	return Highlight{
		Row:  c.Row,
		Col:  c.Col,
		Rows: max(1, screen.FloorDiv(r.H-1, screen.CellHeight)),
		Cols: max(1, c.Len),
		Copy: r.Mode == screen.ModeCopy,
	}, true
}

func (h Highlight) contains(row, col int) bool {
	return row >= h.Row && row < h.Row+h.Rows && col >= h.Col && col < h.Col+h.Cols
}

// RenderScreen draws the mirrored character grid on the device background
// colour with the selection highlighted
func RenderScreen(snap screen.Snapshot, sel screen.Rect, bg theme.RGB, th *theme.Theme) string {
	base := lipgloss.NewStyle().Foreground(th.FG()).Background(theme.Hex(bg))
	selected := base.Foreground(th.BG()).Background(th.Cursor())
	h, ok := HighlightOf(sel)
	if ok && h.Copy {
		selected = selected.Background(th.Warning())
	}

	var lines []string
	for row := 0; row < screen.Rows; row++ {
		text := []rune(snap.Row(row))
		var line strings.Builder
		// Runs of cells with the same style are rendered together
		start := 0
		for col := 1; col <= len(text); col++ {
			if col < len(text) && (ok && h.contains(row, col)) == (ok && h.contains(row, start)) {
				continue
			}
			style := base
			if ok && h.contains(row, start) {
				style = selected
			}
			line.WriteString(style.Render(string(text[start:col])))
			start = col
		}
		lines = append(lines, line.String())
	}
	return strings.Join(lines, "\n")
}

// RenderSwatch renders a single colored block
func RenderSwatch(color theme.RGB) string {
	style := lipgloss.NewStyle().Foreground(lipgloss.Color(rgbToHex(color)))
	return style.Render("■")
}

// RenderKeyHelp formats key bindings in a friendly way
func RenderKeyHelp(sections []KeySection) string {
	var lines []string
	for _, sec := range sections {
		if sec.Title != "" {
			lines = append(lines, sec.Title)
		}
		for _, k := range sec.Keys {
			lines = append(lines, fmt.Sprintf("  %-12s %s", k.Key, k.Desc))
		}
	}
	return strings.Join(lines, "\n")
}

// KeySection groups related key bindings
type KeySection struct {
	Title string
	Keys  []KeyBinding
}

// KeyBinding is a single key and its description
type KeyBinding struct {
	Key  string
	Desc string
}

func rgbToHex(c theme.RGB) string {
	return fmt.Sprintf("#%02x%02x%02x", c[0], c[1], c[2])
}
