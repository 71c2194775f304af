package theme

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"
)

type Theme struct {
	Palette *Palette
	Symbols Symbols
}

type Symbols struct {
	// Narration log
	Page      rune // ■ page announcement
	Value     rune // ● field value
	Hint      rune // ? hint line
	Cancelled rune // × cut off earlier speech

	// Status line
	Connected    rune // ◉ remote plugged in
	Disconnected rune // ○ no remote
}

func New(palette *Palette) *Theme {
	if palette == nil {
		palette = Default()
	}
	return &Theme{
		Palette: palette,
		Symbols: Symbols{
			Page:      '■',
			Value:     '●',
			Hint:      '?',
			Cancelled: '×',

			Connected:    '◉',
			Disconnected: '○',
		},
	}
}

// Color roles mapped to palette positions (0-1)
const (
	RoleBG      = 0.0 // deep violet
	RoleMuted   = 0.2 // purple
	RoleFG      = 0.4 // magenta (readable)
	RoleAccent  = 0.5 // pink
	RoleCursor  = 0.6 // rose, value selection
	RoleWarning = 0.8 // orange, copy selection
	RoleSuccess = 1.0 // bright yellow
)

// Style helpers

func (t *Theme) BG() lipgloss.Color {
	return Hex(t.Palette.Lookup(RoleBG))
}

func (t *Theme) FG() lipgloss.Color {
	return Hex(t.Palette.Lookup(RoleFG))
}

func (t *Theme) Accent() lipgloss.Color {
	return Hex(t.Palette.Lookup(RoleAccent))
}

func (t *Theme) Muted() lipgloss.Color {
	return Hex(t.Palette.Lookup(RoleMuted))
}

func (t *Theme) Cursor() lipgloss.Color {
	return Hex(t.Palette.Lookup(RoleCursor))
}

func (t *Theme) Warning() lipgloss.Color {
	return Hex(t.Palette.Lookup(RoleWarning))
}

func (t *Theme) Success() lipgloss.Color {
	return Hex(t.Palette.Lookup(RoleSuccess))
}

// Color returns lipgloss color for any normalized value 0-1
func (t *Theme) Color(norm float64) lipgloss.Color {
	return Hex(t.Palette.Lookup(norm))
}

// Hex converts raw RGB, such as the device background, to a lipgloss color
func Hex(c RGB) lipgloss.Color {
	return lipgloss.Color(fmt.Sprintf("#%02x%02x%02x", c[0], c[1], c[2]))
}
