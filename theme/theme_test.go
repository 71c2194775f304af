package theme

import (
	"strings"
	"testing"

	"github.com/charmbracelet/lipgloss"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const gpl = `GIMP Palette
Name: mono
Columns: 2
# comment
  0   0   0	black
255 255 255	white
`

func TestParseGPL(t *testing.T) {
	p, err := ParseGPL(strings.NewReader(gpl))
	require.NoError(t, err)
	assert.Equal(t, "mono", p.Name)
	assert.Equal(t, []RGB{{0, 0, 0}, {255, 255, 255}}, p.Colors)

	_, err = ParseGPL(strings.NewReader("GIMP Palette\n"))
	assert.ErrorContains(t, err, "no colors")

	_, err = ParseGPL(strings.NewReader("GIMP Palette\n0 0 0\n300 0 0 red\n"))
	assert.ErrorContains(t, err, "line 3")

	_, err = ParseGPL(strings.NewReader("GIMP Palette\n0 0\n"))
	assert.ErrorContains(t, err, "want R G B")
}

func TestLookup(t *testing.T) {
	p, err := ParseGPL(strings.NewReader(gpl))
	require.NoError(t, err)

	assert.Equal(t, RGB{0, 0, 0}, p.Lookup(-1))
	assert.Equal(t, RGB{128, 128, 128}, p.Lookup(0.5))
	assert.Equal(t, RGB{255, 255, 255}, p.Lookup(2))
	assert.Equal(t, RGB{255, 255, 255}, p.Lookup(1))

	single := &Palette{Colors: []RGB{{1, 2, 3}}}
	assert.Equal(t, RGB{1, 2, 3}, single.Lookup(0.7))
}

func TestThemeDefaults(t *testing.T) {
	th := New(nil)
	assert.Equal(t, "m8speak", th.Palette.Name)
	assert.Equal(t, lipgloss.Color("#0d0887"), th.BG())
	assert.Equal(t, lipgloss.Color("#0a141e"), Hex(RGB{10, 20, 30}))
}
