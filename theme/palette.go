package theme

import (
	"bufio"
	"fmt"
	"io"
	"math"
	"os"
	"strconv"
	"strings"
)

type RGB [3]uint8

type Palette struct {
	Name   string
	Colors []RGB
}

// Default is the built-in palette, dark violet through to yellow, used when
// no .gpl file is configured
func Default() *Palette {
	return &Palette{
		Name: "m8speak",
		Colors: []RGB{
			{13, 8, 135},
			{65, 4, 157},
			{106, 0, 168},
			{143, 13, 164},
			{177, 42, 144},
			{204, 71, 120},
			{225, 100, 98},
			{242, 132, 75},
			{252, 166, 54},
			{252, 206, 37},
			{240, 249, 33},
		},
	}
}

// LoadGPL reads a GIMP palette file
func LoadGPL(path string) (*Palette, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open palette: %w", err)
	}
	defer f.Close()

	p, err := ParseGPL(f)
	if err != nil {
		return nil, fmt.Errorf("palette %s: %w", path, err)
	}
	return p, nil
}

// ParseGPL reads GIMP palette text. Colour lines are "R G B [name]" with
// components 0-255; the header, Name/Columns lines and comments are skipped.
func ParseGPL(r io.Reader) (*Palette, error) {
	p := &Palette{}
	scanner := bufio.NewScanner(r)

	for n := 1; scanner.Scan(); n++ {
		line := strings.TrimSpace(scanner.Text())

		switch {
		case line == "", line[0] == '#', line == "GIMP Palette", strings.HasPrefix(line, "Columns:"):
			continue
		case strings.HasPrefix(line, "Name:"):
			p.Name = strings.TrimSpace(line[len("Name:"):])
			continue
		}

		c, err := parseRGB(strings.Fields(line))
		if err != nil {
			return nil, fmt.Errorf("line %d: %w", n, err)
		}
		p.Colors = append(p.Colors, c)
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}

	if len(p.Colors) == 0 {
		return nil, fmt.Errorf("no colors found")
	}
	return p, nil
}

func parseRGB(fields []string) (RGB, error) {
	var c RGB
	if len(fields) < 3 {
		return c, fmt.Errorf("want R G B, got %q", strings.Join(fields, " "))
	}
	for i := range c {
		v, err := strconv.ParseUint(fields[i], 10, 8)
		if err != nil {
			return c, fmt.Errorf("component %q: not 0-255", fields[i])
		}
		c[i] = uint8(v)
	}
	return c, nil
}

// Lookup blends the two palette entries either side of norm, 0 being the
// first colour and 1 the last
func (p *Palette) Lookup(norm float64) RGB {
	last := len(p.Colors) - 1
	if last == 0 {
		return p.Colors[0]
	}
	pos := math.Max(0, math.Min(1, norm)) * float64(last)
	i := min(int(pos), last-1)

	t := pos - float64(i)
	var out RGB
	for ch := range out {
		a, b := float64(p.Colors[i][ch]), float64(p.Colors[i+1][ch])
		out[ch] = uint8(math.Round(a + (b-a)*t))
	}
	return out
}
