// Package trace reads recorded draw calls so a session can be replayed
// without a device attached.
//
// A trace is YAML:
//
//	name: chain edit
//	steps:
//	  - text: {row: 2, col: 0, s: "CHAIN 00"}
//	  - rect: {x: 48, y: 50, w: 16, h: 10, rgb: [0, 255, 0]}
//	  - tick: true
//	  - wait: 800ms
//
// Text steps are expanded into one glyph per character at the pixel
// position the device would use.
package trace

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"time"

	"gopkg.in/yaml.v3"

	"m8speak/screen"
)

// Trace is a named sequence of draw calls
type Trace struct {
	Name  string `yaml:"name"`
	Steps []Step `yaml:"steps"`
}

// Step is one entry of a trace; exactly one field is set
type Step struct {
	Text  *Text         `yaml:"text,omitempty"`
	Glyph *Glyph        `yaml:"glyph,omitempty"`
	Rect  *Rect         `yaml:"rect,omitempty"`
	Clear bool          `yaml:"clear,omitempty"`
	Tick  bool          `yaml:"tick,omitempty"`
	Wait  time.Duration `yaml:"wait,omitempty"`
}

// Text is a string drawn from a grid cell
type Text struct {
	Row int      `yaml:"row"`
	Col int      `yaml:"col"`
	S   string   `yaml:"s"`
	RGB [3]uint8 `yaml:"rgb,omitempty"`
}

// Glyph is a single character at a pixel position
type Glyph struct {
	Char string   `yaml:"char"`
	X    int      `yaml:"x"`
	Y    int      `yaml:"y"`
	RGB  [3]uint8 `yaml:"rgb,omitempty"`
}

// Rect is a filled rectangle in pixels
type Rect struct {
	X   int      `yaml:"x"`
	Y   int      `yaml:"y"`
	W   int      `yaml:"w"`
	H   int      `yaml:"h"`
	RGB [3]uint8 `yaml:"rgb"`
}

// Target receives draw calls
type Target interface {
	GlyphDrawn(ch, x, y int, r, g, b uint8)
	RectDrawn(x, y, w, h int, r, g, b uint8)
	ScreenCleared()
}

// Ticker is implemented by targets that evaluate on demand
type Ticker interface {
	Tick()
}

var white = [3]uint8{255, 255, 255}

// Load reads a trace file
func Load(path string) (*Trace, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open trace: %w", err)
	}
	defer f.Close()

	t, err := Parse(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return t, nil
}

// Parse decodes and validates a trace
func Parse(r io.Reader) (*Trace, error) {
	var t Trace
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(&t); err != nil {
		if errors.Is(err, io.EOF) {
			return nil, fmt.Errorf("empty trace")
		}
		return nil, fmt.Errorf("parse trace: %w", err)
	}
	for i, s := range t.Steps {
		if err := s.validate(); err != nil {
			return nil, fmt.Errorf("step %d: %w", i+1, err)
		}
	}
	return &t, nil
}

func (s Step) validate() error {
	n := 0
	for _, set := range []bool{s.Text != nil, s.Glyph != nil, s.Rect != nil, s.Clear, s.Tick, s.Wait != 0} {
		if set {
			n++
		}
	}
	switch {
	case n == 0:
		return fmt.Errorf("empty step")
	case n > 1:
		return fmt.Errorf("step has more than one action")
	case s.Glyph != nil && len([]rune(s.Glyph.Char)) != 1:
		return fmt.Errorf("glyph char must be one character, got %q", s.Glyph.Char)
	case s.Wait < 0:
		return fmt.Errorf("negative wait %s", s.Wait)
	}
	return nil
}

// Apply sends one step to the target. Wait steps sleep until the duration
// passes or ctx is done.
func (s Step) Apply(ctx context.Context, t Target) error {
	switch {
	case s.Text != nil:
		rgb := s.Text.RGB
		if rgb == [3]uint8{} {
			rgb = white
		}
		for i, ch := range []rune(s.Text.S) {
			x := (s.Text.Col + i + 1) * screen.CellWidth
			y := (s.Text.Row + 1) * screen.CellHeight
			t.GlyphDrawn(int(ch), x, y, rgb[0], rgb[1], rgb[2])
		}

	case s.Glyph != nil:
		rgb := s.Glyph.RGB
		if rgb == [3]uint8{} {
			rgb = white
		}
		t.GlyphDrawn(int([]rune(s.Glyph.Char)[0]), s.Glyph.X, s.Glyph.Y, rgb[0], rgb[1], rgb[2])

	case s.Rect != nil:
		r := s.Rect
		t.RectDrawn(r.X, r.Y, r.W, r.H, r.RGB[0], r.RGB[1], r.RGB[2])

	case s.Clear:
		t.ScreenCleared()

	case s.Tick:
		if tk, ok := t.(Ticker); ok {
			tk.Tick()
		}

	case s.Wait > 0:
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-time.After(s.Wait):
		}
	}
	return nil
}

// Player replays a trace into a target
type Player struct {
	Trace *Trace
	// AfterStep is called after each step, if set
	AfterStep func(i int, s Step)
}

// Play runs every step in order. It stops early if ctx is cancelled.
func (p *Player) Play(ctx context.Context, t Target) error {
	for i, s := range p.Trace.Steps {
		if err := ctx.Err(); err != nil {
			return err
		}
		if err := s.Apply(ctx, t); err != nil {
			return err
		}
		if p.AfterStep != nil {
			p.AfterStep(i, s)
		}
	}
	return nil
}
