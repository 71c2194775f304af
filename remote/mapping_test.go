package remote

import (
	"testing"

	"github.com/stretchr/testify/assert"
	gomidi "gitlab.com/gomidi/midi/v2"

	"m8speak/config"
	"m8speak/narrate"
)

func TestDecode(t *testing.T) {
	cfg := config.DefaultConfig().Remote
	cfg.Silence = config.Button{Note: -1, CC: 64}
	m := NewMapping(cfg)

	tests := []struct {
		name string
		msg  gomidi.Message
		want narrate.Action
		ok   bool
	}{
		{"repeat page note", gomidi.NoteOn(0, 60, 100), narrate.RepeatPage, true},
		{"repeat value note", gomidi.NoteOn(9, 62, 1), narrate.RepeatValue, true},
		{"silence pedal", gomidi.ControlChange(0, 64, 127), narrate.Silence, true},
		{"pedal release", gomidi.ControlChange(0, 64, 0), 0, false},
		{"zero velocity note on", gomidi.NoteOn(0, 60, 0), 0, false},
		{"note off", gomidi.NoteOff(0, 60), 0, false},
		{"unmapped note", gomidi.NoteOn(0, 61, 100), 0, false},
		{"unassigned note is not note -1", gomidi.NoteOn(0, 64, 100), 0, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := m.Decode(tt.msg)
			assert.Equal(t, tt.ok, ok)
			if tt.ok {
				assert.Equal(t, tt.want, got)
			}
		})
	}
}

func TestDecodeChannelFilter(t *testing.T) {
	cfg := config.DefaultConfig().Remote
	cfg.Channel = 10
	m := NewMapping(cfg)

	_, ok := m.Decode(gomidi.NoteOn(0, 60, 100))
	assert.False(t, ok)

	a, ok := m.Decode(gomidi.NoteOn(9, 60, 100))
	assert.True(t, ok)
	assert.Equal(t, narrate.RepeatPage, a)
}

func TestMatches(t *testing.T) {
	assert.True(t, Matches("nanoKONTROL2 SLIDER/KNOB", "nanokontrol"))
	assert.False(t, Matches("Launchpad X LPX MIDI", "nanokontrol"))
	assert.False(t, Matches("anything", ""))
}
