// Package remote lets a MIDI controller trigger narration actions, so a
// footswitch or spare pad can repeat or silence speech without leaving the
// device.
package remote

import (
	gomidi "gitlab.com/gomidi/midi/v2"

	"m8speak/config"
	"m8speak/narrate"
)

// binding ties a note or CC to an action
type binding struct {
	button config.Button
	action narrate.Action
}

// Mapping decodes MIDI messages into actions
type Mapping struct {
	channel  int // 1-16, 0 for any
	bindings []binding
}

// NewMapping builds a mapping from the remote config section
func NewMapping(cfg config.RemoteConfig) Mapping {
	return Mapping{
		channel: cfg.Channel,
		bindings: []binding{
			{cfg.RepeatPage, narrate.RepeatPage},
			{cfg.RepeatValue, narrate.RepeatValue},
			{cfg.Silence, narrate.Silence},
		},
	}
}

// Decode returns the action for a message. Only presses count: note on with
// a velocity, or a CC with a non-zero value.
func (m Mapping) Decode(msg gomidi.Message) (narrate.Action, bool) {
	var channel, key, value uint8

	switch {
	case msg.GetNoteOn(&channel, &key, &value) && value > 0:
		if !m.onChannel(channel) {
			return 0, false
		}
		for _, b := range m.bindings {
			if b.button.Note == int(key) {
				return b.action, true
			}
		}

	case msg.GetControlChange(&channel, &key, &value) && value > 0:
		if !m.onChannel(channel) {
			return 0, false
		}
		for _, b := range m.bindings {
			if b.button.CC == int(key) {
				return b.action, true
			}
		}
	}
	return 0, false
}

func (m Mapping) onChannel(ch uint8) bool {
	return m.channel == 0 || int(ch)+1 == m.channel
}
