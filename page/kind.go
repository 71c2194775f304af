// Package page classifies the device screen from its text content.
package page

// Kind is a recognised screen type
type Kind int

const (
	Unknown Kind = iota
	Home

	Live
	Song
	Chain
	Phrase
	Table
	Groove
	Scale
	Instrument
	Envelope
	Project
	Mixer
	Effects

	CommandSelector
	Keyboard
	MidiSettings
	MidiMapping
	ThemeSettings
	RenderAudio

	LoseInstrumentChanges
	LoseSongChanges
	OverwriteScale
	OverwriteSong
	OverwriteInstrument
	ClearPhrases
	ClearInstruments
	CreateBundle

	LoadInstrument
	LoadProject
	LoadScale
	SelectSaveDirectory
	CreateDirectory
)

// UnknownTitle is spoken for nothing; the narrator drops it
const UnknownTitle = "UNKNOWN PAGE"

var titles = map[Kind]string{
	Unknown: UnknownTitle,
	Home:    "M8 WEB FLOW ... APPLICATION HOME SCREEN ... PLEASE CONNECT A DIRTY WAVE M8 DEVICE TO CONTINUE",

	Live:       "LIVE",
	Song:       "SONG",
	Chain:      "CHAIN",
	Phrase:     "PHRASE",
	Table:      "TABLE",
	Groove:     "GROOVE",
	Scale:      "SCALE",
	Instrument: "INSTRUMENT",
	Envelope:   "ENVELOPE",
	Project:    "PROJECT",
	Mixer:      "MIXER",
	Effects:    "EFFECTS",

	CommandSelector: "COMMAND SELECTOR",
	Keyboard:        "KEYBOARD",
	MidiSettings:    "MIDI SETTINGS",
	MidiMapping:     "MIDI MAPPING",
	ThemeSettings:   "THEME SETTINGS ... WARNING CHANGING THE FONT ... CURSOR COLOR ... OR SELECTION COLOR MAY BREAK TEXT TO SPEECH FUNCTIONALITY ... TEXT TO SPEECH IS DISABLED FOR THIS PAGE",
	RenderAudio:     "RENDER AUDIO",

	LoseInstrumentChanges: "LOSE CHANGES TO INSTRUMENT?",
	LoseSongChanges:       "LOSE CHANGES TO CURRENT SONG?",
	OverwriteScale:        "OVERWRITE EXISTING SCALE?",
	OverwriteSong:         "OVERWRITE EXISTING SONG?",
	OverwriteInstrument:   "OVERWRITE EXISTING INSTRUMENT?",
	ClearPhrases:          "CLEAR UNUSED PHRASES AND CHAINS AND REMOVE DUPLICATES?",
	ClearInstruments:      "CLEAR UNUSED INSTRUMENTS AND TABLES AND REMOVE DUPLICATES?",
	CreateBundle:          "CREATE DIRECTORY OF SONG AND SAMPLES? A PRE-EXISTING BUNDLE WILL BE OVERWRITTEN",

	LoadInstrument:      "LOAD INSTRUMENT",
	LoadProject:         "LOAD PROJECT",
	LoadScale:           "LOAD SCALE",
	SelectSaveDirectory: "SELECT SAVE DIRECTORY",
	CreateDirectory:     "CREATE DIRECTORY",
}

// Title is the spoken name of the page
func (k Kind) Title() string {
	if t, ok := titles[k]; ok {
		return t
	}
	return UnknownTitle
}

func (k Kind) String() string {
	return k.Title()
}

// Dialog reports whether the page is a yes/no confirmation
func (k Kind) Dialog() bool {
	return k >= LoseInstrumentChanges && k <= CreateBundle
}

// Browser reports whether the page is a file browser
func (k Kind) Browser() bool {
	switch k {
	case LoadInstrument, LoadProject, LoadScale, SelectSaveDirectory:
		return true
	}
	return false
}

// Page is a classified screen
type Page struct {
	Kind   Kind
	Suffix string // contextual detail such as the chain number
}

// Text is what gets spoken when the page changes
func (p Page) Text() string {
	return p.Kind.Title() + p.Suffix
}
