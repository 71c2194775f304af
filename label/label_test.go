package label

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"m8speak/page"
	"m8speak/screen"
)

// grid places text on a blank screen; keys are row numbers
func grid(lines map[int]string) screen.Snapshot {
	out := make([]string, screen.Rows)
	for r, l := range lines {
		out[r] = l
	}
	return screen.SnapshotFromRows(out...)
}

func sp(n int) string {
	return strings.Repeat(" ", n)
}

// put writes text at a column of a row, padding with spaces
func put(col int, text string) string {
	return strings.Repeat(" ", col) + text
}

func TestChainColumnSplit(t *testing.T) {
	snap := grid(map[int]string{1: "01 02"})

	// Rectangle (8, 20, 16, 10) in value mode
	c := screen.Rect{X: 8, Y: 20, W: 16, H: 10, Mode: screen.ModeValue}.Coord()
	assert.Equal(t, "1  ... row 01 phrase", Label(page.Chain, snap, c))

	snap = grid(map[int]string{1: "01 -- 00"})
	assert.Equal(t, "empty ... row 01 transpose", Label(page.Chain, snap, screen.Coord{Row: 1, Col: 3, Len: 2}))
	assert.Equal(t, "00 ... row 01 phrase", Label(page.Chain, snap, screen.Coord{Row: 1, Col: 6, Len: 2}))
}

func TestSongTracks(t *testing.T) {
	snap := grid(map[int]string{5: "03 00 -- 1A"})

	assert.Equal(t, "00 ... row 03 track 1", Label(page.Song, snap, screen.Coord{Row: 5, Col: 3, Len: 2}))
	assert.Equal(t, "empty ... row 03 track 2", Label(page.Song, snap, screen.Coord{Row: 5, Col: 6, Len: 2}))
	assert.Equal(t, "1A ... row 03 track 3", Label(page.Live, snap, screen.Coord{Row: 5, Col: 9, Len: 2}))
}

func TestPhraseColumns(t *testing.T) {
	//                    0123456789012345678901234
	snap := grid(map[int]string{6: "4 C-4 7F 00 VOL 40 --- 00"})

	tests := []struct {
		col, n int
		want   string
	}{
		{2, 3, "C-4 ... row 4  note"},
		{6, 2, "7F ... row 4  velocity"},
		{9, 2, "00 ... row 4  instrument"},
		{12, 3, "V O L ... row 4  effects 1 type"},
		{16, 2, "40 ... row 4  effects 1 value"},
		{19, 3, "empty ... row 4  effects 2 type"},
	}
	for _, tt := range tests {
		t.Run(tt.want, func(t *testing.T) {
			assert.Equal(t, tt.want, Label(page.Phrase, snap, screen.Coord{Row: 6, Col: tt.col, Len: tt.n}))
		})
	}
}

func TestTableColumns(t *testing.T) {
	snap := grid(map[int]string{4: "2 00 C0 ARP 12"})

	assert.Equal(t, "00 ... row 2  for transpose", Label(page.Table, snap, screen.Coord{Row: 4, Col: 2, Len: 2}))
	assert.Equal(t, "A R P ... row 2  for effects 1 type", Label(page.Table, snap, screen.Coord{Row: 4, Col: 8, Len: 3}))
}

func TestGroove(t *testing.T) {
	snap := grid(map[int]string{4: "00 06", 5: "01 --"})
	assert.Equal(t, "06 row 00 ticks", Label(page.Groove, snap, screen.Coord{Row: 4, Col: 3, Len: 2}))
	assert.Equal(t, "empty row 01 ticks", Label(page.Groove, snap, screen.Coord{Row: 5, Col: 3, Len: 2}))
}

func TestUnsetMarkerIsEmpty(t *testing.T) {
	snap := grid(map[int]string{
		4:  put(13, "--"),
		9:  put(14, "--"),
		17: put(18, "--"),
	})

	assert.Equal(t, "empty ... volume", Label(page.Mixer, snap, screen.Coord{Row: 4, Col: 13, Len: 2}))
	assert.Equal(t, "empty ... delay hi-pass", Label(page.Effects, snap, screen.Coord{Row: 9, Col: 14, Len: 2}))
	assert.Equal(t, "empty", Label(page.OverwriteSong, grid(map[int]string{12: "--"}), screen.Coord{Row: 12, Col: 0, Len: 2}))
}

func TestProject(t *testing.T) {
	snap := grid(map[int]string{
		5:  put(14, "120.00"),
		14: put(14, "MY-SONG"),
	})

	assert.Equal(t, "120.00 ... tempo", Label(page.Project, snap, screen.Coord{Row: 5, Col: 14, Len: 3}))
	assert.Equal(t, "120.00  ... tempo fine tuning", Label(page.Project, snap, screen.Coord{Row: 5, Col: 18, Len: 2}))

	got := Label(page.Project, snap, screen.Coord{Row: 14, Col: 15, Len: 1})
	assert.Equal(t, "name MY-SONG"+sp(5)+" ... letter Y ... position 2", got)

	// The unset marker under the cursor is an empty slot, not a minus sign
	got = Label(page.Project, snap, screen.Coord{Row: 14, Col: 16, Len: 1})
	assert.Equal(t, "name MY-SONG"+sp(5)+" ... empty ... position 3", got)

	got = Label(page.Project, grid(map[int]string{14: put(14, "-")}), screen.Coord{Row: 14, Col: 14, Len: 1})
	assert.True(t, strings.HasSuffix(got, "... empty ... position 1"), got)
}

func TestNameEntryReportsCursorCharacter(t *testing.T) {
	snap := grid(map[int]string{
		2: "INST. 01",
		4: put(8, "WAVSYNTH"),
		5: put(8, "PAD A"),
	})

	tests := []struct {
		col  int
		want string
	}{
		{8, "name PAD A" + sp(7) + " ... letter P ... position 1"},
		{11, "name PAD A" + sp(7) + " ... letter space ... position 4"},
		{12, "name PAD A" + sp(7) + " ... letter A ... position 5"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, Label(page.Instrument, snap, screen.Coord{Row: 5, Col: tt.col, Len: 1}))
	}
}

func TestWavsynth(t *testing.T) {
	snap := grid(map[int]string{
		4:  put(8, "WAVSYNTH"),
		8:  put(8, "00PULSE 12"),
		11: put(8, "01") + put(12, "CLIP 00"),
		14: put(8, "01 LOWPASS"),
	})

	assert.Equal(t, "WAVSYNTH ... type", Label(page.Instrument, snap, screen.Coord{Row: 4, Col: 8, Len: 8}))
	assert.Equal(t, "00 PULSE 12"+sp(10)+" ... shape", Label(page.Instrument, snap, screen.Coord{Row: 8, Col: 8, Len: 2}))
	assert.Equal(t, "01 ... multiplier", Label(page.Instrument, snap, screen.Coord{Row: 11, Col: 8, Len: 2}))
	assert.Equal(t, "CLIP 00"+sp(2)+" ... limiter", Label(page.Instrument, snap, screen.Coord{Row: 11, Col: 22, Len: 2}))
	assert.Equal(t, "01 LOWPAS ... filter", Label(page.Instrument, snap, screen.Coord{Row: 14, Col: 8, Len: 2}))
}

func TestSampler(t *testing.T) {
	snap := grid(map[int]string{
		4:  put(8, "SAMPLER "),
		10: put(8, "OFF"),
		17: put(8, "LOWPASS"),
	})

	assert.Equal(t, "OFF"+sp(6)+" ... slice", Label(page.Instrument, snap, screen.Coord{Row: 10, Col: 8, Len: 3}))
	assert.Equal(t, "LOWPASS"+sp(2)+" ... filter", Label(page.Instrument, snap, screen.Coord{Row: 17, Col: 8, Len: 2}))
	assert.Equal(t, sp(3)+" ... resonance", Label(page.Instrument, snap, screen.Coord{Row: 19, Col: 8, Len: 3}))
}

func TestFMSynth(t *testing.T) {
	snap := grid(map[int]string{
		4:  put(8, "FMSYNTH "),
		8:  put(8, "01 A>B+C"),
		10: put(8, "01.00") + " " + "02.50",
		12: put(8, "--") + put(4, "VOL"),
		13: put(8, "PIT"),
	})

	assert.Equal(t, "01 ...  to A to B plus C ... algo", Label(page.Instrument, snap, screen.Coord{Row: 8, Col: 8, Len: 2}))
	assert.Equal(t, "01.00 ... ratio oscillator a", Label(page.Instrument, snap, screen.Coord{Row: 10, Col: 8, Len: 2}))
	assert.Equal(t, "01.00 ... ratio  oscillator a ... fine tuning", Label(page.Instrument, snap, screen.Coord{Row: 10, Col: 11, Len: 2}))
	assert.Equal(t, "02.50 ... ratio oscillator b", Label(page.Instrument, snap, screen.Coord{Row: 10, Col: 14, Len: 2}))
	assert.Equal(t, "00 ... level oscillator C", Label(page.Instrument, grid(map[int]string{4: put(8, "FMSYNTH "), 11: put(20, "00")}), screen.Coord{Row: 11, Col: 20, Len: 2}))
	assert.Equal(t, "empty ... modulator a 1", Label(page.Instrument, snap, screen.Coord{Row: 12, Col: 8, Len: 2}))
	assert.Equal(t, "VOL"+sp(2)+" ... modulator b 1", Label(page.Instrument, snap, screen.Coord{Row: 12, Col: 14, Len: 3}))
	assert.Equal(t, "PIT"+sp(3)+" ... modulator a 2", Label(page.Instrument, snap, screen.Coord{Row: 13, Col: 8, Len: 3}))
}

func TestMidiOut(t *testing.T) {
	snap := grid(map[int]string{
		4:  put(8, "MIDI OUT"),
		8:  put(12, "01USB"),
		10: put(12, "--"),
		13: put(12, "07") + " 64",
	})

	assert.Equal(t, "01 ... USB"+sp(5)+" ... port", Label(page.Instrument, snap, screen.Coord{Row: 8, Col: 12, Len: 2}))
	assert.Equal(t, "empty ... bank", Label(page.Instrument, snap, screen.Coord{Row: 10, Col: 12, Len: 2}))
	assert.Equal(t, "07 ... number for cc .. C", Label(page.Instrument, snap, screen.Coord{Row: 13, Col: 12, Len: 2}))
	assert.Equal(t, "64 ... value for cc .. C", Label(page.Instrument, snap, screen.Coord{Row: 13, Col: 15, Len: 2}))
}

func TestEnvelope(t *testing.T) {
	snap := grid(map[int]string{
		8:  put(8, "ENV1 VOL") + put(6, "LFO PIT"),
		16: put(22, "TRIANGLE"),
	})

	assert.Equal(t, "EN V1 VOL"+sp(1)+" ... envelope 1", Label(page.Envelope, snap, screen.Coord{Row: 8, Col: 8, Len: 2}))
	assert.Equal(t, "LF O PIT"+sp(2)+" ... L F O", Label(page.Envelope, snap, screen.Coord{Row: 8, Col: 22, Len: 2}))
	assert.Equal(t, "TR IANGLE"+sp(1)+" ... oscillator", Label(page.Envelope, snap, screen.Coord{Row: 16, Col: 22, Len: 2}))
	assert.Equal(t, sp(3)+" ... decay", Label(page.Envelope, snap, screen.Coord{Row: 18, Col: 8, Len: 3}))
}

func TestMixerInputs(t *testing.T) {
	stereo := grid(map[int]string{17: put(15, "00 --")})
	assert.Equal(t, "00 ... input level", Label(page.Mixer, stereo, screen.Coord{Row: 17, Col: 15, Len: 2}))
	assert.Equal(t, "stereo input mode", Label(page.Mixer, stereo, screen.Coord{Row: 17, Col: 18, Len: 2}))

	split := grid(map[int]string{17: put(15, "00 E0"), 19: put(15, "10")})
	assert.Equal(t, "00 ... input left level", Label(page.Mixer, split, screen.Coord{Row: 17, Col: 15, Len: 2}))
	assert.Equal(t, "E0 ... input right level", Label(page.Mixer, split, screen.Coord{Row: 17, Col: 18, Len: 2}))
	assert.Equal(t, "10 ... input delay left level", Label(page.Mixer, split, screen.Coord{Row: 19, Col: 15, Len: 2}))

	tracks := grid(map[int]string{11: put(6, "C0")})
	assert.Equal(t, "C0 ... track 3", Label(page.Mixer, tracks, screen.Coord{Row: 11, Col: 6, Len: 2}))
}

func TestMidiMapping(t *testing.T) {
	row := "03" + put(1, "01") + put(1, "07") + put(2, "00") + put(1, "--") + put(1, "7F") + put(1, "MIXER VOLUME")
	snap := grid(map[int]string{6: row})

	assert.Equal(t, "01 ... row 03 ... channel", Label(page.MidiMapping, snap, screen.Coord{Row: 6, Col: 3, Len: 2}))
	assert.Equal(t, "empty ... row 03 ... range minimum", Label(page.MidiMapping, snap, screen.Coord{Row: 6, Col: 13, Len: 2}))
	assert.Equal(t, "MIXER VOLUME ... row 03 ... destination", Label(page.MidiMapping, snap, screen.Coord{Row: 6, Col: 19, Len: 2}))
}

func TestMidiSettings(t *testing.T) {
	snap := grid(map[int]string{16: put(9, "02")})
	assert.Equal(t, "02 ... input channel 2", Label(page.MidiSettings, snap, screen.Coord{Row: 16, Col: 9, Len: 2}))
	assert.Equal(t, sp(3)+" ... program change", Label(page.MidiSettings, snap, screen.Coord{Row: 18, Col: 10, Len: 3}))
}

func TestScale(t *testing.T) {
	snap := grid(map[int]string{
		4:  put(6, "C"),
		8:  "C# ON 00.00",
		20: put(6, "BLUES"),
	})

	assert.Equal(t, "C ... key", Label(page.Scale, snap, screen.Coord{Row: 4, Col: 6, Len: 1}))
	assert.Equal(t, "ON ... note C sharp ... enabled", Label(page.Scale, snap, screen.Coord{Row: 8, Col: 3, Len: 2}))
	assert.Equal(t, "00.00 ... note C sharp ... offset", Label(page.Scale, snap, screen.Coord{Row: 8, Col: 6, Len: 2}))
	assert.Equal(t, "00.00  ... note C sharp ... offset fine tuning", Label(page.Scale, snap, screen.Coord{Row: 8, Col: 9, Len: 2}))
	assert.True(t, strings.HasPrefix(Label(page.Scale, snap, screen.Coord{Row: 20, Col: 6, Len: 1}), "name BLUES"))
}

func TestRenderAudio(t *testing.T) {
	snap := grid(map[int]string{
		5: put(8, "00") + put(8, "AUTO"),
		9: put(8, "ON --"),
	})

	assert.Equal(t, "AUTO ... song row last", Label(page.RenderAudio, snap, screen.Coord{Row: 5, Col: 8, Len: 2}))
	assert.Equal(t, "ON ... track 1", Label(page.RenderAudio, snap, screen.Coord{Row: 9, Col: 8, Len: 2}))
	assert.Equal(t, "OFF ... track 2", Label(page.RenderAudio, snap, screen.Coord{Row: 9, Col: 11, Len: 2}))
}

func TestCommandSelector(t *testing.T) {
	snap := grid(map[int]string{
		2: "ARP: ARPEGGIATOR",
		8: put(2, "ARP"),
	})

	got := Label(page.CommandSelector, snap, screen.Coord{Row: 8, Col: 2, Len: 3})
	assert.True(t, strings.HasPrefix(got, "A R P ... ARP sequencer command ... ARP: ARPEGGIATOR"), got)
}

func TestBrowserAndDialogs(t *testing.T) {
	snap := grid(map[int]string{6: "/SONGS/DEMO.M8S  12K"})

	assert.Equal(t, " forward slash SONGS forward slash DEMO dot M8S",
		Label(page.LoadProject, snap, screen.Coord{Row: 6, Col: 0, Len: 20}))
	assert.Equal(t, "", Label(page.LoadProject, snap, screen.Coord{Row: 6, Col: 0, Len: 4}))

	dialog := grid(map[int]string{12: put(8, "YES")})
	assert.Equal(t, "YES", Label(page.OverwriteScale, dialog, screen.Coord{Row: 12, Col: 8, Len: 3}))
}

func TestKeyboardAndCreateDirectory(t *testing.T) {
	snap := grid(map[int]string{5: put(5, "NEW_DIR")})

	assert.Equal(t, "underscore", Label(page.Keyboard, snap, screen.Coord{Row: 5, Col: 8, Len: 1}))

	got := Label(page.CreateDirectory, snap, screen.Coord{Row: 5, Col: 8, Len: 1})
	assert.True(t, strings.HasPrefix(got, "name NEW_DIR"), got)
	assert.True(t, strings.HasSuffix(got, "... letter underscore ... position 4"), got)
}

func TestPagesWithoutLabels(t *testing.T) {
	snap := grid(map[int]string{3: "SOMETHING"})
	c := screen.Coord{Row: 3, Col: 0, Len: 4}

	assert.Equal(t, "", Label(page.ThemeSettings, snap, c))
	assert.Equal(t, "", Label(page.Unknown, snap, c))
	assert.Equal(t, "", Label(page.Home, snap, c))
}

func TestLabelIsIdempotent(t *testing.T) {
	snap := grid(map[int]string{2: "INST. 00", 4: put(8, "FMSYNTH "), 10: put(8, "01.00")})
	c := screen.Coord{Row: 10, Col: 11, Len: 2}
	assert.Equal(t, Label(page.Instrument, snap, c), Label(page.Instrument, snap, c))
}

func TestExpandPunctuation(t *testing.T) {
	assert.Equal(t, "forward slash", ExpandPunctuation("/"))
	assert.Equal(t, "charet", ExpandPunctuation("^"))
	assert.Equal(t, "close parenthesis", ExpandPunctuation(")"))
	assert.Equal(t, "Q", ExpandPunctuation("Q"))
	assert.Equal(t, "--", ExpandPunctuation("--"))
}
