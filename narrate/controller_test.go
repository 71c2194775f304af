package narrate

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

// fakeSink records calls in order; speaking is set by the test
type fakeSink struct {
	calls    []string
	said     []string
	speaking bool
}

func (s *fakeSink) Speak(text string) {
	s.calls = append(s.calls, "speak:"+text)
	s.said = append(s.said, text)
}

func (s *fakeSink) Cancel() {
	s.calls = append(s.calls, "cancel")
}

func (s *fakeSink) Speaking() bool { return s.speaking }

// clock is a settable time source
type clock struct{ t time.Time }

func (c *clock) now() time.Time { return c.t }
func (c *clock) advance(d time.Duration) { c.t = c.t.Add(d) }

func newClock() *clock {
	return &clock{t: time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)}
}

func readyController(sink Sink) *Controller {
	return newController(sink, 0, newClock().now)
}

func TestIdenticalNotifySpeaksOnce(t *testing.T) {
	sink := &fakeSink{}
	c := readyController(sink)

	assert.True(t, c.Notify("01 ... row 00 phrase", Value))
	assert.False(t, c.Notify("01 ... row 00 phrase", Value))
	assert.Equal(t, []string{"01 ... row 00 phrase"}, sink.said)
}

func TestRepeatIgnoresCase(t *testing.T) {
	sink := &fakeSink{}
	c := readyController(sink)

	c.Notify("CHAIN 00", Page)
	c.Notify("chain 00", Page)
	assert.Equal(t, []string{"chain 00"}, sink.said)
}

func TestNotifySkips(t *testing.T) {
	sink := &fakeSink{}
	c := readyController(sink)

	assert.False(t, c.Notify("", Value))
	assert.False(t, c.Notify("UNKNOWN PAGE", Page))
	assert.Empty(t, sink.calls)
}

func TestCategoriesAreTrackedSeparately(t *testing.T) {
	sink := &fakeSink{}
	c := readyController(sink)

	c.Notify("same", Page)
	c.Notify("same", Value)
	assert.Len(t, sink.said, 2)
}

func TestHintsAreNeverRemembered(t *testing.T) {
	sink := &fakeSink{}
	c := readyController(sink)

	c.Notify("hint ... press shift", Hint)
	c.Notify("hint ... press shift", Hint)
	assert.Len(t, sink.said, 2)
	assert.Empty(t, c.Last(Hint))
}

func TestCancelRules(t *testing.T) {
	tests := []struct {
		name     string
		prev     Category
		cat      Category
		speaking bool
		cancel   bool
	}{
		{"page always interrupts", Value, Page, false, true},
		{"anything after a hint interrupts", Hint, Value, false, true},
		{"same category while speaking interrupts", Value, Value, true, true},
		{"same category when idle queues", Value, Value, false, false},
		{"value after page queues", Page, Value, true, false},
		{"hint after value queues", Value, Hint, true, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			sink := &fakeSink{}
			c := readyController(sink)
			c.lastCat = tt.prev
			sink.speaking = tt.speaking

			c.Notify("NEW TEXT", tt.cat)

			if tt.cancel {
				assert.Equal(t, []string{"cancel", "speak:new text"}, sink.calls)
			} else {
				assert.Equal(t, []string{"speak:new text"}, sink.calls)
			}
		})
	}
}

func TestGraceWindow(t *testing.T) {
	sink := &fakeSink{}
	clk := newClock()
	c := newController(sink, DefaultGrace, clk.now)

	assert.False(t, c.Ready())
	assert.Equal(t, DefaultGrace, c.Remaining())
	assert.False(t, c.Notify("song", Page))

	clk.advance(DefaultGrace - time.Millisecond)
	assert.False(t, c.Notify("song", Page))

	clk.advance(time.Millisecond)
	assert.True(t, c.Ready())
	assert.Zero(t, c.Remaining())
	assert.True(t, c.Notify("song", Page))
	assert.Equal(t, []string{"song"}, sink.said)
}

func TestRepeatBypassesDuplicateSuppression(t *testing.T) {
	sink := &fakeSink{}
	c := readyController(sink)

	assert.False(t, c.Repeat(Value))

	c.Notify("07 ... velocity", Value)
	assert.True(t, c.Repeat(Value))
	assert.Equal(t, []string{"speak:07 ... velocity", "cancel", "speak:07 ... velocity"}, sink.calls)
}

func TestDrain(t *testing.T) {
	sink := &fakeSink{}
	c := readyController(sink)

	c.Notify("phrase 00", Page)
	c.Notify("c-4 ... row 0 note", Value)

	got := c.Drain()
	if assert.Len(t, got, 2) {
		assert.Equal(t, Page, got[0].Category)
		assert.True(t, got[0].Cancelled)
		assert.Equal(t, "c-4 ... row 0 note", got[1].Text)
	}
	assert.Empty(t, c.Drain())
}
