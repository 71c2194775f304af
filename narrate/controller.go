// Package narrate decides what to say about the mirrored screen and when.
package narrate

import (
	"strings"
	"time"

	"m8speak/debug"
	"m8speak/page"
)

// Category is the priority class of an utterance
type Category string

const (
	Page  Category = "page"
	Value Category = "value"
	Hint  Category = "hint"
)

// DefaultGrace is how long narration stays quiet after startup while the
// mirror syncs with the device
const DefaultGrace = 750 * time.Millisecond

// Sink speaks text. Speak must not block; utterances queue behind each other
// until Cancel drops them.
type Sink interface {
	Speak(text string)
	Cancel()
	Speaking() bool
}

// maxPending bounds the utterances kept between calls to Drain
const maxPending = 64

// Utterance is a record of something handed to the sink
type Utterance struct {
	Text      string
	Category  Category
	Cancelled bool // whether earlier speech was cut off first
	At        time.Time
}

// Controller suppresses repeats and decides when new speech interrupts old
type Controller struct {
	sink    Sink
	now     func() time.Time
	readyAt time.Time

	last    map[Category]string
	lastCat Category

	spoken []Utterance
}

// NewController creates a controller that stays silent for grace
func NewController(sink Sink, grace time.Duration) *Controller {
	return newController(sink, grace, time.Now)
}

func newController(sink Sink, grace time.Duration, now func() time.Time) *Controller {
	return &Controller{
		sink:    sink,
		now:     now,
		readyAt: now().Add(grace),
		last:    make(map[Category]string),
		lastCat: Page,
	}
}

// Ready reports whether the startup grace window has passed
func (c *Controller) Ready() bool {
	return !c.now().Before(c.readyAt)
}

// Remaining is the time left in the grace window
func (c *Controller) Remaining() time.Duration {
	d := c.readyAt.Sub(c.now())
	if d < 0 {
		return 0
	}
	return d
}

// Notify hands text to the sink unless it is empty, unknown or a repeat of
// the last text in its category. It reports whether anything was spoken.
func (c *Controller) Notify(text string, cat Category) bool {
	if !c.Ready() {
		return false
	}
	if text == "" || strings.EqualFold(text, page.UnknownTitle) {
		return false
	}
	text = strings.ToLower(text)
	if text == c.last[cat] {
		return false
	}

	cancel := cat == Page || c.lastCat == Hint || (cat == c.lastCat && c.sink.Speaking())
	c.say(text, cat, cancel)

	if cat != Hint {
		c.last[cat] = text
	}
	return true
}

// Repeat speaks the last page or value text again, interrupting anything
// in progress
func (c *Controller) Repeat(cat Category) bool {
	text := c.last[cat]
	if text == "" {
		return false
	}
	c.say(text, cat, true)
	return true
}

// Silence stops all speech
func (c *Controller) Silence() {
	debug.Log("speak", "silence")
	c.sink.Cancel()
}

// Last returns the last text spoken in a category
func (c *Controller) Last(cat Category) string {
	return c.last[cat]
}

// Drain returns the utterances spoken since the previous call
func (c *Controller) Drain() []Utterance {
	out := c.spoken
	c.spoken = nil
	return out
}

func (c *Controller) say(text string, cat Category, cancel bool) {
	debug.Log("speak", "[%s?%s cancel=%t] %s", c.lastCat, cat, cancel, text)
	if cancel {
		c.sink.Cancel()
	}
	c.lastCat = cat
	c.sink.Speak(text)
	c.spoken = append(c.spoken, Utterance{Text: text, Category: cat, Cancelled: cancel, At: c.now()})
	if len(c.spoken) > maxPending {
		c.spoken = c.spoken[len(c.spoken)-maxPending:]
	}
}
