package narrate

import (
	"context"
	"time"
)

// DefaultFrameRate is how often pending draw calls are evaluated
const DefaultFrameRate = 60

// Event is an inbound draw call
type Event interface {
	apply(n *Narrator)
}

type glyphEvent struct {
	ch, x, y int
	r, g, b  uint8
}

func (e glyphEvent) apply(n *Narrator) { n.GlyphDrawn(e.ch, e.x, e.y, e.r, e.g, e.b) }

type rectEvent struct {
	x, y, w, h int
	r, g, b    uint8
}

func (e rectEvent) apply(n *Narrator) { n.RectDrawn(e.x, e.y, e.w, e.h, e.r, e.g, e.b) }

type clearEvent struct{}

func (clearEvent) apply(n *Narrator) { n.ScreenCleared() }

// Action is a user request from the keyboard or the MIDI remote
type Action int

const (
	RepeatPage Action = iota
	RepeatValue
	Silence
)

func (a Action) String() string {
	switch a {
	case RepeatPage:
		return "repeat page"
	case RepeatValue:
		return "repeat value"
	case Silence:
		return "silence"
	}
	return "unknown"
}

// Loop runs a narrator on one goroutine. Draw calls arrive on a channel and
// are evaluated at most once per frame, and only when something changed.
type Loop struct {
	n         *Narrator
	events    chan Event
	actions   chan Action
	frames    chan Frame
	frameRate int
	dirty     bool
}

// NewLoop wraps a narrator. A frameRate of 0 uses DefaultFrameRate.
func NewLoop(n *Narrator, frameRate int) *Loop {
	if frameRate <= 0 {
		frameRate = DefaultFrameRate
	}
	return &Loop{
		n:         n,
		events:    make(chan Event, 1024),
		actions:   make(chan Action, 8),
		frames:    make(chan Frame, 16),
		frameRate: frameRate,
	}
}

// Frames delivers a snapshot after every evaluated tick and action. The
// channel is closed when Run returns.
func (l *Loop) Frames() <-chan Frame {
	return l.frames
}

// GlyphDrawn queues a character draw
func (l *Loop) GlyphDrawn(ch, x, y int, r, g, b uint8) {
	l.events <- glyphEvent{ch, x, y, r, g, b}
}

// RectDrawn queues a rectangle draw
func (l *Loop) RectDrawn(x, y, w, h int, r, g, b uint8) {
	l.events <- rectEvent{x, y, w, h, r, g, b}
}

// ScreenCleared queues a screen reset
func (l *Loop) ScreenCleared() {
	l.events <- clearEvent{}
}

// Do queues an action. Actions are dropped if the loop is backed up.
func (l *Loop) Do(a Action) {
	select {
	case l.actions <- a:
	default:
	}
}

// Run processes events until ctx is cancelled (blocking - run in goroutine)
func (l *Loop) Run(ctx context.Context) {
	ticker := time.NewTicker(time.Second / time.Duration(l.frameRate))
	defer ticker.Stop()

	// Wake up once the grace window ends so the startup announcement is made
	// even if the screen is idle
	var announce <-chan time.Time
	if pending, wait := l.n.Pending(); pending {
		announce = time.After(wait)
	}

	for {
		select {
		case <-ctx.Done():
			close(l.frames)
			return

		case e := <-l.events:
			e.apply(l.n)
			l.dirty = true

		case a := <-l.actions:
			l.act(a)
			l.publish()

		case <-announce:
			announce = nil
			l.dirty = true

		case <-ticker.C:
			if l.dirty {
				l.dirty = false
				l.n.Tick()
				l.publish()
			}
		}
	}
}

func (l *Loop) act(a Action) {
	switch a {
	case RepeatPage:
		l.n.Repeat(Page)
	case RepeatValue:
		l.n.Repeat(Value)
	case Silence:
		l.n.Silence()
	}
}

// publish drops the frame if nobody is reading
func (l *Loop) publish() {
	select {
	case l.frames <- l.n.Frame():
	default:
	}
}
