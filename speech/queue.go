package speech

import (
	"context"
	"sync"

	"m8speak/debug"
)

// Queue speaks utterances one at a time on a worker goroutine. Speak never
// blocks; Cancel stops the current utterance and drops the rest.
type Queue struct {
	engine Engine

	mu       sync.Mutex
	pending  []string
	stop     context.CancelFunc // cancels the utterance being spoken
	speaking bool

	wake chan struct{}
	done chan struct{}
}

// NewQueue creates a queue over engine. Call Start to begin speaking.
func NewQueue(engine Engine) *Queue {
	return &Queue{
		engine: engine,
		wake:   make(chan struct{}, 1),
		done:   make(chan struct{}),
	}
}

// Start runs the worker until ctx is cancelled
func (q *Queue) Start(ctx context.Context) {
	go q.run(ctx)
}

// Done is closed when the worker has exited
func (q *Queue) Done() <-chan struct{} {
	return q.done
}

// Speak queues text
func (q *Queue) Speak(text string) {
	q.mu.Lock()
	q.pending = append(q.pending, text)
	q.mu.Unlock()

	select {
	case q.wake <- struct{}{}:
	default:
	}
}

// Cancel interrupts the current utterance and drops queued ones
func (q *Queue) Cancel() {
	q.mu.Lock()
	defer q.mu.Unlock()

	q.pending = nil
	if q.stop != nil {
		q.stop()
	}
}

// Speaking reports whether an utterance is playing or waiting
func (q *Queue) Speaking() bool {
	q.mu.Lock()
	defer q.mu.Unlock()
	return q.speaking || len(q.pending) > 0
}

func (q *Queue) run(ctx context.Context) {
	defer close(q.done)

	for {
		select {
		case <-ctx.Done():
			return
		case <-q.wake:
		}

		for q.next(ctx) {
		}
	}
}

// next speaks the head of the queue. It reports false once the queue is
// empty or ctx is done.
func (q *Queue) next(ctx context.Context) bool {
	q.mu.Lock()
	if len(q.pending) == 0 || ctx.Err() != nil {
		q.speaking = false
		q.mu.Unlock()
		return false
	}
	text := q.pending[0]
	q.pending = q.pending[1:]
	uctx, stop := context.WithCancel(ctx)
	q.stop = stop
	q.speaking = true
	q.mu.Unlock()

	err := q.engine.Say(uctx, text)
	interrupted := uctx.Err() != nil
	stop()

	q.mu.Lock()
	q.stop = nil
	q.mu.Unlock()

	if err != nil && !interrupted {
		debug.Warn("speech", err)
	}
	return true
}
