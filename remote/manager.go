package remote

import (
	"context"
	"fmt"
	"strings"
	"sync"
	"time"

	gomidi "gitlab.com/gomidi/midi/v2"
	"gitlab.com/gomidi/midi/v2/drivers"
	_ "gitlab.com/gomidi/midi/v2/drivers/rtmididrv" // Register MIDI driver

	"m8speak/config"
	"m8speak/debug"
	"m8speak/narrate"
)

// StatusEvent is emitted when the remote connects or disconnects
type StatusEvent struct {
	Type StatusType
	Port string
}

type StatusType int

const (
	Connected StatusType = iota
	Disconnected
)

func (e StatusEvent) String() string {
	if e.Type == Connected {
		return "remote connected: " + e.Port
	}
	return "remote disconnected: " + e.Port
}

// Manager watches for the configured input port and listens to it while it
// is plugged in
type Manager struct {
	match    string
	mapping  Mapping
	pollRate time.Duration

	mu   sync.Mutex
	port string
	stop func()

	actions chan narrate.Action
	events  chan StatusEvent
}

// NewManager creates a manager for the remote config section
func NewManager(cfg config.RemoteConfig) *Manager {
	return &Manager{
		match:    strings.ToLower(cfg.Port),
		mapping:  NewMapping(cfg),
		pollRate: time.Second,
		actions:  make(chan narrate.Action, 16),
		events:   make(chan StatusEvent, 4),
	}
}

// Actions delivers decoded button presses
func (m *Manager) Actions() <-chan narrate.Action {
	return m.actions
}

// Events delivers connect/disconnect notices. Both channels are closed when
// Run returns.
func (m *Manager) Events() <-chan StatusEvent {
	return m.events
}

// Run starts the polling loop (blocking - run in goroutine)
func (m *Manager) Run(ctx context.Context) {
	ticker := time.NewTicker(m.pollRate)
	defer ticker.Stop()

	m.scan()

	for {
		select {
		case <-ctx.Done():
			m.disconnect()
			close(m.actions)
			close(m.events)
			return
		case <-ticker.C:
			m.scan()
		}
	}
}

func (m *Manager) scan() {
	ins, ok := InPorts(3 * time.Second)
	if !ok {
		// CoreMIDI is hung - skip this scan
		return
	}

	var found drivers.In
	for _, in := range ins {
		if Matches(in.String(), m.match) {
			found = in
			break
		}
	}

	m.mu.Lock()
	current := m.port
	m.mu.Unlock()

	switch {
	case found == nil && current != "":
		m.disconnect()
	case found != nil && current == "":
		if err := m.connect(found); err != nil {
			debug.Warn("remote", err)
		}
	}
}

func (m *Manager) connect(in drivers.In) error {
	stop, err := gomidi.ListenTo(in, func(msg gomidi.Message, timestampms int32) {
		if a, ok := m.mapping.Decode(msg); ok {
			debug.Log("remote", "%s -> %s", msg, a)
			select {
			case m.actions <- a:
			default:
			}
		}
	})
	if err != nil {
		return fmt.Errorf("listen to %s: %w", in, err)
	}

	m.mu.Lock()
	m.port = in.String()
	m.stop = stop
	m.mu.Unlock()

	m.notify(StatusEvent{Type: Connected, Port: in.String()})
	return nil
}

func (m *Manager) disconnect() {
	m.mu.Lock()
	port, stop := m.port, m.stop
	m.port, m.stop = "", nil
	m.mu.Unlock()

	if stop == nil {
		return
	}
	stop()
	m.notify(StatusEvent{Type: Disconnected, Port: port})
}

func (m *Manager) notify(e StatusEvent) {
	debug.Log("remote", "%s", e)
	select {
	case m.events <- e:
	default:
	}
}

// Matches reports whether a port name contains the configured substring,
// ignoring case. An empty match never connects.
func Matches(port, match string) bool {
	if match == "" {
		return false
	}
	return strings.Contains(strings.ToLower(port), strings.ToLower(match))
}

// InPorts lists MIDI inputs, giving up after timeout (CoreMIDI can hang)
func InPorts(timeout time.Duration) ([]drivers.In, bool) {
	ch := make(chan []drivers.In, 1)
	go func() {
		ch <- gomidi.GetInPorts()
	}()

	select {
	case ins := <-ch:
		return ins, true
	case <-time.After(timeout):
		return nil, false
	}
}
