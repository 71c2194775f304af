// Package debug is a category logger for tracing what the narrator sees and
// says. It is silent until Enable is called.
package debug

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sync"

	"github.com/mattn/go-isatty"
	"github.com/sirupsen/logrus"
)

var (
	logger  *logrus.Logger
	file    *os.File
	mu      sync.Mutex
	enabled bool
)

// Path returns the default log file, ~/.config/m8speak/debug.log
func Path() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, ".config", "m8speak", "debug.log"), nil
}

// Enable starts debug logging to the default log file
func Enable() error {
	path, err := Path()
	if err != nil {
		return fmt.Errorf("debug log path: %w", err)
	}
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("create log dir: %w", err)
	}
	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_TRUNC, 0644)
	if err != nil {
		return fmt.Errorf("open debug log: %w", err)
	}

	mu.Lock()
	defer mu.Unlock()
	if enabled {
		f.Close()
		return nil
	}
	file = f
	start(f, false)
	return nil
}

// EnableWriter starts debug logging to w. Colours are used when w is a terminal.
func EnableWriter(w io.Writer) {
	mu.Lock()
	defer mu.Unlock()

	colour := false
	if f, ok := w.(*os.File); ok {
		colour = isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
	}
	start(w, colour)
}

func start(w io.Writer, colour bool) {
	logger = logrus.New()
	logger.SetOutput(w)
	logger.SetLevel(logrus.DebugLevel)
	logger.SetFormatter(&logrus.TextFormatter{
		ForceColors:      colour,
		DisableColors:    !colour,
		FullTimestamp:    true,
		TimestampFormat:  "15:04:05.000",
		DisableSorting:   false,
		QuoteEmptyFields: true,
	})
	enabled = true
	logger.WithField("component", "debug").Debug("=== Debug logging started ===")
}

// Disable stops debug logging
func Disable() {
	mu.Lock()
	defer mu.Unlock()

	if file != nil {
		file.Close()
		file = nil
	}
	logger = nil
	enabled = false
}

// Enabled reports whether logging is on
func Enabled() bool {
	mu.Lock()
	defer mu.Unlock()
	return enabled
}

// Log writes a message to the debug log
func Log(category, format string, args ...any) {
	mu.Lock()
	defer mu.Unlock()

	if !enabled || logger == nil {
		return
	}
	logger.WithField("component", category).Debugf(format, args...)
	if file != nil {
		file.Sync() // flush immediately so we see logs even on crash
	}
}

// Warn logs at warning level; used for failures that do not stop narration
func Warn(category string, err error) {
	mu.Lock()
	defer mu.Unlock()

	if !enabled || logger == nil {
		return
	}
	logger.WithField("component", category).WithError(err).Warn("failed")
}

// LogEvery logs only every N calls (use for high-frequency events)
var counters = make(map[string]int)

func LogEvery(n int, category, format string, args ...any) {
	mu.Lock()
	key := category + format
	counters[key]++
	count := counters[key]
	mu.Unlock()

	if count%n == 0 {
		Log(category, format+" (every %d, count=%d)", append(args, n, count)...)
	}
}
