// Package speech speaks text through a system synthesizer.
package speech

import (
	"context"
	"fmt"
	"math"
	"os/exec"
	"strconv"

	"m8speak/debug"
)

// Engine speaks one utterance and returns when it has finished or ctx is
// cancelled
type Engine interface {
	Say(ctx context.Context, text string) error
	Name() string
}

// Engine names accepted by NewEngine
const (
	EngineEspeak = "espeak-ng"
	EngineSay    = "say"
	EngineSpd    = "spd-say"
	EngineLog    = "log"
)

// baseWPM is the synthesizer speaking rate that a rate of 1.0 maps to
const baseWPM = 175

// Voice is how utterances should sound
type Voice struct {
	Rate float64 // 1.0 is normal speed
	Name string  // engine specific voice, empty for the default
}

// NewEngine returns the named engine. Process engines must be on PATH.
func NewEngine(name string, v Voice) (Engine, error) {
	if name == EngineLog {
		return logEngine{}, nil
	}

	args, ok := argBuilders[name]
	if !ok {
		return nil, fmt.Errorf("unknown speech engine %q", name)
	}
	path, err := exec.LookPath(name)
	if err != nil {
		return nil, fmt.Errorf("speech engine %s: %w", name, err)
	}
	return &procEngine{name: name, path: path, args: func(text string) []string { return args(v, text) }}, nil
}

var argBuilders = map[string]func(v Voice, text string) []string{
	EngineEspeak: espeakArgs,
	EngineSay:    sayArgs,
	EngineSpd:    spdArgs,
}

func wpm(rate float64) string {
	if rate <= 0 {
		rate = 1
	}
	return strconv.Itoa(int(math.Round(baseWPM * rate)))
}

func espeakArgs(v Voice, text string) []string {
	args := []string{"-s", wpm(v.Rate)}
	if v.Name != "" {
		args = append(args, "-v", v.Name)
	}
	return append(args, "--", text)
}

// sayArgs builds arguments for the macOS say command
func sayArgs(v Voice, text string) []string {
	args := []string{"-r", wpm(v.Rate)}
	if v.Name != "" {
		args = append(args, "-v", v.Name)
	}
	return append(args, "--", text)
}

// spdArgs builds arguments for speech-dispatcher. Its rate is -100..100
// around the default, and -w waits for the utterance to finish.
func spdArgs(v Voice, text string) []string {
	rate := 0
	if v.Rate > 0 {
		rate = int(math.Round((v.Rate - 1) * 100))
	}
	rate = max(-100, min(100, rate))
	args := []string{"-w", "-r", strconv.Itoa(rate)}
	if v.Name != "" {
		args = append(args, "-y", v.Name)
	}
	return append(args, "--", text)
}

// procEngine runs one synthesizer process per utterance
type procEngine struct {
	name string
	path string
	args func(text string) []string
}

func (e *procEngine) Name() string { return e.name }

func (e *procEngine) Say(ctx context.Context, text string) error {
	cmd := exec.CommandContext(ctx, e.path, e.args(text)...)
	if err := cmd.Run(); err != nil {
		if ctx.Err() != nil {
			return ctx.Err()
		}
		return fmt.Errorf("%s: %w", e.name, err)
	}
	return nil
}

// logEngine writes utterances to the debug log instead of speaking
type logEngine struct{}

func (logEngine) Name() string { return EngineLog }

func (logEngine) Say(ctx context.Context, text string) error {
	debug.Log("say", "%s", text)
	return nil
}
