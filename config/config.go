package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/pelletier/go-toml/v2"
)

// Engine names; see package speech
const (
	EngineEspeak = "espeak-ng"
	EngineSay    = "say"
	EngineSpd    = "spd-say"
	EngineLog    = "log"
)

// SpeechConfig selects the synthesizer
type SpeechConfig struct {
	Engine string  `toml:"engine"`
	Rate   float64 `toml:"rate"`
	Voice  string  `toml:"voice,omitempty"`
}

// NarrationConfig tunes when things are said
type NarrationConfig struct {
	StartupGraceMS int `toml:"startup_grace_ms"`
	FrameRate      int `toml:"frame_rate"`
	HintRow        int `toml:"hint_row"`
}

// RemoteConfig maps a MIDI controller's buttons to narration actions.
// Note and CC numbers of -1 are unassigned.
type RemoteConfig struct {
	Enabled     bool   `toml:"enabled"`
	Port        string `toml:"port"`    // case-insensitive substring of the input port name
	Channel     int    `toml:"channel"` // 1-16, 0 for any
	RepeatPage  Button `toml:"repeat_page"`
	RepeatValue Button `toml:"repeat_value"`
	Silence     Button `toml:"silence"`
}

// Button is a note or CC that triggers an action
type Button struct {
	Note int `toml:"note"`
	CC   int `toml:"cc"`
}

// UIConfig stores display preferences
type UIConfig struct {
	Palette  string `toml:"palette,omitempty"` // GIMP .gpl file
	LogLines int    `toml:"log_lines"`
}

// Config is the main configuration structure
type Config struct {
	Speech    SpeechConfig    `toml:"speech"`
	Narration NarrationConfig `toml:"narration"`
	Remote    RemoteConfig    `toml:"remote"`
	UI        UIConfig        `toml:"ui"`
}

// DefaultConfig returns a config with sensible defaults
func DefaultConfig() *Config {
	return &Config{
		Speech: SpeechConfig{
			Engine: EngineEspeak,
			Rate:   1.2,
		},
		Narration: NarrationConfig{
			StartupGraceMS: 750,
			FrameRate:      60,
			HintRow:        22,
		},
		Remote: RemoteConfig{
			Port:        "",
			RepeatPage:  Button{Note: 60, CC: -1},
			RepeatValue: Button{Note: 62, CC: -1},
			Silence:     Button{Note: 64, CC: -1},
		},
		UI: UIConfig{
			LogLines: 8,
		},
	}
}

// ConfigDir returns the config directory path
func ConfigDir() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, ".config", "m8speak"), nil
}

// ConfigPath returns the full path to config.toml
func ConfigPath() (string, error) {
	dir, err := ConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, "config.toml"), nil
}

// Load reads the config from the default path, or returns defaults if not found
func Load() (*Config, error) {
	path, err := ConfigPath()
	if err != nil {
		return DefaultConfig(), nil
	}
	return LoadFrom(path)
}

// LoadFrom reads a config file. Keys missing from the file keep their
// default values.
func LoadFrom(path string) (*Config, error) {
	cfg := DefaultConfig()

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return nil, fmt.Errorf("read config: %w", err)
	}

	if err := toml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parse %s: %w", path, err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return cfg, nil
}

// Save writes the config to the default path
func (c *Config) Save() error {
	path, err := ConfigPath()
	if err != nil {
		return err
	}
	return c.SaveTo(path)
}

// SaveTo writes the config to path, creating its directory
func (c *Config) SaveTo(path string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("create config dir: %w", err)
	}

	data, err := toml.Marshal(c)
	if err != nil {
		return fmt.Errorf("encode config: %w", err)
	}
	return os.WriteFile(path, data, 0644)
}

// Validate checks value ranges
func (c *Config) Validate() error {
	var errs []error

	switch c.Speech.Engine {
	case EngineEspeak, EngineSay, EngineSpd, EngineLog:
	default:
		errs = append(errs, fmt.Errorf("speech.engine: unknown engine %q", c.Speech.Engine))
	}
	if c.Speech.Rate <= 0 || c.Speech.Rate > 4 {
		errs = append(errs, fmt.Errorf("speech.rate: %g out of range (0, 4]", c.Speech.Rate))
	}
	if c.Narration.StartupGraceMS < 0 {
		errs = append(errs, fmt.Errorf("narration.startup_grace_ms: must not be negative"))
	}
	if c.Narration.FrameRate < 1 || c.Narration.FrameRate > 240 {
		errs = append(errs, fmt.Errorf("narration.frame_rate: %d out of range 1-240", c.Narration.FrameRate))
	}
	if c.Narration.HintRow < 0 || c.Narration.HintRow > 22 {
		errs = append(errs, fmt.Errorf("narration.hint_row: %d out of range 0-22", c.Narration.HintRow))
	}
	if c.Remote.Channel < 0 || c.Remote.Channel > 16 {
		errs = append(errs, fmt.Errorf("remote.channel: %d out of range 0-16", c.Remote.Channel))
	}
	for name, b := range map[string]Button{
		"repeat_page":  c.Remote.RepeatPage,
		"repeat_value": c.Remote.RepeatValue,
		"silence":      c.Remote.Silence,
	} {
		if b.Note < -1 || b.Note > 127 || b.CC < -1 || b.CC > 127 {
			errs = append(errs, fmt.Errorf("remote.%s: note and cc must be -1 to 127", name))
		}
	}
	if c.Remote.Enabled && strings.TrimSpace(c.Remote.Port) == "" {
		errs = append(errs, fmt.Errorf("remote.port: required when the remote is enabled"))
	}
	if c.UI.LogLines < 0 {
		errs = append(errs, fmt.Errorf("ui.log_lines: must not be negative"))
	}

	return errors.Join(errs...)
}
