package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"m8speak/config"
	"m8speak/debug"
	"m8speak/speech"
)

type rootOptions struct {
	configFile string
	debug      bool
	engine     string
}

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	opts := &rootOptions{}

	cmd := &cobra.Command{
		Use:           "m8speak",
		Short:         "Screen reader for the M8 tracker display",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if !opts.debug {
				return nil
			}
			if err := debug.Enable(); err != nil {
				return fmt.Errorf("debug log: %w", err)
			}
			debug.Log("main", "m8speak starting, args %v", args)
			return nil
		},
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			debug.Disable()
		},
	}

	cmd.PersistentFlags().StringVarP(&opts.configFile, "config", "c", "", "Path to config.toml (default ~/.config/m8speak/config.toml)")
	cmd.PersistentFlags().BoolVar(&opts.debug, "debug", false, "Write a debug log to ~/.config/m8speak/debug.log")
	cmd.PersistentFlags().StringVar(&opts.engine, "engine", "", "Speech engine: espeak-ng, say, spd-say or log")

	cmd.AddCommand(newReplayCmd(opts))
	cmd.AddCommand(newClassifyCmd(opts))
	cmd.AddCommand(newSayCmd(opts))
	return cmd
}

// loadConfig reads the config file and applies flag overrides
func (o *rootOptions) loadConfig() (*config.Config, error) {
	var cfg *config.Config
	var err error
	if o.configFile != "" {
		cfg, err = config.LoadFrom(o.configFile)
	} else {
		cfg, err = config.Load()
	}
	if err != nil {
		return nil, err
	}

	if o.engine != "" {
		cfg.Speech.Engine = o.engine
		if err := cfg.Validate(); err != nil {
			return nil, err
		}
	}
	return cfg, nil
}

func newEngine(cfg *config.Config) (speech.Engine, error) {
	return speech.NewEngine(cfg.Speech.Engine, speech.Voice{
		Rate: cfg.Speech.Rate,
		Name: cfg.Speech.Voice,
	})
}
