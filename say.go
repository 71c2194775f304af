package main

import (
	"strings"

	"github.com/spf13/cobra"
)

func newSayCmd(root *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "say <text>...",
		Short: "Speak text with the configured engine",
		Long:  "Speaks the given text once and waits for it to finish. Useful for checking the speech engine and voice settings.",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := root.loadConfig()
			if err != nil {
				return err
			}
			engine, err := newEngine(cfg)
			if err != nil {
				return err
			}
			return engine.Say(cmd.Context(), strings.ToLower(strings.Join(args, " ")))
		},
	}
}
