package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"m8speak/config"
	"m8speak/debug"
	"m8speak/narrate"
	"m8speak/remote"
	"m8speak/speech"
	"m8speak/theme"
	"m8speak/trace"
	"m8speak/tui"
)

func newReplayCmd(root *rootOptions) *cobra.Command {
	var headless bool
	var hold time.Duration

	cmd := &cobra.Command{
		Use:   "replay <trace.yaml>",
		Short: "Narrate a recorded draw-event trace",
		Long: `Feeds a recorded trace of display draw events through the narrator and
speaks the result. The mirrored screen is shown in the terminal unless
--headless is given, in which case spoken lines are printed instead.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := root.loadConfig()
			if err != nil {
				return err
			}
			tr, err := trace.Load(args[0])
			if err != nil {
				return err
			}
			engine, err := newEngine(cfg)
			if err != nil {
				return err
			}

			ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
			defer stop()

			queue := speech.NewQueue(engine)
			queue.Start(ctx)

			n := narrate.New(queue, narrate.Options{
				Grace:   time.Duration(cfg.Narration.StartupGraceMS) * time.Millisecond,
				HintRow: cfg.Narration.HintRow,
			})
			loop := narrate.NewLoop(n, cfg.Narration.FrameRate)
			go loop.Run(ctx)

			var rm *remote.Manager
			if cfg.Remote.Enabled {
				rm = remote.NewManager(cfg.Remote)
				go rm.Run(ctx)
				go forwardActions(rm, loop)
			}

			player := &trace.Player{Trace: tr}
			played := make(chan error, 1)
			go func() {
				played <- player.Play(ctx, loop)
			}()

			if headless {
				return runHeadless(ctx, loop, played, hold)
			}

			m := tui.NewModel(loop, rm, theme.New(loadPalette(cfg)), cfg.UI.LogLines)
			p := tea.NewProgram(m, tea.WithAltScreen(), tea.WithContext(ctx))
			if _, err := p.Run(); err != nil && ctx.Err() == nil {
				return err
			}
			return nil
		},
	}

	cmd.Flags().BoolVar(&headless, "headless", false, "Print spoken lines instead of showing the screen")
	cmd.Flags().DurationVar(&hold, "hold", 2*time.Second, "How long to keep narrating after a headless trace ends")
	return cmd
}

// forwardActions passes remote button presses to the narration loop
func forwardActions(rm *remote.Manager, loop *narrate.Loop) {
	for a := range rm.Actions() {
		debug.Log("remote", "action %s", a)
		loop.Do(a)
	}
}

// runHeadless prints each utterance until the trace has played and hold
// has passed
func runHeadless(ctx context.Context, loop *narrate.Loop, played <-chan error, hold time.Duration) error {
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	var done <-chan time.Time
	frames := loop.Frames()
	for {
		select {
		case err := <-played:
			if err != nil && ctx.Err() == nil {
				return err
			}
			done = time.After(hold)

		case <-done:
			return nil

		case <-ctx.Done():
			return nil

		case f, ok := <-frames:
			if !ok {
				return nil
			}
			for _, u := range f.Spoken {
				mark := ""
				if u.Cancelled {
					mark = " (cut in)"
				}
				fmt.Printf("%-5s %s%s\n", u.Category, u.Text, mark)
			}
		}
	}
}

// loadPalette reads the configured palette, falling back to the built-in one
func loadPalette(cfg *config.Config) *theme.Palette {
	if cfg.UI.Palette == "" {
		return theme.Default()
	}
	p, err := theme.LoadGPL(cfg.UI.Palette)
	if err != nil {
		debug.Warn("theme", err)
		return theme.Default()
	}
	return p
}
