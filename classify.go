package main

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"m8speak/narrate"
	"m8speak/trace"
)

func newClassifyCmd(root *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "classify <trace.yaml>",
		Short: "Print the page and selection label after each tick of a trace",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := root.loadConfig()
			if err != nil {
				return err
			}
			tr, err := trace.Load(args[0])
			if err != nil {
				return err
			}
			return runClassify(cmd.Context(), os.Stdout, tr, cfg.Narration.HintRow)
		},
	}
}

// silentSink accepts speech without making a sound
type silentSink struct{}

func (silentSink) Speak(string)   {}
func (silentSink) Cancel()        {}
func (silentSink) Speaking() bool { return false }

// runClassify plays the trace straight into a narrator with no startup
// grace and reports what it saw on every tick step
func runClassify(ctx context.Context, w io.Writer, tr *trace.Trace, hintRow int) error {
	n := narrate.New(silentSink{}, narrate.Options{HintRow: hintRow})

	player := &trace.Player{
		Trace: tr,
		AfterStep: func(i int, s trace.Step) {
			if !s.Tick {
				return
			}
			f := n.Frame()
			fmt.Fprintf(w, "%3d  page  %s\n", i, f.Page.Text())
			if f.Label != "" {
				fmt.Fprintf(w, "     label %s\n", f.Label)
			}
			for _, u := range f.Spoken {
				fmt.Fprintf(w, "     %-5s %q\n", u.Category, u.Text)
			}
		},
	}
	return player.Play(ctx, n)
}
