package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"strings"
	"time"

	"gitlab.com/gomidi/midi/v2"
	_ "gitlab.com/gomidi/midi/v2/drivers/rtmididrv"

	"m8speak/config"
	"m8speak/debug"
	"m8speak/remote"
)

func main() {
	if len(os.Args) < 2 {
		usage()
		return
	}

	switch os.Args[1] {
	case "list":
		listPorts()
	case "watch":
		if len(os.Args) < 3 {
			usage()
			return
		}
		watch(os.Args[2])
	case "poll":
		pollDevices()
	default:
		usage()
	}
}

func usage() {
	fmt.Println("MIDI remote test scripts")
	fmt.Println("")
	fmt.Println("Commands:")
	fmt.Println("  list          - List all MIDI ports")
	fmt.Println("  watch <port>  - Print narration actions from a controller")
	fmt.Println("  poll          - Poll for device changes")
}

func listPorts() {
	fmt.Println("=== MIDI Input Ports ===")
	fmt.Println("(waiting up to 3 seconds...)")

	ins, ok := remote.InPorts(3 * time.Second)
	if !ok {
		fmt.Println("\nTIMEOUT! CoreMIDI is hung.")
		fmt.Println("Fix: sudo killall coreaudiod midiserver")
		return
	}
	for i, p := range ins {
		fmt.Printf("  %d: %s\n", i, p.String())
	}

	fmt.Println("\n=== MIDI Output Ports ===")
	for i, p := range midi.GetOutPorts() {
		fmt.Printf("  %d: %s\n", i, p.String())
	}
}

// watch connects to the first input matching port using the button
// mapping from the config file
func watch(port string) {
	cfg, err := config.Load()
	if err != nil {
		fmt.Printf("Config error: %v (using defaults)\n", err)
		cfg = config.DefaultConfig()
	}
	cfg.Remote.Enabled = true
	cfg.Remote.Port = port

	// Raw messages are logged by the remote package
	debug.EnableWriter(os.Stderr)
	defer debug.Disable()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	rm := remote.NewManager(cfg.Remote)
	go rm.Run(ctx)

	fmt.Printf("Waiting for %q. Ctrl+C to exit.\n", port)
	fmt.Printf("  repeat page:  note %d cc %d\n", cfg.Remote.RepeatPage.Note, cfg.Remote.RepeatPage.CC)
	fmt.Printf("  repeat value: note %d cc %d\n", cfg.Remote.RepeatValue.Note, cfg.Remote.RepeatValue.CC)
	fmt.Printf("  silence:      note %d cc %d\n", cfg.Remote.Silence.Note, cfg.Remote.Silence.CC)

	actions, events := rm.Actions(), rm.Events()
	for actions != nil || events != nil {
		select {
		case a, ok := <-actions:
			if !ok {
				actions = nil
				continue
			}
			fmt.Printf("[%s] %s\n", time.Now().Format("15:04:05"), a)
		case e, ok := <-events:
			if !ok {
				events = nil
				continue
			}
			fmt.Printf("[%s] %s\n", time.Now().Format("15:04:05"), e)
		}
	}
}

func pollDevices() {
	fmt.Println("Polling for device changes every 2 seconds...")
	fmt.Println("Connect/disconnect a controller to test. Ctrl+C to exit.")

	lastIn := ""
	for {
		ins, ok := remote.InPorts(3 * time.Second)
		if !ok {
			fmt.Println("  (port scan timed out)")
			time.Sleep(2 * time.Second)
			continue
		}

		var inNames []string
		for _, p := range ins {
			inNames = append(inNames, p.String())
		}

		if current := strings.Join(inNames, ","); current != lastIn {
			fmt.Printf("\n[%s] Device change detected!\n", time.Now().Format("15:04:05"))
			fmt.Printf("  Inputs: %v\n", inNames)
			lastIn = current
		}

		time.Sleep(2 * time.Second)
	}
}
