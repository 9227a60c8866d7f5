//go:build !headless

package main

import (
	"bufio"
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/voog-synth/voog/internal/audioout"
	"github.com/voog-synth/voog/internal/config"
	"github.com/voog-synth/voog/internal/engine"
	"github.com/voog-synth/voog/internal/midiin"
	"github.com/voog-synth/voog/internal/patch"
)

var midiCmd = &cobra.Command{
	Use:   "midi",
	Short: "List MIDI input ports, or listen on one and play audio",
	RunE:  runMIDI,
}

var midiPortIndex int

func init() {
	midiCmd.Flags().IntVar(&midiPortIndex, "port", -1, "MIDI input port index to listen on (omit to list ports)")
	rootCmd.AddCommand(midiCmd)
}

func runMIDI(cmd *cobra.Command, args []string) error {
	if err := loadConfig(); err != nil {
		return err
	}

	ports := midiin.InputPorts()
	if midiPortIndex < 0 {
		if len(ports) == 0 {
			fmt.Println("no MIDI input ports found")
			return nil
		}
		for i, p := range ports {
			fmt.Printf("%d: %s\n", i, p.String())
		}
		return nil
	}
	if midiPortIndex >= len(ports) {
		return fmt.Errorf("voog midi: port index %d out of range (have %d ports)", midiPortIndex, len(ports))
	}

	eng := engine.New(config.BufferSize, patch.Init(), nil)
	if err := applyCCMap(eng); err != nil {
		return err
	}
	defer eng.WatchDiagnostics(time.Second)()
	player, err := audioout.NewOtoPlayer(eng, config.BufferSize)
	if err != nil {
		return fmt.Errorf("voog midi: %w", err)
	}
	if err := player.Start(); err != nil {
		return fmt.Errorf("voog midi: %w", err)
	}
	defer player.Stop()

	listener, err := midiin.Open(ports[midiPortIndex], eng)
	if err != nil {
		return fmt.Errorf("voog midi: %w", err)
	}
	defer listener.Close()

	fmt.Println("listening, press enter to quit")
	bufio.NewReader(os.Stdin).ReadString('\n')
	return nil
}
