//go:build !headless

package main

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/voog-synth/voog/internal/audioout"
	"github.com/voog-synth/voog/internal/config"
	"github.com/voog-synth/voog/internal/engine"
	"github.com/voog-synth/voog/internal/patch"
	"github.com/voog-synth/voog/internal/patchio"
	"github.com/voog-synth/voog/internal/tui"
)

var playPatchName string

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Launch the on-screen keyboard and start the audio device",
	RunE:  runPlay,
}

func init() {
	playCmd.Flags().StringVar(&playPatchName, "patch", "init", "starting patch name")
	rootCmd.AddCommand(playCmd)
}

func runPlay(cmd *cobra.Command, args []string) error {
	if err := loadConfig(); err != nil {
		return err
	}

	startPatch, ok := patch.Bank()[playPatchName]
	if !ok {
		startPatch = patch.Init()
	}

	eng := engine.New(config.BufferSize, startPatch, nil)
	if err := applyCCMap(eng); err != nil {
		return err
	}
	defer eng.WatchDiagnostics(time.Second)()

	player, err := audioout.NewOtoPlayer(eng, config.BufferSize)
	if err != nil {
		return fmt.Errorf("voog play: %w", err)
	}
	if err := player.Start(); err != nil {
		return fmt.Errorf("voog play: %w", err)
	}
	defer player.Stop()

	home, _ := os.UserHomeDir()
	manager, err := patchio.NewManager(filepath.Join(home, ".voog", "patches"))
	if err != nil {
		return fmt.Errorf("voog play: %w", err)
	}

	p := tea.NewProgram(tui.New(eng, manager), tea.WithAltScreen())
	_, err = p.Run()
	return err
}
