// Package main is the voog CLI, a cobra command tree in the same shape
// icco-genidi's cmd package uses: a bare root command plus subcommands
// that each own one mode of interacting with the engine.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/voog-synth/voog/internal/config"
	"github.com/voog-synth/voog/internal/engine"
)

var (
	configPath string
	ccmapPath  string
)

var rootCmd = &cobra.Command{
	Use:   "voog",
	Short: "A polyphonic subtractive virtual-analog synthesizer engine",
	Long: `voog renders audio from a fixed set of channels, each with its own
patch and voice allocator, driven by MIDI input or an on-screen
terminal keyboard.`,
}

func init() {
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "YAML file overriding sample_rate/buffer_size")
	rootCmd.PersistentFlags().StringVar(&ccmapPath, "ccmap", "", "YAML file overriding the MIDI CC map")
}

// loadConfig applies --config, if given, before any subcommand constructs
// an engine. A missing --config is not an error; the compiled-in defaults
// stand (spec.md §3 "Config").
func loadConfig() error {
	if configPath == "" {
		return nil
	}
	rt, err := config.Load(configPath)
	if err != nil {
		return fmt.Errorf("voog: loading %s: %w", configPath, err)
	}
	config.Apply(rt)
	return nil
}

// applyCCMap installs --ccmap's override onto eng, if given.
func applyCCMap(eng *engine.Engine) error {
	if ccmapPath == "" {
		return nil
	}
	m, err := engine.LoadCCMap(ccmapPath)
	if err != nil {
		return fmt.Errorf("voog: loading %s: %w", ccmapPath, err)
	}
	eng.SetCCMap(m)
	return nil
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
