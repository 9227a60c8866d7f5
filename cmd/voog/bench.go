package main

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/voog-synth/voog/internal/config"
	"github.com/voog-synth/voog/internal/engine"
	"github.com/voog-synth/voog/internal/patch"
)

var (
	benchSeconds   float64
	benchVoices    int
	benchPatchName string
)

// benchCmd renders audio offline and reports the CPU/realtime ratio, the
// Go port of original_source/profile_synth.py's run_benchmark.
var benchCmd = &cobra.Command{
	Use:   "bench",
	Short: "Render audio offline and report the realtime CPU ratio",
	RunE:  runBench,
}

func init() {
	benchCmd.Flags().Float64Var(&benchSeconds, "seconds", 5.0, "seconds of audio to render")
	benchCmd.Flags().IntVar(&benchVoices, "voices", 6, "number of notes to trigger as a chord")
	benchCmd.Flags().StringVar(&benchPatchName, "patch", "bass", "starting patch name")
	rootCmd.AddCommand(benchCmd)
}

func runBench(cmd *cobra.Command, args []string) error {
	if err := loadConfig(); err != nil {
		return err
	}

	startPatch, ok := patch.Bank()[benchPatchName]
	if !ok {
		startPatch = patch.Bass()
	}
	eng := engine.New(config.BufferSize, startPatch, nil)

	fmt.Printf("Patch: %s\n", startPatch.Name)
	fmt.Printf("Voices: %d, Buffer: %d, Rate: %d\n", benchVoices, config.BufferSize, int(config.SampleRate))
	fmt.Printf("Rendering %.1fs of audio...\n\n", benchSeconds)

	notes := []int{48, 52, 55, 60, 64, 67, 72, 76}
	if benchVoices > len(notes) {
		benchVoices = len(notes)
	}
	for _, n := range notes[:benchVoices] {
		eng.Enqueue(engine.Event{Kind: engine.NoteOn, Channel: 0, Note: n, Velocity: 100})
	}

	buf := make([]float64, config.BufferSize)
	eng.Render(buf) // warm up

	totalSamples := int(config.SampleRate * benchSeconds)
	numBuffers := totalSamples / config.BufferSize

	start := time.Now()
	for i := 0; i < numBuffers; i++ {
		eng.Render(buf)
	}
	elapsed := time.Since(start)

	audioDuration := float64(numBuffers*config.BufferSize) / config.SampleRate
	cpuRatio := elapsed.Seconds() / audioDuration

	fmt.Println("--- Timing ---")
	fmt.Printf("Audio duration: %.2fs\n", audioDuration)
	fmt.Printf("Render time:    %.3fs\n", elapsed.Seconds())
	fmt.Printf("CPU ratio:      %.2fx realtime\n", cpuRatio)
	if cpuRatio >= 1.0 {
		fmt.Printf("  ** CANNOT keep up with realtime! Need %.1fx speedup **\n", cpuRatio)
	} else {
		fmt.Printf("  Headroom: %.0f%%\n", (1.0-cpuRatio)*100)
	}
	return nil
}
