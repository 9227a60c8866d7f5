// Package config holds the defaults shared by every layer of the engine
// (spec.md §3 "Constants"). Most are plain constants so the hot render
// path never reads them through an interface; SampleRate and BufferSize
// are the two a host can actually override at startup (Load/Apply), so
// they are package variables instead, seeded with the compiled-in
// defaults below.
package config

import (
	"os"

	"gopkg.in/yaml.v3"
)

const (
	// defaultSampleRate is the engine's compiled-in output rate in Hz.
	defaultSampleRate = 44100
	// defaultBufferSize is the compiled-in number of frames rendered per
	// audio callback.
	defaultBufferSize = 256

	// ControlRateDivider is how many audio frames separate two envelope
	// control-rate evaluations (spec.md §4.4).
	ControlRateDivider = 16
	// WavetableSize is the table length in samples; kept in sync with
	// wavetable.Size (both must be powers of two).
	WavetableSize = 2048
	// MaxVoices bounds the voice allocator's fixed pool.
	MaxVoices = 8
	// NumChannels is the number of patch/allocator pairs the engine owns.
	NumChannels = 4
	// MidiQueueSize bounds the wait-free single-consumer event ring.
	MidiQueueSize = 256

	// MinTime prevents division by zero in envelope/glide rate
	// calculations (spec.md §4.4).
	MinTime = 0.001

	// NyquistFraction is the highest filter cutoff the engine will accept,
	// expressed as a fraction of SampleRate (spec.md §4.6).
	NyquistFraction = 0.49
)

// SampleRate and BufferSize start at the compiled-in defaults and are the
// only two values Load/Apply can change. Every package that reads them
// (dsp, voice, engine, audioout) does so directly and on every call
// rather than caching a copy, so Apply must run before any engine state
// is constructed — there is no hot-reload while voices are rendering
// (spec.md §5 "nothing allocates or reconfigures mid-callback").
var (
	SampleRate float64 = defaultSampleRate
	BufferSize int     = defaultBufferSize
)

// Runtime is the subset of Config a host can override without a rebuild,
// loaded from YAML (SPEC_FULL.md §3 "Config").
type Runtime struct {
	SampleRate float64 `yaml:"sample_rate"`
	BufferSize int     `yaml:"buffer_size"`
}

// Default returns the compiled-in runtime configuration.
func Default() Runtime {
	return Runtime{SampleRate: defaultSampleRate, BufferSize: defaultBufferSize}
}

// Load reads a YAML document at path and returns the Runtime it
// describes, starting from Default so an omitted field keeps its
// compiled-in value (grounded on doismellburning-samoyed's
// deviceid.go, which reads its own YAML file with a plain
// os.ReadFile + yaml.Unmarshal).
func Load(path string) (Runtime, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Runtime{}, err
	}
	rt := Default()
	if err := yaml.Unmarshal(data, &rt); err != nil {
		return Runtime{}, err
	}
	return rt, nil
}

// Apply overrides the package's SampleRate/BufferSize from rt. Callers
// (cmd/voog) must call this before constructing an engine.Engine.
func Apply(rt Runtime) {
	SampleRate = rt.SampleRate
	BufferSize = rt.BufferSize
}
