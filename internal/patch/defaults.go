package patch

import "github.com/voog-synth/voog/internal/wavetable"

// Init returns the flat, audible-but-neutral starting patch: one
// sawtooth oscillator, no filter envelope modulation, a moderate amp
// envelope, filter wide open. original_source's default-patch bank
// (synth/patch/default_patches.py) was not part of the retrieved
// snapshot, so these values are authored here rather than ported; see
// the project's design notes for the full factory bank.
func Init() Patch {
	p := Patch{Name: "init"}
	p.Oscillators[0] = OscillatorParams{Waveform: wavetable.Saw, Level: 0.8}
	p.Oscillators[1] = OscillatorParams{Waveform: wavetable.Sine, Level: 0}
	p.Oscillators[2] = OscillatorParams{Waveform: wavetable.Sine, Level: 0}
	p.Filter = FilterParams{Cutoff: 8000, Resonance: 0.1, EnvAmount: 0, KeyTracking: 0}
	p.FilterADSR = ADSRParams{Attack: 0.01, Decay: 0.2, Sustain: 0.6, Release: 0.3}
	p.AmpADSR = ADSRParams{Attack: 0.005, Decay: 0.1, Sustain: 0.8, Release: 0.2}
	p.LFO = LFOParams{Waveform: wavetable.Sine, Rate: 5, Depth: 0, Destination: LFOFilter}
	p.Glide = GlideParams{Mode: GlideOff, Time: 0.05}
	return p
}

// Lead is a bright, detuned two-oscillator patch with filter-envelope
// bite, meant for single-note melodic lines.
func Lead() Patch {
	p := Init()
	p.Name = "lead"
	p.Oscillators[0] = OscillatorParams{Waveform: wavetable.Saw, Level: 0.7}
	p.Oscillators[1] = OscillatorParams{Waveform: wavetable.Saw, Detune: 12, Level: 0.5}
	p.Filter = FilterParams{Cutoff: 1200, Resonance: 0.35, EnvAmount: 30, KeyTracking: 0.5}
	p.FilterADSR = ADSRParams{Attack: 0.002, Decay: 0.15, Sustain: 0.2, Release: 0.15}
	p.AmpADSR = ADSRParams{Attack: 0.002, Decay: 0.05, Sustain: 0.9, Release: 0.1}
	return p
}

// Bass is a sub-heavy single-oscillator patch with a snappy filter
// envelope and fast amp decay.
func Bass() Patch {
	p := Init()
	p.Name = "bass"
	p.Oscillators[0] = OscillatorParams{Waveform: wavetable.Square, Level: 0.9}
	p.Filter = FilterParams{Cutoff: 400, Resonance: 0.5, EnvAmount: 20, KeyTracking: 0.3}
	p.FilterADSR = ADSRParams{Attack: 0.001, Decay: 0.1, Sustain: 0.1, Release: 0.08}
	p.AmpADSR = ADSRParams{Attack: 0.001, Decay: 0.15, Sustain: 0.5, Release: 0.1}
	p.Glide = GlideParams{Mode: GlideLegato, Time: 0.03}
	return p
}

// Pad is a slow, wide triangle/sine blend with a long amp envelope and
// a gentle LFO on the filter.
func Pad() Patch {
	p := Init()
	p.Name = "pad"
	p.Oscillators[0] = OscillatorParams{Waveform: wavetable.Triangle, Level: 0.6}
	p.Oscillators[1] = OscillatorParams{Waveform: wavetable.Sine, Detune: -8, Level: 0.4}
	p.Filter = FilterParams{Cutoff: 2500, Resonance: 0.15, EnvAmount: 10, KeyTracking: 0.2}
	p.FilterADSR = ADSRParams{Attack: 0.8, Decay: 1.2, Sustain: 0.7, Release: 1.5}
	p.AmpADSR = ADSRParams{Attack: 0.6, Decay: 0.5, Sustain: 0.9, Release: 2.0}
	p.LFO = LFOParams{Waveform: wavetable.Sine, Rate: 0.4, Depth: 0.3, Destination: LFOFilter}
	return p
}

// Bank returns the factory patch bank, keyed by name.
func Bank() map[string]Patch {
	return map[string]Patch{
		"init": Init(),
		"lead": Lead(),
		"bass": Bass(),
		"pad":  Pad(),
	}
}
