package dsp

import (
	"math"

	"github.com/voog-synth/voog/internal/config"
	"github.com/voog-synth/voog/internal/patch"
	"github.com/voog-synth/voog/internal/wavetable"
)

// LFO is a free-running or key-synced modulator reading the same
// wavetable bank as the audio oscillators (spec.md §4.5). Interpretation
// of its raw [-1,1] output belongs to the caller: a voice scales it by
// depth and routes it to pitch, filter or amp depending on
// patch.LFOParams.Destination.
type LFO struct {
	phase float64
}

// ResetPhase restarts the LFO at phase 0. Voices do not call it on
// note_on, so the LFO runs free whatever patch.LFOParams.KeySync holds.
func (l *LFO) ResetPhase() { l.phase = 0 }

// Render fills out with n raw (unscaled) samples at p.Rate Hz.
func (l *LFO) Render(bank *wavetable.Bank, p patch.LFOParams, out []float64) {
	step := p.Rate / config.SampleRate
	for i := range out {
		out[i] = bank.Lookup(p.Waveform, l.phase)
		l.phase += step
		l.phase -= math.Floor(l.phase)
	}
}

// PitchSemitones converts a raw LFO sample into a pitch offset in
// semitones for the LFOPitch destination (depth · 12 maximum).
func PitchSemitones(raw, depth float64) float64 { return raw * depth * 12 }

// AmpMultiplier converts a raw LFO sample into a tremolo multiplier for
// the LFOAmp destination: 1 − depth·(0.5 − 0.5·lfo).
func AmpMultiplier(raw, depth float64) float64 { return 1 - depth*(0.5-0.5*raw) }

// FilterOffsetSemitones converts a raw LFO sample into a filter cutoff
// offset in semitones for the LFOFilter destination: depth · 24 maximum
// (two octaves), twice the pitch destination's range (spec.md §9 open
// question).
func FilterOffsetSemitones(raw, depth float64) float64 { return raw * depth * 24 }
