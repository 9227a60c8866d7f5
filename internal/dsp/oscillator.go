// Package dsp holds the per-voice signal generators and processors:
// oscillator, noise, ADSR envelope, LFO, ladder filter and glide
// (spec.md §4.2-§4.7). Every type here is plain per-voice state; the
// shared, read-only tables it renders from live in package wavetable.
package dsp

import (
	"math"

	"github.com/voog-synth/voog/internal/config"
	"github.com/voog-synth/voog/internal/patch"
	"github.com/voog-synth/voog/internal/wavetable"
)

// Oscillator is a phase accumulator reading from the shared wavetable bank.
// Its only mutable state is the running phase, so three of these (one per
// patch.OscillatorParams slot) are cheap to carry per voice.
type Oscillator struct {
	phase float64
}

// ResetPhase restarts the oscillator at phase 0, used when a voice is
// newly allocated to a note or retriggered outside legato mode.
func (o *Oscillator) ResetPhase() { o.phase = 0 }

// Render fills out with n samples at baseFreq (already key-tracked and
// glided by the caller), applying p's octave/semitone/detune/level and an
// optional per-sample pitchMod in semitones (nil for none, e.g. the LFO
// pitch destination). A zero level returns a zero buffer without
// modulating phase at all (spec.md §4.2 "must return a zero buffer
// without modulating state (fast-path)"): the phase a note resumes at
// once its level comes back up is whatever it was when it went silent,
// not one that kept running underneath.
func (o *Oscillator) Render(bank *wavetable.Bank, p patch.OscillatorParams, baseFreq float64, pitchMod []float64, out []float64) {
	n := len(out)
	if p.Level == 0 {
		for i := 0; i < n; i++ {
			out[i] = 0
		}
		return
	}

	transpose := semitoneRatio(float64(p.Octave*12 + p.Semitone))
	detune := centsRatio(p.Detune)
	for i := 0; i < n; i++ {
		freq := baseFreq * transpose * detune
		if pitchMod != nil {
			freq *= semitoneRatio(pitchMod[i])
		}
		step := freq / config.SampleRate
		out[i] = bank.Lookup(p.Waveform, o.phase) * p.Level
		o.phase += step
		o.phase -= math.Floor(o.phase)
	}
}

// semitoneRatio converts a semitone offset to a frequency ratio.
func semitoneRatio(semitones float64) float64 {
	return math.Pow(2, semitones/12)
}

// centsRatio converts a detune value expressed in cents to a frequency
// ratio (spec.md §4.2 treats OscillatorParams.Detune as cents, ±50).
func centsRatio(cents float64) float64 {
	return math.Pow(2, cents/1200)
}
