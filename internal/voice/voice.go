// Package voice implements the per-voice render pipeline (spec.md §4.8)
// and the fixed-pool allocator that multiplexes notes onto it (spec.md
// §4.9).
package voice

import (
	"math"

	"github.com/voog-synth/voog/internal/dsp"
	"github.com/voog-synth/voog/internal/patch"
	"github.com/voog-synth/voog/internal/wavetable"
)

// noteFreq converts a MIDI note number to a frequency in Hz, A4 (note 69)
// at 440 Hz.
func noteFreq(note int) float64 {
	return 440 * math.Pow(2, float64(note-69)/12)
}

// Voice owns every piece of per-note state: three oscillators, a noise
// generator, filter envelope, amp envelope, filter, LFO, glide, and an
// allocation age counter (spec.md §4.8).
type Voice struct {
	note     int
	velocity int
	age      uint64

	oscillators [3]dsp.Oscillator
	noise       *dsp.Noise
	filterEnv   dsp.Envelope
	ampEnv      dsp.Envelope
	filter      dsp.Filter
	lfo         dsp.LFO
	glide       dsp.Glide

	// scratch buffers, sized once and reused across Render calls so the
	// hot path never allocates (spec.md §5).
	mixBuf     []float64
	lfoBuf     []float64
	cutoffBuf  []float64
	filterEnvBuf []float64
	ampEnvBuf    []float64
	oscBuf       []float64
	pitchModBuf  []float64
}

// NewVoice allocates a voice's scratch buffers for block size n. Voices
// are created once at channel construction and never reallocated
// (spec.md §2 "Lifecycles").
func NewVoice(blockSize int, noiseSeed uint32) *Voice {
	return &Voice{
		noise:        dsp.NewNoise(noiseSeed),
		mixBuf:       make([]float64, blockSize),
		lfoBuf:       make([]float64, blockSize),
		cutoffBuf:    make([]float64, blockSize),
		filterEnvBuf: make([]float64, blockSize),
		ampEnvBuf:    make([]float64, blockSize),
		oscBuf:       make([]float64, blockSize),
		pitchModBuf:  make([]float64, blockSize),
	}
}

// IsActive reports whether the voice's amp envelope is anywhere but idle
// — the allocator's definition of "in use" (spec.md §4.9).
func (v *Voice) IsActive() bool { return v.ampEnv.IsActive() }

// ReleaseLevel exposes the amp envelope's current level so the allocator
// can pick a steal candidate among releasing voices (spec.md §4.9).
func (v *Voice) ReleaseLevel() float64 { return v.ampEnv.Level() }

// Age returns the voice's allocation age stamp.
func (v *Voice) Age() uint64 { return v.age }

// Note returns the MIDI note this voice is currently sounding.
func (v *Voice) Note() int { return v.note }

// Trigger assigns note/velocity to this voice, gates both envelopes, and
// sets up glide/phase reset per retrigger semantics. snapGlide true means
// the glide jumps immediately to the new frequency (Off mode always
// snaps); resetPhase true restarts the oscillator phases and clears the
// filter. The age stamp is updated on every call.
func (v *Voice) Trigger(note, velocity int, age uint64, glide patch.GlideParams, resetPhase, snapGlide bool) {
	v.note = note
	v.velocity = velocity
	v.age = age
	v.filterEnv.GateOn()
	v.ampEnv.GateOn()
	freq := noteFreq(note)
	switch glide.Mode {
	case patch.GlideOff:
		v.glide.SetTarget(freq, true)
	case patch.GlideLegato:
		v.glide.SetTarget(freq, snapGlide)
	default: // GlideAlways
		v.glide.SetTarget(freq, snapGlide)
	}
	if resetPhase {
		for i := range v.oscillators {
			v.oscillators[i].ResetPhase()
		}
		v.filter.Reset()
	}
}

// Release gates both envelopes into their release phase. The note map
// entry is removed by the caller (the allocator), not here — the voice
// keeps sounding through release (spec.md §4.9).
func (v *Voice) Release() {
	v.filterEnv.GateOff()
	v.ampEnv.GateOff()
}

// Render produces n mono samples (n == len(out)) following the pipeline
// in spec.md §4.8, using Patch p for every parameter.
func (v *Voice) Render(bank *wavetable.Bank, p *patch.Patch, out []float64) {
	n := len(out)
	mix := v.mixBuf[:n]
	for i := range mix {
		mix[i] = 0
	}

	// 1. Glide to a per-block frequency.
	freq := v.glide.Advance(p.Glide, n)

	// 2. Filter and amp envelopes at control rate, interpolated to audio rate.
	filterEnv := v.filterEnvBuf[:n]
	ampEnv := v.ampEnvBuf[:n]
	v.filterEnv.Render(p.FilterADSR, filterEnv)
	v.ampEnv.Render(p.AmpADSR, ampEnv)

	// 3. LFO.
	lfoRaw := v.lfoBuf[:n]
	v.lfo.Render(bank, p.LFO, lfoRaw)

	var pitchMod []float64
	if p.LFO.Destination == patch.LFOPitch {
		pm := v.pitchModBuf[:n]
		for i := range pm {
			pm[i] = dsp.PitchSemitones(lfoRaw[i], p.LFO.Depth)
		}
		pitchMod = pm
	}

	// 4. Oscillators.
	oscOut := v.oscBuf[:n]
	for i := range p.Oscillators {
		osc := &p.Oscillators[i]
		if osc.Level == 0 {
			v.oscillators[i].Render(bank, *osc, freq, pitchMod, oscOut)
			continue
		}
		v.oscillators[i].Render(bank, *osc, freq, pitchMod, oscOut)
		for s := range mix {
			mix[s] += oscOut[s]
		}
	}

	// 5. Noise.
	v.noise.Render(p.Noise, mix)

	// 6. Per-sample cutoff buffer.
	cutoffs := v.cutoffBuf[:n]
	keyTrackOffset := float64(v.note-60) * p.Filter.KeyTracking
	var filterLFODepthSemis float64
	for i := 0; i < n; i++ {
		c := p.Filter.Cutoff
		c *= math.Pow(2, (filterEnv[i]*p.Filter.EnvAmount)/12)
		if p.LFO.Destination == patch.LFOFilter {
			filterLFODepthSemis = dsp.FilterOffsetSemitones(lfoRaw[i], p.LFO.Depth)
			c *= math.Pow(2, filterLFODepthSemis/12)
		}
		c *= math.Pow(2, keyTrackOffset/12)
		// The filter clamps the top at SR·NyquistFraction; the floor is here.
		if c < 20 {
			c = 20
		}
		cutoffs[i] = c
	}

	// 7. Filter.
	v.filter.ProcessBlock(mix, cutoffs, p.Filter.Resonance, mix)

	// 8-9. Amp envelope, LFO-amp, velocity.
	velocityGain := float64(v.velocity) / 127
	for i := 0; i < n; i++ {
		g := ampEnv[i] * velocityGain
		if p.LFO.Destination == patch.LFOAmp {
			g *= dsp.AmpMultiplier(lfoRaw[i], p.LFO.Depth)
		}
		out[i] = mix[i] * g
	}
}
