package dsp

import (
	"math"

	"github.com/voog-synth/voog/internal/config"
	"github.com/voog-synth/voog/internal/patch"
)

// EnvelopeState enumerates the ADSR state machine (spec.md §4.4). This
// mirrors the original_source prototype's _state field, one level removed
// from a bare string.
type EnvelopeState int

const (
	EnvIdle EnvelopeState = iota
	EnvAttack
	EnvDecay
	EnvSustain
	EnvRelease
)

// releaseFloor is the level below which a releasing envelope is considered
// silent and the state machine falls back to idle (spec.md §4.4).
const releaseFloor = 1e-5

// Envelope is a per-voice ADSR generator. It runs at control rate
// (config.ControlRateDivider samples apart) and Render linearly
// interpolates the resulting ladder to audio rate — this is the engine's
// primary CPU-saving measure for slow modulators (spec.md §4.4).
type Envelope struct {
	state EnvelopeState
	level float64
}

// GateOn starts (or restarts) attack from the envelope's current level,
// so a retrigger never clicks.
func (e *Envelope) GateOn() { e.state = EnvAttack }

// GateOff moves a non-idle envelope into release.
func (e *Envelope) GateOff() {
	if e.state != EnvIdle {
		e.state = EnvRelease
	}
}

// IsActive reports whether the envelope is anywhere but idle; the voice
// allocator uses this on amp envelopes to decide whether a voice can be
// reclaimed (spec.md §4.4, §4.9).
func (e *Envelope) IsActive() bool { return e.state != EnvIdle }

// Level returns the envelope's current control-rate value.
func (e *Envelope) Level() float64 { return e.level }

// State returns the envelope's current state machine position, letting
// callers like the voice allocator distinguish a releasing voice from an
// idle or sustaining one (spec.md §4.9).
func (e *Envelope) State() EnvelopeState { return e.state }

// advance steps the state machine by one control-rate tick.
func (e *Envelope) advance(p patch.ADSRParams) {
	switch e.state {
	case EnvIdle:
		e.level = 0
	case EnvAttack:
		rate := 1.0 / (math.Max(p.Attack, config.MinTime) * config.SampleRate)
		e.level += rate * config.ControlRateDivider
		if e.level >= 1.0 {
			e.level = 1.0
			e.state = EnvDecay
		}
	case EnvDecay:
		rate := (1.0 - p.Sustain) / (math.Max(p.Decay, config.MinTime) * config.SampleRate)
		e.level -= rate * config.ControlRateDivider
		if e.level <= p.Sustain {
			e.level = p.Sustain
			e.state = EnvSustain
		}
	case EnvSustain:
		e.level = p.Sustain
	case EnvRelease:
		rate := e.level * (1.0 / (math.Max(p.Release, config.MinTime) * config.SampleRate))
		e.level -= rate * config.ControlRateDivider
		if e.level < releaseFloor {
			e.level = 0
			e.state = EnvIdle
		}
	}
}

// Render advances the envelope at control rate and writes n linearly
// interpolated audio-rate samples into out.
func (e *Envelope) Render(p patch.ADSRParams, out []float64) {
	n := len(out)
	prev := e.level
	i := 0
	for i < n {
		e.advance(p)
		span := config.ControlRateDivider
		if i+span > n {
			span = n - i
		}
		next := e.level
		for j := 0; j < span; j++ {
			t := float64(j) / float64(config.ControlRateDivider)
			out[i+j] = prev + (next-prev)*t
		}
		prev = next
		i += span
	}
}
