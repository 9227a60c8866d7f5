// Package patch defines the Patch data model (spec.md §3) and the
// dotted-path parameter dispatch table that replaces a single
// string-switch with a static enumeration (spec.md §9).
package patch

import "github.com/voog-synth/voog/internal/wavetable"

// GlideMode selects how a voice's pitch approaches a newly triggered note.
type GlideMode int

const (
	GlideOff GlideMode = iota
	GlideAlways
	GlideLegato
)

func ParseGlideMode(s string) GlideMode {
	switch s {
	case "always":
		return GlideAlways
	case "legato":
		return GlideLegato
	default:
		return GlideOff
	}
}

func (m GlideMode) String() string {
	switch m {
	case GlideAlways:
		return "always"
	case GlideLegato:
		return "legato"
	default:
		return "off"
	}
}

// NoiseType selects the noise generator's spectral shape.
type NoiseType int

const (
	NoiseWhite NoiseType = iota
	NoisePink
)

func ParseNoiseType(s string) NoiseType {
	if s == "pink" {
		return NoisePink
	}
	return NoiseWhite
}

func (n NoiseType) String() string {
	if n == NoisePink {
		return "pink"
	}
	return "white"
}

// LFODestination selects what a patch's LFO modulates.
type LFODestination int

const (
	LFOFilter LFODestination = iota
	LFOPitch
	LFOAmp
)

func ParseLFODestination(s string) LFODestination {
	switch s {
	case "pitch":
		return LFOPitch
	case "amp":
		return LFOAmp
	default:
		return LFOFilter
	}
}

func (d LFODestination) String() string {
	switch d {
	case LFOPitch:
		return "pitch"
	case LFOAmp:
		return "amp"
	default:
		return "filter"
	}
}

// OscillatorParams is one of the three oscillator slots in a Patch.
type OscillatorParams struct {
	Waveform wavetable.Waveform `json:"-"`
	Octave   int                `json:"octave"`
	Semitone int                `json:"semitone"`
	Detune   float64            `json:"detune"`
	Level    float64            `json:"level"`
}

// clamp brings every integer/float field back inside the ranges spec.md §3
// requires, in place. Called once per SetParam and once after JSON decode.
func (o *OscillatorParams) clamp() {
	o.Octave = clampInt(o.Octave, -2, 2)
	o.Semitone = clampInt(o.Semitone, -12, 12)
	o.Detune = clampF(o.Detune, -50, 50)
	o.Level = clampF(o.Level, 0, 1)
}

// NoiseParams configures the shared noise source.
type NoiseParams struct {
	NoiseType NoiseType `json:"-"`
	Level     float64   `json:"level"`
}

func (n *NoiseParams) clamp() { n.Level = clampF(n.Level, 0, 1) }

// FilterParams configures the ladder filter (spec.md §4.6).
type FilterParams struct {
	Cutoff       float64 `json:"cutoff"`
	Resonance    float64 `json:"resonance"`
	EnvAmount    float64 `json:"env_amount"`
	KeyTracking  float64 `json:"key_tracking"`
}

func (f *FilterParams) clamp(sampleRate float64) {
	f.Cutoff = clampF(f.Cutoff, 20, sampleRate*0.49)
	f.Resonance = clampF(f.Resonance, 0, 1)
	f.EnvAmount = clampF(f.EnvAmount, 0, 48)
	f.KeyTracking = clampF(f.KeyTracking, 0, 1)
}

// ADSRParams configures one envelope (filter or amp).
type ADSRParams struct {
	Attack  float64 `json:"attack"`
	Decay   float64 `json:"decay"`
	Sustain float64 `json:"sustain"`
	Release float64 `json:"release"`
}

func (a *ADSRParams) clamp() {
	a.Attack = clampF(a.Attack, 0.001, 1e9)
	a.Decay = clampF(a.Decay, 0.001, 1e9)
	a.Release = clampF(a.Release, 0.001, 1e9)
	a.Sustain = clampF(a.Sustain, 0, 1)
}

// LFOParams configures the single low-frequency oscillator.
type LFOParams struct {
	Waveform    wavetable.Waveform `json:"-"`
	Rate        float64            `json:"rate"`
	Depth       float64            `json:"depth"`
	Destination LFODestination     `json:"-"`
	KeySync     bool               `json:"key_sync"`
}

func (l *LFOParams) clamp() {
	l.Rate = clampF(l.Rate, 0.1, 20)
	l.Depth = clampF(l.Depth, 0, 1)
}

// GlideParams configures portamento.
type GlideParams struct {
	Mode GlideMode `json:"-"`
	Time float64   `json:"time"`
}

func (g *GlideParams) clamp() { g.Time = clampF(g.Time, 0, 1) }

// Patch is the complete, deep-copyable, value-equal synth parameter set
// (spec.md §3).
type Patch struct {
	Name        string
	Oscillators [3]OscillatorParams
	Noise       NoiseParams
	Filter      FilterParams
	FilterADSR  ADSRParams
	AmpADSR     ADSRParams
	LFO         LFOParams
	Glide       GlideParams
}

// Clone returns a deep copy — Patch contains no pointers or slices, so a
// plain value copy already satisfies "deep-copyable, equality by value",
// but Clone documents the intent at call sites that publish a patch to a
// channel.
func (p Patch) Clone() Patch { return p }

// Clamp enforces every field invariant from spec.md §3. Called after
// decoding a patch from the wire (JSON/CC) so the core never has to trust
// an external value.
func (p *Patch) Clamp(sampleRate float64) {
	for i := range p.Oscillators {
		p.Oscillators[i].clamp()
	}
	p.Noise.clamp()
	p.Filter.clamp(sampleRate)
	p.FilterADSR.clamp()
	p.AmpADSR.clamp()
	p.LFO.clamp()
	p.Glide.clamp()
}

func clampInt(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

func clampF(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
