package dsp

import (
	"math"

	"github.com/voog-synth/voog/internal/config"
)

// Filter is a per-voice Huovilainen-style nonlinear four-pole ladder
// low-pass filter (spec.md §4.6). All state is kept in double precision;
// the tap update is the hottest loop in the engine.
type Filter struct {
	s0, s1, s2, s3 float64
}

// Reset sets all four taps back to zero, used when a voice is reclaimed
// for a new note so the previous note's resonance tail doesn't bleed in.
func (f *Filter) Reset() {
	f.s0, f.s1, f.s2, f.s3 = 0, 0, 0, 0
}

// ProcessSample runs one sample of input x through the filter at cutoff
// fc (Hz) and resonance r ∈ [0,1], returning the filtered output.
func (f *Filter) ProcessSample(x, fc, r float64) float64 {
	sr := float64(config.SampleRate)
	if fc > sr*config.NyquistFraction {
		fc = sr * config.NyquistFraction
	}
	if fc < 0 {
		fc = 0
	}
	freq := 2 * sr * math.Tan(math.Pi*fc/sr)
	g := freq / (2 * sr)
	G := g / (1 + g)
	R := 4 * r

	S := G*G*G*f.s0 + G*G*f.s1 + G*f.s2 + f.s3
	u := (x - R*S) / (1 + R*G*G*G*G)

	prev := u
	var lp float64
	taps := [4]*float64{&f.s0, &f.s1, &f.s2, &f.s3}
	for _, s := range taps {
		v := (prev - *s) * G
		lp = v + *s
		*s = lp + v
		prev = lp
	}
	return lp
}

// ProcessBlock filters in through n samples, reading a per-sample cutoff
// from cutoffs and a single block resonance r, writing to out. in and out
// may alias.
func (f *Filter) ProcessBlock(in, cutoffs []float64, r float64, out []float64) {
	for i := range in {
		out[i] = f.ProcessSample(in[i], cutoffs[i], r)
	}
}
