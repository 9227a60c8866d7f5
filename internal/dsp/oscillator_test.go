package dsp

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/voog-synth/voog/internal/config"
	"github.com/voog-synth/voog/internal/patch"
	"github.com/voog-synth/voog/internal/wavetable"
)

func TestOscillator_SilentLevelDoesNotModulatePhase(t *testing.T) {
	var o Oscillator
	o.phase = 0.3
	p := patch.OscillatorParams{Waveform: wavetable.Sine, Level: 0}
	out := make([]float64, 64)
	o.Render(wavetable.Default(), p, 440, nil, out)
	for _, v := range out {
		assert.Equal(t, 0.0, v)
	}
	assert.Equal(t, 0.3, o.phase)
}

func TestOscillator_ResetPhaseRestartsAtZero(t *testing.T) {
	var o Oscillator
	o.phase = 0.7
	o.ResetPhase()
	assert.Equal(t, 0.0, o.phase)
}

func TestOscillator_FundamentalFrequencyMatchesInput(t *testing.T) {
	var o Oscillator
	p := patch.OscillatorParams{Waveform: wavetable.Sine, Level: 1}
	n := int(config.SampleRate) / 4
	out := make([]float64, n)
	o.Render(wavetable.Default(), p, 440, nil, out)

	peakBin, mag := dominantFrequency(out, int(config.SampleRate), 400, 480)
	_ = mag
	assert.InDelta(t, 440, peakBin, 5)
}

// dominantFrequency does a naive Goertzel-style scan for the loudest bin
// over a small range, avoiding a full FFT dependency for a single test.
func dominantFrequency(samples []float64, sampleRate int, lo, hi float64) (float64, float64) {
	best := 0.0
	bestMag := -1.0
	for f := lo; f < hi; f += 1 {
		mag := goertzelMagnitude(samples, sampleRate, f)
		if mag > bestMag {
			bestMag = mag
			best = f
		}
	}
	return best, bestMag
}

func goertzelMagnitude(samples []float64, sampleRate int, freq float64) float64 {
	n := len(samples)
	w := 2 * math.Pi * freq / float64(sampleRate)
	cosine := math.Cos(w)
	coeff := 2 * cosine
	var s0, s1, s2 float64
	for _, x := range samples {
		s0 = x + coeff*s1 - s2
		s2 = s1
		s1 = s0
	}
	real := s1 - s2*cosine
	imag := s2 * math.Sin(w)
	return math.Sqrt(real*real + imag*imag)
}
