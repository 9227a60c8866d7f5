package dsp

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"pgregory.net/rapid"

	"github.com/voog-synth/voog/internal/config"
)

func TestFilter_DCInputSettlesNearInput(t *testing.T) {
	var f Filter
	var y float64
	for i := 0; i < 5000; i++ {
		y = f.ProcessSample(1.0, 1000, 0)
	}
	assert.InDelta(t, 1.0, y, 0.05)
}

func TestFilter_ResetClearsState(t *testing.T) {
	var f Filter
	for i := 0; i < 100; i++ {
		f.ProcessSample(1.0, 1000, 0.8)
	}
	f.Reset()
	// Immediately after reset, a zero input must produce zero output.
	y := f.ProcessSample(0, 1000, 0.8)
	assert.Equal(t, 0.0, y)
}

func TestFilter_OutputIsAlwaysFinite(t *testing.T) {
	var f Filter
	rapid.Check(t, func(t *rapid.T) {
		x := rapid.Float64Range(-1, 1).Draw(t, "x")
		fc := rapid.Float64Range(20, config.SampleRate*config.NyquistFraction).Draw(t, "fc")
		r := rapid.Float64Range(0, 1).Draw(t, "r")
		y := f.ProcessSample(x, fc, r)
		assert.False(t, math.IsNaN(y) || math.IsInf(y, 0))
	})
}

func TestFilter_CutoffAboveNyquistIsClamped(t *testing.T) {
	var f1, f2 Filter
	y1 := f1.ProcessSample(1.0, config.SampleRate, 0)
	y2 := f2.ProcessSample(1.0, config.SampleRate*config.NyquistFraction, 0)
	assert.InDelta(t, y2, y1, 1e-9)
}
