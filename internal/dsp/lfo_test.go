package dsp

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/voog-synth/voog/internal/config"
	"github.com/voog-synth/voog/internal/patch"
	"github.com/voog-synth/voog/internal/wavetable"
)

func TestLFO_ResetPhaseRestartsAtZero(t *testing.T) {
	var l LFO
	l.phase = 0.9
	l.ResetPhase()
	assert.Equal(t, 0.0, l.phase)
}

func TestLFO_RenderStaysInUnitRange(t *testing.T) {
	var l LFO
	p := patch.LFOParams{Waveform: wavetable.Sine, Rate: 5, Depth: 1}
	out := make([]float64, int(config.SampleRate))
	l.Render(wavetable.Default(), p, out)
	for _, v := range out {
		assert.LessOrEqual(t, v, 1.01)
		assert.GreaterOrEqual(t, v, -1.01)
	}
}

func TestPitchSemitones_ScalesWithDepth(t *testing.T) {
	assert.InDelta(t, 12.0, PitchSemitones(1, 1), 1e-9)
	assert.InDelta(t, 6.0, PitchSemitones(1, 0.5), 1e-9)
}

func TestAmpMultiplier_NoDepthIsUnity(t *testing.T) {
	assert.Equal(t, 1.0, AmpMultiplier(1, 0))
	assert.Equal(t, 1.0, AmpMultiplier(-1, 0))
}

func TestAmpMultiplier_FullDepthTroughIsZero(t *testing.T) {
	assert.InDelta(t, 0.0, AmpMultiplier(-1, 1), 1e-9)
}
