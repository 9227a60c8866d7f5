package dsp

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/voog-synth/voog/internal/config"
	"github.com/voog-synth/voog/internal/patch"
)

func TestEnvelope_AttackReachesOne(t *testing.T) {
	var e Envelope
	p := patch.ADSRParams{Attack: 0.01, Decay: 0.1, Sustain: 0.5, Release: 0.1}
	e.GateOn()

	out := make([]float64, int(config.SampleRate)/2)
	e.Render(p, out)

	max := 0.0
	for _, v := range out {
		if v > max {
			max = v
		}
	}
	assert.InDelta(t, 1.0, max, 0.02)
}

func TestEnvelope_SustainsAtLevel(t *testing.T) {
	var e Envelope
	p := patch.ADSRParams{Attack: 0.001, Decay: 0.001, Sustain: 0.4, Release: 0.2}
	e.GateOn()

	out := make([]float64, int(config.SampleRate)/4)
	e.Render(p, out)

	assert.InDelta(t, 0.4, out[len(out)-1], 0.02)
	assert.Equal(t, EnvSustain, e.State())
}

func TestEnvelope_ReleaseReachesIdle(t *testing.T) {
	var e Envelope
	p := patch.ADSRParams{Attack: 0.001, Decay: 0.001, Sustain: 0.5, Release: 0.05}
	e.GateOn()
	out := make([]float64, int(config.SampleRate)/10)
	e.Render(p, out)

	e.GateOff()
	out2 := make([]float64, int(config.SampleRate))
	e.Render(p, out2)

	assert.True(t, !e.IsActive())
	assert.Equal(t, 0.0, out2[len(out2)-1])
}

func TestEnvelope_GateOffOnIdleStaysIdle(t *testing.T) {
	var e Envelope
	p := patch.ADSRParams{Attack: 0.01, Decay: 0.01, Sustain: 0.5, Release: 0.01}
	e.GateOff()
	assert.False(t, e.IsActive())
	out := make([]float64, 64)
	e.Render(p, out)
	for _, v := range out {
		assert.Equal(t, 0.0, v)
	}
}

func TestEnvelope_RetriggerFromCurrentLevel(t *testing.T) {
	var e Envelope
	p := patch.ADSRParams{Attack: 0.2, Decay: 0.2, Sustain: 0.6, Release: 0.1}
	e.GateOn()
	out := make([]float64, int(config.SampleRate)/20)
	e.Render(p, out)
	levelBeforeRetrigger := e.Level()

	e.GateOn() // retrigger mid-attack
	assert.Equal(t, EnvAttack, e.State())
	// Level should not reset to 0 on retrigger.
	assert.Equal(t, levelBeforeRetrigger, e.Level())
}
