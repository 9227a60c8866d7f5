package patch

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/voog-synth/voog/internal/wavetable"
)

func TestParsePath_SimplePaths(t *testing.T) {
	cases := map[string]ParamID{
		"filter.cutoff":       ParamFilterCutoff,
		"filter.resonance":    ParamFilterResonance,
		"amp_adsr.release":    ParamAmpADSRRelease,
		"filter_adsr.attack":  ParamFilterADSRAttack,
		"lfo.rate":            ParamLFORate,
		"glide.time":          ParamGlideTime,
		"noise.level":         ParamNoiseLevel,
	}
	for path, want := range cases {
		pp, ok := ParsePath(path)
		assert.True(t, ok, path)
		assert.Equal(t, want, pp.ID, path)
	}
}

func TestParsePath_OscillatorPaths(t *testing.T) {
	pp, ok := ParsePath("osc2.level")
	assert.True(t, ok)
	assert.Equal(t, ParamOscLevel, pp.ID)
	assert.Equal(t, 1, pp.OscIndex)

	pp, ok = ParsePath("osc1.waveform")
	assert.True(t, ok)
	assert.Equal(t, 0, pp.OscIndex)

	_, ok = ParsePath("osc4.level")
	assert.False(t, ok)

	_, ok = ParsePath("osc0.level")
	assert.False(t, ok)
}

func TestParsePath_UnknownPathRejected(t *testing.T) {
	_, ok := ParsePath("bogus.thing")
	assert.False(t, ok)
	_, ok = ParsePath("filter.nonexistent")
	assert.False(t, ok)
}

func TestApply_OscillatorLevel(t *testing.T) {
	p := Init2()
	pp, _ := ParsePath("osc1.level")
	assert.NoError(t, pp.Apply(&p, 0.25))
	assert.Equal(t, 0.25, p.Oscillators[0].Level)
}

func TestApply_WrongTypeReturnsError(t *testing.T) {
	p := Init2()
	pp, _ := ParsePath("osc1.level")
	assert.Error(t, pp.Apply(&p, "not-a-number"))
}

func TestApply_WaveformByName(t *testing.T) {
	p := Init2()
	pp, _ := ParsePath("osc1.waveform")
	assert.NoError(t, pp.Apply(&p, "square"))
	assert.Equal(t, wavetable.Square, p.Oscillators[0].Waveform)
}

func TestApply_GlideModeByName(t *testing.T) {
	p := Init2()
	pp, _ := ParsePath("glide.mode")
	assert.NoError(t, pp.Apply(&p, "legato"))
	assert.Equal(t, GlideLegato, p.Glide.Mode)
}

// Init2 returns a zero-value Patch for param-application tests; named to
// avoid colliding with defaults.go's Init() factory patch while this
// package's tests only need bare structural zero values.
func Init2() Patch { return Patch{} }
