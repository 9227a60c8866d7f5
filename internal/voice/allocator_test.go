package voice

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"pgregory.net/rapid"

	"github.com/voog-synth/voog/internal/config"
	"github.com/voog-synth/voog/internal/patch"
	"github.com/voog-synth/voog/internal/wavetable"
)

func testPatch() *patch.Patch {
	p := &patch.Patch{}
	p.Oscillators[0] = patch.OscillatorParams{Waveform: wavetable.Saw, Level: 0.8}
	p.Filter = patch.FilterParams{Cutoff: 8000, Resonance: 0.1}
	p.AmpADSR = patch.ADSRParams{Attack: 0.01, Decay: 0.1, Sustain: 0.7, Release: 0.05}
	p.FilterADSR = patch.ADSRParams{Attack: 0.01, Decay: 0.1, Sustain: 0.7, Release: 0.05}
	return p
}

func TestAllocator_NoteOnIncreasesActiveCount(t *testing.T) {
	a := NewAllocator(config.BufferSize)
	assert.Equal(t, 0, a.ActiveVoiceCount())
	a.NoteOn(60, 100, patch.GlideParams{Mode: patch.GlideOff})
	assert.Equal(t, 1, a.ActiveVoiceCount())
}

func TestAllocator_NoteOffReleasesButStaysActiveThroughRelease(t *testing.T) {
	a := NewAllocator(config.BufferSize)
	a.NoteOn(60, 100, patch.GlideParams{})
	a.NoteOff(60)
	// Voice is releasing, not yet idle.
	assert.Equal(t, 1, a.ActiveVoiceCount())
}

func TestAllocator_ActiveVoiceCountNeverExceedsMax(t *testing.T) {
	a := NewAllocator(config.BufferSize)
	glide := patch.GlideParams{Mode: patch.GlideOff}
	rapid.Check(t, func(t *rapid.T) {
		note := rapid.IntRange(0, 127).Draw(t, "note")
		if rapid.Bool().Draw(t, "on") {
			a.NoteOn(note, 100, glide)
		} else {
			a.NoteOff(note)
		}
		assert.LessOrEqual(t, a.ActiveVoiceCount(), config.MaxVoices)
	})
}

func TestAllocator_StealsOldestWhenAllVoicesBusy(t *testing.T) {
	a := NewAllocator(config.BufferSize)
	glide := patch.GlideParams{Mode: patch.GlideOff}
	for i := 0; i < config.MaxVoices; i++ {
		a.NoteOn(40+i, 100, glide)
	}
	assert.Equal(t, config.MaxVoices, a.ActiveVoiceCount())

	// One more note_on must steal rather than exceed the pool.
	a.NoteOn(100, 100, glide)
	assert.Equal(t, config.MaxVoices, a.ActiveVoiceCount())
	// Voice 0 held the oldest note (40), so it is the one taken.
	assert.Equal(t, 0, a.noteMap[100])
	assert.NotContains(t, a.noteMap, 40)
}

func TestAllocator_RetriggerSameNoteReusesVoice(t *testing.T) {
	a := NewAllocator(config.BufferSize)
	glide := patch.GlideParams{Mode: patch.GlideOff}
	a.NoteOn(60, 100, glide)
	idx := a.noteMap[60]
	a.NoteOn(60, 80, glide)
	assert.Equal(t, idx, a.noteMap[60])
}

func TestAllocator_AllNotesOffClearsMapButVoicesRelease(t *testing.T) {
	a := NewAllocator(config.BufferSize)
	glide := patch.GlideParams{Mode: patch.GlideOff}
	a.NoteOn(60, 100, glide)
	a.NoteOn(64, 100, glide)
	a.AllNotesOff()
	assert.Len(t, a.noteMap, 0)
	assert.Equal(t, 2, a.ActiveVoiceCount()) // still releasing
}

func TestAllocator_RenderProducesNonZeroOutput(t *testing.T) {
	a := NewAllocator(config.BufferSize)
	a.NoteOn(69, 100, patch.GlideParams{})
	bank := wavetable.Default()
	p := testPatch()
	out := make([]float64, config.BufferSize)
	a.Render(bank, p, out)

	nonZero := false
	for _, v := range out {
		if v != 0 {
			nonZero = true
			break
		}
	}
	assert.True(t, nonZero)
}

func TestAllocator_SilenceAfterReleaseCompletes(t *testing.T) {
	a := NewAllocator(config.BufferSize)
	p := testPatch()
	p.AmpADSR.Release = 0.01
	bank := wavetable.Default()

	a.NoteOn(60, 100, patch.GlideParams{})
	out := make([]float64, config.BufferSize)
	a.Render(bank, p, out) // attack/decay/sustain settle

	a.NoteOff(60)
	// Render enough blocks to exhaust release + a margin.
	blocks := int(config.SampleRate)/config.BufferSize + 10
	for i := 0; i < blocks; i++ {
		a.Render(bank, p, out)
	}
	assert.Equal(t, 0, a.ActiveVoiceCount())
	for _, v := range out {
		assert.Equal(t, 0.0, v)
	}
}
