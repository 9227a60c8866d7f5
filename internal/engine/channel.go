package engine

import (
	"github.com/voog-synth/voog/internal/config"
	"github.com/voog-synth/voog/internal/patch"
	"github.com/voog-synth/voog/internal/voice"
	"github.com/voog-synth/voog/internal/wavetable"
)

// Channel holds one Patch and its voice allocator (spec.md §4.10).
type Channel struct {
	patch     patch.Patch
	allocator *voice.Allocator
	bank      *wavetable.Bank
}

// NewChannel builds a channel whose allocator renders blockSize frames
// per call, starting from an initial patch (deep-copied).
func NewChannel(blockSize int, initial patch.Patch) *Channel {
	c := &Channel{
		patch:     initial.Clone(),
		allocator: voice.NewAllocator(blockSize),
		bank:      wavetable.Default(),
	}
	c.patch.Clamp(config.SampleRate)
	return c
}

// SetPatch replaces the channel's patch wholesale. Voices in flight pick
// up the new parameters on their next block — nothing needs to be
// re-applied to them directly (spec.md §4.10).
func (c *Channel) SetPatch(p patch.Patch) {
	p = p.Clone()
	p.Clamp(config.SampleRate)
	c.patch = p
}

// SetParam applies a single dotted-path parameter change (spec.md §6, §9
// via patch.ParsePath). Returns false if path is outside the grammar or
// the value has the wrong type, so the engine can log and drop it
// (spec.md §7).
func (c *Channel) SetParam(path string, value interface{}) bool {
	pp, ok := patch.ParsePath(path)
	if !ok {
		return false
	}
	if err := pp.Apply(&c.patch, value); err != nil {
		return false
	}
	c.patch.Clamp(config.SampleRate)
	return true
}

// NoteOn forwards to the allocator.
func (c *Channel) NoteOn(note, velocity int) {
	c.allocator.NoteOn(note, velocity, c.patch.Glide)
}

// NoteOff forwards to the allocator.
func (c *Channel) NoteOff(note int) { c.allocator.NoteOff(note) }

// AllNotesOff forwards to the allocator.
func (c *Channel) AllNotesOff() { c.allocator.AllNotesOff() }

// ActiveVoiceCount forwards to the allocator.
func (c *Channel) ActiveVoiceCount() int { return c.allocator.ActiveVoiceCount() }

// Render sums the channel's active voices into out.
func (c *Channel) Render(out []float64) {
	c.allocator.Render(c.bank, &c.patch, out)
}
