package voice

import (
	"github.com/voog-synth/voog/internal/config"
	"github.com/voog-synth/voog/internal/dsp"
	"github.com/voog-synth/voog/internal/patch"
	"github.com/voog-synth/voog/internal/wavetable"
)

// Allocator owns a fixed pool of config.MaxVoices voices and a
// note-to-voice index, implementing the retrigger/steal policy of
// spec.md §4.9. Voices are created once at construction and never
// reallocated.
type Allocator struct {
	voices   [config.MaxVoices]*Voice
	noteMap  map[int]int // note -> voice index
	age      uint64
	blockBuf []float64
}

// NewAllocator builds an allocator whose voices render blockSize frames
// at a time.
func NewAllocator(blockSize int) *Allocator {
	a := &Allocator{
		noteMap:  make(map[int]int, config.MaxVoices),
		blockBuf: make([]float64, blockSize),
	}
	for i := range a.voices {
		a.voices[i] = NewVoice(blockSize, noiseSeedFor(i))
	}
	return a
}

func noiseSeedFor(i int) uint32 { return uint32(i)*2654435761 + 1 }

// NoteOn triggers a note, retriggering an already-sounding voice for the
// same note or allocating/stealing a voice for a new one (spec.md §4.9).
// A velocity of 0 is treated as note_off per standard MIDI convention
// (spec.md §6).
func (a *Allocator) NoteOn(note, velocity int, glide patch.GlideParams) {
	if velocity == 0 {
		a.NoteOff(note)
		return
	}
	if idx, ok := a.noteMap[note]; ok {
		a.age++
		v := a.voices[idx]
		// Legato keeps the oscillator phases and lets glide continue in
		// flight; any other mode resets phases and snaps glide.
		reset := glide.Mode != patch.GlideLegato
		v.Trigger(note, velocity, a.age, glide, reset, reset)
		return
	}

	idx := a.pickVoice()
	a.age++
	v := a.voices[idx]
	if old, ok := reverseLookup(a.noteMap, idx); ok {
		delete(a.noteMap, old)
	}
	// Always mode slews a newly started voice from its previous frequency;
	// every other mode snaps.
	v.Trigger(note, velocity, a.age, glide, true, glide.Mode != patch.GlideAlways)
	a.noteMap[note] = idx
}

// pickVoice returns a free voice index if one exists, otherwise steals
// one: first preference to a releasing voice with the lowest level, then
// the oldest voice by age; ties broken by lowest index (spec.md §4.9).
func (a *Allocator) pickVoice() int {
	for i, v := range a.voices {
		if !v.IsActive() {
			return i
		}
	}

	bestReleasing := -1
	bestReleasingLevel := 0.0
	for i, v := range a.voices {
		if v.ampEnv.State() == dsp.EnvRelease {
			if bestReleasing == -1 || v.ReleaseLevel() < bestReleasingLevel {
				bestReleasing = i
				bestReleasingLevel = v.ReleaseLevel()
			}
		}
	}
	if bestReleasing != -1 {
		return bestReleasing
	}

	oldest := 0
	for i, v := range a.voices {
		if v.Age() < a.voices[oldest].Age() {
			oldest = i
		}
	}
	return oldest
}

// NoteOff gates a mapped note's voice into release and removes the note
// map entry — the voice keeps sounding through release, but a subsequent
// note_on for the same number is treated as a fresh allocation, not a
// retrigger (spec.md §4.9).
func (a *Allocator) NoteOff(note int) {
	idx, ok := a.noteMap[note]
	if !ok {
		return
	}
	a.voices[idx].Release()
	delete(a.noteMap, note)
}

// AllNotesOff releases every currently-mapped voice.
func (a *Allocator) AllNotesOff() {
	for note := range a.noteMap {
		a.voices[a.noteMap[note]].Release()
	}
	a.noteMap = make(map[int]int, config.MaxVoices)
}

// ActiveVoiceCount returns the number of voices with a non-idle amp
// envelope (spec.md §4.9).
func (a *Allocator) ActiveVoiceCount() int {
	n := 0
	for _, v := range a.voices {
		if v.IsActive() {
			n++
		}
	}
	return n
}

// Render sums every active voice's output into out (len(out) frames).
func (a *Allocator) Render(bank *wavetable.Bank, p *patch.Patch, out []float64) {
	for i := range out {
		out[i] = 0
	}
	buf := a.blockBuf[:len(out)]
	for _, v := range a.voices {
		if !v.IsActive() {
			continue
		}
		v.Render(bank, p, buf)
		for i := range out {
			out[i] += buf[i]
		}
	}
}

func reverseLookup(m map[int]int, idx int) (int, bool) {
	for note, i := range m {
		if i == idx {
			return note, true
		}
	}
	return 0, false
}
