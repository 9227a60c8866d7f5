package tui

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNoteForKey_AIsNote48AtOctave3(t *testing.T) {
	note, ok := NoteForKey("a", 3)
	assert.True(t, ok)
	assert.Equal(t, 48, note)
}

func TestNoteForKey_UnmappedKeyIsRejected(t *testing.T) {
	_, ok := NoteForKey("q", 3)
	assert.False(t, ok)
}

func TestNoteForKey_OctaveShiftsByTwelveSemitones(t *testing.T) {
	low, _ := NoteForKey("a", 2)
	high, _ := NoteForKey("a", 3)
	assert.Equal(t, 12, high-low)
}
