package tui

// KeyMap mirrors the original PC-keyboard-as-piano layout: a row of
// white keys on "a s d f g h j k l" and black keys on "w e t y u o p"
// (original_source/synth/gui/app.py KEY_MAP), expressed as semitone
// offsets from the current octave's C.
var KeyMap = map[string]int{
	"a": 0, "s": 2, "d": 4, "f": 5, "g": 7, "h": 9, "j": 11,
	"k": 12, "l": 14,
	"w": 1, "e": 3, "t": 6, "y": 8, "u": 10, "o": 13, "p": 15,
}

// NoteForKey returns the MIDI note for key at the given octave
// (original_source used `(octave + 1) * 12 + KEY_MAP[key]`, i.e. octave 3
// puts "a" on MIDI note 48, one octave below middle C at 60).
func NoteForKey(key string, octave int) (int, bool) {
	offset, ok := KeyMap[key]
	if !ok {
		return 0, false
	}
	return (octave+1)*12 + offset, true
}
