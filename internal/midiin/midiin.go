// Package midiin adapts gomidi messages onto engine.Event, the collaborator
// spec.md §1 calls out as "MIDI device enumeration/parsing" — out of the
// core's scope, feeding it only through the core's public event surface.
package midiin

import (
	"fmt"

	"gitlab.com/gomidi/midi/v2"
	"gitlab.com/gomidi/midi/v2/drivers"
	_ "gitlab.com/gomidi/midi/v2/drivers/rtmididrv"

	"github.com/voog-synth/voog/internal/engine"
)

// DecodeMessage converts one gomidi message into an engine.Event, or
// returns ok=false for message types the core doesn't model (e.g.
// aftertouch, sysex). This is pure and unit-testable without any
// hardware (the rest of the package only wires it to a live port).
func DecodeMessage(msg midi.Message) (engine.Event, bool) {
	var ch, note, vel, cc, val uint8

	if msg.GetNoteOn(&ch, &note, &vel) {
		return engine.Event{
			Kind:     engine.NoteOn,
			Channel:  int(ch),
			Note:     int(note),
			Velocity: int(vel),
		}, true
	}
	if msg.GetNoteOff(&ch, &note, &vel) {
		return engine.Event{
			Kind:    engine.NoteOff,
			Channel: int(ch),
			Note:    int(note),
		}, true
	}
	if msg.GetControlChange(&ch, &cc, &val) {
		return engine.Event{
			Kind:    engine.ControlChange,
			Channel: int(ch),
			Control: int(cc),
			Value:   int(val),
		}, true
	}
	return engine.Event{}, false
}

// Listener owns a live MIDI input port and pushes decoded events onto an
// engine's queue. It never touches audio-thread state directly — Enqueue
// is the only crossing point, and it is wait-free (spec.md §5).
type Listener struct {
	port     drivers.In
	stopFunc func()
}

// Open starts listening on port, translating every decodable message
// into an Enqueue call on eng.
func Open(port drivers.In, eng *engine.Engine) (*Listener, error) {
	l := &Listener{port: port}
	stop, err := midi.ListenTo(port, func(msg midi.Message, _ int32) {
		ev, ok := DecodeMessage(msg)
		if !ok {
			return
		}
		eng.Enqueue(ev)
	})
	if err != nil {
		return nil, fmt.Errorf("midiin: listen: %w", err)
	}
	l.stopFunc = stop
	return l, nil
}

// Close stops the listener and closes the input port.
func (l *Listener) Close() {
	if l.stopFunc != nil {
		l.stopFunc()
	}
	if l.port != nil {
		l.port.Close()
	}
}

// InputPorts lists the available MIDI input ports for a host to present
// in a picker.
func InputPorts() []drivers.In { return midi.GetInPorts() }
