// Package engine implements the channel and audio-engine layer of
// spec.md §4.10-§4.11: patch/allocator ownership, event queue draining,
// CC-to-param dispatch, master gain and soft clipping.
package engine

import (
	"math"
	"sync/atomic"

	"github.com/charmbracelet/log"

	"github.com/voog-synth/voog/internal/config"
	"github.com/voog-synth/voog/internal/patch"
	"github.com/voog-synth/voog/internal/wavetable"
)

// Diagnostics holds the counters spec.md §7 requires to be readable from
// outside the audio thread. All fields are accessed with atomics so a UI
// goroutine can poll them without locking.
type Diagnostics struct {
	DroppedEvents   atomic.Uint64
	UnknownParams   atomic.Uint64
	MalformedEvents atomic.Uint64
}

// Engine owns config.NumChannels channels, the event queue, master gain
// and the peak-level readout (spec.md §4.11).
type Engine struct {
	channels     [config.NumChannels]*Channel
	events       *EventRing
	ccMap        map[int]CCMapping
	masterVolume atomic.Uint64 // math.Float64bits, read/written with relaxed semantics
	peak         atomic.Uint64 // math.Float64bits
	diag         Diagnostics
	log          *log.Logger

	mixBuf []float64
}

// New builds an engine with blockSize-frame channels, each starting from
// initialPatch, a queue of config.MidiQueueSize capacity, and the
// canonical CC map.
func New(blockSize int, initialPatch patch.Patch, logger *log.Logger) *Engine {
	if logger == nil {
		logger = log.Default()
	}
	e := &Engine{
		events: NewEventRing(config.MidiQueueSize),
		ccMap:  DefaultCCMap(),
		log:    logger,
		mixBuf: make([]float64, blockSize),
	}
	e.masterVolume.Store(math.Float64bits(1.0))
	for i := range e.channels {
		e.channels[i] = NewChannel(blockSize, initialPatch)
	}
	return e
}

// SetCCMap replaces the CC-to-param table (SPEC_FULL.md §6, host-loaded
// from YAML).
func (e *Engine) SetCCMap(m map[int]CCMapping) { e.ccMap = m }

// Enqueue posts an event from a producer thread. Returns false if the
// queue was full, in which case the dropped counter has already been
// incremented by the ring (spec.md §5, §7).
func (e *Engine) Enqueue(ev Event) bool {
	if !ev.Valid(config.NumChannels) {
		e.diag.MalformedEvents.Add(1)
		return false
	}
	ok := e.events.Push(ev)
	if !ok {
		e.diag.DroppedEvents.Add(1)
	}
	return ok
}

// SetMasterVolume clamps and stores the master gain.
func (e *Engine) SetMasterVolume(v float64) {
	if v < 0 {
		v = 0
	}
	if v > 1 {
		v = 1
	}
	e.masterVolume.Store(math.Float64bits(v))
}

// MasterVolume returns the current master gain.
func (e *Engine) MasterVolume() float64 {
	return math.Float64frombits(e.masterVolume.Load())
}

// Peak returns the last block's peak |sample| for UI readout.
func (e *Engine) Peak() float64 { return math.Float64frombits(e.peak.Load()) }

// Diagnostics exposes the engine's counters.
func (e *Engine) Diagnostics() *Diagnostics { return &e.diag }

// Dropped returns the number of events dropped for a full queue.
func (e *Engine) Dropped() uint64 { return e.events.Dropped() }

// dispatch applies one drained event to the appropriate channel
// (spec.md §4.11 step 1).
func (e *Engine) dispatch(ev Event) {
	ch := e.channels[ev.Channel]
	switch ev.Kind {
	case NoteOn:
		ch.NoteOn(ev.Note, ev.Velocity)
	case NoteOff:
		ch.NoteOff(ev.Note)
	case AllNotesOff:
		ch.AllNotesOff()
	case SetParam:
		if !ch.SetParam(ev.ParamPath, ev.ParamValue) {
			// Counter only: dispatch runs on the audio callback thread
			// (Render -> Drain -> dispatch), so it must never format or
			// write a log line itself (spec.md §5, §7). WatchDiagnostics
			// logs the growth out-of-band.
			e.diag.UnknownParams.Add(1)
		}
	case SetPatch:
		if ev.Patch != nil {
			ch.SetPatch(*ev.Patch)
		}
	case ControlChange:
		e.dispatchCC(ch, ev.Control, ev.Value)
	}
}

// dispatchCC maps a raw MIDI CC onto a channel (spec.md §6 "CC map
// (canonical)"). CCs 120 and 123 are hard-coded to all_notes_off ahead of
// the table; everything else outside the table is ignored.
func (e *Engine) dispatchCC(ch *Channel, control, value int) {
	if control == 120 || control == 123 {
		ch.AllNotesOff()
		return
	}
	m, ok := e.ccMap[control]
	if !ok {
		return
	}
	norm := float64(value) / 127
	scaled := m.Min + norm*(m.Max-m.Min)
	if !ch.SetParam(m.Path, scaled) {
		e.diag.UnknownParams.Add(1)
	}
}

// Render produces n samples of the engine's master output (spec.md §4.11
// steps 1-4): drain events, sum channels, apply master gain and tanh
// soft-clip, update the peak readout.
func (e *Engine) Render(out []float64) {
	n := len(out)
	e.events.Drain(e.dispatch)

	for i := range out {
		out[i] = 0
	}
	buf := e.mixBuf[:n]
	for _, ch := range e.channels {
		ch.Render(buf)
		for i := range out {
			out[i] += buf[i]
		}
	}

	vol := e.MasterVolume()
	var peak float64
	for i := range out {
		y := wavetable.FastTanh(out[i] * vol)
		out[i] = y
		if a := math.Abs(y); a > peak {
			peak = a
		}
	}
	e.peak.Store(math.Float64bits(peak))
}

// Start is a no-op placeholder for symmetry with Stop: the engine itself
// holds no device handle, only the audio backend does (spec.md §4.11,
// §6 "Audio device adapter").
func (e *Engine) Start() {}

// Stop sends all_notes_off to every channel, matching spec.md §4.11's "on
// stop, all channels receive all_notes_off": mapped voices go into their
// release phase rather than cutting off.
func (e *Engine) Stop() {
	for _, ch := range e.channels {
		ch.AllNotesOff()
	}
}

// ActiveVoiceCount sums active voices across every channel, used by the
// TUI status panel (SPEC_FULL.md §4.14).
func (e *Engine) ActiveVoiceCount() int {
	n := 0
	for _, ch := range e.channels {
		n += ch.ActiveVoiceCount()
	}
	return n
}
