// Package patchio is the patch-file persistence collaborator spec.md §1
// places out of the core's scope: JSON on disk, read/write only, no
// audio-thread code.
package patchio

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/voog-synth/voog/internal/patch"
	"github.com/voog-synth/voog/internal/wavetable"
)

// wireOscillator mirrors patch.OscillatorParams but with a JSON-friendly
// string waveform, matching spec.md §6's "Patch serialization" entity
// schema (the runtime ParamID enumeration is an in-process optimisation;
// the wire format stays the string grammar).
type wireOscillator struct {
	Waveform string  `json:"waveform"`
	Octave   int     `json:"octave"`
	Semitone int     `json:"semitone"`
	Detune   float64 `json:"detune"`
	Level    float64 `json:"level"`
}

type wireNoise struct {
	NoiseType string  `json:"noise_type"`
	Level     float64 `json:"level"`
}

type wireLFO struct {
	Waveform    string  `json:"waveform"`
	Rate        float64 `json:"rate"`
	Depth       float64 `json:"depth"`
	Destination string  `json:"destination"`
	KeySync     bool    `json:"key_sync"`
}

type wireGlide struct {
	Mode string  `json:"mode"`
	Time float64 `json:"time"`
}

type wirePatch struct {
	Name        string             `json:"name"`
	Oscillators [3]wireOscillator  `json:"oscillators"`
	Noise       wireNoise          `json:"noise"`
	Filter      patch.FilterParams `json:"filter"`
	FilterADSR  patch.ADSRParams   `json:"filter_adsr"`
	AmpADSR     patch.ADSRParams   `json:"amp_adsr"`
	LFO         wireLFO            `json:"lfo"`
	Glide       wireGlide          `json:"glide"`
}

func toWire(p patch.Patch) wirePatch {
	w := wirePatch{
		Name:       p.Name,
		Filter:     p.Filter,
		FilterADSR: p.FilterADSR,
		AmpADSR:    p.AmpADSR,
	}
	for i, o := range p.Oscillators {
		w.Oscillators[i] = wireOscillator{
			Waveform: o.Waveform.String(),
			Octave:   o.Octave,
			Semitone: o.Semitone,
			Detune:   o.Detune,
			Level:    o.Level,
		}
	}
	w.Noise = wireNoise{NoiseType: p.Noise.NoiseType.String(), Level: p.Noise.Level}
	w.LFO = wireLFO{
		Waveform:    p.LFO.Waveform.String(),
		Rate:        p.LFO.Rate,
		Depth:       p.LFO.Depth,
		Destination: p.LFO.Destination.String(),
		KeySync:     p.LFO.KeySync,
	}
	w.Glide = wireGlide{Mode: p.Glide.Mode.String(), Time: p.Glide.Time}
	return w
}

func fromWire(w wirePatch) patch.Patch {
	p := patch.Patch{
		Name:       w.Name,
		Filter:     w.Filter,
		FilterADSR: w.FilterADSR,
		AmpADSR:    w.AmpADSR,
	}
	for i, o := range w.Oscillators {
		p.Oscillators[i] = patch.OscillatorParams{
			Waveform: wavetable.ParseWaveform(o.Waveform),
			Octave:   o.Octave,
			Semitone: o.Semitone,
			Detune:   o.Detune,
			Level:    o.Level,
		}
	}
	p.Noise = patch.NoiseParams{NoiseType: patch.ParseNoiseType(w.Noise.NoiseType), Level: w.Noise.Level}
	p.LFO = patch.LFOParams{
		Waveform:    wavetable.ParseWaveform(w.LFO.Waveform),
		Rate:        w.LFO.Rate,
		Depth:       w.LFO.Depth,
		Destination: patch.ParseLFODestination(w.LFO.Destination),
		KeySync:     w.LFO.KeySync,
	}
	p.Glide = patch.GlideParams{Mode: patch.ParseGlideMode(w.Glide.Mode), Time: w.Glide.Time}
	return p
}

// Encode marshals a patch to indented JSON per spec.md §6's serialization
// collaborator.
func Encode(p patch.Patch) ([]byte, error) {
	return json.MarshalIndent(toWire(p), "", "  ")
}

// Decode unmarshals a patch from JSON.
func Decode(data []byte) (patch.Patch, error) {
	var w wirePatch
	if err := json.Unmarshal(data, &w); err != nil {
		return patch.Patch{}, fmt.Errorf("patchio: decode: %w", err)
	}
	return fromWire(w), nil
}

// Manager reads and writes patch files from a directory on disk. The
// audio core never touches this type directly; it is the collaborator
// spec.md §1 describes as out of the core's scope.
type Manager struct {
	dir string
}

// NewManager returns a Manager rooted at dir, creating it if needed.
func NewManager(dir string) (*Manager, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("patchio: mkdir %s: %w", dir, err)
	}
	return &Manager{dir: dir}, nil
}

// Save writes p to "<name>.json" under the manager's directory.
func (m *Manager) Save(p patch.Patch) error {
	data, err := Encode(p)
	if err != nil {
		return err
	}
	path := m.pathFor(p.Name)
	return os.WriteFile(path, data, 0o644)
}

// Load reads the named patch.
func (m *Manager) Load(name string) (patch.Patch, error) {
	data, err := os.ReadFile(m.pathFor(name))
	if err != nil {
		return patch.Patch{}, fmt.Errorf("patchio: load %s: %w", name, err)
	}
	return Decode(data)
}

// ListSaved returns the names of every patch file in the manager's
// directory, in filename order (os.ReadDir sorts its entries).
func (m *Manager) ListSaved() ([]string, error) {
	entries, err := os.ReadDir(m.dir)
	if err != nil {
		return nil, fmt.Errorf("patchio: list %s: %w", m.dir, err)
	}
	var names []string
	for _, e := range entries {
		if e.IsDir() || !strings.HasSuffix(e.Name(), ".json") {
			continue
		}
		names = append(names, strings.TrimSuffix(e.Name(), ".json"))
	}
	return names, nil
}

func (m *Manager) pathFor(name string) string {
	return filepath.Join(m.dir, name+".json")
}
