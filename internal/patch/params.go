package patch

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/voog-synth/voog/internal/wavetable"
)

func wf(s string) wavetable.Waveform { return wavetable.ParseWaveform(s) }

// ParamID is the static enumeration the dotted-path grammar of spec.md §6
// resolves to. spec.md §9 flags the naive design — a string switch
// re-parsed on every set_param call — as wasteful on a path the engine
// may see hundreds of times a second from a MIDI controller; here
// ParsePath resolves the string with a single map lookup (or a short
// oscN split) into a ParamID plus an oscillator index, and Apply switches
// on the ID. Engine events still carry the dotted string, and
// Channel.SetParam calls ParsePath once for every set_param it applies.
type ParamID int

const (
	ParamUnknown ParamID = iota
	ParamOscWaveform
	ParamOscOctave
	ParamOscSemitone
	ParamOscDetune
	ParamOscLevel
	ParamNoiseType
	ParamNoiseLevel
	ParamFilterCutoff
	ParamFilterResonance
	ParamFilterEnvAmount
	ParamFilterKeyTracking
	ParamFilterADSRAttack
	ParamFilterADSRDecay
	ParamFilterADSRSustain
	ParamFilterADSRRelease
	ParamAmpADSRAttack
	ParamAmpADSRDecay
	ParamAmpADSRSustain
	ParamAmpADSRRelease
	ParamLFOWaveform
	ParamLFORate
	ParamLFODepth
	ParamLFODestination
	ParamLFOKeySync
	ParamGlideMode
	ParamGlideTime
)

// ParsedPath is the result of resolving a dotted param path once.
type ParsedPath struct {
	ID       ParamID
	OscIndex int // 0..2, only meaningful when ID is one of the Osc* params
}

var simplePaths = map[string]ParamID{
	"noise.noise_type":     ParamNoiseType,
	"noise.level":          ParamNoiseLevel,
	"filter.cutoff":        ParamFilterCutoff,
	"filter.resonance":     ParamFilterResonance,
	"filter.env_amount":    ParamFilterEnvAmount,
	"filter.key_tracking":  ParamFilterKeyTracking,
	"filter_adsr.attack":   ParamFilterADSRAttack,
	"filter_adsr.decay":    ParamFilterADSRDecay,
	"filter_adsr.sustain":  ParamFilterADSRSustain,
	"filter_adsr.release":  ParamFilterADSRRelease,
	"amp_adsr.attack":      ParamAmpADSRAttack,
	"amp_adsr.decay":       ParamAmpADSRDecay,
	"amp_adsr.sustain":     ParamAmpADSRSustain,
	"amp_adsr.release":     ParamAmpADSRRelease,
	"lfo.waveform":         ParamLFOWaveform,
	"lfo.rate":             ParamLFORate,
	"lfo.depth":            ParamLFODepth,
	"lfo.destination":      ParamLFODestination,
	"lfo.key_sync":         ParamLFOKeySync,
	"glide.mode":           ParamGlideMode,
	"glide.time":           ParamGlideTime,
}

var oscFields = map[string]ParamID{
	"waveform": ParamOscWaveform,
	"octave":   ParamOscOctave,
	"semitone": ParamOscSemitone,
	"detune":   ParamOscDetune,
	"level":    ParamOscLevel,
}

// ParsePath resolves a dotted param path (spec.md §6 grammar) into a
// ParsedPath. It returns ok=false for anything outside the grammar; the
// caller logs that as an unknown param path and drops it (spec.md §7).
func ParsePath(path string) (ParsedPath, bool) {
	if id, ok := simplePaths[path]; ok {
		return ParsedPath{ID: id}, true
	}
	parts := strings.SplitN(path, ".", 2)
	if len(parts) != 2 {
		return ParsedPath{}, false
	}
	head, field := parts[0], parts[1]
	if !strings.HasPrefix(head, "osc") {
		return ParsedPath{}, false
	}
	n, err := strconv.Atoi(strings.TrimPrefix(head, "osc"))
	if err != nil || n < 1 || n > 3 {
		return ParsedPath{}, false
	}
	id, ok := oscFields[field]
	if !ok {
		return ParsedPath{}, false
	}
	return ParsedPath{ID: id, OscIndex: n - 1}, true
}

// Apply applies a resolved param to p. value follows the JSON-ish
// number|string|bool union of spec.md §6's set_param event. Returns an
// error for a type mismatch, which the caller treats the same as an
// unknown path: log and drop (spec.md §7).
func (pp ParsedPath) Apply(p *Patch, value interface{}) error {
	switch pp.ID {
	case ParamFilterADSRAttack, ParamFilterADSRDecay, ParamFilterADSRSustain, ParamFilterADSRRelease,
		ParamAmpADSRAttack, ParamAmpADSRDecay, ParamAmpADSRSustain, ParamAmpADSRRelease,
		ParamLFORate, ParamLFODepth, ParamGlideTime:
		if _, ok := asFloat(value); !ok {
			return fmt.Errorf("patch: param %d wants a number", pp.ID)
		}
	}
	switch pp.ID {
	case ParamOscWaveform:
		s, ok := value.(string)
		if !ok {
			return fmt.Errorf("patch: osc%d.waveform wants a string", pp.OscIndex+1)
		}
		p.Oscillators[pp.OscIndex].Waveform = wf(s)
	case ParamOscOctave:
		n, ok := asInt(value)
		if !ok {
			return fmt.Errorf("patch: osc%d.octave wants a number", pp.OscIndex+1)
		}
		p.Oscillators[pp.OscIndex].Octave = n
	case ParamOscSemitone:
		n, ok := asInt(value)
		if !ok {
			return fmt.Errorf("patch: osc%d.semitone wants a number", pp.OscIndex+1)
		}
		p.Oscillators[pp.OscIndex].Semitone = n
	case ParamOscDetune:
		f, ok := asFloat(value)
		if !ok {
			return fmt.Errorf("patch: osc%d.detune wants a number", pp.OscIndex+1)
		}
		p.Oscillators[pp.OscIndex].Detune = f
	case ParamOscLevel:
		f, ok := asFloat(value)
		if !ok {
			return fmt.Errorf("patch: osc%d.level wants a number", pp.OscIndex+1)
		}
		p.Oscillators[pp.OscIndex].Level = f
	case ParamNoiseType:
		s, ok := value.(string)
		if !ok {
			return fmt.Errorf("patch: noise.noise_type wants a string")
		}
		p.Noise.NoiseType = ParseNoiseType(s)
	case ParamNoiseLevel:
		f, ok := asFloat(value)
		if !ok {
			return fmt.Errorf("patch: noise.level wants a number")
		}
		p.Noise.Level = f
	case ParamFilterCutoff:
		f, ok := asFloat(value)
		if !ok {
			return fmt.Errorf("patch: filter.cutoff wants a number")
		}
		p.Filter.Cutoff = f
	case ParamFilterResonance:
		f, ok := asFloat(value)
		if !ok {
			return fmt.Errorf("patch: filter.resonance wants a number")
		}
		p.Filter.Resonance = f
	case ParamFilterEnvAmount:
		f, ok := asFloat(value)
		if !ok {
			return fmt.Errorf("patch: filter.env_amount wants a number")
		}
		p.Filter.EnvAmount = f
	case ParamFilterKeyTracking:
		f, ok := asFloat(value)
		if !ok {
			return fmt.Errorf("patch: filter.key_tracking wants a number")
		}
		p.Filter.KeyTracking = f
	case ParamFilterADSRAttack:
		f, _ := asFloat(value)
		p.FilterADSR.Attack = f
	case ParamFilterADSRDecay:
		f, _ := asFloat(value)
		p.FilterADSR.Decay = f
	case ParamFilterADSRSustain:
		f, _ := asFloat(value)
		p.FilterADSR.Sustain = f
	case ParamFilterADSRRelease:
		f, _ := asFloat(value)
		p.FilterADSR.Release = f
	case ParamAmpADSRAttack:
		f, _ := asFloat(value)
		p.AmpADSR.Attack = f
	case ParamAmpADSRDecay:
		f, _ := asFloat(value)
		p.AmpADSR.Decay = f
	case ParamAmpADSRSustain:
		f, _ := asFloat(value)
		p.AmpADSR.Sustain = f
	case ParamAmpADSRRelease:
		f, _ := asFloat(value)
		p.AmpADSR.Release = f
	case ParamLFOWaveform:
		s, ok := value.(string)
		if !ok {
			return fmt.Errorf("patch: lfo.waveform wants a string")
		}
		p.LFO.Waveform = wf(s)
	case ParamLFORate:
		f, _ := asFloat(value)
		p.LFO.Rate = f
	case ParamLFODepth:
		f, _ := asFloat(value)
		p.LFO.Depth = f
	case ParamLFODestination:
		s, ok := value.(string)
		if !ok {
			return fmt.Errorf("patch: lfo.destination wants a string")
		}
		p.LFO.Destination = ParseLFODestination(s)
	case ParamLFOKeySync:
		b, ok := value.(bool)
		if !ok {
			return fmt.Errorf("patch: lfo.key_sync wants a bool")
		}
		p.LFO.KeySync = b
	case ParamGlideMode:
		s, ok := value.(string)
		if !ok {
			return fmt.Errorf("patch: glide.mode wants a string")
		}
		p.Glide.Mode = ParseGlideMode(s)
	case ParamGlideTime:
		f, _ := asFloat(value)
		p.Glide.Time = f
	default:
		return fmt.Errorf("patch: unresolved param id %d", pp.ID)
	}
	return nil
}

func asFloat(v interface{}) (float64, bool) {
	switch n := v.(type) {
	case float64:
		return n, true
	case float32:
		return float64(n), true
	case int:
		return float64(n), true
	}
	return 0, false
}

func asInt(v interface{}) (int, bool) {
	switch n := v.(type) {
	case int:
		return n, true
	case float64:
		return int(n), true
	case float32:
		return int(n), true
	}
	return 0, false
}
