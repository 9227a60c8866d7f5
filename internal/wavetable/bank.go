// Package wavetable builds the band-limited single-cycle tables shared by
// every oscillator and LFO in the engine.
package wavetable

import "math"

// Waveform selects one of the precomputed tables. Table lookup is an array
// index, not a string switch (spec.md §9 "polymorphic oscillator by
// waveform string").
type Waveform int

const (
	Sine Waveform = iota
	Saw
	Square
	Triangle
	numWaveforms
)

func (w Waveform) String() string {
	switch w {
	case Sine:
		return "sine"
	case Saw:
		return "saw"
	case Square:
		return "square"
	case Triangle:
		return "triangle"
	default:
		return "sine"
	}
}

// ParseWaveform maps the wire-format waveform name to a Waveform, defaulting
// to Sine for anything unrecognised (callers that need strict validation
// should check the wire string against the four known names themselves).
func ParseWaveform(name string) Waveform {
	switch name {
	case "sine":
		return Sine
	case "saw":
		return Saw
	case "square":
		return Square
	case "triangle":
		return Triangle
	default:
		return Sine
	}
}

// Size is the number of samples per table. Must be a power of two so phase
// wraps cheaply.
const Size = 2048

// harmonics is the additive synthesis harmonic count (K in spec.md §4.1).
const harmonics = 64

// Bank holds the four read-only single-cycle tables. A Bank is safe for
// concurrent read access by any number of voices once built; it is never
// mutated after construction.
type Bank struct {
	tables [numWaveforms][Size]float64
}

var shared = build()

// Default returns the process-wide wavetable bank. Tables are immutable
// after init — this makes sharing by reference across every voice safe
// without locking (spec.md §9 "global wavetable state").
func Default() *Bank { return shared }

// build constructs the four tables from sinLUT rather than calling
// math.Sin directly (spec.md §4.15): table construction runs once at
// startup, but it is also the pattern every harmonic sum below reuses,
// so routing it through the same lookup keeps construction and the
// audio-thread oscillator hitting identical rounding.
func build() *Bank {
	b := &Bank{}
	for i := 0; i < Size; i++ {
		phase := float64(i) / float64(Size)
		b.tables[Sine][i] = sinLookup(phase)
	}
	for i := 0; i < Size; i++ {
		phase := float64(i) / float64(Size)
		var sum float64
		for k := 1; k <= harmonics; k++ {
			sign := 1.0
			if k%2 == 0 {
				sign = -1.0
			}
			sum += sign * sinLookup(float64(k)*phase) / float64(k)
		}
		b.tables[Saw][i] = sum * (2.0 / math.Pi)
	}
	for i := 0; i < Size; i++ {
		phase := float64(i) / float64(Size)
		var sum float64
		for k := 1; k <= harmonics; k += 2 {
			sum += sinLookup(float64(k)*phase) / float64(k)
		}
		b.tables[Square][i] = sum * (4.0 / math.Pi)
	}
	for i := 0; i < Size; i++ {
		phase := float64(i) / float64(Size)
		var sum float64
		for k := 1; k <= harmonics; k += 2 {
			sign := 1.0
			if (k-1)/2%2 != 0 {
				sign = -1.0
			}
			sum += sign * sinLookup(float64(k)*phase) / float64(k*k)
		}
		b.tables[Triangle][i] = sum * (8.0 / (math.Pi * math.Pi))
	}
	return b
}

// Lookup returns the linearly interpolated sample at phase (must be in
// [0,1)) for the given waveform.
func (b *Bank) Lookup(w Waveform, phase float64) float64 {
	idxF := phase * Size
	idx := int(idxF)
	frac := idxF - float64(idx)
	idx &= Size - 1
	next := (idx + 1) & (Size - 1)
	t := &b.tables[w]
	return t[idx]*(1-frac) + t[next]*frac
}
