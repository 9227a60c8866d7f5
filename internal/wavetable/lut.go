package wavetable

import "math"

// sinLUT and tanhLUT are precomputed lookup tables, grounded directly on
// the teacher's audio_lut.go: sinLUT feeds the wavetable builder itself,
// so constructing the four tables never pays for a math.Sin call per
// harmonic term, and tanhLUT backs FastTanh, the engine's master
// soft-clip stage (spec.md §4.11 step 3), avoiding a math.Tanh call per
// output sample — the same technique the teacher uses for its own
// master limiter.
const (
	sinLUTSize = 8192

	tanhLUTSize = 4096
	tanhLUTMin  = -4.0
	tanhLUTMax  = 4.0
)

// sinLUT and tanhLUT are built by var initializers rather than init(), so
// the package's dependency analysis orders them ahead of the Default
// bank's own var initializer (build(), below), which calls sinLookup.
var sinLUT = buildSinLUT()
var tanhLUT = buildTanhLUT()

func buildSinLUT() [sinLUTSize + 1]float64 {
	var t [sinLUTSize + 1]float64
	for i := 0; i <= sinLUTSize; i++ {
		phase := float64(i) / sinLUTSize
		t[i] = math.Sin(2 * math.Pi * phase)
	}
	return t
}

func buildTanhLUT() [tanhLUTSize]float64 {
	var t [tanhLUTSize]float64
	for i := 0; i < tanhLUTSize; i++ {
		x := tanhLUTMin + float64(i)*(tanhLUTMax-tanhLUTMin)/float64(tanhLUTSize-1)
		t[i] = math.Tanh(x)
	}
	return t
}

// sinLookup returns sin(2*pi*cycles) read from sinLUT with linear
// interpolation; cycles need not already be wrapped to [0,1).
func sinLookup(cycles float64) float64 {
	frac := cycles - math.Floor(cycles)
	idxF := frac * sinLUTSize
	idx := int(idxF)
	t := idxF - float64(idx)
	return sinLUT[idx]*(1-t) + sinLUT[idx+1]*t
}

// FastTanh returns tanh(x) read from tanhLUT with linear interpolation,
// clamped to ±1 outside [tanhLUTMin, tanhLUTMax], where tanh is already
// within about 7e-4 of ±1.
func FastTanh(x float64) float64 {
	if x <= tanhLUTMin {
		return -1
	}
	if x >= tanhLUTMax {
		return 1
	}
	idxF := (x - tanhLUTMin) * (tanhLUTSize - 1) / (tanhLUTMax - tanhLUTMin)
	idx := int(idxF)
	if idx >= tanhLUTSize-1 {
		return tanhLUT[tanhLUTSize-1]
	}
	frac := idxF - float64(idx)
	return tanhLUT[idx]*(1-frac) + tanhLUT[idx+1]*frac
}
