package dsp

import "github.com/voog-synth/voog/internal/patch"

// lcg is a 32-bit linear congruential generator (a different family from
// the LFSR the teacher's sound chip used for its noise channel), with a
// period far beyond any audio buffer this engine will ever render.
type lcg uint32

func (g *lcg) next() uint32 {
	*g = lcg(uint32(*g)*1664525 + 1013904223)
	return uint32(*g)
}

// Noise is a per-voice white/pink noise generator. Its output does not
// depend on pitch or envelope (spec.md §4.3).
type Noise struct {
	rng lcg
	// pink holds the Voss-McCartney running octave sums.
	pink    [7]float64
	pinkIdx uint32
}

// NewNoise seeds the generator. A fixed non-zero seed keeps golden tests
// deterministic; the voice allocator seeds each voice in its pool once, at
// construction, from the voice's index, so voices of one allocator don't
// correlate.
func NewNoise(seed uint32) *Noise {
	if seed == 0 {
		seed = 1
	}
	return &Noise{rng: lcg(seed)}
}

func (n *Noise) white() float64 {
	u := n.rng.next()
	return float64(int32(u))/float64(1<<31) // uniform in [-1, 1)
}

// pinkSample implements the Voss-McCartney algorithm: each of 7 "octave"
// generators updates on a different power-of-two cadence and the sum
// approximates 1/f (≈3 dB/oct) noise (spec.md §4.3).
func (n *Noise) pinkSample() float64 {
	n.pinkIdx++
	idx := n.pinkIdx
	var sum float64
	for i := range n.pink {
		if idx&(1<<uint(i)) != 0 || i == 0 {
			n.pink[i] = n.white()
		}
		sum += n.pink[i]
	}
	return sum / float64(len(n.pink))
}

// Render fills out with n samples of noise scaled by p.Level, adding to
// any existing contents so the caller can accumulate with the oscillators.
func (n *Noise) Render(p patch.NoiseParams, out []float64) {
	if p.Level == 0 {
		return
	}
	switch p.NoiseType {
	case patch.NoisePink:
		for i := range out {
			out[i] += n.pinkSample() * p.Level
		}
	default:
		for i := range out {
			out[i] += n.white() * p.Level
		}
	}
}
