package dsp

import (
	"math"

	"github.com/voog-synth/voog/internal/config"
	"github.com/voog-synth/voog/internal/patch"
)

// Glide slews a voice's current frequency toward a target frequency over
// glide.Time seconds (spec.md §4.7). Off mode snaps instantly; Always and
// Legato both slew, the difference being which note transitions trigger a
// slew versus a snap, which is the allocator's decision (spec.md §4.9),
// not Glide's.
type Glide struct {
	current float64
	target  float64
}

// SetTarget points the glide at a new frequency. snap, if true, makes
// current jump immediately (used for the first note on a voice, or Off
// mode).
func (g *Glide) SetTarget(freq float64, snap bool) {
	g.target = freq
	if snap || g.current == 0 {
		g.current = freq
	}
}

// Current returns the glide's current frequency without advancing it.
func (g *Glide) Current() float64 { return g.current }

// Advance moves current one block toward target using a one-pole slew
// with time constant proportional to p.Time, and returns the resulting
// frequency. Per-block granularity is acceptable since glide is
// perceptually slow (spec.md §4.7).
func (g *Glide) Advance(p patch.GlideParams, blockFrames int) float64 {
	if p.Time <= 0 {
		g.current = g.target
		return g.current
	}
	tau := math.Max(p.Time, config.MinTime)
	blockSeconds := float64(blockFrames) / float64(config.SampleRate)
	coeff := 1 - math.Exp(-blockSeconds/tau)
	g.current += (g.target - g.current) * coeff
	return g.current
}
