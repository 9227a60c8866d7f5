//go:build !headless

package audioout

import (
	"context"
	"fmt"
	"math"
	"sync/atomic"
	"time"

	"github.com/ebitengine/oto/v3"

	"github.com/voog-synth/voog/internal/config"
)

// OtoPlayer streams the engine's float32 mono output through oto
// (spec.md §6's device adapter contract). The renderer is held behind an
// atomic.Pointer so Start/Stop never takes a lock on the real-time read
// path, mirroring the teacher's lock-free hot-path pattern.
type OtoPlayer struct {
	renderer atomic.Pointer[Renderer]
	ctx      *oto.Context
	player   *oto.Player
	scratch  []float64
}

// NewOtoPlayer creates an oto context at the engine's fixed sample rate
// and mono channel count, sized for bufferFrames per Read.
func NewOtoPlayer(r Renderer, bufferFrames int) (*OtoPlayer, error) {
	p := &OtoPlayer{scratch: make([]float64, bufferFrames)}
	p.renderer.Store(&r)

	ctx, ready, err := oto.NewContext(&oto.NewContextOptions{
		SampleRate:   int(config.SampleRate),
		ChannelCount: 1,
		Format:       oto.FormatFloat32LE,
		BufferSize:   time.Duration(bufferFrames) * time.Second / time.Duration(config.SampleRate),
	})
	if err != nil {
		return nil, fmt.Errorf("audioout: oto context: %w", err)
	}
	<-ready
	p.ctx = ctx
	p.player = ctx.NewPlayer(p)
	return p, nil
}

// Read implements io.Reader, the shape oto.Player pulls PCM from. It
// renders one block from the current Renderer and encodes it as
// little-endian float32 mono, never allocating (spec.md §5).
func (p *OtoPlayer) Read(buf []byte) (int, error) {
	frames := len(buf) / 4
	if frames > len(p.scratch) {
		frames = len(p.scratch)
	}
	out := p.scratch[:frames]
	r := *p.renderer.Load()
	r.Render(out)

	for i := 0; i < frames; i++ {
		bits := math.Float32bits(float32(out[i]))
		buf[i*4+0] = byte(bits)
		buf[i*4+1] = byte(bits >> 8)
		buf[i*4+2] = byte(bits >> 16)
		buf[i*4+3] = byte(bits >> 24)
	}
	return frames * 4, nil
}

// SetRenderer swaps the renderer without blocking the audio thread.
func (p *OtoPlayer) SetRenderer(r Renderer) { p.renderer.Store(&r) }

// Start begins playback.
func (p *OtoPlayer) Start() error {
	p.player.Play()
	return nil
}

// Stop halts playback and releases the player.
func (p *OtoPlayer) Stop() error {
	p.player.Pause()
	return p.player.Close()
}

// Close closes the underlying oto player, the same call Stop makes; ctx
// is ignored and the oto context stays open. Not part of Player, since
// most callers only need Start/Stop for the lifetime of a process.
func (p *OtoPlayer) Close(ctx context.Context) error {
	_ = ctx
	return p.player.Close()
}
