//go:build headless

package audioout

// HeadlessPlayer discards rendered audio. It exists so tests, benchmarks
// and CI can exercise the full engine without an audio device, the same
// role the teacher's headless backend plays for its chip emulator.
type HeadlessPlayer struct {
	renderer Renderer
	scratch  []float64
	running  bool
}

// NewHeadlessPlayer builds a player that calls Render into a scratch
// buffer and drops the result.
func NewHeadlessPlayer(r Renderer, bufferFrames int) *HeadlessPlayer {
	return &HeadlessPlayer{renderer: r, scratch: make([]float64, bufferFrames)}
}

// Start marks the player running; it renders nothing by itself. Samples
// are produced only by calls to Pump.
func (p *HeadlessPlayer) Start() error {
	p.running = true
	return nil
}

// Stop marks the player stopped.
func (p *HeadlessPlayer) Stop() error {
	p.running = false
	return nil
}

// Pump renders one block and returns it for inspection (benchmarks,
// golden tests) instead of writing to a device.
func (p *HeadlessPlayer) Pump() []float64 {
	p.renderer.Render(p.scratch)
	return p.scratch
}
