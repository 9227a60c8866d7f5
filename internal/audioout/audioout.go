// Package audioout adapts the engine's Render method to a real audio
// device. Two backends exist behind the Player interface: one built on
// ebitengine/oto (the default) and a headless one for tests and
// benchmarking, selected by the `headless` build tag, mirroring the
// teacher's per-platform backend split (spec.md §6 "Audio device
// adapter").
package audioout

// Renderer is the one method the audio backend needs from the engine —
// deliberately narrow so audioout never depends on package engine's
// event/dispatch surface, only on its ability to fill a buffer.
type Renderer interface {
	Render(out []float64)
}

// Player owns an open audio device and pulls samples from a Renderer.
type Player interface {
	Start() error
	Stop() error
}
