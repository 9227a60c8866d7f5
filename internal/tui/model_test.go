package tui

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/voog-synth/voog/internal/config"
	"github.com/voog-synth/voog/internal/engine"
	"github.com/voog-synth/voog/internal/patch"
	"github.com/voog-synth/voog/internal/patchio"
)

func newTestModel(t *testing.T) Model {
	eng := engine.New(config.BufferSize, patch.Init(), nil)
	mgr, err := patchio.NewManager(t.TempDir())
	require.NoError(t, err)
	return New(eng, mgr)
}

func keyMsg(s string) tea.KeyMsg {
	if len(s) == 1 {
		return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
	}
	switch s {
	case "tab":
		return tea.KeyMsg{Type: tea.KeyTab}
	case "esc":
		return tea.KeyMsg{Type: tea.KeyEsc}
	case "enter":
		return tea.KeyMsg{Type: tea.KeyEnter}
	case "up":
		return tea.KeyMsg{Type: tea.KeyUp}
	case "down":
		return tea.KeyMsg{Type: tea.KeyDown}
	}
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func TestModel_OctaveKeysStayWithinBounds(t *testing.T) {
	m := newTestModel(t)
	for i := 0; i < 20; i++ {
		updated, _ := m.handleKey(keyMsg("z"))
		m = updated.(Model)
	}
	assert.Equal(t, -1, m.octave)

	for i := 0; i < 20; i++ {
		updated, _ := m.handleKey(keyMsg("x"))
		m = updated.(Model)
	}
	assert.Equal(t, 7, m.octave)
}

func TestModel_TabOpensPatchPicker(t *testing.T) {
	m := newTestModel(t)
	updated, _ := m.handleKey(keyMsg("tab"))
	m = updated.(Model)
	assert.True(t, m.picking)
	assert.Equal(t, 0, m.cursor)
}

func TestModel_PickerEnterLoadsPatchAndCloses(t *testing.T) {
	m := newTestModel(t)
	updated, _ := m.handleKey(keyMsg("tab"))
	m = updated.(Model)

	updated, _ = m.handleKey(keyMsg("enter"))
	m = updated.(Model)

	assert.False(t, m.picking)
	assert.Contains(t, m.status, "loaded")
}

func TestModel_MappedKeyEnqueuesNoteOn(t *testing.T) {
	m := newTestModel(t)
	updated, _ := m.handleKey(keyMsg("a"))
	m = updated.(Model)

	assert.Contains(t, m.held, "a")

	buf := make([]float64, config.BufferSize)
	m.eng.Render(buf)
	assert.Equal(t, 1, m.eng.ActiveVoiceCount())
}

func TestModel_RepeatedKeyRefreshesDeadlineWithoutRetrigger(t *testing.T) {
	m := newTestModel(t)
	updated, _ := m.handleKey(keyMsg("a"))
	m = updated.(Model)
	first := m.held["a"].deadline

	updated, _ = m.handleKey(keyMsg("a"))
	m = updated.(Model)
	second := m.held["a"].deadline

	assert.False(t, second.Before(first))
}
