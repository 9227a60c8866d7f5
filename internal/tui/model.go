// Package tui is the terminal control surface: an on-screen PC-keyboard
// piano, a live status panel, and a patch picker, all collaborators
// spec.md §1 places outside the audio core (the core only sees the
// engine.Event values this package enqueues). Built with bubbletea and
// lipgloss, the same stack icco-genidi uses for its own TUI.
package tui

import (
	"fmt"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/voog-synth/voog/internal/engine"
	"github.com/voog-synth/voog/internal/patch"
	"github.com/voog-synth/voog/internal/patchio"
)

// keyReleaseDebounce is how long a held key survives with no refreshing
// keypress before it's treated as released. Terminal programs don't see
// key-up events the way a GUI toolkit does, so this window plays the
// role original_source's 30ms `_pending_releases` timer played against
// OS key-repeat: a repeat re-arrives well inside the window and simply
// refreshes the deadline, while a genuine release lets it expire.
const keyReleaseDebounce = 120 * time.Millisecond

var (
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#FAFAFA")).
			Background(lipgloss.Color("#7D56F4")).
			Padding(0, 1)

	labelStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#626262"))
	valueStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#00FF00")).Bold(true)
	warnStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("#FFAA00"))
	helpStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("#626262")).Italic(true)
	heldStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("#7D56F4")).Bold(true)
)

type heldKey struct {
	note     int
	deadline time.Time
}

// Model is the bubbletea model driving the on-screen keyboard and status
// panel. It owns nothing the audio thread touches — every interaction
// goes through eng.Enqueue.
type Model struct {
	eng     *engine.Engine
	manager *patchio.Manager
	channel int
	octave  int
	held    map[string]heldKey
	patches []string
	picking bool
	cursor  int
	status  string
}

type tickMsg time.Time

// New builds a Model bound to eng's channel 0 and a patch manager for
// the picker overlay.
func New(eng *engine.Engine, manager *patchio.Manager) Model {
	names, _ := manager.ListSaved()
	return Model{
		eng:     eng,
		manager: manager,
		octave:  3,
		held:    make(map[string]heldKey),
		patches: names,
	}
}

func (m Model) Init() tea.Cmd {
	return tick()
}

func tick() tea.Cmd {
	return tea.Tick(30*time.Millisecond, func(t time.Time) tea.Msg { return tickMsg(t) })
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)
	case tickMsg:
		m.expireHeldKeys(time.Time(msg))
		return m, tick()
	}
	return m, nil
}

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if m.picking {
		return m.handlePickerKey(msg)
	}
	switch msg.String() {
	case "ctrl+c", "esc":
		return m, tea.Quit
	case "z":
		if m.octave > -1 {
			m.octave--
		}
		return m, nil
	case "x":
		if m.octave < 7 {
			m.octave++
		}
		return m, nil
	case "tab":
		m.picking = true
		m.cursor = 0
		return m, nil
	}

	key := strings.ToLower(msg.String())
	note, ok := NoteForKey(key, m.octave)
	if !ok {
		return m, nil
	}
	if hk, already := m.held[key]; already {
		hk.deadline = time.Now().Add(keyReleaseDebounce)
		m.held[key] = hk
		return m, nil
	}
	m.eng.Enqueue(engine.Event{Kind: engine.NoteOn, Channel: m.channel, Note: note, Velocity: 100})
	m.held[key] = heldKey{note: note, deadline: time.Now().Add(keyReleaseDebounce)}
	return m, nil
}

func (m *Model) expireHeldKeys(now time.Time) {
	for key, hk := range m.held {
		if now.After(hk.deadline) {
			m.eng.Enqueue(engine.Event{Kind: engine.NoteOff, Channel: m.channel, Note: hk.note})
			delete(m.held, key)
		}
	}
}

func (m Model) handlePickerKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	names := append(append([]string{}, factoryNames...), m.patches...)
	switch msg.String() {
	case "esc", "tab":
		m.picking = false
		return m, nil
	case "up", "k":
		if m.cursor > 0 {
			m.cursor--
		}
		return m, nil
	case "down", "j":
		if m.cursor < len(names)-1 {
			m.cursor++
		}
		return m, nil
	case "enter":
		if m.cursor < len(names) {
			m.loadPatch(names[m.cursor])
		}
		m.picking = false
		return m, nil
	}
	return m, nil
}

var factoryNames = []string{"init", "lead", "bass", "pad"}

func (m *Model) loadPatch(name string) {
	var p patch.Patch
	if bankPatch, ok := patch.Bank()[name]; ok {
		p = bankPatch
	} else if loaded, err := m.manager.Load(name); err == nil {
		p = loaded
	} else {
		m.status = fmt.Sprintf("could not load %q: %v", name, err)
		return
	}
	m.eng.Enqueue(engine.Event{Kind: engine.SetPatch, Channel: m.channel, Patch: &p})
	m.status = "loaded " + name
}

func (m Model) View() string {
	var b strings.Builder
	b.WriteString(titleStyle.Render("voog") + "\n\n")
	b.WriteString(fmt.Sprintf("%s %d   %s %d   %s %.3f\n",
		labelStyle.Render("octave"), m.octave,
		labelStyle.Render("channel"), m.channel,
		labelStyle.Render("peak"), m.eng.Peak()))
	b.WriteString(fmt.Sprintf("%s %s\n", labelStyle.Render("voices"), valueStyle.Render(fmt.Sprintf("%d", m.eng.ActiveVoiceCount()))))

	diag := m.eng.Diagnostics()
	if dropped := m.eng.Dropped(); dropped > 0 {
		b.WriteString(warnStyle.Render(fmt.Sprintf("dropped events: %d\n", dropped)))
	}
	if unknown := diag.UnknownParams.Load(); unknown > 0 {
		b.WriteString(warnStyle.Render(fmt.Sprintf("unknown params: %d\n", unknown)))
	}

	b.WriteString("\n" + m.renderKeyboard() + "\n")

	if m.picking {
		b.WriteString("\n" + m.renderPicker())
	}
	if m.status != "" {
		b.WriteString("\n" + helpStyle.Render(m.status))
	}
	b.WriteString("\n" + helpStyle.Render("a-l/w,e,t,y,u,o,p: play   z/x: octave   tab: patches   esc: quit"))
	return b.String()
}

func (m Model) renderKeyboard() string {
	rows := [][]string{
		{"w", "e", "", "t", "y", "u", "", "o", "p"},
		{"a", "s", "d", "f", "g", "h", "j", "k", "l"},
	}
	var out strings.Builder
	for _, row := range rows {
		for _, key := range row {
			if key == "" {
				out.WriteString("   ")
				continue
			}
			held := false
			for k := range m.held {
				if k == key {
					held = true
				}
			}
			if held {
				out.WriteString(heldStyle.Render(fmt.Sprintf(" %s ", key)))
			} else {
				out.WriteString(fmt.Sprintf(" %s ", key))
			}
		}
		out.WriteString("\n")
	}
	return out.String()
}

func (m Model) renderPicker() string {
	names := append(append([]string{}, factoryNames...), m.patches...)
	var b strings.Builder
	b.WriteString(labelStyle.Render("patches:") + "\n")
	for i, name := range names {
		if i == m.cursor {
			b.WriteString(valueStyle.Render("> "+name) + "\n")
		} else {
			b.WriteString("  " + name + "\n")
		}
	}
	return b.String()
}
