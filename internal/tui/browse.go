// Package tui provides an interactive checkout flow inspector. It lets a
// developer walk a configured flow: cycle the requested step and the
// carried active step and watch the sequencer's resolution update live.
package tui

import (
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/storewave/storefront/internal/checkout"
)

// Muted, dark-terminal friendly palette.
var (
	accentStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("99"))
	activeStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("76")).Bold(true)
	doneStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("243")).Strikethrough(true)
	dimStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("243"))
	errStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("204"))
	titleStyle  = lipgloss.NewStyle().Bold(true).MarginBottom(1)
	boxStyle    = lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).Padding(0, 2)
)

// keyMap defines the inspector key bindings.
type keyMap struct {
	Prev   key.Binding
	Next   key.Binding
	Carry  key.Binding
	Clear  key.Binding
	Toggle key.Binding
	Quit   key.Binding
}

func defaultKeyMap() keyMap {
	return keyMap{
		Prev: key.NewBinding(
			key.WithKeys("left", "h"),
			key.WithHelp("←/h", "request previous step"),
		),
		Next: key.NewBinding(
			key.WithKeys("right", "l"),
			key.WithHelp("→/l", "request next step"),
		),
		Carry: key.NewBinding(
			key.WithKeys("a"),
			key.WithHelp("a", "carry active step"),
		),
		Clear: key.NewBinding(
			key.WithKeys("c"),
			key.WithHelp("c", "clear request and carry"),
		),
		Toggle: key.NewBinding(
			key.WithKeys("o"),
			key.WithHelp("o", "toggle one-page collapsing"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "esc", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
	}
}

// ShortHelp implements help.KeyMap.
func (k keyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Prev, k.Next, k.Carry, k.Clear, k.Toggle, k.Quit}
}

// FullHelp implements help.KeyMap.
func (k keyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{{k.Prev, k.Next}, {k.Carry, k.Clear, k.Toggle}, {k.Quit}}
}

// Model is the bubbletea model of the flow inspector.
type Model struct {
	flowName string
	flow     checkout.Flow
	onePage  bool // one-page collapsing enabled

	requested int // index into flow.Steps; -1 means no requested step
	carried   int // index into flow.Steps; -1 means no carried active step

	res    checkout.Resolution
	resErr error

	keys keyMap
	help help.Model
}

// NewModel creates an inspector model for the named flow. One-page
// collapsing starts enabled when the flow configures one-page steps.
func NewModel(flowName string, flow checkout.Flow) Model {
	m := Model{
		flowName:  flowName,
		flow:      flow,
		onePage:   len(flow.OnePageSteps) > 0,
		requested: -1,
		carried:   -1,
		keys:      defaultKeyMap(),
		help:      help.New(),
	}
	m.resolve()
	return m
}

// request returns the step Request the current selections describe.
func (m Model) request() checkout.Request {
	var req checkout.Request
	if m.requested >= 0 && m.requested < len(m.flow.Steps) {
		req.Requested = m.flow.Steps[m.requested]
	}
	if m.carried >= 0 && m.carried < len(m.flow.Steps) {
		req.Active = m.flow.Steps[m.carried]
	}
	return req
}

// resolve recomputes the sequencing for the current selections.
func (m *Model) resolve() {
	f := m.flow
	if !m.onePage {
		f.OnePageSteps = nil
	}
	m.res, m.resErr = checkout.Resolve(f, m.request())
}

// Init implements tea.Model.
func (m Model) Init() tea.Cmd { return nil }

// Update implements tea.Model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.help.Width = msg.Width
		return m, nil

	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.Quit):
			return m, tea.Quit
		case key.Matches(msg, m.keys.Prev):
			m.requested = cycle(m.requested, len(m.flow.Steps), -1)
		case key.Matches(msg, m.keys.Next):
			m.requested = cycle(m.requested, len(m.flow.Steps), +1)
		case key.Matches(msg, m.keys.Carry):
			m.carried = cycle(m.carried, len(m.flow.Steps), +1)
		case key.Matches(msg, m.keys.Clear):
			m.requested = -1
			m.carried = -1
		case key.Matches(msg, m.keys.Toggle):
			m.onePage = !m.onePage
		default:
			return m, nil
		}
		m.resolve()
	}
	return m, nil
}

// cycle advances idx through [-1, n) with wrap-around; -1 is the "none"
// position.
func cycle(idx, n, dir int) int {
	if n == 0 {
		return -1
	}
	idx += dir
	if idx >= n {
		return -1
	}
	if idx < -1 {
		return n - 1
	}
	return idx
}

// View implements tea.Model.
func (m Model) View() string {
	var b strings.Builder

	b.WriteString(titleStyle.Render("checkout flow: "+accentStyle.Render(m.flowName)) + "\n")

	if m.resErr != nil {
		b.WriteString(errStyle.Render("configuration error: "+m.resErr.Error()) + "\n")
		b.WriteString("\n" + m.help.View(m.keys) + "\n")
		return b.String()
	}

	b.WriteString(boxStyle.Render(m.pipelineView()) + "\n\n")
	b.WriteString(m.selectionView() + "\n")
	b.WriteString(m.navigationView() + "\n")
	if m.res.Recovered {
		b.WriteString(errStyle.Render("! active step was not navigable; recovered to first step") + "\n")
	}
	b.WriteString("\n" + m.help.View(m.keys) + "\n")
	return b.String()
}

// pipelineView renders the navigable pipeline with the active step
// highlighted and completed steps struck through.
func (m Model) pipelineView() string {
	parts := make([]string, 0, len(m.res.Steps))
	for _, s := range m.res.Before {
		parts = append(parts, doneStyle.Render(s.String()))
	}
	parts = append(parts, activeStyle.Render("["+m.res.Active.String()+"]"))
	for _, s := range m.res.After {
		parts = append(parts, s.String())
	}
	return strings.Join(parts, dimStyle.Render(" → "))
}

func (m Model) selectionView() string {
	requested, carried := "none", "none"
	if m.requested >= 0 {
		requested = m.flow.Steps[m.requested].String()
	}
	if m.carried >= 0 {
		carried = m.flow.Steps[m.carried].String()
	}
	onePage := "off"
	if m.onePage {
		onePage = "on"
	}
	return dimStyle.Render("requested: ") + requested +
		dimStyle.Render("  carried: ") + carried +
		dimStyle.Render("  one-page: ") + onePage
}

func (m Model) navigationView() string {
	back := "basket (leaves checkout)"
	if m.res.Back.IsSet() {
		back = m.res.Back.String()
	}
	next := "none (terminal step)"
	if m.res.Next.IsSet() {
		next = m.res.Next.String()
	}
	return dimStyle.Render("back: ") + back + dimStyle.Render("  next: ") + next
}

// Run starts the inspector for the named flow and blocks until it exits.
func Run(flowName string, flow checkout.Flow) error {
	_, err := tea.NewProgram(NewModel(flowName, flow), tea.WithAltScreen()).Run()
	return err
}
