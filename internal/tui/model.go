// Package tui provides the Bubble Tea reading interface.
package tui

import (
	"time"

	"github.com/charmbracelet/bubbles/help"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/verte-zerg/tuiread/internal/control"
)

// tickMsg asks the controller to advance. Ticks from an older generation were
// superseded by a later schedule and are dropped.
type tickMsg struct {
	gen int
	at  time.Time
}

// Model implements the Bubble Tea reading UI.
type Model struct {
	ctrl *control.Controller
	keys keyMap
	help help.Model
	now  func() time.Time

	width  int
	height int

	gen int
}

var (
	wordStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("#F0F0F0"))
	fixationStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#FF4D4F")).Bold(true)
	statusStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("#C89A3A"))
	footerStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("#6E6E6E"))
	helpKeyStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("#4FB3BF"))
)

// NewModel constructs a reading TUI around ctrl.
func NewModel(ctrl *control.Controller) *Model {
	h := help.New()
	h.Styles.ShortKey = helpKeyStyle
	h.Styles.ShortDesc = footerStyle
	h.Styles.ShortSeparator = footerStyle
	h.Styles.Ellipsis = footerStyle
	return &Model{
		ctrl: ctrl,
		keys: defaultKeyMap(),
		help: h,
		now:  time.Now,
	}
}

// Controller returns the controller driven by the model.
func (m *Model) Controller() *control.Controller {
	return m.ctrl
}

// Init implements tea.Model.
func (m *Model) Init() tea.Cmd {
	return m.schedule()
}

// Update implements tea.Model.
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
		return m, nil
	case tea.KeyMsg:
		sym := m.keys.symbolFor(msg)
		if sym == control.None {
			return m, nil
		}
		if m.ctrl.Handle(sym, m.now()) {
			return m, tea.Quit
		}
		return m, m.schedule()
	case tickMsg:
		if msg.gen != m.gen {
			return m, nil
		}
		m.ctrl.Tick(msg.at)
		return m, m.schedule()
	default:
		return m, nil
	}
}

// schedule arms a single pending tick for the controller's next deadline and
// invalidates any tick scheduled before it.
func (m *Model) schedule() tea.Cmd {
	m.gen++
	wait, ok := m.ctrl.Wait(m.now())
	if !ok {
		return nil
	}
	gen := m.gen
	return tea.Tick(wait, func(t time.Time) tea.Msg {
		return tickMsg{gen: gen, at: t}
	})
}
