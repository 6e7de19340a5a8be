package tui

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/verte-zerg/tuiread/internal/control"
)

type keyMap struct {
	Play    key.Binding
	Faster  key.Binding
	Slower  key.Binding
	Prev    key.Binding
	Next    key.Binding
	Back    key.Binding
	Forward key.Binding
	Restart key.Binding
	Zen     key.Binding
	Quit    key.Binding
}

func defaultKeyMap() keyMap {
	return keyMap{
		Play:    key.NewBinding(key.WithKeys(" "), key.WithHelp("space", "play/pause")),
		Faster:  key.NewBinding(key.WithKeys("+", "="), key.WithHelp("+", "faster")),
		Slower:  key.NewBinding(key.WithKeys("-", "_"), key.WithHelp("-", "slower")),
		Prev:    key.NewBinding(key.WithKeys("h", "left", "up"), key.WithHelp("←", "prev")),
		Next:    key.NewBinding(key.WithKeys("l", "right", "down"), key.WithHelp("→", "next")),
		Back:    key.NewBinding(key.WithKeys("pgup", "b"), key.WithHelp("pgup", "back")),
		Forward: key.NewBinding(key.WithKeys("pgdown", "f"), key.WithHelp("pgdn", "forward")),
		Restart: key.NewBinding(key.WithKeys("r", "home"), key.WithHelp("r", "restart")),
		Zen:     key.NewBinding(key.WithKeys("z"), key.WithHelp("z", "zen")),
		Quit:    key.NewBinding(key.WithKeys("q", "esc", "ctrl+c"), key.WithHelp("q", "quit")),
	}
}

// ShortHelp implements help.KeyMap.
func (k keyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Play, k.Faster, k.Slower, k.Prev, k.Next, k.Restart, k.Zen, k.Quit}
}

// FullHelp implements help.KeyMap.
func (k keyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Play, k.Restart, k.Zen, k.Quit},
		{k.Faster, k.Slower},
		{k.Prev, k.Next, k.Back, k.Forward},
	}
}

func (k keyMap) symbolFor(msg tea.KeyMsg) control.Symbol {
	switch {
	case key.Matches(msg, k.Quit):
		return control.Quit
	case key.Matches(msg, k.Play):
		return control.TogglePlay
	case key.Matches(msg, k.Faster):
		return control.IncreaseWPM
	case key.Matches(msg, k.Slower):
		return control.DecreaseWPM
	case key.Matches(msg, k.Prev):
		return control.PrevWord
	case key.Matches(msg, k.Next):
		return control.NextWord
	case key.Matches(msg, k.Back):
		return control.JumpBack
	case key.Matches(msg, k.Forward):
		return control.JumpForward
	case key.Matches(msg, k.Restart):
		return control.Restart
	case key.Matches(msg, k.Zen):
		return control.ToggleZen
	default:
		return control.None
	}
}
