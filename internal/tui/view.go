package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-runewidth"

	"github.com/verte-zerg/tuiread/internal/present"
)

// View implements tea.Model.
func (m *Model) View() string {
	p := m.ctrl.Payload()
	if m.width == 0 || m.height == 0 {
		return renderWord(p)
	}
	word := centerOnFixation(p, m.width)
	if m.ctrl.Zen() || m.height < 4 {
		return lipgloss.PlaceVertical(m.height, lipgloss.Center, word)
	}
	bodyHeight := m.height - 2
	body := lipgloss.PlaceVertical(bodyHeight, lipgloss.Center, word)
	status := lipgloss.Place(m.width, 1, lipgloss.Center, lipgloss.Center, statusStyle.Render(statusLine(p)))
	controls := lipgloss.Place(m.width, 1, lipgloss.Center, lipgloss.Center, m.help.View(m.keys))
	return body + "\n" + status + "\n" + controls
}

// renderWord styles the word with the fixation rune highlighted.
func renderWord(p present.Payload) string {
	if !p.HasWord {
		return ""
	}
	runes := []rune(p.Word)
	var b strings.Builder
	if p.Fixation > 0 {
		b.WriteString(wordStyle.Render(string(runes[:p.Fixation])))
	}
	b.WriteString(fixationStyle.Render(string(runes[p.Fixation])))
	if p.Fixation+1 < len(runes) {
		b.WriteString(wordStyle.Render(string(runes[p.Fixation+1:])))
	}
	return b.String()
}

// centerOnFixation pads the word so its fixation rune starts on the middle
// column, keeping the reader's eye still between words.
func centerOnFixation(p present.Payload, width int) string {
	if !p.HasWord {
		return ""
	}
	prefix := string([]rune(p.Word)[:p.Fixation])
	pad := width/2 - runewidth.StringWidth(prefix)
	if pad < 0 {
		pad = 0
	}
	return strings.Repeat(" ", pad) + renderWord(p)
}

func statusLine(p present.Payload) string {
	state := "PAUSED"
	switch {
	case p.Finished:
		state = "FINISHED"
	case p.Playing:
		state = "PLAYING"
	}
	position := p.Index + 1
	if !p.HasWord {
		position = p.Total
	}
	return fmt.Sprintf("%s | Word %d/%d | WPM: %d | Percent: %.0f%% | Remaining: %s",
		state,
		position,
		p.Total,
		p.WPM,
		p.Completion*100,
		present.FormatDuration(p.Remaining),
	)
}
