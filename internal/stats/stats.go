// Package stats contains reading metrics and the history report.
package stats

import (
	"fmt"
	"io"
	"math"
	"os"
	"strings"
	"time"

	"golang.org/x/term"

	"github.com/verte-zerg/tuiread/internal/model"
)

const (
	sparkChars          = " .:-=+*#%@"
	sparkLabel          = "WPM trend: "
	terminalWidthBackup = 80
	recentRows          = 10
)

// EffectiveWPM returns words shown per minute of wall time.
func EffectiveWPM(wordsShown int, durationMs int64) float64 {
	if durationMs <= 0 || wordsShown <= 0 {
		return 0
	}
	minutes := float64(durationMs) / 60000.0
	return float64(wordsShown) / minutes
}

// Completion returns the fraction of the document reached by a session.
func Completion(endIndex, tokens int) float64 {
	if tokens <= 0 {
		return 1
	}
	return float64(endIndex) / float64(tokens)
}

// Sparkline renders a single-line ASCII sparkline for the values.
func Sparkline(values []float64) string {
	if len(values) == 0 {
		return ""
	}
	minVal := values[0]
	maxVal := values[0]
	for _, v := range values[1:] {
		if v < minVal {
			minVal = v
		}
		if v > maxVal {
			maxVal = v
		}
	}
	if math.Abs(maxVal-minVal) < 1e-9 {
		return strings.Repeat(string(sparkChars[len(sparkChars)/2]), len(values))
	}
	var b strings.Builder
	for _, v := range values {
		pos := (v - minVal) / (maxVal - minVal)
		idx := int(math.Round(pos * float64(len(sparkChars)-1)))
		if idx < 0 {
			idx = 0
		}
		if idx >= len(sparkChars) {
			idx = len(sparkChars) - 1
		}
		b.WriteByte(sparkChars[idx])
	}
	return b.String()
}

// RenderHistory prints the summary, a WPM sparkline and the most recent sessions.
func RenderHistory(w io.Writer, sessions []model.SessionAggregate) error {
	return RenderHistoryWithWidth(w, sessions, terminalWidth())
}

// RenderHistoryWithWidth is RenderHistory with an explicit line width.
func RenderHistoryWithWidth(w io.Writer, sessions []model.SessionAggregate, width int) error {
	if err := RenderSummary(w, sessions); err != nil {
		return err
	}
	if len(sessions) == 0 {
		return nil
	}
	wpms := make([]float64, len(sessions))
	for i, s := range sessions {
		wpms[i] = EffectiveWPM(s.WordsShown, s.DurationMs)
	}
	if maxLen := width - len(sparkLabel); maxLen > 0 && len(wpms) > maxLen {
		wpms = wpms[len(wpms)-maxLen:]
	}
	if _, err := fmt.Fprintf(w, "%s%s\n\n", sparkLabel, Sparkline(wpms)); err != nil {
		return err
	}
	return RenderSessions(w, sessions)
}

// RenderSummary prints totals across sessions.
func RenderSummary(w io.Writer, sessions []model.SessionAggregate) error {
	if len(sessions) == 0 {
		_, err := fmt.Fprintln(w, "No sessions found.")
		return err
	}
	var totalWords int
	var totalMs int64
	bestWPM := 0.0
	for _, s := range sessions {
		totalWords += s.WordsShown
		totalMs += s.DurationMs
		if wpm := EffectiveWPM(s.WordsShown, s.DurationMs); wpm > bestWPM {
			bestWPM = wpm
		}
	}
	lines := []string{
		"Summary",
		fmt.Sprintf("Sessions: %d", len(sessions)),
		fmt.Sprintf("Words shown: %d", totalWords),
		fmt.Sprintf("Time read: %s", (time.Duration(totalMs) * time.Millisecond).Round(time.Second)),
		fmt.Sprintf("Avg WPM: %.1f", EffectiveWPM(totalWords, totalMs)),
		fmt.Sprintf("Best WPM: %.1f", bestWPM),
		"",
	}
	for _, line := range lines {
		if _, err := fmt.Fprintln(w, line); err != nil {
			return err
		}
	}
	return nil
}

// RenderSessions prints a table of the most recent sessions, newest last.
func RenderSessions(w io.Writer, sessions []model.SessionAggregate) error {
	if len(sessions) > recentRows {
		sessions = sessions[len(sessions)-recentRows:]
	}
	headers := []string{"Ended", "Source", "Words", "Progress", "Set WPM", "Eff. WPM"}
	rows := make([][]string, 0, len(sessions))
	for _, s := range sessions {
		rows = append(rows, []string{
			s.EndedAt.Local().Format("2006-01-02 15:04"),
			s.Source,
			fmt.Sprintf("%d", s.WordsShown),
			fmt.Sprintf("%.0f%%", Completion(s.EndIndex, s.Tokens)*100),
			fmt.Sprintf("%d", s.EndWPM),
			fmt.Sprintf("%.1f", EffectiveWPM(s.WordsShown, s.DurationMs)),
		})
	}
	rightAlign := map[int]bool{2: true, 3: true, 4: true, 5: true}
	for _, line := range formatTable(headers, rows, rightAlign) {
		if _, err := fmt.Fprintln(w, line); err != nil {
			return err
		}
	}
	return nil
}

func terminalWidth() int {
	width, _, err := term.GetSize(int(os.Stdout.Fd()))
	if err != nil || width <= 0 {
		return terminalWidthBackup
	}
	return width
}
