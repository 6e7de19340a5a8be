// Package present derives render data from the reader state.
package present

import (
	"fmt"
	"time"
	"unicode/utf8"

	"github.com/verte-zerg/tuiread/internal/clock"
	"github.com/verte-zerg/tuiread/internal/reader"
)

// Payload is everything a display needs to draw one frame.
type Payload struct {
	Word       string
	HasWord    bool
	Fixation   int
	Completion float64
	Remaining  time.Duration
	Playing    bool
	Finished   bool
	Index      int
	Total      int
	WPM        int
}

// Render projects state over tokens. It does not modify either.
func Render(state reader.State, tokens []string) Payload {
	total := len(tokens)
	p := Payload{
		Playing:    state.Playing,
		Finished:   state.Finished(total),
		Index:      state.Index,
		Total:      total,
		WPM:        state.WPM,
		Completion: 1,
	}
	if total > 0 {
		p.Completion = float64(state.Index) / float64(total)
	}
	if !p.Finished {
		p.Word = tokens[state.Index]
		p.HasWord = true
		p.Fixation = FixationIndex(p.Word)
		p.Remaining = time.Duration(total-state.Index) * clock.IntervalFor(state.WPM)
	}
	return p
}

// FixationIndex returns the rune index of the character to highlight.
func FixationIndex(word string) int {
	return utf8.RuneCountInString(word) / 2
}

// FormatDuration renders d as mm:ss.mmm.
func FormatDuration(d time.Duration) string {
	if d < 0 {
		d = 0
	}
	minutes := int64(d / time.Minute)
	seconds := int64(d%time.Minute) / int64(time.Second)
	millis := int64(d%time.Second) / int64(time.Millisecond)
	return fmt.Sprintf("%02d:%02d.%03d", minutes, seconds, millis)
}
