// Package reader implements the playback state machine.
//
// State is a plain value. Every transition returns a new State and leaves the
// receiver untouched; the token count is passed in where a transition needs it.
// Out-of-range requests saturate instead of failing.
package reader

import "github.com/verte-zerg/tuiread/internal/model"

// State is the position and playback status of a reading session.
// Index == total means finished: nothing is shown and Playing is false.
type State struct {
	Index   int
	Playing bool
	WPM     int
}

// New returns the initial paused state for a document of total tokens.
func New(total int, cfg model.Config) State {
	s := State{WPM: clampWPM(cfg.WPM)}
	if total <= 0 {
		return s
	}
	s.Index = clamp(cfg.Start, 0, total-1)
	return s
}

// Finished reports whether the index is past the last token.
func (s State) Finished(total int) bool {
	return s.Index >= total
}

// TogglePlay switches between playing and paused. A finished state stays paused.
func (s State) TogglePlay(total int) State {
	if s.Finished(total) {
		s.Playing = false
		return s
	}
	s.Playing = !s.Playing
	return s
}

// Advance moves to the next token, finishing after the last one.
func (s State) Advance(total int) State {
	if s.Index < total {
		s.Index++
	}
	return s.settle(total)
}

// Retreat moves to the previous token. Leaving the finished position always
// lands paused on the last token.
func (s State) Retreat(total int) State {
	if s.Finished(total) {
		s.Index = max(total-1, 0)
		s.Playing = false
		return s
	}
	if s.Index > 0 {
		s.Index--
	}
	return s
}

// Restart rewinds to the first token without changing the play status.
func (s State) Restart() State {
	s.Index = 0
	return s
}

// Seek jumps to index, clamped to [0, total].
func (s State) Seek(index, total int) State {
	s.Index = clamp(index, 0, max(total, 0))
	return s.settle(total)
}

// SetWPM changes the rate by delta, never going below 1.
func (s State) SetWPM(delta int) State {
	s.WPM = clampWPM(s.WPM + delta)
	return s
}

func (s State) settle(total int) State {
	if s.Finished(total) {
		s.Playing = false
	}
	return s
}

func clampWPM(wpm int) int {
	if wpm < 1 {
		return 1
	}
	return wpm
}

func clamp(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
