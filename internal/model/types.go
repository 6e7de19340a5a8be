// Package model defines shared data structures.
package model

import "time"

// Config defines playback settings.
type Config struct {
	WPM     int
	Start   int
	Step    int
	Jump    int
	Zen     bool
	History bool
}

// HistoryConfig defines filters for the history report.
type HistoryConfig struct {
	Since *time.Time
	Last  int
}

// SessionStats captures a finished reading run.
type SessionStats struct {
	StartedAt  time.Time
	EndedAt    time.Time
	Source     string
	Tokens     int
	StartIndex int
	EndIndex   int
	WordsShown int
	StartWPM   int
	EndWPM     int
	DurationMs int64
}

// SessionAggregate summarizes a stored session for reporting.
type SessionAggregate struct {
	SessionID  int64
	EndedAt    time.Time
	Source     string
	Tokens     int
	EndIndex   int
	WordsShown int
	EndWPM     int
	DurationMs int64
}
