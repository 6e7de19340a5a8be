// Package control drives the reader from input symbols and clock ticks.
package control

import (
	"time"

	"github.com/verte-zerg/tuiread/internal/clock"
	"github.com/verte-zerg/tuiread/internal/model"
	"github.com/verte-zerg/tuiread/internal/present"
	"github.com/verte-zerg/tuiread/internal/reader"
)

const (
	defaultStep = 50
	defaultJump = 10
)

// Controller owns the token sequence, the reader state and the countdown.
// It is not safe for concurrent use; a single event loop calls into it.
type Controller struct {
	tokens    []string
	state     reader.State
	countdown clock.Countdown
	step      int
	jump      int
	zen       bool

	startIndex int
	startWPM   int
	wordsShown int
}

// New binds tokens to a fresh paused reader built from cfg.
func New(tokens []string, cfg model.Config) *Controller {
	state := reader.New(len(tokens), cfg)
	step := cfg.Step
	if step <= 0 {
		step = defaultStep
	}
	jump := cfg.Jump
	if jump <= 0 {
		jump = defaultJump
	}
	c := &Controller{
		tokens:     tokens,
		state:      state,
		countdown:  clock.NewCountdown(state.WPM),
		step:       step,
		jump:       jump,
		zen:        cfg.Zen,
		startIndex: state.Index,
		startWPM:   state.WPM,
	}
	if !state.Finished(len(tokens)) {
		c.wordsShown = 1
	}
	return c
}

// Handle applies one input symbol. It reports true when the loop should end.
func (c *Controller) Handle(sym Symbol, now time.Time) bool {
	total := len(c.tokens)
	switch sym {
	case Quit:
		c.countdown.Stop()
		return true
	case TogglePlay:
		c.state = c.state.TogglePlay(total)
		if c.state.Playing {
			c.countdown.Resume(now)
		} else {
			c.countdown.Suspend(now)
		}
	case IncreaseWPM:
		c.setWPM(c.step)
	case DecreaseWPM:
		c.setWPM(-c.step)
	case NextWord:
		c.move(c.state.Advance(total), now)
	case PrevWord:
		c.move(c.state.Retreat(total), now)
	case JumpForward:
		c.move(c.state.Seek(c.state.Index+c.jump, total), now)
	case JumpBack:
		c.move(c.state.Seek(c.state.Index-c.jump, total), now)
	case Restart:
		c.move(c.state.Restart(), now)
	case ToggleZen:
		c.zen = !c.zen
	}
	return false
}

// Tick advances one word when the countdown is due. Early or stray ticks are
// ignored. It reports whether the state changed.
func (c *Controller) Tick(now time.Time) bool {
	if !c.state.Playing || !c.countdown.Due(now) {
		return false
	}
	c.state = c.state.Advance(len(c.tokens))
	c.noteShown()
	if c.state.Playing {
		c.countdown.Start(now)
	} else {
		c.countdown.Stop()
	}
	return true
}

// Wait returns the time until the next tick and whether a tick is pending.
func (c *Controller) Wait(now time.Time) (time.Duration, bool) {
	if !c.state.Playing || !c.countdown.Armed() {
		return 0, false
	}
	return c.countdown.Until(now), true
}

// Payload renders the current state.
func (c *Controller) Payload() present.Payload {
	return present.Render(c.state, c.tokens)
}

// State returns a copy of the reader state.
func (c *Controller) State() reader.State {
	return c.state
}

// Zen reports whether auxiliary display fields should be hidden.
func (c *Controller) Zen() bool {
	return c.zen
}

// Summary describes the run so far for the history store.
func (c *Controller) Summary() model.SessionStats {
	return model.SessionStats{
		Tokens:     len(c.tokens),
		StartIndex: c.startIndex,
		EndIndex:   c.state.Index,
		WordsShown: c.wordsShown,
		StartWPM:   c.startWPM,
		EndWPM:     c.state.WPM,
	}
}

func (c *Controller) setWPM(delta int) {
	c.state = c.state.SetWPM(delta)
	c.countdown.SetWPM(c.state.WPM)
}

func (c *Controller) move(next reader.State, now time.Time) {
	changed := next.Index != c.state.Index
	c.state = next
	if changed {
		c.noteShown()
	}
	switch {
	case c.state.Finished(len(c.tokens)):
		c.countdown.Stop()
	case changed:
		c.countdown.Reset(now)
	}
}

func (c *Controller) noteShown() {
	if !c.state.Finished(len(c.tokens)) {
		c.wordsShown++
	}
}
