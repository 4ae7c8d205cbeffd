// Package countdown provides the pomodoro countdown state machine.
//
// The engine is pure state: it owns the phase (work/break), the run state,
// and the seconds remaining, and advances by exactly one second per Tick.
// Session logging and task wiring live in services/timer.
package countdown

import (
	"fmt"

	"pomoban/internal/domain"
)

// Default phase budgets in seconds.
const (
	DefaultWorkSec  = 25 * 60
	DefaultBreakSec = 5 * 60
)

// State is the run state of the countdown.
type State int

const (
	StateIdle State = iota
	StateRunning
	StatePaused
)

// String returns the display string
func (s State) String() string {
	switch s {
	case StateRunning:
		return "running"
	case StatePaused:
		return "paused"
	default:
		return "idle"
	}
}

// Engine is the countdown state machine. Use New; the zero value has no
// phase budgets.
type Engine struct {
	workSec  int
	breakSec int

	phase     domain.SessionKind
	state     State
	remaining int
}

// New creates an idle engine with the given phase budgets in seconds.
// Budgets that are zero or negative fall back to the defaults.
func New(workSec, breakSec int) *Engine {
	if workSec <= 0 {
		workSec = DefaultWorkSec
	}
	if breakSec <= 0 {
		breakSec = DefaultBreakSec
	}
	e := &Engine{workSec: workSec, breakSec: breakSec}
	e.Reset()
	return e
}

// Phase returns the current pomodoro phase.
func (e *Engine) Phase() domain.SessionKind {
	return e.phase
}

// State returns the current run state.
func (e *Engine) State() State {
	return e.state
}

// Remaining returns the seconds left in the current phase.
func (e *Engine) Remaining() int {
	return e.remaining
}

// Running reports whether the countdown is ticking.
func (e *Engine) Running() bool {
	return e.state == StateRunning
}

// Idle reports whether the countdown has not been started.
func (e *Engine) Idle() bool {
	return e.state == StateIdle
}

// Paused reports whether the countdown is paused.
func (e *Engine) Paused() bool {
	return e.state == StatePaused
}

// Budget returns the full length of the current phase in seconds.
func (e *Engine) Budget() int {
	if e.phase == domain.SessionBreak {
		return e.breakSec
	}
	return e.workSec
}

// Start begins a fresh work phase running from a full budget.
func (e *Engine) Start() {
	e.phase = domain.SessionWork
	e.remaining = e.workSec
	e.state = StateRunning
}

// Pause halts the countdown. No-op when not running.
func (e *Engine) Pause() {
	if e.state == StateRunning {
		e.state = StatePaused
	}
}

// Resume continues a paused countdown. No-op when not paused.
func (e *Engine) Resume() {
	if e.state == StatePaused {
		e.state = StateRunning
	}
}

// Reset returns to an idle work phase with a full budget.
func (e *Engine) Reset() {
	e.phase = domain.SessionWork
	e.state = StateIdle
	e.remaining = e.workSec
}

// Tick advances the countdown by one second. It reports true when the
// phase rolled over (work to break, or break back to work); the new phase
// starts running from its full budget.
func (e *Engine) Tick() bool {
	if e.state != StateRunning {
		return false
	}
	e.remaining--
	if e.remaining > 0 {
		return false
	}
	if e.phase == domain.SessionWork {
		e.phase = domain.SessionBreak
		e.remaining = e.breakSec
	} else {
		e.phase = domain.SessionWork
		e.remaining = e.workSec
	}
	return true
}

// Clock formats the remaining time as mm:ss.
func (e *Engine) Clock() string {
	return fmt.Sprintf("%02d:%02d", e.remaining/60, e.remaining%60)
}

// Progress reports the completed fraction of the current phase, 0..1.
func (e *Engine) Progress() float64 {
	b := e.Budget()
	if b <= 0 {
		return 0
	}
	return float64(b-e.remaining) / float64(b)
}
