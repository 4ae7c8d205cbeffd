package domain

import "time"

// PomodoroSession is one logged stretch of focused work or rest.
type PomodoroSession struct {
	ID          int64
	TaskID      string // empty when the timer ran without a task
	Kind        SessionKind
	StartedAt   time.Time
	EndedAt     *time.Time
	DurationSec int
}

// Ended reports whether the session has been closed.
func (s PomodoroSession) Ended() bool {
	return s.EndedAt != nil
}

// SessionKind labels which pomodoro phase a session logged.
type SessionKind string

const (
	SessionWork  SessionKind = "work"
	SessionBreak SessionKind = "break"
)

// Icon returns a unicode icon for the kind
func (k SessionKind) Icon() string {
	switch k {
	case SessionWork:
		return "●"
	case SessionBreak:
		return "○"
	default:
		return "?"
	}
}

// String returns the display string
func (k SessionKind) String() string {
	return string(k)
}

// Label returns the phase name shown in the timer bar.
func (k SessionKind) Label() string {
	switch k {
	case SessionBreak:
		return "Rest Time"
	default:
		return "Deep Work"
	}
}
