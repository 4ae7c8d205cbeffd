package domain

import "time"

// DepKind distinguishes the two dependency lists a task carries.
type DepKind string

const (
	DepBlocker DepKind = "blocker"
	DepWaiting DepKind = "waiting"
)

// String returns the display string
func (k DepKind) String() string {
	return string(k)
}

// ParseDepKind normalizes stored text; unrecognized values are blockers.
func ParseDepKind(s string) DepKind {
	if DepKind(s) == DepWaiting {
		return DepWaiting
	}
	return DepBlocker
}

// Dep is one dependency edge: TaskID depends on DepID.
type Dep struct {
	TaskID    string
	DepID     string
	Kind      DepKind
	CreatedAt time.Time
}
