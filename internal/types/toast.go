package types

import "time"

// ToastTTL is how long a toast stays on screen.
const ToastTTL = 4 * time.Second

// Toast represents a notification message
type Toast struct {
	Level   ToastLevel
	Message string
	Expires time.Time
}

// NewToast creates a toast expiring ToastTTL from now.
func NewToast(level ToastLevel, message string, now time.Time) Toast {
	return Toast{Level: level, Message: message, Expires: now.Add(ToastTTL)}
}

// Expired reports whether the toast should be dropped.
func (t Toast) Expired(now time.Time) bool {
	return now.After(t.Expires)
}

// ToastLevel indicates the severity of a toast
type ToastLevel int

const (
	ToastInfo ToastLevel = iota
	ToastSuccess
	ToastWarning
	ToastError
)
