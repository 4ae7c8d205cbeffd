package domain

import (
	"errors"
	"fmt"
)

// Sentinel errors
var (
	ErrNotFound        = errors.New("not found")
	ErrConflict        = errors.New("conflict")
	ErrInvalidDate     = errors.New("invalid date")
	ErrDependencyCycle = errors.New("dependency cycle")
	ErrNoActiveTask    = errors.New("no task selected")
	ErrUserCanceled    = errors.New("user canceled")
)

// TaskError represents an error from a task operation
type TaskError struct {
	Op      string // Operation: "create", "update", "move", etc.
	TaskID  string // Optional: specific task ID
	Message string // Human-readable context
	Err     error  // Underlying error
}

func (e *TaskError) Error() string {
	if e.TaskID != "" {
		return fmt.Sprintf("task %s [%s]: %s", e.Op, e.TaskID, e.Message)
	}
	if e.Message != "" {
		return fmt.Sprintf("task %s: %s", e.Op, e.Message)
	}
	if e.Err != nil {
		return fmt.Sprintf("task %s: %v", e.Op, e.Err)
	}
	return fmt.Sprintf("task %s failed", e.Op)
}

func (e *TaskError) Unwrap() error {
	return e.Err
}

// TimerError represents an error from the pomodoro timer service
type TimerError struct {
	Op     string
	TaskID string
	Err    error
}

func (e *TimerError) Error() string {
	if e.TaskID != "" {
		return fmt.Sprintf("timer %s [%s]: %v", e.Op, e.TaskID, e.Err)
	}
	return fmt.Sprintf("timer %s: %v", e.Op, e.Err)
}

func (e *TimerError) Unwrap() error {
	return e.Err
}

// StoreError represents an error from the persistence layer
type StoreError struct {
	Op    string
	Table string
	Err   error
}

func (e *StoreError) Error() string {
	if e.Table != "" {
		return fmt.Sprintf("store %s [%s]: %v", e.Op, e.Table, e.Err)
	}
	return fmt.Sprintf("store %s: %v", e.Op, e.Err)
}

func (e *StoreError) Unwrap() error {
	return e.Err
}
