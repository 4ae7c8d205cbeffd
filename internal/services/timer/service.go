// Package timer binds the countdown engine to persistence: it keeps the
// active task, logs work/break sessions at phase boundaries, and applies
// completion side effects like recurrence.
package timer

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"pomoban/internal/core/countdown"
	"pomoban/internal/domain"
	"pomoban/internal/storage"
)

// Service drives one pomodoro at a time against the focused task.
type Service struct {
	store  *storage.Store
	engine *countdown.Engine
	logger *slog.Logger

	activeTaskID string
	sessionID    int64 // open session row, 0 when none
}

// NewService creates a timer service around an engine and store.
func NewService(store *storage.Store, engine *countdown.Engine, logger *slog.Logger) *Service {
	return &Service{
		store:  store,
		engine: engine,
		logger: logger,
	}
}

// Engine exposes the underlying countdown engine for rendering.
func (s *Service) Engine() *countdown.Engine {
	return s.engine
}

// ActiveTaskID returns the focused task's ID, or "" when none is focused.
func (s *Service) ActiveTaskID() string {
	return s.activeTaskID
}

// Restore recovers state from a previous run: closes sessions left open by
// a crash and reloads the focused task. Returns false when no valid focused
// task was stored.
func (s *Service) Restore(ctx context.Context, now time.Time) (domain.Task, bool, error) {
	n, err := s.store.CloseDanglingSessions(ctx, now)
	if err != nil {
		return domain.Task{}, false, &domain.TimerError{Op: "restore", Err: err}
	}
	if n > 0 {
		s.logger.Warn("closed dangling sessions", "count", n)
	}

	id, err := s.store.GetState(ctx, storage.StateActiveTask)
	if errors.Is(err, domain.ErrNotFound) {
		return domain.Task{}, false, nil
	}
	if err != nil {
		return domain.Task{}, false, &domain.TimerError{Op: "restore", Err: err}
	}

	task, err := s.store.GetTask(ctx, id)
	if errors.Is(err, domain.ErrNotFound) {
		// Stored focus points at a deleted task; drop it.
		if err := s.store.ClearState(ctx, storage.StateActiveTask); err != nil {
			return domain.Task{}, false, &domain.TimerError{Op: "restore", Err: err}
		}
		return domain.Task{}, false, nil
	}
	if err != nil {
		return domain.Task{}, false, &domain.TimerError{Op: "restore", TaskID: id, Err: err}
	}

	s.activeTaskID = task.ID
	s.logger.Debug("restored focused task", "id", task.ID)
	return task, true, nil
}

// SetActiveTask focuses a task without starting the timer. An empty ID
// clears the focus.
func (s *Service) SetActiveTask(ctx context.Context, id string) error {
	if id == "" {
		if err := s.store.ClearState(ctx, storage.StateActiveTask); err != nil {
			return &domain.TimerError{Op: "focus", Err: err}
		}
		s.activeTaskID = ""
		return nil
	}
	if _, err := s.store.GetTask(ctx, id); err != nil {
		return &domain.TimerError{Op: "focus", TaskID: id, Err: err}
	}
	if err := s.store.SetState(ctx, storage.StateActiveTask, id); err != nil {
		return &domain.TimerError{Op: "focus", TaskID: id, Err: err}
	}
	s.activeTaskID = id
	s.logger.Debug("focused task", "id", id)
	return nil
}

// Start begins a fresh work phase against the given task. The task is
// focused, moved to doing, and a work session is opened.
func (s *Service) Start(ctx context.Context, taskID string, now time.Time) error {
	if taskID == "" {
		return &domain.TimerError{Op: "start", Err: domain.ErrNoActiveTask}
	}
	task, err := s.store.GetTask(ctx, taskID)
	if err != nil {
		return &domain.TimerError{Op: "start", TaskID: taskID, Err: err}
	}

	// Restarting abandons any interval already underway.
	if err := s.closeSession(ctx, now); err != nil {
		return &domain.TimerError{Op: "start", TaskID: taskID, Err: err}
	}

	if task.Status != domain.StatusDoing {
		if err := s.store.SetStatus(ctx, task.ID, domain.StatusDoing); err != nil {
			return &domain.TimerError{Op: "start", TaskID: taskID, Err: err}
		}
	}
	if err := s.store.SetState(ctx, storage.StateActiveTask, task.ID); err != nil {
		return &domain.TimerError{Op: "start", TaskID: taskID, Err: err}
	}
	s.activeTaskID = task.ID

	s.engine.Start()
	if err := s.openSession(ctx, now); err != nil {
		return &domain.TimerError{Op: "start", TaskID: taskID, Err: err}
	}

	s.logger.Info("pomodoro started", "task", task.ID, "budget_sec", s.engine.Budget())
	return nil
}

// Pause suspends a running timer and closes the open session. Pausing an
// idle or already paused timer is a no-op.
func (s *Service) Pause(ctx context.Context, now time.Time) error {
	if !s.engine.Running() {
		return nil
	}
	s.engine.Pause()
	if err := s.closeSession(ctx, now); err != nil {
		return &domain.TimerError{Op: "pause", TaskID: s.activeTaskID, Err: err}
	}
	s.logger.Debug("pomodoro paused", "task", s.activeTaskID, "remaining_sec", s.engine.Remaining())
	return nil
}

// Resume continues a paused timer, opening a new session for the current
// phase. Resuming when not paused is a no-op.
func (s *Service) Resume(ctx context.Context, now time.Time) error {
	if !s.engine.Paused() {
		return nil
	}
	s.engine.Resume()
	if err := s.openSession(ctx, now); err != nil {
		return &domain.TimerError{Op: "resume", TaskID: s.activeTaskID, Err: err}
	}
	s.logger.Debug("pomodoro resumed", "task", s.activeTaskID, "remaining_sec", s.engine.Remaining())
	return nil
}

// Toggle pauses a running timer, resumes a paused one, and starts a fresh
// one on the given task when idle.
func (s *Service) Toggle(ctx context.Context, taskID string, now time.Time) error {
	switch {
	case s.engine.Running():
		return s.Pause(ctx, now)
	case s.engine.Paused():
		return s.Resume(ctx, now)
	default:
		return s.Start(ctx, taskID, now)
	}
}

// Reset stops the timer, closes any open session, and clears the focused
// task.
func (s *Service) Reset(ctx context.Context, now time.Time) error {
	if err := s.closeSession(ctx, now); err != nil {
		return &domain.TimerError{Op: "reset", TaskID: s.activeTaskID, Err: err}
	}
	s.engine.Reset()
	if err := s.store.ClearState(ctx, storage.StateActiveTask); err != nil {
		return &domain.TimerError{Op: "reset", TaskID: s.activeTaskID, Err: err}
	}
	s.logger.Debug("pomodoro reset", "task", s.activeTaskID)
	s.activeTaskID = ""
	return nil
}

// Tick advances a running timer by one second. When the phase flips it
// closes the finished session and opens one for the new phase, returning
// true and the phase just entered.
func (s *Service) Tick(ctx context.Context, now time.Time) (bool, domain.SessionKind, error) {
	if !s.engine.Running() {
		return false, s.engine.Phase(), nil
	}
	if !s.engine.Tick() {
		return false, s.engine.Phase(), nil
	}
	if err := s.closeSession(ctx, now); err != nil {
		return true, s.engine.Phase(), &domain.TimerError{Op: "tick", TaskID: s.activeTaskID, Err: err}
	}
	if err := s.openSession(ctx, now); err != nil {
		return true, s.engine.Phase(), &domain.TimerError{Op: "tick", TaskID: s.activeTaskID, Err: err}
	}
	s.logger.Info("phase complete", "task", s.activeTaskID, "next", s.engine.Phase().String())
	return true, s.engine.Phase(), nil
}

// MarkDone completes a task. If it is the focused task the timer stops and
// the focus clears. A repeating task with a due date spawns its next
// instance, which is returned for surfacing in the UI.
func (s *Service) MarkDone(ctx context.Context, taskID string, now time.Time) (*domain.Task, error) {
	task, err := s.store.GetTask(ctx, taskID)
	if err != nil {
		return nil, &domain.TimerError{Op: "done", TaskID: taskID, Err: err}
	}

	// Completion consumes the recurrence rule exactly once; re-completing
	// a done task must not spawn another successor.
	if task.Status == domain.StatusDone {
		return nil, nil
	}

	if taskID == s.activeTaskID {
		if err := s.closeSession(ctx, now); err != nil {
			return nil, &domain.TimerError{Op: "done", TaskID: taskID, Err: err}
		}
		s.engine.Reset()
		if err := s.store.ClearState(ctx, storage.StateActiveTask); err != nil {
			return nil, &domain.TimerError{Op: "done", TaskID: taskID, Err: err}
		}
		s.activeTaskID = ""
	}

	if err := s.store.SetStatus(ctx, taskID, domain.StatusDone); err != nil {
		return nil, &domain.TimerError{Op: "done", TaskID: taskID, Err: err}
	}

	next, ok := domain.Successor(task, now)
	if !ok {
		s.logger.Info("task completed", "task", taskID)
		return nil, nil
	}
	if err := s.store.CreateTask(ctx, next); err != nil {
		return nil, &domain.TimerError{Op: "done", TaskID: taskID, Err: err}
	}
	s.logger.Info("task completed, recurrence spawned",
		"task", taskID, "next", next.ID, "due", next.DueString())
	return &next, nil
}

func (s *Service) openSession(ctx context.Context, now time.Time) error {
	id, err := s.store.StartSession(ctx, s.activeTaskID, s.engine.Phase(), now)
	if err != nil {
		return err
	}
	s.sessionID = id
	return nil
}

func (s *Service) closeSession(ctx context.Context, now time.Time) error {
	if s.sessionID == 0 {
		return nil
	}
	if err := s.store.EndSession(ctx, s.sessionID, now); err != nil {
		return err
	}
	s.sessionID = 0
	return nil
}
