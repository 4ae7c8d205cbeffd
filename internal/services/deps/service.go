// Package deps manages blocker and waiting-on edges between tasks. Every
// mutation re-checks the graph so it stays acyclic.
package deps

import (
	"context"
	"log/slog"
	"time"

	"github.com/gammazero/toposort"

	"pomoban/internal/domain"
	"pomoban/internal/storage"
)

// Service validates and stores dependency edges.
type Service struct {
	store  *storage.Store
	logger *slog.Logger
}

// NewService creates a dependency service.
func NewService(store *storage.Store, logger *slog.Logger) *Service {
	return &Service{store: store, logger: logger}
}

// Add records that task depends on dep. The edge is rejected when either
// task is missing, the edge already exists, or it would close a cycle.
// Blocker and waiting-on edges share one graph for the cycle check: a
// waiting-on loop deadlocks the board just as hard.
func (s *Service) Add(ctx context.Context, taskID, depID string, kind domain.DepKind) error {
	if taskID == depID {
		return &domain.TaskError{Op: "depend", TaskID: taskID, Err: domain.ErrDependencyCycle}
	}
	if _, err := s.store.GetTask(ctx, taskID); err != nil {
		return &domain.TaskError{Op: "depend", TaskID: taskID, Err: err}
	}
	if _, err := s.store.GetTask(ctx, depID); err != nil {
		return &domain.TaskError{Op: "depend", TaskID: depID, Err: err}
	}

	existing, err := s.store.ListAllDeps(ctx)
	if err != nil {
		return &domain.TaskError{Op: "depend", TaskID: taskID, Err: err}
	}
	edges := make([]toposort.Edge, 0, len(existing)+1)
	for _, d := range existing {
		// Edge (dep, task): the dependency must resolve first.
		edges = append(edges, toposort.Edge{d.DepID, d.TaskID})
	}
	edges = append(edges, toposort.Edge{depID, taskID})
	if _, err := toposort.Toposort(edges); err != nil {
		s.logger.Debug("dependency rejected", "task", taskID, "dep", depID, "reason", err)
		return &domain.TaskError{Op: "depend", TaskID: taskID, Err: domain.ErrDependencyCycle}
	}

	dep := domain.Dep{TaskID: taskID, DepID: depID, Kind: kind, CreatedAt: time.Now()}
	if err := s.store.AddDep(ctx, dep); err != nil {
		return &domain.TaskError{Op: "depend", TaskID: taskID, Err: err}
	}
	s.logger.Debug("dependency added", "task", taskID, "dep", depID, "kind", kind.String())
	return nil
}

// Remove deletes one edge.
func (s *Service) Remove(ctx context.Context, taskID, depID string, kind domain.DepKind) error {
	if err := s.store.RemoveDep(ctx, taskID, depID, kind); err != nil {
		return &domain.TaskError{Op: "undepend", TaskID: taskID, Err: err}
	}
	return nil
}

// ListFor returns the edges hanging off one task, oldest first.
func (s *Service) ListFor(ctx context.Context, taskID string) ([]domain.Dep, error) {
	deps, err := s.store.ListDeps(ctx, taskID)
	if err != nil {
		return nil, &domain.TaskError{Op: "deps", TaskID: taskID, Err: err}
	}
	return deps, nil
}

// Blocked reports which tasks have at least one unresolved dependency. A
// dependency resolves when the task it points at is done.
func (s *Service) Blocked(ctx context.Context) (map[string]bool, error) {
	edges, err := s.store.ListAllDeps(ctx)
	if err != nil {
		return nil, &domain.TaskError{Op: "deps", Err: err}
	}
	if len(edges) == 0 {
		return map[string]bool{}, nil
	}

	tasks, err := s.store.ListTasks(ctx)
	if err != nil {
		return nil, &domain.TaskError{Op: "deps", Err: err}
	}
	status := make(map[string]domain.Status, len(tasks))
	for _, t := range tasks {
		status[t.ID] = t.Status
	}

	blocked := map[string]bool{}
	for _, e := range edges {
		st, ok := status[e.DepID]
		if !ok {
			// Dangling edge; cascade delete should have removed it.
			continue
		}
		if st != domain.StatusDone {
			blocked[e.TaskID] = true
		}
	}
	return blocked, nil
}
