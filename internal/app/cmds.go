package app

import (
	"context"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"pomoban/internal/domain"
	"pomoban/internal/ui/overlay"
)

// tickEvery schedules the next clock tick.
func tickEvery(d time.Duration) tea.Cmd {
	return tea.Tick(d, func(t time.Time) tea.Msg {
		return tickMsg(t)
	})
}

// raiseEvery schedules the next always-on-top reassertion.
func raiseEvery(d time.Duration) tea.Cmd {
	return tea.Tick(d, func(t time.Time) tea.Msg {
		return raiseTickMsg(t)
	})
}

// raiseCmd asks the terminal to come to the front. The service no-ops while
// the watchdog is disabled, and failures are already logged there.
func (m Model) raiseCmd() tea.Cmd {
	return func() tea.Msg {
		_ = m.topmost.Raise()
		return nil
	}
}

// loadTasksCmd fetches the full task set and the blocked map.
func (m Model) loadTasksCmd() tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), opTimeout)
		defer cancel()

		tasks, err := m.store.ListTasks(ctx)
		if err != nil {
			return tasksLoadedMsg{err: err}
		}
		blocked, err := m.deps.Blocked(ctx)
		if err != nil {
			return tasksLoadedMsg{err: err}
		}
		return tasksLoadedMsg{tasks: tasks, blocked: blocked}
	}
}

// refreshStatsCmd recomputes the focus totals shown in the list footer and
// status bar. The selected task is captured now; the query runs async.
func (m Model) refreshStatsCmd() tea.Cmd {
	var taskID, taskTitle string
	if task := m.currentTask(); task != nil {
		taskID = task.ID
		taskTitle = task.Title
	}

	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), opTimeout)
		defer cancel()

		today, err := m.stats.TodayWork(ctx, time.Now())
		if err != nil {
			return statsRefreshedMsg{err: err}
		}
		var taskWork int
		if taskID != "" {
			taskWork, err = m.stats.TaskWork(ctx, taskID)
			if err != nil {
				return statsRefreshedMsg{err: err}
			}
		}
		return statsRefreshedMsg{today: today, taskWork: taskWork, taskTitle: taskTitle}
	}
}

// createTaskCmd persists a task from the create form.
func (m Model) createTaskCmd(msg overlay.TaskCreatedMsg) tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), opTimeout)
		defer cancel()

		task := domain.NewTask(msg.Title)
		task.Notes = msg.Notes
		task.Priority = msg.Priority
		task.Due = msg.Due
		task.Repeat = msg.Repeat

		if err := m.store.CreateTask(ctx, task); err != nil {
			return taskSavedMsg{err: err}
		}
		return taskSavedMsg{id: task.ID, note: "Task created", created: true}
	}
}

// updateTaskCmd applies edits from the edit form.
func (m Model) updateTaskCmd(msg overlay.TaskEditedMsg) tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), opTimeout)
		defer cancel()

		task, err := m.store.GetTask(ctx, msg.ID)
		if err != nil {
			return taskSavedMsg{err: err}
		}
		task.Title = msg.Title
		task.Notes = msg.Notes
		task.Priority = msg.Priority
		task.Due = msg.Due
		task.Repeat = msg.Repeat

		if err := m.store.UpdateTask(ctx, task); err != nil {
			return taskSavedMsg{err: err}
		}
		return taskSavedMsg{id: task.ID, note: "Task updated"}
	}
}

// saveNotesCmd writes the notes editor's buffer back to the task.
func (m Model) saveNotesCmd(msg overlay.NotesSavedMsg) tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), opTimeout)
		defer cancel()

		task, err := m.store.GetTask(ctx, msg.ID)
		if err != nil {
			return taskSavedMsg{err: err}
		}
		task.Notes = msg.Notes

		if err := m.store.UpdateTask(ctx, task); err != nil {
			return taskSavedMsg{err: err}
		}
		return taskSavedMsg{id: task.ID, note: "Notes saved"}
	}
}

// deleteTaskCmd removes a task; sessions and dep edges cascade.
func (m Model) deleteTaskCmd(id string) tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), opTimeout)
		defer cancel()

		return taskDeletedMsg{err: m.store.DeleteTask(ctx, id)}
	}
}

// moveTaskCmd shifts a task to the given column.
func (m Model) moveTaskCmd(id string, status domain.Status) tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), opTimeout)
		defer cancel()

		if err := m.store.SetStatus(ctx, id, status); err != nil {
			return taskMovedMsg{err: err}
		}
		return taskMovedMsg{status: status}
	}
}

// markDoneCmd completes a task through the timer service, which stops the
// countdown when needed and spawns the recurrence successor.
func (m Model) markDoneCmd(id string) tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), opTimeout)
		defer cancel()

		next, err := m.timer.MarkDone(ctx, id, time.Now())
		return taskDoneMsg{next: next, err: err}
	}
}

// startTimerCmd starts a pomodoro on the given task.
func (m Model) startTimerCmd(id string) tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), opTimeout)
		defer cancel()

		return timerStartedMsg{err: m.timer.Start(ctx, id, time.Now())}
	}
}

// toggleTimerCmd pauses, resumes, or starts the countdown.
func (m Model) toggleTimerCmd(id string) tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), opTimeout)
		defer cancel()

		return timerToggledMsg{err: m.timer.Toggle(ctx, id, time.Now())}
	}
}

// resetTimerCmd stops the countdown and unbinds the active task.
func (m Model) resetTimerCmd() tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), opTimeout)
		defer cancel()

		return timerResetMsg{err: m.timer.Reset(ctx, time.Now())}
	}
}

// addDepCmd records a dependency edge; the service rejects cycles.
func (m Model) addDepCmd(msg overlay.DepAddedMsg) tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), opTimeout)
		defer cancel()

		return depSavedMsg{added: true, err: m.deps.Add(ctx, msg.TaskID, msg.DepID, msg.Kind)}
	}
}

// removeDepCmd drops a dependency edge.
func (m Model) removeDepCmd(msg overlay.DepRemovedMsg) tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), opTimeout)
		defer cancel()

		return depSavedMsg{err: m.deps.Remove(ctx, msg.TaskID, msg.DepID, msg.Kind)}
	}
}

// openDetailCmd resolves the task's dependency edges into display lines,
// then opens the detail panel. Titles come from the loaded snapshot.
func (m Model) openDetailCmd(task domain.Task) tea.Cmd {
	byID := make(map[string]domain.Task, len(m.tasks))
	for _, t := range m.tasks {
		byID[t.ID] = t
	}

	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), opTimeout)
		defer cancel()

		edges, err := m.deps.ListFor(ctx, task.ID)
		if err != nil {
			return detailReadyMsg{err: err}
		}
		lines := make([]overlay.DepLine, 0, len(edges))
		for _, d := range edges {
			dep, ok := byID[d.DepID]
			if !ok {
				continue
			}
			lines = append(lines, overlay.DepLine{
				Kind:  d.Kind,
				Title: dep.Title,
				Done:  dep.Status == domain.StatusDone,
			})
		}
		return detailReadyMsg{task: task, deps: lines}
	}
}

// openDependCmd gathers the candidate tasks and the existing edges, then
// opens the dependency picker.
func (m Model) openDependCmd(task domain.Task) tea.Cmd {
	candidates := make([]domain.Task, 0, len(m.tasks))
	for _, t := range m.tasks {
		if t.ID != task.ID {
			candidates = append(candidates, t)
		}
	}

	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), opTimeout)
		defer cancel()

		edges, err := m.deps.ListFor(ctx, task.ID)
		if err != nil {
			return dependReadyMsg{err: err}
		}
		existing := make(map[string]domain.DepKind, len(edges))
		for _, d := range edges {
			existing[d.DepID] = d.Kind
		}
		return dependReadyMsg{task: task, candidates: candidates, existing: existing}
	}
}

// Message types

// tickMsg drives the one-second clock.
type tickMsg time.Time

// raiseTickMsg drives the always-on-top watchdog interval.
type raiseTickMsg time.Time

// tasksLoadedMsg delivers a fresh task snapshot
type tasksLoadedMsg struct {
	tasks   []domain.Task
	blocked map[string]bool
	err     error
}

// statsRefreshedMsg delivers recomputed focus totals
type statsRefreshedMsg struct {
	today     int
	taskWork  int
	taskTitle string
	err       error
}

// taskSavedMsg reports a create/edit/notes write
type taskSavedMsg struct {
	id      string
	note    string
	created bool
	err     error
}

// taskDeletedMsg reports a delete
type taskDeletedMsg struct {
	err error
}

// taskMovedMsg reports a column move
type taskMovedMsg struct {
	status domain.Status
	err    error
}

// taskDoneMsg reports a completion and any recurrence successor
type taskDoneMsg struct {
	next *domain.Task
	err  error
}

// depSavedMsg reports a dependency edge change
type depSavedMsg struct {
	added bool
	err   error
}

// timerStartedMsg reports a pomodoro start
type timerStartedMsg struct {
	err error
}

// timerToggledMsg reports a pause/resume/start toggle
type timerToggledMsg struct {
	err error
}

// timerResetMsg reports a timer reset
type timerResetMsg struct {
	err error
}

// detailReadyMsg carries the resolved data for the detail panel
type detailReadyMsg struct {
	task domain.Task
	deps []overlay.DepLine
	err  error
}

// dependReadyMsg carries the resolved data for the dependency picker
type dependReadyMsg struct {
	task       domain.Task
	candidates []domain.Task
	existing   map[string]domain.DepKind
	err        error
}
