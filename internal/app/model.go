// Package app contains the main application model and TEA implementation.
package app

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"pomoban/internal/config"
	"pomoban/internal/domain"
	"pomoban/internal/services/deps"
	"pomoban/internal/services/editor"
	"pomoban/internal/services/navigation"
	"pomoban/internal/services/stats"
	"pomoban/internal/services/timer"
	"pomoban/internal/services/topmost"
	"pomoban/internal/storage"
	"pomoban/internal/types"
	"pomoban/internal/ui/board"
	"pomoban/internal/ui/list"
	"pomoban/internal/ui/overlay"
	"pomoban/internal/ui/pomodoro"
	"pomoban/internal/ui/rest"
	"pomoban/internal/ui/styles"
	"pomoban/internal/ui/toast"
)

// Re-export Mode type and constants for convenience
type Mode = types.Mode

const (
	ModeNormal = types.ModeNormal
	ModeSearch = types.ModeSearch
	ModeGoto   = types.ModeGoto
)

// Re-export Toast type and constants for convenience
type Toast = types.Toast
type ToastLevel = types.ToastLevel

const (
	ToastInfo    = types.ToastInfo
	ToastSuccess = types.ToastSuccess
	ToastWarning = types.ToastWarning
	ToastError   = types.ToastError
)

// opTimeout bounds every storage call issued from a command.
const opTimeout = 5 * time.Second

// Services bundles the backend services the model drives. The caller owns
// construction and the store's lifetime; the model only issues calls.
type Services struct {
	Store   *storage.Store
	Timer   *timer.Service
	Stats   *stats.Service
	Deps    *deps.Service
	Topmost *topmost.Service
}

// Model is the main application state
type Model struct {
	// Core data
	tasks   []domain.Task
	blocked map[string]bool

	// Backend services
	store   *storage.Store
	timer   *timer.Service
	stats   *stats.Service
	deps    *deps.Service
	topmost *topmost.Service

	// Navigation (ID-based cursor over board columns)
	nav *navigation.Service

	// Editor state (mode, filter, sort)
	editor *editor.Service

	// UI state
	overlayStack *overlay.Stack
	listMode     bool
	listChip     string
	listView     *list.View
	pomo         *pomodoro.Widget
	restView     *rest.View
	resting      bool

	// Task awaiting delete confirmation
	pendingDelete string

	// Cached stats for the list footer
	todayWorkSec int
	taskWorkSec  int
	taskTitle    string

	// Toasts
	toasts []Toast

	// Terminal size
	width  int
	height int

	// Wall clock, advanced by the tick loop so View stays pure
	now time.Time

	styles  *styles.Styles
	config  *config.Config
	loading bool
	spinner spinner.Model
	logger  *slog.Logger
}

// New creates a new application model with the given config and services
func New(cfg *config.Config, svc Services, logger *slog.Logger) Model {
	if logger == nil {
		logger = slog.Default()
	}

	sp := spinner.New()
	sp.Spinner = spinner.Dot
	sp.Style = lipgloss.NewStyle().Foreground(styles.Blue)

	ed := editor.NewService()
	applySortDefaults(ed, cfg.Board)

	st := styles.New()

	return Model{
		tasks:        []domain.Task{},
		blocked:      map[string]bool{},
		store:        svc.Store,
		timer:        svc.Timer,
		stats:        svc.Stats,
		deps:         svc.Deps,
		topmost:      svc.Topmost,
		nav:          navigation.NewService(),
		editor:       ed,
		overlayStack: overlay.NewStack(),
		listChip:     chipDefault(cfg.Board.DefaultFilter),
		listView:     list.NewView(nil, 0, 0),
		pomo:         pomodoro.NewWidget(st, 0),
		restView:     rest.NewView(st, 0, 0),
		toasts:       []Toast{},
		now:          time.Now(),
		styles:       st,
		config:       cfg,
		loading:      true,
		spinner:      sp,
		logger:       logger,
	}
}

// applySortDefaults seeds the editor's sort state from the board config.
func applySortDefaults(ed *editor.Service, bc config.BoardConfig) {
	switch bc.DefaultSort {
	case "priority":
		ed.SetSortField(domain.SortByPriority)
	case "due":
		ed.SetSortField(domain.SortByDue)
	case "updated":
		ed.SetSortField(domain.SortByUpdated)
	}
	switch bc.SortOrder {
	case "asc":
		ed.SetSortOrder(domain.SortAsc)
	case "desc":
		ed.SetSortOrder(domain.SortDesc)
	}
}

// chipDefault validates the configured default filter chip.
func chipDefault(filter string) string {
	switch filter {
	case string(domain.StatusTodo), string(domain.StatusDoing), string(domain.StatusDone):
		return filter
	default:
		return list.ChipAll
	}
}

// Init returns the initial command for the application
func (m Model) Init() tea.Cmd {
	return tea.Batch(
		m.spinner.Tick,
		m.loadTasksCmd(),
		m.refreshStatsCmd(),
		tickEvery(time.Second),
		raiseEvery(m.config.Topmost.Interval()),
	)
}

// Update handles incoming messages and updates the model
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.pomo.SetWidth(msg.Width)
		m.restView.SetDimensions(msg.Width, msg.Height)
		return m, nil

	case spinner.TickMsg:
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd

	case tea.KeyMsg:
		if m.resting {
			return m.handleRestKey(msg)
		}
		// If overlay is open, route to overlay stack
		if !m.overlayStack.IsEmpty() {
			return m.handleOverlayKey(msg)
		}
		return m.handleKey(msg)

	case tea.FocusMsg:
		return m, m.raiseCmd()

	case tea.BlurMsg:
		return m, m.raiseCmd()

	// Overlay messages
	case overlay.CloseOverlayMsg:
		m.overlayStack.Pop()
		if m.editor.IsSearch() {
			m.editor.EnterNormal()
		}
		return m, nil

	case overlay.SelectionMsg:
		return m.handleSelection(msg)

	case overlay.SearchMsg:
		m.editor.SetSearchQuery(msg.Query)
		if s, ok := m.overlayStack.Current().(*overlay.SearchOverlay); ok {
			s.SetMatchCount(len(m.editor.FilterAndSort(m.tasks)))
		}
		return m, nil

	case overlay.TaskCreatedMsg:
		return m, m.createTaskCmd(msg)

	case overlay.TaskEditedMsg:
		return m, m.updateTaskCmd(msg)

	case overlay.NotesSavedMsg:
		return m, m.saveNotesCmd(msg)

	case overlay.DepAddedMsg:
		return m, m.addDepCmd(msg)

	case overlay.DepRemovedMsg:
		return m, m.removeDepCmd(msg)

	// Command results
	case tasksLoadedMsg:
		return m.handleTasksLoaded(msg)

	case statsRefreshedMsg:
		if msg.err != nil {
			m.logger.Error("stats refresh failed", "error", msg.err)
			return m, nil
		}
		m.todayWorkSec = msg.today
		m.taskWorkSec = msg.taskWork
		m.taskTitle = msg.taskTitle
		return m, nil

	case detailReadyMsg:
		if msg.err != nil {
			m.addToast(ToastError, msg.err.Error())
			return m, nil
		}
		return m, m.overlayStack.Push(overlay.NewDetailPanel(msg.task, msg.deps))

	case dependReadyMsg:
		if msg.err != nil {
			m.addToast(ToastError, msg.err.Error())
			return m, nil
		}
		return m, m.overlayStack.Push(overlay.NewDependOverlay(msg.task, msg.candidates, msg.existing))

	case taskSavedMsg:
		return m.handleTaskSaved(msg)

	case taskDeletedMsg:
		if msg.err != nil {
			m.addToast(ToastError, msg.err.Error())
			return m, nil
		}
		m.addToast(ToastSuccess, "Task deleted")
		return m, m.loadTasksCmd()

	case taskMovedMsg:
		if msg.err != nil {
			m.addToast(ToastError, msg.err.Error())
			return m, nil
		}
		m.addToast(ToastSuccess, "Moved to "+msg.status.Label())
		return m, m.loadTasksCmd()

	case taskDoneMsg:
		return m.handleTaskDone(msg)

	case depSavedMsg:
		return m.handleDepSaved(msg)

	case timerStartedMsg:
		if msg.err != nil {
			m.addToast(ToastError, msg.err.Error())
			return m, nil
		}
		m.addToast(ToastSuccess, "Pomodoro started")
		return m, m.loadTasksCmd()

	case timerToggledMsg:
		if msg.err != nil {
			m.addToast(ToastError, msg.err.Error())
			return m, nil
		}
		return m, m.loadTasksCmd()

	case timerResetMsg:
		if msg.err != nil {
			m.addToast(ToastError, msg.err.Error())
			return m, nil
		}
		m.addToast(ToastInfo, "Timer reset")
		return m, nil

	case tickMsg:
		return m.handleTick(time.Time(msg))

	case raiseTickMsg:
		return m, tea.Batch(
			m.raiseCmd(),
			raiseEvery(m.config.Topmost.Interval()),
		)
	}

	return m, nil
}

// handleTick advances the wall clock, expires toasts, and drives the
// countdown while a pomodoro is running.
func (m Model) handleTick(now time.Time) (tea.Model, tea.Cmd) {
	m.now = now
	m.toasts = toast.Prune(m.toasts, now)

	cmds := []tea.Cmd{
		tickEvery(time.Second),
		m.refreshStatsCmd(),
	}

	if m.timer.Engine().Running() {
		ctx, cancel := context.WithTimeout(context.Background(), opTimeout)
		rolled, phase, err := m.timer.Tick(ctx, now)
		cancel()
		switch {
		case err != nil:
			m.addToast(ToastError, err.Error())
		case rolled && phase == domain.SessionBreak:
			m.resting = true
		case rolled:
			m.resting = false
			m.addToast(ToastSuccess, "Back to work.")
		}
	}

	return m, tea.Batch(cmds...)
}

// handleTasksLoaded installs a fresh task snapshot.
func (m Model) handleTasksLoaded(msg tasksLoadedMsg) (tea.Model, tea.Cmd) {
	if msg.err != nil {
		m.loading = false
		m.addToast(ToastError, msg.err.Error())
		return m, nil
	}
	m.tasks = msg.tasks
	m.blocked = msg.blocked
	m.loading = false
	if m.listMode {
		m.listView.SetTasks(m.listTasks())
	}
	return m, nil
}

// handleTaskSaved reacts to a create/edit/notes write finishing.
func (m Model) handleTaskSaved(msg taskSavedMsg) (tea.Model, tea.Cmd) {
	if msg.err != nil {
		m.addToast(ToastError, msg.err.Error())
		return m, nil
	}
	m.addToast(ToastSuccess, msg.note)
	if msg.created {
		// Land the cursor on the new task once the reload delivers it.
		m.nav.SelectTask(msg.id, domain.StatusTodo.Column())
	}
	return m, m.loadTasksCmd()
}

// handleTaskDone reacts to a completion, toasting the recurrence successor
// when one was spawned.
func (m Model) handleTaskDone(msg taskDoneMsg) (tea.Model, tea.Cmd) {
	if msg.err != nil {
		m.addToast(ToastError, msg.err.Error())
		return m, nil
	}
	m.addToast(ToastSuccess, "Task completed")
	if msg.next != nil {
		m.addToast(ToastInfo, "Next occurrence due "+msg.next.DueString())
	}
	return m, m.loadTasksCmd()
}

// handleDepSaved reacts to a dependency edge change.
func (m Model) handleDepSaved(msg depSavedMsg) (tea.Model, tea.Cmd) {
	if msg.err != nil {
		if errors.Is(msg.err, domain.ErrDependencyCycle) {
			m.addToast(ToastError, "That would create a dependency cycle")
		} else {
			m.addToast(ToastError, msg.err.Error())
		}
		return m, nil
	}
	if msg.added {
		m.addToast(ToastSuccess, "Dependency added")
	} else {
		m.addToast(ToastSuccess, "Dependency removed")
	}
	return m, m.loadTasksCmd()
}

// handleOverlayKey routes keys to the overlay stack when an overlay is open
func (m Model) handleOverlayKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	cmd := m.overlayStack.Update(msg)
	return m, cmd
}

// handleRestKey handles the reduced keymap of the fullscreen rest view.
func (m Model) handleRestKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "ctrl+c", m.config.Keys.Quit:
		return m, tea.Quit
	case "esc":
		m.resting = false
		return m, nil
	case m.config.Keys.Pause:
		return m.togglePause()
	case m.config.Keys.Reset:
		return m, m.resetTimerCmd()
	}
	return m, nil
}

// handleKey handles keyboard input in normal operation
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	key := msg.String()

	// Global keys work in any mode
	switch key {
	case "ctrl+c":
		return m, tea.Quit
	case "ctrl+l":
		return m, tea.ClearScreen
	}

	if key == "esc" {
		switch {
		case m.editor.IsGoto():
			m.editor.EnterNormal()
		case m.editor.GetFilter().SearchQuery != "":
			m.editor.ClearSearch()
		}
		return m, nil
	}

	if m.editor.IsGoto() {
		return m.handleGotoMode(msg)
	}
	return m.handleNormalMode(msg)
}

// handleNormalMode handles keys in normal mode
func (m Model) handleNormalMode(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	keys := m.config.Keys
	key := msg.String()

	// Motions first; these are not remappable.
	switch key {
	case "j", "down":
		if m.listMode {
			m.listView.MoveDown(1)
		} else {
			m.nav.MoveDown(m.columns())
		}
		return m, m.refreshStatsCmd()

	case "k", "up":
		if m.listMode {
			m.listView.MoveUp(1)
		} else {
			m.nav.MoveUp(m.columns())
		}
		return m, m.refreshStatsCmd()

	case "h", "left":
		if m.listMode {
			m.cycleChip(-1)
		} else {
			m.nav.MoveLeft(m.columns())
		}
		return m, m.refreshStatsCmd()

	case "l", "right":
		if m.listMode {
			m.cycleChip(1)
		} else {
			m.nav.MoveRight(m.columns())
		}
		return m, m.refreshStatsCmd()

	case "ctrl+d":
		if m.listMode {
			m.listView.MoveDown(m.halfPage())
		} else {
			m.nav.HalfPageDown(m.columns(), m.halfPage())
		}
		return m, nil

	case "ctrl+u":
		if m.listMode {
			m.listView.MoveUp(m.halfPage())
		} else {
			m.nav.HalfPageUp(m.columns(), m.halfPage())
		}
		return m, nil
	}

	switch key {
	case keys.Quit:
		return m, tea.Quit

	case keys.Goto:
		m.editor.EnterGoto()
		return m, nil

	case keys.Start:
		return m.startTimer()

	case keys.Pause:
		return m.togglePause()

	case keys.Reset:
		return m, m.resetTimerCmd()

	case keys.Done:
		task := m.currentTask()
		if task == nil {
			return m.warnNoTask()
		}
		return m, m.markDoneCmd(task.ID)

	case keys.Create:
		return m, m.overlayStack.Push(overlay.NewCreateOverlay())

	case keys.Edit:
		task := m.currentTask()
		if task == nil {
			return m.warnNoTask()
		}
		return m, m.overlayStack.Push(overlay.NewEditOverlay(*task))

	case keys.Notes:
		task := m.currentTask()
		if task == nil {
			return m.warnNoTask()
		}
		return m, m.overlayStack.Push(overlay.NewNotesOverlay(*task))

	case keys.Delete:
		task := m.currentTask()
		if task == nil {
			return m.warnNoTask()
		}
		m.pendingDelete = task.ID
		message := fmt.Sprintf("Delete %q? Its sessions and dependencies go with it.", task.Title)
		return m, m.overlayStack.Push(overlay.NewConfirmDialog("Delete task", message))

	case keys.Detail:
		task := m.currentTask()
		if task == nil {
			return m.warnNoTask()
		}
		return m, m.openDetailCmd(*task)

	case keys.Search:
		m.editor.EnterSearch()
		so := overlay.NewSearchOverlay(m.editor.GetFilter().SearchQuery)
		so.SetMatchCount(len(m.editor.FilterAndSort(m.tasks)))
		return m, m.overlayStack.Push(so)

	case keys.Filter:
		return m, m.overlayStack.Push(overlay.NewFilterMenu(m.editor.GetFilter()))

	case keys.Sort:
		return m, m.overlayStack.Push(overlay.NewSortMenu(m.editor.GetSort()))

	case keys.View:
		return m.toggleView()

	case keys.Topmost:
		return m.toggleTopmost()

	case keys.Depend:
		task := m.currentTask()
		if task == nil {
			return m.warnNoTask()
		}
		return m, m.openDependCmd(*task)

	case keys.Help:
		return m, m.overlayStack.Push(overlay.NewHelpOverlay(m.config.Keys))

	case keys.MoveLeft:
		return m.moveTask(-1)

	case keys.MoveRight:
		return m.moveTask(1)
	}

	return m, nil
}

// handleGotoMode handles the key after `g`.
func (m Model) handleGotoMode(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	m.editor.EnterNormal()

	switch msg.String() {
	case "g":
		if m.listMode {
			m.listView.GotoTop()
		} else {
			m.nav.GotoTop(m.columns())
		}
	case "e":
		if m.listMode {
			m.listView.GotoBottom()
		} else {
			m.nav.GotoBottom(m.columns())
		}
	case "h":
		if !m.listMode {
			m.nav.GotoColumn(m.columns(), 0)
		}
	case "l":
		if !m.listMode {
			cols := m.columns()
			m.nav.GotoColumn(cols, len(cols)-1)
		}
	}

	return m, m.refreshStatsCmd()
}

// handleSelection handles option selections emitted by overlays
func (m Model) handleSelection(msg overlay.SelectionMsg) (tea.Model, tea.Cmd) {
	switch v := msg.Value.(type) {
	case overlay.ConfirmResult:
		m.overlayStack.Pop()
		id := m.pendingDelete
		m.pendingDelete = ""
		if v.Confirmed && id != "" {
			return m, m.deleteTaskCmd(id)
		}
		return m, nil

	case *domain.Sort:
		// The menu mutates the editor's sort state in place and stays
		// open so the direction can be flipped with a second press.
		_ = v
		return m, nil
	}

	return m, nil
}

// startTimer begins a pomodoro on the selected task.
func (m Model) startTimer() (tea.Model, tea.Cmd) {
	task := m.currentTask()
	if task == nil {
		m.addToast(ToastWarning, "Select a task to start")
		return m, nil
	}
	return m, m.startTimerCmd(task.ID)
}

// togglePause pauses or resumes the countdown. When the engine is idle it
// starts on the selected task instead.
func (m Model) togglePause() (tea.Model, tea.Cmd) {
	id := m.timer.ActiveTaskID()
	if id == "" {
		if task := m.currentTask(); task != nil {
			id = task.ID
		}
	}
	if id == "" {
		m.addToast(ToastWarning, "Select a task to start")
		return m, nil
	}
	return m, m.toggleTimerCmd(id)
}

// moveTask shifts the selected task one column left or right.
func (m Model) moveTask(delta int) (tea.Model, tea.Cmd) {
	task := m.currentTask()
	if task == nil {
		return m.warnNoTask()
	}
	col := task.Status.Column() + delta
	if col < 0 || col >= len(domain.Statuses) {
		m.addToast(ToastInfo, "Already in "+task.Status.Label())
		return m, nil
	}
	return m, m.moveTaskCmd(task.ID, domain.Statuses[col])
}

// toggleView flips between the board and the compact list, carrying the
// selected task across.
func (m Model) toggleView() (tea.Model, tea.Cmd) {
	if m.listMode {
		if task := m.listView.GetCurrentTask(); task != nil {
			m.nav.SelectTask(task.ID, task.Status.Column())
		}
		m.listMode = false
		return m, nil
	}

	current := m.currentTask()
	m.listMode = true
	visible := m.listTasks()
	m.listView.SetTasks(visible)
	if current != nil {
		for i, t := range visible {
			if t.ID == current.ID {
				m.listView.SetCursor(i)
				break
			}
		}
	}
	return m, m.refreshStatsCmd()
}

// toggleTopmost flips the always-on-top watchdog and persists the choice.
func (m Model) toggleTopmost() (tea.Model, tea.Cmd) {
	enabled := m.topmost.Toggle()
	m.config.Topmost.Enabled = enabled
	if err := config.Save(m.config, config.DefaultPath()); err != nil {
		m.logger.Error("failed to save config", "error", err)
	}
	if enabled {
		m.addToast(ToastInfo, "Always-on-top enabled")
		return m, m.raiseCmd()
	}
	m.addToast(ToastInfo, "Always-on-top disabled")
	return m, nil
}

// cycleChip steps the list view's status chip.
func (m *Model) cycleChip(delta int) {
	chips := []string{
		list.ChipAll,
		string(domain.StatusTodo),
		string(domain.StatusDoing),
		string(domain.StatusDone),
	}
	idx := 0
	for i, c := range chips {
		if c == m.listChip {
			idx = i
			break
		}
	}
	idx = (idx + delta + len(chips)) % len(chips)
	m.listChip = chips[idx]
	m.listView.SetTasks(m.listTasks())
}

// columns builds the board columns from the filtered, sorted task set.
func (m Model) columns() []board.Column {
	return board.BuildColumns(m.editor.FilterAndSort(m.tasks))
}

// listTasks returns the flat task list for the compact view, narrowed by
// the active status chip.
func (m Model) listTasks() []domain.Task {
	visible := m.editor.FilterAndSort(m.tasks)
	if m.listChip == list.ChipAll {
		return visible
	}
	filtered := make([]domain.Task, 0, len(visible))
	for _, t := range visible {
		if string(t.Status) == m.listChip {
			filtered = append(filtered, t)
		}
	}
	return filtered
}

// currentTask returns the task under the cursor in the active view.
func (m Model) currentTask() *domain.Task {
	if m.listMode {
		return m.listView.GetCurrentTask()
	}
	return m.nav.GetCurrentTask(m.columns())
}

// halfPage approximates half a column of cards for ctrl+d / ctrl+u.
func (m Model) halfPage() int {
	visibleRows := m.height - 3
	if visibleRows < 4 {
		return 1
	}
	half := visibleRows / 4 / 2
	if half < 1 {
		return 1
	}
	return half
}

// addToast adds a toast notification to the list
func (m *Model) addToast(level ToastLevel, message string) {
	m.toasts = append(m.toasts, types.NewToast(level, message, m.now))
}

// warnNoTask toasts the shared "nothing selected" warning.
func (m Model) warnNoTask() (tea.Model, tea.Cmd) {
	m.addToast(ToastWarning, "No task selected")
	return m, nil
}
