package app

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"
	"pomoban/internal/services/stats"
	"pomoban/internal/ui/board"
	"pomoban/internal/ui/pomodoro"
	"pomoban/internal/ui/statusbar"
	"pomoban/internal/ui/toast"
)

// View renders the application
func (m Model) View() string {
	if m.width == 0 || m.height == 0 {
		return "Loading..."
	}

	if m.loading {
		return m.renderLoading()
	}

	// The break phase takes over the whole screen.
	if m.resting {
		return m.restView.Render(m.timer.Engine())
	}

	bar := m.pomo.Render(m.timer.Engine(), m.activeTaskTitle())
	bodyHeight := m.height - lipgloss.Height(bar) - 1

	var body string
	if m.listMode {
		body = m.renderListView(bodyHeight)
	} else {
		body = m.renderBoardView(bodyHeight)
	}

	sb := statusbar.New(m.editor.GetMode(), m.config.Keys, m.timerSummary(), m.width, m.styles)
	view := lipgloss.JoinVertical(lipgloss.Left, bar, body, sb.Render())

	// If overlay is open, render it on top (centered)
	if !m.overlayStack.IsEmpty() {
		view = m.renderOverlay(view)
	}

	// Render toasts in the bottom-right corner
	if len(m.toasts) > 0 {
		renderer := toast.New(m.styles)
		if toastView := renderer.Render(m.toasts, m.width); toastView != "" {
			view = lipgloss.JoinVertical(lipgloss.Left, view, toastView)
		}
	}

	return view
}

// renderBoardView renders the three-column kanban board.
func (m Model) renderBoardView(height int) string {
	columns := m.columns()
	pos := m.nav.GetPosition(columns)
	cursor := board.Cursor{
		Column: pos.Column,
		Task:   pos.Task,
	}
	rc := board.Context{
		ActiveTaskID: m.timer.ActiveTaskID(),
		Blocked:      m.blocked,
		Now:          m.now,
	}
	return board.Render(columns, cursor, rc, m.styles, m.width, height)
}

// renderListView renders the compact list view.
func (m Model) renderListView(height int) string {
	m.listView.SetDimensions(m.width, height)
	m.listView.SetTasks(m.listTasks())
	m.listView.SetChip(m.listChip)
	m.listView.SetActiveTask(m.timer.ActiveTaskID())
	m.listView.SetBlocked(m.blocked)
	m.listView.SetNow(m.now)
	m.listView.SetFooter(m.listFooter())
	return m.listView.Render()
}

// renderOverlay layers the current overlay over the base view.
func (m Model) renderOverlay(base string) string {
	current := m.overlayStack.Current()
	overlayView := current.View()
	overlayWidth, overlayHeight := current.Size()

	// Width 0 means full width: the search bar docks at the bottom.
	if overlayWidth == 0 {
		return lipgloss.JoinVertical(lipgloss.Left, base, overlayView)
	}

	if title := current.Title(); title != "" {
		titleView := m.styles.OverlayTitle.Render(title)
		overlayView = lipgloss.JoinVertical(lipgloss.Left, titleView, overlayView)
	}
	overlayView = m.styles.Overlay.
		Width(overlayWidth).
		Height(overlayHeight).
		Render(overlayView)

	centered := lipgloss.Place(
		m.width,
		m.height,
		lipgloss.Center,
		lipgloss.Center,
		overlayView,
	)
	base = lipgloss.Place(
		m.width,
		m.height,
		lipgloss.Left,
		lipgloss.Top,
		base,
	)
	return lipgloss.JoinVertical(lipgloss.Left, base, centered)
}

// renderLoading renders a centered loading spinner with message
func (m Model) renderLoading() string {
	content := lipgloss.JoinVertical(
		lipgloss.Center,
		m.spinner.View(),
		"Loading tasks...",
	)
	return lipgloss.Place(
		m.width,
		m.height,
		lipgloss.Center,
		lipgloss.Center,
		content,
	)
}

// listFooter builds the stats line under the compact list.
func (m Model) listFooter() string {
	today := stats.FormatHMS(m.todayWorkSec)
	if m.taskTitle == "" {
		return fmt.Sprintf("Today (work): %s", today)
	}
	return fmt.Sprintf("Today (work): %s • Selected: %s — %s",
		today, stats.FormatHMS(m.taskWorkSec), m.taskTitle)
}

// timerSummary builds the right side of the status bar.
func (m Model) timerSummary() string {
	eng := m.timer.Engine()
	if eng.Idle() {
		return "Today: " + stats.FormatHMS(m.todayWorkSec)
	}
	return pomodoro.PhaseLabel(eng.Phase()) + " " + eng.Clock()
}

// activeTaskTitle resolves the running pomodoro's task title.
func (m Model) activeTaskTitle() string {
	id := m.timer.ActiveTaskID()
	if id == "" {
		return ""
	}
	for _, t := range m.tasks {
		if t.ID == id {
			return t.Title
		}
	}
	return ""
}
