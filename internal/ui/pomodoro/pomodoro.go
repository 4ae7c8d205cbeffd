// Package pomodoro renders the timer bar shown under the board.
package pomodoro

import (
	"github.com/charmbracelet/bubbles/progress"
	"github.com/charmbracelet/lipgloss"

	"pomoban/internal/core/countdown"
	"pomoban/internal/domain"
	"pomoban/internal/ui/styles"
)

// Widget draws the phase label, clock, state line and progress gauge.
type Widget struct {
	styles *styles.Styles
	width  int

	workGauge  progress.Model
	breakGauge progress.Model
}

// NewWidget creates a timer widget sized to the given width.
func NewWidget(s *styles.Styles, width int) *Widget {
	work := progress.New(
		progress.WithGradient(string(styles.Blue), string(styles.Sapphire)),
		progress.WithoutPercentage(),
	)
	rest := progress.New(
		progress.WithGradient(string(styles.Green), string(styles.Teal)),
		progress.WithoutPercentage(),
	)

	w := &Widget{
		styles:     s,
		workGauge:  work,
		breakGauge: rest,
	}
	w.SetWidth(width)
	return w
}

// SetWidth resizes the widget and its gauges.
func (w *Widget) SetWidth(width int) {
	w.width = width
	gaugeWidth := max(10, width-4)
	w.workGauge.Width = gaugeWidth
	w.breakGauge.Width = gaugeWidth
}

// PhaseLabel returns the display name of a pomodoro phase.
func PhaseLabel(kind domain.SessionKind) string {
	if kind == domain.SessionBreak {
		return "Rest Time"
	}
	return "Deep Work"
}

// Render draws the widget for the current engine state. taskTitle is the
// focused task's title, empty when nothing is selected.
func (w *Widget) Render(eng *countdown.Engine, taskTitle string) string {
	phase := w.styles.Phase(eng.Phase()).Render(PhaseLabel(eng.Phase()))
	clock := w.styles.TimerClock.Render(eng.Clock())
	state := w.styles.TimerState.Render(w.stateLine(eng, taskTitle))

	top := lipgloss.JoinHorizontal(lipgloss.Center, " ", phase, "  ", clock, "  ", state)

	gauge := w.workGauge
	if eng.Phase() == domain.SessionBreak {
		gauge = w.breakGauge
	}
	bar := " " + gauge.ViewAs(eng.Progress())

	return lipgloss.JoinVertical(lipgloss.Left, top, bar)
}

// stateLine picks the info text for the engine state.
func (w *Widget) stateLine(eng *countdown.Engine, taskTitle string) string {
	var state string
	switch {
	case eng.Running():
		state = "Running..."
	case eng.Paused():
		state = "Paused"
	case taskTitle == "":
		return "Select a task to start"
	default:
		state = "Ready"
	}

	if taskTitle != "" {
		state += " — " + taskTitle
	}
	return state
}
