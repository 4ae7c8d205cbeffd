// Package rest renders the fullscreen break screen.
package rest

import (
	"github.com/charmbracelet/lipgloss"

	"pomoban/internal/core/countdown"
	"pomoban/internal/ui/styles"
)

// View is the whole-screen takeover shown during the break phase.
type View struct {
	styles *styles.Styles
	width  int
	height int
}

// NewView creates a rest view sized to the terminal.
func NewView(s *styles.Styles, width, height int) *View {
	return &View{styles: s, width: width, height: height}
}

// SetDimensions updates the view size.
func (v *View) SetDimensions(width, height int) {
	v.width = width
	v.height = height
}

// Render draws the centered break screen for the current countdown.
func (v *View) Render(eng *countdown.Engine) string {
	heading := v.styles.RestHeading.Render("Rest Time")
	clock := v.styles.TimerClock.Render(eng.Clock())
	body := v.styles.RestBody.Render("Break time. Press ESC to exit fullscreen.")

	content := lipgloss.JoinVertical(lipgloss.Center,
		heading,
		"",
		clock,
		"",
		body,
	)

	return lipgloss.Place(v.width, v.height, lipgloss.Center, lipgloss.Center, content)
}
