package statusbar

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"pomoban/internal/config"
	"pomoban/internal/types"
	"pomoban/internal/ui/styles"
)

// StatusBar represents the status bar at the bottom of the TUI
type StatusBar struct {
	mode    types.Mode
	keys    config.Keymap
	summary string
	width   int
	styles  *styles.Styles
}

// New creates a StatusBar for the given mode and width. summary is the
// right-aligned timer line, empty to omit.
func New(mode types.Mode, keys config.Keymap, summary string, width int, s *styles.Styles) StatusBar {
	return StatusBar{
		mode:    mode,
		keys:    keys,
		summary: summary,
		width:   width,
		styles:  s,
	}
}

// Render renders the status bar as a string
func (sb StatusBar) Render() string {
	modeBadge := sb.styles.StatusMode.Render(sb.mode.String())

	content := modeBadge
	if hints := Hints(sb.mode, sb.keys); hints != "" {
		separator := sb.styles.StatusHint.Render(" │ ")
		content = lipgloss.JoinHorizontal(lipgloss.Left, modeBadge, separator, sb.styles.StatusHint.Render(hints))
	}

	if sb.summary != "" {
		info := sb.styles.StatusInfo.Render(sb.summary)
		// The bar style pads one cell each side, hence width-2.
		gap := sb.width - 2 - lipgloss.Width(content) - lipgloss.Width(info)
		if gap < 1 {
			gap = 1
		}
		content = lipgloss.JoinHorizontal(lipgloss.Left, content, strings.Repeat(" ", gap), info)
	}

	return sb.styles.StatusBar.Width(sb.width).Render(content)
}
