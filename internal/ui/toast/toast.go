// Package toast renders transient notification messages.
package toast

import (
	"time"

	"github.com/charmbracelet/lipgloss"

	"pomoban/internal/types"
	"pomoban/internal/ui/styles"
)

// maxWidth caps how wide a single toast grows on large terminals.
const maxWidth = 40

// Renderer draws the toast stack shown in the bottom-right corner.
type Renderer struct {
	styles *styles.Styles
}

// New creates a Renderer with the given styles.
func New(s *styles.Styles) *Renderer {
	return &Renderer{styles: s}
}

// Prune drops expired toasts, keeping order.
func Prune(toasts []types.Toast, now time.Time) []types.Toast {
	kept := toasts[:0]
	for _, t := range toasts {
		if !t.Expired(now) {
			kept = append(kept, t)
		}
	}
	return kept
}

// Render stacks the toasts vertically, aligned to the right. Returns the
// empty string when there is nothing to show.
func (r *Renderer) Render(toasts []types.Toast, width int) string {
	if len(toasts) == 0 {
		return ""
	}

	toastWidth := width / 3
	if toastWidth > maxWidth {
		toastWidth = maxWidth
	}

	rendered := make([]string, 0, len(toasts))
	for _, t := range toasts {
		style := r.styleForLevel(t.Level)
		rendered = append(rendered, style.Width(toastWidth).Render(t.Message))
	}

	return lipgloss.JoinVertical(lipgloss.Right, rendered...)
}

// styleForLevel returns the style for a toast level.
func (r *Renderer) styleForLevel(level types.ToastLevel) lipgloss.Style {
	switch level {
	case types.ToastSuccess:
		return r.styles.ToastSuccess
	case types.ToastWarning:
		return r.styles.ToastWarning
	case types.ToastError:
		return r.styles.ToastError
	default:
		return r.styles.ToastInfo
	}
}
