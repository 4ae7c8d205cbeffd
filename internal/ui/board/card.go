package board

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"pomoban/internal/domain"
	"pomoban/internal/ui/styles"
)

// renderCard renders a task card
func renderCard(task domain.Task, isCursor bool, rc Context, width int, s *styles.Styles) string {
	blocked := rc.Blocked[task.ID]

	// Choose card style based on state; the cursor always wins so the
	// selection stays visible on blocked cards.
	cardStyle := s.Card
	if isCursor {
		cardStyle = s.CardActive
	} else if blocked {
		cardStyle = s.CardBlocked
	}

	// Apply width
	cardStyle = cardStyle.Width(width)

	// Title - truncate if needed
	// Account for padding (2), border (2), and some space for badges
	maxTitleLen := width - 4
	title := task.Title
	if maxTitleLen > 1 && len(title) > maxTitleLen {
		title = title[:maxTitleLen-1] + "…"
	}

	// Cursor indicator (▶ symbol when cursor is on this card)
	cursor := ""
	if isCursor {
		cursor = "▶"
	}

	badges := []string{
		s.PriorityBadge(int(task.Priority)).Render(task.Priority.String()),
	}
	if task.ID == rc.ActiveTaskID {
		badges = append(badges, s.ActiveMark.Render("●"))
	}
	if task.Due != nil {
		due := task.Due.Format("02 Jan")
		if task.Overdue(rc.Now) {
			badges = append(badges, s.OverdueBadge.Render(due+"!"))
		} else {
			badges = append(badges, s.DueBadge.Render(due))
		}
	}
	if task.Repeat != domain.RepeatNone {
		badges = append(badges, s.RepeatBadge.Render("↻"))
	}
	if blocked {
		badges = append(badges, s.BlockedBadge.Render("⊘"))
	}

	titleLine := cursor + title
	badgeLine := strings.Join(badges, " ")

	content := lipgloss.JoinVertical(lipgloss.Left, titleLine, badgeLine)

	return cardStyle.Render(content)
}

// RenderCard is the exported version for testing
func RenderCard(task domain.Task, isCursor bool, rc Context, width int, s *styles.Styles) string {
	return renderCard(task, isCursor, rc, width, s)
}
