package overlay

import (
	"time"

	"github.com/charmbracelet/bubbles/textarea"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"

	"pomoban/internal/domain"
)

// NotesSavedMsg is emitted when the notes editor saves
type NotesSavedMsg struct {
	ID    string
	Notes string
}

// NotesOverlay is the full-size markdown editor for task notes. Ctrl+P
// flips between the raw editor and a rendered preview; Esc discards.
type NotesOverlay struct {
	taskID    string
	taskTitle string
	input     textarea.Model
	preview   bool
	rendered  viewport.Model
	styles    *Styles
}

// NewNotesOverlay creates a notes editor prefilled from the given task
func NewNotesOverlay(task domain.Task) *NotesOverlay {
	ta := textarea.New()
	ta.Placeholder = "Notes in markdown (/now, /today, /log expand)..."
	ta.CharLimit = 0
	ta.SetWidth(70)
	ta.SetHeight(14)
	ta.SetValue(task.Notes)
	ta.Focus()

	return &NotesOverlay{
		taskID:    task.ID,
		taskTitle: task.Title,
		input:     ta,
		rendered:  viewport.New(70, 14),
		styles:    New(),
	}
}

// Init initializes the overlay
func (n *NotesOverlay) Init() tea.Cmd {
	return textarea.Blink
}

// Update handles messages
func (n *NotesOverlay) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "esc":
			if n.preview {
				n.preview = false
				n.input.Focus()
				return n, nil
			}
			return n, func() tea.Msg { return CloseOverlayMsg{} }

		case "ctrl+s":
			return n, n.save()

		case "ctrl+p":
			n.preview = !n.preview
			if n.preview {
				n.input.Blur()
				n.rendered.SetContent(renderMarkdown(n.input.Value(), 68))
				n.rendered.GotoTop()
			} else {
				n.input.Focus()
			}
			return n, nil
		}

		if n.preview {
			// Preview scrolls, nothing else.
			var cmd tea.Cmd
			n.rendered, cmd = n.rendered.Update(msg)
			return n, cmd
		}

		switch msg.String() {
		case "enter":
			if expandSlash(&n.input, time.Now()) {
				n.input.InsertString("\n")
				return n, nil
			}
		case " ", "space":
			if expandSlash(&n.input, time.Now()) {
				n.input.InsertString(" ")
				return n, nil
			}
		}
	}

	if n.preview {
		return n, nil
	}

	var cmd tea.Cmd
	n.input, cmd = n.input.Update(msg)
	return n, cmd
}

// save emits the NotesSavedMsg and closes the editor.
func (n *NotesOverlay) save() tea.Cmd {
	return tea.Batch(
		func() tea.Msg {
			return NotesSavedMsg{ID: n.taskID, Notes: n.input.Value()}
		},
		func() tea.Msg { return CloseOverlayMsg{} },
	)
}

// View renders the editor or the preview
func (n *NotesOverlay) View() string {
	var body, footer string
	if n.preview {
		body = n.rendered.View()
		footer = joinHints(n.styles,
			hint{"j/k", "Scroll"},
			hint{"Ctrl+P", "Edit"},
			hint{"Ctrl+S", "Save"},
			hint{"Esc", "Back"},
		)
	} else {
		body = n.input.View()
		footer = joinHints(n.styles,
			hint{"Ctrl+P", "Preview"},
			hint{"Ctrl+S", "Save"},
			hint{"Esc", "Discard"},
		)
	}

	return body + "\n\n" + n.styles.Footer.Render(footer)
}

// Title returns the overlay title
func (n *NotesOverlay) Title() string {
	return "Notes: " + n.taskTitle
}

// Size returns the overlay dimensions
func (n *NotesOverlay) Size() (width, height int) {
	return 74, 20
}

// hint is one footer key hint.
type hint struct {
	key   string
	label string
}

// joinHints renders footer hints separated by bullets.
func joinHints(s *Styles, hints ...hint) string {
	parts := make([]string, 0, len(hints))
	for _, h := range hints {
		parts = append(parts, s.MenuKey.Render(h.key)+" "+s.Footer.Render(h.label))
	}
	out := ""
	for i, p := range parts {
		if i > 0 {
			out += " • "
		}
		out += p
	}
	return out
}
