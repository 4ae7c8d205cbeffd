package overlay

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/textarea"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"pomoban/internal/domain"
)

// TaskCreatedMsg is emitted when the create form submits
type TaskCreatedMsg struct {
	Title    string
	Notes    string
	Priority domain.Priority
	Due      *time.Time
	Repeat   domain.RepeatRule
}

// TaskEditedMsg is emitted when the edit form submits
type TaskEditedMsg struct {
	ID       string
	Title    string
	Notes    string
	Priority domain.Priority
	Due      *time.Time
	Repeat   domain.RepeatRule
}

// TaskFormOverlay is the create/edit form. An empty taskID means create;
// otherwise submit emits a TaskEditedMsg for that task.
type TaskFormOverlay struct {
	taskID     string
	title      textinput.Model
	notes      textarea.Model
	priority   domain.Priority
	due        textinput.Model
	repeat     domain.RepeatRule
	focusIndex int
	err        string
	styles     *Styles
}

const (
	focusTitle = iota
	focusNotes
	focusPriority
	focusDue
	focusRepeat
	focusSubmit
	numFocus
)

// NewCreateOverlay creates an empty task form
func NewCreateOverlay() *TaskFormOverlay {
	return newTaskForm()
}

// NewEditOverlay creates a form prefilled from the given task
func NewEditOverlay(task domain.Task) *TaskFormOverlay {
	f := newTaskForm()
	f.taskID = task.ID
	f.title.SetValue(task.Title)
	f.notes.SetValue(task.Notes)
	f.priority = task.Priority
	f.due.SetValue(task.DueString())
	f.repeat = task.Repeat
	return f
}

func newTaskForm() *TaskFormOverlay {
	ti := textinput.New()
	ti.Placeholder = "Task title..."
	ti.Focus()
	ti.CharLimit = 200
	ti.Width = 56

	ta := textarea.New()
	ta.Placeholder = "Notes in markdown (/now, /today, /log expand)..."
	ta.CharLimit = 4000
	ta.SetWidth(56)
	ta.SetHeight(6)

	due := textinput.New()
	due.Placeholder = "YYYY-MM-DD"
	due.CharLimit = 10
	due.Width = 16

	return &TaskFormOverlay{
		title:      ti,
		notes:      ta,
		priority:   domain.P2,
		due:        due,
		repeat:     domain.RepeatNone,
		focusIndex: focusTitle,
		styles:     New(),
	}
}

// Init initializes the overlay
func (f *TaskFormOverlay) Init() tea.Cmd {
	return textinput.Blink
}

// Update handles messages
func (f *TaskFormOverlay) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmds []tea.Cmd

	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "esc":
			return f, func() tea.Msg { return CloseOverlayMsg{} }

		case "ctrl+s":
			return f, f.submit()

		case "tab", "shift+tab":
			if msg.String() == "tab" {
				f.cycleFocus(1)
			} else {
				f.cycleFocus(-1)
			}
			return f, nil

		case "enter":
			if f.focusIndex == focusSubmit {
				return f, f.submit()
			}
			if f.focusIndex == focusNotes && expandSlash(&f.notes, time.Now()) {
				f.notes.InsertString("\n")
				return f, nil
			}
			// Let the active field handle enter.

		case " ", "space":
			if f.focusIndex == focusNotes && expandSlash(&f.notes, time.Now()) {
				f.notes.InsertString(" ")
				return f, nil
			}
		}

		// Handle priority selection when focused
		if f.focusIndex == focusPriority {
			switch msg.String() {
			case "0":
				f.priority = domain.P0
				return f, nil
			case "1":
				f.priority = domain.P1
				return f, nil
			case "2":
				f.priority = domain.P2
				return f, nil
			case "right", "l":
				f.priority = f.priority.Next()
				return f, nil
			case "left", "h":
				f.priority = prevPriority(f.priority)
				return f, nil
			}
		}

		// Handle repeat selection when focused
		if f.focusIndex == focusRepeat {
			switch msg.String() {
			case "n":
				f.repeat = domain.RepeatNone
				return f, nil
			case "d":
				f.repeat = domain.RepeatDaily
				return f, nil
			case "w":
				f.repeat = domain.RepeatWeekly
				return f, nil
			case "m":
				f.repeat = domain.RepeatMonthly
				return f, nil
			case "right", "l":
				f.repeat = f.repeat.Next()
				return f, nil
			case "left", "h":
				f.repeat = prevRepeat(f.repeat)
				return f, nil
			}
		}
	}

	var cmd tea.Cmd
	switch f.focusIndex {
	case focusTitle:
		f.title, cmd = f.title.Update(msg)
		cmds = append(cmds, cmd)
	case focusNotes:
		f.notes, cmd = f.notes.Update(msg)
		cmds = append(cmds, cmd)
	case focusDue:
		f.due, cmd = f.due.Update(msg)
		cmds = append(cmds, cmd)
	}

	return f, tea.Batch(cmds...)
}

// cycleFocus moves focus by delta, wrapping around the form.
func (f *TaskFormOverlay) cycleFocus(delta int) {
	f.focusIndex = (f.focusIndex + delta + numFocus) % numFocus

	f.title.Blur()
	f.notes.Blur()
	f.due.Blur()
	switch f.focusIndex {
	case focusTitle:
		f.title.Focus()
	case focusNotes:
		f.notes.Focus()
	case focusDue:
		f.due.Focus()
	}
}

// View renders the form
func (f *TaskFormOverlay) View() string {
	var b strings.Builder

	b.WriteString(f.label("Title:", focusTitle))
	b.WriteString("  ")
	b.WriteString(f.title.View())
	b.WriteString("\n\n")

	b.WriteString(f.label("Notes:", focusNotes))
	b.WriteString("\n")
	b.WriteString(f.notes.View())
	b.WriteString("\n\n")

	b.WriteString(f.label("Priority:", focusPriority))
	b.WriteString("  ")
	b.WriteString(f.renderPrioritySelector())
	b.WriteString("\n\n")

	b.WriteString(f.label("Due:", focusDue))
	b.WriteString("  ")
	b.WriteString(f.due.View())
	b.WriteString("\n\n")

	b.WriteString(f.label("Repeat:", focusRepeat))
	b.WriteString("  ")
	b.WriteString(f.renderRepeatSelector())
	b.WriteString("\n\n")

	b.WriteString(f.styles.Separator.Render(strings.Repeat("─", 60)))
	b.WriteString("\n\n")

	if f.err != "" {
		b.WriteString(f.styles.Error.Render(f.err))
		b.WriteString("\n\n")
	}

	submitStyle := f.styles.MenuItem
	if f.focusIndex == focusSubmit {
		submitStyle = f.styles.MenuItemActive
	}
	b.WriteString(submitStyle.Render(f.submitLabel()))
	b.WriteString("\n\n")

	hints := []string{
		f.styles.MenuKey.Render("Tab") + " " + f.styles.Footer.Render("Switch fields"),
		f.styles.MenuKey.Render("Ctrl+S") + " " + f.styles.Footer.Render("Submit"),
		f.styles.MenuKey.Render("Esc") + " " + f.styles.Footer.Render("Cancel"),
	}
	b.WriteString(f.styles.Footer.Render(strings.Join(hints, " • ")))

	return b.String()
}

// label renders a form label, highlighted while its field has focus.
func (f *TaskFormOverlay) label(text string, focus int) string {
	if f.focusIndex == focus {
		return f.styles.Focus.Render(text)
	}
	return f.styles.Label.Render(text)
}

// renderPrioritySelector renders the priority selector with current selection
func (f *TaskFormOverlay) renderPrioritySelector() string {
	priorities := []struct {
		key string
		pri domain.Priority
	}{
		{"0", domain.P0},
		{"1", domain.P1},
		{"2", domain.P2},
	}

	var parts []string
	for _, p := range priorities {
		style := f.styles.MenuItem
		indicator := " "
		if p.pri == f.priority {
			style = f.styles.MenuItemActive
			indicator = "●"
		}
		parts = append(parts, style.Render(fmt.Sprintf("[%s%s]", indicator, p.key)))
	}

	return strings.Join(parts, " ")
}

// renderRepeatSelector renders the repeat rule selector with current selection
func (f *TaskFormOverlay) renderRepeatSelector() string {
	rules := []struct {
		key   string
		rule  domain.RepeatRule
		label string
	}{
		{"n", domain.RepeatNone, "None"},
		{"d", domain.RepeatDaily, "Daily"},
		{"w", domain.RepeatWeekly, "Weekly"},
		{"m", domain.RepeatMonthly, "Monthly"},
	}

	var parts []string
	for _, r := range rules {
		style := f.styles.MenuItem
		indicator := " "
		if r.rule == f.repeat {
			style = f.styles.MenuItemActive
			indicator = "●"
		}
		parts = append(parts, style.Render(fmt.Sprintf("[%s%s=%s]", indicator, r.key, r.label)))
	}

	return strings.Join(parts, " ")
}

// submit validates the form and emits the result message with the close.
func (f *TaskFormOverlay) submit() tea.Cmd {
	f.err = ""

	title := strings.TrimSpace(f.title.Value())
	if title == "" {
		f.err = "Title is required"
		return nil
	}

	var due *time.Time
	if v := strings.TrimSpace(f.due.Value()); v != "" {
		d, err := time.ParseInLocation("2006-01-02", v, time.Local)
		if err != nil {
			f.err = "Due date must be YYYY-MM-DD"
			return nil
		}
		due = &d
	}

	notes := strings.TrimSpace(f.notes.Value())

	var result tea.Msg
	if f.taskID == "" {
		result = TaskCreatedMsg{
			Title:    title,
			Notes:    notes,
			Priority: f.priority,
			Due:      due,
			Repeat:   f.repeat,
		}
	} else {
		result = TaskEditedMsg{
			ID:       f.taskID,
			Title:    title,
			Notes:    notes,
			Priority: f.priority,
			Due:      due,
			Repeat:   f.repeat,
		}
	}

	return tea.Batch(
		func() tea.Msg { return result },
		func() tea.Msg { return CloseOverlayMsg{} },
	)
}

func (f *TaskFormOverlay) submitLabel() string {
	if f.taskID == "" {
		return "[ Create Task ]"
	}
	return "[ Save Changes ]"
}

// Title returns the overlay title
func (f *TaskFormOverlay) Title() string {
	if f.taskID == "" {
		return "New Task"
	}
	return "Edit Task"
}

// Size returns the overlay dimensions
func (f *TaskFormOverlay) Size() (width, height int) {
	return 70, 26
}

func prevPriority(p domain.Priority) domain.Priority {
	if p == domain.P0 {
		return domain.P2
	}
	return p - 1
}

func prevRepeat(r domain.RepeatRule) domain.RepeatRule {
	switch r {
	case domain.RepeatNone:
		return domain.RepeatMonthly
	case domain.RepeatDaily:
		return domain.RepeatNone
	case domain.RepeatWeekly:
		return domain.RepeatDaily
	default:
		return domain.RepeatWeekly
	}
}
