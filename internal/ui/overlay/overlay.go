package overlay

import tea "github.com/charmbracelet/bubbletea"

// Overlay is a modal component rendered centered above the board.
type Overlay interface {
	tea.Model
	Title() string
	Size() (width, height int)
}

// CloseOverlayMsg signals that the top overlay should be closed
type CloseOverlayMsg struct{}

// SelectionMsg is sent when an overlay option is selected
type SelectionMsg struct {
	Key   string
	Value any
}
