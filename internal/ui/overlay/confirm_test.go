package overlay

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"
)

// resolveConfirm runs the cmd and unwraps the ConfirmResult.
func resolveConfirm(t *testing.T, cmd tea.Cmd) (string, ConfirmResult) {
	t.Helper()
	if cmd == nil {
		t.Fatal("expected command, got nil")
	}
	msg := cmd()
	sel, ok := msg.(SelectionMsg)
	if !ok {
		t.Fatalf("expected SelectionMsg, got %T", msg)
	}
	result, ok := sel.Value.(ConfirmResult)
	if !ok {
		t.Fatalf("expected ConfirmResult, got %T", sel.Value)
	}
	return sel.Key, result
}

func TestConfirmDialogDefaults(t *testing.T) {
	dialog := NewConfirmDialog("Delete Task", "Delete \"Fix parser\"?")

	if dialog.Title() != "Delete Task" {
		t.Errorf("expected title %q, got %q", "Delete Task", dialog.Title())
	}
	if dialog.selected {
		t.Error("expected default selection to be No")
	}

	width, height := dialog.Size()
	if width != 60 {
		t.Errorf("expected width 60, got %d", width)
	}
	if height < 6 {
		t.Errorf("expected height >= 6, got %d", height)
	}
}

func TestConfirmDialogAnswerKeys(t *testing.T) {
	tests := []struct {
		name      string
		key       tea.KeyMsg
		wantKey   string
		confirmed bool
	}{
		{"y confirms", tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'y'}}, "yes", true},
		{"Y confirms", tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'Y'}}, "yes", true},
		{"n cancels", tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'n'}}, "no", false},
		{"N cancels", tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'N'}}, "no", false},
		{"esc cancels", tea.KeyMsg{Type: tea.KeyEscape}, "no", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			dialog := NewConfirmDialog("Title", "Message")
			_, cmd := dialog.Update(tt.key)

			key, result := resolveConfirm(t, cmd)
			if key != tt.wantKey {
				t.Errorf("expected key %q, got %q", tt.wantKey, key)
			}
			if result.Confirmed != tt.confirmed {
				t.Errorf("expected Confirmed=%v, got %v", tt.confirmed, result.Confirmed)
			}
		})
	}
}

func TestConfirmDialogNavigation(t *testing.T) {
	dialog := NewConfirmDialog("Title", "Message")

	// Right, l and tab all move to Yes.
	for _, key := range []tea.KeyMsg{
		{Type: tea.KeyRight},
		{Type: tea.KeyRunes, Runes: []rune{'l'}},
		{Type: tea.KeyTab},
	} {
		dialog.selected = false
		model, cmd := dialog.Update(key)
		if cmd != nil {
			t.Error("navigation should not produce a cmd")
		}
		dialog = model.(*ConfirmDialog)
		if !dialog.selected {
			t.Errorf("key %q should select Yes", key.String())
		}
	}

	// Left and h move back to No.
	for _, key := range []tea.KeyMsg{
		{Type: tea.KeyLeft},
		{Type: tea.KeyRunes, Runes: []rune{'h'}},
	} {
		dialog.selected = true
		model, _ := dialog.Update(key)
		dialog = model.(*ConfirmDialog)
		if dialog.selected {
			t.Errorf("key %q should select No", key.String())
		}
	}
}

func TestConfirmDialogEnterUsesSelection(t *testing.T) {
	tests := []struct {
		name      string
		selected  bool
		confirmed bool
	}{
		{"enter on No", false, false},
		{"enter on Yes", true, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			dialog := NewConfirmDialog("Title", "Message")
			dialog.selected = tt.selected

			_, cmd := dialog.Update(tea.KeyMsg{Type: tea.KeyEnter})
			_, result := resolveConfirm(t, cmd)
			if result.Confirmed != tt.confirmed {
				t.Errorf("expected Confirmed=%v, got %v", tt.confirmed, result.Confirmed)
			}
		})
	}
}
