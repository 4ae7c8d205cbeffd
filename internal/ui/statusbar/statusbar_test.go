package statusbar

import (
	"strings"
	"testing"

	"github.com/charmbracelet/lipgloss"

	"pomoban/internal/config"
	"pomoban/internal/types"
	"pomoban/internal/ui/styles"
)

func TestStatusBar_RenderNormalMode(t *testing.T) {
	style := styles.New()
	keys := config.DefaultConfig().Keys
	sb := New(types.ModeNormal, keys, "", 80, style)

	result := sb.Render()

	if !strings.Contains(result, "NORMAL") {
		t.Errorf("Expected status bar to contain 'NORMAL', got: %s", result)
	}

	if !strings.Contains(result, "h/l: columns") {
		t.Errorf("Expected status bar to contain navigation hints, got: %s", result)
	}
	if !strings.Contains(result, "j/k: tasks") {
		t.Errorf("Expected status bar to contain task navigation hints, got: %s", result)
	}
	if !strings.Contains(result, "Space: pause") {
		t.Errorf("Expected status bar to contain pause hint, got: %s", result)
	}
}

func TestStatusBar_RenderSearchMode(t *testing.T) {
	style := styles.New()
	keys := config.DefaultConfig().Keys
	sb := New(types.ModeSearch, keys, "", 80, style)

	result := sb.Render()

	if !strings.Contains(result, "SEARCH") {
		t.Errorf("Expected status bar to contain 'SEARCH', got: %s", result)
	}

	if !strings.Contains(result, "Type to search") {
		t.Errorf("Expected status bar to contain search hint, got: %s", result)
	}
}

func TestStatusBar_RenderGotoMode(t *testing.T) {
	style := styles.New()
	keys := config.DefaultConfig().Keys
	sb := New(types.ModeGoto, keys, "", 80, style)

	result := sb.Render()

	if !strings.Contains(result, "GOTO") {
		t.Errorf("Expected status bar to contain 'GOTO', got: %s", result)
	}

	if !strings.Contains(result, "g: top") {
		t.Errorf("Expected status bar to contain goto top hint, got: %s", result)
	}
	if !strings.Contains(result, "e: end") {
		t.Errorf("Expected status bar to contain goto end hint, got: %s", result)
	}
}

func TestStatusBar_ShowsSummary(t *testing.T) {
	style := styles.New()
	keys := config.DefaultConfig().Keys
	sb := New(types.ModeNormal, keys, "Deep Work 24:12", 120, style)

	result := sb.Render()

	if !strings.Contains(result, "Deep Work 24:12") {
		t.Errorf("Expected status bar to contain the timer summary, got: %s", result)
	}
}

func TestStatusBar_FillsWidth(t *testing.T) {
	style := styles.New()
	keys := config.DefaultConfig().Keys
	width := 100
	sb := New(types.ModeNormal, keys, "", width, style)

	result := sb.Render()

	if result == "" {
		t.Fatal("Expected non-empty status bar")
	}
	if got := lipgloss.Width(result); got != width {
		t.Errorf("Expected status bar width %d, got %d", width, got)
	}
}

func TestHints_AllModes(t *testing.T) {
	keys := config.DefaultConfig().Keys

	tests := []struct {
		mode     types.Mode
		expected string
	}{
		{types.ModeNormal, "h/l: columns  j/k: tasks  s: start  Space: pause  ?: help  q: quit"},
		{types.ModeSearch, "Type to search  Enter: confirm  Esc: cancel"},
		{types.ModeGoto, "g: top  e: end  h: first col  l: last col  Esc: cancel"},
	}

	for _, tt := range tests {
		t.Run(tt.mode.String(), func(t *testing.T) {
			result := Hints(tt.mode, keys)
			if result != tt.expected {
				t.Errorf("Hints(%v) = %q, want %q", tt.mode, result, tt.expected)
			}
		})
	}
}

func TestHints_ReboundKeys(t *testing.T) {
	keys := config.DefaultConfig().Keys
	keys.Start = "b"
	keys.Quit = "ctrl+c"

	result := Hints(types.ModeNormal, keys)

	if !strings.Contains(result, "b: start") {
		t.Errorf("Expected rebound start key in hints, got: %s", result)
	}
	if !strings.Contains(result, "ctrl+c: quit") {
		t.Errorf("Expected rebound quit key in hints, got: %s", result)
	}
}
