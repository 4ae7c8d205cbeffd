package statusbar

import (
	"fmt"
	"testing"

	"pomoban/internal/config"
	"pomoban/internal/types"
	"pomoban/internal/ui/styles"
)

// TestDemo_VisualOutput is not a real test, but demonstrates the visual output
// Run with: go test -v -run TestDemo_VisualOutput
func TestDemo_VisualOutput(t *testing.T) {
	if testing.Short() {
		t.Skip("Skipping visual demo in short mode")
	}

	style := styles.New()
	keys := config.DefaultConfig().Keys
	width := 80

	modes := []types.Mode{
		types.ModeNormal,
		types.ModeSearch,
		types.ModeGoto,
	}

	fmt.Println("\n=== StatusBar Visual Demo ===")
	fmt.Println()

	for _, mode := range modes {
		sb := New(mode, keys, "Deep Work 24:12", width, style)
		rendered := sb.Render()

		fmt.Printf("Mode: %s\n", mode)
		fmt.Printf("Rendered (with ANSI): %s\n", rendered)
		fmt.Printf("Hints: %s\n\n", Hints(mode, keys))
	}
}
