package statusbar_test

import (
	"fmt"

	"pomoban/internal/config"
	"pomoban/internal/types"
	"pomoban/internal/ui/statusbar"
	"pomoban/internal/ui/styles"
)

// Example demonstrates how to use the StatusBar
func Example() {
	style := styles.New()
	keys := config.DefaultConfig().Keys

	// Create a status bar in normal mode
	sb := statusbar.New(types.ModeNormal, keys, "", 80, style)

	// Render it (output will include ANSI codes for styling)
	rendered := sb.Render()

	// For this example, we just verify it's not empty
	fmt.Println(len(rendered) > 0)
	// Output: true
}

// ExampleHints shows how to get hints for different modes
func ExampleHints() {
	keys := config.DefaultConfig().Keys
	normalHints := statusbar.Hints(types.ModeNormal, keys)
	fmt.Println(normalHints)
	// Output: h/l: columns  j/k: tasks  s: start  Space: pause  ?: help  q: quit
}
