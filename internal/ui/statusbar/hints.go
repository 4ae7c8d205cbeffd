package statusbar

import (
	"fmt"

	"pomoban/internal/config"
	"pomoban/internal/types"
)

// Hints returns the keybinding hints for the given mode. Remapped action
// keys from the config show up in the normal-mode line.
func Hints(mode types.Mode, keys config.Keymap) string {
	switch mode {
	case types.ModeNormal:
		return fmt.Sprintf("h/l: columns  j/k: tasks  %s: start  %s: pause  %s: help  %s: quit",
			keyLabel(keys.Start), keyLabel(keys.Pause), keyLabel(keys.Help), keyLabel(keys.Quit))
	case types.ModeGoto:
		return "g: top  e: end  h: first col  l: last col  Esc: cancel"
	case types.ModeSearch:
		return "Type to search  Enter: confirm  Esc: cancel"
	default:
		return ""
	}
}

// keyLabel makes unprintable key names readable in the hint line.
func keyLabel(key string) string {
	switch key {
	case " ":
		return "Space"
	case "enter":
		return "Enter"
	case "esc":
		return "Esc"
	}
	return key
}
