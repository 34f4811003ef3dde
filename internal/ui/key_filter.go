package ui

import (
	tea "github.com/charmbracelet/bubbletea"
)

// getKeyString converts a tea.KeyMsg to a unique string identifier
func getKeyString(msg tea.KeyMsg) string {
	switch msg.Type {
	case tea.KeyUp:
		return "up"
	case tea.KeyDown:
		return "down"
	case tea.KeyLeft:
		return "left"
	case tea.KeyRight:
		return "right"
	case tea.KeyPgUp:
		return "pgup"
	case tea.KeyPgDown:
		return "pgdown"
	case tea.KeyHome:
		return "home"
	case tea.KeyEnd:
		return "end"
	case tea.KeyEnter:
		return "enter"
	case tea.KeySpace:
		return "space"
	case tea.KeyTab:
		return "tab"
	case tea.KeyBackspace:
		return "backspace"
	case tea.KeyEsc:
		return "esc"
	default:
		return msg.String()
	}
}

// shouldProcessKey rate-limits held navigation and volume keys
func (m *Model) shouldProcessKey(keyStr string) bool {
	switch keyStr {
	case "up", "down", "left", "right", "pgup", "pgdown":
		return m.keyDebouncer.ShouldProcess(keyStr)
	case "+", "-", "=", "_":
		return m.keyDebouncer.ShouldProcess("volume")
	}
	return true
}
