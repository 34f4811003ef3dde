package ui

import (
	"fmt"
	"strings"

	"github.com/haryoiro/golha/internal/structures"
)

// ShortcutHint represents a single keyboard shortcut hint
type ShortcutHint struct {
	Key    string
	Action string
}

// ShortcutFormatter handles formatting of keyboard shortcuts for display
type ShortcutFormatter struct {
	config     *structures.Config
	styleCache map[string]string
}

// NewShortcutFormatter creates a new shortcut formatter with the given config
func NewShortcutFormatter(config *structures.Config) *ShortcutFormatter {
	return &ShortcutFormatter{
		config:     config,
		styleCache: make(map[string]string),
	}
}

// formatKey formats a key binding for display
func (sf *ShortcutFormatter) formatKey(key string) string {
	if formatted, ok := sf.styleCache[key]; ok {
		return formatted
	}

	formatted := key
	switch key {
	case "space":
		formatted = "Space"
	case "enter":
		formatted = "Enter"
	case "esc":
		formatted = "Esc"
	case "tab":
		formatted = "Tab"
	case "up":
		formatted = "↑"
	case "down":
		formatted = "↓"
	case "left":
		formatted = "←"
	case "right":
		formatted = "→"
	case "pgup":
		formatted = "PgUp"
	case "pgdown":
		formatted = "PgDn"
	default:
		if strings.HasPrefix(key, "ctrl+") {
			formatted = "Ctrl+" + strings.ToUpper(strings.TrimPrefix(key, "ctrl+"))
		} else if strings.HasPrefix(key, "alt+") {
			formatted = "Alt+" + strings.ToUpper(strings.TrimPrefix(key, "alt+"))
		}
	}

	sf.styleCache[key] = formatted
	return formatted
}

// formatKeys formats multiple key bindings (e.g., ["down", "j"] -> "↓/j")
func (sf *ShortcutFormatter) formatKeys(keys []string) string {
	if len(keys) == 0 {
		return ""
	}

	sorted := make([]string, len(keys))
	copy(sorted, keys)
	for i := 0; i < len(sorted); i++ {
		for j := i + 1; j < len(sorted); j++ {
			if shouldSwapKeys(sorted[i], sorted[j]) {
				sorted[i], sorted[j] = sorted[j], sorted[i]
			}
		}
	}

	formatted := make([]string, len(sorted))
	for i, key := range sorted {
		formatted[i] = sf.formatKey(key)
	}
	return strings.Join(formatted, "/")
}

// shouldSwapKeys returns true if key1 should come after key2; arrows go first
func shouldSwapKeys(key1, key2 string) bool {
	isArrow1 := isArrowKey(key1)
	isArrow2 := isArrowKey(key2)

	if isArrow1 != isArrow2 {
		return isArrow2
	}
	return key1 > key2
}

func isArrowKey(key string) bool {
	return key == "up" || key == "down" || key == "left" || key == "right"
}

// FormatHint formats a single shortcut hint
func (sf *ShortcutFormatter) FormatHint(hint ShortcutHint) string {
	return fmt.Sprintf("[%s: %s]", hint.Key, hint.Action)
}

// FormatHints formats multiple shortcut hints
func (sf *ShortcutFormatter) FormatHints(hints []ShortcutHint) string {
	formatted := make([]string, len(hints))
	for i, hint := range hints {
		formatted[i] = sf.FormatHint(hint)
	}
	return strings.Join(formatted, " ")
}

// GetPlayerHints returns the transport shortcuts
func (sf *ShortcutFormatter) GetPlayerHints() []ShortcutHint {
	kb := sf.config.KeyBindings
	return []ShortcutHint{
		{Key: sf.formatKey(kb.PlayPause), Action: "Play/Pause"},
		{Key: sf.formatKey(kb.Previous) + "/" + sf.formatKey(kb.Next), Action: "Prev/Next"},
		{Key: sf.formatKey(kb.Random), Action: "Random"},
		{Key: sf.formatKeys([]string{kb.SeekBackward, kb.SeekForward}), Action: "Seek"},
	}
}

// GetListHints returns the shortcuts acting on the selected row
func (sf *ShortcutFormatter) GetListHints() []ShortcutHint {
	kb := sf.config.KeyBindings
	return []ShortcutHint{
		{Key: sf.formatKey(kb.Search), Action: "Search"},
		{Key: sf.formatKey(kb.ShowMore), Action: "More"},
		{Key: sf.formatKey(kb.Download), Action: "Download"},
		{Key: sf.formatKey(kb.OpenSource), Action: "Source"},
	}
}

// GetSearchHints returns the shortcuts while typing a query
func (sf *ShortcutFormatter) GetSearchHints() []ShortcutHint {
	kb := sf.config.KeyBindings
	return []ShortcutHint{
		{Key: sf.formatKeys(kb.Select), Action: "List"},
		{Key: sf.formatKeys(kb.Back), Action: "Done"},
	}
}

// GetContextualHints returns the hints for the focused pane
func (sf *ShortcutFormatter) GetContextualHints(focus FocusPane) []ShortcutHint {
	if focus == FocusSearch {
		return sf.GetSearchHints()
	}
	return append(sf.GetPlayerHints(), sf.GetListHints()...)
}
