package ui

import (
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/haryoiro/golha/internal/logger"
)

// isKey checks if the pressed key matches the configured keybinding
func (m *Model) isKey(msg tea.KeyMsg, key string) bool {
	if key == "" {
		return false
	}

	switch key {
	case "ctrl+c":
		return msg.Type == tea.KeyCtrlC
	case "ctrl+d":
		return msg.Type == tea.KeyCtrlD
	case "space":
		return msg.Type == tea.KeySpace
	case "enter":
		return msg.Type == tea.KeyEnter
	case "esc":
		return msg.Type == tea.KeyEsc
	case "backspace":
		return msg.Type == tea.KeyBackspace
	case "tab":
		return msg.Type == tea.KeyTab
	case "up":
		return msg.Type == tea.KeyUp
	case "down":
		return msg.Type == tea.KeyDown
	case "left":
		return msg.Type == tea.KeyLeft
	case "right":
		return msg.Type == tea.KeyRight
	case "pgup":
		return msg.Type == tea.KeyPgUp
	case "pgdown":
		return msg.Type == tea.KeyPgDown
	default:
		return msg.Type == tea.KeyRunes && msg.String() == key
	}
}

// isKeyInList checks if the pressed key matches any of the configured keybindings
func (m *Model) isKeyInList(msg tea.KeyMsg, bindings []string) bool {
	for _, binding := range bindings {
		if m.isKey(msg, binding) {
			return true
		}
	}
	return false
}

// handleKeyPress processes keyboard input and delegates to appropriate handlers
func (m *Model) handleKeyPress(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	kb := m.config.KeyBindings

	if m.isKey(msg, kb.Quit) || msg.Type == tea.KeyCtrlD {
		return m, tea.Quit
	}

	if m.hasFocus(FocusSearch) {
		return m.handleSearchKeys(msg)
	}

	keyStr := getKeyString(msg)
	if !m.shouldProcessKey(keyStr) {
		return m, nil
	}

	if m.isKeyInList(msg, kb.MoveUp) {
		return m.moveUp()
	}
	if m.isKeyInList(msg, kb.MoveDown) {
		return m.moveDown()
	}

	switch keyStr {
	case "g", "home":
		return m.jumpToTop()
	case "G", "end":
		return m.jumpToBottom()
	case "ctrl+b", "pgup":
		return m.pageUp()
	case "ctrl+f", "pgdown":
		return m.pageDown()
	}

	switch {
	case m.isKey(msg, kb.PlayPause):
		return m.togglePlayPause()
	case m.isKeyInList(msg, kb.VolumeUp):
		return m.volumeUp()
	case m.isKeyInList(msg, kb.VolumeDown):
		return m.volumeDown()
	case m.isKey(msg, kb.SeekForward):
		return m.seekForward()
	case m.isKey(msg, kb.SeekBackward):
		return m.seekBackward()
	case m.isKey(msg, kb.Next):
		return m.playNext()
	case m.isKey(msg, kb.Previous):
		return m.playPrevious()
	case m.isKey(msg, kb.Random):
		return m.playRandom()
	case m.isKeyInList(msg, kb.Select):
		return m.handleEnter()
	case m.isKey(msg, kb.ShowMore):
		return m.showMore()
	case m.isKey(msg, kb.Download):
		return m.downloadSelected()
	case m.isKey(msg, kb.OpenSource):
		return m.openSelectedSource()
	case m.isKey(msg, kb.Search):
		m.setFocus(FocusSearch)
		return m, textinput.Blink
	case m.isKeyInList(msg, kb.Back):
		return m.clearSearch()
	}

	return m, nil
}

// handleSearchKeys feeds the search input and schedules a query on change
func (m *Model) handleSearchKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	kb := m.config.KeyBindings

	if m.isKeyInList(msg, kb.Back) || m.isKeyInList(msg, kb.Select) ||
		msg.Type == tea.KeyDown || msg.Type == tea.KeyTab {
		m.setFocus(FocusList)
		return m, nil
	}

	before := m.search.Value()
	var cmd tea.Cmd
	m.search, cmd = m.search.Update(msg)

	if term := m.search.Value(); term != before {
		logger.Debug("Search input changed: %q", term)
		return m, tea.Batch(cmd, m.debouncer.Schedule(term))
	}
	return m, cmd
}

// clearSearch resets the query and shows the whole catalog again
func (m *Model) clearSearch() (tea.Model, tea.Cmd) {
	if m.search.Value() == "" {
		return m, nil
	}
	m.search.SetValue("")
	return m, m.debouncer.Schedule("")
}
