package ui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

func (m *Model) handleMouseEvent(mouse tea.MouseMsg) (tea.Model, tea.Cmd) {
	if mouse.Action != tea.MouseActionPress {
		return m, nil
	}

	switch mouse.Button {
	case tea.MouseButtonLeft:
		return m.handleMouseClick(mouse.X, mouse.Y)
	case tea.MouseButtonWheelUp:
		return m.handleScroll(-1)
	case tea.MouseButtonWheelDown:
		return m.handleScroll(1)
	}
	return m, nil
}

func (m *Model) handleMouseClick(x, y int) (tea.Model, tea.Cmd) {
	playerAreaStart := m.height - m.playerHeight
	if y >= playerAreaStart {
		return m.handlePlayerClick(x, y-playerAreaStart)
	}
	return m.handleContentClick(y)
}

// handlePlayerClick seeks when the progress bar is clicked. y is relative
// to the pane's top border.
func (m *Model) handlePlayerClick(x, y int) (tea.Model, tea.Cmd) {
	if y-frameSize/2 != progressRow || m.playerState.TotalTime <= 0 {
		return m, nil
	}

	barStart := frameSize/2 + framePadding + timeLabelWidth + 1
	fraction, ok := progressFraction(x-barStart, progressBarWidth(m.playerContentWidth))
	if !ok {
		return m, nil
	}
	return m.seekTo(fraction)
}

// handleContentClick selects and activates the clicked row
func (m *Model) handleContentClick(y int) (tea.Model, tea.Cmd) {
	line := y - frameSize/2
	if line == 0 {
		m.setFocus(FocusSearch)
		return m, nil
	}

	row := line - headerLines
	if row < 0 || row >= m.getVisibleItems() {
		return m, nil
	}

	index := m.scrollOffset + row
	if index >= m.rowCount() {
		return m, nil
	}

	m.setFocus(FocusList)
	m.selectedIndex = index
	return m.handleEnter()
}

func (m *Model) handleScroll(delta int) (tea.Model, tea.Cmd) {
	now := time.Now()
	if now.Sub(m.lastScrollTime) < m.scrollCooldown {
		return m, nil
	}
	m.lastScrollTime = now

	if delta < 0 {
		return m.moveUp()
	}
	return m.moveDown()
}
