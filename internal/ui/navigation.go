package ui

import (
	tea "github.com/charmbracelet/bubbletea"
	"github.com/haryoiro/golha/internal/constants"
)

// rowCount is the number of selectable rows, including "show more"
func (m *Model) rowCount() int {
	n := m.pager.Visible()
	if m.pager.HasMore() {
		n++
	}
	return n
}

func (m *Model) onShowMoreRow() bool {
	return m.pager.HasMore() && m.selectedIndex == m.pager.Visible()
}

func (m *Model) getMaxIndex() int {
	return m.rowCount() - 1
}

func (m *Model) getVisibleItems() int {
	visible := m.contentHeight - frameSize - headerLines
	if visible < 1 {
		visible = 1
	}
	return visible
}

func (m *Model) moveUp() (tea.Model, tea.Cmd) {
	if m.selectedIndex > 0 {
		m.selectedIndex--
		m.adjustScroll()
	}
	return m, nil
}

func (m *Model) moveDown() (tea.Model, tea.Cmd) {
	if m.selectedIndex < m.getMaxIndex() {
		m.selectedIndex++
		m.adjustScroll()
	}
	return m, nil
}

func (m *Model) jumpToTop() (tea.Model, tea.Cmd) {
	m.selectedIndex = 0
	m.scrollOffset = 0
	return m, nil
}

func (m *Model) jumpToBottom() (tea.Model, tea.Cmd) {
	if maxIndex := m.getMaxIndex(); maxIndex >= 0 {
		m.selectedIndex = maxIndex
		m.adjustScroll()
	}
	return m, nil
}

func (m *Model) pageUp() (tea.Model, tea.Cmd) {
	m.selectedIndex -= m.getVisibleItems()
	if m.selectedIndex < 0 {
		m.selectedIndex = 0
	}
	m.adjustScroll()
	return m, nil
}

func (m *Model) pageDown() (tea.Model, tea.Cmd) {
	m.selectedIndex += m.getVisibleItems()
	if maxIndex := m.getMaxIndex(); m.selectedIndex > maxIndex {
		m.selectedIndex = maxIndex
	}
	if m.selectedIndex < 0 {
		m.selectedIndex = 0
	}
	m.adjustScroll()
	return m, nil
}

// adjustScroll keeps the selection inside the window with some padding
func (m *Model) adjustScroll() {
	visible := m.getVisibleItems()
	padding := constants.ScrollPadding
	if visible <= 2*padding {
		padding = 0
	}

	if m.selectedIndex-padding < m.scrollOffset {
		m.scrollOffset = m.selectedIndex - padding
	} else if m.selectedIndex+padding >= m.scrollOffset+visible {
		m.scrollOffset = m.selectedIndex + padding - visible + 1
	}

	if maxOffset := m.rowCount() - visible; m.scrollOffset > maxOffset {
		m.scrollOffset = maxOffset
	}
	if m.scrollOffset < 0 {
		m.scrollOffset = 0
	}
}
