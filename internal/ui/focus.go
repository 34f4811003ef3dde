package ui

// FocusPane is the part of the screen receiving keys
type FocusPane int

const (
	FocusList FocusPane = iota
	FocusSearch
)

func (m *Model) setFocus(pane FocusPane) {
	m.focus = pane
	if pane == FocusSearch {
		m.search.Focus()
	} else {
		m.search.Blur()
	}
}

func (m *Model) hasFocus(pane FocusPane) bool {
	return m.focus == pane
}
