package ui

import (
	"context"
	"errors"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/haryoiro/golha/internal/constants"
	"github.com/haryoiro/golha/internal/structures"
	"github.com/haryoiro/golha/internal/systems"
)

func (m *Model) loadCatalog() tea.Cmd {
	catalog := m.systems.Catalog
	return func() tea.Msg {
		view, err := catalog.Load(context.Background())
		if err != nil {
			return catalogErrorMsg{err: err}
		}
		return catalogLoadedMsg(view)
	}
}

// restoreState looks up the saved program in the freshly loaded view
func (m *Model) restoreState(view []*structures.Program) tea.Cmd {
	store := m.systems.Player.Persistence()
	return func() tea.Msg {
		index, seconds, playing, ok := store.Restore(view)
		if !ok {
			return nil
		}
		return restoreMsg{index: index, seconds: seconds, playing: playing}
	}
}

func (m *Model) tickCmd() tea.Cmd {
	return tea.Tick(constants.UIRefreshInterval, func(t time.Time) tea.Msg {
		return tickMsg(t)
	})
}

func (m *Model) loaderTick() tea.Cmd {
	return tea.Tick(constants.LoaderTickInterval, func(time.Time) tea.Msg {
		return loaderTickMsg{}
	})
}

// handleEnter plays the selected row or reveals the next batch
func (m *Model) handleEnter() (tea.Model, tea.Cmd) {
	if m.onShowMoreRow() {
		return m.showMore()
	}
	if m.selectedIndex < m.pager.Visible() {
		m.systems.Player.SendAction(structures.PlayIndexAction{Index: m.selectedIndex, AutoStart: true})
	}
	return m, nil
}

func (m *Model) showMore() (tea.Model, tea.Cmd) {
	if m.pager.HasMore() {
		m.pager.AppendBatch()
		m.adjustScroll()
	}
	return m, nil
}

func (m *Model) selectedProgram() *structures.Program {
	rendered := m.pager.Rendered()
	if m.selectedIndex < 0 || m.selectedIndex >= len(rendered) {
		return nil
	}
	return rendered[m.selectedIndex]
}

func (m *Model) downloadSelected() (tea.Model, tea.Cmd) {
	p := m.selectedProgram()
	if p == nil {
		return m, nil
	}
	if m.systems.Download.QueueDownload(p) {
		m.setStatus("⬇ " + p.DisplayName())
	}
	return m, nil
}

func (m *Model) openSelectedSource() (tea.Model, tea.Cmd) {
	p := m.selectedProgram()
	if p == nil {
		return m, nil
	}
	source := p.SourceURL
	return m, func() tea.Msg {
		err := systems.OpenExternal(source)
		switch {
		case err == nil:
			return nil
		case errors.Is(err, systems.ErrNoLink):
			return statusMsg(noLinkLabel)
		default:
			return statusMsg(errorPrefix + err.Error())
		}
	}
}
