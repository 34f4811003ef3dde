package ui

import (
	tea "github.com/charmbracelet/bubbletea"
	"github.com/haryoiro/golha/internal/structures"
)

func (m *Model) sendPlayer(action structures.SoundAction) (tea.Model, tea.Cmd) {
	m.systems.Player.SendAction(action)
	return m, nil
}

func (m *Model) togglePlayPause() (tea.Model, tea.Cmd) {
	return m.sendPlayer(structures.PlayPauseAction{})
}

func (m *Model) volumeUp() (tea.Model, tea.Cmd) {
	return m.sendPlayer(structures.VolumeUpAction{})
}

func (m *Model) volumeDown() (tea.Model, tea.Cmd) {
	return m.sendPlayer(structures.VolumeDownAction{})
}

func (m *Model) seekForward() (tea.Model, tea.Cmd) {
	return m.sendPlayer(structures.ForwardAction{})
}

func (m *Model) seekBackward() (tea.Model, tea.Cmd) {
	return m.sendPlayer(structures.BackwardAction{})
}

func (m *Model) playNext() (tea.Model, tea.Cmd) {
	return m.sendPlayer(structures.NextAction{})
}

func (m *Model) playPrevious() (tea.Model, tea.Cmd) {
	return m.sendPlayer(structures.PreviousAction{})
}

func (m *Model) playRandom() (tea.Model, tea.Cmd) {
	return m.sendPlayer(structures.RandomNextAction{})
}

func (m *Model) seekTo(fraction float64) (tea.Model, tea.Cmd) {
	return m.sendPlayer(structures.SeekFractionAction{Fraction: fraction})
}
