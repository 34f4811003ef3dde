package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/haryoiro/golha/internal/playback"
	"github.com/haryoiro/golha/internal/structures"
	"github.com/mattn/go-runewidth"
)

// Player pane rows, relative to the pane's first content line
const (
	nowPlayingRow = 0
	progressRow   = 1
	controlsRow   = 2
)

// progressBarWidth is the bar width left between the two time labels
func progressBarWidth(contentWidth int) int {
	width := contentWidth - 2*(timeLabelWidth+1)
	if width < 10 {
		width = 10
	}
	return width
}

// progressFraction maps a column inside the bar to a seek fraction
func progressFraction(column, barWidth int) (float64, bool) {
	if column < 0 || column >= barWidth || barWidth <= 0 {
		return 0, false
	}
	if barWidth == 1 {
		return 0, true
	}
	return float64(column) / float64(barWidth-1), true
}

func (m *Model) renderPlayer() string {
	width := m.playerContentWidth
	if width <= 0 {
		width = 80
	}

	lines := make([]string, 3)
	lines[nowPlayingRow] = m.renderNowPlaying(width)
	lines[progressRow] = m.renderProgressLine(width)
	lines[controlsRow] = m.renderControls(width)
	return strings.Join(lines, "\n")
}

func (m *Model) renderNowPlaying(width int) string {
	label := m.playerState.NowPlaying
	if label == "" {
		return m.themeManager.SubtitleStyle().Render("—")
	}

	if m.playerState.LastError != "" {
		return m.themeManager.ErrorStyle().Render(truncate(label, width))
	}
	return m.themeManager.TitleStyle().Render(m.applyMarquee(label, width))
}

func (m *Model) renderProgressLine(width int) string {
	timeStyle := m.themeManager.BaseStyle().Foreground(lipgloss.Color(m.themeManager.Theme().Selected))

	elapsed := playback.FormatTime(m.playerState.CurrentTime)
	total := playback.FormatTime(m.playerState.TotalTime)

	return fmt.Sprintf("%s %s %s",
		timeStyle.Render(elapsed),
		m.renderProgressBar(progressBarWidth(width)),
		timeStyle.Render(total))
}

func (m *Model) renderProgressBar(width int) string {
	fillStyle := m.themeManager.ProgressFillStyle()
	bgStyle := m.themeManager.ProgressStyle()

	progress := m.playerState.Progress / 100
	if progress > 1 {
		progress = 1
	}
	if progress < 0 || m.playerState.TotalTime <= 0 {
		progress = 0
	}

	filled := int(float64(width) * progress)
	empty := width - filled

	var bar strings.Builder
	switch m.config.Theme.ProgressBarStyle {
	case "block":
		bar.WriteString(fillStyle.Render(strings.Repeat("█", filled)))
		bar.WriteString(bgStyle.Render(strings.Repeat("░", empty)))
	case "line":
		bar.WriteString(fillStyle.Render(strings.Repeat(progressEmptyChar, filled)))
		bar.WriteString(bgStyle.Render(strings.Repeat(progressEmptyChar, empty)))
	default:
		bar.WriteString(m.createGradientBar(filled, m.config.Theme.ProgressBar, m.config.Theme.ProgressBarFill))
		bar.WriteString(bgStyle.Render(strings.Repeat(progressFilledChar, empty)))
	}
	return bar.String()
}

// createGradientBar fills width cells in three bands from startColor to endColor
func (m *Model) createGradientBar(width int, startColor, endColor string) string {
	if width <= 0 {
		return ""
	}

	startStyle := lipgloss.NewStyle().Foreground(lipgloss.Color(startColor))
	endStyle := lipgloss.NewStyle().Foreground(lipgloss.Color(endColor))

	switch width {
	case 1:
		return endStyle.Render(progressFilledChar)
	case 2:
		return startStyle.Render(progressFilledChar) + endStyle.Render(progressFilledChar)
	}

	middleStyle := endStyle.Faint(true)
	startLen := width / 3
	endLen := width / 3
	middleLen := width - startLen - endLen

	return startStyle.Render(strings.Repeat(progressFilledChar, startLen)) +
		middleStyle.Render(strings.Repeat(progressFilledChar, middleLen)) +
		endStyle.Render(strings.Repeat(progressFilledChar, endLen))
}

func (m *Model) renderControls(availableWidth int) string {
	dimStyle := m.themeManager.HelpStyle()

	var parts []string
	if m.playerState.IsPlaying {
		parts = append(parts, "▶")
	} else {
		parts = append(parts, "⏸")
	}

	volume := int(m.playerState.Volume*100 + 0.5)
	volumeIcon := "🔊"
	switch {
	case volume == 0:
		volumeIcon = "🔇"
	case volume < 30:
		volumeIcon = "🔈"
	case volume < 70:
		volumeIcon = "🔉"
	}
	parts = append(parts, fmt.Sprintf("%s %d%%", volumeIcon, volume))

	if m.playerState.MusicStatus[m.playerState.CurrentURL] == structures.Downloaded {
		parts = append(parts, "✓")
	}

	hint := m.shortcuts.FormatHints(m.shortcuts.GetContextualHints(m.focus))
	line := strings.Join(parts, "  ")
	remaining := availableWidth - runewidth.StringWidth(line) - 2
	if remaining > 10 {
		line += "  " + dimStyle.Render(truncate(hint, remaining))
	}
	return line
}
