package ui

import (
	"github.com/charmbracelet/lipgloss"
	"github.com/haryoiro/golha/internal/structures"
)

// ThemeManager manages UI styles based on the configured theme
type ThemeManager struct {
	theme structures.Theme

	baseStyle         lipgloss.Style
	selectedStyle     lipgloss.Style
	playingStyle      lipgloss.Style
	progressStyle     lipgloss.Style
	progressFillStyle lipgloss.Style
	titleStyle        lipgloss.Style
	subtitleStyle     lipgloss.Style
	helpStyle         lipgloss.Style
	errorStyle        lipgloss.Style
}

// NewThemeManager creates a new theme manager with the given theme
func NewThemeManager(theme structures.Theme) *ThemeManager {
	tm := &ThemeManager{theme: theme}
	tm.initStyles()
	return tm
}

func (tm *ThemeManager) initStyles() {
	// foreground only, a background would color partial cells
	tm.baseStyle = lipgloss.NewStyle().
		Foreground(lipgloss.Color(tm.theme.Foreground))

	tm.selectedStyle = lipgloss.NewStyle().
		Foreground(lipgloss.Color(tm.theme.Selected)).
		Bold(true)

	tm.playingStyle = lipgloss.NewStyle().
		Foreground(lipgloss.Color(tm.theme.Playing)).
		Bold(true)

	tm.progressStyle = lipgloss.NewStyle().
		Foreground(lipgloss.Color(tm.theme.ProgressBar))

	tm.progressFillStyle = lipgloss.NewStyle().
		Foreground(lipgloss.Color(tm.theme.ProgressBarFill))

	tm.titleStyle = lipgloss.NewStyle().
		Foreground(lipgloss.Color(tm.theme.Foreground)).
		Bold(true)

	tm.subtitleStyle = lipgloss.NewStyle().
		Foreground(lipgloss.Color(tm.theme.Foreground)).
		Faint(true)

	tm.helpStyle = lipgloss.NewStyle().
		Foreground(lipgloss.Color(tm.theme.Foreground)).
		Faint(true).
		Italic(true)

	tm.errorStyle = lipgloss.NewStyle().
		Foreground(lipgloss.Color(tm.theme.Error)).
		Bold(true)
}

// Theme returns the active theme
func (tm *ThemeManager) Theme() structures.Theme {
	return tm.theme
}

func (tm *ThemeManager) BaseStyle() lipgloss.Style         { return tm.baseStyle }
func (tm *ThemeManager) SelectedStyle() lipgloss.Style     { return tm.selectedStyle }
func (tm *ThemeManager) PlayingStyle() lipgloss.Style      { return tm.playingStyle }
func (tm *ThemeManager) ProgressStyle() lipgloss.Style     { return tm.progressStyle }
func (tm *ThemeManager) ProgressFillStyle() lipgloss.Style { return tm.progressFillStyle }
func (tm *ThemeManager) TitleStyle() lipgloss.Style        { return tm.titleStyle }
func (tm *ThemeManager) SubtitleStyle() lipgloss.Style     { return tm.subtitleStyle }
func (tm *ThemeManager) HelpStyle() lipgloss.Style         { return tm.helpStyle }
func (tm *ThemeManager) ErrorStyle() lipgloss.Style        { return tm.errorStyle }

// BorderStyle returns a rounded frame in the border color
func (tm *ThemeManager) BorderStyle() lipgloss.Style {
	return lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color(tm.theme.Border)).
		Padding(0, 1)
}
