package ui

import (
	"fmt"
	"strings"

	"github.com/dustin/go-humanize"
	"github.com/haryoiro/golha/internal/constants"
	"github.com/haryoiro/golha/internal/structures"
	"github.com/mattn/go-runewidth"
)

// renderContent draws the search bar, the info line and the program list
func (m *Model) renderContent(maxWidth int) string {
	var b strings.Builder

	m.search.Width = maxWidth - runewidth.StringWidth(searchPrompt) - 1
	b.WriteString(m.search.View())
	b.WriteString("\n")
	b.WriteString(m.renderInfoLine(maxWidth))
	b.WriteString("\n")

	switch {
	case m.loading:
		return b.String()
	case m.loadErr != nil:
		b.WriteString(m.themeManager.ErrorStyle().Render(truncate(errorPrefix+m.loadErr.Error(), maxWidth)))
		return b.String()
	case m.pager.Len() == 0:
		b.WriteString(m.themeManager.SubtitleStyle().Render(noResultsLabel))
		return b.String()
	}

	rendered := m.pager.Rendered()
	visible := m.getVisibleItems()
	end := m.scrollOffset + visible
	if end > m.rowCount() {
		end = m.rowCount()
	}

	lines := make([]string, 0, visible)
	for i := m.scrollOffset; i < end; i++ {
		if i < len(rendered) {
			lines = append(lines, m.renderRow(i, rendered[i], maxWidth))
		} else {
			lines = append(lines, m.renderShowMore(i, maxWidth))
		}
	}
	b.WriteString(strings.Join(lines, "\n"))

	return b.String()
}

func (m *Model) renderInfoLine(maxWidth int) string {
	dim := m.themeManager.SubtitleStyle()

	var text string
	switch {
	case m.loading:
		text = m.spinner.View() + " " + loadingLabel + "..."
	case m.loadErr != nil:
		return ""
	case m.status != "":
		return m.themeManager.PlayingStyle().Render(truncate(m.status, maxWidth))
	case m.loaderStep < constants.LoaderSteps:
		text = loaderMessage(m.catalogSize, m.loaderStep)
	default:
		text = fmt.Sprintf("%s / %s %s",
			humanize.Comma(int64(m.pager.Len())),
			humanize.Comma(int64(m.catalogSize)),
			programsLabel)
	}
	return dim.Render(truncate(text, maxWidth))
}

// loaderMessage is the counting message shown while the catalog settles in
func loaderMessage(total, step int) string {
	if step > constants.LoaderSteps {
		step = constants.LoaderSteps
	}
	perStep := (total + constants.LoaderSteps - 1) / constants.LoaderSteps
	count := perStep * step
	if count > total {
		count = total
	}
	dots := strings.Repeat(".", step%4)
	return fmt.Sprintf("%s %s %s%s", loadingLabel, humanize.Comma(int64(count)), programsLabel, dots)
}

// rowMarkers returns the download and source markers of p
func (m *Model) rowMarkers(p *structures.Program) string {
	var markers []string
	switch m.playerState.MusicStatus[p.MediaURL] {
	case structures.Downloaded:
		markers = append(markers, "✓")
	case structures.Downloading:
		markers = append(markers, "⬇")
	case structures.DownloadFailed:
		markers = append(markers, "✗")
	}
	if p.SourceURL != "" {
		markers = append(markers, "🔗")
	}
	return strings.Join(markers, " ")
}

func (m *Model) renderRow(index int, p *structures.Program, maxWidth int) string {
	active := p.MediaURL != "" && p.MediaURL == m.playerState.CurrentURL

	icon := "  "
	if active {
		icon = "▶ "
		if !m.playerState.IsPlaying {
			icon = "⏸ "
		}
	}

	number := fmt.Sprintf("%3d. ", index+1)
	markers := m.rowMarkers(p)
	markersWidth := runewidth.StringWidth(markers)
	if markersWidth > 0 {
		markersWidth++
	}

	nameWidth := maxWidth - runewidth.StringWidth(icon) - runewidth.StringWidth(number) - markersWidth
	name := padToWidth(truncate(p.DisplayName(), nameWidth), nameWidth)

	line := icon + number + name
	if markers != "" {
		line += " " + markers
	}

	switch {
	case index == m.selectedIndex && m.hasFocus(FocusList):
		return m.themeManager.SelectedStyle().Render(line)
	case active:
		return m.themeManager.PlayingStyle().Render(line)
	default:
		return m.themeManager.BaseStyle().Render(line)
	}
}

func (m *Model) renderShowMore(index, maxWidth int) string {
	label := fmt.Sprintf("  + %s (%s / %s)", showMoreLabel,
		humanize.Comma(int64(m.pager.Visible())),
		humanize.Comma(int64(m.pager.Len())))
	label = truncate(label, maxWidth)

	if index == m.selectedIndex && m.hasFocus(FocusList) {
		return m.themeManager.SelectedStyle().Render(label)
	}
	return m.themeManager.HelpStyle().Render(label)
}

func (m *Model) applyMarquee(text string, maxLen int) string {
	if runewidth.StringWidth(text) <= maxLen {
		return text
	}

	padded := append([]rune(text), []rune("     ")...)
	offset := m.marqueeOffset % len(padded)

	var result []rune
	width := 0
	for i := 0; width < maxLen; i++ {
		r := padded[(offset+i)%len(padded)]
		w := runewidth.RuneWidth(r)
		if width+w > maxLen {
			break
		}
		result = append(result, r)
		width += w
	}

	for width < maxLen {
		result = append(result, ' ')
		width++
	}
	return string(result)
}

// isASCII checks if a string contains only ASCII characters
func isASCII(s string) bool {
	for i := 0; i < len(s); i++ {
		if s[i] >= 0x80 {
			return false
		}
	}
	return true
}

func truncate(s string, maxWidth int) string {
	if maxWidth <= 0 {
		return ""
	}
	if runewidth.StringWidth(s) <= maxWidth {
		return s
	}

	if maxWidth <= ellipsisWidth {
		if isASCII(s) {
			return s[:maxWidth]
		}
		return runewidth.Truncate(s, maxWidth, "")
	}

	targetWidth := maxWidth - ellipsisWidth
	result := make([]rune, 0, len(s))
	width := 0
	for _, r := range s {
		rw := runewidth.RuneWidth(r)
		if width+rw > targetWidth {
			break
		}
		result = append(result, r)
		width += rw
	}

	return string(result) + "..."
}

func padToWidth(s string, width int) string {
	if width <= 0 {
		return ""
	}

	currentWidth := runewidth.StringWidth(s)
	if currentWidth >= width {
		return s
	}
	return s + strings.Repeat(" ", width-currentWidth)
}
