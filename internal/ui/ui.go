package ui

import (
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/haryoiro/golha/internal/constants"
	"github.com/haryoiro/golha/internal/logger"
	"github.com/haryoiro/golha/internal/pager"
	"github.com/haryoiro/golha/internal/structures"
	"github.com/haryoiro/golha/internal/systems"
	"github.com/mattn/go-runewidth"
)

func init() {
	runewidth.DefaultCondition.EastAsianWidth = false
}

type Model struct {
	systems      *systems.Systems
	config       *structures.Config
	themeManager *ThemeManager
	shortcuts    *ShortcutFormatter
	keyDebouncer *KeyDebouncer
	debouncer    *SearchDebouncer

	width              int
	height             int
	playerHeight       int
	contentHeight      int
	playerContentWidth int

	focus   FocusPane
	search  textinput.Model
	spinner spinner.Model
	pager   *pager.Pager

	// catalog loading
	loading     bool
	loadErr     error
	catalogSize int
	loaderStep  int

	selectedIndex int
	scrollOffset  int

	playerState   structures.PlayerState
	marqueeOffset int

	status      string
	statusUntil time.Time

	// Mouse wheel throttling
	lastScrollTime time.Time
	scrollCooldown time.Duration
}

type tickMsg time.Time
type loaderTickMsg struct{}
type catalogLoadedMsg []*structures.Program
type catalogErrorMsg struct{ err error }
type restoreMsg struct {
	index   int
	seconds float64
	playing bool
}
type statusMsg string

// NewModel creates the root model
func NewModel(sys *systems.Systems, config *structures.Config) *Model {
	search := textinput.New()
	search.Prompt = searchPrompt
	search.Placeholder = searchPlaceholder

	spin := spinner.New()
	spin.Spinner = spinner.Dot

	return &Model{
		systems:        sys,
		config:         config,
		themeManager:   NewThemeManager(config.Theme),
		shortcuts:      NewShortcutFormatter(config),
		keyDebouncer:   NewKeyDebouncer(),
		debouncer:      NewSearchDebouncer(time.Duration(config.SearchDebounceMs) * time.Millisecond),
		playerHeight:   constants.DefaultPlayerHeight,
		search:         search,
		spinner:        spin,
		pager:          pager.New(config.BatchSize),
		loading:        true,
		scrollCooldown: 20 * time.Millisecond,
	}
}

// RunSimple runs the terminal UI until the user quits
func RunSimple(sys *systems.Systems, config *structures.Config) error {
	opts := []tea.ProgramOption{
		tea.WithMouseCellMotion(),
	}
	if !config.DisableAltScreen {
		opts = append(opts, tea.WithAltScreen())
	}

	p := tea.NewProgram(NewModel(sys, config), opts...)
	if _, err := p.Run(); err != nil {
		return err
	}
	return nil
}

func (m *Model) Init() tea.Cmd {
	return tea.Batch(
		m.loadCatalog(),
		m.spinner.Tick,
		m.tickCmd(),
	)
}

func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.contentHeight = m.height - m.playerHeight
		m.playerContentWidth = m.width - 2*(frameSize/2+framePadding)
		m.adjustScroll()
		return m, nil

	case tea.KeyMsg:
		return m.handleKeyPress(msg)

	case tea.MouseMsg:
		return m.handleMouseEvent(msg)

	case tickMsg:
		m.marqueeOffset++
		m.playerState = m.systems.Player.GetState()
		if m.status != "" && time.Time(msg).After(m.statusUntil) {
			m.status = ""
		}
		return m, m.tickCmd()

	case spinner.TickMsg:
		if !m.loading {
			return m, nil
		}
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd

	case catalogLoadedMsg:
		m.loading = false
		m.catalogSize = m.systems.Catalog.Size()
		m.loaderStep = 0
		m.applyView(msg)
		return m, tea.Batch(m.loaderTick(), m.restoreState(msg))

	case catalogErrorMsg:
		m.loading = false
		m.loadErr = msg.err
		logger.Error("Catalog load from %s failed: %v", m.systems.Catalog.Source(), msg.err)
		return m, nil

	case loaderTickMsg:
		if m.loaderStep < constants.LoaderSteps {
			m.loaderStep++
			return m, m.loaderTick()
		}
		return m, nil

	case restoreMsg:
		m.pager.EnsureVisible(msg.index)
		m.selectedIndex = msg.index
		m.adjustScroll()
		m.systems.Player.SendAction(structures.RestoreAction{
			Index:    msg.index,
			Position: time.Duration(msg.seconds * float64(time.Second)),
			Resume:   msg.playing,
		})
		return m, nil

	case searchMsg:
		if !m.debouncer.Accept(msg) {
			return m, nil
		}
		view, err := m.systems.Catalog.Search(msg.term)
		if err != nil {
			logger.Debug("Search ignored: %v", err)
			return m, nil
		}
		m.applyView(view)
		return m, nil

	case statusMsg:
		m.setStatus(string(msg))
		return m, nil
	}

	// cursor blink and other input internals
	if m.hasFocus(FocusSearch) {
		var cmd tea.Cmd
		m.search, cmd = m.search.Update(msg)
		return m, cmd
	}
	return m, nil
}

// applyView replaces the rendered list and hands the view to the player
func (m *Model) applyView(view []*structures.Program) {
	m.pager.Reset(view)
	m.pager.AppendBatch()
	m.selectedIndex = 0
	m.scrollOffset = 0
	m.systems.Player.SendAction(structures.SetViewAction{View: view})
}

func (m *Model) setStatus(text string) {
	m.status = text
	m.statusUntil = time.Now().Add(constants.StatusMessageTTL)
}

func (m *Model) View() string {
	if m.width == 0 || m.height == 0 {
		return ""
	}

	mainStyle := m.themeManager.BorderStyle()
	playerStyle := m.themeManager.BorderStyle()

	_, mainH := mainStyle.GetFrameSize()
	contentWidth := m.width - mainH

	mainStyle = mainStyle.
		Width(m.width - frameSize).
		Height(m.contentHeight - frameSize)
	playerStyle = playerStyle.
		Width(m.width - frameSize).
		Height(m.playerHeight - frameSize)

	content := m.renderContent(contentWidth)

	// keep the content inside its frame
	lines := strings.Split(content, "\n")
	if maxLines := m.contentHeight - frameSize; maxLines > 0 && len(lines) > maxLines {
		lines = lines[:maxLines]
	}

	return lipgloss.JoinVertical(
		lipgloss.Top,
		mainStyle.Render(strings.Join(lines, "\n")),
		playerStyle.Render(m.renderPlayer()),
	)
}
