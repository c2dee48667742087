package tui

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/tui-match3/internal/core"
	"github.com/vovakirdan/tui-match3/internal/games/match3"
	"github.com/vovakirdan/tui-match3/internal/storage"
)

// menuEntry is one line of the main menu.
type menuEntry int

const (
	entryCampaign menuEntry = iota
	entryEndless
	entryLevels
	entryScores
)

var menuEntries = []struct {
	entry menuEntry
	label string
}{
	{entryCampaign, "Campaign"},
	{entryEndless, "Endless"},
	{entryLevels, "Select level..."},
	{entryScores, "High scores"},
}

// MenuModel is the Bubble Tea model for the mode and level picker.
type MenuModel struct {
	env            Env
	best           map[string]storage.LevelBest
	cursor         int
	levelCursor    int
	inLevelSelect  bool
	width          int
	height         int
	config         core.RuntimeConfig
	keyMapper      *KeyMapper
	quitting       bool
	selection      *MenuResult
	openScoreboard bool
}

// NewMenuModel creates a new menu model.
func NewMenuModel(env Env, cfg core.RuntimeConfig) MenuModel {
	m := MenuModel{
		env:       env,
		width:     cfg.ScreenW,
		height:    cfg.ScreenH,
		config:    cfg,
		keyMapper: NewKeyMapper(),
	}
	if env.Store != nil {
		best, err := env.Store.BestLevelResults()
		if err != nil {
			env.logger().Warn("level results unavailable", "err", err)
		}
		m.best = best
	}
	return m
}

// Init initializes the menu model.
func (m MenuModel) Init() tea.Cmd {
	return nil
}

// Update handles messages for the menu.
func (m MenuModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		action := m.keyMapper.MapKeyToMenuAction(msg)
		if m.inLevelSelect {
			return m.handleLevelKey(action)
		}
		return m.handleMenuKey(action)

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.config.ScreenW = msg.Width
		m.config.ScreenH = msg.Height
		return m, nil
	}

	return m, nil
}

func (m MenuModel) handleMenuKey(action MenuAction) (tea.Model, tea.Cmd) {
	switch action {
	case MenuActionQuit, MenuActionBack:
		m.quitting = true
		return m, tea.Quit

	case MenuActionUp:
		if m.cursor > 0 {
			m.cursor--
		}

	case MenuActionDown:
		if m.cursor < len(menuEntries)-1 {
			m.cursor++
		}

	case MenuActionScoreboard:
		m.openScoreboard = true
		return m, tea.Quit

	case MenuActionSelect:
		switch menuEntries[m.cursor].entry {
		case entryCampaign:
			m.selection = &MenuResult{GameID: match3.CampaignID}
			return m, tea.Quit
		case entryEndless:
			m.selection = &MenuResult{GameID: match3.EndlessID}
			return m, tea.Quit
		case entryLevels:
			if len(m.env.Levels) > 0 {
				m.inLevelSelect = true
				m.levelCursor = 0
			}
		case entryScores:
			m.openScoreboard = true
			return m, tea.Quit
		}
	}

	return m, nil
}

func (m MenuModel) handleLevelKey(action MenuAction) (tea.Model, tea.Cmd) {
	switch action {
	case MenuActionQuit:
		m.quitting = true
		return m, tea.Quit
	case MenuActionUp:
		if m.levelCursor > 0 {
			m.levelCursor--
		}
	case MenuActionDown:
		if m.levelCursor < len(m.env.Levels)-1 {
			m.levelCursor++
		}
	case MenuActionSelect:
		m.selection = &MenuResult{
			GameID: match3.CampaignID,
			Level:  m.env.Levels[m.levelCursor].ID,
		}
		return m, tea.Quit
	case MenuActionBack:
		m.inLevelSelect = false
	}

	return m, nil
}

var (
	menuTitleStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("229"))
	menuHelpStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("241"))
	clearedStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("10"))
)

// View renders the menu.
func (m MenuModel) View() string {
	if m.quitting {
		return ""
	}
	if m.inLevelSelect {
		return m.viewLevels()
	}

	var b strings.Builder

	b.WriteString("\n")
	b.WriteString(centerText(menuTitleStyle.Render("  M A T C H - 3  "), m.width))
	b.WriteString("\n\n")
	b.WriteString(centerText("Select a mode", m.width))
	b.WriteString("\n\n")

	for i, e := range menuEntries {
		cursor := "  "
		if i == m.cursor {
			cursor = "> "
		}
		label := e.label
		if e.entry == entryCampaign {
			label = fmt.Sprintf("%s (%d levels)", label, len(m.env.Levels))
		}
		b.WriteString(centerText(cursor+label, m.width))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(centerText(menuHelpStyle.Render("Up/Down: Navigate  |  Enter: Select  |  Tab: Scores  |  Q: Quit"), m.width))
	b.WriteString("\n")

	return b.String()
}

func (m MenuModel) viewLevels() string {
	var b strings.Builder

	b.WriteString("\n")
	b.WriteString(centerText(menuTitleStyle.Render("SELECT LEVEL"), m.width))
	b.WriteString("\n\n")

	for i, lvl := range m.env.Levels {
		cursor := "  "
		if i == m.levelCursor {
			cursor = "> "
		}

		line := fmt.Sprintf("%s%2d. %-12s %2d steps", cursor, i+1, lvl.Name, lvl.Steps)
		if best, ok := m.best[lvl.ID]; ok && best.Clears > 0 {
			line += clearedStyle.Render(fmt.Sprintf("  ✓ best %d", best.BestScore))
		} else if ok {
			line += menuHelpStyle.Render(fmt.Sprintf("  %d tries", best.Attempts))
		}
		b.WriteString(centerText(line, m.width))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(centerText(menuHelpStyle.Render("Enter: Play  |  Esc: Back  |  Q: Quit"), m.width))

	return b.String()
}

// Config returns the current runtime config (may have been updated by resize).
func (m MenuModel) Config() core.RuntimeConfig {
	return m.config
}

// Result reports what the player picked.
func (m MenuModel) Result() MenuResult {
	res := MenuResult{Config: m.config}
	switch {
	case m.openScoreboard:
		res.WantsScoreboard = true
	case m.selection != nil:
		res.GameID = m.selection.GameID
		res.Level = m.selection.Level
	default:
		res.Quit = true
	}
	return res
}

// Done reports whether the menu has finished.
func (m MenuModel) Done() bool {
	return m.quitting || m.openScoreboard || m.selection != nil
}

// centerText centers text within given width, ignoring ANSI styling.
func centerText(text string, width int) string {
	n := lipgloss.Width(text)
	if n >= width {
		return text
	}
	return strings.Repeat(" ", (width-n)/2) + text
}

// MenuResult holds the result of running the menu.
type MenuResult struct {
	GameID          string
	Level           string // campaign start level, empty for the first
	Config          core.RuntimeConfig
	WantsScoreboard bool
	Quit            bool
}

// RunMenu runs the menu and returns the selection result.
func RunMenu(env Env, cfg core.RuntimeConfig) (MenuResult, error) {
	p := tea.NewProgram(
		NewMenuModel(env, cfg),
		tea.WithAltScreen(),
	)

	final, err := p.Run()
	if err != nil {
		return MenuResult{Config: cfg}, err
	}

	m, ok := final.(MenuModel)
	if !ok {
		return MenuResult{Config: cfg, Quit: true}, nil
	}
	return m.Result(), nil
}
