package tui

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/casual-arcade/internal/players"
	"github.com/vovakirdan/casual-arcade/internal/record"
	"github.com/vovakirdan/casual-arcade/internal/registry"
)

// MenuItem represents a selectable game in the menu.
type MenuItem struct {
	GameID string
	Title  string
	Best   string // All-time best on this machine or server
	Mine   string // The current player's best
}

// MenuModel is the Bubble Tea model for the game picker menu.
type MenuModel struct {
	items           []MenuItem
	cursor          int
	width           int
	height          int
	player          players.Player
	keyMapper       *KeyMapper
	quitting        bool
	selected        *MenuItem // Set when user selects a game
	openLeaderboard bool      // True if user pressed Tab for the leaderboard
	switchPlayer    bool      // True if user asked to change nickname
}

// NewMenuModel creates a new menu model.
func NewMenuModel(svc Services, player players.Player, width, height int) MenuModel {
	games := registry.List()
	items := make([]MenuItem, 0, len(games))

	for _, g := range games {
		info, _ := record.Lookup(g.ID)
		item := MenuItem{GameID: g.ID, Title: g.Title, Best: "-", Mine: "-"}
		if v, ok := svc.Keeper.Best(g.ID); ok {
			item.Best = fmt.Sprintf("%d %s", v, info.Unit)
		}
		if v, ok := player.Score(g.ID); ok {
			item.Mine = fmt.Sprintf("%d %s", v, info.Unit)
		}
		items = append(items, item)
	}

	return MenuModel{
		items:     items,
		width:     width,
		height:    height,
		player:    player,
		keyMapper: NewKeyMapper(),
	}
}

// Init initializes the menu model.
func (m MenuModel) Init() tea.Cmd {
	return nil
}

// Update handles messages for the menu.
func (m MenuModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil
	}

	return m, nil
}

// handleKey processes keyboard input for menu navigation.
func (m MenuModel) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch m.keyMapper.MapKeyToMenuAction(msg) {
	case MenuActionQuit, MenuActionBack:
		m.quitting = true
		return m, tea.Quit

	case MenuActionUp:
		if m.cursor > 0 {
			m.cursor--
		}

	case MenuActionDown:
		if m.cursor < len(m.items)-1 {
			m.cursor++
		}

	case MenuActionSelect:
		if len(m.items) > 0 {
			selected := m.items[m.cursor]
			m.selected = &selected
			return m, tea.Quit // Exit menu to start game
		}

	case MenuActionLeaderboard:
		m.openLeaderboard = true
		return m, tea.Quit

	case MenuActionSwitchPlayer:
		m.switchPlayer = true
		return m, tea.Quit
	}

	return m, nil
}

// View renders the menu.
func (m MenuModel) View() string {
	if m.quitting {
		return ""
	}

	var b strings.Builder

	b.WriteString("\n")
	b.WriteString(centerText(titleStyle.Render("C A S U A L   A R C A D E"), m.width))
	b.WriteString("\n\n")

	if m.player.Nickname != "" {
		b.WriteString(centerText(fmt.Sprintf("Welcome, %s!", m.player.Nickname), m.width))
		b.WriteString("\n")
	}
	b.WriteString(centerText(subtleStyle.Render("Select a game"), m.width))
	b.WriteString("\n\n")

	header := fmt.Sprintf("  %-22s %14s %14s", "Game", "Best", "Yours")
	b.WriteString(centerText(subtleStyle.Render(header), m.width))
	b.WriteString("\n")

	for i, item := range m.items {
		cursor := "  "
		if i == m.cursor {
			cursor = "> "
		}
		line := fmt.Sprintf("%s%-22s %14s %14s", cursor, item.Title, item.Best, item.Mine)
		if i == m.cursor {
			line = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("229")).Render(line)
		}
		b.WriteString(centerText(line, m.width))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	controls := "Up/Down: Navigate  |  Enter: Play  |  Tab: Leaderboard  |  U: Switch player  |  Q: Quit"
	b.WriteString(centerText(subtleStyle.Render(controls), m.width))
	b.WriteString("\n")

	return b.String()
}

// Selected returns the selected menu item, or nil if none selected.
func (m MenuModel) Selected() *MenuItem {
	return m.selected
}

// IsQuitting returns true if user requested to quit.
func (m MenuModel) IsQuitting() bool {
	return m.quitting
}

// WantsLeaderboard returns true if user requested the leaderboard.
func (m MenuModel) WantsLeaderboard() bool {
	return m.openLeaderboard
}

// WantsSwitchPlayer returns true if user asked to change nickname.
func (m MenuModel) WantsSwitchPlayer() bool {
	return m.switchPlayer
}

// centerText centers text within given width.
func centerText(text string, width int) string {
	w := lipgloss.Width(text)
	if w >= width {
		return text
	}
	return strings.Repeat(" ", (width-w)/2) + text
}

// MenuResult holds the result of running the menu.
type MenuResult struct {
	GameID           string
	WantsLeaderboard bool
	SwitchPlayer     bool
	Quit             bool
	Width            int
	Height           int
}

// RunMenu runs the menu and returns the selection result.
func RunMenu(svc Services, player players.Player, width, height int) (MenuResult, error) {
	model := NewMenuModel(svc, player, width, height)

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(),
	)

	finalModel, err := p.Run()
	if err != nil {
		return MenuResult{Width: width, Height: height}, err
	}

	m, ok := finalModel.(MenuModel)
	if !ok {
		return MenuResult{Quit: true}, nil
	}

	result := MenuResult{Width: m.width, Height: m.height}
	switch {
	case m.WantsLeaderboard():
		result.WantsLeaderboard = true
	case m.WantsSwitchPlayer():
		result.SwitchPlayer = true
	case m.Selected() != nil:
		result.GameID = m.Selected().GameID
	default:
		result.Quit = true
	}
	return result, nil
}
