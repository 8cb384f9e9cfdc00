package tui

import (
	"errors"
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/casual-arcade/internal/players"
)

// LoginFunc registers or looks up a nickname.
type LoginFunc func(nickname string) (players.Player, bool, error)

// NicknameModel asks for the nickname a player is known by on the leaderboard.
type NicknameModel struct {
	input    textinput.Model
	login    LoginFunc
	player   *players.Player
	err      error
	width    int
	height   int
	quitting bool
}

// NewNicknameModel creates the prompt, optionally prefilled with suggestion.
func NewNicknameModel(login LoginFunc, suggestion string, width, height int) NicknameModel {
	input := textinput.New()
	input.Prompt = "Nickname: "
	input.Placeholder = "your name"
	input.CharLimit = players.MaxNicknameLen
	input.Width = players.MaxNicknameLen + 2
	input.SetValue(suggestion)
	input.Focus()

	return NicknameModel{input: input, login: login, width: width, height: height}
}

// Init starts the cursor blink.
func (m NicknameModel) Init() tea.Cmd {
	return textinput.Blink
}

// Update handles messages for the prompt.
func (m NicknameModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c", "esc":
			m.quitting = true
			return m, tea.Quit
		case "enter":
			p, _, err := m.login(m.input.Value())
			if err != nil {
				m.err = err
				return m, nil
			}
			m.player = &p
			return m, tea.Quit
		}

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

// View renders the prompt.
func (m NicknameModel) View() string {
	if m.quitting || m.player != nil {
		return ""
	}

	var b strings.Builder
	b.WriteString("\n")
	b.WriteString(centerText(titleStyle.Render("C A S U A L   A R C A D E"), m.width))
	b.WriteString("\n\n")
	b.WriteString(centerText("Who's playing?", m.width))
	b.WriteString("\n\n")
	b.WriteString(centerText(m.input.View(), m.width))
	b.WriteString("\n\n")

	if m.err != nil {
		b.WriteString(centerText(errorStyle.Render(nicknameError(m.err)), m.width))
		b.WriteString("\n\n")
	}

	b.WriteString(centerText(subtleStyle.Render("Enter: continue  |  Esc: quit"), m.width))
	b.WriteString("\n")
	return b.String()
}

func nicknameError(err error) string {
	switch {
	case errors.Is(err, players.ErrNicknameEmpty):
		return "Please enter a nickname"
	case errors.Is(err, players.ErrNicknameTooLong):
		return fmt.Sprintf("Nickname must be at most %d characters", players.MaxNicknameLen)
	default:
		return "Could not save player: " + err.Error()
	}
}

// Player returns the logged-in player, or nil if the prompt was abandoned.
func (m NicknameModel) Player() *players.Player {
	return m.player
}

// IsQuitting returns true if user left the prompt.
func (m NicknameModel) IsQuitting() bool {
	return m.quitting
}

// RunNickname runs the prompt as its own program.
func RunNickname(login LoginFunc, suggestion string, width, height int) (*players.Player, error) {
	p := tea.NewProgram(NewNicknameModel(login, suggestion, width, height), tea.WithAltScreen())
	finalModel, err := p.Run()
	if err != nil {
		return nil, err
	}

	m, ok := finalModel.(NicknameModel)
	if !ok {
		return nil, nil
	}
	return m.Player(), nil
}
