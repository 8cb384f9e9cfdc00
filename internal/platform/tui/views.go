package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/casual-arcade/internal/core"
	"github.com/vovakirdan/casual-arcade/internal/engine"
	"github.com/vovakirdan/casual-arcade/internal/games/clicker"
	"github.com/vovakirdan/casual-arcade/internal/games/dodge"
	"github.com/vovakirdan/casual-arcade/internal/games/guess"
	"github.com/vovakirdan/casual-arcade/internal/games/memory"
	"github.com/vovakirdan/casual-arcade/internal/games/rps"
	"github.com/vovakirdan/casual-arcade/internal/record"
	"github.com/vovakirdan/casual-arcade/internal/rules"
)

var (
	titleStyle   = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("212"))
	subtleStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("245"))
	successStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("42"))
	errorStyle   = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("196"))
	warningStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("214"))
	lowStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("39"))
	highStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("203"))
	recordStyle  = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("226"))

	cardStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("240")).
			Padding(0, 1)

	buttonStyle = lipgloss.NewStyle().
			Border(lipgloss.ThickBorder()).
			Padding(1, 4).
			Bold(true)
)

// hintStyle picks the style for a hint kind.
func hintStyle(k engine.HintKind) lipgloss.Style {
	switch k {
	case engine.HintSuccess:
		return successStyle
	case engine.HintError:
		return errorStyle
	case engine.HintWarning:
		return warningStyle
	case engine.HintLow:
		return lowStyle
	case engine.HintHigh:
		return highStyle
	default:
		return lipgloss.NewStyle()
	}
}

// View renders the current game screen.
func (m GameModel) View() string {
	if m.quitting {
		return ""
	}

	var body string
	switch g := m.game.(type) {
	case *clicker.Game:
		body = m.viewClicker(g.State())
	case *dodge.Game:
		body = m.viewDodge(g)
	case *memory.Game:
		body = m.viewMemory(g.State())
	case *guess.Game:
		body = m.viewGuess(g.State())
	case *rps.Game:
		body = m.viewRPS(g.State())
	}

	sections := []string{m.header(), body, ""}
	if line := m.statusLine(); line != "" {
		sections = append(sections, line)
	}
	sections = append(sections, subtleStyle.Render(m.controls()))

	view := lipgloss.JoinVertical(lipgloss.Center, sections...)
	if m.width > 0 && m.height > 0 {
		return lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center, view)
	}
	return view
}

// header shows the title, the player and the all-time best.
func (m GameModel) header() string {
	info, _ := record.Lookup(m.game.ID())

	best := "none yet"
	if m.hasBest {
		best = fmt.Sprintf("%d %s", m.best, info.Unit)
	}
	meta := "Best: " + best
	if m.player.Nickname != "" {
		meta = fmt.Sprintf("Player: %s  |  %s", m.player.Nickname, meta)
	}

	return lipgloss.JoinVertical(lipgloss.Center,
		titleStyle.Render(m.game.Title()),
		subtleStyle.Render(meta),
		"",
	)
}

// statusLine shows the session result, the latest hint or the start prompt.
func (m GameModel) statusLine() string {
	switch {
	case m.result != nil:
		return m.resultLine(*m.result)
	case m.game.Status() == core.StatusIdle:
		return successStyle.Render("Press Enter to start")
	case m.hint != nil:
		return hintStyle(m.hint.Kind).Render(m.hint.Message)
	}
	return ""
}

// resultLine summarizes a finished session.
func (m GameModel) resultLine(res core.SessionResult) string {
	info, _ := record.Lookup(res.GameID)

	var head string
	switch {
	case !res.Recorded && res.Won == nil:
		head = subtleStyle.Render("Session ended")
	case res.Won != nil && *res.Won:
		head = successStyle.Render("You win!")
	default:
		head = errorStyle.Render("Game over")
	}

	line := fmt.Sprintf("%s  Final: %d %s", head, res.FinalScore, info.Unit)
	switch {
	case res.NewRecord && res.FinalScore > 0:
		line += "  " + recordStyle.Render("NEW RECORD!")
	case m.personalBest:
		line += "  " + recordStyle.Render("New personal best!")
	}
	return line
}

// controls lists the keys for the current game.
func (m GameModel) controls() string {
	var keys string
	switch m.game.ID() {
	case record.Clicker:
		keys = "Space: click  |  N: restart  |  Esc: menu  |  Q: quit"
	case record.Dodge:
		keys = "←/→: move  |  P: pause  |  N: restart  |  Esc: menu  |  Q: quit"
	case record.Memory:
		keys = "Arrows: move  |  Enter: flip  |  N: restart  |  Esc: menu  |  Q: quit"
	case record.Guess:
		keys = "Type a number  |  Enter: guess  |  Esc: menu  |  Ctrl+C: quit"
	case record.RPS:
		keys = "1/R rock  2/P paper  3/S scissors  |  N: restart  |  Esc: menu  |  Q: quit"
	}
	if !m.running() {
		keys = "Enter: start  |  " + keys
	}
	return keys
}

func (m GameModel) viewClicker(s clicker.State) string {
	stats := fmt.Sprintf("Time left: %2ds      Clicks: %d", s.TimeLeft, s.Score)

	button := buttonStyle.BorderForeground(lipgloss.Color("240")).Foreground(lipgloss.Color("245"))
	if s.Status == core.StatusActive {
		button = buttonStyle.BorderForeground(lipgloss.Color("42")).Foreground(lipgloss.Color("42"))
	}

	return lipgloss.JoinVertical(lipgloss.Center, stats, "", button.Render("CLICK!"))
}

func (m GameModel) viewDodge(g *dodge.Game) string {
	s := g.State()

	rows := 24
	if m.height > 0 {
		rows = core.Clamp(m.height-10, 12, 30)
	}
	// Terminal cells are about twice as tall as they are wide.
	cols := int(float64(rows) * s.Width / s.Height * 2)

	screen := core.NewScreen(cols+2, rows+2)
	g.Render(screen)

	hud := fmt.Sprintf("Score: %d    Lives: %s    Speed: %.1f",
		s.Score, strings.Repeat("♥", max(s.Lives, 0)), s.Speed)
	return lipgloss.JoinVertical(lipgloss.Center, hud, RenderScreen(screen))
}

// memoryColumns is the width of the card grid.
func memoryColumns(cards int) int {
	switch {
	case cards >= 16:
		return 4
	case cards >= 6:
		return 3
	default:
		return max(cards, 1)
	}
}

func (m GameModel) viewMemory(s memory.State) string {
	cols := memoryColumns(len(s.Cards))

	var rows []string
	var row []string
	for i, c := range s.Cards {
		face := "??"
		style := cardStyle
		switch {
		case c.Matched:
			face = c.Symbol
			style = style.BorderForeground(lipgloss.Color("42"))
		case c.FaceUp:
			face = c.Symbol
			style = style.BorderForeground(lipgloss.Color("212"))
		}
		if i == m.cursor && s.Status == core.StatusActive {
			style = style.BorderForeground(lipgloss.Color("226")).BorderStyle(lipgloss.ThickBorder())
		}
		row = append(row, style.Render(face))
		if len(row) == cols {
			rows = append(rows, lipgloss.JoinHorizontal(lipgloss.Top, row...))
			row = nil
		}
	}
	if len(row) > 0 {
		rows = append(rows, lipgloss.JoinHorizontal(lipgloss.Top, row...))
	}

	stats := fmt.Sprintf("Moves: %d    Pairs: %d/%d", s.Moves, s.MatchedPairs, s.TotalPairs)
	return lipgloss.JoinVertical(lipgloss.Center, append([]string{stats, ""}, rows...)...)
}

func (m GameModel) viewGuess(s guess.State) string {
	cfg := m.svc.Games.Guess
	lines := []string{
		fmt.Sprintf("I'm thinking of a number between %d and %d", cfg.Min, cfg.Max),
		fmt.Sprintf("Range: %d - %d    Attempts left: %d", s.Low, s.High, s.AttemptsLeft),
		"",
	}

	switch s.Status {
	case core.StatusActive:
		lines = append(lines, m.input.View())
	case core.StatusEnded:
		lines = append(lines, fmt.Sprintf("The number was %d", s.Secret))
	}

	if len(s.History) > 0 {
		lines = append(lines, "")
	}
	for i := len(s.History) - 1; i >= 0; i-- {
		e := s.History[i]
		style := successStyle
		switch e.Verdict {
		case rules.TooLow:
			style = lowStyle
		case rules.TooHigh:
			style = highStyle
		}
		lines = append(lines, style.Render(e.String()))
	}

	return lipgloss.JoinVertical(lipgloss.Center, lines...)
}

// choiceIcons is indexed by rules.Choice.
var choiceIcons = []string{"✊", "✋", "✌"}

func choiceLabel(c rules.Choice) string {
	if c.Valid() {
		return choiceIcons[c] + " " + c.String()
	}
	return c.String()
}

func (m GameModel) viewRPS(s rps.State) string {
	score := fmt.Sprintf("You %d : %d Computer    First to %d", s.PlayerScore, s.ComputerScore, s.WinningScore)

	var hands []string
	for i, c := range rules.Choices {
		style := cardStyle
		if i == m.cursor && s.Status == core.StatusActive && !s.Resolving {
			style = style.BorderForeground(lipgloss.Color("226")).BorderStyle(lipgloss.ThickBorder())
		}
		hands = append(hands, style.Render(fmt.Sprintf("%d %s", i+1, choiceLabel(c))))
	}

	lines := []string{score, fmt.Sprintf("Round %d", s.Round), "", lipgloss.JoinHorizontal(lipgloss.Top, hands...), ""}

	switch {
	case s.Resolving:
		lines = append(lines, warningStyle.Render("Computer is choosing..."))
	case s.Last != nil:
		lines = append(lines, fmt.Sprintf("You: %s   vs   Computer: %s",
			choiceLabel(s.Last.Player), choiceLabel(s.Last.Computer)))
	}

	// Newest first, at most five rounds.
	for i := len(s.History) - 1; i >= 0 && i >= len(s.History)-5; i-- {
		e := s.History[i]
		style := subtleStyle
		switch e.Outcome {
		case rules.Win:
			style = successStyle
		case rules.Lose:
			style = highStyle
		}
		lines = append(lines, style.Render(fmt.Sprintf("Round %d: %s vs %s (%s)",
			e.Round, e.Player, e.Computer, e.Outcome)))
	}

	return lipgloss.JoinVertical(lipgloss.Center, lines...)
}
