package tui

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/x/ansi"

	"github.com/vovakirdan/casual-arcade/internal/core"
	"github.com/vovakirdan/casual-arcade/internal/engine"
	"github.com/vovakirdan/casual-arcade/internal/players"
	"github.com/vovakirdan/casual-arcade/internal/record"
	"github.com/vovakirdan/casual-arcade/internal/rules"
)

// Terminals deliver key presses but no releases. A held direction stays
// down for holdFirst after the first press and is extended by holdRepeat
// on every auto-repeat.
const (
	holdFirst  = 500 * time.Millisecond
	holdRepeat = 150 * time.Millisecond
)

// GameModel runs one game inside Bubble Tea. Every frame advances the
// session clock, feeds the game's tick cadence and drains emitted events
// into the view.
type GameModel struct {
	session

	svc    Services
	keys   *KeyMapper
	player players.Player // Zero value when playing anonymously

	tickID  uint64
	frame   time.Duration
	elapsed time.Duration // Virtual time not yet consumed by game ticks

	leftUntil  time.Duration // Clock time a held direction is released; 0 when not held
	rightUntil time.Duration

	cursor int
	input  textinput.Model

	hint         *engine.HintEvent
	result       *core.SessionResult
	personalBest bool // The result improved the player's own record
	best         int
	hasBest      bool

	width      int
	height     int
	standalone bool
	quitting   bool
	backToMenu bool
}

// NewGameModel creates a model for gameID with the session still Idle.
func NewGameModel(svc Services, gameID string, player players.Player) (GameModel, error) {
	s, err := svc.newSession(gameID)
	if err != nil {
		return GameModel{}, err
	}

	input := textinput.New()
	input.Prompt = "> "
	input.Placeholder = fmt.Sprintf("%d-%d", svc.Games.Guess.Min, svc.Games.Guess.Max)
	input.CharLimit = 8
	input.Width = 10

	best, hasBest := svc.Keeper.Best(gameID)

	return GameModel{
		session: s,
		svc:     svc,
		keys:    NewKeyMapper(),
		player:  player,
		tickID:  nextSession(),
		frame:   frameDuration(svc.Runtime.TickRate),
		input:   input,
		best:    best,
		hasBest: hasBest,
	}, nil
}

// Init starts the frame clock.
func (m GameModel) Init() tea.Cmd {
	return tickCmd(m.svc.Runtime.TickRate, m.tickID)
}

// Update handles messages and updates the model state.
func (m GameModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case TickMsg:
		if msg.Session != m.tickID || m.quitting || m.backToMenu {
			return m, nil
		}
		m.advance()
		return m, tickCmd(m.svc.Runtime.TickRate, m.tickID)
	}

	if m.game.ID() == record.Guess {
		var cmd tea.Cmd
		m.input, cmd = m.input.Update(msg)
		return m, cmd
	}
	return m, nil
}

// handleKey processes keyboard input.
func (m GameModel) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if msg.String() == "ctrl+s" {
		m.saveScreenshot()
		return m, nil
	}

	cmd, ctl := m.keys.MapGameKey(m.game.ID(), msg)
	switch ctl {
	case ControlQuit:
		m.leave()
		m.quitting = true
		return m, tea.Quit

	case ControlBack:
		m.leave()
		m.backToMenu = true
		return m, tea.Quit

	case ControlNewGame:
		return m, m.start()

	case ControlConfirm:
		if !m.running() {
			return m, m.start()
		}
		m.confirm()
		return m, nil

	case ControlCursorLeft, ControlCursorRight, ControlCursorUp, ControlCursorDown:
		m.moveCursor(ctl)
		return m, nil
	}

	if cmd.Action != core.ActionNone {
		m.apply(cmd)
		return m, nil
	}

	if m.game.ID() == record.Guess && m.game.Accepting() && guessKey(msg) {
		var c tea.Cmd
		m.input, c = m.input.Update(msg)
		return m, c
	}
	return m, nil
}

// guessKey reports whether msg may edit the guess field.
func guessKey(msg tea.KeyMsg) bool {
	switch msg.Type {
	case tea.KeyBackspace, tea.KeyDelete, tea.KeyLeft, tea.KeyRight:
		return true
	case tea.KeyRunes:
		for _, r := range msg.Runes {
			if (r < '0' || r > '9') && r != '-' {
				return false
			}
		}
		return true
	}
	return false
}

// running reports whether a session is in progress.
func (m GameModel) running() bool {
	s := m.game.Status()
	return s == core.StatusActive || s == core.StatusPaused
}

// start begins a fresh session and clears per-session view state.
func (m *GameModel) start() tea.Cmd {
	m.game.Start()
	m.elapsed = 0
	m.leftUntil, m.rightUntil = 0, 0
	m.cursor = 0
	m.hint = nil
	m.result = nil
	m.personalBest = false
	m.drain()

	if m.game.ID() == record.Guess {
		m.input.Reset()
		return m.input.Focus()
	}
	return nil
}

// leave ends an unfinished session without a verdict.
func (m *GameModel) leave() {
	if m.running() {
		m.game.End()
		m.drain()
	}
}

// advance moves the clock one frame forward and runs due game ticks.
func (m *GameModel) advance() {
	m.clock.Advance(m.frame)

	if iv := m.game.TickInterval(); iv > 0 && m.game.Status() == core.StatusActive {
		m.elapsed += m.frame
		for m.elapsed >= iv && m.game.Status() == core.StatusActive {
			m.elapsed -= iv
			m.game.Tick()
		}
	}

	m.releaseHeld()
	m.drain()
}

// apply delivers a mapped command to the game.
func (m *GameModel) apply(cmd core.Command) {
	switch cmd.Action {
	case core.ActionMoveLeft, core.ActionMoveRight:
		m.hold(cmd)
	case core.ActionPause:
		if m.game.Apply(cmd) {
			m.leftUntil, m.rightUntil = 0, 0
		}
	default:
		m.game.Apply(cmd)
	}
	m.drain()
}

// hold presses a direction and schedules its emulated release.
// Pressing one direction releases the other.
func (m *GameModel) hold(cmd core.Command) {
	now := m.clock.Now()
	until, other := &m.leftUntil, &m.rightUntil
	stopOther := core.ActionStopRight
	if cmd.Action == core.ActionMoveRight {
		until, other = &m.rightUntil, &m.leftUntil
		stopOther = core.ActionStopLeft
	}

	if *other > 0 {
		*other = 0
		m.game.Apply(core.Cmd(stopOther))
	}

	if *until == 0 {
		if m.game.Apply(cmd) {
			*until = now + holdFirst
		}
		return
	}
	*until = max(*until, now+holdRepeat)
}

// releaseHeld stops directions whose hold window has passed.
func (m *GameModel) releaseHeld() {
	now := m.clock.Now()
	if m.leftUntil > 0 && now >= m.leftUntil {
		m.leftUntil = 0
		m.game.Apply(core.Cmd(core.ActionStopLeft))
	}
	if m.rightUntil > 0 && now >= m.rightUntil {
		m.rightUntil = 0
		m.game.Apply(core.Cmd(core.ActionStopRight))
	}
}

// confirm acts on the cursor or the input field.
func (m *GameModel) confirm() {
	switch m.game.ID() {
	case record.Clicker:
		m.game.Apply(core.Cmd(core.ActionClick))
	case record.Memory:
		m.game.Apply(core.CmdArg(core.ActionReveal, m.cursor))
	case record.RPS:
		m.game.Apply(core.CmdArg(core.ActionChoose, m.cursor))
	case record.Guess:
		if m.game.Apply(core.CmdText(core.ActionGuess, m.input.Value())) {
			m.input.Reset()
		}
	}
	m.drain()
}

// moveCursor moves the card cursor on the memory grid or the hand
// cursor in rock-paper-scissors.
func (m *GameModel) moveCursor(ctl Control) {
	switch m.game.ID() {
	case record.Memory:
		total := len(m.svc.Games.Memory.Symbols) * 2
		cols := memoryColumns(total)
		switch ctl {
		case ControlCursorLeft:
			if m.cursor%cols > 0 {
				m.cursor--
			}
		case ControlCursorRight:
			if m.cursor%cols < cols-1 && m.cursor+1 < total {
				m.cursor++
			}
		case ControlCursorUp:
			if m.cursor-cols >= 0 {
				m.cursor -= cols
			}
		case ControlCursorDown:
			if m.cursor+cols < total {
				m.cursor += cols
			}
		}

	case record.RPS:
		n := len(rules.Choices)
		switch ctl {
		case ControlCursorLeft:
			m.cursor = (m.cursor + n - 1) % n
		case ControlCursorRight:
			m.cursor = (m.cursor + 1) % n
		}
	}
}

// drain consumes buffered game events.
func (m *GameModel) drain() {
	for _, ev := range m.events.Drain() {
		switch ev := ev.(type) {
		case engine.HintEvent:
			m.hint = &ev
		case engine.SessionEndedEvent:
			res := ev.Result
			m.result = &res
			m.best, m.hasBest = res.Best, res.HasBest
			m.recordForPlayer(res)
		}
	}
}

// recordForPlayer mirrors a reconciled result into the player's profile.
func (m *GameModel) recordForPlayer(res core.SessionResult) {
	if !res.Recorded || m.player.ID == "" || m.svc.Players == nil {
		return
	}
	improved, err := m.svc.Players.RecordFor(m.player.ID, res.GameID, res.FinalScore)
	if err != nil {
		m.svc.Logger.Warn("could not update player record",
			"player", m.player.Nickname, "game", res.GameID, "error", err)
		return
	}
	m.personalBest = improved
}

// saveScreenshot saves the current view as plain text.
func (m *GameModel) saveScreenshot() {
	if !m.standalone {
		return
	}

	home, err := os.UserHomeDir()
	if err != nil {
		m.svc.Logger.Warn("screenshot failed", "error", err)
		return
	}
	dir := filepath.Join(home, ".arcade", "screenshots")
	if err := os.MkdirAll(dir, 0o755); err != nil {
		m.svc.Logger.Warn("screenshot failed", "error", err)
		return
	}

	timestamp := time.Now().Format("20060102_150405")
	path := filepath.Join(dir, fmt.Sprintf("%s_%s.txt", m.game.ID(), timestamp))
	if err := os.WriteFile(path, []byte(ansi.Strip(m.View())), 0o600); err != nil {
		m.svc.Logger.Warn("screenshot failed", "path", path, "error", err)
	}
}

// IsQuitting returns true if user requested to quit entirely.
func (m GameModel) IsQuitting() bool {
	return m.quitting
}

// BackToMenu returns true if user requested to go back to menu.
func (m GameModel) BackToMenu() bool {
	return m.backToMenu
}

// GameOutcome reports how a standalone game program ended.
type GameOutcome struct {
	Quit bool // The player asked to leave the arcade rather than return to the menu
}

// RunGame runs a single game as its own Bubble Tea program.
func RunGame(svc Services, gameID string, player players.Player) (GameOutcome, error) {
	model, err := NewGameModel(svc, gameID, player)
	if err != nil {
		return GameOutcome{}, err
	}
	model.standalone = true

	p := tea.NewProgram(model, tea.WithAltScreen())
	finalModel, err := p.Run()
	if err != nil {
		return GameOutcome{}, err
	}

	m, ok := finalModel.(GameModel)
	if !ok {
		return GameOutcome{Quit: true}, nil
	}
	return GameOutcome{Quit: m.IsQuitting()}, nil
}
