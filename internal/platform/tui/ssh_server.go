package tui

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/ssh"
	"github.com/charmbracelet/wish"
	"github.com/charmbracelet/wish/bubbletea"

	"github.com/vovakirdan/casual-arcade/internal/players"
)

// SSHServerConfig holds configuration for the SSH server.
type SSHServerConfig struct {
	// Address is the host:port to listen on (e.g., ":23234").
	Address string

	// HostKeyPath is the path to the host key file.
	// If empty, a key will be auto-generated at ~/.arcade/host_key.
	HostKeyPath string

	// IdleTimeout is how long to wait before closing idle connections.
	IdleTimeout time.Duration
}

// DefaultSSHServerConfig returns a config with sensible defaults.
func DefaultSSHServerConfig() SSHServerConfig {
	return SSHServerConfig{
		Address:     ":23234",
		IdleTimeout: 30 * time.Minute,
	}
}

// SSHServer wraps a Wish SSH server for the arcade. Every connection plays
// against the same records and player registry.
type SSHServer struct {
	config SSHServerConfig
	server *ssh.Server
	svc    Services
}

// NewSSHServer creates a new SSH server with the given configuration.
func NewSSHServer(cfg SSHServerConfig, svc Services) (*SSHServer, error) {
	srv := &SSHServer{
		config: cfg,
		svc:    svc,
	}

	// Resolve host key path
	hostKeyPath := cfg.HostKeyPath
	if hostKeyPath == "" {
		home, homeErr := os.UserHomeDir()
		if homeErr != nil {
			return nil, fmt.Errorf("cannot get home directory: %w", homeErr)
		}
		hostKeyPath = filepath.Join(home, ".arcade", "host_key")
	}

	// Ensure host key directory exists
	if mkdirErr := os.MkdirAll(filepath.Dir(hostKeyPath), 0o700); mkdirErr != nil {
		return nil, fmt.Errorf("cannot create host key directory: %w", mkdirErr)
	}

	opts := []ssh.Option{
		wish.WithAddress(cfg.Address),
		wish.WithHostKeyPath(hostKeyPath),
		wish.WithIdleTimeout(cfg.IdleTimeout),
		wish.WithMiddleware(
			bubbletea.Middleware(srv.teaHandler),
			srv.loggingMiddleware,
		),
	}

	server, err := wish.NewServer(opts...)
	if err != nil {
		return nil, fmt.Errorf("cannot create SSH server: %w", err)
	}

	srv.server = server
	return srv, nil
}

// teaHandler creates a Bubble Tea program for each SSH session.
func (s *SSHServer) teaHandler(sshSession ssh.Session) (tea.Model, []tea.ProgramOption) {
	pty, _, ok := sshSession.Pty()
	if !ok {
		s.svc.Logger.Warn("no PTY requested", "user", sshSession.User())
		return nil, nil
	}

	model := NewSessionModel(s.svc, sshSession.User(), pty.Window.Width, pty.Window.Height)

	return model, []tea.ProgramOption{
		tea.WithAltScreen(),
	}
}

// loggingMiddleware logs SSH session events.
func (s *SSHServer) loggingMiddleware(next ssh.Handler) ssh.Handler {
	return func(sshSession ssh.Session) {
		s.svc.Logger.Info("session started",
			"user", sshSession.User(),
			"remote", sshSession.RemoteAddr().String(),
		)
		next(sshSession)
		s.svc.Logger.Info("session ended",
			"user", sshSession.User(),
			"remote", sshSession.RemoteAddr().String(),
		)
	}
}

// ListenAndServe starts the SSH server and blocks until shutdown.
func (s *SSHServer) ListenAndServe() error {
	s.svc.Logger.Info("starting SSH server", "address", s.config.Address)

	// Setup signal handling for graceful shutdown
	done := make(chan os.Signal, 1)
	signal.Notify(done, os.Interrupt, syscall.SIGTERM)

	go func() {
		if err := s.server.ListenAndServe(); err != nil && !errors.Is(err, ssh.ErrServerClosed) {
			s.svc.Logger.Error("server error", "error", err)
		}
	}()

	<-done
	s.svc.Logger.Info("shutting down...")
	return s.Shutdown()
}

// Shutdown gracefully stops the server.
func (s *SSHServer) Shutdown() error {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	return s.server.Shutdown(ctx)
}

// Addr returns the server's listen address string.
func (s *SSHServer) Addr() string {
	return s.config.Address
}

type screen int

const (
	screenNickname screen = iota
	screenMenu
	screenGame
	screenLeaderboard
)

// SessionModel manages the full arcade session flow:
// nickname -> menu -> game or leaderboard -> menu.
// This is the top-level model used for SSH sessions.
type SessionModel struct {
	svc      Services
	player   players.Player
	screen   screen
	nickname NicknameModel
	menu     MenuModel
	game     *GameModel
	board    LeaderboardModel
	width    int
	height   int
	quitting bool
}

// NewSessionModel creates a new session model. username prefills the
// nickname prompt.
func NewSessionModel(svc Services, username string, width, height int) SessionModel {
	return SessionModel{
		svc:      svc,
		screen:   screenNickname,
		nickname: NewNicknameModel(svc.Players.Register, username, width, height),
		width:    width,
		height:   height,
	}
}

// Init initializes the session.
func (m SessionModel) Init() tea.Cmd {
	return m.nickname.Init()
}

// Update handles messages for the session. Child models end their own
// programs with tea.Quit; the session swallows that command on every
// screen change.
func (m SessionModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	// Handle window resize globally
	if wsm, ok := msg.(tea.WindowSizeMsg); ok {
		m.width = wsm.Width
		m.height = wsm.Height
	}

	switch m.screen {
	case screenMenu:
		return m.updateMenu(msg)
	case screenGame:
		return m.updateGame(msg)
	case screenLeaderboard:
		return m.updateLeaderboard(msg)
	default:
		return m.updateNickname(msg)
	}
}

func (m SessionModel) updateNickname(msg tea.Msg) (tea.Model, tea.Cmd) {
	next, cmd := m.nickname.Update(msg)
	if nm, ok := next.(NicknameModel); ok {
		m.nickname = nm
	}

	if m.nickname.IsQuitting() {
		m.quitting = true
		return m, tea.Quit
	}
	if p := m.nickname.Player(); p != nil {
		m.player = *p
		m.svc.Logger.Info("player joined", "nickname", p.Nickname)
		return m.toMenu()
	}
	return m, cmd
}

// toMenu refreshes the player's records and shows the menu.
func (m SessionModel) toMenu() (tea.Model, tea.Cmd) {
	if p, err := m.svc.Players.Get(m.player.ID); err == nil {
		m.player = p
	}
	m.screen = screenMenu
	m.menu = NewMenuModel(m.svc, m.player, m.width, m.height)
	return m, m.menu.Init()
}

func (m SessionModel) updateMenu(msg tea.Msg) (tea.Model, tea.Cmd) {
	next, cmd := m.menu.Update(msg)
	if mm, ok := next.(MenuModel); ok {
		m.menu = mm
	}

	switch {
	case m.menu.IsQuitting():
		m.quitting = true
		return m, tea.Quit

	case m.menu.WantsLeaderboard():
		m.screen = screenLeaderboard
		m.board = NewLeaderboardModel(m.svc, m.player.ID, m.width, m.height)
		return m, m.board.Init()

	case m.menu.WantsSwitchPlayer():
		m.screen = screenNickname
		m.nickname = NewNicknameModel(m.svc.Players.Register, "", m.width, m.height)
		return m, m.nickname.Init()

	case m.menu.Selected() != nil:
		gm, err := NewGameModel(m.svc, m.menu.Selected().GameID, m.player)
		if err != nil {
			m.svc.Logger.Error("could not start game", "error", err)
			return m.toMenu()
		}
		gm.width, gm.height = m.width, m.height
		m.game = &gm
		m.screen = screenGame
		return m, m.game.Init()
	}

	return m, cmd
}

func (m SessionModel) updateGame(msg tea.Msg) (tea.Model, tea.Cmd) {
	next, cmd := m.game.Update(msg)
	if gm, ok := next.(GameModel); ok {
		m.game = &gm
	}

	if m.game.IsQuitting() {
		m.quitting = true
		return m, tea.Quit
	}
	if m.game.BackToMenu() {
		m.game = nil
		return m.toMenu()
	}
	return m, cmd
}

func (m SessionModel) updateLeaderboard(msg tea.Msg) (tea.Model, tea.Cmd) {
	next, cmd := m.board.Update(msg)
	if lm, ok := next.(LeaderboardModel); ok {
		m.board = lm
	}

	if m.board.IsQuitting() {
		m.quitting = true
		return m, tea.Quit
	}
	if m.board.IsGoingBack() {
		return m.toMenu()
	}
	return m, cmd
}

// View renders the current screen.
func (m SessionModel) View() string {
	if m.quitting {
		return ""
	}

	switch m.screen {
	case screenMenu:
		return m.menu.View()
	case screenGame:
		return m.game.View()
	case screenLeaderboard:
		return m.board.View()
	default:
		return m.nickname.View()
	}
}
