package tui

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/mini-arcade/internal/registry"
)

// Messages that move a session between screens.
type (
	playMsg   struct{ GameID string }
	menuMsg   struct{}
	scoresMsg struct{}
)

type sessionView int

const (
	viewMenu sessionView = iota
	viewGame
	viewScores
)

// SessionModel manages the full arcade session flow: menu -> game -> menu,
// with the scoreboard one key away. It is the top-level model for both
// local play and SSH sessions.
type SessionModel struct {
	deps     Deps
	view     sessionView
	menu     MenuModel
	game     GameModel
	board    ScoreboardModel
	width    int
	height   int
	quitting bool
}

// NewSessionModel creates a session showing the menu. A non-empty id is
// attached to every log line of the session.
func NewSessionModel(deps Deps, id string) SessionModel {
	deps = deps.withDefaults()
	if id != "" {
		deps.Logger = deps.Logger.With("session", id)
	}
	m := SessionModel{
		deps:   deps,
		width:  deps.Config.ScreenW,
		height: deps.Config.ScreenH,
	}
	m.menu = m.newMenu()
	return m
}

func (m SessionModel) newMenu() MenuModel {
	return NewMenuModel(m.deps.KV, m.width, m.height,
		func(item MenuItem) tea.Cmd {
			return func() tea.Msg { return playMsg{GameID: item.GameID} }
		},
		func() tea.Cmd {
			return func() tea.Msg { return scoresMsg{} }
		},
	)
}

func backToMenu() tea.Cmd {
	return func() tea.Msg { return menuMsg{} }
}

// Init initializes the session.
func (m SessionModel) Init() tea.Cmd {
	return m.menu.Init()
}

// Update handles messages for the session.
func (m SessionModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height

	case playMsg:
		game, err := registry.Create(msg.GameID)
		if err != nil {
			m.deps.Logger.Error("cannot start game", "game", msg.GameID, "error", err)
			return m, nil
		}
		deps := m.deps
		deps.Config.ScreenW = m.width
		deps.Config.ScreenH = m.height
		m.game = NewGameModel(game, deps, backToMenu)
		m.view = viewGame
		m.deps.Logger.Info("game started", "game", msg.GameID)
		return m, m.game.Init()

	case menuMsg:
		if m.view == viewGame {
			m.deps.Logger.Info("game left", "game", m.game.game.ID(), "score", m.game.game.State().Score)
		}
		m.menu = m.newMenu()
		m.view = viewMenu
		return m, nil

	case scoresMsg:
		m.board = NewScoreboardModel(m.deps.Store, m.width, m.height, backToMenu)
		m.view = viewScores
		return m, nil
	}

	var cmd tea.Cmd
	switch m.view {
	case viewGame:
		var next tea.Model
		next, cmd = m.game.Update(msg)
		m.game = next.(GameModel)
		m.quitting = m.game.IsQuitting()
	case viewScores:
		var next tea.Model
		next, cmd = m.board.Update(msg)
		m.board = next.(ScoreboardModel)
		m.quitting = m.board.IsQuitting()
	default:
		var next tea.Model
		next, cmd = m.menu.Update(msg)
		m.menu = next.(MenuModel)
		m.quitting = m.menu.IsQuitting()
	}
	return m, cmd
}

// View renders the current screen.
func (m SessionModel) View() string {
	if m.quitting {
		return ""
	}
	switch m.view {
	case viewGame:
		return m.game.View()
	case viewScores:
		return m.board.View()
	default:
		return m.menu.View()
	}
}

// IsQuitting returns true if user requested to quit.
func (m SessionModel) IsQuitting() bool {
	return m.quitting
}

// RunSession runs the menu-driven arcade in the local terminal.
func RunSession(deps Deps) error {
	p := tea.NewProgram(
		NewSessionModel(deps, ""),
		tea.WithAltScreen(),
		tea.WithMouseCellMotion(),
	)
	_, err := p.Run()
	return err
}
