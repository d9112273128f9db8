package tui

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/mini-arcade/internal/core"
	"github.com/vovakirdan/mini-arcade/internal/highscore"
	"github.com/vovakirdan/mini-arcade/internal/registry"
)

var helpStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("241"))

// GameModel mounts one game. It owns the screen, the frame scheduler and
// the update loop, maps input to intents and records scores.
type GameModel struct {
	game    registry.Game
	deps    Deps
	screen  *core.Screen
	sched   *frameScheduler
	loop    *core.Loop
	tracker *highscore.Tracker
	keys    KeyMap
	help    help.Model
	onExit  func() tea.Cmd

	width      int
	height     int
	scoreSaved bool
	quitting   bool
	exited     bool
}

// NewGameModel mounts game. The stored high score is read once here.
// onExit runs when the player leaves with Escape; nil quits the program.
func NewGameModel(game registry.Game, deps Deps, onExit func() tea.Cmd) GameModel {
	deps = deps.withDefaults()
	cfg := deps.Config
	if cfg.Seed == 0 {
		cfg.Seed = deps.Now().UnixNano()
	}

	tracker := highscore.NewTracker(deps.KV, game.ID(), deps.Logger)
	cfg.HighScore = tracker.Load()

	m := GameModel{
		game:    game,
		deps:    deps,
		sched:   newFrameScheduler(cfg.FrameInterval()),
		tracker: tracker,
		keys:    DefaultKeyMap(),
		help:    help.New(),
		onExit:  onExit,
		width:   cfg.ScreenW,
		height:  cfg.ScreenH,
	}
	m.help.Width = cfg.ScreenW

	cfg.ScreenH = m.playHeight()
	m.screen = core.NewScreen(cfg.ScreenW, cfg.ScreenH)
	game.Reset(cfg)

	m.loop = core.NewLoop(m.sched, game.Cadence(), game.Update, func() bool {
		return game.State().Running
	})

	deps.Logger.Debug("game mounted", "game", game.ID(), "high_score", cfg.HighScore)
	return m
}

// Init implements tea.Model.
func (m GameModel) Init() tea.Cmd {
	return nil
}

// Update implements tea.Model.
func (m GameModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)
	case tea.MouseMsg:
		return m.apply(MapMouse(msg, m.game.State()))
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.layout()
		return m, nil
	case FrameMsg:
		if m.sched.Fire(msg) {
			m.observe()
		}
		return m, m.sched.Cmd()
	}
	return m, nil
}

// handleKey processes host keys first; everything else goes to the game.
func (m GameModel) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Quit):
		m.teardown()
		m.quitting = true
		return m, tea.Quit

	case key.Matches(msg, m.keys.Back):
		m.teardown()
		m.exited = true
		if m.onExit != nil {
			return m, m.onExit()
		}
		return m, tea.Quit

	case key.Matches(msg, m.keys.Screenshot):
		if m.deps.NoScreenshots {
			return m, nil
		}
		if path, err := m.saveScreenshot(); err != nil {
			m.deps.Logger.Warn("screenshot failed", "game", m.game.ID(), "error", err)
		} else {
			m.deps.Logger.Info("screenshot saved", "path", path)
		}
		return m, nil

	case key.Matches(msg, m.keys.Help):
		m.help.ShowAll = !m.help.ShowAll
		m.layout()
		return m, nil
	}

	return m.apply(m.keys.Map(msg, m.game.State()))
}

// apply forwards an intent and starts the loop when a session goes live.
func (m GameModel) apply(in core.Intent) (tea.Model, tea.Cmd) {
	if in.Kind == core.IntentNone {
		return m, nil
	}

	m.game.Handle(in)
	st := m.game.State()

	if (in.Kind == core.IntentStart || in.Kind == core.IntentRestart) && st.Running {
		m.scoreSaved = false
		m.deps.Logger.Debug("session started", "game", m.game.ID())
	}
	if st.Running && !m.loop.Running() {
		m.loop.Start(m.deps.Now())
	}

	m.observe()
	return m, m.sched.Cmd()
}

// observe records a new best and saves the score once per finished session.
func (m *GameModel) observe() {
	st := m.game.State()
	if m.tracker.Record(st.HighScore) {
		m.deps.Logger.Debug("new high score", "game", m.game.ID(), "score", st.HighScore)
	}
	if st.Over && !m.scoreSaved {
		m.saveScore(st.Score)
	}
}

func (m *GameModel) saveScore(score int) {
	m.scoreSaved = true
	if score <= 0 || m.deps.Store == nil {
		return
	}
	if _, err := m.deps.Store.SaveScore(m.game.ID(), score); err != nil {
		m.deps.Logger.Warn("cannot save score", "game", m.game.ID(), "error", err)
		return
	}
	m.deps.Logger.Info("score saved", "game", m.game.ID(), "score", score)
}

// teardown stops the game and drops every pending frame. A session that
// was left mid-way still counts as played.
func (m *GameModel) teardown() {
	m.game.Handle(core.Exit)
	m.loop.Stop()
	m.sched.CancelAll()

	st := m.game.State()
	m.tracker.Record(st.HighScore)
	if !m.scoreSaved {
		m.saveScore(st.Score)
	}
}

// layout splits the terminal between the game and the help footer.
func (m *GameModel) layout() {
	m.help.Width = m.width
	h := m.playHeight()
	m.screen.Resize(m.width, h)
	m.game.Resize(m.width, h)
}

func (m GameModel) playHeight() int {
	return max(0, m.height-lipgloss.Height(m.help.View(m.keys)))
}

// saveScreenshot writes the current frame as plain text.
func (m *GameModel) saveScreenshot() (string, error) {
	if m.deps.ScreenshotDir == "" {
		return "", fmt.Errorf("tui: no screenshot directory")
	}
	m.game.Render(m.screen)

	if err := os.MkdirAll(m.deps.ScreenshotDir, 0o755); err != nil {
		return "", fmt.Errorf("tui: cannot create screenshot directory: %w", err)
	}

	timestamp := m.deps.Now().Format("20060102_150405")
	path := filepath.Join(m.deps.ScreenshotDir, fmt.Sprintf("%s_%s.txt", m.game.ID(), timestamp))
	if err := os.WriteFile(path, []byte(m.screen.String()), 0o600); err != nil {
		return "", fmt.Errorf("tui: cannot write screenshot: %w", err)
	}
	return path, nil
}

// View implements tea.Model.
func (m GameModel) View() string {
	if m.quitting {
		return ""
	}
	m.game.Render(m.screen)
	return RenderScreen(m.screen) + "\n" + helpStyle.Render(m.help.View(m.keys))
}

// IsQuitting returns true if user requested to quit entirely.
func (m GameModel) IsQuitting() bool {
	return m.quitting
}

// Exited returns true if the user left the game with Escape.
func (m GameModel) Exited() bool {
	return m.exited
}

// LoopRunning reports whether the update loop has a frame scheduled.
func (m GameModel) LoopRunning() bool {
	return m.loop.Running()
}

// Run plays a single game in its own program.
func Run(game registry.Game, deps Deps) error {
	p := tea.NewProgram(
		NewGameModel(game, deps, nil),
		tea.WithAltScreen(),
		tea.WithMouseCellMotion(),
	)
	_, err := p.Run()
	return err
}
