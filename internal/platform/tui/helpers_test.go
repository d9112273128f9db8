package tui

import (
	"fmt"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/mini-arcade/internal/core"
	"github.com/vovakirdan/mini-arcade/internal/registry"
)

func init() {
	registry.Register("stub", func() registry.Game {
		return &stubGame{}
	})
}

// stubGame scores one point per update and ends after overAfter points.
type stubGame struct {
	st        core.GameState
	overAfter int
	updates   int
	handled   []core.Intent
	cols      int
	rows      int
}

func (g *stubGame) ID() string    { return "stub" }
func (g *stubGame) Title() string { return "Stub" }

func (g *stubGame) Reset(rc core.RuntimeConfig) {
	g.st = core.GameState{HighScore: rc.HighScore}
	g.cols, g.rows = rc.ScreenW, rc.ScreenH
}

func (g *stubGame) Resize(cols, rows int) {
	g.cols, g.rows = cols, rows
}

func (g *stubGame) Handle(in core.Intent) {
	g.handled = append(g.handled, in)
	switch in.Kind {
	case core.IntentStart, core.IntentRestart:
		if !g.st.Running {
			g.st.Running = true
			g.st.Over = false
			g.st.Score = 0
		}
	case core.IntentExit:
		g.st.Running = false
	}
}

func (g *stubGame) Update(dt time.Duration) {
	g.updates++
	g.st.Elapsed = dt
	g.st.Score++
	if g.st.Score > g.st.HighScore {
		g.st.HighScore = g.st.Score
	}
	if g.overAfter > 0 && g.st.Score >= g.overAfter {
		g.st.Running = false
		g.st.Over = true
	}
}

func (g *stubGame) Render(dst *core.Screen) {
	dst.Clear()
	dst.DrawText(0, 0, fmt.Sprintf("score %d", g.st.Score))
}

func (g *stubGame) State() core.GameState { return g.st }

func (g *stubGame) Cadence() core.Cadence {
	return core.Continuous(30 * time.Millisecond)
}

func keyPress(k string) tea.KeyMsg {
	switch k {
	case " ":
		return tea.KeyMsg{Type: tea.KeySpace, Runes: []rune{' '}}
	case "enter":
		return tea.KeyMsg{Type: tea.KeyEnter}
	case "esc":
		return tea.KeyMsg{Type: tea.KeyEsc}
	case "tab":
		return tea.KeyMsg{Type: tea.KeyTab}
	case "up":
		return tea.KeyMsg{Type: tea.KeyUp}
	case "down":
		return tea.KeyMsg{Type: tea.KeyDown}
	case "left":
		return tea.KeyMsg{Type: tea.KeyLeft}
	case "right":
		return tea.KeyMsg{Type: tea.KeyRight}
	case "ctrl+c":
		return tea.KeyMsg{Type: tea.KeyCtrlC}
	case "ctrl+s":
		return tea.KeyMsg{Type: tea.KeyCtrlS}
	default:
		return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(k)}
	}
}

// run executes cmd and returns the message it produces, or nil.
func run(t *testing.T, cmd tea.Cmd) tea.Msg {
	t.Helper()
	if cmd == nil {
		return nil
	}
	return cmd()
}
