// Package snake implements the classic grid snake: eat food, grow by one
// segment, and avoid the walls and your own body.
package snake

import (
	"fmt"
	"math/rand"
	"time"

	"github.com/vovakirdan/mini-arcade/internal/config"
	"github.com/vovakirdan/mini-arcade/internal/core"
	"github.com/vovakirdan/mini-arcade/internal/registry"
)

// ID is the registry and storage identifier.
const ID = "snake"

// configPath stores the custom config path set via CLI
var configPath string

// difficultyPreset stores the difficulty preset set via CLI
var difficultyPreset config.DifficultyPreset

// SetConfigPath sets a custom YAML config path for new games.
func SetConfigPath(path string) {
	configPath = path
}

// SetDifficultyPreset sets the difficulty preset for new games.
func SetDifficultyPreset(preset config.DifficultyPreset) {
	difficultyPreset = preset
}

// Game adapts the snake rules to the registry interface.
type Game struct {
	cfg      config.SnakeConfig
	rng      *rand.Rand
	viewport core.Viewport
	st       State
}

// New creates a Snake game. Call Reset before use.
func New() *Game {
	return &Game{cfg: config.DefaultSnakeConfig()}
}

func init() {
	registry.Register(ID, func() registry.Game {
		return New()
	})
}

// ID returns the game identifier.
func (g *Game) ID() string { return ID }

// Title returns the display name.
func (g *Game) Title() string { return "Snake" }

// Reset loads configuration and creates an idle board.
func (g *Game) Reset(rc core.RuntimeConfig) {
	cfg, err := config.LoadSnake(configPath)
	if err != nil {
		cfg = config.DefaultSnakeConfig()
	}
	if difficultyPreset != "" {
		config.ApplySnakePreset(&cfg, difficultyPreset)
	}
	g.cfg = cfg
	g.rng = rand.New(rand.NewSource(rc.Seed))
	g.viewport = core.ScreenViewport(rc.ScreenW, rc.ScreenH)
	g.st = NewBoard(GridFor(g.viewport, cfg.Grid), cfg, rc.HighScore, g.rng)
}

// Resize recomputes the board. A changed grid invalidates every coordinate,
// so the board is reset to idle; the high score is kept.
func (g *Game) Resize(cols, rows int) {
	g.viewport = core.ScreenViewport(cols, rows)
	grid := GridFor(g.viewport, g.cfg.Grid)
	if grid == g.st.Grid {
		return
	}
	g.st = NewBoard(grid, g.cfg, g.st.HighScore, g.rng)
}

// Handle applies one intent.
func (g *Game) Handle(in core.Intent) {
	switch in.Kind {
	case core.IntentStart, core.IntentRestart:
		if g.st.Running || g.st.Grid.Empty() {
			return
		}
		g.st = NewBoard(g.st.Grid, g.cfg, g.st.HighScore, g.rng)
		g.st.Running = true
	case core.IntentSetDirection:
		if g.st.Running {
			g.st = Steer(g.st, in.Dir)
		}
	case core.IntentExit:
		g.st.Running = false
	}
}

// Update advances one grid step.
func (g *Game) Update(dt time.Duration) {
	g.st.Elapsed = dt
	g.st, _ = Step(g.st, g.cfg.Speed, g.rng)
}

// State returns the host-visible state.
func (g *Game) State() core.GameState {
	return g.st.GameState
}

// Board returns a copy of the full snake state.
func (g *Game) Board() State {
	return g.st.clone()
}

// Cadence steps once per interval; the interval shrinks as the score grows.
func (g *Game) Cadence() core.Cadence {
	return core.Stepped(func() time.Duration { return g.st.Interval })
}

// Render draws the board, HUD and overlays.
func (g *Game) Render(dst *core.Screen) {
	dst.Clear()

	if g.st.Grid.Empty() {
		renderTooSmall(dst)
		return
	}

	proj := g.viewport.Project(dst)
	grid := g.st.Grid

	if g.st.Food != offBoard {
		dst.DrawRect(proj.Rect(grid.Cell(g.st.Food)), '█', core.ColorRed)
	}
	for i := len(g.st.Segments) - 1; i >= 0; i-- {
		color := core.ColorGreen
		if i == 0 {
			color = core.ColorLightGreen
		}
		dst.DrawRect(proj.Rect(grid.Cell(g.st.Segments[i])), '█', color)
	}
	g.renderEyes(dst, proj)

	// HUD
	hudY := proj.Y(grid.CellPx * 0.5)
	dst.DrawTextColor(proj.X(grid.CellPx), hudY, fmt.Sprintf("Score: %d", g.st.Score), core.ColorWhite)
	dst.DrawTextRight(proj.X(g.viewport.Width-grid.CellPx), hudY,
		fmt.Sprintf("High Score: %d", g.st.HighScore), core.ColorWhite)

	h := float64(dst.Height())
	row := func(frac float64) int { return int(h * frac) }

	switch {
	case g.st.Over:
		dst.Shade()
		dst.DrawTextCentered(row(0.4), "GAME OVER", core.ColorWhite)
		dst.DrawTextCentered(row(0.5), fmt.Sprintf("Score: %d", g.st.Score), core.ColorWhite)
		if g.st.NewBest && g.st.Score == g.st.HighScore && g.st.Score > 0 {
			dst.DrawTextCentered(row(0.56), "New High Score!", core.ColorGold)
		}
		dst.DrawTextCentered(row(0.65), "Press ENTER or SPACE to Play Again", core.ColorWhite)
	case !g.st.Running:
		dst.Shade()
		dst.DrawTextCentered(row(0.4), "SNAKE", core.ColorWhite)
		dst.DrawTextCentered(row(0.5), "Press ENTER or SPACE to Start", core.ColorWhite)
		dst.DrawTextCentered(row(0.58), "Use Arrow Keys or WASD to control", core.ColorWhite)
	}
}

// renderEyes marks the head's leading edge so the heading is readable.
func (g *Game) renderEyes(dst *core.Screen, proj core.Projection) {
	if len(g.st.Segments) == 0 {
		return
	}
	r := proj.Rect(g.st.Grid.Cell(g.st.Segments[0]))
	switch g.st.Direction {
	case core.DirRight:
		dst.SetColor(r.Right()-1, r.Y, ':', core.ColorDarkGreen)
	case core.DirLeft:
		dst.SetColor(r.X, r.Y, ':', core.ColorDarkGreen)
	case core.DirUp, core.DirDown:
		dst.SetColor(r.X, r.Y, '·', core.ColorDarkGreen)
		dst.SetColor(r.Right()-1, r.Y, '·', core.ColorDarkGreen)
	}
}

func renderTooSmall(dst *core.Screen) {
	mid := dst.Height() / 2
	dst.DrawTextCentered(mid-1, "Window too small", core.ColorWhite)
	dst.DrawTextCentered(mid+1, "Resize to continue", core.ColorGray)
}
