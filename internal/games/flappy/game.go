// Package flappy implements a Flappy Bird-style obstacle runner.
// The player keeps a bird airborne and steers it through gaps in pipes
// that scroll in from the right, faster with every fifth pipe passed.
package flappy

import (
	"fmt"
	"math"
	"math/rand"
	"strconv"
	"time"

	"github.com/vovakirdan/mini-arcade/internal/config"
	"github.com/vovakirdan/mini-arcade/internal/core"
	"github.com/vovakirdan/mini-arcade/internal/registry"
)

// ID is the registry and storage identifier.
const ID = "flappy"

// Smallest terminal the course fits in.
const (
	minCols = 20
	minRows = 8
)

// Visual characters for rendering
const (
	PlayerChar = '█'
	PipeChar   = '█'
	GroundChar = '▓'
	GrassChar  = '▀'
	CloudChar  = '▒'
)

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

// Game implements the Flappy Bird game logic.
type Game struct {
	cfg      config.FlappyConfig
	rng      *rand.Rand
	st       State
	tooSmall bool
}

// New creates a new Flappy Bird game instance.
func New() *Game {
	return &Game{cfg: config.DefaultFlappyConfig()}
}

func init() {
	registry.Register(ID, func() registry.Game {
		return New()
	})
}

// ID returns the unique identifier for this game.
func (g *Game) ID() string { return ID }

// Title returns the display name for this game.
func (g *Game) Title() string { return "Flappy Bird" }

// Reset loads configuration and creates an idle session.
func (g *Game) Reset(rc core.RuntimeConfig) {
	cfg, err := config.LoadFlappy(configPath)
	if err != nil {
		cfg = config.DefaultFlappyConfig()
	}
	if difficultyPreset != "" {
		config.ApplyFlappyPreset(&cfg, difficultyPreset)
	}
	g.cfg = cfg
	g.rng = rand.New(rand.NewSource(rc.Seed))
	g.tooSmall = rc.ScreenW < minCols || rc.ScreenH < minRows
	g.st = NewSession(core.ScreenViewport(rc.ScreenW, rc.ScreenH), cfg, rc.HighScore)
}

// Resize adapts to a new viewport. An idle course is rebuilt for the new
// size; a live or finished one keeps its positions.
func (g *Game) Resize(cols, rows int) {
	v := core.ScreenViewport(cols, rows)
	g.tooSmall = cols < minCols || rows < minRows
	if g.st.Idle() {
		g.st = NewSession(v, g.cfg, g.st.HighScore)
		return
	}
	g.st.Viewport = v
}

// Handle applies one intent.
func (g *Game) Handle(in core.Intent) {
	switch in.Kind {
	case core.IntentStart, core.IntentRestart:
		if g.st.Running || g.tooSmall {
			return
		}
		g.st = Start(g.st, g.cfg)
	case core.IntentPrimary:
		g.st = Jump(g.st, g.cfg)
	case core.IntentExit:
		g.st.Running = false
	}
}

// Update advances the simulation by dt.
func (g *Game) Update(dt time.Duration) {
	if g.tooSmall {
		return
	}
	g.st, _ = Advance(g.st, g.cfg, dt, g.rng)
}

// State returns the host-visible state.
func (g *Game) State() core.GameState {
	return g.st.GameState
}

// Course returns a copy of the full session state.
func (g *Game) Course() State {
	return g.st.clone()
}

// Cadence updates every frame with a small delta cap so a stall cannot
// carry the bird through a pipe.
func (g *Game) Cadence() core.Cadence {
	return core.Continuous(g.cfg.Physics.MaxDelta())
}

// Render draws the scene back to front.
func (g *Game) Render(dst *core.Screen) {
	dst.Clear()

	if g.tooSmall || g.st.Viewport.Empty() {
		mid := dst.Height() / 2
		dst.DrawTextCentered(mid-1, "Window too small", core.ColorWhite)
		dst.DrawTextCentered(mid+1, "Resize to continue", core.ColorGray)
		return
	}

	v := g.st.Viewport
	proj := v.Project(dst)
	w, h := v.Width, v.Height

	g.renderClouds(dst, proj)

	// Ground with a grass strip on top
	groundY := g.st.GroundY(g.cfg.Ground.Height)
	dst.DrawRect(proj.Rect(core.RectF{X: 0, Y: groundY, W: w, H: h - groundY}), GroundChar, core.ColorBrown)
	dst.DrawRect(proj.Rect(core.RectF{X: 0, Y: groundY, W: w, H: h * g.cfg.Ground.Height / 2}), GrassChar, core.ColorDarkGreen)

	for _, o := range g.st.Obstacles {
		dst.DrawRect(proj.Rect(o.TopBox()), PipeChar, core.ColorGreen)
		dst.DrawRect(proj.Rect(o.BottomBox(h)), PipeChar, core.ColorGreen)
		// Caps
		dst.DrawRect(proj.Rect(core.RectF{X: o.X - 5, Y: o.GapTop - 15, W: o.Width + 10, H: 15}), '▄', core.ColorDarkGreen)
		dst.DrawRect(proj.Rect(core.RectF{X: o.X - 5, Y: o.GapBottom, W: o.Width + 10, H: 15}), '▀', core.ColorDarkGreen)
	}

	g.renderActor(dst, proj)

	// Score
	dst.DrawTextCentered(proj.Y(h*0.1), strconv.Itoa(g.st.Score), core.ColorWhite)
	dst.DrawTextRight(dst.Width()-1, 0, fmt.Sprintf("Speed Level: %d", g.st.SpeedLevel), core.ColorWhite)

	rows := float64(dst.Height())
	row := func(frac float64) int { return int(rows * frac) }

	switch {
	case g.st.Over:
		dst.Shade()
		dst.DrawTextCentered(row(0.4), "GAME OVER", core.ColorWhite)
		dst.DrawTextCentered(row(0.5), fmt.Sprintf("Score: %d", g.st.Score), core.ColorWhite)
		dst.DrawTextCentered(row(0.6), "Click or Press SPACE to Play Again", core.ColorWhite)
	case !g.st.Running:
		dst.Shade()
		dst.DrawTextCentered(row(0.4), "FLAPPY BIRD", core.ColorWhite)
		dst.DrawTextCentered(row(0.55), "Click or Press SPACE to Start", core.ColorWhite)
	}
}

// renderClouds draws three clouds that drift with the score.
func (g *Game) renderClouds(dst *core.Screen, proj core.Projection) {
	w, h := g.st.Viewport.Width, g.st.Viewport.Height
	size := math.Max(15, w*0.03)
	for i := 0; i < 3; i++ {
		x := math.Mod(float64(i)*w/3+float64(g.st.Score), w)
		y := h*0.15 + float64(i)*20
		dst.DrawRect(proj.Rect(core.RectF{X: x, Y: y - size*0.7, W: size * 3, H: size * 1.4}), CloudChar, core.ColorWhite)
	}
}

func (g *Game) renderActor(dst *core.Screen, proj core.Projection) {
	a := g.st.Actor
	body := proj.Rect(a.Box())
	dst.DrawRect(body, PlayerChar, core.ColorGold)
	dst.SetColor(proj.X(a.X+a.W*0.7), proj.Y(a.Y+a.H*0.3), '●', core.ColorWhite)
	dst.SetColor(body.Right(), proj.Y(a.Y+a.H*0.5), '▶', core.ColorOrange)
	if g.st.Running {
		dst.SetColor(proj.X(a.X+a.W/3), proj.Y(a.Y+a.H*0.5), '▓', core.ColorOrange)
	}
}
