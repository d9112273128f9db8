// Package reflex implements "Stop the Sprite", a reflex timer. A square
// sweeps back and forth across a fixed canvas and the player stops it as
// close to the target line as possible. Good play raises the speed.
package reflex

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
const ID = "reflex"

const (
	minCols = 30
	minRows = 10
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

// levelColors tints the speed readout per level.
var levelColors = []core.Color{
	core.ColorGreen,
	core.ColorYellow,
	core.ColorOrange,
	core.ColorRed,
	core.ColorPurple,
}

// Game adapts the reflex rules to the registry interface.
type Game struct {
	cfg      config.ReflexConfig
	rng      *rand.Rand
	st       State
	tooSmall bool
}

// New creates a reflex timer. Call Reset before use.
func New() *Game {
	return &Game{cfg: config.DefaultReflexConfig()}
}

func init() {
	registry.Register(ID, func() registry.Game {
		return New()
	})
}

// ID returns the game identifier.
func (g *Game) ID() string { return ID }

// Title returns the display name.
func (g *Game) Title() string { return "Stop the Sprite" }

// Reset loads configuration and creates an idle session.
func (g *Game) Reset(rc core.RuntimeConfig) {
	cfg, err := config.LoadReflex(configPath)
	if err != nil {
		cfg = config.DefaultReflexConfig()
	}
	if difficultyPreset != "" {
		config.ApplyReflexPreset(&cfg, difficultyPreset)
	}
	g.cfg = cfg
	g.rng = rand.New(rand.NewSource(rc.Seed))
	g.tooSmall = rc.ScreenW < minCols || rc.ScreenH < minRows
	g.st = NewSession(cfg, rc.HighScore)
}

// Resize only affects drawing; the canvas has a fixed size.
func (g *Game) Resize(cols, rows int) {
	g.tooSmall = cols < minCols || rows < minRows
}

// Handle applies one intent.
func (g *Game) Handle(in core.Intent) {
	switch in.Kind {
	case core.IntentStart, core.IntentRestart:
		if g.st.Running || g.tooSmall {
			return
		}
		g.st = Start(g.cfg, g.st.HighScore)
	case core.IntentPrimary:
		if !g.st.Running {
			return
		}
		if g.st.Moving {
			g.st, _ = Stop(g.st, g.cfg, g.rng)
		} else {
			g.st = Resume(g.st)
		}
	case core.IntentSpeedUp:
		if g.st.Running {
			g.st = SetLevel(g.st, g.cfg, g.st.SpeedLevel+1)
		}
	case core.IntentSpeedDown:
		if g.st.Running {
			g.st = SetLevel(g.st, g.cfg, g.st.SpeedLevel-1)
		}
	case core.IntentExit:
		g.st.Running = false
		g.st.Moving = false
	}
}

// Update advances one step.
func (g *Game) Update(dt time.Duration) {
	g.st = Advance(g.st, g.cfg, dt)
}

// State returns the host-visible state.
func (g *Game) State() core.GameState {
	return g.st.GameState
}

// Session returns a copy of the full reflex state.
func (g *Game) Session() State {
	return g.st
}

// Cadence runs fixed steps and catches up on slow frames, so sprite speed
// does not depend on the host frame rate.
func (g *Game) Cadence() core.Cadence {
	return core.CatchUp(g.cfg.Speed.Step(), 0)
}

// Render draws the canvas stretched over the whole screen.
func (g *Game) Render(dst *core.Screen) {
	dst.Clear()

	if g.tooSmall {
		mid := dst.Height() / 2
		dst.DrawTextCentered(mid-1, "Window too small", core.ColorWhite)
		dst.DrawTextCentered(mid+1, "Resize to continue", core.ColorGray)
		return
	}

	proj := g.st.Canvas.Project(dst)

	// Target zone and center line
	dst.DrawRect(proj.Rect(g.st.Target()), '░', core.ColorGray)
	dst.DrawVLine(proj.X(g.st.TargetCenter), 0, dst.Height(), '│', core.ColorWhite)

	g.renderSprite(dst, proj)

	// HUD
	speed := strconv.FormatFloat(g.st.Speed, 'f', -1, 64)
	dst.DrawTextColor(1, 0, "Speed: ", core.ColorWhite)
	dst.DrawTextColor(8, 0, speed+"px", g.levelColor())

	status, statusColor := "STOPPED", core.ColorRed
	if g.st.Moving {
		status, statusColor = "MOVING", core.ColorGreen
	}
	dst.DrawTextRight(dst.Width()-2, 0, status, statusColor)

	bottom := dst.Height() - 1
	dst.DrawTextColor(1, bottom, fmt.Sprintf("Level %d", g.st.SpeedLevel), g.levelColor())
	dst.DrawTextCentered(bottom, fmt.Sprintf("Score: %d  Best: %d", g.st.Score, g.st.HighScore), core.ColorWhite)
	dst.DrawTextRight(dst.Width()-2, bottom,
		fmt.Sprintf("Hits %d/%d  %.0f%%", g.st.Hits, g.st.Attempts, g.st.Accuracy()), core.ColorGray)

	if g.st.Feedback != "" {
		dst.DrawTextCentered(dst.Height()/2, g.st.Feedback, core.ColorWhite)
	}

	if !g.st.Running {
		h := float64(dst.Height())
		dst.Shade()
		dst.DrawTextCentered(int(h*0.4), "STOP THE SPRITE", core.ColorWhite)
		dst.DrawTextCentered(int(h*0.55), "Press SPACE to start", core.ColorWhite)
		dst.DrawTextCentered(int(h*0.65), "+/- to change speed", core.ColorGray)
	}
}

// renderSprite draws the square and, while moving, a short trail behind it
// that grows with speed.
func (g *Game) renderSprite(dst *core.Screen, proj core.Projection) {
	size := g.cfg.Sprite.Size
	box := g.st.Sprite(size)

	if g.st.Moving {
		trail := min(5, int(math.Floor(g.st.Speed/10)))
		for i := trail; i >= 1; i-- {
			shrink := float64(i) * 3
			ghost := core.RectF{
				X: box.X - float64(i)*g.st.Direction*8,
				Y: box.Y + float64(i)*1.5,
				W: size - shrink,
				H: size - shrink,
			}
			if ghost.X < -ghost.W || ghost.X > g.st.Canvas.Width {
				continue
			}
			dst.DrawRect(proj.Rect(ghost), '▒', core.ColorLightRed)
		}
	}

	dst.DrawRect(proj.Rect(box), '█', core.ColorRed)
}

func (g *Game) levelColor() core.Color {
	if g.st.SpeedLevel < 1 || g.st.SpeedLevel > len(levelColors) {
		return core.ColorWhite
	}
	return levelColors[g.st.SpeedLevel-1]
}
