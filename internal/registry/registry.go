// Package registry provides a global registry for game factories.
// Games register themselves in init() functions, allowing the platform
// to discover and instantiate games without hardcoded dependencies.
package registry

import (
	"fmt"
	"sort"
	"sync"
	"time"

	"github.com/vovakirdan/mini-arcade/internal/core"
)

// Game is the interface all arcade games implement.
// Games contain pure logic with no Bubble Tea dependency; the platform
// handles input mapping, frame scheduling and terminal output.
type Game interface {
	// ID returns a unique identifier for this game (e.g., "snake").
	// Used for CLI commands, score storage and the high-score key.
	ID() string

	// Title returns a human-readable name for display (e.g., "Snake").
	Title() string

	// Reset creates a fresh session: not running, not over, score 0.
	// The RuntimeConfig provides screen size, RNG seed and the stored high score.
	Reset(cfg core.RuntimeConfig)

	// Resize adapts the viewport to a new screen size in cells.
	Resize(cols, rows int)

	// Handle applies one input intent.
	Handle(in core.Intent)

	// Update advances the simulation by dt. The loop calls it once per
	// simulation step according to Cadence.
	Update(dt time.Duration)

	// Render draws the current state into dst without changing it.
	Render(dst *core.Screen)

	// State returns the host-visible part of the game state.
	State() core.GameState

	// Cadence tells the loop how to turn frames into simulation steps.
	Cadence() core.Cadence
}

// GameInfo contains metadata about a registered game.
type GameInfo struct {
	ID    string
	Title string
}

// Factory is a function that creates a new instance of a game.
type Factory func() Game

var (
	factories = make(map[string]Factory)
	titles    = make(map[string]string)
	mu        sync.RWMutex
)

// Register adds a game factory to the registry.
// Typically called from a game's init() function.
// Panics if a game with the same ID is already registered.
func Register(id string, f Factory) {
	mu.Lock()
	defer mu.Unlock()

	if _, exists := factories[id]; exists {
		panic(fmt.Sprintf("registry: game %q already registered", id))
	}

	factories[id] = f

	// Get title by creating a temporary instance
	g := f()
	titles[id] = g.Title()
}

// List returns information about all registered games, sorted by ID.
func List() []GameInfo {
	mu.RLock()
	defer mu.RUnlock()

	result := make([]GameInfo, 0, len(factories))
	for id := range factories {
		result = append(result, GameInfo{
			ID:    id,
			Title: titles[id],
		})
	}

	sort.Slice(result, func(i, j int) bool {
		return result[i].ID < result[j].ID
	})

	return result
}

// Create instantiates a new game by its ID.
// Returns an error if the game ID is not registered.
func Create(id string) (Game, error) {
	mu.RLock()
	defer mu.RUnlock()

	f, ok := factories[id]
	if !ok {
		return nil, fmt.Errorf("registry: unknown game %q", id)
	}

	return f(), nil
}

// Exists checks if a game with the given ID is registered.
func Exists(id string) bool {
	mu.RLock()
	defer mu.RUnlock()

	_, ok := factories[id]
	return ok
}
