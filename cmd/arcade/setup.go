package main

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/charmbracelet/log"
	"golang.org/x/term"

	"github.com/vovakirdan/mini-arcade/internal/config"
	"github.com/vovakirdan/mini-arcade/internal/core"
	"github.com/vovakirdan/mini-arcade/internal/games/flappy"
	"github.com/vovakirdan/mini-arcade/internal/games/reflex"
	"github.com/vovakirdan/mini-arcade/internal/games/snake"
	"github.com/vovakirdan/mini-arcade/internal/highscore"
	"github.com/vovakirdan/mini-arcade/internal/logging"
	"github.com/vovakirdan/mini-arcade/internal/platform/tui"
	"github.com/vovakirdan/mini-arcade/internal/storage"
)

// fallbackKVFile keeps high scores when the database cannot be opened.
const fallbackKVFile = "~/.arcade/highscores.yaml"

// host bundles what every command that runs games needs.
type host struct {
	deps    tui.Deps
	closers []io.Closer
}

// newHost applies game flags, opens storage and sets up logging. Interactive
// commands log to a file because the alt screen owns the terminal. A custom
// config file applies to gameID only; other games use their usual lookup.
func newHost(logTo io.Writer, gameID, configPath string) (*host, error) {
	if err := configureGames(gameID, configPath); err != nil {
		return nil, err
	}

	h := &host{}
	if logTo == nil {
		f, err := logging.OpenFile(settings.LogFile)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Warning: %v\n", err)
			logTo = io.Discard
		} else {
			h.closers = append(h.closers, f)
			logTo = f
		}
	}
	logger := logging.New(logTo, flagLogLevel, "arcade")

	store, kv := openScores(logger)
	if store != nil {
		h.closers = append(h.closers, store)
	}

	width, height := terminalSize()
	h.deps = tui.Deps{
		Store:  store,
		KV:     kv,
		Logger: logger,
		Config: core.RuntimeConfig{
			ScreenW:  width,
			ScreenH:  height,
			TickRate: flagFPS,
			Seed:     flagSeed,
		},
	}
	return h, nil
}

// Close releases the log file and the database.
func (h *host) Close() {
	for i := len(h.closers) - 1; i >= 0; i-- {
		h.closers[i].Close()
	}
}

// gameConfigurers sets the config path and difficulty of each game package.
var gameConfigurers = map[string]func(path string, preset config.DifficultyPreset){
	reflex.ID: func(path string, preset config.DifficultyPreset) {
		reflex.SetConfigPath(path)
		reflex.SetDifficultyPreset(preset)
	},
	flappy.ID: func(path string, preset config.DifficultyPreset) {
		flappy.SetConfigPath(path)
		flappy.SetDifficultyPreset(preset)
	},
	snake.ID: func(path string, preset config.DifficultyPreset) {
		snake.SetConfigPath(path)
		snake.SetDifficultyPreset(preset)
	},
}

// configureGames applies --difficulty to every game and configPath to
// gameID alone.
func configureGames(gameID, configPath string) error {
	preset, err := config.ParsePreset(flagDifficulty)
	if err != nil {
		return err
	}
	if configPath != "" {
		if _, ok := gameConfigurers[gameID]; !ok {
			return fmt.Errorf("--config needs a game, got %q", gameID)
		}
	}
	for id, configure := range gameConfigurers {
		path := ""
		if id == gameID {
			path = configPath
		}
		configure(path, preset)
	}
	return nil
}

// openScores opens the score database. Without it, high scores go to a
// YAML file and score history is disabled.
func openScores(logger *log.Logger) (*storage.Store, highscore.KV) {
	store, err := storage.Open(flagDBPath)
	if err == nil {
		return store, store
	}
	fmt.Fprintf(os.Stderr, "Warning: could not open scores database: %v\n", err)
	logger.Warn("score database unavailable", "path", flagDBPath, "error", err)

	path, err := storage.ExpandHome(fallbackKVFile)
	if err != nil {
		logger.Warn("high scores kept in memory", "error", err)
		return nil, highscore.NewMemoryKV()
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		logger.Warn("high scores kept in memory", "error", err)
		return nil, highscore.NewMemoryKV()
	}
	return nil, highscore.NewFileKV(path)
}

func terminalSize() (int, int) {
	width, height := 80, 24 // Defaults
	if w, h, err := term.GetSize(int(os.Stdout.Fd())); err == nil {
		width, height = w, h
	}
	return width, height
}
