package main

import (
	"path/filepath"
	"testing"

	"github.com/vovakirdan/mini-arcade/internal/config"
	"github.com/vovakirdan/mini-arcade/internal/highscore"
	"github.com/vovakirdan/mini-arcade/internal/logging"
)

// recordConfigurers swaps the game setters for recorders.
func recordConfigurers(t *testing.T) map[string]string {
	t.Helper()
	saved := gameConfigurers
	t.Cleanup(func() { gameConfigurers = saved })

	paths := make(map[string]string)
	gameConfigurers = make(map[string]func(string, config.DifficultyPreset))
	for id := range saved {
		gameConfigurers[id] = func(path string, _ config.DifficultyPreset) {
			paths[id] = path
		}
	}
	return paths
}

func TestConfigureGamesScopesConfigToOneGame(t *testing.T) {
	paths := recordConfigurers(t)

	if err := configureGames("flappy", "my-flappy.yaml"); err != nil {
		t.Fatalf("configureGames() failed: %v", err)
	}

	expected := map[string]string{"reflex": "", "flappy": "my-flappy.yaml", "snake": ""}
	for id, want := range expected {
		if got, ok := paths[id]; !ok || got != want {
			t.Errorf("%s config path = %q (set %v), expected %q", id, got, ok, want)
		}
	}
}

func TestConfigureGamesWithoutGameUsesLookup(t *testing.T) {
	paths := recordConfigurers(t)

	if err := configureGames("", ""); err != nil {
		t.Fatalf("configureGames() failed: %v", err)
	}
	for id, path := range paths {
		if path != "" {
			t.Errorf("%s got config path %q in menu mode", id, path)
		}
	}
	if len(paths) != 3 {
		t.Errorf("Expected all three games configured, got %d", len(paths))
	}
}

func TestConfigureGamesRejects(t *testing.T) {
	recordConfigurers(t)

	if err := configureGames("", "orphan.yaml"); err == nil {
		t.Error("A config file without a game should be rejected")
	}

	saved := flagDifficulty
	t.Cleanup(func() { flagDifficulty = saved })
	flagDifficulty = "brutal"
	if err := configureGames("snake", ""); err == nil {
		t.Error("An unknown difficulty should be rejected")
	}
}

func TestListRowsShowBest(t *testing.T) {
	kv := highscore.NewMemoryKV()
	kv.Set(highscore.Key("snake"), "17")

	rows := listRows(kv)
	if len(rows) != 3 {
		t.Fatalf("Expected 3 games, got %d", len(rows))
	}
	for _, r := range rows {
		if r.Controls == "" {
			t.Errorf("%s has no controls line", r.ID)
		}
		want := 0
		if r.ID == "snake" {
			want = 17
		}
		if r.Best != want {
			t.Errorf("%s best = %d, expected %d", r.ID, r.Best, want)
		}
	}
}

func TestOpenScoresFallsBackToFile(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)

	saved := flagDBPath
	t.Cleanup(func() { flagDBPath = saved })
	// A directory cannot be opened as a database.
	flagDBPath = home

	store, kv := openScores(logging.Discard())
	if store != nil {
		store.Close()
		t.Fatal("Expected the database to fail")
	}
	if _, ok := kv.(*highscore.FileKV); !ok {
		t.Fatalf("Expected a FileKV fallback, got %T", kv)
	}
	kv.Raise(highscore.Key("reflex"), 5)

	reopened := highscore.NewFileKV(filepath.Join(home, ".arcade", "highscores.yaml"))
	if v, _, _ := reopened.Get(highscore.Key("reflex")); v != "5" {
		t.Errorf("Fallback file holds %q, expected \"5\"", v)
	}
}
