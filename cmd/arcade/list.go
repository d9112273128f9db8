package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/mini-arcade/internal/highscore"
	"github.com/vovakirdan/mini-arcade/internal/logging"
	"github.com/vovakirdan/mini-arcade/internal/registry"
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List all available games",
	Long:  `Shows every game in the arcade with its controls and your best score.`,
	Run:   runList,
}

// gameControls is the one-line control summary shown by list.
var gameControls = map[string]string{
	"reflex": "space stop/resume, +/- speed",
	"flappy": "space flap",
	"snake":  "arrows/wasd steer",
}

// listRow is one line of the game list.
type listRow struct {
	ID, Title, Controls string
	Best                int
}

// listRows pairs each registered game with its stored best.
func listRows(kv highscore.KV) []listRow {
	games := registry.List()
	rows := make([]listRow, 0, len(games))
	for _, g := range games {
		row := listRow{ID: g.ID, Title: g.Title, Controls: gameControls[g.ID]}
		if kv != nil {
			row.Best = highscore.NewTracker(kv, g.ID, nil).Load()
		}
		rows = append(rows, row)
	}
	return rows
}

func runList(_ *cobra.Command, _ []string) {
	store, kv := openScores(logging.Discard())
	if store != nil {
		defer store.Close()
	}

	rows := listRows(kv)
	if len(rows) == 0 {
		fmt.Println("No games available.")
		return
	}

	idW, titleW := len("ID"), len("Title")
	for _, r := range rows {
		idW = max(idW, len(r.ID))
		titleW = max(titleW, len(r.Title))
	}

	fmt.Println("Available games:")
	fmt.Println()
	fmt.Printf("  %-*s  %-*s  %5s  %s\n", idW, "ID", titleW, "Title", "Best", "Controls")
	fmt.Printf("  %-*s  %-*s  %5s  %s\n", idW, "--", titleW, "-----", "----", "--------")
	for _, r := range rows {
		fmt.Printf("  %-*s  %-*s  %5d  %s\n", idW, r.ID, titleW, r.Title, r.Best, r.Controls)
	}

	fmt.Println()
	fmt.Println("Run 'arcade play <id>' to play a game, 'arcade menu' to pick one.")
}
