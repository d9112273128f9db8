// arcade is a terminal arcade with three small games: Stop the Sprite,
// Flappy and Snake.
//
// Usage:
//
//	arcade list              - List available games
//	arcade play <game>       - Play a game
//	arcade menu              - Start menu to pick games interactively
//	arcade serve             - Start SSH server for remote play
//	arcade scores <game>     - Show high scores for a game
//
// Global flags:
//
//	--fps <rate>         - Set tick rate (default: 60)
//	--seed <value>       - Set RNG seed for reproducible gameplay
//	--db <path>          - Set database path (default: ~/.arcade/arcade.db)
//	--difficulty <name>  - Difficulty preset: easy, normal, hard, fixed
//	--log-level <level>  - debug, info, warn or error
//
// Defaults can be changed with ARCADE_* variables or a .env file.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/mini-arcade/internal/config"

	// Import games to register them
	_ "github.com/vovakirdan/mini-arcade/internal/games/flappy"
	_ "github.com/vovakirdan/mini-arcade/internal/games/reflex"
	_ "github.com/vovakirdan/mini-arcade/internal/games/snake"
)

var settings, settingsErr = config.LoadSettings(".env")

var (
	// Global flags
	flagFPS        int
	flagSeed       int64
	flagDBPath     string
	flagDifficulty string
	flagLogLevel   string
)

func main() {
	if settingsErr != nil {
		fmt.Fprintln(os.Stderr, settingsErr)
		os.Exit(1)
	}
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "arcade",
	Short: "Mini Arcade - small games in your terminal",
	Long: `Mini Arcade is a terminal gaming platform with three small games:

  reflex   - Stop the Sprite: stop the moving block on the target
  flappy   - Fly between the pipes
  snake    - Eat, grow, don't bite yourself

Available commands:
  list     - Show all available games
  play     - Play a specific game directly
  menu     - Interactive game picker menu
  serve    - Start SSH server for remote play
  scores   - View high scores

Examples:
  arcade list
  arcade play reflex
  arcade play snake --difficulty hard
  arcade menu
  arcade serve --ssh :2222
  arcade scores flappy`,
	SilenceUsage:  true,
	SilenceErrors: true,
}

func init() {
	pf := rootCmd.PersistentFlags()
	pf.IntVar(&flagFPS, "fps", settings.FPS, "Tick rate (frames per second)")
	pf.Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	pf.StringVar(&flagDBPath, "db", settings.DBPath, "Path to scores database")
	pf.StringVar(&flagDifficulty, "difficulty", "", "Difficulty preset: easy, normal, hard, fixed")
	pf.StringVar(&flagLogLevel, "log-level", settings.LogLevel, "Log level: debug, info, warn, error")

	// Add subcommands
	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(menuCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(scoresCmd)
}
