// arcade runs the Pac-Man maze game in the terminal.
//
// Usage:
//
//	arcade play [game]       - Play a game (default: pacman)
//	arcade list              - List available games
//	arcade scores <game>     - Show the best recorded rounds
//	arcade board             - Browse recorded rounds interactively
//	arcade serve             - Start SSH server for remote play
//
// Global flags:
//
//	--fps <rate>              - Set tick rate (default: 60)
//	--seed <value>            - Set RNG seed for reproducible gameplay
//	--db <path>               - Set database path (default: ~/.arcade/scores.db)
//	--highscore-file <path>   - Best score file (default: ~/.arcade/highscore.txt)
//	--log-level <level>       - debug, info, warn or error (default: info)
//	--log-file <path>         - Log destination while the game runs
//	--mute                    - Disable sound
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var (
	// Global flags
	flagFPS           int
	flagSeed          int64
	flagDBPath        string
	flagHighScoreFile string
	flagLogLevel      string
	flagLogFile       string
	flagMute          bool
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "arcade",
	Short: "Maze Arcade - Pac-Man in your terminal",
	Long: `Maze Arcade is a terminal Pac-Man: steer through the maze, eat every
dot and stay away from the four ghosts.

Available commands:
  play     - Play a game (pacman by default)
  list     - Show all available games
  scores   - View the best recorded rounds
  board    - Interactive scoreboard
  serve    - Start SSH server for remote play

Examples:
  arcade play
  arcade play pacman --difficulty hard
  arcade play --seed 42 --mute
  arcade serve --ssh :2222
  arcade scores pacman`,
	SilenceUsage:  true,
	SilenceErrors: true,
}

func init() {
	pf := rootCmd.PersistentFlags()
	pf.IntVar(&flagFPS, "fps", 60, "Tick rate (frames per second)")
	pf.Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	pf.StringVar(&flagDBPath, "db", "~/.arcade/scores.db", "Path to scores database")
	pf.StringVar(&flagHighScoreFile, "highscore-file", "~/.arcade/highscore.txt", "Path to the best score file")
	pf.StringVar(&flagLogLevel, "log-level", "info", "Log level: debug, info, warn, error")
	pf.StringVar(&flagLogFile, "log-file", "~/.arcade/arcade.log", "Log file used while a game owns the terminal")
	pf.BoolVar(&flagMute, "mute", false, "Disable sound")

	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(scoresCmd)
	rootCmd.AddCommand(boardCmd)
}
