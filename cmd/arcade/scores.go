package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/maze-arcade/internal/registry"
	"github.com/vovakirdan/maze-arcade/internal/storage"
)

var (
	flagScoresLimit int
	flagScoresClear bool
)

var scoresCmd = &cobra.Command{
	Use:   "scores <game>",
	Short: "Show the best recorded rounds for a game",
	Long: `Display the best recorded rounds for the specified game, along with
the best score kept in the high score file.

Examples:
  arcade scores pacman
  arcade scores pacman --limit 25
  arcade scores pacman --clear`,
	Args: cobra.ExactArgs(1),
	Run:  runScores,
}

func init() {
	scoresCmd.Flags().IntVarP(&flagScoresLimit, "limit", "n", 10, "Number of rounds to show")
	scoresCmd.Flags().BoolVar(&flagScoresClear, "clear", false, "Delete the recorded rounds of the game")
}

func runScores(cmd *cobra.Command, args []string) {
	gameID := args[0]

	if !registry.Exists(gameID) {
		fmt.Fprintf(os.Stderr, "Error: unknown game %q\n", gameID)
		fmt.Fprintln(os.Stderr, "Run 'arcade list' to see available games.")
		os.Exit(1)
	}

	game, err := registry.Create(gameID)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error creating game: %v\n", err)
		os.Exit(1)
	}

	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening scores database: %v\n", err)
		os.Exit(1)
	}
	defer store.Close()

	if flagScoresClear {
		if err := store.ClearRounds(gameID); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		fmt.Printf("Cleared recorded rounds for %s.\n", game.Title())
		return
	}

	rounds, err := store.TopRounds(gameID, flagScoresLimit)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error retrieving scores: %v\n", err)
		os.Exit(1)
	}

	fmt.Printf("High Scores - %s\n", game.Title())
	fmt.Println()

	if len(rounds) == 0 {
		fmt.Println("No rounds recorded yet.")
		fmt.Println()
		fmt.Printf("Play 'arcade play %s' to set the first high score!\n", gameID)
	} else {
		fmt.Printf("  %-4s  %-8s  %-5s  %-12s  %s\n", "Rank", "Score", "Dots", "Player", "Date")
		fmt.Printf("  %-4s  %-8s  %-5s  %-12s  %s\n", "----", "-----", "----", "------", "----")
		for i, r := range rounds {
			player := r.Player
			if player == "" {
				player = "-"
			}
			fmt.Printf("  %-4d  %-8d  %-5d  %-12s  %s\n",
				i+1, r.Score, r.DotsEaten, player, r.CreatedAt.Format("2006-01-02 15:04"))
		}

		if stats, statsErr := store.Stats(gameID); statsErr == nil {
			fmt.Println()
			fmt.Printf("Rounds: %d  Average: %.0f\n", stats.Rounds, stats.AvgScore)
		}
	}

	// The best score file also covers rounds played without a database.
	if hs, hsErr := storage.NewHighScoreFile(flagHighScoreFile); hsErr == nil {
		if best, loadErr := hs.Load(); loadErr == nil && best > 0 {
			fmt.Printf("Best: %d\n", best)
		}
	}
}
