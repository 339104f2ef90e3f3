package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/maze-arcade/internal/audio"
	"github.com/vovakirdan/maze-arcade/internal/core"
	"github.com/vovakirdan/maze-arcade/internal/games/pacman"
	"github.com/vovakirdan/maze-arcade/internal/games/pacman/engine"
	"github.com/vovakirdan/maze-arcade/internal/platform/tui"
	"github.com/vovakirdan/maze-arcade/internal/registry"
)

var (
	flagConfig     string
	flagDifficulty string
)

var playCmd = &cobra.Command{
	Use:   "play [game]",
	Short: "Play a game",
	Long: `Start playing the specified game, pacman when none is given.

Controls:
  Arrows/WASD/hjkl  - Steer
  P/Esc             - Pause
  R or click        - Restart (after game over)
  Ctrl+S            - Save a screenshot
  Q/Ctrl+C          - Quit

Difficulty options:
  easy   - Faster player, slow ghosts
  normal - Default speeds
  hard   - Faster player, faster ghosts
  fixed  - Speeds exactly as configured

Examples:
  arcade play
  arcade play pacman --difficulty hard
  arcade play --config ./my-maze.yaml`,
	Args: cobra.MaximumNArgs(1),
	RunE: runPlay,
}

func init() {
	playCmd.Flags().StringVar(&flagConfig, "config", "", "Path to custom game config YAML")
	playCmd.Flags().StringVar(&flagDifficulty, "difficulty", "", "Difficulty preset: easy, normal, hard, fixed")
}

// runPlay returns its failures so that deferred cleanup (log file, speaker,
// score store) runs before main exits.
func runPlay(cmd *cobra.Command, args []string) error {
	gameID := pacman.ID
	if len(args) == 1 {
		gameID = args[0]
	}

	if !registry.Exists(gameID) {
		return fmt.Errorf("unknown game %q (run 'arcade list' to see available games)", gameID)
	}

	logger, closeLog, err := openLogger(flagLogFile, flagLogLevel)
	if err != nil {
		return err
	}
	defer closeLog()

	highScores, err := openHighScores()
	if err != nil {
		return err
	}

	var sink engine.AudioSink = engine.NopAudio{}
	if !flagMute {
		sound := audio.Open(logger)
		defer sound.Cleanup()
		sink = sound
	}

	pacman.SetConfigPath(flagConfig)
	pacman.SetDifficultyPreset(flagDifficulty)
	pacman.SetServices(pacman.Services{
		HighScores: highScores,
		Audio:      sink,
		Logger:     logger,
	})

	width, height := 80, 24
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		width, height = w, h
	}
	cfg := core.RuntimeConfig{
		ScreenW:  width,
		ScreenH:  height,
		TickRate: flagFPS,
		Seed:     flagSeed,
	}

	game, err := registry.Create(gameID)
	if err != nil {
		return fmt.Errorf("creating game: %w", err)
	}

	store := openStore(logger)
	if store != nil {
		defer store.Close()
	}

	err = tui.Run(game, store, cfg,
		tui.WithPlayer(os.Getenv("USER")),
		tui.WithLogger(logger),
	)
	if err != nil {
		logger.Error("game stopped", "err", err)
		return fmt.Errorf("running game: %w", err)
	}
	return nil
}
