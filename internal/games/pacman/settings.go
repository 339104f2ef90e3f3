package pacman

import (
	"github.com/vovakirdan/maze-arcade/internal/config"
	"github.com/vovakirdan/maze-arcade/internal/games/pacman/engine"
)

// SettingsFromConfig converts the YAML configuration into engine rules.
func SettingsFromConfig(cfg config.PacmanConfig) engine.Settings {
	s := engine.Settings{
		Layout:          append([]string(nil), cfg.Maze.Layout...),
		CellSize:        cfg.Maze.CellSize,
		PlayerSpawn:     engine.P(cfg.Player.Row, cfg.Player.Col),
		PlayerSpeed:     cfg.Player.Speed,
		MouthTicks:      cfg.Player.MouthTicks,
		GhostSpeed:      cfg.GhostSpeed,
		DotReward:       cfg.Rules.DotReward,
		CollisionMargin: cfg.Rules.CollisionMargin,
		StraightChance:  cfg.Rules.StraightChance,
	}
	for _, g := range cfg.Ghosts {
		s.Ghosts = append(s.Ghosts, engine.GhostSpec{
			Name:  g.Name,
			Color: g.Color,
			Spawn: engine.P(g.Row, g.Col),
		})
	}
	return s
}

// loadSettings reads the configuration named by path (empty searches the
// usual locations) and applies a difficulty preset.
func loadSettings(path, preset string) (engine.Settings, error) {
	p, err := config.ParsePreset(preset)
	if err != nil {
		return engine.DefaultSettings(), err
	}
	cfg, err := config.LoadPacman(path)
	if err != nil {
		return engine.DefaultSettings(), err
	}
	config.ApplyPacmanPreset(&cfg, p)
	if err := cfg.Validate(); err != nil {
		return engine.DefaultSettings(), err
	}
	return SettingsFromConfig(cfg), nil
}
