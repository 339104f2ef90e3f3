// Package config provides YAML-based game configuration loading and
// difficulty presets for the arcade platform.
package config

import (
	"errors"
	"fmt"
	"unicode/utf8"
)

// ErrInvalidConfig is wrapped by every validation failure.
var ErrInvalidConfig = errors.New("config: invalid configuration")

// PacmanConfig contains all configuration for the maze game.
type PacmanConfig struct {
	Maze       PacmanMaze    `yaml:"maze"`
	Player     PacmanPlayer  `yaml:"player"`
	Ghosts     []PacmanGhost `yaml:"ghosts"`
	GhostSpeed int           `yaml:"ghost_speed"` // Pixels per tick
	Rules      PacmanRules   `yaml:"rules"`
}

// PacmanMaze defines the grid. Layout rows use '#' for walls, '.' for dots
// and ' ' or '_' for empty floor.
type PacmanMaze struct {
	CellSize int      `yaml:"cell_size"` // Pixels per cell side
	Layout   []string `yaml:"layout"`
}

// PacmanPlayer defines the player's spawn and movement.
type PacmanPlayer struct {
	Row        int `yaml:"row"`
	Col        int `yaml:"col"`
	Speed      int `yaml:"speed"`       // Pixels per tick
	MouthTicks int `yaml:"mouth_ticks"` // Ticks per mouth animation phase
}

// PacmanGhost defines one ghost.
type PacmanGhost struct {
	Name  string `yaml:"name"`
	Row   int    `yaml:"row"`
	Col   int    `yaml:"col"`
	Color string `yaml:"color"`
}

// PacmanRules defines scoring and collision tuning.
type PacmanRules struct {
	DotReward       int     `yaml:"dot_reward"`
	CollisionMargin int     `yaml:"collision_margin"` // Hit when centers are closer than cell_size - margin
	StraightChance  float64 `yaml:"straight_chance"`  // Chance a ghost keeps going at a junction
}

// DifficultyPreset represents a named difficulty level.
type DifficultyPreset string

const (
	DifficultyEasy   DifficultyPreset = "easy"
	DifficultyNormal DifficultyPreset = "normal"
	DifficultyHard   DifficultyPreset = "hard"
	DifficultyFixed  DifficultyPreset = "fixed"
)

// ParsePreset validates a preset name. The empty string means fixed.
func ParsePreset(name string) (DifficultyPreset, error) {
	switch p := DifficultyPreset(name); p {
	case "":
		return DifficultyFixed, nil
	case DifficultyEasy, DifficultyNormal, DifficultyHard, DifficultyFixed:
		return p, nil
	default:
		return "", fmt.Errorf("%w: unknown difficulty %q (want easy, normal, hard or fixed)", ErrInvalidConfig, name)
	}
}

// ApplyPacmanPreset adjusts speeds for a difficulty preset. Speeds stay
// divisors of the default cell size.
func ApplyPacmanPreset(cfg *PacmanConfig, preset DifficultyPreset) {
	def := DefaultPacmanConfig()
	switch preset {
	case DifficultyEasy:
		cfg.Player.Speed = 3
		cfg.GhostSpeed = 1
	case DifficultyNormal:
		cfg.Player.Speed = def.Player.Speed
		cfg.GhostSpeed = def.GhostSpeed
	case DifficultyHard:
		cfg.Player.Speed = 3
		cfg.GhostSpeed = 2
	}
}

// Validate checks that the configuration describes a playable maze.
func (c PacmanConfig) Validate() error {
	cell := c.Maze.CellSize
	if cell <= 0 || cell%2 != 0 {
		return fmt.Errorf("%w: maze.cell_size %d must be positive and even", ErrInvalidConfig, cell)
	}
	if err := checkSpeed("player.speed", c.Player.Speed, cell); err != nil {
		return err
	}
	if len(c.Ghosts) > 0 {
		if err := checkSpeed("ghost_speed", c.GhostSpeed, cell); err != nil {
			return err
		}
		if c.GhostSpeed >= c.Player.Speed {
			return fmt.Errorf("%w: ghost_speed %d must be below player.speed %d", ErrInvalidConfig, c.GhostSpeed, c.Player.Speed)
		}
	}
	if c.Player.MouthTicks <= 0 {
		return fmt.Errorf("%w: player.mouth_ticks %d must be positive", ErrInvalidConfig, c.Player.MouthTicks)
	}
	if c.Rules.DotReward < 0 {
		return fmt.Errorf("%w: rules.dot_reward %d must not be negative", ErrInvalidConfig, c.Rules.DotReward)
	}
	if m := c.Rules.CollisionMargin; m < 0 || m >= cell {
		return fmt.Errorf("%w: rules.collision_margin %d outside [0,%d)", ErrInvalidConfig, m, cell)
	}
	if p := c.Rules.StraightChance; p < 0 || p > 1 {
		return fmt.Errorf("%w: rules.straight_chance %v outside [0,1]", ErrInvalidConfig, p)
	}

	if err := c.checkLayout(); err != nil {
		return err
	}
	if err := c.checkSpawn("player", c.Player.Row, c.Player.Col); err != nil {
		return err
	}
	for i, g := range c.Ghosts {
		name := g.Name
		if name == "" {
			name = fmt.Sprintf("ghosts[%d]", i)
		}
		if err := c.checkSpawn(name, g.Row, g.Col); err != nil {
			return err
		}
	}
	return nil
}

func checkSpeed(field string, speed, cell int) error {
	if speed <= 0 {
		return fmt.Errorf("%w: %s %d must be positive", ErrInvalidConfig, field, speed)
	}
	if cell%speed != 0 {
		return fmt.Errorf("%w: %s %d must divide maze.cell_size %d", ErrInvalidConfig, field, speed, cell)
	}
	return nil
}

func (c PacmanConfig) checkLayout() error {
	rows := c.Maze.Layout
	if len(rows) == 0 {
		return fmt.Errorf("%w: maze.layout is empty", ErrInvalidConfig)
	}
	width := utf8.RuneCountInString(rows[0])
	if width == 0 {
		return fmt.Errorf("%w: maze.layout row 0 is empty", ErrInvalidConfig)
	}
	for i, row := range rows {
		if n := utf8.RuneCountInString(row); n != width {
			return fmt.Errorf("%w: maze.layout row %d has width %d, want %d", ErrInvalidConfig, i, n, width)
		}
		for _, r := range row {
			switch r {
			case '#', '.', ' ', '_':
			default:
				return fmt.Errorf("%w: maze.layout row %d has unknown tile %q", ErrInvalidConfig, i, r)
			}
		}
	}
	return nil
}

func (c PacmanConfig) checkSpawn(who string, row, col int) error {
	rows := c.Maze.Layout
	if row < 0 || row >= len(rows) {
		return fmt.Errorf("%w: %s spawn row %d out of bounds", ErrInvalidConfig, who, row)
	}
	line := []rune(rows[row])
	if col < 0 || col >= len(line) {
		return fmt.Errorf("%w: %s spawn col %d out of bounds", ErrInvalidConfig, who, col)
	}
	if line[col] == '#' {
		return fmt.Errorf("%w: %s spawn (%d,%d) is a wall", ErrInvalidConfig, who, row, col)
	}
	return nil
}
