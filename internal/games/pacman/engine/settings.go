package engine

import (
	"errors"
	"fmt"
)

// ErrInvalidSettings is returned when settings cannot produce a playable round.
var ErrInvalidSettings = errors.New("engine: invalid settings")

// GhostSpec describes one ghost: a display name, a color tag for the
// renderer and its spawn cell.
type GhostSpec struct {
	Name  string
	Color string
	Spawn Pos
}

// Settings holds the tunable rules of a round.
type Settings struct {
	Layout   []string
	CellSize int // Pixels per cell side

	PlayerSpawn Pos
	PlayerSpeed int // Pixels per tick
	MouthTicks  int // Ticks between mouth toggles

	Ghosts     []GhostSpec
	GhostSpeed int

	DotReward       int
	CollisionMargin int     // Collision when distance < CellSize-CollisionMargin
	StraightChance  float64 // Chance a ghost keeps its heading at a junction
}

// DefaultSettings returns the classic tuning.
func DefaultSettings() Settings {
	return Settings{
		Layout:      DefaultLayout,
		CellSize:    30,
		PlayerSpawn: P(10, 10),
		PlayerSpeed: 2,
		MouthTicks:  5,
		Ghosts: []GhostSpec{
			{Name: "blinky", Color: "red", Spawn: P(4, 3)},
			{Name: "pinky", Color: "pink", Spawn: P(4, 16)},
			{Name: "inky", Color: "cyan", Spawn: P(16, 4)},
			{Name: "clyde", Color: "orange", Spawn: P(16, 16)},
		},
		GhostSpeed:      1,
		DotReward:       10,
		CollisionMargin: 5,
		StraightChance:  0.7,
	}
}

// CollisionThreshold is the center distance below which actors collide.
func (s Settings) CollisionThreshold() int {
	return s.CellSize - s.CollisionMargin
}

// Validate checks the settings against a parsed maze.
func (s Settings) Validate(g *Grid) error {
	if s.CellSize <= 0 {
		return fmt.Errorf("%w: cell size %d must be positive", ErrInvalidSettings, s.CellSize)
	}
	if err := s.checkSpeed("player", s.PlayerSpeed); err != nil {
		return err
	}
	if len(s.Ghosts) > 0 {
		if err := s.checkSpeed("ghost", s.GhostSpeed); err != nil {
			return err
		}
		if s.GhostSpeed >= s.PlayerSpeed {
			return fmt.Errorf("%w: ghost speed %d must be below player speed %d", ErrInvalidSettings, s.GhostSpeed, s.PlayerSpeed)
		}
	}
	if s.MouthTicks <= 0 {
		return fmt.Errorf("%w: mouth ticks %d must be positive", ErrInvalidSettings, s.MouthTicks)
	}
	if s.DotReward < 0 {
		return fmt.Errorf("%w: dot reward %d must not be negative", ErrInvalidSettings, s.DotReward)
	}
	if s.CollisionMargin < 0 || s.CollisionMargin >= s.CellSize {
		return fmt.Errorf("%w: collision margin %d outside [0,%d)", ErrInvalidSettings, s.CollisionMargin, s.CellSize)
	}
	if s.StraightChance < 0 || s.StraightChance > 1 {
		return fmt.Errorf("%w: straight chance %v outside [0,1]", ErrInvalidSettings, s.StraightChance)
	}

	if err := checkSpawn(g, "player", s.PlayerSpawn); err != nil {
		return err
	}
	for _, gh := range s.Ghosts {
		if err := checkSpawn(g, "ghost "+gh.Name, gh.Spawn); err != nil {
			return err
		}
	}
	return nil
}

func (s Settings) checkSpeed(who string, speed int) error {
	if speed <= 0 {
		return fmt.Errorf("%w: %s speed %d must be positive", ErrInvalidSettings, who, speed)
	}
	if s.CellSize%speed != 0 {
		return fmt.Errorf("%w: %s speed %d does not divide cell size %d", ErrInvalidSettings, who, speed, s.CellSize)
	}
	return nil
}

func checkSpawn(g *Grid, who string, p Pos) error {
	if !g.InBounds(p) {
		return fmt.Errorf("%w: %s spawn %v out of bounds", ErrInvalidSettings, who, p)
	}
	if g.IsWall(p) {
		return fmt.Errorf("%w: %s spawn %v is a wall", ErrInvalidSettings, who, p)
	}
	return nil
}
