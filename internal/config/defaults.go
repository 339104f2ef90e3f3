package config

import (
	_ "embed"
)

//go:embed defaults/pacman.yaml
var defaultPacmanYAML []byte

// DefaultPacmanConfig returns the built-in maze configuration. It matches
// defaults/pacman.yaml and is used when even the embedded file cannot be
// parsed.
func DefaultPacmanConfig() PacmanConfig {
	return PacmanConfig{
		Maze: PacmanMaze{
			CellSize: 30,
			Layout: []string{
				"####################",
				"#........#.........#",
				"#.##.###.#.###.###.#",
				"#.##.###.#.###.###.#",
				"#..................#",
				"#.##.#.#####.#.###.#",
				"#....#...#...#.....#",
				"####.### # ###.#####",
				"   #.#       #.#    ",
				"####.# ## ## #.#####",
				"    .  #   #  .     ",
				"####.# ##### #.#####",
				"   #.#       #.#    ",
				"####.# ##### #.#####",
				"#........#.........#",
				"#.##.###.#.###.###.#",
				"#..#..... .....#...#",
				"##.#.#.#####.#.#.###",
				"#....#...#...#.....#",
				"####################",
			},
		},
		Player: PacmanPlayer{
			Row:        10,
			Col:        10,
			Speed:      2,
			MouthTicks: 5,
		},
		Ghosts: []PacmanGhost{
			{Name: "blinky", Row: 4, Col: 3, Color: "red"},
			{Name: "pinky", Row: 4, Col: 16, Color: "pink"},
			{Name: "inky", Row: 16, Col: 4, Color: "cyan"},
			{Name: "clyde", Row: 16, Col: 16, Color: "orange"},
		},
		GhostSpeed: 1,
		Rules: PacmanRules{
			DotReward:       10,
			CollisionMargin: 5,
			StraightChance:  0.7,
		},
	}
}

// GetDefaultYAML returns the embedded default YAML for a game.
func GetDefaultYAML(gameID string) []byte {
	switch gameID {
	case "pacman":
		return defaultPacmanYAML
	default:
		return nil
	}
}
