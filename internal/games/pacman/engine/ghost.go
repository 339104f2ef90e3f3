package engine

import "math/rand"

// Ghost is a wandering enemy. At every cell center it picks a heading from
// its walkable neighbours, never turning back unless it has to.
type Ghost struct {
	motion   *Motion
	spawn    Pos
	name     string
	color    string
	straight float64
}

// NewGhost places a ghost at rest on its spawn cell.
func NewGhost(spec GhostSpec, speed, cellSize int, straightChance float64) *Ghost {
	return &Ghost{
		motion:   NewMotion(spec.Spawn, speed, cellSize),
		spawn:    spec.Spawn,
		name:     spec.Name,
		color:    spec.Color,
		straight: straightChance,
	}
}

// Motion exposes the ghost's movement state.
func (gh *Ghost) Motion() *Motion { return gh.motion }

// Name returns the ghost's identifier.
func (gh *Ghost) Name() string { return gh.name }

// Color returns the renderer color tag.
func (gh *Ghost) Color() string { return gh.color }

// Tick moves the ghost, choosing a new heading when it reaches a cell center.
func (gh *Ghost) Tick(g *Grid, rng *rand.Rand) {
	gh.motion.Tick(g, func(Pos) {
		gh.motion.SetDirection(gh.choose(g, rng))
	})
}

// Candidates returns the walkable headings from the current cell, excluding
// the reverse of the current heading.
func (gh *Ghost) Candidates(g *Grid) []Direction {
	back := gh.motion.Direction().Opposite()
	out := make([]Direction, 0, len(Cardinals))
	for _, d := range Cardinals {
		if d != back && gh.motion.CanMove(g, d) {
			out = append(out, d)
		}
	}
	return out
}

func (gh *Ghost) choose(g *Grid, rng *rand.Rand) Direction {
	cur := gh.motion.Direction()
	candidates := gh.Candidates(g)

	if len(candidates) == 0 {
		// Dead end: turn around, or stay put if boxed in
		back := cur.Opposite()
		if gh.motion.CanMove(g, back) {
			return back
		}
		return DirNone
	}

	for _, d := range candidates {
		if d == cur {
			if rng.Float64() < gh.straight {
				return cur
			}
			break
		}
	}
	return candidates[rng.Intn(len(candidates))]
}

func (gh *Ghost) reset() {
	gh.motion.Place(gh.spawn)
}
